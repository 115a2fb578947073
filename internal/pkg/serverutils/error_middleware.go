package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/vidishsirdesai/hr-resource-query-chatbot/pkg/rag"
)

// ErrorDetail is the error envelope for every non-2xx response.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// ErrorHandlerMiddleware converts errors returned by handlers into JSON
// responses. Readiness errors get an explanatory 500, validation errors a
// 400; anything else becomes a generic 500 so request failures never
// crash the process or leak internals.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorDetail{
				Detail: formatValidationErrors(validationErrs),
			})
		}

		if errors.Is(err, rag.ErrPipelineNotReady) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorDetail{
				Detail: fmt.Sprintf("Chatbot system error: %v. Please check server logs for initialization issues.", err),
			})
		}

		if errors.Is(err, rag.ErrIndexNotReady) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorDetail{
				Detail: fmt.Sprintf("Employee search system error: %v. Please check server logs for initialization issues.", err),
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorDetail{
				Detail: fiberErr.Message,
			})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorDetail{
			Detail: fmt.Sprintf("An unexpected error occurred while processing your request: %v", err),
		})
	}
}

func formatValidationErrors(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		switch fe.Tag() {
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be >= %s", fe.Field(), fe.Param()))
		case "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be <= %s", fe.Field(), fe.Param()))
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed validation (%s)", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
