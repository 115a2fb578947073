package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/dto"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/pkg/serverutils"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/service"
)

type IEmployeeController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
}

type employeeController struct {
	service service.IAssistantService
}

func NewEmployeeController(service service.IAssistantService) IEmployeeController {
	return &employeeController{service: service}
}

func (c *employeeController) RegisterRoutes(r fiber.Router) {
	r.Get("/employees/search", c.Search)
}

func (c *employeeController) Search(ctx *fiber.Ctx) error {
	topK, err := strconv.Atoi(ctx.Query("top_k", "5"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "top_k must be an integer")
	}

	req := dto.SearchEmployeesRequest{
		Query: ctx.Query("query", ""),
		TopK:  topK,
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SearchEmployees(ctx.Context(), req.Query, req.TopK)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
