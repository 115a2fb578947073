package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/dto"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/pkg/serverutils"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IAssistantService
}

func NewChatController(service service.IAssistantService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Chat(ctx.Context(), req.Query)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
