package controller

import (
	"github.com/gofiber/fiber/v2"

	"zeus-ai-be/internal/dto"
	"zeus-ai-be/internal/pkg/serverutils"
	"zeus-ai-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
	configErr   error
}

func NewChatController(chatService service.IChatService, configErr error) IChatController {
	return &chatController{
		chatService: chatService,
		configErr:   configErr,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("chat", c.Chat)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	if c.configErr != nil {
		return fiber.NewError(fiber.StatusInternalServerError, c.configErr.Error())
	}

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Chat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
