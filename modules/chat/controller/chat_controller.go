package controller

import (
	"roomboard/core/controller"
	"roomboard/core/errors"
	"roomboard/modules/chat/dto"
	"roomboard/modules/chat/service"

	"github.com/labstack/echo/v4"
)

// ChatController handles chat HTTP requests
type ChatController struct {
	controller.BaseController
	ChatService service.ChatServiceInterface
}

func NewChatController(svc service.ChatServiceInterface) *ChatController {
	return &ChatController{
		BaseController: controller.NewBaseController(),
		ChatService:    svc,
	}
}

// SendMessage handles POST /chat
func (c *ChatController) SendMessage(ctx echo.Context) error {
	var req dto.SendMessageRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	result, appErr := c.ChatService.SendMessage(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Message sent")
}

// RecentMessages handles GET /chat
func (c *ChatController) RecentMessages(ctx echo.Context) error {
	result, appErr := c.ChatService.RecentMessages(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
