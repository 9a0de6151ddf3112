package router

import (
	"roomboard/modules/chat/controller"

	"github.com/labstack/echo/v4"
)

type ChatRouter struct {
	Controller *controller.ChatController
}

func NewChatRouter(ctrl *controller.ChatController) *ChatRouter {
	return &ChatRouter{Controller: ctrl}
}

func (r *ChatRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.GET("/chat", r.Controller.RecentMessages)
	v1.POST("/chat", r.Controller.SendMessage)
}
