package router

import (
	"roomboard/modules/history/controller"

	"github.com/labstack/echo/v4"
)

type HistoryRouter struct {
	Controller *controller.HistoryController
}

func NewHistoryRouter(ctrl *controller.HistoryController) *HistoryRouter {
	return &HistoryRouter{Controller: ctrl}
}

func (r *HistoryRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.GET("/history", r.Controller.ListHistory)
}
