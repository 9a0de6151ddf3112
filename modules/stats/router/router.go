package router

import (
	"roomboard/modules/stats/controller"

	"github.com/labstack/echo/v4"
)

type StatsRouter struct {
	Controller *controller.StatsController
}

func NewStatsRouter(ctrl *controller.StatsController) *StatsRouter {
	return &StatsRouter{Controller: ctrl}
}

func (r *StatsRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.GET("/stats/current", r.Controller.CurrentStats)
	v1.GET("/stats/daily", r.Controller.DailyStats)
	v1.GET("/rooms/:id/stats", r.Controller.RoomStats)
	v1.GET("/rooms/:id/visits", r.Controller.RoomVisits)
}
