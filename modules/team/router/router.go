package router

import (
	"roomboard/modules/team/controller"

	"github.com/labstack/echo/v4"
)

type TeamRouter struct {
	Controller *controller.TeamController
}

func NewTeamRouter(ctrl *controller.TeamController) *TeamRouter {
	return &TeamRouter{Controller: ctrl}
}

func (r *TeamRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.POST("/teams", r.Controller.CreateTeam)
	v1.GET("/teams", r.Controller.ListTeams)
	v1.GET("/teams/:id", r.Controller.GetTeam)
}
