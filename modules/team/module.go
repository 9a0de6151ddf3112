package team

import (
	"roomboard/core/database"
	"roomboard/modules/team/controller"
	"roomboard/modules/team/repository"
	"roomboard/modules/team/router"
	"roomboard/modules/team/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database) {
	teamRepo := repository.NewTeamRepository(db)
	teamSvc := service.NewTeamService(teamRepo)
	ctrl := controller.NewTeamController(teamSvc)
	router.NewTeamRouter(ctrl).Setup(e)
}
