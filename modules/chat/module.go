package chat

import (
	"roomboard/core/clock"
	"roomboard/core/database"
	"roomboard/core/notifier"
	"roomboard/modules/chat/controller"
	"roomboard/modules/chat/repository"
	"roomboard/modules/chat/router"
	"roomboard/modules/chat/service"
	teamRepository "roomboard/modules/team/repository"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, notif notifier.Notifier, clk clock.Clock) {
	chatRepo := repository.NewChatRepository(db)
	teamRepo := teamRepository.NewTeamRepository(db)
	chatSvc := service.NewChatService(chatRepo, teamRepo, notif, clk)
	ctrl := controller.NewChatController(chatSvc)
	router.NewChatRouter(ctrl).Setup(e)
}
