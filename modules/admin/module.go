package admin

import (
	"context"

	"roomboard/core/cache"
	"roomboard/core/clock"
	"roomboard/core/config"
	"roomboard/core/database"
	"roomboard/core/logger"
	"roomboard/core/middleware"
	"roomboard/core/notifier"
	"roomboard/modules/admin/controller"
	"roomboard/modules/admin/repository"
	"roomboard/modules/admin/router"
	"roomboard/modules/admin/service"
	chatRepository "roomboard/modules/chat/repository"
	historyRepository "roomboard/modules/history/repository"
	roomRepository "roomboard/modules/room/repository"
	statsRepository "roomboard/modules/stats/repository"
	teamRepository "roomboard/modules/team/repository"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, c cache.Cache, notif notifier.Notifier, clk clock.Clock, cfg *config.Config, mw *middleware.Middleware) {
	adminRepo := repository.NewAdminRepository(db)
	historyRepo := historyRepository.NewHistoryRepository(db)
	statsRepo := statsRepository.NewStatsRepository(db)
	roomRepo := roomRepository.NewRoomRepository(db)
	teamRepo := teamRepository.NewTeamRepository(db)
	chatRepo := chatRepository.NewChatRepository(db)

	authSvc := service.NewAuthService(adminRepo, c)
	archiveSvc := service.NewArchiveService(historyRepo, statsRepo, roomRepo, teamRepo, chatRepo, notif, clk)

	if err := service.EnsureSeedAdmin(context.Background(), adminRepo, cfg.Admin); err != nil {
		logger.Error("AdminModule:EnsureSeedAdmin", err)
	}

	ctrl := controller.NewAdminController(authSvc, archiveSvc)
	router.NewAdminRouter(ctrl).Setup(e, mw)
}
