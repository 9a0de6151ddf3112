package stats

import (
	"roomboard/core/config"
	"roomboard/core/database"
	historyRepository "roomboard/modules/history/repository"
	roomRepository "roomboard/modules/room/repository"
	"roomboard/modules/stats/controller"
	"roomboard/modules/stats/repository"
	"roomboard/modules/stats/router"
	"roomboard/modules/stats/service"
	teamRepository "roomboard/modules/team/repository"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, cfg *config.Config) {
	roomRepo := roomRepository.NewRoomRepository(db)
	teamRepo := teamRepository.NewTeamRepository(db)
	historyRepo := historyRepository.NewHistoryRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	statsSvc := service.NewStatsService(roomRepo, teamRepo, historyRepo, statsRepo, cfg.Rooms.MinVisitMinutes)
	ctrl := controller.NewStatsController(statsSvc)
	router.NewStatsRouter(ctrl).Setup(e)
}
