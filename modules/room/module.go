package room

import (
	"roomboard/core/clock"
	"roomboard/core/config"
	"roomboard/core/database"
	"roomboard/core/middleware"
	"roomboard/core/notifier"
	historyRepository "roomboard/modules/history/repository"
	"roomboard/modules/room/controller"
	"roomboard/modules/room/repository"
	"roomboard/modules/room/router"
	"roomboard/modules/room/service"
	teamRepository "roomboard/modules/team/repository"

	"github.com/labstack/echo/v4"
)

// Init wires the room module and returns the service so the task worker
// can drive the expiry sweep.
func Init(e *echo.Echo, db database.Database, notif notifier.Notifier, clk clock.Clock, cfg *config.Config, mw *middleware.Middleware) *service.RoomService {
	roomRepo := repository.NewRoomRepository(db)
	teamRepo := teamRepository.NewTeamRepository(db)
	historyRepo := historyRepository.NewHistoryRepository(db)

	roomSvc := service.NewRoomService(roomRepo, teamRepo, historyRepo, notif, clk, cfg.ReservationWindow())

	ctrl := controller.NewRoomController(roomSvc, notif)
	router.NewRoomRouter(ctrl).Setup(e, mw)
	return roomSvc
}
