package history

import (
	"roomboard/core/database"
	"roomboard/modules/history/controller"
	"roomboard/modules/history/repository"
	"roomboard/modules/history/router"
	"roomboard/modules/history/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database) {
	historyRepo := repository.NewHistoryRepository(db)
	historySvc := service.NewHistoryService(historyRepo)
	ctrl := controller.NewHistoryController(historySvc)
	router.NewHistoryRouter(ctrl).Setup(e)
}
