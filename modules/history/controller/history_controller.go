package controller

import (
	"roomboard/core/controller"
	"roomboard/core/errors"
	"roomboard/modules/history/dto"
	"roomboard/modules/history/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HistoryController handles ledger HTTP requests
type HistoryController struct {
	controller.BaseController
	HistoryService service.HistoryServiceInterface
}

func NewHistoryController(svc service.HistoryServiceInterface) *HistoryController {
	return &HistoryController{
		BaseController: controller.NewBaseController(),
		HistoryService: svc,
	}
}

// ListHistory handles GET /history?room_id=&team_id=&action=
func (c *HistoryController) ListHistory(ctx echo.Context) error {
	var req dto.HistoryFilterRequest

	if raw := ctx.QueryParam("room_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "Invalid room_id")
		}
		req.RoomID = &id
	}
	if raw := ctx.QueryParam("team_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "Invalid team_id")
		}
		req.TeamID = &id
	}
	if raw := ctx.QueryParam("action"); raw != "" {
		req.Action = &raw
	}

	result, appErr := c.HistoryService.ListHistory(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
