package controller

import (
	"time"

	"roomboard/core/controller"
	"roomboard/core/errors"
	"roomboard/modules/stats/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// StatsController handles statistics HTTP requests
type StatsController struct {
	controller.BaseController
	StatsService service.StatsServiceInterface
}

func NewStatsController(svc service.StatsServiceInterface) *StatsController {
	return &StatsController{
		BaseController: controller.NewBaseController(),
		StatsService:   svc,
	}
}

// CurrentStats handles GET /stats/current
func (c *StatsController) CurrentStats(ctx echo.Context) error {
	result, appErr := c.StatsService.CurrentStats(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// DailyStats handles GET /stats/daily?date=YYYY-MM-DD
func (c *StatsController) DailyStats(ctx echo.Context) error {
	raw := ctx.QueryParam("date")
	if raw == "" {
		return c.BadRequest(errors.ErrInvalidInput, "date query parameter is required")
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "date must be YYYY-MM-DD")
	}

	result, appErr := c.StatsService.DailyStatsByDate(ctx.Request().Context(), date)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// RoomStats handles GET /rooms/:id/stats
func (c *StatsController) RoomStats(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid room ID")
	}
	result, appErr := c.StatsService.RoomStats(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// RoomVisits handles GET /rooms/:id/visits
func (c *StatsController) RoomVisits(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid room ID")
	}
	result, appErr := c.StatsService.RoomVisits(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
