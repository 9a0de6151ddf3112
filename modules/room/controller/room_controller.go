package controller

import (
	"fmt"
	"net/http"

	"roomboard/core/constants"
	"roomboard/core/controller"
	"roomboard/core/errors"
	"roomboard/core/notifier"
	"roomboard/modules/room/dto"
	"roomboard/modules/room/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RoomController handles room HTTP requests
type RoomController struct {
	controller.BaseController
	RoomService service.RoomServiceInterface
	Notifier    notifier.Notifier
}

func NewRoomController(svc service.RoomServiceInterface, notif notifier.Notifier) *RoomController {
	return &RoomController{
		BaseController: controller.NewBaseController(),
		RoomService:    svc,
		Notifier:       notif,
	}
}

func (c *RoomController) roomID(ctx echo.Context) (uuid.UUID, *echo.HTTPError) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return uuid.Nil, c.BadRequest(errors.ErrInvalidInput, "Invalid room ID")
	}
	return id, nil
}

func (c *RoomController) bindOccupancy(ctx echo.Context) (uuid.UUID, uuid.UUID, *echo.HTTPError) {
	id, httpErr := c.roomID(ctx)
	if httpErr != nil {
		return uuid.Nil, uuid.Nil, httpErr
	}
	var req dto.OccupancyRequest
	if err := ctx.Bind(&req); err != nil || req.TeamID == uuid.Nil {
		return uuid.Nil, uuid.Nil, c.BadRequest(errors.ErrInvalidInput, "team_id is required")
	}
	return id, req.TeamID, nil
}

// ListRooms handles GET /rooms
func (c *RoomController) ListRooms(ctx echo.Context) error {
	result, appErr := c.RoomService.ListRooms(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// GetRoom handles GET /rooms/:id
func (c *RoomController) GetRoom(ctx echo.Context) error {
	id, httpErr := c.roomID(ctx)
	if httpErr != nil {
		return httpErr
	}
	result, appErr := c.RoomService.GetRoom(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Occupy handles POST /rooms/:id/occupy
func (c *RoomController) Occupy(ctx echo.Context) error {
	roomID, teamID, httpErr := c.bindOccupancy(ctx)
	if httpErr != nil {
		return httpErr
	}
	result, appErr := c.RoomService.Occupy(ctx.Request().Context(), roomID, teamID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Room occupied")
}

// Reserve handles POST /rooms/:id/reserve
func (c *RoomController) Reserve(ctx echo.Context) error {
	roomID, teamID, httpErr := c.bindOccupancy(ctx)
	if httpErr != nil {
		return httpErr
	}
	result, appErr := c.RoomService.Reserve(ctx.Request().Context(), roomID, teamID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Room reserved")
}

// Free handles POST /rooms/:id/free
func (c *RoomController) Free(ctx echo.Context) error {
	roomID, teamID, httpErr := c.bindOccupancy(ctx)
	if httpErr != nil {
		return httpErr
	}
	result, appErr := c.RoomService.Free(ctx.Request().Context(), roomID, teamID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Room freed")
}

// CancelReservation handles POST /rooms/:id/cancel-reservation
func (c *RoomController) CancelReservation(ctx echo.Context) error {
	roomID, teamID, httpErr := c.bindOccupancy(ctx)
	if httpErr != nil {
		return httpErr
	}
	result, appErr := c.RoomService.CancelReservation(ctx.Request().Context(), roomID, teamID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Reservation cancelled")
}

// Events handles GET /rooms/events: a server-sent event stream that pings
// subscribers whenever room state changes. Clients re-fetch the room list
// on each ping.
func (c *RoomController) Events(ctx echo.Context) error {
	ctx.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	ctx.Response().Header().Set("Cache-Control", "no-cache")
	ctx.Response().Header().Set("Connection", "keep-alive")
	ctx.Response().WriteHeader(http.StatusOK)
	ctx.Response().Flush()

	pings, cancel := c.Notifier.Subscribe(ctx.Request().Context(), constants.ChannelRoomsUpdated)
	defer cancel()

	for {
		select {
		case <-ctx.Request().Context().Done():
			return nil
		case _, ok := <-pings:
			if !ok {
				return nil
			}
			if _, err := fmt.Fprint(ctx.Response(), "event: rooms\ndata: updated\n\n"); err != nil {
				return nil
			}
			ctx.Response().Flush()
		}
	}
}

// ===================== Admin endpoints =====================

// AdminSetStatus handles POST /admin/rooms/:id/status
func (c *RoomController) AdminSetStatus(ctx echo.Context) error {
	id, httpErr := c.roomID(ctx)
	if httpErr != nil {
		return httpErr
	}
	var req dto.AdminSetStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	result, appErr := c.RoomService.AdminSetStatus(ctx.Request().Context(), id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Room status updated")
}

// CreateRoom handles POST /admin/rooms
func (c *RoomController) CreateRoom(ctx echo.Context) error {
	var req dto.CreateRoomRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	result, appErr := c.RoomService.CreateRoom(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Room created")
}

// UpdateRoom handles PUT /admin/rooms/:id
func (c *RoomController) UpdateRoom(ctx echo.Context) error {
	id, httpErr := c.roomID(ctx)
	if httpErr != nil {
		return httpErr
	}
	var req dto.UpdateRoomRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	result, appErr := c.RoomService.UpdateRoom(ctx.Request().Context(), id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Room updated")
}

// DeleteRoom handles DELETE /admin/rooms/:id
func (c *RoomController) DeleteRoom(ctx echo.Context) error {
	id, httpErr := c.roomID(ctx)
	if httpErr != nil {
		return httpErr
	}
	if appErr := c.RoomService.DeleteRoom(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Room deleted")
}
