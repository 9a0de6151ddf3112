package router

import (
	"roomboard/core/middleware"
	"roomboard/modules/room/controller"

	"github.com/labstack/echo/v4"
)

type RoomRouter struct {
	Controller *controller.RoomController
}

func NewRoomRouter(ctrl *controller.RoomController) *RoomRouter {
	return &RoomRouter{Controller: ctrl}
}

func (r *RoomRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	v1.GET("/rooms", r.Controller.ListRooms)
	v1.GET("/rooms/events", r.Controller.Events)
	v1.GET("/rooms/:id", r.Controller.GetRoom)
	v1.POST("/rooms/:id/occupy", r.Controller.Occupy)
	v1.POST("/rooms/:id/reserve", r.Controller.Reserve)
	v1.POST("/rooms/:id/free", r.Controller.Free)
	v1.POST("/rooms/:id/cancel-reservation", r.Controller.CancelReservation)

	admin := v1.Group("/admin", mw.AuthMiddleware())
	admin.POST("/rooms", r.Controller.CreateRoom)
	admin.PUT("/rooms/:id", r.Controller.UpdateRoom)
	admin.DELETE("/rooms/:id", r.Controller.DeleteRoom)
	admin.POST("/rooms/:id/status", r.Controller.AdminSetStatus)
}
