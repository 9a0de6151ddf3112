package router

import (
	"roomboard/core/middleware"
	"roomboard/modules/admin/controller"

	"github.com/labstack/echo/v4"
)

type AdminRouter struct {
	Controller *controller.AdminController
}

func NewAdminRouter(ctrl *controller.AdminController) *AdminRouter {
	return &AdminRouter{Controller: ctrl}
}

func (r *AdminRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	v1.POST("/admin/login", r.Controller.Login)

	admin := v1.Group("/admin", mw.AuthMiddleware())
	admin.POST("/archive", r.Controller.ArchiveAndReset)
}
