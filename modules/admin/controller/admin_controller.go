package controller

import (
	"roomboard/core/controller"
	"roomboard/core/errors"
	"roomboard/modules/admin/dto"
	"roomboard/modules/admin/service"

	"github.com/labstack/echo/v4"
)

// AdminController handles admin HTTP requests
type AdminController struct {
	controller.BaseController
	AuthService    service.AuthServiceInterface
	ArchiveService service.ArchiveServiceInterface
}

func NewAdminController(authSvc service.AuthServiceInterface, archiveSvc service.ArchiveServiceInterface) *AdminController {
	return &AdminController{
		BaseController: controller.NewBaseController(),
		AuthService:    authSvc,
		ArchiveService: archiveSvc,
	}
}

// Login handles POST /admin/login
func (c *AdminController) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	result, appErr := c.AuthService.Login(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Login successful")
}

// ArchiveAndReset handles POST /admin/archive
func (c *AdminController) ArchiveAndReset(ctx echo.Context) error {
	var req dto.ArchiveRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	result, appErr := c.ArchiveService.ArchiveAndReset(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, result.Message)
}
