package controller

import (
	"roomboard/core/controller"
	"roomboard/core/errors"
	"roomboard/modules/team/dto"
	"roomboard/modules/team/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TeamController handles team HTTP requests
type TeamController struct {
	controller.BaseController
	TeamService service.TeamServiceInterface
}

func NewTeamController(svc service.TeamServiceInterface) *TeamController {
	return &TeamController{
		BaseController: controller.NewBaseController(),
		TeamService:    svc,
	}
}

// CreateTeam handles POST /teams
func (c *TeamController) CreateTeam(ctx echo.Context) error {
	var req dto.CreateTeamRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.TeamService.CreateTeam(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Team created successfully")
}

// GetTeam handles GET /teams/:id
func (c *TeamController) GetTeam(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid team ID")
	}

	result, appErr := c.TeamService.GetTeam(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// ListTeams handles GET /teams
func (c *TeamController) ListTeams(ctx echo.Context) error {
	result, appErr := c.TeamService.ListTeams(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
