package service

import (
	"context"
	"regexp"
	"strings"

	"roomboard/core/errors"
	"roomboard/core/logger"
	"roomboard/modules/team/dto"
	"roomboard/modules/team/repository"

	"github.com/google/uuid"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type TeamServiceInterface interface {
	CreateTeam(ctx context.Context, req *dto.CreateTeamRequest) (*dto.TeamResponse, *errors.AppError)
	GetTeam(ctx context.Context, id uuid.UUID) (*dto.TeamResponse, *errors.AppError)
	ListTeams(ctx context.Context) ([]dto.TeamResponse, *errors.AppError)
}

type TeamService struct {
	teamRepo repository.TeamRepositoryInterface
}

func NewTeamService(teamRepo repository.TeamRepositoryInterface) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

// CreateTeam registers a new team with a unique name and a #RRGGBB color.
func (s *TeamService) CreateTeam(ctx context.Context, req *dto.CreateTeamRequest) (*dto.TeamResponse, *errors.AppError) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Team name is required", nil)
	}
	if !hexColorPattern.MatchString(req.Color) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid color format (use #RRGGBB)", nil)
	}

	existing, err := s.teamRepo.GetByName(ctx, name)
	if err != nil {
		logger.Error("TeamService:CreateTeam:GetByName", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create team", nil)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "A team with this name already exists", nil)
	}

	team, err := s.teamRepo.Create(ctx, name, req.Color)
	if err != nil {
		logger.Error("TeamService:CreateTeam:Create", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create team", nil)
	}

	logger.Info("TeamService:CreateTeam:Success", "team_id", team.ID, "name", team.Name)
	return dto.NewTeamResponse(team), nil
}

func (s *TeamService) GetTeam(ctx context.Context, id uuid.UUID) (*dto.TeamResponse, *errors.AppError) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("TeamService:GetTeam", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load team", nil)
	}
	if team == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Team not found", nil)
	}
	return dto.NewTeamResponse(team), nil
}

// ListTeams returns non-archived teams, newest first.
func (s *TeamService) ListTeams(ctx context.Context) ([]dto.TeamResponse, *errors.AppError) {
	teams, err := s.teamRepo.ListActive(ctx)
	if err != nil {
		logger.Error("TeamService:ListTeams", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list teams", nil)
	}
	return dto.NewTeamResponseList(teams), nil
}
