package repository

import (
	"context"
	"database/sql"

	"roomboard/core/database"
	"roomboard/core/logger"
	"roomboard/modules/team/entity"

	"github.com/google/uuid"
)

// TeamRepository handles team database operations
type TeamRepository struct {
	DB database.Database
}

func NewTeamRepository(db database.Database) *TeamRepository {
	return &TeamRepository{DB: db}
}

// TeamRepositoryInterface defines the repository contract
type TeamRepositoryInterface interface {
	Create(ctx context.Context, name, color string) (*entity.Team, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Team, error)
	GetByName(ctx context.Context, name string) (*entity.Team, error)
	ListActive(ctx context.Context) ([]entity.Team, error)
	CountActive(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

func (r *TeamRepository) Create(ctx context.Context, name, color string) (*entity.Team, error) {
	query := `
		INSERT INTO teams (name, color)
		VALUES ($1, $2)
		RETURNING id, name, color, is_archived, created_at
	`

	var created entity.Team
	err := r.DB.GetContext(ctx, &created, query, name, color)
	if err != nil {
		logger.Error("TeamRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Team, error) {
	query := `SELECT id, name, color, is_archived, created_at FROM teams WHERE id = $1`

	var team entity.Team
	err := r.DB.GetContext(ctx, &team, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TeamRepository:GetByID", err)
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (*entity.Team, error) {
	query := `SELECT id, name, color, is_archived, created_at FROM teams WHERE name = $1`

	var team entity.Team
	err := r.DB.GetContext(ctx, &team, query, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TeamRepository:GetByName", err)
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepository) ListActive(ctx context.Context) ([]entity.Team, error) {
	query := `
		SELECT id, name, color, is_archived, created_at
		FROM teams
		WHERE is_archived = FALSE
		ORDER BY created_at DESC
	`

	var teams []entity.Team
	err := r.DB.SelectContext(ctx, &teams, query)
	if err != nil {
		logger.Error("TeamRepository:ListActive", err)
		return nil, err
	}
	return teams, nil
}

func (r *TeamRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM teams WHERE is_archived = FALSE`)
	if err != nil {
		logger.Error("TeamRepository:CountActive", err)
		return 0, err
	}
	return count, nil
}

func (r *TeamRepository) DeleteAll(ctx context.Context) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM teams`); err != nil {
		logger.Error("TeamRepository:DeleteAll", err)
		return err
	}
	return nil
}
