package repository

import (
	"context"
	"database/sql"

	"roomboard/core/database"
	"roomboard/core/logger"
	"roomboard/modules/admin/entity"
)

// AdminRepository handles admin account database operations
type AdminRepository struct {
	DB database.Database
}

func NewAdminRepository(db database.Database) *AdminRepository {
	return &AdminRepository{DB: db}
}

// AdminRepositoryInterface defines the repository contract
type AdminRepositoryInterface interface {
	Create(ctx context.Context, username, passwordHash string) (*entity.Admin, error)
	GetByUsername(ctx context.Context, username string) (*entity.Admin, error)
	Count(ctx context.Context) (int, error)
}

func (r *AdminRepository) Create(ctx context.Context, username, passwordHash string) (*entity.Admin, error) {
	query := `
		INSERT INTO admins (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, created_at
	`

	var created entity.Admin
	err := r.DB.GetContext(ctx, &created, query, username, passwordHash)
	if err != nil {
		logger.Error("AdminRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	query := `SELECT id, username, password_hash, created_at FROM admins WHERE username = $1`

	var admin entity.Admin
	err := r.DB.GetContext(ctx, &admin, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AdminRepository:GetByUsername", err)
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM admins`); err != nil {
		logger.Error("AdminRepository:Count", err)
		return 0, err
	}
	return count, nil
}
