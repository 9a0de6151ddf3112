package repository

import (
	"context"
	"database/sql"
	"time"

	"roomboard/core/database"
	"roomboard/core/logger"
	"roomboard/modules/stats/entity"
)

// StatsRepository handles daily stats database operations
type StatsRepository struct {
	DB database.Database
}

func NewStatsRepository(db database.Database) *StatsRepository {
	return &StatsRepository{DB: db}
}

// StatsRepositoryInterface defines the repository contract
type StatsRepositoryInterface interface {
	Create(ctx context.Context, stats *entity.DailyStats) (*entity.DailyStats, error)
	GetByDate(ctx context.Context, date time.Time) (*entity.DailyStats, error)
	ExistsForDate(ctx context.Context, date time.Time) (bool, error)
}

func (r *StatsRepository) Create(ctx context.Context, stats *entity.DailyStats) (*entity.DailyStats, error) {
	query := `
		INSERT INTO daily_stats (date, total_occupations, total_reservations, most_popular_room, team_activity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, date, total_occupations, total_reservations, most_popular_room, team_activity, created_at
	`

	var created entity.DailyStats
	err := r.DB.GetContext(ctx, &created, query,
		stats.Date, stats.TotalOccupations, stats.TotalReservations, stats.MostPopularRoomID, stats.TeamActivity)
	if err != nil {
		logger.Error("StatsRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *StatsRepository) GetByDate(ctx context.Context, date time.Time) (*entity.DailyStats, error) {
	query := `
		SELECT id, date, total_occupations, total_reservations, most_popular_room, team_activity, created_at
		FROM daily_stats
		WHERE date = $1::date
	`

	var stats entity.DailyStats
	err := r.DB.GetContext(ctx, &stats, query, date)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("StatsRepository:GetByDate", err)
		return nil, err
	}
	return &stats, nil
}

func (r *StatsRepository) ExistsForDate(ctx context.Context, date time.Time) (bool, error) {
	var exists bool
	err := r.DB.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM daily_stats WHERE date = $1::date)`, date)
	if err != nil {
		logger.Error("StatsRepository:ExistsForDate", err)
		return false, err
	}
	return exists, nil
}
