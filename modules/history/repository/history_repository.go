package repository

import (
	"context"
	"fmt"
	"time"

	"roomboard/core/database"
	"roomboard/core/logger"
	"roomboard/modules/history/entity"

	"github.com/google/uuid"
)

// HistoryRepository handles the append-only audit ledger
type HistoryRepository struct {
	DB database.Database
}

func NewHistoryRepository(db database.Database) *HistoryRepository {
	return &HistoryRepository{DB: db}
}

// Filter narrows a ledger query; nil fields match everything.
type Filter struct {
	RoomID *uuid.UUID
	TeamID *uuid.UUID
	Action *entity.ActionType
	Limit  int
}

// HistoryRepositoryInterface defines the repository contract
type HistoryRepositoryInterface interface {
	Append(ctx context.Context, ev *entity.HistoryEvent) (*entity.HistoryEvent, error)
	List(ctx context.Context, filter Filter) ([]entity.HistoryEvent, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]entity.HistoryEvent, error)
	StampArchived(ctx context.Context, archivedAt time.Time) (int64, error)
	ListArchivedSince(ctx context.Context, since time.Time) ([]entity.HistoryEvent, error)
	DeleteByRoom(ctx context.Context, roomID uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

const joinedColumns = `
	h.id, h.room_id, h.team_id, h.action, h.previous_status, h.new_status,
	h.timestamp, h.archived_date,
	r.name AS room_name, t.name AS team_name, t.color AS team_color
`

func (r *HistoryRepository) Append(ctx context.Context, ev *entity.HistoryEvent) (*entity.HistoryEvent, error) {
	query := `
		INSERT INTO history (room_id, team_id, action, previous_status, new_status, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, room_id, team_id, action, previous_status, new_status, timestamp, archived_date
	`

	var created entity.HistoryEvent
	err := r.DB.GetContext(ctx, &created, query,
		ev.RoomID, ev.TeamID, ev.Action, ev.PreviousStatus, ev.NewStatus, ev.Timestamp)
	if err != nil {
		logger.Error("HistoryRepository:Append", err)
		return nil, err
	}
	return &created, nil
}

// List returns unarchived events, newest first.
func (r *HistoryRepository) List(ctx context.Context, filter Filter) ([]entity.HistoryEvent, error) {
	query := `
		SELECT ` + joinedColumns + `
		FROM history h
		JOIN rooms r ON r.id = h.room_id
		JOIN teams t ON t.id = h.team_id
		WHERE h.archived_date IS NULL
	`
	args := []any{}

	if filter.RoomID != nil {
		args = append(args, *filter.RoomID)
		query += fmt.Sprintf(" AND h.room_id = $%d", len(args))
	}
	if filter.TeamID != nil {
		args = append(args, *filter.TeamID)
		query += fmt.Sprintf(" AND h.team_id = $%d", len(args))
	}
	if filter.Action != nil {
		args = append(args, *filter.Action)
		query += fmt.Sprintf(" AND h.action = $%d", len(args))
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY h.timestamp DESC LIMIT $%d", len(args))

	var events []entity.HistoryEvent
	if err := r.DB.SelectContext(ctx, &events, query, args...); err != nil {
		logger.Error("HistoryRepository:List", err)
		return nil, err
	}
	return events, nil
}

// ListByRoom returns all unarchived events for one room in chronological
// order, the input for visit reconstruction.
func (r *HistoryRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]entity.HistoryEvent, error) {
	query := `
		SELECT ` + joinedColumns + `
		FROM history h
		JOIN rooms r ON r.id = h.room_id
		JOIN teams t ON t.id = h.team_id
		WHERE h.archived_date IS NULL AND h.room_id = $1
		ORDER BY h.timestamp ASC
	`

	var events []entity.HistoryEvent
	if err := r.DB.SelectContext(ctx, &events, query, roomID); err != nil {
		logger.Error("HistoryRepository:ListByRoom", err)
		return nil, err
	}
	return events, nil
}

// StampArchived marks every unarchived event and reports how many rows it
// touched.
func (r *HistoryRepository) StampArchived(ctx context.Context, archivedAt time.Time) (int64, error) {
	res, err := r.DB.ExecResultContext(ctx,
		`UPDATE history SET archived_date = $1 WHERE archived_date IS NULL`, archivedAt)
	if err != nil {
		logger.Error("HistoryRepository:StampArchived", err)
		return 0, err
	}
	return res.RowsAffected()
}

// ListArchivedSince returns archived events whose timestamp falls at or
// after the given instant (used to aggregate "today" after stamping).
func (r *HistoryRepository) ListArchivedSince(ctx context.Context, since time.Time) ([]entity.HistoryEvent, error) {
	query := `
		SELECT id, room_id, team_id, action, previous_status, new_status, timestamp, archived_date
		FROM history
		WHERE archived_date IS NOT NULL AND timestamp >= $1
	`

	var events []entity.HistoryEvent
	if err := r.DB.SelectContext(ctx, &events, query, since); err != nil {
		logger.Error("HistoryRepository:ListArchivedSince", err)
		return nil, err
	}
	return events, nil
}

func (r *HistoryRepository) DeleteByRoom(ctx context.Context, roomID uuid.UUID) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM history WHERE room_id = $1`, roomID); err != nil {
		logger.Error("HistoryRepository:DeleteByRoom", err)
		return err
	}
	return nil
}

func (r *HistoryRepository) DeleteAll(ctx context.Context) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM history`); err != nil {
		logger.Error("HistoryRepository:DeleteAll", err)
		return err
	}
	return nil
}
