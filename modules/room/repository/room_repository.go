package repository

import (
	"context"
	"database/sql"
	"time"

	"roomboard/core/database"
	"roomboard/core/logger"
	"roomboard/modules/room/entity"

	"github.com/google/uuid"
)

// RoomRepository handles room database operations
type RoomRepository struct {
	DB database.Database
}

func NewRoomRepository(db database.Database) *RoomRepository {
	return &RoomRepository{DB: db}
}

// StatusUpdate carries the full replacement occupancy state for a room.
// Nil pointer fields are written as NULL, which is how FREE and OFFLINE
// clear the owner and the timestamps.
type StatusUpdate struct {
	Status        entity.RoomStatus
	CurrentTeamID *uuid.UUID
	OccupiedSince *time.Time
	ReservedUntil *time.Time
}

// RoomRepositoryInterface defines the repository contract
type RoomRepositoryInterface interface {
	Create(ctx context.Context, name, slug, description string) (*entity.Room, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	GetByName(ctx context.Context, name string) (*entity.Room, error)
	List(ctx context.Context) ([]entity.Room, error)
	UpdateInfo(ctx context.Context, id uuid.UUID, name, slug, description *string) (*entity.Room, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByTeamAndStatus(ctx context.Context, teamID uuid.UUID, status entity.RoomStatus) (*entity.Room, error)
	UpdateStatusIf(ctx context.Context, id uuid.UUID, expected entity.RoomStatus, upd StatusUpdate) (*entity.Room, error)
	UpdateStatusForce(ctx context.Context, id uuid.UUID, upd StatusUpdate) (*entity.Room, error)
	ListExpiredReservations(ctx context.Context, now time.Time) ([]entity.Room, error)
	ResetAll(ctx context.Context) error
	CountByStatus(ctx context.Context) (map[entity.RoomStatus]int, error)
}

const roomColumns = `
	id, name, slug, description, status, current_team_id,
	occupied_since, reserved_until, created_at, updated_at
`

func (r *RoomRepository) Create(ctx context.Context, name, slug, description string) (*entity.Room, error) {
	query := `
		INSERT INTO rooms (name, slug, description)
		VALUES ($1, $2, $3)
		RETURNING ` + roomColumns

	var created entity.Room
	err := r.DB.GetContext(ctx, &created, query, name, slug, description)
	if err != nil {
		logger.Error("RoomRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	var room entity.Room
	err := r.DB.GetContext(ctx, &room, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RoomRepository:GetByID", err)
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) GetByName(ctx context.Context, name string) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE name = $1`

	var room entity.Room
	err := r.DB.GetContext(ctx, &room, query, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RoomRepository:GetByName", err)
		return nil, err
	}
	return &room, nil
}

// List returns all rooms with the current holder joined in, name ascending.
func (r *RoomRepository) List(ctx context.Context) ([]entity.Room, error) {
	query := `
		SELECT r.id, r.name, r.slug, r.description, r.status, r.current_team_id,
		       r.occupied_since, r.reserved_until, r.created_at, r.updated_at,
		       t.name AS current_team_name, t.color AS current_team_color
		FROM rooms r
		LEFT JOIN teams t ON t.id = r.current_team_id
		ORDER BY r.name ASC
	`

	var rooms []entity.Room
	if err := r.DB.SelectContext(ctx, &rooms, query); err != nil {
		logger.Error("RoomRepository:List", err)
		return nil, err
	}
	return rooms, nil
}

func (r *RoomRepository) UpdateInfo(ctx context.Context, id uuid.UUID, name, slug, description *string) (*entity.Room, error) {
	query := `
		UPDATE rooms
		SET name = COALESCE($2, name),
		    slug = COALESCE($3, slug),
		    description = COALESCE($4, description),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + roomColumns

	var updated entity.Room
	err := r.DB.GetContext(ctx, &updated, query, id, name, slug, description)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RoomRepository:UpdateInfo", err)
		return nil, err
	}
	return &updated, nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id); err != nil {
		logger.Error("RoomRepository:Delete", err)
		return err
	}
	return nil
}

// FindByTeamAndStatus returns one room held by the team in the given
// status, or nil. Backs the one-occupied / one-reserved capacity checks.
func (r *RoomRepository) FindByTeamAndStatus(ctx context.Context, teamID uuid.UUID, status entity.RoomStatus) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE current_team_id = $1 AND status = $2 LIMIT 1`

	var room entity.Room
	err := r.DB.GetContext(ctx, &room, query, teamID, status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RoomRepository:FindByTeamAndStatus", err)
		return nil, err
	}
	return &room, nil
}

// UpdateStatusIf is the atomic compare-and-update every occupancy mutation
// goes through: the write only lands when the row still holds the expected
// status. A nil result with nil error means the precondition failed and the
// caller lost the race.
func (r *RoomRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, expected entity.RoomStatus, upd StatusUpdate) (*entity.Room, error) {
	query := `
		UPDATE rooms
		SET status = $3,
		    current_team_id = $4,
		    occupied_since = $5,
		    reserved_until = $6,
		    updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + roomColumns

	var updated entity.Room
	err := r.DB.GetContext(ctx, &updated, query,
		id, expected, upd.Status, upd.CurrentTeamID, upd.OccupiedSince, upd.ReservedUntil)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RoomRepository:UpdateStatusIf", err)
		return nil, err
	}
	return &updated, nil
}

// UpdateStatusForce writes the occupancy state without a precondition.
// Admin overrides always win races.
func (r *RoomRepository) UpdateStatusForce(ctx context.Context, id uuid.UUID, upd StatusUpdate) (*entity.Room, error) {
	query := `
		UPDATE rooms
		SET status = $2,
		    current_team_id = $3,
		    occupied_since = $4,
		    reserved_until = $5,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + roomColumns

	var updated entity.Room
	err := r.DB.GetContext(ctx, &updated, query,
		id, upd.Status, upd.CurrentTeamID, upd.OccupiedSince, upd.ReservedUntil)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RoomRepository:UpdateStatusForce", err)
		return nil, err
	}
	return &updated, nil
}

func (r *RoomRepository) ListExpiredReservations(ctx context.Context, now time.Time) ([]entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE status = $1 AND reserved_until <= $2`

	var rooms []entity.Room
	if err := r.DB.SelectContext(ctx, &rooms, query, entity.StatusReserved, now); err != nil {
		logger.Error("RoomRepository:ListExpiredReservations", err)
		return nil, err
	}
	return rooms, nil
}

// ResetAll forces every room back to FREE, including OFFLINE ones.
func (r *RoomRepository) ResetAll(ctx context.Context) error {
	query := `
		UPDATE rooms
		SET status = $1,
		    current_team_id = NULL,
		    occupied_since = NULL,
		    reserved_until = NULL,
		    updated_at = NOW()
	`
	if err := r.DB.ExecContext(ctx, query, entity.StatusFree); err != nil {
		logger.Error("RoomRepository:ResetAll", err)
		return err
	}
	return nil
}

func (r *RoomRepository) CountByStatus(ctx context.Context) (map[entity.RoomStatus]int, error) {
	rows := []struct {
		Status entity.RoomStatus `db:"status"`
		Count  int               `db:"count"`
	}{}

	query := `SELECT status, COUNT(*) AS count FROM rooms GROUP BY status`
	if err := r.DB.SelectContext(ctx, &rows, query); err != nil {
		logger.Error("RoomRepository:CountByStatus", err)
		return nil, err
	}

	counts := make(map[entity.RoomStatus]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
