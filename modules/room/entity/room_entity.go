package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoomStatus is the state of a room in the occupancy state machine.
type RoomStatus string

const (
	StatusFree     RoomStatus = "FREE"
	StatusOccupied RoomStatus = "OCCUPIED"
	StatusReserved RoomStatus = "RESERVED"
	StatusOffline  RoomStatus = "OFFLINE"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case StatusFree, StatusOccupied, StatusReserved, StatusOffline:
		return true
	}
	return false
}

// Room is a bookable physical unit. Field invariants:
//   - CurrentTeamID is set iff status is OCCUPIED or RESERVED
//   - OccupiedSince is set only while OCCUPIED
//   - ReservedUntil is set only while RESERVED and is the absolute expiry deadline
type Room struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	Slug          string     `db:"slug" json:"slug"`
	Description   string     `db:"description" json:"description"`
	Status        RoomStatus `db:"status" json:"status"`
	CurrentTeamID *uuid.UUID `db:"current_team_id" json:"current_team_id,omitempty"`
	OccupiedSince *time.Time `db:"occupied_since" json:"occupied_since,omitempty"`
	ReservedUntil *time.Time `db:"reserved_until" json:"reserved_until,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`

	// Joined display columns, populated by list queries.
	CurrentTeamName  *string `db:"current_team_name" json:"current_team_name,omitempty"`
	CurrentTeamColor *string `db:"current_team_color" json:"current_team_color,omitempty"`
}
