package entity

import (
	"time"

	roomentity "roomboard/modules/room/entity"

	"github.com/google/uuid"
)

// ActionType tags the kind of state transition a history event records.
type ActionType string

const (
	ActionOccupy            ActionType = "OCCUPY"
	ActionReserve           ActionType = "RESERVE"
	ActionFree              ActionType = "FREE"
	ActionCancelReservation ActionType = "CANCEL_RESERVATION"
	ActionAdminOverride     ActionType = "ADMIN_OVERRIDE"
)

func (a ActionType) Valid() bool {
	switch a {
	case ActionOccupy, ActionReserve, ActionFree, ActionCancelReservation, ActionAdminOverride:
		return true
	}
	return false
}

// HistoryEvent is one immutable audit record of a room state transition.
// Rows are only ever mutated to stamp ArchivedDate.
type HistoryEvent struct {
	ID             uuid.UUID              `db:"id" json:"id"`
	RoomID         uuid.UUID              `db:"room_id" json:"room_id"`
	TeamID         uuid.UUID              `db:"team_id" json:"team_id"`
	Action         ActionType             `db:"action" json:"action"`
	PreviousStatus *roomentity.RoomStatus `db:"previous_status" json:"previous_status,omitempty"`
	NewStatus      roomentity.RoomStatus  `db:"new_status" json:"new_status"`
	Timestamp      time.Time              `db:"timestamp" json:"timestamp"`
	ArchivedDate   *time.Time             `db:"archived_date" json:"archived_date,omitempty"`

	// Joined display columns, populated by list queries.
	RoomName  string `db:"room_name" json:"room_name,omitempty"`
	TeamName  string `db:"team_name" json:"team_name,omitempty"`
	TeamColor string `db:"team_color" json:"team_color,omitempty"`
}
