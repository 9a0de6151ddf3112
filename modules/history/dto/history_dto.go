package dto

import (
	"time"

	"roomboard/modules/history/entity"

	"github.com/google/uuid"
)

// HistoryFilterRequest narrows the ledger listing; all fields optional.
type HistoryFilterRequest struct {
	RoomID *uuid.UUID
	TeamID *uuid.UUID
	Action *string
}

type HistoryEventResponse struct {
	ID             string     `json:"id"`
	RoomID         string     `json:"room_id"`
	RoomName       string     `json:"room_name"`
	TeamID         string     `json:"team_id"`
	TeamName       string     `json:"team_name"`
	TeamColor      string     `json:"team_color"`
	Action         string     `json:"action"`
	PreviousStatus *string    `json:"previous_status,omitempty"`
	NewStatus      string     `json:"new_status"`
	Timestamp      time.Time  `json:"timestamp"`
	ArchivedDate   *time.Time `json:"archived_date,omitempty"`
}

func NewHistoryEventResponse(ev *entity.HistoryEvent) *HistoryEventResponse {
	resp := &HistoryEventResponse{
		ID:           ev.ID.String(),
		RoomID:       ev.RoomID.String(),
		RoomName:     ev.RoomName,
		TeamID:       ev.TeamID.String(),
		TeamName:     ev.TeamName,
		TeamColor:    ev.TeamColor,
		Action:       string(ev.Action),
		NewStatus:    string(ev.NewStatus),
		Timestamp:    ev.Timestamp,
		ArchivedDate: ev.ArchivedDate,
	}
	if ev.PreviousStatus != nil {
		prev := string(*ev.PreviousStatus)
		resp.PreviousStatus = &prev
	}
	return resp
}

func NewHistoryEventResponseList(events []entity.HistoryEvent) []HistoryEventResponse {
	out := make([]HistoryEventResponse, 0, len(events))
	for i := range events {
		out = append(out, *NewHistoryEventResponse(&events[i]))
	}
	return out
}
