package dto

import (
	"time"

	"roomboard/modules/room/entity"

	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

// OccupancyRequest identifies the acting team for occupy/reserve/free/cancel.
type OccupancyRequest struct {
	TeamID uuid.UUID `json:"team_id" validate:"required"`
}

type CreateRoomRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type UpdateRoomRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// AdminSetStatusRequest is the unconditional override payload. TeamID is
// only meaningful for OCCUPIED and RESERVED.
type AdminSetStatusRequest struct {
	Status string     `json:"status" validate:"required"`
	TeamID *uuid.UUID `json:"team_id"`
}

// ===================== Response DTOs =====================

type RoomResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Slug             string     `json:"slug"`
	Description      string     `json:"description"`
	Status           string     `json:"status"`
	CurrentTeamID    *string    `json:"current_team_id,omitempty"`
	CurrentTeamName  *string    `json:"current_team_name,omitempty"`
	CurrentTeamColor *string    `json:"current_team_color,omitempty"`
	OccupiedSince    *time.Time `json:"occupied_since,omitempty"`
	ReservedUntil    *time.Time `json:"reserved_until,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func NewRoomResponse(r *entity.Room) *RoomResponse {
	resp := &RoomResponse{
		ID:               r.ID.String(),
		Name:             r.Name,
		Slug:             r.Slug,
		Description:      r.Description,
		Status:           string(r.Status),
		CurrentTeamName:  r.CurrentTeamName,
		CurrentTeamColor: r.CurrentTeamColor,
		OccupiedSince:    r.OccupiedSince,
		ReservedUntil:    r.ReservedUntil,
		UpdatedAt:        r.UpdatedAt,
	}
	if r.CurrentTeamID != nil {
		id := r.CurrentTeamID.String()
		resp.CurrentTeamID = &id
	}
	return resp
}

func NewRoomResponseList(rooms []entity.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for i := range rooms {
		out = append(out, *NewRoomResponse(&rooms[i]))
	}
	return out
}
