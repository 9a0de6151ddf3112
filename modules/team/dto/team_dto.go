package dto

import (
	"time"

	"roomboard/modules/team/entity"
)

// CreateTeamRequest is the team signup payload.
type CreateTeamRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"required"` // #RRGGBB
}

type TeamResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Color      string    `json:"color"`
	IsArchived bool      `json:"is_archived"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewTeamResponse(t *entity.Team) *TeamResponse {
	return &TeamResponse{
		ID:         t.ID.String(),
		Name:       t.Name,
		Color:      t.Color,
		IsArchived: t.IsArchived,
		CreatedAt:  t.CreatedAt,
	}
}

func NewTeamResponseList(teams []entity.Team) []TeamResponse {
	out := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		out = append(out, *NewTeamResponse(&teams[i]))
	}
	return out
}
