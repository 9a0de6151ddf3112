package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one line in the event-wide team chat.
type ChatMessage struct {
	ID        string    `db:"id" json:"id"`
	TeamID    uuid.UUID `db:"team_id" json:"team_id"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Joined display columns, populated by list queries.
	TeamName  string `db:"team_name" json:"team_name,omitempty"`
	TeamColor string `db:"team_color" json:"team_color,omitempty"`
}
