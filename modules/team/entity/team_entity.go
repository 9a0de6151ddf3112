package entity

import (
	"time"

	"github.com/google/uuid"
)

// Team is a group that can hold rooms and appears in history and chat.
// Archived teams stay in the table so old history rows keep resolving.
type Team struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Color      string    `db:"color" json:"color"`
	IsArchived bool      `db:"is_archived" json:"is_archived"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
