package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TeamActivity maps team id to the number of ledger events the team
// produced that day. Stored as JSONB.
type TeamActivity map[string]int

func (a TeamActivity) Value() (driver.Value, error) {
	if a == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(a)
}

func (a *TeamActivity) Scan(src any) error {
	if src == nil {
		*a = TeamActivity{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("team activity: unsupported scan type %T", src)
	}
	return json.Unmarshal(b, a)
}

// DailyStats is the immutable daily snapshot written once per archive
// operation.
type DailyStats struct {
	ID                uuid.UUID    `db:"id" json:"id"`
	Date              time.Time    `db:"date" json:"date"`
	TotalOccupations  int          `db:"total_occupations" json:"total_occupations"`
	TotalReservations int          `db:"total_reservations" json:"total_reservations"`
	MostPopularRoomID *uuid.UUID   `db:"most_popular_room" json:"most_popular_room_id,omitempty"`
	TeamActivity      TeamActivity `db:"team_activity" json:"team_activity"`
	CreatedAt         time.Time    `db:"created_at" json:"created_at"`
}
