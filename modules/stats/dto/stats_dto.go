package dto

import (
	"time"

	"roomboard/modules/stats/entity"
)

type CurrentStatsResponse struct {
	OccupiedCount int `json:"occupied_count"`
	ReservedCount int `json:"reserved_count"`
	FreeCount     int `json:"free_count"`
	OfflineCount  int `json:"offline_count"`
	TotalRooms    int `json:"total_rooms"`
	ActiveTeams   int `json:"active_teams"`
}

// VisitResponse is one reconstructed occupy-to-free interval.
type VisitResponse struct {
	ID              string    `json:"id"` // id of the opening OCCUPY event
	TeamID          string    `json:"team_id"`
	TeamName        string    `json:"team_name,omitempty"`
	TeamColor       string    `json:"team_color,omitempty"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
}

type RoomStatsResponse struct {
	TotalVisits              int `json:"total_visits"`
	AverageOccupationMinutes int `json:"average_occupation_minutes"`
}

type DailyStatsResponse struct {
	ID                string         `json:"id"`
	Date              time.Time      `json:"date"`
	TotalOccupations  int            `json:"total_occupations"`
	TotalReservations int            `json:"total_reservations"`
	MostPopularRoomID *string        `json:"most_popular_room_id,omitempty"`
	TeamActivity      map[string]int `json:"team_activity"`
}

func NewDailyStatsResponse(s *entity.DailyStats) *DailyStatsResponse {
	resp := &DailyStatsResponse{
		ID:                s.ID.String(),
		Date:              s.Date,
		TotalOccupations:  s.TotalOccupations,
		TotalReservations: s.TotalReservations,
		TeamActivity:      s.TeamActivity,
	}
	if s.MostPopularRoomID != nil {
		id := s.MostPopularRoomID.String()
		resp.MostPopularRoomID = &id
	}
	return resp
}
