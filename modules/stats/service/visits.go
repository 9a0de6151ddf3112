package service

import (
	"math"
	"sort"

	historyentity "roomboard/modules/history/entity"
	"roomboard/modules/stats/dto"
)

// reconstructVisits pairs each OCCUPY event with the first FREE event of
// the same team that is strictly later, then drops pairs shorter than
// minMinutes (accidental taps). Input must be in chronological order.
// This is a derived view recomputed on every query, never stored.
func reconstructVisits(events []historyentity.HistoryEvent, minMinutes int) []dto.VisitResponse {
	visits := []dto.VisitResponse{}

	for i := range events {
		occupy := &events[i]
		if occupy.Action != historyentity.ActionOccupy {
			continue
		}

		for j := i + 1; j < len(events); j++ {
			free := &events[j]
			if free.Action != historyentity.ActionFree ||
				free.TeamID != occupy.TeamID ||
				!free.Timestamp.After(occupy.Timestamp) {
				continue
			}

			minutes := int(math.Round(free.Timestamp.Sub(occupy.Timestamp).Minutes()))
			if minutes >= minMinutes {
				visits = append(visits, dto.VisitResponse{
					ID:              occupy.ID.String(),
					TeamID:          occupy.TeamID.String(),
					TeamName:        occupy.TeamName,
					TeamColor:       occupy.TeamColor,
					StartTime:       occupy.Timestamp,
					EndTime:         free.Timestamp,
					DurationMinutes: minutes,
				})
			}
			break
		}
	}

	sort.Slice(visits, func(i, j int) bool {
		return visits[i].StartTime.After(visits[j].StartTime)
	})
	return visits
}
