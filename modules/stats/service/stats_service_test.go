package service

import (
	"context"
	"testing"
	"time"

	"roomboard/core/errors"
	historyentity "roomboard/modules/history/entity"
	historyrepo "roomboard/modules/history/repository"
	roomentity "roomboard/modules/room/entity"
	roomrepo "roomboard/modules/room/repository"
	statsentity "roomboard/modules/stats/entity"
	teamentity "roomboard/modules/team/entity"

	"github.com/google/uuid"
)

// ===================== test doubles =====================

type stubRoomRepo struct {
	rooms  map[uuid.UUID]*roomentity.Room
	counts map[roomentity.RoomStatus]int
}

func (s *stubRoomRepo) Create(ctx context.Context, name, slug, description string) (*roomentity.Room, error) {
	return nil, nil
}

func (s *stubRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (*roomentity.Room, error) {
	room, ok := s.rooms[id]
	if !ok {
		return nil, nil
	}
	return room, nil
}

func (s *stubRoomRepo) GetByName(ctx context.Context, name string) (*roomentity.Room, error) {
	return nil, nil
}

func (s *stubRoomRepo) List(ctx context.Context) ([]roomentity.Room, error) { return nil, nil }

func (s *stubRoomRepo) UpdateInfo(ctx context.Context, id uuid.UUID, name, slug, description *string) (*roomentity.Room, error) {
	return nil, nil
}

func (s *stubRoomRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (s *stubRoomRepo) FindByTeamAndStatus(ctx context.Context, teamID uuid.UUID, status roomentity.RoomStatus) (*roomentity.Room, error) {
	return nil, nil
}

func (s *stubRoomRepo) UpdateStatusIf(ctx context.Context, id uuid.UUID, expected roomentity.RoomStatus, upd roomrepo.StatusUpdate) (*roomentity.Room, error) {
	return nil, nil
}

func (s *stubRoomRepo) UpdateStatusForce(ctx context.Context, id uuid.UUID, upd roomrepo.StatusUpdate) (*roomentity.Room, error) {
	return nil, nil
}

func (s *stubRoomRepo) ListExpiredReservations(ctx context.Context, now time.Time) ([]roomentity.Room, error) {
	return nil, nil
}

func (s *stubRoomRepo) ResetAll(ctx context.Context) error { return nil }

func (s *stubRoomRepo) CountByStatus(ctx context.Context) (map[roomentity.RoomStatus]int, error) {
	return s.counts, nil
}

type stubTeamRepo struct {
	active int
}

func (s *stubTeamRepo) Create(ctx context.Context, name, color string) (*teamentity.Team, error) {
	return nil, nil
}

func (s *stubTeamRepo) GetByID(ctx context.Context, id uuid.UUID) (*teamentity.Team, error) {
	return nil, nil
}

func (s *stubTeamRepo) GetByName(ctx context.Context, name string) (*teamentity.Team, error) {
	return nil, nil
}

func (s *stubTeamRepo) ListActive(ctx context.Context) ([]teamentity.Team, error) { return nil, nil }

func (s *stubTeamRepo) CountActive(ctx context.Context) (int, error) { return s.active, nil }

func (s *stubTeamRepo) DeleteAll(ctx context.Context) error { return nil }

type stubHistoryRepo struct {
	events []historyentity.HistoryEvent
}

func (s *stubHistoryRepo) Append(ctx context.Context, ev *historyentity.HistoryEvent) (*historyentity.HistoryEvent, error) {
	return ev, nil
}

func (s *stubHistoryRepo) List(ctx context.Context, filter historyrepo.Filter) ([]historyentity.HistoryEvent, error) {
	return s.events, nil
}

func (s *stubHistoryRepo) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]historyentity.HistoryEvent, error) {
	return s.events, nil
}

func (s *stubHistoryRepo) StampArchived(ctx context.Context, archivedAt time.Time) (int64, error) {
	return 0, nil
}

func (s *stubHistoryRepo) ListArchivedSince(ctx context.Context, since time.Time) ([]historyentity.HistoryEvent, error) {
	return nil, nil
}

func (s *stubHistoryRepo) DeleteByRoom(ctx context.Context, roomID uuid.UUID) error { return nil }

func (s *stubHistoryRepo) DeleteAll(ctx context.Context) error { return nil }

type stubStatsRepo struct {
	byDate map[string]*statsentity.DailyStats
}

func (s *stubStatsRepo) Create(ctx context.Context, stats *statsentity.DailyStats) (*statsentity.DailyStats, error) {
	return stats, nil
}

func (s *stubStatsRepo) GetByDate(ctx context.Context, date time.Time) (*statsentity.DailyStats, error) {
	return s.byDate[date.Format("2006-01-02")], nil
}

func (s *stubStatsRepo) ExistsForDate(ctx context.Context, date time.Time) (bool, error) {
	return s.byDate[date.Format("2006-01-02")] != nil, nil
}

// ===================== tests =====================

func TestCurrentStats(t *testing.T) {
	svc := NewStatsService(
		&stubRoomRepo{counts: map[roomentity.RoomStatus]int{
			roomentity.StatusOccupied: 2,
			roomentity.StatusReserved: 1,
			roomentity.StatusFree:     3,
			roomentity.StatusOffline:  1,
		}},
		&stubTeamRepo{active: 4},
		&stubHistoryRepo{},
		&stubStatsRepo{},
		3,
	)

	resp, appErr := svc.CurrentStats(context.Background())
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.TotalRooms != 7 {
		t.Errorf("total rooms = %d, want 7", resp.TotalRooms)
	}
	if resp.OccupiedCount != 2 || resp.ReservedCount != 1 || resp.FreeCount != 3 || resp.OfflineCount != 1 {
		t.Errorf("unexpected per status counts: %+v", resp)
	}
	if resp.ActiveTeams != 4 {
		t.Errorf("active teams = %d, want 4", resp.ActiveTeams)
	}
}

func TestRoomVisitsUnknownRoom(t *testing.T) {
	svc := NewStatsService(&stubRoomRepo{rooms: map[uuid.UUID]*roomentity.Room{}}, &stubTeamRepo{}, &stubHistoryRepo{}, &stubStatsRepo{}, 3)

	_, appErr := svc.RoomVisits(context.Background(), uuid.New())
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", appErr)
	}
}

func TestRoomStatsAveragesVisitDurations(t *testing.T) {
	roomID := uuid.New()
	team := uuid.New()
	events := []historyentity.HistoryEvent{
		event(team, historyentity.ActionOccupy, 0),
		event(team, historyentity.ActionFree, 10*time.Minute),
		event(team, historyentity.ActionOccupy, 20*time.Minute),
		event(team, historyentity.ActionFree, 25*time.Minute),
	}

	svc := NewStatsService(
		&stubRoomRepo{rooms: map[uuid.UUID]*roomentity.Room{roomID: {ID: roomID, Name: "Alpha"}}},
		&stubTeamRepo{},
		&stubHistoryRepo{events: events},
		&stubStatsRepo{},
		3,
	)

	resp, appErr := svc.RoomStats(context.Background(), roomID)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.TotalVisits != 2 {
		t.Errorf("total visits = %d, want 2", resp.TotalVisits)
	}
	// (10 + 5) / 2 rounds to 8.
	if resp.AverageOccupationMinutes != 8 {
		t.Errorf("average = %d, want 8", resp.AverageOccupationMinutes)
	}
}

func TestDailyStatsByDate(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	stats := &statsentity.DailyStats{
		ID:               uuid.New(),
		Date:             date,
		TotalOccupations: 5,
		TeamActivity:     statsentity.TeamActivity{"x": 5},
	}
	svc := NewStatsService(&stubRoomRepo{}, &stubTeamRepo{}, &stubHistoryRepo{},
		&stubStatsRepo{byDate: map[string]*statsentity.DailyStats{"2025-06-01": stats}}, 3)

	resp, appErr := svc.DailyStatsByDate(context.Background(), date)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.TotalOccupations != 5 {
		t.Errorf("total occupations = %d, want 5", resp.TotalOccupations)
	}

	_, appErr = svc.DailyStatsByDate(context.Background(), date.AddDate(0, 0, 1))
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("expected NOT_FOUND for a day with no snapshot, got %v", appErr)
	}
}
