package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"roomboard/core/errors"
	"roomboard/core/notifier"
	"roomboard/modules/admin/dto"
	chatentity "roomboard/modules/chat/entity"
	historyentity "roomboard/modules/history/entity"
	historyrepo "roomboard/modules/history/repository"
	roomentity "roomboard/modules/room/entity"
	roomrepo "roomboard/modules/room/repository"
	statsentity "roomboard/modules/stats/entity"
	teamentity "roomboard/modules/team/entity"

	"github.com/google/uuid"
)

// ===================== test doubles =====================

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

type archHistoryRepo struct {
	events     []historyentity.HistoryEvent
	deletedAll bool
}

func (f *archHistoryRepo) Append(ctx context.Context, ev *historyentity.HistoryEvent) (*historyentity.HistoryEvent, error) {
	return ev, nil
}

func (f *archHistoryRepo) List(ctx context.Context, filter historyrepo.Filter) ([]historyentity.HistoryEvent, error) {
	return nil, nil
}

func (f *archHistoryRepo) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]historyentity.HistoryEvent, error) {
	return nil, nil
}

func (f *archHistoryRepo) StampArchived(ctx context.Context, archivedAt time.Time) (int64, error) {
	var n int64
	for i := range f.events {
		if f.events[i].ArchivedDate == nil {
			at := archivedAt
			f.events[i].ArchivedDate = &at
			n++
		}
	}
	return n, nil
}

func (f *archHistoryRepo) ListArchivedSince(ctx context.Context, since time.Time) ([]historyentity.HistoryEvent, error) {
	out := []historyentity.HistoryEvent{}
	for _, ev := range f.events {
		if ev.ArchivedDate != nil && !ev.Timestamp.Before(since) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *archHistoryRepo) DeleteByRoom(ctx context.Context, roomID uuid.UUID) error { return nil }

func (f *archHistoryRepo) DeleteAll(ctx context.Context) error {
	f.deletedAll = true
	f.events = nil
	return nil
}

type archStatsRepo struct {
	created  *statsentity.DailyStats
	existing bool
}

func (f *archStatsRepo) Create(ctx context.Context, stats *statsentity.DailyStats) (*statsentity.DailyStats, error) {
	f.created = stats
	return stats, nil
}

func (f *archStatsRepo) GetByDate(ctx context.Context, date time.Time) (*statsentity.DailyStats, error) {
	return nil, nil
}

func (f *archStatsRepo) ExistsForDate(ctx context.Context, date time.Time) (bool, error) {
	return f.existing, nil
}

type archRoomRepo struct {
	resetCalled bool
}

func (f *archRoomRepo) Create(ctx context.Context, name, slug, description string) (*roomentity.Room, error) {
	return nil, nil
}

func (f *archRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (*roomentity.Room, error) {
	return nil, nil
}

func (f *archRoomRepo) GetByName(ctx context.Context, name string) (*roomentity.Room, error) {
	return nil, nil
}

func (f *archRoomRepo) List(ctx context.Context) ([]roomentity.Room, error) { return nil, nil }

func (f *archRoomRepo) UpdateInfo(ctx context.Context, id uuid.UUID, name, slug, description *string) (*roomentity.Room, error) {
	return nil, nil
}

func (f *archRoomRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *archRoomRepo) FindByTeamAndStatus(ctx context.Context, teamID uuid.UUID, status roomentity.RoomStatus) (*roomentity.Room, error) {
	return nil, nil
}

func (f *archRoomRepo) UpdateStatusIf(ctx context.Context, id uuid.UUID, expected roomentity.RoomStatus, upd roomrepo.StatusUpdate) (*roomentity.Room, error) {
	return nil, nil
}

func (f *archRoomRepo) UpdateStatusForce(ctx context.Context, id uuid.UUID, upd roomrepo.StatusUpdate) (*roomentity.Room, error) {
	return nil, nil
}

func (f *archRoomRepo) ListExpiredReservations(ctx context.Context, now time.Time) ([]roomentity.Room, error) {
	return nil, nil
}

func (f *archRoomRepo) ResetAll(ctx context.Context) error {
	f.resetCalled = true
	return nil
}

func (f *archRoomRepo) CountByStatus(ctx context.Context) (map[roomentity.RoomStatus]int, error) {
	return nil, nil
}

type archTeamRepo struct {
	deletedAll bool
}

func (f *archTeamRepo) Create(ctx context.Context, name, color string) (*teamentity.Team, error) {
	return nil, nil
}

func (f *archTeamRepo) GetByID(ctx context.Context, id uuid.UUID) (*teamentity.Team, error) {
	return nil, nil
}

func (f *archTeamRepo) GetByName(ctx context.Context, name string) (*teamentity.Team, error) {
	return nil, nil
}

func (f *archTeamRepo) ListActive(ctx context.Context) ([]teamentity.Team, error) { return nil, nil }

func (f *archTeamRepo) CountActive(ctx context.Context) (int, error) { return 0, nil }

func (f *archTeamRepo) DeleteAll(ctx context.Context) error {
	f.deletedAll = true
	return nil
}

type archChatRepo struct {
	deletedAll bool
}

func (f *archChatRepo) Insert(ctx context.Context, msg *chatentity.ChatMessage) (*chatentity.ChatMessage, error) {
	return msg, nil
}

func (f *archChatRepo) ListRecent(ctx context.Context, limit int) ([]chatentity.ChatMessage, error) {
	return nil, nil
}

func (f *archChatRepo) DeleteAll(ctx context.Context) error {
	f.deletedAll = true
	return nil
}

// ===================== fixtures =====================

type archiveFixture struct {
	svc     *ArchiveService
	history *archHistoryRepo
	stats   *archStatsRepo
	rooms   *archRoomRepo
	teams   *archTeamRepo
	chat    *archChatRepo
	notif   *notifier.Noop
	clock   *fakeClock
}

func newArchiveFixture() *archiveFixture {
	f := &archiveFixture{
		history: &archHistoryRepo{},
		stats:   &archStatsRepo{},
		rooms:   &archRoomRepo{},
		teams:   &archTeamRepo{},
		chat:    &archChatRepo{},
		notif:   &notifier.Noop{},
		clock:   &fakeClock{now: time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)},
	}
	f.svc = NewArchiveService(f.history, f.stats, f.rooms, f.teams, f.chat, f.notif, f.clock)
	return f
}

func archEvent(clock *fakeClock, roomID, teamID uuid.UUID, action historyentity.ActionType, age time.Duration) historyentity.HistoryEvent {
	return historyentity.HistoryEvent{
		ID:        uuid.New(),
		RoomID:    roomID,
		TeamID:    teamID,
		Action:    action,
		Timestamp: clock.Now().Add(-age),
	}
}

// ===================== tests =====================

func TestArchiveAndReset(t *testing.T) {
	f := newArchiveFixture()
	roomA := uuid.New()
	roomB := uuid.New()
	teamX := uuid.New()
	teamY := uuid.New()

	f.history.events = []historyentity.HistoryEvent{
		archEvent(f.clock, roomA, teamX, historyentity.ActionOccupy, 4*time.Hour),
		archEvent(f.clock, roomA, teamX, historyentity.ActionFree, 3*time.Hour),
		archEvent(f.clock, roomA, teamY, historyentity.ActionOccupy, 2*time.Hour),
		archEvent(f.clock, roomB, teamY, historyentity.ActionReserve, time.Hour),
	}

	resp, appErr := f.svc.ArchiveAndReset(context.Background(), &dto.ArchiveRequest{})
	if appErr != nil {
		t.Fatalf("archive failed: %v", appErr)
	}
	if !resp.Success {
		t.Errorf("expected success")
	}
	if resp.ArchivedCount != 4 {
		t.Errorf("archived count = %d, want 4", resp.ArchivedCount)
	}

	snap := f.stats.created
	if snap == nil {
		t.Fatalf("no daily snapshot written")
	}
	if snap.TotalOccupations != 2 {
		t.Errorf("total occupations = %d, want 2", snap.TotalOccupations)
	}
	if snap.TotalReservations != 1 {
		t.Errorf("total reservations = %d, want 1", snap.TotalReservations)
	}
	if snap.MostPopularRoomID == nil || *snap.MostPopularRoomID != roomA {
		t.Errorf("most popular room must be the one with the most ledger events")
	}
	if snap.TeamActivity[teamX.String()] != 2 || snap.TeamActivity[teamY.String()] != 2 {
		t.Errorf("unexpected team activity: %v", snap.TeamActivity)
	}
	wantDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if !snap.Date.Equal(wantDate) {
		t.Errorf("snapshot date = %v, want midnight of the archive day", snap.Date)
	}

	if !f.rooms.resetCalled {
		t.Errorf("all rooms must be reset to FREE")
	}
	if f.teams.deletedAll || f.history.deletedAll || f.chat.deletedAll {
		t.Errorf("nothing may be deleted when delete_teams is false")
	}
	if f.notif.RoomsChangedCount != 1 {
		t.Errorf("archive must broadcast exactly once, got %d", f.notif.RoomsChangedCount)
	}

	// Every event carries the archive stamp afterwards.
	for _, ev := range f.history.events {
		if ev.ArchivedDate == nil {
			t.Errorf("event %s left unstamped", ev.ID)
		}
	}
}

func TestArchiveTwiceSameDayRejected(t *testing.T) {
	f := newArchiveFixture()
	f.stats.existing = true

	_, appErr := f.svc.ArchiveAndReset(context.Background(), &dto.ArchiveRequest{})
	if appErr == nil || appErr.Code != errors.ErrAlreadyArchived {
		t.Fatalf("expected ALREADY_ARCHIVED, got %v", appErr)
	}
	if f.rooms.resetCalled {
		t.Errorf("a rejected archive must have no side effects")
	}
}

func TestArchiveWithDeleteTeams(t *testing.T) {
	f := newArchiveFixture()
	f.history.events = []historyentity.HistoryEvent{
		archEvent(f.clock, uuid.New(), uuid.New(), historyentity.ActionOccupy, time.Hour),
	}

	resp, appErr := f.svc.ArchiveAndReset(context.Background(), &dto.ArchiveRequest{DeleteTeams: true})
	if appErr != nil {
		t.Fatalf("archive failed: %v", appErr)
	}
	if !f.chat.deletedAll || !f.history.deletedAll || !f.teams.deletedAll {
		t.Errorf("delete_teams must wipe chat, history, and teams")
	}
	if resp.Message != "Archived 1 history records. Teams deleted." {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestArchiveEmptyLedger(t *testing.T) {
	f := newArchiveFixture()

	resp, appErr := f.svc.ArchiveAndReset(context.Background(), &dto.ArchiveRequest{})
	if appErr != nil {
		t.Fatalf("archive failed: %v", appErr)
	}
	if resp.ArchivedCount != 0 {
		t.Errorf("archived count = %d, want 0", resp.ArchivedCount)
	}
	if f.stats.created == nil {
		t.Fatalf("an empty day still writes a snapshot")
	}
	if f.stats.created.MostPopularRoomID != nil {
		t.Errorf("no events means no most popular room")
	}
}
