package service

import (
	"context"
	"testing"
	"time"

	historyentity "roomboard/modules/history/entity"
	"roomboard/modules/room/entity"
)

func TestSweepReleasesExpiredReservations(t *testing.T) {
	f := newFixture()
	room := f.rooms.add("Alpha", entity.StatusFree)
	team := f.teams.add("Gophers")

	if _, appErr := f.svc.Reserve(context.Background(), room.ID, team.ID); appErr != nil {
		t.Fatalf("reserve failed: %v", appErr)
	}
	broadcastsBefore := f.notif.RoomsChangedCount

	f.clock.Advance(testWindow + time.Second)

	released, err := f.svc.SweepExpired(context.Background())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if released != 1 {
		t.Fatalf("released = %d, want 1", released)
	}

	got, _ := f.rooms.GetByID(context.Background(), room.ID)
	if got.Status != entity.StatusFree {
		t.Errorf("status = %s, want FREE", got.Status)
	}
	if got.CurrentTeamID != nil || got.ReservedUntil != nil {
		t.Errorf("swept room must have no holder and no deadline")
	}

	last := f.history.events[len(f.history.events)-1]
	if last.Action != historyentity.ActionCancelReservation {
		t.Errorf("sweep event = %s, want CANCEL_RESERVATION", last.Action)
	}
	if last.TeamID != team.ID {
		t.Errorf("sweep event must be attributed to the holding team")
	}
	if f.notif.RoomsChangedCount != broadcastsBefore+1 {
		t.Errorf("sweep must broadcast exactly once per batch")
	}
}

func TestSweepAtExactDeadline(t *testing.T) {
	f := newFixture()
	room := f.rooms.add("Alpha", entity.StatusFree)
	team := f.teams.add("Gophers")

	if _, appErr := f.svc.Reserve(context.Background(), room.ID, team.ID); appErr != nil {
		t.Fatalf("reserve failed: %v", appErr)
	}
	f.clock.Advance(testWindow)

	released, err := f.svc.SweepExpired(context.Background())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if released != 1 {
		t.Errorf("a reservation expiring exactly now must be released, got %d", released)
	}
}

func TestSweepLeavesLiveReservationsAlone(t *testing.T) {
	f := newFixture()
	room := f.rooms.add("Alpha", entity.StatusFree)
	team := f.teams.add("Gophers")

	if _, appErr := f.svc.Reserve(context.Background(), room.ID, team.ID); appErr != nil {
		t.Fatalf("reserve failed: %v", appErr)
	}
	broadcastsBefore := f.notif.RoomsChangedCount
	f.clock.Advance(testWindow - time.Second)

	released, err := f.svc.SweepExpired(context.Background())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if released != 0 {
		t.Errorf("released = %d, want 0", released)
	}
	got, _ := f.rooms.GetByID(context.Background(), room.ID)
	if got.Status != entity.StatusReserved {
		t.Errorf("live reservation must survive the sweep")
	}
	if f.notif.RoomsChangedCount != broadcastsBefore {
		t.Errorf("an empty sweep must not broadcast")
	}
}

func TestSweepHandlesRoomsIndependently(t *testing.T) {
	f := newFixture()
	expired := f.rooms.add("Alpha", entity.StatusFree)
	live := f.rooms.add("Beta", entity.StatusFree)
	teamA := f.teams.add("Gophers")
	teamB := f.teams.add("Rustaceans")

	if _, appErr := f.svc.Reserve(context.Background(), expired.ID, teamA.ID); appErr != nil {
		t.Fatalf("reserve failed: %v", appErr)
	}
	f.clock.Advance(testWindow / 2)
	if _, appErr := f.svc.Reserve(context.Background(), live.ID, teamB.ID); appErr != nil {
		t.Fatalf("reserve failed: %v", appErr)
	}
	f.clock.Advance(testWindow/2 + time.Second)

	released, err := f.svc.SweepExpired(context.Background())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if released != 1 {
		t.Fatalf("released = %d, want only the older reservation", released)
	}

	gotLive, _ := f.rooms.GetByID(context.Background(), live.ID)
	if gotLive.Status != entity.StatusReserved {
		t.Errorf("the newer reservation must still be held")
	}
}

// stubRaceRepo reports a room as expired but refuses the compare-and-update,
// which is what a user freeing the room mid-sweep looks like.
type stubRaceRepo struct {
	*fakeRoomRepo
	stale []entity.Room
}

func (s *stubRaceRepo) ListExpiredReservations(ctx context.Context, now time.Time) ([]entity.Room, error) {
	return s.stale, nil
}

func TestSweepSkipsRoomAlreadyReleased(t *testing.T) {
	f := newFixture()
	room := f.rooms.add("Alpha", entity.StatusFree)
	team := f.teams.add("Gophers")

	deadline := f.clock.Now().Add(-time.Minute)
	stale := *room
	stale.Status = entity.StatusReserved
	stale.CurrentTeamID = &team.ID
	stale.ReservedUntil = &deadline

	race := &stubRaceRepo{fakeRoomRepo: f.rooms, stale: []entity.Room{stale}}
	svc := NewRoomService(race, f.teams, f.history, f.notif, f.clock, testWindow)

	released, err := svc.SweepExpired(context.Background())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if released != 0 {
		t.Errorf("a room already out of RESERVED must not count as released, got %d", released)
	}
	if len(f.history.events) != 0 {
		t.Errorf("a skipped room must not get a ledger entry")
	}
}
