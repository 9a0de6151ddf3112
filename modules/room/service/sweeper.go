package service

import (
	"context"

	"roomboard/core/logger"
	historyentity "roomboard/modules/history/entity"
	"roomboard/modules/room/entity"
	"roomboard/modules/room/repository"
)

// SweepExpired releases every reservation whose deadline has passed, as if
// the holding team had cancelled it. Rooms are handled independently: a
// room that a user action beat us to is skipped, the rest still get
// processed. One broadcast covers the whole batch.
func (s *RoomService) SweepExpired(ctx context.Context) (int, error) {
	now := s.clock.Now()

	expired, err := s.roomRepo.ListExpiredReservations(ctx, now)
	if err != nil {
		logger.Error("RoomService:SweepExpired:List", err)
		return 0, err
	}
	if len(expired) == 0 {
		return 0, nil
	}

	logger.Info("RoomService:SweepExpired:Start", "expired", len(expired))

	released := 0
	for i := range expired {
		room := &expired[i]

		updated, err := s.roomRepo.UpdateStatusIf(ctx, room.ID, entity.StatusReserved, repository.StatusUpdate{
			Status: entity.StatusFree,
		})
		if err != nil {
			logger.Error("RoomService:SweepExpired:Update", "room_id", room.ID, "error", err)
			continue
		}
		if updated == nil {
			// A user freed or cancelled it first; the room is already out of
			// RESERVED, which is the end state we wanted anyway.
			logger.Info("RoomService:SweepExpired:LostRace", "room_id", room.ID)
			continue
		}

		if room.CurrentTeamID != nil {
			s.appendHistory(ctx, room.ID, *room.CurrentTeamID,
				historyentity.ActionCancelReservation, entity.StatusReserved, entity.StatusFree, now)
		}
		released++
	}

	s.notif.RoomsChanged(ctx)
	logger.Info("RoomService:SweepExpired:Done", "released", released)
	return released, nil
}
