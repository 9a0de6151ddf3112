package service

import (
	"context"
	"fmt"
	"time"

	"roomboard/core/clock"
	"roomboard/core/errors"
	"roomboard/core/logger"
	"roomboard/core/notifier"
	"roomboard/modules/admin/dto"
	chatrepo "roomboard/modules/chat/repository"
	historyentity "roomboard/modules/history/entity"
	historyrepo "roomboard/modules/history/repository"
	roomrepo "roomboard/modules/room/repository"
	statsentity "roomboard/modules/stats/entity"
	statsrepo "roomboard/modules/stats/repository"
	teamrepo "roomboard/modules/team/repository"

	"github.com/google/uuid"
)

type ArchiveServiceInterface interface {
	ArchiveAndReset(ctx context.Context, req *dto.ArchiveRequest) (*dto.ArchiveResponse, *errors.AppError)
}

// ArchiveService seals the current history window into a daily snapshot
// and resets the floor: every room back to FREE, optionally all teams and
// their history wiped.
type ArchiveService struct {
	historyRepo historyrepo.HistoryRepositoryInterface
	statsRepo   statsrepo.StatsRepositoryInterface
	roomRepo    roomrepo.RoomRepositoryInterface
	teamRepo    teamrepo.TeamRepositoryInterface
	chatRepo    chatrepo.ChatRepositoryInterface
	notif       notifier.Notifier
	clock       clock.Clock
}

func NewArchiveService(
	historyRepo historyrepo.HistoryRepositoryInterface,
	statsRepo statsrepo.StatsRepositoryInterface,
	roomRepo roomrepo.RoomRepositoryInterface,
	teamRepo teamrepo.TeamRepositoryInterface,
	chatRepo chatrepo.ChatRepositoryInterface,
	notif notifier.Notifier,
	clk clock.Clock,
) *ArchiveService {
	return &ArchiveService{
		historyRepo: historyRepo,
		statsRepo:   statsRepo,
		roomRepo:    roomRepo,
		teamRepo:    teamRepo,
		chatRepo:    chatRepo,
		notif:       notif,
		clock:       clk,
	}
}

// ArchiveAndReset runs the end-of-day batch. Ordering matters: events are
// stamped and aggregated before any deletion, or the snapshot would be
// computed over an empty ledger.
func (s *ArchiveService) ArchiveAndReset(ctx context.Context, req *dto.ArchiveRequest) (*dto.ArchiveResponse, *errors.AppError) {
	now := s.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	logger.Info("ArchiveService:ArchiveAndReset:Start", "delete_teams", req.DeleteTeams, "date", today.Format("2006-01-02"))

	// Running the batch twice on one day is a usage error, not an
	// overwrite. Checked up front so no partial effects leak.
	exists, err := s.statsRepo.ExistsForDate(ctx, today)
	if err != nil {
		logger.Error("ArchiveService:ArchiveAndReset:ExistsForDate", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Archive failed", nil)
	}
	if exists {
		return nil, errors.NewAppError(errors.ErrAlreadyArchived, "Daily stats for today already exist", nil)
	}

	archivedCount, err := s.historyRepo.StampArchived(ctx, now)
	if err != nil {
		logger.Error("ArchiveService:ArchiveAndReset:StampArchived", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Archive failed", nil)
	}

	events, err := s.historyRepo.ListArchivedSince(ctx, today)
	if err != nil {
		logger.Error("ArchiveService:ArchiveAndReset:ListArchivedSince", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Archive failed", nil)
	}

	snapshot := buildDailySnapshot(today, events)
	if _, err := s.statsRepo.Create(ctx, snapshot); err != nil {
		logger.Error("ArchiveService:ArchiveAndReset:CreateStats", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Archive failed", nil)
	}

	if err := s.roomRepo.ResetAll(ctx); err != nil {
		logger.Error("ArchiveService:ArchiveAndReset:ResetAll", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Archive failed", nil)
	}

	teamNote := "Teams kept."
	if req.DeleteTeams {
		// Chat and history reference teams, so they go first.
		if err := s.chatRepo.DeleteAll(ctx); err != nil {
			logger.Error("ArchiveService:ArchiveAndReset:DeleteChat", err)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Archive failed", nil)
		}
		if err := s.historyRepo.DeleteAll(ctx); err != nil {
			logger.Error("ArchiveService:ArchiveAndReset:DeleteHistory", err)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Archive failed", nil)
		}
		if err := s.teamRepo.DeleteAll(ctx); err != nil {
			logger.Error("ArchiveService:ArchiveAndReset:DeleteTeams", err)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Archive failed", nil)
		}
		teamNote = "Teams deleted."
	}

	s.notif.RoomsChanged(ctx)

	logger.Info("ArchiveService:ArchiveAndReset:Success", "archived_count", archivedCount, "delete_teams", req.DeleteTeams)
	return &dto.ArchiveResponse{
		Success:       true,
		ArchivedCount: archivedCount,
		Message:       fmt.Sprintf("Archived %d history records. %s", archivedCount, teamNote),
	}, nil
}

// buildDailySnapshot aggregates the day's archived events into one
// DailyStats row.
func buildDailySnapshot(date time.Time, events []historyentity.HistoryEvent) *statsentity.DailyStats {
	snapshot := &statsentity.DailyStats{
		Date:         date,
		TeamActivity: statsentity.TeamActivity{},
	}

	roomCounts := map[uuid.UUID]int{}
	for i := range events {
		ev := &events[i]
		switch ev.Action {
		case historyentity.ActionOccupy:
			snapshot.TotalOccupations++
		case historyentity.ActionReserve:
			snapshot.TotalReservations++
		}
		snapshot.TeamActivity[ev.TeamID.String()]++
		roomCounts[ev.RoomID]++
	}

	best := 0
	for roomID, count := range roomCounts {
		if count > best {
			best = count
			id := roomID
			snapshot.MostPopularRoomID = &id
		}
	}
	return snapshot
}
