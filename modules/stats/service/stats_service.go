package service

import (
	"context"
	"math"
	"time"

	"roomboard/core/errors"
	"roomboard/core/logger"
	historyentity "roomboard/modules/history/entity"
	historyrepo "roomboard/modules/history/repository"
	roomentity "roomboard/modules/room/entity"
	roomrepo "roomboard/modules/room/repository"
	"roomboard/modules/stats/dto"
	"roomboard/modules/stats/repository"
	teamrepo "roomboard/modules/team/repository"

	"github.com/google/uuid"
)

type StatsServiceInterface interface {
	CurrentStats(ctx context.Context) (*dto.CurrentStatsResponse, *errors.AppError)
	RoomVisits(ctx context.Context, roomID uuid.UUID) ([]dto.VisitResponse, *errors.AppError)
	RoomStats(ctx context.Context, roomID uuid.UUID) (*dto.RoomStatsResponse, *errors.AppError)
	DailyStatsByDate(ctx context.Context, date time.Time) (*dto.DailyStatsResponse, *errors.AppError)
}

// StatsService derives occupancy counts and visit statistics. It holds no
// state of its own; everything is recomputed from the room table and the
// ledger on each call.
type StatsService struct {
	roomRepo        roomrepo.RoomRepositoryInterface
	teamRepo        teamrepo.TeamRepositoryInterface
	historyRepo     historyrepo.HistoryRepositoryInterface
	statsRepo       repository.StatsRepositoryInterface
	minVisitMinutes int
}

func NewStatsService(
	roomRepo roomrepo.RoomRepositoryInterface,
	teamRepo teamrepo.TeamRepositoryInterface,
	historyRepo historyrepo.HistoryRepositoryInterface,
	statsRepo repository.StatsRepositoryInterface,
	minVisitMinutes int,
) *StatsService {
	return &StatsService{
		roomRepo:        roomRepo,
		teamRepo:        teamRepo,
		historyRepo:     historyRepo,
		statsRepo:       statsRepo,
		minVisitMinutes: minVisitMinutes,
	}
}

func (s *StatsService) CurrentStats(ctx context.Context) (*dto.CurrentStatsResponse, *errors.AppError) {
	counts, err := s.roomRepo.CountByStatus(ctx)
	if err != nil {
		logger.Error("StatsService:CurrentStats:CountByStatus", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to compute stats", nil)
	}

	activeTeams, err := s.teamRepo.CountActive(ctx)
	if err != nil {
		logger.Error("StatsService:CurrentStats:CountActive", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to compute stats", nil)
	}

	resp := &dto.CurrentStatsResponse{
		OccupiedCount: counts[roomentity.StatusOccupied],
		ReservedCount: counts[roomentity.StatusReserved],
		FreeCount:     counts[roomentity.StatusFree],
		OfflineCount:  counts[roomentity.StatusOffline],
		ActiveTeams:   activeTeams,
	}
	resp.TotalRooms = resp.OccupiedCount + resp.ReservedCount + resp.FreeCount + resp.OfflineCount
	return resp, nil
}

// RoomVisits reconstructs the room's visit intervals from the ledger,
// newest first.
func (s *StatsService) RoomVisits(ctx context.Context, roomID uuid.UUID) ([]dto.VisitResponse, *errors.AppError) {
	events, appErr := s.roomEvents(ctx, roomID)
	if appErr != nil {
		return nil, appErr
	}
	return reconstructVisits(events, s.minVisitMinutes), nil
}

// RoomStats summarizes the room's visits.
func (s *StatsService) RoomStats(ctx context.Context, roomID uuid.UUID) (*dto.RoomStatsResponse, *errors.AppError) {
	events, appErr := s.roomEvents(ctx, roomID)
	if appErr != nil {
		return nil, appErr
	}

	visits := reconstructVisits(events, s.minVisitMinutes)
	resp := &dto.RoomStatsResponse{TotalVisits: len(visits)}
	if len(visits) > 0 {
		total := 0
		for _, v := range visits {
			total += v.DurationMinutes
		}
		resp.AverageOccupationMinutes = int(math.Round(float64(total) / float64(len(visits))))
	}
	return resp, nil
}

func (s *StatsService) DailyStatsByDate(ctx context.Context, date time.Time) (*dto.DailyStatsResponse, *errors.AppError) {
	stats, err := s.statsRepo.GetByDate(ctx, date)
	if err != nil {
		logger.Error("StatsService:DailyStatsByDate", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load daily stats", nil)
	}
	if stats == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "No daily stats for this date", nil)
	}
	return dto.NewDailyStatsResponse(stats), nil
}

func (s *StatsService) roomEvents(ctx context.Context, roomID uuid.UUID) ([]historyentity.HistoryEvent, *errors.AppError) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		logger.Error("StatsService:roomEvents:GetByID", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load room", nil)
	}
	if room == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}

	events, err := s.historyRepo.ListByRoom(ctx, roomID)
	if err != nil {
		logger.Error("StatsService:roomEvents:ListByRoom", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load room history", nil)
	}
	return events, nil
}
