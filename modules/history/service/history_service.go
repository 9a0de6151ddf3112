package service

import (
	"context"

	"roomboard/core/constants"
	"roomboard/core/errors"
	"roomboard/core/logger"
	"roomboard/modules/history/dto"
	"roomboard/modules/history/entity"
	"roomboard/modules/history/repository"
)

type HistoryServiceInterface interface {
	ListHistory(ctx context.Context, req *dto.HistoryFilterRequest) ([]dto.HistoryEventResponse, *errors.AppError)
}

type HistoryService struct {
	historyRepo repository.HistoryRepositoryInterface
}

func NewHistoryService(historyRepo repository.HistoryRepositoryInterface) *HistoryService {
	return &HistoryService{historyRepo: historyRepo}
}

// ListHistory returns the latest unarchived ledger entries, optionally
// narrowed by room, team, or action.
func (s *HistoryService) ListHistory(ctx context.Context, req *dto.HistoryFilterRequest) ([]dto.HistoryEventResponse, *errors.AppError) {
	filter := repository.Filter{Limit: constants.DefaultHistoryQueryLimit}

	if req != nil {
		filter.RoomID = req.RoomID
		filter.TeamID = req.TeamID
		if req.Action != nil {
			action := entity.ActionType(*req.Action)
			if !action.Valid() {
				return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown action type", nil)
			}
			filter.Action = &action
		}
	}

	events, err := s.historyRepo.List(ctx, filter)
	if err != nil {
		logger.Error("HistoryService:ListHistory", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list history", nil)
	}
	return dto.NewHistoryEventResponseList(events), nil
}
