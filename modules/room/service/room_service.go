package service

import (
	"context"
	"strings"
	"time"

	"roomboard/core/clock"
	"roomboard/core/errors"
	"roomboard/core/logger"
	"roomboard/core/notifier"
	historyentity "roomboard/modules/history/entity"
	historyrepo "roomboard/modules/history/repository"
	"roomboard/modules/room/dto"
	"roomboard/modules/room/entity"
	"roomboard/modules/room/repository"
	teamentity "roomboard/modules/team/entity"
	teamrepo "roomboard/modules/team/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type RoomServiceInterface interface {
	Occupy(ctx context.Context, roomID, teamID uuid.UUID) (*dto.RoomResponse, *errors.AppError)
	Reserve(ctx context.Context, roomID, teamID uuid.UUID) (*dto.RoomResponse, *errors.AppError)
	Free(ctx context.Context, roomID, teamID uuid.UUID) (*dto.RoomResponse, *errors.AppError)
	CancelReservation(ctx context.Context, roomID, teamID uuid.UUID) (*dto.RoomResponse, *errors.AppError)
	AdminSetStatus(ctx context.Context, roomID uuid.UUID, req *dto.AdminSetStatusRequest) (*dto.RoomResponse, *errors.AppError)
	CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, *errors.AppError)
	UpdateRoom(ctx context.Context, roomID uuid.UUID, req *dto.UpdateRoomRequest) (*dto.RoomResponse, *errors.AppError)
	DeleteRoom(ctx context.Context, roomID uuid.UUID) *errors.AppError
	ListRooms(ctx context.Context) ([]dto.RoomResponse, *errors.AppError)
	GetRoom(ctx context.Context, roomID uuid.UUID) (*dto.RoomResponse, *errors.AppError)
	SweepExpired(ctx context.Context) (int, error)
}

// RoomService is the room occupancy state machine. Every mutation runs as
// read-check, atomic compare-and-update, ledger append, broadcast.
type RoomService struct {
	roomRepo    repository.RoomRepositoryInterface
	teamRepo    teamrepo.TeamRepositoryInterface
	historyRepo historyrepo.HistoryRepositoryInterface
	notif       notifier.Notifier
	clock       clock.Clock
	window      time.Duration // how long a reservation holds a room
}

func NewRoomService(
	roomRepo repository.RoomRepositoryInterface,
	teamRepo teamrepo.TeamRepositoryInterface,
	historyRepo historyrepo.HistoryRepositoryInterface,
	notif notifier.Notifier,
	clk clock.Clock,
	reservationWindow time.Duration,
) *RoomService {
	return &RoomService{
		roomRepo:    roomRepo,
		teamRepo:    teamRepo,
		historyRepo: historyRepo,
		notif:       notif,
		clock:       clk,
		window:      reservationWindow,
	}
}

// appendHistory records a transition in the ledger. A failed append is
// logged, not surfaced: the room row already committed and rolling the
// caller's success into an error would misreport the actual state.
func (s *RoomService) appendHistory(ctx context.Context, roomID, teamID uuid.UUID, action historyentity.ActionType, prev, next entity.RoomStatus, at time.Time) {
	_, err := s.historyRepo.Append(ctx, &historyentity.HistoryEvent{
		RoomID:         roomID,
		TeamID:         teamID,
		Action:         action,
		PreviousStatus: &prev,
		NewStatus:      next,
		Timestamp:      at,
	})
	if err != nil {
		logger.Error("RoomService:appendHistory", "room_id", roomID, "action", action, "error", err)
	}
}

func attachTeam(room *entity.Room, team *teamentity.Team) {
	if team != nil && room.CurrentTeamID != nil && *room.CurrentTeamID == team.ID {
		room.CurrentTeamName = &team.Name
		room.CurrentTeamColor = &team.Color
	}
}

// Occupy claims a FREE room for immediate use with no deadline. A team may
// hold at most one occupied room at a time.
func (s *RoomService) Occupy(ctx context.Context, roomID, teamID uuid.UUID) (*dto.RoomResponse, *errors.AppError) {
	logger.Info("RoomService:Occupy:Start", "room_id", roomID, "team_id", teamID)

	room, team, appErr := s.loadRoomAndTeam(ctx, roomID, teamID)
	if appErr != nil {
		return nil, appErr
	}

	if room.Status != entity.StatusFree {
		return nil, errors.NewAppError(errors.ErrInvalidState, "Room is not free", nil)
	}

	held, err := s.roomRepo.FindByTeamAndStatus(ctx, teamID, entity.StatusOccupied)
	if err != nil {
		logger.Error("RoomService:Occupy:CapacityCheck", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to occupy room", nil)
	}
	if held != nil {
		return nil, errors.NewAppError(errors.ErrCapacityExceeded, "Team already occupies another room (max 1)", nil)
	}

	now := s.clock.Now()
	updated, err := s.roomRepo.UpdateStatusIf(ctx, roomID, entity.StatusFree, repository.StatusUpdate{
		Status:        entity.StatusOccupied,
		CurrentTeamID: &teamID,
		OccupiedSince: &now,
	})
	if err != nil {
		logger.Error("RoomService:Occupy:Update", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to occupy room", nil)
	}
	if updated == nil {
		// Someone else committed between our read and write.
		return nil, errors.NewAppError(errors.ErrConflict, "Room is no longer available", nil)
	}

	s.appendHistory(ctx, roomID, teamID, historyentity.ActionOccupy, entity.StatusFree, entity.StatusOccupied, now)
	s.notif.RoomsChanged(ctx)

	attachTeam(updated, team)
	logger.Info("RoomService:Occupy:Success", "room_id", roomID, "team_id", teamID)
	return dto.NewRoomResponse(updated), nil
}

// Reserve claims a FREE room for a bounded window; the sweeper reclaims it
// after the deadline. A team may hold at most one active reservation.
func (s *RoomService) Reserve(ctx context.Context, roomID, teamID uuid.UUID) (*dto.RoomResponse, *errors.AppError) {
	logger.Info("RoomService:Reserve:Start", "room_id", roomID, "team_id", teamID)

	room, team, appErr := s.loadRoomAndTeam(ctx, roomID, teamID)
	if appErr != nil {
		return nil, appErr
	}

	if room.Status != entity.StatusFree {
		return nil, errors.NewAppError(errors.ErrInvalidState, "Room is not free", nil)
	}

	held, err := s.roomRepo.FindByTeamAndStatus(ctx, teamID, entity.StatusReserved)
	if err != nil {
		logger.Error("RoomService:Reserve:CapacityCheck", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to reserve room", nil)
	}
	if held != nil {
		return nil, errors.NewAppError(errors.ErrCapacityExceeded, "Team may hold only one active reservation", nil)
	}

	now := s.clock.Now()
	deadline := now.Add(s.window)
	updated, err := s.roomRepo.UpdateStatusIf(ctx, roomID, entity.StatusFree, repository.StatusUpdate{
		Status:        entity.StatusReserved,
		CurrentTeamID: &teamID,
		ReservedUntil: &deadline,
	})
	if err != nil {
		logger.Error("RoomService:Reserve:Update", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to reserve room", nil)
	}
	if updated == nil {
		return nil, errors.NewAppError(errors.ErrConflict, "Room is no longer available", nil)
	}

	s.appendHistory(ctx, roomID, teamID, historyentity.ActionReserve, entity.StatusFree, entity.StatusReserved, now)
	s.notif.RoomsChanged(ctx)

	attachTeam(updated, team)
	logger.Info("RoomService:Reserve:Success", "room_id", roomID, "team_id", teamID, "reserved_until", deadline)
	return dto.NewRoomResponse(updated), nil
}

// Free releases an occupied or reserved room. Only the holding team may
// free it.
func (s *RoomService) Free(ctx context.Context, roomID, teamID uuid.UUID) (*dto.RoomResponse, *errors.AppError) {
	return s.release(ctx, roomID, teamID, historyentity.ActionFree,
		entity.StatusOccupied, entity.StatusReserved)
}

// CancelReservation releases a reserved room. Symmetric to Free but only
// valid from RESERVED.
func (s *RoomService) CancelReservation(ctx context.Context, roomID, teamID uuid.UUID) (*dto.RoomResponse, *errors.AppError) {
	return s.release(ctx, roomID, teamID, historyentity.ActionCancelReservation,
		entity.StatusReserved)
}

func (s *RoomService) release(ctx context.Context, roomID, teamID uuid.UUID, action historyentity.ActionType, allowed ...entity.RoomStatus) (*dto.RoomResponse, *errors.AppError) {
	logger.Info("RoomService:Release:Start", "room_id", roomID, "team_id", teamID, "action", action)

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		logger.Error("RoomService:Release:GetByID", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to release room", nil)
	}
	if room == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}

	validFrom := false
	for _, st := range allowed {
		if room.Status == st {
			validFrom = true
			break
		}
	}
	if !validFrom {
		return nil, errors.NewAppError(errors.ErrInvalidState, "Room is not held in a releasable state", nil)
	}
	if room.CurrentTeamID == nil || *room.CurrentTeamID != teamID {
		return nil, errors.NewAppError(errors.ErrNotOwner, "Only the holding team may release the room", nil)
	}

	previous := room.Status
	now := s.clock.Now()
	updated, err := s.roomRepo.UpdateStatusIf(ctx, roomID, previous, repository.StatusUpdate{
		Status: entity.StatusFree,
	})
	if err != nil {
		logger.Error("RoomService:Release:Update", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to release room", nil)
	}
	if updated == nil {
		return nil, errors.NewAppError(errors.ErrConflict, "Room state changed, please refresh", nil)
	}

	s.appendHistory(ctx, roomID, teamID, action, previous, entity.StatusFree, now)
	s.notif.RoomsChanged(ctx)

	logger.Info("RoomService:Release:Success", "room_id", roomID, "team_id", teamID, "action", action)
	return dto.NewRoomResponse(updated), nil
}

// AdminSetStatus overrides a room's state with no ownership or capacity
// checks. FREE and OFFLINE clear the holder unconditionally; OCCUPIED and
// RESERVED with a team assign it and stamp the matching timestamp. The
// ledger entry is written only when a team is supplied, since an
// unattributed override has no team to record.
func (s *RoomService) AdminSetStatus(ctx context.Context, roomID uuid.UUID, req *dto.AdminSetStatusRequest) (*dto.RoomResponse, *errors.AppError) {
	status := entity.RoomStatus(req.Status)
	if !status.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown room status", nil)
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		logger.Error("RoomService:AdminSetStatus:GetByID", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to set room status", nil)
	}
	if room == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}

	var team *teamentity.Team
	if req.TeamID != nil {
		team, err = s.teamRepo.GetByID(ctx, *req.TeamID)
		if err != nil {
			logger.Error("RoomService:AdminSetStatus:GetTeam", err)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to set room status", nil)
		}
		if team == nil {
			return nil, errors.NewAppError(errors.ErrNotFound, "Team not found", nil)
		}
	}

	previous := room.Status
	now := s.clock.Now()

	// Carry the existing occupancy fields unless the override replaces them.
	upd := repository.StatusUpdate{
		Status:        status,
		CurrentTeamID: room.CurrentTeamID,
		OccupiedSince: room.OccupiedSince,
		ReservedUntil: room.ReservedUntil,
	}
	switch {
	case status == entity.StatusFree || status == entity.StatusOffline:
		upd.CurrentTeamID = nil
		upd.OccupiedSince = nil
		upd.ReservedUntil = nil
	case req.TeamID != nil:
		upd.CurrentTeamID = req.TeamID
		if status == entity.StatusOccupied {
			upd.OccupiedSince = &now
			upd.ReservedUntil = nil
		} else {
			deadline := now.Add(s.window)
			upd.ReservedUntil = &deadline
			upd.OccupiedSince = nil
		}
	}

	updated, err := s.roomRepo.UpdateStatusForce(ctx, roomID, upd)
	if err != nil {
		logger.Error("RoomService:AdminSetStatus:Update", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to set room status", nil)
	}
	if updated == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}

	if req.TeamID != nil {
		s.appendHistory(ctx, roomID, *req.TeamID, historyentity.ActionAdminOverride, previous, status, now)
	}
	s.notif.RoomsChanged(ctx)

	attachTeam(updated, team)
	logger.Info("RoomService:AdminSetStatus:Success", "room_id", roomID, "status", status, "previous", previous)
	return dto.NewRoomResponse(updated), nil
}

// ===================== Room CRUD =====================

func (s *RoomService) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, *errors.AppError) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Room name is required", nil)
	}

	existing, err := s.roomRepo.GetByName(ctx, name)
	if err != nil {
		logger.Error("RoomService:CreateRoom:GetByName", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create room", nil)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "A room with this name already exists", nil)
	}

	room, err := s.roomRepo.Create(ctx, name, slug.Make(name), req.Description)
	if err != nil {
		logger.Error("RoomService:CreateRoom:Create", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create room", nil)
	}

	s.notif.RoomsChanged(ctx)
	logger.Info("RoomService:CreateRoom:Success", "room_id", room.ID, "name", room.Name)
	return dto.NewRoomResponse(room), nil
}

func (s *RoomService) UpdateRoom(ctx context.Context, roomID uuid.UUID, req *dto.UpdateRoomRequest) (*dto.RoomResponse, *errors.AppError) {
	var newSlug *string
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Room name cannot be blank", nil)
		}
		req.Name = &trimmed
		sl := slug.Make(trimmed)
		newSlug = &sl
	}

	updated, err := s.roomRepo.UpdateInfo(ctx, roomID, req.Name, newSlug, req.Description)
	if err != nil {
		logger.Error("RoomService:UpdateRoom", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update room", nil)
	}
	if updated == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}

	s.notif.RoomsChanged(ctx)
	return dto.NewRoomResponse(updated), nil
}

// DeleteRoom removes a room and its audit trail. History rows go first so
// the room delete does not trip the foreign key.
func (s *RoomService) DeleteRoom(ctx context.Context, roomID uuid.UUID) *errors.AppError {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		logger.Error("RoomService:DeleteRoom:GetByID", err)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete room", nil)
	}
	if room == nil {
		return errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}

	if err := s.historyRepo.DeleteByRoom(ctx, roomID); err != nil {
		logger.Error("RoomService:DeleteRoom:DeleteHistory", err)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete room history", nil)
	}
	if err := s.roomRepo.Delete(ctx, roomID); err != nil {
		logger.Error("RoomService:DeleteRoom:Delete", err)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete room", nil)
	}

	s.notif.RoomsChanged(ctx)
	logger.Info("RoomService:DeleteRoom:Success", "room_id", roomID)
	return nil
}

func (s *RoomService) ListRooms(ctx context.Context) ([]dto.RoomResponse, *errors.AppError) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		logger.Error("RoomService:ListRooms", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list rooms", nil)
	}
	return dto.NewRoomResponseList(rooms), nil
}

func (s *RoomService) GetRoom(ctx context.Context, roomID uuid.UUID) (*dto.RoomResponse, *errors.AppError) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		logger.Error("RoomService:GetRoom", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load room", nil)
	}
	if room == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}
	return dto.NewRoomResponse(room), nil
}

func (s *RoomService) loadRoomAndTeam(ctx context.Context, roomID, teamID uuid.UUID) (*entity.Room, *teamentity.Team, *errors.AppError) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		logger.Error("RoomService:loadRoomAndTeam:GetRoom", err)
		return nil, nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load room", nil)
	}
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		logger.Error("RoomService:loadRoomAndTeam:GetTeam", err)
		return nil, nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load team", nil)
	}
	if room == nil || team == nil {
		return nil, nil, errors.NewAppError(errors.ErrNotFound, "Room or team not found", nil)
	}
	return room, team, nil
}
