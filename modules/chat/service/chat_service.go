package service

import (
	"context"
	"strings"

	"roomboard/core/clock"
	"roomboard/core/constants"
	"roomboard/core/errors"
	"roomboard/core/logger"
	"roomboard/core/notifier"
	"roomboard/core/utils"
	"roomboard/modules/chat/dto"
	"roomboard/modules/chat/entity"
	"roomboard/modules/chat/repository"
	teamrepo "roomboard/modules/team/repository"
)

const maxMessageLength = 500

type ChatServiceInterface interface {
	SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.ChatMessageResponse, *errors.AppError)
	RecentMessages(ctx context.Context) ([]dto.ChatMessageResponse, *errors.AppError)
}

type ChatService struct {
	chatRepo repository.ChatRepositoryInterface
	teamRepo teamrepo.TeamRepositoryInterface
	notif    notifier.Notifier
	clock    clock.Clock
}

func NewChatService(chatRepo repository.ChatRepositoryInterface, teamRepo teamrepo.TeamRepositoryInterface, notif notifier.Notifier, clk clock.Clock) *ChatService {
	return &ChatService{
		chatRepo: chatRepo,
		teamRepo: teamRepo,
		notif:    notif,
		clock:    clk,
	}
}

func (s *ChatService) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.ChatMessageResponse, *errors.AppError) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Message cannot be empty", nil)
	}
	if len(message) > maxMessageLength {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Message is too long", nil)
	}

	team, err := s.teamRepo.GetByID(ctx, req.TeamID)
	if err != nil {
		logger.Error("ChatService:SendMessage:GetTeam", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to send message", nil)
	}
	if team == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Team not found", nil)
	}

	created, err := s.chatRepo.Insert(ctx, &entity.ChatMessage{
		ID:        utils.GenerateID(),
		TeamID:    req.TeamID,
		Message:   message,
		CreatedAt: s.clock.Now(),
	})
	if err != nil {
		logger.Error("ChatService:SendMessage:Insert", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to send message", nil)
	}

	created.TeamName = team.Name
	created.TeamColor = team.Color
	s.notif.ChatPosted(ctx)
	return dto.NewChatMessageResponse(created), nil
}

func (s *ChatService) RecentMessages(ctx context.Context) ([]dto.ChatMessageResponse, *errors.AppError) {
	messages, err := s.chatRepo.ListRecent(ctx, constants.DefaultChatRecentLimit)
	if err != nil {
		logger.Error("ChatService:RecentMessages", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load messages", nil)
	}
	return dto.NewChatMessageResponseList(messages), nil
}
