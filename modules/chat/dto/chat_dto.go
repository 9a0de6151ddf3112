package dto

import (
	"time"

	"roomboard/modules/chat/entity"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	TeamID  uuid.UUID `json:"team_id" validate:"required"`
	Message string    `json:"message" validate:"required"`
}

type ChatMessageResponse struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	TeamName  string    `json:"team_name,omitempty"`
	TeamColor string    `json:"team_color,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewChatMessageResponse(m *entity.ChatMessage) *ChatMessageResponse {
	return &ChatMessageResponse{
		ID:        m.ID,
		TeamID:    m.TeamID.String(),
		TeamName:  m.TeamName,
		TeamColor: m.TeamColor,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

func NewChatMessageResponseList(messages []entity.ChatMessage) []ChatMessageResponse {
	out := make([]ChatMessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, *NewChatMessageResponse(&messages[i]))
	}
	return out
}
