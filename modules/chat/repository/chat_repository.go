package repository

import (
	"context"

	"roomboard/core/database"
	"roomboard/core/logger"
	"roomboard/modules/chat/entity"
)

// ChatRepository handles chat message database operations
type ChatRepository struct {
	DB database.Database
}

func NewChatRepository(db database.Database) *ChatRepository {
	return &ChatRepository{DB: db}
}

// ChatRepositoryInterface defines the repository contract
type ChatRepositoryInterface interface {
	Insert(ctx context.Context, msg *entity.ChatMessage) (*entity.ChatMessage, error)
	ListRecent(ctx context.Context, limit int) ([]entity.ChatMessage, error)
	DeleteAll(ctx context.Context) error
}

func (r *ChatRepository) Insert(ctx context.Context, msg *entity.ChatMessage) (*entity.ChatMessage, error) {
	query := `
		INSERT INTO chat_messages (id, team_id, message, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, team_id, message, created_at
	`

	var created entity.ChatMessage
	err := r.DB.GetContext(ctx, &created, query, msg.ID, msg.TeamID, msg.Message, msg.CreatedAt)
	if err != nil {
		logger.Error("ChatRepository:Insert", err)
		return nil, err
	}
	return &created, nil
}

// ListRecent returns the newest messages first.
func (r *ChatRepository) ListRecent(ctx context.Context, limit int) ([]entity.ChatMessage, error) {
	query := `
		SELECT m.id, m.team_id, m.message, m.created_at,
		       t.name AS team_name, t.color AS team_color
		FROM chat_messages m
		JOIN teams t ON t.id = m.team_id
		ORDER BY m.created_at DESC
		LIMIT $1
	`

	var messages []entity.ChatMessage
	if err := r.DB.SelectContext(ctx, &messages, query, limit); err != nil {
		logger.Error("ChatRepository:ListRecent", err)
		return nil, err
	}
	return messages, nil
}

func (r *ChatRepository) DeleteAll(ctx context.Context) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM chat_messages`); err != nil {
		logger.Error("ChatRepository:DeleteAll", err)
		return err
	}
	return nil
}
