package dao

import (
	"context"
	"quantiri/quantiri/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatMessageDAO struct {
	DB *gorm.DB
}

func NewChatMessageDAO(db *gorm.DB) *ChatMessageDAO {
	return &ChatMessageDAO{DB: db}
}

func (dao *ChatMessageDAO) CreateSessionID() string {
	return uuid.New().String()
}

func (dao *ChatMessageDAO) SaveMessage(ctx context.Context, sessionID string, userID uuid.UUID, role, content string) (*models.ChatMessage, error) {
	msg := models.ChatMessage{
		SessionID: sessionID,
		UserID:    userID,
		Role:      role,
		Content:   content,
	}
	err := dao.DB.WithContext(ctx).Create(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// GetMessagesForSession returns the session's messages oldest first,
// scoped to the owning user.
func (dao *ChatMessageDAO) GetMessagesForSession(ctx context.Context, userID uuid.UUID, sessionID string) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := dao.DB.WithContext(ctx).
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		Order("created_at ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// DeleteSessionMessages discards the whole conversation for a session.
func (dao *ChatMessageDAO) DeleteSessionMessages(ctx context.Context, userID uuid.UUID, sessionID string) error {
	return dao.DB.WithContext(ctx).
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		Delete(&models.ChatMessage{}).Error
}
