package repository

import (
	"context"
	"errors"

	"vybe/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines persistence operations for direct messages.
type MessageRepository interface {
	GetByID(ctx context.Context, id string) (*models.Message, error)
	Create(ctx context.Context, message *models.Message) error
	// ListInvolving returns every message the user sent or received, ordered
	// by message time ascending. Conversation grouping happens above this
	// layer.
	ListInvolving(ctx context.Context, userID string) ([]models.Message, error)
	// MarkRead flags one message as read, scoped to its recipient.
	MarkRead(ctx context.Context, id, receiverID string) error
	// MarkConversationRead marks every unread message from the counterpart
	// to the user as read.
	MarkConversationRead(ctx context.Context, userID, counterpartID string) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository returns a new MessageRepository implementation.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) GetByID(ctx context.Context, id string) (*models.Message, error) {
	var message models.Message
	if err := readDB(r.db).WithContext(ctx).Where("id = ?", id).First(&message).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Message", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &message, nil
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	ensureID(&message.ID)
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *messageRepository) ListInvolving(ctx context.Context, userID string) ([]models.Message, error) {
	var messages []models.Message
	if err := readDB(r.db).WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("timestamp ASC, created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

// MarkRead flags a single message as read. Unknown ids and messages
// addressed to someone else are a no-op.
func (r *messageRepository) MarkRead(ctx context.Context, id, receiverID string) error {
	if err := r.db.WithContext(ctx).Model(&models.Message{}).
		Where("id = ? AND receiver_id = ?", id, receiverID).
		Update("read", true).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *messageRepository) MarkConversationRead(ctx context.Context, userID, counterpartID string) error {
	if err := r.db.WithContext(ctx).Model(&models.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND read = ?", userID, counterpartID, false).
		Update("read", true).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
