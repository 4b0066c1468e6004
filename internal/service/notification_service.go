package service

import (
	"context"
	"strings"
	"time"

	"vybe/internal/models"
	"vybe/internal/repository"
)

// NotificationService handles the user-facing notification feed.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
	now              func() time.Time
}

// NewNotificationService returns a new NotificationService.
func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo, now: time.Now}
}

// Notify creates a notification for a user.
func (s *NotificationService) Notify(ctx context.Context, userID, content string, kind models.NotificationType) (*models.Notification, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.NewValidationError("Notification content is required")
	}
	if kind == "" {
		kind = models.NotificationSystem
	}
	notification := &models.Notification{
		UserID:    userID,
		Content:   content,
		Timestamp: s.now(),
		Type:      kind,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// List returns the user's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, userID, limit)
}

// UnreadCount returns how many notifications the user has not read.
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}

// MarkRead flags one of the user's notifications as read.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID, userID string) error {
	return s.notificationRepo.MarkRead(ctx, notificationID, userID)
}

// MarkAllRead clears the user's unread notifications.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// Delete removes one of the user's notifications.
func (s *NotificationService) Delete(ctx context.Context, notificationID, userID string) error {
	return s.notificationRepo.Delete(ctx, notificationID, userID)
}
