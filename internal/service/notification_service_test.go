package service

import (
	"context"
	"testing"

	"vybe/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_Notify(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty content rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewNotificationService(noopNotificationRepo())
		_, err := svc.Notify(ctx, "u-1", "  ", models.NotificationSystem)
		assertValidationError(t, err)
	})

	t.Run("missing type defaults to system", func(t *testing.T) {
		t.Parallel()
		var created *models.Notification
		repo := noopNotificationRepo()
		repo.createFn = func(_ context.Context, n *models.Notification) error {
			created = n
			return nil
		}
		svc := NewNotificationService(repo)

		notification, err := svc.Notify(ctx, "u-1", "welcome to the lobby", "")
		require.NoError(t, err)
		assert.Equal(t, models.NotificationSystem, created.Type)
		assert.False(t, notification.Read, "notifications start unread")
		assert.False(t, notification.Timestamp.IsZero())
	})
}

func TestNotificationService_Passthroughs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var markedAll, deleted, deletedOwner string
	repo := noopNotificationRepo()
	repo.markAllReadFn = func(_ context.Context, userID string) error {
		markedAll = userID
		return nil
	}
	repo.deleteFn = func(_ context.Context, id, userID string) error {
		deleted = id
		deletedOwner = userID
		return nil
	}
	repo.countUnreadFn = func(_ context.Context, _ string) (int64, error) { return 3, nil }

	svc := NewNotificationService(repo)

	count, err := svc.UnreadCount(ctx, "u-1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	require.NoError(t, svc.MarkAllRead(ctx, "u-1"))
	assert.Equal(t, "u-1", markedAll)

	require.NoError(t, svc.Delete(ctx, "n-1", "u-1"))
	assert.Equal(t, "n-1", deleted)
	assert.Equal(t, "u-1", deletedOwner, "deletion is scoped to the owner")
}
