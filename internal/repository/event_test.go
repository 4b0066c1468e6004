package repository

import (
	"context"
	"testing"
	"time"

	"vybe/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_CreateDefaultsToScheduled(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	event := &models.Event{Name: "Friday Cypher", Location: "Orlando, FL", Date: time.Now().Add(48 * time.Hour)}
	require.NoError(t, repo.Create(ctx, event))
	require.NotEmpty(t, event.ID)

	got, err := repo.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EventScheduled, got.Status)
	assert.False(t, got.IsActive)
}

func TestEventRepository_GetByQRID(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	event := &models.Event{Name: "Open Mic", Location: "Tampa, FL", QRID: "qr-open-mic"}
	require.NoError(t, repo.Create(ctx, event))

	got, err := repo.GetByQRID(ctx, "qr-open-mic")
	require.NoError(t, err)
	assert.Equal(t, event.ID, got.ID)

	_, err = repo.GetByQRID(ctx, "qr-unknown")
	assert.Error(t, err)
}

func TestEventRepository_Update(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	event := &models.Event{Name: "Showcase", Location: "Miami, FL"}
	require.NoError(t, repo.Create(ctx, event))

	t.Run("merges partial fields", func(t *testing.T) {
		err := repo.Update(ctx, event.ID, map[string]any{
			"status":    models.EventLive,
			"is_active": true,
		})
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, models.EventLive, got.Status)
		assert.True(t, got.IsActive)
		assert.Equal(t, "Showcase", got.Name)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.Update(ctx, "no-such-id", map[string]any{"name": "nope"}))
	})
}

func TestEventRepository_ListOrdersByDate(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)
	later := &models.Event{Name: "Later", Location: "A", Date: base.Add(72 * time.Hour)}
	sooner := &models.Event{Name: "Sooner", Location: "B", Date: base}
	require.NoError(t, repo.Create(ctx, later))
	require.NoError(t, repo.Create(ctx, sooner))

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Sooner", events[0].Name)
	assert.Equal(t, "Later", events[1].Name)
}

func TestEventRepository_ListActive(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	active := &models.Event{Name: "Active", Location: "A", IsActive: true}
	dormant := &models.Event{Name: "Dormant", Location: "B"}
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, dormant))

	events, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Active", events[0].Name)
}

func TestEventRepository_IncrementCheckedIn(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	event := &models.Event{Name: "Counter", Location: "A"}
	require.NoError(t, repo.Create(ctx, event))

	require.NoError(t, repo.IncrementCheckedIn(ctx, event.ID))
	require.NoError(t, repo.IncrementCheckedIn(ctx, event.ID))

	got, err := repo.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CheckedInCount)
}
