package service

import (
	"context"
	"testing"
	"time"

	"vybe/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("success assigns a QR id and scheduled status", func(t *testing.T) {
		t.Parallel()
		svc := NewEventService(noopEventRepo())

		event, err := svc.Create(ctx, CreateEventInput{
			Name:     "Friday Cypher",
			Location: "Orlando, FL",
			Date:     time.Now().Add(48 * time.Hour),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, event.QRID)
		assert.Equal(t, models.EventScheduled, event.Status)
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()
		svc := NewEventService(noopEventRepo())
		date := time.Now().Add(time.Hour)

		_, err := svc.Create(ctx, CreateEventInput{Location: "Orlando", Date: date})
		assertValidationError(t, err)

		_, err = svc.Create(ctx, CreateEventInput{Name: "Cypher", Date: date})
		assertValidationError(t, err)

		_, err = svc.Create(ctx, CreateEventInput{Name: "Cypher", Location: "Orlando"})
		assertValidationError(t, err)
	})
}

func TestEventService_GoLive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("sets live status and promotes to active", func(t *testing.T) {
		t.Parallel()
		var fields map[string]any
		eventRepo := noopEventRepo()
		eventRepo.updateFn = func(_ context.Context, id string, f map[string]any) error {
			assert.Equal(t, "e-1", id)
			fields = f
			return nil
		}
		svc := NewEventService(eventRepo)

		require.NoError(t, svc.GoLive(ctx, "e-1"))
		assert.Equal(t, models.EventLive, fields["status"])
		assert.Equal(t, true, fields["is_active"])
	})

	t.Run("ended events cannot go live again", func(t *testing.T) {
		t.Parallel()
		eventRepo := noopEventRepo()
		eventRepo.getByIDFn = func(_ context.Context, id string) (*models.Event, error) {
			return &models.Event{ID: id, Status: models.EventEnded}, nil
		}
		svc := NewEventService(eventRepo)

		assertValidationError(t, svc.GoLive(ctx, "e-1"))
	})
}

func TestEventService_End(t *testing.T) {
	t.Parallel()

	var fields map[string]any
	eventRepo := noopEventRepo()
	eventRepo.updateFn = func(_ context.Context, _ string, f map[string]any) error {
		fields = f
		return nil
	}
	svc := NewEventService(eventRepo)

	require.NoError(t, svc.End(context.Background(), "e-1"))
	assert.Equal(t, models.EventEnded, fields["status"])
	assert.NotContains(t, fields, "is_active", "ending an event leaves the active flag alone")
}

func TestEventService_UpdateStripsLifecycleFields(t *testing.T) {
	t.Parallel()

	var fields map[string]any
	eventRepo := noopEventRepo()
	eventRepo.updateFn = func(_ context.Context, _ string, f map[string]any) error {
		fields = f
		return nil
	}
	svc := NewEventService(eventRepo)

	err := svc.Update(context.Background(), "e-1", map[string]any{
		"name":             "Renamed",
		"status":           models.EventLive,
		"is_active":        true,
		"checked_in_count": 99,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Renamed"}, fields)
}

func TestEventService_ListComputesDisplayStatus(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 31, 20, 0, 0, 0, time.UTC)
	eventRepo := noopEventRepo()
	eventRepo.listFn = func(_ context.Context) ([]models.Event, error) {
		return []models.Event{
			{ID: "e-live", Status: models.EventLive, Date: now.Add(-72 * time.Hour)},
			{ID: "e-up", Status: models.EventScheduled, Date: now.Add(24 * time.Hour)},
			{ID: "e-done", Status: models.EventScheduled, Date: now.Add(-24 * time.Hour)},
			{ID: "e-ended", Status: models.EventEnded, Date: now.Add(24 * time.Hour)},
		}, nil
	}
	svc := NewEventService(eventRepo)
	svc.now = func() time.Time { return now }

	views, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 4)
	assert.Equal(t, models.DisplayLive, views[0].DisplayStatus, "live status wins over a past date")
	assert.Equal(t, models.DisplayUpcoming, views[1].DisplayStatus)
	assert.Equal(t, models.DisplayEnded, views[2].DisplayStatus)
	assert.Equal(t, models.DisplayEnded, views[3].DisplayStatus, "ended status wins over a future date")
}
