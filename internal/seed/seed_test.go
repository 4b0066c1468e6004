package seed

import (
	"context"
	"testing"

	"vybe/internal/database"
	"vybe/internal/models"
	"vybe/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.ConnectTest()
	require.NoError(t, err)
	return db
}

func TestLoadPresets(t *testing.T) {
	t.Parallel()

	p, err := loadPresets()
	require.NoError(t, err)
	assert.NotEmpty(t, p.Platforms)
	assert.Equal(t, "Orlando Cypher Live", p.FlagshipEvent.Name)
	assert.NotEmpty(t, p.FlagshipEvent.QRID)
}

func TestApplyPresetsIsIdempotent(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	ctx := context.Background()

	require.NoError(t, ApplyPresets(ctx, db))
	require.NoError(t, ApplyPresets(ctx, db))

	platforms, err := repository.NewPlatformRepository(db).List(ctx)
	require.NoError(t, err)
	p, err := loadPresets()
	require.NoError(t, err)
	assert.Len(t, platforms, len(p.Platforms), "re-applying must not duplicate platforms")

	events, err := repository.NewEventRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].IsActive)
	assert.Equal(t, models.EventScheduled, events[0].Status)
}

func TestDemo(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	ctx := context.Background()

	opts := Options{NumArtists: 5, AdminEmail: "admin@test.local", AdminPassword: "TestAdminPass1!"}
	require.NoError(t, Demo(ctx, db, opts))

	admin, err := repository.NewUserRepository(db).GetByEmail(ctx, "admin@test.local")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, "DJ VYBE", admin.ArtistName)

	p, err := loadPresets()
	require.NoError(t, err)
	checkIns, err := repository.NewCheckInRepository(db).ListByEvent(ctx, p.FlagshipEvent.ID)
	require.NoError(t, err)
	require.Len(t, checkIns, 5)
	// Door order: earlier timestamps first, first two already performed.
	assert.True(t, checkIns[0].Performed)
	assert.True(t, checkIns[1].Performed)
	assert.False(t, checkIns[4].Performed)
	for i := 1; i < len(checkIns); i++ {
		assert.False(t, checkIns[i].Timestamp.Before(checkIns[i-1].Timestamp))
	}
	for _, c := range checkIns {
		assert.Equal(t, models.StarForGuests(c.GuestCount), c.IsStar)
	}

	event, err := repository.NewEventRepository(db).GetByID(ctx, p.FlagshipEvent.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, event.CheckedInCount)

	t.Run("second run is a no-op", func(t *testing.T) {
		require.NoError(t, Demo(ctx, db, opts))
		users, err := repository.NewUserRepository(db).List(ctx, 200, 0)
		require.NoError(t, err)
		assert.Len(t, users, 6, "admin plus five artists, no duplicates")
	})
}
