package cache

import (
	"context"
	"errors"
	"testing"

	"vybe/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside(t *testing.T) {
	t.Run("miss fetches and populates", func(t *testing.T) {
		mr := setupMiniredis(t)

		fetches := 0
		var user models.User
		err := Aside(context.Background(), UserKey("u-1"), &user, UserTTL, func() error {
			fetches++
			user = models.User{ID: "u-1", ArtistName: "MC FLOW"}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, fetches)
		assert.True(t, mr.Exists(UserKey("u-1")))

		// Second read hits the cache.
		var cached models.User
		err = Aside(context.Background(), UserKey("u-1"), &cached, UserTTL, func() error {
			fetches++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, fetches, "fetch should not run on a hit")
		assert.Equal(t, "MC FLOW", cached.ArtistName)
	})

	t.Run("fetch error propagates and nothing is cached", func(t *testing.T) {
		mr := setupMiniredis(t)

		fetchErr := errors.New("db down")
		var user models.User
		err := Aside(context.Background(), UserKey("u-2"), &user, UserTTL, func() error {
			return fetchErr
		})
		assert.ErrorIs(t, err, fetchErr)
		assert.False(t, mr.Exists(UserKey("u-2")))
	})

	t.Run("corrupt entry falls back to fetch", func(t *testing.T) {
		mr := setupMiniredis(t)
		require.NoError(t, mr.Set(UserKey("u-3"), "{not json"))

		var user models.User
		err := Aside(context.Background(), UserKey("u-3"), &user, UserTTL, func() error {
			user = models.User{ID: "u-3", ArtistName: "LUNA BEATS"}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "LUNA BEATS", user.ArtistName)
	})

	t.Run("works without a client", func(t *testing.T) {
		SetClient(nil)
		var user models.User
		err := Aside(context.Background(), UserKey("u-4"), &user, UserTTL, func() error {
			user = models.User{ID: "u-4"}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "u-4", user.ID)
	})
}

func TestInvalidate(t *testing.T) {
	mr := setupMiniredis(t)
	require.NoError(t, mr.Set(EventKey("e-1"), "{}"))
	require.NoError(t, mr.Set(RosterKey("e-1"), "[]"))

	InvalidateEvent(context.Background(), "e-1")

	assert.False(t, mr.Exists(EventKey("e-1")))
	assert.False(t, mr.Exists(RosterKey("e-1")))
}
