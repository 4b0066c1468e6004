package repository

import (
	"context"
	"testing"

	"vybe/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformRepository_ListFeaturedFirst(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	repo := NewPlatformRepository(db)
	ctx := context.Background()

	plain := &models.Platform{Name: "AAA Collective"}
	featured := &models.Platform{Name: "ZZZ Records", Featured: true}
	require.NoError(t, repo.Create(ctx, plain))
	require.NoError(t, repo.Create(ctx, featured))

	platforms, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, platforms, 2)
	assert.Equal(t, "ZZZ Records", platforms[0].Name, "featured entries lead even out of name order")
}

func TestPlatformRepository_UpsertIsIdempotent(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	repo := NewPlatformRepository(db)
	ctx := context.Background()

	platform := &models.Platform{ID: "p-1", Name: "Night Shift", Description: "late night sessions"}
	require.NoError(t, repo.Upsert(ctx, platform))

	refreshed := &models.Platform{ID: "p-1", Name: "Night Shift", Description: "rebranded", Featured: true}
	require.NoError(t, repo.Upsert(ctx, refreshed))

	platforms, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, platforms, 1)
	assert.Equal(t, "rebranded", platforms[0].Description)
	assert.True(t, platforms[0].Featured)
}

func TestPlatformRepository_Update(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	repo := NewPlatformRepository(db)
	ctx := context.Background()

	platform := &models.Platform{Name: "The Booth"}
	require.NoError(t, repo.Create(ctx, platform))

	require.NoError(t, repo.Update(ctx, platform.ID, map[string]any{"website": "https://thebooth.example.com"}))

	got, err := repo.GetByID(ctx, platform.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://thebooth.example.com", got.Website)

	assert.NoError(t, repo.Update(ctx, "no-such-id", map[string]any{"name": "nope"}))
}
