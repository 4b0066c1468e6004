package service

import (
	"context"
	"testing"

	"vybe/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformService_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("name is required", func(t *testing.T) {
		t.Parallel()
		svc := NewPlatformService(noopPlatformRepo())
		assertValidationError(t, svc.Create(ctx, &models.Platform{Name: "  "}))
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		var created *models.Platform
		repo := noopPlatformRepo()
		repo.createFn = func(_ context.Context, p *models.Platform) error {
			created = p
			return nil
		}
		svc := NewPlatformService(repo)

		require.NoError(t, svc.Create(ctx, &models.Platform{Name: "Night Shift Records"}))
		assert.Equal(t, "Night Shift Records", created.Name)
	})
}

func TestPlatformService_List(t *testing.T) {
	t.Parallel()

	repo := noopPlatformRepo()
	repo.listFn = func(_ context.Context) ([]models.Platform, error) {
		return []models.Platform{{Name: "Featured", Featured: true}, {Name: "Plain"}}, nil
	}
	svc := NewPlatformService(repo)

	platforms, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, platforms, 2)
	assert.True(t, platforms[0].Featured)
}
