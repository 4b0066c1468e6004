package service

import (
	"context"
	"strings"

	"vybe/internal/models"
	"vybe/internal/repository"
)

// PlatformService handles the industry platform directory.
type PlatformService struct {
	platformRepo repository.PlatformRepository
}

// NewPlatformService returns a new PlatformService.
func NewPlatformService(platformRepo repository.PlatformRepository) *PlatformService {
	return &PlatformService{platformRepo: platformRepo}
}

// List returns the directory, featured platforms first.
func (s *PlatformService) List(ctx context.Context) ([]models.Platform, error) {
	return s.platformRepo.List(ctx)
}

// Get returns one platform.
func (s *PlatformService) Get(ctx context.Context, platformID string) (*models.Platform, error) {
	return s.platformRepo.GetByID(ctx, platformID)
}

// Create adds a platform to the directory.
func (s *PlatformService) Create(ctx context.Context, platform *models.Platform) error {
	if strings.TrimSpace(platform.Name) == "" {
		return models.NewValidationError("Platform name is required")
	}
	return s.platformRepo.Create(ctx, platform)
}

// Update merges partial fields into a platform.
func (s *PlatformService) Update(ctx context.Context, platformID string, fields map[string]any) error {
	return s.platformRepo.Update(ctx, platformID, fields)
}

// Delete removes a platform from the directory.
func (s *PlatformService) Delete(ctx context.Context, platformID string) error {
	return s.platformRepo.Delete(ctx, platformID)
}
