package repository

import (
	"context"
	"errors"

	"vybe/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlatformRepository defines persistence operations for directory platforms.
type PlatformRepository interface {
	GetByID(ctx context.Context, id string) (*models.Platform, error)
	Create(ctx context.Context, platform *models.Platform) error
	// Upsert inserts the platform or refreshes an existing row with the
	// same id. Seeding runs it on every boot.
	Upsert(ctx context.Context, platform *models.Platform) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	// List returns platforms with featured entries first, then by name.
	List(ctx context.Context) ([]models.Platform, error)
}

type platformRepository struct {
	db *gorm.DB
}

// NewPlatformRepository returns a new PlatformRepository implementation.
func NewPlatformRepository(db *gorm.DB) PlatformRepository {
	return &platformRepository{db: db}
}

func (r *platformRepository) GetByID(ctx context.Context, id string) (*models.Platform, error) {
	var platform models.Platform
	if err := readDB(r.db).WithContext(ctx).Where("id = ?", id).First(&platform).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Platform", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &platform, nil
}

func (r *platformRepository) Create(ctx context.Context, platform *models.Platform) error {
	ensureID(&platform.ID)
	if err := r.db.WithContext(ctx).Create(platform).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Platform already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *platformRepository) Upsert(ctx context.Context, platform *models.Platform) error {
	ensureID(&platform.ID)
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "logo", "instagram", "website", "contact_email", "featured",
		}),
	}).Create(platform).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *platformRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Model(&models.Platform{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *platformRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Platform{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *platformRepository) List(ctx context.Context) ([]models.Platform, error) {
	var platforms []models.Platform
	if err := readDB(r.db).WithContext(ctx).
		Order("featured DESC, name ASC").
		Find(&platforms).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return platforms, nil
}
