package repository

import (
	"context"
	"errors"

	"vybe/internal/cache"
	"vybe/internal/models"

	"gorm.io/gorm"
)

// CheckInRepository defines persistence operations for check-ins.
type CheckInRepository interface {
	GetByID(ctx context.Context, id string) (*models.CheckIn, error)
	Create(ctx context.Context, checkIn *models.CheckIn) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	// FindByUserAndEvent returns the user's earliest check-in at the event,
	// or nil when they have not checked in.
	FindByUserAndEvent(ctx context.Context, userID, eventID string) (*models.CheckIn, error)
	// ListByEvent returns the event's check-ins ordered by check-in time
	// ascending, ties broken by creation order.
	ListByEvent(ctx context.Context, eventID string) ([]models.CheckIn, error)
	ListByUser(ctx context.Context, userID string) ([]models.CheckIn, error)
}

type checkInRepository struct {
	db *gorm.DB
}

// NewCheckInRepository returns a new CheckInRepository implementation.
func NewCheckInRepository(db *gorm.DB) CheckInRepository {
	return &checkInRepository{db: db}
}

func (r *checkInRepository) GetByID(ctx context.Context, id string) (*models.CheckIn, error) {
	var checkIn models.CheckIn
	if err := readDB(r.db).WithContext(ctx).Where("id = ?", id).First(&checkIn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("CheckIn", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &checkIn, nil
}

func (r *checkInRepository) FindByUserAndEvent(ctx context.Context, userID, eventID string) (*models.CheckIn, error) {
	var checkIn models.CheckIn
	err := readDB(r.db).WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Order("timestamp ASC").
		First(&checkIn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &checkIn, nil
}

func (r *checkInRepository) Create(ctx context.Context, checkIn *models.CheckIn) error {
	ensureID(&checkIn.ID)
	if err := r.db.WithContext(ctx).Create(checkIn).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateRoster(ctx, checkIn.EventID)
	return nil
}

// Update merges the given fields into the stored check-in. Updating an
// unknown id is a no-op, not an error.
func (r *checkInRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Model(&models.CheckIn{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return models.NewInternalError(err)
	}
	r.invalidateRosterFor(ctx, id)
	return nil
}

func (r *checkInRepository) Delete(ctx context.Context, id string) error {
	r.invalidateRosterFor(ctx, id)
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CheckIn{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *checkInRepository) invalidateRosterFor(ctx context.Context, id string) {
	var eventID string
	if err := r.db.WithContext(ctx).Model(&models.CheckIn{}).
		Where("id = ?", id).
		Pluck("event_id", &eventID).Error; err == nil && eventID != "" {
		cache.InvalidateRoster(ctx, eventID)
	}
}

func (r *checkInRepository) ListByEvent(ctx context.Context, eventID string) ([]models.CheckIn, error) {
	var checkIns []models.CheckIn
	key := cache.RosterKey(eventID)

	err := cache.Aside(ctx, key, &checkIns, cache.RosterTTL, func() error {
		if err := readDB(r.db).WithContext(ctx).
			Where("event_id = ?", eventID).
			Order("timestamp ASC, created_at ASC").
			Find(&checkIns).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *checkInRepository) ListByUser(ctx context.Context, userID string) ([]models.CheckIn, error) {
	var checkIns []models.CheckIn
	if err := readDB(r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&checkIns).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return checkIns, nil
}
