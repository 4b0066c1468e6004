package seed

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"vybe/internal/models"
	"vybe/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed presets.yaml
var presetsRaw []byte

type platformPreset struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	Instagram    string `yaml:"instagram"`
	Website      string `yaml:"website"`
	ContactEmail string `yaml:"contact_email"`
	Featured     bool   `yaml:"featured"`
}

type eventPreset struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Location    string   `yaml:"location"`
	Venue       string   `yaml:"venue"`
	QRID        string   `yaml:"qr_id"`
	Capacity    int      `yaml:"capacity"`
	Tags        []string `yaml:"tags"`
}

type presets struct {
	Platforms     []platformPreset `yaml:"platforms"`
	FlagshipEvent eventPreset      `yaml:"flagship_event"`
}

func loadPresets() (*presets, error) {
	var p presets
	if err := yaml.Unmarshal(presetsRaw, &p); err != nil {
		return nil, fmt.Errorf("parse seed presets: %w", err)
	}
	return &p, nil
}

// ApplyPresets upserts the platform directory and the flagship event. It is
// idempotent and safe to run on every boot.
func ApplyPresets(ctx context.Context, db *gorm.DB) error {
	p, err := loadPresets()
	if err != nil {
		return err
	}

	platformRepo := repository.NewPlatformRepository(db)
	for _, preset := range p.Platforms {
		platform := &models.Platform{
			ID:           preset.ID,
			Name:         preset.Name,
			Description:  preset.Description,
			Instagram:    preset.Instagram,
			Website:      preset.Website,
			ContactEmail: preset.ContactEmail,
			Featured:     preset.Featured,
		}
		if err := platformRepo.Upsert(ctx, platform); err != nil {
			return fmt.Errorf("upsert platform %q: %w", preset.Name, err)
		}
	}

	eventRepo := repository.NewEventRepository(db)
	if _, err := eventRepo.GetByID(ctx, p.FlagshipEvent.ID); err == nil {
		return nil
	}
	event := &models.Event{
		ID:          p.FlagshipEvent.ID,
		Name:        p.FlagshipEvent.Name,
		Description: p.FlagshipEvent.Description,
		Location:    p.FlagshipEvent.Location,
		Venue:       p.FlagshipEvent.Venue,
		QRID:        p.FlagshipEvent.QRID,
		Capacity:    p.FlagshipEvent.Capacity,
		Tags:        p.FlagshipEvent.Tags,
		// Next Friday evening.
		Date:     nextFriday(time.Now()),
		Status:   models.EventScheduled,
		IsActive: true,
	}
	if err := eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create flagship event: %w", err)
	}
	return nil
}

func nextFriday(now time.Time) time.Time {
	daysAhead := (int(time.Friday) - int(now.Weekday()) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	day := now.AddDate(0, 0, daysAhead)
	return time.Date(day.Year(), day.Month(), day.Day(), 21, 0, 0, 0, day.Location())
}
