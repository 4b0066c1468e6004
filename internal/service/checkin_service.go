package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vybe/internal/featureflags"
	"vybe/internal/middleware"
	"vybe/internal/models"
	"vybe/internal/repository"
	"vybe/internal/validation"
)

// callToStageFormat is the announcement sent when an admin calls an artist
// up. Kept as a format string so the artist name slots in verbatim.
const callToStageFormat = "%s, please come to the DJ booth - it's your time to perform!"

// CheckInService handles the artist check-in flow and the admin queue
// operations on individual check-ins.
type CheckInService struct {
	checkInRepo      repository.CheckInRepository
	eventRepo        repository.EventRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	flags            *featureflags.Manager
	now              func() time.Time
}

// NewCheckInService returns a new CheckInService. The flags manager may be
// nil, which disables flag-gated side effects.
func NewCheckInService(
	checkInRepo repository.CheckInRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	flags *featureflags.Manager,
) *CheckInService {
	return &CheckInService{
		checkInRepo:      checkInRepo,
		eventRepo:        eventRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		flags:            flags,
		now:              time.Now,
	}
}

// SubmitCheckInInput carries the door check-in form. Force repeats the
// check-in even when one already exists for this user and event.
type SubmitCheckInInput struct {
	UserID         string
	EventID        string
	ArtistName     string
	Instagram      string
	GuestCount     int
	SongCount      int
	SpecialEffects bool
	OtherContent   string
	Force          bool
}

// SubmitResult reports the outcome of a check-in submission. When the user
// had already checked in and did not force a repeat, CheckIn is the existing
// row and AlreadyCheckedIn is set.
type SubmitResult struct {
	CheckIn          *models.CheckIn `json:"check_in"`
	AlreadyCheckedIn bool            `json:"already_checked_in"`
}

// Submit registers an artist at an event. The submitted artist name and
// Instagram handle are written back to the profile so the roster always
// shows what the artist entered at the door.
func (s *CheckInService) Submit(ctx context.Context, in SubmitCheckInInput) (*SubmitResult, error) {
	if in.SongCount == 0 {
		in.SongCount = 1
	}
	fields := validation.ValidateCheckInForm(validation.CheckInForm{
		ArtistName:     in.ArtistName,
		Instagram:      in.Instagram,
		GuestCount:     in.GuestCount,
		SongCount:      in.SongCount,
		OtherContent:   in.OtherContent,
		SpecialEffects: in.SpecialEffects,
	})
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	event, err := s.eventRepo.GetByID(ctx, in.EventID)
	if err != nil {
		return nil, err
	}
	if event.Status == models.EventEnded {
		return nil, models.NewValidationError("This event has ended")
	}

	if !in.Force {
		existing, err := s.checkInRepo.FindByUserAndEvent(ctx, in.UserID, in.EventID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return &SubmitResult{CheckIn: existing, AlreadyCheckedIn: true}, nil
		}
	}

	if err := s.userRepo.Update(ctx, in.UserID, map[string]any{
		"artist_name": in.ArtistName,
		"instagram":   in.Instagram,
	}); err != nil {
		return nil, err
	}

	checkIn := &models.CheckIn{
		UserID:         in.UserID,
		EventID:        in.EventID,
		Timestamp:      s.now(),
		GuestCount:     in.GuestCount,
		SongCount:      in.SongCount,
		SpecialEffects: in.SpecialEffects,
		OtherContent:   in.OtherContent,
		IsStar:         models.StarForGuests(in.GuestCount),
	}
	if err := s.checkInRepo.Create(ctx, checkIn); err != nil {
		return nil, err
	}

	if err := s.eventRepo.IncrementCheckedIn(ctx, in.EventID); err != nil {
		middleware.Logger.WarnContext(ctx, "check-in counter update failed",
			slog.String("event_id", in.EventID),
			slog.String("error", err.Error()),
		)
	}
	middleware.CheckInsSubmitted.WithLabelValues(in.EventID).Inc()

	return &SubmitResult{CheckIn: checkIn}, nil
}

// UpdateGuestCount sets a check-in's guest count and recomputes its star
// flag from the new count alone. This is the only write path that keeps the
// two in sync.
func (s *CheckInService) UpdateGuestCount(ctx context.Context, checkInID string, guestCount int) error {
	if guestCount < 0 {
		return models.NewValidationError("Guest count cannot be negative")
	}
	return s.checkInRepo.Update(ctx, checkInID, map[string]any{
		"guest_count": guestCount,
		"is_star":     models.StarForGuests(guestCount),
	})
}

// UpdateSongCount sets how many songs the artist will perform.
func (s *CheckInService) UpdateSongCount(ctx context.Context, checkInID string, songCount int) error {
	if songCount < 1 {
		return models.NewValidationError("Song count must be at least 1")
	}
	return s.checkInRepo.Update(ctx, checkInID, map[string]any{"song_count": songCount})
}

// UpdateNotes replaces the free-form notes on a check-in.
func (s *CheckInService) UpdateNotes(ctx context.Context, checkInID, notes string) error {
	if len(notes) > 500 {
		return models.NewValidationError("Notes cannot exceed 500 characters")
	}
	return s.checkInRepo.Update(ctx, checkInID, map[string]any{"other_content": notes})
}

// SetComplete toggles the paperwork-complete flag.
func (s *CheckInService) SetComplete(ctx context.Context, checkInID string, complete bool) error {
	return s.checkInRepo.Update(ctx, checkInID, map[string]any{"is_complete": complete})
}

// SetSpecialEffects toggles the special-effects request flag.
func (s *CheckInService) SetSpecialEffects(ctx context.Context, checkInID string, effects bool) error {
	return s.checkInRepo.Update(ctx, checkInID, map[string]any{"special_effects": effects})
}

// MarkPerformed records that the artist has taken the stage.
func (s *CheckInService) MarkPerformed(ctx context.Context, checkInID string) error {
	return s.checkInRepo.Update(ctx, checkInID, map[string]any{"performed": true})
}

// Reactivate puts a performed artist back into the waiting queue at their
// original position.
func (s *CheckInService) Reactivate(ctx context.Context, checkInID string) error {
	return s.checkInRepo.Update(ctx, checkInID, map[string]any{"performed": false})
}

// Remove deletes a check-in from the roster.
func (s *CheckInService) Remove(ctx context.Context, checkInID string) error {
	return s.checkInRepo.Delete(ctx, checkInID)
}

// Get returns a single check-in.
func (s *CheckInService) Get(ctx context.Context, checkInID string) (*models.CheckIn, error) {
	return s.checkInRepo.GetByID(ctx, checkInID)
}

// History lists a user's check-ins, newest first.
func (s *CheckInService) History(ctx context.Context, userID string) ([]models.CheckIn, error) {
	return s.checkInRepo.ListByUser(ctx, userID)
}

// CallToStage notifies the artist behind a check-in that it is their turn.
// Gated by the performance_notifications flag; when the flag is off for the
// artist the call succeeds without sending anything.
func (s *CheckInService) CallToStage(ctx context.Context, checkInID string) (*models.Notification, error) {
	checkIn, err := s.checkInRepo.GetByID(ctx, checkInID)
	if err != nil {
		return nil, err
	}
	artist, err := s.userRepo.GetByID(ctx, checkIn.UserID)
	if err != nil {
		return nil, err
	}

	if !s.flags.Enabled("performance_notifications", artist.ID) {
		return nil, nil
	}

	notification := &models.Notification{
		UserID:    artist.ID,
		Content:   fmt.Sprintf(callToStageFormat, artist.ArtistName),
		Timestamp: s.now(),
		Type:      models.NotificationPerformance,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}
