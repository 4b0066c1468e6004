package service

import (
	"context"
	"strings"
	"time"

	"vybe/internal/models"
	"vybe/internal/repository"

	"github.com/google/uuid"
)

// EventView pairs an event with its display classification, computed at
// read time so LIVE always reflects the stored status first.
type EventView struct {
	models.Event
	DisplayStatus models.DisplayStatus `json:"display_status"`
}

// EventService handles event lifecycle and browsing.
type EventService struct {
	eventRepo repository.EventRepository
	now       func() time.Time
}

// NewEventService returns a new EventService.
func NewEventService(eventRepo repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo, now: time.Now}
}

// CreateEventInput carries the admin event creation form.
type CreateEventInput struct {
	Name        string
	Description string
	Date        time.Time
	EndDate     *time.Time
	Location    string
	Venue       string
	Capacity    int
	Image       string
	Tags        []string
	Price       float64
}

// Create registers a new scheduled event. Every event gets a QR code id up
// front so door signage can be printed before the night starts.
func (s *EventService) Create(ctx context.Context, in CreateEventInput) (*models.Event, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, models.NewValidationError("Event name is required")
	}
	if strings.TrimSpace(in.Location) == "" {
		return nil, models.NewValidationError("Event location is required")
	}
	if in.Date.IsZero() {
		return nil, models.NewValidationError("Event date is required")
	}

	event := &models.Event{
		Name:        in.Name,
		Description: in.Description,
		Date:        in.Date,
		EndDate:     in.EndDate,
		Location:    in.Location,
		Venue:       in.Venue,
		QRID:        uuid.NewString(),
		Status:      models.EventScheduled,
		Capacity:    in.Capacity,
		Image:       in.Image,
		Tags:        in.Tags,
		Price:       in.Price,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Update merges partial fields into an event. Lifecycle fields go through
// GoLive and End, not here.
func (s *EventService) Update(ctx context.Context, eventID string, fields map[string]any) error {
	delete(fields, "status")
	delete(fields, "is_active")
	delete(fields, "checked_in_count")
	return s.eventRepo.Update(ctx, eventID, fields)
}

// Delete removes an event.
func (s *EventService) Delete(ctx context.Context, eventID string) error {
	return s.eventRepo.Delete(ctx, eventID)
}

// Get returns a single event with its display status.
func (s *EventService) Get(ctx context.Context, eventID string) (*EventView, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return s.view(*event), nil
}

// GetByQR resolves an event from a scanned QR code id.
func (s *EventService) GetByQR(ctx context.Context, qrID string) (*EventView, error) {
	event, err := s.eventRepo.GetByQRID(ctx, qrID)
	if err != nil {
		return nil, err
	}
	return s.view(*event), nil
}

// List returns all events with display statuses, soonest first.
func (s *EventService) List(ctx context.Context) ([]EventView, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(events), nil
}

// ListActive returns the venue's featured events.
func (s *EventService) ListActive(ctx context.Context) ([]EventView, error) {
	events, err := s.eventRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(events), nil
}

// GoLive opens the floor: the event becomes live and is promoted to the
// venue's active event in the same write.
func (s *EventService) GoLive(ctx context.Context, eventID string) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.Status == models.EventEnded {
		return models.NewValidationError("An ended event cannot go live again")
	}
	return s.eventRepo.Update(ctx, eventID, map[string]any{
		"status":    models.EventLive,
		"is_active": true,
	})
}

// End closes out the event. The active flag is left alone so the night's
// roster stays reachable until an admin promotes the next event.
func (s *EventService) End(ctx context.Context, eventID string) error {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return err
	}
	return s.eventRepo.Update(ctx, eventID, map[string]any{
		"status": models.EventEnded,
	})
}

func (s *EventService) view(event models.Event) *EventView {
	return &EventView{Event: event, DisplayStatus: event.DisplayStatusAt(s.now())}
}

func (s *EventService) views(events []models.Event) []EventView {
	now := s.now()
	views := make([]EventView, 0, len(events))
	for _, event := range events {
		views = append(views, EventView{Event: event, DisplayStatus: event.DisplayStatusAt(now)})
	}
	return views
}
