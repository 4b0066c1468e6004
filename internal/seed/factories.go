// Package seed provides helpers to create demo and test data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"vybe/internal/models"
	"vybe/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var artistNameSuffixes = []string{"FLOW", "NOVA", "BEATS", "WAVE", "VERSE", "ECHO", "BLAZE", "RHYME"}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	users    repository.UserRepository
	events   repository.EventRepository
	checkIns repository.CheckInRepository
	rng      *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		users:    repository.NewUserRepository(db),
		events:   repository.NewEventRepository(db),
		checkIns: repository.NewCheckInRepository(db),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateArtist persists a demo artist with a plausible profile.
func (f *Factory) CreateArtist(ctx context.Context, overrides ...func(*models.User)) (*models.User, error) {
	stage := fmt.Sprintf("%s %s", gofakeit.FirstName(), artistNameSuffixes[f.rng.Intn(len(artistNameSuffixes))])
	handle := gofakeit.Username()

	hash, err := bcrypt.GenerateFromPassword([]byte("DemoArtist123!"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ArtistName:   stage,
		Email:        gofakeit.Email(),
		Password:     string(hash),
		Bio:          gofakeit.Sentence(8),
		Instagram:    "@" + handle,
		TikTok:       "@" + handle,
		ProfileImage: fmt.Sprintf("https://picsum.photos/seed/%s/400/400", gofakeit.UUID()),
		Phone:        gofakeit.Phone(),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateEvent persists a demo event.
func (f *Factory) CreateEvent(ctx context.Context, overrides ...func(*models.Event)) (*models.Event, error) {
	event := &models.Event{
		Name:        gofakeit.HipsterSentence(3),
		Description: gofakeit.Paragraph(1, 2, 8, " "),
		Location:    fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		Venue:       gofakeit.Company(),
		QRID:        "qr-" + gofakeit.UUID(),
		Date:        time.Now().Add(time.Duration(f.rng.Intn(30*24)) * time.Hour),
		Status:      models.EventScheduled,
		Capacity:    50 + f.rng.Intn(200),
		Image:       fmt.Sprintf("https://picsum.photos/seed/event-%s/800/450", gofakeit.UUID()),
		Tags:        []string{"hip hop", "live"},
	}
	for _, override := range overrides {
		override(event)
	}
	if err := f.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// CreateCheckIn persists a check-in for an artist at an event, back-dated by
// the given offset so seeded queues have spread-out positions. The star flag
// is set directly from the guest count the same way the submission flow
// would set it.
func (f *Factory) CreateCheckIn(ctx context.Context, user *models.User, event *models.Event, backdate time.Duration, overrides ...func(*models.CheckIn)) (*models.CheckIn, error) {
	guests := f.rng.Intn(7)
	checkIn := &models.CheckIn{
		UserID:     user.ID,
		EventID:    event.ID,
		Timestamp:  time.Now().Add(-backdate),
		GuestCount: guests,
		SongCount:  1 + f.rng.Intn(3),
		IsStar:     models.StarForGuests(guests),
	}
	for _, override := range overrides {
		override(checkIn)
	}
	if err := f.checkIns.Create(ctx, checkIn); err != nil {
		return nil, err
	}
	if err := f.events.IncrementCheckedIn(ctx, event.ID); err != nil {
		return nil, err
	}
	return checkIn, nil
}
