package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vybe/internal/middleware"
	"vybe/internal/models"
	"vybe/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the demo seeder.
type Options struct {
	NumArtists    int
	AdminEmail    string
	AdminPassword string
}

// Demo populates the database with a full demo night: the preset platforms
// and flagship event, an admin account, a roster of artists checked in over
// the past hour, and some lobby chatter. Idempotent: if the admin already
// exists the demo data is assumed present and nothing is written.
func Demo(ctx context.Context, db *gorm.DB, opts Options) error {
	if opts.NumArtists <= 0 {
		opts.NumArtists = 10
	}
	if opts.AdminEmail == "" {
		opts.AdminEmail = "admin@vybe.local"
	}
	if opts.AdminPassword == "" {
		opts.AdminPassword = "ChangeMeAdmin1!"
	}

	userRepo := repository.NewUserRepository(db)
	if existing, err := userRepo.GetByEmail(ctx, opts.AdminEmail); err != nil {
		return err
	} else if existing != nil {
		middleware.Logger.InfoContext(ctx, "demo data already seeded, skipping")
		return nil
	}

	if err := ApplyPresets(ctx, db); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &models.User{
		ArtistName: "DJ VYBE",
		Email:      opts.AdminEmail,
		Password:   string(hash),
		Bio:        "Resident host. Runs the booth, runs the night.",
		Instagram:  "@djvybe",
		IsAdmin:    true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	eventRepo := repository.NewEventRepository(db)
	p, err := loadPresets()
	if err != nil {
		return err
	}
	event, err := eventRepo.GetByID(ctx, p.FlagshipEvent.ID)
	if err != nil {
		return err
	}

	factory := NewFactory(db)
	artists := make([]*models.User, 0, opts.NumArtists)
	for i := 0; i < opts.NumArtists; i++ {
		artist, err := factory.CreateArtist(ctx)
		if err != nil {
			return fmt.Errorf("create artist %d: %w", i, err)
		}
		artists = append(artists, artist)

		// Spread check-ins across the last hour so the queue has a clear
		// door order. The first few have already performed.
		backdate := time.Duration(opts.NumArtists-i) * 6 * time.Minute
		_, err = factory.CreateCheckIn(ctx, artist, event, backdate, func(c *models.CheckIn) {
			if i < 2 {
				c.Performed = true
				c.IsComplete = true
			}
		})
		if err != nil {
			return fmt.Errorf("check in artist %d: %w", i, err)
		}
	}

	if err := seedLobbyChatter(ctx, db, admin, artists); err != nil {
		return err
	}

	middleware.Logger.InfoContext(ctx, "demo data seeded",
		slog.Int("artists", len(artists)),
		slog.String("event", event.Name),
	)
	return nil
}

// seedLobbyChatter creates a few threads and notifications so the messaging
// screens have content on first load.
func seedLobbyChatter(ctx context.Context, db *gorm.DB, admin *models.User, artists []*models.User) error {
	if len(artists) < 2 {
		return nil
	}
	messageRepo := repository.NewMessageRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	now := time.Now()
	exchanges := []models.Message{
		{SenderID: artists[0].ID, ReceiverID: artists[1].ID, Content: "You going up tonight?", Timestamp: now.Add(-40 * time.Minute)},
		{SenderID: artists[1].ID, ReceiverID: artists[0].ID, Content: "Already checked in, see you there", Timestamp: now.Add(-38 * time.Minute), Read: true},
		{SenderID: admin.ID, ReceiverID: artists[0].ID, Content: "Doors at 9, list is live", Timestamp: now.Add(-55 * time.Minute)},
	}
	for i := range exchanges {
		if err := messageRepo.Create(ctx, &exchanges[i]); err != nil {
			return err
		}
	}

	welcome := &models.Notification{
		UserID:    artists[0].ID,
		Content:   "Welcome to the lobby. Check the queue to see when you're up.",
		Timestamp: now.Add(-50 * time.Minute),
		Type:      models.NotificationSystem,
	}
	return notificationRepo.Create(ctx, welcome)
}
