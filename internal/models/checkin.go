// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// StarGuestThreshold is the guest count at which a check-in becomes a star
// supporter. The threshold lives here so every write path and display path
// shares one definition.
const StarGuestThreshold = 4

// StarForGuests reports whether a guest count qualifies as a star supporter.
func StarForGuests(guestCount int) bool {
	return guestCount >= StarGuestThreshold
}

// CheckIn records an artist registering presence at an event. Timestamp is
// set on create and never mutated; the performance queue is ordered by it.
type CheckIn struct {
	ID      string `gorm:"primaryKey" json:"id"`
	UserID  string `gorm:"not null;index" json:"user_id"`
	EventID string `gorm:"not null;index" json:"event_id"`
	// Timestamp is the check-in instant, distinct from CreatedAt so seeded
	// demo data can back-date queue positions.
	Timestamp  time.Time `gorm:"index" json:"timestamp"`
	GuestCount int       `gorm:"default:0" json:"guest_count"`
	SongCount  int       `gorm:"default:1" json:"song_count"`
	IsComplete bool      `gorm:"default:false" json:"is_complete"`
	// IsStar is kept in sync with GuestCount by the guest-count update
	// operation. Writers that set it directly (seeding) bypass that path.
	IsStar         bool      `gorm:"default:false" json:"is_star"`
	Performed      bool      `gorm:"default:false" json:"performed"`
	SpecialEffects bool      `gorm:"default:false" json:"special_effects"`
	OtherContent   string    `json:"other_content,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
