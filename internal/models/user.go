// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an artist (or admin) in the Vybe application.
// IDs are opaque UUID strings assigned by the repository on create.
type User struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	ArtistName       string    `gorm:"not null;index" json:"artist_name"`
	Email            string    `gorm:"index" json:"email,omitempty"`
	Password         string    `json:"-"`
	ProfileImage     string    `json:"profile_image,omitempty"`
	Bio              string    `json:"bio,omitempty"`
	Instagram        string    `json:"instagram,omitempty"`
	TikTok           string    `json:"tiktok,omitempty"`
	YouTube          string    `json:"youtube,omitempty"`
	Twitter          string    `json:"twitter,omitempty"`
	TwitchEmbed      string    `json:"twitch_embed,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
	IsAdmin          bool      `gorm:"default:false" json:"is_admin"`
	DarkMode         bool      `gorm:"default:false" json:"dark_mode"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
