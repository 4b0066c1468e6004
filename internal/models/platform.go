// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Platform is an industry platform (label, collective, podcast) listed in the
// directory. Purely informational; no relation to other entities.
type Platform struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Logo         string    `json:"logo,omitempty"`
	Instagram    string    `json:"instagram,omitempty"`
	Website      string    `json:"website,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Featured     bool      `gorm:"default:false" json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
