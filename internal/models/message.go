// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Message is a direct message between two users. A conversation is the
// unordered pair {SenderID, ReceiverID}; conversation membership is derived
// at read time, never stored.
type Message struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	SenderID   string    `gorm:"not null;index" json:"sender_id"`
	ReceiverID string    `gorm:"not null;index" json:"receiver_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Timestamp  time.Time `gorm:"index" json:"timestamp"`
	Read       bool      `gorm:"default:false" json:"read"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
