// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// NotificationType classifies a notification for display.
type NotificationType string

const (
	NotificationPerformance NotificationType = "performance"
	NotificationMessage     NotificationType = "message"
	NotificationSystem      NotificationType = "system"
)

// Notification is a one-way alert targeted at a single user.
type Notification struct {
	ID        string           `gorm:"primaryKey" json:"id"`
	UserID    string           `gorm:"not null;index" json:"user_id"`
	Content   string           `gorm:"type:text;not null" json:"content"`
	Timestamp time.Time        `gorm:"index" json:"timestamp"`
	Read      bool             `gorm:"default:false" json:"read"`
	Type      NotificationType `gorm:"default:'system'" json:"type"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
