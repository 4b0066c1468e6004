// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// EventStatus is the lifecycle state of an event. An event starts scheduled,
// moves to live when an admin opens the floor, and to ended when the admin
// closes it. There is no transition back from ended.
type EventStatus string

const (
	EventScheduled EventStatus = "scheduled"
	EventLive      EventStatus = "live"
	EventEnded     EventStatus = "ended"
)

// DisplayStatus is the read-side classification shown to attendees. It is
// derived from the stored status and the event date, never stored.
type DisplayStatus string

const (
	DisplayLive     DisplayStatus = "LIVE"
	DisplayUpcoming DisplayStatus = "UPCOMING"
	DisplayEnded    DisplayStatus = "ENDED"
)

// Event represents a venue event artists check in to.
type Event struct {
	ID          string      `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"not null" json:"name"`
	Description string      `json:"description,omitempty"`
	Date        time.Time   `gorm:"index" json:"date"`
	EndDate     *time.Time  `json:"end_date,omitempty"`
	Location    string      `gorm:"not null" json:"location"`
	Venue       string      `json:"venue,omitempty"`
	QRID        string      `gorm:"column:qr_id;index" json:"qr_id"`
	Status      EventStatus `gorm:"default:'scheduled';index" json:"status"`
	// IsActive marks the event as the venue's featured/active event. Going
	// live forces it on; ending an event leaves it untouched.
	IsActive bool `gorm:"default:false" json:"is_active"`
	Capacity int  `json:"capacity,omitempty"`
	// CheckedInCount is a denormalized counter maintained by the check-in
	// submission flow. It is never recomputed from rows.
	CheckedInCount int       `gorm:"default:0" json:"checked_in_count"`
	Image          string    `json:"image,omitempty"`
	Tags           []string  `gorm:"serializer:json" json:"tags"`
	Price          float64   `json:"price,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// IsLive reports whether the event is currently live.
func (e *Event) IsLive() bool {
	return e.Status == EventLive
}

// DisplayStatusAt classifies the event for display at the given instant.
// The stored lifecycle wins over the calendar: live reads LIVE and ended
// reads ENDED regardless of date. Only scheduled events fall back to the
// date, with a future date reading UPCOMING.
func (e *Event) DisplayStatusAt(now time.Time) DisplayStatus {
	switch e.Status {
	case EventLive:
		return DisplayLive
	case EventEnded:
		return DisplayEnded
	}
	if e.Date.After(now) {
		return DisplayUpcoming
	}
	return DisplayEnded
}
