package validation

import (
	"fmt"
	"strings"
)

const (
	maxGuestCount = 50
	minSongCount  = 1
	maxSongCount  = 10
	maxNotesLen   = 500
)

// CheckInForm carries the fields an artist submits when checking in at the
// door. Artist name and Instagram handle are required so the host can
// announce and tag performers.
type CheckInForm struct {
	ArtistName     string
	Instagram      string
	GuestCount     int
	SongCount      int
	OtherContent   string
	SpecialEffects bool
}

// ValidateCheckInForm returns per-field error messages keyed by the JSON
// field name. An empty map means the form is valid.
func ValidateCheckInForm(form CheckInForm) map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(form.ArtistName) == "" {
		fields["artist_name"] = "Please fill in this field"
	} else if err := ValidateArtistName(form.ArtistName); err != nil {
		fields["artist_name"] = err.Error()
	}

	if strings.TrimSpace(form.Instagram) == "" {
		fields["instagram"] = "Please fill in this field"
	}

	if form.GuestCount < 0 {
		fields["guest_count"] = "Guest count cannot be negative"
	} else if form.GuestCount > maxGuestCount {
		fields["guest_count"] = fmt.Sprintf("Guest count cannot exceed %d", maxGuestCount)
	}

	if form.SongCount < minSongCount {
		fields["song_count"] = fmt.Sprintf("Song count must be at least %d", minSongCount)
	} else if form.SongCount > maxSongCount {
		fields["song_count"] = fmt.Sprintf("Song count cannot exceed %d", maxSongCount)
	}

	if len(form.OtherContent) > maxNotesLen {
		fields["other_content"] = fmt.Sprintf("Notes cannot exceed %d characters", maxNotesLen)
	}

	return fields
}
