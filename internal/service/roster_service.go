// Package service contains the application's business logic.
package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"vybe/internal/models"
	"vybe/internal/repository"
)

// RosterEntry is one row of the performance queue: a check-in joined with
// the artist who made it.
type RosterEntry struct {
	CheckIn models.CheckIn `json:"check_in"`
	Artist  models.User    `json:"artist"`
}

// RosterStats summarizes an event's full roster. Stats always cover every
// joined check-in, regardless of any search filter applied to the queue.
type RosterStats struct {
	TotalCheckIns  int `json:"total_check_ins"`
	TotalGuests    int `json:"total_guests"`
	StarCount      int `json:"star_count"`
	PerformedCount int `json:"performed_count"`
	CompleteCount  int `json:"complete_count"`
	// Remaining counts artists still waiting to perform.
	Remaining int `json:"remaining"`
}

// Roster is the admin view of an event: the (possibly filtered) queue plus
// stats over the unfiltered roster.
type Roster struct {
	EventID string        `json:"event_id"`
	Queue   []RosterEntry `json:"queue"`
	Stats   RosterStats   `json:"stats"`
}

// BuildRoster joins check-ins with their artists and orders them into the
// performance queue: ascending by check-in time, earlier insertion winning
// ties. Check-ins whose artist no longer exists are dropped.
func BuildRoster(checkIns []models.CheckIn, artists []models.User) []RosterEntry {
	byID := make(map[string]models.User, len(artists))
	for _, artist := range artists {
		byID[artist.ID] = artist
	}

	entries := make([]RosterEntry, 0, len(checkIns))
	for _, checkIn := range checkIns {
		artist, ok := byID[checkIn.UserID]
		if !ok {
			continue
		}
		entries = append(entries, RosterEntry{CheckIn: checkIn, Artist: artist})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CheckIn.Timestamp.Before(entries[j].CheckIn.Timestamp)
	})
	return entries
}

// FilterRoster narrows the queue to artists whose name contains the search
// term, case-insensitively. An empty term returns the queue unchanged.
func FilterRoster(entries []RosterEntry, search string) []RosterEntry {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return entries
	}
	filtered := make([]RosterEntry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Artist.ArtistName), term) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// ComputeStats aggregates the full, unfiltered roster.
func ComputeStats(entries []RosterEntry) RosterStats {
	stats := RosterStats{TotalCheckIns: len(entries)}
	for _, entry := range entries {
		stats.TotalGuests += entry.CheckIn.GuestCount
		if entry.CheckIn.IsStar {
			stats.StarCount++
		}
		if entry.CheckIn.Performed {
			stats.PerformedCount++
		}
		if entry.CheckIn.IsComplete {
			stats.CompleteCount++
		}
	}
	stats.Remaining = stats.TotalCheckIns - stats.PerformedCount
	return stats
}

// RosterService assembles the admin performance queue for an event.
type RosterService struct {
	checkInRepo repository.CheckInRepository
	userRepo    repository.UserRepository
}

// NewRosterService returns a new RosterService.
func NewRosterService(checkInRepo repository.CheckInRepository, userRepo repository.UserRepository) *RosterService {
	return &RosterService{checkInRepo: checkInRepo, userRepo: userRepo}
}

// PerformanceQueue builds the event roster. The search term filters the
// queue only; stats always describe the whole roster.
func (s *RosterService) PerformanceQueue(ctx context.Context, eventID, search string) (*Roster, error) {
	checkIns, err := s.checkInRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(checkIns))
	seen := make(map[string]struct{}, len(checkIns))
	for _, checkIn := range checkIns {
		if _, dup := seen[checkIn.UserID]; dup {
			continue
		}
		seen[checkIn.UserID] = struct{}{}
		ids = append(ids, checkIn.UserID)
	}

	artists, err := s.userRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := BuildRoster(checkIns, artists)
	return &Roster{
		EventID: eventID,
		Queue:   FilterRoster(entries, search),
		Stats:   ComputeStats(entries),
	}, nil
}

// NextUp returns the first artist in the queue who has not performed yet,
// or nil when everyone has.
func (s *RosterService) NextUp(ctx context.Context, eventID string) (*RosterEntry, error) {
	roster, err := s.PerformanceQueue(ctx, eventID, "")
	if err != nil {
		return nil, err
	}
	for i := range roster.Queue {
		if !roster.Queue[i].CheckIn.Performed {
			return &roster.Queue[i], nil
		}
	}
	return nil, nil
}

// minutesPerSong is a rough per-song figure used for queue position
// estimates shown to artists.
const minutesPerSong = 4 * time.Minute

// EstimatedWait reports how long the given check-in will likely wait, based
// on the unperformed songs queued ahead of it. Unknown check-ins get zero.
func EstimatedWait(entries []RosterEntry, checkInID string) time.Duration {
	var wait time.Duration
	for _, entry := range entries {
		if entry.CheckIn.ID == checkInID {
			return wait
		}
		if !entry.CheckIn.Performed {
			wait += time.Duration(entry.CheckIn.SongCount) * minutesPerSong
		}
	}
	return 0
}
