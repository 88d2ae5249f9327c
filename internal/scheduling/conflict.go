package scheduling

import (
	"context"
	"fmt"
	"time"

	"festBooker/internal/models"
)

type VenueEventLister interface {
	ListVenueEvents(ctx context.Context, venueID int64) ([]models.Event, error)
}

// ConflictChecker decides whether a proposed [start, end) window collides
// with an event already scheduled on the venue.
type ConflictChecker struct {
	events VenueEventLister
}

func NewConflictChecker(events VenueEventLister) *ConflictChecker {
	return &ConflictChecker{events: events}
}

func (c *ConflictChecker) HasConflict(ctx context.Context, venueID int64, start, end time.Time) (bool, error) {
	events, err := c.events.ListVenueEvents(ctx, venueID)
	if err != nil {
		return false, fmt.Errorf("list events of venue %d: %w", venueID, err)
	}

	for _, e := range events {
		if e.VenueID == venueID && e.Overlaps(start, end) {
			return true, nil
		}
	}

	return false, nil
}
