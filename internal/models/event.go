package models

import (
	"strings"
	"time"
)

type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"event_datetime"`
	EndTime     time.Time `json:"end_datetime"`
	Capacity    int       `json:"capacity"`
	Cost        float64   `json:"cost"`
	OrganizerID int64     `json:"organizer_id"`
	VenueID     int64     `json:"venue_id"`
}

// Overlaps reports whether the event's [StartTime, EndTime) window intersects [start, end).
func (e Event) Overlaps(start, end time.Time) bool {
	return e.StartTime.Before(end) && e.EndTime.After(start)
}

type EventDraft struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Capacity    int
	Cost        float64
	VenueID     int64
}

func (d EventDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return NewValidationError("event title is required")
	}
	if !d.EndTime.After(d.StartTime) {
		return NewValidationError("end date & time must be after start date & time")
	}
	if d.Capacity <= 0 {
		return NewValidationError("event capacity must be a positive integer")
	}
	if d.Cost < 0 {
		return NewValidationError("event cost must not be negative")
	}

	return nil
}

func (d EventDraft) Event(organizerID int64) Event {
	return Event{
		Title:       strings.TrimSpace(d.Title),
		Description: d.Description,
		StartTime:   d.StartTime.UTC(),
		EndTime:     d.EndTime.UTC(),
		Capacity:    d.Capacity,
		Cost:        d.Cost,
		OrganizerID: organizerID,
		VenueID:     d.VenueID,
	}
}
