package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventOverlaps(t *testing.T) {
	t.Parallel()

	at := func(h, m int) time.Time {
		return time.Date(2025, 2, 14, h, m, 0, 0, time.UTC)
	}

	existing := Event{StartTime: at(9, 0), EndTime: at(10, 0)}

	testCases := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected bool
	}{
		{name: "identical", start: at(9, 0), end: at(10, 0), expected: true},
		{name: "overlaps end", start: at(9, 30), end: at(10, 30), expected: true},
		{name: "overlaps start", start: at(8, 30), end: at(9, 30), expected: true},
		{name: "envelops", start: at(8, 0), end: at(11, 0), expected: true},
		{name: "inside", start: at(9, 15), end: at(9, 45), expected: true},
		{name: "adjacent after", start: at(10, 0), end: at(11, 0), expected: false},
		{name: "adjacent before", start: at(8, 0), end: at(9, 0), expected: false},
		{name: "disjoint", start: at(12, 0), end: at(13, 0), expected: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, existing.Overlaps(tc.start, tc.end))
		})
	}
}

func TestEventDraftValidate(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 2, 14, 9, 0, 0, 0, time.UTC)
	valid := EventDraft{Title: "Hackathon", StartTime: start, EndTime: start.Add(time.Hour), Capacity: 10, VenueID: 1}

	assert.NoError(t, valid.Validate())

	endBeforeStart := valid
	endBeforeStart.EndTime = start
	assert.True(t, IsValidation(endBeforeStart.Validate()))

	noCapacity := valid
	noCapacity.Capacity = 0
	assert.True(t, IsValidation(noCapacity.Validate()))

	negativeCost := valid
	negativeCost.Cost = -1
	assert.True(t, IsValidation(negativeCost.Validate()))

	noTitle := valid
	noTitle.Title = "  "
	assert.True(t, IsValidation(noTitle.Validate()))
}

func TestBookingStatusActive(t *testing.T) {
	assert.True(t, BookingConfirmed.Active())
	assert.True(t, BookingPendingPayment.Active())
	assert.True(t, BookingRejected.Active())
	assert.False(t, BookingCancelled.Active())
}
