//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"festBooker/internal/booking"
	"festBooker/internal/clock"
	"festBooker/internal/models"
	"festBooker/internal/readmodel"
	"festBooker/internal/scheduling"
	"festBooker/internal/storage/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const migrationsPath = "../../../migrations"

var day = time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)

// openStorage connects to TEST_DATABASE_URL, migrates it and wipes all rows.
func openStorage(t *testing.T) *postgres.Storage {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	_, err := postgres.RunMigrations(dbURL, migrationsPath)
	require.NoError(t, err)

	s, err := postgres.Open(dbURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = s.DB.Exec(`TRUNCATE bookings, events, venues, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return s
}

type seeded struct {
	organizer models.User
	venue     models.Venue
}

func seed(t *testing.T, s *postgres.Storage) seeded {
	t.Helper()
	ctx := context.Background()

	organizer, err := s.CreateUser(ctx, models.User{
		Name: "SPark", Email: "spark@spit.com", PasswordHash: "x", Role: models.RoleOrganizer, IsApproved: true,
	})
	require.NoError(t, err)

	venue, err := s.CreateVenue(ctx, models.Venue{Name: "Main Auditorium", Location: "Block A", Capacity: 500})
	require.NoError(t, err)

	return seeded{organizer: organizer, venue: venue}
}

func attendee(t *testing.T, s *postgres.Storage, email string) models.User {
	t.Helper()

	u, err := s.CreateUser(context.Background(), models.User{
		Name: email, Email: email, PasswordHash: "x", Role: models.RoleAttendee, IsApproved: true,
	})
	require.NoError(t, err)

	return u
}

func TestUsers(t *testing.T) {
	s := openStorage(t)
	ctx := context.Background()

	u, err := s.CreateUser(ctx, models.User{Name: "Robotics", Email: "robotics@spit.com", PasswordHash: "x", Role: models.RoleOrganizer})
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, models.User{Name: "Again", Email: "robotics@spit.com", PasswordHash: "x", Role: models.RoleOrganizer})
	assert.ErrorIs(t, err, models.ErrEmailTaken)

	pending, err := s.ListPendingOrganizers(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, u.ID, pending[0].ID)

	approved, err := s.ApproveOrganizer(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)

	pending, err = s.ListPendingOrganizers(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	a := attendee(t, s, "2021300001@spit.ac.in")
	_, err = s.ApproveOrganizer(ctx, a.ID)
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	_, err = s.GetUserByEmail(ctx, "nobody@spit.com")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestVenueOverlapConstraint(t *testing.T) {
	s := openStorage(t)
	f := seed(t, s)
	ctx := context.Background()

	first := models.Event{
		Title: "Hackathon", StartTime: day.Add(10 * time.Hour), EndTime: day.Add(12 * time.Hour),
		Capacity: 10, OrganizerID: f.organizer.ID, VenueID: f.venue.ID,
	}
	_, err := s.CreateEvent(ctx, first)
	require.NoError(t, err)

	overlapping := first
	overlapping.StartTime = day.Add(11 * time.Hour)
	overlapping.EndTime = day.Add(13 * time.Hour)
	_, err = s.CreateEvent(ctx, overlapping)
	assert.True(t, models.IsConflict(err), "got %v", err)

	adjacent := first
	adjacent.StartTime = day.Add(12 * time.Hour)
	adjacent.EndTime = day.Add(13 * time.Hour)
	_, err = s.CreateEvent(ctx, adjacent)
	assert.NoError(t, err)

	_, err = s.DeleteVenue(ctx, f.venue.ID)
	assert.ErrorIs(t, err, models.ErrVenueInUse)

	_, err = s.DeleteVenue(ctx, f.venue.ID+100)
	assert.ErrorIs(t, err, models.ErrVenueNotFound)
}

func TestActiveBookingIndex(t *testing.T) {
	s := openStorage(t)
	f := seed(t, s)
	ctx := context.Background()

	e, err := s.CreateEvent(ctx, models.Event{
		Title: "Quiz", StartTime: day.Add(10 * time.Hour), EndTime: day.Add(11 * time.Hour),
		Capacity: 5, OrganizerID: f.organizer.ID, VenueID: f.venue.ID,
	})
	require.NoError(t, err)

	a := attendee(t, s, "2021300001@spit.ac.in")

	_, err = s.CreateBooking(ctx, models.Booking{AttendeeID: a.ID, EventID: e.ID, BookingTime: day, Status: models.BookingCancelled})
	require.NoError(t, err)

	found, err := s.FindActiveBooking(ctx, a.ID, e.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	_, err = s.CreateBooking(ctx, models.Booking{AttendeeID: a.ID, EventID: e.ID, BookingTime: day, Status: models.BookingConfirmed})
	require.NoError(t, err)

	_, err = s.CreateBooking(ctx, models.Booking{AttendeeID: a.ID, EventID: e.ID, BookingTime: day, Status: models.BookingPendingPayment})
	assert.ErrorIs(t, err, models.ErrAlreadyBooked)

	n, err := s.CountConfirmedBookings(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWithTxRollsBack(t *testing.T) {
	s := openStorage(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.CreateVenue(ctx, models.Venue{Name: "Ghost Hall", Location: "-", Capacity: 1}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	venues, err := s.ListVenues(ctx)
	require.NoError(t, err)
	assert.Empty(t, venues)
}

func TestConcurrentBookingsRespectCapacity(t *testing.T) {
	s := openStorage(t)
	f := seed(t, s)
	ctx := context.Background()

	const capacity = 3
	const attendees = 20

	e, err := s.CreateEvent(ctx, models.Event{
		Title: "Workshop", StartTime: day.Add(10 * time.Hour), EndTime: day.Add(11 * time.Hour),
		Capacity: capacity, OrganizerID: f.organizer.ID, VenueID: f.venue.ID,
	})
	require.NoError(t, err)

	ids := make([]int64, attendees)
	for i := range ids {
		ids[i] = attendee(t, s, fmt.Sprintf("20213%05d@spit.ac.in", i)).ID
	}

	engine := booking.NewEngine(s, readmodel.New(s), clock.NewFixed(day))

	var confirmed, full atomic.Int32
	var g errgroup.Group
	for _, id := range ids {
		id := id
		g.Go(func() error {
			_, err := engine.CreateBooking(ctx, e.ID, id)
			switch {
			case err == nil:
				confirmed.Add(1)
			case errors.Is(err, models.ErrEventFull):
				full.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.EqualValues(t, capacity, confirmed.Load())
	assert.EqualValues(t, attendees-capacity, full.Load())

	n, err := s.CountConfirmedBookings(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, capacity, n)
}

func TestConcurrentSchedulingAdmitsOneEvent(t *testing.T) {
	s := openStorage(t)
	f := seed(t, s)
	ctx := context.Background()

	scheduler := scheduling.NewScheduler(s, readmodel.New(s), clock.NewFixed(day))

	var created, conflicts atomic.Int32
	var g errgroup.Group
	for i := 0; i < 10; i++ {
		start := day.Add(10*time.Hour + time.Duration(i)*10*time.Minute)
		g.Go(func() error {
			_, err := scheduler.CreateEvent(ctx, models.EventDraft{
				Title: "Talk", StartTime: start, EndTime: start.Add(2 * time.Hour), Capacity: 10, VenueID: f.venue.ID,
			}, f.organizer.ID)
			switch {
			case err == nil:
				created.Add(1)
			case models.IsConflict(err):
				conflicts.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.EqualValues(t, 1, created.Load())
	assert.EqualValues(t, 9, conflicts.Load())
}
