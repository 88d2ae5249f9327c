// Package booking reserves seats on events.
package booking

import (
	"context"

	"festBooker/internal/clock"
	"festBooker/internal/models"
)

type Repository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetEventForUpdate(ctx context.Context, id int64) (models.Event, error)
	FindActiveBooking(ctx context.Context, attendeeID, eventID int64) (*models.Booking, error)
	CountConfirmedBookings(ctx context.Context, eventID int64) (int, error)
	CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error)
	ListAttendeeBookings(ctx context.Context, attendeeID int64) ([]models.Booking, error)
}

type ViewAssembler interface {
	BookingView(ctx context.Context, b models.Booking) (models.BookingView, error)
	BookingViews(ctx context.Context, bookings []models.Booking) ([]models.BookingView, error)
}

type Engine struct {
	repo  Repository
	views ViewAssembler
	clock clock.Clock
}

func NewEngine(repo Repository, views ViewAssembler, clk clock.Clock) *Engine {
	return &Engine{
		repo:  repo,
		views: views,
		clock: clk,
	}
}

// CreateBooking reserves one seat of the event for the attendee.
//
// Checks run in a fixed order so the reported error is deterministic:
// missing event, then an existing non-cancelled booking, then capacity.
// The event row stays locked from the first check to the insert.
func (e *Engine) CreateBooking(ctx context.Context, eventID, attendeeID int64) (models.BookingView, error) {
	var created models.Booking

	err := e.repo.WithTx(ctx, func(txCtx context.Context) error {
		event, err := e.repo.GetEventForUpdate(txCtx, eventID)
		if err != nil {
			return err
		}

		existing, err := e.repo.FindActiveBooking(txCtx, attendeeID, eventID)
		if err != nil {
			return err
		}
		if existing != nil {
			return models.ErrAlreadyBooked
		}

		confirmed, err := e.repo.CountConfirmedBookings(txCtx, eventID)
		if err != nil {
			return err
		}
		if confirmed >= event.Capacity {
			return models.ErrEventFull
		}

		// every event is free for now; paid events would start as pending_payment
		created, err = e.repo.CreateBooking(txCtx, models.Booking{
			AttendeeID:  attendeeID,
			EventID:     eventID,
			BookingTime: e.clock.Now(),
			Status:      models.BookingConfirmed,
		})

		return err
	})
	if err != nil {
		return models.BookingView{}, err
	}

	return e.views.BookingView(ctx, created)
}

// ListAttendeeBookings returns the attendee's bookings, newest first.
func (e *Engine) ListAttendeeBookings(ctx context.Context, attendeeID int64) ([]models.BookingView, error) {
	bookings, err := e.repo.ListAttendeeBookings(ctx, attendeeID)
	if err != nil {
		return nil, err
	}

	return e.views.BookingViews(ctx, bookings)
}
