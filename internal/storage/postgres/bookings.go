package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"festBooker/internal/models"
)

const bookingColumns = `id, attendee_id, event_id, booking_time, status`

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.AttendeeID, &b.EventID, &b.BookingTime, &b.Status)
	b.BookingTime = b.BookingTime.UTC()

	return b, err
}

// FindActiveBooking returns the attendee's non-cancelled booking of the
// event, or nil when there is none.
func (s *Storage) FindActiveBooking(ctx context.Context, attendeeID, eventID int64) (*models.Booking, error) {
	const op = "storage.postgres.FindActiveBooking"

	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE attendee_id = $1 AND event_id = $2 AND status <> $3
		LIMIT 1`

	b, err := scanBooking(s.conn(ctx).QueryRowContext(ctx, query, attendeeID, eventID, models.BookingCancelled))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &b, nil
}

func (s *Storage) CountConfirmedBookings(ctx context.Context, eventID int64) (int, error) {
	const op = "storage.postgres.CountConfirmedBookings"

	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE event_id = $1 AND status = $2`

	var count int
	if err := s.conn(ctx).QueryRowContext(ctx, query, eventID, models.BookingConfirmed).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func (s *Storage) CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	const op = "storage.postgres.CreateBooking"

	query := `
		INSERT INTO bookings (attendee_id, event_id, booking_time, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := s.conn(ctx).QueryRowContext(ctx, query, b.AttendeeID, b.EventID, b.BookingTime, b.Status).Scan(&b.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Booking{}, models.ErrAlreadyBooked
		}
		if isForeignKeyViolation(err) {
			return models.Booking{}, models.ErrEventNotFound
		}
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (s *Storage) ListAttendeeBookings(ctx context.Context, attendeeID int64) ([]models.Booking, error) {
	const op = "storage.postgres.ListAttendeeBookings"

	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE attendee_id = $1
		ORDER BY booking_time DESC, id DESC`

	rows, err := s.conn(ctx).QueryContext(ctx, query, attendeeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan booking: %w", op, err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating bookings: %w", op, err)
	}

	return bookings, nil
}
