package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"festBooker/internal/models"
)

const eventColumns = `id, title, description, start_time, end_time, capacity, cost, organizer_id, venue_id`

func scanEvent(row rowScanner) (models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.StartTime,
		&e.EndTime,
		&e.Capacity,
		&e.Cost,
		&e.OrganizerID,
		&e.VenueID,
	)
	e.StartTime = e.StartTime.UTC()
	e.EndTime = e.EndTime.UTC()

	return e, err
}

func (s *Storage) CreateEvent(ctx context.Context, e models.Event) (models.Event, error) {
	const op = "storage.postgres.CreateEvent"

	query := `
		INSERT INTO events (title, description, start_time, end_time, capacity, cost, organizer_id, venue_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	err := s.conn(ctx).QueryRowContext(ctx, query,
		e.Title,
		e.Description,
		e.StartTime,
		e.EndTime,
		e.Capacity,
		e.Cost,
		e.OrganizerID,
		e.VenueID,
	).Scan(&e.ID)
	if err != nil {
		if isExclusionViolation(err) {
			return models.Event{}, &models.ConflictError{}
		}
		if isForeignKeyViolation(err) {
			return models.Event{}, models.ErrVenueNotFound
		}
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	return e, nil
}

func (s *Storage) GetEvent(ctx context.Context, id int64) (models.Event, error) {
	return s.getEvent(ctx, "storage.postgres.GetEvent", `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
}

// GetEventForUpdate locks the event row until the surrounding transaction
// ends, serializing bookings of that event.
func (s *Storage) GetEventForUpdate(ctx context.Context, id int64) (models.Event, error) {
	return s.getEvent(ctx, "storage.postgres.GetEventForUpdate", `SELECT `+eventColumns+` FROM events WHERE id = $1 FOR UPDATE`, id)
}

func (s *Storage) getEvent(ctx context.Context, op, query string, id int64) (models.Event, error) {
	e, err := scanEvent(s.conn(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Event{}, models.ErrEventNotFound
		}
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	return e, nil
}

func (s *Storage) ListVenueEvents(ctx context.Context, venueID int64) ([]models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE venue_id = $1
		ORDER BY start_time ASC, id ASC`

	return s.listEvents(ctx, "storage.postgres.ListVenueEvents", query, venueID)
}

func (s *Storage) ListUpcomingEvents(ctx context.Context, now time.Time) ([]models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE end_time > $1
		ORDER BY start_time ASC, id ASC`

	return s.listEvents(ctx, "storage.postgres.ListUpcomingEvents", query, now)
}

func (s *Storage) ListOrganizerEvents(ctx context.Context, organizerID int64) ([]models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE organizer_id = $1
		ORDER BY start_time ASC, id ASC`

	return s.listEvents(ctx, "storage.postgres.ListOrganizerEvents", query, organizerID)
}

func (s *Storage) listEvents(ctx context.Context, op, query string, args ...any) ([]models.Event, error) {
	rows, err := s.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan event: %w", op, err)
		}
		events = append(events, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating events: %w", op, err)
	}

	return events, nil
}
