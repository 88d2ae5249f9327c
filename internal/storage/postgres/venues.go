package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"festBooker/internal/models"
)

const venueColumns = `id, name, location, capacity`

func scanVenue(row rowScanner) (models.Venue, error) {
	var v models.Venue
	err := row.Scan(&v.ID, &v.Name, &v.Location, &v.Capacity)

	return v, err
}

func (s *Storage) CreateVenue(ctx context.Context, v models.Venue) (models.Venue, error) {
	const op = "storage.postgres.CreateVenue"

	query := `
		INSERT INTO venues (name, location, capacity)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := s.conn(ctx).QueryRowContext(ctx, query, v.Name, v.Location, v.Capacity).Scan(&v.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Venue{}, models.ErrVenueExists
		}
		return models.Venue{}, fmt.Errorf("%s: %w", op, err)
	}

	return v, nil
}

func (s *Storage) GetVenue(ctx context.Context, id int64) (models.Venue, error) {
	return s.getVenue(ctx, "storage.postgres.GetVenue", `SELECT `+venueColumns+` FROM venues WHERE id = $1`, id)
}

// GetVenueForUpdate locks the venue row until the surrounding transaction
// ends, serializing event scheduling on that venue.
func (s *Storage) GetVenueForUpdate(ctx context.Context, id int64) (models.Venue, error) {
	return s.getVenue(ctx, "storage.postgres.GetVenueForUpdate", `SELECT `+venueColumns+` FROM venues WHERE id = $1 FOR UPDATE`, id)
}

func (s *Storage) getVenue(ctx context.Context, op, query string, id int64) (models.Venue, error) {
	v, err := scanVenue(s.conn(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Venue{}, models.ErrVenueNotFound
		}
		return models.Venue{}, fmt.Errorf("%s: %w", op, err)
	}

	return v, nil
}

func (s *Storage) ListVenues(ctx context.Context) ([]models.Venue, error) {
	const op = "storage.postgres.ListVenues"

	rows, err := s.conn(ctx).QueryContext(ctx, `SELECT `+venueColumns+` FROM venues ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	venues := []models.Venue{}
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan venue: %w", op, err)
		}
		venues = append(venues, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating venues: %w", op, err)
	}

	return venues, nil
}

func (s *Storage) DeleteVenue(ctx context.Context, id int64) (models.Venue, error) {
	const op = "storage.postgres.DeleteVenue"

	query := `DELETE FROM venues WHERE id = $1 RETURNING ` + venueColumns

	v, err := scanVenue(s.conn(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Venue{}, models.ErrVenueNotFound
		}
		if isForeignKeyViolation(err) {
			return models.Venue{}, models.ErrVenueInUse
		}
		return models.Venue{}, fmt.Errorf("%s: %w", op, err)
	}

	return v, nil
}
