package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"festBooker/internal/models"
)

const userColumns = `id, name, email, hashed_password, role, is_approved`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsApproved)

	return u, err
}

func (s *Storage) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	const op = "storage.postgres.CreateUser"

	query := `
		INSERT INTO users (name, email, hashed_password, role, is_approved)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := s.conn(ctx).QueryRowContext(ctx, query, u.Name, u.Email, u.PasswordHash, u.Role, u.IsApproved).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, models.ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	const op = "storage.postgres.GetUserByID"

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(s.conn(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	const op = "storage.postgres.GetUserByEmail"

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(s.conn(ctx).QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}

func (s *Storage) ListPendingOrganizers(ctx context.Context) ([]models.User, error) {
	const op = "storage.postgres.ListPendingOrganizers"

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE role = $1 AND is_approved = false
		ORDER BY id ASC`

	rows, err := s.conn(ctx).QueryContext(ctx, query, models.RoleOrganizer)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan user: %w", op, err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating users: %w", op, err)
	}

	return users, nil
}

// ApproveOrganizer sets is_approved on an organizer. Approving an already
// approved organizer is a no-op that still returns the user.
func (s *Storage) ApproveOrganizer(ctx context.Context, id int64) (models.User, error) {
	const op = "storage.postgres.ApproveOrganizer"

	query := `
		UPDATE users
		SET is_approved = true
		WHERE id = $1 AND role = $2
		RETURNING ` + userColumns

	u, err := scanUser(s.conn(ctx).QueryRowContext(ctx, query, id, models.RoleOrganizer))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}
