// Package approval owns account signup, login and the organizer approval gate.
package approval

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"festBooker/internal/models"
)

const (
	DefaultAttendeeDomain = "@spit.ac.in"
	DefaultTokenTTL       = 30 * time.Minute

	maxPasswordBytes = 72
)

type Repository interface {
	CreateUser(ctx context.Context, u models.User) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	ListPendingOrganizers(ctx context.Context) ([]models.User, error)
	ApproveOrganizer(ctx context.Context, id int64) (models.User, error)
}

// Credentials is the auth provider as seen by the workflow.
type Credentials interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
	IssueToken(subject string, ttl time.Duration) (string, error)
	ResolveToken(token string) (string, error)
}

type Workflow struct {
	repo           Repository
	creds          Credentials
	attendeeDomain string
	tokenTTL       time.Duration
}

type Option func(*Workflow)

// WithAttendeeDomain sets the email suffix attendees must sign up with.
func WithAttendeeDomain(suffix string) Option {
	return func(w *Workflow) {
		if suffix = strings.TrimSpace(suffix); suffix != "" {
			w.attendeeDomain = suffix
		}
	}
}

func WithTokenTTL(d time.Duration) Option {
	return func(w *Workflow) {
		if d > 0 {
			w.tokenTTL = d
		}
	}
}

func New(repo Repository, creds Credentials, opts ...Option) *Workflow {
	w := &Workflow{
		repo:           repo,
		creds:          creds,
		attendeeDomain: DefaultAttendeeDomain,
		tokenTTL:       DefaultTokenTTL,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// CreateUser signs a user up. Attendees must use an institutional email and,
// by festival policy, a password equal to that email. Organizers start
// unapproved.
func (w *Workflow) CreateUser(ctx context.Context, draft models.UserDraft) (models.User, error) {
	draft, err := w.validateDraft(draft)
	if err != nil {
		return models.User{}, err
	}

	u, err := w.build(draft)
	if err != nil {
		return models.User{}, err
	}

	return w.repo.CreateUser(ctx, u)
}

func (w *Workflow) validateDraft(draft models.UserDraft) (models.UserDraft, error) {
	role, err := models.ParseRole(string(draft.Role))
	if err != nil {
		return models.UserDraft{}, err
	}
	draft.Role = role
	draft.Email = strings.TrimSpace(draft.Email)

	if draft.Email == "" {
		return models.UserDraft{}, models.NewValidationError("email is required")
	}
	if draft.Password == "" {
		return models.UserDraft{}, models.NewValidationError("password is required")
	}
	if len(draft.Password) > maxPasswordBytes {
		return models.UserDraft{}, models.NewValidationError("password must be %d characters or less", maxPasswordBytes)
	}

	if role == models.RoleAttendee {
		if !strings.HasSuffix(draft.Email, w.attendeeDomain) {
			return models.UserDraft{}, models.NewValidationError("attendee email must end with %s", w.attendeeDomain)
		}
		if draft.Password != draft.Email {
			return models.UserDraft{}, models.NewValidationError("attendee password must match their email address")
		}
	}

	return draft, nil
}

func (w *Workflow) build(draft models.UserDraft) (models.User, error) {
	hash, err := w.creds.Hash(draft.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	return models.NewUser(draft, hash)
}

func (w *Workflow) ListPendingOrganizers(ctx context.Context) ([]models.User, error) {
	return w.repo.ListPendingOrganizers(ctx)
}

// ApproveOrganizer approves an organizer account. Anything that is not an
// organizer is reported as not found.
func (w *Workflow) ApproveOrganizer(ctx context.Context, userID int64) (models.User, error) {
	return w.repo.ApproveOrganizer(ctx, userID)
}

// Authenticate checks credentials and issues a bearer token whose subject is
// the user's email.
func (w *Workflow) Authenticate(ctx context.Context, email, password string) (string, error) {
	u, err := w.repo.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return "", models.ErrUnauthorized
		}
		return "", err
	}

	if !w.creds.Verify(password, u.PasswordHash) {
		return "", models.ErrUnauthorized
	}

	return w.creds.IssueToken(u.Email, w.tokenTTL)
}

// ResolveUser maps a bearer token back to its user.
func (w *Workflow) ResolveUser(ctx context.Context, token string) (models.User, error) {
	email, err := w.creds.ResolveToken(token)
	if err != nil {
		return models.User{}, models.ErrUnauthorized
	}

	u, err := w.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.User{}, models.ErrUnauthorized
		}
		return models.User{}, err
	}

	return u, nil
}
