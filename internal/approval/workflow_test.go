package approval

import (
	"context"
	"strings"
	"testing"
	"time"

	"festBooker/internal/auth"
	"festBooker/internal/models"
	"festBooker/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newWorkflow(t *testing.T, opts ...Option) (*Workflow, *memory.Storage) {
	t.Helper()

	provider, err := auth.New("test-secret", auth.WithBcryptCost(bcrypt.MinCost))
	require.NoError(t, err)

	store := memory.New()

	return New(store, provider, opts...), store
}

func TestCreateUserAttendeeRules(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		draft   models.UserDraft
		wantErr string
	}{
		{
			name:  "valid attendee",
			draft: models.UserDraft{Name: "A", Email: "a@spit.ac.in", Password: "a@spit.ac.in", Role: models.RoleAttendee},
		},
		{
			name:    "password must equal email",
			draft:   models.UserDraft{Name: "A", Email: "a@spit.ac.in", Password: "wrong", Role: models.RoleAttendee},
			wantErr: "attendee password must match their email address",
		},
		{
			name:    "institutional domain required",
			draft:   models.UserDraft{Name: "A", Email: "a@gmail.com", Password: "a@gmail.com", Role: models.RoleAttendee},
			wantErr: "attendee email must end with @spit.ac.in",
		},
		{
			name:    "unknown role",
			draft:   models.UserDraft{Email: "a@spit.ac.in", Password: "x", Role: "guest"},
			wantErr: `unknown role "guest"`,
		},
		{
			name:    "password too long",
			draft:   models.UserDraft{Email: "o@spit.com", Password: strings.Repeat("p", 73), Role: models.RoleOrganizer},
			wantErr: "password must be 72 characters or less",
		},
		{
			name:  "organizer password is free-form",
			draft: models.UserDraft{Name: "Ecell", Email: "ecell@spit.com", Password: "ecell@1", Role: models.RoleOrganizer},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			w, store := newWorkflow(t)

			u, err := w.CreateUser(context.Background(), tc.draft)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.True(t, models.IsValidation(err))
				assert.EqualError(t, err, tc.wantErr)

				_, lookupErr := store.GetUserByEmail(context.Background(), strings.TrimSpace(tc.draft.Email))
				assert.ErrorIs(t, lookupErr, models.ErrUserNotFound, "nothing may be written on validation failure")
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, u.ID)
			assert.NotEqual(t, tc.draft.Password, u.PasswordHash)
		})
	}
}

func TestCreateUserApprovalByRole(t *testing.T) {
	t.Parallel()

	w, _ := newWorkflow(t)
	ctx := context.Background()

	attendee, err := w.CreateUser(ctx, models.UserDraft{Email: "a@spit.ac.in", Password: "a@spit.ac.in", Role: models.RoleAttendee})
	require.NoError(t, err)
	assert.True(t, attendee.IsApproved)

	organizer, err := w.CreateUser(ctx, models.UserDraft{Email: "ieee@spit.com", Password: "ieee@1", Role: models.RoleOrganizer})
	require.NoError(t, err)
	assert.False(t, organizer.IsApproved)

	admin, err := w.CreateUser(ctx, models.UserDraft{Email: "root@festfrenzy.com", Password: "admin@1", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.True(t, admin.IsApproved)

	_, err = w.CreateUser(ctx, models.UserDraft{Email: "ieee@spit.com", Password: "other", Role: models.RoleOrganizer})
	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestCreateUserCustomDomain(t *testing.T) {
	t.Parallel()

	w, _ := newWorkflow(t, WithAttendeeDomain("@uni.edu"))

	_, err := w.CreateUser(context.Background(), models.UserDraft{Email: "a@uni.edu", Password: "a@uni.edu", Role: models.RoleAttendee})
	assert.NoError(t, err)

	_, err = w.CreateUser(context.Background(), models.UserDraft{Email: "a@spit.ac.in", Password: "a@spit.ac.in", Role: models.RoleAttendee})
	assert.True(t, models.IsValidation(err))
}

func TestPendingAndApprove(t *testing.T) {
	t.Parallel()

	w, _ := newWorkflow(t)
	ctx := context.Background()

	organizer, err := w.CreateUser(ctx, models.UserDraft{Email: "ieee@spit.com", Password: "ieee@1", Role: models.RoleOrganizer})
	require.NoError(t, err)
	attendee, err := w.CreateUser(ctx, models.UserDraft{Email: "a@spit.ac.in", Password: "a@spit.ac.in", Role: models.RoleAttendee})
	require.NoError(t, err)

	pending, err := w.ListPendingOrganizers(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, organizer.ID, pending[0].ID)

	approved, err := w.ApproveOrganizer(ctx, organizer.ID)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)

	pending, err = w.ListPendingOrganizers(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = w.ApproveOrganizer(ctx, attendee.ID)
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	_, err = w.ApproveOrganizer(ctx, 9999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAuthenticateAndResolve(t *testing.T) {
	t.Parallel()

	w, _ := newWorkflow(t, WithTokenTTL(time.Hour))
	ctx := context.Background()

	created, err := w.CreateUser(ctx, models.UserDraft{Name: "IEEE", Email: "ieee@spit.com", Password: "ieee@1", Role: models.RoleOrganizer})
	require.NoError(t, err)

	_, err = w.Authenticate(ctx, "ieee@spit.com", "nope")
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	_, err = w.Authenticate(ctx, "ghost@spit.com", "ieee@1")
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	token, err := w.Authenticate(ctx, "ieee@spit.com", "ieee@1")
	require.NoError(t, err)

	u, err := w.ResolveUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)

	_, err = w.ResolveUser(ctx, "garbage")
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestSeedAccounts(t *testing.T) {
	t.Parallel()

	w, store := newWorkflow(t)
	ctx := context.Background()

	_, err := w.CreateUser(ctx, models.UserDraft{Email: "spark@spit.com", Password: "spark@1", Role: models.RoleOrganizer})
	require.NoError(t, err)

	res, err := w.SeedAccounts(ctx, []models.UserDraft{
		{Name: "Admin", Email: "admin@festfrenzy.com", Password: "admin@1", Role: models.RoleAdmin},
		{Name: "SPark", Email: "spark@spit.com", Password: "spark@1", Role: models.RoleOrganizer},
		{Name: "IEEE", Email: "ieee@spit.com", Password: "ieee@1", Role: models.RoleOrganizer},
		{Name: "Broken", Email: "broken@spit.com", Password: "x", Role: "wizard"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"admin@festfrenzy.com", "ieee@spit.com"}, res.Created)
	assert.Equal(t, []string{"spark@spit.com"}, res.Existing)
	assert.Equal(t, []string{"broken@spit.com"}, res.Skipped)

	ieee, err := store.GetUserByEmail(ctx, "ieee@spit.com")
	require.NoError(t, err)
	assert.True(t, ieee.IsApproved)

	spark, err := store.GetUserByEmail(ctx, "spark@spit.com")
	require.NoError(t, err)
	assert.False(t, spark.IsApproved, "existing accounts are left untouched")

	again, err := w.SeedAccounts(ctx, []models.UserDraft{{Email: "ieee@spit.com", Password: "ieee@1", Role: models.RoleOrganizer}})
	require.NoError(t, err)
	assert.Empty(t, again.Created)
	assert.Equal(t, []string{"ieee@spit.com"}, again.Existing)
}
