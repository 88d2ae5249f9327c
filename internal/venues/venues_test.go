package venues

import (
	"context"
	"testing"
	"time"

	"festBooker/internal/models"
	"festBooker/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVenue(t *testing.T) {
	t.Parallel()

	svc := New(memory.New())
	ctx := context.Background()

	v, err := svc.CreateVenue(ctx, models.VenueDraft{Name: " Hall A ", Location: "Main building", Capacity: 2})
	require.NoError(t, err)
	assert.NotZero(t, v.ID)
	assert.Equal(t, "Hall A", v.Name)

	_, err = svc.CreateVenue(ctx, models.VenueDraft{Name: "Hall A", Location: "Elsewhere", Capacity: 10})
	assert.ErrorIs(t, err, models.ErrVenueExists)

	_, err = svc.CreateVenue(ctx, models.VenueDraft{Name: "Hall B", Location: "Annex", Capacity: 0})
	assert.True(t, models.IsValidation(err))
}

func TestListVenuesIsStable(t *testing.T) {
	t.Parallel()

	svc := New(memory.New())
	ctx := context.Background()

	for _, name := range []string{"Auditorium", "Hall A", "Lawn"} {
		_, err := svc.CreateVenue(ctx, models.VenueDraft{Name: name, Location: "Campus", Capacity: 50})
		require.NoError(t, err)
	}

	first, err := svc.ListVenues(ctx)
	require.NoError(t, err)
	second, err := svc.ListVenues(ctx)
	require.NoError(t, err)

	require.Len(t, first, 3)
	assert.Equal(t, "Auditorium", first[0].Name)
	assert.Equal(t, first, second)
}

func TestDeleteVenue(t *testing.T) {
	t.Parallel()

	store := memory.New()
	svc := New(store)
	ctx := context.Background()

	busy, err := svc.CreateVenue(ctx, models.VenueDraft{Name: "Hall A", Location: "Main", Capacity: 2})
	require.NoError(t, err)
	free, err := svc.CreateVenue(ctx, models.VenueDraft{Name: "Lawn", Location: "Outside", Capacity: 200})
	require.NoError(t, err)

	org, err := store.CreateUser(ctx, models.User{Email: "spark@spit.com", Role: models.RoleOrganizer, IsApproved: true})
	require.NoError(t, err)
	start := time.Date(2025, 2, 14, 9, 0, 0, 0, time.UTC)
	_, err = store.CreateEvent(ctx, models.Event{Title: "Opening", StartTime: start, EndTime: start.Add(time.Hour), Capacity: 2, OrganizerID: org.ID, VenueID: busy.ID})
	require.NoError(t, err)

	_, err = svc.DeleteVenue(ctx, busy.ID)
	assert.ErrorIs(t, err, models.ErrVenueInUse)

	deleted, err := svc.DeleteVenue(ctx, free.ID)
	require.NoError(t, err)
	assert.Equal(t, free, deleted)

	_, err = svc.DeleteVenue(ctx, free.ID)
	assert.ErrorIs(t, err, models.ErrVenueNotFound)
}
