package scheduling

import (
	"context"
	"time"

	"festBooker/internal/clock"
	"festBooker/internal/models"
)

type Repository interface {
	VenueEventLister
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetVenueForUpdate(ctx context.Context, id int64) (models.Venue, error)
	CreateEvent(ctx context.Context, e models.Event) (models.Event, error)
	GetEvent(ctx context.Context, id int64) (models.Event, error)
	ListUpcomingEvents(ctx context.Context, now time.Time) ([]models.Event, error)
	ListOrganizerEvents(ctx context.Context, organizerID int64) ([]models.Event, error)
}

type ViewAssembler interface {
	EventView(ctx context.Context, e models.Event) (models.EventView, error)
	EventViews(ctx context.Context, events []models.Event) ([]models.EventView, error)
}

type Scheduler struct {
	repo      Repository
	conflicts *ConflictChecker
	views     ViewAssembler
	clock     clock.Clock
}

func NewScheduler(repo Repository, views ViewAssembler, clk clock.Clock) *Scheduler {
	return &Scheduler{
		repo:      repo,
		conflicts: NewConflictChecker(repo),
		views:     views,
		clock:     clk,
	}
}

// CreateEvent schedules an event for an approved organizer. The venue row is
// locked for the duration of the conflict scan and the insert, so two
// concurrent drafts for the same venue cannot both pass the scan.
func (s *Scheduler) CreateEvent(ctx context.Context, draft models.EventDraft, organizerID int64) (models.Event, error) {
	if err := draft.Validate(); err != nil {
		return models.Event{}, err
	}

	var created models.Event

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		venue, err := s.repo.GetVenueForUpdate(txCtx, draft.VenueID)
		if err != nil {
			return err
		}

		conflict, err := s.conflicts.HasConflict(txCtx, venue.ID, draft.StartTime, draft.EndTime)
		if err != nil {
			return err
		}
		if conflict {
			return &models.ConflictError{VenueName: venue.Name}
		}

		created, err = s.repo.CreateEvent(txCtx, draft.Event(organizerID))
		if models.IsConflict(err) {
			return &models.ConflictError{VenueName: venue.Name}
		}

		return err
	})
	if err != nil {
		return models.Event{}, err
	}

	return created, nil
}

func (s *Scheduler) GetEvent(ctx context.Context, id int64) (models.EventView, error) {
	e, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		return models.EventView{}, err
	}

	return s.views.EventView(ctx, e)
}

// ListUpcomingEvents returns events that have not ended yet, earliest first.
func (s *Scheduler) ListUpcomingEvents(ctx context.Context) ([]models.EventView, error) {
	events, err := s.repo.ListUpcomingEvents(ctx, s.clock.Now())
	if err != nil {
		return nil, err
	}

	return s.views.EventViews(ctx, events)
}

func (s *Scheduler) ListOrganizerEvents(ctx context.Context, organizerID int64) ([]models.EventView, error) {
	events, err := s.repo.ListOrganizerEvents(ctx, organizerID)
	if err != nil {
		return nil, err
	}

	return s.views.EventViews(ctx, events)
}
