// Package readmodel composes response snapshots from stored entities.
// It only reads; write paths hand it the entities they persisted.
package readmodel

import (
	"context"
	"fmt"

	"festBooker/internal/models"
)

type Source interface {
	GetEvent(ctx context.Context, id int64) (models.Event, error)
	GetVenue(ctx context.Context, id int64) (models.Venue, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
}

type Assembler struct {
	src Source
}

func New(src Source) *Assembler {
	return &Assembler{src: src}
}

func (a *Assembler) EventView(ctx context.Context, e models.Event) (models.EventView, error) {
	views, err := a.EventViews(ctx, []models.Event{e})
	if err != nil {
		return models.EventView{}, err
	}

	return views[0], nil
}

// EventViews resolves each distinct venue and organizer once.
func (a *Assembler) EventViews(ctx context.Context, events []models.Event) ([]models.EventView, error) {
	c := newCache(a.src)

	views := make([]models.EventView, 0, len(events))
	for _, e := range events {
		v, err := c.eventView(ctx, e)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}

	return views, nil
}

func (a *Assembler) BookingView(ctx context.Context, b models.Booking) (models.BookingView, error) {
	views, err := a.BookingViews(ctx, []models.Booking{b})
	if err != nil {
		return models.BookingView{}, err
	}

	return views[0], nil
}

func (a *Assembler) BookingViews(ctx context.Context, bookings []models.Booking) ([]models.BookingView, error) {
	c := newCache(a.src)

	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		ev, ok := c.eventViews[b.EventID]
		if !ok {
			e, err := a.src.GetEvent(ctx, b.EventID)
			if err != nil {
				return nil, fmt.Errorf("resolve event %d of booking %d: %w", b.EventID, b.ID, err)
			}
			if ev, err = c.eventView(ctx, e); err != nil {
				return nil, err
			}
		}
		views = append(views, models.BookingView{Booking: b, Event: ev})
	}

	return views, nil
}

type cache struct {
	src        Source
	venues     map[int64]models.Venue
	users      map[int64]models.UserView
	eventViews map[int64]models.EventView
}

func newCache(src Source) *cache {
	return &cache{
		src:        src,
		venues:     make(map[int64]models.Venue),
		users:      make(map[int64]models.UserView),
		eventViews: make(map[int64]models.EventView),
	}
}

func (c *cache) eventView(ctx context.Context, e models.Event) (models.EventView, error) {
	venue, ok := c.venues[e.VenueID]
	if !ok {
		v, err := c.src.GetVenue(ctx, e.VenueID)
		if err != nil {
			return models.EventView{}, fmt.Errorf("resolve venue %d of event %d: %w", e.VenueID, e.ID, err)
		}
		venue = v
		c.venues[e.VenueID] = v
	}

	organizer, ok := c.users[e.OrganizerID]
	if !ok {
		u, err := c.src.GetUserByID(ctx, e.OrganizerID)
		if err != nil {
			return models.EventView{}, fmt.Errorf("resolve organizer %d of event %d: %w", e.OrganizerID, e.ID, err)
		}
		organizer = u.View()
		c.users[e.OrganizerID] = organizer
	}

	view := models.EventView{Event: e, Venue: venue, Organizer: organizer}
	c.eventViews[e.ID] = view

	return view, nil
}
