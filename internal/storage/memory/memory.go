// Package memory is an in-process store with the same contract as the
// Postgres store. Row locks are emulated with a keyed mutex held until the
// enclosing WithTx scope ends. Writes are applied immediately and are not
// rolled back, so callers write only as the last step of a scope.
package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"festBooker/internal/lib/keylock"
	"festBooker/internal/models"
)

type Storage struct {
	locks *keylock.Locker

	mu       sync.RWMutex
	users    map[int64]models.User
	venues   map[int64]models.Venue
	events   map[int64]models.Event
	bookings map[int64]models.Booking
	lastID   int64
}

func New() *Storage {
	return &Storage{
		locks:    keylock.New(),
		users:    make(map[int64]models.User),
		venues:   make(map[int64]models.Venue),
		events:   make(map[int64]models.Event),
		bookings: make(map[int64]models.Booking),
	}
}

func (s *Storage) Close() error {
	return nil
}

type scopeKey struct{}

type scope struct {
	mu   sync.Mutex
	held map[string]func()
}

func scopeFromContext(ctx context.Context) *scope {
	sc, _ := ctx.Value(scopeKey{}).(*scope)
	return sc
}

// WithTx opens a lock scope. Nested calls join the outer scope.
func (s *Storage) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if scopeFromContext(ctx) != nil {
		return fn(ctx)
	}

	sc := &scope{held: make(map[string]func())}
	defer sc.release()

	return fn(context.WithValue(ctx, scopeKey{}, sc))
}

func (sc *scope) release() {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	for key, unlock := range sc.held {
		unlock()
		delete(sc.held, key)
	}
}

// lock acquires key for the rest of the scope. Outside a scope it is a no-op,
// matching SELECT ... FOR UPDATE in autocommit mode.
func (s *Storage) lock(ctx context.Context, key string) error {
	sc := scopeFromContext(ctx)
	if sc == nil {
		return nil
	}

	sc.mu.Lock()
	_, held := sc.held[key]
	sc.mu.Unlock()
	if held {
		return nil
	}

	unlock, err := s.locks.Lock(ctx, key)
	if err != nil {
		return err
	}

	sc.mu.Lock()
	sc.held[key] = unlock
	sc.mu.Unlock()

	return nil
}

func lockKey(kind string, id int64) string {
	return kind + ":" + strconv.FormatInt(id, 10)
}

func (s *Storage) nextID() int64 {
	s.lastID++
	return s.lastID
}

func (s *Storage) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return models.User{}, models.ErrEmailTaken
		}
	}

	u.ID = s.nextID()
	s.users[u.ID] = u

	return u, nil
}

func (s *Storage) GetUserByID(_ context.Context, id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}

	return u, nil
}

func (s *Storage) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}

	return models.User{}, models.ErrUserNotFound
}

func (s *Storage) ListPendingOrganizers(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := []models.User{}
	for _, u := range s.users {
		if u.Role == models.RoleOrganizer && !u.IsApproved {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users, nil
}

func (s *Storage) ApproveOrganizer(_ context.Context, id int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok || u.Role != models.RoleOrganizer {
		return models.User{}, models.ErrUserNotFound
	}

	u.IsApproved = true
	s.users[id] = u

	return u, nil
}

func (s *Storage) CreateVenue(ctx context.Context, v models.Venue) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.venues {
		if existing.Name == v.Name {
			return models.Venue{}, models.ErrVenueExists
		}
	}

	v.ID = s.nextID()
	s.venues[v.ID] = v

	return v, nil
}

func (s *Storage) GetVenue(_ context.Context, id int64) (models.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.venues[id]
	if !ok {
		return models.Venue{}, models.ErrVenueNotFound
	}

	return v, nil
}

func (s *Storage) GetVenueForUpdate(ctx context.Context, id int64) (models.Venue, error) {
	if err := s.lock(ctx, lockKey("venue", id)); err != nil {
		return models.Venue{}, err
	}

	return s.GetVenue(ctx, id)
}

func (s *Storage) ListVenues(_ context.Context) ([]models.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	venues := make([]models.Venue, 0, len(s.venues))
	for _, v := range s.venues {
		venues = append(venues, v)
	}
	sort.Slice(venues, func(i, j int) bool { return venues[i].ID < venues[j].ID })

	return venues, nil
}

func (s *Storage) DeleteVenue(ctx context.Context, id int64) (models.Venue, error) {
	if err := s.lock(ctx, lockKey("venue", id)); err != nil {
		return models.Venue{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.venues[id]
	if !ok {
		return models.Venue{}, models.ErrVenueNotFound
	}
	for _, e := range s.events {
		if e.VenueID == id {
			return models.Venue{}, models.ErrVenueInUse
		}
	}

	delete(s.venues, id)

	return v, nil
}

// CreateEvent refuses an event overlapping another on the same venue, the
// same guarantee the Postgres exclusion constraint gives.
func (s *Storage) CreateEvent(ctx context.Context, e models.Event) (models.Event, error) {
	if err := ctx.Err(); err != nil {
		return models.Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.venues[e.VenueID]; !ok {
		return models.Event{}, models.ErrVenueNotFound
	}
	if _, ok := s.users[e.OrganizerID]; !ok {
		return models.Event{}, models.ErrUserNotFound
	}
	for _, existing := range s.events {
		if existing.VenueID == e.VenueID && existing.Overlaps(e.StartTime, e.EndTime) {
			return models.Event{}, &models.ConflictError{}
		}
	}

	e.ID = s.nextID()
	s.events[e.ID] = e

	return e, nil
}

func (s *Storage) GetEvent(_ context.Context, id int64) (models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return models.Event{}, models.ErrEventNotFound
	}

	return e, nil
}

func (s *Storage) GetEventForUpdate(ctx context.Context, id int64) (models.Event, error) {
	if err := s.lock(ctx, lockKey("event", id)); err != nil {
		return models.Event{}, err
	}

	return s.GetEvent(ctx, id)
}

func (s *Storage) ListVenueEvents(_ context.Context, venueID int64) ([]models.Event, error) {
	return s.filterEvents(func(e models.Event) bool { return e.VenueID == venueID }), nil
}

func (s *Storage) ListUpcomingEvents(_ context.Context, now time.Time) ([]models.Event, error) {
	return s.filterEvents(func(e models.Event) bool { return e.EndTime.After(now) }), nil
}

func (s *Storage) ListOrganizerEvents(_ context.Context, organizerID int64) ([]models.Event, error) {
	return s.filterEvents(func(e models.Event) bool { return e.OrganizerID == organizerID }), nil
}

func (s *Storage) filterEvents(keep func(models.Event) bool) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := []models.Event{}
	for _, e := range s.events {
		if keep(e) {
			events = append(events, e)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		if !events[i].StartTime.Equal(events[j].StartTime) {
			return events[i].StartTime.Before(events[j].StartTime)
		}
		return events[i].ID < events[j].ID
	})

	return events
}

func (s *Storage) FindActiveBooking(_ context.Context, attendeeID, eventID int64) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.activeBooking(attendeeID, eventID)
	if !ok {
		return nil, nil
	}

	return &b, nil
}

func (s *Storage) activeBooking(attendeeID, eventID int64) (models.Booking, bool) {
	for _, b := range s.bookings {
		if b.AttendeeID == attendeeID && b.EventID == eventID && b.Status.Active() {
			return b, true
		}
	}

	return models.Booking{}, false
}

func (s *Storage) CountConfirmedBookings(_ context.Context, eventID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, b := range s.bookings {
		if b.EventID == eventID && b.Status == models.BookingConfirmed {
			count++
		}
	}

	return count, nil
}

func (s *Storage) CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return models.Booking{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[b.EventID]; !ok {
		return models.Booking{}, models.ErrEventNotFound
	}
	if b.Status.Active() {
		if _, ok := s.activeBooking(b.AttendeeID, b.EventID); ok {
			return models.Booking{}, models.ErrAlreadyBooked
		}
	}

	b.ID = s.nextID()
	s.bookings[b.ID] = b

	return b, nil
}

func (s *Storage) ListAttendeeBookings(_ context.Context, attendeeID int64) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := []models.Booking{}
	for _, b := range s.bookings {
		if b.AttendeeID == attendeeID {
			bookings = append(bookings, b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		if !bookings[i].BookingTime.Equal(bookings[j].BookingTime) {
			return bookings[i].BookingTime.After(bookings[j].BookingTime)
		}
		return bookings[i].ID > bookings[j].ID
	})

	return bookings, nil
}
