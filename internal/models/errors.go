package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	ErrUserNotFound  = fmt.Errorf("user %w", ErrNotFound)
	ErrVenueNotFound = fmt.Errorf("venue %w", ErrNotFound)
	ErrEventNotFound = fmt.Errorf("event %w", ErrNotFound)

	ErrEmailTaken    = errors.New("email already registered")
	ErrVenueExists   = errors.New("a venue with this name already exists")
	ErrVenueInUse    = errors.New("venue has scheduled events")
	ErrAlreadyBooked = errors.New("you have already booked this event")
	ErrEventFull     = errors.New("sorry, this event is already full")

	ErrUnauthorized = errors.New("incorrect email or password")
	ErrForbidden    = errors.New("not authorized")
	ErrNotApproved  = errors.New("organizer account has not been approved by an admin yet")
)

// ValidationError reports input rejected before any write.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ConflictError reports a venue already booked for an overlapping time window.
type ConflictError struct {
	VenueName string
}

func (e *ConflictError) Error() string {
	name := e.VenueName
	if name == "" {
		name = "Selected venue"
	}

	return fmt.Sprintf("%s is already booked during the selected time slot. "+
		"Please adjust start/end times or choose a different venue.", name)
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}
