package models

import "time"

type BookingStatus string

const (
	BookingPendingPayment BookingStatus = "pending_payment"
	BookingConfirmed      BookingStatus = "confirmed"
	BookingRejected       BookingStatus = "rejected"
	BookingCancelled      BookingStatus = "cancelled"
)

// Active reports whether a booking in this status blocks another booking
// of the same event by the same attendee.
func (s BookingStatus) Active() bool {
	return s != BookingCancelled
}

type Booking struct {
	ID          int64         `json:"id"`
	AttendeeID  int64         `json:"attendee_id"`
	EventID     int64         `json:"event_id"`
	BookingTime time.Time     `json:"booking_time"`
	Status      BookingStatus `json:"status"`
}
