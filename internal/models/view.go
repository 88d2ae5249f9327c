package models

// UserView is the public snapshot of a user.
type UserView struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	IsApproved bool   `json:"is_approved"`
}

func (u User) View() UserView {
	return UserView{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		IsApproved: u.IsApproved,
	}
}

// EventView embeds the venue and organizer snapshots of an event.
type EventView struct {
	Event
	Venue     Venue    `json:"venue"`
	Organizer UserView `json:"organizer"`
}

// BookingView embeds the booked event.
type BookingView struct {
	Booking
	Event EventView `json:"event"`
}
