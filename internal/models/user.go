package models

import "strings"

type Role string

const (
	RoleAttendee  Role = "attendee"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(strings.TrimSpace(s)); r {
	case RoleAttendee, RoleOrganizer, RoleAdmin:
		return r, nil
	default:
		return "", NewValidationError("unknown role %q", s)
	}
}

// ApprovedAtSignup reports whether accounts of this role start approved.
// Organizers wait for an admin.
func (r Role) ApprovedAtSignup() bool {
	return r != RoleOrganizer
}

type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	IsApproved   bool   `json:"is_approved"`
}

// CanAct reports whether the approval gate lets the user act in their role.
func (u User) CanAct() bool {
	return u.Role != RoleOrganizer || u.IsApproved
}

type UserDraft struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

// NewUser builds a user from a signup draft and an already hashed password.
// Approval state is derived from the role and never taken from the caller.
func NewUser(draft UserDraft, passwordHash string) (User, error) {
	role, err := ParseRole(string(draft.Role))
	if err != nil {
		return User{}, err
	}
	if strings.TrimSpace(draft.Email) == "" {
		return User{}, NewValidationError("email is required")
	}
	if passwordHash == "" {
		return User{}, NewValidationError("password hash is required")
	}

	return User{
		Name:         strings.TrimSpace(draft.Name),
		Email:        strings.TrimSpace(draft.Email),
		PasswordHash: passwordHash,
		Role:         role,
		IsApproved:   role.ApprovedAtSignup(),
	}, nil
}
