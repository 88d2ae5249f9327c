package models

import "strings"

type Venue struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}

type VenueDraft struct {
	Name     string
	Location string
	Capacity int
}

func (d VenueDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return NewValidationError("venue name is required")
	}
	if strings.TrimSpace(d.Location) == "" {
		return NewValidationError("venue location is required")
	}
	if d.Capacity <= 0 {
		return NewValidationError("venue capacity must be a positive integer")
	}

	return nil
}
