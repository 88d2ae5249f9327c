// Package venues manages the venue catalogue.
package venues

import (
	"context"
	"strings"

	"festBooker/internal/models"
)

type Repository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	CreateVenue(ctx context.Context, v models.Venue) (models.Venue, error)
	ListVenues(ctx context.Context) ([]models.Venue, error)
	DeleteVenue(ctx context.Context, id int64) (models.Venue, error)
}

type Service struct {
	repo Repository
}

func New(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateVenue(ctx context.Context, draft models.VenueDraft) (models.Venue, error) {
	if err := draft.Validate(); err != nil {
		return models.Venue{}, err
	}

	return s.repo.CreateVenue(ctx, models.Venue{
		Name:     strings.TrimSpace(draft.Name),
		Location: strings.TrimSpace(draft.Location),
		Capacity: draft.Capacity,
	})
}

// ListVenues returns every venue ordered by id.
func (s *Service) ListVenues(ctx context.Context) ([]models.Venue, error) {
	return s.repo.ListVenues(ctx)
}

// DeleteVenue removes a venue that no event references. It runs in a
// transaction so it cannot interleave with scheduling on the same venue.
func (s *Service) DeleteVenue(ctx context.Context, id int64) (models.Venue, error) {
	var deleted models.Venue

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		deleted, err = s.repo.DeleteVenue(txCtx, id)
		return err
	})
	if err != nil {
		return models.Venue{}, err
	}

	return deleted, nil
}
