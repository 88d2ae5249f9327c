package listVenues

import (
	"context"
	"log/slog"
	"net/http"

	"festBooker/internal/lib/api/response"
	"festBooker/internal/lib/logger/sl"
	"festBooker/internal/models"

	"github.com/go-chi/render"
)

type VenuesResponse struct {
	response.Response
	Venues []models.Venue `json:"venues"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenuesLister
type VenuesLister interface {
	ListVenues(ctx context.Context) ([]models.Venue, error)
}

func New(log *slog.Logger, lister VenuesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.listVenues.New"

		log := log.With(slog.String("op", op))

		venues, err := lister.ListVenues(r.Context())
		if err != nil {
			log.Error("failed to get venues", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get venues"))
			return
		}

		if venues == nil {
			venues = []models.Venue{}
		}

		render.JSON(w, r, VenuesResponse{
			Response: response.OK(),
			Venues:   venues,
		})
	}
}
