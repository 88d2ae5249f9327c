package deleteVenue

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"festBooker/internal/lib/api/response"
	"festBooker/internal/lib/logger/sl"
	"festBooker/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type DeleteResponse struct {
	response.Response
	Venue models.Venue `json:"venue"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueDeleter
type VenueDeleter interface {
	DeleteVenue(ctx context.Context, id int64) (models.Venue, error)
}

func New(log *slog.Logger, venues VenueDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.deleteVenue.New"

		log := log.With(slog.String("op", op))

		venueID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid venue id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid venue id format"))
			return
		}

		log = log.With(slog.Int64("venue_id", venueID))

		v, err := venues.DeleteVenue(r.Context(), venueID)
		if err != nil {
			log.Error("failed to delete venue", sl.Err(err))

			switch {
			case errors.Is(err, models.ErrVenueNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("venue not found"))
			case errors.Is(err, models.ErrVenueInUse):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(models.ErrVenueInUse.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete venue"))
			}

			return
		}

		log.Info("venue deleted")

		render.JSON(w, r, DeleteResponse{
			Response: response.OK(),
			Venue:    v,
		})
	}
}
