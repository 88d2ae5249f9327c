package createVenue

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"festBooker/internal/lib/api/response"
	"festBooker/internal/lib/logger/sl"
	"festBooker/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type VenueRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Location string `json:"location"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
}

type VenueResponse struct {
	response.Response
	Venue models.Venue `json:"venue"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueCreator
type VenueCreator interface {
	CreateVenue(ctx context.Context, draft models.VenueDraft) (models.Venue, error)
}

func New(log *slog.Logger, venues VenueCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.createVenue.New"

		log := log.With(slog.String("op", op))

		var req VenueRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		v, err := venues.CreateVenue(r.Context(), models.VenueDraft{
			Name:     req.Name,
			Location: req.Location,
			Capacity: req.Capacity,
		})
		if err != nil {
			log.Error("failed to add venue", sl.Err(err))

			var invalid *models.ValidationError
			switch {
			case errors.As(err, &invalid):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(invalid.Error()))
			case errors.Is(err, models.ErrVenueExists):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(models.ErrVenueExists.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to add venue"))
			}

			return
		}

		log.Info("venue added", slog.Int64("id", v.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, VenueResponse{
			Response: response.OK(),
			Venue:    v,
		})
	}
}
