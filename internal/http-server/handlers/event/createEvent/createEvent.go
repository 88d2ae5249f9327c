package createEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"festBooker/internal/http-server/middleware/mwauth"
	"festBooker/internal/lib/api/response"
	"festBooker/internal/lib/logger/sl"
	"festBooker/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"event_datetime" validate:"required"`
	EndTime     time.Time `json:"end_datetime" validate:"required"`
	Capacity    int       `json:"capacity" validate:"required,gt=0"`
	Cost        float64   `json:"cost" validate:"gte=0"`
	VenueID     int64     `json:"venue_id" validate:"required"`
}

type EventResponse struct {
	response.Response
	Event models.EventView `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, draft models.EventDraft, organizerID int64) (models.Event, error)
	GetEvent(ctx context.Context, id int64) (models.EventView, error)
}

func New(log *slog.Logger, events EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(
			slog.String("op", op),
		)

		organizer, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			log.Error("no authenticated user in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))

			return
		}

		var req EventRequest

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

		draft := models.EventDraft{
			Title:       req.Title,
			Description: req.Description,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Capacity:    req.Capacity,
			Cost:        req.Cost,
			VenueID:     req.VenueID,
		}

		event, err := events.CreateEvent(r.Context(), draft, organizer.ID)
		if err != nil {
			log.Error("failed to add event", sl.Err(err))

			var conflict *models.ConflictError
			var invalid *models.ValidationError
			switch {
			case errors.As(err, &conflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(conflict.Error()))
			case errors.As(err, &invalid):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(invalid.Error()))
			case errors.Is(err, models.ErrVenueNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("venue not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to add event"))
			}

			return
		}

		log.Info("event added", slog.Int64("id", event.ID))

		view, err := events.GetEvent(r.Context(), event.ID)
		if err != nil {
			log.Error("failed to load event view", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to load event"))

			return
		}

		responseCreated(w, r, view)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, event models.EventView) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		Event:    event,
	})
}
