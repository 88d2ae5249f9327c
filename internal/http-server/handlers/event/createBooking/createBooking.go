package createBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"festBooker/internal/http-server/middleware/mwauth"
	"festBooker/internal/lib/api/response"
	"festBooker/internal/lib/logger/sl"
	"festBooker/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type BookingResponse struct {
	response.Response
	Booking models.BookingView `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(ctx context.Context, eventID, attendeeID int64) (models.BookingView, error)
}

// New books one seat of the event in the URL for the authenticated user.
func New(log *slog.Logger, booking BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createBooking.New"

		log := log.With(slog.String("op", op))

		attendee, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			log.Error("no authenticated user in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		eventIdStr := chi.URLParam(r, "id")
		if eventIdStr == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		eventID, err := strconv.ParseInt(eventIdStr, 10, 64)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int64("event_id", eventID), slog.Int64("attendee_id", attendee.ID))

		b, err := booking.CreateBooking(r.Context(), eventID, attendee.ID)
		if err != nil {
			log.Error("failed to book event", sl.Err(err))

			switch {
			case errors.Is(err, models.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, models.ErrAlreadyBooked):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(models.ErrAlreadyBooked.Error()))
			case errors.Is(err, models.ErrEventFull):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(models.ErrEventFull.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to book event"))
			}

			return
		}

		log.Info("event booked successfully", slog.Int64("booking_id", b.ID))

		responseOK(w, r, b)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, b models.BookingView) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  b,
	})
}
