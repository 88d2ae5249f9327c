package listBookings

import (
	"context"
	"log/slog"
	"net/http"

	"festBooker/internal/http-server/middleware/mwauth"
	"festBooker/internal/lib/api/response"
	"festBooker/internal/lib/logger/sl"
	"festBooker/internal/models"

	"github.com/go-chi/render"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.BookingView `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsLister
type BookingsLister interface {
	ListAttendeeBookings(ctx context.Context, attendeeID int64) ([]models.BookingView, error)
}

// New lists the authenticated user's bookings, newest first.
func New(log *slog.Logger, lister BookingsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listBookings.New"

		log := log.With(slog.String("op", op))

		attendee, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			log.Error("no authenticated user in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		bookings, err := lister.ListAttendeeBookings(r.Context(), attendee.ID)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		log.Info("bookings retrieved",
			slog.Int64("attendee_id", attendee.ID),
			slog.Int("count", len(bookings)),
		)

		responseOK(w, r, bookings)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookings []models.BookingView) {
	if bookings == nil {
		bookings = []models.BookingView{}
	}

	render.JSON(w, r, BookingsResponse{
		Response: response.OK(),
		Bookings: bookings,
	})
}
