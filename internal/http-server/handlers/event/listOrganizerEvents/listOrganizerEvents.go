package listOrganizerEvents

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

type EventsResponse struct {
	response.Response
	Events []models.EventView `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OrganizerEventsLister
type OrganizerEventsLister interface {
	ListOrganizerEvents(ctx context.Context, organizerID int64) ([]models.EventView, error)
}

func New(log *slog.Logger, lister OrganizerEventsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listOrganizerEvents.New"

		log := log.With(slog.String("op", op))

		organizer, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			log.Error("no authenticated user in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		events, err := lister.ListOrganizerEvents(r.Context(), organizer.ID)
		if err != nil {
			log.Error("failed to get organizer events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		log.Info("organizer events retrieved",
			slog.Int64("organizer_id", organizer.ID),
			slog.Int("count", len(events)),
		)

		if events == nil {
			events = []models.EventView{}
		}

		render.JSON(w, r, EventsResponse{
			Response: response.OK(),
			Events:   events,
		})
	}
}
