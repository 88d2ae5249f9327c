package pendingOrganizers

import (
	"context"
	"log/slog"
	"net/http"

	"festBooker/internal/lib/api/response"
	"festBooker/internal/lib/logger/sl"
	"festBooker/internal/models"

	"github.com/go-chi/render"
)

type PendingResponse struct {
	response.Response
	Organizers []models.UserView `json:"organizers"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PendingLister
type PendingLister interface {
	ListPendingOrganizers(ctx context.Context) ([]models.User, error)
}

func New(log *slog.Logger, lister PendingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.pendingOrganizers.New"

		log := log.With(slog.String("op", op))

		users, err := lister.ListPendingOrganizers(r.Context())
		if err != nil {
			log.Error("failed to list pending organizers", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list pending organizers"))
			return
		}

		views := make([]models.UserView, 0, len(users))
		for _, u := range users {
			views = append(views, u.View())
		}

		log.Info("pending organizers listed", slog.Int("count", len(views)))

		render.JSON(w, r, PendingResponse{
			Response:   response.OK(),
			Organizers: views,
		})
	}
}
