package approveOrganizer

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

type ApproveResponse struct {
	response.Response
	User models.UserView `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OrganizerApprover
type OrganizerApprover interface {
	ApproveOrganizer(ctx context.Context, userID int64) (models.User, error)
}

func New(log *slog.Logger, approver OrganizerApprover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.approveOrganizer.New"

		log := log.With(slog.String("op", op))

		userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid user id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user id format"))
			return
		}

		log = log.With(slog.Int64("user_id", userID))

		u, err := approver.ApproveOrganizer(r.Context(), userID)
		if err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				log.Warn("organizer not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("organizer not found"))
				return
			}

			log.Error("failed to approve organizer", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to approve organizer"))
			return
		}

		log.Info("organizer approved")

		render.JSON(w, r, ApproveResponse{
			Response: response.OK(),
			User:     u.View(),
		})
	}
}
