package me

import (
	"log/slog"
	"net/http"

	"festBooker/internal/http-server/middleware/mwauth"
	"festBooker/internal/lib/api/response"
	"festBooker/internal/models"

	"github.com/go-chi/render"
)

type MeResponse struct {
	response.Response
	User models.UserView `json:"user"`
}

// New reports the authenticated user. It expects mwauth to have run.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.me.New"

		log := log.With(slog.String("op", op))

		u, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			log.Error("no authenticated user in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		render.JSON(w, r, MeResponse{
			Response: response.OK(),
			User:     u.View(),
		})
	}
}
