package login

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

// LoginRequest follows the OAuth2 password flow field names and is accepted
// either as a form or as JSON.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type TokenResponse struct {
	response.Response
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Authenticator
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
}

func New(log *slog.Logger, auth Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.login.New"

		log := log.With(slog.String("op", op))

		var req LoginRequest

		err := render.Decode(r, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		log = log.With(slog.String("username", req.Username))

		token, err := auth.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, models.ErrUnauthorized) {
				log.Warn("login rejected")
				w.Header().Set("WWW-Authenticate", "Bearer")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(models.ErrUnauthorized.Error()))

				return
			}

			log.Error("failed to authenticate", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))

			return
		}

		log.Info("token issued")

		render.JSON(w, r, TokenResponse{
			Response:    response.OK(),
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}
