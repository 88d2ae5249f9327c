package signup

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

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
	Role     string `json:"role" validate:"required,oneof=attendee organizer admin"`
}

type SignupResponse struct {
	response.Response
	User models.UserView `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserCreator
type UserCreator interface {
	CreateUser(ctx context.Context, draft models.UserDraft) (models.User, error)
}

func New(log *slog.Logger, users UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.signup.New"

		log := log.With(slog.String("op", op))

		var req SignupRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("signup request decoded", slog.String("email", req.Email), slog.String("role", req.Role))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		u, err := users.CreateUser(r.Context(), models.UserDraft{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Role:     models.Role(req.Role),
		})
		if err != nil {
			log.Error("failed to create user", sl.Err(err))

			var invalid *models.ValidationError
			switch {
			case errors.As(err, &invalid):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(invalid.Error()))
			case errors.Is(err, models.ErrEmailTaken):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(models.ErrEmailTaken.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("could not create user account"))
			}

			return
		}

		log.Info("user created", slog.Int64("id", u.ID), slog.Bool("approved", u.IsApproved))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, SignupResponse{
			Response: response.OK(),
			User:     u.View(),
		})
	}
}
