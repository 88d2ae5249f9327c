// Package mwauth resolves bearer tokens and gates routes by role and approval.
package mwauth

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"festBooker/internal/lib/api/response"
	"festBooker/internal/lib/logger/sl"
	"festBooker/internal/models"

	"github.com/go-chi/render"
)

type ctxKey struct{}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserResolver
type UserResolver interface {
	ResolveUser(ctx context.Context, token string) (models.User, error)
}

// WithUser stores the authenticated user in ctx.
func WithUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

func UserFromContext(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(ctxKey{}).(models.User)
	return u, ok
}

// New authenticates every request with an "Authorization: Bearer <token>"
// header and puts the resolved user into the request context.
func New(log *slog.Logger, users UserResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				log.Warn("missing bearer token")
				unauthorized(w, r, "not authenticated")
				return
			}

			u, err := users.ResolveUser(r.Context(), token)
			if err != nil {
				if errors.Is(err, models.ErrUnauthorized) {
					log.Warn("rejected bearer token", sl.Err(err))
					unauthorized(w, r, "could not validate credentials")
					return
				}

				log.Error("failed to resolve user", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal error"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		}

		return http.HandlerFunc(fn)
	}
}

// RequireRole lets through only users holding one of roles.
func RequireRole(roles ...models.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			u, ok := UserFromContext(r.Context())
			if !ok {
				unauthorized(w, r, "not authenticated")
				return
			}

			if !slices.Contains(roles, u.Role) {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error(models.ErrForbidden.Error()))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

// RequireApproved rejects organizers an admin has not approved yet.
func RequireApproved(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		u, ok := UserFromContext(r.Context())
		if !ok {
			unauthorized(w, r, "not authenticated")
			return
		}

		if !u.CanAct() {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error(models.ErrNotApproved.Error()))
			return
		}

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

// BootstrapKeyHeader carries the provisioning key accepted by BootstrapKey.
const BootstrapKeyHeader = "X-Bootstrap-Key"

// BootstrapKey lets requests presenting key in BootstrapKeyHeader through
// without authentication. Every other request goes through guard. An empty
// key disables the bypass.
func BootstrapKey(key string, guard func(next http.Handler) http.Handler) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		guarded := guard(next)

		fn := func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(BootstrapKeyHeader)
			if key != "" && subtle.ConstantTimeCompare([]byte(got), []byte(key)) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			guarded.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}

func unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error(msg))
}
