// Package router assembles the HTTP API.
package router

import (
	"log/slog"
	"net/http"

	"festBooker/internal/approval"
	"festBooker/internal/booking"
	"festBooker/internal/http-server/handlers/admin/approveOrganizer"
	"festBooker/internal/http-server/handlers/admin/pendingOrganizers"
	"festBooker/internal/http-server/handlers/admin/setupAccounts"
	"festBooker/internal/http-server/handlers/booking/listBookings"
	"festBooker/internal/http-server/handlers/event/createBooking"
	"festBooker/internal/http-server/handlers/event/createEvent"
	"festBooker/internal/http-server/handlers/event/getAllEvents"
	"festBooker/internal/http-server/handlers/event/getEventInfo"
	"festBooker/internal/http-server/handlers/event/listOrganizerEvents"
	"festBooker/internal/http-server/handlers/user/login"
	"festBooker/internal/http-server/handlers/user/me"
	"festBooker/internal/http-server/handlers/user/signup"
	"festBooker/internal/http-server/handlers/venue/createVenue"
	"festBooker/internal/http-server/handlers/venue/deleteVenue"
	"festBooker/internal/http-server/handlers/venue/listVenues"
	"festBooker/internal/http-server/middleware/mwauth"
	"festBooker/internal/http-server/middleware/mwlogger"
	"festBooker/internal/lib/api/response"
	"festBooker/internal/models"
	"festBooker/internal/scheduling"
	"festBooker/internal/venues"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Deps struct {
	Users    *approval.Workflow
	Venues   *venues.Service
	Events   *scheduling.Scheduler
	Bookings *booking.Engine

	// BootstrapKey, when set, unlocks setup-accounts without an admin token.
	BootstrapKey string
	SeedAccounts []models.UserDraft
}

func New(log *slog.Logger, d Deps) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.OK())
	})

	authn := mwauth.New(log, d.Users)
	adminOnly := mwauth.RequireRole(models.RoleAdmin)
	admin := func(next http.Handler) http.Handler {
		return authn(adminOnly(next))
	}

	router.Route("/api", func(r chi.Router) {
		r.Post("/signup", signup.New(log, d.Users))
		r.Get("/venues", listVenues.New(log, d.Venues))
		r.Get("/events", getAllEvents.New(log, d.Events))
		r.Get("/events/{id}", getEventInfo.New(log, d.Events))

		r.Group(func(r chi.Router) {
			r.Use(authn)

			r.With(mwauth.RequireApproved).Get("/users/me", me.New(log))
			r.Post("/events/{id}/book", createBooking.New(log, d.Bookings))
			r.Get("/bookings", listBookings.New(log, d.Bookings))
		})

		r.Route("/organizer", func(r chi.Router) {
			r.Post("/login", login.New(log, d.Users))

			r.Group(func(r chi.Router) {
				r.Use(authn, mwauth.RequireRole(models.RoleOrganizer), mwauth.RequireApproved)

				r.Post("/events", createEvent.New(log, d.Events))
				r.Get("/events", listOrganizerEvents.New(log, d.Events))
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.With(mwauth.BootstrapKey(d.BootstrapKey, admin)).
				Post("/setup-accounts", setupAccounts.New(log, d.Users, d.SeedAccounts))

			r.Group(func(r chi.Router) {
				r.Use(admin)

				r.Get("/pending-organizers", pendingOrganizers.New(log, d.Users))
				r.Post("/approve-organizer/{id}", approveOrganizer.New(log, d.Users))
				r.Post("/venues", createVenue.New(log, d.Venues))
				r.Delete("/venues/{id}", deleteVenue.New(log, d.Venues))
			})
		})
	})

	return router
}
