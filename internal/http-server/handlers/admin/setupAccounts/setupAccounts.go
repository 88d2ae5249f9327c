package setupAccounts

import (
	"context"
	"log/slog"
	"net/http"

	"festBooker/internal/approval"
	"festBooker/internal/lib/api/response"
	"festBooker/internal/lib/logger/sl"
	"festBooker/internal/models"

	"github.com/go-chi/render"
)

type SetupResponse struct {
	response.Response
	approval.SeedResult
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AccountSeeder
type AccountSeeder interface {
	SeedAccounts(ctx context.Context, drafts []models.UserDraft) (approval.SeedResult, error)
}

// New provisions the configured accounts. Running it twice is harmless.
func New(log *slog.Logger, seeder AccountSeeder, accounts []models.UserDraft) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.setupAccounts.New"

		log := log.With(slog.String("op", op))

		res, err := seeder.SeedAccounts(r.Context(), accounts)
		if err != nil {
			log.Error("failed to set up accounts", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to set up accounts"))
			return
		}

		log.Info("accounts set up",
			slog.Int("created", len(res.Created)),
			slog.Int("existing", len(res.Existing)),
			slog.Int("skipped", len(res.Skipped)),
		)

		render.JSON(w, r, SetupResponse{
			Response:   response.OK(),
			SeedResult: res,
		})
	}
}
