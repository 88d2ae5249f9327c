package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"festBooker/internal/approval"
	"festBooker/internal/auth"
	"festBooker/internal/booking"
	"festBooker/internal/clock"
	"festBooker/internal/config"
	"festBooker/internal/http-server/router"
	"festBooker/internal/lib/logger/handlers/slogpretty"
	"festBooker/internal/lib/logger/sl"
	"festBooker/internal/readmodel"
	"festBooker/internal/scheduling"
	"festBooker/internal/storage/memory"
	"festBooker/internal/storage/postgres"
	"festBooker/internal/venues"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting fest booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := setupStorage(cfg, log)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	creds, err := auth.New(cfg.Auth.JWTSecret)
	if err != nil {
		log.Error("failed to init auth provider", sl.Err(err))
		os.Exit(1)
	}

	clk := clock.NewSystem()
	views := readmodel.New(storage)

	users := approval.New(storage, creds,
		approval.WithAttendeeDomain(cfg.Approval.AttendeeEmailDomain),
		approval.WithTokenTTL(cfg.Auth.TokenTTL),
	)

	seeded, err := users.SeedAccounts(context.Background(), cfg.SeedDrafts())
	if err != nil {
		log.Error("failed to seed accounts", sl.Err(err))
		os.Exit(1)
	}

	log.Info("seed accounts checked",
		slog.Int("created", len(seeded.Created)),
		slog.Int("existing", len(seeded.Existing)),
		slog.Int("skipped", len(seeded.Skipped)),
	)

	handler := router.New(log, router.Deps{
		Users:        users,
		Venues:       venues.New(storage),
		Events:       scheduling.NewScheduler(storage, views, clk),
		Bookings:     booking.NewEngine(storage, views, clk),
		BootstrapKey: cfg.Auth.BootstrapKey,
		SeedAccounts: cfg.SeedDrafts(),
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

type store interface {
	approval.Repository
	venues.Repository
	scheduling.Repository
	booking.Repository
	readmodel.Source
	Close() error
}

func setupStorage(cfg *config.Config, log *slog.Logger) (store, error) {
	if cfg.Storage == config.StorageMemory {
		log.Warn("using in-memory storage, data is lost on restart")
		return memory.New(), nil
	}

	version, err := postgres.RunMigrations(cfg.Database.URL(), cfg.Database.MigrationsPath)
	if err != nil {
		return nil, err
	}

	log.Info("schema is up to date", slog.Uint64("version", uint64(version)))

	return postgres.InitDB(&cfg.Database)
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
