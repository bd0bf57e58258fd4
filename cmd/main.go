package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "soundcamps/internal/adapter/http"
	"soundcamps/internal/adapter/memory"
	"soundcamps/internal/adapter/postgres"
	"soundcamps/internal/adapter/spotify"
	"soundcamps/internal/adapter/stripe"
	"soundcamps/internal/adapter/usecase"
	"soundcamps/internal/adapter/webhook"
	"soundcamps/internal/config"
	"soundcamps/internal/core/port"
	"soundcamps/internal/db"
)

// main is the entry point of the campaign wizard service. It loads
// configuration, wires the outbound adapters (disabled stand-ins when
// credentials are missing), optionally connects the PostgreSQL launch
// ledger, then serves HTTP until a termination signal arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var launches port.LaunchRepository = memory.NewLaunchRepository()
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()

		if cfg.Psql.Seed {
			if err = db.Seed(ctx, pool); err != nil {
				logger.Error("seed error", slog.Any("error", err))
			} else {
				logger.Info("demo launches seeded")
			}
		}
		launches = postgres.NewLaunchRepository(pool)
	} else {
		logger.Info("postgres disabled, launch ledger kept in memory")
	}

	var catalog port.CatalogSearcher = spotify.Disabled{}
	if cfg.Spotify.Configured() {
		catalog = spotify.NewClient(cfg.Spotify, logger)
	} else {
		logger.Warn("spotify credentials missing, search disabled")
	}

	var payments port.PaymentGateway = stripe.Disabled{}
	if cfg.Stripe.Configured() {
		payments = stripe.NewGateway(cfg.Stripe, logger)
	} else {
		logger.Warn("stripe secret key missing, payments disabled")
	}

	notifier := webhook.NewNotifier(cfg.Webhook, logger)

	svc := usecase.NewWizardUseCase(memory.NewSessionRepository(), launches, catalog, payments, notifier, logger)
	go svc.RunJanitor(ctx, cfg.Session.TTL, cfg.Session.SweepInterval)

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
		}
		return
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
