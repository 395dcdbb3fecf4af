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

	"campaign-desk/internal/adapter/billing"
	httpadapter "campaign-desk/internal/adapter/http"
	"campaign-desk/internal/adapter/postgres"
	"campaign-desk/internal/adapter/usecase"
	"campaign-desk/internal/config"
	"campaign-desk/internal/core/port"
	"campaign-desk/internal/db"
)

// main is the entry point of the campaign-desk service. It loads
// configuration, optionally runs database migrations, initializes the
// database pool, repositories and billing gateway, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down the
// server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	if err = cfg.ValidateServer(); err != nil {
		logger.Error("invalid config", slog.Any("error", err))
		return
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		version, err := db.Migrate(cfg.Psql.Addr.String())
		if err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully", slog.Uint64("version", uint64(version)))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	repo := postgres.NewCampaignRepository(pool)

	var payments port.BillingGateway = postgres.NewPaymentMethodRepository(pool)
	if cfg.Billing.Remote() {
		payments = billing.NewClient(cfg.Billing.URL, &http.Client{Timeout: cfg.Billing.Timeout})
		logger.Info("using remote billing service", slog.String("url", cfg.Billing.URL.Redacted()))
	}
	svc := usecase.NewCampaignUseCase(repo, payments, logger)

	handler := httpadapter.NewHandler(svc, logger, httpadapter.Options{
		JWTSecret:      cfg.Auth.JWTSecret,
		Leeway:         cfg.Auth.Leeway,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	})
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
