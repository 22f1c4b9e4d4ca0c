// Package main is the entry point for the household task service. It wires
// all dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/household-tasks/internal/adapters/http"
	"github.com/jsamuelsen11/household-tasks/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/household-tasks/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/household-tasks/internal/app"
	"github.com/jsamuelsen11/household-tasks/internal/platform/config"
	"github.com/jsamuelsen11/household-tasks/internal/platform/credentials"
	"github.com/jsamuelsen11/household-tasks/internal/platform/health"
	"github.com/jsamuelsen11/household-tasks/internal/platform/logging"
	"github.com/jsamuelsen11/household-tasks/internal/platform/session"
	"github.com/jsamuelsen11/household-tasks/internal/platform/telemetry"
	"github.com/jsamuelsen11/household-tasks/internal/ports"
	"github.com/jsamuelsen11/household-tasks/internal/store/memory"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	store := do.MustInvoke[*memory.Store](injector)
	if cfg.Store.Seed {
		if err := store.Seed(ctx, do.MustInvoke[ports.PasswordHasher](injector)); err != nil {
			return fmt.Errorf("seeding store: %w", err)
		}
		logger.Info("loaded demo household")
	}

	sessions := do.MustInvoke[*session.Registry](injector)
	go sessions.Run(ctx, cfg.Auth.SessionSweep)

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store)
	registry.Register(sessions)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests, then stop the sweeper.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr
	stop()

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*memory.Store, error) {
		return memory.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.PasswordHasher, error) {
		return credentials.NewBcryptHasher(cfg.Auth.BcryptCost), nil
	})

	do.Provide(injector, func(_ do.Injector) (*session.Registry, error) {
		return session.New(cfg.Auth.SessionTTL), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.EventRecorder, error) {
		// Nil metrics are safe to record against when telemetry is off.
		return do.MustInvoke[*telemetry.Metrics](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AuthService, error) {
		store := do.MustInvoke[*memory.Store](i)
		hasher := do.MustInvoke[ports.PasswordHasher](i)
		return app.NewAuthService(store, hasher, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UserService, error) {
		store := do.MustInvoke[*memory.Store](i)
		return app.NewUserService(store, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		store := do.MustInvoke[*memory.Store](i)
		events := do.MustInvoke[ports.EventRecorder](i)
		return app.NewTaskService(store, store, events, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.NotificationService, error) {
		store := do.MustInvoke[*memory.Store](i)
		return app.NewNotificationService(store, store, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		sessions := do.MustInvoke[*session.Registry](i)
		return adapthttp.Handlers{
			Auth: handlers.NewAuthHandler(
				do.MustInvoke[ports.AuthService](i),
				sessions,
				handlers.CookieSettings{Secure: cfg.Auth.CookieSecure},
			),
			Users:         handlers.NewUserHandler(do.MustInvoke[ports.UserService](i)),
			Tasks:         handlers.NewTaskHandler(do.MustInvoke[ports.TaskService](i)),
			Notifications: handlers.NewNotificationHandler(do.MustInvoke[ports.NotificationService](i)),
			Health:        handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}, nil
	})

	do.Provide(injector, func(_ do.Injector) (*middleware.RateLimiter, error) {
		return middleware.NewRateLimiter(cfg.Auth.LoginRate, cfg.Auth.LoginBurst), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		limiter := do.MustInvoke[*middleware.RateLimiter](i)
		sessions := do.MustInvoke[*session.Registry](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h, limiter,
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.Recovery(logger),
			middleware.AppContext(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Session(sessions),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
