package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"

	"vendascli/internal/config"
	"vendascli/internal/errors"
	"vendascli/internal/infrastructure"
	custommiddleware "vendascli/internal/middleware"
	"vendascli/internal/services"
	handlers "vendascli/internal/transport/http"
)

const (
	Version = "1.0.0"
	AppName = "Vendas - Sell-Through Analytics"
)

// BuildTime is set at compile time via -ldflags
var BuildTime = ""

// Application represents the main application container
type Application struct {
	Config    *config.Config
	Router    *chi.Mux
	Server    *http.Server
	Analytics *services.AnalyticsService
	Health    *services.HealthService
	Registry  *prometheus.Registry
	Logger    *slog.Logger
}

// NewApplication creates a new application instance with dependency injection
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("application starting",
		slog.String("name", AppName),
		slog.String("version", Version))

	registry := prometheus.NewRegistry()
	ingestMetrics := infrastructure.NewIngestMetrics(registry)

	analytics := services.NewAnalyticsService(cfg.Ingest.HeaderSearchWindow, ingestMetrics, logger)
	health := services.NewHealthService(Version, BuildTime, analytics, logger)

	app := &Application{
		Config:    cfg,
		Analytics: analytics,
		Health:    health,
		Registry:  registry,
		Logger:    logger,
	}

	app.setupRouter()
	app.setupServer()

	return app, nil
}

// setupRouter configures the HTTP router with all routes
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(custommiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(custommiddleware.StructuredLogger(a.Logger))
	r.Use(custommiddleware.Recoverer(a.Logger))
	r.Use(chimiddleware.Timeout(a.Config.Server.ReadTimeout))

	if a.Config.Security.RateLimit.Enabled {
		r.Use(custommiddleware.NewRateLimiter(
			a.Config.Security.RateLimit.RPS,
			a.Config.Security.RateLimit.Burst,
			a.Logger,
		).Handler)
	}

	errorHandler := errors.NewErrorHandler(a.Logger, false)
	r.NotFound(errorHandler.NotFound)
	r.MethodNotAllowed(errorHandler.MethodNotAllowed)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		handlers.NewAnalyticsHandler(a.Analytics, a.Config.Ingest.MaxUploadBytes, a.Logger).RegisterRoutes(r)
		handlers.NewHealthHandler(a.Health, a.Logger).RegisterRoutes(r)
	})

	// Metrics sit outside the JSON content-type group.
	r.Handle("/metrics", handlers.MetricsHandler(a.Registry))

	a.Router = r
}

// setupServer creates the HTTP server with the configured timeouts
func (a *Application) setupServer() {
	a.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Start starts the HTTP server in the background
func (a *Application) Start(ctx context.Context, cancel context.CancelFunc) error {
	a.Logger.InfoContext(ctx, "starting server",
		slog.Int("port", a.Config.Server.Port),
		slog.String("level", a.Config.Logging.Level))

	go func() {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.ErrorContext(ctx, "server error", slog.String("error", err.Error()))
			cancel()
		}
	}()

	a.Logger.InfoContext(ctx, "application started",
		slog.String("address", fmt.Sprintf("http://localhost:%d", a.Config.Server.Port)))

	return nil
}

// Stop gracefully shuts down the HTTP server
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		a.Logger.ErrorContext(ctx, "shutdown error", slog.String("error", err.Error()))
		return err
	}

	a.Logger.InfoContext(ctx, "shutdown complete")
	return nil
}

// Run runs the application until interrupted
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if err := a.Start(ctx, cancel); err != nil {
		return err
	}

	select {
	case <-sigChan:
		a.Logger.InfoContext(ctx, "received interrupt signal")
	case <-ctx.Done():
	}

	return a.Stop(ctx)
}
