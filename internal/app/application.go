package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/adapters/api"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	dashboardUseCase *dashboard.UseCase
	aggregator       *forecast.Aggregator

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(cfg, nil)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return NewApplicationWithDependencies(cfg, deps)
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		app.dashboardUseCase.Close()
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	aggregator, err := forecast.NewAggregator(forecast.AggregatorDependencies{
		Gateway: a.ports.Gateway,
		Logger:  a.ports.Logger,
		Metrics: a.ports.FetchMetrics,
		Config:  a.ports.ConfigProvider,
	})
	if err != nil {
		return fmt.Errorf("create forecast aggregator: %w", err)
	}
	a.aggregator = aggregator

	dashboardUseCase, err := dashboard.NewUseCase(dashboard.UseCaseDependencies{
		Gateway:  a.ports.Gateway,
		Notifier: a.ports.Notifier,
		Logger:   a.ports.Logger,
		Config:   a.ports.ConfigProvider,
		Metrics:  a.ports.FetchMetrics,
		Chart:    aggregator,
	})
	if err != nil {
		return fmt.Errorf("create dashboard use case: %w", err)
	}
	a.dashboardUseCase = dashboardUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Dashboard:     a.dashboardUseCase,
		Notifications: a.ports.NotificationFeed,
		Health:        a.ports.Health,
		Logger:        a.ports.Logger,
		Gatherer:      a.deps.Gatherer(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	// WriteTimeout stays above the remote API timeout of mutating requests
	a.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", a.ports.ConfigProvider.GetServerConfig().Port),
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      a.config.API.Timeout() + 20*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Load performs the initial dashboard load. A failure is reported through
// notifications and logs; the application keeps serving.
func (a *Application) Load(ctx context.Context) error {
	return a.dashboardUseCase.Load(ctx)
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	if err := a.Load(ctx); err != nil {
		slog.Warn("Initial dashboard load failed", "error", err)
	}

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	var shutdownErr error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		shutdownErr = fmt.Errorf("shutdown HTTP server: %w", err)
	}

	a.dashboardUseCase.Close()

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing dependencies", "error", err)
	}

	slog.Info("Application shutdown complete")
	return shutdownErr
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetDashboardUseCase returns the dashboard use case for testing
func (a *Application) GetDashboardUseCase() *dashboard.UseCase {
	return a.dashboardUseCase
}

// GetAggregator returns the forecast aggregator for testing
func (a *Application) GetAggregator() *forecast.Aggregator {
	return a.aggregator
}
