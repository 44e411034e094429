// Package api exposes the dashboard session to the browser page over JSON.
// Handlers translate HTTP requests into dashboard use case calls and render
// view models; they never mutate session state themselves.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/fetch"
	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// DashboardUseCase is the session the HTTP adapter depends on
type DashboardUseCase interface {
	Snapshot() dashboard.Snapshot
	AddCity(ctx context.Context, params weather.NewCityParams) (*weather.City, error)
	RemoveCity(ctx context.Context, cityID int64) error
	ToggleFavorite(ctx context.Context, cityID int64) error
	SetTemperatureUnit(ctx context.Context, unit string) error
	WeatherCard(cityID int64) (fetch.State[weather.CurrentWeather], error)
	RetryWeather(cityID int64) error
	ForecastCard(cityID int64) (fetch.State[[]weather.ForecastDay], error)
	RetryForecast(cityID int64) error
	Chart() forecast.Series
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router        *gin.Engine
	dashboard     DashboardUseCase
	notifications ports.NotificationFeed
	health        ports.SystemHealthChecker
	logger        ports.Logger
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Dashboard     DashboardUseCase
	Notifications ports.NotificationFeed
	Health        ports.SystemHealthChecker
	Logger        ports.Logger
	// Gatherer backs /metrics; nil uses the default prometheus registry
	Gatherer      prometheus.Gatherer
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(opts.Logger))

	server := &HTTPServerAdapter{
		router:        router,
		dashboard:     opts.Dashboard,
		notifications: opts.Notifications,
		health:        opts.Health,
		logger:        opts.Logger,
	}

	server.setupRoutes(opts.Gatherer)
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Dashboard == nil {
		return errors.NewValidationError("dashboard use case is required")
	}
	if opts.Notifications == nil {
		return errors.NewValidationError("notification feed is required")
	}
	if opts.Health == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes(gatherer prometheus.Gatherer) {
	api := s.router.Group("/api")
	{
		api.GET("/dashboard", s.getDashboard)
		api.POST("/cities", s.addCity)
		api.DELETE("/cities/:id", s.removeCity)
		api.POST("/cities/:id/favorite", s.toggleFavorite)
		api.PUT("/preferences/unit", s.setTemperatureUnit)

		api.GET("/cities/:id/weather", s.getWeatherCard)
		api.POST("/cities/:id/weather/retry", s.retryWeather)
		api.GET("/cities/:id/forecast", s.getForecastCard)
		api.POST("/cities/:id/forecast/retry", s.retryForecast)
		api.GET("/chart", s.getChart)

		api.GET("/notifications", s.getNotifications)
		api.GET("/health", s.getHealth)
	}

	metricsHandler := promhttp.Handler()
	if gatherer != nil {
		metricsHandler = promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	}
	s.router.GET("/metrics", gin.WrapH(metricsHandler))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

func requestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []ports.Field{
			ports.F("method", c.Request.Method),
			ports.F("path", c.FullPath()),
			ports.F("status", c.Writer.Status()),
			ports.F("duration_ms", time.Since(start).Milliseconds()),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Warn("HTTP request failed", fields...)
			return
		}
		logger.Debug("HTTP request", fields...)
	}
}
