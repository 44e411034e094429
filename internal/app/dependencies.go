package app

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
	"weatherdash.app/internal/adapters/gateway"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
	"weatherdash.app/metrics"
	"weatherdash.app/pkg/logger"
)

type DependencyContainer struct {
	config     *config.Config
	registry   *prometheus.Registry
	metrics    *metrics.DashboardMetrics
	gatewayLog *infrastructure.FileLoggerAdapter
	ports      *ports.ApplicationPorts
}

// NewDependencyContainer wires the ports from configuration. A nil registry
// registers metrics with the process default registry.
func NewDependencyContainer(cfg *config.Config, registry *prometheus.Registry) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:   cfg,
		registry: registry,
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	appLogger := infrastructure.NewSlogLoggerAdapter(nil)

	var registerer prometheus.Registerer
	if c.registry != nil {
		registerer = c.registry
	}
	c.metrics = metrics.NewDashboardMetrics(registerer)

	gatewayLogger := ports.Logger(appLogger)
	if c.config.Log.GatewayLogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Log.GatewayLogFilePath, logger.ParseLevel(c.config.Log.Level))
		if err != nil {
			slog.Warn("Failed to create gateway file logger, falling back to slog", "error", err)
		} else {
			c.gatewayLog = fileLogger
			gatewayLogger = fileLogger
			slog.Info("Gateway file logging enabled", "path", c.config.Log.GatewayLogFilePath)
		}
	}

	params := gateway.ClientParams{
		BaseURL: c.config.API.BaseURL,
		Timeout: c.config.API.Timeout(),
		Metrics: c.metrics,
	}
	if c.config.API.RateLimitRPS > 0 {
		params.Limiter = rate.NewLimiter(rate.Limit(c.config.API.RateLimitRPS), c.config.API.RateLimitBurst)
		slog.Info("Remote API rate limiting enabled",
			"rps", c.config.API.RateLimitRPS,
			"burst", c.config.API.RateLimitBurst)
	}
	if c.config.API.BreakerEnabled {
		params.Breaker = gateway.NewBreaker(c.config.API.BreakerMaxFailures, c.config.API.BreakerOpenDuration(), appLogger)
		slog.Info("Remote API circuit breaker enabled",
			"max_failures", c.config.API.BreakerMaxFailures,
			"open_seconds", c.config.API.BreakerOpenSeconds)
	}

	client, err := gateway.NewClient(params)
	if err != nil {
		return fmt.Errorf("create remote API client: %w", err)
	}

	var remote ports.WeatherGateway = client
	if c.config.Log.GatewayLogging {
		remote = gateway.NewLoggingDecorator(client, gatewayLogger)
		slog.Info("Remote API request logging enabled")
	}

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)
	notifications := infrastructure.NewMemoryNotificationStore(infrastructure.DefaultNotificationCapacity)

	health := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		GatewayChecker: infrastructure.NewGatewayHealthChecker(client, infrastructure.DefaultGatewayProbeTimeout),
		ConfigChecker:  infrastructure.NewConfigHealthChecker(configProvider),
	})

	c.ports = &ports.ApplicationPorts{
		// Remote API
		Gateway: remote,

		// Presentation
		Notifier:         notifications,
		NotificationFeed: notifications,

		// Observability
		FetchMetrics: c.metrics,
		Health:       health,

		// Infrastructure
		ConfigProvider: configProvider,
		Logger:         appLogger,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Gatherer returns the registry backing /metrics, or nil for the default one
func (c *DependencyContainer) Gatherer() prometheus.Gatherer {
	if c.registry == nil {
		return nil
	}
	return c.registry
}

// Cleanup releases resources held by the container
func (c *DependencyContainer) Cleanup() error {
	if c.gatewayLog != nil {
		return c.gatewayLog.Close()
	}
	return nil
}
