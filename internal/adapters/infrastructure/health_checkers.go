package infrastructure

import (
	"context"
	"time"

	"weatherdash.app/internal/ports"
)

const (
	StatusHealthy   = ports.HealthHealthy
	StatusUnhealthy = ports.HealthUnhealthy

	// DefaultGatewayProbeTimeout bounds the reachability probe of the remote API
	DefaultGatewayProbeTimeout = 5 * time.Second
)

// GatewayHealthChecker probes the remote API by listing cities
type GatewayHealthChecker struct {
	gateway ports.WeatherGateway
	timeout time.Duration
}

// NewGatewayHealthChecker creates a gateway checker; non-positive timeout uses
// DefaultGatewayProbeTimeout
func NewGatewayHealthChecker(gateway ports.WeatherGateway, timeout time.Duration) *GatewayHealthChecker {
	if timeout <= 0 {
		timeout = DefaultGatewayProbeTimeout
	}
	return &GatewayHealthChecker{gateway: gateway, timeout: timeout}
}

// Check verifies the remote API answers within the probe deadline
func (g *GatewayHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "remoteAPI",
		Status:    StatusHealthy,
		Details:   map[string]interface{}{"connected": true},
	}

	if g.gateway == nil {
		status.Status = StatusUnhealthy
		status.Error = "remote API gateway is not configured"
		status.Details["connected"] = false
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	cities, err := g.gateway.ListCities(ctx)
	status.Details["latency_ms"] = time.Since(start).Milliseconds()
	if err != nil {
		status.Status = StatusUnhealthy
		status.Error = err.Error()
		status.Details["connected"] = false
		return status
	}

	status.Details["cities"] = len(cities)
	return status
}

// ConfigHealthChecker reports the effective remote API settings
type ConfigHealthChecker struct {
	config ports.ConfigProvider
}

// NewConfigHealthChecker creates a config checker
func NewConfigHealthChecker(config ports.ConfigProvider) *ConfigHealthChecker {
	return &ConfigHealthChecker{config: config}
}

// Check always reports healthy once configuration has loaded
func (c *ConfigHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	gateway := c.config.GetGatewayConfig()
	retry := c.config.GetRetryConfig()
	return ports.HealthStatus{
		Component: "config",
		Status:    StatusHealthy,
		Details: map[string]interface{}{
			"apiBaseURL":         gateway.BaseURL,
			"apiTimeout":         gateway.Timeout.String(),
			"forecastMaxRetries": retry.ForecastMaxRetries,
			"chartMaxRetries":    retry.ChartMaxRetries,
		},
	}
}

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers map[string]ports.HealthChecker
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	GatewayChecker ports.HealthChecker
	ConfigChecker  ports.HealthChecker
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker)
	if config.GatewayChecker != nil {
		checkers["remoteAPI"] = config.GatewayChecker
	}
	if config.ConfigChecker != nil {
		checkers["config"] = config.ConfigChecker
	}
	return &SystemHealthChecker{checkers: checkers}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers))
	for name, checker := range s.checkers {
		results[name] = checker.Check(ctx)
	}
	return results
}

var _ ports.SystemHealthChecker = (*SystemHealthChecker)(nil)
