package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/validation"
)

const (
	maxPortNumber        = 65535
	maxAPITimeoutSeconds = 300
	maxRetries           = 10
	maxBackoffMS         = 60000
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	API      APIConfig      `split_words:"true"`
	Forecast ForecastConfig `split_words:"true"`
	Log      LogConfig      `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// APIConfig configures the remote weather/preferences API the dashboard consumes
type APIConfig struct {
	BaseURL            string  `envconfig:"API_BASE_URL" default:"https://liveweathertrack.onrender.com/api"`
	TimeoutSeconds     int     `envconfig:"API_TIMEOUT_SECONDS" default:"40"`
	RateLimitRPS       float64 `envconfig:"API_RATE_LIMIT_RPS" default:"0"`
	RateLimitBurst     int     `envconfig:"API_RATE_LIMIT_BURST" default:"5"`
	BreakerEnabled     bool    `envconfig:"API_BREAKER_ENABLED" default:"false"`
	BreakerMaxFailures uint32  `envconfig:"API_BREAKER_MAX_FAILURES" default:"5"`
	BreakerOpenSeconds int     `envconfig:"API_BREAKER_OPEN_SECONDS" default:"30"`
}

// Timeout returns the per-request timeout as a duration
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// BreakerOpenDuration returns how long the circuit stays open after tripping
func (a APIConfig) BreakerOpenDuration() time.Duration {
	return time.Duration(a.BreakerOpenSeconds) * time.Second
}

// ForecastConfig controls retry policies of forecast fetches
type ForecastConfig struct {
	MaxRetries       int `envconfig:"FORECAST_MAX_RETRIES" default:"2"`
	InitialBackoffMS int `envconfig:"FORECAST_INITIAL_BACKOFF_MS" default:"1000"`
	ChartMaxRetries  int `envconfig:"CHART_MAX_RETRIES" default:"0"`
}

// InitialBackoff returns the delay before the first retry
func (f ForecastConfig) InitialBackoff() time.Duration {
	return time.Duration(f.InitialBackoffMS) * time.Millisecond
}

type LogConfig struct {
	Level              string `envconfig:"LOG_LEVEL" default:"info"`
	GatewayLogging     bool   `envconfig:"GATEWAY_LOGGING" default:"true"`
	GatewayLogFilePath string `envconfig:"GATEWAY_LOG_FILE_PATH" default:""`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	config.API.BaseURL = strings.TrimRight(config.API.BaseURL, "/")

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.API.Validate(); err != nil {
		return err
	}
	if err := c.Forecast.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (a *APIConfig) Validate() error {
	if !validation.IsNotEmpty(a.BaseURL) {
		return errors.NewConfigurationError("API_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(a.BaseURL, "http://") && !strings.HasPrefix(a.BaseURL, "https://") {
		return errors.NewConfigurationError("API_BASE_URL must start with http:// or https://", nil)
	}
	if a.TimeoutSeconds < 1 || a.TimeoutSeconds > maxAPITimeoutSeconds {
		return errors.NewConfigurationError("API_TIMEOUT_SECONDS must be between 1 and 300", nil)
	}
	if a.RateLimitRPS < 0 {
		return errors.NewConfigurationError("API_RATE_LIMIT_RPS cannot be negative", nil)
	}
	if a.RateLimitRPS > 0 && a.RateLimitBurst < 1 {
		return errors.NewConfigurationError("API_RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled", nil)
	}
	if a.BreakerEnabled {
		if a.BreakerMaxFailures < 1 {
			return errors.NewConfigurationError("API_BREAKER_MAX_FAILURES must be at least 1", nil)
		}
		if a.BreakerOpenSeconds < 1 {
			return errors.NewConfigurationError("API_BREAKER_OPEN_SECONDS must be at least 1 second", nil)
		}
	}
	return nil
}

func (f *ForecastConfig) Validate() error {
	if f.MaxRetries < 0 || f.MaxRetries > maxRetries {
		return errors.NewConfigurationError("FORECAST_MAX_RETRIES must be between 0 and 10", nil)
	}
	if f.ChartMaxRetries < 0 || f.ChartMaxRetries > maxRetries {
		return errors.NewConfigurationError("CHART_MAX_RETRIES must be between 0 and 10", nil)
	}
	if f.InitialBackoffMS < 1 || f.InitialBackoffMS > maxBackoffMS {
		return errors.NewConfigurationError("FORECAST_INITIAL_BACKOFF_MS must be between 1 and 60000", nil)
	}
	return nil
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
}
