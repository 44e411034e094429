package infrastructure

import (
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetGatewayConfig returns remote API configuration
func (c *ConfigProviderAdapter) GetGatewayConfig() ports.GatewayConfig {
	return ports.GatewayConfig{
		BaseURL: c.config.API.BaseURL,
		Timeout: c.config.API.Timeout(),
	}
}

// GetRetryConfig returns forecast retry settings
func (c *ConfigProviderAdapter) GetRetryConfig() ports.RetryConfig {
	return ports.RetryConfig{
		ForecastMaxRetries: c.config.Forecast.MaxRetries,
		InitialBackoff:     c.config.Forecast.InitialBackoff(),
		ChartMaxRetries:    c.config.Forecast.ChartMaxRetries,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

var _ ports.ConfigProvider = (*ConfigProviderAdapter)(nil)
