package ports

import "time"

// GatewayConfig represents remote API configuration
type GatewayConfig struct {
	BaseURL string
	Timeout time.Duration
}

// RetryConfig represents retry settings of forecast fetches
type RetryConfig struct {
	ForecastMaxRetries int
	InitialBackoff     time.Duration
	ChartMaxRetries    int
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetGatewayConfig() GatewayConfig
	GetRetryConfig() RetryConfig
	GetServerConfig() ServerConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// GatewayMetrics records remote API traffic
type GatewayMetrics interface {
	RecordRequest(operation, outcome string, duration time.Duration)
}

// FetchMetrics records fetch orchestration events
type FetchMetrics interface {
	RecordRetry(resource string)
	RecordChartRefresh(outcome string)
}
