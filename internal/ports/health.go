package ports

import "context"

// Component health states
const (
	HealthHealthy   = "healthy"
	HealthUnhealthy = "unhealthy"
)

// HealthChecker probes one dependency of the dashboard
type HealthChecker interface {
	Check(ctx context.Context) HealthStatus
}

// HealthStatus is the result of a single probe
type HealthStatus struct {
	Component string                 `json:"component"`
	Status    string                 `json:"status"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// IsHealthy reports whether the probe passed
func (h HealthStatus) IsHealthy() bool {
	return h.Status == HealthHealthy
}

// SystemHealthChecker runs every registered probe, keyed by component name
type SystemHealthChecker interface {
	CheckAll(ctx context.Context) map[string]HealthStatus
}
