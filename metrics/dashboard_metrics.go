package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DashboardMetrics records remote API traffic and fetch orchestration events.
// It implements ports.GatewayMetrics and ports.FetchMetrics.
type DashboardMetrics struct {
	Requests       *prometheus.CounterVec
	Latency        *prometheus.HistogramVec
	Retries        *prometheus.CounterVec
	ChartRefreshes *prometheus.CounterVec
}

// NewDashboardMetrics creates the collectors and registers them with reg.
// A nil registerer uses the process default.
func NewDashboardMetrics(reg prometheus.Registerer) *DashboardMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &DashboardMetrics{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherdash_gateway_requests_total",
				Help: "The total number of remote API requests",
			},
			[]string{"operation", "outcome"},
		),
		Latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weatherdash_gateway_request_duration_seconds",
				Help:    "Remote API request duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40},
			},
			[]string{"operation"},
		),
		Retries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherdash_fetch_retries_total",
				Help: "The total number of fetch retries after a timeout",
			},
			[]string{"resource"},
		),
		ChartRefreshes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherdash_chart_refreshes_total",
				Help: "The total number of forecast chart refresh passes by outcome",
			},
			[]string{"outcome"},
		),
	}
}

func (m *DashboardMetrics) RecordRequest(operation, outcome string, duration time.Duration) {
	m.Requests.WithLabelValues(operation, outcome).Inc()
	m.Latency.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *DashboardMetrics) RecordRetry(resource string) {
	m.Retries.WithLabelValues(resource).Inc()
}

func (m *DashboardMetrics) RecordChartRefresh(outcome string) {
	m.ChartRefreshes.WithLabelValues(outcome).Inc()
}
