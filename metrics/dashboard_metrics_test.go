package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewDashboardMetrics(reg)

	t.Run("Record requests", func(t *testing.T) {
		metrics.RecordRequest("forecast", "success", 120*time.Millisecond)
		metrics.RecordRequest("forecast", "success", 80*time.Millisecond)
		metrics.RecordRequest("forecast", "timeout", 40*time.Second)

		assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Requests.WithLabelValues("forecast", "success")))
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Requests.WithLabelValues("forecast", "timeout")))
		assert.Equal(t, 1, testutil.CollectAndCount(metrics.Latency))
	})

	t.Run("Record retries", func(t *testing.T) {
		metrics.RecordRetry("forecast")
		metrics.RecordRetry("forecast")
		metrics.RecordRetry("chart")

		assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Retries.WithLabelValues("forecast")))
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Retries.WithLabelValues("chart")))
	})

	t.Run("Record chart refreshes", func(t *testing.T) {
		metrics.RecordChartRefresh("success")
		metrics.RecordChartRefresh("superseded")

		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ChartRefreshes.WithLabelValues("success")))
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ChartRefreshes.WithLabelValues("superseded")))
	})

	t.Run("Registered names", func(t *testing.T) {
		families, err := reg.Gather()
		require.NoError(t, err)

		names := make([]string, 0, len(families))
		for _, family := range families {
			names = append(names, family.GetName())
		}
		assert.ElementsMatch(t, []string{
			"weatherdash_gateway_requests_total",
			"weatherdash_gateway_request_duration_seconds",
			"weatherdash_fetch_retries_total",
			"weatherdash_chart_refreshes_total",
		}, names)
	})
}
