package forecast

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"weatherdash.app/internal/core/fetch"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const (
	RefreshSuccess    = "success"
	RefreshFailure    = "failure"
	RefreshSuperseded = "superseded"
)

// Aggregator fetches the forecast of every watched city in parallel and
// publishes the merged series. A pass is all-or-nothing: on any failure the
// previously published series stays. Only the most recently started pass may
// publish.
type Aggregator struct {
	gateway ports.WeatherGateway
	logger  ports.Logger
	metrics ports.FetchMetrics
	policy  fetch.RetryPolicy

	mu         sync.Mutex
	series     Series
	updatedAt  time.Time
	generation uint64
	cancel     context.CancelFunc
	done       chan struct{}
}

type AggregatorDependencies struct {
	Gateway ports.WeatherGateway
	Logger  ports.Logger
	Metrics ports.FetchMetrics
	Config  ports.ConfigProvider
}

func NewAggregator(deps AggregatorDependencies) (*Aggregator, error) {
	if deps.Gateway == nil {
		return nil, errors.NewValidationError("gateway is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}

	retryConfig := deps.Config.GetRetryConfig()
	policy := fetch.TimeoutRetry(retryConfig.ChartMaxRetries, retryConfig.InitialBackoff)
	policy.OnRetry = func(retry int, delay time.Duration, err error) {
		deps.Metrics.RecordRetry("chart")
		deps.Logger.Debug("Retrying chart forecast fetch",
			ports.F("retry", retry),
			ports.F("delay_ms", delay.Milliseconds()),
			ports.F("error", err.Error()))
	}

	done := make(chan struct{})
	close(done)

	return &Aggregator{
		gateway: deps.Gateway,
		logger:  deps.Logger,
		metrics: deps.Metrics,
		policy:  policy,
		series:  Merge(nil),
		done:    done,
	}, nil
}

// Refresh runs one aggregation pass for cities and waits for it
func (a *Aggregator) Refresh(ctx context.Context, cities []weather.City) error {
	a.mu.Lock()
	a.generation++
	generation := a.generation
	a.mu.Unlock()

	return a.run(ctx, generation, cities)
}

// Trigger starts a pass in the background, abandoning the pass a previous
// Trigger started. ctx must outlive the pass.
func (a *Aggregator) Trigger(ctx context.Context, cities []weather.City) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancel != nil {
		a.cancel()
	}
	a.generation++
	generation := a.generation

	passCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	a.cancel = cancel
	a.done = done

	snapshot := append([]weather.City(nil), cities...)
	go func() {
		defer close(done)
		defer cancel()
		_ = a.run(passCtx, generation, snapshot)
	}()
}

// Wait blocks until the most recently triggered pass settles
func (a *Aggregator) Wait(ctx context.Context) error {
	a.mu.Lock()
	done := a.done
	a.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Series returns a copy of the published series
func (a *Aggregator) Series() Series {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.series.Clone()
}

// UpdatedAt returns when the series was last published; zero if never
func (a *Aggregator) UpdatedAt() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.updatedAt
}

// Clear drops the published series and abandons any pass in flight
func (a *Aggregator) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.generation++
	a.series = Merge(nil)
	a.updatedAt = time.Time{}
}

func (a *Aggregator) run(ctx context.Context, generation uint64, cities []weather.City) error {
	forecasts, err := a.fetchAll(ctx, cities)

	a.mu.Lock()
	defer a.mu.Unlock()

	if generation != a.generation {
		a.logger.Debug("Discarding superseded chart refresh", ports.F("cities", len(cities)))
		a.metrics.RecordChartRefresh(RefreshSuperseded)
		return err
	}

	if err != nil {
		a.logger.Error("Error fetching forecast data",
			ports.F("cities", len(cities)),
			ports.F("error", err.Error()))
		a.metrics.RecordChartRefresh(RefreshFailure)
		return err
	}

	series := Merge(forecasts)
	a.series = series
	a.updatedAt = time.Now()
	a.metrics.RecordChartRefresh(RefreshSuccess)
	a.logger.Debug("Chart refreshed",
		ports.F("cities", len(cities)),
		ports.F("dates", len(series.Rows)))
	return nil
}

func (a *Aggregator) fetchAll(ctx context.Context, cities []weather.City) ([]CityForecast, error) {
	forecasts := make([]CityForecast, len(cities))

	g, gctx := errgroup.WithContext(ctx)
	for i, city := range cities {
		i, city := i, city
		g.Go(func() error {
			days, err := fetch.Do(gctx, a.policy, func(ctx context.Context) ([]weather.ForecastDay, error) {
				return a.gateway.GetForecast(ctx, city.ID)
			})
			if err != nil {
				return fmt.Errorf("fetch forecast for city %d: %w", city.ID, err)
			}
			forecasts[i] = CityForecast{City: city, Days: days}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return forecasts, nil
}
