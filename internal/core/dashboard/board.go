package dashboard

import (
	"context"
	"sync"

	"weatherdash.app/internal/core/fetch"
	"weatherdash.app/internal/core/weather"
)

type (
	WeatherFetcher  = fetch.Fetcher[weather.CurrentWeather]
	ForecastFetcher = fetch.Fetcher[[]weather.ForecastDay]
)

// Board keeps one fetcher per visible card. Weather fetchers are keyed by city
// id and shared by every section that shows the city; forecast fetchers exist
// only for the cities given to the forecast section. A fetcher is never
// retargeted: when a card's city changes, Sync closes the old fetcher and
// starts a new one under the new id.
type Board struct {
	ctx            context.Context
	weatherConfig  fetch.Config[weather.CurrentWeather]
	forecastConfig fetch.Config[[]weather.ForecastDay]

	mu       sync.Mutex
	weather  map[int64]*WeatherFetcher
	forecast map[int64]*ForecastFetcher
}

// NewBoard creates an empty board; fetches run on contexts derived from ctx
func NewBoard(ctx context.Context, weatherConfig fetch.Config[weather.CurrentWeather], forecastConfig fetch.Config[[]weather.ForecastDay]) (*Board, error) {
	if err := weatherConfig.Validate(); err != nil {
		return nil, err
	}
	if err := forecastConfig.Validate(); err != nil {
		return nil, err
	}

	return &Board{
		ctx:            ctx,
		weatherConfig:  weatherConfig,
		forecastConfig: forecastConfig,
		weather:        make(map[int64]*WeatherFetcher),
		forecast:       make(map[int64]*ForecastFetcher),
	}, nil
}

// Sync starts fetchers for cities that became visible and closes the ones whose
// card disappeared. Cards that stay visible keep their state.
func (b *Board) Sync(weatherCities, forecastCities []weather.City) {
	b.mu.Lock()
	defer b.mu.Unlock()

	syncFetchers(b.ctx, b.weather, b.weatherConfig, weatherCities)
	syncFetchers(b.ctx, b.forecast, b.forecastConfig, forecastCities)
}

// Weather returns the current weather fetcher of a visible city
func (b *Board) Weather(cityID int64) (*WeatherFetcher, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	f, ok := b.weather[cityID]
	return f, ok
}

// Forecast returns the forecast fetcher of a city in the forecast section
func (b *Board) Forecast(cityID int64) (*ForecastFetcher, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	f, ok := b.forecast[cityID]
	return f, ok
}

// Close abandons every load in flight and empties the board
func (b *Board) Close() {
	b.Sync(nil, nil)
}

func syncFetchers[T any](ctx context.Context, fetchers map[int64]*fetch.Fetcher[T], cfg fetch.Config[T], cities []weather.City) {
	visible := make(map[int64]struct{}, len(cities))
	for _, city := range cities {
		visible[city.ID] = struct{}{}
		if _, ok := fetchers[city.ID]; ok {
			continue
		}
		// config was validated by NewBoard
		f, _ := fetch.New(ctx, cfg, city.ID)
		fetchers[city.ID] = f
	}

	for id, f := range fetchers {
		if _, ok := visible[id]; !ok {
			f.Close()
			delete(fetchers, id)
		}
	}
}
