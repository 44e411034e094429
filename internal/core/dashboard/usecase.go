// Package dashboard owns the dashboard session: the watched city list, the
// preferences record and the cards derived from them. It is the only place
// where session state is mutated.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"weatherdash.app/internal/core/fetch"
	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/validation"
)

// MaxForecastCards is how many cities, from the head of the list, get a forecast card
const MaxForecastCards = 4

// ChartRefresher republishes the multi-city forecast chart
type ChartRefresher interface {
	Trigger(ctx context.Context, cities []weather.City)
	Clear()
	Series() forecast.Series
}

// Snapshot is a read-only copy of the session state
type Snapshot struct {
	Loaded          bool
	Cities          []weather.City
	Preferences     *weather.Preferences
	TemperatureUnit string
	FavoriteCities  []weather.City
	ForecastCities  []weather.City
}

// IsFavorite reports whether the city is in the favorite set of the snapshot
func (s Snapshot) IsFavorite(cityID int64) bool {
	return s.Preferences.IsFavorite(cityID)
}

type UseCase struct {
	gateway  ports.WeatherGateway
	notifier ports.Notifier
	logger   ports.Logger
	chart    ChartRefresher
	board    *Board

	sessionCtx context.Context
	cancel     context.CancelFunc

	mu          sync.RWMutex
	loaded      bool
	cities      []weather.City
	preferences *weather.Preferences
}

type UseCaseDependencies struct {
	Gateway  ports.WeatherGateway
	Notifier ports.Notifier
	Logger   ports.Logger
	Config   ports.ConfigProvider
	Metrics  ports.FetchMetrics
	Chart    ChartRefresher
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Gateway == nil {
		return nil, errors.NewValidationError("gateway is required")
	}
	if deps.Notifier == nil {
		return nil, errors.NewValidationError("notifier is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if deps.Chart == nil {
		return nil, errors.NewValidationError("chart refresher is required")
	}

	sessionCtx, cancel := context.WithCancel(context.Background())

	board, err := NewBoard(sessionCtx,
		weatherFetcherConfig(deps.Gateway, deps.Logger),
		forecastFetcherConfig(deps.Gateway, deps.Logger, deps.Metrics, deps.Config.GetRetryConfig()))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("create card board: %w", err)
	}

	return &UseCase{
		gateway:    deps.Gateway,
		notifier:   deps.Notifier,
		logger:     deps.Logger,
		chart:      deps.Chart,
		board:      board,
		sessionCtx: sessionCtx,
		cancel:     cancel,
	}, nil
}

func weatherFetcherConfig(gateway ports.WeatherGateway, logger ports.Logger) fetch.Config[weather.CurrentWeather] {
	return fetch.Config[weather.CurrentWeather]{
		Resource: "weather",
		Load: func(ctx context.Context, cityID int64) (weather.CurrentWeather, error) {
			current, err := gateway.GetCurrentWeather(ctx, cityID)
			if err != nil {
				return weather.CurrentWeather{}, err
			}
			if current == nil {
				return weather.CurrentWeather{}, errors.NewExternalAPIError("empty weather response", nil)
			}
			return *current, nil
		},
		Policy:  fetch.NoRetry(),
		Message: fetch.WeatherMessage,
		Logger:  logger,
	}
}

func forecastFetcherConfig(gateway ports.WeatherGateway, logger ports.Logger, metrics ports.FetchMetrics, retry ports.RetryConfig) fetch.Config[[]weather.ForecastDay] {
	policy := fetch.TimeoutRetry(retry.ForecastMaxRetries, retry.InitialBackoff)
	policy.OnRetry = func(attempt int, delay time.Duration, err error) {
		metrics.RecordRetry("forecast")
		logger.Info("Retrying forecast fetch",
			ports.F("retry", attempt),
			ports.F("delay_ms", delay.Milliseconds()))
	}

	return fetch.Config[[]weather.ForecastDay]{
		Resource: "forecast",
		Load:     gateway.GetForecast,
		Policy:   policy,
		Message:  fetch.ForecastMessage,
		Logger:   logger,
	}
}

// Load fetches the city list and the preferences record in parallel. A
// preferences failure leaves the session without a preferences record.
func (uc *UseCase) Load(ctx context.Context) error {
	var (
		cities      []weather.City
		preferences []weather.Preferences
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cities, err = uc.gateway.ListCities(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		preferences, err = uc.gateway.GetPreferences(gctx)
		if err != nil {
			uc.logger.Warn("Failed to load preferences, continuing without them",
				ports.F("error", err.Error()))
			preferences = nil
		}
		return nil
	})

	err := g.Wait()

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.loaded = true

	if err != nil {
		uc.logger.Error("Failed to fetch initial data", ports.F("error", err.Error()))
		uc.notifier.Notify(titleError, msgLoadFailed, ports.NotificationDestructive)
		return fmt.Errorf("load dashboard: %w", err)
	}

	uc.cities = dedupe(cities)
	uc.preferences = activePreferences(preferences)
	uc.applyLocked(true)

	uc.logger.Info("Dashboard loaded",
		ports.F("cities", len(uc.cities)),
		ports.F("has_preferences", uc.preferences != nil))
	return nil
}

// AddCity validates and normalizes the input, then asks the remote API to
// create the city and appends it to the list
func (uc *UseCase) AddCity(ctx context.Context, params weather.NewCityParams) (*weather.City, error) {
	params.Normalize()
	if err := params.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid city: " + err.Error())
	}

	city, err := uc.gateway.AddCity(ctx, params)
	if err == nil && city == nil {
		err = errors.NewExternalAPIError("empty add city response", nil)
	}
	if err != nil {
		uc.logger.Error("Failed to add city",
			ports.F("name", params.Name),
			ports.F("country_code", params.CountryCode),
			ports.F("error", err.Error()))
		description := msgAddCityFailed
		if detail, ok := errors.DetailOf(err); ok {
			description = detail
		}
		uc.notifier.Notify(titleError, description, ports.NotificationDestructive)
		return nil, fmt.Errorf("add city %s: %w", params.Name, err)
	}

	uc.mu.Lock()
	if indexOf(uc.cities, city.ID) < 0 {
		uc.cities = append(uc.cities, *city)
	}
	uc.applyLocked(true)
	uc.mu.Unlock()

	uc.logger.Info("City added", ports.F("city_id", city.ID), ports.F("name", city.Name))
	uc.notifier.Notify(titleSuccess, cityAddedMessage(city.Name), ports.NotificationDefault)
	return city, nil
}

// RemoveCity deletes the city remotely, then drops it from the list. The list
// is left unchanged when the remote call fails.
func (uc *UseCase) RemoveCity(ctx context.Context, cityID int64) error {
	if err := uc.gateway.RemoveCity(ctx, cityID); err != nil {
		uc.logger.Error("Failed to remove city",
			ports.F("city_id", cityID),
			ports.F("error", err.Error()))
		uc.notifier.Notify(titleError, msgRemoveFailed, ports.NotificationDestructive)
		return fmt.Errorf("remove city %d: %w", cityID, err)
	}

	uc.mu.Lock()
	if i := indexOf(uc.cities, cityID); i >= 0 {
		uc.cities = append(uc.cities[:i:i], uc.cities[i+1:]...)
	}
	uc.applyLocked(true)
	uc.mu.Unlock()

	uc.logger.Info("City removed", ports.F("city_id", cityID))
	uc.notifier.Notify(titleSuccess, msgCityRemoved, ports.NotificationDefault)
	return nil
}

// ToggleFavorite flips the favorite status of a city, then re-fetches the
// preferences record once the mutation has completed
func (uc *UseCase) ToggleFavorite(ctx context.Context, cityID int64) error {
	wasFavorite := uc.IsFavorite(cityID)

	var err error
	if wasFavorite {
		err = uc.gateway.RemoveFavoriteCity(ctx, cityID)
	} else {
		err = uc.gateway.AddFavoriteCity(ctx, cityID)
	}
	if err != nil {
		return uc.favoritesFailed(cityID, err)
	}

	if wasFavorite {
		uc.notifier.Notify(titleFavoriteRemoved, msgFavoriteRemoved, ports.NotificationDefault)
	} else {
		uc.notifier.Notify(titleFavoriteAdded, msgFavoriteAdded, ports.NotificationDefault)
	}

	if err := uc.reloadPreferences(ctx); err != nil {
		return uc.favoritesFailed(cityID, err)
	}

	uc.logger.Info("Favorite toggled",
		ports.F("city_id", cityID),
		ports.F("favorite", !wasFavorite))
	return nil
}

func (uc *UseCase) favoritesFailed(cityID int64, err error) error {
	uc.logger.Error("Failed to toggle favorite",
		ports.F("city_id", cityID),
		ports.F("error", err.Error()))
	uc.notifier.Notify(titleError, msgFavoritesFailed, ports.NotificationDestructive)
	return fmt.Errorf("toggle favorite %d: %w", cityID, err)
}

// SetTemperatureUnit stores the preferred unit ("C" or "F") remotely and
// re-fetches the preferences record
func (uc *UseCase) SetTemperatureUnit(ctx context.Context, unit string) error {
	unit = strings.ToUpper(strings.TrimSpace(unit))
	if !validation.IsTemperatureUnit(unit) {
		return errors.NewValidationError("temperature unit must be C or F")
	}

	err := uc.gateway.UpdatePreferences(ctx, weather.PreferencesUpdate{TemperatureUnit: unit})
	if err == nil {
		err = uc.reloadPreferences(ctx)
	}
	if err != nil {
		uc.logger.Error("Failed to update temperature unit",
			ports.F("unit", unit),
			ports.F("error", err.Error()))
		uc.notifier.Notify(titleError, msgPreferenceFailed, ports.NotificationDestructive)
		return fmt.Errorf("set temperature unit: %w", err)
	}

	uc.notifier.Notify(titleUnitUpdated, unitUpdatedMessage(unit), ports.NotificationDefault)
	return nil
}

func (uc *UseCase) reloadPreferences(ctx context.Context) error {
	preferences, err := uc.gateway.GetPreferences(ctx)
	if err != nil {
		return fmt.Errorf("reload preferences: %w", err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.preferences = activePreferences(preferences)
	uc.applyLocked(false)
	return nil
}

// IsFavorite reports whether the city id is in the preferences favorite set
func (uc *UseCase) IsFavorite(cityID int64) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.preferences.IsFavorite(cityID)
}

// Snapshot returns a copy of the session state
func (uc *UseCase) Snapshot() Snapshot {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	preferences := uc.preferences.Clone()
	snapshot := Snapshot{
		Loaded:          uc.loaded,
		Cities:          append([]weather.City{}, uc.cities...),
		Preferences:     preferences,
		TemperatureUnit: preferences.Unit(),
		FavoriteCities:  []weather.City{},
		ForecastCities:  append([]weather.City{}, forecastCities(uc.cities)...),
	}
	if preferences != nil {
		snapshot.FavoriteCities = append(snapshot.FavoriteCities, preferences.FavoriteCities...)
	}
	return snapshot
}

// WeatherCard returns the state of a current weather card
func (uc *UseCase) WeatherCard(cityID int64) (fetch.State[weather.CurrentWeather], error) {
	f, ok := uc.board.Weather(cityID)
	if !ok {
		return fetch.State[weather.CurrentWeather]{}, errors.NewNotFoundError(fmt.Sprintf("no weather card for city %d", cityID))
	}
	return f.State(), nil
}

// RetryWeather re-runs the current weather fetch of a card
func (uc *UseCase) RetryWeather(cityID int64) error {
	f, ok := uc.board.Weather(cityID)
	if !ok {
		return errors.NewNotFoundError(fmt.Sprintf("no weather card for city %d", cityID))
	}
	f.Refetch()
	return nil
}

// ForecastCard returns the state of a forecast card
func (uc *UseCase) ForecastCard(cityID int64) (fetch.State[[]weather.ForecastDay], error) {
	f, ok := uc.board.Forecast(cityID)
	if !ok {
		return fetch.State[[]weather.ForecastDay]{}, errors.NewNotFoundError(fmt.Sprintf("no forecast card for city %d", cityID))
	}
	return f.State(), nil
}

// RetryForecast re-runs the forecast fetch of a card with a fresh retry budget
func (uc *UseCase) RetryForecast(cityID int64) error {
	f, ok := uc.board.Forecast(cityID)
	if !ok {
		return errors.NewNotFoundError(fmt.Sprintf("no forecast card for city %d", cityID))
	}
	f.Refetch()
	return nil
}

// Chart returns the published forecast series
func (uc *UseCase) Chart() forecast.Series {
	return uc.chart.Series()
}

// WaitCards blocks until every card load in flight has settled
func (uc *UseCase) WaitCards(ctx context.Context) error {
	snapshot := uc.Snapshot()
	for _, city := range weatherCities(snapshot.Cities, snapshot.Preferences) {
		if f, ok := uc.board.Weather(city.ID); ok {
			if err := f.Wait(ctx); err != nil {
				return err
			}
		}
	}
	for _, city := range snapshot.ForecastCities {
		if f, ok := uc.board.Forecast(city.ID); ok {
			if err := f.Wait(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close stops every fetch owned by the session
func (uc *UseCase) Close() {
	uc.cancel()
	uc.board.Close()
	uc.chart.Clear()
}

// applyLocked brings the cards, and the chart when membershipChanged, in line
// with the session state. Must be called with uc.mu held.
func (uc *UseCase) applyLocked(membershipChanged bool) {
	uc.board.Sync(weatherCities(uc.cities, uc.preferences), forecastCities(uc.cities))

	if !membershipChanged {
		return
	}
	if len(uc.cities) == 0 {
		uc.chart.Clear()
		return
	}
	uc.chart.Trigger(uc.sessionCtx, append([]weather.City(nil), uc.cities...))
}

// weatherCities lists every city that shows a weather card: watched cities
// followed by favorites that are not in the list
func weatherCities(cities []weather.City, preferences *weather.Preferences) []weather.City {
	result := append([]weather.City{}, cities...)
	if preferences == nil {
		return result
	}
	for _, fav := range preferences.FavoriteCities {
		if indexOf(result, fav.ID) < 0 {
			result = append(result, fav)
		}
	}
	return result
}

func forecastCities(cities []weather.City) []weather.City {
	if len(cities) > MaxForecastCards {
		return cities[:MaxForecastCards]
	}
	return cities
}

func activePreferences(records []weather.Preferences) *weather.Preferences {
	if len(records) == 0 {
		return nil
	}
	active := records[0]
	return active.Clone()
}

func indexOf(cities []weather.City, cityID int64) int {
	for i, city := range cities {
		if city.ID == cityID {
			return i
		}
	}
	return -1
}

func dedupe(cities []weather.City) []weather.City {
	result := make([]weather.City, 0, len(cities))
	for _, city := range cities {
		if indexOf(result, city.ID) < 0 {
			result = append(result, city)
		}
	}
	return result
}
