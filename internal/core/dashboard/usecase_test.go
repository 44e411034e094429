package dashboard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/core/fetch"
	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

var (
	london = weather.City{ID: 1, Name: "London", CountryCode: "GB"}
	paris  = weather.City{ID: 2, Name: "Paris", CountryCode: "FR"}
	tokyo  = weather.City{ID: 3, Name: "Tokyo", CountryCode: "JP"}
	oslo   = weather.City{ID: 4, Name: "Oslo", CountryCode: "NO"}
	lima   = weather.City{ID: 5, Name: "Lima", CountryCode: "PE"}
)

type fakeChart struct {
	mu       sync.Mutex
	triggers [][]weather.City
	clears   int
}

func (c *fakeChart) Trigger(ctx context.Context, cities []weather.City) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.triggers = append(c.triggers, cities)
}

func (c *fakeChart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clears++
}

func (c *fakeChart) Series() forecast.Series {
	return forecast.Merge(nil)
}

func (c *fakeChart) Triggers() [][]weather.City {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]weather.City(nil), c.triggers...)
}

func (c *fakeChart) Clears() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clears
}

type fixture struct {
	gateway  *mocks.WeatherGateway
	notifier *mocks.Notifier
	chart    *fakeChart
	uc       *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gateway := mocks.NewWeatherGateway(t)
	notifier := mocks.NewNotifier(t)
	metrics := mocks.NewFetchMetrics(t)
	metrics.EXPECT().RecordRetry(mock.Anything).Maybe()
	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetRetryConfig().Return(ports.RetryConfig{
		ForecastMaxRetries: 2,
		InitialBackoff:     time.Millisecond,
	})
	chart := &fakeChart{}

	uc, err := NewUseCase(UseCaseDependencies{
		Gateway:  gateway,
		Notifier: notifier,
		Logger:   mocks.NewPermissiveLogger(t),
		Config:   config,
		Metrics:  metrics,
		Chart:    chart,
	})
	require.NoError(t, err)
	t.Cleanup(uc.Close)

	return &fixture{gateway: gateway, notifier: notifier, chart: chart, uc: uc}
}

// allowCardFetches lets card fetchers load successfully; register specific
// expectations before calling it
func (f *fixture) allowCardFetches() {
	f.gateway.EXPECT().GetCurrentWeather(mock.Anything, mock.Anything).
		Return(&weather.CurrentWeather{Temperature: 20.4, WeatherIcon: "01d"}, nil).Maybe()
	f.gateway.EXPECT().GetForecast(mock.Anything, mock.Anything).
		Return([]weather.ForecastDay{{ForecastDate: "2024-01-01", TemperatureMax: 12}}, nil).Maybe()
}

func (f *fixture) load(t *testing.T, cities []weather.City, preferences []weather.Preferences) {
	t.Helper()
	f.gateway.EXPECT().ListCities(mock.Anything).Return(cities, nil).Once()
	f.gateway.EXPECT().GetPreferences(mock.Anything).Return(preferences, nil).Once()
	require.NoError(t, f.uc.Load(context.Background()))
}

func (f *fixture) waitCards(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, f.uc.WaitCards(ctx))
}

func TestUseCase_Load_Success(t *testing.T) {
	f := newFixture(t)
	f.allowCardFetches()

	f.load(t, []weather.City{london, paris}, []weather.Preferences{
		{ID: 1, TemperatureUnit: "F", FavoriteCities: []weather.City{paris}},
	})

	snapshot := f.uc.Snapshot()
	assert.True(t, snapshot.Loaded)
	assert.Equal(t, []weather.City{london, paris}, snapshot.Cities)
	assert.Equal(t, "F", snapshot.TemperatureUnit)
	assert.Equal(t, []weather.City{paris}, snapshot.FavoriteCities)
	assert.True(t, snapshot.IsFavorite(2))
	assert.False(t, f.uc.IsFavorite(1))
	assert.Equal(t, [][]weather.City{{london, paris}}, f.chart.Triggers())

	f.waitCards(t)
	card, err := f.uc.WeatherCard(1)
	require.NoError(t, err)
	require.NotNil(t, card.Data)
	assert.Equal(t, 20.4, card.Data.Temperature)

	forecastCard, err := f.uc.ForecastCard(2)
	require.NoError(t, err)
	require.NotNil(t, forecastCard.Data)
	assert.Len(t, *forecastCard.Data, 1)
}

func TestUseCase_Load_PreferencesFailureTolerated(t *testing.T) {
	f := newFixture(t)
	f.allowCardFetches()
	f.gateway.EXPECT().ListCities(mock.Anything).Return([]weather.City{london}, nil).Once()
	f.gateway.EXPECT().GetPreferences(mock.Anything).
		Return(nil, errors.NewServerError("remote API returned status 500", nil)).Once()

	require.NoError(t, f.uc.Load(context.Background()))

	snapshot := f.uc.Snapshot()
	assert.Equal(t, []weather.City{london}, snapshot.Cities)
	assert.Nil(t, snapshot.Preferences)
	assert.Equal(t, "C", snapshot.TemperatureUnit)
	assert.Empty(t, snapshot.FavoriteCities)
}

func TestUseCase_Load_CitiesFailureNotifies(t *testing.T) {
	f := newFixture(t)
	f.gateway.EXPECT().ListCities(mock.Anything).
		Return(nil, errors.NewTimeoutError("request timed out", context.DeadlineExceeded)).Once()
	f.gateway.EXPECT().GetPreferences(mock.Anything).Return([]weather.Preferences{}, nil).Maybe()
	f.notifier.EXPECT().Notify("Error", "Failed to load weather data. Please check your connection.", ports.NotificationDestructive).Once()

	err := f.uc.Load(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsTimeoutError(err))
	snapshot := f.uc.Snapshot()
	assert.True(t, snapshot.Loaded)
	assert.Empty(t, snapshot.Cities)
	assert.Empty(t, f.chart.Triggers())
}

func TestUseCase_Load_EmptyListClearsChart(t *testing.T) {
	f := newFixture(t)

	f.load(t, []weather.City{}, []weather.Preferences{})

	assert.Empty(t, f.chart.Triggers())
	assert.Equal(t, 1, f.chart.Clears())
	assert.Empty(t, f.uc.Snapshot().ForecastCities)
}

func TestUseCase_ForecastCardsForFirstFourCities(t *testing.T) {
	f := newFixture(t)
	f.allowCardFetches()

	f.load(t, []weather.City{london, paris, tokyo, oslo, lima}, nil)
	f.waitCards(t)

	assert.Equal(t, []weather.City{london, paris, tokyo, oslo}, f.uc.Snapshot().ForecastCities)
	_, err := f.uc.ForecastCard(5)
	assert.True(t, errors.IsNotFoundError(err))
	_, err = f.uc.WeatherCard(5)
	assert.NoError(t, err)
}

func TestUseCase_AddCity_Success(t *testing.T) {
	f := newFixture(t)
	f.allowCardFetches()
	f.load(t, []weather.City{london}, nil)

	f.gateway.EXPECT().AddCity(mock.Anything, weather.NewCityParams{Name: "Paris", CountryCode: "FR"}).
		Return(&paris, nil).Once()
	f.notifier.EXPECT().Notify("Success", "Paris has been added to your weather dashboard.", ports.NotificationDefault).Once()

	city, err := f.uc.AddCity(context.Background(), weather.NewCityParams{Name: "  Paris ", CountryCode: "fr"})

	require.NoError(t, err)
	assert.Equal(t, &paris, city)
	assert.Equal(t, []weather.City{london, paris}, f.uc.Snapshot().Cities)
	assert.Equal(t, [][]weather.City{{london}, {london, paris}}, f.chart.Triggers())

	f.waitCards(t)
	_, err = f.uc.WeatherCard(2)
	assert.NoError(t, err)
}

func TestUseCase_AddCity_ValidationSkipsGateway(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		params weather.NewCityParams
	}{
		{"blank name", weather.NewCityParams{Name: "   ", CountryCode: "GB"}},
		{"long country code", weather.NewCityParams{Name: "London", CountryCode: "GBR"}},
		{"short country code", weather.NewCityParams{Name: "London", CountryCode: "G"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city, err := f.uc.AddCity(context.Background(), tt.params)
			assert.Nil(t, city)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestUseCase_AddCity_FailureNotifies(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		description string
	}{
		{
			name:        "backend detail",
			err:         errors.NewExternalAPIError("remote API returned status 400", nil).WithDetail("City already exists"),
			description: "City already exists",
		},
		{
			name:        "no detail",
			err:         errors.NewServerError("remote API returned status 502", nil),
			description: "Failed to add city. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.gateway.EXPECT().AddCity(mock.Anything, weather.NewCityParams{Name: "Atlantis", CountryCode: "XX"}).
				Return(nil, tt.err).Once()
			f.notifier.EXPECT().Notify("Error", tt.description, ports.NotificationDestructive).Once()

			city, err := f.uc.AddCity(context.Background(), weather.NewCityParams{Name: "Atlantis", CountryCode: "xx"})

			assert.Nil(t, city)
			require.Error(t, err)
			assert.Empty(t, f.uc.Snapshot().Cities)
		})
	}
}

func TestUseCase_RemoveCity(t *testing.T) {
	f := newFixture(t)
	f.allowCardFetches()
	f.load(t, []weather.City{london, paris}, nil)

	f.gateway.EXPECT().RemoveCity(mock.Anything, int64(1)).Return(nil).Once()
	f.notifier.EXPECT().Notify("Success", "City has been removed from your dashboard.", ports.NotificationDefault).Once()

	require.NoError(t, f.uc.RemoveCity(context.Background(), 1))

	assert.Equal(t, []weather.City{paris}, f.uc.Snapshot().Cities)
	assert.Equal(t, [][]weather.City{{london, paris}, {paris}}, f.chart.Triggers())
	_, err := f.uc.WeatherCard(1)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUseCase_RemoveCity_FailureKeepsList(t *testing.T) {
	f := newFixture(t)
	f.allowCardFetches()
	f.load(t, []weather.City{london, paris}, nil)

	f.gateway.EXPECT().RemoveCity(mock.Anything, int64(2)).
		Return(errors.NewServerError("remote API returned status 500", nil)).Once()
	f.notifier.EXPECT().Notify("Error", "Failed to remove city. Please try again.", ports.NotificationDestructive).Once()

	err := f.uc.RemoveCity(context.Background(), 2)

	require.Error(t, err)
	assert.Equal(t, []weather.City{london, paris}, f.uc.Snapshot().Cities)
	assert.Len(t, f.chart.Triggers(), 1)
}

func TestUseCase_RemoveLastCityClearsChart(t *testing.T) {
	f := newFixture(t)
	f.allowCardFetches()
	f.load(t, []weather.City{london}, nil)

	f.gateway.EXPECT().RemoveCity(mock.Anything, int64(1)).Return(nil).Once()
	f.notifier.EXPECT().Notify("Success", mock.Anything, ports.NotificationDefault).Once()

	require.NoError(t, f.uc.RemoveCity(context.Background(), 1))

	assert.Empty(t, f.uc.Snapshot().Cities)
	assert.Equal(t, 1, f.chart.Clears())
}

func TestUseCase_ToggleFavoriteTwice(t *testing.T) {
	f := newFixture(t)
	f.allowCardFetches()
	f.load(t, []weather.City{london, paris}, []weather.Preferences{{ID: 1, TemperatureUnit: "C"}})

	addCall := f.gateway.EXPECT().AddFavoriteCity(mock.Anything, int64(1)).Return(nil).Once()
	reloadAfterAdd := f.gateway.EXPECT().GetPreferences(mock.Anything).
		Return([]weather.Preferences{{ID: 1, TemperatureUnit: "C", FavoriteCities: []weather.City{london}}}, nil).Once()
	removeCall := f.gateway.EXPECT().RemoveFavoriteCity(mock.Anything, int64(1)).Return(nil).Once()
	reloadAfterRemove := f.gateway.EXPECT().GetPreferences(mock.Anything).
		Return([]weather.Preferences{{ID: 1, TemperatureUnit: "C"}}, nil).Once()
	mock.InOrder(addCall, reloadAfterAdd, removeCall, reloadAfterRemove)

	f.notifier.EXPECT().Notify("Added to favorites", "City has been added to your favorites.", ports.NotificationDefault).Once()
	f.notifier.EXPECT().Notify("Removed from favorites", "City has been removed from your favorites.", ports.NotificationDefault).Once()

	require.NoError(t, f.uc.ToggleFavorite(context.Background(), 1))
	assert.True(t, f.uc.IsFavorite(1))
	assert.Equal(t, []weather.City{london}, f.uc.Snapshot().FavoriteCities)

	require.NoError(t, f.uc.ToggleFavorite(context.Background(), 1))
	assert.False(t, f.uc.IsFavorite(1))
	assert.Empty(t, f.uc.Snapshot().FavoriteCities)

	// favorites never change the chart membership
	assert.Len(t, f.chart.Triggers(), 1)
}

func TestUseCase_ToggleFavorite_MutationFailure(t *testing.T) {
	f := newFixture(t)
	f.allowCardFetches()
	f.load(t, []weather.City{london}, nil)

	f.gateway.EXPECT().AddFavoriteCity(mock.Anything, int64(1)).
		Return(errors.NewExternalAPIError("connection refused", nil)).Once()
	f.notifier.EXPECT().Notify("Error", "Failed to update favorites. Please try again.", ports.NotificationDestructive).Once()

	err := f.uc.ToggleFavorite(context.Background(), 1)

	require.Error(t, err)
	assert.False(t, f.uc.IsFavorite(1))
}

func TestUseCase_ToggleFavorite_ReloadFailure(t *testing.T) {
	f := newFixture(t)
	f.allowCardFetches()
	f.load(t, []weather.City{london}, nil)

	f.gateway.EXPECT().AddFavoriteCity(mock.Anything, int64(1)).Return(nil).Once()
	f.gateway.EXPECT().GetPreferences(mock.Anything).
		Return(nil, errors.NewTimeoutError("request timed out", context.DeadlineExceeded)).Once()
	f.notifier.EXPECT().Notify("Added to favorites", mock.Anything, ports.NotificationDefault).Once()
	f.notifier.EXPECT().Notify("Error", "Failed to update favorites. Please try again.", ports.NotificationDestructive).Once()

	err := f.uc.ToggleFavorite(context.Background(), 1)

	assert.True(t, errors.IsTimeoutError(err))
}

func TestUseCase_RemoveFavoriteCityIsTolerated(t *testing.T) {
	f := newFixture(t)
	f.allowCardFetches()
	f.load(t, []weather.City{london, paris}, []weather.Preferences{
		{ID: 1, TemperatureUnit: "C", FavoriteCities: []weather.City{london}},
	})

	f.gateway.EXPECT().RemoveCity(mock.Anything, int64(1)).Return(nil).Once()
	f.notifier.EXPECT().Notify("Success", "City has been removed from your dashboard.", ports.NotificationDefault).Once()

	require.NoError(t, f.uc.RemoveCity(context.Background(), 1))

	snapshot := f.uc.Snapshot()
	assert.Equal(t, []weather.City{paris}, snapshot.Cities)
	assert.Equal(t, []weather.City{london}, snapshot.FavoriteCities)
	assert.True(t, f.uc.IsFavorite(1))

	// the favorite section still shows the removed city
	f.waitCards(t)
	_, err := f.uc.WeatherCard(1)
	assert.NoError(t, err)
	_, err = f.uc.ForecastCard(1)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUseCase_SetTemperatureUnit(t *testing.T) {
	f := newFixture(t)
	f.load(t, []weather.City{}, []weather.Preferences{{ID: 1, TemperatureUnit: "C"}})

	f.gateway.EXPECT().UpdatePreferences(mock.Anything, weather.PreferencesUpdate{TemperatureUnit: "F"}).Return(nil).Once()
	f.gateway.EXPECT().GetPreferences(mock.Anything).
		Return([]weather.Preferences{{ID: 1, TemperatureUnit: "F"}}, nil).Once()
	f.notifier.EXPECT().Notify("Preferences updated", "Temperatures are now shown in °F.", ports.NotificationDefault).Once()

	require.NoError(t, f.uc.SetTemperatureUnit(context.Background(), " f "))
	assert.Equal(t, "F", f.uc.Snapshot().TemperatureUnit)

	err := f.uc.SetTemperatureUnit(context.Background(), "K")
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_SetTemperatureUnit_Failure(t *testing.T) {
	f := newFixture(t)

	f.gateway.EXPECT().UpdatePreferences(mock.Anything, weather.PreferencesUpdate{TemperatureUnit: "C"}).
		Return(errors.NewServerError("remote API returned status 500", nil)).Once()
	f.notifier.EXPECT().Notify("Error", "Failed to update preferences. Please try again.", ports.NotificationDestructive).Once()

	err := f.uc.SetTemperatureUnit(context.Background(), "C")

	assert.True(t, errors.IsServerError(err))
}

func TestUseCase_RetryWeatherCard(t *testing.T) {
	f := newFixture(t)
	f.gateway.EXPECT().GetCurrentWeather(mock.Anything, int64(1)).
		Return(nil, errors.NewTimeoutError("request timed out", context.DeadlineExceeded)).Once()
	f.gateway.EXPECT().GetCurrentWeather(mock.Anything, int64(1)).
		Return(&weather.CurrentWeather{Temperature: 15}, nil).Once()
	f.gateway.EXPECT().GetForecast(mock.Anything, int64(1)).Return([]weather.ForecastDay{}, nil).Once()

	f.load(t, []weather.City{london}, nil)
	f.waitCards(t)

	card, err := f.uc.WeatherCard(1)
	require.NoError(t, err)
	assert.Equal(t, fetch.WeatherFailedMessage, card.Error)
	assert.Nil(t, card.Data)

	require.NoError(t, f.uc.RetryWeather(1))
	f.waitCards(t)

	card, err = f.uc.WeatherCard(1)
	require.NoError(t, err)
	assert.Empty(t, card.Error)
	require.NotNil(t, card.Data)
	assert.Equal(t, 15.0, card.Data.Temperature)
}

func TestUseCase_RetryForecastCard(t *testing.T) {
	f := newFixture(t)
	notFound := errors.NewNotFoundError("remote API returned status 404")
	f.gateway.EXPECT().GetForecast(mock.Anything, int64(1)).Return(nil, notFound).Once()
	f.gateway.EXPECT().GetForecast(mock.Anything, int64(1)).
		Return([]weather.ForecastDay{{ForecastDate: "2024-01-01"}}, nil).Once()
	f.allowCardFetches()

	f.load(t, []weather.City{london}, nil)
	f.waitCards(t)

	card, err := f.uc.ForecastCard(1)
	require.NoError(t, err)
	assert.Equal(t, fetch.ForecastNotFoundMessage, card.Error)

	require.NoError(t, f.uc.RetryForecast(1))
	f.waitCards(t)

	card, err = f.uc.ForecastCard(1)
	require.NoError(t, err)
	require.NotNil(t, card.Data)
	assert.Len(t, *card.Data, 1)

	assert.True(t, errors.IsNotFoundError(f.uc.RetryForecast(99)))
	assert.True(t, errors.IsNotFoundError(f.uc.RetryWeather(99)))
}

func TestNewUseCase_Validation(t *testing.T) {
	gateway := mocks.NewWeatherGateway(t)
	notifier := mocks.NewNotifier(t)
	logger := mocks.NewLogger(t)
	config := mocks.NewConfigProvider(t)
	metrics := mocks.NewFetchMetrics(t)
	chart := &fakeChart{}

	tests := []struct {
		name string
		deps UseCaseDependencies
	}{
		{"missing gateway", UseCaseDependencies{Notifier: notifier, Logger: logger, Config: config, Metrics: metrics, Chart: chart}},
		{"missing notifier", UseCaseDependencies{Gateway: gateway, Logger: logger, Config: config, Metrics: metrics, Chart: chart}},
		{"missing logger", UseCaseDependencies{Gateway: gateway, Notifier: notifier, Config: config, Metrics: metrics, Chart: chart}},
		{"missing config", UseCaseDependencies{Gateway: gateway, Notifier: notifier, Logger: logger, Metrics: metrics, Chart: chart}},
		{"missing metrics", UseCaseDependencies{Gateway: gateway, Notifier: notifier, Logger: logger, Config: config, Chart: chart}},
		{"missing chart", UseCaseDependencies{Gateway: gateway, Notifier: notifier, Logger: logger, Config: config, Metrics: metrics}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, err := NewUseCase(tt.deps)
			assert.Nil(t, uc)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
