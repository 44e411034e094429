package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/fetch"
	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
	"weatherdash.app/metrics"
	"weatherdash.app/pkg/errors"
)

var (
	london = weather.City{ID: 1, Name: "London", CountryCode: "GB"}
	paris  = weather.City{ID: 2, Name: "Paris", CountryCode: "FR"}
)

type healthFunc func(ctx context.Context) map[string]ports.HealthStatus

func (f healthFunc) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	return f(ctx)
}

func healthy(ctx context.Context) map[string]ports.HealthStatus {
	return map[string]ports.HealthStatus{
		"remoteAPI": {Component: "remoteAPI", Status: "healthy"},
	}
}

type apiFixture struct {
	router        *gin.Engine
	gateway       *mocks.WeatherGateway
	notifications *infrastructure.MemoryNotificationStore
	aggregator    *forecast.Aggregator
	dashboard     *dashboard.UseCase
	registry      *prometheus.Registry
	metrics       *metrics.DashboardMetrics
}

func newAPIFixture(t *testing.T, health ports.SystemHealthChecker) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if health == nil {
		health = healthFunc(healthy)
	}

	gateway := mocks.NewWeatherGateway(t)
	logger := mocks.NewPermissiveLogger(t)
	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetRetryConfig().Return(ports.RetryConfig{
		ForecastMaxRetries: 0,
		InitialBackoff:     time.Millisecond,
	})
	registry := prometheus.NewRegistry()
	dashboardMetrics := metrics.NewDashboardMetrics(registry)
	notifications := infrastructure.NewMemoryNotificationStore(0)

	aggregator, err := forecast.NewAggregator(forecast.AggregatorDependencies{
		Gateway: gateway,
		Logger:  logger,
		Metrics: dashboardMetrics,
		Config:  config,
	})
	require.NoError(t, err)

	uc, err := dashboard.NewUseCase(dashboard.UseCaseDependencies{
		Gateway:  gateway,
		Notifier: notifications,
		Logger:   logger,
		Config:   config,
		Metrics:  dashboardMetrics,
		Chart:    aggregator,
	})
	require.NoError(t, err)
	t.Cleanup(uc.Close)

	server, err := NewHTTPServerAdapter(ServerOptions{
		Dashboard:     uc,
		Notifications: notifications,
		Health:        health,
		Logger:        logger,
		Gatherer:      registry,
	})
	require.NoError(t, err)

	return &apiFixture{
		router:        server.GetRouter(),
		gateway:       gateway,
		notifications: notifications,
		aggregator:    aggregator,
		dashboard:     uc,
		registry:      registry,
		metrics:       dashboardMetrics,
	}
}

func (f *apiFixture) allowCardFetches() {
	uv := 7.2
	f.gateway.EXPECT().GetCurrentWeather(mock.Anything, mock.Anything).
		Return(&weather.CurrentWeather{
			Temperature:        20.5,
			FeelsLike:          -0.5,
			Humidity:           55,
			Visibility:         10000,
			UVIndex:            &uv,
			WeatherMain:        "Clear",
			WeatherDescription: "clear sky",
			WeatherIcon:        "01d",
		}, nil).Maybe()
	f.gateway.EXPECT().GetForecast(mock.Anything, mock.Anything).
		Return([]weather.ForecastDay{{
			ForecastDate:   "2024-01-01",
			TemperatureMax: 12.4,
			TemperatureMin: 3.5,
			WeatherMain:    "Rain",
			WeatherIcon:    "10d",
		}}, nil).Maybe()
}

func (f *apiFixture) load(t *testing.T, cities []weather.City, preferences []weather.Preferences) {
	t.Helper()
	f.gateway.EXPECT().ListCities(mock.Anything).Return(cities, nil).Once()
	f.gateway.EXPECT().GetPreferences(mock.Anything).Return(preferences, nil).Once()
	require.NoError(t, f.dashboard.Load(context.Background()))
}

func (f *apiFixture) settle(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, f.dashboard.WaitCards(ctx))
	require.NoError(t, f.aggregator.Wait(ctx))
}

func (f *apiFixture) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHandlers_GetDashboard(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.allowCardFetches()
	f.load(t, []weather.City{london, paris}, []weather.Preferences{
		{ID: 1, TemperatureUnit: "F", FavoriteCities: []weather.City{paris}},
	})

	w := f.do(http.MethodGet, "/api/dashboard", nil)

	require.Equal(t, http.StatusOK, w.Code)
	response := decode[DashboardResponse](t, w)
	assert.True(t, response.Loaded)
	assert.Equal(t, "F", response.TemperatureUnit)
	assert.Equal(t, []CityView{
		{ID: 1, Name: "London", CountryCode: "GB", Label: "London, GB"},
		{ID: 2, Name: "Paris", CountryCode: "FR", Label: "Paris, FR", IsFavorite: true},
	}, response.Cities)
	assert.Equal(t, []CityView{
		{ID: 2, Name: "Paris", CountryCode: "FR", Label: "Paris, FR", IsFavorite: true},
	}, response.FavoriteCities)
	assert.Equal(t, []int64{1, 2}, response.ForecastCityIDs)
}

func TestHandlers_GetDashboard_BeforeLoad(t *testing.T) {
	f := newAPIFixture(t, nil)

	w := f.do(http.MethodGet, "/api/dashboard", nil)

	require.Equal(t, http.StatusOK, w.Code)
	response := decode[DashboardResponse](t, w)
	assert.False(t, response.Loaded)
	assert.Equal(t, weather.DefaultTemperatureUnit, response.TemperatureUnit)
	assert.Empty(t, response.Cities)
	assert.NotNil(t, response.FavoriteCities)
}

func TestHandlers_AddCity_Success(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.allowCardFetches()
	f.load(t, []weather.City{}, nil)

	kyiv := weather.City{ID: 7, Name: "Kyiv", CountryCode: "UA"}
	f.gateway.EXPECT().AddCity(mock.Anything, weather.NewCityParams{Name: "Kyiv", CountryCode: "UA"}).
		Return(&kyiv, nil).Once()

	w := f.do(http.MethodPost, "/api/cities", AddCityRequest{Name: " Kyiv ", CountryCode: "ua"})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, kyiv, decode[weather.City](t, w))

	notifications := decode[NotificationsResponse](t, f.do(http.MethodGet, "/api/notifications", nil)).Notifications
	require.Len(t, notifications, 1)
	assert.Equal(t, "Success", notifications[0].Title)
	assert.Equal(t, "Kyiv has been added to your weather dashboard.", notifications[0].Description)
	assert.Equal(t, ports.NotificationDefault, notifications[0].Variant)

	assert.Empty(t, decode[NotificationsResponse](t, f.do(http.MethodGet, "/api/notifications", nil)).Notifications)
	f.settle(t)
}

func TestHandlers_AddCity_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    interface{}
		message string
	}{
		{"missing name", map[string]string{"country_code": "GB"}, "Name is required"},
		{"bad country code", AddCityRequest{Name: "London", CountryCode: "GBR"}, "country code must be exactly 2 letters"},
		{"blank name", AddCityRequest{Name: "   ", CountryCode: "GB"}, "invalid city: city name cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t, nil)

			w := f.do(http.MethodPost, "/api/cities", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.message, decode[ErrorResponse](t, w).Error)
			assert.Empty(t, f.notifications.Drain())
		})
	}
}

func TestHandlers_AddCity_RemoteFailure(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.gateway.EXPECT().AddCity(mock.Anything, mock.Anything).
		Return(nil, errors.NewExternalAPIError("remote API returned status 400", nil).WithDetail("City already exists")).Once()

	w := f.do(http.MethodPost, "/api/cities", AddCityRequest{Name: "London", CountryCode: "GB"})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	response := decode[ErrorResponse](t, w)
	assert.Equal(t, "Remote API unavailable", response.Error)
	assert.Equal(t, "City already exists", response.Detail)

	notifications := f.notifications.Drain()
	require.Len(t, notifications, 1)
	assert.Equal(t, "City already exists", notifications[0].Description)
	assert.Equal(t, ports.NotificationDestructive, notifications[0].Variant)
}

func TestHandlers_RemoveCity(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.allowCardFetches()
	f.load(t, []weather.City{london, paris}, nil)
	f.gateway.EXPECT().RemoveCity(mock.Anything, int64(1)).Return(nil).Once()

	w := f.do(http.MethodDelete, "/api/cities/1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "City removed", decode[SuccessResponse](t, w).Message)
	assert.Equal(t, []weather.City{paris}, f.dashboard.Snapshot().Cities)
	f.settle(t)
}

func TestHandlers_InvalidCityID(t *testing.T) {
	f := newAPIFixture(t, nil)

	for _, path := range []string{"/api/cities/abc", "/api/cities/0"} {
		w := f.do(http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "city id must be a positive integer", decode[ErrorResponse](t, w).Error)
	}
}

func TestHandlers_ToggleFavorite(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.allowCardFetches()
	f.load(t, []weather.City{london}, []weather.Preferences{{ID: 1, TemperatureUnit: "C"}})

	f.gateway.EXPECT().AddFavoriteCity(mock.Anything, int64(1)).Return(nil).Once()
	f.gateway.EXPECT().GetPreferences(mock.Anything).Return([]weather.Preferences{
		{ID: 1, TemperatureUnit: "C", FavoriteCities: []weather.City{london}},
	}, nil).Once()

	w := f.do(http.MethodPost, "/api/cities/1/favorite", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, FavoriteResponse{CityID: 1, IsFavorite: true}, decode[FavoriteResponse](t, w))
	f.settle(t)
}

func TestHandlers_SetTemperatureUnit(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.gateway.EXPECT().UpdatePreferences(mock.Anything, weather.PreferencesUpdate{TemperatureUnit: "F"}).Return(nil).Once()
	f.gateway.EXPECT().GetPreferences(mock.Anything).Return([]weather.Preferences{{ID: 1, TemperatureUnit: "F"}}, nil).Once()

	w := f.do(http.MethodPut, "/api/preferences/unit", SetUnitRequest{Unit: "f"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "F", decode[UnitResponse](t, w).TemperatureUnit)
}

func TestHandlers_SetTemperatureUnit_Invalid(t *testing.T) {
	f := newAPIFixture(t, nil)

	w := f.do(http.MethodPut, "/api/preferences/unit", SetUnitRequest{Unit: "K"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "temperature unit must be C or F", decode[ErrorResponse](t, w).Error)

	w = f.do(http.MethodPut, "/api/preferences/unit", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Unit is required", decode[ErrorResponse](t, w).Error)
}

func TestHandlers_WeatherCard(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.allowCardFetches()
	f.load(t, []weather.City{london}, nil)
	f.settle(t)

	w := f.do(http.MethodGet, "/api/cities/1/weather", nil)

	require.Equal(t, http.StatusOK, w.Code)
	card := decode[WeatherCardResponse](t, w)
	assert.Equal(t, int64(1), card.CityID)
	assert.False(t, card.Loading)
	assert.Empty(t, card.Error)
	require.NotNil(t, card.Weather)
	assert.Equal(t, 21, card.Weather.Temperature)
	assert.Equal(t, -1, card.Weather.FeelsLike)
	assert.Equal(t, "10.0", card.Weather.VisibilityKM)
	assert.Equal(t, "high", card.Weather.UVLevel)
	assert.Equal(t, "https://openweathermap.org/img/wn/01d@2x.png", card.Weather.IconURL)
}

func TestHandlers_WeatherCard_Failure(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.gateway.EXPECT().GetCurrentWeather(mock.Anything, int64(1)).
		Return(nil, errors.NewNotFoundError("remote API returned status 404")).Once()
	f.gateway.EXPECT().GetForecast(mock.Anything, mock.Anything).Return([]weather.ForecastDay{}, nil).Maybe()
	f.load(t, []weather.City{london}, nil)
	f.settle(t)

	card := decode[WeatherCardResponse](t, f.do(http.MethodGet, "/api/cities/1/weather", nil))
	assert.Nil(t, card.Weather)
	assert.Equal(t, fetch.WeatherFailedMessage, card.Error)

	f.gateway.EXPECT().GetCurrentWeather(mock.Anything, int64(1)).
		Return(&weather.CurrentWeather{Temperature: 5}, nil).Once()

	w := f.do(http.MethodPost, "/api/cities/1/weather/retry", nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	f.settle(t)

	card = decode[WeatherCardResponse](t, f.do(http.MethodGet, "/api/cities/1/weather", nil))
	require.NotNil(t, card.Weather)
	assert.Equal(t, 5, card.Weather.Temperature)
	assert.Empty(t, card.Error)
}

func TestHandlers_UnknownCard(t *testing.T) {
	f := newAPIFixture(t, nil)

	for _, path := range []string{"/api/cities/42/weather", "/api/cities/42/forecast"} {
		w := f.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	}
	w := f.do(http.MethodPost, "/api/cities/42/forecast/retry", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlers_ForecastCard(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.allowCardFetches()
	f.load(t, []weather.City{london}, nil)
	f.settle(t)

	w := f.do(http.MethodGet, "/api/cities/1/forecast", nil)

	require.Equal(t, http.StatusOK, w.Code)
	card := decode[ForecastCardResponse](t, w)
	assert.Equal(t, []ForecastDayView{{
		Date:    "2024-01-01",
		Label:   "Mon, Jan 1",
		Max:     12,
		Min:     4,
		Main:    "Rain",
		IconURL: "https://openweathermap.org/img/wn/10d.png",
	}}, card.Days)

	w = f.do(http.MethodPost, "/api/cities/1/forecast/retry", nil)
	assert.Equal(t, http.StatusAccepted, w.Code)
	f.settle(t)
}

func TestHandlers_GetChart(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.allowCardFetches()
	f.load(t, []weather.City{london, paris}, nil)
	f.settle(t)

	w := f.do(http.MethodGet, "/api/chart", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"cities": ["London", "Paris"],
		"rows": [{"date": "2024-01-01", "London": 12.4, "Paris": 12.4}]
	}`, w.Body.String())
}

func TestHandlers_Health(t *testing.T) {
	f := newAPIFixture(t, nil)

	w := f.do(http.MethodGet, "/api/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	response := decode[HealthResponse](t, w)
	assert.Equal(t, "healthy", response.Status)
	assert.Contains(t, response.Components, "remoteAPI")
}

func TestHandlers_Health_Degraded(t *testing.T) {
	f := newAPIFixture(t, healthFunc(func(ctx context.Context) map[string]ports.HealthStatus {
		return map[string]ports.HealthStatus{
			"remoteAPI": {Component: "remoteAPI", Status: "unhealthy", Error: "timed out"},
			"config":    {Component: "config", Status: "healthy"},
		}
	}))

	w := f.do(http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "degraded", decode[HealthResponse](t, w).Status)
}

func TestHandlers_Metrics(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.metrics.RecordRetry("forecast")

	w := f.do(http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `weatherdash_fetch_retries_total{resource="forecast"} 1`))
}

func TestServerOptions_Validate(t *testing.T) {
	_, err := NewHTTPServerAdapter(ServerOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
