package ports

import (
	"context"

	"weatherdash.app/internal/core/weather"
)

// WeatherGateway is the typed contract of the remote weather/preferences API.
// Implementations own transport concerns only: no retry, no caching.
type WeatherGateway interface {
	ListCities(ctx context.Context) ([]weather.City, error)
	AddCity(ctx context.Context, params weather.NewCityParams) (*weather.City, error)
	RemoveCity(ctx context.Context, cityID int64) error
	GetCurrentWeather(ctx context.Context, cityID int64) (*weather.CurrentWeather, error)
	GetForecast(ctx context.Context, cityID int64) ([]weather.ForecastDay, error)
	GetPreferences(ctx context.Context) ([]weather.Preferences, error)
	UpdatePreferences(ctx context.Context, update weather.PreferencesUpdate) error
	AddFavoriteCity(ctx context.Context, cityID int64) error
	RemoveFavoriteCity(ctx context.Context, cityID int64) error
}
