package gateway

import (
	"context"
	"time"

	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
)

// LoggingDecorator decorates a gateway with structured request logging
type LoggingDecorator struct {
	gateway ports.WeatherGateway
	logger  ports.Logger
}

// NewLoggingDecorator creates a new logging decorator for the remote API gateway
func NewLoggingDecorator(gateway ports.WeatherGateway, logger ports.Logger) ports.WeatherGateway {
	return &LoggingDecorator{
		gateway: gateway,
		logger:  logger,
	}
}

func logged[T any](d *LoggingDecorator, operation string, fields []ports.Field, call func() (T, error), summarize func(T) []ports.Field) (T, error) {
	d.logger.Info("Remote API request started",
		append([]ports.Field{ports.F("operation", operation), ports.F("event", "request")}, fields...)...)

	startTime := time.Now()
	result, err := call()
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Remote API request failed",
			append([]ports.Field{
				ports.F("operation", operation),
				ports.F("event", "error"),
				ports.F("duration_ms", duration.Milliseconds()),
				ports.F("error", err.Error()),
			}, fields...)...)
		return result, err
	}

	completed := append([]ports.Field{
		ports.F("operation", operation),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
	}, fields...)
	if summarize != nil {
		completed = append(completed, summarize(result)...)
	}
	d.logger.Info("Remote API request completed", completed...)

	return result, nil
}

func loggedErr(d *LoggingDecorator, operation string, fields []ports.Field, call func() error) error {
	_, err := logged(d, operation, fields, func() (struct{}, error) {
		return struct{}{}, call()
	}, nil)
	return err
}

func cityField(cityID int64) []ports.Field {
	return []ports.Field{ports.F("city_id", cityID)}
}

// ListCities wraps the gateway call with structured logging
func (d *LoggingDecorator) ListCities(ctx context.Context) ([]weather.City, error) {
	return logged(d, "list_cities", nil, func() ([]weather.City, error) {
		return d.gateway.ListCities(ctx)
	}, func(cities []weather.City) []ports.Field {
		return []ports.Field{ports.F("count", len(cities))}
	})
}

// AddCity wraps the gateway call with structured logging
func (d *LoggingDecorator) AddCity(ctx context.Context, params weather.NewCityParams) (*weather.City, error) {
	fields := []ports.Field{ports.F("name", params.Name), ports.F("country_code", params.CountryCode)}
	return logged(d, "add_city", fields, func() (*weather.City, error) {
		return d.gateway.AddCity(ctx, params)
	}, func(city *weather.City) []ports.Field {
		if city == nil {
			return nil
		}
		return []ports.Field{ports.F("city_id", city.ID)}
	})
}

// RemoveCity wraps the gateway call with structured logging
func (d *LoggingDecorator) RemoveCity(ctx context.Context, cityID int64) error {
	return loggedErr(d, "remove_city", cityField(cityID), func() error {
		return d.gateway.RemoveCity(ctx, cityID)
	})
}

// GetCurrentWeather wraps the gateway call with structured logging
func (d *LoggingDecorator) GetCurrentWeather(ctx context.Context, cityID int64) (*weather.CurrentWeather, error) {
	return logged(d, "current_weather", cityField(cityID), func() (*weather.CurrentWeather, error) {
		return d.gateway.GetCurrentWeather(ctx, cityID)
	}, func(current *weather.CurrentWeather) []ports.Field {
		if current == nil {
			return nil
		}
		return []ports.Field{
			ports.F("temperature", current.Temperature),
			ports.F("humidity", current.Humidity),
			ports.F("description", current.WeatherDescription),
		}
	})
}

// GetForecast wraps the gateway call with structured logging
func (d *LoggingDecorator) GetForecast(ctx context.Context, cityID int64) ([]weather.ForecastDay, error) {
	return logged(d, "forecast", cityField(cityID), func() ([]weather.ForecastDay, error) {
		return d.gateway.GetForecast(ctx, cityID)
	}, func(days []weather.ForecastDay) []ports.Field {
		return []ports.Field{ports.F("days", len(days))}
	})
}

// GetPreferences wraps the gateway call with structured logging
func (d *LoggingDecorator) GetPreferences(ctx context.Context) ([]weather.Preferences, error) {
	return logged(d, "get_preferences", nil, func() ([]weather.Preferences, error) {
		return d.gateway.GetPreferences(ctx)
	}, func(records []weather.Preferences) []ports.Field {
		return []ports.Field{ports.F("records", len(records))}
	})
}

// UpdatePreferences wraps the gateway call with structured logging
func (d *LoggingDecorator) UpdatePreferences(ctx context.Context, update weather.PreferencesUpdate) error {
	fields := []ports.Field{ports.F("temperature_unit", update.TemperatureUnit)}
	return loggedErr(d, "update_preferences", fields, func() error {
		return d.gateway.UpdatePreferences(ctx, update)
	})
}

// AddFavoriteCity wraps the gateway call with structured logging
func (d *LoggingDecorator) AddFavoriteCity(ctx context.Context, cityID int64) error {
	return loggedErr(d, "add_favorite", cityField(cityID), func() error {
		return d.gateway.AddFavoriteCity(ctx, cityID)
	})
}

// RemoveFavoriteCity wraps the gateway call with structured logging
func (d *LoggingDecorator) RemoveFavoriteCity(ctx context.Context, cityID int64) error {
	return loggedErr(d, "remove_favorite", cityField(cityID), func() error {
		return d.gateway.RemoveFavoriteCity(ctx, cityID)
	})
}
