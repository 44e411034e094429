package api

import (
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/fetch"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
)

// CityView is a city as rendered in the city list and favorites section
type CityView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
	Label       string `json:"label"`
	IsFavorite  bool   `json:"is_favorite"`
}

// DashboardResponse is the page-level state of the dashboard
type DashboardResponse struct {
	Loaded          bool       `json:"loaded"`
	TemperatureUnit string     `json:"temperature_unit"`
	Cities          []CityView `json:"cities"`
	FavoriteCities  []CityView `json:"favorite_cities"`
	ForecastCityIDs []int64    `json:"forecast_city_ids"`
}

// CurrentWeatherView is current weather formatted for a city card
type CurrentWeatherView struct {
	Temperature  int      `json:"temperature"`
	FeelsLike    int      `json:"feels_like"`
	Humidity     float64  `json:"humidity"`
	WindSpeed    float64  `json:"wind_speed"`
	Pressure     float64  `json:"pressure"`
	VisibilityKM string   `json:"visibility_km"`
	UVIndex      *float64 `json:"uv_index,omitempty"`
	UVLevel      string   `json:"uv_level,omitempty"`
	Main         string   `json:"main"`
	Description  string   `json:"description"`
	IconURL      string   `json:"icon_url,omitempty"`
}

// WeatherCardResponse is the state of one current weather card
type WeatherCardResponse struct {
	CityID  int64               `json:"city_id"`
	Loading bool                `json:"loading"`
	Error   string              `json:"error,omitempty"`
	Weather *CurrentWeatherView `json:"weather,omitempty"`
}

// ForecastDayView is one forecast row of a forecast card
type ForecastDayView struct {
	Date        string `json:"date"`
	Label       string `json:"label"`
	Max         int    `json:"max"`
	Min         int    `json:"min"`
	Main        string `json:"main"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url,omitempty"`
}

// ForecastCardResponse is the state of one forecast card
type ForecastCardResponse struct {
	CityID  int64             `json:"city_id"`
	Loading bool              `json:"loading"`
	Error   string            `json:"error,omitempty"`
	Days    []ForecastDayView `json:"days,omitempty"`
}

// FavoriteResponse reports the favorite status after a toggle
type FavoriteResponse struct {
	CityID     int64 `json:"city_id"`
	IsFavorite bool  `json:"is_favorite"`
}

// UnitResponse reports the temperature unit after an update
type UnitResponse struct {
	TemperatureUnit string `json:"temperature_unit"`
}

// NotificationsResponse carries drained notifications
type NotificationsResponse struct {
	Notifications []ports.Notification `json:"notifications"`
}

// HealthResponse aggregates component health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

func newDashboardResponse(snapshot dashboard.Snapshot) DashboardResponse {
	response := DashboardResponse{
		Loaded:          snapshot.Loaded,
		TemperatureUnit: snapshot.TemperatureUnit,
		Cities:          cityViews(snapshot.Cities, snapshot),
		FavoriteCities:  cityViews(snapshot.FavoriteCities, snapshot),
		ForecastCityIDs: make([]int64, 0, len(snapshot.ForecastCities)),
	}
	for _, city := range snapshot.ForecastCities {
		response.ForecastCityIDs = append(response.ForecastCityIDs, city.ID)
	}
	return response
}

func cityViews(cities []weather.City, snapshot dashboard.Snapshot) []CityView {
	views := make([]CityView, 0, len(cities))
	for _, city := range cities {
		views = append(views, CityView{
			ID:          city.ID,
			Name:        city.Name,
			CountryCode: city.CountryCode,
			Label:       city.String(),
			IsFavorite:  snapshot.IsFavorite(city.ID),
		})
	}
	return views
}

func newWeatherCardResponse(cityID int64, state fetch.State[weather.CurrentWeather]) WeatherCardResponse {
	response := WeatherCardResponse{
		CityID:  cityID,
		Loading: state.Loading,
		Error:   state.Error,
	}
	if state.Data == nil {
		return response
	}

	current := state.Data
	response.Weather = &CurrentWeatherView{
		Temperature:  weather.Round(current.Temperature),
		FeelsLike:    weather.Round(current.FeelsLike),
		Humidity:     current.Humidity,
		WindSpeed:    current.WindSpeed,
		Pressure:     current.Pressure,
		VisibilityKM: current.VisibilityKM(),
		UVIndex:      current.UVIndex,
		UVLevel:      current.UVLevel(),
		Main:         current.WeatherMain,
		Description:  current.WeatherDescription,
		IconURL:      current.IconURL(),
	}
	return response
}

func newForecastCardResponse(cityID int64, state fetch.State[[]weather.ForecastDay]) ForecastCardResponse {
	response := ForecastCardResponse{
		CityID:  cityID,
		Loading: state.Loading,
		Error:   state.Error,
	}
	if state.Data == nil {
		return response
	}

	response.Days = make([]ForecastDayView, 0, len(*state.Data))
	for _, day := range *state.Data {
		response.Days = append(response.Days, ForecastDayView{
			Date:        day.ForecastDate,
			Label:       day.DateLabel(),
			Max:         weather.Round(day.TemperatureMax),
			Min:         weather.Round(day.TemperatureMin),
			Main:        day.WeatherMain,
			Description: day.WeatherDescription,
			IconURL:     day.IconURL(),
		})
	}
	return response
}
