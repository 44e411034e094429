package weather

import (
	"fmt"
	"math"
	"strings"
	"time"

	"weatherdash.app/pkg/validation"
)

const (
	// DefaultTemperatureUnit is shown when no preferences record exists
	DefaultTemperatureUnit = "C"

	iconBaseURL      = "https://openweathermap.org/img/wn/"
	forecastDateForm = "2006-01-02"
)

// City is a watched location. It is immutable once created by the remote API.
type City struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
}

// String returns the display form "Name, CC"
func (c City) String() string {
	return fmt.Sprintf("%s, %s", c.Name, c.CountryCode)
}

// NewCityParams is the input of the add-city operation
type NewCityParams struct {
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
}

// Normalize trims both fields and uppercases the country code
func (p *NewCityParams) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.CountryCode = strings.ToUpper(strings.TrimSpace(p.CountryCode))
}

// IsValid validates add-city input
func (p *NewCityParams) IsValid() error {
	if !validation.IsNotEmpty(p.Name) {
		return fmt.Errorf("city name cannot be empty")
	}
	if !validation.IsCountryCode(p.CountryCode) {
		return fmt.Errorf("country code must be exactly 2 letters")
	}
	return nil
}

// Preferences is the singleton per-user record kept by the remote API
type Preferences struct {
	ID              int64  `json:"id,omitempty"`
	TemperatureUnit string `json:"temperature_unit"`
	FavoriteCities  []City `json:"favorite_cities"`
}

// IsFavorite reports whether the city id is in the favorite set.
// A nil receiver has no favorites.
func (p *Preferences) IsFavorite(cityID int64) bool {
	if p == nil {
		return false
	}
	for _, city := range p.FavoriteCities {
		if city.ID == cityID {
			return true
		}
	}
	return false
}

// Unit returns the temperature unit, falling back to the default
func (p *Preferences) Unit() string {
	if p == nil || p.TemperatureUnit == "" {
		return DefaultTemperatureUnit
	}
	return p.TemperatureUnit
}

// Clone returns a deep copy
func (p *Preferences) Clone() *Preferences {
	if p == nil {
		return nil
	}
	clone := *p
	clone.FavoriteCities = append([]City(nil), p.FavoriteCities...)
	return &clone
}

// PreferencesUpdate is the body of the update-preferences operation
type PreferencesUpdate struct {
	TemperatureUnit string `json:"temperature_unit"`
}

// CurrentWeather is the latest snapshot for a city; replaced wholesale on every fetch
type CurrentWeather struct {
	Temperature        float64  `json:"temperature"`
	FeelsLike          float64  `json:"feels_like"`
	Humidity           float64  `json:"humidity"`
	WindSpeed          float64  `json:"wind_speed"`
	Pressure           float64  `json:"pressure"`
	Visibility         float64  `json:"visibility"`
	UVIndex            *float64 `json:"uv_index"`
	WeatherMain        string   `json:"weather_main"`
	WeatherDescription string   `json:"weather_description"`
	WeatherIcon        string   `json:"weather_icon"`
}

// VisibilityKM renders visibility (meters) in kilometers with one decimal
func (w *CurrentWeather) VisibilityKM() string {
	return fmt.Sprintf("%.1f", w.Visibility/1000)
}

// UVLevel classifies the UV index; empty when the index is unknown
func (w *CurrentWeather) UVLevel() string {
	if w.UVIndex == nil {
		return ""
	}
	switch uv := *w.UVIndex; {
	case uv > 6:
		return "high"
	case uv > 3:
		return "moderate"
	default:
		return "low"
	}
}

// IconURL returns the large icon used on current weather cards
func (w *CurrentWeather) IconURL() string {
	return IconURL(w.WeatherIcon, true)
}

// ForecastDay is one daily summary of a 5-day outlook
type ForecastDay struct {
	ForecastDate       string  `json:"forecast_date"`
	TemperatureMax     float64 `json:"temperature_max"`
	TemperatureMin     float64 `json:"temperature_min"`
	WeatherMain        string  `json:"weather_main"`
	WeatherDescription string  `json:"weather_description"`
	WeatherIcon        string  `json:"weather_icon"`
}

// DateLabel renders the forecast date as "Mon, Jan 2".
// Dates that do not parse are returned unchanged.
func (d *ForecastDay) DateLabel() string {
	date := d.ForecastDate
	if len(date) > len(forecastDateForm) {
		date = date[:len(forecastDateForm)]
	}
	parsed, err := time.Parse(forecastDateForm, date)
	if err != nil {
		return d.ForecastDate
	}
	return parsed.Format("Mon, Jan 2")
}

// IconURL returns the small icon used on forecast rows
func (d *ForecastDay) IconURL() string {
	return IconURL(d.WeatherIcon, false)
}

// IconURL templates an icon code into the icon CDN path
func IconURL(code string, large bool) string {
	if code == "" {
		return ""
	}
	if large {
		return iconBaseURL + code + "@2x.png"
	}
	return iconBaseURL + code + ".png"
}

// Round rounds a temperature for display; halves round up, so -2.5 becomes -2
func Round(value float64) int {
	return int(math.Floor(value + 0.5))
}
