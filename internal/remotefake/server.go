// Package remotefake is an in-memory stand-in for the remote weather API.
// It serves the same routes the gateway client calls and is used for local
// development and gateway integration tests.
package remotefake

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/weather"
)

// ForecastDays is the length of every generated outlook
const ForecastDays = 5

// Server keeps cities and preferences in memory
type Server struct {
	mu          sync.Mutex
	nextID      int64
	cities      []weather.City
	preferences weather.Preferences
	failing     map[int64]int
	today       func() time.Time
}

// New creates a server seeded with the given cities, in order, ids starting at 1
func New(seed ...weather.NewCityParams) *Server {
	s := &Server{
		nextID:      1,
		preferences: weather.Preferences{ID: 1, TemperatureUnit: weather.DefaultTemperatureUnit, FavoriteCities: []weather.City{}},
		failing:     make(map[int64]int),
		today:       time.Now,
	}
	for _, params := range seed {
		s.add(params)
	}
	return s
}

// SetToday pins the first forecast date
func (s *Server) SetToday(day time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.today = func() time.Time { return day }
}

// FailWith makes the weather and forecast routes of a city answer with status
func (s *Server) FailWith(cityID int64, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.failing, cityID)
		return
	}
	s.failing[cityID] = status
}

// Router builds the gin engine serving the remote API under /api
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/cities/", s.listCities)
		api.POST("/cities/", s.createCity)
		api.DELETE("/cities/:id/", s.deleteCity)
		api.GET("/cities/:id/weather/", s.currentWeather)
		api.GET("/cities/:id/forecast/", s.forecast)

		api.GET("/preferences/", s.getPreferences)
		api.POST("/preferences/", s.updatePreferences)
		api.POST("/preferences/add_favorite_city/", s.addFavorite)
		api.POST("/preferences/remove_favorite_city/", s.removeFavorite)
	}
	return router
}

func detail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"detail": message})
}

func (s *Server) add(params weather.NewCityParams) weather.City {
	city := weather.City{ID: s.nextID, Name: params.Name, CountryCode: params.CountryCode}
	s.nextID++
	s.cities = append(s.cities, city)
	return city
}

func (s *Server) find(id int64) (weather.City, bool) {
	for _, city := range s.cities {
		if city.ID == id {
			return city, true
		}
	}
	return weather.City{}, false
}

// lookup resolves the :id parameter; it writes the error response itself
func (s *Server) lookup(c *gin.Context) (weather.City, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		detail(c, http.StatusNotFound, "Not found.")
		return weather.City{}, false
	}

	s.mu.Lock()
	city, ok := s.find(id)
	status := s.failing[id]
	s.mu.Unlock()

	if !ok {
		detail(c, http.StatusNotFound, "Not found.")
		return weather.City{}, false
	}
	if status != 0 {
		detail(c, status, fmt.Sprintf("upstream failure for %s", city))
		return weather.City{}, false
	}
	return city, true
}

func (s *Server) listCities(c *gin.Context) {
	s.mu.Lock()
	cities := append([]weather.City{}, s.cities...)
	s.mu.Unlock()
	c.JSON(http.StatusOK, cities)
}

func (s *Server) createCity(c *gin.Context) {
	var params weather.NewCityParams
	if err := c.ShouldBindJSON(&params); err != nil {
		detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	params.Normalize()
	if err := params.IsValid(); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.cities {
		if strings.EqualFold(existing.Name, params.Name) && existing.CountryCode == params.CountryCode {
			detail(c, http.StatusBadRequest, "City already exists")
			return
		}
	}
	c.JSON(http.StatusCreated, s.add(params))
}

func (s *Server) deleteCity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		detail(c, http.StatusNotFound, "Not found.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, city := range s.cities {
		if city.ID == id {
			s.cities = append(s.cities[:i], s.cities[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	detail(c, http.StatusNotFound, "Not found.")
}

func (s *Server) currentWeather(c *gin.Context) {
	city, ok := s.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, SyntheticWeather(city.ID))
}

func (s *Server) forecast(c *gin.Context) {
	city, ok := s.lookup(c)
	if !ok {
		return
	}
	s.mu.Lock()
	today := s.today()
	s.mu.Unlock()
	c.JSON(http.StatusOK, SyntheticForecast(city.ID, today))
}

func (s *Server) getPreferences(c *gin.Context) {
	s.mu.Lock()
	preferences := s.preferences.Clone()
	s.mu.Unlock()
	c.JSON(http.StatusOK, []weather.Preferences{*preferences})
}

func (s *Server) updatePreferences(c *gin.Context) {
	var update weather.PreferencesUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if update.TemperatureUnit != "C" && update.TemperatureUnit != "F" {
		detail(c, http.StatusBadRequest, "temperature_unit must be C or F")
		return
	}

	s.mu.Lock()
	s.preferences.TemperatureUnit = update.TemperatureUnit
	preferences := s.preferences.Clone()
	s.mu.Unlock()
	c.JSON(http.StatusOK, preferences)
}

type favoriteRequest struct {
	CityID int64 `json:"city_id"`
}

func (s *Server) addFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	city, ok := s.find(req.CityID)
	if !ok {
		detail(c, http.StatusNotFound, "City not found")
		return
	}
	if !s.preferences.IsFavorite(city.ID) {
		s.preferences.FavoriteCities = append(s.preferences.FavoriteCities, city)
	}
	c.JSON(http.StatusOK, gin.H{"status": "favorite city added"})
}

func (s *Server) removeFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.preferences.FavoriteCities[:0]
	for _, city := range s.preferences.FavoriteCities {
		if city.ID != req.CityID {
			kept = append(kept, city)
		}
	}
	s.preferences.FavoriteCities = kept
	c.JSON(http.StatusOK, gin.H{"status": "favorite city removed"})
}

var conditions = []struct{ main, description, icon string }{
	{"Clear", "clear sky", "01d"},
	{"Clouds", "scattered clouds", "03d"},
	{"Rain", "light rain", "10d"},
	{"Snow", "light snow", "13d"},
}

// SyntheticWeather returns the deterministic conditions served for a city id
func SyntheticWeather(cityID int64) weather.CurrentWeather {
	cond := conditions[int(cityID)%len(conditions)]
	uv := float64(cityID % 10)
	base := 10 + float64(cityID%7)*2.5
	return weather.CurrentWeather{
		Temperature:        base,
		FeelsLike:          base - 1.5,
		Humidity:           50 + float64(cityID%5)*5,
		WindSpeed:          3.5,
		Pressure:           1013,
		Visibility:         10000,
		UVIndex:            &uv,
		WeatherMain:        cond.main,
		WeatherDescription: cond.description,
		WeatherIcon:        cond.icon,
	}
}

// SyntheticForecast returns the deterministic outlook served for a city id,
// one day per entry starting at today
func SyntheticForecast(cityID int64, today time.Time) []weather.ForecastDay {
	days := make([]weather.ForecastDay, 0, ForecastDays)
	for i := 0; i < ForecastDays; i++ {
		cond := conditions[(int(cityID)+i)%len(conditions)]
		high := 12 + float64(cityID%7)*2 + float64(i)
		days = append(days, weather.ForecastDay{
			ForecastDate:       today.AddDate(0, 0, i).Format("2006-01-02"),
			TemperatureMax:     high,
			TemperatureMin:     high - 8,
			WeatherMain:        cond.main,
			WeatherDescription: cond.description,
			WeatherIcon:        cond.icon,
		})
	}
	return days
}
