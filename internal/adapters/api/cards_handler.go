package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getWeatherCard handles GET /api/cities/:id/weather requests
func (s *HTTPServerAdapter) getWeatherCard(c *gin.Context) {
	cityID, err := cityIDParam(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	state, err := s.dashboard.WeatherCard(cityID)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newWeatherCardResponse(cityID, state))
}

// retryWeather handles POST /api/cities/:id/weather/retry requests
func (s *HTTPServerAdapter) retryWeather(c *gin.Context) {
	cityID, err := cityIDParam(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	if err := s.dashboard.RetryWeather(cityID); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, SuccessResponse{Message: "Weather refresh started"})
}

// getForecastCard handles GET /api/cities/:id/forecast requests
func (s *HTTPServerAdapter) getForecastCard(c *gin.Context) {
	cityID, err := cityIDParam(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	state, err := s.dashboard.ForecastCard(cityID)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newForecastCardResponse(cityID, state))
}

// retryForecast handles POST /api/cities/:id/forecast/retry requests
func (s *HTTPServerAdapter) retryForecast(c *gin.Context) {
	cityID, err := cityIDParam(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	if err := s.dashboard.RetryForecast(cityID); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, SuccessResponse{Message: "Forecast refresh started"})
}

// getChart handles GET /api/chart requests
func (s *HTTPServerAdapter) getChart(c *gin.Context) {
	c.JSON(http.StatusOK, s.dashboard.Chart())
}
