package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// AddCityRequest represents the HTTP request for adding a city
type AddCityRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	CountryCode string `json:"country_code" form:"country_code" binding:"required,countrycode"`
}

// SetUnitRequest represents the HTTP request for changing the temperature unit
type SetUnitRequest struct {
	Unit string `json:"unit" form:"unit" binding:"required"`
}

// getDashboard handles GET /api/dashboard requests
func (s *HTTPServerAdapter) getDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, newDashboardResponse(s.dashboard.Snapshot()))
}

// addCity handles POST /api/cities requests
func (s *HTTPServerAdapter) addCity(c *gin.Context) {
	var req AddCityRequest
	if err := c.ShouldBind(&req); err != nil {
		s.logger.Debug("Add city binding error", ports.F("error", err.Error()))
		s.handleError(c, errors.NewValidationError(validationMessage(err)))
		return
	}

	city, err := s.dashboard.AddCity(c.Request.Context(), weather.NewCityParams{
		Name:        req.Name,
		CountryCode: req.CountryCode,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, city)
}

// removeCity handles DELETE /api/cities/:id requests
func (s *HTTPServerAdapter) removeCity(c *gin.Context) {
	cityID, err := cityIDParam(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	if err := s.dashboard.RemoveCity(c.Request.Context(), cityID); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "City removed"})
}

// toggleFavorite handles POST /api/cities/:id/favorite requests
func (s *HTTPServerAdapter) toggleFavorite(c *gin.Context) {
	cityID, err := cityIDParam(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	if err := s.dashboard.ToggleFavorite(c.Request.Context(), cityID); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, FavoriteResponse{
		CityID:     cityID,
		IsFavorite: s.dashboard.Snapshot().IsFavorite(cityID),
	})
}

// setTemperatureUnit handles PUT /api/preferences/unit requests
func (s *HTTPServerAdapter) setTemperatureUnit(c *gin.Context) {
	var req SetUnitRequest
	if err := c.ShouldBind(&req); err != nil {
		s.handleError(c, errors.NewValidationError(validationMessage(err)))
		return
	}

	if err := s.dashboard.SetTemperatureUnit(c.Request.Context(), req.Unit); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, UnitResponse{TemperatureUnit: s.dashboard.Snapshot().TemperatureUnit})
}
