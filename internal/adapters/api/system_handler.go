package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getNotifications handles GET /api/notifications requests
func (s *HTTPServerAdapter) getNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, NotificationsResponse{Notifications: s.notifications.Drain()})
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	components := s.health.CheckAll(c.Request.Context())

	response := HealthResponse{Status: "healthy", Components: components}
	status := http.StatusOK
	for _, component := range components {
		if !component.IsHealthy() {
			response.Status = "degraded"
			status = http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(status, response)
}
