package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/retroboardhq/retroboard/pkg/database"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Database    *database.HealthStatus `json:"database"`
	Subscribers int                    `json:"subscribers"`
}

// healthHandler handles GET /health.
func (s *Server) healthHandler(c *echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, &HealthResponse{
			Status:      "unhealthy",
			Database:    dbHealth,
			Subscribers: s.gateway.ActiveSubscribers(),
		})
	}

	return c.JSON(http.StatusOK, &HealthResponse{
		Status:      "healthy",
		Database:    dbHealth,
		Subscribers: s.gateway.ActiveSubscribers(),
	})
}
