package api

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/retroboardhq/retroboard/pkg/models"
)

// adminSecretHeader carries the preshared back-channel secret.
const adminSecretHeader = "X-Admin-Secret"

// adminSecretMiddleware gates the back channel on the preshared secret.
// Both sides are hashed before comparison so neither the presence of a
// secret nor its length leaks through timing.
func (s *Server) adminSecretMiddleware() echo.MiddlewareFunc {
	expected := sha256.Sum256([]byte(s.cfg.AdminSecret))
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			provided := sha256.Sum256([]byte(c.Request().Header.Get(adminSecretHeader)))
			if subtle.ConstantTimeCompare(expected[:], provided[:]) != 1 {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid admin secret")
			}
			return next(c)
		}
	}
}

// adminClearBoardHandler handles POST /api/v1/admin/boards/:id/clear.
func (s *Server) adminClearBoardHandler(c *echo.Context) error {
	boardID := c.Param("id")
	if boardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "board id is required")
	}

	stats, err := s.adminService.ClearBoardData(c.Request().Context(), boardID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &ClearResponse{Status: "cleared", Stats: stats})
}

// adminResetBoardHandler handles POST /api/v1/admin/boards/:id/reset.
func (s *Server) adminResetBoardHandler(c *echo.Context) error {
	boardID := c.Param("id")
	if boardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "board id is required")
	}

	stats, err := s.adminService.ResetBoard(c.Request().Context(), boardID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &ClearResponse{Status: "reset", Stats: stats})
}

// adminSeedBoardHandler handles POST /api/v1/admin/boards/:id/seed.
func (s *Server) adminSeedBoardHandler(c *echo.Context) error {
	boardID := c.Param("id")
	if boardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "board id is required")
	}
	var plan models.SeedPlan
	if err := c.Bind(&plan); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(plan.Cards) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "seed plan must contain at least one card")
	}

	ids, err := s.adminService.SeedBoard(c.Request().Context(), boardID, plan)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &SeedResponse{Status: "seeded", CardIDs: ids})
}

// adminDeleteBoardHandler handles DELETE /api/v1/admin/boards/:id.
func (s *Server) adminDeleteBoardHandler(c *echo.Context) error {
	boardID := c.Param("id")
	if boardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "board id is required")
	}

	if err := s.adminService.DeleteBoard(c.Request().Context(), boardID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &StatusResponse{Status: "deleted"})
}
