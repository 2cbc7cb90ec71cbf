package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// joinBoardHandler handles POST /api/v1/boards/:id/join.
func (s *Server) joinBoardHandler(c *echo.Context) error {
	boardID := c.Param("id")
	if boardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "board id is required")
	}
	var req JoinBoardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := s.presenceService.Join(c.Request().Context(), boardID, identityHash(c), req.Alias)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// heartbeatHandler handles POST /api/v1/boards/:id/heartbeat.
func (s *Server) heartbeatHandler(c *echo.Context) error {
	boardID := c.Param("id")
	if boardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "board id is required")
	}

	if err := s.presenceService.Heartbeat(c.Request().Context(), boardID, identityHash(c)); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &StatusResponse{Status: "ok"})
}

// updateAliasHandler handles PUT /api/v1/boards/:id/alias.
func (s *Server) updateAliasHandler(c *echo.Context) error {
	boardID := c.Param("id")
	if boardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "board id is required")
	}
	var req UpdateAliasRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := s.presenceService.UpdateAlias(c.Request().Context(), boardID, identityHash(c), req.Alias); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &StatusResponse{Status: "updated"})
}

// activeUsersHandler handles GET /api/v1/boards/:id/users.
func (s *Server) activeUsersHandler(c *echo.Context) error {
	boardID := c.Param("id")
	if boardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "board id is required")
	}

	users, err := s.presenceService.ActiveUsers(c.Request().Context(), boardID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, users)
}
