package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// addReactionHandler handles POST /api/v1/cards/:id/reactions.
func (s *Server) addReactionHandler(c *echo.Context) error {
	cardID := c.Param("id")
	if cardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "card id is required")
	}
	var req AddReactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := s.reactionService.AddReaction(c.Request().Context(), cardID, identityHash(c), req.Alias, req.Kind); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &StatusResponse{Status: "reacted"})
}

// removeReactionHandler handles DELETE /api/v1/cards/:id/reactions.
func (s *Server) removeReactionHandler(c *echo.Context) error {
	cardID := c.Param("id")
	if cardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "card id is required")
	}

	if err := s.reactionService.RemoveReaction(c.Request().Context(), cardID, identityHash(c)); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &StatusResponse{Status: "removed"})
}

// reactionQuotaHandler handles GET /api/v1/boards/:id/quotas/reactions.
func (s *Server) reactionQuotaHandler(c *echo.Context) error {
	boardID := c.Param("id")
	if boardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "board id is required")
	}

	quota, err := s.reactionService.CheckReactionQuota(c.Request().Context(), boardID, identityHash(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &ReactionQuotaResponse{
		Current:      quota.Current,
		Limit:        quota.Limit,
		CanReact:     quota.Allowed,
		LimitEnabled: quota.LimitEnabled,
	})
}
