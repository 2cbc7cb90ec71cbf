package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/retroboardhq/retroboard/pkg/models"
)

// createCardHandler handles POST /api/v1/boards/:id/cards.
func (s *Server) createCardHandler(c *echo.Context) error {
	boardID := c.Param("id")
	if boardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "board id is required")
	}
	var req CreateCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	card, err := s.cardService.CreateCard(c.Request().Context(), boardID, identityHash(c), models.CreateCardInput{
		ColumnID:    req.ColumnID,
		Content:     req.Content,
		CardType:    req.CardType,
		IsAnonymous: req.IsAnonymous,
		Alias:       req.Alias,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, card)
}

// listCardsHandler handles GET /api/v1/boards/:id/cards.
func (s *Server) listCardsHandler(c *echo.Context) error {
	boardID := c.Param("id")
	if boardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "board id is required")
	}

	filter := models.CardFilter{
		ColumnID: c.QueryParam("column_id"),
		CardType: c.QueryParam("card_type"),
	}
	if filter.CardType != "" &&
		filter.CardType != models.CardTypeFeedback && filter.CardType != models.CardTypeAction {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid card_type: must be feedback or action")
	}

	includeRelationships := true
	if v := c.QueryParam("include_relationships"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid include_relationships: must be a boolean")
		}
		includeRelationships = parsed
	}

	result, err := s.cardService.ListCards(c.Request().Context(), boardID, filter, includeRelationships)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// getCardHandler handles GET /api/v1/cards/:id.
func (s *Server) getCardHandler(c *echo.Context) error {
	cardID := c.Param("id")
	if cardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "card id is required")
	}

	card, err := s.cardService.GetCard(c.Request().Context(), cardID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, card)
}

// updateCardHandler handles PATCH /api/v1/cards/:id.
func (s *Server) updateCardHandler(c *echo.Context) error {
	cardID := c.Param("id")
	if cardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "card id is required")
	}
	var req UpdateCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := s.cardService.UpdateCard(c.Request().Context(), cardID, identityHash(c), req.Content); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &StatusResponse{Status: "updated"})
}

// deleteCardHandler handles DELETE /api/v1/cards/:id.
func (s *Server) deleteCardHandler(c *echo.Context) error {
	cardID := c.Param("id")
	if cardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "card id is required")
	}

	if err := s.cardService.DeleteCard(c.Request().Context(), cardID, identityHash(c)); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &StatusResponse{Status: "deleted"})
}

// moveCardHandler handles POST /api/v1/cards/:id/move.
func (s *Server) moveCardHandler(c *echo.Context) error {
	cardID := c.Param("id")
	if cardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "card id is required")
	}
	var req MoveCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ColumnID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "column_id is required")
	}

	if err := s.cardService.MoveCard(c.Request().Context(), cardID, identityHash(c), req.ColumnID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &StatusResponse{Status: "moved"})
}

// linkCardsHandler handles POST /api/v1/cards/:id/links. The card in the
// path is the source.
func (s *Server) linkCardsHandler(c *echo.Context) error {
	sourceID := c.Param("id")
	if sourceID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "card id is required")
	}
	var req LinkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.TargetID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "target_id is required")
	}

	if err := s.cardService.LinkCards(c.Request().Context(), sourceID, req.TargetID, req.Kind, identityHash(c)); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &StatusResponse{Status: "linked"})
}

// unlinkCardsHandler handles POST /api/v1/cards/:id/unlink.
func (s *Server) unlinkCardsHandler(c *echo.Context) error {
	sourceID := c.Param("id")
	if sourceID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "card id is required")
	}
	var req LinkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.TargetID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "target_id is required")
	}

	if err := s.cardService.UnlinkCards(c.Request().Context(), sourceID, req.TargetID, req.Kind, identityHash(c)); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &StatusResponse{Status: "unlinked"})
}

// cardQuotaHandler handles GET /api/v1/boards/:id/quotas/cards.
func (s *Server) cardQuotaHandler(c *echo.Context) error {
	boardID := c.Param("id")
	if boardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "board id is required")
	}

	quota, err := s.cardService.CheckCardQuota(c.Request().Context(), boardID, identityHash(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &CardQuotaResponse{
		Current:      quota.Current,
		Limit:        quota.Limit,
		CanCreate:    quota.Allowed,
		LimitEnabled: quota.LimitEnabled,
	})
}
