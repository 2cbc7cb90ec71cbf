package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/retroboardhq/retroboard/pkg/models"
)

// createBoardHandler handles POST /api/v1/boards.
func (s *Server) createBoardHandler(c *echo.Context) error {
	var req CreateBoardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	board, err := s.boardService.CreateBoard(c.Request().Context(), identityHash(c), models.CreateBoardInput{
		Name:          req.Name,
		Columns:       req.Columns,
		CardLimit:     req.CardLimit,
		ReactionLimit: req.ReactionLimit,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, board)
}

// getBoardHandler handles GET /api/v1/boards/:id.
func (s *Server) getBoardHandler(c *echo.Context) error {
	boardID := c.Param("id")
	if boardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "board id is required")
	}

	board, err := s.boardService.GetBoard(c.Request().Context(), boardID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, board)
}

// getBoardByLinkHandler handles GET /api/v1/boards/link/:link.
func (s *Server) getBoardByLinkHandler(c *echo.Context) error {
	link := c.Param("link")
	if link == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "shareable link is required")
	}

	board, err := s.boardService.GetBoardByLink(c.Request().Context(), link)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, board)
}

// renameBoardHandler handles PATCH /api/v1/boards/:id.
func (s *Server) renameBoardHandler(c *echo.Context) error {
	boardID := c.Param("id")
	if boardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "board id is required")
	}
	var req RenameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := s.boardService.RenameBoard(c.Request().Context(), boardID, identityHash(c), req.Name); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &StatusResponse{Status: "renamed"})
}

// renameColumnHandler handles PATCH /api/v1/boards/:id/columns/:columnId.
func (s *Server) renameColumnHandler(c *echo.Context) error {
	boardID := c.Param("id")
	columnID := c.Param("columnId")
	if boardID == "" || columnID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "board id and column id are required")
	}
	var req RenameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := s.boardService.RenameColumn(c.Request().Context(), boardID, identityHash(c), columnID, req.Name); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &StatusResponse{Status: "renamed"})
}

// closeBoardHandler handles POST /api/v1/boards/:id/close.
func (s *Server) closeBoardHandler(c *echo.Context) error {
	boardID := c.Param("id")
	if boardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "board id is required")
	}

	if err := s.boardService.CloseBoard(c.Request().Context(), boardID, identityHash(c)); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &StatusResponse{Status: "closed"})
}

// addAdminHandler handles POST /api/v1/boards/:id/admins.
func (s *Server) addAdminHandler(c *echo.Context) error {
	boardID := c.Param("id")
	if boardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "board id is required")
	}
	var req AddAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.IdentityHash == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "identity_hash is required")
	}

	if err := s.boardService.AddAdmin(c.Request().Context(), boardID, identityHash(c), req.IdentityHash); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &StatusResponse{Status: "admin added"})
}

// deleteBoardHandler handles DELETE /api/v1/boards/:id. Creator-only; the
// back channel deletes through the admin routes.
func (s *Server) deleteBoardHandler(c *echo.Context) error {
	boardID := c.Param("id")
	if boardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "board id is required")
	}

	if err := s.boardService.DeleteBoard(c.Request().Context(), boardID, identityHash(c)); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &StatusResponse{Status: "deleted"})
}
