package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/retroboardhq/retroboard/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}

	var limitErr *services.LimitExceededError
	if errors.As(err, &limitErr) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, limitErr.Error())
	}

	var forbiddenErr *services.ForbiddenError
	if errors.As(err, &forbiddenErr) {
		return echo.NewHTTPError(http.StatusForbidden, forbiddenErr.Error())
	}

	switch {
	case errors.Is(err, services.ErrBoardNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "board not found")
	case errors.Is(err, services.ErrCardNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "card not found")
	case errors.Is(err, services.ErrColumnNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "column not found")
	case errors.Is(err, services.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "no active session for that user on this board")
	case errors.Is(err, services.ErrReactionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "reaction not found")
	case errors.Is(err, services.ErrBoardClosed):
		return echo.NewHTTPError(http.StatusConflict, "board is closed")
	case errors.Is(err, services.ErrCircularRelationship):
		return echo.NewHTTPError(http.StatusConflict, "link would create a circular relationship")
	case errors.Is(err, services.ErrAlreadyLinked):
		return echo.NewHTTPError(http.StatusConflict, "card is already linked to a parent")
	case errors.Is(err, services.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
