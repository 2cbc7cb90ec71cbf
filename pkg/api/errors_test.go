package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retroboardhq/retroboard/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation error", &services.ValidationError{Field: "name", Message: "must not be empty"}, http.StatusBadRequest},
		{"limit exceeded", &services.LimitExceededError{Kind: services.LimitKindCards, Current: 5, Limit: 5}, http.StatusUnprocessableEntity},
		{"forbidden with role", &services.ForbiddenError{RequiredRole: "admin"}, http.StatusForbidden},
		{"board not found", services.ErrBoardNotFound, http.StatusNotFound},
		{"card not found", services.ErrCardNotFound, http.StatusNotFound},
		{"column not found", services.ErrColumnNotFound, http.StatusNotFound},
		{"user not found", services.ErrUserNotFound, http.StatusNotFound},
		{"reaction not found", services.ErrReactionNotFound, http.StatusNotFound},
		{"board closed", services.ErrBoardClosed, http.StatusConflict},
		{"circular relationship", services.ErrCircularRelationship, http.StatusConflict},
		{"already linked", services.ErrAlreadyLinked, http.StatusConflict},
		{"bare forbidden", services.ErrForbidden, http.StatusForbidden},
		{"matching text without the sentinel", errors.New("board not found"), http.StatusInternalServerError},
		{"unexpected error", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.Code)
		})
	}
}

func TestMapServiceError_PreservesDetailMessages(t *testing.T) {
	httpErr := mapServiceError(&services.ValidationError{Field: "alias", Message: "must be at most 50 characters"})
	assert.Contains(t, httpErr.Message, "alias")

	httpErr = mapServiceError(&services.LimitExceededError{Kind: services.LimitKindReactions, Current: 10, Limit: 10})
	assert.Contains(t, httpErr.Message, "reactions")
}
