package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireHTTPError asserts the handler failed with the given status.
func requireHTTPError(t *testing.T, err error, wantStatus int) {
	t.Helper()
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, wantStatus, httpErr.Code)
}

func TestHandlers_RequirePathParams(t *testing.T) {
	s := &Server{}
	e := echo.New()

	tests := []struct {
		name    string
		handler echo.HandlerFunc
	}{
		{"get board", s.getBoardHandler},
		{"get board by link", s.getBoardByLinkHandler},
		{"rename board", s.renameBoardHandler},
		{"rename column", s.renameColumnHandler},
		{"close board", s.closeBoardHandler},
		{"add admin", s.addAdminHandler},
		{"delete board", s.deleteBoardHandler},
		{"join board", s.joinBoardHandler},
		{"heartbeat", s.heartbeatHandler},
		{"update alias", s.updateAliasHandler},
		{"active users", s.activeUsersHandler},
		{"create card", s.createCardHandler},
		{"list cards", s.listCardsHandler},
		{"get card", s.getCardHandler},
		{"update card", s.updateCardHandler},
		{"delete card", s.deleteCardHandler},
		{"move card", s.moveCardHandler},
		{"link cards", s.linkCardsHandler},
		{"unlink cards", s.unlinkCardsHandler},
		{"card quota", s.cardQuotaHandler},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			c := e.NewContext(req, httptest.NewRecorder())

			requireHTTPError(t, tt.handler(c), http.StatusBadRequest)
		})
	}
}

func TestCreateBoardHandler_RejectsMalformedBody(t *testing.T) {
	s := &Server{}
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/boards", strings.NewReader(`{"name": `))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	requireHTTPError(t, s.createBoardHandler(c), http.StatusBadRequest)
}
