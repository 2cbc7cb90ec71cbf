package api

import (
	"net/http"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// wsHandler handles GET /ws: upgrades the connection and hands it to the
// gateway. Unauthenticated connections are refused before the upgrade; the
// WebSocket path never mints cookies.
func (s *Server) wsHandler(c *echo.Context) error {
	ident, ok := s.identities.ExistingIdentityOf(c.Request())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "identity cookie required")
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// Same-origin deployments only; the identity cookie is the gate.
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}

	// HandleConnection blocks until the WebSocket closes.
	s.gateway.HandleConnection(c.Request().Context(), conn, ident.Hash)
	return nil
}
