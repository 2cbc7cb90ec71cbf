// Package api exposes the HTTP surface: the mutation routes under /api/v1,
// the WebSocket subscription endpoint, the health check, and the
// secret-authenticated administrative back channel.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/retroboardhq/retroboard/pkg/config"
	"github.com/retroboardhq/retroboard/pkg/database"
	"github.com/retroboardhq/retroboard/pkg/events"
	"github.com/retroboardhq/retroboard/pkg/identity"
	"github.com/retroboardhq/retroboard/pkg/services"
)

// Server wires the services to HTTP routes.
type Server struct {
	cfg        *config.Config
	db         *database.Client
	identities *identity.Provider
	gateway    *events.Gateway

	boardService    *services.BoardService
	cardService     *services.CardService
	reactionService *services.ReactionService
	presenceService *services.PresenceService
	adminService    *services.AdminService

	echo       *echo.Echo
	httpServer *http.Server
}

// NewServer creates the server and registers all routes.
func NewServer(
	cfg *config.Config,
	db *database.Client,
	identities *identity.Provider,
	gateway *events.Gateway,
	boardService *services.BoardService,
	cardService *services.CardService,
	reactionService *services.ReactionService,
	presenceService *services.PresenceService,
	adminService *services.AdminService,
) *Server {
	s := &Server{
		cfg:             cfg,
		db:              db,
		identities:      identities,
		gateway:         gateway,
		boardService:    boardService,
		cardService:     cardService,
		reactionService: reactionService,
		presenceService: presenceService,
		adminService:    adminService,
	}

	e := echo.New()
	e.Use(securityHeaders())
	s.registerRoutes(e)
	s.echo = e
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes(e *echo.Echo) {
	e.GET("/health", s.healthHandler)
	e.GET("/ws", s.wsHandler)

	v1 := e.Group("/api/v1",
		s.identityMiddleware(),
		bodyLimit(s.cfg.MaxRequestBodyBytes),
	)

	// Boards.
	v1.POST("/boards", s.createBoardHandler)
	v1.GET("/boards/:id", s.getBoardHandler)
	v1.GET("/boards/link/:link", s.getBoardByLinkHandler)
	v1.PATCH("/boards/:id", s.renameBoardHandler)
	v1.PATCH("/boards/:id/columns/:columnId", s.renameColumnHandler)
	v1.POST("/boards/:id/close", s.closeBoardHandler)
	v1.POST("/boards/:id/admins", s.addAdminHandler)
	v1.DELETE("/boards/:id", s.deleteBoardHandler)

	// Presence.
	v1.POST("/boards/:id/join", s.joinBoardHandler)
	v1.POST("/boards/:id/heartbeat", s.heartbeatHandler)
	v1.PUT("/boards/:id/alias", s.updateAliasHandler)
	v1.GET("/boards/:id/users", s.activeUsersHandler)

	// Cards.
	v1.POST("/boards/:id/cards", s.createCardHandler)
	v1.GET("/boards/:id/cards", s.listCardsHandler)
	v1.GET("/cards/:id", s.getCardHandler)
	v1.PATCH("/cards/:id", s.updateCardHandler)
	v1.DELETE("/cards/:id", s.deleteCardHandler)
	v1.POST("/cards/:id/move", s.moveCardHandler)
	v1.POST("/cards/:id/links", s.linkCardsHandler)
	v1.POST("/cards/:id/unlink", s.unlinkCardsHandler)

	// Reactions and quotas.
	v1.POST("/cards/:id/reactions", s.addReactionHandler)
	v1.DELETE("/cards/:id/reactions", s.removeReactionHandler)
	v1.GET("/boards/:id/quotas/cards", s.cardQuotaHandler)
	v1.GET("/boards/:id/quotas/reactions", s.reactionQuotaHandler)

	// Administrative back channel: preshared secret, no cookie identity.
	admin := e.Group("/api/v1/admin",
		s.adminSecretMiddleware(),
		bodyLimit(s.cfg.MaxRequestBodyBytes),
	)
	admin.POST("/boards/:id/clear", s.adminClearBoardHandler)
	admin.POST("/boards/:id/reset", s.adminResetBoardHandler)
	admin.POST("/boards/:id/seed", s.adminSeedBoardHandler)
	admin.DELETE("/boards/:id", s.adminDeleteBoardHandler)
}

// Start serves HTTP until Shutdown or a listener error.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the listener and drains in-flight requests up to the
// context deadline. Subscriber sockets are closed by the caller afterwards.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
