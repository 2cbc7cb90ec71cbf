// RetroBoard server — hosts the board/card/reaction mutation API, the
// real-time subscription gateway, and the presence layer.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/retroboardhq/retroboard/pkg/api"
	"github.com/retroboardhq/retroboard/pkg/cleanup"
	"github.com/retroboardhq/retroboard/pkg/clock"
	"github.com/retroboardhq/retroboard/pkg/config"
	"github.com/retroboardhq/retroboard/pkg/database"
	"github.com/retroboardhq/retroboard/pkg/events"
	"github.com/retroboardhq/retroboard/pkg/identity"
	"github.com/retroboardhq/retroboard/pkg/services"
	"github.com/retroboardhq/retroboard/pkg/store"
)

func main() {
	// Load .env if present; a real environment wins over the file.
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Stores and ports.
	boards := store.NewBoardStore(dbClient.Client)
	cards := store.NewCardStore(dbClient.Client)
	reactions := store.NewReactionStore(dbClient.Client)
	sessions := store.NewSessionStore(dbClient.Client)
	clk := clock.System{}

	identities := identity.NewProvider(identity.SHA256Hasher{})
	identities.Secure = cfg.SecureCookies

	// Fan-out plane.
	gateway := events.NewGateway(cfg.SubscriberSendQueueCapacity, cfg.SubscriberHeartbeatTimeout)
	broadcaster := events.NewGatewayBroadcaster(gateway, clk)

	// Services.
	svcCfg := services.Config{
		PresenceWindow:          cfg.PresenceWindow,
		ShareableLinkLength:     cfg.ShareableLinkLength,
		ShareableLinkRetryCount: cfg.ShareableLinkRetryCount,
		DefaultCardLimit:        cfg.DefaultCardLimit,
		DefaultReactionLimit:    cfg.DefaultReactionLimit,
	}
	boardService := services.NewBoardService(boards, cards, reactions, sessions, broadcaster, clk, svcCfg)
	cardService := services.NewCardService(boards, cards, reactions, sessions, broadcaster, clk, svcCfg)
	reactionService := services.NewReactionService(boards, cards, reactions, sessions, broadcaster, clk, svcCfg)
	presenceService := services.NewPresenceService(boards, sessions, broadcaster, clk, svcCfg)
	adminService := services.NewAdminService(boards, cards, reactions, sessions, boardService, clk)
	slog.Info("Services initialized")

	// Session janitor.
	janitor := cleanup.NewService(sessions, clk, cfg.CleanupInterval, cfg.SessionRetention)
	janitor.Start(ctx)
	defer janitor.Stop()

	// HTTP server.
	httpServer := api.NewServer(cfg, dbClient, identities, gateway,
		boardService, cardService, reactionService, presenceService, adminService)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", cfg.Port)
		if err := httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("RetroBoard started",
		"presence_window", cfg.PresenceWindow,
		"send_queue_capacity", cfg.SubscriberSendQueueCapacity)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: stop the listener and drain in-flight mutations,
	// then close all subscriber sockets.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	gateway.CloseAll()

	slog.Info("Shutdown complete")
}
