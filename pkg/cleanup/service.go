// Package cleanup runs the background janitor that removes long-dead user
// sessions. Presence itself is a sliding window over last_active; the
// janitor is storage hygiene only and never affects who counts as active.
package cleanup

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/retroboardhq/retroboard/pkg/clock"
	"github.com/retroboardhq/retroboard/pkg/store"
)

// Service periodically deletes user sessions whose last_active predates the
// retention horizon. Deleting by cutoff is idempotent, so running several
// processes side by side is safe.
type Service struct {
	sessions  *store.SessionStore
	clk       clock.Clock
	interval  time.Duration
	retention time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

// NewService creates a janitor that runs every interval and removes sessions
// older than retention.
func NewService(sessions *store.SessionStore, clk clock.Clock, interval, retention time.Duration) *Service {
	return &Service{
		sessions:  sessions,
		clk:       clk,
		interval:  interval,
		retention: retention,
	}
}

// Start launches the background loop. Calling Start twice is a no-op.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.started = true

	slog.Info("Session cleanup started",
		"interval", s.interval, "retention", s.retention)
	go s.run(runCtx)
}

// Stop cancels the loop and waits for the in-flight pass to finish.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	cancel, done := s.cancel, s.done
	s.started = false
	s.mu.Unlock()

	cancel()
	<-done
	slog.Info("Session cleanup stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep runs one deletion pass.
func (s *Service) sweep(ctx context.Context) {
	cutoff := s.clk.Now().Add(-s.retention)
	n, err := s.sessions.DeleteInactiveBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Session cleanup pass failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("Removed stale sessions", "count", n, "cutoff", cutoff)
	}
}
