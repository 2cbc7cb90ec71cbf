package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/retroboardhq/retroboard/ent/board"
	"github.com/retroboardhq/retroboard/pkg/clock"
	"github.com/retroboardhq/retroboard/pkg/events"
	"github.com/retroboardhq/retroboard/pkg/models"
	"github.com/retroboardhq/retroboard/pkg/store"
)

const maxAliasLength = 50

// PresenceService owns the (board, identity) session records. Presence is a
// sliding window over last_active, not explicit connect/disconnect tracking,
// so it is robust to subscriber churn and multi-tab usage.
type PresenceService struct {
	boards      *store.BoardStore
	sessions    *store.SessionStore
	broadcaster events.Broadcaster
	clk         clock.Clock
	cfg         Config
}

// NewPresenceService creates a new PresenceService.
func NewPresenceService(
	boards *store.BoardStore,
	sessions *store.SessionStore,
	broadcaster events.Broadcaster,
	clk clock.Clock,
	cfg Config,
) *PresenceService {
	return &PresenceService{
		boards:      boards,
		sessions:    sessions,
		broadcaster: broadcaster,
		clk:         clk,
		cfg:         cfg,
	}
}

// Join upserts the identity's session on the board with the given alias and
// refreshes last_active. Allowed on closed boards so viewers can still read.
func (s *PresenceService) Join(ctx context.Context, boardID, identityHash, alias string) (*models.JoinResult, error) {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return nil, &ValidationError{Field: "alias", Message: "must not be empty"}
	}
	if utf8.RuneCountInString(alias) > maxAliasLength {
		return nil, &ValidationError{Field: "alias", Message: fmt.Sprintf("must be at most %d characters", maxAliasLength)}
	}

	b, err := s.boards.Get(ctx, boardID)
	if err != nil {
		return nil, mapBoardErr(err)
	}

	if _, err := s.sessions.Upsert(ctx, boardID, identityHash, alias, s.clk.Now()); err != nil {
		return nil, err
	}

	admin := isAdmin(b, identityHash)
	s.broadcaster.UserJoined(boardID, events.UserJoinedPayload{
		BoardID:      boardID,
		IdentityHash: identityHash,
		Alias:        alias,
		IsAdmin:      admin,
	})
	return &models.JoinResult{
		BoardID:      boardID,
		IdentityHash: identityHash,
		Alias:        alias,
		IsAdmin:      admin,
	}, nil
}

// Heartbeat refreshes last_active for an existing session. A heartbeat
// without a session is a no-op; allowed on closed boards.
func (s *PresenceService) Heartbeat(ctx context.Context, boardID, identityHash string) error {
	_, err := s.sessions.Touch(ctx, boardID, identityHash, s.clk.Now())
	return err
}

// UpdateAlias renames the identity's session on an active board and emits
// the old and new alias.
func (s *PresenceService) UpdateAlias(ctx context.Context, boardID, identityHash, newAlias string) error {
	newAlias = strings.TrimSpace(newAlias)
	if newAlias == "" {
		return &ValidationError{Field: "alias", Message: "must not be empty"}
	}
	if utf8.RuneCountInString(newAlias) > maxAliasLength {
		return &ValidationError{Field: "alias", Message: fmt.Sprintf("must be at most %d characters", maxAliasLength)}
	}

	b, err := s.boards.Get(ctx, boardID)
	if err != nil {
		return mapBoardErr(err)
	}
	if b.State == board.StateClosed {
		return ErrBoardClosed
	}

	sess, err := s.sessions.Get(ctx, boardID, identityHash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	oldAlias := sess.Alias

	n, err := s.sessions.UpdateAlias(ctx, boardID, identityHash, newAlias, s.clk.Now())
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}

	s.broadcaster.UserAliasChanged(boardID, events.UserAliasChangedPayload{
		BoardID:      boardID,
		IdentityHash: identityHash,
		OldAlias:     oldAlias,
		NewAlias:     newAlias,
	})
	return nil
}

// ActiveUsers returns the participants whose sessions fall inside the
// presence window, with is_admin computed against the board's admin set.
func (s *PresenceService) ActiveUsers(ctx context.Context, boardID string) ([]models.ActiveUser, error) {
	b, err := s.boards.Get(ctx, boardID)
	if err != nil {
		return nil, mapBoardErr(err)
	}
	cutoff := s.clk.Now().Add(-s.cfg.PresenceWindow)
	sessions, err := s.sessions.ActiveSince(ctx, boardID, cutoff)
	if err != nil {
		return nil, err
	}
	return activeUsersOf(sessions, adminSet(b.Admins)), nil
}
