// Package services implements the domain operations over the stores: board
// lifecycle, cards and their relationships, reactions with vote aggregation,
// presence sessions, and the administrative back channel. Services hold no
// entity locks — conditional writes happen atomically in the store layer and
// zero-matched updates are re-read here to classify the failure. Events are
// published only after the triggering write succeeded.
package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/retroboardhq/retroboard/ent"
	"github.com/retroboardhq/retroboard/pkg/clock"
	"github.com/retroboardhq/retroboard/pkg/models"
	"github.com/retroboardhq/retroboard/pkg/store"
)

// Config carries the domain tunables the services need. Immutable after
// startup.
type Config struct {
	// PresenceWindow is the sliding window for active-user computation.
	PresenceWindow time.Duration

	// ShareableLinkLength is the hex length of board short codes.
	ShareableLinkLength int

	// ShareableLinkRetryCount bounds retries on shareable-link collisions.
	ShareableLinkRetryCount int

	// DefaultCardLimit and DefaultReactionLimit apply when a board does not
	// specify its own limit. Nil means unlimited.
	DefaultCardLimit     *int
	DefaultReactionLimit *int
}

// effectiveLimit resolves a board limit against the configured default.
func effectiveLimit(boardLimit, defaultLimit *int) *int {
	if boardLimit != nil {
		return boardLimit
	}
	return defaultLimit
}

// adminSet builds a constant-time membership set from the board admin list.
func adminSet(admins []string) map[string]struct{} {
	set := make(map[string]struct{}, len(admins))
	for _, a := range admins {
		set[a] = struct{}{}
	}
	return set
}

func isAdmin(b *ent.Board, identityHash string) bool {
	for _, a := range b.Admins {
		if a == identityHash {
			return true
		}
	}
	return false
}

// touchSession refreshes last_active after a successful mutation. Failures
// are logged and swallowed; presence refresh never fails the mutation.
func touchSession(ctx context.Context, sessions *store.SessionStore, clk clock.Clock, boardID, identityHash string) {
	if _, err := sessions.Touch(ctx, boardID, identityHash, clk.Now()); err != nil {
		slog.Warn("Failed to refresh session activity",
			"board_id", boardID, "error", err)
	}
}

// mapBoardErr converts the store's not-found into the board sentinel.
func mapBoardErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrBoardNotFound
	}
	return err
}

// mapCardErr converts the store's not-found into the card sentinel.
func mapCardErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrCardNotFound
	}
	return err
}

// boardView maps a board row plus its active participants to the API view.
func boardView(b *ent.Board, users []models.ActiveUser) *models.BoardView {
	if users == nil {
		users = []models.ActiveUser{}
	}
	return &models.BoardView{
		ID:            b.ID,
		Name:          b.Name,
		Columns:       b.Columns,
		Admins:        b.Admins,
		State:         string(b.State),
		ClosedAt:      b.ClosedAt,
		CardLimit:     b.CardLimit,
		ReactionLimit: b.ReactionLimit,
		CreatorHash:   b.CreatorHash,
		ShareableLink: b.ShareableLink,
		CreatedAt:     b.CreatedAt,
		ActiveUsers:   users,
	}
}

// cardView maps a card row to the API view without relationships.
func cardView(c *ent.Card) models.CardView {
	return models.CardView{
		ID:                c.ID,
		BoardID:           c.BoardID,
		ColumnID:          c.ColumnID,
		Content:           c.Content,
		CardType:          string(c.CardType),
		IsAnonymous:       c.IsAnonymous,
		CreatedByHash:     c.CreatedByHash,
		CreatedByAlias:    c.CreatedByAlias,
		CreatedAt:         c.CreatedAt,
		DirectCount:       c.DirectCount,
		AggregatedCount:   c.AggregatedCount,
		ParentID:          c.ParentID,
		LinkedFeedbackIDs: c.LinkedFeedbackIds,
	}
}

// activeUsersOf maps session rows to ActiveUser views, computing is_admin
// against a prebuilt admin set.
func activeUsersOf(sessions []*ent.UserSession, admins map[string]struct{}) []models.ActiveUser {
	users := make([]models.ActiveUser, 0, len(sessions))
	for _, sess := range sessions {
		_, admin := admins[sess.IdentityHash]
		users = append(users, models.ActiveUser{
			IdentityHash: sess.IdentityHash,
			Alias:        sess.Alias,
			IsAdmin:      admin,
			LastActive:   sess.LastActive,
		})
	}
	return users
}

// columnExists reports whether the board embeds a column with the given id.
func columnExists(b *ent.Board, columnID string) bool {
	for _, col := range b.Columns {
		if col.ID == columnID {
			return true
		}
	}
	return false
}
