package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/retroboardhq/retroboard/ent/board"
	"github.com/retroboardhq/retroboard/pkg/clock"
	"github.com/retroboardhq/retroboard/pkg/events"
	"github.com/retroboardhq/retroboard/pkg/models"
	"github.com/retroboardhq/retroboard/pkg/store"
)

const maxReactionKindLength = 50

// ReactionService owns per-identity reactions and the vote counters they
// drive: a card's direct count, its own aggregate, and the parent's
// aggregate when the card is nested.
type ReactionService struct {
	boards      *store.BoardStore
	cards       *store.CardStore
	reactions   *store.ReactionStore
	sessions    *store.SessionStore
	broadcaster events.Broadcaster
	clk         clock.Clock
	cfg         Config
}

// NewReactionService creates a new ReactionService.
func NewReactionService(
	boards *store.BoardStore,
	cards *store.CardStore,
	reactions *store.ReactionStore,
	sessions *store.SessionStore,
	broadcaster events.Broadcaster,
	clk clock.Clock,
	cfg Config,
) *ReactionService {
	return &ReactionService{
		boards:      boards,
		cards:       cards,
		reactions:   reactions,
		sessions:    sessions,
		broadcaster: broadcaster,
		clk:         clk,
		cfg:         cfg,
	}
}

// AddReaction upserts the identity's reaction on the card. A first reaction
// counts against the board's per-user reaction limit and bumps the card's
// counters (and the parent's aggregate when nested); re-reacting with a
// different kind updates the row in place without touching any counter.
func (s *ReactionService) AddReaction(ctx context.Context, cardID, identityHash, alias, kind string) error {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return &ValidationError{Field: "kind", Message: "must not be empty"}
	}
	if utf8.RuneCountInString(kind) > maxReactionKindLength {
		return &ValidationError{Field: "kind", Message: fmt.Sprintf("must be at most %d characters", maxReactionKindLength)}
	}

	c, err := s.cards.Get(ctx, cardID)
	if err != nil {
		return mapCardErr(err)
	}
	b, err := s.boards.Get(ctx, c.BoardID)
	if err != nil {
		return mapBoardErr(err)
	}
	if b.State == board.StateClosed {
		return ErrBoardClosed
	}

	// The quota applies only when this would insert a new reaction; changing
	// kind never consumes quota. Check-then-insert races at the boundary are
	// accepted.
	exists, err := s.reactions.Exists(ctx, cardID, identityHash)
	if err != nil {
		return err
	}
	if !exists {
		if limit := effectiveLimit(b.ReactionLimit, s.cfg.DefaultReactionLimit); limit != nil {
			current, err := s.reactions.CountByBoardAndIdentity(ctx, b.ID, identityHash)
			if err != nil {
				return err
			}
			if current >= *limit {
				return &LimitExceededError{Kind: LimitKindReactions, Current: current, Limit: *limit}
			}
		}
	}

	_, wasInsert, err := s.reactions.Upsert(ctx, store.UpsertReactionParams{
		ID:           store.NewID(),
		CardID:       cardID,
		IdentityHash: identityHash,
		Alias:        alias,
		Kind:         kind,
		CreatedAt:    s.clk.Now(),
	})
	if err != nil {
		return err
	}

	direct := c.DirectCount
	var parentID *string
	var parentAgg *int
	if wasInsert {
		if err := s.cards.AddCounts(ctx, cardID, 1, 1); err != nil {
			return err
		}
		direct = c.DirectCount + 1
		if c.ParentID != nil {
			if err := s.cards.AddAggregated(ctx, *c.ParentID, 1); err != nil {
				return err
			}
		}
	}
	if c.ParentID != nil {
		parentID = c.ParentID
		if agg, ok := s.parentAggregate(ctx, *c.ParentID); ok {
			parentAgg = &agg
		}
	}

	touchSession(ctx, s.sessions, s.clk, c.BoardID, identityHash)
	s.broadcaster.ReactionAdded(c.BoardID, events.ReactionAddedPayload{
		BoardID:               c.BoardID,
		CardID:                cardID,
		IdentityHash:          identityHash,
		Alias:                 alias,
		Kind:                  kind,
		DirectCount:           direct,
		ParentID:              parentID,
		ParentAggregatedCount: parentAgg,
	})
	return nil
}

// RemoveReaction deletes the identity's reaction from the card and winds the
// counters back, clamped at zero.
func (s *ReactionService) RemoveReaction(ctx context.Context, cardID, identityHash string) error {
	c, err := s.cards.Get(ctx, cardID)
	if err != nil {
		return mapCardErr(err)
	}
	b, err := s.boards.Get(ctx, c.BoardID)
	if err != nil {
		return mapBoardErr(err)
	}
	if b.State == board.StateClosed {
		return ErrBoardClosed
	}

	n, err := s.reactions.Delete(ctx, cardID, identityHash)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrReactionNotFound
	}

	if err := s.cards.AddCounts(ctx, cardID, -1, -1); err != nil {
		return err
	}
	if c.ParentID != nil {
		if err := s.cards.AddAggregated(ctx, *c.ParentID, -1); err != nil {
			return err
		}
	}

	direct := c.DirectCount - 1
	if direct < 0 {
		direct = 0
	}
	var parentID *string
	var parentAgg *int
	if c.ParentID != nil {
		parentID = c.ParentID
		if agg, ok := s.parentAggregate(ctx, *c.ParentID); ok {
			parentAgg = &agg
		}
	}

	touchSession(ctx, s.sessions, s.clk, c.BoardID, identityHash)
	s.broadcaster.ReactionRemoved(c.BoardID, events.ReactionRemovedPayload{
		BoardID:               c.BoardID,
		CardID:                cardID,
		IdentityHash:          identityHash,
		DirectCount:           direct,
		ParentID:              parentID,
		ParentAggregatedCount: parentAgg,
	})
	return nil
}

// CheckReactionQuota reports the identity's reaction usage on the board
// against its effective limit. Reactions on cards of other boards never
// contribute.
func (s *ReactionService) CheckReactionQuota(ctx context.Context, boardID, identityHash string) (*models.QuotaStatus, error) {
	b, err := s.boards.Get(ctx, boardID)
	if err != nil {
		return nil, mapBoardErr(err)
	}
	current, err := s.reactions.CountByBoardAndIdentity(ctx, boardID, identityHash)
	if err != nil {
		return nil, err
	}
	limit := effectiveLimit(b.ReactionLimit, s.cfg.DefaultReactionLimit)
	if limit == nil {
		return &models.QuotaStatus{Current: current, Allowed: true}, nil
	}
	return &models.QuotaStatus{
		Current:      current,
		Limit:        *limit,
		Allowed:      current < *limit,
		LimitEnabled: true,
	}, nil
}

// parentAggregate re-reads the parent's aggregated count for event payloads.
// Best effort: a read failure is logged and the count omitted from the frame.
func (s *ReactionService) parentAggregate(ctx context.Context, parentID string) (int, bool) {
	parent, err := s.cards.Get(ctx, parentID)
	if err != nil {
		slog.Warn("Failed to read parent card for event payload",
			"parent_id", parentID, "error", err)
		return 0, false
	}
	return parent.AggregatedCount, true
}
