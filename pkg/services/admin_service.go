package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/retroboardhq/retroboard/pkg/clock"
	"github.com/retroboardhq/retroboard/pkg/models"
	"github.com/retroboardhq/retroboard/pkg/store"
)

// AdminService is the secret-authenticated back channel used for
// post-deployment verification: wiping a board's content, resetting it to a
// fresh active state, and seeding synthetic cards and reactions. The secret
// check itself lives in the API layer; everything here assumes the caller is
// already trusted.
type AdminService struct {
	boards    *store.BoardStore
	cards     *store.CardStore
	reactions *store.ReactionStore
	sessions  *store.SessionStore
	boardSvc  *BoardService
	clk       clock.Clock
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	boards *store.BoardStore,
	cards *store.CardStore,
	reactions *store.ReactionStore,
	sessions *store.SessionStore,
	boardSvc *BoardService,
	clk clock.Clock,
) *AdminService {
	return &AdminService{
		boards:    boards,
		cards:     cards,
		reactions: reactions,
		sessions:  sessions,
		boardSvc:  boardSvc,
		clk:       clk,
	}
}

// ClearStats reports how many rows a clear or reset removed.
type ClearStats struct {
	Cards     int `json:"cards"`
	Reactions int `json:"reactions"`
	Sessions  int `json:"sessions"`
}

// ClearBoardData removes every card and reaction on the board. Sessions and
// the board itself are untouched.
func (s *AdminService) ClearBoardData(ctx context.Context, boardID string) (*ClearStats, error) {
	if _, err := s.boards.Get(ctx, boardID); err != nil {
		return nil, mapBoardErr(err)
	}

	stats := &ClearStats{}
	cardIDs, err := s.cards.IDsByBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if stats.Reactions, err = s.reactions.DeleteByCards(ctx, cardIDs); err != nil {
		return nil, err
	}
	if stats.Cards, err = s.cards.DeleteByBoard(ctx, boardID); err != nil {
		return nil, err
	}

	slog.Info("Board data cleared",
		"board_id", boardID, "cards", stats.Cards, "reactions", stats.Reactions)
	return stats, nil
}

// ResetBoard clears the board's content, drops all sessions, and reopens it
// (state back to active, closed_at cleared).
func (s *AdminService) ResetBoard(ctx context.Context, boardID string) (*ClearStats, error) {
	stats, err := s.ClearBoardData(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if stats.Sessions, err = s.sessions.DeleteByBoard(ctx, boardID); err != nil {
		return nil, err
	}
	if _, err := s.boards.Reopen(ctx, boardID); err != nil {
		return nil, err
	}

	slog.Info("Board reset", "board_id", boardID)
	return stats, nil
}

// SeedBoard writes a plan of synthetic cards and reactions onto the board,
// returning the created card ids in plan order. Parent links and reactions
// reference earlier cards by index. Counters propagate exactly as the
// production reaction path would set them.
func (s *AdminService) SeedBoard(ctx context.Context, boardID string, plan models.SeedPlan) ([]string, error) {
	b, err := s.boards.Get(ctx, boardID)
	if err != nil {
		return nil, mapBoardErr(err)
	}

	for i, sc := range plan.Cards {
		if sc.CardType != models.CardTypeFeedback && sc.CardType != models.CardTypeAction {
			return nil, &ValidationError{Field: "cards", Message: fmt.Sprintf("card %d: card_type must be feedback or action", i)}
		}
		if sc.Content == "" {
			return nil, &ValidationError{Field: "cards", Message: fmt.Sprintf("card %d: content must not be empty", i)}
		}
		if !columnExists(b, sc.ColumnID) {
			return nil, &ValidationError{Field: "cards", Message: fmt.Sprintf("card %d: unknown column %s", i, sc.ColumnID)}
		}
		if sc.ParentIndex != nil && (*sc.ParentIndex < 0 || *sc.ParentIndex >= i) {
			return nil, &ValidationError{Field: "cards", Message: fmt.Sprintf("card %d: parent_index must reference an earlier card", i)}
		}
	}
	for i, sr := range plan.Reactions {
		if sr.CardIndex < 0 || sr.CardIndex >= len(plan.Cards) {
			return nil, &ValidationError{Field: "reactions", Message: fmt.Sprintf("reaction %d: card_index out of range", i)}
		}
	}

	now := s.clk.Now()
	ids := make([]string, 0, len(plan.Cards))
	parentOf := make(map[string]string)
	for _, sc := range plan.Cards {
		var alias *string
		if !sc.IsAnonymous && sc.Alias != "" {
			a := sc.Alias
			alias = &a
		}
		c, err := s.cards.Create(ctx, store.CreateCardParams{
			ID:             store.NewID(),
			BoardID:        boardID,
			ColumnID:       sc.ColumnID,
			Content:        sc.Content,
			CardType:       sc.CardType,
			IsAnonymous:    sc.IsAnonymous,
			CreatedByHash:  seedIdentityHash(sc.Alias),
			CreatedByAlias: alias,
			CreatedAt:      now,
		})
		if err != nil {
			return ids, err
		}
		ids = append(ids, c.ID)

		if sc.ParentIndex != nil {
			parentID := ids[*sc.ParentIndex]
			if _, err := s.cards.SetParent(ctx, c.ID, parentID); err != nil {
				return ids, err
			}
			parentOf[c.ID] = parentID
		}
	}

	for _, sr := range plan.Reactions {
		cardID := ids[sr.CardIndex]
		_, wasInsert, err := s.reactions.Upsert(ctx, store.UpsertReactionParams{
			ID:           store.NewID(),
			CardID:       cardID,
			IdentityHash: sr.IdentityHash,
			Alias:        sr.Alias,
			Kind:         sr.Kind,
			CreatedAt:    now,
		})
		if err != nil {
			return ids, err
		}
		if !wasInsert {
			continue
		}
		if err := s.cards.AddCounts(ctx, cardID, 1, 1); err != nil {
			return ids, err
		}
		if parentID, ok := parentOf[cardID]; ok {
			if err := s.cards.AddAggregated(ctx, parentID, 1); err != nil {
				return ids, err
			}
		}
	}

	slog.Info("Board seeded",
		"board_id", boardID, "cards", len(ids), "reactions", len(plan.Reactions))
	return ids, nil
}

// DeleteBoard removes the board and everything on it, bypassing the creator
// check.
func (s *AdminService) DeleteBoard(ctx context.Context, boardID string) error {
	return s.boardSvc.DeleteBoardAsAdmin(ctx, boardID)
}

// seedIdentityHash derives a stable synthetic identity hash for seeded cards
// so they look like regular participant data.
func seedIdentityHash(alias string) string {
	sum := sha256.Sum256([]byte("seed:" + alias))
	return hex.EncodeToString(sum[:])
}
