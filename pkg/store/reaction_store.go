package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/retroboardhq/retroboard/ent"
	"github.com/retroboardhq/retroboard/ent/card"
	"github.com/retroboardhq/retroboard/ent/predicate"
	"github.com/retroboardhq/retroboard/ent/reaction"
)

// ReactionStore owns reaction rows, unique on (card_id, identity_hash).
type ReactionStore struct {
	client *ent.Client
}

// NewReactionStore creates a new ReactionStore.
func NewReactionStore(client *ent.Client) *ReactionStore {
	return &ReactionStore{client: client}
}

// UpsertReactionParams are the fields written by Upsert.
type UpsertReactionParams struct {
	ID           string
	CardID       string
	IdentityHash string
	Alias        string
	Kind         string
	CreatedAt    time.Time
}

// Upsert inserts the reaction or, if the identity already reacted to the
// card, updates the existing row in place. The returned bool reports whether
// a new row was inserted — counters change only in that case.
func (s *ReactionStore) Upsert(ctx context.Context, p UpsertReactionParams) (*ent.Reaction, bool, error) {
	r, err := s.client.Reaction.Create().
		SetID(p.ID).
		SetCardID(p.CardID).
		SetIdentityHash(p.IdentityHash).
		SetAlias(p.Alias).
		SetKind(p.Kind).
		SetCreatedAt(p.CreatedAt).
		Save(ctx)
	if err == nil {
		return r, true, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, false, fmt.Errorf("failed to insert reaction: %w", err)
	}

	// Unique (card_id, identity_hash) hit: update the existing row.
	n, err := s.client.Reaction.Update().
		Where(
			reaction.CardID(p.CardID),
			reaction.IdentityHash(p.IdentityHash),
		).
		SetKind(p.Kind).
		SetAlias(p.Alias).
		SetCreatedAt(p.CreatedAt).
		Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to update reaction: %w", err)
	}
	if n == 0 {
		// The row vanished between insert and update (concurrent removal).
		return nil, false, ErrNotFound
	}
	existing, err := s.client.Reaction.Query().
		Where(
			reaction.CardID(p.CardID),
			reaction.IdentityHash(p.IdentityHash),
		).
		Only(ctx)
	if err != nil {
		return nil, false, wrapNotFound(err)
	}
	return existing, false, nil
}

// Exists reports whether the identity already reacted to the card.
func (s *ReactionStore) Exists(ctx context.Context, cardID, identityHash string) (bool, error) {
	ok, err := s.client.Reaction.Query().
		Where(
			reaction.CardID(cardID),
			reaction.IdentityHash(identityHash),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check reaction existence: %w", err)
	}
	return ok, nil
}

// Delete removes the identity's reaction from the card. Returns the deleted
// row count (zero when no reaction existed).
func (s *ReactionStore) Delete(ctx context.Context, cardID, identityHash string) (int, error) {
	n, err := s.client.Reaction.Delete().
		Where(
			reaction.CardID(cardID),
			reaction.IdentityHash(identityHash),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete reaction: %w", err)
	}
	return n, nil
}

// CountByCard counts the reactions directly on one card.
func (s *ReactionStore) CountByCard(ctx context.Context, cardID string) (int, error) {
	n, err := s.client.Reaction.Query().
		Where(reaction.CardID(cardID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count card reactions: %w", err)
	}
	return n, nil
}

// CountByBoardAndIdentity counts the identity's reactions on cards belonging
// to the board, in one round trip via a reactions ⋈ cards subquery. Reaction
// quota is per board, so reactions on other boards never contribute.
func (s *ReactionStore) CountByBoardAndIdentity(ctx context.Context, boardID, identityHash string) (int, error) {
	n, err := s.client.Reaction.Query().
		Where(
			reaction.IdentityHash(identityHash),
			cardOnBoard(boardID),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count board reactions: %w", err)
	}
	return n, nil
}

// DeleteByCard removes all reactions on one card.
func (s *ReactionStore) DeleteByCard(ctx context.Context, cardID string) (int, error) {
	n, err := s.client.Reaction.Delete().
		Where(reaction.CardID(cardID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete card reactions: %w", err)
	}
	return n, nil
}

// DeleteByCards bulk-removes reactions across many cards (cascade step).
func (s *ReactionStore) DeleteByCards(ctx context.Context, cardIDs []string) (int, error) {
	if len(cardIDs) == 0 {
		return 0, nil
	}
	n, err := s.client.Reaction.Delete().
		Where(reaction.CardIDIn(cardIDs...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete reactions: %w", err)
	}
	return n, nil
}

// cardOnBoard matches reactions whose card belongs to the given board using
// a correlated IN subquery against the cards table.
func cardOnBoard(boardID string) predicate.Reaction {
	return func(s *sql.Selector) {
		t := sql.Table(card.Table)
		s.Where(sql.In(
			s.C(reaction.FieldCardID),
			sql.Select(t.C(card.FieldID)).From(t).Where(sql.EQ(t.C(card.FieldBoardID), boardID)),
		))
	}
}
