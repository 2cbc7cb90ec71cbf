package store

import (
	"context"
	"fmt"
	"time"

	"github.com/retroboardhq/retroboard/ent"
	"github.com/retroboardhq/retroboard/ent/card"
)

// CardStore owns card documents: CRUD, counters, and the parent/child and
// action→feedback link fields.
type CardStore struct {
	client *ent.Client
}

// NewCardStore creates a new CardStore.
func NewCardStore(client *ent.Client) *CardStore {
	return &CardStore{client: client}
}

// CreateCardParams are the fields persisted on card creation. Counters start
// at zero and CreatedByAlias is nil for anonymous cards.
type CreateCardParams struct {
	ID             string
	BoardID        string
	ColumnID       string
	Content        string
	CardType       string
	IsAnonymous    bool
	CreatedByHash  string
	CreatedByAlias *string
	CreatedAt      time.Time
}

// Create inserts a card.
func (s *CardStore) Create(ctx context.Context, p CreateCardParams) (*ent.Card, error) {
	c, err := s.client.Card.Create().
		SetID(p.ID).
		SetBoardID(p.BoardID).
		SetColumnID(p.ColumnID).
		SetContent(p.Content).
		SetCardType(card.CardType(p.CardType)).
		SetIsAnonymous(p.IsAnonymous).
		SetCreatedByHash(p.CreatedByHash).
		SetNillableCreatedByAlias(p.CreatedByAlias).
		SetCreatedAt(p.CreatedAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}
	return c, nil
}

// Get returns a card by id.
func (s *CardStore) Get(ctx context.Context, id string) (*ent.Card, error) {
	c, err := s.client.Card.Query().Where(card.ID(id)).Only(ctx)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return c, nil
}

// ListByBoard returns all cards on a board, oldest first.
func (s *CardStore) ListByBoard(ctx context.Context, boardID string) ([]*ent.Card, error) {
	cards, err := s.client.Card.Query().
		Where(card.BoardID(boardID)).
		Order(ent.Asc(card.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

// ChildrenOf returns the children of the given parents in one multi-key
// query, oldest first.
func (s *CardStore) ChildrenOf(ctx context.Context, parentIDs []string) ([]*ent.Card, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	children, err := s.client.Card.Query().
		Where(card.ParentIDIn(parentIDs...)).
		Order(ent.Asc(card.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query children: %w", err)
	}
	return children, nil
}

// ByIDs resolves cards by id in one multi-key query.
func (s *CardStore) ByIDs(ctx context.Context, ids []string) ([]*ent.Card, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cards, err := s.client.Card.Query().
		Where(card.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards by ids: %w", err)
	}
	return cards, nil
}

// IDsByBoard returns the ids of all cards on a board.
func (s *CardStore) IDsByBoard(ctx context.Context, boardID string) ([]string, error) {
	ids, err := s.client.Card.Query().
		Where(card.BoardID(boardID)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query card ids: %w", err)
	}
	return ids, nil
}

// UpdateContent replaces the card content. Returns the matched row count.
func (s *CardStore) UpdateContent(ctx context.Context, id, content string) (int, error) {
	n, err := s.client.Card.Update().
		Where(card.ID(id)).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to update card content: %w", err)
	}
	return n, nil
}

// Move changes the card's column. Returns the matched row count.
func (s *CardStore) Move(ctx context.Context, id, columnID string) (int, error) {
	n, err := s.client.Card.Update().
		Where(card.ID(id)).
		SetColumnID(columnID).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to move card: %w", err)
	}
	return n, nil
}

// SetParent links target under parent, conditioned on the target currently
// having no parent. Returns the matched row count so concurrent link attempts
// lose cleanly.
func (s *CardStore) SetParent(ctx context.Context, targetID, parentID string) (int, error) {
	n, err := s.client.Card.Update().
		Where(card.ID(targetID), card.ParentIDIsNil()).
		SetParentID(parentID).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to set card parent: %w", err)
	}
	return n, nil
}

// ClearParent unlinks target from parent, conditioned on the link actually
// existing. Returns the matched row count.
func (s *CardStore) ClearParent(ctx context.Context, targetID, parentID string) (int, error) {
	n, err := s.client.Card.Update().
		Where(card.ID(targetID), card.ParentID(parentID)).
		ClearParentID().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear card parent: %w", err)
	}
	return n, nil
}

// OrphanChildren clears parent_id on every child of the given parent.
// Returns the number of orphaned cards.
func (s *CardStore) OrphanChildren(ctx context.Context, parentID string) (int, error) {
	n, err := s.client.Card.Update().
		Where(card.ParentID(parentID)).
		ClearParentID().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to orphan children: %w", err)
	}
	return n, nil
}

// SetLinkedFeedback replaces an action card's linked feedback ids. The
// set-like append/remove semantics live in the service layer.
func (s *CardStore) SetLinkedFeedback(ctx context.Context, id string, ids []string) (int, error) {
	n, err := s.client.Card.Update().
		Where(card.ID(id)).
		SetLinkedFeedbackIds(ids).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to update linked feedback: %w", err)
	}
	return n, nil
}

// AddCounts atomically adjusts direct_count and aggregated_count by the given
// deltas, clamped at zero. A decrement that would go negative falls back to
// pinning the counters at zero.
func (s *CardStore) AddCounts(ctx context.Context, id string, directDelta, aggDelta int) error {
	q := s.client.Card.Update().Where(card.ID(id))
	if directDelta < 0 {
		q = q.Where(card.DirectCountGTE(-directDelta))
	}
	if aggDelta < 0 {
		q = q.Where(card.AggregatedCountGTE(-aggDelta))
	}
	n, err := q.AddDirectCount(directDelta).AddAggregatedCount(aggDelta).Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to adjust card counters: %w", err)
	}
	if n > 0 {
		return nil
	}
	// Clamp: the counters would have gone negative (or the card is gone).
	return s.clampCounters(ctx, id, directDelta, aggDelta)
}

// AddAggregated atomically adjusts aggregated_count only (parent propagation
// and link/unlink), clamped at zero.
func (s *CardStore) AddAggregated(ctx context.Context, id string, delta int) error {
	return s.AddCounts(ctx, id, 0, delta)
}

// clampCounters re-reads the card and writes the clamped counter values.
func (s *CardStore) clampCounters(ctx context.Context, id string, directDelta, aggDelta int) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	direct := c.DirectCount + directDelta
	if direct < 0 {
		direct = 0
	}
	agg := c.AggregatedCount + aggDelta
	if agg < 0 {
		agg = 0
	}
	_, err = s.client.Card.Update().
		Where(card.ID(id)).
		SetDirectCount(direct).
		SetAggregatedCount(agg).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to clamp card counters: %w", err)
	}
	return nil
}

// CountFeedbackByAuthor counts the feedback cards one identity has created on
// a board, for card-quota enforcement.
func (s *CardStore) CountFeedbackByAuthor(ctx context.Context, boardID, identityHash string) (int, error) {
	n, err := s.client.Card.Query().
		Where(
			card.BoardID(boardID),
			card.CreatedByHash(identityHash),
			card.CardTypeEQ(card.CardTypeFeedback),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count feedback cards: %w", err)
	}
	return n, nil
}

// Delete removes one card.
func (s *CardStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Card.Delete().Where(card.ID(id)).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByBoard bulk-deletes all cards on a board (cascade step).
func (s *CardStore) DeleteByBoard(ctx context.Context, boardID string) (int, error) {
	n, err := s.client.Card.Delete().Where(card.BoardID(boardID)).Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete board cards: %w", err)
	}
	return n, nil
}
