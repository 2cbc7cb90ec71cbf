package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retroboardhq/retroboard/pkg/models"
)

func TestCardStore_CreateAndGet(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")

	t.Run("with alias", func(t *testing.T) {
		created := createTestCard(t, s.cards, b.ID, b.Columns[0].ID, "author-hash", models.CardTypeFeedback, testTime())

		got, err := s.cards.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.BoardID)
		assert.Equal(t, b.Columns[0].ID, got.ColumnID)
		assert.Equal(t, "Deploys took too long", got.Content)
		assert.Equal(t, "feedback", string(got.CardType))
		assert.False(t, got.IsAnonymous)
		require.NotNil(t, got.CreatedByAlias)
		assert.Equal(t, "Dana", *got.CreatedByAlias)
		assert.Equal(t, 0, got.DirectCount)
		assert.Equal(t, 0, got.AggregatedCount)
		assert.Nil(t, got.ParentID)
		assert.Empty(t, got.LinkedFeedbackIds)
	})

	t.Run("anonymous card stores nil alias", func(t *testing.T) {
		created, err := s.cards.Create(ctx, CreateCardParams{
			ID:            NewID(),
			BoardID:       b.ID,
			ColumnID:      b.Columns[0].ID,
			Content:       "Anonymous gripe",
			CardType:      models.CardTypeFeedback,
			IsAnonymous:   true,
			CreatedByHash: "author-hash",
			CreatedAt:     testTime(),
		})
		require.NoError(t, err)

		got, err := s.cards.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, got.IsAnonymous)
		assert.Nil(t, got.CreatedByAlias)
	})

	t.Run("unknown card", func(t *testing.T) {
		_, err := s.cards.Get(ctx, NewID())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCardStore_ListByBoard_OrdersByCreation(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")

	second := createTestCard(t, s.cards, b.ID, b.Columns[0].ID, "a", models.CardTypeFeedback, testTime().Add(time.Minute))
	first := createTestCard(t, s.cards, b.ID, b.Columns[1].ID, "a", models.CardTypeAction, testTime())

	cards, err := s.cards.ListByBoard(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, first.ID, cards[0].ID)
	assert.Equal(t, second.ID, cards[1].ID)

	ids, err := s.cards.IDsByBoard(ctx, b.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first.ID, second.ID}, ids)
}

func TestCardStore_ParentLinks(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")
	parent := createTestCard(t, s.cards, b.ID, b.Columns[0].ID, "a", models.CardTypeFeedback, testTime())
	child := createTestCard(t, s.cards, b.ID, b.Columns[0].ID, "a", models.CardTypeFeedback, testTime().Add(time.Second))

	n, err := s.cards.SetParent(ctx, child.ID, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Already parented: the nil-parent condition fails.
	n, err = s.cards.SetParent(ctx, child.ID, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	children, err := s.cards.ChildrenOf(ctx, []string{parent.ID})
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, child.ID, children[0].ID)

	t.Run("clear requires the matching parent", func(t *testing.T) {
		n, err := s.cards.ClearParent(ctx, child.ID, NewID())
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		n, err = s.cards.ClearParent(ctx, child.ID, parent.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		got, err := s.cards.Get(ctx, child.ID)
		require.NoError(t, err)
		assert.Nil(t, got.ParentID)
	})

	t.Run("orphan children clears every child", func(t *testing.T) {
		other := createTestCard(t, s.cards, b.ID, b.Columns[0].ID, "a", models.CardTypeFeedback, testTime().Add(2*time.Second))
		_, err := s.cards.SetParent(ctx, child.ID, parent.ID)
		require.NoError(t, err)
		_, err = s.cards.SetParent(ctx, other.ID, parent.ID)
		require.NoError(t, err)

		n, err := s.cards.OrphanChildren(ctx, parent.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		children, err := s.cards.ChildrenOf(ctx, []string{parent.ID})
		require.NoError(t, err)
		assert.Empty(t, children)
	})

	t.Run("empty inputs short-circuit", func(t *testing.T) {
		children, err := s.cards.ChildrenOf(ctx, nil)
		require.NoError(t, err)
		assert.Nil(t, children)

		cards, err := s.cards.ByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Nil(t, cards)
	})
}

func TestCardStore_Counters(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")
	c := createTestCard(t, s.cards, b.ID, b.Columns[0].ID, "a", models.CardTypeFeedback, testTime())

	require.NoError(t, s.cards.AddCounts(ctx, c.ID, 1, 1))
	require.NoError(t, s.cards.AddCounts(ctx, c.ID, 1, 1))
	require.NoError(t, s.cards.AddAggregated(ctx, c.ID, 3))

	got, err := s.cards.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.DirectCount)
	assert.Equal(t, 5, got.AggregatedCount)

	require.NoError(t, s.cards.AddCounts(ctx, c.ID, -1, -1))
	got, err = s.cards.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.DirectCount)
	assert.Equal(t, 4, got.AggregatedCount)

	t.Run("decrement below zero clamps", func(t *testing.T) {
		require.NoError(t, s.cards.AddCounts(ctx, c.ID, -5, -10))

		got, err := s.cards.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.DirectCount)
		assert.Equal(t, 0, got.AggregatedCount)
	})

	t.Run("unknown card surfaces not found", func(t *testing.T) {
		err := s.cards.AddCounts(ctx, NewID(), -1, -1)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCardStore_SetLinkedFeedback(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")
	action := createTestCard(t, s.cards, b.ID, b.Columns[0].ID, "a", models.CardTypeAction, testTime())
	feedback := createTestCard(t, s.cards, b.ID, b.Columns[0].ID, "a", models.CardTypeFeedback, testTime())

	n, err := s.cards.SetLinkedFeedback(ctx, action.ID, []string{feedback.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := s.cards.Get(ctx, action.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{feedback.ID}, got.LinkedFeedbackIds)

	resolved, err := s.cards.ByIDs(ctx, got.LinkedFeedbackIds)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, feedback.ID, resolved[0].ID)
}

func TestCardStore_CountFeedbackByAuthor(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")

	createTestCard(t, s.cards, b.ID, b.Columns[0].ID, "dana-hash", models.CardTypeFeedback, testTime())
	createTestCard(t, s.cards, b.ID, b.Columns[0].ID, "dana-hash", models.CardTypeFeedback, testTime())
	// Action cards and other authors never count.
	createTestCard(t, s.cards, b.ID, b.Columns[0].ID, "dana-hash", models.CardTypeAction, testTime())
	createTestCard(t, s.cards, b.ID, b.Columns[0].ID, "sam-hash", models.CardTypeFeedback, testTime())

	n, err := s.cards.CountFeedbackByAuthor(ctx, b.ID, "dana-hash")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.cards.CountFeedbackByAuthor(ctx, b.ID, "nobody-hash")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCardStore_UpdateMoveDelete(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")
	c := createTestCard(t, s.cards, b.ID, b.Columns[0].ID, "a", models.CardTypeFeedback, testTime())

	n, err := s.cards.UpdateContent(ctx, c.ID, "Sharper wording")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.cards.Move(ctx, c.ID, b.Columns[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := s.cards.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sharper wording", got.Content)
	assert.Equal(t, b.Columns[1].ID, got.ColumnID)

	require.NoError(t, s.cards.Delete(ctx, c.ID))
	assert.ErrorIs(t, s.cards.Delete(ctx, c.ID), ErrNotFound)

	n, err = s.cards.UpdateContent(ctx, c.ID, "gone")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCardStore_DeleteByBoard(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")
	other := createTestBoard(t, s.boards, "admin-hash")

	createTestCard(t, s.cards, b.ID, b.Columns[0].ID, "a", models.CardTypeFeedback, testTime())
	createTestCard(t, s.cards, b.ID, b.Columns[0].ID, "a", models.CardTypeFeedback, testTime())
	kept := createTestCard(t, s.cards, other.ID, other.Columns[0].ID, "a", models.CardTypeFeedback, testTime())

	n, err := s.cards.DeleteByBoard(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	remaining, err := s.cards.ListByBoard(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)
}
