package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retroboardhq/retroboard/pkg/models"
)

func TestReactionStore_Upsert(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")
	c := createTestCard(t, s.cards, b.ID, b.Columns[0].ID, "a", models.CardTypeFeedback, testTime())

	r, wasInsert, err := s.reactions.Upsert(ctx, UpsertReactionParams{
		ID:           NewID(),
		CardID:       c.ID,
		IdentityHash: "dana-hash",
		Alias:        "Dana",
		Kind:         "thumbs_up",
		CreatedAt:    testTime(),
	})
	require.NoError(t, err)
	assert.True(t, wasInsert)
	assert.Equal(t, "thumbs_up", r.Kind)

	// Same identity on the same card: the row is updated in place.
	r2, wasInsert, err := s.reactions.Upsert(ctx, UpsertReactionParams{
		ID:           NewID(),
		CardID:       c.ID,
		IdentityHash: "dana-hash",
		Alias:        "Dana",
		Kind:         "heart",
		CreatedAt:    testTime(),
	})
	require.NoError(t, err)
	assert.False(t, wasInsert)
	assert.Equal(t, r.ID, r2.ID)
	assert.Equal(t, "heart", r2.Kind)

	exists, err := s.reactions.Exists(ctx, c.ID, "dana-hash")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.reactions.Exists(ctx, c.ID, "sam-hash")
	require.NoError(t, err)
	assert.False(t, exists)

	n, err := s.reactions.CountByCard(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestReactionStore_Delete(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")
	c := createTestCard(t, s.cards, b.ID, b.Columns[0].ID, "a", models.CardTypeFeedback, testTime())

	_, _, err := s.reactions.Upsert(ctx, UpsertReactionParams{
		ID: NewID(), CardID: c.ID, IdentityHash: "dana-hash", Alias: "Dana", Kind: "thumbs_up", CreatedAt: testTime(),
	})
	require.NoError(t, err)

	n, err := s.reactions.Delete(ctx, c.ID, "dana-hash")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.reactions.Delete(ctx, c.ID, "dana-hash")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestReactionStore_CountByBoardAndIdentity(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")
	otherBoard := createTestBoard(t, s.boards, "admin-hash")

	c1 := createTestCard(t, s.cards, b.ID, b.Columns[0].ID, "a", models.CardTypeFeedback, testTime())
	c2 := createTestCard(t, s.cards, b.ID, b.Columns[0].ID, "a", models.CardTypeFeedback, testTime())
	elsewhere := createTestCard(t, s.cards, otherBoard.ID, otherBoard.Columns[0].ID, "a", models.CardTypeFeedback, testTime())

	for _, cardID := range []string{c1.ID, c2.ID, elsewhere.ID} {
		_, _, err := s.reactions.Upsert(ctx, UpsertReactionParams{
			ID: NewID(), CardID: cardID, IdentityHash: "dana-hash", Alias: "Dana", Kind: "thumbs_up", CreatedAt: testTime(),
		})
		require.NoError(t, err)
	}

	// Reactions on other boards never contribute to the quota count.
	n, err := s.reactions.CountByBoardAndIdentity(ctx, b.ID, "dana-hash")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.reactions.CountByBoardAndIdentity(ctx, otherBoard.ID, "dana-hash")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.reactions.CountByBoardAndIdentity(ctx, b.ID, "sam-hash")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestReactionStore_BulkDelete(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")
	c1 := createTestCard(t, s.cards, b.ID, b.Columns[0].ID, "a", models.CardTypeFeedback, testTime())
	c2 := createTestCard(t, s.cards, b.ID, b.Columns[0].ID, "a", models.CardTypeFeedback, testTime())

	for _, identity := range []string{"dana-hash", "sam-hash"} {
		for _, cardID := range []string{c1.ID, c2.ID} {
			_, _, err := s.reactions.Upsert(ctx, UpsertReactionParams{
				ID: NewID(), CardID: cardID, IdentityHash: identity, Alias: identity, Kind: "thumbs_up", CreatedAt: testTime(),
			})
			require.NoError(t, err)
		}
	}

	n, err := s.reactions.DeleteByCard(ctx, c1.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.reactions.DeleteByCards(ctx, []string{c1.ID, c2.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.reactions.DeleteByCards(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
