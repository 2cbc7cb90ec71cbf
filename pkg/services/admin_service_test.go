package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retroboardhq/retroboard/pkg/models"
)

func TestAdminService_ClearBoardData(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")
	env.join(t, b.ID, "dana-hash", "Dana")

	c1 := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "One")
	c2 := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Two")
	require.NoError(t, env.reactionSvc.AddReaction(ctx, c1.ID, "sam-hash", "Sam", "thumbs_up"))
	require.NoError(t, env.reactionSvc.AddReaction(ctx, c2.ID, "sam-hash", "Sam", "thumbs_up"))

	stats, err := env.adminSvc.ClearBoardData(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Cards)
	assert.Equal(t, 2, stats.Reactions)
	assert.Equal(t, 0, stats.Sessions)

	result, err := env.cardSvc.ListCards(ctx, b.ID, models.CardFilter{}, false)
	require.NoError(t, err)
	assert.Zero(t, result.TotalCount)

	// The board and its sessions survive a clear.
	board, err := env.boardSvc.GetBoard(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, board.ActiveUsers, 1)

	_, err = env.adminSvc.ClearBoardData(ctx, "000000000000000000000000")
	assert.ErrorIs(t, err, ErrBoardNotFound)
}

func TestAdminService_ResetBoard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")
	env.join(t, b.ID, "dana-hash", "Dana")
	env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Stale card")
	env.closeBoard(t, b.ID, "creator-hash")

	stats, err := env.adminSvc.ResetBoard(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Cards)
	assert.Equal(t, 1, stats.Sessions)

	board, err := env.boardSvc.GetBoard(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "active", board.State)
	assert.Nil(t, board.ClosedAt)
	assert.Empty(t, board.ActiveUsers)
}

func TestAdminService_SeedBoard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")

	t.Run("validation", func(t *testing.T) {
		zero := 0
		one := 1
		tests := []struct {
			name string
			plan models.SeedPlan
		}{
			{"bad card type", models.SeedPlan{Cards: []models.SeedCard{
				{ColumnID: b.Columns[0].ID, Content: "x", CardType: "note"},
			}}},
			{"empty content", models.SeedPlan{Cards: []models.SeedCard{
				{ColumnID: b.Columns[0].ID, CardType: models.CardTypeFeedback},
			}}},
			{"unknown column", models.SeedPlan{Cards: []models.SeedCard{
				{ColumnID: "nope", Content: "x", CardType: models.CardTypeFeedback},
			}}},
			{"forward parent reference", models.SeedPlan{Cards: []models.SeedCard{
				{ColumnID: b.Columns[0].ID, Content: "x", CardType: models.CardTypeFeedback, ParentIndex: &one},
				{ColumnID: b.Columns[0].ID, Content: "y", CardType: models.CardTypeFeedback},
			}}},
			{"self parent reference", models.SeedPlan{Cards: []models.SeedCard{
				{ColumnID: b.Columns[0].ID, Content: "x", CardType: models.CardTypeFeedback, ParentIndex: &zero},
			}}},
			{"reaction index out of range", models.SeedPlan{
				Cards: []models.SeedCard{
					{ColumnID: b.Columns[0].ID, Content: "x", CardType: models.CardTypeFeedback},
				},
				Reactions: []models.SeedReaction{
					{CardIndex: 1, IdentityHash: "h", Alias: "A", Kind: "thumbs_up"},
				},
			}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := env.adminSvc.SeedBoard(ctx, b.ID, tt.plan)
				var validErr *ValidationError
				assert.ErrorAs(t, err, &validErr)
			})
		}
	})

	t.Run("seeds cards, links, and reactions", func(t *testing.T) {
		zero := 0
		ids, err := env.adminSvc.SeedBoard(ctx, b.ID, models.SeedPlan{
			Cards: []models.SeedCard{
				{ColumnID: b.Columns[0].ID, Content: "Theme", CardType: models.CardTypeFeedback, Alias: "Dana"},
				{ColumnID: b.Columns[0].ID, Content: "Detail", CardType: models.CardTypeFeedback, Alias: "Sam", ParentIndex: &zero},
				{ColumnID: b.Columns[2].ID, Content: "Follow up", CardType: models.CardTypeAction, IsAnonymous: true},
			},
			Reactions: []models.SeedReaction{
				{CardIndex: 1, IdentityHash: "voter-1", Alias: "Lee", Kind: "thumbs_up"},
				// The same identity twice collapses into one reaction.
				{CardIndex: 1, IdentityHash: "voter-1", Alias: "Lee", Kind: "heart"},
			},
		})
		require.NoError(t, err)
		require.Len(t, ids, 3)

		parent, err := env.cardSvc.GetCard(ctx, ids[0])
		require.NoError(t, err)
		assert.Equal(t, 0, parent.DirectCount)
		assert.Equal(t, 1, parent.AggregatedCount)
		require.Len(t, parent.Children, 1)
		assert.Equal(t, ids[1], parent.Children[0].ID)

		child, err := env.cardSvc.GetCard(ctx, ids[1])
		require.NoError(t, err)
		require.NotNil(t, child.ParentID)
		assert.Equal(t, ids[0], *child.ParentID)
		assert.Equal(t, 1, child.DirectCount)
		assert.Equal(t, 1, child.AggregatedCount)
		require.NotNil(t, child.CreatedByAlias)
		assert.Equal(t, "Sam", *child.CreatedByAlias)

		anon, err := env.cardSvc.GetCard(ctx, ids[2])
		require.NoError(t, err)
		assert.True(t, anon.IsAnonymous)
		assert.Nil(t, anon.CreatedByAlias)
	})
}

func TestAdminService_DeleteBoard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")
	env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Doomed")

	// The back channel deletes regardless of who created the board.
	require.NoError(t, env.adminSvc.DeleteBoard(ctx, b.ID))

	_, err := env.boardSvc.GetBoard(ctx, b.ID)
	assert.ErrorIs(t, err, ErrBoardNotFound)

	err = env.adminSvc.DeleteBoard(ctx, b.ID)
	assert.ErrorIs(t, err, ErrBoardNotFound)
}
