package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retroboardhq/retroboard/pkg/events"
	"github.com/retroboardhq/retroboard/pkg/models"
)

func TestReactionService_AddReaction(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")
	c := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Deploys were smooth")

	t.Run("first reaction bumps both counters", func(t *testing.T) {
		require.NoError(t, env.reactionSvc.AddReaction(ctx, c.ID, "sam-hash", "Sam", "thumbs_up"))

		got, err := env.cardSvc.GetCard(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.DirectCount)
		assert.Equal(t, 1, got.AggregatedCount)

		payload := env.lastEvent(t, events.EventReactionAdded).Payload.(events.ReactionAddedPayload)
		assert.Equal(t, c.ID, payload.CardID)
		assert.Equal(t, "thumbs_up", payload.Kind)
		assert.Equal(t, 1, payload.DirectCount)
		assert.Nil(t, payload.ParentID)
	})

	t.Run("changing kind leaves the counters alone", func(t *testing.T) {
		require.NoError(t, env.reactionSvc.AddReaction(ctx, c.ID, "sam-hash", "Sam", "heart"))

		got, err := env.cardSvc.GetCard(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.DirectCount)

		// The event still goes out so clients can repaint the kind.
		payload := env.lastEvent(t, events.EventReactionAdded).Payload.(events.ReactionAddedPayload)
		assert.Equal(t, "heart", payload.Kind)
		assert.Equal(t, 1, payload.DirectCount)
	})

	t.Run("validation", func(t *testing.T) {
		var validErr *ValidationError
		assert.ErrorAs(t, env.reactionSvc.AddReaction(ctx, c.ID, "sam-hash", "Sam", "  "), &validErr)
		assert.ErrorAs(t, env.reactionSvc.AddReaction(ctx, c.ID, "sam-hash", "Sam", strings.Repeat("x", 51)), &validErr)
	})

	t.Run("unknown card", func(t *testing.T) {
		err := env.reactionSvc.AddReaction(ctx, "000000000000000000000000", "sam-hash", "Sam", "thumbs_up")
		assert.ErrorIs(t, err, ErrCardNotFound)
	})
}

func TestReactionService_ParentAggregation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")
	parent := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Theme")
	child := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Detail")
	require.NoError(t, env.cardSvc.LinkCards(ctx, parent.ID, child.ID, models.LinkKindParentOf, "dana-hash"))

	t.Run("reacting to a child lifts the parent aggregate", func(t *testing.T) {
		require.NoError(t, env.reactionSvc.AddReaction(ctx, child.ID, "sam-hash", "Sam", "thumbs_up"))

		gotParent, err := env.cardSvc.GetCard(ctx, parent.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, gotParent.DirectCount)
		assert.Equal(t, 1, gotParent.AggregatedCount)

		payload := env.lastEvent(t, events.EventReactionAdded).Payload.(events.ReactionAddedPayload)
		require.NotNil(t, payload.ParentID)
		assert.Equal(t, parent.ID, *payload.ParentID)
		require.NotNil(t, payload.ParentAggregatedCount)
		assert.Equal(t, 1, *payload.ParentAggregatedCount)
	})

	t.Run("removing the reaction winds the aggregate back", func(t *testing.T) {
		require.NoError(t, env.reactionSvc.RemoveReaction(ctx, child.ID, "sam-hash"))

		gotParent, err := env.cardSvc.GetCard(ctx, parent.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, gotParent.AggregatedCount)

		payload := env.lastEvent(t, events.EventReactionRemoved).Payload.(events.ReactionRemovedPayload)
		assert.Equal(t, 0, payload.DirectCount)
		require.NotNil(t, payload.ParentAggregatedCount)
		assert.Equal(t, 0, *payload.ParentAggregatedCount)
	})
}

func TestReactionService_RemoveReaction(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")
	c := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Retro cadence")

	require.NoError(t, env.reactionSvc.AddReaction(ctx, c.ID, "sam-hash", "Sam", "thumbs_up"))

	t.Run("removes and decrements", func(t *testing.T) {
		require.NoError(t, env.reactionSvc.RemoveReaction(ctx, c.ID, "sam-hash"))

		got, err := env.cardSvc.GetCard(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.DirectCount)
		assert.Equal(t, 0, got.AggregatedCount)
	})

	t.Run("removing an absent reaction fails", func(t *testing.T) {
		err := env.reactionSvc.RemoveReaction(ctx, c.ID, "sam-hash")
		assert.ErrorIs(t, err, ErrReactionNotFound)
	})
}

func TestReactionService_ReactionQuota(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash", withReactionLimit(2))

	c1 := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "One")
	c2 := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Two")
	c3 := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Three")

	require.NoError(t, env.reactionSvc.AddReaction(ctx, c1.ID, "sam-hash", "Sam", "thumbs_up"))
	require.NoError(t, env.reactionSvc.AddReaction(ctx, c2.ID, "sam-hash", "Sam", "thumbs_up"))

	t.Run("the limit bites on the next new reaction", func(t *testing.T) {
		err := env.reactionSvc.AddReaction(ctx, c3.ID, "sam-hash", "Sam", "thumbs_up")
		var limitErr *LimitExceededError
		require.ErrorAs(t, err, &limitErr)
		assert.Equal(t, LimitKindReactions, limitErr.Kind)
		assert.Equal(t, 2, limitErr.Current)
		assert.Equal(t, 2, limitErr.Limit)
	})

	t.Run("changing kind is free at the limit", func(t *testing.T) {
		require.NoError(t, env.reactionSvc.AddReaction(ctx, c1.ID, "sam-hash", "Sam", "heart"))
	})

	t.Run("quota endpoint reports usage", func(t *testing.T) {
		quota, err := env.reactionSvc.CheckReactionQuota(ctx, b.ID, "sam-hash")
		require.NoError(t, err)
		assert.Equal(t, 2, quota.Current)
		assert.Equal(t, 2, quota.Limit)
		assert.False(t, quota.Allowed)
		assert.True(t, quota.LimitEnabled)
	})

	t.Run("no limit means unlimited", func(t *testing.T) {
		open := env.createBoard(t, "creator-hash")
		quota, err := env.reactionSvc.CheckReactionQuota(ctx, open.ID, "sam-hash")
		require.NoError(t, err)
		assert.True(t, quota.Allowed)
		assert.False(t, quota.LimitEnabled)
	})
}

func TestReactionService_ClosedBoard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")
	c := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Frozen card")
	require.NoError(t, env.reactionSvc.AddReaction(ctx, c.ID, "sam-hash", "Sam", "thumbs_up"))

	env.closeBoard(t, b.ID, "creator-hash")

	assert.ErrorIs(t, env.reactionSvc.AddReaction(ctx, c.ID, "lee-hash", "Lee", "thumbs_up"), ErrBoardClosed)
	assert.ErrorIs(t, env.reactionSvc.RemoveReaction(ctx, c.ID, "sam-hash"), ErrBoardClosed)
}
