package services

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retroboardhq/retroboard/pkg/events"
	"github.com/retroboardhq/retroboard/pkg/models"
)

func TestCardService_CreateCard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")
	env.join(t, b.ID, "dana-hash", "Dana")

	t.Run("card carries the author's session alias", func(t *testing.T) {
		c, err := env.cardSvc.CreateCard(ctx, b.ID, "dana-hash", models.CreateCardInput{
			ColumnID: b.Columns[0].ID,
			Content:  "Pairing worked great",
			CardType: models.CardTypeFeedback,
		})
		require.NoError(t, err)
		assert.Equal(t, b.ID, c.BoardID)
		require.NotNil(t, c.CreatedByAlias)
		assert.Equal(t, "Dana", *c.CreatedByAlias)
		assert.Equal(t, 0, c.DirectCount)

		ev := env.lastEvent(t, events.EventCardCreated)
		payload := ev.Payload.(events.CardCreatedPayload)
		assert.Equal(t, c.ID, payload.Card.ID)
		assert.Equal(t, "Pairing worked great", payload.Card.Content)
	})

	t.Run("anonymous card never exposes the alias", func(t *testing.T) {
		c, err := env.cardSvc.CreateCard(ctx, b.ID, "dana-hash", models.CreateCardInput{
			ColumnID:    b.Columns[0].ID,
			Content:     "Standups run too long",
			CardType:    models.CardTypeFeedback,
			IsAnonymous: true,
		})
		require.NoError(t, err)
		assert.True(t, c.IsAnonymous)
		assert.Nil(t, c.CreatedByAlias)
		// The hash stays for authorization checks.
		assert.Equal(t, "dana-hash", c.CreatedByHash)

		payload := env.lastEvent(t, events.EventCardCreated).Payload.(events.CardCreatedPayload)
		assert.Nil(t, payload.Card.CreatedByAlias)
	})

	t.Run("request alias covers a sessionless author", func(t *testing.T) {
		c, err := env.cardSvc.CreateCard(ctx, b.ID, "drive-by-hash", models.CreateCardInput{
			ColumnID: b.Columns[0].ID,
			Content:  "Lurker feedback",
			CardType: models.CardTypeFeedback,
			Alias:    "Lurker",
		})
		require.NoError(t, err)
		require.NotNil(t, c.CreatedByAlias)
		assert.Equal(t, "Lurker", *c.CreatedByAlias)
	})

	t.Run("named cards need an alias from somewhere", func(t *testing.T) {
		_, err := env.cardSvc.CreateCard(ctx, b.ID, "ghost-hash", models.CreateCardInput{
			ColumnID: b.Columns[0].ID,
			Content:  "No name attached",
			CardType: models.CardTypeFeedback,
		})
		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "alias", validErr.Field)
	})

	t.Run("content length counts runes, not bytes", func(t *testing.T) {
		c, err := env.cardSvc.CreateCard(ctx, b.ID, "dana-hash", models.CreateCardInput{
			ColumnID: b.Columns[0].ID,
			Content:  strings.Repeat("é", maxCardContentLength),
			CardType: models.CardTypeFeedback,
		})
		require.NoError(t, err)
		assert.Equal(t, maxCardContentLength, utf8.RuneCountInString(c.Content))

		_, err = env.cardSvc.CreateCard(ctx, b.ID, "dana-hash", models.CreateCardInput{
			ColumnID: b.Columns[0].ID,
			Content:  strings.Repeat("é", maxCardContentLength+1),
			CardType: models.CardTypeFeedback,
		})
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := env.cardSvc.CreateCard(ctx, b.ID, "dana-hash", models.CreateCardInput{
			ColumnID: "missing-col",
			Content:  "Nowhere to go",
			CardType: models.CardTypeFeedback,
		})
		assert.ErrorIs(t, err, ErrColumnNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name string
			in   models.CreateCardInput
		}{
			{"empty content", models.CreateCardInput{ColumnID: b.Columns[0].ID, CardType: models.CardTypeFeedback}},
			{"blank content", models.CreateCardInput{ColumnID: b.Columns[0].ID, Content: "  ", CardType: models.CardTypeFeedback}},
			{"bad card type", models.CreateCardInput{ColumnID: b.Columns[0].ID, Content: "x", CardType: "note"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := env.cardSvc.CreateCard(ctx, b.ID, "dana-hash", tt.in)
				var validErr *ValidationError
				assert.ErrorAs(t, err, &validErr)
			})
		}
	})

	t.Run("closed board rejects new cards", func(t *testing.T) {
		closed := env.createBoard(t, "creator-hash")
		env.closeBoard(t, closed.ID, "creator-hash")
		_, err := env.cardSvc.CreateCard(ctx, closed.ID, "dana-hash", models.CreateCardInput{
			ColumnID: closed.Columns[0].ID,
			Content:  "Too late",
			CardType: models.CardTypeFeedback,
		})
		assert.ErrorIs(t, err, ErrBoardClosed)
	})
}

func TestCardService_CardQuota(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash", withCardLimit(2))

	env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "First")
	env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Second")

	t.Run("the limit bites exactly at the boundary", func(t *testing.T) {
		_, err := env.cardSvc.CreateCard(ctx, b.ID, "dana-hash", models.CreateCardInput{
			ColumnID: b.Columns[0].ID,
			Content:  "Third",
			CardType: models.CardTypeFeedback,
		})
		var limitErr *LimitExceededError
		require.ErrorAs(t, err, &limitErr)
		assert.Equal(t, LimitKindCards, limitErr.Kind)
		assert.Equal(t, 2, limitErr.Current)
		assert.Equal(t, 2, limitErr.Limit)
		assert.ErrorIs(t, err, ErrLimitExceeded)
	})

	t.Run("action cards are exempt", func(t *testing.T) {
		env.createActionCard(t, b.ID, b.Columns[2].ID, "dana-hash", "Fix the pipeline")
	})

	t.Run("per identity, not per board", func(t *testing.T) {
		env.createCard(t, b.ID, b.Columns[0].ID, "sam-hash", "Sam still has room")
	})

	t.Run("quota endpoint reports usage", func(t *testing.T) {
		quota, err := env.cardSvc.CheckCardQuota(ctx, b.ID, "dana-hash")
		require.NoError(t, err)
		assert.Equal(t, 2, quota.Current)
		assert.Equal(t, 2, quota.Limit)
		assert.False(t, quota.Allowed)
		assert.True(t, quota.LimitEnabled)
	})

	t.Run("no board limit means unlimited", func(t *testing.T) {
		open := env.createBoard(t, "creator-hash")
		quota, err := env.cardSvc.CheckCardQuota(ctx, open.ID, "dana-hash")
		require.NoError(t, err)
		assert.True(t, quota.Allowed)
		assert.False(t, quota.LimitEnabled)
	})

	t.Run("server default applies when the board has none", func(t *testing.T) {
		one := 1
		cfg := env.cfg
		cfg.DefaultCardLimit = &one
		svc := NewCardService(env.boards, env.cards, env.reactions, env.sessions, env.recorder, env.clk, cfg)

		open := env.createBoard(t, "creator-hash")
		_, err := svc.CreateCard(ctx, open.ID, "dana-hash", models.CreateCardInput{
			ColumnID: open.Columns[0].ID,
			Content:  "First on a default-limited board",
			CardType: models.CardTypeFeedback,
			Alias:    "Dana",
		})
		require.NoError(t, err)

		_, err = svc.CreateCard(ctx, open.ID, "dana-hash", models.CreateCardInput{
			ColumnID: open.Columns[0].ID,
			Content:  "Second should fail",
			CardType: models.CardTypeFeedback,
			Alias:    "Dana",
		})
		assert.ErrorIs(t, err, ErrLimitExceeded)
	})
}

func TestCardService_UpdateCard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")
	c := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Rough draft")

	t.Run("creator updates content", func(t *testing.T) {
		require.NoError(t, env.cardSvc.UpdateCard(ctx, c.ID, "dana-hash", "Polished wording"))

		got, err := env.cardSvc.GetCard(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Polished wording", got.Content)

		payload := env.lastEvent(t, events.EventCardUpdated).Payload.(events.CardUpdatedPayload)
		assert.Equal(t, c.ID, payload.CardID)
		assert.Equal(t, "Polished wording", payload.Content)
	})

	t.Run("admins cannot edit someone else's card", func(t *testing.T) {
		err := env.cardSvc.UpdateCard(ctx, c.ID, "creator-hash", "Admin override")
		var forbidden *ForbiddenError
		require.ErrorAs(t, err, &forbidden)
		assert.Equal(t, "author", forbidden.RequiredRole)
	})

	t.Run("unknown card", func(t *testing.T) {
		err := env.cardSvc.UpdateCard(ctx, "000000000000000000000000", "dana-hash", "x")
		assert.ErrorIs(t, err, ErrCardNotFound)
	})

	t.Run("closed board", func(t *testing.T) {
		env.closeBoard(t, b.ID, "creator-hash")
		err := env.cardSvc.UpdateCard(ctx, c.ID, "dana-hash", "Too late")
		assert.ErrorIs(t, err, ErrBoardClosed)
	})
}

func TestCardService_MoveCard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")
	c := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Wandering card")

	t.Run("creator moves across columns", func(t *testing.T) {
		require.NoError(t, env.cardSvc.MoveCard(ctx, c.ID, "dana-hash", b.Columns[1].ID))

		got, err := env.cardSvc.GetCard(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, b.Columns[1].ID, got.ColumnID)

		payload := env.lastEvent(t, events.EventCardMoved).Payload.(events.CardMovedPayload)
		assert.Equal(t, b.Columns[1].ID, payload.ColumnID)
	})

	t.Run("unknown target column", func(t *testing.T) {
		err := env.cardSvc.MoveCard(ctx, c.ID, "dana-hash", "missing-col")
		assert.ErrorIs(t, err, ErrColumnNotFound)
	})

	t.Run("only the creator moves a card", func(t *testing.T) {
		err := env.cardSvc.MoveCard(ctx, c.ID, "creator-hash", b.Columns[0].ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("moving keeps the parent link", func(t *testing.T) {
		child := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Child")
		require.NoError(t, env.cardSvc.LinkCards(ctx, c.ID, child.ID, models.LinkKindParentOf, "dana-hash"))

		require.NoError(t, env.cardSvc.MoveCard(ctx, child.ID, "dana-hash", b.Columns[1].ID))

		got, err := env.cardSvc.GetCard(ctx, child.ID)
		require.NoError(t, err)
		require.NotNil(t, got.ParentID)
		assert.Equal(t, c.ID, *got.ParentID)
	})
}

func TestCardService_ListCards(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")

	parent := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Parent theme")
	child := env.createCard(t, b.ID, b.Columns[0].ID, "sam-hash", "Child detail")
	action := env.createActionCard(t, b.ID, b.Columns[2].ID, "dana-hash", "Do the thing")
	require.NoError(t, env.cardSvc.LinkCards(ctx, parent.ID, child.ID, models.LinkKindParentOf, "dana-hash"))
	require.NoError(t, env.cardSvc.LinkCards(ctx, action.ID, parent.ID, models.LinkKindLinkedTo, "dana-hash"))

	t.Run("nests children and resolves links", func(t *testing.T) {
		result, err := env.cardSvc.ListCards(ctx, b.ID, models.CardFilter{}, true)
		require.NoError(t, err)

		assert.Equal(t, 3, result.TotalCount)
		assert.Equal(t, 2, result.CardsByColumn[b.Columns[0].ID])
		assert.Equal(t, 1, result.CardsByColumn[b.Columns[2].ID])

		// Only top-level cards in the listing; the child hangs off its parent.
		require.Len(t, result.Cards, 2)
		byID := make(map[string]models.CardView)
		for _, c := range result.Cards {
			byID[c.ID] = c
		}
		gotParent := byID[parent.ID]
		require.Len(t, gotParent.Children, 1)
		assert.Equal(t, child.ID, gotParent.Children[0].ID)

		gotAction := byID[action.ID]
		require.Len(t, gotAction.LinkedFeedbackCard, 1)
		assert.Equal(t, parent.ID, gotAction.LinkedFeedbackCard[0].ID)
	})

	t.Run("flat listing includes children", func(t *testing.T) {
		result, err := env.cardSvc.ListCards(ctx, b.ID, models.CardFilter{}, false)
		require.NoError(t, err)
		assert.Len(t, result.Cards, 3)
	})

	t.Run("filters by column and type", func(t *testing.T) {
		result, err := env.cardSvc.ListCards(ctx, b.ID, models.CardFilter{ColumnID: b.Columns[2].ID}, true)
		require.NoError(t, err)
		require.Len(t, result.Cards, 1)
		assert.Equal(t, action.ID, result.Cards[0].ID)
		// Totals describe the whole board, not the filtered slice.
		assert.Equal(t, 3, result.TotalCount)

		result, err = env.cardSvc.ListCards(ctx, b.ID, models.CardFilter{CardType: models.CardTypeAction}, true)
		require.NoError(t, err)
		require.Len(t, result.Cards, 1)
		assert.Equal(t, action.ID, result.Cards[0].ID)
	})

	t.Run("unknown board", func(t *testing.T) {
		_, err := env.cardSvc.ListCards(ctx, "000000000000000000000000", models.CardFilter{}, true)
		assert.ErrorIs(t, err, ErrBoardNotFound)
	})
}

func TestCardService_LinkCards_ParentOf(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")

	parent := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Theme")
	child := env.createCard(t, b.ID, b.Columns[0].ID, "sam-hash", "Detail")

	// Give the child a vote so linking has something to fold in.
	require.NoError(t, env.reactionSvc.AddReaction(ctx, child.ID, "lee-hash", "Lee", "thumbs_up"))

	t.Run("linking folds the child's votes into the parent", func(t *testing.T) {
		require.NoError(t, env.cardSvc.LinkCards(ctx, parent.ID, child.ID, models.LinkKindParentOf, "dana-hash"))

		got, err := env.cardSvc.GetCard(ctx, parent.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.DirectCount)
		assert.Equal(t, 1, got.AggregatedCount)

		payload := env.lastEvent(t, events.EventCardLinked).Payload.(events.CardLinkedPayload)
		assert.Equal(t, parent.ID, payload.SourceID)
		assert.Equal(t, child.ID, payload.TargetID)
		require.NotNil(t, payload.SourceAggregatedCount)
		assert.Equal(t, 1, *payload.SourceAggregatedCount)
	})

	t.Run("a linked child cannot get a second parent", func(t *testing.T) {
		other := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Another theme")
		err := env.cardSvc.LinkCards(ctx, other.ID, child.ID, models.LinkKindParentOf, "dana-hash")
		assert.ErrorIs(t, err, ErrAlreadyLinked)
	})

	t.Run("a child cannot become a parent", func(t *testing.T) {
		grandchild := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Too deep")
		err := env.cardSvc.LinkCards(ctx, child.ID, grandchild.ID, models.LinkKindParentOf, "sam-hash")
		assert.ErrorIs(t, err, ErrCircularRelationship)
	})

	t.Run("a parent cannot become a child", func(t *testing.T) {
		umbrella := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Umbrella theme")
		err := env.cardSvc.LinkCards(ctx, umbrella.ID, parent.ID, models.LinkKindParentOf, "dana-hash")
		assert.ErrorIs(t, err, ErrCircularRelationship)

		// The grouping stays one level deep: the child's parent is unchanged.
		got, err := env.cardSvc.GetCard(ctx, parent.ID)
		require.NoError(t, err)
		assert.Nil(t, got.ParentID)
	})

	t.Run("self links are circular", func(t *testing.T) {
		err := env.cardSvc.LinkCards(ctx, parent.ID, parent.ID, models.LinkKindParentOf, "dana-hash")
		assert.ErrorIs(t, err, ErrCircularRelationship)
	})

	t.Run("reversing the link would be a cycle", func(t *testing.T) {
		err := env.cardSvc.LinkCards(ctx, child.ID, parent.ID, models.LinkKindParentOf, "sam-hash")
		assert.ErrorIs(t, err, ErrCircularRelationship)
	})

	t.Run("parent_of requires feedback on both ends", func(t *testing.T) {
		action := env.createActionCard(t, b.ID, b.Columns[2].ID, "dana-hash", "Do it")
		free := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Unlinked")
		err := env.cardSvc.LinkCards(ctx, action.ID, free.ID, models.LinkKindParentOf, "dana-hash")
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("cards must share a board", func(t *testing.T) {
		elsewhere := env.createBoard(t, "creator-hash")
		foreign := env.createCard(t, elsewhere.ID, elsewhere.Columns[0].ID, "dana-hash", "Foreign")
		free := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Local")
		err := env.cardSvc.LinkCards(ctx, free.ID, foreign.ID, models.LinkKindParentOf, "dana-hash")
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("authorized for source creator or board admin", func(t *testing.T) {
		a := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "A")
		c := env.createCard(t, b.ID, b.Columns[0].ID, "sam-hash", "C")

		err := env.cardSvc.LinkCards(ctx, a.ID, c.ID, models.LinkKindParentOf, "lee-hash")
		assert.ErrorIs(t, err, ErrForbidden)

		// The board admin may link cards they did not create.
		require.NoError(t, env.cardSvc.LinkCards(ctx, a.ID, c.ID, models.LinkKindParentOf, "creator-hash"))
	})

	t.Run("unknown kind", func(t *testing.T) {
		a := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "X")
		c := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Y")
		err := env.cardSvc.LinkCards(ctx, a.ID, c.ID, "related_to", "dana-hash")
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})
}

func TestCardService_UnlinkCards_ParentOf(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")
	parent := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Theme")
	child := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Detail")

	require.NoError(t, env.reactionSvc.AddReaction(ctx, child.ID, "lee-hash", "Lee", "thumbs_up"))
	require.NoError(t, env.cardSvc.LinkCards(ctx, parent.ID, child.ID, models.LinkKindParentOf, "dana-hash"))

	t.Run("unlinking gives the votes back", func(t *testing.T) {
		require.NoError(t, env.cardSvc.UnlinkCards(ctx, parent.ID, child.ID, models.LinkKindParentOf, "dana-hash"))

		gotParent, err := env.cardSvc.GetCard(ctx, parent.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, gotParent.AggregatedCount)

		gotChild, err := env.cardSvc.GetCard(ctx, child.ID)
		require.NoError(t, err)
		assert.Nil(t, gotChild.ParentID)
		assert.Equal(t, 1, gotChild.DirectCount)

		payload := env.lastEvent(t, events.EventCardUnlinked).Payload.(events.CardLinkedPayload)
		require.NotNil(t, payload.SourceAggregatedCount)
		assert.Equal(t, 0, *payload.SourceAggregatedCount)
	})

	t.Run("unlinking an absent link fails", func(t *testing.T) {
		err := env.cardSvc.UnlinkCards(ctx, parent.ID, child.ID, models.LinkKindParentOf, "dana-hash")
		assert.ErrorIs(t, err, ErrCardNotFound)
	})
}

func TestCardService_LinkCards_LinkedTo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")
	action := env.createActionCard(t, b.ID, b.Columns[2].ID, "dana-hash", "Automate the release")
	feedback := env.createCard(t, b.ID, b.Columns[0].ID, "sam-hash", "Releases are manual")

	t.Run("action links to feedback", func(t *testing.T) {
		require.NoError(t, env.cardSvc.LinkCards(ctx, action.ID, feedback.ID, models.LinkKindLinkedTo, "dana-hash"))

		got, err := env.cardSvc.GetCard(ctx, action.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{feedback.ID}, got.LinkedFeedbackIDs)
		require.Len(t, got.LinkedFeedbackCard, 1)
		assert.Equal(t, feedback.ID, got.LinkedFeedbackCard[0].ID)
	})

	t.Run("relinking is a silent no-op", func(t *testing.T) {
		before := len(env.recorder.ByType(events.EventCardLinked))
		require.NoError(t, env.cardSvc.LinkCards(ctx, action.ID, feedback.ID, models.LinkKindLinkedTo, "dana-hash"))
		assert.Len(t, env.recorder.ByType(events.EventCardLinked), before)
	})

	t.Run("source must be an action card", func(t *testing.T) {
		other := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Feedback source")
		err := env.cardSvc.LinkCards(ctx, other.ID, feedback.ID, models.LinkKindLinkedTo, "dana-hash")
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("target must be a feedback card", func(t *testing.T) {
		otherAction := env.createActionCard(t, b.ID, b.Columns[2].ID, "dana-hash", "Another action")
		err := env.cardSvc.LinkCards(ctx, action.ID, otherAction.ID, models.LinkKindLinkedTo, "dana-hash")
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("unlink removes the reference", func(t *testing.T) {
		require.NoError(t, env.cardSvc.UnlinkCards(ctx, action.ID, feedback.ID, models.LinkKindLinkedTo, "dana-hash"))

		got, err := env.cardSvc.GetCard(ctx, action.ID)
		require.NoError(t, err)
		assert.Empty(t, got.LinkedFeedbackIDs)

		// Unlinking again is a no-op, not an error.
		require.NoError(t, env.cardSvc.UnlinkCards(ctx, action.ID, feedback.ID, models.LinkKindLinkedTo, "dana-hash"))
	})
}

func TestCardService_DeleteCard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")

	parent := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Theme")
	child := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Detail")
	require.NoError(t, env.reactionSvc.AddReaction(ctx, child.ID, "lee-hash", "Lee", "thumbs_up"))
	require.NoError(t, env.cardSvc.LinkCards(ctx, parent.ID, child.ID, models.LinkKindParentOf, "dana-hash"))

	t.Run("only the creator deletes", func(t *testing.T) {
		err := env.cardSvc.DeleteCard(ctx, child.ID, "creator-hash")
		var forbidden *ForbiddenError
		require.ErrorAs(t, err, &forbidden)
		assert.Equal(t, "author", forbidden.RequiredRole)
	})

	t.Run("deleting a child returns its votes to the parent", func(t *testing.T) {
		gotParent, err := env.cardSvc.GetCard(ctx, parent.ID)
		require.NoError(t, err)
		require.Equal(t, 1, gotParent.AggregatedCount)

		require.NoError(t, env.cardSvc.DeleteCard(ctx, child.ID, "dana-hash"))

		gotParent, err = env.cardSvc.GetCard(ctx, parent.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, gotParent.AggregatedCount)

		// The child's reactions went with it.
		exists, err := env.reactions.Exists(ctx, child.ID, "lee-hash")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("deleting a parent orphans the children", func(t *testing.T) {
		kid1 := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Kid one")
		kid2 := env.createCard(t, b.ID, b.Columns[0].ID, "dana-hash", "Kid two")
		require.NoError(t, env.cardSvc.LinkCards(ctx, parent.ID, kid1.ID, models.LinkKindParentOf, "dana-hash"))
		require.NoError(t, env.cardSvc.LinkCards(ctx, parent.ID, kid2.ID, models.LinkKindParentOf, "dana-hash"))

		require.NoError(t, env.cardSvc.DeleteCard(ctx, parent.ID, "dana-hash"))

		payload := env.lastEvent(t, events.EventCardDeleted).Payload.(events.CardDeletedPayload)
		assert.Equal(t, parent.ID, payload.CardID)
		assert.ElementsMatch(t, []string{kid1.ID, kid2.ID}, payload.OrphanedIDs)

		got, err := env.cardSvc.GetCard(ctx, kid1.ID)
		require.NoError(t, err)
		assert.Nil(t, got.ParentID)
	})

	t.Run("unknown card", func(t *testing.T) {
		err := env.cardSvc.DeleteCard(ctx, parent.ID, "dana-hash")
		assert.ErrorIs(t, err, ErrCardNotFound)
	})
}
