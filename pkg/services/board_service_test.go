package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retroboardhq/retroboard/pkg/events"
	"github.com/retroboardhq/retroboard/pkg/models"
)

func TestBoardService_CreateBoard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("creator becomes sole admin", func(t *testing.T) {
		b, err := env.boardSvc.CreateBoard(ctx, "creator-hash", models.CreateBoardInput{
			Name:    "  Q1 retro  ",
			Columns: []models.Column{{Name: "Went well"}, {Name: "To improve"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "Q1 retro", b.Name)
		assert.Equal(t, []string{"creator-hash"}, b.Admins)
		assert.Equal(t, "creator-hash", b.CreatorHash)
		assert.Equal(t, "active", b.State)
		assert.Len(t, b.ShareableLink, 12)
		assert.Empty(t, b.ActiveUsers)
		for _, col := range b.Columns {
			assert.NotEmpty(t, col.ID)
		}
	})

	t.Run("limits are stored as given", func(t *testing.T) {
		b := env.createBoard(t, "creator-hash", withCardLimit(3), withReactionLimit(10))
		require.NotNil(t, b.CardLimit)
		assert.Equal(t, 3, *b.CardLimit)
		require.NotNil(t, b.ReactionLimit)
		assert.Equal(t, 10, *b.ReactionLimit)
	})

	t.Run("name length counts runes, not bytes", func(t *testing.T) {
		b, err := env.boardSvc.CreateBoard(ctx, "creator-hash", models.CreateBoardInput{
			Name:    strings.Repeat("ö", maxBoardNameLength),
			Columns: []models.Column{{Name: "A"}},
		})
		require.NoError(t, err)
		assert.Equal(t, maxBoardNameLength, utf8.RuneCountInString(b.Name))
	})

	t.Run("validation", func(t *testing.T) {
		zero := 0
		manyColumns := make([]models.Column, maxBoardColumns+1)
		for i := range manyColumns {
			manyColumns[i] = models.Column{Name: fmt.Sprintf("Col %d", i+1)}
		}
		tests := []struct {
			name string
			in   models.CreateBoardInput
		}{
			{"empty name", models.CreateBoardInput{Columns: []models.Column{{Name: "A"}}}},
			{"blank name", models.CreateBoardInput{Name: "   ", Columns: []models.Column{{Name: "A"}}}},
			{"no columns", models.CreateBoardInput{Name: "Retro"}},
			{"too many columns", models.CreateBoardInput{Name: "Retro", Columns: manyColumns}},
			{"name too long", models.CreateBoardInput{Name: strings.Repeat("x", maxBoardNameLength+1), Columns: []models.Column{{Name: "A"}}}},
			{"blank column name", models.CreateBoardInput{Name: "Retro", Columns: []models.Column{{Name: "  "}}}},
			{"zero card limit", models.CreateBoardInput{Name: "Retro", Columns: []models.Column{{Name: "A"}}, CardLimit: &zero}},
			{"zero reaction limit", models.CreateBoardInput{Name: "Retro", Columns: []models.Column{{Name: "A"}}, ReactionLimit: &zero}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := env.boardSvc.CreateBoard(ctx, "creator-hash", tt.in)
				var validErr *ValidationError
				assert.ErrorAs(t, err, &validErr)
			})
		}
	})
}

func TestBoardService_GetBoard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")

	env.join(t, b.ID, "creator-hash", "Dana")
	env.clk.Advance(time.Second)
	env.join(t, b.ID, "sam-hash", "Sam")

	t.Run("includes active participants", func(t *testing.T) {
		got, err := env.boardSvc.GetBoard(ctx, b.ID)
		require.NoError(t, err)
		require.Len(t, got.ActiveUsers, 2)
		assert.Equal(t, "Dana", got.ActiveUsers[0].Alias)
		assert.True(t, got.ActiveUsers[0].IsAdmin)
		assert.Equal(t, "Sam", got.ActiveUsers[1].Alias)
		assert.False(t, got.ActiveUsers[1].IsAdmin)
	})

	t.Run("sessions age out of the window", func(t *testing.T) {
		env.clk.Advance(testPresenceWindow + time.Second)
		got, err := env.boardSvc.GetBoard(ctx, b.ID)
		require.NoError(t, err)
		assert.Empty(t, got.ActiveUsers)
	})

	t.Run("resolves by shareable link", func(t *testing.T) {
		got, err := env.boardSvc.GetBoardByLink(ctx, b.ShareableLink)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID)
	})

	t.Run("unknown board", func(t *testing.T) {
		_, err := env.boardSvc.GetBoard(ctx, "000000000000000000000000")
		assert.ErrorIs(t, err, ErrBoardNotFound)
	})
}

func TestBoardService_RenameBoard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")

	t.Run("admin renames and the room hears about it", func(t *testing.T) {
		require.NoError(t, env.boardSvc.RenameBoard(ctx, b.ID, "creator-hash", "Renamed retro"))

		got, err := env.boardSvc.GetBoard(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed retro", got.Name)

		ev := env.lastEvent(t, events.EventBoardRenamed)
		assert.Equal(t, b.ID, ev.BoardID)
		assert.Equal(t, "Renamed retro", ev.Payload.(events.BoardRenamedPayload).Name)
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		err := env.boardSvc.RenameBoard(ctx, b.ID, "stranger-hash", "Hijacked")
		var forbidden *ForbiddenError
		require.ErrorAs(t, err, &forbidden)
		assert.Equal(t, "admin", forbidden.RequiredRole)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown board", func(t *testing.T) {
		err := env.boardSvc.RenameBoard(ctx, "000000000000000000000000", "creator-hash", "Name")
		assert.ErrorIs(t, err, ErrBoardNotFound)
	})

	t.Run("closed board rejects renames", func(t *testing.T) {
		env.closeBoard(t, b.ID, "creator-hash")
		err := env.boardSvc.RenameBoard(ctx, b.ID, "creator-hash", "Too late")
		assert.ErrorIs(t, err, ErrBoardClosed)
	})
}

func TestBoardService_RenameColumn(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")

	t.Run("renames one column, keeps the rest", func(t *testing.T) {
		require.NoError(t, env.boardSvc.RenameColumn(ctx, b.ID, "creator-hash", b.Columns[1].ID, "What dragged"))

		got, err := env.boardSvc.GetBoard(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "Went well", got.Columns[0].Name)
		assert.Equal(t, "What dragged", got.Columns[1].Name)

		ev := env.lastEvent(t, events.EventColumnRenamed)
		payload := ev.Payload.(events.ColumnRenamedPayload)
		assert.Equal(t, b.Columns[1].ID, payload.ColumnID)
		assert.Equal(t, "What dragged", payload.Name)
	})

	t.Run("unknown column", func(t *testing.T) {
		err := env.boardSvc.RenameColumn(ctx, b.ID, "creator-hash", "missing-col", "Name")
		assert.ErrorIs(t, err, ErrColumnNotFound)
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		err := env.boardSvc.RenameColumn(ctx, b.ID, "stranger-hash", b.Columns[0].ID, "Name")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestBoardService_CloseBoard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")

	t.Run("admin closes the board", func(t *testing.T) {
		require.NoError(t, env.boardSvc.CloseBoard(ctx, b.ID, "creator-hash"))

		got, err := env.boardSvc.GetBoard(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "closed", got.State)
		assert.NotNil(t, got.ClosedAt)

		require.Len(t, env.recorder.ByType(events.EventBoardClosed), 1)
	})

	t.Run("closing again succeeds without a second event", func(t *testing.T) {
		require.NoError(t, env.boardSvc.CloseBoard(ctx, b.ID, "creator-hash"))
		assert.Len(t, env.recorder.ByType(events.EventBoardClosed), 1)
	})

	t.Run("non-admin is rejected even when closed", func(t *testing.T) {
		err := env.boardSvc.CloseBoard(ctx, b.ID, "stranger-hash")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown board", func(t *testing.T) {
		err := env.boardSvc.CloseBoard(ctx, "000000000000000000000000", "creator-hash")
		assert.ErrorIs(t, err, ErrBoardNotFound)
	})
}

func TestBoardService_AddAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")
	env.join(t, b.ID, "sam-hash", "Sam")

	t.Run("target must have an active session", func(t *testing.T) {
		err := env.boardSvc.AddAdmin(ctx, b.ID, "creator-hash", "ghost-hash")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("creator grants admin", func(t *testing.T) {
		require.NoError(t, env.boardSvc.AddAdmin(ctx, b.ID, "creator-hash", "sam-hash"))

		got, err := env.boardSvc.GetBoard(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"creator-hash", "sam-hash"}, got.Admins)
	})

	t.Run("granting twice is a no-op", func(t *testing.T) {
		require.NoError(t, env.boardSvc.AddAdmin(ctx, b.ID, "creator-hash", "sam-hash"))

		got, err := env.boardSvc.GetBoard(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"creator-hash", "sam-hash"}, got.Admins)
	})

	t.Run("non-creator admins cannot grant", func(t *testing.T) {
		env.join(t, b.ID, "lee-hash", "Lee")
		err := env.boardSvc.AddAdmin(ctx, b.ID, "sam-hash", "lee-hash")
		var forbidden *ForbiddenError
		require.ErrorAs(t, err, &forbidden)
		assert.Equal(t, "creator", forbidden.RequiredRole)
	})

	t.Run("allowed on a closed board", func(t *testing.T) {
		env.join(t, b.ID, "lee-hash", "Lee")
		env.closeBoard(t, b.ID, "creator-hash")
		require.NoError(t, env.boardSvc.AddAdmin(ctx, b.ID, "creator-hash", "lee-hash"))
	})
}

func TestBoardService_DeleteBoard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")
	env.join(t, b.ID, "creator-hash", "Dana")
	env.join(t, b.ID, "sam-hash", "Sam")

	card := env.createCard(t, b.ID, b.Columns[0].ID, "sam-hash", "Flaky tests")
	require.NoError(t, env.reactionSvc.AddReaction(ctx, card.ID, "creator-hash", "Dana", "thumbs_up"))

	t.Run("admins who are not the creator cannot delete", func(t *testing.T) {
		require.NoError(t, env.boardSvc.AddAdmin(ctx, b.ID, "creator-hash", "sam-hash"))
		err := env.boardSvc.DeleteBoard(ctx, b.ID, "sam-hash")
		var forbidden *ForbiddenError
		require.ErrorAs(t, err, &forbidden)
		assert.Equal(t, "creator", forbidden.RequiredRole)
	})

	t.Run("creator delete cascades everything", func(t *testing.T) {
		require.NoError(t, env.boardSvc.DeleteBoard(ctx, b.ID, "creator-hash"))

		_, err := env.boardSvc.GetBoard(ctx, b.ID)
		assert.ErrorIs(t, err, ErrBoardNotFound)
		_, err = env.cardSvc.GetCard(ctx, card.ID)
		assert.ErrorIs(t, err, ErrCardNotFound)

		exists, err := env.reactions.Exists(ctx, card.ID, "creator-hash")
		require.NoError(t, err)
		assert.False(t, exists)

		active, err := env.sessions.ActiveSince(ctx, b.ID, env.clk.Now().Add(-testPresenceWindow))
		require.NoError(t, err)
		assert.Empty(t, active)

		ev := env.lastEvent(t, events.EventBoardDeleted)
		assert.Equal(t, b.ID, ev.BoardID)
	})

	t.Run("deleting a deleted board", func(t *testing.T) {
		err := env.boardSvc.DeleteBoard(ctx, b.ID, "creator-hash")
		assert.ErrorIs(t, err, ErrBoardNotFound)
	})
}
