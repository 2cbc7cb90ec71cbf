package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retroboardhq/retroboard/pkg/events"
)

func TestPresenceService_Join(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")

	t.Run("joins and reports admin status", func(t *testing.T) {
		res, err := env.presenceSvc.Join(ctx, b.ID, "creator-hash", "Dana")
		require.NoError(t, err)
		assert.True(t, res.IsAdmin)

		res, err = env.presenceSvc.Join(ctx, b.ID, "sam-hash", "Sam")
		require.NoError(t, err)
		assert.False(t, res.IsAdmin)
		assert.Equal(t, "Sam", res.Alias)

		payload := env.lastEvent(t, events.EventUserJoined).Payload.(events.UserJoinedPayload)
		assert.Equal(t, "sam-hash", payload.IdentityHash)
		assert.Equal(t, "Sam", payload.Alias)
		assert.False(t, payload.IsAdmin)
	})

	t.Run("alias is trimmed", func(t *testing.T) {
		res, err := env.presenceSvc.Join(ctx, b.ID, "lee-hash", "  Lee  ")
		require.NoError(t, err)
		assert.Equal(t, "Lee", res.Alias)
	})

	t.Run("alias length counts runes, not bytes", func(t *testing.T) {
		alias := strings.Repeat("ü", maxAliasLength)
		res, err := env.presenceSvc.Join(ctx, b.ID, "umlaut-hash", alias)
		require.NoError(t, err)
		assert.Equal(t, alias, res.Alias)
	})

	t.Run("validation", func(t *testing.T) {
		var validErr *ValidationError
		_, err := env.presenceSvc.Join(ctx, b.ID, "x-hash", "   ")
		assert.ErrorAs(t, err, &validErr)
		_, err = env.presenceSvc.Join(ctx, b.ID, "x-hash", strings.Repeat("a", 51))
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("unknown board", func(t *testing.T) {
		_, err := env.presenceSvc.Join(ctx, "000000000000000000000000", "sam-hash", "Sam")
		assert.ErrorIs(t, err, ErrBoardNotFound)
	})

	t.Run("closed boards still accept joins", func(t *testing.T) {
		env.closeBoard(t, b.ID, "creator-hash")
		_, err := env.presenceSvc.Join(ctx, b.ID, "late-hash", "Late")
		require.NoError(t, err)
	})
}

func TestPresenceService_Heartbeat(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")
	env.join(t, b.ID, "dana-hash", "Dana")

	t.Run("keeps the session inside the window", func(t *testing.T) {
		env.clk.Advance(testPresenceWindow - time.Second)
		require.NoError(t, env.presenceSvc.Heartbeat(ctx, b.ID, "dana-hash"))
		env.clk.Advance(testPresenceWindow - time.Second)

		active, err := env.presenceSvc.ActiveUsers(ctx, b.ID)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "Dana", active[0].Alias)
	})

	t.Run("without a session it is a no-op", func(t *testing.T) {
		require.NoError(t, env.presenceSvc.Heartbeat(ctx, b.ID, "ghost-hash"))

		active, err := env.presenceSvc.ActiveUsers(ctx, b.ID)
		require.NoError(t, err)
		assert.Len(t, active, 1)
	})
}

func TestPresenceService_UpdateAlias(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")
	env.join(t, b.ID, "dana-hash", "Dana")

	t.Run("renames and announces both aliases", func(t *testing.T) {
		require.NoError(t, env.presenceSvc.UpdateAlias(ctx, b.ID, "dana-hash", "Dee"))

		payload := env.lastEvent(t, events.EventUserAliasChanged).Payload.(events.UserAliasChangedPayload)
		assert.Equal(t, "Dana", payload.OldAlias)
		assert.Equal(t, "Dee", payload.NewAlias)

		active, err := env.presenceSvc.ActiveUsers(ctx, b.ID)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "Dee", active[0].Alias)
	})

	t.Run("requires an existing session", func(t *testing.T) {
		err := env.presenceSvc.UpdateAlias(ctx, b.ID, "ghost-hash", "Ghost")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("rejected on closed boards", func(t *testing.T) {
		env.closeBoard(t, b.ID, "creator-hash")
		err := env.presenceSvc.UpdateAlias(ctx, b.ID, "dana-hash", "Too late")
		assert.ErrorIs(t, err, ErrBoardClosed)
	})
}

func TestPresenceService_ActiveUsers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBoard(t, "creator-hash")

	env.join(t, b.ID, "creator-hash", "Dana")
	env.clk.Advance(time.Second)
	env.join(t, b.ID, "sam-hash", "Sam")

	t.Run("lists participants oldest first with admin flags", func(t *testing.T) {
		active, err := env.presenceSvc.ActiveUsers(ctx, b.ID)
		require.NoError(t, err)
		require.Len(t, active, 2)
		assert.Equal(t, "Dana", active[0].Alias)
		assert.True(t, active[0].IsAdmin)
		assert.Equal(t, "Sam", active[1].Alias)
		assert.False(t, active[1].IsAdmin)
	})

	t.Run("sessions age out of the window", func(t *testing.T) {
		env.clk.Advance(testPresenceWindow + time.Second)
		env.join(t, b.ID, "sam-hash", "Sam")

		active, err := env.presenceSvc.ActiveUsers(ctx, b.ID)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "Sam", active[0].Alias)
	})

	t.Run("unknown board", func(t *testing.T) {
		_, err := env.presenceSvc.ActiveUsers(ctx, "000000000000000000000000")
		assert.ErrorIs(t, err, ErrBoardNotFound)
	})
}
