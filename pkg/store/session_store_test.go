package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_Upsert(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")

	sess, err := s.sessions.Upsert(ctx, b.ID, "dana-hash", "Dana", testTime())
	require.NoError(t, err)
	assert.Equal(t, "Dana", sess.Alias)
	assert.Equal(t, testTime(), sess.LastActive)

	// Re-join refreshes alias and last_active on the same row.
	later := testTime().Add(time.Minute)
	again, err := s.sessions.Upsert(ctx, b.ID, "dana-hash", "Dana K", later)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, again.ID)
	assert.Equal(t, "Dana K", again.Alias)
	assert.Equal(t, later, again.LastActive)
	assert.Equal(t, testTime(), again.CreatedAt)
}

func TestSessionStore_TouchAndUpdateAlias(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")

	_, err := s.sessions.Upsert(ctx, b.ID, "dana-hash", "Dana", testTime())
	require.NoError(t, err)

	later := testTime().Add(30 * time.Second)
	n, err := s.sessions.Touch(ctx, b.ID, "dana-hash", later)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := s.sessions.Get(ctx, b.ID, "dana-hash")
	require.NoError(t, err)
	assert.Equal(t, later, got.LastActive)

	// Touching an absent session matches nothing.
	n, err = s.sessions.Touch(ctx, b.ID, "ghost-hash", later)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = s.sessions.UpdateAlias(ctx, b.ID, "dana-hash", "Dee", later)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err = s.sessions.Get(ctx, b.ID, "dana-hash")
	require.NoError(t, err)
	assert.Equal(t, "Dee", got.Alias)

	_, err = s.sessions.Get(ctx, b.ID, "ghost-hash")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_PresenceWindow(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")

	_, err := s.sessions.Upsert(ctx, b.ID, "fresh-hash", "Fresh", testTime())
	require.NoError(t, err)
	_, err = s.sessions.Upsert(ctx, b.ID, "stale-hash", "Stale", testTime().Add(-10*time.Minute))
	require.NoError(t, err)

	cutoff := testTime().Add(-2 * time.Minute)
	active, err := s.sessions.ActiveSince(ctx, b.ID, cutoff)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "fresh-hash", active[0].IdentityHash)

	ok, err := s.sessions.HasActiveSession(ctx, b.ID, "fresh-hash", cutoff)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.sessions.HasActiveSession(ctx, b.ID, "stale-hash", cutoff)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionStore_ActiveSince_OrdersByJoin(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")

	_, err := s.sessions.Upsert(ctx, b.ID, "second-hash", "Second", testTime().Add(time.Second))
	require.NoError(t, err)
	_, err = s.sessions.Upsert(ctx, b.ID, "first-hash", "First", testTime())
	require.NoError(t, err)

	// Ordered by join time, not by insertion order.
	active, err := s.sessions.ActiveSince(ctx, b.ID, testTime().Add(-time.Minute))
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "first-hash", active[0].IdentityHash)
	assert.Equal(t, "second-hash", active[1].IdentityHash)
}

func TestSessionStore_BulkDeletes(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")
	other := createTestBoard(t, s.boards, "admin-hash")

	_, err := s.sessions.Upsert(ctx, b.ID, "dana-hash", "Dana", testTime())
	require.NoError(t, err)
	_, err = s.sessions.Upsert(ctx, b.ID, "sam-hash", "Sam", testTime())
	require.NoError(t, err)
	_, err = s.sessions.Upsert(ctx, other.ID, "dana-hash", "Dana", testTime())
	require.NoError(t, err)

	n, err := s.sessions.DeleteByBoard(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = s.sessions.Get(ctx, other.ID, "dana-hash")
	require.NoError(t, err)
}

func TestSessionStore_DeleteInactiveBefore(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")

	_, err := s.sessions.Upsert(ctx, b.ID, "old-hash", "Old", testTime().Add(-40*24*time.Hour))
	require.NoError(t, err)
	_, err = s.sessions.Upsert(ctx, b.ID, "recent-hash", "Recent", testTime())
	require.NoError(t, err)

	n, err := s.sessions.DeleteInactiveBefore(ctx, testTime().Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = s.sessions.Get(ctx, b.ID, "old-hash")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.sessions.Get(ctx, b.ID, "recent-hash")
	require.NoError(t, err)
}
