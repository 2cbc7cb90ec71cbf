package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retroboardhq/retroboard/ent/board"
	"github.com/retroboardhq/retroboard/pkg/models"
)

func TestBoardStore_CreateAndGet(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()

	created := createTestBoard(t, s.boards, "admin-hash")

	got, err := s.boards.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Sprint 42 retro", got.Name)
	assert.Equal(t, []string{"admin-hash"}, got.Admins)
	assert.Equal(t, board.StateActive, got.State)
	assert.Nil(t, got.ClosedAt)
	assert.Nil(t, got.CardLimit)
	assert.Len(t, got.Columns, 2)
	assert.Equal(t, testTime(), got.CreatedAt)

	byLink, err := s.boards.GetByLink(ctx, created.ShareableLink)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byLink.ID)

	_, err = s.boards.Get(ctx, NewID())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.boards.GetByLink(ctx, "nosuchlink")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBoardStore_Create_DuplicateShareableLink(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()

	first := createTestBoard(t, s.boards, "admin-hash")

	_, err := s.boards.Create(ctx, CreateBoardParams{
		ID:            NewID(),
		Name:          "Another board",
		Columns:       []models.Column{{ID: NewID(), Name: "Only column"}},
		Admins:        []string{"other-hash"},
		CreatorHash:   "other-hash",
		ShareableLink: first.ShareableLink,
		CreatedAt:     testTime(),
	})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestBoardStore_Rename(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")

	t.Run("admin renames active board", func(t *testing.T) {
		n, err := s.boards.Rename(ctx, b.ID, "Renamed retro", "admin-hash")
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		got, err := s.boards.Get(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed retro", got.Name)
	})

	t.Run("non-admin matches no rows", func(t *testing.T) {
		n, err := s.boards.Rename(ctx, b.ID, "Hijacked", "stranger-hash")
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("closed board matches no rows", func(t *testing.T) {
		n, err := s.boards.Close(ctx, b.ID, "admin-hash", testTime())
		require.NoError(t, err)
		require.Equal(t, 1, n)

		n, err = s.boards.Rename(ctx, b.ID, "Too late", "admin-hash")
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}

func TestBoardStore_UpdateColumns(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")

	columns := make([]models.Column, len(b.Columns))
	copy(columns, b.Columns)
	columns[0].Name = "What rocked"

	n, err := s.boards.UpdateColumns(ctx, b.ID, "admin-hash", columns)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := s.boards.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "What rocked", got.Columns[0].Name)
	assert.Equal(t, b.Columns[1], got.Columns[1])

	n, err = s.boards.UpdateColumns(ctx, b.ID, "stranger-hash", columns)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestBoardStore_CloseAndReopen(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")
	closedAt := testTime().Add(time.Hour)

	n, err := s.boards.Close(ctx, b.ID, "admin-hash", closedAt)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := s.boards.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, board.StateClosed, got.State)
	require.NotNil(t, got.ClosedAt)
	assert.Equal(t, closedAt, *got.ClosedAt)

	// Closing again matches nothing: the state predicate no longer holds.
	n, err = s.boards.Close(ctx, b.ID, "admin-hash", closedAt)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = s.boards.Reopen(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err = s.boards.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, board.StateActive, got.State)
	assert.Nil(t, got.ClosedAt)
}

func TestBoardStore_SetAdmins(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "creator-hash")

	n, err := s.boards.SetAdmins(ctx, b.ID, []string{"creator-hash", "second-hash"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := s.boards.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"creator-hash", "second-hash"}, got.Admins)

	// The freshly granted admin passes the JSON containment predicate.
	n, err = s.boards.Rename(ctx, b.ID, "Renamed by second admin", "second-hash")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBoardStore_Delete(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	b := createTestBoard(t, s.boards, "admin-hash")

	require.NoError(t, s.boards.Delete(ctx, b.ID))

	_, err := s.boards.Get(ctx, b.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.boards.Delete(ctx, b.ID), ErrNotFound)
}
