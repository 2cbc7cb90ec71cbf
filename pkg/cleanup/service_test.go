package cleanup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/retroboardhq/retroboard/pkg/clock"
	"github.com/retroboardhq/retroboard/pkg/models"
	"github.com/retroboardhq/retroboard/pkg/store"
	testdb "github.com/retroboardhq/retroboard/test/database"
)

func TestService_RemovesStaleSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	boards := store.NewBoardStore(client.Client)
	sessions := store.NewSessionStore(client.Client)

	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	b, err := boards.Create(context.Background(), store.CreateBoardParams{
		ID:            store.NewID(),
		Name:          "Janitor target",
		Columns:       []models.Column{{ID: store.NewID(), Name: "Went well"}},
		Admins:        []string{"admin-hash"},
		CreatorHash:   "admin-hash",
		ShareableLink: store.NewShareableLink(12),
		CreatedAt:     now,
	})
	require.NoError(t, err)

	_, err = sessions.Upsert(context.Background(), b.ID, "old-hash", "Old", now.Add(-40*24*time.Hour))
	require.NoError(t, err)
	_, err = sessions.Upsert(context.Background(), b.ID, "recent-hash", "Recent", now)
	require.NoError(t, err)

	svc := NewService(sessions, clock.NewFake(now), 10*time.Millisecond, 30*24*time.Hour)
	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool {
		_, err := sessions.Get(context.Background(), b.ID, "old-hash")
		return errors.Is(err, store.ErrNotFound)
	}, 5*time.Second, 10*time.Millisecond)

	_, err = sessions.Get(context.Background(), b.ID, "recent-hash")
	require.NoError(t, err)
}

func TestService_StartStopLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := store.NewSessionStore(client.Client)

	svc := NewService(sessions, clock.System{}, time.Hour, 24*time.Hour)

	svc.Start(context.Background())
	svc.Start(context.Background()) // second Start is a no-op
	svc.Stop()
	svc.Stop() // second Stop is a no-op

	// The service restarts cleanly after a stop.
	svc.Start(context.Background())
	svc.Stop()
}
