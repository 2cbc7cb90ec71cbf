package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/retroboardhq/retroboard/ent"
	"github.com/retroboardhq/retroboard/pkg/models"
	testdb "github.com/retroboardhq/retroboard/test/database"
)

// testStores bundles the four stores over one per-test database schema.
type testStores struct {
	boards    *BoardStore
	cards     *CardStore
	reactions *ReactionStore
	sessions  *SessionStore
}

func newTestStores(t *testing.T) *testStores {
	client := testdb.NewTestClient(t)
	return &testStores{
		boards:    NewBoardStore(client.Client),
		cards:     NewCardStore(client.Client),
		reactions: NewReactionStore(client.Client),
		sessions:  NewSessionStore(client.Client),
	}
}

func testTime() time.Time {
	return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
}

func createTestBoard(t *testing.T, boards *BoardStore, adminHash string) *ent.Board {
	t.Helper()
	b, err := boards.Create(context.Background(), CreateBoardParams{
		ID:   NewID(),
		Name: "Sprint 42 retro",
		Columns: []models.Column{
			{ID: NewID(), Name: "Went well"},
			{ID: NewID(), Name: "To improve"},
		},
		Admins:        []string{adminHash},
		CreatorHash:   adminHash,
		ShareableLink: NewShareableLink(12),
		CreatedAt:     testTime(),
	})
	require.NoError(t, err)
	return b
}

func createTestCard(t *testing.T, cards *CardStore, boardID, columnID, authorHash, cardType string, createdAt time.Time) *ent.Card {
	t.Helper()
	alias := "Dana"
	c, err := cards.Create(context.Background(), CreateCardParams{
		ID:             NewID(),
		BoardID:        boardID,
		ColumnID:       columnID,
		Content:        "Deploys took too long",
		CardType:       cardType,
		CreatedByHash:  authorHash,
		CreatedByAlias: &alias,
		CreatedAt:      createdAt,
	})
	require.NoError(t, err)
	return c
}
