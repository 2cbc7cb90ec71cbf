package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/retroboardhq/retroboard/pkg/clock"
	"github.com/retroboardhq/retroboard/pkg/events"
	"github.com/retroboardhq/retroboard/pkg/models"
	"github.com/retroboardhq/retroboard/pkg/store"
	testdb "github.com/retroboardhq/retroboard/test/database"
)

const testPresenceWindow = 2 * time.Minute

// testEnv wires the full service stack over a per-test database schema, with
// a pinned clock and an event recorder instead of the WebSocket gateway.
type testEnv struct {
	boards    *store.BoardStore
	cards     *store.CardStore
	reactions *store.ReactionStore
	sessions  *store.SessionStore

	recorder *events.Recorder
	clk      *clock.Fake
	cfg      Config

	boardSvc    *BoardService
	cardSvc     *CardService
	reactionSvc *ReactionService
	presenceSvc *PresenceService
	adminSvc    *AdminService
}

func newTestEnv(t *testing.T) *testEnv {
	client := testdb.NewTestClient(t)

	env := &testEnv{
		boards:    store.NewBoardStore(client.Client),
		cards:     store.NewCardStore(client.Client),
		reactions: store.NewReactionStore(client.Client),
		sessions:  store.NewSessionStore(client.Client),
		recorder:  events.NewRecorder(),
		clk:       clock.NewFake(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)),
		cfg: Config{
			PresenceWindow:          testPresenceWindow,
			ShareableLinkLength:     12,
			ShareableLinkRetryCount: 5,
		},
	}
	env.boardSvc = NewBoardService(env.boards, env.cards, env.reactions, env.sessions, env.recorder, env.clk, env.cfg)
	env.cardSvc = NewCardService(env.boards, env.cards, env.reactions, env.sessions, env.recorder, env.clk, env.cfg)
	env.reactionSvc = NewReactionService(env.boards, env.cards, env.reactions, env.sessions, env.recorder, env.clk, env.cfg)
	env.presenceSvc = NewPresenceService(env.boards, env.sessions, env.recorder, env.clk, env.cfg)
	env.adminSvc = NewAdminService(env.boards, env.cards, env.reactions, env.sessions, env.boardSvc, env.clk)
	return env
}

// createBoard creates a three-column board owned by creator.
func (e *testEnv) createBoard(t *testing.T, creator string, opts ...func(*models.CreateBoardInput)) *models.BoardView {
	t.Helper()
	in := models.CreateBoardInput{
		Name: "Sprint 42 retro",
		Columns: []models.Column{
			{Name: "Went well"},
			{Name: "To improve"},
			{Name: "Actions"},
		},
	}
	for _, opt := range opts {
		opt(&in)
	}
	b, err := e.boardSvc.CreateBoard(context.Background(), creator, in)
	require.NoError(t, err)
	return b
}

func withCardLimit(limit int) func(*models.CreateBoardInput) {
	return func(in *models.CreateBoardInput) { in.CardLimit = &limit }
}

func withReactionLimit(limit int) func(*models.CreateBoardInput) {
	return func(in *models.CreateBoardInput) { in.ReactionLimit = &limit }
}

// join registers a presence session for the identity.
func (e *testEnv) join(t *testing.T, boardID, identityHash, alias string) {
	t.Helper()
	_, err := e.presenceSvc.Join(context.Background(), boardID, identityHash, alias)
	require.NoError(t, err)
}

// createCard creates a feedback card in the board's first column.
func (e *testEnv) createCard(t *testing.T, boardID, columnID, identityHash, content string) *models.CardView {
	t.Helper()
	c, err := e.cardSvc.CreateCard(context.Background(), boardID, identityHash, models.CreateCardInput{
		ColumnID: columnID,
		Content:  content,
		CardType: models.CardTypeFeedback,
		Alias:    "Author",
	})
	require.NoError(t, err)
	return c
}

// createActionCard creates an action card in the given column.
func (e *testEnv) createActionCard(t *testing.T, boardID, columnID, identityHash, content string) *models.CardView {
	t.Helper()
	c, err := e.cardSvc.CreateCard(context.Background(), boardID, identityHash, models.CreateCardInput{
		ColumnID: columnID,
		Content:  content,
		CardType: models.CardTypeAction,
		Alias:    "Author",
	})
	require.NoError(t, err)
	return c
}

// closeBoard closes the board as the given admin.
func (e *testEnv) closeBoard(t *testing.T, boardID, adminHash string) {
	t.Helper()
	require.NoError(t, e.boardSvc.CloseBoard(context.Background(), boardID, adminHash))
}

// lastEvent returns the most recently recorded event of the given type.
func (e *testEnv) lastEvent(t *testing.T, eventType string) events.RecordedEvent {
	t.Helper()
	recorded := e.recorder.ByType(eventType)
	require.NotEmpty(t, recorded, "no %s event recorded", eventType)
	return recorded[len(recorded)-1]
}
