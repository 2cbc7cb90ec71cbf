package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retroboardhq/retroboard/pkg/api"
	"github.com/retroboardhq/retroboard/pkg/clock"
	"github.com/retroboardhq/retroboard/pkg/config"
	"github.com/retroboardhq/retroboard/pkg/events"
	"github.com/retroboardhq/retroboard/pkg/identity"
	"github.com/retroboardhq/retroboard/pkg/services"
	"github.com/retroboardhq/retroboard/pkg/store"
	testdb "github.com/retroboardhq/retroboard/test/database"
)

const adminSecret = "e2e-admin-secret"

// newTestServer stands up the full stack: per-test database schema, services,
// gateway, and the routed HTTP server.
func newTestServer(t *testing.T) (*httptest.Server, *events.Gateway) {
	t.Helper()

	client := testdb.NewTestClient(t)
	boards := store.NewBoardStore(client.Client)
	cards := store.NewCardStore(client.Client)
	reactions := store.NewReactionStore(client.Client)
	sessions := store.NewSessionStore(client.Client)

	gateway := events.NewGateway(64, time.Minute)
	clk := clock.System{}
	broadcaster := events.NewGatewayBroadcaster(gateway, clk)

	svcCfg := services.Config{
		PresenceWindow:          2 * time.Minute,
		ShareableLinkLength:     12,
		ShareableLinkRetryCount: 5,
	}
	boardSvc := services.NewBoardService(boards, cards, reactions, sessions, broadcaster, clk, svcCfg)
	cardSvc := services.NewCardService(boards, cards, reactions, sessions, broadcaster, clk, svcCfg)
	reactionSvc := services.NewReactionService(boards, cards, reactions, sessions, broadcaster, clk, svcCfg)
	presenceSvc := services.NewPresenceService(boards, sessions, broadcaster, clk, svcCfg)
	adminSvc := services.NewAdminService(boards, cards, reactions, sessions, boardSvc, clk)

	cfg := &config.Config{
		Port:                0,
		PresenceWindow:      2 * time.Minute,
		AdminSecret:         adminSecret,
		MaxRequestBodyBytes: 1 << 20,
	}
	provider := identity.NewProvider(identity.SHA256Hasher{})
	provider.Secure = false

	s := api.NewServer(cfg, client, provider, gateway, boardSvc, cardSvc, reactionSvc, presenceSvc, adminSvc)
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	t.Cleanup(gateway.CloseAll)
	return srv, gateway
}

// newClient returns an HTTP client with a cookie jar, so the identity cookie
// minted on first contact rides along on every later request.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar, Timeout: 10 * time.Second}
}

// doJSON performs one request with an optional JSON body and decodes the
// JSON response into a generic map.
func doJSON(t *testing.T, client *http.Client, method, url string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &decoded))
	}
	return resp.StatusCode, decoded
}

// createBoard creates a two-column board and returns its id and column ids.
func createBoard(t *testing.T, client *http.Client, baseURL string) (string, []string) {
	t.Helper()
	status, body := doJSON(t, client, http.MethodPost, baseURL+"/api/v1/boards", map[string]any{
		"name": "Sprint 42 retro",
		"columns": []map[string]string{
			{"name": "Went well"},
			{"name": "To improve"},
		},
	})
	require.Equal(t, http.StatusCreated, status)

	boardID := body["id"].(string)
	var columnIDs []string
	for _, col := range body["columns"].([]any) {
		columnIDs = append(columnIDs, col.(map[string]any)["id"].(string))
	}
	require.Len(t, columnIDs, 2)
	return boardID, columnIDs
}

func TestAPI_Health(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)

	status, body := doJSON(t, client, http.MethodGet, srv.URL+"/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
}

func TestAPI_BoardLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)
	creator := newClient(t)
	participant := newClient(t)

	boardID, columnIDs := createBoard(t, creator, srv.URL)

	// The identity cookie was minted on the create request.
	status, _ := doJSON(t, creator, http.MethodPost, srv.URL+"/api/v1/boards/"+boardID+"/join",
		map[string]string{"alias": "Dana"})
	require.Equal(t, http.StatusOK, status)

	status, joinBody := doJSON(t, participant, http.MethodPost, srv.URL+"/api/v1/boards/"+boardID+"/join",
		map[string]string{"alias": "Sam"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, joinBody["is_admin"])

	status, cardBody := doJSON(t, participant, http.MethodPost, srv.URL+"/api/v1/boards/"+boardID+"/cards",
		map[string]any{"column_id": columnIDs[0], "content": "Deploys were smooth", "card_type": "feedback"})
	require.Equal(t, http.StatusCreated, status)
	cardID := cardBody["id"].(string)
	assert.Equal(t, "Sam", cardBody["created_by_alias"])

	status, _ = doJSON(t, creator, http.MethodPost, srv.URL+"/api/v1/cards/"+cardID+"/reactions",
		map[string]string{"kind": "thumbs_up", "alias": "Dana"})
	require.Equal(t, http.StatusOK, status)

	status, quota := doJSON(t, participant, http.MethodGet, srv.URL+"/api/v1/boards/"+boardID+"/quotas/cards", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), quota["current"])
	assert.Equal(t, true, quota["can_create"])
	assert.Equal(t, false, quota["limit_enabled"])

	status, boardBody := doJSON(t, participant, http.MethodGet, srv.URL+"/api/v1/boards/"+boardID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, boardBody["active_users"].([]any), 2)

	// Only the admin can close; after close, writes conflict.
	status, _ = doJSON(t, participant, http.MethodPost, srv.URL+"/api/v1/boards/"+boardID+"/close", nil)
	require.Equal(t, http.StatusForbidden, status)

	status, _ = doJSON(t, creator, http.MethodPost, srv.URL+"/api/v1/boards/"+boardID+"/close", nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, participant, http.MethodPost, srv.URL+"/api/v1/boards/"+boardID+"/cards",
		map[string]any{"column_id": columnIDs[0], "content": "Too late", "card_type": "feedback"})
	assert.Equal(t, http.StatusConflict, status)
}

func TestAPI_AdminBackChannel(t *testing.T) {
	srv, _ := newTestServer(t)
	creator := newClient(t)
	boardID, columnIDs := createBoard(t, creator, srv.URL)

	status, _ := doJSON(t, creator, http.MethodPost, srv.URL+"/api/v1/boards/"+boardID+"/cards",
		map[string]any{"column_id": columnIDs[0], "content": "To be cleared", "card_type": "feedback", "alias": "Dana"})
	require.Equal(t, http.StatusCreated, status)

	t.Run("requires the secret", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/admin/boards/"+boardID+"/clear", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("clears with the secret", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/admin/boards/"+boardID+"/clear", nil)
		require.NoError(t, err)
		req.Header.Set("X-Admin-Secret", adminSecret)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		stats := body["stats"].(map[string]any)
		assert.Equal(t, float64(1), stats["cards"])
	})
}

func TestAPI_WebSocketFanout(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)
	boardID, columnIDs := createBoard(t, client, srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The dial reuses the identity cookie through the shared jar; without it
	// the upgrade is refused. websocket.Dial rejects clients with a Timeout,
	// so these use bare clients and rely on the context deadline.
	_, resp, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", &websocket.DialOptions{
		HTTPClient: &http.Client{Jar: client.Jar},
	})
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	readFrame := func() map[string]any {
		_, data, err := conn.Read(ctx)
		require.NoError(t, err)
		var frame map[string]any
		require.NoError(t, json.Unmarshal(data, &frame))
		return frame
	}

	frame := readFrame()
	require.Equal(t, "connection.established", frame["type"])

	join, err := json.Marshal(map[string]string{"action": "join-board", "board_id": boardID})
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, join))
	frame = readFrame()
	require.Equal(t, "board.joined", frame["type"])

	status, _ := doJSON(t, client, http.MethodPost, srv.URL+"/api/v1/boards/"+boardID+"/cards",
		map[string]any{"column_id": columnIDs[0], "content": "Live update", "card_type": "feedback", "alias": "Dana"})
	require.Equal(t, http.StatusCreated, status)

	frame = readFrame()
	assert.Equal(t, "card:created", frame["type"])
	data := frame["data"].(map[string]any)
	card := data["card"].(map[string]any)
	assert.Equal(t, "Live update", card["content"])
}
