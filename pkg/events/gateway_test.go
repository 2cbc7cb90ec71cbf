package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSocket starts an HTTP server that upgrades every request and hands
// the connection to the gateway, then dials it as a client.
func newTestSocket(t *testing.T, g *Gateway) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		g.HandleConnection(r.Context(), conn, "test-identity-hash")
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readFrame reads the next frame and decodes it as a generic JSON object.
func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var frame map[string]any
	require.NoError(t, json.Unmarshal(data, &frame))
	return frame
}

// send writes one client message.
func send(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

// joinBoard sends join-board and waits for the acknowledgement, which also
// guarantees the room membership is in place for subsequent broadcasts.
func joinBoard(t *testing.T, conn *websocket.Conn, boardID string) {
	t.Helper()
	send(t, conn, ClientMessage{Action: ActionJoinBoard, BoardID: boardID})
	frame := readFrame(t, conn)
	require.Equal(t, "board.joined", frame["type"])
	require.Equal(t, boardID, frame["board_id"])
}

const (
	testBoardA = "0123456789abcdef01234567"
	testBoardB = "abcdefabcdefabcdef012345"
)

func TestGateway_ConnectionEstablished(t *testing.T) {
	g := NewGateway(16, time.Minute)
	conn := newTestSocket(t, g)

	frame := readFrame(t, conn)
	assert.Equal(t, "connection.established", frame["type"])
	assert.NotEmpty(t, frame["subscriber_id"])
	assert.Equal(t, 1, g.ActiveSubscribers())
}

func TestGateway_JoinAndBroadcast(t *testing.T) {
	g := NewGateway(16, time.Minute)
	conn := newTestSocket(t, g)
	readFrame(t, conn) // connection.established

	joinBoard(t, conn, testBoardA)
	assert.Equal(t, 1, g.RoomSize(testBoardA))

	g.Broadcast(testBoardA, []byte(`{"type":"card:created","data":{"id":"c1"}}`))

	frame := readFrame(t, conn)
	assert.Equal(t, "card:created", frame["type"])
}

func TestGateway_RoomIsolation(t *testing.T) {
	g := NewGateway(16, time.Minute)
	connA := newTestSocket(t, g)
	connB := newTestSocket(t, g)
	readFrame(t, connA)
	readFrame(t, connB)

	joinBoard(t, connA, testBoardA)
	joinBoard(t, connB, testBoardB)

	g.Broadcast(testBoardA, []byte(`{"type":"for-a"}`))
	g.Broadcast(testBoardB, []byte(`{"type":"for-b"}`))

	// B's first frame after joining is its own room's, not A's.
	frame := readFrame(t, connB)
	assert.Equal(t, "for-b", frame["type"])

	frame = readFrame(t, connA)
	assert.Equal(t, "for-a", frame["type"])
}

func TestGateway_InvalidBoardID(t *testing.T) {
	g := NewGateway(16, time.Minute)
	conn := newTestSocket(t, g)
	readFrame(t, conn)

	tests := []string{"", "BOARD", "0123456789abcdef0123456", "0123456789ABCDEF01234567"}
	for _, boardID := range tests {
		send(t, conn, ClientMessage{Action: ActionJoinBoard, BoardID: boardID})
		frame := readFrame(t, conn)
		assert.Equal(t, "error", frame["type"], "board_id %q", boardID)
	}
	assert.Equal(t, 0, g.RoomSize(""))
}

func TestGateway_UnknownAction(t *testing.T) {
	g := NewGateway(16, time.Minute)
	conn := newTestSocket(t, g)
	readFrame(t, conn)

	send(t, conn, ClientMessage{Action: "subscribe"})
	frame := readFrame(t, conn)
	assert.Equal(t, "error", frame["type"])
	assert.Equal(t, "unknown action", frame["message"])
}

func TestGateway_LeaveBoard(t *testing.T) {
	g := NewGateway(16, time.Minute)
	conn := newTestSocket(t, g)
	readFrame(t, conn)

	joinBoard(t, conn, testBoardA)
	send(t, conn, ClientMessage{Action: ActionLeaveBoard})

	// The heartbeat ack orders us after the leave: once it arrives, the
	// room no longer contains this subscriber.
	send(t, conn, ClientMessage{Action: ActionHeartbeat})
	frame := readFrame(t, conn)
	require.Equal(t, "heartbeat.ack", frame["type"])
	assert.Equal(t, 0, g.RoomSize(testBoardA))

	// Broadcasts to the old room are no longer delivered.
	g.Broadcast(testBoardA, []byte(`{"type":"for-a"}`))
	send(t, conn, ClientMessage{Action: ActionHeartbeat})
	frame = readFrame(t, conn)
	assert.Equal(t, "heartbeat.ack", frame["type"])
}

func TestGateway_SingleRoomMembership(t *testing.T) {
	g := NewGateway(16, time.Minute)
	conn := newTestSocket(t, g)
	readFrame(t, conn)

	joinBoard(t, conn, testBoardA)
	joinBoard(t, conn, testBoardB)

	assert.Equal(t, 0, g.RoomSize(testBoardA))
	assert.Equal(t, 1, g.RoomSize(testBoardB))
}

func TestGateway_HeartbeatTimeout(t *testing.T) {
	g := NewGateway(16, 100*time.Millisecond)
	conn := newTestSocket(t, g)
	readFrame(t, conn)

	// With no client traffic the server times the socket out and closes it.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _, err := conn.Read(ctx)
	require.Error(t, err)

	require.Eventually(t, func() bool {
		return g.ActiveSubscribers() == 0
	}, 5*time.Second, 10*time.Millisecond)
}

func TestGateway_CloseAll(t *testing.T) {
	g := NewGateway(16, time.Minute)
	connA := newTestSocket(t, g)
	connB := newTestSocket(t, g)
	readFrame(t, connA)
	readFrame(t, connB)
	joinBoard(t, connA, testBoardA)

	g.CloseAll()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _, err := connA.Read(ctx)
	require.Error(t, err)

	require.Eventually(t, func() bool {
		return g.ActiveSubscribers() == 0 && g.RoomSize(testBoardA) == 0
	}, 5*time.Second, 10*time.Millisecond)
}
