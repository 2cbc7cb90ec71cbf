package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"regexp"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// writeTimeout bounds a single frame write to one subscriber's socket.
const writeTimeout = 10 * time.Second

// boardIDPattern validates the shape of join-board targets before any room
// bookkeeping. Room membership does not imply board existence; events are
// simply never published for boards that don't exist.
var boardIDPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

// subscriber is one connected WebSocket client. A subscriber is in at most
// one room at a time. Frames are delivered through a bounded send queue
// drained by a dedicated writer goroutine; when the queue is full the frame
// is dropped for this subscriber only.
type subscriber struct {
	id           string
	identityHash string
	conn         *websocket.Conn
	sendQueue    chan []byte
	ctx          context.Context
	cancel       context.CancelFunc

	// room is guarded by the gateway mutex, not by the subscriber.
	room string
}

// Gateway manages subscriber connections and the boardID → subscribers room
// registry. One Gateway instance per process.
type Gateway struct {
	mu          sync.RWMutex
	rooms       map[string]map[string]*subscriber
	subscribers map[string]*subscriber

	queueCapacity    int
	heartbeatTimeout time.Duration
}

// NewGateway creates a Gateway. queueCapacity is the per-subscriber send
// queue bound (the backpressure point before frames are dropped for a slow
// consumer); heartbeatTimeout is the idle-socket read deadline.
func NewGateway(queueCapacity int, heartbeatTimeout time.Duration) *Gateway {
	if queueCapacity < 1 {
		queueCapacity = 1
	}
	return &Gateway{
		rooms:            make(map[string]map[string]*subscriber),
		subscribers:      make(map[string]*subscriber),
		queueCapacity:    queueCapacity,
		heartbeatTimeout: heartbeatTimeout,
	}
}

// HandleConnection manages the lifecycle of a single authenticated WebSocket
// connection. Called by the HTTP handler after upgrade; blocks until the
// connection closes. identityHash comes from the same cookie mechanism as
// the mutation path — unauthenticated upgrades are refused before this.
func (g *Gateway) HandleConnection(parentCtx context.Context, conn *websocket.Conn, identityHash string) {
	ctx, cancel := context.WithCancel(parentCtx)

	sub := &subscriber{
		id:           uuid.New().String(),
		identityHash: identityHash,
		conn:         conn,
		sendQueue:    make(chan []byte, g.queueCapacity),
		ctx:          ctx,
		cancel:       cancel,
	}

	g.register(sub)
	defer g.unregister(sub)

	// Writer goroutine: drains the send queue so slow sockets never block
	// Broadcast. Exits when the connection context is cancelled.
	var writerDone sync.WaitGroup
	writerDone.Add(1)
	go func() {
		defer writerDone.Done()
		g.writeLoop(sub)
	}()
	defer writerDone.Wait()
	defer cancel()

	g.enqueue(sub, mustMarshal(map[string]string{
		"type":          "connection.established",
		"subscriber_id": sub.id,
	}))

	// Read loop: each read carries the heartbeat deadline. A heartbeat (or
	// any other client message) resets it; an idle socket times out.
	for {
		readCtx, readCancel := context.WithTimeout(ctx, g.heartbeatTimeout)
		_, data, err := conn.Read(readCtx)
		readCancel()
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid gateway message",
				"subscriber_id", sub.id, "error", err)
			continue
		}

		g.handleClientMessage(sub, &msg)
	}
}

// Broadcast enqueues the frame to every subscriber currently in the board's
// room. A full send queue drops the frame for that subscriber only; other
// subscribers and the caller are unaffected.
func (g *Gateway) Broadcast(boardID string, frame []byte) {
	g.mu.RLock()
	members, ok := g.rooms[boardID]
	if !ok {
		g.mu.RUnlock()
		return
	}
	// Snapshot membership so the enqueue loop runs without the lock.
	subs := make([]*subscriber, 0, len(members))
	for _, sub := range members {
		subs = append(subs, sub)
	}
	g.mu.RUnlock()

	for _, sub := range subs {
		g.enqueue(sub, frame)
	}
}

// ActiveSubscribers returns the count of connected subscribers.
func (g *Gateway) ActiveSubscribers() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.subscribers)
}

// RoomSize returns the number of subscribers in a board's room.
func (g *Gateway) RoomSize(boardID string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.rooms[boardID])
}

// CloseAll disconnects every subscriber. Used during graceful shutdown after
// in-flight mutations have drained.
func (g *Gateway) CloseAll() {
	g.mu.Lock()
	subs := make([]*subscriber, 0, len(g.subscribers))
	for _, sub := range g.subscribers {
		subs = append(subs, sub)
	}
	g.mu.Unlock()

	for _, sub := range subs {
		sub.cancel()
		_ = sub.conn.Close(websocket.StatusGoingAway, "server shutting down")
	}
}

// handleClientMessage dispatches one client message.
func (g *Gateway) handleClientMessage(sub *subscriber, msg *ClientMessage) {
	switch msg.Action {
	case ActionJoinBoard:
		if !boardIDPattern.MatchString(msg.BoardID) {
			g.enqueue(sub, mustMarshal(map[string]string{
				"type":    "error",
				"message": "invalid board_id",
			}))
			return
		}
		g.joinRoom(sub, msg.BoardID)
		g.enqueue(sub, mustMarshal(map[string]string{
			"type":     "board.joined",
			"board_id": msg.BoardID,
		}))

	case ActionLeaveBoard:
		g.leaveRoom(sub)

	case ActionHeartbeat:
		g.enqueue(sub, mustMarshal(map[string]string{"type": "heartbeat.ack"}))

	default:
		g.enqueue(sub, mustMarshal(map[string]string{
			"type":    "error",
			"message": "unknown action",
		}))
	}
}

// joinRoom moves the subscriber from any prior room into the target room.
func (g *Gateway) joinRoom(sub *subscriber, boardID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.removeFromRoomLocked(sub)

	room, ok := g.rooms[boardID]
	if !ok {
		room = make(map[string]*subscriber)
		g.rooms[boardID] = room
	}
	room[sub.id] = sub
	sub.room = boardID
}

// leaveRoom removes the subscriber from its current room, if any.
func (g *Gateway) leaveRoom(sub *subscriber) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.removeFromRoomLocked(sub)
}

// removeFromRoomLocked detaches the subscriber from its room and prunes the
// room when it empties. Caller holds g.mu.
func (g *Gateway) removeFromRoomLocked(sub *subscriber) {
	if sub.room == "" {
		return
	}
	if room, ok := g.rooms[sub.room]; ok {
		delete(room, sub.id)
		if len(room) == 0 {
			delete(g.rooms, sub.room)
		}
	}
	sub.room = ""
}

// register adds the subscriber to the tracking map.
func (g *Gateway) register(sub *subscriber) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.subscribers[sub.id] = sub
}

// unregister removes the subscriber from its room and the tracking map.
// No user:left event is emitted — the presence window ages the session out.
func (g *Gateway) unregister(sub *subscriber) {
	g.mu.Lock()
	g.removeFromRoomLocked(sub)
	delete(g.subscribers, sub.id)
	g.mu.Unlock()

	sub.cancel()
	_ = sub.conn.Close(websocket.StatusNormalClosure, "")
}

// enqueue appends a frame to the subscriber's send queue, dropping it when
// the queue is full. Slow consumers lose events; they are never allowed to
// block producers or other consumers.
func (g *Gateway) enqueue(sub *subscriber, frame []byte) {
	select {
	case sub.sendQueue <- frame:
	default:
		slog.Warn("Send queue full, dropping frame for slow subscriber",
			"subscriber_id", sub.id)
	}
}

// writeLoop drains the subscriber's send queue onto the socket. Per
// subscriber, frames are written in enqueue order.
func (g *Gateway) writeLoop(sub *subscriber) {
	for {
		select {
		case <-sub.ctx.Done():
			return
		case frame := <-sub.sendQueue:
			writeCtx, cancel := context.WithTimeout(sub.ctx, writeTimeout)
			err := sub.conn.Write(writeCtx, websocket.MessageText, frame)
			cancel()
			if err != nil {
				slog.Warn("Failed to write frame to subscriber",
					"subscriber_id", sub.id, "error", err)
				return
			}
		}
	}
}

// mustMarshal marshals gateway control messages, which cannot fail.
func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
