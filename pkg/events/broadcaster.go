package events

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/retroboardhq/retroboard/pkg/clock"
)

// Broadcaster is the port the service layer publishes through: one method per
// event, keyed by board. Implementations must not block the caller — a
// mutation has already succeeded by the time its event is published, and
// delivery is fire-and-forget.
type Broadcaster interface {
	BoardRenamed(boardID string, p BoardRenamedPayload)
	ColumnRenamed(boardID string, p ColumnRenamedPayload)
	BoardClosed(boardID string, p BoardClosedPayload)
	BoardDeleted(boardID string, p BoardDeletedPayload)
	UserJoined(boardID string, p UserJoinedPayload)
	UserAliasChanged(boardID string, p UserAliasChangedPayload)
	CardCreated(boardID string, p CardCreatedPayload)
	CardUpdated(boardID string, p CardUpdatedPayload)
	CardDeleted(boardID string, p CardDeletedPayload)
	CardMoved(boardID string, p CardMovedPayload)
	CardLinked(boardID string, p CardLinkedPayload)
	CardUnlinked(boardID string, p CardLinkedPayload)
	ReactionAdded(boardID string, p ReactionAddedPayload)
	ReactionRemoved(boardID string, p ReactionRemovedPayload)
}

// NopBroadcaster discards all events. Used in unit tests and tooling.
type NopBroadcaster struct{}

func (NopBroadcaster) BoardRenamed(string, BoardRenamedPayload)         {}
func (NopBroadcaster) ColumnRenamed(string, ColumnRenamedPayload)       {}
func (NopBroadcaster) BoardClosed(string, BoardClosedPayload)           {}
func (NopBroadcaster) BoardDeleted(string, BoardDeletedPayload)         {}
func (NopBroadcaster) UserJoined(string, UserJoinedPayload)             {}
func (NopBroadcaster) UserAliasChanged(string, UserAliasChangedPayload) {}
func (NopBroadcaster) CardCreated(string, CardCreatedPayload)           {}
func (NopBroadcaster) CardUpdated(string, CardUpdatedPayload)           {}
func (NopBroadcaster) CardDeleted(string, CardDeletedPayload)           {}
func (NopBroadcaster) CardMoved(string, CardMovedPayload)               {}
func (NopBroadcaster) CardLinked(string, CardLinkedPayload)             {}
func (NopBroadcaster) CardUnlinked(string, CardLinkedPayload)           {}
func (NopBroadcaster) ReactionAdded(string, ReactionAddedPayload)       {}
func (NopBroadcaster) ReactionRemoved(string, ReactionRemovedPayload)   {}

// RecordedEvent is one event captured by Recorder.
type RecordedEvent struct {
	BoardID string
	Type    string
	Payload any
}

// Recorder captures published events for assertions in tests.
type Recorder struct {
	mu     sync.Mutex
	events []RecordedEvent
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Events returns a snapshot of the captured events in publish order.
func (r *Recorder) Events() []RecordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RecordedEvent, len(r.events))
	copy(out, r.events)
	return out
}

// ByType returns the captured events with the given type.
func (r *Recorder) ByType(eventType string) []RecordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []RecordedEvent
	for _, e := range r.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

func (r *Recorder) record(boardID, eventType string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, RecordedEvent{BoardID: boardID, Type: eventType, Payload: payload})
}

func (r *Recorder) BoardRenamed(b string, p BoardRenamedPayload)   { r.record(b, EventBoardRenamed, p) }
func (r *Recorder) ColumnRenamed(b string, p ColumnRenamedPayload) { r.record(b, EventColumnRenamed, p) }
func (r *Recorder) BoardClosed(b string, p BoardClosedPayload)     { r.record(b, EventBoardClosed, p) }
func (r *Recorder) BoardDeleted(b string, p BoardDeletedPayload)   { r.record(b, EventBoardDeleted, p) }
func (r *Recorder) UserJoined(b string, p UserJoinedPayload)       { r.record(b, EventUserJoined, p) }
func (r *Recorder) UserAliasChanged(b string, p UserAliasChangedPayload) {
	r.record(b, EventUserAliasChanged, p)
}
func (r *Recorder) CardCreated(b string, p CardCreatedPayload) { r.record(b, EventCardCreated, p) }
func (r *Recorder) CardUpdated(b string, p CardUpdatedPayload) { r.record(b, EventCardUpdated, p) }
func (r *Recorder) CardDeleted(b string, p CardDeletedPayload) { r.record(b, EventCardDeleted, p) }
func (r *Recorder) CardMoved(b string, p CardMovedPayload)     { r.record(b, EventCardMoved, p) }
func (r *Recorder) CardLinked(b string, p CardLinkedPayload)   { r.record(b, EventCardLinked, p) }
func (r *Recorder) CardUnlinked(b string, p CardLinkedPayload) { r.record(b, EventCardUnlinked, p) }
func (r *Recorder) ReactionAdded(b string, p ReactionAddedPayload) {
	r.record(b, EventReactionAdded, p)
}
func (r *Recorder) ReactionRemoved(b string, p ReactionRemovedPayload) {
	r.record(b, EventReactionRemoved, p)
}

// GatewayBroadcaster is the production Broadcaster: it wraps payloads in a
// Frame and hands them to the Gateway's room fan-out.
type GatewayBroadcaster struct {
	gateway *Gateway
	clk     clock.Clock
}

// NewGatewayBroadcaster creates a Broadcaster publishing to the gateway.
func NewGatewayBroadcaster(gateway *Gateway, clk clock.Clock) *GatewayBroadcaster {
	return &GatewayBroadcaster{gateway: gateway, clk: clk}
}

func (g *GatewayBroadcaster) publish(boardID, eventType string, payload any) {
	frame := Frame{
		Type:      eventType,
		Data:      payload,
		Timestamp: g.clk.Now().Format(time.RFC3339Nano),
	}
	data, err := json.Marshal(frame)
	if err != nil {
		slog.Error("Failed to marshal event frame",
			"event_type", eventType, "board_id", boardID, "error", err)
		return
	}
	g.gateway.Broadcast(boardID, data)
}

func (g *GatewayBroadcaster) BoardRenamed(b string, p BoardRenamedPayload) {
	g.publish(b, EventBoardRenamed, p)
}
func (g *GatewayBroadcaster) ColumnRenamed(b string, p ColumnRenamedPayload) {
	g.publish(b, EventColumnRenamed, p)
}
func (g *GatewayBroadcaster) BoardClosed(b string, p BoardClosedPayload) {
	g.publish(b, EventBoardClosed, p)
}
func (g *GatewayBroadcaster) BoardDeleted(b string, p BoardDeletedPayload) {
	g.publish(b, EventBoardDeleted, p)
}
func (g *GatewayBroadcaster) UserJoined(b string, p UserJoinedPayload) {
	g.publish(b, EventUserJoined, p)
}
func (g *GatewayBroadcaster) UserAliasChanged(b string, p UserAliasChangedPayload) {
	g.publish(b, EventUserAliasChanged, p)
}
func (g *GatewayBroadcaster) CardCreated(b string, p CardCreatedPayload) {
	g.publish(b, EventCardCreated, p)
}
func (g *GatewayBroadcaster) CardUpdated(b string, p CardUpdatedPayload) {
	g.publish(b, EventCardUpdated, p)
}
func (g *GatewayBroadcaster) CardDeleted(b string, p CardDeletedPayload) {
	g.publish(b, EventCardDeleted, p)
}
func (g *GatewayBroadcaster) CardMoved(b string, p CardMovedPayload) {
	g.publish(b, EventCardMoved, p)
}
func (g *GatewayBroadcaster) CardLinked(b string, p CardLinkedPayload) {
	g.publish(b, EventCardLinked, p)
}
func (g *GatewayBroadcaster) CardUnlinked(b string, p CardLinkedPayload) {
	g.publish(b, EventCardUnlinked, p)
}
func (g *GatewayBroadcaster) ReactionAdded(b string, p ReactionAddedPayload) {
	g.publish(b, EventReactionAdded, p)
}
func (g *GatewayBroadcaster) ReactionRemoved(b string, p ReactionRemovedPayload) {
	g.publish(b, EventReactionRemoved, p)
}
