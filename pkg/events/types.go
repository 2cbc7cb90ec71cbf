// Package events provides the real-time fan-out plane: typed event payloads,
// the Broadcaster port the services publish through, and the in-process
// WebSocket gateway that delivers frames to board rooms.
//
// Delivery is at-least-once best-effort within a single process: events are
// published only after the triggering write succeeded, are never persisted,
// and are dropped for individual slow consumers rather than blocking the
// room. Reconnecting clients re-read state through the HTTP API; there is no
// replay.
package events

// Event types carried in the frame "type" field, one per mutation.
const (
	EventBoardRenamed     = "board:renamed"
	EventColumnRenamed    = "column:renamed"
	EventBoardClosed      = "board:closed"
	EventBoardDeleted     = "board:deleted"
	EventUserJoined       = "user:joined"
	EventUserAliasChanged = "user:alias_changed"
	EventCardCreated      = "card:created"
	EventCardUpdated      = "card:updated"
	EventCardDeleted      = "card:deleted"
	EventCardMoved        = "card:moved"
	EventCardLinked       = "card:linked"
	EventCardUnlinked     = "card:unlinked"
	EventReactionAdded    = "reaction:added"
	EventReactionRemoved  = "reaction:removed"
)

// Frame is the server → client message envelope.
type Frame struct {
	Type      string `json:"type"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// ClientMessage is the JSON structure for client → server gateway messages.
type ClientMessage struct {
	Action  string `json:"action"`             // "join-board", "leave-board", "heartbeat"
	BoardID string `json:"board_id,omitempty"` // required for join-board
}

// Client → server actions.
const (
	ActionJoinBoard  = "join-board"
	ActionLeaveBoard = "leave-board"
	ActionHeartbeat  = "heartbeat"
)
