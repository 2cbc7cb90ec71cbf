package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserSession holds the schema definition for the UserSession entity:
// a participant's per-board presence record.
type UserSession struct {
	ent.Schema
}

// Fields of the UserSession.
func (UserSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("board_id").
			Immutable(),
		field.String("identity_hash").
			Immutable(),
		field.String("alias").
			MaxLen(50),
		field.Time("last_active").
			Comment("Refreshed on heartbeat and on every mutation by this identity"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the UserSession.
func (UserSession) Indexes() []ent.Index {
	return []ent.Index{
		// One session per (board, identity).
		index.Fields("board_id", "identity_hash").
			Unique(),
		// Presence window scans.
		index.Fields("board_id", "last_active"),
	}
}
