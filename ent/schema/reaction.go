package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Reaction holds the schema definition for the Reaction entity.
type Reaction struct {
	ent.Schema
}

// Fields of the Reaction.
func (Reaction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("reaction_id").
			Unique().
			Immutable(),
		field.String("card_id").
			Immutable(),
		field.String("identity_hash"),
		field.String("alias"),
		field.String("kind"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the Reaction.
func (Reaction) Indexes() []ent.Index {
	return []ent.Index{
		// One reaction per (card, identity).
		index.Fields("card_id", "identity_hash").
			Unique(),
		index.Fields("identity_hash"),
	}
}
