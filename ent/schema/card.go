package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Card holds the schema definition for the Card entity.
type Card struct {
	ent.Schema
}

// Fields of the Card.
func (Card) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("card_id").
			Unique().
			Immutable(),
		field.String("board_id").
			Immutable(),
		field.String("column_id"),
		field.Text("content").
			MaxLen(5000),
		field.Enum("card_type").
			Values("feedback", "action"),
		field.Bool("is_anonymous").
			Default(false),
		field.String("created_by_hash").
			Immutable(),
		field.String("created_by_alias").
			Optional().
			Nillable().
			Comment("Nil iff the card is anonymous"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Int("direct_count").
			Default(0).
			Comment("Reactions directly on this card"),
		field.Int("aggregated_count").
			Default(0).
			Comment("direct_count plus the sum of children's direct_counts"),
		field.String("parent_id").
			Optional().
			Nillable().
			Comment("Parent feedback card; depth is capped at one level"),
		field.JSON("linked_feedback_ids", []string{}).
			Optional().
			Comment("Action cards only: linked feedback cards on the same board"),
	}
}

// Indexes of the Card.
func (Card) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("board_id"),
		index.Fields("board_id", "column_id"),
		index.Fields("parent_id"),
		// Quota counting: feedback cards by author on a board.
		index.Fields("board_id", "created_by_hash", "card_type"),
	}
}
