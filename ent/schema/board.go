package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/retroboardhq/retroboard/pkg/models"
)

// Board holds the schema definition for the Board entity.
type Board struct {
	ent.Schema
}

// Fields of the Board.
func (Board) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("board_id").
			Unique().
			Immutable().
			Comment("24-hex opaque identifier"),
		field.String("name").
			MaxLen(200),
		field.JSON("columns", []models.Column{}).
			Comment("Embedded columns, 1..10 per board"),
		field.JSON("admins", []string{}).
			Comment("Ordered identity hashes; admins[0] is the immutable creator"),
		field.Enum("state").
			Values("active", "closed").
			Default("active"),
		field.Time("closed_at").
			Optional().
			Nillable(),
		field.Int("card_limit").
			Optional().
			Nillable().
			Comment("Per-user feedback card cap; nil means unlimited"),
		field.Int("reaction_limit").
			Optional().
			Nillable().
			Comment("Per-user per-board reaction cap; nil means unlimited"),
		field.String("creator_hash").
			Immutable(),
		field.String("shareable_link").
			Unique().
			Comment("Globally unique short code routing to the board"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Board.
func (Board) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("creator_hash"),
		index.Fields("state", "created_at"),
	}
}
