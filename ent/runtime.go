// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/retroboardhq/retroboard/ent/board"
	"github.com/retroboardhq/retroboard/ent/card"
	"github.com/retroboardhq/retroboard/ent/reaction"
	"github.com/retroboardhq/retroboard/ent/schema"
	"github.com/retroboardhq/retroboard/ent/usersession"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	boardFields := schema.Board{}.Fields()
	_ = boardFields
	// boardDescName is the schema descriptor for name field.
	boardDescName := boardFields[1].Descriptor()
	// board.NameValidator is a validator for the "name" field. It is called by the builders before save.
	board.NameValidator = boardDescName.Validators[0].(func(string) error)
	// boardDescCreatedAt is the schema descriptor for created_at field.
	boardDescCreatedAt := boardFields[10].Descriptor()
	// board.DefaultCreatedAt holds the default value on creation for the created_at field.
	board.DefaultCreatedAt = boardDescCreatedAt.Default.(func() time.Time)
	cardFields := schema.Card{}.Fields()
	_ = cardFields
	// cardDescContent is the schema descriptor for content field.
	cardDescContent := cardFields[3].Descriptor()
	// card.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	card.ContentValidator = cardDescContent.Validators[0].(func(string) error)
	// cardDescIsAnonymous is the schema descriptor for is_anonymous field.
	cardDescIsAnonymous := cardFields[5].Descriptor()
	// card.DefaultIsAnonymous holds the default value on creation for the is_anonymous field.
	card.DefaultIsAnonymous = cardDescIsAnonymous.Default.(bool)
	// cardDescCreatedAt is the schema descriptor for created_at field.
	cardDescCreatedAt := cardFields[8].Descriptor()
	// card.DefaultCreatedAt holds the default value on creation for the created_at field.
	card.DefaultCreatedAt = cardDescCreatedAt.Default.(func() time.Time)
	// cardDescDirectCount is the schema descriptor for direct_count field.
	cardDescDirectCount := cardFields[9].Descriptor()
	// card.DefaultDirectCount holds the default value on creation for the direct_count field.
	card.DefaultDirectCount = cardDescDirectCount.Default.(int)
	// cardDescAggregatedCount is the schema descriptor for aggregated_count field.
	cardDescAggregatedCount := cardFields[10].Descriptor()
	// card.DefaultAggregatedCount holds the default value on creation for the aggregated_count field.
	card.DefaultAggregatedCount = cardDescAggregatedCount.Default.(int)
	reactionFields := schema.Reaction{}.Fields()
	_ = reactionFields
	// reactionDescCreatedAt is the schema descriptor for created_at field.
	reactionDescCreatedAt := reactionFields[5].Descriptor()
	// reaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	reaction.DefaultCreatedAt = reactionDescCreatedAt.Default.(func() time.Time)
	usersessionFields := schema.UserSession{}.Fields()
	_ = usersessionFields
	// usersessionDescAlias is the schema descriptor for alias field.
	usersessionDescAlias := usersessionFields[3].Descriptor()
	// usersession.AliasValidator is a validator for the "alias" field. It is called by the builders before save.
	usersession.AliasValidator = usersessionDescAlias.Validators[0].(func(string) error)
	// usersessionDescCreatedAt is the schema descriptor for created_at field.
	usersessionDescCreatedAt := usersessionFields[5].Descriptor()
	// usersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersession.DefaultCreatedAt = usersessionDescCreatedAt.Default.(func() time.Time)
}
