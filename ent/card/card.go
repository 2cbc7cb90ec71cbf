// Code generated by ent, DO NOT EDIT.

package card

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the card type in the database.
	Label = "card"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "card_id"
	// FieldBoardID holds the string denoting the board_id field in the database.
	FieldBoardID = "board_id"
	// FieldColumnID holds the string denoting the column_id field in the database.
	FieldColumnID = "column_id"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldCardType holds the string denoting the card_type field in the database.
	FieldCardType = "card_type"
	// FieldIsAnonymous holds the string denoting the is_anonymous field in the database.
	FieldIsAnonymous = "is_anonymous"
	// FieldCreatedByHash holds the string denoting the created_by_hash field in the database.
	FieldCreatedByHash = "created_by_hash"
	// FieldCreatedByAlias holds the string denoting the created_by_alias field in the database.
	FieldCreatedByAlias = "created_by_alias"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDirectCount holds the string denoting the direct_count field in the database.
	FieldDirectCount = "direct_count"
	// FieldAggregatedCount holds the string denoting the aggregated_count field in the database.
	FieldAggregatedCount = "aggregated_count"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldLinkedFeedbackIds holds the string denoting the linked_feedback_ids field in the database.
	FieldLinkedFeedbackIds = "linked_feedback_ids"
	// Table holds the table name of the card in the database.
	Table = "cards"
)

// Columns holds all SQL columns for card fields.
var Columns = []string{
	FieldID,
	FieldBoardID,
	FieldColumnID,
	FieldContent,
	FieldCardType,
	FieldIsAnonymous,
	FieldCreatedByHash,
	FieldCreatedByAlias,
	FieldCreatedAt,
	FieldDirectCount,
	FieldAggregatedCount,
	FieldParentID,
	FieldLinkedFeedbackIds,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ContentValidator is a validator for the "content" field. It is called by the builders before save.
	ContentValidator func(string) error
	// DefaultIsAnonymous holds the default value on creation for the "is_anonymous" field.
	DefaultIsAnonymous bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultDirectCount holds the default value on creation for the "direct_count" field.
	DefaultDirectCount int
	// DefaultAggregatedCount holds the default value on creation for the "aggregated_count" field.
	DefaultAggregatedCount int
)

// CardType defines the type for the "card_type" enum field.
type CardType string

// CardType values.
const (
	CardTypeFeedback CardType = "feedback"
	CardTypeAction   CardType = "action"
)

func (ct CardType) String() string {
	return string(ct)
}

// CardTypeValidator is a validator for the "card_type" field enum values. It is called by the builders before save.
func CardTypeValidator(ct CardType) error {
	switch ct {
	case CardTypeFeedback, CardTypeAction:
		return nil
	default:
		return fmt.Errorf("card: invalid enum value for card_type field: %q", ct)
	}
}

// OrderOption defines the ordering options for the Card queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBoardID orders the results by the board_id field.
func ByBoardID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoardID, opts...).ToFunc()
}

// ByColumnID orders the results by the column_id field.
func ByColumnID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColumnID, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByCardType orders the results by the card_type field.
func ByCardType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardType, opts...).ToFunc()
}

// ByIsAnonymous orders the results by the is_anonymous field.
func ByIsAnonymous(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsAnonymous, opts...).ToFunc()
}

// ByCreatedByHash orders the results by the created_by_hash field.
func ByCreatedByHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedByHash, opts...).ToFunc()
}

// ByCreatedByAlias orders the results by the created_by_alias field.
func ByCreatedByAlias(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedByAlias, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDirectCount orders the results by the direct_count field.
func ByDirectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDirectCount, opts...).ToFunc()
}

// ByAggregatedCount orders the results by the aggregated_count field.
func ByAggregatedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAggregatedCount, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}
