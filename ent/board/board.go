// Code generated by ent, DO NOT EDIT.

package board

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the board type in the database.
	Label = "board"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "board_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldColumns holds the string denoting the columns field in the database.
	FieldColumns = "columns"
	// FieldAdmins holds the string denoting the admins field in the database.
	FieldAdmins = "admins"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldClosedAt holds the string denoting the closed_at field in the database.
	FieldClosedAt = "closed_at"
	// FieldCardLimit holds the string denoting the card_limit field in the database.
	FieldCardLimit = "card_limit"
	// FieldReactionLimit holds the string denoting the reaction_limit field in the database.
	FieldReactionLimit = "reaction_limit"
	// FieldCreatorHash holds the string denoting the creator_hash field in the database.
	FieldCreatorHash = "creator_hash"
	// FieldShareableLink holds the string denoting the shareable_link field in the database.
	FieldShareableLink = "shareable_link"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the board in the database.
	Table = "boards"
)

// Columns holds all SQL columns for board fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldColumns,
	FieldAdmins,
	FieldState,
	FieldClosedAt,
	FieldCardLimit,
	FieldReactionLimit,
	FieldCreatorHash,
	FieldShareableLink,
	FieldCreatedAt,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateActive is the default value of the State enum.
const DefaultState = StateActive

// State values.
const (
	StateActive State = "active"
	StateClosed State = "closed"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateActive, StateClosed:
		return nil
	default:
		return fmt.Errorf("board: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Board queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByClosedAt orders the results by the closed_at field.
func ByClosedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClosedAt, opts...).ToFunc()
}

// ByCardLimit orders the results by the card_limit field.
func ByCardLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardLimit, opts...).ToFunc()
}

// ByReactionLimit orders the results by the reaction_limit field.
func ByReactionLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReactionLimit, opts...).ToFunc()
}

// ByCreatorHash orders the results by the creator_hash field.
func ByCreatorHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatorHash, opts...).ToFunc()
}

// ByShareableLink orders the results by the shareable_link field.
func ByShareableLink(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShareableLink, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
