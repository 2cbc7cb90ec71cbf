// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/retroboardhq/retroboard/ent/board"
	"github.com/retroboardhq/retroboard/pkg/models"
)

// Board is the model entity for the Board schema.
type Board struct {
	config `json:"-"`
	// ID of the ent.
	// 24-hex opaque identifier
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Embedded columns, 1..10 per board
	Columns []models.Column `json:"columns,omitempty"`
	// Ordered identity hashes; admins[0] is the immutable creator
	Admins []string `json:"admins,omitempty"`
	// State holds the value of the "state" field.
	State board.State `json:"state,omitempty"`
	// ClosedAt holds the value of the "closed_at" field.
	ClosedAt *time.Time `json:"closed_at,omitempty"`
	// Per-user feedback card cap; nil means unlimited
	CardLimit *int `json:"card_limit,omitempty"`
	// Per-user per-board reaction cap; nil means unlimited
	ReactionLimit *int `json:"reaction_limit,omitempty"`
	// CreatorHash holds the value of the "creator_hash" field.
	CreatorHash string `json:"creator_hash,omitempty"`
	// Globally unique short code routing to the board
	ShareableLink string `json:"shareable_link,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Board) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case board.FieldColumns, board.FieldAdmins:
			values[i] = new([]byte)
		case board.FieldCardLimit, board.FieldReactionLimit:
			values[i] = new(sql.NullInt64)
		case board.FieldID, board.FieldName, board.FieldState, board.FieldCreatorHash, board.FieldShareableLink:
			values[i] = new(sql.NullString)
		case board.FieldClosedAt, board.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Board fields.
func (_m *Board) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case board.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case board.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case board.FieldColumns:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field columns", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Columns); err != nil {
					return fmt.Errorf("unmarshal field columns: %w", err)
				}
			}
		case board.FieldAdmins:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field admins", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Admins); err != nil {
					return fmt.Errorf("unmarshal field admins: %w", err)
				}
			}
		case board.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = board.State(value.String)
			}
		case board.FieldClosedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field closed_at", values[i])
			} else if value.Valid {
				_m.ClosedAt = new(time.Time)
				*_m.ClosedAt = value.Time
			}
		case board.FieldCardLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field card_limit", values[i])
			} else if value.Valid {
				_m.CardLimit = new(int)
				*_m.CardLimit = int(value.Int64)
			}
		case board.FieldReactionLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reaction_limit", values[i])
			} else if value.Valid {
				_m.ReactionLimit = new(int)
				*_m.ReactionLimit = int(value.Int64)
			}
		case board.FieldCreatorHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field creator_hash", values[i])
			} else if value.Valid {
				_m.CreatorHash = value.String
			}
		case board.FieldShareableLink:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field shareable_link", values[i])
			} else if value.Valid {
				_m.ShareableLink = value.String
			}
		case board.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Board.
// This includes values selected through modifiers, order, etc.
func (_m *Board) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Board.
// Note that you need to call Board.Unwrap() before calling this method if this Board
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Board) Update() *BoardUpdateOne {
	return NewBoardClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Board entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Board) Unwrap() *Board {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Board is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Board) String() string {
	var builder strings.Builder
	builder.WriteString("Board(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("columns=")
	builder.WriteString(fmt.Sprintf("%v", _m.Columns))
	builder.WriteString(", ")
	builder.WriteString("admins=")
	builder.WriteString(fmt.Sprintf("%v", _m.Admins))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	if v := _m.ClosedAt; v != nil {
		builder.WriteString("closed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CardLimit; v != nil {
		builder.WriteString("card_limit=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ReactionLimit; v != nil {
		builder.WriteString("reaction_limit=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("creator_hash=")
	builder.WriteString(_m.CreatorHash)
	builder.WriteString(", ")
	builder.WriteString("shareable_link=")
	builder.WriteString(_m.ShareableLink)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Boards is a parsable slice of Board.
type Boards []*Board
