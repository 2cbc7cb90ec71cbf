// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/retroboardhq/retroboard/ent/card"
)

// Card is the model entity for the Card schema.
type Card struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// BoardID holds the value of the "board_id" field.
	BoardID string `json:"board_id,omitempty"`
	// ColumnID holds the value of the "column_id" field.
	ColumnID string `json:"column_id,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// CardType holds the value of the "card_type" field.
	CardType card.CardType `json:"card_type,omitempty"`
	// IsAnonymous holds the value of the "is_anonymous" field.
	IsAnonymous bool `json:"is_anonymous,omitempty"`
	// CreatedByHash holds the value of the "created_by_hash" field.
	CreatedByHash string `json:"created_by_hash,omitempty"`
	// Nil iff the card is anonymous
	CreatedByAlias *string `json:"created_by_alias,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Reactions directly on this card
	DirectCount int `json:"direct_count,omitempty"`
	// direct_count plus the sum of children's direct_counts
	AggregatedCount int `json:"aggregated_count,omitempty"`
	// Parent feedback card; depth is capped at one level
	ParentID *string `json:"parent_id,omitempty"`
	// Action cards only: linked feedback cards on the same board
	LinkedFeedbackIds []string `json:"linked_feedback_ids,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Card) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case card.FieldLinkedFeedbackIds:
			values[i] = new([]byte)
		case card.FieldIsAnonymous:
			values[i] = new(sql.NullBool)
		case card.FieldDirectCount, card.FieldAggregatedCount:
			values[i] = new(sql.NullInt64)
		case card.FieldID, card.FieldBoardID, card.FieldColumnID, card.FieldContent, card.FieldCardType, card.FieldCreatedByHash, card.FieldCreatedByAlias, card.FieldParentID:
			values[i] = new(sql.NullString)
		case card.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Card fields.
func (_m *Card) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case card.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case card.FieldBoardID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field board_id", values[i])
			} else if value.Valid {
				_m.BoardID = value.String
			}
		case card.FieldColumnID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field column_id", values[i])
			} else if value.Valid {
				_m.ColumnID = value.String
			}
		case card.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case card.FieldCardType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field card_type", values[i])
			} else if value.Valid {
				_m.CardType = card.CardType(value.String)
			}
		case card.FieldIsAnonymous:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_anonymous", values[i])
			} else if value.Valid {
				_m.IsAnonymous = value.Bool
			}
		case card.FieldCreatedByHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by_hash", values[i])
			} else if value.Valid {
				_m.CreatedByHash = value.String
			}
		case card.FieldCreatedByAlias:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by_alias", values[i])
			} else if value.Valid {
				_m.CreatedByAlias = new(string)
				*_m.CreatedByAlias = value.String
			}
		case card.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case card.FieldDirectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field direct_count", values[i])
			} else if value.Valid {
				_m.DirectCount = int(value.Int64)
			}
		case card.FieldAggregatedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field aggregated_count", values[i])
			} else if value.Valid {
				_m.AggregatedCount = int(value.Int64)
			}
		case card.FieldParentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = new(string)
				*_m.ParentID = value.String
			}
		case card.FieldLinkedFeedbackIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field linked_feedback_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LinkedFeedbackIds); err != nil {
					return fmt.Errorf("unmarshal field linked_feedback_ids: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Card.
// This includes values selected through modifiers, order, etc.
func (_m *Card) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Card.
// Note that you need to call Card.Unwrap() before calling this method if this Card
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Card) Update() *CardUpdateOne {
	return NewCardClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Card entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Card) Unwrap() *Card {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Card is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Card) String() string {
	var builder strings.Builder
	builder.WriteString("Card(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("board_id=")
	builder.WriteString(_m.BoardID)
	builder.WriteString(", ")
	builder.WriteString("column_id=")
	builder.WriteString(_m.ColumnID)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("card_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.CardType))
	builder.WriteString(", ")
	builder.WriteString("is_anonymous=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsAnonymous))
	builder.WriteString(", ")
	builder.WriteString("created_by_hash=")
	builder.WriteString(_m.CreatedByHash)
	builder.WriteString(", ")
	if v := _m.CreatedByAlias; v != nil {
		builder.WriteString("created_by_alias=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("direct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.DirectCount))
	builder.WriteString(", ")
	builder.WriteString("aggregated_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AggregatedCount))
	builder.WriteString(", ")
	if v := _m.ParentID; v != nil {
		builder.WriteString("parent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("linked_feedback_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.LinkedFeedbackIds))
	builder.WriteByte(')')
	return builder.String()
}

// Cards is a parsable slice of Card.
type Cards []*Card
