// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/retroboardhq/retroboard/ent/board"
	"github.com/retroboardhq/retroboard/ent/card"
	"github.com/retroboardhq/retroboard/ent/predicate"
	"github.com/retroboardhq/retroboard/ent/reaction"
	"github.com/retroboardhq/retroboard/ent/usersession"
	"github.com/retroboardhq/retroboard/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBoard       = "Board"
	TypeCard        = "Card"
	TypeReaction    = "Reaction"
	TypeUserSession = "UserSession"
)

// BoardMutation represents an operation that mutates the Board nodes in the graph.
type BoardMutation struct {
	config
	op                Op
	typ               string
	id                *string
	name              *string
	columns           *[]models.Column
	appendcolumns     []models.Column
	admins            *[]string
	appendadmins      []string
	state             *board.State
	closed_at         *time.Time
	card_limit        *int
	addcard_limit     *int
	reaction_limit    *int
	addreaction_limit *int
	creator_hash      *string
	shareable_link    *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Board, error)
	predicates        []predicate.Board
}

var _ ent.Mutation = (*BoardMutation)(nil)

// boardOption allows management of the mutation configuration using functional options.
type boardOption func(*BoardMutation)

// newBoardMutation creates new mutation for the Board entity.
func newBoardMutation(c config, op Op, opts ...boardOption) *BoardMutation {
	m := &BoardMutation{
		config:        c,
		op:            op,
		typ:           TypeBoard,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBoardID sets the ID field of the mutation.
func withBoardID(id string) boardOption {
	return func(m *BoardMutation) {
		var (
			err   error
			once  sync.Once
			value *Board
		)
		m.oldValue = func(ctx context.Context) (*Board, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Board.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBoard sets the old Board of the mutation.
func withBoard(node *Board) boardOption {
	return func(m *BoardMutation) {
		m.oldValue = func(context.Context) (*Board, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BoardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BoardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Board entities.
func (m *BoardMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BoardMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BoardMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Board.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *BoardMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BoardMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Board entity.
// If the Board object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BoardMutation) ResetName() {
	m.name = nil
}

// SetColumns sets the "columns" field.
func (m *BoardMutation) SetColumns(value []models.Column) {
	m.columns = &value
	m.appendcolumns = nil
}

// Columns returns the value of the "columns" field in the mutation.
func (m *BoardMutation) Columns() (r []models.Column, exists bool) {
	v := m.columns
	if v == nil {
		return
	}
	return *v, true
}

// OldColumns returns the old "columns" field's value of the Board entity.
// If the Board object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardMutation) OldColumns(ctx context.Context) (v []models.Column, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColumns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColumns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColumns: %w", err)
	}
	return oldValue.Columns, nil
}

// AppendColumns adds value to the "columns" field.
func (m *BoardMutation) AppendColumns(value []models.Column) {
	m.appendcolumns = append(m.appendcolumns, value...)
}

// AppendedColumns returns the list of values that were appended to the "columns" field in this mutation.
func (m *BoardMutation) AppendedColumns() ([]models.Column, bool) {
	if len(m.appendcolumns) == 0 {
		return nil, false
	}
	return m.appendcolumns, true
}

// ResetColumns resets all changes to the "columns" field.
func (m *BoardMutation) ResetColumns() {
	m.columns = nil
	m.appendcolumns = nil
}

// SetAdmins sets the "admins" field.
func (m *BoardMutation) SetAdmins(s []string) {
	m.admins = &s
	m.appendadmins = nil
}

// Admins returns the value of the "admins" field in the mutation.
func (m *BoardMutation) Admins() (r []string, exists bool) {
	v := m.admins
	if v == nil {
		return
	}
	return *v, true
}

// OldAdmins returns the old "admins" field's value of the Board entity.
// If the Board object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardMutation) OldAdmins(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdmins is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdmins requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdmins: %w", err)
	}
	return oldValue.Admins, nil
}

// AppendAdmins adds s to the "admins" field.
func (m *BoardMutation) AppendAdmins(s []string) {
	m.appendadmins = append(m.appendadmins, s...)
}

// AppendedAdmins returns the list of values that were appended to the "admins" field in this mutation.
func (m *BoardMutation) AppendedAdmins() ([]string, bool) {
	if len(m.appendadmins) == 0 {
		return nil, false
	}
	return m.appendadmins, true
}

// ResetAdmins resets all changes to the "admins" field.
func (m *BoardMutation) ResetAdmins() {
	m.admins = nil
	m.appendadmins = nil
}

// SetState sets the "state" field.
func (m *BoardMutation) SetState(b board.State) {
	m.state = &b
}

// State returns the value of the "state" field in the mutation.
func (m *BoardMutation) State() (r board.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Board entity.
// If the Board object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardMutation) OldState(ctx context.Context) (v board.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *BoardMutation) ResetState() {
	m.state = nil
}

// SetClosedAt sets the "closed_at" field.
func (m *BoardMutation) SetClosedAt(t time.Time) {
	m.closed_at = &t
}

// ClosedAt returns the value of the "closed_at" field in the mutation.
func (m *BoardMutation) ClosedAt() (r time.Time, exists bool) {
	v := m.closed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClosedAt returns the old "closed_at" field's value of the Board entity.
// If the Board object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardMutation) OldClosedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosedAt: %w", err)
	}
	return oldValue.ClosedAt, nil
}

// ClearClosedAt clears the value of the "closed_at" field.
func (m *BoardMutation) ClearClosedAt() {
	m.closed_at = nil
	m.clearedFields[board.FieldClosedAt] = struct{}{}
}

// ClosedAtCleared returns if the "closed_at" field was cleared in this mutation.
func (m *BoardMutation) ClosedAtCleared() bool {
	_, ok := m.clearedFields[board.FieldClosedAt]
	return ok
}

// ResetClosedAt resets all changes to the "closed_at" field.
func (m *BoardMutation) ResetClosedAt() {
	m.closed_at = nil
	delete(m.clearedFields, board.FieldClosedAt)
}

// SetCardLimit sets the "card_limit" field.
func (m *BoardMutation) SetCardLimit(i int) {
	m.card_limit = &i
	m.addcard_limit = nil
}

// CardLimit returns the value of the "card_limit" field in the mutation.
func (m *BoardMutation) CardLimit() (r int, exists bool) {
	v := m.card_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldCardLimit returns the old "card_limit" field's value of the Board entity.
// If the Board object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardMutation) OldCardLimit(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardLimit: %w", err)
	}
	return oldValue.CardLimit, nil
}

// AddCardLimit adds i to the "card_limit" field.
func (m *BoardMutation) AddCardLimit(i int) {
	if m.addcard_limit != nil {
		*m.addcard_limit += i
	} else {
		m.addcard_limit = &i
	}
}

// AddedCardLimit returns the value that was added to the "card_limit" field in this mutation.
func (m *BoardMutation) AddedCardLimit() (r int, exists bool) {
	v := m.addcard_limit
	if v == nil {
		return
	}
	return *v, true
}

// ClearCardLimit clears the value of the "card_limit" field.
func (m *BoardMutation) ClearCardLimit() {
	m.card_limit = nil
	m.addcard_limit = nil
	m.clearedFields[board.FieldCardLimit] = struct{}{}
}

// CardLimitCleared returns if the "card_limit" field was cleared in this mutation.
func (m *BoardMutation) CardLimitCleared() bool {
	_, ok := m.clearedFields[board.FieldCardLimit]
	return ok
}

// ResetCardLimit resets all changes to the "card_limit" field.
func (m *BoardMutation) ResetCardLimit() {
	m.card_limit = nil
	m.addcard_limit = nil
	delete(m.clearedFields, board.FieldCardLimit)
}

// SetReactionLimit sets the "reaction_limit" field.
func (m *BoardMutation) SetReactionLimit(i int) {
	m.reaction_limit = &i
	m.addreaction_limit = nil
}

// ReactionLimit returns the value of the "reaction_limit" field in the mutation.
func (m *BoardMutation) ReactionLimit() (r int, exists bool) {
	v := m.reaction_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldReactionLimit returns the old "reaction_limit" field's value of the Board entity.
// If the Board object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardMutation) OldReactionLimit(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReactionLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReactionLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReactionLimit: %w", err)
	}
	return oldValue.ReactionLimit, nil
}

// AddReactionLimit adds i to the "reaction_limit" field.
func (m *BoardMutation) AddReactionLimit(i int) {
	if m.addreaction_limit != nil {
		*m.addreaction_limit += i
	} else {
		m.addreaction_limit = &i
	}
}

// AddedReactionLimit returns the value that was added to the "reaction_limit" field in this mutation.
func (m *BoardMutation) AddedReactionLimit() (r int, exists bool) {
	v := m.addreaction_limit
	if v == nil {
		return
	}
	return *v, true
}

// ClearReactionLimit clears the value of the "reaction_limit" field.
func (m *BoardMutation) ClearReactionLimit() {
	m.reaction_limit = nil
	m.addreaction_limit = nil
	m.clearedFields[board.FieldReactionLimit] = struct{}{}
}

// ReactionLimitCleared returns if the "reaction_limit" field was cleared in this mutation.
func (m *BoardMutation) ReactionLimitCleared() bool {
	_, ok := m.clearedFields[board.FieldReactionLimit]
	return ok
}

// ResetReactionLimit resets all changes to the "reaction_limit" field.
func (m *BoardMutation) ResetReactionLimit() {
	m.reaction_limit = nil
	m.addreaction_limit = nil
	delete(m.clearedFields, board.FieldReactionLimit)
}

// SetCreatorHash sets the "creator_hash" field.
func (m *BoardMutation) SetCreatorHash(s string) {
	m.creator_hash = &s
}

// CreatorHash returns the value of the "creator_hash" field in the mutation.
func (m *BoardMutation) CreatorHash() (r string, exists bool) {
	v := m.creator_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatorHash returns the old "creator_hash" field's value of the Board entity.
// If the Board object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardMutation) OldCreatorHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatorHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatorHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatorHash: %w", err)
	}
	return oldValue.CreatorHash, nil
}

// ResetCreatorHash resets all changes to the "creator_hash" field.
func (m *BoardMutation) ResetCreatorHash() {
	m.creator_hash = nil
}

// SetShareableLink sets the "shareable_link" field.
func (m *BoardMutation) SetShareableLink(s string) {
	m.shareable_link = &s
}

// ShareableLink returns the value of the "shareable_link" field in the mutation.
func (m *BoardMutation) ShareableLink() (r string, exists bool) {
	v := m.shareable_link
	if v == nil {
		return
	}
	return *v, true
}

// OldShareableLink returns the old "shareable_link" field's value of the Board entity.
// If the Board object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardMutation) OldShareableLink(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShareableLink is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShareableLink requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShareableLink: %w", err)
	}
	return oldValue.ShareableLink, nil
}

// ResetShareableLink resets all changes to the "shareable_link" field.
func (m *BoardMutation) ResetShareableLink() {
	m.shareable_link = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BoardMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BoardMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Board entity.
// If the Board object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BoardMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the BoardMutation builder.
func (m *BoardMutation) Where(ps ...predicate.Board) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BoardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BoardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Board, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BoardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BoardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Board).
func (m *BoardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BoardMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.name != nil {
		fields = append(fields, board.FieldName)
	}
	if m.columns != nil {
		fields = append(fields, board.FieldColumns)
	}
	if m.admins != nil {
		fields = append(fields, board.FieldAdmins)
	}
	if m.state != nil {
		fields = append(fields, board.FieldState)
	}
	if m.closed_at != nil {
		fields = append(fields, board.FieldClosedAt)
	}
	if m.card_limit != nil {
		fields = append(fields, board.FieldCardLimit)
	}
	if m.reaction_limit != nil {
		fields = append(fields, board.FieldReactionLimit)
	}
	if m.creator_hash != nil {
		fields = append(fields, board.FieldCreatorHash)
	}
	if m.shareable_link != nil {
		fields = append(fields, board.FieldShareableLink)
	}
	if m.created_at != nil {
		fields = append(fields, board.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BoardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case board.FieldName:
		return m.Name()
	case board.FieldColumns:
		return m.Columns()
	case board.FieldAdmins:
		return m.Admins()
	case board.FieldState:
		return m.State()
	case board.FieldClosedAt:
		return m.ClosedAt()
	case board.FieldCardLimit:
		return m.CardLimit()
	case board.FieldReactionLimit:
		return m.ReactionLimit()
	case board.FieldCreatorHash:
		return m.CreatorHash()
	case board.FieldShareableLink:
		return m.ShareableLink()
	case board.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BoardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case board.FieldName:
		return m.OldName(ctx)
	case board.FieldColumns:
		return m.OldColumns(ctx)
	case board.FieldAdmins:
		return m.OldAdmins(ctx)
	case board.FieldState:
		return m.OldState(ctx)
	case board.FieldClosedAt:
		return m.OldClosedAt(ctx)
	case board.FieldCardLimit:
		return m.OldCardLimit(ctx)
	case board.FieldReactionLimit:
		return m.OldReactionLimit(ctx)
	case board.FieldCreatorHash:
		return m.OldCreatorHash(ctx)
	case board.FieldShareableLink:
		return m.OldShareableLink(ctx)
	case board.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Board field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BoardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case board.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case board.FieldColumns:
		v, ok := value.([]models.Column)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColumns(v)
		return nil
	case board.FieldAdmins:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdmins(v)
		return nil
	case board.FieldState:
		v, ok := value.(board.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case board.FieldClosedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosedAt(v)
		return nil
	case board.FieldCardLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardLimit(v)
		return nil
	case board.FieldReactionLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReactionLimit(v)
		return nil
	case board.FieldCreatorHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatorHash(v)
		return nil
	case board.FieldShareableLink:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShareableLink(v)
		return nil
	case board.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Board field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BoardMutation) AddedFields() []string {
	var fields []string
	if m.addcard_limit != nil {
		fields = append(fields, board.FieldCardLimit)
	}
	if m.addreaction_limit != nil {
		fields = append(fields, board.FieldReactionLimit)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BoardMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case board.FieldCardLimit:
		return m.AddedCardLimit()
	case board.FieldReactionLimit:
		return m.AddedReactionLimit()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BoardMutation) AddField(name string, value ent.Value) error {
	switch name {
	case board.FieldCardLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCardLimit(v)
		return nil
	case board.FieldReactionLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReactionLimit(v)
		return nil
	}
	return fmt.Errorf("unknown Board numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BoardMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(board.FieldClosedAt) {
		fields = append(fields, board.FieldClosedAt)
	}
	if m.FieldCleared(board.FieldCardLimit) {
		fields = append(fields, board.FieldCardLimit)
	}
	if m.FieldCleared(board.FieldReactionLimit) {
		fields = append(fields, board.FieldReactionLimit)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BoardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BoardMutation) ClearField(name string) error {
	switch name {
	case board.FieldClosedAt:
		m.ClearClosedAt()
		return nil
	case board.FieldCardLimit:
		m.ClearCardLimit()
		return nil
	case board.FieldReactionLimit:
		m.ClearReactionLimit()
		return nil
	}
	return fmt.Errorf("unknown Board nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BoardMutation) ResetField(name string) error {
	switch name {
	case board.FieldName:
		m.ResetName()
		return nil
	case board.FieldColumns:
		m.ResetColumns()
		return nil
	case board.FieldAdmins:
		m.ResetAdmins()
		return nil
	case board.FieldState:
		m.ResetState()
		return nil
	case board.FieldClosedAt:
		m.ResetClosedAt()
		return nil
	case board.FieldCardLimit:
		m.ResetCardLimit()
		return nil
	case board.FieldReactionLimit:
		m.ResetReactionLimit()
		return nil
	case board.FieldCreatorHash:
		m.ResetCreatorHash()
		return nil
	case board.FieldShareableLink:
		m.ResetShareableLink()
		return nil
	case board.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Board field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BoardMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BoardMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BoardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BoardMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BoardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BoardMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BoardMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Board unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BoardMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Board edge %s", name)
}

// CardMutation represents an operation that mutates the Card nodes in the graph.
type CardMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	board_id                  *string
	column_id                 *string
	content                   *string
	card_type                 *card.CardType
	is_anonymous              *bool
	created_by_hash           *string
	created_by_alias          *string
	created_at                *time.Time
	direct_count              *int
	adddirect_count           *int
	aggregated_count          *int
	addaggregated_count       *int
	parent_id                 *string
	linked_feedback_ids       *[]string
	appendlinked_feedback_ids []string
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*Card, error)
	predicates                []predicate.Card
}

var _ ent.Mutation = (*CardMutation)(nil)

// cardOption allows management of the mutation configuration using functional options.
type cardOption func(*CardMutation)

// newCardMutation creates new mutation for the Card entity.
func newCardMutation(c config, op Op, opts ...cardOption) *CardMutation {
	m := &CardMutation{
		config:        c,
		op:            op,
		typ:           TypeCard,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCardID sets the ID field of the mutation.
func withCardID(id string) cardOption {
	return func(m *CardMutation) {
		var (
			err   error
			once  sync.Once
			value *Card
		)
		m.oldValue = func(ctx context.Context) (*Card, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Card.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCard sets the old Card of the mutation.
func withCard(node *Card) cardOption {
	return func(m *CardMutation) {
		m.oldValue = func(context.Context) (*Card, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Card entities.
func (m *CardMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CardMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CardMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Card.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBoardID sets the "board_id" field.
func (m *CardMutation) SetBoardID(s string) {
	m.board_id = &s
}

// BoardID returns the value of the "board_id" field in the mutation.
func (m *CardMutation) BoardID() (r string, exists bool) {
	v := m.board_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBoardID returns the old "board_id" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldBoardID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoardID: %w", err)
	}
	return oldValue.BoardID, nil
}

// ResetBoardID resets all changes to the "board_id" field.
func (m *CardMutation) ResetBoardID() {
	m.board_id = nil
}

// SetColumnID sets the "column_id" field.
func (m *CardMutation) SetColumnID(s string) {
	m.column_id = &s
}

// ColumnID returns the value of the "column_id" field in the mutation.
func (m *CardMutation) ColumnID() (r string, exists bool) {
	v := m.column_id
	if v == nil {
		return
	}
	return *v, true
}

// OldColumnID returns the old "column_id" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldColumnID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColumnID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColumnID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColumnID: %w", err)
	}
	return oldValue.ColumnID, nil
}

// ResetColumnID resets all changes to the "column_id" field.
func (m *CardMutation) ResetColumnID() {
	m.column_id = nil
}

// SetContent sets the "content" field.
func (m *CardMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *CardMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *CardMutation) ResetContent() {
	m.content = nil
}

// SetCardType sets the "card_type" field.
func (m *CardMutation) SetCardType(ct card.CardType) {
	m.card_type = &ct
}

// CardType returns the value of the "card_type" field in the mutation.
func (m *CardMutation) CardType() (r card.CardType, exists bool) {
	v := m.card_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCardType returns the old "card_type" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldCardType(ctx context.Context) (v card.CardType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardType: %w", err)
	}
	return oldValue.CardType, nil
}

// ResetCardType resets all changes to the "card_type" field.
func (m *CardMutation) ResetCardType() {
	m.card_type = nil
}

// SetIsAnonymous sets the "is_anonymous" field.
func (m *CardMutation) SetIsAnonymous(b bool) {
	m.is_anonymous = &b
}

// IsAnonymous returns the value of the "is_anonymous" field in the mutation.
func (m *CardMutation) IsAnonymous() (r bool, exists bool) {
	v := m.is_anonymous
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAnonymous returns the old "is_anonymous" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldIsAnonymous(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAnonymous is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAnonymous requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAnonymous: %w", err)
	}
	return oldValue.IsAnonymous, nil
}

// ResetIsAnonymous resets all changes to the "is_anonymous" field.
func (m *CardMutation) ResetIsAnonymous() {
	m.is_anonymous = nil
}

// SetCreatedByHash sets the "created_by_hash" field.
func (m *CardMutation) SetCreatedByHash(s string) {
	m.created_by_hash = &s
}

// CreatedByHash returns the value of the "created_by_hash" field in the mutation.
func (m *CardMutation) CreatedByHash() (r string, exists bool) {
	v := m.created_by_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedByHash returns the old "created_by_hash" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldCreatedByHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedByHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedByHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedByHash: %w", err)
	}
	return oldValue.CreatedByHash, nil
}

// ResetCreatedByHash resets all changes to the "created_by_hash" field.
func (m *CardMutation) ResetCreatedByHash() {
	m.created_by_hash = nil
}

// SetCreatedByAlias sets the "created_by_alias" field.
func (m *CardMutation) SetCreatedByAlias(s string) {
	m.created_by_alias = &s
}

// CreatedByAlias returns the value of the "created_by_alias" field in the mutation.
func (m *CardMutation) CreatedByAlias() (r string, exists bool) {
	v := m.created_by_alias
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedByAlias returns the old "created_by_alias" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldCreatedByAlias(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedByAlias is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedByAlias requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedByAlias: %w", err)
	}
	return oldValue.CreatedByAlias, nil
}

// ClearCreatedByAlias clears the value of the "created_by_alias" field.
func (m *CardMutation) ClearCreatedByAlias() {
	m.created_by_alias = nil
	m.clearedFields[card.FieldCreatedByAlias] = struct{}{}
}

// CreatedByAliasCleared returns if the "created_by_alias" field was cleared in this mutation.
func (m *CardMutation) CreatedByAliasCleared() bool {
	_, ok := m.clearedFields[card.FieldCreatedByAlias]
	return ok
}

// ResetCreatedByAlias resets all changes to the "created_by_alias" field.
func (m *CardMutation) ResetCreatedByAlias() {
	m.created_by_alias = nil
	delete(m.clearedFields, card.FieldCreatedByAlias)
}

// SetCreatedAt sets the "created_at" field.
func (m *CardMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CardMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CardMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDirectCount sets the "direct_count" field.
func (m *CardMutation) SetDirectCount(i int) {
	m.direct_count = &i
	m.adddirect_count = nil
}

// DirectCount returns the value of the "direct_count" field in the mutation.
func (m *CardMutation) DirectCount() (r int, exists bool) {
	v := m.direct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldDirectCount returns the old "direct_count" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldDirectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirectCount: %w", err)
	}
	return oldValue.DirectCount, nil
}

// AddDirectCount adds i to the "direct_count" field.
func (m *CardMutation) AddDirectCount(i int) {
	if m.adddirect_count != nil {
		*m.adddirect_count += i
	} else {
		m.adddirect_count = &i
	}
}

// AddedDirectCount returns the value that was added to the "direct_count" field in this mutation.
func (m *CardMutation) AddedDirectCount() (r int, exists bool) {
	v := m.adddirect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetDirectCount resets all changes to the "direct_count" field.
func (m *CardMutation) ResetDirectCount() {
	m.direct_count = nil
	m.adddirect_count = nil
}

// SetAggregatedCount sets the "aggregated_count" field.
func (m *CardMutation) SetAggregatedCount(i int) {
	m.aggregated_count = &i
	m.addaggregated_count = nil
}

// AggregatedCount returns the value of the "aggregated_count" field in the mutation.
func (m *CardMutation) AggregatedCount() (r int, exists bool) {
	v := m.aggregated_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAggregatedCount returns the old "aggregated_count" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldAggregatedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAggregatedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAggregatedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAggregatedCount: %w", err)
	}
	return oldValue.AggregatedCount, nil
}

// AddAggregatedCount adds i to the "aggregated_count" field.
func (m *CardMutation) AddAggregatedCount(i int) {
	if m.addaggregated_count != nil {
		*m.addaggregated_count += i
	} else {
		m.addaggregated_count = &i
	}
}

// AddedAggregatedCount returns the value that was added to the "aggregated_count" field in this mutation.
func (m *CardMutation) AddedAggregatedCount() (r int, exists bool) {
	v := m.addaggregated_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAggregatedCount resets all changes to the "aggregated_count" field.
func (m *CardMutation) ResetAggregatedCount() {
	m.aggregated_count = nil
	m.addaggregated_count = nil
}

// SetParentID sets the "parent_id" field.
func (m *CardMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *CardMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *CardMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[card.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *CardMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[card.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *CardMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, card.FieldParentID)
}

// SetLinkedFeedbackIds sets the "linked_feedback_ids" field.
func (m *CardMutation) SetLinkedFeedbackIds(s []string) {
	m.linked_feedback_ids = &s
	m.appendlinked_feedback_ids = nil
}

// LinkedFeedbackIds returns the value of the "linked_feedback_ids" field in the mutation.
func (m *CardMutation) LinkedFeedbackIds() (r []string, exists bool) {
	v := m.linked_feedback_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkedFeedbackIds returns the old "linked_feedback_ids" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldLinkedFeedbackIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkedFeedbackIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkedFeedbackIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkedFeedbackIds: %w", err)
	}
	return oldValue.LinkedFeedbackIds, nil
}

// AppendLinkedFeedbackIds adds s to the "linked_feedback_ids" field.
func (m *CardMutation) AppendLinkedFeedbackIds(s []string) {
	m.appendlinked_feedback_ids = append(m.appendlinked_feedback_ids, s...)
}

// AppendedLinkedFeedbackIds returns the list of values that were appended to the "linked_feedback_ids" field in this mutation.
func (m *CardMutation) AppendedLinkedFeedbackIds() ([]string, bool) {
	if len(m.appendlinked_feedback_ids) == 0 {
		return nil, false
	}
	return m.appendlinked_feedback_ids, true
}

// ClearLinkedFeedbackIds clears the value of the "linked_feedback_ids" field.
func (m *CardMutation) ClearLinkedFeedbackIds() {
	m.linked_feedback_ids = nil
	m.appendlinked_feedback_ids = nil
	m.clearedFields[card.FieldLinkedFeedbackIds] = struct{}{}
}

// LinkedFeedbackIdsCleared returns if the "linked_feedback_ids" field was cleared in this mutation.
func (m *CardMutation) LinkedFeedbackIdsCleared() bool {
	_, ok := m.clearedFields[card.FieldLinkedFeedbackIds]
	return ok
}

// ResetLinkedFeedbackIds resets all changes to the "linked_feedback_ids" field.
func (m *CardMutation) ResetLinkedFeedbackIds() {
	m.linked_feedback_ids = nil
	m.appendlinked_feedback_ids = nil
	delete(m.clearedFields, card.FieldLinkedFeedbackIds)
}

// Where appends a list predicates to the CardMutation builder.
func (m *CardMutation) Where(ps ...predicate.Card) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Card, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Card).
func (m *CardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CardMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.board_id != nil {
		fields = append(fields, card.FieldBoardID)
	}
	if m.column_id != nil {
		fields = append(fields, card.FieldColumnID)
	}
	if m.content != nil {
		fields = append(fields, card.FieldContent)
	}
	if m.card_type != nil {
		fields = append(fields, card.FieldCardType)
	}
	if m.is_anonymous != nil {
		fields = append(fields, card.FieldIsAnonymous)
	}
	if m.created_by_hash != nil {
		fields = append(fields, card.FieldCreatedByHash)
	}
	if m.created_by_alias != nil {
		fields = append(fields, card.FieldCreatedByAlias)
	}
	if m.created_at != nil {
		fields = append(fields, card.FieldCreatedAt)
	}
	if m.direct_count != nil {
		fields = append(fields, card.FieldDirectCount)
	}
	if m.aggregated_count != nil {
		fields = append(fields, card.FieldAggregatedCount)
	}
	if m.parent_id != nil {
		fields = append(fields, card.FieldParentID)
	}
	if m.linked_feedback_ids != nil {
		fields = append(fields, card.FieldLinkedFeedbackIds)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case card.FieldBoardID:
		return m.BoardID()
	case card.FieldColumnID:
		return m.ColumnID()
	case card.FieldContent:
		return m.Content()
	case card.FieldCardType:
		return m.CardType()
	case card.FieldIsAnonymous:
		return m.IsAnonymous()
	case card.FieldCreatedByHash:
		return m.CreatedByHash()
	case card.FieldCreatedByAlias:
		return m.CreatedByAlias()
	case card.FieldCreatedAt:
		return m.CreatedAt()
	case card.FieldDirectCount:
		return m.DirectCount()
	case card.FieldAggregatedCount:
		return m.AggregatedCount()
	case card.FieldParentID:
		return m.ParentID()
	case card.FieldLinkedFeedbackIds:
		return m.LinkedFeedbackIds()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case card.FieldBoardID:
		return m.OldBoardID(ctx)
	case card.FieldColumnID:
		return m.OldColumnID(ctx)
	case card.FieldContent:
		return m.OldContent(ctx)
	case card.FieldCardType:
		return m.OldCardType(ctx)
	case card.FieldIsAnonymous:
		return m.OldIsAnonymous(ctx)
	case card.FieldCreatedByHash:
		return m.OldCreatedByHash(ctx)
	case card.FieldCreatedByAlias:
		return m.OldCreatedByAlias(ctx)
	case card.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case card.FieldDirectCount:
		return m.OldDirectCount(ctx)
	case card.FieldAggregatedCount:
		return m.OldAggregatedCount(ctx)
	case card.FieldParentID:
		return m.OldParentID(ctx)
	case card.FieldLinkedFeedbackIds:
		return m.OldLinkedFeedbackIds(ctx)
	}
	return nil, fmt.Errorf("unknown Card field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case card.FieldBoardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoardID(v)
		return nil
	case card.FieldColumnID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColumnID(v)
		return nil
	case card.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case card.FieldCardType:
		v, ok := value.(card.CardType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardType(v)
		return nil
	case card.FieldIsAnonymous:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAnonymous(v)
		return nil
	case card.FieldCreatedByHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedByHash(v)
		return nil
	case card.FieldCreatedByAlias:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedByAlias(v)
		return nil
	case card.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case card.FieldDirectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirectCount(v)
		return nil
	case card.FieldAggregatedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAggregatedCount(v)
		return nil
	case card.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case card.FieldLinkedFeedbackIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkedFeedbackIds(v)
		return nil
	}
	return fmt.Errorf("unknown Card field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CardMutation) AddedFields() []string {
	var fields []string
	if m.adddirect_count != nil {
		fields = append(fields, card.FieldDirectCount)
	}
	if m.addaggregated_count != nil {
		fields = append(fields, card.FieldAggregatedCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CardMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case card.FieldDirectCount:
		return m.AddedDirectCount()
	case card.FieldAggregatedCount:
		return m.AddedAggregatedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CardMutation) AddField(name string, value ent.Value) error {
	switch name {
	case card.FieldDirectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDirectCount(v)
		return nil
	case card.FieldAggregatedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAggregatedCount(v)
		return nil
	}
	return fmt.Errorf("unknown Card numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CardMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(card.FieldCreatedByAlias) {
		fields = append(fields, card.FieldCreatedByAlias)
	}
	if m.FieldCleared(card.FieldParentID) {
		fields = append(fields, card.FieldParentID)
	}
	if m.FieldCleared(card.FieldLinkedFeedbackIds) {
		fields = append(fields, card.FieldLinkedFeedbackIds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CardMutation) ClearField(name string) error {
	switch name {
	case card.FieldCreatedByAlias:
		m.ClearCreatedByAlias()
		return nil
	case card.FieldParentID:
		m.ClearParentID()
		return nil
	case card.FieldLinkedFeedbackIds:
		m.ClearLinkedFeedbackIds()
		return nil
	}
	return fmt.Errorf("unknown Card nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CardMutation) ResetField(name string) error {
	switch name {
	case card.FieldBoardID:
		m.ResetBoardID()
		return nil
	case card.FieldColumnID:
		m.ResetColumnID()
		return nil
	case card.FieldContent:
		m.ResetContent()
		return nil
	case card.FieldCardType:
		m.ResetCardType()
		return nil
	case card.FieldIsAnonymous:
		m.ResetIsAnonymous()
		return nil
	case card.FieldCreatedByHash:
		m.ResetCreatedByHash()
		return nil
	case card.FieldCreatedByAlias:
		m.ResetCreatedByAlias()
		return nil
	case card.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case card.FieldDirectCount:
		m.ResetDirectCount()
		return nil
	case card.FieldAggregatedCount:
		m.ResetAggregatedCount()
		return nil
	case card.FieldParentID:
		m.ResetParentID()
		return nil
	case card.FieldLinkedFeedbackIds:
		m.ResetLinkedFeedbackIds()
		return nil
	}
	return fmt.Errorf("unknown Card field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CardMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CardMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CardMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CardMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CardMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Card unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CardMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Card edge %s", name)
}

// ReactionMutation represents an operation that mutates the Reaction nodes in the graph.
type ReactionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	card_id       *string
	identity_hash *string
	alias         *string
	kind          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Reaction, error)
	predicates    []predicate.Reaction
}

var _ ent.Mutation = (*ReactionMutation)(nil)

// reactionOption allows management of the mutation configuration using functional options.
type reactionOption func(*ReactionMutation)

// newReactionMutation creates new mutation for the Reaction entity.
func newReactionMutation(c config, op Op, opts ...reactionOption) *ReactionMutation {
	m := &ReactionMutation{
		config:        c,
		op:            op,
		typ:           TypeReaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReactionID sets the ID field of the mutation.
func withReactionID(id string) reactionOption {
	return func(m *ReactionMutation) {
		var (
			err   error
			once  sync.Once
			value *Reaction
		)
		m.oldValue = func(ctx context.Context) (*Reaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Reaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReaction sets the old Reaction of the mutation.
func withReaction(node *Reaction) reactionOption {
	return func(m *ReactionMutation) {
		m.oldValue = func(context.Context) (*Reaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Reaction entities.
func (m *ReactionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReactionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReactionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Reaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCardID sets the "card_id" field.
func (m *ReactionMutation) SetCardID(s string) {
	m.card_id = &s
}

// CardID returns the value of the "card_id" field in the mutation.
func (m *ReactionMutation) CardID() (r string, exists bool) {
	v := m.card_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCardID returns the old "card_id" field's value of the Reaction entity.
// If the Reaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReactionMutation) OldCardID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardID: %w", err)
	}
	return oldValue.CardID, nil
}

// ResetCardID resets all changes to the "card_id" field.
func (m *ReactionMutation) ResetCardID() {
	m.card_id = nil
}

// SetIdentityHash sets the "identity_hash" field.
func (m *ReactionMutation) SetIdentityHash(s string) {
	m.identity_hash = &s
}

// IdentityHash returns the value of the "identity_hash" field in the mutation.
func (m *ReactionMutation) IdentityHash() (r string, exists bool) {
	v := m.identity_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldIdentityHash returns the old "identity_hash" field's value of the Reaction entity.
// If the Reaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReactionMutation) OldIdentityHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdentityHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdentityHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdentityHash: %w", err)
	}
	return oldValue.IdentityHash, nil
}

// ResetIdentityHash resets all changes to the "identity_hash" field.
func (m *ReactionMutation) ResetIdentityHash() {
	m.identity_hash = nil
}

// SetAlias sets the "alias" field.
func (m *ReactionMutation) SetAlias(s string) {
	m.alias = &s
}

// Alias returns the value of the "alias" field in the mutation.
func (m *ReactionMutation) Alias() (r string, exists bool) {
	v := m.alias
	if v == nil {
		return
	}
	return *v, true
}

// OldAlias returns the old "alias" field's value of the Reaction entity.
// If the Reaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReactionMutation) OldAlias(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlias is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlias requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlias: %w", err)
	}
	return oldValue.Alias, nil
}

// ResetAlias resets all changes to the "alias" field.
func (m *ReactionMutation) ResetAlias() {
	m.alias = nil
}

// SetKind sets the "kind" field.
func (m *ReactionMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ReactionMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Reaction entity.
// If the Reaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReactionMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ReactionMutation) ResetKind() {
	m.kind = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Reaction entity.
// If the Reaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ReactionMutation builder.
func (m *ReactionMutation) Where(ps ...predicate.Reaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Reaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Reaction).
func (m *ReactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReactionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.card_id != nil {
		fields = append(fields, reaction.FieldCardID)
	}
	if m.identity_hash != nil {
		fields = append(fields, reaction.FieldIdentityHash)
	}
	if m.alias != nil {
		fields = append(fields, reaction.FieldAlias)
	}
	if m.kind != nil {
		fields = append(fields, reaction.FieldKind)
	}
	if m.created_at != nil {
		fields = append(fields, reaction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reaction.FieldCardID:
		return m.CardID()
	case reaction.FieldIdentityHash:
		return m.IdentityHash()
	case reaction.FieldAlias:
		return m.Alias()
	case reaction.FieldKind:
		return m.Kind()
	case reaction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reaction.FieldCardID:
		return m.OldCardID(ctx)
	case reaction.FieldIdentityHash:
		return m.OldIdentityHash(ctx)
	case reaction.FieldAlias:
		return m.OldAlias(ctx)
	case reaction.FieldKind:
		return m.OldKind(ctx)
	case reaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Reaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reaction.FieldCardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardID(v)
		return nil
	case reaction.FieldIdentityHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdentityHash(v)
		return nil
	case reaction.FieldAlias:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlias(v)
		return nil
	case reaction.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case reaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Reaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReactionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReactionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Reaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReactionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReactionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Reaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReactionMutation) ResetField(name string) error {
	switch name {
	case reaction.FieldCardID:
		m.ResetCardID()
		return nil
	case reaction.FieldIdentityHash:
		m.ResetIdentityHash()
		return nil
	case reaction.FieldAlias:
		m.ResetAlias()
		return nil
	case reaction.FieldKind:
		m.ResetKind()
		return nil
	case reaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Reaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReactionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReactionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReactionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReactionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Reaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReactionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Reaction edge %s", name)
}

// UserSessionMutation represents an operation that mutates the UserSession nodes in the graph.
type UserSessionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	board_id      *string
	identity_hash *string
	alias         *string
	last_active   *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*UserSession, error)
	predicates    []predicate.UserSession
}

var _ ent.Mutation = (*UserSessionMutation)(nil)

// usersessionOption allows management of the mutation configuration using functional options.
type usersessionOption func(*UserSessionMutation)

// newUserSessionMutation creates new mutation for the UserSession entity.
func newUserSessionMutation(c config, op Op, opts ...usersessionOption) *UserSessionMutation {
	m := &UserSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeUserSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserSessionID sets the ID field of the mutation.
func withUserSessionID(id string) usersessionOption {
	return func(m *UserSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *UserSession
		)
		m.oldValue = func(ctx context.Context) (*UserSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserSession sets the old UserSession of the mutation.
func withUserSession(node *UserSession) usersessionOption {
	return func(m *UserSessionMutation) {
		m.oldValue = func(context.Context) (*UserSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserSession entities.
func (m *UserSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBoardID sets the "board_id" field.
func (m *UserSessionMutation) SetBoardID(s string) {
	m.board_id = &s
}

// BoardID returns the value of the "board_id" field in the mutation.
func (m *UserSessionMutation) BoardID() (r string, exists bool) {
	v := m.board_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBoardID returns the old "board_id" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldBoardID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoardID: %w", err)
	}
	return oldValue.BoardID, nil
}

// ResetBoardID resets all changes to the "board_id" field.
func (m *UserSessionMutation) ResetBoardID() {
	m.board_id = nil
}

// SetIdentityHash sets the "identity_hash" field.
func (m *UserSessionMutation) SetIdentityHash(s string) {
	m.identity_hash = &s
}

// IdentityHash returns the value of the "identity_hash" field in the mutation.
func (m *UserSessionMutation) IdentityHash() (r string, exists bool) {
	v := m.identity_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldIdentityHash returns the old "identity_hash" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldIdentityHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdentityHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdentityHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdentityHash: %w", err)
	}
	return oldValue.IdentityHash, nil
}

// ResetIdentityHash resets all changes to the "identity_hash" field.
func (m *UserSessionMutation) ResetIdentityHash() {
	m.identity_hash = nil
}

// SetAlias sets the "alias" field.
func (m *UserSessionMutation) SetAlias(s string) {
	m.alias = &s
}

// Alias returns the value of the "alias" field in the mutation.
func (m *UserSessionMutation) Alias() (r string, exists bool) {
	v := m.alias
	if v == nil {
		return
	}
	return *v, true
}

// OldAlias returns the old "alias" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldAlias(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlias is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlias requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlias: %w", err)
	}
	return oldValue.Alias, nil
}

// ResetAlias resets all changes to the "alias" field.
func (m *UserSessionMutation) ResetAlias() {
	m.alias = nil
}

// SetLastActive sets the "last_active" field.
func (m *UserSessionMutation) SetLastActive(t time.Time) {
	m.last_active = &t
}

// LastActive returns the value of the "last_active" field in the mutation.
func (m *UserSessionMutation) LastActive() (r time.Time, exists bool) {
	v := m.last_active
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActive returns the old "last_active" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldLastActive(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActive: %w", err)
	}
	return oldValue.LastActive, nil
}

// ResetLastActive resets all changes to the "last_active" field.
func (m *UserSessionMutation) ResetLastActive() {
	m.last_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UserSessionMutation builder.
func (m *UserSessionMutation) Where(ps ...predicate.UserSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserSession).
func (m *UserSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserSessionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.board_id != nil {
		fields = append(fields, usersession.FieldBoardID)
	}
	if m.identity_hash != nil {
		fields = append(fields, usersession.FieldIdentityHash)
	}
	if m.alias != nil {
		fields = append(fields, usersession.FieldAlias)
	}
	if m.last_active != nil {
		fields = append(fields, usersession.FieldLastActive)
	}
	if m.created_at != nil {
		fields = append(fields, usersession.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usersession.FieldBoardID:
		return m.BoardID()
	case usersession.FieldIdentityHash:
		return m.IdentityHash()
	case usersession.FieldAlias:
		return m.Alias()
	case usersession.FieldLastActive:
		return m.LastActive()
	case usersession.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usersession.FieldBoardID:
		return m.OldBoardID(ctx)
	case usersession.FieldIdentityHash:
		return m.OldIdentityHash(ctx)
	case usersession.FieldAlias:
		return m.OldAlias(ctx)
	case usersession.FieldLastActive:
		return m.OldLastActive(ctx)
	case usersession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usersession.FieldBoardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoardID(v)
		return nil
	case usersession.FieldIdentityHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdentityHash(v)
		return nil
	case usersession.FieldAlias:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlias(v)
		return nil
	case usersession.FieldLastActive:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActive(v)
		return nil
	case usersession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserSessionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserSessionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserSessionMutation) ResetField(name string) error {
	switch name {
	case usersession.FieldBoardID:
		m.ResetBoardID()
		return nil
	case usersession.FieldIdentityHash:
		m.ResetIdentityHash()
		return nil
	case usersession.FieldAlias:
		m.ResetAlias()
		return nil
	case usersession.FieldLastActive:
		m.ResetLastActive()
		return nil
	case usersession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserSession edge %s", name)
}
