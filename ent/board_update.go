// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/retroboardhq/retroboard/ent/board"
	"github.com/retroboardhq/retroboard/ent/predicate"
	"github.com/retroboardhq/retroboard/pkg/models"
)

// BoardUpdate is the builder for updating Board entities.
type BoardUpdate struct {
	config
	hooks    []Hook
	mutation *BoardMutation
}

// Where appends a list predicates to the BoardUpdate builder.
func (_u *BoardUpdate) Where(ps ...predicate.Board) *BoardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *BoardUpdate) SetName(v string) *BoardUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BoardUpdate) SetNillableName(v *string) *BoardUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetColumns sets the "columns" field.
func (_u *BoardUpdate) SetColumns(v []models.Column) *BoardUpdate {
	_u.mutation.SetColumns(v)
	return _u
}

// AppendColumns appends value to the "columns" field.
func (_u *BoardUpdate) AppendColumns(v []models.Column) *BoardUpdate {
	_u.mutation.AppendColumns(v)
	return _u
}

// SetAdmins sets the "admins" field.
func (_u *BoardUpdate) SetAdmins(v []string) *BoardUpdate {
	_u.mutation.SetAdmins(v)
	return _u
}

// AppendAdmins appends value to the "admins" field.
func (_u *BoardUpdate) AppendAdmins(v []string) *BoardUpdate {
	_u.mutation.AppendAdmins(v)
	return _u
}

// SetState sets the "state" field.
func (_u *BoardUpdate) SetState(v board.State) *BoardUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *BoardUpdate) SetNillableState(v *board.State) *BoardUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *BoardUpdate) SetClosedAt(v time.Time) *BoardUpdate {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *BoardUpdate) SetNillableClosedAt(v *time.Time) *BoardUpdate {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *BoardUpdate) ClearClosedAt() *BoardUpdate {
	_u.mutation.ClearClosedAt()
	return _u
}

// SetCardLimit sets the "card_limit" field.
func (_u *BoardUpdate) SetCardLimit(v int) *BoardUpdate {
	_u.mutation.ResetCardLimit()
	_u.mutation.SetCardLimit(v)
	return _u
}

// SetNillableCardLimit sets the "card_limit" field if the given value is not nil.
func (_u *BoardUpdate) SetNillableCardLimit(v *int) *BoardUpdate {
	if v != nil {
		_u.SetCardLimit(*v)
	}
	return _u
}

// AddCardLimit adds value to the "card_limit" field.
func (_u *BoardUpdate) AddCardLimit(v int) *BoardUpdate {
	_u.mutation.AddCardLimit(v)
	return _u
}

// ClearCardLimit clears the value of the "card_limit" field.
func (_u *BoardUpdate) ClearCardLimit() *BoardUpdate {
	_u.mutation.ClearCardLimit()
	return _u
}

// SetReactionLimit sets the "reaction_limit" field.
func (_u *BoardUpdate) SetReactionLimit(v int) *BoardUpdate {
	_u.mutation.ResetReactionLimit()
	_u.mutation.SetReactionLimit(v)
	return _u
}

// SetNillableReactionLimit sets the "reaction_limit" field if the given value is not nil.
func (_u *BoardUpdate) SetNillableReactionLimit(v *int) *BoardUpdate {
	if v != nil {
		_u.SetReactionLimit(*v)
	}
	return _u
}

// AddReactionLimit adds value to the "reaction_limit" field.
func (_u *BoardUpdate) AddReactionLimit(v int) *BoardUpdate {
	_u.mutation.AddReactionLimit(v)
	return _u
}

// ClearReactionLimit clears the value of the "reaction_limit" field.
func (_u *BoardUpdate) ClearReactionLimit() *BoardUpdate {
	_u.mutation.ClearReactionLimit()
	return _u
}

// SetShareableLink sets the "shareable_link" field.
func (_u *BoardUpdate) SetShareableLink(v string) *BoardUpdate {
	_u.mutation.SetShareableLink(v)
	return _u
}

// SetNillableShareableLink sets the "shareable_link" field if the given value is not nil.
func (_u *BoardUpdate) SetNillableShareableLink(v *string) *BoardUpdate {
	if v != nil {
		_u.SetShareableLink(*v)
	}
	return _u
}

// Mutation returns the BoardMutation object of the builder.
func (_u *BoardUpdate) Mutation() *BoardMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BoardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BoardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BoardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BoardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BoardUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := board.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Board.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := board.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Board.state": %w`, err)}
		}
	}
	return nil
}

func (_u *BoardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(board.Table, board.Columns, sqlgraph.NewFieldSpec(board.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(board.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Columns(); ok {
		_spec.SetField(board.FieldColumns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedColumns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, board.FieldColumns, value)
		})
	}
	if value, ok := _u.mutation.Admins(); ok {
		_spec.SetField(board.FieldAdmins, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAdmins(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, board.FieldAdmins, value)
		})
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(board.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(board.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(board.FieldClosedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CardLimit(); ok {
		_spec.SetField(board.FieldCardLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCardLimit(); ok {
		_spec.AddField(board.FieldCardLimit, field.TypeInt, value)
	}
	if _u.mutation.CardLimitCleared() {
		_spec.ClearField(board.FieldCardLimit, field.TypeInt)
	}
	if value, ok := _u.mutation.ReactionLimit(); ok {
		_spec.SetField(board.FieldReactionLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReactionLimit(); ok {
		_spec.AddField(board.FieldReactionLimit, field.TypeInt, value)
	}
	if _u.mutation.ReactionLimitCleared() {
		_spec.ClearField(board.FieldReactionLimit, field.TypeInt)
	}
	if value, ok := _u.mutation.ShareableLink(); ok {
		_spec.SetField(board.FieldShareableLink, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{board.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BoardUpdateOne is the builder for updating a single Board entity.
type BoardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BoardMutation
}

// SetName sets the "name" field.
func (_u *BoardUpdateOne) SetName(v string) *BoardUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BoardUpdateOne) SetNillableName(v *string) *BoardUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetColumns sets the "columns" field.
func (_u *BoardUpdateOne) SetColumns(v []models.Column) *BoardUpdateOne {
	_u.mutation.SetColumns(v)
	return _u
}

// AppendColumns appends value to the "columns" field.
func (_u *BoardUpdateOne) AppendColumns(v []models.Column) *BoardUpdateOne {
	_u.mutation.AppendColumns(v)
	return _u
}

// SetAdmins sets the "admins" field.
func (_u *BoardUpdateOne) SetAdmins(v []string) *BoardUpdateOne {
	_u.mutation.SetAdmins(v)
	return _u
}

// AppendAdmins appends value to the "admins" field.
func (_u *BoardUpdateOne) AppendAdmins(v []string) *BoardUpdateOne {
	_u.mutation.AppendAdmins(v)
	return _u
}

// SetState sets the "state" field.
func (_u *BoardUpdateOne) SetState(v board.State) *BoardUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *BoardUpdateOne) SetNillableState(v *board.State) *BoardUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *BoardUpdateOne) SetClosedAt(v time.Time) *BoardUpdateOne {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *BoardUpdateOne) SetNillableClosedAt(v *time.Time) *BoardUpdateOne {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *BoardUpdateOne) ClearClosedAt() *BoardUpdateOne {
	_u.mutation.ClearClosedAt()
	return _u
}

// SetCardLimit sets the "card_limit" field.
func (_u *BoardUpdateOne) SetCardLimit(v int) *BoardUpdateOne {
	_u.mutation.ResetCardLimit()
	_u.mutation.SetCardLimit(v)
	return _u
}

// SetNillableCardLimit sets the "card_limit" field if the given value is not nil.
func (_u *BoardUpdateOne) SetNillableCardLimit(v *int) *BoardUpdateOne {
	if v != nil {
		_u.SetCardLimit(*v)
	}
	return _u
}

// AddCardLimit adds value to the "card_limit" field.
func (_u *BoardUpdateOne) AddCardLimit(v int) *BoardUpdateOne {
	_u.mutation.AddCardLimit(v)
	return _u
}

// ClearCardLimit clears the value of the "card_limit" field.
func (_u *BoardUpdateOne) ClearCardLimit() *BoardUpdateOne {
	_u.mutation.ClearCardLimit()
	return _u
}

// SetReactionLimit sets the "reaction_limit" field.
func (_u *BoardUpdateOne) SetReactionLimit(v int) *BoardUpdateOne {
	_u.mutation.ResetReactionLimit()
	_u.mutation.SetReactionLimit(v)
	return _u
}

// SetNillableReactionLimit sets the "reaction_limit" field if the given value is not nil.
func (_u *BoardUpdateOne) SetNillableReactionLimit(v *int) *BoardUpdateOne {
	if v != nil {
		_u.SetReactionLimit(*v)
	}
	return _u
}

// AddReactionLimit adds value to the "reaction_limit" field.
func (_u *BoardUpdateOne) AddReactionLimit(v int) *BoardUpdateOne {
	_u.mutation.AddReactionLimit(v)
	return _u
}

// ClearReactionLimit clears the value of the "reaction_limit" field.
func (_u *BoardUpdateOne) ClearReactionLimit() *BoardUpdateOne {
	_u.mutation.ClearReactionLimit()
	return _u
}

// SetShareableLink sets the "shareable_link" field.
func (_u *BoardUpdateOne) SetShareableLink(v string) *BoardUpdateOne {
	_u.mutation.SetShareableLink(v)
	return _u
}

// SetNillableShareableLink sets the "shareable_link" field if the given value is not nil.
func (_u *BoardUpdateOne) SetNillableShareableLink(v *string) *BoardUpdateOne {
	if v != nil {
		_u.SetShareableLink(*v)
	}
	return _u
}

// Mutation returns the BoardMutation object of the builder.
func (_u *BoardUpdateOne) Mutation() *BoardMutation {
	return _u.mutation
}

// Where appends a list predicates to the BoardUpdate builder.
func (_u *BoardUpdateOne) Where(ps ...predicate.Board) *BoardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BoardUpdateOne) Select(field string, fields ...string) *BoardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Board entity.
func (_u *BoardUpdateOne) Save(ctx context.Context) (*Board, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BoardUpdateOne) SaveX(ctx context.Context) *Board {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BoardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BoardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BoardUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := board.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Board.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := board.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Board.state": %w`, err)}
		}
	}
	return nil
}

func (_u *BoardUpdateOne) sqlSave(ctx context.Context) (_node *Board, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(board.Table, board.Columns, sqlgraph.NewFieldSpec(board.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Board.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, board.FieldID)
		for _, f := range fields {
			if !board.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != board.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(board.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Columns(); ok {
		_spec.SetField(board.FieldColumns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedColumns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, board.FieldColumns, value)
		})
	}
	if value, ok := _u.mutation.Admins(); ok {
		_spec.SetField(board.FieldAdmins, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAdmins(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, board.FieldAdmins, value)
		})
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(board.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(board.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(board.FieldClosedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CardLimit(); ok {
		_spec.SetField(board.FieldCardLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCardLimit(); ok {
		_spec.AddField(board.FieldCardLimit, field.TypeInt, value)
	}
	if _u.mutation.CardLimitCleared() {
		_spec.ClearField(board.FieldCardLimit, field.TypeInt)
	}
	if value, ok := _u.mutation.ReactionLimit(); ok {
		_spec.SetField(board.FieldReactionLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReactionLimit(); ok {
		_spec.AddField(board.FieldReactionLimit, field.TypeInt, value)
	}
	if _u.mutation.ReactionLimitCleared() {
		_spec.ClearField(board.FieldReactionLimit, field.TypeInt)
	}
	if value, ok := _u.mutation.ShareableLink(); ok {
		_spec.SetField(board.FieldShareableLink, field.TypeString, value)
	}
	_node = &Board{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{board.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
