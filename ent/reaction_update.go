// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/retroboardhq/retroboard/ent/predicate"
	"github.com/retroboardhq/retroboard/ent/reaction"
)

// ReactionUpdate is the builder for updating Reaction entities.
type ReactionUpdate struct {
	config
	hooks    []Hook
	mutation *ReactionMutation
}

// Where appends a list predicates to the ReactionUpdate builder.
func (_u *ReactionUpdate) Where(ps ...predicate.Reaction) *ReactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIdentityHash sets the "identity_hash" field.
func (_u *ReactionUpdate) SetIdentityHash(v string) *ReactionUpdate {
	_u.mutation.SetIdentityHash(v)
	return _u
}

// SetNillableIdentityHash sets the "identity_hash" field if the given value is not nil.
func (_u *ReactionUpdate) SetNillableIdentityHash(v *string) *ReactionUpdate {
	if v != nil {
		_u.SetIdentityHash(*v)
	}
	return _u
}

// SetAlias sets the "alias" field.
func (_u *ReactionUpdate) SetAlias(v string) *ReactionUpdate {
	_u.mutation.SetAlias(v)
	return _u
}

// SetNillableAlias sets the "alias" field if the given value is not nil.
func (_u *ReactionUpdate) SetNillableAlias(v *string) *ReactionUpdate {
	if v != nil {
		_u.SetAlias(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ReactionUpdate) SetKind(v string) *ReactionUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ReactionUpdate) SetNillableKind(v *string) *ReactionUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReactionUpdate) SetCreatedAt(v time.Time) *ReactionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReactionUpdate) SetNillableCreatedAt(v *time.Time) *ReactionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ReactionMutation object of the builder.
func (_u *ReactionUpdate) Mutation() *ReactionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReactionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(reaction.Table, reaction.Columns, sqlgraph.NewFieldSpec(reaction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IdentityHash(); ok {
		_spec.SetField(reaction.FieldIdentityHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Alias(); ok {
		_spec.SetField(reaction.FieldAlias, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(reaction.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reaction.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReactionUpdateOne is the builder for updating a single Reaction entity.
type ReactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReactionMutation
}

// SetIdentityHash sets the "identity_hash" field.
func (_u *ReactionUpdateOne) SetIdentityHash(v string) *ReactionUpdateOne {
	_u.mutation.SetIdentityHash(v)
	return _u
}

// SetNillableIdentityHash sets the "identity_hash" field if the given value is not nil.
func (_u *ReactionUpdateOne) SetNillableIdentityHash(v *string) *ReactionUpdateOne {
	if v != nil {
		_u.SetIdentityHash(*v)
	}
	return _u
}

// SetAlias sets the "alias" field.
func (_u *ReactionUpdateOne) SetAlias(v string) *ReactionUpdateOne {
	_u.mutation.SetAlias(v)
	return _u
}

// SetNillableAlias sets the "alias" field if the given value is not nil.
func (_u *ReactionUpdateOne) SetNillableAlias(v *string) *ReactionUpdateOne {
	if v != nil {
		_u.SetAlias(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ReactionUpdateOne) SetKind(v string) *ReactionUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ReactionUpdateOne) SetNillableKind(v *string) *ReactionUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReactionUpdateOne) SetCreatedAt(v time.Time) *ReactionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReactionUpdateOne) SetNillableCreatedAt(v *time.Time) *ReactionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ReactionMutation object of the builder.
func (_u *ReactionUpdateOne) Mutation() *ReactionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReactionUpdate builder.
func (_u *ReactionUpdateOne) Where(ps ...predicate.Reaction) *ReactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReactionUpdateOne) Select(field string, fields ...string) *ReactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Reaction entity.
func (_u *ReactionUpdateOne) Save(ctx context.Context) (*Reaction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReactionUpdateOne) SaveX(ctx context.Context) *Reaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReactionUpdateOne) sqlSave(ctx context.Context) (_node *Reaction, err error) {
	_spec := sqlgraph.NewUpdateSpec(reaction.Table, reaction.Columns, sqlgraph.NewFieldSpec(reaction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Reaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reaction.FieldID)
		for _, f := range fields {
			if !reaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reaction.FieldID {
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
	if value, ok := _u.mutation.IdentityHash(); ok {
		_spec.SetField(reaction.FieldIdentityHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Alias(); ok {
		_spec.SetField(reaction.FieldAlias, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(reaction.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reaction.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Reaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
