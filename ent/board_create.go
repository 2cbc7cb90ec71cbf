// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/retroboardhq/retroboard/ent/board"
	"github.com/retroboardhq/retroboard/pkg/models"
)

// BoardCreate is the builder for creating a Board entity.
type BoardCreate struct {
	config
	mutation *BoardMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *BoardCreate) SetName(v string) *BoardCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetColumns sets the "columns" field.
func (_c *BoardCreate) SetColumns(v []models.Column) *BoardCreate {
	_c.mutation.SetColumns(v)
	return _c
}

// SetAdmins sets the "admins" field.
func (_c *BoardCreate) SetAdmins(v []string) *BoardCreate {
	_c.mutation.SetAdmins(v)
	return _c
}

// SetState sets the "state" field.
func (_c *BoardCreate) SetState(v board.State) *BoardCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *BoardCreate) SetNillableState(v *board.State) *BoardCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetClosedAt sets the "closed_at" field.
func (_c *BoardCreate) SetClosedAt(v time.Time) *BoardCreate {
	_c.mutation.SetClosedAt(v)
	return _c
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_c *BoardCreate) SetNillableClosedAt(v *time.Time) *BoardCreate {
	if v != nil {
		_c.SetClosedAt(*v)
	}
	return _c
}

// SetCardLimit sets the "card_limit" field.
func (_c *BoardCreate) SetCardLimit(v int) *BoardCreate {
	_c.mutation.SetCardLimit(v)
	return _c
}

// SetNillableCardLimit sets the "card_limit" field if the given value is not nil.
func (_c *BoardCreate) SetNillableCardLimit(v *int) *BoardCreate {
	if v != nil {
		_c.SetCardLimit(*v)
	}
	return _c
}

// SetReactionLimit sets the "reaction_limit" field.
func (_c *BoardCreate) SetReactionLimit(v int) *BoardCreate {
	_c.mutation.SetReactionLimit(v)
	return _c
}

// SetNillableReactionLimit sets the "reaction_limit" field if the given value is not nil.
func (_c *BoardCreate) SetNillableReactionLimit(v *int) *BoardCreate {
	if v != nil {
		_c.SetReactionLimit(*v)
	}
	return _c
}

// SetCreatorHash sets the "creator_hash" field.
func (_c *BoardCreate) SetCreatorHash(v string) *BoardCreate {
	_c.mutation.SetCreatorHash(v)
	return _c
}

// SetShareableLink sets the "shareable_link" field.
func (_c *BoardCreate) SetShareableLink(v string) *BoardCreate {
	_c.mutation.SetShareableLink(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BoardCreate) SetCreatedAt(v time.Time) *BoardCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BoardCreate) SetNillableCreatedAt(v *time.Time) *BoardCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BoardCreate) SetID(v string) *BoardCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BoardMutation object of the builder.
func (_c *BoardCreate) Mutation() *BoardMutation {
	return _c.mutation
}

// Save creates the Board in the database.
func (_c *BoardCreate) Save(ctx context.Context) (*Board, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BoardCreate) SaveX(ctx context.Context) *Board {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BoardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BoardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BoardCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := board.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := board.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BoardCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Board.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := board.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Board.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Columns(); !ok {
		return &ValidationError{Name: "columns", err: errors.New(`ent: missing required field "Board.columns"`)}
	}
	if _, ok := _c.mutation.Admins(); !ok {
		return &ValidationError{Name: "admins", err: errors.New(`ent: missing required field "Board.admins"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Board.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := board.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Board.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatorHash(); !ok {
		return &ValidationError{Name: "creator_hash", err: errors.New(`ent: missing required field "Board.creator_hash"`)}
	}
	if _, ok := _c.mutation.ShareableLink(); !ok {
		return &ValidationError{Name: "shareable_link", err: errors.New(`ent: missing required field "Board.shareable_link"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Board.created_at"`)}
	}
	return nil
}

func (_c *BoardCreate) sqlSave(ctx context.Context) (*Board, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Board.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BoardCreate) createSpec() (*Board, *sqlgraph.CreateSpec) {
	var (
		_node = &Board{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(board.Table, sqlgraph.NewFieldSpec(board.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(board.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Columns(); ok {
		_spec.SetField(board.FieldColumns, field.TypeJSON, value)
		_node.Columns = value
	}
	if value, ok := _c.mutation.Admins(); ok {
		_spec.SetField(board.FieldAdmins, field.TypeJSON, value)
		_node.Admins = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(board.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.ClosedAt(); ok {
		_spec.SetField(board.FieldClosedAt, field.TypeTime, value)
		_node.ClosedAt = &value
	}
	if value, ok := _c.mutation.CardLimit(); ok {
		_spec.SetField(board.FieldCardLimit, field.TypeInt, value)
		_node.CardLimit = &value
	}
	if value, ok := _c.mutation.ReactionLimit(); ok {
		_spec.SetField(board.FieldReactionLimit, field.TypeInt, value)
		_node.ReactionLimit = &value
	}
	if value, ok := _c.mutation.CreatorHash(); ok {
		_spec.SetField(board.FieldCreatorHash, field.TypeString, value)
		_node.CreatorHash = value
	}
	if value, ok := _c.mutation.ShareableLink(); ok {
		_spec.SetField(board.FieldShareableLink, field.TypeString, value)
		_node.ShareableLink = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(board.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BoardCreateBulk is the builder for creating many Board entities in bulk.
type BoardCreateBulk struct {
	config
	err      error
	builders []*BoardCreate
}

// Save creates the Board entities in the database.
func (_c *BoardCreateBulk) Save(ctx context.Context) ([]*Board, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Board, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BoardMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BoardCreateBulk) SaveX(ctx context.Context) []*Board {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BoardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BoardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
