// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/retroboardhq/retroboard/ent/card"
)

// CardCreate is the builder for creating a Card entity.
type CardCreate struct {
	config
	mutation *CardMutation
	hooks    []Hook
}

// SetBoardID sets the "board_id" field.
func (_c *CardCreate) SetBoardID(v string) *CardCreate {
	_c.mutation.SetBoardID(v)
	return _c
}

// SetColumnID sets the "column_id" field.
func (_c *CardCreate) SetColumnID(v string) *CardCreate {
	_c.mutation.SetColumnID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *CardCreate) SetContent(v string) *CardCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCardType sets the "card_type" field.
func (_c *CardCreate) SetCardType(v card.CardType) *CardCreate {
	_c.mutation.SetCardType(v)
	return _c
}

// SetIsAnonymous sets the "is_anonymous" field.
func (_c *CardCreate) SetIsAnonymous(v bool) *CardCreate {
	_c.mutation.SetIsAnonymous(v)
	return _c
}

// SetNillableIsAnonymous sets the "is_anonymous" field if the given value is not nil.
func (_c *CardCreate) SetNillableIsAnonymous(v *bool) *CardCreate {
	if v != nil {
		_c.SetIsAnonymous(*v)
	}
	return _c
}

// SetCreatedByHash sets the "created_by_hash" field.
func (_c *CardCreate) SetCreatedByHash(v string) *CardCreate {
	_c.mutation.SetCreatedByHash(v)
	return _c
}

// SetCreatedByAlias sets the "created_by_alias" field.
func (_c *CardCreate) SetCreatedByAlias(v string) *CardCreate {
	_c.mutation.SetCreatedByAlias(v)
	return _c
}

// SetNillableCreatedByAlias sets the "created_by_alias" field if the given value is not nil.
func (_c *CardCreate) SetNillableCreatedByAlias(v *string) *CardCreate {
	if v != nil {
		_c.SetCreatedByAlias(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CardCreate) SetCreatedAt(v time.Time) *CardCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CardCreate) SetNillableCreatedAt(v *time.Time) *CardCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDirectCount sets the "direct_count" field.
func (_c *CardCreate) SetDirectCount(v int) *CardCreate {
	_c.mutation.SetDirectCount(v)
	return _c
}

// SetNillableDirectCount sets the "direct_count" field if the given value is not nil.
func (_c *CardCreate) SetNillableDirectCount(v *int) *CardCreate {
	if v != nil {
		_c.SetDirectCount(*v)
	}
	return _c
}

// SetAggregatedCount sets the "aggregated_count" field.
func (_c *CardCreate) SetAggregatedCount(v int) *CardCreate {
	_c.mutation.SetAggregatedCount(v)
	return _c
}

// SetNillableAggregatedCount sets the "aggregated_count" field if the given value is not nil.
func (_c *CardCreate) SetNillableAggregatedCount(v *int) *CardCreate {
	if v != nil {
		_c.SetAggregatedCount(*v)
	}
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *CardCreate) SetParentID(v string) *CardCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *CardCreate) SetNillableParentID(v *string) *CardCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetLinkedFeedbackIds sets the "linked_feedback_ids" field.
func (_c *CardCreate) SetLinkedFeedbackIds(v []string) *CardCreate {
	_c.mutation.SetLinkedFeedbackIds(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CardCreate) SetID(v string) *CardCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CardMutation object of the builder.
func (_c *CardCreate) Mutation() *CardMutation {
	return _c.mutation
}

// Save creates the Card in the database.
func (_c *CardCreate) Save(ctx context.Context) (*Card, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CardCreate) SaveX(ctx context.Context) *Card {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CardCreate) defaults() {
	if _, ok := _c.mutation.IsAnonymous(); !ok {
		v := card.DefaultIsAnonymous
		_c.mutation.SetIsAnonymous(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := card.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.DirectCount(); !ok {
		v := card.DefaultDirectCount
		_c.mutation.SetDirectCount(v)
	}
	if _, ok := _c.mutation.AggregatedCount(); !ok {
		v := card.DefaultAggregatedCount
		_c.mutation.SetAggregatedCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CardCreate) check() error {
	if _, ok := _c.mutation.BoardID(); !ok {
		return &ValidationError{Name: "board_id", err: errors.New(`ent: missing required field "Card.board_id"`)}
	}
	if _, ok := _c.mutation.ColumnID(); !ok {
		return &ValidationError{Name: "column_id", err: errors.New(`ent: missing required field "Card.column_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Card.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := card.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Card.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CardType(); !ok {
		return &ValidationError{Name: "card_type", err: errors.New(`ent: missing required field "Card.card_type"`)}
	}
	if v, ok := _c.mutation.CardType(); ok {
		if err := card.CardTypeValidator(v); err != nil {
			return &ValidationError{Name: "card_type", err: fmt.Errorf(`ent: validator failed for field "Card.card_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsAnonymous(); !ok {
		return &ValidationError{Name: "is_anonymous", err: errors.New(`ent: missing required field "Card.is_anonymous"`)}
	}
	if _, ok := _c.mutation.CreatedByHash(); !ok {
		return &ValidationError{Name: "created_by_hash", err: errors.New(`ent: missing required field "Card.created_by_hash"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Card.created_at"`)}
	}
	if _, ok := _c.mutation.DirectCount(); !ok {
		return &ValidationError{Name: "direct_count", err: errors.New(`ent: missing required field "Card.direct_count"`)}
	}
	if _, ok := _c.mutation.AggregatedCount(); !ok {
		return &ValidationError{Name: "aggregated_count", err: errors.New(`ent: missing required field "Card.aggregated_count"`)}
	}
	return nil
}

func (_c *CardCreate) sqlSave(ctx context.Context) (*Card, error) {
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
			return nil, fmt.Errorf("unexpected Card.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CardCreate) createSpec() (*Card, *sqlgraph.CreateSpec) {
	var (
		_node = &Card{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(card.Table, sqlgraph.NewFieldSpec(card.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BoardID(); ok {
		_spec.SetField(card.FieldBoardID, field.TypeString, value)
		_node.BoardID = value
	}
	if value, ok := _c.mutation.ColumnID(); ok {
		_spec.SetField(card.FieldColumnID, field.TypeString, value)
		_node.ColumnID = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(card.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CardType(); ok {
		_spec.SetField(card.FieldCardType, field.TypeEnum, value)
		_node.CardType = value
	}
	if value, ok := _c.mutation.IsAnonymous(); ok {
		_spec.SetField(card.FieldIsAnonymous, field.TypeBool, value)
		_node.IsAnonymous = value
	}
	if value, ok := _c.mutation.CreatedByHash(); ok {
		_spec.SetField(card.FieldCreatedByHash, field.TypeString, value)
		_node.CreatedByHash = value
	}
	if value, ok := _c.mutation.CreatedByAlias(); ok {
		_spec.SetField(card.FieldCreatedByAlias, field.TypeString, value)
		_node.CreatedByAlias = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(card.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DirectCount(); ok {
		_spec.SetField(card.FieldDirectCount, field.TypeInt, value)
		_node.DirectCount = value
	}
	if value, ok := _c.mutation.AggregatedCount(); ok {
		_spec.SetField(card.FieldAggregatedCount, field.TypeInt, value)
		_node.AggregatedCount = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(card.FieldParentID, field.TypeString, value)
		_node.ParentID = &value
	}
	if value, ok := _c.mutation.LinkedFeedbackIds(); ok {
		_spec.SetField(card.FieldLinkedFeedbackIds, field.TypeJSON, value)
		_node.LinkedFeedbackIds = value
	}
	return _node, _spec
}

// CardCreateBulk is the builder for creating many Card entities in bulk.
type CardCreateBulk struct {
	config
	err      error
	builders []*CardCreate
}

// Save creates the Card entities in the database.
func (_c *CardCreateBulk) Save(ctx context.Context) ([]*Card, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Card, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CardMutation)
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
func (_c *CardCreateBulk) SaveX(ctx context.Context) []*Card {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
