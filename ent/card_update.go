// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/retroboardhq/retroboard/ent/card"
	"github.com/retroboardhq/retroboard/ent/predicate"
)

// CardUpdate is the builder for updating Card entities.
type CardUpdate struct {
	config
	hooks    []Hook
	mutation *CardMutation
}

// Where appends a list predicates to the CardUpdate builder.
func (_u *CardUpdate) Where(ps ...predicate.Card) *CardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetColumnID sets the "column_id" field.
func (_u *CardUpdate) SetColumnID(v string) *CardUpdate {
	_u.mutation.SetColumnID(v)
	return _u
}

// SetNillableColumnID sets the "column_id" field if the given value is not nil.
func (_u *CardUpdate) SetNillableColumnID(v *string) *CardUpdate {
	if v != nil {
		_u.SetColumnID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *CardUpdate) SetContent(v string) *CardUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CardUpdate) SetNillableContent(v *string) *CardUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetCardType sets the "card_type" field.
func (_u *CardUpdate) SetCardType(v card.CardType) *CardUpdate {
	_u.mutation.SetCardType(v)
	return _u
}

// SetNillableCardType sets the "card_type" field if the given value is not nil.
func (_u *CardUpdate) SetNillableCardType(v *card.CardType) *CardUpdate {
	if v != nil {
		_u.SetCardType(*v)
	}
	return _u
}

// SetIsAnonymous sets the "is_anonymous" field.
func (_u *CardUpdate) SetIsAnonymous(v bool) *CardUpdate {
	_u.mutation.SetIsAnonymous(v)
	return _u
}

// SetNillableIsAnonymous sets the "is_anonymous" field if the given value is not nil.
func (_u *CardUpdate) SetNillableIsAnonymous(v *bool) *CardUpdate {
	if v != nil {
		_u.SetIsAnonymous(*v)
	}
	return _u
}

// SetCreatedByAlias sets the "created_by_alias" field.
func (_u *CardUpdate) SetCreatedByAlias(v string) *CardUpdate {
	_u.mutation.SetCreatedByAlias(v)
	return _u
}

// SetNillableCreatedByAlias sets the "created_by_alias" field if the given value is not nil.
func (_u *CardUpdate) SetNillableCreatedByAlias(v *string) *CardUpdate {
	if v != nil {
		_u.SetCreatedByAlias(*v)
	}
	return _u
}

// ClearCreatedByAlias clears the value of the "created_by_alias" field.
func (_u *CardUpdate) ClearCreatedByAlias() *CardUpdate {
	_u.mutation.ClearCreatedByAlias()
	return _u
}

// SetDirectCount sets the "direct_count" field.
func (_u *CardUpdate) SetDirectCount(v int) *CardUpdate {
	_u.mutation.ResetDirectCount()
	_u.mutation.SetDirectCount(v)
	return _u
}

// SetNillableDirectCount sets the "direct_count" field if the given value is not nil.
func (_u *CardUpdate) SetNillableDirectCount(v *int) *CardUpdate {
	if v != nil {
		_u.SetDirectCount(*v)
	}
	return _u
}

// AddDirectCount adds value to the "direct_count" field.
func (_u *CardUpdate) AddDirectCount(v int) *CardUpdate {
	_u.mutation.AddDirectCount(v)
	return _u
}

// SetAggregatedCount sets the "aggregated_count" field.
func (_u *CardUpdate) SetAggregatedCount(v int) *CardUpdate {
	_u.mutation.ResetAggregatedCount()
	_u.mutation.SetAggregatedCount(v)
	return _u
}

// SetNillableAggregatedCount sets the "aggregated_count" field if the given value is not nil.
func (_u *CardUpdate) SetNillableAggregatedCount(v *int) *CardUpdate {
	if v != nil {
		_u.SetAggregatedCount(*v)
	}
	return _u
}

// AddAggregatedCount adds value to the "aggregated_count" field.
func (_u *CardUpdate) AddAggregatedCount(v int) *CardUpdate {
	_u.mutation.AddAggregatedCount(v)
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *CardUpdate) SetParentID(v string) *CardUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *CardUpdate) SetNillableParentID(v *string) *CardUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *CardUpdate) ClearParentID() *CardUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetLinkedFeedbackIds sets the "linked_feedback_ids" field.
func (_u *CardUpdate) SetLinkedFeedbackIds(v []string) *CardUpdate {
	_u.mutation.SetLinkedFeedbackIds(v)
	return _u
}

// AppendLinkedFeedbackIds appends value to the "linked_feedback_ids" field.
func (_u *CardUpdate) AppendLinkedFeedbackIds(v []string) *CardUpdate {
	_u.mutation.AppendLinkedFeedbackIds(v)
	return _u
}

// ClearLinkedFeedbackIds clears the value of the "linked_feedback_ids" field.
func (_u *CardUpdate) ClearLinkedFeedbackIds() *CardUpdate {
	_u.mutation.ClearLinkedFeedbackIds()
	return _u
}

// Mutation returns the CardMutation object of the builder.
func (_u *CardUpdate) Mutation() *CardMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardUpdate) check() error {
	if v, ok := _u.mutation.Content(); ok {
		if err := card.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Card.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardType(); ok {
		if err := card.CardTypeValidator(v); err != nil {
			return &ValidationError{Name: "card_type", err: fmt.Errorf(`ent: validator failed for field "Card.card_type": %w`, err)}
		}
	}
	return nil
}

func (_u *CardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(card.Table, card.Columns, sqlgraph.NewFieldSpec(card.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ColumnID(); ok {
		_spec.SetField(card.FieldColumnID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(card.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardType(); ok {
		_spec.SetField(card.FieldCardType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsAnonymous(); ok {
		_spec.SetField(card.FieldIsAnonymous, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedByAlias(); ok {
		_spec.SetField(card.FieldCreatedByAlias, field.TypeString, value)
	}
	if _u.mutation.CreatedByAliasCleared() {
		_spec.ClearField(card.FieldCreatedByAlias, field.TypeString)
	}
	if value, ok := _u.mutation.DirectCount(); ok {
		_spec.SetField(card.FieldDirectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDirectCount(); ok {
		_spec.AddField(card.FieldDirectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AggregatedCount(); ok {
		_spec.SetField(card.FieldAggregatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAggregatedCount(); ok {
		_spec.AddField(card.FieldAggregatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(card.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(card.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedFeedbackIds(); ok {
		_spec.SetField(card.FieldLinkedFeedbackIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLinkedFeedbackIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldLinkedFeedbackIds, value)
		})
	}
	if _u.mutation.LinkedFeedbackIdsCleared() {
		_spec.ClearField(card.FieldLinkedFeedbackIds, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{card.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CardUpdateOne is the builder for updating a single Card entity.
type CardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CardMutation
}

// SetColumnID sets the "column_id" field.
func (_u *CardUpdateOne) SetColumnID(v string) *CardUpdateOne {
	_u.mutation.SetColumnID(v)
	return _u
}

// SetNillableColumnID sets the "column_id" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableColumnID(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetColumnID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *CardUpdateOne) SetContent(v string) *CardUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableContent(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetCardType sets the "card_type" field.
func (_u *CardUpdateOne) SetCardType(v card.CardType) *CardUpdateOne {
	_u.mutation.SetCardType(v)
	return _u
}

// SetNillableCardType sets the "card_type" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableCardType(v *card.CardType) *CardUpdateOne {
	if v != nil {
		_u.SetCardType(*v)
	}
	return _u
}

// SetIsAnonymous sets the "is_anonymous" field.
func (_u *CardUpdateOne) SetIsAnonymous(v bool) *CardUpdateOne {
	_u.mutation.SetIsAnonymous(v)
	return _u
}

// SetNillableIsAnonymous sets the "is_anonymous" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableIsAnonymous(v *bool) *CardUpdateOne {
	if v != nil {
		_u.SetIsAnonymous(*v)
	}
	return _u
}

// SetCreatedByAlias sets the "created_by_alias" field.
func (_u *CardUpdateOne) SetCreatedByAlias(v string) *CardUpdateOne {
	_u.mutation.SetCreatedByAlias(v)
	return _u
}

// SetNillableCreatedByAlias sets the "created_by_alias" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableCreatedByAlias(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetCreatedByAlias(*v)
	}
	return _u
}

// ClearCreatedByAlias clears the value of the "created_by_alias" field.
func (_u *CardUpdateOne) ClearCreatedByAlias() *CardUpdateOne {
	_u.mutation.ClearCreatedByAlias()
	return _u
}

// SetDirectCount sets the "direct_count" field.
func (_u *CardUpdateOne) SetDirectCount(v int) *CardUpdateOne {
	_u.mutation.ResetDirectCount()
	_u.mutation.SetDirectCount(v)
	return _u
}

// SetNillableDirectCount sets the "direct_count" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableDirectCount(v *int) *CardUpdateOne {
	if v != nil {
		_u.SetDirectCount(*v)
	}
	return _u
}

// AddDirectCount adds value to the "direct_count" field.
func (_u *CardUpdateOne) AddDirectCount(v int) *CardUpdateOne {
	_u.mutation.AddDirectCount(v)
	return _u
}

// SetAggregatedCount sets the "aggregated_count" field.
func (_u *CardUpdateOne) SetAggregatedCount(v int) *CardUpdateOne {
	_u.mutation.ResetAggregatedCount()
	_u.mutation.SetAggregatedCount(v)
	return _u
}

// SetNillableAggregatedCount sets the "aggregated_count" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableAggregatedCount(v *int) *CardUpdateOne {
	if v != nil {
		_u.SetAggregatedCount(*v)
	}
	return _u
}

// AddAggregatedCount adds value to the "aggregated_count" field.
func (_u *CardUpdateOne) AddAggregatedCount(v int) *CardUpdateOne {
	_u.mutation.AddAggregatedCount(v)
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *CardUpdateOne) SetParentID(v string) *CardUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableParentID(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *CardUpdateOne) ClearParentID() *CardUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetLinkedFeedbackIds sets the "linked_feedback_ids" field.
func (_u *CardUpdateOne) SetLinkedFeedbackIds(v []string) *CardUpdateOne {
	_u.mutation.SetLinkedFeedbackIds(v)
	return _u
}

// AppendLinkedFeedbackIds appends value to the "linked_feedback_ids" field.
func (_u *CardUpdateOne) AppendLinkedFeedbackIds(v []string) *CardUpdateOne {
	_u.mutation.AppendLinkedFeedbackIds(v)
	return _u
}

// ClearLinkedFeedbackIds clears the value of the "linked_feedback_ids" field.
func (_u *CardUpdateOne) ClearLinkedFeedbackIds() *CardUpdateOne {
	_u.mutation.ClearLinkedFeedbackIds()
	return _u
}

// Mutation returns the CardMutation object of the builder.
func (_u *CardUpdateOne) Mutation() *CardMutation {
	return _u.mutation
}

// Where appends a list predicates to the CardUpdate builder.
func (_u *CardUpdateOne) Where(ps ...predicate.Card) *CardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CardUpdateOne) Select(field string, fields ...string) *CardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Card entity.
func (_u *CardUpdateOne) Save(ctx context.Context) (*Card, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardUpdateOne) SaveX(ctx context.Context) *Card {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardUpdateOne) check() error {
	if v, ok := _u.mutation.Content(); ok {
		if err := card.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Card.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardType(); ok {
		if err := card.CardTypeValidator(v); err != nil {
			return &ValidationError{Name: "card_type", err: fmt.Errorf(`ent: validator failed for field "Card.card_type": %w`, err)}
		}
	}
	return nil
}

func (_u *CardUpdateOne) sqlSave(ctx context.Context) (_node *Card, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(card.Table, card.Columns, sqlgraph.NewFieldSpec(card.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Card.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, card.FieldID)
		for _, f := range fields {
			if !card.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != card.FieldID {
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
	if value, ok := _u.mutation.ColumnID(); ok {
		_spec.SetField(card.FieldColumnID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(card.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardType(); ok {
		_spec.SetField(card.FieldCardType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsAnonymous(); ok {
		_spec.SetField(card.FieldIsAnonymous, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedByAlias(); ok {
		_spec.SetField(card.FieldCreatedByAlias, field.TypeString, value)
	}
	if _u.mutation.CreatedByAliasCleared() {
		_spec.ClearField(card.FieldCreatedByAlias, field.TypeString)
	}
	if value, ok := _u.mutation.DirectCount(); ok {
		_spec.SetField(card.FieldDirectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDirectCount(); ok {
		_spec.AddField(card.FieldDirectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AggregatedCount(); ok {
		_spec.SetField(card.FieldAggregatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAggregatedCount(); ok {
		_spec.AddField(card.FieldAggregatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(card.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(card.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedFeedbackIds(); ok {
		_spec.SetField(card.FieldLinkedFeedbackIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLinkedFeedbackIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldLinkedFeedbackIds, value)
		})
	}
	if _u.mutation.LinkedFeedbackIdsCleared() {
		_spec.ClearField(card.FieldLinkedFeedbackIds, field.TypeJSON)
	}
	_node = &Card{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{card.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
