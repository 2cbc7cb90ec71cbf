// Code generated by ent, DO NOT EDIT.

package card

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/retroboardhq/retroboard/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldID, id))
}

// BoardID applies equality check predicate on the "board_id" field. It's identical to BoardIDEQ.
func BoardID(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBoardID, v))
}

// ColumnID applies equality check predicate on the "column_id" field. It's identical to ColumnIDEQ.
func ColumnID(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldColumnID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldContent, v))
}

// IsAnonymous applies equality check predicate on the "is_anonymous" field. It's identical to IsAnonymousEQ.
func IsAnonymous(v bool) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldIsAnonymous, v))
}

// CreatedByHash applies equality check predicate on the "created_by_hash" field. It's identical to CreatedByHashEQ.
func CreatedByHash(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCreatedByHash, v))
}

// CreatedByAlias applies equality check predicate on the "created_by_alias" field. It's identical to CreatedByAliasEQ.
func CreatedByAlias(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCreatedByAlias, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCreatedAt, v))
}

// DirectCount applies equality check predicate on the "direct_count" field. It's identical to DirectCountEQ.
func DirectCount(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldDirectCount, v))
}

// AggregatedCount applies equality check predicate on the "aggregated_count" field. It's identical to AggregatedCountEQ.
func AggregatedCount(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldAggregatedCount, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldParentID, v))
}

// BoardIDEQ applies the EQ predicate on the "board_id" field.
func BoardIDEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBoardID, v))
}

// BoardIDNEQ applies the NEQ predicate on the "board_id" field.
func BoardIDNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldBoardID, v))
}

// BoardIDIn applies the In predicate on the "board_id" field.
func BoardIDIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldBoardID, vs...))
}

// BoardIDNotIn applies the NotIn predicate on the "board_id" field.
func BoardIDNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldBoardID, vs...))
}

// BoardIDGT applies the GT predicate on the "board_id" field.
func BoardIDGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldBoardID, v))
}

// BoardIDGTE applies the GTE predicate on the "board_id" field.
func BoardIDGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldBoardID, v))
}

// BoardIDLT applies the LT predicate on the "board_id" field.
func BoardIDLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldBoardID, v))
}

// BoardIDLTE applies the LTE predicate on the "board_id" field.
func BoardIDLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldBoardID, v))
}

// BoardIDContains applies the Contains predicate on the "board_id" field.
func BoardIDContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldBoardID, v))
}

// BoardIDHasPrefix applies the HasPrefix predicate on the "board_id" field.
func BoardIDHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldBoardID, v))
}

// BoardIDHasSuffix applies the HasSuffix predicate on the "board_id" field.
func BoardIDHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldBoardID, v))
}

// BoardIDEqualFold applies the EqualFold predicate on the "board_id" field.
func BoardIDEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldBoardID, v))
}

// BoardIDContainsFold applies the ContainsFold predicate on the "board_id" field.
func BoardIDContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldBoardID, v))
}

// ColumnIDEQ applies the EQ predicate on the "column_id" field.
func ColumnIDEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldColumnID, v))
}

// ColumnIDNEQ applies the NEQ predicate on the "column_id" field.
func ColumnIDNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldColumnID, v))
}

// ColumnIDIn applies the In predicate on the "column_id" field.
func ColumnIDIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldColumnID, vs...))
}

// ColumnIDNotIn applies the NotIn predicate on the "column_id" field.
func ColumnIDNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldColumnID, vs...))
}

// ColumnIDGT applies the GT predicate on the "column_id" field.
func ColumnIDGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldColumnID, v))
}

// ColumnIDGTE applies the GTE predicate on the "column_id" field.
func ColumnIDGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldColumnID, v))
}

// ColumnIDLT applies the LT predicate on the "column_id" field.
func ColumnIDLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldColumnID, v))
}

// ColumnIDLTE applies the LTE predicate on the "column_id" field.
func ColumnIDLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldColumnID, v))
}

// ColumnIDContains applies the Contains predicate on the "column_id" field.
func ColumnIDContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldColumnID, v))
}

// ColumnIDHasPrefix applies the HasPrefix predicate on the "column_id" field.
func ColumnIDHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldColumnID, v))
}

// ColumnIDHasSuffix applies the HasSuffix predicate on the "column_id" field.
func ColumnIDHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldColumnID, v))
}

// ColumnIDEqualFold applies the EqualFold predicate on the "column_id" field.
func ColumnIDEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldColumnID, v))
}

// ColumnIDContainsFold applies the ContainsFold predicate on the "column_id" field.
func ColumnIDContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldColumnID, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldContent, v))
}

// CardTypeEQ applies the EQ predicate on the "card_type" field.
func CardTypeEQ(v CardType) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCardType, v))
}

// CardTypeNEQ applies the NEQ predicate on the "card_type" field.
func CardTypeNEQ(v CardType) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldCardType, v))
}

// CardTypeIn applies the In predicate on the "card_type" field.
func CardTypeIn(vs ...CardType) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldCardType, vs...))
}

// CardTypeNotIn applies the NotIn predicate on the "card_type" field.
func CardTypeNotIn(vs ...CardType) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldCardType, vs...))
}

// IsAnonymousEQ applies the EQ predicate on the "is_anonymous" field.
func IsAnonymousEQ(v bool) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldIsAnonymous, v))
}

// IsAnonymousNEQ applies the NEQ predicate on the "is_anonymous" field.
func IsAnonymousNEQ(v bool) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldIsAnonymous, v))
}

// CreatedByHashEQ applies the EQ predicate on the "created_by_hash" field.
func CreatedByHashEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCreatedByHash, v))
}

// CreatedByHashNEQ applies the NEQ predicate on the "created_by_hash" field.
func CreatedByHashNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldCreatedByHash, v))
}

// CreatedByHashIn applies the In predicate on the "created_by_hash" field.
func CreatedByHashIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldCreatedByHash, vs...))
}

// CreatedByHashNotIn applies the NotIn predicate on the "created_by_hash" field.
func CreatedByHashNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldCreatedByHash, vs...))
}

// CreatedByHashGT applies the GT predicate on the "created_by_hash" field.
func CreatedByHashGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldCreatedByHash, v))
}

// CreatedByHashGTE applies the GTE predicate on the "created_by_hash" field.
func CreatedByHashGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldCreatedByHash, v))
}

// CreatedByHashLT applies the LT predicate on the "created_by_hash" field.
func CreatedByHashLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldCreatedByHash, v))
}

// CreatedByHashLTE applies the LTE predicate on the "created_by_hash" field.
func CreatedByHashLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldCreatedByHash, v))
}

// CreatedByHashContains applies the Contains predicate on the "created_by_hash" field.
func CreatedByHashContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldCreatedByHash, v))
}

// CreatedByHashHasPrefix applies the HasPrefix predicate on the "created_by_hash" field.
func CreatedByHashHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldCreatedByHash, v))
}

// CreatedByHashHasSuffix applies the HasSuffix predicate on the "created_by_hash" field.
func CreatedByHashHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldCreatedByHash, v))
}

// CreatedByHashEqualFold applies the EqualFold predicate on the "created_by_hash" field.
func CreatedByHashEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldCreatedByHash, v))
}

// CreatedByHashContainsFold applies the ContainsFold predicate on the "created_by_hash" field.
func CreatedByHashContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldCreatedByHash, v))
}

// CreatedByAliasEQ applies the EQ predicate on the "created_by_alias" field.
func CreatedByAliasEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCreatedByAlias, v))
}

// CreatedByAliasNEQ applies the NEQ predicate on the "created_by_alias" field.
func CreatedByAliasNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldCreatedByAlias, v))
}

// CreatedByAliasIn applies the In predicate on the "created_by_alias" field.
func CreatedByAliasIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldCreatedByAlias, vs...))
}

// CreatedByAliasNotIn applies the NotIn predicate on the "created_by_alias" field.
func CreatedByAliasNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldCreatedByAlias, vs...))
}

// CreatedByAliasGT applies the GT predicate on the "created_by_alias" field.
func CreatedByAliasGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldCreatedByAlias, v))
}

// CreatedByAliasGTE applies the GTE predicate on the "created_by_alias" field.
func CreatedByAliasGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldCreatedByAlias, v))
}

// CreatedByAliasLT applies the LT predicate on the "created_by_alias" field.
func CreatedByAliasLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldCreatedByAlias, v))
}

// CreatedByAliasLTE applies the LTE predicate on the "created_by_alias" field.
func CreatedByAliasLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldCreatedByAlias, v))
}

// CreatedByAliasContains applies the Contains predicate on the "created_by_alias" field.
func CreatedByAliasContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldCreatedByAlias, v))
}

// CreatedByAliasHasPrefix applies the HasPrefix predicate on the "created_by_alias" field.
func CreatedByAliasHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldCreatedByAlias, v))
}

// CreatedByAliasHasSuffix applies the HasSuffix predicate on the "created_by_alias" field.
func CreatedByAliasHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldCreatedByAlias, v))
}

// CreatedByAliasIsNil applies the IsNil predicate on the "created_by_alias" field.
func CreatedByAliasIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldCreatedByAlias))
}

// CreatedByAliasNotNil applies the NotNil predicate on the "created_by_alias" field.
func CreatedByAliasNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldCreatedByAlias))
}

// CreatedByAliasEqualFold applies the EqualFold predicate on the "created_by_alias" field.
func CreatedByAliasEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldCreatedByAlias, v))
}

// CreatedByAliasContainsFold applies the ContainsFold predicate on the "created_by_alias" field.
func CreatedByAliasContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldCreatedByAlias, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldCreatedAt, v))
}

// DirectCountEQ applies the EQ predicate on the "direct_count" field.
func DirectCountEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldDirectCount, v))
}

// DirectCountNEQ applies the NEQ predicate on the "direct_count" field.
func DirectCountNEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldDirectCount, v))
}

// DirectCountIn applies the In predicate on the "direct_count" field.
func DirectCountIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldDirectCount, vs...))
}

// DirectCountNotIn applies the NotIn predicate on the "direct_count" field.
func DirectCountNotIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldDirectCount, vs...))
}

// DirectCountGT applies the GT predicate on the "direct_count" field.
func DirectCountGT(v int) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldDirectCount, v))
}

// DirectCountGTE applies the GTE predicate on the "direct_count" field.
func DirectCountGTE(v int) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldDirectCount, v))
}

// DirectCountLT applies the LT predicate on the "direct_count" field.
func DirectCountLT(v int) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldDirectCount, v))
}

// DirectCountLTE applies the LTE predicate on the "direct_count" field.
func DirectCountLTE(v int) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldDirectCount, v))
}

// AggregatedCountEQ applies the EQ predicate on the "aggregated_count" field.
func AggregatedCountEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldAggregatedCount, v))
}

// AggregatedCountNEQ applies the NEQ predicate on the "aggregated_count" field.
func AggregatedCountNEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldAggregatedCount, v))
}

// AggregatedCountIn applies the In predicate on the "aggregated_count" field.
func AggregatedCountIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldAggregatedCount, vs...))
}

// AggregatedCountNotIn applies the NotIn predicate on the "aggregated_count" field.
func AggregatedCountNotIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldAggregatedCount, vs...))
}

// AggregatedCountGT applies the GT predicate on the "aggregated_count" field.
func AggregatedCountGT(v int) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldAggregatedCount, v))
}

// AggregatedCountGTE applies the GTE predicate on the "aggregated_count" field.
func AggregatedCountGTE(v int) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldAggregatedCount, v))
}

// AggregatedCountLT applies the LT predicate on the "aggregated_count" field.
func AggregatedCountLT(v int) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldAggregatedCount, v))
}

// AggregatedCountLTE applies the LTE predicate on the "aggregated_count" field.
func AggregatedCountLTE(v int) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldAggregatedCount, v))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDGT applies the GT predicate on the "parent_id" field.
func ParentIDGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldParentID, v))
}

// ParentIDGTE applies the GTE predicate on the "parent_id" field.
func ParentIDGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldParentID, v))
}

// ParentIDLT applies the LT predicate on the "parent_id" field.
func ParentIDLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldParentID, v))
}

// ParentIDLTE applies the LTE predicate on the "parent_id" field.
func ParentIDLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldParentID, v))
}

// ParentIDContains applies the Contains predicate on the "parent_id" field.
func ParentIDContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldParentID, v))
}

// ParentIDHasPrefix applies the HasPrefix predicate on the "parent_id" field.
func ParentIDHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldParentID, v))
}

// ParentIDHasSuffix applies the HasSuffix predicate on the "parent_id" field.
func ParentIDHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldParentID, v))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldParentID))
}

// ParentIDEqualFold applies the EqualFold predicate on the "parent_id" field.
func ParentIDEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldParentID, v))
}

// ParentIDContainsFold applies the ContainsFold predicate on the "parent_id" field.
func ParentIDContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldParentID, v))
}

// LinkedFeedbackIdsIsNil applies the IsNil predicate on the "linked_feedback_ids" field.
func LinkedFeedbackIdsIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldLinkedFeedbackIds))
}

// LinkedFeedbackIdsNotNil applies the NotNil predicate on the "linked_feedback_ids" field.
func LinkedFeedbackIdsNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldLinkedFeedbackIds))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Card) predicate.Card {
	return predicate.Card(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Card) predicate.Card {
	return predicate.Card(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Card) predicate.Card {
	return predicate.Card(sql.NotPredicates(p))
}
