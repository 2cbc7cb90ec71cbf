// Code generated by ent, DO NOT EDIT.

package board

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/retroboardhq/retroboard/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Board {
	return predicate.Board(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Board {
	return predicate.Board(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Board {
	return predicate.Board(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Board {
	return predicate.Board(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Board {
	return predicate.Board(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Board {
	return predicate.Board(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Board {
	return predicate.Board(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Board {
	return predicate.Board(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Board {
	return predicate.Board(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Board {
	return predicate.Board(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Board {
	return predicate.Board(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Board {
	return predicate.Board(sql.FieldEQ(FieldName, v))
}

// ClosedAt applies equality check predicate on the "closed_at" field. It's identical to ClosedAtEQ.
func ClosedAt(v time.Time) predicate.Board {
	return predicate.Board(sql.FieldEQ(FieldClosedAt, v))
}

// CardLimit applies equality check predicate on the "card_limit" field. It's identical to CardLimitEQ.
func CardLimit(v int) predicate.Board {
	return predicate.Board(sql.FieldEQ(FieldCardLimit, v))
}

// ReactionLimit applies equality check predicate on the "reaction_limit" field. It's identical to ReactionLimitEQ.
func ReactionLimit(v int) predicate.Board {
	return predicate.Board(sql.FieldEQ(FieldReactionLimit, v))
}

// CreatorHash applies equality check predicate on the "creator_hash" field. It's identical to CreatorHashEQ.
func CreatorHash(v string) predicate.Board {
	return predicate.Board(sql.FieldEQ(FieldCreatorHash, v))
}

// ShareableLink applies equality check predicate on the "shareable_link" field. It's identical to ShareableLinkEQ.
func ShareableLink(v string) predicate.Board {
	return predicate.Board(sql.FieldEQ(FieldShareableLink, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Board {
	return predicate.Board(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Board {
	return predicate.Board(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Board {
	return predicate.Board(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Board {
	return predicate.Board(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Board {
	return predicate.Board(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Board {
	return predicate.Board(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Board {
	return predicate.Board(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Board {
	return predicate.Board(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Board {
	return predicate.Board(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Board {
	return predicate.Board(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Board {
	return predicate.Board(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Board {
	return predicate.Board(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Board {
	return predicate.Board(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Board {
	return predicate.Board(sql.FieldContainsFold(FieldName, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Board {
	return predicate.Board(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Board {
	return predicate.Board(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Board {
	return predicate.Board(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Board {
	return predicate.Board(sql.FieldNotIn(FieldState, vs...))
}

// ClosedAtEQ applies the EQ predicate on the "closed_at" field.
func ClosedAtEQ(v time.Time) predicate.Board {
	return predicate.Board(sql.FieldEQ(FieldClosedAt, v))
}

// ClosedAtNEQ applies the NEQ predicate on the "closed_at" field.
func ClosedAtNEQ(v time.Time) predicate.Board {
	return predicate.Board(sql.FieldNEQ(FieldClosedAt, v))
}

// ClosedAtIn applies the In predicate on the "closed_at" field.
func ClosedAtIn(vs ...time.Time) predicate.Board {
	return predicate.Board(sql.FieldIn(FieldClosedAt, vs...))
}

// ClosedAtNotIn applies the NotIn predicate on the "closed_at" field.
func ClosedAtNotIn(vs ...time.Time) predicate.Board {
	return predicate.Board(sql.FieldNotIn(FieldClosedAt, vs...))
}

// ClosedAtGT applies the GT predicate on the "closed_at" field.
func ClosedAtGT(v time.Time) predicate.Board {
	return predicate.Board(sql.FieldGT(FieldClosedAt, v))
}

// ClosedAtGTE applies the GTE predicate on the "closed_at" field.
func ClosedAtGTE(v time.Time) predicate.Board {
	return predicate.Board(sql.FieldGTE(FieldClosedAt, v))
}

// ClosedAtLT applies the LT predicate on the "closed_at" field.
func ClosedAtLT(v time.Time) predicate.Board {
	return predicate.Board(sql.FieldLT(FieldClosedAt, v))
}

// ClosedAtLTE applies the LTE predicate on the "closed_at" field.
func ClosedAtLTE(v time.Time) predicate.Board {
	return predicate.Board(sql.FieldLTE(FieldClosedAt, v))
}

// ClosedAtIsNil applies the IsNil predicate on the "closed_at" field.
func ClosedAtIsNil() predicate.Board {
	return predicate.Board(sql.FieldIsNull(FieldClosedAt))
}

// ClosedAtNotNil applies the NotNil predicate on the "closed_at" field.
func ClosedAtNotNil() predicate.Board {
	return predicate.Board(sql.FieldNotNull(FieldClosedAt))
}

// CardLimitEQ applies the EQ predicate on the "card_limit" field.
func CardLimitEQ(v int) predicate.Board {
	return predicate.Board(sql.FieldEQ(FieldCardLimit, v))
}

// CardLimitNEQ applies the NEQ predicate on the "card_limit" field.
func CardLimitNEQ(v int) predicate.Board {
	return predicate.Board(sql.FieldNEQ(FieldCardLimit, v))
}

// CardLimitIn applies the In predicate on the "card_limit" field.
func CardLimitIn(vs ...int) predicate.Board {
	return predicate.Board(sql.FieldIn(FieldCardLimit, vs...))
}

// CardLimitNotIn applies the NotIn predicate on the "card_limit" field.
func CardLimitNotIn(vs ...int) predicate.Board {
	return predicate.Board(sql.FieldNotIn(FieldCardLimit, vs...))
}

// CardLimitGT applies the GT predicate on the "card_limit" field.
func CardLimitGT(v int) predicate.Board {
	return predicate.Board(sql.FieldGT(FieldCardLimit, v))
}

// CardLimitGTE applies the GTE predicate on the "card_limit" field.
func CardLimitGTE(v int) predicate.Board {
	return predicate.Board(sql.FieldGTE(FieldCardLimit, v))
}

// CardLimitLT applies the LT predicate on the "card_limit" field.
func CardLimitLT(v int) predicate.Board {
	return predicate.Board(sql.FieldLT(FieldCardLimit, v))
}

// CardLimitLTE applies the LTE predicate on the "card_limit" field.
func CardLimitLTE(v int) predicate.Board {
	return predicate.Board(sql.FieldLTE(FieldCardLimit, v))
}

// CardLimitIsNil applies the IsNil predicate on the "card_limit" field.
func CardLimitIsNil() predicate.Board {
	return predicate.Board(sql.FieldIsNull(FieldCardLimit))
}

// CardLimitNotNil applies the NotNil predicate on the "card_limit" field.
func CardLimitNotNil() predicate.Board {
	return predicate.Board(sql.FieldNotNull(FieldCardLimit))
}

// ReactionLimitEQ applies the EQ predicate on the "reaction_limit" field.
func ReactionLimitEQ(v int) predicate.Board {
	return predicate.Board(sql.FieldEQ(FieldReactionLimit, v))
}

// ReactionLimitNEQ applies the NEQ predicate on the "reaction_limit" field.
func ReactionLimitNEQ(v int) predicate.Board {
	return predicate.Board(sql.FieldNEQ(FieldReactionLimit, v))
}

// ReactionLimitIn applies the In predicate on the "reaction_limit" field.
func ReactionLimitIn(vs ...int) predicate.Board {
	return predicate.Board(sql.FieldIn(FieldReactionLimit, vs...))
}

// ReactionLimitNotIn applies the NotIn predicate on the "reaction_limit" field.
func ReactionLimitNotIn(vs ...int) predicate.Board {
	return predicate.Board(sql.FieldNotIn(FieldReactionLimit, vs...))
}

// ReactionLimitGT applies the GT predicate on the "reaction_limit" field.
func ReactionLimitGT(v int) predicate.Board {
	return predicate.Board(sql.FieldGT(FieldReactionLimit, v))
}

// ReactionLimitGTE applies the GTE predicate on the "reaction_limit" field.
func ReactionLimitGTE(v int) predicate.Board {
	return predicate.Board(sql.FieldGTE(FieldReactionLimit, v))
}

// ReactionLimitLT applies the LT predicate on the "reaction_limit" field.
func ReactionLimitLT(v int) predicate.Board {
	return predicate.Board(sql.FieldLT(FieldReactionLimit, v))
}

// ReactionLimitLTE applies the LTE predicate on the "reaction_limit" field.
func ReactionLimitLTE(v int) predicate.Board {
	return predicate.Board(sql.FieldLTE(FieldReactionLimit, v))
}

// ReactionLimitIsNil applies the IsNil predicate on the "reaction_limit" field.
func ReactionLimitIsNil() predicate.Board {
	return predicate.Board(sql.FieldIsNull(FieldReactionLimit))
}

// ReactionLimitNotNil applies the NotNil predicate on the "reaction_limit" field.
func ReactionLimitNotNil() predicate.Board {
	return predicate.Board(sql.FieldNotNull(FieldReactionLimit))
}

// CreatorHashEQ applies the EQ predicate on the "creator_hash" field.
func CreatorHashEQ(v string) predicate.Board {
	return predicate.Board(sql.FieldEQ(FieldCreatorHash, v))
}

// CreatorHashNEQ applies the NEQ predicate on the "creator_hash" field.
func CreatorHashNEQ(v string) predicate.Board {
	return predicate.Board(sql.FieldNEQ(FieldCreatorHash, v))
}

// CreatorHashIn applies the In predicate on the "creator_hash" field.
func CreatorHashIn(vs ...string) predicate.Board {
	return predicate.Board(sql.FieldIn(FieldCreatorHash, vs...))
}

// CreatorHashNotIn applies the NotIn predicate on the "creator_hash" field.
func CreatorHashNotIn(vs ...string) predicate.Board {
	return predicate.Board(sql.FieldNotIn(FieldCreatorHash, vs...))
}

// CreatorHashGT applies the GT predicate on the "creator_hash" field.
func CreatorHashGT(v string) predicate.Board {
	return predicate.Board(sql.FieldGT(FieldCreatorHash, v))
}

// CreatorHashGTE applies the GTE predicate on the "creator_hash" field.
func CreatorHashGTE(v string) predicate.Board {
	return predicate.Board(sql.FieldGTE(FieldCreatorHash, v))
}

// CreatorHashLT applies the LT predicate on the "creator_hash" field.
func CreatorHashLT(v string) predicate.Board {
	return predicate.Board(sql.FieldLT(FieldCreatorHash, v))
}

// CreatorHashLTE applies the LTE predicate on the "creator_hash" field.
func CreatorHashLTE(v string) predicate.Board {
	return predicate.Board(sql.FieldLTE(FieldCreatorHash, v))
}

// CreatorHashContains applies the Contains predicate on the "creator_hash" field.
func CreatorHashContains(v string) predicate.Board {
	return predicate.Board(sql.FieldContains(FieldCreatorHash, v))
}

// CreatorHashHasPrefix applies the HasPrefix predicate on the "creator_hash" field.
func CreatorHashHasPrefix(v string) predicate.Board {
	return predicate.Board(sql.FieldHasPrefix(FieldCreatorHash, v))
}

// CreatorHashHasSuffix applies the HasSuffix predicate on the "creator_hash" field.
func CreatorHashHasSuffix(v string) predicate.Board {
	return predicate.Board(sql.FieldHasSuffix(FieldCreatorHash, v))
}

// CreatorHashEqualFold applies the EqualFold predicate on the "creator_hash" field.
func CreatorHashEqualFold(v string) predicate.Board {
	return predicate.Board(sql.FieldEqualFold(FieldCreatorHash, v))
}

// CreatorHashContainsFold applies the ContainsFold predicate on the "creator_hash" field.
func CreatorHashContainsFold(v string) predicate.Board {
	return predicate.Board(sql.FieldContainsFold(FieldCreatorHash, v))
}

// ShareableLinkEQ applies the EQ predicate on the "shareable_link" field.
func ShareableLinkEQ(v string) predicate.Board {
	return predicate.Board(sql.FieldEQ(FieldShareableLink, v))
}

// ShareableLinkNEQ applies the NEQ predicate on the "shareable_link" field.
func ShareableLinkNEQ(v string) predicate.Board {
	return predicate.Board(sql.FieldNEQ(FieldShareableLink, v))
}

// ShareableLinkIn applies the In predicate on the "shareable_link" field.
func ShareableLinkIn(vs ...string) predicate.Board {
	return predicate.Board(sql.FieldIn(FieldShareableLink, vs...))
}

// ShareableLinkNotIn applies the NotIn predicate on the "shareable_link" field.
func ShareableLinkNotIn(vs ...string) predicate.Board {
	return predicate.Board(sql.FieldNotIn(FieldShareableLink, vs...))
}

// ShareableLinkGT applies the GT predicate on the "shareable_link" field.
func ShareableLinkGT(v string) predicate.Board {
	return predicate.Board(sql.FieldGT(FieldShareableLink, v))
}

// ShareableLinkGTE applies the GTE predicate on the "shareable_link" field.
func ShareableLinkGTE(v string) predicate.Board {
	return predicate.Board(sql.FieldGTE(FieldShareableLink, v))
}

// ShareableLinkLT applies the LT predicate on the "shareable_link" field.
func ShareableLinkLT(v string) predicate.Board {
	return predicate.Board(sql.FieldLT(FieldShareableLink, v))
}

// ShareableLinkLTE applies the LTE predicate on the "shareable_link" field.
func ShareableLinkLTE(v string) predicate.Board {
	return predicate.Board(sql.FieldLTE(FieldShareableLink, v))
}

// ShareableLinkContains applies the Contains predicate on the "shareable_link" field.
func ShareableLinkContains(v string) predicate.Board {
	return predicate.Board(sql.FieldContains(FieldShareableLink, v))
}

// ShareableLinkHasPrefix applies the HasPrefix predicate on the "shareable_link" field.
func ShareableLinkHasPrefix(v string) predicate.Board {
	return predicate.Board(sql.FieldHasPrefix(FieldShareableLink, v))
}

// ShareableLinkHasSuffix applies the HasSuffix predicate on the "shareable_link" field.
func ShareableLinkHasSuffix(v string) predicate.Board {
	return predicate.Board(sql.FieldHasSuffix(FieldShareableLink, v))
}

// ShareableLinkEqualFold applies the EqualFold predicate on the "shareable_link" field.
func ShareableLinkEqualFold(v string) predicate.Board {
	return predicate.Board(sql.FieldEqualFold(FieldShareableLink, v))
}

// ShareableLinkContainsFold applies the ContainsFold predicate on the "shareable_link" field.
func ShareableLinkContainsFold(v string) predicate.Board {
	return predicate.Board(sql.FieldContainsFold(FieldShareableLink, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Board {
	return predicate.Board(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Board {
	return predicate.Board(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Board {
	return predicate.Board(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Board {
	return predicate.Board(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Board {
	return predicate.Board(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Board {
	return predicate.Board(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Board {
	return predicate.Board(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Board {
	return predicate.Board(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Board) predicate.Board {
	return predicate.Board(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Board) predicate.Board {
	return predicate.Board(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Board) predicate.Board {
	return predicate.Board(sql.NotPredicates(p))
}
