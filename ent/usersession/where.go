// Code generated by ent, DO NOT EDIT.

package usersession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/retroboardhq/retroboard/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UserSession {
	return predicate.UserSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UserSession {
	return predicate.UserSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UserSession {
	return predicate.UserSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UserSession {
	return predicate.UserSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UserSession {
	return predicate.UserSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UserSession {
	return predicate.UserSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UserSession {
	return predicate.UserSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UserSession {
	return predicate.UserSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UserSession {
	return predicate.UserSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UserSession {
	return predicate.UserSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UserSession {
	return predicate.UserSession(sql.FieldContainsFold(FieldID, id))
}

// BoardID applies equality check predicate on the "board_id" field. It's identical to BoardIDEQ.
func BoardID(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldEQ(FieldBoardID, v))
}

// IdentityHash applies equality check predicate on the "identity_hash" field. It's identical to IdentityHashEQ.
func IdentityHash(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldEQ(FieldIdentityHash, v))
}

// Alias applies equality check predicate on the "alias" field. It's identical to AliasEQ.
func Alias(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldEQ(FieldAlias, v))
}

// LastActive applies equality check predicate on the "last_active" field. It's identical to LastActiveEQ.
func LastActive(v time.Time) predicate.UserSession {
	return predicate.UserSession(sql.FieldEQ(FieldLastActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UserSession {
	return predicate.UserSession(sql.FieldEQ(FieldCreatedAt, v))
}

// BoardIDEQ applies the EQ predicate on the "board_id" field.
func BoardIDEQ(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldEQ(FieldBoardID, v))
}

// BoardIDNEQ applies the NEQ predicate on the "board_id" field.
func BoardIDNEQ(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldNEQ(FieldBoardID, v))
}

// BoardIDIn applies the In predicate on the "board_id" field.
func BoardIDIn(vs ...string) predicate.UserSession {
	return predicate.UserSession(sql.FieldIn(FieldBoardID, vs...))
}

// BoardIDNotIn applies the NotIn predicate on the "board_id" field.
func BoardIDNotIn(vs ...string) predicate.UserSession {
	return predicate.UserSession(sql.FieldNotIn(FieldBoardID, vs...))
}

// BoardIDGT applies the GT predicate on the "board_id" field.
func BoardIDGT(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldGT(FieldBoardID, v))
}

// BoardIDGTE applies the GTE predicate on the "board_id" field.
func BoardIDGTE(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldGTE(FieldBoardID, v))
}

// BoardIDLT applies the LT predicate on the "board_id" field.
func BoardIDLT(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldLT(FieldBoardID, v))
}

// BoardIDLTE applies the LTE predicate on the "board_id" field.
func BoardIDLTE(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldLTE(FieldBoardID, v))
}

// BoardIDContains applies the Contains predicate on the "board_id" field.
func BoardIDContains(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldContains(FieldBoardID, v))
}

// BoardIDHasPrefix applies the HasPrefix predicate on the "board_id" field.
func BoardIDHasPrefix(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldHasPrefix(FieldBoardID, v))
}

// BoardIDHasSuffix applies the HasSuffix predicate on the "board_id" field.
func BoardIDHasSuffix(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldHasSuffix(FieldBoardID, v))
}

// BoardIDEqualFold applies the EqualFold predicate on the "board_id" field.
func BoardIDEqualFold(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldEqualFold(FieldBoardID, v))
}

// BoardIDContainsFold applies the ContainsFold predicate on the "board_id" field.
func BoardIDContainsFold(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldContainsFold(FieldBoardID, v))
}

// IdentityHashEQ applies the EQ predicate on the "identity_hash" field.
func IdentityHashEQ(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldEQ(FieldIdentityHash, v))
}

// IdentityHashNEQ applies the NEQ predicate on the "identity_hash" field.
func IdentityHashNEQ(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldNEQ(FieldIdentityHash, v))
}

// IdentityHashIn applies the In predicate on the "identity_hash" field.
func IdentityHashIn(vs ...string) predicate.UserSession {
	return predicate.UserSession(sql.FieldIn(FieldIdentityHash, vs...))
}

// IdentityHashNotIn applies the NotIn predicate on the "identity_hash" field.
func IdentityHashNotIn(vs ...string) predicate.UserSession {
	return predicate.UserSession(sql.FieldNotIn(FieldIdentityHash, vs...))
}

// IdentityHashGT applies the GT predicate on the "identity_hash" field.
func IdentityHashGT(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldGT(FieldIdentityHash, v))
}

// IdentityHashGTE applies the GTE predicate on the "identity_hash" field.
func IdentityHashGTE(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldGTE(FieldIdentityHash, v))
}

// IdentityHashLT applies the LT predicate on the "identity_hash" field.
func IdentityHashLT(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldLT(FieldIdentityHash, v))
}

// IdentityHashLTE applies the LTE predicate on the "identity_hash" field.
func IdentityHashLTE(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldLTE(FieldIdentityHash, v))
}

// IdentityHashContains applies the Contains predicate on the "identity_hash" field.
func IdentityHashContains(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldContains(FieldIdentityHash, v))
}

// IdentityHashHasPrefix applies the HasPrefix predicate on the "identity_hash" field.
func IdentityHashHasPrefix(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldHasPrefix(FieldIdentityHash, v))
}

// IdentityHashHasSuffix applies the HasSuffix predicate on the "identity_hash" field.
func IdentityHashHasSuffix(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldHasSuffix(FieldIdentityHash, v))
}

// IdentityHashEqualFold applies the EqualFold predicate on the "identity_hash" field.
func IdentityHashEqualFold(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldEqualFold(FieldIdentityHash, v))
}

// IdentityHashContainsFold applies the ContainsFold predicate on the "identity_hash" field.
func IdentityHashContainsFold(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldContainsFold(FieldIdentityHash, v))
}

// AliasEQ applies the EQ predicate on the "alias" field.
func AliasEQ(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldEQ(FieldAlias, v))
}

// AliasNEQ applies the NEQ predicate on the "alias" field.
func AliasNEQ(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldNEQ(FieldAlias, v))
}

// AliasIn applies the In predicate on the "alias" field.
func AliasIn(vs ...string) predicate.UserSession {
	return predicate.UserSession(sql.FieldIn(FieldAlias, vs...))
}

// AliasNotIn applies the NotIn predicate on the "alias" field.
func AliasNotIn(vs ...string) predicate.UserSession {
	return predicate.UserSession(sql.FieldNotIn(FieldAlias, vs...))
}

// AliasGT applies the GT predicate on the "alias" field.
func AliasGT(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldGT(FieldAlias, v))
}

// AliasGTE applies the GTE predicate on the "alias" field.
func AliasGTE(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldGTE(FieldAlias, v))
}

// AliasLT applies the LT predicate on the "alias" field.
func AliasLT(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldLT(FieldAlias, v))
}

// AliasLTE applies the LTE predicate on the "alias" field.
func AliasLTE(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldLTE(FieldAlias, v))
}

// AliasContains applies the Contains predicate on the "alias" field.
func AliasContains(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldContains(FieldAlias, v))
}

// AliasHasPrefix applies the HasPrefix predicate on the "alias" field.
func AliasHasPrefix(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldHasPrefix(FieldAlias, v))
}

// AliasHasSuffix applies the HasSuffix predicate on the "alias" field.
func AliasHasSuffix(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldHasSuffix(FieldAlias, v))
}

// AliasEqualFold applies the EqualFold predicate on the "alias" field.
func AliasEqualFold(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldEqualFold(FieldAlias, v))
}

// AliasContainsFold applies the ContainsFold predicate on the "alias" field.
func AliasContainsFold(v string) predicate.UserSession {
	return predicate.UserSession(sql.FieldContainsFold(FieldAlias, v))
}

// LastActiveEQ applies the EQ predicate on the "last_active" field.
func LastActiveEQ(v time.Time) predicate.UserSession {
	return predicate.UserSession(sql.FieldEQ(FieldLastActive, v))
}

// LastActiveNEQ applies the NEQ predicate on the "last_active" field.
func LastActiveNEQ(v time.Time) predicate.UserSession {
	return predicate.UserSession(sql.FieldNEQ(FieldLastActive, v))
}

// LastActiveIn applies the In predicate on the "last_active" field.
func LastActiveIn(vs ...time.Time) predicate.UserSession {
	return predicate.UserSession(sql.FieldIn(FieldLastActive, vs...))
}

// LastActiveNotIn applies the NotIn predicate on the "last_active" field.
func LastActiveNotIn(vs ...time.Time) predicate.UserSession {
	return predicate.UserSession(sql.FieldNotIn(FieldLastActive, vs...))
}

// LastActiveGT applies the GT predicate on the "last_active" field.
func LastActiveGT(v time.Time) predicate.UserSession {
	return predicate.UserSession(sql.FieldGT(FieldLastActive, v))
}

// LastActiveGTE applies the GTE predicate on the "last_active" field.
func LastActiveGTE(v time.Time) predicate.UserSession {
	return predicate.UserSession(sql.FieldGTE(FieldLastActive, v))
}

// LastActiveLT applies the LT predicate on the "last_active" field.
func LastActiveLT(v time.Time) predicate.UserSession {
	return predicate.UserSession(sql.FieldLT(FieldLastActive, v))
}

// LastActiveLTE applies the LTE predicate on the "last_active" field.
func LastActiveLTE(v time.Time) predicate.UserSession {
	return predicate.UserSession(sql.FieldLTE(FieldLastActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UserSession {
	return predicate.UserSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UserSession {
	return predicate.UserSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UserSession {
	return predicate.UserSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UserSession {
	return predicate.UserSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UserSession {
	return predicate.UserSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UserSession {
	return predicate.UserSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UserSession {
	return predicate.UserSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UserSession {
	return predicate.UserSession(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserSession) predicate.UserSession {
	return predicate.UserSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserSession) predicate.UserSession {
	return predicate.UserSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserSession) predicate.UserSession {
	return predicate.UserSession(sql.NotPredicates(p))
}
