// Code generated by ent, DO NOT EDIT.

package skillmastery

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldUserID, v))
}

// SkillKey applies equality check predicate on the "skill_key" field. It's identical to SkillKeyEQ.
func SkillKey(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldSkillKey, v))
}

// Mastery applies equality check predicate on the "mastery" field. It's identical to MasteryEQ.
func Mastery(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldMastery, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldConfidence, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldAttempts, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldContainsFold(FieldUserID, v))
}

// SkillKeyEQ applies the EQ predicate on the "skill_key" field.
func SkillKeyEQ(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldSkillKey, v))
}

// SkillKeyNEQ applies the NEQ predicate on the "skill_key" field.
func SkillKeyNEQ(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNEQ(FieldSkillKey, v))
}

// SkillKeyIn applies the In predicate on the "skill_key" field.
func SkillKeyIn(vs ...string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldIn(FieldSkillKey, vs...))
}

// SkillKeyNotIn applies the NotIn predicate on the "skill_key" field.
func SkillKeyNotIn(vs ...string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNotIn(FieldSkillKey, vs...))
}

// SkillKeyGT applies the GT predicate on the "skill_key" field.
func SkillKeyGT(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGT(FieldSkillKey, v))
}

// SkillKeyGTE applies the GTE predicate on the "skill_key" field.
func SkillKeyGTE(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGTE(FieldSkillKey, v))
}

// SkillKeyLT applies the LT predicate on the "skill_key" field.
func SkillKeyLT(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLT(FieldSkillKey, v))
}

// SkillKeyLTE applies the LTE predicate on the "skill_key" field.
func SkillKeyLTE(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLTE(FieldSkillKey, v))
}

// SkillKeyContains applies the Contains predicate on the "skill_key" field.
func SkillKeyContains(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldContains(FieldSkillKey, v))
}

// SkillKeyHasPrefix applies the HasPrefix predicate on the "skill_key" field.
func SkillKeyHasPrefix(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldHasPrefix(FieldSkillKey, v))
}

// SkillKeyHasSuffix applies the HasSuffix predicate on the "skill_key" field.
func SkillKeyHasSuffix(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldHasSuffix(FieldSkillKey, v))
}

// SkillKeyEqualFold applies the EqualFold predicate on the "skill_key" field.
func SkillKeyEqualFold(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEqualFold(FieldSkillKey, v))
}

// SkillKeyContainsFold applies the ContainsFold predicate on the "skill_key" field.
func SkillKeyContainsFold(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldContainsFold(FieldSkillKey, v))
}

// MasteryEQ applies the EQ predicate on the "mastery" field.
func MasteryEQ(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldMastery, v))
}

// MasteryNEQ applies the NEQ predicate on the "mastery" field.
func MasteryNEQ(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNEQ(FieldMastery, v))
}

// MasteryIn applies the In predicate on the "mastery" field.
func MasteryIn(vs ...float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldIn(FieldMastery, vs...))
}

// MasteryNotIn applies the NotIn predicate on the "mastery" field.
func MasteryNotIn(vs ...float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNotIn(FieldMastery, vs...))
}

// MasteryGT applies the GT predicate on the "mastery" field.
func MasteryGT(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGT(FieldMastery, v))
}

// MasteryGTE applies the GTE predicate on the "mastery" field.
func MasteryGTE(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGTE(FieldMastery, v))
}

// MasteryLT applies the LT predicate on the "mastery" field.
func MasteryLT(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLT(FieldMastery, v))
}

// MasteryLTE applies the LTE predicate on the "mastery" field.
func MasteryLTE(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLTE(FieldMastery, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLTE(FieldConfidence, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLTE(FieldAttempts, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SkillMastery) predicate.SkillMastery {
	return predicate.SkillMastery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SkillMastery) predicate.SkillMastery {
	return predicate.SkillMastery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SkillMastery) predicate.SkillMastery {
	return predicate.SkillMastery(sql.NotPredicates(p))
}
