// Code generated by ent, DO NOT EDIT.

package assessmentsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldUserID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldStatus, v))
}

// CurrentStepID applies equality check predicate on the "current_step_id" field. It's identical to CurrentStepIDEQ.
func CurrentStepID(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldCurrentStepID, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldContainsFold(FieldUserID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldContainsFold(FieldStatus, v))
}

// CurrentStepIDEQ applies the EQ predicate on the "current_step_id" field.
func CurrentStepIDEQ(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldCurrentStepID, v))
}

// CurrentStepIDNEQ applies the NEQ predicate on the "current_step_id" field.
func CurrentStepIDNEQ(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldCurrentStepID, v))
}

// CurrentStepIDIn applies the In predicate on the "current_step_id" field.
func CurrentStepIDIn(vs ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldCurrentStepID, vs...))
}

// CurrentStepIDNotIn applies the NotIn predicate on the "current_step_id" field.
func CurrentStepIDNotIn(vs ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldCurrentStepID, vs...))
}

// CurrentStepIDGT applies the GT predicate on the "current_step_id" field.
func CurrentStepIDGT(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldCurrentStepID, v))
}

// CurrentStepIDGTE applies the GTE predicate on the "current_step_id" field.
func CurrentStepIDGTE(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldCurrentStepID, v))
}

// CurrentStepIDLT applies the LT predicate on the "current_step_id" field.
func CurrentStepIDLT(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldCurrentStepID, v))
}

// CurrentStepIDLTE applies the LTE predicate on the "current_step_id" field.
func CurrentStepIDLTE(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldCurrentStepID, v))
}

// CurrentStepIDContains applies the Contains predicate on the "current_step_id" field.
func CurrentStepIDContains(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldContains(FieldCurrentStepID, v))
}

// CurrentStepIDHasPrefix applies the HasPrefix predicate on the "current_step_id" field.
func CurrentStepIDHasPrefix(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldHasPrefix(FieldCurrentStepID, v))
}

// CurrentStepIDHasSuffix applies the HasSuffix predicate on the "current_step_id" field.
func CurrentStepIDHasSuffix(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldHasSuffix(FieldCurrentStepID, v))
}

// CurrentStepIDEqualFold applies the EqualFold predicate on the "current_step_id" field.
func CurrentStepIDEqualFold(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEqualFold(FieldCurrentStepID, v))
}

// CurrentStepIDContainsFold applies the ContainsFold predicate on the "current_step_id" field.
func CurrentStepIDContainsFold(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldContainsFold(FieldCurrentStepID, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentSession) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentSession) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentSession) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.NotPredicates(p))
}
