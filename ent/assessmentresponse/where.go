// Code generated by ent, DO NOT EDIT.

package assessmentresponse

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEQ(FieldSessionID, v))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEQ(FieldStepID, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEQ(FieldAnswer, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEQ(FieldScore, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEQ(FieldPassed, v))
}

// SkillDeltas applies equality check predicate on the "skill_deltas" field. It's identical to SkillDeltasEQ.
func SkillDeltas(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEQ(FieldSkillDeltas, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldLTE(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldContainsFold(FieldSessionID, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldLTE(FieldStepID, v))
}

// StepIDContains applies the Contains predicate on the "step_id" field.
func StepIDContains(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldContains(FieldStepID, v))
}

// StepIDHasPrefix applies the HasPrefix predicate on the "step_id" field.
func StepIDHasPrefix(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldHasPrefix(FieldStepID, v))
}

// StepIDHasSuffix applies the HasSuffix predicate on the "step_id" field.
func StepIDHasSuffix(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldHasSuffix(FieldStepID, v))
}

// StepIDEqualFold applies the EqualFold predicate on the "step_id" field.
func StepIDEqualFold(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEqualFold(FieldStepID, v))
}

// StepIDContainsFold applies the ContainsFold predicate on the "step_id" field.
func StepIDContainsFold(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldContainsFold(FieldStepID, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldContainsFold(FieldAnswer, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldLTE(FieldScore, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldNEQ(FieldPassed, v))
}

// SkillDeltasEQ applies the EQ predicate on the "skill_deltas" field.
func SkillDeltasEQ(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEQ(FieldSkillDeltas, v))
}

// SkillDeltasNEQ applies the NEQ predicate on the "skill_deltas" field.
func SkillDeltasNEQ(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldNEQ(FieldSkillDeltas, v))
}

// SkillDeltasIn applies the In predicate on the "skill_deltas" field.
func SkillDeltasIn(vs ...string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldIn(FieldSkillDeltas, vs...))
}

// SkillDeltasNotIn applies the NotIn predicate on the "skill_deltas" field.
func SkillDeltasNotIn(vs ...string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldNotIn(FieldSkillDeltas, vs...))
}

// SkillDeltasGT applies the GT predicate on the "skill_deltas" field.
func SkillDeltasGT(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldGT(FieldSkillDeltas, v))
}

// SkillDeltasGTE applies the GTE predicate on the "skill_deltas" field.
func SkillDeltasGTE(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldGTE(FieldSkillDeltas, v))
}

// SkillDeltasLT applies the LT predicate on the "skill_deltas" field.
func SkillDeltasLT(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldLT(FieldSkillDeltas, v))
}

// SkillDeltasLTE applies the LTE predicate on the "skill_deltas" field.
func SkillDeltasLTE(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldLTE(FieldSkillDeltas, v))
}

// SkillDeltasContains applies the Contains predicate on the "skill_deltas" field.
func SkillDeltasContains(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldContains(FieldSkillDeltas, v))
}

// SkillDeltasHasPrefix applies the HasPrefix predicate on the "skill_deltas" field.
func SkillDeltasHasPrefix(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldHasPrefix(FieldSkillDeltas, v))
}

// SkillDeltasHasSuffix applies the HasSuffix predicate on the "skill_deltas" field.
func SkillDeltasHasSuffix(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldHasSuffix(FieldSkillDeltas, v))
}

// SkillDeltasEqualFold applies the EqualFold predicate on the "skill_deltas" field.
func SkillDeltasEqualFold(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldEqualFold(FieldSkillDeltas, v))
}

// SkillDeltasContainsFold applies the ContainsFold predicate on the "skill_deltas" field.
func SkillDeltasContainsFold(v string) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.FieldContainsFold(FieldSkillDeltas, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentResponse) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentResponse) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentResponse) predicate.AssessmentResponse {
	return predicate.AssessmentResponse(sql.NotPredicates(p))
}
