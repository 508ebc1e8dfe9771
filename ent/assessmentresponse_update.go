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
	"github.com/Trevorton27/tokuWebDev-sub003/ent/assessmentresponse"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/predicate"
)

// AssessmentResponseUpdate is the builder for updating AssessmentResponse entities.
type AssessmentResponseUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentResponseMutation
}

// Where appends a list predicates to the AssessmentResponseUpdate builder.
func (_u *AssessmentResponseUpdate) Where(ps ...predicate.AssessmentResponse) *AssessmentResponseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssessmentResponseUpdate) SetUpdatedAt(v time.Time) *AssessmentResponseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentResponseUpdate) SetSessionID(v string) *AssessmentResponseUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentResponseUpdate) SetNillableSessionID(v *string) *AssessmentResponseUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *AssessmentResponseUpdate) SetStepID(v string) *AssessmentResponseUpdate {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *AssessmentResponseUpdate) SetNillableStepID(v *string) *AssessmentResponseUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *AssessmentResponseUpdate) SetAnswer(v string) *AssessmentResponseUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *AssessmentResponseUpdate) SetNillableAnswer(v *string) *AssessmentResponseUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentResponseUpdate) SetScore(v float64) *AssessmentResponseUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentResponseUpdate) SetNillableScore(v *float64) *AssessmentResponseUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentResponseUpdate) AddScore(v float64) *AssessmentResponseUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *AssessmentResponseUpdate) SetPassed(v bool) *AssessmentResponseUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *AssessmentResponseUpdate) SetNillablePassed(v *bool) *AssessmentResponseUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetSkillDeltas sets the "skill_deltas" field.
func (_u *AssessmentResponseUpdate) SetSkillDeltas(v string) *AssessmentResponseUpdate {
	_u.mutation.SetSkillDeltas(v)
	return _u
}

// SetNillableSkillDeltas sets the "skill_deltas" field if the given value is not nil.
func (_u *AssessmentResponseUpdate) SetNillableSkillDeltas(v *string) *AssessmentResponseUpdate {
	if v != nil {
		_u.SetSkillDeltas(*v)
	}
	return _u
}

// Mutation returns the AssessmentResponseMutation object of the builder.
func (_u *AssessmentResponseUpdate) Mutation() *AssessmentResponseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentResponseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentResponseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentResponseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentResponseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssessmentResponseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assessmentresponse.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentResponseUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentresponse.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResponse.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepID(); ok {
		if err := assessmentresponse.StepIDValidator(v); err != nil {
			return &ValidationError{Name: "step_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResponse.step_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := assessmentresponse.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "AssessmentResponse.answer": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentResponseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentresponse.Table, assessmentresponse.Columns, sqlgraph.NewFieldSpec(assessmentresponse.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(assessmentresponse.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentresponse.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(assessmentresponse.FieldStepID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(assessmentresponse.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentresponse.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentresponse.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(assessmentresponse.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SkillDeltas(); ok {
		_spec.SetField(assessmentresponse.FieldSkillDeltas, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentResponseUpdateOne is the builder for updating a single AssessmentResponse entity.
type AssessmentResponseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentResponseMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssessmentResponseUpdateOne) SetUpdatedAt(v time.Time) *AssessmentResponseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentResponseUpdateOne) SetSessionID(v string) *AssessmentResponseUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentResponseUpdateOne) SetNillableSessionID(v *string) *AssessmentResponseUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *AssessmentResponseUpdateOne) SetStepID(v string) *AssessmentResponseUpdateOne {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *AssessmentResponseUpdateOne) SetNillableStepID(v *string) *AssessmentResponseUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *AssessmentResponseUpdateOne) SetAnswer(v string) *AssessmentResponseUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *AssessmentResponseUpdateOne) SetNillableAnswer(v *string) *AssessmentResponseUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentResponseUpdateOne) SetScore(v float64) *AssessmentResponseUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentResponseUpdateOne) SetNillableScore(v *float64) *AssessmentResponseUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentResponseUpdateOne) AddScore(v float64) *AssessmentResponseUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *AssessmentResponseUpdateOne) SetPassed(v bool) *AssessmentResponseUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *AssessmentResponseUpdateOne) SetNillablePassed(v *bool) *AssessmentResponseUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetSkillDeltas sets the "skill_deltas" field.
func (_u *AssessmentResponseUpdateOne) SetSkillDeltas(v string) *AssessmentResponseUpdateOne {
	_u.mutation.SetSkillDeltas(v)
	return _u
}

// SetNillableSkillDeltas sets the "skill_deltas" field if the given value is not nil.
func (_u *AssessmentResponseUpdateOne) SetNillableSkillDeltas(v *string) *AssessmentResponseUpdateOne {
	if v != nil {
		_u.SetSkillDeltas(*v)
	}
	return _u
}

// Mutation returns the AssessmentResponseMutation object of the builder.
func (_u *AssessmentResponseUpdateOne) Mutation() *AssessmentResponseMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentResponseUpdate builder.
func (_u *AssessmentResponseUpdateOne) Where(ps ...predicate.AssessmentResponse) *AssessmentResponseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentResponseUpdateOne) Select(field string, fields ...string) *AssessmentResponseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentResponse entity.
func (_u *AssessmentResponseUpdateOne) Save(ctx context.Context) (*AssessmentResponse, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentResponseUpdateOne) SaveX(ctx context.Context) *AssessmentResponse {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentResponseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentResponseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssessmentResponseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assessmentresponse.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentResponseUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentresponse.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResponse.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepID(); ok {
		if err := assessmentresponse.StepIDValidator(v); err != nil {
			return &ValidationError{Name: "step_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResponse.step_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := assessmentresponse.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "AssessmentResponse.answer": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentResponseUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentResponse, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentresponse.Table, assessmentresponse.Columns, sqlgraph.NewFieldSpec(assessmentresponse.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentResponse.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentresponse.FieldID)
		for _, f := range fields {
			if !assessmentresponse.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentresponse.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(assessmentresponse.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentresponse.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(assessmentresponse.FieldStepID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(assessmentresponse.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentresponse.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentresponse.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(assessmentresponse.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SkillDeltas(); ok {
		_spec.SetField(assessmentresponse.FieldSkillDeltas, field.TypeString, value)
	}
	_node = &AssessmentResponse{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
