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
	"github.com/Trevorton27/tokuWebDev-sub003/ent/assessmentsession"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/predicate"
)

// AssessmentSessionUpdate is the builder for updating AssessmentSession entities.
type AssessmentSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentSessionMutation
}

// Where appends a list predicates to the AssessmentSessionUpdate builder.
func (_u *AssessmentSessionUpdate) Where(ps ...predicate.AssessmentSession) *AssessmentSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssessmentSessionUpdate) SetUpdatedAt(v time.Time) *AssessmentSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentSessionUpdate) SetSessionID(v string) *AssessmentSessionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableSessionID(v *string) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AssessmentSessionUpdate) SetUserID(v string) *AssessmentSessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableUserID(v *string) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AssessmentSessionUpdate) SetStatus(v string) *AssessmentSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableStatus(v *string) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStepID sets the "current_step_id" field.
func (_u *AssessmentSessionUpdate) SetCurrentStepID(v string) *AssessmentSessionUpdate {
	_u.mutation.SetCurrentStepID(v)
	return _u
}

// SetNillableCurrentStepID sets the "current_step_id" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableCurrentStepID(v *string) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetCurrentStepID(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AssessmentSessionUpdate) SetCompletedAt(v time.Time) *AssessmentSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableCompletedAt(v *time.Time) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AssessmentSessionUpdate) ClearCompletedAt() *AssessmentSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AssessmentSessionMutation object of the builder.
func (_u *AssessmentSessionUpdate) Mutation() *AssessmentSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssessmentSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assessmentsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentSessionUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := assessmentsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStepID(); ok {
		if err := assessmentsession.CurrentStepIDValidator(v); err != nil {
			return &ValidationError{Name: "current_step_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.current_step_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentsession.Table, assessmentsession.Columns, sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(assessmentsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentsession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(assessmentsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assessmentsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStepID(); ok {
		_spec.SetField(assessmentsession.FieldCurrentStepID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(assessmentsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(assessmentsession.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentSessionUpdateOne is the builder for updating a single AssessmentSession entity.
type AssessmentSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentSessionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssessmentSessionUpdateOne) SetUpdatedAt(v time.Time) *AssessmentSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentSessionUpdateOne) SetSessionID(v string) *AssessmentSessionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableSessionID(v *string) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AssessmentSessionUpdateOne) SetUserID(v string) *AssessmentSessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableUserID(v *string) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AssessmentSessionUpdateOne) SetStatus(v string) *AssessmentSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableStatus(v *string) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStepID sets the "current_step_id" field.
func (_u *AssessmentSessionUpdateOne) SetCurrentStepID(v string) *AssessmentSessionUpdateOne {
	_u.mutation.SetCurrentStepID(v)
	return _u
}

// SetNillableCurrentStepID sets the "current_step_id" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableCurrentStepID(v *string) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetCurrentStepID(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AssessmentSessionUpdateOne) SetCompletedAt(v time.Time) *AssessmentSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AssessmentSessionUpdateOne) ClearCompletedAt() *AssessmentSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AssessmentSessionMutation object of the builder.
func (_u *AssessmentSessionUpdateOne) Mutation() *AssessmentSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentSessionUpdate builder.
func (_u *AssessmentSessionUpdateOne) Where(ps ...predicate.AssessmentSession) *AssessmentSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentSessionUpdateOne) Select(field string, fields ...string) *AssessmentSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentSession entity.
func (_u *AssessmentSessionUpdateOne) Save(ctx context.Context) (*AssessmentSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentSessionUpdateOne) SaveX(ctx context.Context) *AssessmentSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssessmentSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assessmentsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentSessionUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := assessmentsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStepID(); ok {
		if err := assessmentsession.CurrentStepIDValidator(v); err != nil {
			return &ValidationError{Name: "current_step_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.current_step_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentSessionUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentsession.Table, assessmentsession.Columns, sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentsession.FieldID)
		for _, f := range fields {
			if !assessmentsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentsession.FieldID {
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
		_spec.SetField(assessmentsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentsession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(assessmentsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assessmentsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStepID(); ok {
		_spec.SetField(assessmentsession.FieldCurrentStepID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(assessmentsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(assessmentsession.FieldCompletedAt, field.TypeTime)
	}
	_node = &AssessmentSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
