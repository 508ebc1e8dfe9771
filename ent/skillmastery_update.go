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
	"github.com/Trevorton27/tokuWebDev-sub003/ent/predicate"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/skillmastery"
)

// SkillMasteryUpdate is the builder for updating SkillMastery entities.
type SkillMasteryUpdate struct {
	config
	hooks    []Hook
	mutation *SkillMasteryMutation
}

// Where appends a list predicates to the SkillMasteryUpdate builder.
func (_u *SkillMasteryUpdate) Where(ps ...predicate.SkillMastery) *SkillMasteryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SkillMasteryUpdate) SetUpdatedAt(v time.Time) *SkillMasteryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SkillMasteryUpdate) SetUserID(v string) *SkillMasteryUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SkillMasteryUpdate) SetNillableUserID(v *string) *SkillMasteryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkillKey sets the "skill_key" field.
func (_u *SkillMasteryUpdate) SetSkillKey(v string) *SkillMasteryUpdate {
	_u.mutation.SetSkillKey(v)
	return _u
}

// SetNillableSkillKey sets the "skill_key" field if the given value is not nil.
func (_u *SkillMasteryUpdate) SetNillableSkillKey(v *string) *SkillMasteryUpdate {
	if v != nil {
		_u.SetSkillKey(*v)
	}
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *SkillMasteryUpdate) SetMastery(v float64) *SkillMasteryUpdate {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *SkillMasteryUpdate) SetNillableMastery(v *float64) *SkillMasteryUpdate {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *SkillMasteryUpdate) AddMastery(v float64) *SkillMasteryUpdate {
	_u.mutation.AddMastery(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SkillMasteryUpdate) SetConfidence(v float64) *SkillMasteryUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SkillMasteryUpdate) SetNillableConfidence(v *float64) *SkillMasteryUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SkillMasteryUpdate) AddConfidence(v float64) *SkillMasteryUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SkillMasteryUpdate) SetAttempts(v int) *SkillMasteryUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *SkillMasteryUpdate) SetNillableAttempts(v *int) *SkillMasteryUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *SkillMasteryUpdate) AddAttempts(v int) *SkillMasteryUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// Mutation returns the SkillMasteryMutation object of the builder.
func (_u *SkillMasteryUpdate) Mutation() *SkillMasteryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillMasteryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillMasteryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillMasteryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillMasteryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillMasteryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := skillmastery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillMasteryUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := skillmastery.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SkillMastery.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillKey(); ok {
		if err := skillmastery.SkillKeyValidator(v); err != nil {
			return &ValidationError{Name: "skill_key", err: fmt.Errorf(`ent: validator failed for field "SkillMastery.skill_key": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillMasteryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skillmastery.Table, skillmastery.Columns, sqlgraph.NewFieldSpec(skillmastery.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(skillmastery.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(skillmastery.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillKey(); ok {
		_spec.SetField(skillmastery.FieldSkillKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(skillmastery.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(skillmastery.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(skillmastery.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(skillmastery.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(skillmastery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(skillmastery.FieldAttempts, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillMasteryUpdateOne is the builder for updating a single SkillMastery entity.
type SkillMasteryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillMasteryMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SkillMasteryUpdateOne) SetUpdatedAt(v time.Time) *SkillMasteryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SkillMasteryUpdateOne) SetUserID(v string) *SkillMasteryUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SkillMasteryUpdateOne) SetNillableUserID(v *string) *SkillMasteryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkillKey sets the "skill_key" field.
func (_u *SkillMasteryUpdateOne) SetSkillKey(v string) *SkillMasteryUpdateOne {
	_u.mutation.SetSkillKey(v)
	return _u
}

// SetNillableSkillKey sets the "skill_key" field if the given value is not nil.
func (_u *SkillMasteryUpdateOne) SetNillableSkillKey(v *string) *SkillMasteryUpdateOne {
	if v != nil {
		_u.SetSkillKey(*v)
	}
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *SkillMasteryUpdateOne) SetMastery(v float64) *SkillMasteryUpdateOne {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *SkillMasteryUpdateOne) SetNillableMastery(v *float64) *SkillMasteryUpdateOne {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *SkillMasteryUpdateOne) AddMastery(v float64) *SkillMasteryUpdateOne {
	_u.mutation.AddMastery(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SkillMasteryUpdateOne) SetConfidence(v float64) *SkillMasteryUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SkillMasteryUpdateOne) SetNillableConfidence(v *float64) *SkillMasteryUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SkillMasteryUpdateOne) AddConfidence(v float64) *SkillMasteryUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SkillMasteryUpdateOne) SetAttempts(v int) *SkillMasteryUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *SkillMasteryUpdateOne) SetNillableAttempts(v *int) *SkillMasteryUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *SkillMasteryUpdateOne) AddAttempts(v int) *SkillMasteryUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// Mutation returns the SkillMasteryMutation object of the builder.
func (_u *SkillMasteryUpdateOne) Mutation() *SkillMasteryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillMasteryUpdate builder.
func (_u *SkillMasteryUpdateOne) Where(ps ...predicate.SkillMastery) *SkillMasteryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillMasteryUpdateOne) Select(field string, fields ...string) *SkillMasteryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SkillMastery entity.
func (_u *SkillMasteryUpdateOne) Save(ctx context.Context) (*SkillMastery, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillMasteryUpdateOne) SaveX(ctx context.Context) *SkillMastery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillMasteryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillMasteryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillMasteryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := skillmastery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillMasteryUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := skillmastery.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SkillMastery.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillKey(); ok {
		if err := skillmastery.SkillKeyValidator(v); err != nil {
			return &ValidationError{Name: "skill_key", err: fmt.Errorf(`ent: validator failed for field "SkillMastery.skill_key": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillMasteryUpdateOne) sqlSave(ctx context.Context) (_node *SkillMastery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skillmastery.Table, skillmastery.Columns, sqlgraph.NewFieldSpec(skillmastery.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SkillMastery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skillmastery.FieldID)
		for _, f := range fields {
			if !skillmastery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skillmastery.FieldID {
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
		_spec.SetField(skillmastery.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(skillmastery.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillKey(); ok {
		_spec.SetField(skillmastery.FieldSkillKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(skillmastery.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(skillmastery.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(skillmastery.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(skillmastery.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(skillmastery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(skillmastery.FieldAttempts, field.TypeInt, value)
	}
	_node = &SkillMastery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
