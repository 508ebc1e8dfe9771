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
	"github.com/Trevorton27/tokuWebDev-sub003/ent/roadmapitem"
)

// RoadmapItemUpdate is the builder for updating RoadmapItem entities.
type RoadmapItemUpdate struct {
	config
	hooks    []Hook
	mutation *RoadmapItemMutation
}

// Where appends a list predicates to the RoadmapItemUpdate builder.
func (_u *RoadmapItemUpdate) Where(ps ...predicate.RoadmapItem) *RoadmapItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RoadmapItemUpdate) SetUpdatedAt(v time.Time) *RoadmapItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RoadmapItemUpdate) SetUserID(v string) *RoadmapItemUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RoadmapItemUpdate) SetNillableUserID(v *string) *RoadmapItemUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetResourceID sets the "resource_id" field.
func (_u *RoadmapItemUpdate) SetResourceID(v string) *RoadmapItemUpdate {
	_u.mutation.SetResourceID(v)
	return _u
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_u *RoadmapItemUpdate) SetNillableResourceID(v *string) *RoadmapItemUpdate {
	if v != nil {
		_u.SetResourceID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *RoadmapItemUpdate) SetPhase(v int) *RoadmapItemUpdate {
	_u.mutation.ResetPhase()
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *RoadmapItemUpdate) SetNillablePhase(v *int) *RoadmapItemUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// AddPhase adds value to the "phase" field.
func (_u *RoadmapItemUpdate) AddPhase(v int) *RoadmapItemUpdate {
	_u.mutation.AddPhase(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *RoadmapItemUpdate) SetPosition(v int) *RoadmapItemUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *RoadmapItemUpdate) SetNillablePosition(v *int) *RoadmapItemUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *RoadmapItemUpdate) AddPosition(v int) *RoadmapItemUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RoadmapItemUpdate) SetStatus(v string) *RoadmapItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RoadmapItemUpdate) SetNillableStatus(v *string) *RoadmapItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the RoadmapItemMutation object of the builder.
func (_u *RoadmapItemUpdate) Mutation() *RoadmapItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoadmapItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoadmapItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoadmapItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoadmapItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RoadmapItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := roadmapitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoadmapItemUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := roadmapitem.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "RoadmapItem.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResourceID(); ok {
		if err := roadmapitem.ResourceIDValidator(v); err != nil {
			return &ValidationError{Name: "resource_id", err: fmt.Errorf(`ent: validator failed for field "RoadmapItem.resource_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RoadmapItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roadmapitem.Table, roadmapitem.Columns, sqlgraph.NewFieldSpec(roadmapitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(roadmapitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(roadmapitem.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResourceID(); ok {
		_spec.SetField(roadmapitem.FieldResourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(roadmapitem.FieldPhase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhase(); ok {
		_spec.AddField(roadmapitem.FieldPhase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(roadmapitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(roadmapitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(roadmapitem.FieldStatus, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roadmapitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoadmapItemUpdateOne is the builder for updating a single RoadmapItem entity.
type RoadmapItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoadmapItemMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RoadmapItemUpdateOne) SetUpdatedAt(v time.Time) *RoadmapItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RoadmapItemUpdateOne) SetUserID(v string) *RoadmapItemUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RoadmapItemUpdateOne) SetNillableUserID(v *string) *RoadmapItemUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetResourceID sets the "resource_id" field.
func (_u *RoadmapItemUpdateOne) SetResourceID(v string) *RoadmapItemUpdateOne {
	_u.mutation.SetResourceID(v)
	return _u
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_u *RoadmapItemUpdateOne) SetNillableResourceID(v *string) *RoadmapItemUpdateOne {
	if v != nil {
		_u.SetResourceID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *RoadmapItemUpdateOne) SetPhase(v int) *RoadmapItemUpdateOne {
	_u.mutation.ResetPhase()
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *RoadmapItemUpdateOne) SetNillablePhase(v *int) *RoadmapItemUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// AddPhase adds value to the "phase" field.
func (_u *RoadmapItemUpdateOne) AddPhase(v int) *RoadmapItemUpdateOne {
	_u.mutation.AddPhase(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *RoadmapItemUpdateOne) SetPosition(v int) *RoadmapItemUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *RoadmapItemUpdateOne) SetNillablePosition(v *int) *RoadmapItemUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *RoadmapItemUpdateOne) AddPosition(v int) *RoadmapItemUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RoadmapItemUpdateOne) SetStatus(v string) *RoadmapItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RoadmapItemUpdateOne) SetNillableStatus(v *string) *RoadmapItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the RoadmapItemMutation object of the builder.
func (_u *RoadmapItemUpdateOne) Mutation() *RoadmapItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoadmapItemUpdate builder.
func (_u *RoadmapItemUpdateOne) Where(ps ...predicate.RoadmapItem) *RoadmapItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoadmapItemUpdateOne) Select(field string, fields ...string) *RoadmapItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoadmapItem entity.
func (_u *RoadmapItemUpdateOne) Save(ctx context.Context) (*RoadmapItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoadmapItemUpdateOne) SaveX(ctx context.Context) *RoadmapItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoadmapItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoadmapItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RoadmapItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := roadmapitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoadmapItemUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := roadmapitem.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "RoadmapItem.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResourceID(); ok {
		if err := roadmapitem.ResourceIDValidator(v); err != nil {
			return &ValidationError{Name: "resource_id", err: fmt.Errorf(`ent: validator failed for field "RoadmapItem.resource_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RoadmapItemUpdateOne) sqlSave(ctx context.Context) (_node *RoadmapItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roadmapitem.Table, roadmapitem.Columns, sqlgraph.NewFieldSpec(roadmapitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoadmapItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, roadmapitem.FieldID)
		for _, f := range fields {
			if !roadmapitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != roadmapitem.FieldID {
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
		_spec.SetField(roadmapitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(roadmapitem.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResourceID(); ok {
		_spec.SetField(roadmapitem.FieldResourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(roadmapitem.FieldPhase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhase(); ok {
		_spec.AddField(roadmapitem.FieldPhase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(roadmapitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(roadmapitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(roadmapitem.FieldStatus, field.TypeString, value)
	}
	_node = &RoadmapItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roadmapitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
