// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/roadmapitem"
)

// RoadmapItemCreate is the builder for creating a RoadmapItem entity.
type RoadmapItemCreate struct {
	config
	mutation *RoadmapItemMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *RoadmapItemCreate) SetCreatedAt(v time.Time) *RoadmapItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RoadmapItemCreate) SetNillableCreatedAt(v *time.Time) *RoadmapItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RoadmapItemCreate) SetUpdatedAt(v time.Time) *RoadmapItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RoadmapItemCreate) SetNillableUpdatedAt(v *time.Time) *RoadmapItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *RoadmapItemCreate) SetUserID(v string) *RoadmapItemCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetResourceID sets the "resource_id" field.
func (_c *RoadmapItemCreate) SetResourceID(v string) *RoadmapItemCreate {
	_c.mutation.SetResourceID(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *RoadmapItemCreate) SetPhase(v int) *RoadmapItemCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *RoadmapItemCreate) SetPosition(v int) *RoadmapItemCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RoadmapItemCreate) SetStatus(v string) *RoadmapItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RoadmapItemCreate) SetNillableStatus(v *string) *RoadmapItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// Mutation returns the RoadmapItemMutation object of the builder.
func (_c *RoadmapItemCreate) Mutation() *RoadmapItemMutation {
	return _c.mutation
}

// Save creates the RoadmapItem in the database.
func (_c *RoadmapItemCreate) Save(ctx context.Context) (*RoadmapItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoadmapItemCreate) SaveX(ctx context.Context) *RoadmapItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoadmapItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoadmapItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoadmapItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := roadmapitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := roadmapitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := roadmapitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoadmapItemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RoadmapItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RoadmapItem.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "RoadmapItem.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := roadmapitem.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "RoadmapItem.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResourceID(); !ok {
		return &ValidationError{Name: "resource_id", err: errors.New(`ent: missing required field "RoadmapItem.resource_id"`)}
	}
	if v, ok := _c.mutation.ResourceID(); ok {
		if err := roadmapitem.ResourceIDValidator(v); err != nil {
			return &ValidationError{Name: "resource_id", err: fmt.Errorf(`ent: validator failed for field "RoadmapItem.resource_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "RoadmapItem.phase"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "RoadmapItem.position"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RoadmapItem.status"`)}
	}
	return nil
}

func (_c *RoadmapItemCreate) sqlSave(ctx context.Context) (*RoadmapItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoadmapItemCreate) createSpec() (*RoadmapItem, *sqlgraph.CreateSpec) {
	var (
		_node = &RoadmapItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(roadmapitem.Table, sqlgraph.NewFieldSpec(roadmapitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(roadmapitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(roadmapitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(roadmapitem.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ResourceID(); ok {
		_spec.SetField(roadmapitem.FieldResourceID, field.TypeString, value)
		_node.ResourceID = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(roadmapitem.FieldPhase, field.TypeInt, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(roadmapitem.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(roadmapitem.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	return _node, _spec
}

// RoadmapItemCreateBulk is the builder for creating many RoadmapItem entities in bulk.
type RoadmapItemCreateBulk struct {
	config
	err      error
	builders []*RoadmapItemCreate
}

// Save creates the RoadmapItem entities in the database.
func (_c *RoadmapItemCreateBulk) Save(ctx context.Context) ([]*RoadmapItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoadmapItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoadmapItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RoadmapItemCreateBulk) SaveX(ctx context.Context) []*RoadmapItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoadmapItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoadmapItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
