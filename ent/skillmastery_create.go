// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/skillmastery"
)

// SkillMasteryCreate is the builder for creating a SkillMastery entity.
type SkillMasteryCreate struct {
	config
	mutation *SkillMasteryMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SkillMasteryCreate) SetCreatedAt(v time.Time) *SkillMasteryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SkillMasteryCreate) SetNillableCreatedAt(v *time.Time) *SkillMasteryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SkillMasteryCreate) SetUpdatedAt(v time.Time) *SkillMasteryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SkillMasteryCreate) SetNillableUpdatedAt(v *time.Time) *SkillMasteryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SkillMasteryCreate) SetUserID(v string) *SkillMasteryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillKey sets the "skill_key" field.
func (_c *SkillMasteryCreate) SetSkillKey(v string) *SkillMasteryCreate {
	_c.mutation.SetSkillKey(v)
	return _c
}

// SetMastery sets the "mastery" field.
func (_c *SkillMasteryCreate) SetMastery(v float64) *SkillMasteryCreate {
	_c.mutation.SetMastery(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *SkillMasteryCreate) SetConfidence(v float64) *SkillMasteryCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *SkillMasteryCreate) SetAttempts(v int) *SkillMasteryCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *SkillMasteryCreate) SetNillableAttempts(v *int) *SkillMasteryCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// Mutation returns the SkillMasteryMutation object of the builder.
func (_c *SkillMasteryCreate) Mutation() *SkillMasteryMutation {
	return _c.mutation
}

// Save creates the SkillMastery in the database.
func (_c *SkillMasteryCreate) Save(ctx context.Context) (*SkillMastery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillMasteryCreate) SaveX(ctx context.Context) *SkillMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillMasteryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillMasteryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillMasteryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := skillmastery.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := skillmastery.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := skillmastery.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillMasteryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SkillMastery.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SkillMastery.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SkillMastery.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := skillmastery.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SkillMastery.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillKey(); !ok {
		return &ValidationError{Name: "skill_key", err: errors.New(`ent: missing required field "SkillMastery.skill_key"`)}
	}
	if v, ok := _c.mutation.SkillKey(); ok {
		if err := skillmastery.SkillKeyValidator(v); err != nil {
			return &ValidationError{Name: "skill_key", err: fmt.Errorf(`ent: validator failed for field "SkillMastery.skill_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		return &ValidationError{Name: "mastery", err: errors.New(`ent: missing required field "SkillMastery.mastery"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "SkillMastery.confidence"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "SkillMastery.attempts"`)}
	}
	return nil
}

func (_c *SkillMasteryCreate) sqlSave(ctx context.Context) (*SkillMastery, error) {
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

func (_c *SkillMasteryCreate) createSpec() (*SkillMastery, *sqlgraph.CreateSpec) {
	var (
		_node = &SkillMastery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skillmastery.Table, sqlgraph.NewFieldSpec(skillmastery.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(skillmastery.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(skillmastery.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(skillmastery.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillKey(); ok {
		_spec.SetField(skillmastery.FieldSkillKey, field.TypeString, value)
		_node.SkillKey = value
	}
	if value, ok := _c.mutation.Mastery(); ok {
		_spec.SetField(skillmastery.FieldMastery, field.TypeFloat64, value)
		_node.Mastery = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(skillmastery.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(skillmastery.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	return _node, _spec
}

// SkillMasteryCreateBulk is the builder for creating many SkillMastery entities in bulk.
type SkillMasteryCreateBulk struct {
	config
	err      error
	builders []*SkillMasteryCreate
}

// Save creates the SkillMastery entities in the database.
func (_c *SkillMasteryCreateBulk) Save(ctx context.Context) ([]*SkillMastery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SkillMastery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillMasteryMutation)
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
func (_c *SkillMasteryCreateBulk) SaveX(ctx context.Context) []*SkillMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillMasteryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillMasteryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
