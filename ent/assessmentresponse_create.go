// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/assessmentresponse"
)

// AssessmentResponseCreate is the builder for creating a AssessmentResponse entity.
type AssessmentResponseCreate struct {
	config
	mutation *AssessmentResponseMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssessmentResponseCreate) SetCreatedAt(v time.Time) *AssessmentResponseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssessmentResponseCreate) SetNillableCreatedAt(v *time.Time) *AssessmentResponseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AssessmentResponseCreate) SetUpdatedAt(v time.Time) *AssessmentResponseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AssessmentResponseCreate) SetNillableUpdatedAt(v *time.Time) *AssessmentResponseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AssessmentResponseCreate) SetSessionID(v string) *AssessmentResponseCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *AssessmentResponseCreate) SetStepID(v string) *AssessmentResponseCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *AssessmentResponseCreate) SetAnswer(v string) *AssessmentResponseCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *AssessmentResponseCreate) SetScore(v float64) *AssessmentResponseCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *AssessmentResponseCreate) SetPassed(v bool) *AssessmentResponseCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetSkillDeltas sets the "skill_deltas" field.
func (_c *AssessmentResponseCreate) SetSkillDeltas(v string) *AssessmentResponseCreate {
	_c.mutation.SetSkillDeltas(v)
	return _c
}

// SetNillableSkillDeltas sets the "skill_deltas" field if the given value is not nil.
func (_c *AssessmentResponseCreate) SetNillableSkillDeltas(v *string) *AssessmentResponseCreate {
	if v != nil {
		_c.SetSkillDeltas(*v)
	}
	return _c
}

// Mutation returns the AssessmentResponseMutation object of the builder.
func (_c *AssessmentResponseCreate) Mutation() *AssessmentResponseMutation {
	return _c.mutation
}

// Save creates the AssessmentResponse in the database.
func (_c *AssessmentResponseCreate) Save(ctx context.Context) (*AssessmentResponse, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentResponseCreate) SaveX(ctx context.Context) *AssessmentResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentResponseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentResponseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentResponseCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assessmentresponse.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := assessmentresponse.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.SkillDeltas(); !ok {
		v := assessmentresponse.DefaultSkillDeltas
		_c.mutation.SetSkillDeltas(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentResponseCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AssessmentResponse.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AssessmentResponse.updated_at"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AssessmentResponse.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := assessmentresponse.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResponse.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "AssessmentResponse.step_id"`)}
	}
	if v, ok := _c.mutation.StepID(); ok {
		if err := assessmentresponse.StepIDValidator(v); err != nil {
			return &ValidationError{Name: "step_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResponse.step_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "AssessmentResponse.answer"`)}
	}
	if v, ok := _c.mutation.Answer(); ok {
		if err := assessmentresponse.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "AssessmentResponse.answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "AssessmentResponse.score"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "AssessmentResponse.passed"`)}
	}
	if _, ok := _c.mutation.SkillDeltas(); !ok {
		return &ValidationError{Name: "skill_deltas", err: errors.New(`ent: missing required field "AssessmentResponse.skill_deltas"`)}
	}
	return nil
}

func (_c *AssessmentResponseCreate) sqlSave(ctx context.Context) (*AssessmentResponse, error) {
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

func (_c *AssessmentResponseCreate) createSpec() (*AssessmentResponse, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentResponse{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentresponse.Table, sqlgraph.NewFieldSpec(assessmentresponse.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assessmentresponse.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(assessmentresponse.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(assessmentresponse.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(assessmentresponse.FieldStepID, field.TypeString, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(assessmentresponse.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(assessmentresponse.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(assessmentresponse.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.SkillDeltas(); ok {
		_spec.SetField(assessmentresponse.FieldSkillDeltas, field.TypeString, value)
		_node.SkillDeltas = value
	}
	return _node, _spec
}

// AssessmentResponseCreateBulk is the builder for creating many AssessmentResponse entities in bulk.
type AssessmentResponseCreateBulk struct {
	config
	err      error
	builders []*AssessmentResponseCreate
}

// Save creates the AssessmentResponse entities in the database.
func (_c *AssessmentResponseCreateBulk) Save(ctx context.Context) ([]*AssessmentResponse, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentResponse, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentResponseMutation)
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
func (_c *AssessmentResponseCreateBulk) SaveX(ctx context.Context) []*AssessmentResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentResponseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentResponseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
