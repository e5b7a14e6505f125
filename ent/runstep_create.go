// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/llmcouncil/councild/ent/run"
	"github.com/llmcouncil/councild/ent/runstep"
)

// RunStepCreate is the builder for creating a RunStep entity.
type RunStepCreate struct {
	config
	mutation *RunStepMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *RunStepCreate) SetRunID(v uuid.UUID) *RunStepCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetStageName sets the "stage_name" field.
func (_c *RunStepCreate) SetStageName(v string) *RunStepCreate {
	_c.mutation.SetStageName(v)
	return _c
}

// SetStepType sets the "step_type" field.
func (_c *RunStepCreate) SetStepType(v string) *RunStepCreate {
	_c.mutation.SetStepType(v)
	return _c
}

// SetAgentRole sets the "agent_role" field.
func (_c *RunStepCreate) SetAgentRole(v string) *RunStepCreate {
	_c.mutation.SetAgentRole(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *RunStepCreate) SetModel(v string) *RunStepCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *RunStepCreate) SetNillableModel(v *string) *RunStepCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *RunStepCreate) SetAttempt(v int) *RunStepCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *RunStepCreate) SetNillableAttempt(v *int) *RunStepCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetIsRetry sets the "is_retry" field.
func (_c *RunStepCreate) SetIsRetry(v bool) *RunStepCreate {
	_c.mutation.SetIsRetry(v)
	return _c
}

// SetNillableIsRetry sets the "is_retry" field if the given value is not nil.
func (_c *RunStepCreate) SetNillableIsRetry(v *bool) *RunStepCreate {
	if v != nil {
		_c.SetIsRetry(*v)
	}
	return _c
}

// SetOutputJSON sets the "output_json" field.
func (_c *RunStepCreate) SetOutputJSON(v map[string]interface{}) *RunStepCreate {
	_c.mutation.SetOutputJSON(v)
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *RunStepCreate) SetLatencyMs(v int) *RunStepCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *RunStepCreate) SetNillableLatencyMs(v *int) *RunStepCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetErrorText sets the "error_text" field.
func (_c *RunStepCreate) SetErrorText(v string) *RunStepCreate {
	_c.mutation.SetErrorText(v)
	return _c
}

// SetNillableErrorText sets the "error_text" field if the given value is not nil.
func (_c *RunStepCreate) SetNillableErrorText(v *string) *RunStepCreate {
	if v != nil {
		_c.SetErrorText(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunStepCreate) SetCreatedAt(v time.Time) *RunStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunStepCreate) SetNillableCreatedAt(v *time.Time) *RunStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunStepCreate) SetID(v uuid.UUID) *RunStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RunStepCreate) SetNillableID(v *uuid.UUID) *RunStepCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *RunStepCreate) SetRun(v *Run) *RunStepCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the RunStepMutation object of the builder.
func (_c *RunStepCreate) Mutation() *RunStepMutation {
	return _c.mutation
}

// Save creates the RunStep in the database.
func (_c *RunStepCreate) Save(ctx context.Context) (*RunStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunStepCreate) SaveX(ctx context.Context) *RunStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunStepCreate) defaults() {
	if _, ok := _c.mutation.Model(); !ok {
		v := runstep.DefaultModel
		_c.mutation.SetModel(v)
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		v := runstep.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.IsRetry(); !ok {
		v := runstep.DefaultIsRetry
		_c.mutation.SetIsRetry(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := runstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := runstep.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunStepCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RunStep.run_id"`)}
	}
	if _, ok := _c.mutation.StageName(); !ok {
		return &ValidationError{Name: "stage_name", err: errors.New(`ent: missing required field "RunStep.stage_name"`)}
	}
	if _, ok := _c.mutation.StepType(); !ok {
		return &ValidationError{Name: "step_type", err: errors.New(`ent: missing required field "RunStep.step_type"`)}
	}
	if _, ok := _c.mutation.AgentRole(); !ok {
		return &ValidationError{Name: "agent_role", err: errors.New(`ent: missing required field "RunStep.agent_role"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "RunStep.model"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "RunStep.attempt"`)}
	}
	if _, ok := _c.mutation.IsRetry(); !ok {
		return &ValidationError{Name: "is_retry", err: errors.New(`ent: missing required field "RunStep.is_retry"`)}
	}
	if _, ok := _c.mutation.OutputJSON(); !ok {
		return &ValidationError{Name: "output_json", err: errors.New(`ent: missing required field "RunStep.output_json"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RunStep.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "RunStep.run"`)}
	}
	return nil
}

func (_c *RunStepCreate) sqlSave(ctx context.Context) (*RunStep, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunStepCreate) createSpec() (*RunStep, *sqlgraph.CreateSpec) {
	var (
		_node = &RunStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runstep.Table, sqlgraph.NewFieldSpec(runstep.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StageName(); ok {
		_spec.SetField(runstep.FieldStageName, field.TypeString, value)
		_node.StageName = value
	}
	if value, ok := _c.mutation.StepType(); ok {
		_spec.SetField(runstep.FieldStepType, field.TypeString, value)
		_node.StepType = value
	}
	if value, ok := _c.mutation.AgentRole(); ok {
		_spec.SetField(runstep.FieldAgentRole, field.TypeString, value)
		_node.AgentRole = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(runstep.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(runstep.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.IsRetry(); ok {
		_spec.SetField(runstep.FieldIsRetry, field.TypeBool, value)
		_node.IsRetry = value
	}
	if value, ok := _c.mutation.OutputJSON(); ok {
		_spec.SetField(runstep.FieldOutputJSON, field.TypeJSON, value)
		_node.OutputJSON = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(runstep.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = &value
	}
	if value, ok := _c.mutation.ErrorText(); ok {
		_spec.SetField(runstep.FieldErrorText, field.TypeString, value)
		_node.ErrorText = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(runstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   runstep.RunTable,
			Columns: []string{runstep.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RunStepCreateBulk is the builder for creating many RunStep entities in bulk.
type RunStepCreateBulk struct {
	config
	err      error
	builders []*RunStepCreate
}

// Save creates the RunStep entities in the database.
func (_c *RunStepCreateBulk) Save(ctx context.Context) ([]*RunStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunStepMutation)
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
func (_c *RunStepCreateBulk) SaveX(ctx context.Context) []*RunStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
