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
	"github.com/llmcouncil/councild/ent/usageevent"
)

// UsageEventCreate is the builder for creating a UsageEvent entity.
type UsageEventCreate struct {
	config
	mutation *UsageEventMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *UsageEventCreate) SetRunID(v uuid.UUID) *UsageEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetOwnerKeyID sets the "owner_key_id" field.
func (_c *UsageEventCreate) SetOwnerKeyID(v uuid.UUID) *UsageEventCreate {
	_c.mutation.SetOwnerKeyID(v)
	return _c
}

// SetNillableOwnerKeyID sets the "owner_key_id" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableOwnerKeyID(v *uuid.UUID) *UsageEventCreate {
	if v != nil {
		_c.SetOwnerKeyID(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *UsageEventCreate) SetModel(v string) *UsageEventCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetCallID sets the "call_id" field.
func (_c *UsageEventCreate) SetCallID(v uuid.UUID) *UsageEventCreate {
	_c.mutation.SetCallID(v)
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *UsageEventCreate) SetAttempt(v int) *UsageEventCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableAttempt(v *int) *UsageEventCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *UsageEventCreate) SetPromptTokens(v int) *UsageEventCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillablePromptTokens(v *int) *UsageEventCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *UsageEventCreate) SetCompletionTokens(v int) *UsageEventCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableCompletionTokens(v *int) *UsageEventCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *UsageEventCreate) SetTotalTokens(v int) *UsageEventCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableTotalTokens(v *int) *UsageEventCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetCostEstimated sets the "cost_estimated" field.
func (_c *UsageEventCreate) SetCostEstimated(v float64) *UsageEventCreate {
	_c.mutation.SetCostEstimated(v)
	return _c
}

// SetNillableCostEstimated sets the "cost_estimated" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableCostEstimated(v *float64) *UsageEventCreate {
	if v != nil {
		_c.SetCostEstimated(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *UsageEventCreate) SetLatencyMs(v int) *UsageEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableLatencyMs(v *int) *UsageEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetRawUsageJSON sets the "raw_usage_json" field.
func (_c *UsageEventCreate) SetRawUsageJSON(v map[string]interface{}) *UsageEventCreate {
	_c.mutation.SetRawUsageJSON(v)
	return _c
}

// SetUsageMissing sets the "usage_missing" field.
func (_c *UsageEventCreate) SetUsageMissing(v bool) *UsageEventCreate {
	_c.mutation.SetUsageMissing(v)
	return _c
}

// SetNillableUsageMissing sets the "usage_missing" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableUsageMissing(v *bool) *UsageEventCreate {
	if v != nil {
		_c.SetUsageMissing(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UsageEventCreate) SetCreatedAt(v time.Time) *UsageEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableCreatedAt(v *time.Time) *UsageEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UsageEventCreate) SetID(v uuid.UUID) *UsageEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableID(v *uuid.UUID) *UsageEventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *UsageEventCreate) SetRun(v *Run) *UsageEventCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the UsageEventMutation object of the builder.
func (_c *UsageEventCreate) Mutation() *UsageEventMutation {
	return _c.mutation
}

// Save creates the UsageEvent in the database.
func (_c *UsageEventCreate) Save(ctx context.Context) (*UsageEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsageEventCreate) SaveX(ctx context.Context) *UsageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsageEventCreate) defaults() {
	if _, ok := _c.mutation.Attempt(); !ok {
		v := usageevent.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.UsageMissing(); !ok {
		v := usageevent.DefaultUsageMissing
		_c.mutation.SetUsageMissing(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := usageevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := usageevent.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsageEventCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "UsageEvent.run_id"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "UsageEvent.model"`)}
	}
	if _, ok := _c.mutation.CallID(); !ok {
		return &ValidationError{Name: "call_id", err: errors.New(`ent: missing required field "UsageEvent.call_id"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "UsageEvent.attempt"`)}
	}
	if _, ok := _c.mutation.UsageMissing(); !ok {
		return &ValidationError{Name: "usage_missing", err: errors.New(`ent: missing required field "UsageEvent.usage_missing"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UsageEvent.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "UsageEvent.run"`)}
	}
	return nil
}

func (_c *UsageEventCreate) sqlSave(ctx context.Context) (*UsageEvent, error) {
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

func (_c *UsageEventCreate) createSpec() (*UsageEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usageevent.Table, sqlgraph.NewFieldSpec(usageevent.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerKeyID(); ok {
		_spec.SetField(usageevent.FieldOwnerKeyID, field.TypeUUID, value)
		_node.OwnerKeyID = &value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(usageevent.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.CallID(); ok {
		_spec.SetField(usageevent.FieldCallID, field.TypeUUID, value)
		_node.CallID = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(usageevent.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(usageevent.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = &value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(usageevent.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = &value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(usageevent.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = &value
	}
	if value, ok := _c.mutation.CostEstimated(); ok {
		_spec.SetField(usageevent.FieldCostEstimated, field.TypeFloat64, value)
		_node.CostEstimated = &value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(usageevent.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = &value
	}
	if value, ok := _c.mutation.RawUsageJSON(); ok {
		_spec.SetField(usageevent.FieldRawUsageJSON, field.TypeJSON, value)
		_node.RawUsageJSON = value
	}
	if value, ok := _c.mutation.UsageMissing(); ok {
		_spec.SetField(usageevent.FieldUsageMissing, field.TypeBool, value)
		_node.UsageMissing = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(usageevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usageevent.RunTable,
			Columns: []string{usageevent.RunColumn},
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

// UsageEventCreateBulk is the builder for creating many UsageEvent entities in bulk.
type UsageEventCreateBulk struct {
	config
	err      error
	builders []*UsageEventCreate
}

// Save creates the UsageEvent entities in the database.
func (_c *UsageEventCreateBulk) Save(ctx context.Context) ([]*UsageEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UsageEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageEventMutation)
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
func (_c *UsageEventCreateBulk) SaveX(ctx context.Context) []*UsageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
