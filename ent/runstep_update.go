// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/llmcouncil/councild/ent/predicate"
	"github.com/llmcouncil/councild/ent/runstep"
)

// RunStepUpdate is the builder for updating RunStep entities.
type RunStepUpdate struct {
	config
	hooks    []Hook
	mutation *RunStepMutation
}

// Where appends a list predicates to the RunStepUpdate builder.
func (_u *RunStepUpdate) Where(ps ...predicate.RunStep) *RunStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStageName sets the "stage_name" field.
func (_u *RunStepUpdate) SetStageName(v string) *RunStepUpdate {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableStageName(v *string) *RunStepUpdate {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetStepType sets the "step_type" field.
func (_u *RunStepUpdate) SetStepType(v string) *RunStepUpdate {
	_u.mutation.SetStepType(v)
	return _u
}

// SetNillableStepType sets the "step_type" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableStepType(v *string) *RunStepUpdate {
	if v != nil {
		_u.SetStepType(*v)
	}
	return _u
}

// SetAgentRole sets the "agent_role" field.
func (_u *RunStepUpdate) SetAgentRole(v string) *RunStepUpdate {
	_u.mutation.SetAgentRole(v)
	return _u
}

// SetNillableAgentRole sets the "agent_role" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableAgentRole(v *string) *RunStepUpdate {
	if v != nil {
		_u.SetAgentRole(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *RunStepUpdate) SetModel(v string) *RunStepUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableModel(v *string) *RunStepUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *RunStepUpdate) SetAttempt(v int) *RunStepUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableAttempt(v *int) *RunStepUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *RunStepUpdate) AddAttempt(v int) *RunStepUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetIsRetry sets the "is_retry" field.
func (_u *RunStepUpdate) SetIsRetry(v bool) *RunStepUpdate {
	_u.mutation.SetIsRetry(v)
	return _u
}

// SetNillableIsRetry sets the "is_retry" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableIsRetry(v *bool) *RunStepUpdate {
	if v != nil {
		_u.SetIsRetry(*v)
	}
	return _u
}

// SetOutputJSON sets the "output_json" field.
func (_u *RunStepUpdate) SetOutputJSON(v map[string]interface{}) *RunStepUpdate {
	_u.mutation.SetOutputJSON(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *RunStepUpdate) SetLatencyMs(v int) *RunStepUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableLatencyMs(v *int) *RunStepUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *RunStepUpdate) AddLatencyMs(v int) *RunStepUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (_u *RunStepUpdate) ClearLatencyMs() *RunStepUpdate {
	_u.mutation.ClearLatencyMs()
	return _u
}

// SetErrorText sets the "error_text" field.
func (_u *RunStepUpdate) SetErrorText(v string) *RunStepUpdate {
	_u.mutation.SetErrorText(v)
	return _u
}

// SetNillableErrorText sets the "error_text" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableErrorText(v *string) *RunStepUpdate {
	if v != nil {
		_u.SetErrorText(*v)
	}
	return _u
}

// ClearErrorText clears the value of the "error_text" field.
func (_u *RunStepUpdate) ClearErrorText() *RunStepUpdate {
	_u.mutation.ClearErrorText()
	return _u
}

// Mutation returns the RunStepMutation object of the builder.
func (_u *RunStepUpdate) Mutation() *RunStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunStepUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunStep.run"`)
	}
	return nil
}

func (_u *RunStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runstep.Table, runstep.Columns, sqlgraph.NewFieldSpec(runstep.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(runstep.FieldStageName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepType(); ok {
		_spec.SetField(runstep.FieldStepType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentRole(); ok {
		_spec.SetField(runstep.FieldAgentRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(runstep.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(runstep.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(runstep.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsRetry(); ok {
		_spec.SetField(runstep.FieldIsRetry, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OutputJSON(); ok {
		_spec.SetField(runstep.FieldOutputJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(runstep.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(runstep.FieldLatencyMs, field.TypeInt, value)
	}
	if _u.mutation.LatencyMsCleared() {
		_spec.ClearField(runstep.FieldLatencyMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorText(); ok {
		_spec.SetField(runstep.FieldErrorText, field.TypeString, value)
	}
	if _u.mutation.ErrorTextCleared() {
		_spec.ClearField(runstep.FieldErrorText, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunStepUpdateOne is the builder for updating a single RunStep entity.
type RunStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunStepMutation
}

// SetStageName sets the "stage_name" field.
func (_u *RunStepUpdateOne) SetStageName(v string) *RunStepUpdateOne {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableStageName(v *string) *RunStepUpdateOne {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetStepType sets the "step_type" field.
func (_u *RunStepUpdateOne) SetStepType(v string) *RunStepUpdateOne {
	_u.mutation.SetStepType(v)
	return _u
}

// SetNillableStepType sets the "step_type" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableStepType(v *string) *RunStepUpdateOne {
	if v != nil {
		_u.SetStepType(*v)
	}
	return _u
}

// SetAgentRole sets the "agent_role" field.
func (_u *RunStepUpdateOne) SetAgentRole(v string) *RunStepUpdateOne {
	_u.mutation.SetAgentRole(v)
	return _u
}

// SetNillableAgentRole sets the "agent_role" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableAgentRole(v *string) *RunStepUpdateOne {
	if v != nil {
		_u.SetAgentRole(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *RunStepUpdateOne) SetModel(v string) *RunStepUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableModel(v *string) *RunStepUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *RunStepUpdateOne) SetAttempt(v int) *RunStepUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableAttempt(v *int) *RunStepUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *RunStepUpdateOne) AddAttempt(v int) *RunStepUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetIsRetry sets the "is_retry" field.
func (_u *RunStepUpdateOne) SetIsRetry(v bool) *RunStepUpdateOne {
	_u.mutation.SetIsRetry(v)
	return _u
}

// SetNillableIsRetry sets the "is_retry" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableIsRetry(v *bool) *RunStepUpdateOne {
	if v != nil {
		_u.SetIsRetry(*v)
	}
	return _u
}

// SetOutputJSON sets the "output_json" field.
func (_u *RunStepUpdateOne) SetOutputJSON(v map[string]interface{}) *RunStepUpdateOne {
	_u.mutation.SetOutputJSON(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *RunStepUpdateOne) SetLatencyMs(v int) *RunStepUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableLatencyMs(v *int) *RunStepUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *RunStepUpdateOne) AddLatencyMs(v int) *RunStepUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (_u *RunStepUpdateOne) ClearLatencyMs() *RunStepUpdateOne {
	_u.mutation.ClearLatencyMs()
	return _u
}

// SetErrorText sets the "error_text" field.
func (_u *RunStepUpdateOne) SetErrorText(v string) *RunStepUpdateOne {
	_u.mutation.SetErrorText(v)
	return _u
}

// SetNillableErrorText sets the "error_text" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableErrorText(v *string) *RunStepUpdateOne {
	if v != nil {
		_u.SetErrorText(*v)
	}
	return _u
}

// ClearErrorText clears the value of the "error_text" field.
func (_u *RunStepUpdateOne) ClearErrorText() *RunStepUpdateOne {
	_u.mutation.ClearErrorText()
	return _u
}

// Mutation returns the RunStepMutation object of the builder.
func (_u *RunStepUpdateOne) Mutation() *RunStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunStepUpdate builder.
func (_u *RunStepUpdateOne) Where(ps ...predicate.RunStep) *RunStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunStepUpdateOne) Select(field string, fields ...string) *RunStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunStep entity.
func (_u *RunStepUpdateOne) Save(ctx context.Context) (*RunStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunStepUpdateOne) SaveX(ctx context.Context) *RunStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunStepUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunStep.run"`)
	}
	return nil
}

func (_u *RunStepUpdateOne) sqlSave(ctx context.Context) (_node *RunStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runstep.Table, runstep.Columns, sqlgraph.NewFieldSpec(runstep.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runstep.FieldID)
		for _, f := range fields {
			if !runstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runstep.FieldID {
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
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(runstep.FieldStageName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepType(); ok {
		_spec.SetField(runstep.FieldStepType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentRole(); ok {
		_spec.SetField(runstep.FieldAgentRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(runstep.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(runstep.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(runstep.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsRetry(); ok {
		_spec.SetField(runstep.FieldIsRetry, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OutputJSON(); ok {
		_spec.SetField(runstep.FieldOutputJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(runstep.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(runstep.FieldLatencyMs, field.TypeInt, value)
	}
	if _u.mutation.LatencyMsCleared() {
		_spec.ClearField(runstep.FieldLatencyMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorText(); ok {
		_spec.SetField(runstep.FieldErrorText, field.TypeString, value)
	}
	if _u.mutation.ErrorTextCleared() {
		_spec.ClearField(runstep.FieldErrorText, field.TypeString)
	}
	_node = &RunStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
