// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/llmcouncil/councild/ent/predicate"
	"github.com/llmcouncil/councild/ent/usageevent"
)

// UsageEventUpdate is the builder for updating UsageEvent entities.
type UsageEventUpdate struct {
	config
	hooks    []Hook
	mutation *UsageEventMutation
}

// Where appends a list predicates to the UsageEventUpdate builder.
func (_u *UsageEventUpdate) Where(ps ...predicate.UsageEvent) *UsageEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerKeyID sets the "owner_key_id" field.
func (_u *UsageEventUpdate) SetOwnerKeyID(v uuid.UUID) *UsageEventUpdate {
	_u.mutation.SetOwnerKeyID(v)
	return _u
}

// SetNillableOwnerKeyID sets the "owner_key_id" field if the given value is not nil.
func (_u *UsageEventUpdate) SetNillableOwnerKeyID(v *uuid.UUID) *UsageEventUpdate {
	if v != nil {
		_u.SetOwnerKeyID(*v)
	}
	return _u
}

// ClearOwnerKeyID clears the value of the "owner_key_id" field.
func (_u *UsageEventUpdate) ClearOwnerKeyID() *UsageEventUpdate {
	_u.mutation.ClearOwnerKeyID()
	return _u
}

// SetModel sets the "model" field.
func (_u *UsageEventUpdate) SetModel(v string) *UsageEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *UsageEventUpdate) SetNillableModel(v *string) *UsageEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *UsageEventUpdate) SetAttempt(v int) *UsageEventUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *UsageEventUpdate) SetNillableAttempt(v *int) *UsageEventUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *UsageEventUpdate) AddAttempt(v int) *UsageEventUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *UsageEventUpdate) SetPromptTokens(v int) *UsageEventUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *UsageEventUpdate) SetNillablePromptTokens(v *int) *UsageEventUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *UsageEventUpdate) AddPromptTokens(v int) *UsageEventUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (_u *UsageEventUpdate) ClearPromptTokens() *UsageEventUpdate {
	_u.mutation.ClearPromptTokens()
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *UsageEventUpdate) SetCompletionTokens(v int) *UsageEventUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *UsageEventUpdate) SetNillableCompletionTokens(v *int) *UsageEventUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *UsageEventUpdate) AddCompletionTokens(v int) *UsageEventUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (_u *UsageEventUpdate) ClearCompletionTokens() *UsageEventUpdate {
	_u.mutation.ClearCompletionTokens()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *UsageEventUpdate) SetTotalTokens(v int) *UsageEventUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *UsageEventUpdate) SetNillableTotalTokens(v *int) *UsageEventUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *UsageEventUpdate) AddTotalTokens(v int) *UsageEventUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (_u *UsageEventUpdate) ClearTotalTokens() *UsageEventUpdate {
	_u.mutation.ClearTotalTokens()
	return _u
}

// SetCostEstimated sets the "cost_estimated" field.
func (_u *UsageEventUpdate) SetCostEstimated(v float64) *UsageEventUpdate {
	_u.mutation.ResetCostEstimated()
	_u.mutation.SetCostEstimated(v)
	return _u
}

// SetNillableCostEstimated sets the "cost_estimated" field if the given value is not nil.
func (_u *UsageEventUpdate) SetNillableCostEstimated(v *float64) *UsageEventUpdate {
	if v != nil {
		_u.SetCostEstimated(*v)
	}
	return _u
}

// AddCostEstimated adds value to the "cost_estimated" field.
func (_u *UsageEventUpdate) AddCostEstimated(v float64) *UsageEventUpdate {
	_u.mutation.AddCostEstimated(v)
	return _u
}

// ClearCostEstimated clears the value of the "cost_estimated" field.
func (_u *UsageEventUpdate) ClearCostEstimated() *UsageEventUpdate {
	_u.mutation.ClearCostEstimated()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *UsageEventUpdate) SetLatencyMs(v int) *UsageEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *UsageEventUpdate) SetNillableLatencyMs(v *int) *UsageEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *UsageEventUpdate) AddLatencyMs(v int) *UsageEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (_u *UsageEventUpdate) ClearLatencyMs() *UsageEventUpdate {
	_u.mutation.ClearLatencyMs()
	return _u
}

// SetRawUsageJSON sets the "raw_usage_json" field.
func (_u *UsageEventUpdate) SetRawUsageJSON(v map[string]interface{}) *UsageEventUpdate {
	_u.mutation.SetRawUsageJSON(v)
	return _u
}

// ClearRawUsageJSON clears the value of the "raw_usage_json" field.
func (_u *UsageEventUpdate) ClearRawUsageJSON() *UsageEventUpdate {
	_u.mutation.ClearRawUsageJSON()
	return _u
}

// SetUsageMissing sets the "usage_missing" field.
func (_u *UsageEventUpdate) SetUsageMissing(v bool) *UsageEventUpdate {
	_u.mutation.SetUsageMissing(v)
	return _u
}

// SetNillableUsageMissing sets the "usage_missing" field if the given value is not nil.
func (_u *UsageEventUpdate) SetNillableUsageMissing(v *bool) *UsageEventUpdate {
	if v != nil {
		_u.SetUsageMissing(*v)
	}
	return _u
}

// Mutation returns the UsageEventMutation object of the builder.
func (_u *UsageEventUpdate) Mutation() *UsageEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsageEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsageEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageEventUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UsageEvent.run"`)
	}
	return nil
}

func (_u *UsageEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usageevent.Table, usageevent.Columns, sqlgraph.NewFieldSpec(usageevent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerKeyID(); ok {
		_spec.SetField(usageevent.FieldOwnerKeyID, field.TypeUUID, value)
	}
	if _u.mutation.OwnerKeyIDCleared() {
		_spec.ClearField(usageevent.FieldOwnerKeyID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(usageevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(usageevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(usageevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(usageevent.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(usageevent.FieldPromptTokens, field.TypeInt, value)
	}
	if _u.mutation.PromptTokensCleared() {
		_spec.ClearField(usageevent.FieldPromptTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(usageevent.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(usageevent.FieldCompletionTokens, field.TypeInt, value)
	}
	if _u.mutation.CompletionTokensCleared() {
		_spec.ClearField(usageevent.FieldCompletionTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(usageevent.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(usageevent.FieldTotalTokens, field.TypeInt, value)
	}
	if _u.mutation.TotalTokensCleared() {
		_spec.ClearField(usageevent.FieldTotalTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CostEstimated(); ok {
		_spec.SetField(usageevent.FieldCostEstimated, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimated(); ok {
		_spec.AddField(usageevent.FieldCostEstimated, field.TypeFloat64, value)
	}
	if _u.mutation.CostEstimatedCleared() {
		_spec.ClearField(usageevent.FieldCostEstimated, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(usageevent.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(usageevent.FieldLatencyMs, field.TypeInt, value)
	}
	if _u.mutation.LatencyMsCleared() {
		_spec.ClearField(usageevent.FieldLatencyMs, field.TypeInt)
	}
	if value, ok := _u.mutation.RawUsageJSON(); ok {
		_spec.SetField(usageevent.FieldRawUsageJSON, field.TypeJSON, value)
	}
	if _u.mutation.RawUsageJSONCleared() {
		_spec.ClearField(usageevent.FieldRawUsageJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.UsageMissing(); ok {
		_spec.SetField(usageevent.FieldUsageMissing, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsageEventUpdateOne is the builder for updating a single UsageEvent entity.
type UsageEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageEventMutation
}

// SetOwnerKeyID sets the "owner_key_id" field.
func (_u *UsageEventUpdateOne) SetOwnerKeyID(v uuid.UUID) *UsageEventUpdateOne {
	_u.mutation.SetOwnerKeyID(v)
	return _u
}

// SetNillableOwnerKeyID sets the "owner_key_id" field if the given value is not nil.
func (_u *UsageEventUpdateOne) SetNillableOwnerKeyID(v *uuid.UUID) *UsageEventUpdateOne {
	if v != nil {
		_u.SetOwnerKeyID(*v)
	}
	return _u
}

// ClearOwnerKeyID clears the value of the "owner_key_id" field.
func (_u *UsageEventUpdateOne) ClearOwnerKeyID() *UsageEventUpdateOne {
	_u.mutation.ClearOwnerKeyID()
	return _u
}

// SetModel sets the "model" field.
func (_u *UsageEventUpdateOne) SetModel(v string) *UsageEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *UsageEventUpdateOne) SetNillableModel(v *string) *UsageEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *UsageEventUpdateOne) SetAttempt(v int) *UsageEventUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *UsageEventUpdateOne) SetNillableAttempt(v *int) *UsageEventUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *UsageEventUpdateOne) AddAttempt(v int) *UsageEventUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *UsageEventUpdateOne) SetPromptTokens(v int) *UsageEventUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *UsageEventUpdateOne) SetNillablePromptTokens(v *int) *UsageEventUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *UsageEventUpdateOne) AddPromptTokens(v int) *UsageEventUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (_u *UsageEventUpdateOne) ClearPromptTokens() *UsageEventUpdateOne {
	_u.mutation.ClearPromptTokens()
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *UsageEventUpdateOne) SetCompletionTokens(v int) *UsageEventUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *UsageEventUpdateOne) SetNillableCompletionTokens(v *int) *UsageEventUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *UsageEventUpdateOne) AddCompletionTokens(v int) *UsageEventUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (_u *UsageEventUpdateOne) ClearCompletionTokens() *UsageEventUpdateOne {
	_u.mutation.ClearCompletionTokens()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *UsageEventUpdateOne) SetTotalTokens(v int) *UsageEventUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *UsageEventUpdateOne) SetNillableTotalTokens(v *int) *UsageEventUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *UsageEventUpdateOne) AddTotalTokens(v int) *UsageEventUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (_u *UsageEventUpdateOne) ClearTotalTokens() *UsageEventUpdateOne {
	_u.mutation.ClearTotalTokens()
	return _u
}

// SetCostEstimated sets the "cost_estimated" field.
func (_u *UsageEventUpdateOne) SetCostEstimated(v float64) *UsageEventUpdateOne {
	_u.mutation.ResetCostEstimated()
	_u.mutation.SetCostEstimated(v)
	return _u
}

// SetNillableCostEstimated sets the "cost_estimated" field if the given value is not nil.
func (_u *UsageEventUpdateOne) SetNillableCostEstimated(v *float64) *UsageEventUpdateOne {
	if v != nil {
		_u.SetCostEstimated(*v)
	}
	return _u
}

// AddCostEstimated adds value to the "cost_estimated" field.
func (_u *UsageEventUpdateOne) AddCostEstimated(v float64) *UsageEventUpdateOne {
	_u.mutation.AddCostEstimated(v)
	return _u
}

// ClearCostEstimated clears the value of the "cost_estimated" field.
func (_u *UsageEventUpdateOne) ClearCostEstimated() *UsageEventUpdateOne {
	_u.mutation.ClearCostEstimated()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *UsageEventUpdateOne) SetLatencyMs(v int) *UsageEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *UsageEventUpdateOne) SetNillableLatencyMs(v *int) *UsageEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *UsageEventUpdateOne) AddLatencyMs(v int) *UsageEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (_u *UsageEventUpdateOne) ClearLatencyMs() *UsageEventUpdateOne {
	_u.mutation.ClearLatencyMs()
	return _u
}

// SetRawUsageJSON sets the "raw_usage_json" field.
func (_u *UsageEventUpdateOne) SetRawUsageJSON(v map[string]interface{}) *UsageEventUpdateOne {
	_u.mutation.SetRawUsageJSON(v)
	return _u
}

// ClearRawUsageJSON clears the value of the "raw_usage_json" field.
func (_u *UsageEventUpdateOne) ClearRawUsageJSON() *UsageEventUpdateOne {
	_u.mutation.ClearRawUsageJSON()
	return _u
}

// SetUsageMissing sets the "usage_missing" field.
func (_u *UsageEventUpdateOne) SetUsageMissing(v bool) *UsageEventUpdateOne {
	_u.mutation.SetUsageMissing(v)
	return _u
}

// SetNillableUsageMissing sets the "usage_missing" field if the given value is not nil.
func (_u *UsageEventUpdateOne) SetNillableUsageMissing(v *bool) *UsageEventUpdateOne {
	if v != nil {
		_u.SetUsageMissing(*v)
	}
	return _u
}

// Mutation returns the UsageEventMutation object of the builder.
func (_u *UsageEventUpdateOne) Mutation() *UsageEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the UsageEventUpdate builder.
func (_u *UsageEventUpdateOne) Where(ps ...predicate.UsageEvent) *UsageEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsageEventUpdateOne) Select(field string, fields ...string) *UsageEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UsageEvent entity.
func (_u *UsageEventUpdateOne) Save(ctx context.Context) (*UsageEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageEventUpdateOne) SaveX(ctx context.Context) *UsageEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsageEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageEventUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UsageEvent.run"`)
	}
	return nil
}

func (_u *UsageEventUpdateOne) sqlSave(ctx context.Context) (_node *UsageEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usageevent.Table, usageevent.Columns, sqlgraph.NewFieldSpec(usageevent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usageevent.FieldID)
		for _, f := range fields {
			if !usageevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usageevent.FieldID {
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
	if value, ok := _u.mutation.OwnerKeyID(); ok {
		_spec.SetField(usageevent.FieldOwnerKeyID, field.TypeUUID, value)
	}
	if _u.mutation.OwnerKeyIDCleared() {
		_spec.ClearField(usageevent.FieldOwnerKeyID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(usageevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(usageevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(usageevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(usageevent.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(usageevent.FieldPromptTokens, field.TypeInt, value)
	}
	if _u.mutation.PromptTokensCleared() {
		_spec.ClearField(usageevent.FieldPromptTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(usageevent.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(usageevent.FieldCompletionTokens, field.TypeInt, value)
	}
	if _u.mutation.CompletionTokensCleared() {
		_spec.ClearField(usageevent.FieldCompletionTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(usageevent.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(usageevent.FieldTotalTokens, field.TypeInt, value)
	}
	if _u.mutation.TotalTokensCleared() {
		_spec.ClearField(usageevent.FieldTotalTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CostEstimated(); ok {
		_spec.SetField(usageevent.FieldCostEstimated, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimated(); ok {
		_spec.AddField(usageevent.FieldCostEstimated, field.TypeFloat64, value)
	}
	if _u.mutation.CostEstimatedCleared() {
		_spec.ClearField(usageevent.FieldCostEstimated, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(usageevent.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(usageevent.FieldLatencyMs, field.TypeInt, value)
	}
	if _u.mutation.LatencyMsCleared() {
		_spec.ClearField(usageevent.FieldLatencyMs, field.TypeInt)
	}
	if value, ok := _u.mutation.RawUsageJSON(); ok {
		_spec.SetField(usageevent.FieldRawUsageJSON, field.TypeJSON, value)
	}
	if _u.mutation.RawUsageJSONCleared() {
		_spec.ClearField(usageevent.FieldRawUsageJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.UsageMissing(); ok {
		_spec.SetField(usageevent.FieldUsageMissing, field.TypeBool, value)
	}
	_node = &UsageEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
