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
	"github.com/google/uuid"
	"github.com/llmcouncil/councild/ent/apikey"
	"github.com/llmcouncil/councild/ent/predicate"
)

// ApiKeyUpdate is the builder for updating ApiKey entities.
type ApiKeyUpdate struct {
	config
	hooks    []Hook
	mutation *ApiKeyMutation
}

// Where appends a list predicates to the ApiKeyUpdate builder.
func (_u *ApiKeyUpdate) Where(ps ...predicate.ApiKey) *ApiKeyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *ApiKeyUpdate) SetAccountID(v uuid.UUID) *ApiKeyUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *ApiKeyUpdate) SetNillableAccountID(v *uuid.UUID) *ApiKeyUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// ClearAccountID clears the value of the "account_id" field.
func (_u *ApiKeyUpdate) ClearAccountID() *ApiKeyUpdate {
	_u.mutation.ClearAccountID()
	return _u
}

// SetKeyHash sets the "key_hash" field.
func (_u *ApiKeyUpdate) SetKeyHash(v string) *ApiKeyUpdate {
	_u.mutation.SetKeyHash(v)
	return _u
}

// SetNillableKeyHash sets the "key_hash" field if the given value is not nil.
func (_u *ApiKeyUpdate) SetNillableKeyHash(v *string) *ApiKeyUpdate {
	if v != nil {
		_u.SetKeyHash(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ApiKeyUpdate) SetName(v string) *ApiKeyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ApiKeyUpdate) SetNillableName(v *string) *ApiKeyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ApiKeyUpdate) SetIsActive(v bool) *ApiKeyUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ApiKeyUpdate) SetNillableIsActive(v *bool) *ApiKeyUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetRateLimitPerMin sets the "rate_limit_per_min" field.
func (_u *ApiKeyUpdate) SetRateLimitPerMin(v int) *ApiKeyUpdate {
	_u.mutation.ResetRateLimitPerMin()
	_u.mutation.SetRateLimitPerMin(v)
	return _u
}

// SetNillableRateLimitPerMin sets the "rate_limit_per_min" field if the given value is not nil.
func (_u *ApiKeyUpdate) SetNillableRateLimitPerMin(v *int) *ApiKeyUpdate {
	if v != nil {
		_u.SetRateLimitPerMin(*v)
	}
	return _u
}

// AddRateLimitPerMin adds value to the "rate_limit_per_min" field.
func (_u *ApiKeyUpdate) AddRateLimitPerMin(v int) *ApiKeyUpdate {
	_u.mutation.AddRateLimitPerMin(v)
	return _u
}

// SetMonthlyTokenCap sets the "monthly_token_cap" field.
func (_u *ApiKeyUpdate) SetMonthlyTokenCap(v int) *ApiKeyUpdate {
	_u.mutation.ResetMonthlyTokenCap()
	_u.mutation.SetMonthlyTokenCap(v)
	return _u
}

// SetNillableMonthlyTokenCap sets the "monthly_token_cap" field if the given value is not nil.
func (_u *ApiKeyUpdate) SetNillableMonthlyTokenCap(v *int) *ApiKeyUpdate {
	if v != nil {
		_u.SetMonthlyTokenCap(*v)
	}
	return _u
}

// AddMonthlyTokenCap adds value to the "monthly_token_cap" field.
func (_u *ApiKeyUpdate) AddMonthlyTokenCap(v int) *ApiKeyUpdate {
	_u.mutation.AddMonthlyTokenCap(v)
	return _u
}

// ClearMonthlyTokenCap clears the value of the "monthly_token_cap" field.
func (_u *ApiKeyUpdate) ClearMonthlyTokenCap() *ApiKeyUpdate {
	_u.mutation.ClearMonthlyTokenCap()
	return _u
}

// SetDeactivatedAt sets the "deactivated_at" field.
func (_u *ApiKeyUpdate) SetDeactivatedAt(v time.Time) *ApiKeyUpdate {
	_u.mutation.SetDeactivatedAt(v)
	return _u
}

// SetNillableDeactivatedAt sets the "deactivated_at" field if the given value is not nil.
func (_u *ApiKeyUpdate) SetNillableDeactivatedAt(v *time.Time) *ApiKeyUpdate {
	if v != nil {
		_u.SetDeactivatedAt(*v)
	}
	return _u
}

// ClearDeactivatedAt clears the value of the "deactivated_at" field.
func (_u *ApiKeyUpdate) ClearDeactivatedAt() *ApiKeyUpdate {
	_u.mutation.ClearDeactivatedAt()
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *ApiKeyUpdate) SetLastUsedAt(v time.Time) *ApiKeyUpdate {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *ApiKeyUpdate) SetNillableLastUsedAt(v *time.Time) *ApiKeyUpdate {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *ApiKeyUpdate) ClearLastUsedAt() *ApiKeyUpdate {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// Mutation returns the ApiKeyMutation object of the builder.
func (_u *ApiKeyUpdate) Mutation() *ApiKeyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApiKeyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApiKeyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApiKeyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApiKeyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ApiKeyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(apikey.Table, apikey.Columns, sqlgraph.NewFieldSpec(apikey.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(apikey.FieldAccountID, field.TypeUUID, value)
	}
	if _u.mutation.AccountIDCleared() {
		_spec.ClearField(apikey.FieldAccountID, field.TypeUUID)
	}
	if value, ok := _u.mutation.KeyHash(); ok {
		_spec.SetField(apikey.FieldKeyHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(apikey.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(apikey.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RateLimitPerMin(); ok {
		_spec.SetField(apikey.FieldRateLimitPerMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRateLimitPerMin(); ok {
		_spec.AddField(apikey.FieldRateLimitPerMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MonthlyTokenCap(); ok {
		_spec.SetField(apikey.FieldMonthlyTokenCap, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMonthlyTokenCap(); ok {
		_spec.AddField(apikey.FieldMonthlyTokenCap, field.TypeInt, value)
	}
	if _u.mutation.MonthlyTokenCapCleared() {
		_spec.ClearField(apikey.FieldMonthlyTokenCap, field.TypeInt)
	}
	if value, ok := _u.mutation.DeactivatedAt(); ok {
		_spec.SetField(apikey.FieldDeactivatedAt, field.TypeTime, value)
	}
	if _u.mutation.DeactivatedAtCleared() {
		_spec.ClearField(apikey.FieldDeactivatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(apikey.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(apikey.FieldLastUsedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apikey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApiKeyUpdateOne is the builder for updating a single ApiKey entity.
type ApiKeyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApiKeyMutation
}

// SetAccountID sets the "account_id" field.
func (_u *ApiKeyUpdateOne) SetAccountID(v uuid.UUID) *ApiKeyUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *ApiKeyUpdateOne) SetNillableAccountID(v *uuid.UUID) *ApiKeyUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// ClearAccountID clears the value of the "account_id" field.
func (_u *ApiKeyUpdateOne) ClearAccountID() *ApiKeyUpdateOne {
	_u.mutation.ClearAccountID()
	return _u
}

// SetKeyHash sets the "key_hash" field.
func (_u *ApiKeyUpdateOne) SetKeyHash(v string) *ApiKeyUpdateOne {
	_u.mutation.SetKeyHash(v)
	return _u
}

// SetNillableKeyHash sets the "key_hash" field if the given value is not nil.
func (_u *ApiKeyUpdateOne) SetNillableKeyHash(v *string) *ApiKeyUpdateOne {
	if v != nil {
		_u.SetKeyHash(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ApiKeyUpdateOne) SetName(v string) *ApiKeyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ApiKeyUpdateOne) SetNillableName(v *string) *ApiKeyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ApiKeyUpdateOne) SetIsActive(v bool) *ApiKeyUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ApiKeyUpdateOne) SetNillableIsActive(v *bool) *ApiKeyUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetRateLimitPerMin sets the "rate_limit_per_min" field.
func (_u *ApiKeyUpdateOne) SetRateLimitPerMin(v int) *ApiKeyUpdateOne {
	_u.mutation.ResetRateLimitPerMin()
	_u.mutation.SetRateLimitPerMin(v)
	return _u
}

// SetNillableRateLimitPerMin sets the "rate_limit_per_min" field if the given value is not nil.
func (_u *ApiKeyUpdateOne) SetNillableRateLimitPerMin(v *int) *ApiKeyUpdateOne {
	if v != nil {
		_u.SetRateLimitPerMin(*v)
	}
	return _u
}

// AddRateLimitPerMin adds value to the "rate_limit_per_min" field.
func (_u *ApiKeyUpdateOne) AddRateLimitPerMin(v int) *ApiKeyUpdateOne {
	_u.mutation.AddRateLimitPerMin(v)
	return _u
}

// SetMonthlyTokenCap sets the "monthly_token_cap" field.
func (_u *ApiKeyUpdateOne) SetMonthlyTokenCap(v int) *ApiKeyUpdateOne {
	_u.mutation.ResetMonthlyTokenCap()
	_u.mutation.SetMonthlyTokenCap(v)
	return _u
}

// SetNillableMonthlyTokenCap sets the "monthly_token_cap" field if the given value is not nil.
func (_u *ApiKeyUpdateOne) SetNillableMonthlyTokenCap(v *int) *ApiKeyUpdateOne {
	if v != nil {
		_u.SetMonthlyTokenCap(*v)
	}
	return _u
}

// AddMonthlyTokenCap adds value to the "monthly_token_cap" field.
func (_u *ApiKeyUpdateOne) AddMonthlyTokenCap(v int) *ApiKeyUpdateOne {
	_u.mutation.AddMonthlyTokenCap(v)
	return _u
}

// ClearMonthlyTokenCap clears the value of the "monthly_token_cap" field.
func (_u *ApiKeyUpdateOne) ClearMonthlyTokenCap() *ApiKeyUpdateOne {
	_u.mutation.ClearMonthlyTokenCap()
	return _u
}

// SetDeactivatedAt sets the "deactivated_at" field.
func (_u *ApiKeyUpdateOne) SetDeactivatedAt(v time.Time) *ApiKeyUpdateOne {
	_u.mutation.SetDeactivatedAt(v)
	return _u
}

// SetNillableDeactivatedAt sets the "deactivated_at" field if the given value is not nil.
func (_u *ApiKeyUpdateOne) SetNillableDeactivatedAt(v *time.Time) *ApiKeyUpdateOne {
	if v != nil {
		_u.SetDeactivatedAt(*v)
	}
	return _u
}

// ClearDeactivatedAt clears the value of the "deactivated_at" field.
func (_u *ApiKeyUpdateOne) ClearDeactivatedAt() *ApiKeyUpdateOne {
	_u.mutation.ClearDeactivatedAt()
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *ApiKeyUpdateOne) SetLastUsedAt(v time.Time) *ApiKeyUpdateOne {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *ApiKeyUpdateOne) SetNillableLastUsedAt(v *time.Time) *ApiKeyUpdateOne {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *ApiKeyUpdateOne) ClearLastUsedAt() *ApiKeyUpdateOne {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// Mutation returns the ApiKeyMutation object of the builder.
func (_u *ApiKeyUpdateOne) Mutation() *ApiKeyMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApiKeyUpdate builder.
func (_u *ApiKeyUpdateOne) Where(ps ...predicate.ApiKey) *ApiKeyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApiKeyUpdateOne) Select(field string, fields ...string) *ApiKeyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApiKey entity.
func (_u *ApiKeyUpdateOne) Save(ctx context.Context) (*ApiKey, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApiKeyUpdateOne) SaveX(ctx context.Context) *ApiKey {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApiKeyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApiKeyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ApiKeyUpdateOne) sqlSave(ctx context.Context) (_node *ApiKey, err error) {
	_spec := sqlgraph.NewUpdateSpec(apikey.Table, apikey.Columns, sqlgraph.NewFieldSpec(apikey.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApiKey.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, apikey.FieldID)
		for _, f := range fields {
			if !apikey.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != apikey.FieldID {
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
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(apikey.FieldAccountID, field.TypeUUID, value)
	}
	if _u.mutation.AccountIDCleared() {
		_spec.ClearField(apikey.FieldAccountID, field.TypeUUID)
	}
	if value, ok := _u.mutation.KeyHash(); ok {
		_spec.SetField(apikey.FieldKeyHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(apikey.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(apikey.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RateLimitPerMin(); ok {
		_spec.SetField(apikey.FieldRateLimitPerMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRateLimitPerMin(); ok {
		_spec.AddField(apikey.FieldRateLimitPerMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MonthlyTokenCap(); ok {
		_spec.SetField(apikey.FieldMonthlyTokenCap, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMonthlyTokenCap(); ok {
		_spec.AddField(apikey.FieldMonthlyTokenCap, field.TypeInt, value)
	}
	if _u.mutation.MonthlyTokenCapCleared() {
		_spec.ClearField(apikey.FieldMonthlyTokenCap, field.TypeInt)
	}
	if value, ok := _u.mutation.DeactivatedAt(); ok {
		_spec.SetField(apikey.FieldDeactivatedAt, field.TypeTime, value)
	}
	if _u.mutation.DeactivatedAtCleared() {
		_spec.ClearField(apikey.FieldDeactivatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(apikey.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(apikey.FieldLastUsedAt, field.TypeTime)
	}
	_node = &ApiKey{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apikey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
