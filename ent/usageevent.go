// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/llmcouncil/councild/ent/run"
	"github.com/llmcouncil/councild/ent/usageevent"
)

// UsageEvent is the model entity for the UsageEvent schema.
type UsageEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID uuid.UUID `json:"run_id,omitempty"`
	// OwnerKeyID holds the value of the "owner_key_id" field.
	OwnerKeyID *uuid.UUID `json:"owner_key_id,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// CallID holds the value of the "call_id" field.
	CallID uuid.UUID `json:"call_id,omitempty"`
	// Attempt holds the value of the "attempt" field.
	Attempt int `json:"attempt,omitempty"`
	// PromptTokens holds the value of the "prompt_tokens" field.
	PromptTokens *int `json:"prompt_tokens,omitempty"`
	// CompletionTokens holds the value of the "completion_tokens" field.
	CompletionTokens *int `json:"completion_tokens,omitempty"`
	// TotalTokens holds the value of the "total_tokens" field.
	TotalTokens *int `json:"total_tokens,omitempty"`
	// CostEstimated holds the value of the "cost_estimated" field.
	CostEstimated *float64 `json:"cost_estimated,omitempty"`
	// LatencyMs holds the value of the "latency_ms" field.
	LatencyMs *int `json:"latency_ms,omitempty"`
	// Provider usage block plus price_book_version; redacted error context on failures
	RawUsageJSON map[string]interface{} `json:"raw_usage_json,omitempty"`
	// true iff the provider returned no usage block or the attempt errored
	UsageMissing bool `json:"usage_missing,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UsageEventQuery when eager-loading is set.
	Edges        UsageEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UsageEventEdges holds the relations/edges for other nodes in the graph.
type UsageEventEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UsageEventEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UsageEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case usageevent.FieldOwnerKeyID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case usageevent.FieldRawUsageJSON:
			values[i] = new([]byte)
		case usageevent.FieldUsageMissing:
			values[i] = new(sql.NullBool)
		case usageevent.FieldCostEstimated:
			values[i] = new(sql.NullFloat64)
		case usageevent.FieldAttempt, usageevent.FieldPromptTokens, usageevent.FieldCompletionTokens, usageevent.FieldTotalTokens, usageevent.FieldLatencyMs:
			values[i] = new(sql.NullInt64)
		case usageevent.FieldModel:
			values[i] = new(sql.NullString)
		case usageevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case usageevent.FieldID, usageevent.FieldRunID, usageevent.FieldCallID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UsageEvent fields.
func (_m *UsageEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case usageevent.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case usageevent.FieldRunID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value != nil {
				_m.RunID = *value
			}
		case usageevent.FieldOwnerKeyID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field owner_key_id", values[i])
			} else if value.Valid {
				_m.OwnerKeyID = new(uuid.UUID)
				*_m.OwnerKeyID = *value.S.(*uuid.UUID)
			}
		case usageevent.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case usageevent.FieldCallID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field call_id", values[i])
			} else if value != nil {
				_m.CallID = *value
			}
		case usageevent.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				_m.Attempt = int(value.Int64)
			}
		case usageevent.FieldPromptTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_tokens", values[i])
			} else if value.Valid {
				_m.PromptTokens = new(int)
				*_m.PromptTokens = int(value.Int64)
			}
		case usageevent.FieldCompletionTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_tokens", values[i])
			} else if value.Valid {
				_m.CompletionTokens = new(int)
				*_m.CompletionTokens = int(value.Int64)
			}
		case usageevent.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = new(int)
				*_m.TotalTokens = int(value.Int64)
			}
		case usageevent.FieldCostEstimated:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_estimated", values[i])
			} else if value.Valid {
				_m.CostEstimated = new(float64)
				*_m.CostEstimated = value.Float64
			}
		case usageevent.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = new(int)
				*_m.LatencyMs = int(value.Int64)
			}
		case usageevent.FieldRawUsageJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_usage_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawUsageJSON); err != nil {
					return fmt.Errorf("unmarshal field raw_usage_json: %w", err)
				}
			}
		case usageevent.FieldUsageMissing:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field usage_missing", values[i])
			} else if value.Valid {
				_m.UsageMissing = value.Bool
			}
		case usageevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UsageEvent.
// This includes values selected through modifiers, order, etc.
func (_m *UsageEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the UsageEvent entity.
func (_m *UsageEvent) QueryRun() *RunQuery {
	return NewUsageEventClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this UsageEvent.
// Note that you need to call UsageEvent.Unwrap() before calling this method if this UsageEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UsageEvent) Update() *UsageEventUpdateOne {
	return NewUsageEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UsageEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UsageEvent) Unwrap() *UsageEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UsageEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UsageEvent) String() string {
	var builder strings.Builder
	builder.WriteString("UsageEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunID))
	builder.WriteString(", ")
	if v := _m.OwnerKeyID; v != nil {
		builder.WriteString("owner_key_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("call_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CallID))
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteString(", ")
	if v := _m.PromptTokens; v != nil {
		builder.WriteString("prompt_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CompletionTokens; v != nil {
		builder.WriteString("completion_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalTokens; v != nil {
		builder.WriteString("total_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CostEstimated; v != nil {
		builder.WriteString("cost_estimated=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LatencyMs; v != nil {
		builder.WriteString("latency_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("raw_usage_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawUsageJSON))
	builder.WriteString(", ")
	builder.WriteString("usage_missing=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsageMissing))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UsageEvents is a parsable slice of UsageEvent.
type UsageEvents []*UsageEvent
