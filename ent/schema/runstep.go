package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// RunStep holds the schema definition for the RunStep entity: one observation
// per agent attempt within a run. output_json carries either the parsed agent
// output or {raw_text, validation_error} with strings truncated to 20 KB.
type RunStep struct {
	ent.Schema
}

// Fields of the RunStep.
func (RunStep) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique().
			Immutable(),
		field.UUID("run_id", uuid.UUID{}).
			Immutable(),
		field.String("stage_name"),
		field.String("step_type"),
		field.String("agent_role"),
		field.String("model").
			Default(""),
		field.Int("attempt").
			Default(0),
		field.Bool("is_retry").
			Default(false),
		field.JSON("output_json", map[string]interface{}{}),
		field.Int("latency_ms").
			Optional().
			Nillable(),
		field.String("error_text").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RunStep.
func (RunStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("steps").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RunStep.
func (RunStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "created_at"),
		index.Fields("agent_role"),
	}
}
