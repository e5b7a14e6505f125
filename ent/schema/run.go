package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Run holds the schema definition for the Run entity: one top-level unit of
// orchestration work. A run is created "running" before any model call and
// transitions exactly once to a terminal status.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique().
			Immutable(),
		field.UUID("conversation_id", uuid.UUID{}).
			Immutable(),
		field.String("tool_name").
			Immutable(),
		field.JSON("input_json", map[string]interface{}{}).
			Comment("Validated tool input snapshot, including price_book_version"),
		field.Enum("status").
			Values("running", "succeeded", "failed").
			Default("running"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Int("latency_ms").
			Optional().
			Nillable(),
		field.UUID("owner_key_id", uuid.UUID{}).
			Optional().
			Nillable(),
	}
}

// Edges of the Run.
func (Run) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", RunStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("usage_events", UsageEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id"),
		index.Fields("status", "created_at"),
		index.Fields("owner_key_id"),
	}
}
