package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// UsageEvent holds the schema definition for the UsageEvent entity: one row
// per upstream model call attempt, successes and failures alike. Retries of
// the same logical call share call_id; (run_id, call_id, attempt) is unique.
type UsageEvent struct {
	ent.Schema
}

// Fields of the UsageEvent.
func (UsageEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique().
			Immutable(),
		field.UUID("run_id", uuid.UUID{}).
			Immutable(),
		field.UUID("owner_key_id", uuid.UUID{}).
			Optional().
			Nillable(),
		field.String("model"),
		field.UUID("call_id", uuid.UUID{}).
			Immutable(),
		field.Int("attempt").
			Default(0),
		field.Int("prompt_tokens").
			Optional().
			Nillable(),
		field.Int("completion_tokens").
			Optional().
			Nillable(),
		field.Int("total_tokens").
			Optional().
			Nillable(),
		field.Float("cost_estimated").
			Optional().
			Nillable(),
		field.Int("latency_ms").
			Optional().
			Nillable(),
		field.JSON("raw_usage_json", map[string]interface{}{}).
			Optional().
			Comment("Provider usage block plus price_book_version; redacted error context on failures"),
		field.Bool("usage_missing").
			Default(false).
			Comment("true iff the provider returned no usage block or the attempt errored"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the UsageEvent.
func (UsageEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("usage_events").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the UsageEvent.
func (UsageEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "call_id", "attempt").
			Unique(),
		index.Fields("owner_key_id", "created_at"),
		index.Fields("model"),
	}
}
