package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ApiKey holds the schema definition for the ApiKey entity. A key with a nil
// account_id is the root of its own account; keys sharing an account_id share
// conversation visibility with that root.
type ApiKey struct {
	ent.Schema
}

// Fields of the ApiKey.
func (ApiKey) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique().
			Immutable(),
		field.UUID("account_id", uuid.UUID{}).
			Optional().
			Nillable(),
		field.String("key_hash").
			Unique(),
		field.String("name").
			Default("default"),
		field.Bool("is_active").
			Default(true),
		field.Int("rate_limit_per_min").
			Default(60),
		field.Int("monthly_token_cap").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("deactivated_at").
			Optional().
			Nillable(),
		field.Time("last_used_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the ApiKey.
func (ApiKey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id"),
		index.Fields("key_hash"),
	}
}
