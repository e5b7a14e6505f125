package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CacheEntry holds the schema definition for the CacheEntry entity: a
// read-through cache row for idempotent stage outputs. The key is an opaque
// fingerprint ("council:" + sha256 of canonical JSON parts).
type CacheEntry struct {
	ent.Schema
}

// Fields of the CacheEntry.
func (CacheEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			Immutable().
			StorageKey("cache_key"),
		field.JSON("value_json", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("expires_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the CacheEntry.
func (CacheEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("expires_at"),
	}
}
