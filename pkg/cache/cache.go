// Package cache provides the database-backed read-through cache for
// idempotent stage outputs. Expiry is lazy: expired rows are deleted on
// read rather than by a background sweeper.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/llmcouncil/councild/ent"
	"github.com/llmcouncil/councild/ent/cacheentry"
	"github.com/llmcouncil/councild/pkg/config"
)

// Cache is the ent-backed store. A disabled cache misses on every Get and
// drops every Set, which keeps call sites free of enablement checks.
type Cache struct {
	db      *ent.Client
	enabled bool
	ttl     time.Duration

	now func() time.Time
}

// New builds a cache from configuration. db may be nil only when the cache
// is disabled.
func New(db *ent.Client, cfg config.CacheConfig) *Cache {
	return &Cache{
		db:      db,
		enabled: cfg.Enabled,
		ttl:     cfg.TTL,
		now:     time.Now,
	}
}

// Get returns the cached value for key, or ok=false on a miss. An expired
// entry counts as a miss and is deleted in passing.
func (c *Cache) Get(ctx context.Context, key string) (map[string]interface{}, bool, error) {
	if !c.enabled {
		return nil, false, nil
	}

	entry, err := c.db.CacheEntry.Query().
		Where(cacheentry.KeyEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to query cache entry: %w", err)
	}

	if entry.ExpiresAt != nil && !entry.ExpiresAt.After(c.now()) {
		if err := c.db.CacheEntry.DeleteOne(entry).Exec(ctx); err != nil && !ent.IsNotFound(err) {
			slog.Warn("Failed to delete expired cache entry", "key", key, "error", err)
		}
		return nil, false, nil
	}

	return entry.ValueJSON, true, nil
}

// Set stores value under key, overwriting any existing entry and resetting
// its creation time so the TTL window restarts.
func (c *Cache) Set(ctx context.Context, key string, value map[string]interface{}) error {
	if !c.enabled {
		return nil
	}

	now := c.now()
	var expiresAt *time.Time
	if c.ttl > 0 {
		t := now.Add(c.ttl)
		expiresAt = &t
	}

	updated, err := c.db.CacheEntry.Update().
		Where(cacheentry.KeyEQ(key)).
		SetValueJSON(value).
		SetCreatedAt(now).
		SetNillableExpiresAt(expiresAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update cache entry: %w", err)
	}
	if updated > 0 {
		return nil
	}

	create := c.db.CacheEntry.Create().
		SetKey(key).
		SetValueJSON(value).
		SetCreatedAt(now)
	if expiresAt != nil {
		create.SetExpiresAt(*expiresAt)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to create cache entry: %w", err)
	}
	return nil
}
