package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llmcouncil/councild/pkg/cache"
	"github.com/llmcouncil/councild/pkg/config"
)

func TestCacheRoundTrip(t *testing.T) {
	client := NewTestClient(t)
	ctx := context.Background()
	c := cache.New(client.Client, config.CacheConfig{Enabled: true})

	_, ok, err := c.Get(ctx, "council:missing")
	require.NoError(t, err)
	assert.False(t, ok)

	value := map[string]interface{}{"response": "hello", "ranking": []interface{}{"Response A"}}
	require.NoError(t, c.Set(ctx, "council:k1", value))

	got, ok, err := c.Get(ctx, "council:k1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hello", got["response"])

	// Overwrite wins.
	require.NoError(t, c.Set(ctx, "council:k1", map[string]interface{}{"response": "updated"}))
	got, ok, err = c.Get(ctx, "council:k1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "updated", got["response"])
}

func TestCacheLazyExpiry(t *testing.T) {
	client := NewTestClient(t)
	ctx := context.Background()
	c := cache.New(client.Client, config.CacheConfig{Enabled: true, TTL: 50 * time.Millisecond})

	require.NoError(t, c.Set(ctx, "council:ttl", map[string]interface{}{"v": 1}))
	time.Sleep(100 * time.Millisecond)

	_, ok, err := c.Get(ctx, "council:ttl")
	require.NoError(t, err)
	assert.False(t, ok, "expired entry must read as a miss")

	// The expired row was deleted in passing; a re-set starts a new window.
	require.NoError(t, c.Set(ctx, "council:ttl", map[string]interface{}{"v": 2}))
	got, ok, err := c.Get(ctx, "council:ttl")
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 2, got["v"])
}

func TestCacheDisabled(t *testing.T) {
	client := NewTestClient(t)
	ctx := context.Background()
	c := cache.New(client.Client, config.CacheConfig{Enabled: false})

	require.NoError(t, c.Set(ctx, "council:off", map[string]interface{}{"v": 1}))
	_, ok, err := c.Get(ctx, "council:off")
	require.NoError(t, err)
	assert.False(t, ok)
}
