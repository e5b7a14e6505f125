package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_Defaults(t *testing.T) {
	t.Setenv("ALLOW_NO_AUTH", "true")

	cfg, err := Initialize(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "https://openrouter.ai/api/v1/chat/completions", cfg.Upstream.URL)
	assert.Equal(t, 6, cfg.Upstream.MaxConcurrency)
	assert.Equal(t, 2, cfg.Upstream.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.Upstream.RetryBase)
	assert.Equal(t, 120*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 60*time.Second, cfg.Upstream.AuthCooldown)
	assert.Equal(t, []string{
		"openai/gpt-5.1",
		"google/gemini-3-pro-preview",
		"anthropic/claude-sonnet-4.5",
		"x-ai/grok-4",
	}, cfg.Council.Models)
	assert.Equal(t, "google/gemini-3-pro-preview", cfg.Council.Chairman)
	assert.True(t, cfg.Cache.Enabled)
	assert.Zero(t, cfg.Cache.TTL)
	assert.Equal(t, "v1", cfg.Pricing.Version)
	assert.Equal(t, 4, cfg.Limits.MaxConcurrentCalls)
	assert.Equal(t, 300*time.Second, cfg.Limits.ToolTimeout)
	assert.Equal(t, 16, cfg.Limits.HTTPMaxConcurrentToolCalls)
}

func TestInitialize_RequiresPepperWhenAuthEnabled(t *testing.T) {
	t.Setenv("ALLOW_NO_AUTH", "false")
	t.Setenv("API_KEY_PEPPER", "")

	_, err := Initialize(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingPepper)
}

func TestInitialize_EnvOverrides(t *testing.T) {
	t.Setenv("ALLOW_NO_AUTH", "true")
	t.Setenv("OPENROUTER_MAX_CONCURRENCY", "2")
	t.Setenv("OPENROUTER_RETRY_BASE_SECONDS", "0.25")
	t.Setenv("OPENROUTER_TIMEOUT_SECONDS_FAST", "30")
	t.Setenv("COUNCIL_MODELS", " a/one , b/two ,")
	t.Setenv("CHAIRMAN_MODEL", "b/two")
	t.Setenv("MCP_JUDGES_DEEP", "c/judge")
	t.Setenv("COUNCIL_CACHE_ENABLED", "false")
	t.Setenv("COUNCIL_CACHE_TTL_SECONDS", "3600")
	t.Setenv("LEADER_MODEL", "a/one")

	cfg, err := Initialize(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Upstream.MaxConcurrency)
	assert.Equal(t, 250*time.Millisecond, cfg.Upstream.RetryBase)
	assert.Equal(t, 30*time.Second, cfg.Upstream.TimeoutForMode(ModeFast))
	assert.Equal(t, 120*time.Second, cfg.Upstream.TimeoutForMode(ModeBalanced))
	assert.Equal(t, []string{"a/one", "b/two"}, cfg.Council.Models)
	assert.Equal(t, "b/two", cfg.Council.Chairman)
	assert.Equal(t, []string{"c/judge"}, cfg.JudgesForMode(ModeDeep))
	assert.Equal(t, []string{"a/one", "b/two"}, cfg.JudgesForMode(ModeBalanced))
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "a/one", cfg.Pipeline.LeaderModel)
}

func TestInitialize_InvalidPricingJSON(t *testing.T) {
	t.Setenv("ALLOW_NO_AUTH", "true")
	t.Setenv("MODEL_PRICING_JSON", "{not json")

	_, err := Initialize(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPricing)
}

func TestInitialize_YAMLOverlay(t *testing.T) {
	t.Setenv("ALLOW_NO_AUTH", "true")

	dir := t.TempDir()
	yaml := `
council:
  models:
    - y/alpha
    - y/beta
  chairman: y/alpha
routing:
  fast:
    models: [y/beta]
    chair: y/beta
pricing:
  version: v2
  models:
    y/alpha:
      prompt_per_1m: 5.0
      completion_per_1m: 15.0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "council.yaml"), []byte(yaml), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"y/alpha", "y/beta"}, cfg.Council.Models)
	assert.Equal(t, "y/alpha", cfg.Council.Chairman)
	assert.Equal(t, []string{"y/beta"}, cfg.ModelsForMode(ModeFast))
	assert.Equal(t, "y/beta", cfg.ChairForMode(ModeFast))
	assert.Equal(t, "y/alpha", cfg.ChairForMode(ModeBalanced))
	assert.Equal(t, "v2", cfg.Pricing.Version)
	assert.Contains(t, cfg.Pricing.Models, "y/alpha")
}

func TestInitialize_EnvWinsOverYAML(t *testing.T) {
	t.Setenv("ALLOW_NO_AUTH", "true")
	t.Setenv("CHAIRMAN_MODEL", "env/chair")

	dir := t.TempDir()
	yaml := "council:\n  chairman: yaml/chair\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "council.yaml"), []byte(yaml), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "env/chair", cfg.Council.Chairman)
}

func TestNormalizeMode(t *testing.T) {
	assert.Equal(t, ModeFast, NormalizeMode("fast"))
	assert.Equal(t, ModeDeep, NormalizeMode("deep"))
	assert.Equal(t, ModeBalanced, NormalizeMode("balanced"))
	assert.Equal(t, ModeBalanced, NormalizeMode(""))
	assert.Equal(t, ModeBalanced, NormalizeMode("turbo"))
}
