package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llmcouncil/councild/pkg/config"
)

func routerConfig() *config.Config {
	return &config.Config{
		Council: config.CouncilConfig{
			Models:   []string{"openai/gpt-5.1", "x-ai/grok-4"},
			Chairman: "google/gemini-3-pro-preview",
		},
	}
}

func TestResolvePipelineModels_Defaults(t *testing.T) {
	models := ResolvePipelineModels(routerConfig(), config.ModeBalanced)

	assert.Equal(t, PipelineModels{
		Leader:      "google/gemini-3-pro-preview",
		Reviewer:    "openai/gpt-5.1",
		Security:    "openai/gpt-5.1",
		TestWriter:  "x-ai/grok-4",
		Implementer: "google/gemini-3-pro-preview",
		Gate:        "google/gemini-3-pro-preview",
	}, models)
}

func TestResolvePipelineModels_Overrides(t *testing.T) {
	cfg := routerConfig()
	cfg.Pipeline = config.PipelineConfig{
		LeaderModel:   "anthropic/claude-sonnet-4.5",
		ReviewerModel: "openai/gpt-5.1-mini",
	}

	models := ResolvePipelineModels(cfg, config.ModeBalanced)

	assert.Equal(t, "anthropic/claude-sonnet-4.5", models.Leader)
	assert.Equal(t, "openai/gpt-5.1-mini", models.Reviewer)
	// Roles without overrides keep their roster defaults.
	assert.Equal(t, "openai/gpt-5.1", models.Security)
	assert.Equal(t, "google/gemini-3-pro-preview", models.Gate)
}

func TestResolvePipelineModels_ModeRoster(t *testing.T) {
	cfg := routerConfig()
	cfg.Routing.Fast = config.ModeRoster{
		Models: []string{"fast-1", "fast-2", "fast-3"},
		Chair:  "fast-chair",
	}

	models := ResolvePipelineModels(cfg, config.ModeFast)

	assert.Equal(t, "fast-chair", models.Leader)
	assert.Equal(t, "fast-1", models.Reviewer)
	assert.Equal(t, "fast-3", models.TestWriter)
	assert.Equal(t, "fast-chair", models.Implementer)
}

func TestResolvePipelineModels_EmptyRosterFallsBackToChair(t *testing.T) {
	cfg := &config.Config{Council: config.CouncilConfig{Chairman: "only-chair"}}

	models := ResolvePipelineModels(cfg, config.ModeBalanced)

	assert.Equal(t, "only-chair", models.Reviewer)
	assert.Equal(t, "only-chair", models.TestWriter)
}
