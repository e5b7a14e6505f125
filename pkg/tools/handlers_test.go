package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llmcouncil/councild/pkg/config"
)

func TestCouncilAskRequiresAuth(t *testing.T) {
	h := NewHandlers(&config.Config{}, nil, nil, nil, nil, nil)

	out := h.CouncilAsk(context.Background(), Caller{}, "tc-1", AskInput{Prompt: "hi"}, &RunInfo{})

	assert.True(t, out.Degraded)
	assert.Equal(t, []string{"auth_required"}, out.Errors)
	assert.NotEmpty(t, out.RunID)
}

func TestCouncilPipelineRequiresAuth(t *testing.T) {
	h := NewHandlers(&config.Config{}, nil, nil, nil, nil, nil)

	out := h.CouncilPipeline(context.Background(), Caller{}, "tc-2", PipelineInput{TaskDescription: "task"}, &RunInfo{})

	assert.True(t, out.Degraded)
	assert.Equal(t, "FAIL", out.GateVerdict)
	assert.Equal(t, []string{"auth_required"}, out.Errors)
}
