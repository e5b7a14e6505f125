package tools

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/llmcouncil/councild/pkg/config"
)

func mustUUID(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.New()
}

func testLimits() config.LimitsConfig {
	return config.LimitsConfig{
		MaxPromptChars:    20000,
		MaxTaskChars:      20000,
		MaxRepoFiles:      25,
		MaxRepoTotalChars: 200000,
		MaxPathChars:      300,
	}
}

func TestAskInputValidate(t *testing.T) {
	limits := testLimits()

	assert.NoError(t, (&AskInput{Prompt: "hello"}).Validate(limits))
	assert.ErrorIs(t, (&AskInput{}).Validate(limits), ErrInvalidInput)
	assert.ErrorIs(t, (&AskInput{Prompt: strings.Repeat("x", limits.MaxPromptChars+1)}).Validate(limits), ErrInputTooLarge)
}

func TestPipelineInputValidate(t *testing.T) {
	limits := testLimits()

	assert.NoError(t, (&PipelineInput{TaskDescription: "do a thing"}).Validate(limits))
	assert.ErrorIs(t, (&PipelineInput{}).Validate(limits), ErrInvalidInput)
	assert.ErrorIs(t, (&PipelineInput{TaskDescription: strings.Repeat("x", limits.MaxTaskChars+1)}).Validate(limits), ErrInputTooLarge)
}

func TestRepoContextValidate(t *testing.T) {
	limits := testLimits()

	t.Run("too many files", func(t *testing.T) {
		rc := &RepoContextInput{}
		for i := 0; i <= limits.MaxRepoFiles; i++ {
			rc.Files = append(rc.Files, RepoFileInput{Path: "f.py"})
		}
		in := &PipelineInput{TaskDescription: "t", RepoContext: rc}
		assert.ErrorIs(t, in.Validate(limits), ErrInputTooLarge)
	})

	t.Run("path too long", func(t *testing.T) {
		rc := &RepoContextInput{Files: []RepoFileInput{{Path: strings.Repeat("p", limits.MaxPathChars+1)}}}
		in := &PipelineInput{TaskDescription: "t", RepoContext: rc}
		assert.ErrorIs(t, in.Validate(limits), ErrInputTooLarge)
	})

	t.Run("empty path", func(t *testing.T) {
		rc := &RepoContextInput{Files: []RepoFileInput{{Path: ""}}}
		in := &PipelineInput{TaskDescription: "t", RepoContext: rc}
		assert.ErrorIs(t, in.Validate(limits), ErrInvalidInput)
	})

	t.Run("total content too large", func(t *testing.T) {
		rc := &RepoContextInput{Files: []RepoFileInput{
			{Path: "a.py", Content: strings.Repeat("x", limits.MaxRepoTotalChars)},
			{Path: "b.py", Summary: "y"},
		}}
		in := &PipelineInput{TaskDescription: "t", RepoContext: rc}
		assert.ErrorIs(t, in.Validate(limits), ErrInputTooLarge)
	})

	t.Run("within limits", func(t *testing.T) {
		rc := &RepoContextInput{Files: []RepoFileInput{{Path: "a.py", Content: "print('hi')"}}}
		in := &PipelineInput{TaskDescription: "t", RepoContext: rc}
		assert.NoError(t, in.Validate(limits))
	})
}

func TestClampedIterations(t *testing.T) {
	// Absent defaults to 2; an explicit 0 clamps to 1 like any
	// below-minimum value.
	assert.Equal(t, 2, (&PipelineInput{}).ClampedIterations())

	tests := []struct {
		in   int
		want int
	}{
		{0, 1},
		{-3, 1},
		{1, 1},
		{3, 3},
		{4, 4},
		{10, 4},
	}
	for _, tt := range tests {
		v := tt.in
		assert.Equal(t, tt.want, (&PipelineInput{MaxIterations: &v}).ClampedIterations())
	}
}

func TestBudgetInputConversion(t *testing.T) {
	assert.Nil(t, (*BudgetInput)(nil).toEngine())
	assert.Nil(t, (*BudgetInput)(nil).asMap())

	tokens := 500
	b := &BudgetInput{MaxTotalTokens: &tokens}
	eb := b.toEngine()
	assert.False(t, eb.Empty())
	assert.Equal(t, map[string]interface{}{"max_total_tokens": 500}, b.asMap())
}

func TestErrorEnvelopesAreWellFormed(t *testing.T) {
	ask := errorAskOutput(mustUUID(t), mustUUID(t), []string{"timeout"})
	assert.True(t, ask.Degraded)
	assert.NotNil(t, ask.Metadata.LabelToModel)
	assert.NotNil(t, ask.Metadata.AggregateRankings)
	assert.NotNil(t, ask.UsageSummary.ByModel)

	pipe := errorPipelineOutput(mustUUID(t), mustUUID(t), []string{"cancelled"})
	assert.Equal(t, "FAIL", pipe.GateVerdict)
	assert.True(t, pipe.Degraded)
	assert.NotNil(t, pipe.UsageSummary.ByModel)
}
