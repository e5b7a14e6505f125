package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const judgeJSON = `{
	"evaluations": [
		{"label": "Response A", "pros": ["clear"], "cons": []},
		{"label": "Response B", "pros": [], "cons": ["vague"]}
	],
	"final_ranking": ["Response A", "Response B"],
	"failure_modes_top1": ["may be outdated"],
	"verification_steps": ["run the snippet"]
}`

func newCouncilRunner(q Querier, ledger Ledger, c Cache, opts CouncilOptions) *CouncilRunner {
	if len(opts.CouncilModels) == 0 {
		opts.CouncilModels = []string{"model-a", "model-b"}
	}
	if opts.Chairman == "" {
		opts.Chairman = "chairman"
	}
	return NewCouncilRunner(q, ledger, c, opts)
}

func TestStage1_AllModelsRespond(t *testing.T) {
	q := newScriptedQuerier()
	q.script("model-a", okResult("answer a"))
	q.script("model-b", okResult("answer b"))
	ledger := &memoryLedger{}
	cache := newMemoryCache()
	r := newCouncilRunner(q, ledger, cache, CouncilOptions{})

	results, err := r.Stage1(context.Background(), "what is Go?")
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, Stage1Result{Model: "model-a", Response: "answer a"}, results[0])
	assert.Equal(t, Stage1Result{Model: "model-b", Response: "answer b"}, results[1])

	steps := ledger.stepsFor("council_member")
	require.Len(t, steps, 2)
	for _, s := range steps {
		assert.Equal(t, "stage1", s.StageName)
		assert.Equal(t, false, s.Output["cache_hit"])
	}
	assert.Equal(t, 2, cache.len())
}

func TestStage1_FailedModelDropped(t *testing.T) {
	q := newScriptedQuerier()
	q.script("model-a", okResult("answer a"))
	q.script("model-b", errResult("upstream error (status 500)", 500))
	ledger := &memoryLedger{}
	r := newCouncilRunner(q, ledger, newMemoryCache(), CouncilOptions{})

	results, err := r.Stage1(context.Background(), "q")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "model-a", results[0].Model)

	// The failure is still visible in the ledger.
	require.Len(t, ledger.stepsFor("council_member"), 2)
	assert.Len(t, ledger.usage, 2)
}

func TestStage1_CacheHitSkipsUpstream(t *testing.T) {
	cache := newMemoryCache()
	ledger := &memoryLedger{}

	q1 := newScriptedQuerier()
	q1.script("model-a", okResult("cached answer"))
	r1 := newCouncilRunner(q1, ledger, cache, CouncilOptions{CouncilModels: []string{"model-a"}})
	_, err := r1.Stage1(context.Background(), "q")
	require.NoError(t, err)

	// Second run with a querier that would fail if called.
	ledger2 := &memoryLedger{}
	r2 := newCouncilRunner(newScriptedQuerier(), ledger2, cache, CouncilOptions{CouncilModels: []string{"model-a"}})
	results, err := r2.Stage1(context.Background(), "q")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "cached answer", results[0].Response)
	assert.Empty(t, ledger2.usage)

	steps := ledger2.stepsFor("council_member")
	require.Len(t, steps, 1)
	assert.Equal(t, true, steps[0].Output["cache_hit"])
	require.NotNil(t, steps[0].LatencyMS)
	assert.Equal(t, 0, *steps[0].LatencyMS)
}

func TestStage1_CacheKeyedByRoster(t *testing.T) {
	cache := newMemoryCache()

	q1 := newScriptedQuerier()
	q1.script("model-a", okResult("first"))
	r1 := newCouncilRunner(q1, &memoryLedger{}, cache, CouncilOptions{CouncilModels: []string{"model-a"}})
	_, err := r1.Stage1(context.Background(), "q")
	require.NoError(t, err)

	// Same model and query under a different roster misses the cache.
	q2 := newScriptedQuerier()
	q2.script("model-a", okResult("second"))
	r2 := newCouncilRunner(q2, &memoryLedger{}, cache, CouncilOptions{CouncilModels: []string{"model-a", "model-b"}, JudgeModels: []string{"model-a"}})
	results, err := r2.Stage1(context.Background(), "q")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "second", results[0].Response)
}

func TestStage2_ValidJudgement(t *testing.T) {
	q := newScriptedQuerier()
	q.script("judge-1", okResult(judgeJSON))
	ledger := &memoryLedger{}
	cache := newMemoryCache()
	r := newCouncilRunner(q, ledger, cache, CouncilOptions{
		CouncilModels: []string{"model-a", "model-b"},
		JudgeModels:   []string{"judge-1"},
	})

	stage1 := []Stage1Result{
		{Model: "model-a", Response: "answer a"},
		{Model: "model-b", Response: "answer b"},
	}
	results, labelToModel, aggregate, err := r.Stage2(context.Background(), "q", stage1)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.True(t, results[0].Valid)
	assert.Equal(t, []string{"Response A", "Response B"}, results[0].ParsedRanking)
	require.NotNil(t, results[0].ParsedJSON)
	assert.Nil(t, results[0].ValidationError)

	assert.Equal(t, "model-a", labelToModel["Response A"])

	require.Len(t, aggregate, 2)
	assert.Equal(t, AggregateRanking{Model: "model-a", AverageRank: 1.0, RankingsCount: 1}, aggregate[0])
	assert.Equal(t, AggregateRanking{Model: "model-b", AverageRank: 2.0, RankingsCount: 1}, aggregate[1])

	// Valid judgements are cached.
	assert.Equal(t, 1, cache.len())
}

func TestStage2_CorrectionRetry(t *testing.T) {
	q := newScriptedQuerier()
	q.script("judge-1", okResult("not json"), okResult(judgeJSON))
	ledger := &memoryLedger{}
	r := newCouncilRunner(q, ledger, newMemoryCache(), CouncilOptions{
		CouncilModels: []string{"model-a", "model-b"},
		JudgeModels:   []string{"judge-1"},
	})

	stage1 := []Stage1Result{{Model: "model-a", Response: "a"}, {Model: "model-b", Response: "b"}}
	results, _, _, err := r.Stage2(context.Background(), "q", stage1)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.True(t, results[0].Valid)

	calls := q.callsFor("judge-1")
	require.Len(t, calls, 2)
	assert.Contains(t, calls[1].prompt, "Your previous output was invalid.")

	// One call ID across both attempts, steps flag the retry.
	require.Len(t, ledger.usage, 2)
	assert.Equal(t, ledger.usage[0].CallID, ledger.usage[1].CallID)
	steps := ledger.stepsFor("council_member")
	require.Len(t, steps, 2)
	assert.False(t, steps[0].IsRetry)
	assert.True(t, steps[1].IsRetry)
}

func TestStage2_InvalidJudgementNotCached(t *testing.T) {
	q := newScriptedQuerier()
	q.script("judge-1", okResult("not json"), okResult("still not json"))
	cache := newMemoryCache()
	r := newCouncilRunner(q, &memoryLedger{}, cache, CouncilOptions{
		CouncilModels: []string{"model-a"},
		JudgeModels:   []string{"judge-1"},
	})

	results, _, aggregate, err := r.Stage2(context.Background(), "q", []Stage1Result{{Model: "model-a", Response: "a"}})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.False(t, results[0].Valid)
	require.NotNil(t, results[0].ValidationError)
	assert.Empty(t, aggregate)
	assert.Equal(t, 0, cache.len())
}

func TestStage2_UpstreamFailureExcludesJudge(t *testing.T) {
	q := newScriptedQuerier()
	q.script("judge-1", errResult("upstream error (status 500)", 500))
	ledger := &memoryLedger{}
	r := newCouncilRunner(q, ledger, newMemoryCache(), CouncilOptions{
		CouncilModels: []string{"model-a"},
		JudgeModels:   []string{"judge-1"},
	})

	results, _, _, err := r.Stage2(context.Background(), "q", []Stage1Result{{Model: "model-a", Response: "a"}})
	require.NoError(t, err)

	assert.Empty(t, results)
	// No correction retry after an upstream failure.
	assert.Len(t, q.callsFor("judge-1"), 1)
}

func TestStage2_CacheHit(t *testing.T) {
	cache := newMemoryCache()
	stage1 := []Stage1Result{{Model: "model-a", Response: "a"}, {Model: "model-b", Response: "b"}}

	q1 := newScriptedQuerier()
	q1.script("judge-1", okResult(judgeJSON))
	r1 := newCouncilRunner(q1, &memoryLedger{}, cache, CouncilOptions{
		CouncilModels: []string{"model-a", "model-b"},
		JudgeModels:   []string{"judge-1"},
	})
	_, _, _, err := r1.Stage2(context.Background(), "q", stage1)
	require.NoError(t, err)

	ledger2 := &memoryLedger{}
	r2 := newCouncilRunner(newScriptedQuerier(), ledger2, cache, CouncilOptions{
		CouncilModels: []string{"model-a", "model-b"},
		JudgeModels:   []string{"judge-1"},
	})
	results, _, aggregate, err := r2.Stage2(context.Background(), "q", stage1)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.True(t, results[0].Valid)
	assert.Equal(t, []string{"Response A", "Response B"}, results[0].ParsedRanking)
	require.NotNil(t, results[0].ParsedJSON)
	assert.Len(t, aggregate, 2)
	assert.Empty(t, ledger2.usage)

	steps := ledger2.stepsFor("council_member")
	require.Len(t, steps, 1)
	assert.Equal(t, true, steps[0].Output["cache_hit"])
}

func TestStage3_Synthesis(t *testing.T) {
	q := newScriptedQuerier()
	q.script("chairman", okResult("the final answer"))
	ledger := &memoryLedger{}
	r := newCouncilRunner(q, ledger, newMemoryCache(), CouncilOptions{})

	result, err := r.Stage3(context.Background(), "q",
		[]Stage1Result{{Model: "model-a", Response: "a"}}, nil)
	require.NoError(t, err)

	assert.Equal(t, Stage3Result{Model: "chairman", Response: "the final answer"}, result)

	steps := ledger.stepsFor("leader")
	require.Len(t, steps, 1)
	assert.Equal(t, "stage3", steps[0].StageName)
}

func TestStage3_FallbackOnFailure(t *testing.T) {
	q := newScriptedQuerier()
	q.script("chairman", errResult("upstream error (status 500)", 500))
	r := newCouncilRunner(q, &memoryLedger{}, newMemoryCache(), CouncilOptions{})

	result, err := r.Stage3(context.Background(), "q", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Error: Unable to generate final synthesis.", result.Response)
}

func TestGenerateTitle(t *testing.T) {
	tests := []struct {
		name    string
		result  string
		want    string
		upError bool
	}{
		{"plain title", "Go Basics", "Go Basics", false},
		{"strips quotes and whitespace", `  "Go Basics"  `, "Go Basics", false},
		{"truncates long titles", strings.Repeat("t", 60), strings.Repeat("t", 47) + "...", false},
		{"truncates multibyte titles on runes", strings.Repeat("é", 60), strings.Repeat("é", 47) + "...", false},
		{"empty content falls back", "   ", "New Conversation", false},
		{"upstream failure falls back", "", "New Conversation", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := newScriptedQuerier()
			if tt.upError {
				q.script("google/gemini-2.5-flash", errResult("upstream error (status 500)", 500))
			} else {
				q.script("google/gemini-2.5-flash", okResult(tt.result))
			}
			ledger := &memoryLedger{}
			r := newCouncilRunner(q, ledger, newMemoryCache(), CouncilOptions{})

			title, err := r.GenerateTitle(context.Background(), "q")
			require.NoError(t, err)
			assert.Equal(t, tt.want, title)

			steps := ledger.stepsFor("system")
			require.Len(t, steps, 1)
			assert.Equal(t, "title", steps[0].StepType)
		})
	}
}

func TestCalculateAggregateRankings(t *testing.T) {
	labelToModel := map[string]string{
		"Response A": "model-a",
		"Response B": "model-b",
		"Response C": "model-c",
	}
	stage2 := []Stage2Result{
		{Model: "judge-1", Valid: true, ParsedRanking: []string{"Response A", "Response B", "Response C"}},
		{Model: "judge-2", Valid: true, ParsedRanking: []string{"Response B", "Response A", "Response C"}},
		// Invalid judgements never count.
		{Model: "judge-3", Valid: false, ParsedRanking: []string{"Response C", "Response A", "Response B"}},
	}

	aggregate := CalculateAggregateRankings(stage2, labelToModel)

	require.Len(t, aggregate, 3)
	assert.Equal(t, AggregateRanking{Model: "model-a", AverageRank: 1.5, RankingsCount: 2}, aggregate[0])
	assert.Equal(t, AggregateRanking{Model: "model-b", AverageRank: 1.5, RankingsCount: 2}, aggregate[1])
	assert.Equal(t, AggregateRanking{Model: "model-c", AverageRank: 3.0, RankingsCount: 2}, aggregate[2])
}

func TestCalculateAggregateRankings_UnknownLabelIgnored(t *testing.T) {
	aggregate := CalculateAggregateRankings([]Stage2Result{
		{Valid: true, ParsedRanking: []string{"Response Z", "Response A"}},
	}, map[string]string{"Response A": "model-a"})

	require.Len(t, aggregate, 1)
	assert.Equal(t, AggregateRanking{Model: "model-a", AverageRank: 2.0, RankingsCount: 1}, aggregate[0])
}

func TestCouncil_BudgetAbortsRun(t *testing.T) {
	q := newScriptedQuerier()
	q.script("model-a", okResultNoUsage("answer without usage"))
	ledger := &memoryLedger{}
	r := newCouncilRunner(q, ledger, newMemoryCache(), CouncilOptions{
		CouncilModels: []string{"model-a", "model-b"},
		Budget:        &Budget{MaxTotalTokens: intPtr(1000)},
	})

	_, err := r.Stage1(context.Background(), "q")
	require.True(t, IsBudgetExceeded(err))

	// Sequential fan-out: the second model was never called.
	assert.Empty(t, q.callsFor("model-b"))
}

func TestCouncil_BudgetAbortsBetweenSequentialCalls(t *testing.T) {
	q := newScriptedQuerier()
	q.script("model-a", okResult("answer a"))
	r := newCouncilRunner(q, &memoryLedger{}, newMemoryCache(), CouncilOptions{
		CouncilModels: []string{"model-a", "model-b"},
		Budget:        &Budget{MaxTotalTokens: intPtr(1)},
	})

	_, err := r.Stage1(context.Background(), "q")
	require.True(t, IsBudgetExceeded(err))

	// model-a's 100 recorded tokens crossed the cap, so model-b's call is
	// never issued.
	assert.Len(t, q.callsFor("model-a"), 1)
	assert.Empty(t, q.callsFor("model-b"))
}

func TestCouncil_BudgetAbortsStage2(t *testing.T) {
	q := newScriptedQuerier()
	q.script("judge-1", okResult(judgeJSON))
	r := newCouncilRunner(q, &memoryLedger{}, newMemoryCache(), CouncilOptions{
		CouncilModels: []string{"model-a", "model-b"},
		JudgeModels:   []string{"judge-1", "judge-2"},
		Budget:        &Budget{MaxTotalTokens: intPtr(50)},
	})

	stage1 := []Stage1Result{{Model: "model-a", Response: "a"}, {Model: "model-b", Response: "b"}}
	_, _, _, err := r.Stage2(context.Background(), "q", stage1)
	require.True(t, IsBudgetExceeded(err))

	// The first judge's usage tripped the gate; the second judge is never
	// called.
	assert.Empty(t, q.callsFor("judge-2"))
}
