package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	scopeJSON = `{
		"task_summary": "add rate limiting to the API",
		"in_scope": ["src/api/middleware.py"],
		"out_of_scope": ["src/db"],
		"acceptance_criteria": ["requests over the limit get 429"],
		"agents_to_invoke": ["reviewer", "security", "test_writer"],
		"tests_policy": {"required": true, "reasons": ["new behavior"]},
		"constraints": [],
		"max_iterations": 2
	}`

	scopeNoTestsJSON = `{
		"task_summary": "rename a constant",
		"in_scope": ["src/api/middleware.py"],
		"agents_to_invoke": ["reviewer", "security", "test_writer"],
		"tests_policy": {"required": false, "reasons": []}
	}`

	reviewPassJSON = `{"verdict": "PASS", "issues": [], "missed_requirements": [], "risks": [], "tests_recommended": []}`

	securityPassJSON = `{"verdict": "PASS", "threats": [], "required_security_controls": [], "tests_required": []}`

	testPlanJSON = `{
		"tests_to_add": [{"type": "unit", "target": "middleware", "files": ["tests/test_middleware.py"], "cases": ["limit hit returns 429"]}],
		"commands": ["pytest"],
		"notes": []
	}`

	implementerJSON = `{
		"final_codex_prompt": "Add a fixed-window limiter to the middleware.",
		"patch_scope": ["src/api/middleware.py"],
		"do_not_change": ["src/db"],
		"run_commands": ["pytest"],
		"rollback_plan": ["revert the commit"]
	}`

	implementerOutOfScopeJSON = `{
		"final_codex_prompt": "Add a limiter and touch the models.",
		"patch_scope": ["src/api/middleware.py", "src/db/models.py"],
		"do_not_change": [],
		"run_commands": [],
		"rollback_plan": []
	}`

	gatePassJSON = `{"verdict": "PASS", "must_fix": [], "acceptance_criteria_met": [{"criterion": "requests over the limit get 429", "met": true}], "tests_required": true}`

	gateFailJSON = `{
		"verdict": "FAIL",
		"must_fix": [{"severity": "high", "file": "src/api/middleware.py", "issue": "limiter never resets", "suggested_fix": "reset the window"}],
		"acceptance_criteria_met": [{"criterion": "requests over the limit get 429", "met": false}],
		"tests_required": true
	}`
)

func testPipelineModels() PipelineModels {
	return PipelineModels{
		Leader:      "leader-m",
		Reviewer:    "reviewer-m",
		Security:    "security-m",
		TestWriter:  "test-writer-m",
		Implementer: "implementer-m",
		Gate:        "gate-m",
	}
}

func TestPipeline_PassFirstIteration(t *testing.T) {
	q := newScriptedQuerier()
	q.script("leader-m", okResult(scopeJSON))
	q.script("reviewer-m", okResult(reviewPassJSON))
	q.script("security-m", okResult(securityPassJSON))
	q.script("test-writer-m", okResult(testPlanJSON))
	q.script("implementer-m", okResult(implementerJSON))
	q.script("gate-m", okResult(gatePassJSON))
	ledger := &memoryLedger{}
	r := NewPipelineRunner(q, ledger, PipelineOptions{Models: testPipelineModels(), MaxIterations: 2})

	result, err := r.Run(context.Background(), "add rate limiting", nil)
	require.NoError(t, err)

	assert.Equal(t, "PASS", result.GateVerdict)
	require.NotNil(t, result.FinalCodexPrompt)
	assert.Equal(t, "Add a fixed-window limiter to the middleware.", *result.FinalCodexPrompt)
	assert.False(t, result.Degraded)
	assert.Empty(t, result.Errors)

	require.NotNil(t, result.ScopeContract)
	assert.Equal(t, 2, result.ScopeContract.MaxIterations)
	assert.NotNil(t, result.Reviewer)
	assert.NotNil(t, result.Security)
	assert.NotNil(t, result.TestWriter)
	assert.NotNil(t, result.Gate)

	// Every role ran exactly once.
	for _, m := range []string{"leader-m", "reviewer-m", "security-m", "test-writer-m", "implementer-m", "gate-m"} {
		assert.Len(t, q.callsFor(m), 1, m)
	}
}

func TestPipeline_InvalidLeaderFailsRun(t *testing.T) {
	q := newScriptedQuerier()
	q.script("leader-m", okResult("not json"), okResult("still not json"))
	r := NewPipelineRunner(q, &memoryLedger{}, PipelineOptions{Models: testPipelineModels(), MaxIterations: 2})

	result, err := r.Run(context.Background(), "task", nil)
	require.NoError(t, err)

	assert.Equal(t, "FAIL", result.GateVerdict)
	assert.True(t, result.Degraded)
	assert.Equal(t, []string{"invalid_json:leader"}, result.Errors)
	assert.Nil(t, result.ScopeContract)

	// Nothing downstream ran.
	assert.Empty(t, q.callsFor("implementer-m"))
	assert.Empty(t, q.callsFor("gate-m"))
}

func TestPipeline_TestWriterSkippedWhenNoTestsNeeded(t *testing.T) {
	q := newScriptedQuerier()
	q.script("leader-m", okResult(scopeNoTestsJSON))
	q.script("reviewer-m", okResult(reviewPassJSON))
	q.script("security-m", okResult(securityPassJSON))
	q.script("implementer-m", okResult(implementerJSON))
	q.script("gate-m", okResult(gatePassJSON))
	r := NewPipelineRunner(q, &memoryLedger{}, PipelineOptions{Models: testPipelineModels(), MaxIterations: 2})

	result, err := r.Run(context.Background(), "rename", nil)
	require.NoError(t, err)

	assert.Equal(t, "PASS", result.GateVerdict)
	assert.Nil(t, result.TestWriter)
	assert.Empty(t, q.callsFor("test-writer-m"))
}

func TestPipeline_ReviewerTestsRecommendationForcesTestWriter(t *testing.T) {
	q := newScriptedQuerier()
	q.script("leader-m", okResult(scopeNoTestsJSON))
	q.script("reviewer-m", okResult(`{"verdict": "PASS", "tests_recommended": ["cover the rename"]}`))
	q.script("security-m", okResult(securityPassJSON))
	q.script("test-writer-m", okResult(testPlanJSON))
	q.script("implementer-m", okResult(implementerJSON))
	q.script("gate-m", okResult(gatePassJSON))
	r := NewPipelineRunner(q, &memoryLedger{}, PipelineOptions{Models: testPipelineModels(), MaxIterations: 2})

	result, err := r.Run(context.Background(), "rename", nil)
	require.NoError(t, err)

	assert.NotNil(t, result.TestWriter)
	assert.Len(t, q.callsFor("test-writer-m"), 1)
}

func TestPipeline_InvalidReviewerDegradesButContinues(t *testing.T) {
	q := newScriptedQuerier()
	q.script("leader-m", okResult(scopeJSON))
	q.script("reviewer-m", okResult("bad"), okResult("bad again"))
	q.script("security-m", okResult(securityPassJSON))
	q.script("test-writer-m", okResult(testPlanJSON))
	q.script("implementer-m", okResult(implementerJSON))
	q.script("gate-m", okResult(gatePassJSON))
	r := NewPipelineRunner(q, &memoryLedger{}, PipelineOptions{Models: testPipelineModels(), MaxIterations: 2})

	result, err := r.Run(context.Background(), "task", nil)
	require.NoError(t, err)

	assert.Equal(t, "PASS", result.GateVerdict)
	assert.True(t, result.Degraded)
	assert.Contains(t, result.Errors, "invalid_json:reviewer")
	assert.Nil(t, result.Reviewer)
	assert.NotNil(t, result.Security)
}

func TestPipeline_InvalidImplementerFailsRun(t *testing.T) {
	q := newScriptedQuerier()
	q.script("leader-m", okResult(scopeJSON))
	q.script("reviewer-m", okResult(reviewPassJSON))
	q.script("security-m", okResult(securityPassJSON))
	q.script("test-writer-m", okResult(testPlanJSON))
	q.script("implementer-m", okResult("bad"), okResult("bad again"))
	r := NewPipelineRunner(q, &memoryLedger{}, PipelineOptions{Models: testPipelineModels(), MaxIterations: 2})

	result, err := r.Run(context.Background(), "task", nil)
	require.NoError(t, err)

	assert.Equal(t, "FAIL", result.GateVerdict)
	assert.True(t, result.Degraded)
	assert.Contains(t, result.Errors, "invalid_json:implementer")
	assert.Nil(t, result.Implementer)
	assert.Empty(t, q.callsFor("gate-m"))
}

func TestPipeline_ScopeViolationSynthesizesGate(t *testing.T) {
	q := newScriptedQuerier()
	q.script("leader-m", okResult(scopeJSON))
	q.script("reviewer-m", okResult(reviewPassJSON))
	q.script("security-m", okResult(securityPassJSON))
	q.script("test-writer-m", okResult(testPlanJSON))
	q.script("implementer-m", okResult(implementerOutOfScopeJSON))
	ledger := &memoryLedger{}
	r := NewPipelineRunner(q, ledger, PipelineOptions{Models: testPipelineModels(), MaxIterations: 2})

	result, err := r.Run(context.Background(), "task", nil)
	require.NoError(t, err)

	assert.Equal(t, "FAIL", result.GateVerdict)
	assert.True(t, result.Degraded)
	assert.Contains(t, result.Errors, "scope_violation")
	require.NotNil(t, result.Gate)
	require.Len(t, result.Gate.MustFix, 1)
	assert.Equal(t, "src/db/models.py", result.Gate.MustFix[0].File)

	// The gate model never ran; the verdict was synthesized and logged.
	assert.Empty(t, q.callsFor("gate-m"))
	gateSteps := ledger.stepsFor("gate")
	require.Len(t, gateSteps, 1)
	assert.Equal(t, "deterministic", gateSteps[0].Model)
	require.NotNil(t, gateSteps[0].ErrorText)
	assert.Equal(t, "scope_violation", *gateSteps[0].ErrorText)
}

func TestPipeline_RevisionAfterGateFail(t *testing.T) {
	q := newScriptedQuerier()
	// The leader model writes the scope contract and later the revision.
	q.script("leader-m", okResult(scopeJSON), okResult(implementerJSON))
	q.script("reviewer-m", okResult(reviewPassJSON))
	q.script("security-m", okResult(securityPassJSON))
	q.script("test-writer-m", okResult(testPlanJSON))
	q.script("implementer-m", okResult(implementerJSON))
	q.script("gate-m", okResult(gateFailJSON), okResult(gatePassJSON))
	r := NewPipelineRunner(q, &memoryLedger{}, PipelineOptions{Models: testPipelineModels(), MaxIterations: 2})

	result, err := r.Run(context.Background(), "task", nil)
	require.NoError(t, err)

	assert.Equal(t, "PASS", result.GateVerdict)
	assert.NotNil(t, result.FinalCodexPrompt)
	assert.Empty(t, result.Errors)

	leaderCalls := q.callsFor("leader-m")
	require.Len(t, leaderCalls, 2)
	assert.Contains(t, leaderCalls[1].prompt, "limiter never resets")
	assert.Len(t, q.callsFor("gate-m"), 2)
}

func TestPipeline_GateFailAtLastIteration(t *testing.T) {
	q := newScriptedQuerier()
	q.script("leader-m", okResult(scopeJSON))
	q.script("reviewer-m", okResult(reviewPassJSON))
	q.script("security-m", okResult(securityPassJSON))
	q.script("test-writer-m", okResult(testPlanJSON))
	q.script("implementer-m", okResult(implementerJSON))
	q.script("gate-m", okResult(gateFailJSON))
	r := NewPipelineRunner(q, &memoryLedger{}, PipelineOptions{Models: testPipelineModels(), MaxIterations: 1})

	result, err := r.Run(context.Background(), "task", nil)
	require.NoError(t, err)

	assert.Equal(t, "FAIL", result.GateVerdict)
	assert.Nil(t, result.FinalCodexPrompt)
	assert.False(t, result.Degraded)
	assert.Empty(t, result.Errors)
	require.NotNil(t, result.Gate)
	assert.Equal(t, "FAIL", result.Gate.Verdict)

	// One gate check and no revision at max_iterations 1.
	assert.Len(t, q.callsFor("gate-m"), 1)
	assert.Len(t, q.callsFor("leader-m"), 1)
}

func TestPipeline_AgentsNotInvokedAreSkipped(t *testing.T) {
	scope := `{
		"task_summary": "tiny fix",
		"in_scope": ["src/api/middleware.py"],
		"agents_to_invoke": [],
		"tests_policy": {"required": false, "reasons": []}
	}`
	q := newScriptedQuerier()
	q.script("leader-m", okResult(scope))
	q.script("implementer-m", okResult(implementerJSON))
	q.script("gate-m", okResult(gatePassJSON))
	r := NewPipelineRunner(q, &memoryLedger{}, PipelineOptions{Models: testPipelineModels(), MaxIterations: 2})

	result, err := r.Run(context.Background(), "task", nil)
	require.NoError(t, err)

	assert.Equal(t, "PASS", result.GateVerdict)
	assert.Nil(t, result.Reviewer)
	assert.Nil(t, result.Security)
	assert.Empty(t, q.callsFor("reviewer-m"))
	assert.Empty(t, q.callsFor("security-m"))
}

func TestPipeline_BudgetExceededPropagates(t *testing.T) {
	q := newScriptedQuerier()
	q.script("leader-m", okResultNoUsage(scopeJSON))
	r := NewPipelineRunner(q, &memoryLedger{}, PipelineOptions{
		Models:        testPipelineModels(),
		Budget:        &Budget{MaxTotalTokens: intPtr(1000)},
		MaxIterations: 2,
	})

	_, err := r.Run(context.Background(), "task", nil)
	require.True(t, IsBudgetExceeded(err))
	assert.Empty(t, q.callsFor("reviewer-m"))
}
