package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validGateJSON = `{"verdict": "PASS", "must_fix": [], "acceptance_criteria_met": [], "tests_required": false}`

func TestCallJSONRole_ValidFirstAttempt(t *testing.T) {
	q := newScriptedQuerier()
	q.script("m", okResult(validGateJSON))
	ledger := &memoryLedger{}
	gate := newBudgetGate(nil, ledger)

	call, err := callJSONRole(context.Background(), q, ledger, gate, 0,
		"gate", "m", "decide", `{"verdict": "PASS"}`, parseGateOutput)
	require.NoError(t, err)

	require.NotNil(t, call.Parsed)
	assert.Equal(t, "PASS", call.Parsed.Verdict)
	assert.Nil(t, call.ValidationError)
	assert.True(t, call.OKResponse)

	require.Len(t, ledger.usage, 1)
	assert.Equal(t, 0, ledger.usage[0].Attempt)

	steps := ledger.stepsFor("gate")
	require.Len(t, steps, 1)
	assert.Equal(t, "pipeline", steps[0].StageName)
	assert.Equal(t, "pipeline_step", steps[0].StepType)
	assert.False(t, steps[0].IsRetry)
	assert.Contains(t, steps[0].Output, "parsed_json")
}

func TestCallJSONRole_CorrectionRetrySucceeds(t *testing.T) {
	q := newScriptedQuerier()
	q.script("m", okResult("not json at all"), okResult(validGateJSON))
	ledger := &memoryLedger{}
	gate := newBudgetGate(nil, ledger)

	call, err := callJSONRole(context.Background(), q, ledger, gate, 0,
		"gate", "m", "decide", `{"verdict": "PASS"}`, parseGateOutput)
	require.NoError(t, err)
	require.NotNil(t, call.Parsed)

	calls := q.callsFor("m")
	require.Len(t, calls, 2)
	assert.Equal(t, "decide", calls[0].prompt)
	assert.Contains(t, calls[1].prompt, "Your previous output was invalid.")
	assert.Contains(t, calls[1].prompt, `{"verdict": "PASS"}`)
	assert.Contains(t, calls[1].prompt, "not json at all")

	// Both attempts share one call ID.
	require.Len(t, ledger.usage, 2)
	assert.Equal(t, ledger.usage[0].CallID, ledger.usage[1].CallID)
	assert.Equal(t, 0, ledger.usage[0].Attempt)
	assert.Equal(t, 1, ledger.usage[1].Attempt)

	steps := ledger.stepsFor("gate")
	require.Len(t, steps, 2)
	assert.False(t, steps[0].IsRetry)
	assert.Contains(t, steps[0].Output, "raw_text")
	assert.True(t, steps[1].IsRetry)
	assert.Contains(t, steps[1].Output, "parsed_json")
}

func TestCallJSONRole_BothAttemptsInvalid(t *testing.T) {
	q := newScriptedQuerier()
	q.script("m", okResult("nope"), okResult("still nope"))
	ledger := &memoryLedger{}
	gate := newBudgetGate(nil, ledger)

	call, err := callJSONRole(context.Background(), q, ledger, gate, 0,
		"gate", "m", "decide", "{}", parseGateOutput)
	require.NoError(t, err)

	assert.Nil(t, call.Parsed)
	assert.Equal(t, "still nope", call.RawText)
	require.NotNil(t, call.ValidationError)
	assert.True(t, call.OKResponse)
	assert.Len(t, ledger.usage, 2)
}

func TestCallJSONRole_SchemaRejection(t *testing.T) {
	q := newScriptedQuerier()
	// Parses as JSON but fails schema validation, twice.
	bad := `{"verdict": "MAYBE", "tests_required": false}`
	q.script("m", okResult(bad), okResult(bad))
	ledger := &memoryLedger{}
	gate := newBudgetGate(nil, ledger)

	call, err := callJSONRole(context.Background(), q, ledger, gate, 0,
		"gate", "m", "decide", "{}", parseGateOutput)
	require.NoError(t, err)

	assert.Nil(t, call.Parsed)
	require.NotNil(t, call.ValidationError)
	assert.Contains(t, *call.ValidationError, "validation")
}

func TestCallJSONRole_UpstreamFailureRetriesWithEmptyEcho(t *testing.T) {
	q := newScriptedQuerier()
	q.script("m", errResult("upstream error (status 500)", 500), okResult(validGateJSON))
	ledger := &memoryLedger{}
	gate := newBudgetGate(nil, ledger)

	call, err := callJSONRole(context.Background(), q, ledger, gate, 0,
		"gate", "m", "decide", "{}", parseGateOutput)
	require.NoError(t, err)
	require.NotNil(t, call.Parsed)

	steps := ledger.stepsFor("gate")
	require.Len(t, steps, 2)
	// The upstream error wins over the parse error in the step record.
	require.NotNil(t, steps[0].ErrorText)
	assert.Equal(t, "upstream error (status 500)", *steps[0].ErrorText)
}

func TestCallJSONRole_BudgetExceededAborts(t *testing.T) {
	q := newScriptedQuerier()
	q.script("m", okResultNoUsage("nope"), okResult(validGateJSON))
	ledger := &memoryLedger{}
	gate := newBudgetGate(&Budget{MaxTotalTokens: intPtr(10)}, ledger)

	_, err := callJSONRole(context.Background(), q, ledger, gate, 0,
		"gate", "m", "decide", "{}", parseGateOutput)
	require.True(t, IsBudgetExceeded(err))

	// The aborting attempt was still recorded before the gate fired.
	assert.Len(t, ledger.usage, 1)
	assert.Len(t, ledger.stepsFor("gate"), 1)
}

func TestCallJSONRole_CorrectionEchoTruncated(t *testing.T) {
	q := newScriptedQuerier()
	long := strings.Repeat("x", maxCorrectionEchoChars+500)
	q.script("m", okResult(long), okResult(validGateJSON))
	ledger := &memoryLedger{}
	gate := newBudgetGate(nil, ledger)

	_, err := callJSONRole(context.Background(), q, ledger, gate, 0,
		"gate", "m", "decide", "{}", parseGateOutput)
	require.NoError(t, err)

	calls := q.callsFor("m")
	require.Len(t, calls, 2)
	assert.NotContains(t, calls[1].prompt, long)
	assert.Contains(t, calls[1].prompt, strings.Repeat("x", maxCorrectionEchoChars))
}
