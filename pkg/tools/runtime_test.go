package tools

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGuarded_ReturnsHandlerResult(t *testing.T) {
	rt := NewRuntime(nil, nil, 2, time.Second)

	out := runGuarded(rt, context.Background(), "test.tool",
		func(ctx context.Context, toolCallID string, info *RunInfo) AskOutput {
			assert.NotEmpty(t, toolCallID)
			return AskOutput{FinalAnswer: "done"}
		},
		errorAskOutput,
	)

	assert.Equal(t, "done", out.FinalAnswer)
	assert.False(t, out.Degraded)
}

func TestRunGuarded_TimeoutProducesEnvelope(t *testing.T) {
	rt := NewRuntime(nil, nil, 2, 20*time.Millisecond)

	out := runGuarded(rt, context.Background(), "test.tool",
		func(ctx context.Context, toolCallID string, info *RunInfo) AskOutput {
			<-ctx.Done()
			time.Sleep(50 * time.Millisecond)
			return AskOutput{FinalAnswer: "too late"}
		},
		errorAskOutput,
	)

	assert.True(t, out.Degraded)
	assert.Equal(t, []string{"timeout"}, out.Errors)
	assert.NotEmpty(t, out.RunID)
	assert.NotEmpty(t, out.ConversationID)
}

func TestRunGuarded_CancelledProducesEnvelope(t *testing.T) {
	rt := NewRuntime(nil, nil, 2, time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan AskOutput, 1)
	go func() {
		done <- runGuarded(rt, ctx, "test.tool",
			func(ctx context.Context, toolCallID string, info *RunInfo) AskOutput {
				<-ctx.Done()
				time.Sleep(50 * time.Millisecond)
				return AskOutput{FinalAnswer: "too late"}
			},
			errorAskOutput,
		)
	}()

	cancel()
	out := <-done
	assert.True(t, out.Degraded)
	assert.Equal(t, []string{"cancelled"}, out.Errors)
}

func TestRunGuarded_CancelledWhileQueued(t *testing.T) {
	rt := NewRuntime(nil, nil, 1, time.Second)
	// Occupy the only slot.
	rt.sem <- struct{}{}
	defer func() { <-rt.sem }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := runGuarded(rt, ctx, "test.tool",
		func(ctx context.Context, toolCallID string, info *RunInfo) AskOutput {
			t.Fatal("handler must not run")
			return AskOutput{}
		},
		errorAskOutput,
	)

	assert.Equal(t, []string{"cancelled"}, out.Errors)
}

func TestRunGuarded_PanicProducesInternalError(t *testing.T) {
	rt := NewRuntime(nil, nil, 2, time.Second)

	out := runGuarded(rt, context.Background(), "test.tool",
		func(ctx context.Context, toolCallID string, info *RunInfo) AskOutput {
			panic("boom")
		},
		errorAskOutput,
	)

	assert.True(t, out.Degraded)
	assert.Equal(t, []string{"internal_error"}, out.Errors)
}

func TestRunInfoSnapshot(t *testing.T) {
	var info *RunInfo
	conv, run := info.Snapshot()
	assert.Nil(t, conv)
	assert.Nil(t, run)

	info = &RunInfo{}
	cid, rid := mustUUID(t), mustUUID(t)
	info.set(cid, rid)
	conv, run = info.Snapshot()
	require.NotNil(t, conv)
	require.NotNil(t, run)
	assert.Equal(t, cid, *conv)
	assert.Equal(t, rid, *run)
}
