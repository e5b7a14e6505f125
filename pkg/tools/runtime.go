package tools

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/llmcouncil/councild/ent/run"
	"github.com/llmcouncil/councild/pkg/services"
)

const finalizeTimeout = 5 * time.Second

// Runtime guards tool execution: a concurrency cap, a wall-clock timeout,
// and run finalization when a handler never got to finish. Handlers return
// envelopes, so every guard failure is also an envelope, never a transport
// error.
type Runtime struct {
	handlers *Handlers
	runs     *services.RunService
	sem      chan struct{}
	timeout  time.Duration
}

// NewRuntime builds a runtime with the given concurrency limit and
// per-call timeout.
func NewRuntime(handlers *Handlers, runs *services.RunService, maxConcurrent int, timeout time.Duration) *Runtime {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Runtime{
		handlers: handlers,
		runs:     runs,
		sem:      make(chan struct{}, maxConcurrent),
		timeout:  timeout,
	}
}

// CouncilAsk runs council.ask under the runtime guards.
func (rt *Runtime) CouncilAsk(ctx context.Context, caller Caller, in AskInput) AskOutput {
	return runGuarded(rt, ctx, ToolCouncilAsk,
		func(ctx context.Context, toolCallID string, info *RunInfo) AskOutput {
			return rt.handlers.CouncilAsk(ctx, caller, toolCallID, in, info)
		},
		errorAskOutput,
	)
}

// CouncilPipeline runs council.pipeline under the runtime guards.
func (rt *Runtime) CouncilPipeline(ctx context.Context, caller Caller, in PipelineInput) PipelineOutput {
	return runGuarded(rt, ctx, ToolCouncilPipeline,
		func(ctx context.Context, toolCallID string, info *RunInfo) PipelineOutput {
			return rt.handlers.CouncilPipeline(ctx, caller, toolCallID, in, info)
		},
		errorPipelineOutput,
	)
}

func runGuarded[T any](
	rt *Runtime,
	ctx context.Context,
	name string,
	fn func(ctx context.Context, toolCallID string, info *RunInfo) T,
	errOut func(conversationID, runID uuid.UUID, errs []string) T,
) T {
	toolCallID := uuid.New().String()
	started := time.Now()
	slog.Info("Tool call started", "tool", name, "tool_call_id", toolCallID)

	select {
	case rt.sem <- struct{}{}:
	case <-ctx.Done():
		slog.Warn("Tool call cancelled while queued", "tool", name, "tool_call_id", toolCallID)
		return errOut(uuid.New(), uuid.New(), []string{"cancelled"})
	}
	defer func() { <-rt.sem }()

	callCtx, cancel := context.WithTimeout(ctx, rt.timeout)
	defer cancel()

	info := &RunInfo{}
	results := make(chan T, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Tool call panicked", "tool", name, "tool_call_id", toolCallID, "panic", r)
				results <- finalizeRun(rt, name, toolCallID, info, started, errOut, "internal_error")
			}
		}()
		results <- fn(callCtx, toolCallID, info)
	}()

	select {
	case out := <-results:
		slog.Info("Tool call finished", "tool", name, "tool_call_id", toolCallID)
		return out
	case <-callCtx.Done():
		reason := "timeout"
		if ctx.Err() != nil {
			reason = "cancelled"
		}
		slog.Warn("Tool call aborted", "tool", name, "tool_call_id", toolCallID, "reason", reason)
		return finalizeRun(rt, name, toolCallID, info, started, errOut, reason)
	}
}

// finalizeRun marks an interrupted run failed and builds the degraded
// envelope. Unknown identifiers are replaced with fresh ones so the
// envelope stays well-formed.
func finalizeRun[T any](
	rt *Runtime,
	name, toolCallID string,
	info *RunInfo,
	started time.Time,
	errOut func(conversationID, runID uuid.UUID, errs []string) T,
	reason string,
) T {
	conversationID, runID := info.Snapshot()
	if runID != nil {
		fctx, cancel := context.WithTimeout(context.Background(), finalizeTimeout)
		defer cancel()
		if err := rt.runs.EndRun(fctx, *runID, run.StatusFailed, int(time.Since(started).Milliseconds())); err != nil {
			slog.Error("Failed to finalize run", "tool", name, "tool_call_id", toolCallID, "run_id", *runID, "error", err)
		}
	}
	return errOut(orNew(conversationID), orNew(runID), []string{reason})
}

func orNew(id *uuid.UUID) uuid.UUID {
	if id != nil {
		return *id
	}
	return uuid.New()
}
