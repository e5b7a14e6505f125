package tools

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/llmcouncil/councild/ent/run"
	"github.com/llmcouncil/councild/pkg/config"
	"github.com/llmcouncil/councild/pkg/engine"
	"github.com/llmcouncil/councild/pkg/services"
)

// RunInfo lets the runtime finalize a run that timed out or panicked
// after the handler had already created it.
type RunInfo struct {
	mu             sync.Mutex
	runID          *uuid.UUID
	conversationID *uuid.UUID
}

func (ri *RunInfo) set(conversationID, runID uuid.UUID) {
	if ri == nil {
		return
	}
	ri.mu.Lock()
	defer ri.mu.Unlock()
	ri.conversationID = &conversationID
	ri.runID = &runID
}

// Snapshot returns the run identifiers observed so far; nil when the
// handler never got that far.
func (ri *RunInfo) Snapshot() (conversationID, runID *uuid.UUID) {
	if ri == nil {
		return nil, nil
	}
	ri.mu.Lock()
	defer ri.mu.Unlock()
	return ri.conversationID, ri.runID
}

// Handlers implements the tool semantics shared by every transport.
type Handlers struct {
	cfg     *config.Config
	querier engine.Querier
	runs    *services.RunService
	usage   *services.UsageService
	store   services.ConversationStore
	cache   engine.Cache
}

func NewHandlers(
	cfg *config.Config,
	querier engine.Querier,
	runs *services.RunService,
	usage *services.UsageService,
	store services.ConversationStore,
	cache engine.Cache,
) *Handlers {
	return &Handlers{
		cfg:     cfg,
		querier: querier,
		runs:    runs,
		usage:   usage,
		store:   store,
		cache:   cache,
	}
}

// resolveConversation picks or creates the conversation for a tool call.
// firstMessage reports whether the conversation had no messages yet.
func (h *Handlers) resolveConversation(ctx context.Context, caller Caller, requested *string) (cid uuid.UUID, firstMessage bool, errReason string) {
	if requested != nil {
		parsed, err := uuid.Parse(*requested)
		if err != nil {
			return uuid.New(), false, "conversation_not_found"
		}
		detail, err := h.store.Get(ctx, parsed, caller.AccountKeyIDs)
		if err != nil {
			return parsed, false, "conversation_not_found"
		}
		return parsed, len(detail.Messages) == 0, ""
	}

	cid = uuid.New()
	if err := h.store.Ensure(ctx, cid, caller.OwnerKeyID); err != nil {
		slog.Error("Failed to create conversation", "error", err)
		return cid, false, "internal_error"
	}
	return cid, true, ""
}

// CouncilAsk runs the three-stage council and returns the strict envelope.
// It never returns a Go error; every failure degrades the envelope.
func (h *Handlers) CouncilAsk(ctx context.Context, caller Caller, toolCallID string, in AskInput, info *RunInfo) AskOutput {
	if !caller.HasAPIKey && !h.cfg.AllowNoAuth {
		return errorAskOutput(uuid.New(), uuid.New(), []string{"auth_required"})
	}
	if err := in.Validate(h.cfg.Limits); err != nil {
		return errorAskOutput(uuid.New(), uuid.New(), []string{err.Error()})
	}
	mode := config.NormalizeMode(in.Mode)

	cid, firstMessage, reason := h.resolveConversation(ctx, caller, in.ConversationID)
	if reason != "" {
		return errorAskOutput(cid, uuid.New(), []string{reason})
	}

	input := map[string]interface{}{
		"prompt":          in.Prompt,
		"conversation_id": nil,
		"mode":            string(mode),
		"budget":          in.Budget.asMap(),
		"has_api_key":     caller.HasAPIKey,
		"tool_call_id":    toolCallID,
	}
	if in.ConversationID != nil {
		input["conversation_id"] = cid.String()
	}
	if h.cfg.Pricing != nil {
		input["price_book_version"] = h.cfg.Pricing.Version
	}

	started := time.Now()
	r, err := h.runs.CreateRun(ctx, cid, ToolCouncilAsk, input, caller.OwnerKeyID)
	if err != nil {
		slog.Error("Failed to create run", "tool", ToolCouncilAsk, "error", err)
		return errorAskOutput(cid, uuid.New(), []string{"internal_error"})
	}
	runID := r.ID
	info.set(cid, runID)

	budget := in.Budget.toEngine()
	councilModels := h.cfg.ModelsForMode(mode)
	runner := engine.NewCouncilRunner(h.querier, newRunLedger(h.runs, h.usage, runID, caller.OwnerKeyID), h.cache, engine.CouncilOptions{
		CouncilModels: councilModels,
		JudgeModels:   h.cfg.JudgesForMode(mode),
		Chairman:      h.cfg.ChairForMode(mode),
		TitleModel:    h.cfg.Council.TitleModel,
		Budget:        budget,
		Timeout:       h.cfg.Upstream.TimeoutForMode(mode),
	})

	abort := func(err error) AskOutput {
		reason := "internal_error"
		if engine.IsBudgetExceeded(err) {
			reason = "budget_exceeded"
		} else {
			slog.Error("Council run aborted", "run_id", runID, "error", err)
		}
		h.endRun(ctx, runID, run.StatusFailed, started)
		out := errorAskOutput(cid, runID, []string{reason})
		out.UsageSummary = h.usageSummaryOrEmpty(ctx, runID)
		return out
	}

	if err := h.store.AppendMessage(ctx, cid, "user", in.Prompt); err != nil {
		return abort(err)
	}
	if firstMessage {
		title, err := runner.GenerateTitle(ctx, in.Prompt)
		if err != nil {
			return abort(err)
		}
		if err := h.store.SetTitle(ctx, cid, title); err != nil {
			return abort(err)
		}
	}

	var errs []string

	stage1, err := runner.Stage1(ctx, in.Prompt)
	if err != nil {
		return abort(err)
	}
	responded := map[string]bool{}
	for _, r := range stage1 {
		responded[r.Model] = true
	}
	var failed []string
	for _, m := range councilModels {
		if !responded[m] {
			failed = append(failed, m)
		}
	}
	sort.Strings(failed)
	for _, m := range failed {
		errs = append(errs, "stage1_model_failed:"+m)
	}

	var stage3 engine.Stage3Result
	metadata := emptyAskMetadata()
	if len(stage1) == 0 {
		errs = append(errs, "internal_error")
		stage3 = engine.Stage3Result{Model: "error", Response: "All models failed to respond. Please try again."}
	} else {
		stage2, labelToModel, aggregate, err := runner.Stage2(ctx, in.Prompt, stage1)
		if err != nil {
			return abort(err)
		}
		for _, j := range stage2 {
			if !j.Valid {
				errs = append(errs, "stage2_invalid_json:"+j.Model)
			}
		}

		stage3, err = runner.Stage3(ctx, in.Prompt, stage1, stage2)
		if err != nil {
			return abort(err)
		}
		if strings.HasPrefix(stage3.Response, "Error:") {
			errs = append(errs, "chairman_failed")
		}

		metadata = AskMetadata{LabelToModel: labelToModel, AggregateRankings: aggregate}
		if metadata.AggregateRankings == nil {
			metadata.AggregateRankings = []engine.AggregateRanking{}
		}
	}

	if err := h.store.AppendMessage(ctx, cid, "assistant", stage3.Response); err != nil {
		return abort(err)
	}

	status := run.StatusSucceeded
	if len(errs) > 0 {
		status = run.StatusFailed
	}
	h.endRun(ctx, runID, status, started)

	return AskOutput{
		FinalAnswer:    stage3.Response,
		ConversationID: cid.String(),
		RunID:          runID.String(),
		Metadata:       metadata,
		UsageSummary:   h.usageSummaryOrEmpty(ctx, runID),
		Degraded:       len(errs) > 0,
		Errors:         errsOrEmpty(errs),
	}
}

// CouncilPipeline runs the software factory and returns the strict
// envelope. Run status is succeeded only on an explicit gate PASS.
func (h *Handlers) CouncilPipeline(ctx context.Context, caller Caller, toolCallID string, in PipelineInput, info *RunInfo) PipelineOutput {
	if !caller.HasAPIKey && !h.cfg.AllowNoAuth {
		return errorPipelineOutput(uuid.New(), uuid.New(), []string{"auth_required"})
	}
	if err := in.Validate(h.cfg.Limits); err != nil {
		return errorPipelineOutput(uuid.New(), uuid.New(), []string{err.Error()})
	}
	mode := config.NormalizeMode(in.Mode)
	maxIterations := in.ClampedIterations()

	cid, _, reason := h.resolveConversation(ctx, caller, in.ConversationID)
	if reason != "" {
		return errorPipelineOutput(cid, uuid.New(), []string{reason})
	}

	var repoPaths []string
	if in.RepoContext != nil {
		for _, f := range in.RepoContext.Files {
			if len(repoPaths) >= 50 {
				break
			}
			repoPaths = append(repoPaths, f.Path)
		}
	}
	task := in.TaskDescription
	if len(task) > h.cfg.Limits.MaxTaskChars {
		task = task[:h.cfg.Limits.MaxTaskChars]
	}
	input := map[string]interface{}{
		"task_description": task,
		"conversation_id":  nil,
		"mode":             string(mode),
		"max_iterations":   maxIterations,
		"budget":           in.Budget.asMap(),
		"has_repo_context": in.RepoContext != nil && len(in.RepoContext.Files) > 0,
		"repo_file_paths":  repoPaths,
		"has_api_key":      caller.HasAPIKey,
		"tool_call_id":     toolCallID,
	}
	if in.ConversationID != nil {
		input["conversation_id"] = cid.String()
	}
	if h.cfg.Pricing != nil {
		input["price_book_version"] = h.cfg.Pricing.Version
	}

	started := time.Now()
	r, err := h.runs.CreateRun(ctx, cid, ToolCouncilPipeline, input, caller.OwnerKeyID)
	if err != nil {
		slog.Error("Failed to create run", "tool", ToolCouncilPipeline, "error", err)
		return errorPipelineOutput(cid, uuid.New(), []string{"internal_error"})
	}
	runID := r.ID
	info.set(cid, runID)

	runner := engine.NewPipelineRunner(h.querier, newRunLedger(h.runs, h.usage, runID, caller.OwnerKeyID), engine.PipelineOptions{
		Models:        engine.ResolvePipelineModels(h.cfg, mode),
		Budget:        in.Budget.toEngine(),
		MaxIterations: maxIterations,
		Timeout:       h.cfg.Upstream.TimeoutForMode(mode),
	})

	abort := func(err error) PipelineOutput {
		reason := "internal_error"
		if engine.IsBudgetExceeded(err) {
			reason = "budget_exceeded"
		} else {
			slog.Error("Pipeline run aborted", "run_id", runID, "error", err)
		}
		h.endRun(ctx, runID, run.StatusFailed, started)
		out := errorPipelineOutput(cid, runID, []string{reason})
		out.UsageSummary = h.usageSummaryOrEmpty(ctx, runID)
		return out
	}

	if err := h.store.AppendMessage(ctx, cid, "user", in.TaskDescription); err != nil {
		return abort(err)
	}

	result, err := runner.Run(ctx, in.TaskDescription, in.RepoContext.toEngine())
	if err != nil {
		return abort(err)
	}

	status := run.StatusFailed
	if result.GateVerdict == "PASS" {
		status = run.StatusSucceeded
	}
	h.endRun(ctx, runID, status, started)

	if err := h.store.AppendMessage(ctx, cid, "assistant", pipelineSummaryMessage(result)); err != nil {
		slog.Error("Failed to append pipeline summary", "run_id", runID, "error", err)
	}

	return PipelineOutput{
		RunID:          runID.String(),
		ConversationID: cid.String(),
		ScopeContract:  result.ScopeContract,
		AgentOutputs: AgentOutputs{
			Leader:      result.ScopeContract,
			Reviewer:    result.Reviewer,
			Security:    result.Security,
			TestWriter:  result.TestWriter,
			Implementer: result.Implementer,
			Gate:        result.Gate,
		},
		FinalCodexPrompt: result.FinalCodexPrompt,
		GateVerdict:      result.GateVerdict,
		Degraded:         result.Degraded || len(result.Errors) > 0,
		Errors:           errsOrEmpty(result.Errors),
		UsageSummary:     h.usageSummaryOrEmpty(ctx, runID),
	}
}

// pipelineSummaryMessage renders the assistant-visible outcome of a
// pipeline run.
func pipelineSummaryMessage(result *engine.PipelineResult) string {
	if result.GateVerdict == "PASS" && result.FinalCodexPrompt != nil {
		return "PIPELINE PASS\n\n" + *result.FinalCodexPrompt
	}

	msg := "PIPELINE FAIL"
	if result.Gate != nil && len(result.Gate.MustFix) > 0 {
		var lines []string
		for i, m := range result.Gate.MustFix {
			if i >= 20 {
				break
			}
			lines = append(lines, fmt.Sprintf("- %s: %s", m.File, m.Issue))
		}
		msg += "\n\nMust-fix:\n" + strings.Join(lines, "\n")
	}
	return msg
}

func (h *Handlers) endRun(ctx context.Context, runID uuid.UUID, status run.Status, started time.Time) {
	if err := h.runs.EndRun(ctx, runID, status, int(time.Since(started).Milliseconds())); err != nil {
		slog.Error("Failed to end run", "run_id", runID, "error", err)
	}
}

func (h *Handlers) usageSummaryOrEmpty(ctx context.Context, runID uuid.UUID) UsageSummary {
	summary, err := buildUsageSummary(ctx, h.usage, runID)
	if err != nil {
		slog.Error("Failed to build usage summary", "run_id", runID, "error", err)
		return emptyUsageSummary()
	}
	return summary
}

func errsOrEmpty(errs []string) []string {
	if errs == nil {
		return []string{}
	}
	return errs
}
