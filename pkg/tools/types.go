// Package tools implements the two public tools, council.ask and
// council.pipeline, on top of the engines: input validation, conversation
// selection, the run ledger, and the strict-JSON output envelopes.
package tools

import (
	"errors"
	"math"

	"github.com/google/uuid"

	"github.com/llmcouncil/councild/pkg/config"
	"github.com/llmcouncil/councild/pkg/engine"
)

// Tool names as exposed over HTTP.
const (
	ToolCouncilAsk      = "council.ask"
	ToolCouncilPipeline = "council.pipeline"
)

// Input rejection reasons. Both surface in the degraded envelope rather
// than as transport errors.
var (
	ErrInvalidInput  = errors.New("invalid_input")
	ErrInputTooLarge = errors.New("input_too_large")
)

// BudgetInput caps one run's upstream spend.
type BudgetInput struct {
	MaxTotalCostUSD *float64 `json:"max_total_cost_usd"`
	MaxTotalTokens  *int     `json:"max_total_tokens"`
}

func (b *BudgetInput) toEngine() *engine.Budget {
	if b == nil {
		return nil
	}
	return &engine.Budget{
		MaxTotalCostUSD: b.MaxTotalCostUSD,
		MaxTotalTokens:  b.MaxTotalTokens,
	}
}

func (b *BudgetInput) asMap() map[string]interface{} {
	if b == nil {
		return nil
	}
	m := map[string]interface{}{}
	if b.MaxTotalCostUSD != nil {
		m["max_total_cost_usd"] = *b.MaxTotalCostUSD
	}
	if b.MaxTotalTokens != nil {
		m["max_total_tokens"] = *b.MaxTotalTokens
	}
	return m
}

// RepoFileInput is one caller-supplied repository file.
type RepoFileInput struct {
	Path    string `json:"path"`
	Content string `json:"content,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// RepoContextInput is the optional repository excerpt for pipeline tasks.
type RepoContextInput struct {
	Files []RepoFileInput `json:"files"`
}

func (rc *RepoContextInput) toEngine() *engine.RepoContext {
	if rc == nil {
		return nil
	}
	out := &engine.RepoContext{}
	for _, f := range rc.Files {
		out.Files = append(out.Files, engine.RepoFile{
			Path:    f.Path,
			Content: f.Content,
			Summary: f.Summary,
		})
	}
	return out
}

func (rc *RepoContextInput) validate(limits config.LimitsConfig) error {
	if rc == nil {
		return nil
	}
	if len(rc.Files) > limits.MaxRepoFiles {
		return ErrInputTooLarge
	}
	total := 0
	for _, f := range rc.Files {
		if f.Path == "" {
			return ErrInvalidInput
		}
		if len(f.Path) > limits.MaxPathChars {
			return ErrInputTooLarge
		}
		total += len(f.Content) + len(f.Summary)
		if total > limits.MaxRepoTotalChars {
			return ErrInputTooLarge
		}
	}
	return nil
}

// AskInput is the council.ask request body.
type AskInput struct {
	Prompt         string       `json:"prompt"`
	ConversationID *string      `json:"conversation_id,omitempty"`
	Mode           string       `json:"mode,omitempty"`
	Budget         *BudgetInput `json:"budget,omitempty"`
}

// Validate checks the input against the configured limits.
func (in *AskInput) Validate(limits config.LimitsConfig) error {
	if in.Prompt == "" {
		return ErrInvalidInput
	}
	if len(in.Prompt) > limits.MaxPromptChars {
		return ErrInputTooLarge
	}
	return nil
}

// PipelineInput is the council.pipeline request body.
type PipelineInput struct {
	TaskDescription string            `json:"task_description"`
	RepoContext     *RepoContextInput `json:"repo_context,omitempty"`
	ConversationID  *string           `json:"conversation_id,omitempty"`
	Mode            string            `json:"mode,omitempty"`
	MaxIterations   *int              `json:"max_iterations,omitempty"`
	Budget          *BudgetInput      `json:"budget,omitempty"`
}

// Validate checks the input against the configured limits.
func (in *PipelineInput) Validate(limits config.LimitsConfig) error {
	if in.TaskDescription == "" {
		return ErrInvalidInput
	}
	if len(in.TaskDescription) > limits.MaxTaskChars {
		return ErrInputTooLarge
	}
	return in.RepoContext.validate(limits)
}

// ClampedIterations bounds the gate loop: absent defaults to 2, anything
// below 1 clamps to 1, hard cap 4.
func (in *PipelineInput) ClampedIterations() int {
	if in.MaxIterations == nil {
		return 2
	}
	switch v := *in.MaxIterations; {
	case v < 1:
		return 1
	case v > 4:
		return 4
	default:
		return v
	}
}

// UsageByModel is the per-model usage rollup in a tool response.
type UsageByModel struct {
	Model            string   `json:"model"`
	Attempts         int      `json:"attempts"`
	PromptTokens     *int     `json:"prompt_tokens"`
	CompletionTokens *int     `json:"completion_tokens"`
	TotalTokens      *int     `json:"total_tokens"`
	CostEstimated    *float64 `json:"cost_estimated"`
}

// UsageSummary totals a run's upstream spend. Totals stay nil when no
// event reported the corresponding field.
type UsageSummary struct {
	TotalPromptTokens     *int           `json:"total_prompt_tokens"`
	TotalCompletionTokens *int           `json:"total_completion_tokens"`
	TotalTokens           *int           `json:"total_tokens"`
	TotalCostEstimated    *float64       `json:"total_cost_estimated"`
	ByModel               []UsageByModel `json:"by_model"`
}

func emptyUsageSummary() UsageSummary {
	return UsageSummary{ByModel: []UsageByModel{}}
}

// AskMetadata carries the judge de-anonymization map and the aggregate
// ranking table.
type AskMetadata struct {
	LabelToModel      map[string]string         `json:"label_to_model"`
	AggregateRankings []engine.AggregateRanking `json:"aggregate_rankings"`
}

func emptyAskMetadata() AskMetadata {
	return AskMetadata{
		LabelToModel:      map[string]string{},
		AggregateRankings: []engine.AggregateRanking{},
	}
}

// AskOutput is the council.ask response envelope. It is always populated,
// including on degraded runs.
type AskOutput struct {
	FinalAnswer    string       `json:"final_answer"`
	ConversationID string       `json:"conversation_id"`
	RunID          string       `json:"run_id"`
	Metadata       AskMetadata  `json:"metadata"`
	UsageSummary   UsageSummary `json:"usage_summary"`
	Degraded       bool         `json:"degraded"`
	Errors         []string     `json:"errors"`
}

// AgentOutputs collects each pipeline agent's parsed output, nil where the
// agent did not run or failed to produce valid JSON.
type AgentOutputs struct {
	Leader      *engine.ScopeContract     `json:"leader"`
	Reviewer    *engine.ReviewOutput      `json:"reviewer"`
	Security    *engine.SecurityOutput    `json:"security"`
	TestWriter  *engine.TestPlanOutput    `json:"test_writer"`
	Implementer *engine.CodexPromptOutput `json:"implementer"`
	Gate        *engine.GateOutput        `json:"gate"`
}

// PipelineOutput is the council.pipeline response envelope.
type PipelineOutput struct {
	RunID            string                `json:"run_id"`
	ConversationID   string                `json:"conversation_id"`
	ScopeContract    *engine.ScopeContract `json:"scope_contract"`
	AgentOutputs     AgentOutputs          `json:"agent_outputs"`
	FinalCodexPrompt *string               `json:"final_codex_prompt"`
	GateVerdict      string                `json:"gate_verdict"`
	Degraded         bool                  `json:"degraded"`
	Errors           []string              `json:"errors"`
	UsageSummary     UsageSummary          `json:"usage_summary"`
}

// Caller is the resolved identity of the requester. A nil OwnerKeyID means
// the no-auth development mode.
type Caller struct {
	OwnerKeyID    *uuid.UUID
	AccountKeyIDs []uuid.UUID
	HasAPIKey     bool
}

func errorAskOutput(conversationID, runID uuid.UUID, errs []string) AskOutput {
	return AskOutput{
		FinalAnswer:    "",
		ConversationID: conversationID.String(),
		RunID:          runID.String(),
		Metadata:       emptyAskMetadata(),
		UsageSummary:   emptyUsageSummary(),
		Degraded:       true,
		Errors:         errs,
	}
}

func errorPipelineOutput(conversationID, runID uuid.UUID, errs []string) PipelineOutput {
	return PipelineOutput{
		RunID:          runID.String(),
		ConversationID: conversationID.String(),
		GateVerdict:    "FAIL",
		Degraded:       true,
		Errors:         errs,
		UsageSummary:   emptyUsageSummary(),
	}
}

func round8(v float64) float64 {
	return math.Round(v*1e8) / 1e8
}
