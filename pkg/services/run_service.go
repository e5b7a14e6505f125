package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/llmcouncil/councild/ent"
	"github.com/llmcouncil/councild/ent/run"
)

// maxStepStringLen bounds every string persisted inside a run step payload
// so a single giant model response cannot bloat the ledger.
const maxStepStringLen = 20000

const truncationSuffix = "\n...[truncated]..."

// RunService manages the run ledger: one Run per tool invocation, one
// RunStep per agent attempt.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// CreateRun records a new running run. Callers commit this in its own unit
// of work before any model call so a later timeout can still find and fail
// the run.
func (s *RunService) CreateRun(ctx context.Context, conversationID uuid.UUID, toolName string, input map[string]interface{}, ownerKeyID *uuid.UUID) (*ent.Run, error) {
	if toolName == "" {
		return nil, NewValidationError("tool_name", "required")
	}

	builder := s.client.Run.Create().
		SetConversationID(conversationID).
		SetToolName(toolName).
		SetInputJSON(TruncateStrings(input)).
		SetStatus(run.StatusRunning)
	if ownerKeyID != nil {
		builder.SetOwnerKeyID(*ownerKeyID)
	}

	r, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	return r, nil
}

// AddStepParams carries one run step observation.
type AddStepParams struct {
	RunID     uuid.UUID
	StageName string
	StepType  string
	AgentRole string
	Model     string
	Attempt   int
	IsRetry   bool
	Output    map[string]interface{}
	LatencyMS *int
	ErrorText *string
}

// AddStep appends a step to the run. String values in the output payload
// are truncated to the ledger bound.
func (s *RunService) AddStep(ctx context.Context, p AddStepParams) (*ent.RunStep, error) {
	if p.StepType == "" {
		return nil, NewValidationError("step_type", "required")
	}

	output := p.Output
	if output == nil {
		output = map[string]interface{}{}
	}

	builder := s.client.RunStep.Create().
		SetRunID(p.RunID).
		SetStageName(p.StageName).
		SetStepType(p.StepType).
		SetAgentRole(p.AgentRole).
		SetModel(p.Model).
		SetAttempt(p.Attempt).
		SetIsRetry(p.IsRetry).
		SetOutputJSON(truncateMap(output))
	if p.LatencyMS != nil {
		builder.SetLatencyMs(*p.LatencyMS)
	}
	if p.ErrorText != nil {
		builder.SetErrorText(truncateString(*p.ErrorText))
	}

	step, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to add run step: %w", err)
	}
	return step, nil
}

// EndRun transitions a run to a terminal status. The transition happens at
// most once: a run that already ended keeps its first outcome.
func (s *RunService) EndRun(ctx context.Context, runID uuid.UUID, status run.Status, latencyMS int) error {
	if status != run.StatusSucceeded && status != run.StatusFailed {
		return NewValidationError("status", "must be terminal")
	}

	n, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusEQ(run.StatusRunning)).
		SetStatus(status).
		SetEndedAt(time.Now()).
		SetLatencyMs(latencyMS).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to end run: %w", err)
	}
	if n == 0 {
		// Already terminal; first writer wins.
		return nil
	}
	return nil
}

// GetRun fetches a run by id.
func (s *RunService) GetRun(ctx context.Context, runID uuid.UUID) (*ent.Run, error) {
	r, err := s.client.Run.Query().Where(run.IDEQ(runID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: run %s", ErrNotFound, runID)
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return r, nil
}

// TruncateStrings returns a deep copy of value with every string clipped to
// the ledger bound. Maps and slices are walked recursively; other types
// pass through unchanged.
func TruncateStrings(value map[string]interface{}) map[string]interface{} {
	if value == nil {
		return nil
	}
	return truncateMap(value)
}

func truncateMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = truncateValue(v)
	}
	return out
}

func truncateValue(v interface{}) interface{} {
	switch t := v.(type) {
	case string:
		return truncateString(t)
	case map[string]interface{}:
		return truncateMap(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = truncateValue(item)
		}
		return out
	case []string:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = truncateString(item)
		}
		return out
	default:
		return v
	}
}

func truncateString(s string) string {
	if len(s) <= maxStepStringLen {
		return s
	}
	return s[:maxStepStringLen-len(truncationSuffix)] + truncationSuffix
}
