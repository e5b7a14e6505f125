package tools

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/llmcouncil/councild/pkg/engine"
	"github.com/llmcouncil/councild/pkg/services"
)

// runLedger binds the run and usage services to one run for the engines.
// The mutex serializes writes so parallel fan-out goroutines never
// interleave ledger statements.
type runLedger struct {
	mu         sync.Mutex
	runs       *services.RunService
	usage      *services.UsageService
	runID      uuid.UUID
	ownerKeyID *uuid.UUID
}

var _ engine.Ledger = (*runLedger)(nil)

func newRunLedger(runs *services.RunService, usage *services.UsageService, runID uuid.UUID, ownerKeyID *uuid.UUID) *runLedger {
	return &runLedger{runs: runs, usage: usage, runID: runID, ownerKeyID: ownerKeyID}
}

func (l *runLedger) RecordUsage(ctx context.Context, rec engine.UsageRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, err := l.usage.RecordUsage(ctx, services.RecordUsageParams{
		RunID:      l.runID,
		OwnerKeyID: l.ownerKeyID,
		Model:      rec.Model,
		CallID:     rec.CallID,
		Attempt:    rec.Attempt,
		Result:     rec.Result,
	})
	return err
}

func (l *runLedger) AddStep(ctx context.Context, rec engine.StepRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, err := l.runs.AddStep(ctx, services.AddStepParams{
		RunID:     l.runID,
		StageName: rec.StageName,
		StepType:  rec.StepType,
		AgentRole: rec.AgentRole,
		Model:     rec.Model,
		Attempt:   rec.Attempt,
		IsRetry:   rec.IsRetry,
		Output:    rec.Output,
		LatencyMS: rec.LatencyMS,
		ErrorText: rec.ErrorText,
	})
	return err
}

func (l *runLedger) Totals(ctx context.Context) (engine.UsageTotals, error) {
	totals, err := l.usage.RunTotals(ctx, l.runID)
	if err != nil {
		return engine.UsageTotals{}, err
	}
	return engine.UsageTotals{
		TotalTokens:   totals.TotalTokens,
		TokensMissing: totals.TokensMissing,
		CostUSD:       totals.CostUSD,
		CostMissing:   totals.CostMissing,
		Events:        totals.Events,
	}, nil
}

// buildUsageSummary rolls a run's usage events into the response shape.
func buildUsageSummary(ctx context.Context, usage *services.UsageService, runID uuid.UUID) (UsageSummary, error) {
	models, err := usage.Summary(ctx, runID)
	if err != nil {
		return emptyUsageSummary(), err
	}

	summary := emptyUsageSummary()
	for _, m := range models {
		row := UsageByModel{
			Model:            m.Model,
			Attempts:         m.Calls,
			PromptTokens:     m.PromptTokens,
			CompletionTokens: m.CompletionTokens,
			TotalTokens:      m.TotalTokens,
		}
		if m.CostUSD != nil {
			cost := round8(*m.CostUSD)
			row.CostEstimated = &cost
		}
		summary.ByModel = append(summary.ByModel, row)

		addTokens(&summary.TotalPromptTokens, m.PromptTokens)
		addTokens(&summary.TotalCompletionTokens, m.CompletionTokens)
		addTokens(&summary.TotalTokens, m.TotalTokens)
		if m.CostUSD != nil {
			if summary.TotalCostEstimated == nil {
				summary.TotalCostEstimated = new(float64)
			}
			*summary.TotalCostEstimated += *m.CostUSD
		}
	}
	if summary.TotalCostEstimated != nil {
		rounded := round8(*summary.TotalCostEstimated)
		summary.TotalCostEstimated = &rounded
	}
	return summary, nil
}

func addTokens(acc **int, v *int) {
	if v == nil {
		return
	}
	if *acc == nil {
		*acc = new(int)
	}
	**acc += *v
}
