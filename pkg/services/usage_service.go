package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/llmcouncil/councild/ent"
	"github.com/llmcouncil/councild/ent/usageevent"
	"github.com/llmcouncil/councild/pkg/config"
	"github.com/llmcouncil/councild/pkg/llm"
)

// UsageService records one UsageEvent per upstream call attempt and answers
// the aggregate questions the budget gate and quota checks ask.
type UsageService struct {
	client  *ent.Client
	pricing *config.PriceBook
}

// NewUsageService creates a new UsageService
func NewUsageService(client *ent.Client, pricing *config.PriceBook) *UsageService {
	return &UsageService{client: client, pricing: pricing}
}

// RecordUsageParams identifies one call attempt. Retries of the same
// logical call share CallID and bump Attempt.
type RecordUsageParams struct {
	RunID      uuid.UUID
	OwnerKeyID *uuid.UUID
	Model      string
	CallID     uuid.UUID
	Attempt    int
	Result     llm.Result
}

// RecordUsage persists the usage event for one attempt. Failed attempts are
// recorded too, flagged usage_missing, so the ledger shows every upstream
// touch.
func (s *UsageService) RecordUsage(ctx context.Context, p RecordUsageParams) (*ent.UsageEvent, error) {
	if p.Model == "" {
		return nil, NewValidationError("model", "required")
	}

	res := p.Result
	usageMissing := res.Usage == nil || res.Error != ""

	raw := make(map[string]interface{}, len(res.RawUsage)+2)
	for k, v := range res.RawUsage {
		raw[k] = v
	}
	if s.pricing != nil {
		raw["price_book_version"] = s.pricing.Version
	}
	if res.Error != "" {
		// Already redacted by the upstream client.
		raw["error"] = truncateString(res.Error)
	}

	builder := s.client.UsageEvent.Create().
		SetRunID(p.RunID).
		SetModel(p.Model).
		SetCallID(p.CallID).
		SetAttempt(p.Attempt).
		SetUsageMissing(usageMissing).
		SetRawUsageJSON(raw).
		SetLatencyMs(res.LatencyMS)
	if p.OwnerKeyID != nil {
		builder.SetOwnerKeyID(*p.OwnerKeyID)
	}
	if res.Usage != nil {
		builder.SetNillablePromptTokens(res.Usage.PromptTokens).
			SetNillableCompletionTokens(res.Usage.CompletionTokens).
			SetNillableTotalTokens(res.Usage.TotalTokens)
		prompt := coalesce(res.Usage.PromptTokens)
		completion := coalesce(res.Usage.CompletionTokens)
		if cost := s.pricing.Estimate(p.Model, prompt, completion); cost != nil {
			builder.SetCostEstimated(*cost)
		}
	}

	ev, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record usage event: %w", err)
	}
	return ev, nil
}

// RunUsageTotals is the aggregate view over one run's usage events, used
// for budget enforcement. Enforcement is strict: an event that did not
// report total_tokens (or has no cost estimate) marks the corresponding
// total untrustworthy rather than silently under-counting.
type RunUsageTotals struct {
	TotalTokens   int
	TokensMissing bool
	CostUSD       float64
	CostMissing   bool
	Events        int
}

// RunTotals loads and aggregates every usage event for a run.
func (s *UsageService) RunTotals(ctx context.Context, runID uuid.UUID) (RunUsageTotals, error) {
	events, err := s.client.UsageEvent.Query().
		Where(usageevent.RunIDEQ(runID)).
		All(ctx)
	if err != nil {
		return RunUsageTotals{}, fmt.Errorf("failed to load usage events: %w", err)
	}

	totals := RunUsageTotals{Events: len(events)}
	for _, ev := range events {
		if ev.TotalTokens != nil {
			totals.TotalTokens += *ev.TotalTokens
		} else {
			totals.TokensMissing = true
		}
		if ev.CostEstimated != nil {
			totals.CostUSD += *ev.CostEstimated
		} else {
			totals.CostMissing = true
		}
	}
	return totals, nil
}

// ModelUsage is the per-model rollup reported back to callers. Sums stay
// nil when no event for the model carried the corresponding field.
type ModelUsage struct {
	Model            string   `json:"model"`
	Calls            int      `json:"calls"`
	PromptTokens     *int     `json:"prompt_tokens"`
	CompletionTokens *int     `json:"completion_tokens"`
	TotalTokens      *int     `json:"total_tokens"`
	CostUSD          *float64 `json:"cost_usd"`
}

// Summary groups a run's usage events by model, sorted by model name.
func (s *UsageService) Summary(ctx context.Context, runID uuid.UUID) ([]ModelUsage, error) {
	events, err := s.client.UsageEvent.Query().
		Where(usageevent.RunIDEQ(runID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load usage events: %w", err)
	}

	byModel := map[string]*ModelUsage{}
	for _, ev := range events {
		mu, ok := byModel[ev.Model]
		if !ok {
			mu = &ModelUsage{Model: ev.Model}
			byModel[ev.Model] = mu
		}
		mu.Calls++
		addNillable(&mu.PromptTokens, ev.PromptTokens)
		addNillable(&mu.CompletionTokens, ev.CompletionTokens)
		addNillable(&mu.TotalTokens, ev.TotalTokens)
		if ev.CostEstimated != nil {
			if mu.CostUSD == nil {
				mu.CostUSD = new(float64)
			}
			*mu.CostUSD += *ev.CostEstimated
		}
	}

	models := make([]ModelUsage, 0, len(byModel))
	for _, mu := range byModel {
		models = append(models, *mu)
	}
	sort.Slice(models, func(i, j int) bool { return models[i].Model < models[j].Model })
	return models, nil
}

// RangeModelUsage is one model's rollup over a date range. Unlike the
// per-run Summary, missing fields coalesce to zero here; this feeds the
// account dashboard, not budget enforcement.
type RangeModelUsage struct {
	Model            string  `json:"model"`
	Attempts         int     `json:"attempts"`
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	TotalTokens      int     `json:"total_tokens"`
	CostEstimated    float64 `json:"cost_estimated"`
}

// RangeTotals aggregates one key's usage over [from, to).
type RangeTotals struct {
	TotalPromptTokens     int
	TotalCompletionTokens int
	TotalTokens           int
	TotalCostEstimated    float64
	ByModel               []RangeModelUsage
}

// UsageRange rolls up one key's usage events in [from, to), grouped by
// model and sorted by model name.
func (s *UsageService) UsageRange(ctx context.Context, ownerKeyID uuid.UUID, from, to time.Time) (RangeTotals, error) {
	events, err := s.client.UsageEvent.Query().
		Where(
			usageevent.OwnerKeyIDEQ(ownerKeyID),
			usageevent.CreatedAtGTE(from),
			usageevent.CreatedAtLT(to),
		).
		All(ctx)
	if err != nil {
		return RangeTotals{}, fmt.Errorf("failed to load usage range: %w", err)
	}

	byModel := map[string]*RangeModelUsage{}
	var totals RangeTotals
	for _, ev := range events {
		mu, ok := byModel[ev.Model]
		if !ok {
			mu = &RangeModelUsage{Model: ev.Model}
			byModel[ev.Model] = mu
		}
		mu.Attempts++
		mu.PromptTokens += coalesce(ev.PromptTokens)
		mu.CompletionTokens += coalesce(ev.CompletionTokens)
		mu.TotalTokens += eventTokens(ev)
		if ev.CostEstimated != nil {
			mu.CostEstimated += *ev.CostEstimated
		}

		totals.TotalPromptTokens += coalesce(ev.PromptTokens)
		totals.TotalCompletionTokens += coalesce(ev.CompletionTokens)
		totals.TotalTokens += eventTokens(ev)
		if ev.CostEstimated != nil {
			totals.TotalCostEstimated += *ev.CostEstimated
		}
	}

	totals.ByModel = make([]RangeModelUsage, 0, len(byModel))
	for _, mu := range byModel {
		totals.ByModel = append(totals.ByModel, *mu)
	}
	sort.Slice(totals.ByModel, func(i, j int) bool { return totals.ByModel[i].Model < totals.ByModel[j].Model })
	return totals, nil
}

// MonthlyTokensUsed sums token usage for the given keys over the current
// UTC calendar month.
func (s *UsageService) MonthlyTokensUsed(ctx context.Context, keyIDs []uuid.UUID, now time.Time) (int, error) {
	if len(keyIDs) == 0 {
		return 0, nil
	}
	start, end := monthWindow(now)

	events, err := s.client.UsageEvent.Query().
		Where(
			usageevent.OwnerKeyIDIn(keyIDs...),
			usageevent.CreatedAtGTE(start),
			usageevent.CreatedAtLT(end),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load monthly usage: %w", err)
	}

	total := 0
	for _, ev := range events {
		total += eventTokens(ev)
	}
	return total, nil
}

// monthWindow returns [first of month, first of next month) in UTC.
func monthWindow(now time.Time) (time.Time, time.Time) {
	utc := now.UTC()
	start := time.Date(utc.Year(), utc.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// eventTokens applies coalesce(total, coalesce(prompt,0)+coalesce(completion,0)).
func eventTokens(ev *ent.UsageEvent) int {
	if ev.TotalTokens != nil {
		return *ev.TotalTokens
	}
	return coalesce(ev.PromptTokens) + coalesce(ev.CompletionTokens)
}

func coalesce(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func addNillable(acc **int, v *int) {
	if v == nil {
		return
	}
	if *acc == nil {
		*acc = new(int)
	}
	**acc += *v
}
