package engine

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/llmcouncil/councild/pkg/llm"
)

// scriptedQuerier plays back canned results per model, in order, and
// records every prompt it saw.
type scriptedQuerier struct {
	mu       sync.Mutex
	scripts  map[string][]llm.Result
	fallback llm.Result
	calls    []recordedQuery
}

type recordedQuery struct {
	model  string
	prompt string
}

func newScriptedQuerier() *scriptedQuerier {
	return &scriptedQuerier{
		scripts:  map[string][]llm.Result{},
		fallback: errResult("no script for model", 500),
	}
}

func (q *scriptedQuerier) script(model string, results ...llm.Result) {
	q.scripts[model] = append(q.scripts[model], results...)
}

func (q *scriptedQuerier) Query(_ context.Context, model string, messages []llm.Message, _ llm.QueryOptions) llm.Result {
	q.mu.Lock()
	defer q.mu.Unlock()

	prompt := ""
	if len(messages) > 0 {
		prompt = messages[len(messages)-1].Content
	}
	q.calls = append(q.calls, recordedQuery{model: model, prompt: prompt})

	if rs := q.scripts[model]; len(rs) > 0 {
		q.scripts[model] = rs[1:]
		return rs[0]
	}
	return q.fallback
}

func (q *scriptedQuerier) callsFor(model string) []recordedQuery {
	q.mu.Lock()
	defer q.mu.Unlock()
	var out []recordedQuery
	for _, c := range q.calls {
		if c.model == model {
			out = append(out, c)
		}
	}
	return out
}

func okResult(content string) llm.Result {
	tokens := 100
	prompt, completion := 60, 40
	return llm.Result{
		Content:   &content,
		Usage:     &llm.Usage{PromptTokens: &prompt, CompletionTokens: &completion, TotalTokens: &tokens},
		LatencyMS: 5,
	}
}

func okResultNoUsage(content string) llm.Result {
	return llm.Result{Content: &content, LatencyMS: 5}
}

func errResult(msg string, status int) llm.Result {
	return llm.Result{Error: msg, StatusCode: &status, LatencyMS: 5}
}

// memoryLedger aggregates recorded usage the same way the database
// ledger does: token totals need every event to carry total_tokens, cost
// is a flat per-event estimate.
type memoryLedger struct {
	mu           sync.Mutex
	usage        []UsageRecord
	steps        []StepRecord
	costPerEvent float64
}

func (l *memoryLedger) RecordUsage(_ context.Context, rec UsageRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.usage = append(l.usage, rec)
	return nil
}

func (l *memoryLedger) AddStep(_ context.Context, rec StepRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.steps = append(l.steps, rec)
	return nil
}

func (l *memoryLedger) Totals(_ context.Context) (UsageTotals, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	totals := UsageTotals{Events: len(l.usage)}
	for _, rec := range l.usage {
		usage := rec.Result.Usage
		if usage == nil || usage.TotalTokens == nil {
			totals.TokensMissing = true
		} else {
			totals.TotalTokens += *usage.TotalTokens
		}
		if usage == nil {
			totals.CostMissing = true
		} else {
			totals.CostUSD += l.costPerEvent
		}
	}
	return totals, nil
}

func (l *memoryLedger) stepsFor(agentRole string) []StepRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []StepRecord
	for _, s := range l.steps {
		if s.AgentRole == agentRole {
			out = append(out, s)
		}
	}
	return out
}

// memoryCache stores entries through a JSON round-trip so cached values
// come back with the same generic types the database cache produces.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]map[string]interface{}
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]map[string]interface{}{}}
}

func (c *memoryCache) Get(_ context.Context, key string) (map[string]interface{}, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	return value, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value map[string]interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var stored map[string]interface{}
	if err := json.Unmarshal(data, &stored); err != nil {
		return err
	}
	c.entries[key] = stored
	return nil
}

func (c *memoryCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// disabledCache always misses.
type disabledCache struct{}

func (disabledCache) Get(context.Context, string) (map[string]interface{}, bool, error) {
	return nil, false, nil
}

func (disabledCache) Set(context.Context, string, map[string]interface{}) error { return nil }

func floatPtr(v float64) *float64 { return &v }
