// Package engine implements the two orchestration flows: the three-stage
// council (respond, judge, synthesize) and the software-factory pipeline
// (leader, reviewer, security, test writer, implementer, gate).
//
// The engines depend only on the narrow interfaces below so they can run
// against the real upstream client, database ledger, and cache in
// production, and against in-memory fakes in tests.
package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/llmcouncil/councild/pkg/llm"
)

// Querier sends one chat completion upstream. Failures come back inside
// the Result envelope, never as a Go error.
type Querier interface {
	Query(ctx context.Context, model string, messages []llm.Message, opts llm.QueryOptions) llm.Result
}

// UsageRecord identifies one upstream call attempt for the ledger.
type UsageRecord struct {
	Model   string
	CallID  uuid.UUID
	Attempt int
	Result  llm.Result
}

// StepRecord is one agent observation for the run ledger.
type StepRecord struct {
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

// UsageTotals is the ledger's aggregate answer for budget enforcement.
type UsageTotals struct {
	TotalTokens   int
	TokensMissing bool
	CostUSD       float64
	CostMissing   bool
	Events        int
}

// Ledger records what one run did. Implementations are bound to a single
// run and must be safe for concurrent use from fan-out goroutines.
type Ledger interface {
	RecordUsage(ctx context.Context, rec UsageRecord) error
	AddStep(ctx context.Context, rec StepRecord) error
	Totals(ctx context.Context) (UsageTotals, error)
}

// Cache is the read-through stage cache.
type Cache interface {
	Get(ctx context.Context, key string) (map[string]interface{}, bool, error)
	Set(ctx context.Context, key string, value map[string]interface{}) error
}

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }
