package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Budget caps what one run may spend upstream. Nil limits are unenforced.
type Budget struct {
	MaxTotalCostUSD *float64 `json:"max_total_cost_usd,omitempty"`
	MaxTotalTokens  *int     `json:"max_total_tokens,omitempty"`
}

// Empty reports whether no limit is set. An empty budget disables the gate
// entirely, which also re-enables parallel fan-out.
func (b *Budget) Empty() bool {
	return b == nil || (b.MaxTotalCostUSD == nil && b.MaxTotalTokens == nil)
}

// BudgetExceededError aborts a run when a spend limit is hit or when the
// ledger cannot prove the run is under its limit.
type BudgetExceededError struct {
	Reason string
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("budget exceeded: %s", e.Reason)
}

// IsBudgetExceeded reports whether err is a budget violation.
func IsBudgetExceeded(err error) bool {
	var be *BudgetExceededError
	return errors.As(err, &be)
}

// Budget violation reasons. Missing data counts as a violation: a budgeted
// run must be able to prove it is under the limit.
const (
	ReasonTokenUsageMissing   = "token_usage_missing"
	ReasonMaxTotalTokens      = "max_total_tokens"
	ReasonCostEstimateMissing = "cost_estimate_missing"
	ReasonMaxTotalCostUSD     = "max_total_cost_usd"
)

// budgetGate checks the ledger's running totals against the budget after
// every recorded attempt. The mutex serializes checks so concurrent
// attempts cannot both slip under the limit.
type budgetGate struct {
	budget *Budget
	ledger Ledger
	mu     sync.Mutex
}

func newBudgetGate(budget *Budget, ledger Ledger) *budgetGate {
	return &budgetGate{budget: budget, ledger: ledger}
}

// check returns a *BudgetExceededError when the run is over (or cannot be
// proven under) its budget. A nil or empty budget always passes.
func (g *budgetGate) check(ctx context.Context) error {
	if g.budget.Empty() {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	totals, err := g.ledger.Totals(ctx)
	if err != nil {
		return fmt.Errorf("failed to load usage totals: %w", err)
	}

	if g.budget.MaxTotalTokens != nil {
		if totals.TokensMissing || totals.Events == 0 {
			return &BudgetExceededError{Reason: ReasonTokenUsageMissing}
		}
		if totals.TotalTokens > *g.budget.MaxTotalTokens {
			return &BudgetExceededError{Reason: ReasonMaxTotalTokens}
		}
	}
	if g.budget.MaxTotalCostUSD != nil {
		if totals.CostMissing || totals.Events == 0 {
			return &BudgetExceededError{Reason: ReasonCostEstimateMissing}
		}
		if totals.CostUSD > *g.budget.MaxTotalCostUSD {
			return &BudgetExceededError{Reason: ReasonMaxTotalCostUSD}
		}
	}
	return nil
}
