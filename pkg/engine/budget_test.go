package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetEmpty(t *testing.T) {
	var nilBudget *Budget
	assert.True(t, nilBudget.Empty())
	assert.True(t, (&Budget{}).Empty())
	assert.False(t, (&Budget{MaxTotalTokens: intPtr(100)}).Empty())
	assert.False(t, (&Budget{MaxTotalCostUSD: floatPtr(0.5)}).Empty())
}

func TestBudgetGate_EmptyBudgetAlwaysPasses(t *testing.T) {
	gate := newBudgetGate(nil, &memoryLedger{})
	assert.NoError(t, gate.check(context.Background()))
}

func TestBudgetGate_TokenLimit(t *testing.T) {
	ctx := context.Background()

	t.Run("no events counts as missing usage", func(t *testing.T) {
		gate := newBudgetGate(&Budget{MaxTotalTokens: intPtr(1000)}, &memoryLedger{})
		err := gate.check(ctx)
		require.True(t, IsBudgetExceeded(err))
		var be *BudgetExceededError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, ReasonTokenUsageMissing, be.Reason)
	})

	t.Run("under limit passes", func(t *testing.T) {
		ledger := &memoryLedger{}
		require.NoError(t, ledger.RecordUsage(ctx, UsageRecord{Result: okResult("x")}))
		gate := newBudgetGate(&Budget{MaxTotalTokens: intPtr(1000)}, ledger)
		assert.NoError(t, gate.check(ctx))
	})

	t.Run("over limit fails", func(t *testing.T) {
		ledger := &memoryLedger{}
		require.NoError(t, ledger.RecordUsage(ctx, UsageRecord{Result: okResult("x")}))
		require.NoError(t, ledger.RecordUsage(ctx, UsageRecord{Result: okResult("y")}))
		gate := newBudgetGate(&Budget{MaxTotalTokens: intPtr(150)}, ledger)
		var be *BudgetExceededError
		require.ErrorAs(t, gate.check(ctx), &be)
		assert.Equal(t, ReasonMaxTotalTokens, be.Reason)
	})

	t.Run("event without usage fails closed", func(t *testing.T) {
		ledger := &memoryLedger{}
		require.NoError(t, ledger.RecordUsage(ctx, UsageRecord{Result: okResult("x")}))
		require.NoError(t, ledger.RecordUsage(ctx, UsageRecord{Result: okResultNoUsage("y")}))
		gate := newBudgetGate(&Budget{MaxTotalTokens: intPtr(100000)}, ledger)
		var be *BudgetExceededError
		require.ErrorAs(t, gate.check(ctx), &be)
		assert.Equal(t, ReasonTokenUsageMissing, be.Reason)
	})
}

func TestBudgetGate_CostLimit(t *testing.T) {
	ctx := context.Background()

	t.Run("missing cost estimate fails closed", func(t *testing.T) {
		ledger := &memoryLedger{costPerEvent: 0.01}
		require.NoError(t, ledger.RecordUsage(ctx, UsageRecord{Result: okResultNoUsage("x")}))
		gate := newBudgetGate(&Budget{MaxTotalCostUSD: floatPtr(1.0)}, ledger)
		var be *BudgetExceededError
		require.ErrorAs(t, gate.check(ctx), &be)
		assert.Equal(t, ReasonCostEstimateMissing, be.Reason)
	})

	t.Run("over cost limit fails", func(t *testing.T) {
		ledger := &memoryLedger{costPerEvent: 0.6}
		require.NoError(t, ledger.RecordUsage(ctx, UsageRecord{Result: okResult("x")}))
		require.NoError(t, ledger.RecordUsage(ctx, UsageRecord{Result: okResult("y")}))
		gate := newBudgetGate(&Budget{MaxTotalCostUSD: floatPtr(1.0)}, ledger)
		var be *BudgetExceededError
		require.ErrorAs(t, gate.check(ctx), &be)
		assert.Equal(t, ReasonMaxTotalCostUSD, be.Reason)
	})

	t.Run("under cost limit passes", func(t *testing.T) {
		ledger := &memoryLedger{costPerEvent: 0.1}
		require.NoError(t, ledger.RecordUsage(ctx, UsageRecord{Result: okResult("x")}))
		gate := newBudgetGate(&Budget{MaxTotalCostUSD: floatPtr(1.0)}, ledger)
		assert.NoError(t, gate.check(ctx))
	})
}

func TestIsBudgetExceeded(t *testing.T) {
	assert.True(t, IsBudgetExceeded(&BudgetExceededError{Reason: ReasonMaxTotalTokens}))
	assert.False(t, IsBudgetExceeded(context.Canceled))
	assert.False(t, IsBudgetExceeded(nil))
}
