package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llmcouncil/councild/ent/run"
	"github.com/llmcouncil/councild/pkg/config"
	"github.com/llmcouncil/councild/pkg/llm"
	"github.com/llmcouncil/councild/pkg/services"
)

func testPricing() *config.PriceBook {
	return &config.PriceBook{
		Version: "v-test",
		Models: map[string]config.ModelPrice{
			"openai/gpt-5.1": {PromptPer1M: 2.0, CompletionPer1M: 8.0},
		},
	}
}

func intp(v int) *int { return &v }

func okUsage() *llm.Usage {
	return &llm.Usage{PromptTokens: intp(100), CompletionTokens: intp(50), TotalTokens: intp(150)}
}

func TestRunLifecycle(t *testing.T) {
	client := NewTestClient(t)
	ctx := context.Background()
	runs := services.NewRunService(client.Client)

	convID := uuid.New()
	r, err := runs.CreateRun(ctx, convID, "council.ask", map[string]interface{}{"prompt": "hi"}, nil)
	require.NoError(t, err)
	assert.Equal(t, run.StatusRunning, r.Status)
	assert.Equal(t, convID, r.ConversationID)

	_, err = runs.AddStep(ctx, services.AddStepParams{
		RunID:     r.ID,
		StageName: "stage1",
		StepType:  "model_response",
		AgentRole: "responder",
		Model:     "openai/gpt-5.1",
		Output:    map[string]interface{}{"response": "hello"},
		LatencyMS: intp(12),
	})
	require.NoError(t, err)

	require.NoError(t, runs.EndRun(ctx, r.ID, run.StatusSucceeded, 40))

	got, err := runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusSucceeded, got.Status)
	require.NotNil(t, got.LatencyMs)
	assert.Equal(t, 40, *got.LatencyMs)
}

func TestEndRunFirstWriterWins(t *testing.T) {
	client := NewTestClient(t)
	ctx := context.Background()
	runs := services.NewRunService(client.Client)

	r, err := runs.CreateRun(ctx, uuid.New(), "council.pipeline", nil, nil)
	require.NoError(t, err)

	require.NoError(t, runs.EndRun(ctx, r.ID, run.StatusSucceeded, 10))
	// A late failure marker must not overwrite the terminal status.
	require.NoError(t, runs.EndRun(ctx, r.ID, run.StatusFailed, 99))

	got, err := runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusSucceeded, got.Status)
	assert.Equal(t, 10, *got.LatencyMs)
}

func TestUsageRecordingAndTotals(t *testing.T) {
	client := NewTestClient(t)
	ctx := context.Background()
	runs := services.NewRunService(client.Client)
	usage := services.NewUsageService(client.Client, testPricing())

	r, err := runs.CreateRun(ctx, uuid.New(), "council.ask", nil, nil)
	require.NoError(t, err)

	callID := uuid.New()
	_, err = usage.RecordUsage(ctx, services.RecordUsageParams{
		RunID: r.ID, Model: "openai/gpt-5.1", CallID: callID, Attempt: 0,
		Result: llm.Result{Usage: okUsage(), LatencyMS: 20},
	})
	require.NoError(t, err)

	// Failed attempt: no usage block, flagged missing.
	_, err = usage.RecordUsage(ctx, services.RecordUsageParams{
		RunID: r.ID, Model: "x-ai/grok-4", CallID: uuid.New(), Attempt: 0,
		Result: llm.Result{Error: "upstream error (status 500)"},
	})
	require.NoError(t, err)

	totals, err := usage.RunTotals(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, totals.Events)
	assert.Equal(t, 150, totals.TotalTokens)
	assert.True(t, totals.TokensMissing)
	assert.True(t, totals.CostMissing)
	// 100 prompt at $2/M + 50 completion at $8/M.
	assert.InDelta(t, 0.0006, totals.CostUSD, 1e-9)

	summary, err := usage.Summary(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, "openai/gpt-5.1", summary[0].Model)
	require.NotNil(t, summary[0].TotalTokens)
	assert.Equal(t, 150, *summary[0].TotalTokens)
	assert.Equal(t, "x-ai/grok-4", summary[1].Model)
	assert.Nil(t, summary[1].TotalTokens)
}

func TestUsageDuplicateAttemptRejected(t *testing.T) {
	client := NewTestClient(t)
	ctx := context.Background()
	runs := services.NewRunService(client.Client)
	usage := services.NewUsageService(client.Client, testPricing())

	r, err := runs.CreateRun(ctx, uuid.New(), "council.ask", nil, nil)
	require.NoError(t, err)

	callID := uuid.New()
	p := services.RecordUsageParams{
		RunID: r.ID, Model: "openai/gpt-5.1", CallID: callID, Attempt: 0,
		Result: llm.Result{Usage: okUsage()},
	}
	_, err = usage.RecordUsage(ctx, p)
	require.NoError(t, err)

	// Same (run_id, call_id, attempt) violates the ledger uniqueness.
	_, err = usage.RecordUsage(ctx, p)
	assert.Error(t, err)

	// A retry of the same call is a new attempt and is fine.
	p.Attempt = 1
	_, err = usage.RecordUsage(ctx, p)
	assert.NoError(t, err)
}

func TestUsageRange(t *testing.T) {
	client := NewTestClient(t)
	ctx := context.Background()
	runs := services.NewRunService(client.Client)
	usage := services.NewUsageService(client.Client, testPricing())

	owner := uuid.New()
	r, err := runs.CreateRun(ctx, uuid.New(), "council.ask", nil, &owner)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = usage.RecordUsage(ctx, services.RecordUsageParams{
			RunID: r.ID, OwnerKeyID: &owner, Model: "openai/gpt-5.1", CallID: uuid.New(),
			Result: llm.Result{Usage: okUsage()},
		})
		require.NoError(t, err)
	}

	now := time.Now().UTC()
	totals, err := usage.UsageRange(ctx, owner, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 300, totals.TotalTokens)
	assert.Equal(t, 200, totals.TotalPromptTokens)
	require.Len(t, totals.ByModel, 1)
	assert.Equal(t, 2, totals.ByModel[0].Attempts)

	// Another key sees nothing.
	other, err := usage.UsageRange(ctx, uuid.New(), now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, other.TotalTokens)
	assert.Empty(t, other.ByModel)
}

func TestConversationStoreVisibility(t *testing.T) {
	client := NewTestClient(t)
	ctx := context.Background()
	store := services.NewPostgresConversationStore(client.Client)

	ownerKey := uuid.New()
	owned := uuid.New()
	require.NoError(t, store.Ensure(ctx, owned, &ownerKey))
	require.NoError(t, store.AppendMessage(ctx, owned, "user", "hello"))
	require.NoError(t, store.AppendMessage(ctx, owned, "assistant", "hi there"))
	require.NoError(t, store.SetTitle(ctx, owned, "Greetings"))

	detail, err := store.Get(ctx, owned, []uuid.UUID{ownerKey})
	require.NoError(t, err)
	assert.Equal(t, "Greetings", detail.Title)
	require.Len(t, detail.Messages, 2)
	assert.Equal(t, "user", detail.Messages[0].Role)
	assert.Equal(t, "hi there", detail.Messages[1].Content)

	// A different account cannot read it.
	_, err = store.Get(ctx, owned, []uuid.UUID{uuid.New()})
	assert.ErrorIs(t, err, services.ErrForbidden)

	// Listing is scoped to the caller's keys.
	visible, err := store.List(ctx, []uuid.UUID{ownerKey})
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, owned, visible[0].ID)

	none, err := store.List(ctx, []uuid.UUID{uuid.New()})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAuthServiceKeyLifecycle(t *testing.T) {
	client := NewTestClient(t)
	ctx := context.Background()
	usage := services.NewUsageService(client.Client, testPricing())
	auth := services.NewAuthService(client.Client, usage, "pepper")

	// Bootstrap a root key directly.
	root, err := client.ApiKey.Create().
		SetKeyHash(services.HashKey("pepper", "lc_root")).
		SetName("root").
		Save(ctx)
	require.NoError(t, err)

	authed, err := auth.Authenticate(ctx, "lc_root")
	require.NoError(t, err)
	assert.Equal(t, root.ID, authed.ID)
	assert.NotNil(t, authed.LastUsedAt)

	_, err = auth.Authenticate(ctx, "lc_wrong")
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	// Mint a child key under the root account.
	child, plaintext, err := auth.CreateKey(ctx, root.ID, "ci", nil, intp(1000))
	require.NoError(t, err)
	require.NotEmpty(t, plaintext)
	assert.Contains(t, plaintext, "lc_")
	require.NotNil(t, child.AccountID)
	assert.Equal(t, root.ID, *child.AccountID)

	childAuthed, err := auth.Authenticate(ctx, plaintext)
	require.NoError(t, err)
	assert.Equal(t, child.ID, childAuthed.ID)

	// Both keys share the account.
	ids, err := auth.AccountKeyIDs(ctx, childAuthed)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{root.ID, child.ID}, ids)

	// Rotation kills the old key and the replacement works.
	oldKey, newKey, newPlain, err := auth.RotateKey(ctx, root.ID, child.ID)
	require.NoError(t, err)
	assert.False(t, oldKey.IsActive)
	assert.NotEqual(t, oldKey.ID, newKey.ID)

	_, err = auth.Authenticate(ctx, plaintext)
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	_, err = auth.Authenticate(ctx, newPlain)
	require.NoError(t, err)

	// Deactivation is account-scoped.
	_, err = auth.DeactivateKey(ctx, uuid.New(), newKey.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = auth.DeactivateKey(ctx, root.ID, newKey.ID)
	require.NoError(t, err)
	_, err = auth.Authenticate(ctx, newPlain)
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}

func TestMonthlyQuota(t *testing.T) {
	client := NewTestClient(t)
	ctx := context.Background()
	usage := services.NewUsageService(client.Client, testPricing())
	auth := services.NewAuthService(client.Client, usage, "pepper")
	runs := services.NewRunService(client.Client)

	key, err := client.ApiKey.Create().
		SetKeyHash(services.HashKey("pepper", "lc_capped")).
		SetName("capped").
		SetMonthlyTokenCap(200).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, auth.CheckMonthlyQuota(ctx, key))

	r, err := runs.CreateRun(ctx, uuid.New(), "council.ask", nil, &key.ID)
	require.NoError(t, err)
	_, err = usage.RecordUsage(ctx, services.RecordUsageParams{
		RunID: r.ID, OwnerKeyID: &key.ID, Model: "openai/gpt-5.1", CallID: uuid.New(),
		Result: llm.Result{Usage: okUsage()},
	})
	require.NoError(t, err)
	_, err = usage.RecordUsage(ctx, services.RecordUsageParams{
		RunID: r.ID, OwnerKeyID: &key.ID, Model: "openai/gpt-5.1", CallID: uuid.New(),
		Result: llm.Result{Usage: okUsage()},
	})
	require.NoError(t, err)

	err = auth.CheckMonthlyQuota(ctx, key)
	assert.ErrorIs(t, err, services.ErrQuotaExceeded)

	info, err := auth.Limits(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 300, info.TokensUsedThisMonth)
	require.NotNil(t, info.TokensRemaining)
	assert.Equal(t, 0, *info.TokensRemaining)
	assert.True(t, info.QuotaExceeded)
}
