package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llmcouncil/councild/pkg/config"
)

func testClient(t *testing.T, url string) *Client {
	t.Helper()
	c := NewClient(config.UpstreamConfig{
		APIKey:         "sk-or-test-key-12345678",
		URL:            url,
		MaxConcurrency: 4,
		MaxRetries:     2,
		RetryBase:      500 * time.Millisecond,
		Timeout:        5 * time.Second,
		AuthCooldown:   60 * time.Second,
	})
	// No real sleeping in tests.
	c.sleep = func(ctx context.Context, d time.Duration) error { return nil }
	c.randFloat = func() float64 { return 0 }
	return c
}

func messages() []Message {
	return []Message{{Role: "user", Content: "hello"}}
}

func TestQuery_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-or-test-key-12345678", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{
			"choices": [{"message": {"content": "hi there"}}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	}))
	defer srv.Close()

	res := testClient(t, srv.URL).Query(context.Background(), "openai/gpt-5.1", messages(), QueryOptions{})
	require.True(t, res.OK())
	assert.Equal(t, "hi there", *res.Content)
	require.NotNil(t, res.Usage)
	assert.Equal(t, 10, *res.Usage.PromptTokens)
	assert.Equal(t, 5, *res.Usage.CompletionTokens)
	assert.Equal(t, 15, *res.Usage.TotalTokens)
	assert.Equal(t, float64(15), res.RawUsage["total_tokens"])
}

func TestQuery_CarriesReasoningDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"choices": [{"message": {
				"content": "answer",
				"reasoning_details": [{"type": "reasoning.text", "text": "chain"}]
			}}]
		}`))
	}))
	defer srv.Close()

	res := testClient(t, srv.URL).Query(context.Background(), "m", messages(), QueryOptions{})
	require.True(t, res.OK())
	details, ok := res.ReasoningDetails.([]interface{})
	require.True(t, ok)
	require.Len(t, details, 1)
	assert.Equal(t, "chain", details[0].(map[string]interface{})["text"])
}

func TestQuery_SamplingOptionsForwarded(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]interface{}{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		got = body
		w.Write([]byte(`{"choices": [{"message": {"content": "ok"}}]}`))
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)

	temp := 0.2
	maxTokens := 64
	res := c.Query(context.Background(), "m", messages(), QueryOptions{Temperature: &temp, MaxTokens: &maxTokens})
	require.True(t, res.OK())
	assert.Equal(t, 0.2, got["temperature"])
	assert.Equal(t, float64(64), got["max_tokens"])

	// Unset options stay off the wire.
	res = c.Query(context.Background(), "m", messages(), QueryOptions{})
	require.True(t, res.OK())
	_, hasTemp := got["temperature"]
	_, hasMax := got["max_tokens"]
	assert.False(t, hasTemp)
	assert.False(t, hasMax)
}

func TestQuery_NoUsageBlock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": [{"message": {"content": "ok"}}]}`))
	}))
	defer srv.Close()

	res := testClient(t, srv.URL).Query(context.Background(), "m", messages(), QueryOptions{})
	require.True(t, res.OK())
	assert.Nil(t, res.Usage)
}

func TestQuery_RetriesOn429ThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"choices": [{"message": {"content": "second try"}}]}`))
	}))
	defer srv.Close()

	res := testClient(t, srv.URL).Query(context.Background(), "m", messages(), QueryOptions{})
	require.True(t, res.OK())
	assert.Equal(t, "second try", *res.Content)
	assert.Equal(t, int32(2), calls.Load())
}

func TestQuery_RetriesExhaustedOn500(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	res := testClient(t, srv.URL).Query(context.Background(), "m", messages(), QueryOptions{})
	assert.False(t, res.OK())
	require.NotNil(t, res.StatusCode)
	assert.Equal(t, http.StatusInternalServerError, *res.StatusCode)
	// MaxRetries=2 means 3 attempts total.
	assert.Equal(t, int32(3), calls.Load())
}

func TestQuery_TerminalOn400(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	res := testClient(t, srv.URL).Query(context.Background(), "m", messages(), QueryOptions{})
	assert.False(t, res.OK())
	require.NotNil(t, res.StatusCode)
	assert.Equal(t, http.StatusBadRequest, *res.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestQuery_AuthCooldownShortCircuits(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)

	res := c.Query(context.Background(), "m", messages(), QueryOptions{})
	assert.False(t, res.OK())
	require.NotNil(t, res.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, *res.StatusCode)
	assert.Equal(t, int32(1), calls.Load())

	// Cooldown is armed: the next call must not hit the network.
	res = c.Query(context.Background(), "m", messages(), QueryOptions{})
	assert.False(t, res.OK())
	require.NotNil(t, res.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, *res.StatusCode)
	assert.Contains(t, res.Error, "cooldown")
	assert.Equal(t, int32(1), calls.Load())

	// After the cooldown deadline passes, calls go through again.
	c.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	c.Query(context.Background(), "m", messages(), QueryOptions{})
	assert.Equal(t, int32(2), calls.Load())
}

func TestQuery_RedactsSecretsInErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`invalid key sk-or-test-key-12345678 provided`))
	}))
	defer srv.Close()

	res := testClient(t, srv.URL).Query(context.Background(), "m", messages(), QueryOptions{})
	assert.False(t, res.OK())
	assert.NotContains(t, res.Error, "sk-or-test-key-12345678")
	assert.Contains(t, res.Error, "[MASKED_API_KEY]")
}

func TestQuery_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	c.sleep = sleepCtx

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := c.Query(ctx, "m", messages(), QueryOptions{})
	assert.False(t, res.OK())
	assert.Contains(t, res.Error, "context canceled")
}

func TestBackoffDelay(t *testing.T) {
	base := 500 * time.Millisecond

	// rnd=0 gives the lower bound, rnd→1 approaches twice the bound.
	assert.Equal(t, 500*time.Millisecond, backoffDelay(0, base, 0))
	assert.Equal(t, 1000*time.Millisecond, backoffDelay(1, base, 0))
	assert.Equal(t, 2000*time.Millisecond, backoffDelay(2, base, 0))

	d := backoffDelay(0, base, 0.999)
	assert.GreaterOrEqual(t, d, 500*time.Millisecond)
	assert.Less(t, d, 1000*time.Millisecond)

	d = backoffDelay(1, base, 0.999)
	assert.GreaterOrEqual(t, d, 1000*time.Millisecond)
	assert.Less(t, d, 2000*time.Millisecond)
}

func TestUsageFromRaw(t *testing.T) {
	assert.Nil(t, usageFromRaw(nil))
	assert.Nil(t, usageFromRaw(map[string]interface{}{"cost": 0.1}))

	u := usageFromRaw(map[string]interface{}{"prompt_tokens": float64(7)})
	require.NotNil(t, u)
	assert.Equal(t, 7, *u.PromptTokens)
	assert.Nil(t, u.TotalTokens)
}
