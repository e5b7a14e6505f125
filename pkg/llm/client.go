// Package llm implements the hardened OpenRouter client: bounded
// concurrency, full-jitter retry on transient failures, and a global
// cooldown after credential rejections so a bad key cannot hammer the
// provider from every goroutine at once.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/llmcouncil/councild/pkg/config"
	"github.com/llmcouncil/councild/pkg/masking"
	"github.com/llmcouncil/councild/pkg/version"
)

const maxErrorBodyBytes = 2048

// Client is the shared upstream client. Safe for concurrent use; all
// council fan-out goes through one instance so the concurrency cap and the
// auth cooldown are global.
type Client struct {
	cfg    config.UpstreamConfig
	http   *http.Client
	sem    chan struct{}
	masker *masking.Masker

	// cooldownUntil is unix nanos; zero means no active cooldown.
	cooldownUntil atomic.Int64

	// Injection points for tests.
	now       func() time.Time
	sleep     func(ctx context.Context, d time.Duration) error
	randFloat func() float64
}

// NewClient builds a client from the upstream configuration.
func NewClient(cfg config.UpstreamConfig) *Client {
	maxConc := cfg.MaxConcurrency
	if maxConc < 1 {
		maxConc = 1
	}
	return &Client{
		cfg: cfg,
		// Per-request deadlines come from context; the transport-level
		// timeout stays off so mode overrides can exceed the default.
		http:      &http.Client{},
		sem:       make(chan struct{}, maxConc),
		masker:    masking.NewMasker(cfg.APIKey),
		now:       time.Now,
		sleep:     sleepCtx,
		randFloat: rand.Float64,
	}
}

// QueryOptions tunes a single call.
type QueryOptions struct {
	// Timeout overrides the configured request timeout when positive.
	Timeout time.Duration
	// Temperature is passed through verbatim when set.
	Temperature *float64
	// MaxTokens caps the completion length when set.
	MaxTokens *int
}

// Query sends one chat completion request and returns a Result. It never
// returns a Go error: transport failures, non-2xx statuses, and malformed
// bodies all come back inside the envelope.
//
// Retry policy: 429 and 5xx statuses and transport errors are retried up to
// MaxRetries times with full-jitter exponential backoff. Other 4xx statuses
// are terminal. A 401 or 403 arms a global cooldown during which all calls
// short-circuit with a synthetic 401 before taking a concurrency permit.
func (c *Client) Query(ctx context.Context, model string, messages []Message, opts QueryOptions) Result {
	start := c.now()

	if until := c.cooldownUntil.Load(); until > 0 && start.UnixNano() < until {
		code := http.StatusUnauthorized
		return Result{
			Error:      "upstream auth cooldown active",
			StatusCode: &code,
			LatencyMS:  0,
		}
	}

	select {
	case c.sem <- struct{}{}:
	case <-ctx.Done():
		return c.failure(start, ctx.Err().Error(), nil)
	}
	defer func() { <-c.sem }()

	timeout := c.cfg.Timeout
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}

	var lastErr string
	var lastStatus *int
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := backoffDelay(attempt-1, c.cfg.RetryBase, c.randFloat())
			slog.Debug("Retrying upstream call", "model", model, "attempt", attempt, "delay", delay)
			if err := c.sleep(ctx, delay); err != nil {
				return c.failure(start, err.Error(), lastStatus)
			}
		}

		res, retryable := c.attempt(ctx, model, messages, opts, timeout)
		if res.Error == "" {
			res.LatencyMS = int(c.now().Sub(start).Milliseconds())
			return res
		}
		lastErr, lastStatus = res.Error, res.StatusCode

		if res.StatusCode != nil && (*res.StatusCode == http.StatusUnauthorized || *res.StatusCode == http.StatusForbidden) {
			c.cooldownUntil.Store(c.now().Add(c.cfg.AuthCooldown).UnixNano())
			slog.Warn("Upstream rejected credentials, entering cooldown",
				"status", *res.StatusCode, "cooldown", c.cfg.AuthCooldown)
			return c.failure(start, lastErr, lastStatus)
		}
		if !retryable {
			return c.failure(start, lastErr, lastStatus)
		}
	}
	return c.failure(start, lastErr, lastStatus)
}

// attempt performs exactly one HTTP round trip. The bool reports whether
// the failure is retryable.
func (c *Client) attempt(ctx context.Context, model string, messages []Message, opts QueryOptions, timeout time.Duration) (Result, bool) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return Result{Error: fmt.Sprintf("encode request: %v", err)}, false
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return Result{Error: fmt.Sprintf("build request: %v", err)}, false
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.Full())

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{Error: c.masker.Redact(fmt.Sprintf("transport error: %v", err))}, true
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		status := resp.StatusCode
		res := Result{
			Error:      c.masker.Redact(fmt.Sprintf("upstream status %d: %s", status, snippet)),
			StatusCode: &status,
		}
		retryable := status == http.StatusTooManyRequests || status >= 500
		return res, retryable
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		status := resp.StatusCode
		return Result{
			Error:      fmt.Sprintf("decode response: %v", err),
			StatusCode: &status,
		}, false
	}

	res := Result{RawUsage: parsed.Usage, Usage: usageFromRaw(parsed.Usage)}
	if len(parsed.Choices) > 0 {
		res.Content = parsed.Choices[0].Message.Content
		res.ReasoningDetails = parsed.Choices[0].Message.ReasoningDetails
	}
	status := resp.StatusCode
	res.StatusCode = &status
	return res, false
}

func (c *Client) failure(start time.Time, msg string, status *int) Result {
	return Result{
		Error:      msg,
		StatusCode: status,
		LatencyMS:  int(c.now().Sub(start).Milliseconds()),
	}
}

// backoffDelay computes the full-jitter delay before retry number
// attempt (0-based): base*2^attempt plus a uniform random fraction of the
// same bound, so the delay lands in [base*2^attempt, 2*base*2^attempt).
func backoffDelay(attempt int, base time.Duration, rnd float64) time.Duration {
	bound := float64(base) * math.Pow(2, float64(attempt))
	return time.Duration(bound + rnd*bound)
}

// usageFromRaw extracts the standard token fields from a provider usage
// block, tolerating both int and float encodings.
func usageFromRaw(raw map[string]interface{}) *Usage {
	if raw == nil {
		return nil
	}
	u := &Usage{
		PromptTokens:     intField(raw, "prompt_tokens"),
		CompletionTokens: intField(raw, "completion_tokens"),
		TotalTokens:      intField(raw, "total_tokens"),
	}
	if u.PromptTokens == nil && u.CompletionTokens == nil && u.TotalTokens == nil {
		return nil
	}
	return u
}

func intField(m map[string]interface{}, key string) *int {
	v, ok := m[key]
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case float64:
		i := int(n)
		return &i
	case int:
		return &n
	case json.Number:
		if i, err := n.Int64(); err == nil {
			v := int(i)
			return &v
		}
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
