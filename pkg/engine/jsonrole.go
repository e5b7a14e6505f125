package engine

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/llmcouncil/councild/pkg/llm"
)

// roleCall is the outcome of one strict-JSON role invocation.
type roleCall[T any] struct {
	Parsed          *T
	RawText         string
	ValidationError *string
	// OKResponse reports whether the final upstream attempt produced
	// content, regardless of whether that content validated.
	OKResponse bool
}

// callJSONRole asks a model for strict JSON and retries once with a
// correction prompt when the output fails to parse or validate. Both
// attempts share one call ID; every attempt is recorded and
// budget-checked. A non-budget error means the ledger itself failed.
func callJSONRole[T any](
	ctx context.Context,
	q Querier,
	ledger Ledger,
	gate *budgetGate,
	timeout time.Duration,
	role, model, prompt, example string,
	parse func(string) (*T, error),
) (roleCall[T], error) {
	callID := uuid.New()

	attemptPrompt := prompt
	var last roleCall[T]
	for attempt := 0; attempt <= 1; attempt++ {
		res := q.Query(ctx, model, []llm.Message{{Role: "user", Content: attemptPrompt}}, llm.QueryOptions{Timeout: timeout})

		rawText := strings.TrimSpace(derefContent(res.Content))
		parsed, parseErr := parse(rawText)
		var errStr *string
		if parseErr != nil {
			errStr = strPtr(parseErr.Error())
		}
		last = roleCall[T]{
			Parsed:          parsed,
			RawText:         rawText,
			ValidationError: errStr,
			OKResponse:      res.OK(),
		}

		if err := ledger.RecordUsage(ctx, UsageRecord{Model: model, CallID: callID, Attempt: attempt, Result: res}); err != nil {
			return last, err
		}

		var output map[string]interface{}
		if parsed != nil && parseErr == nil {
			output = map[string]interface{}{"parsed_json": toMap(parsed)}
		} else {
			output = map[string]interface{}{"raw_text": rawText, "validation_error": nil}
			if errStr != nil {
				output["validation_error"] = *errStr
			}
		}
		step := StepRecord{
			StageName: "pipeline",
			StepType:  "pipeline_step",
			AgentRole: role,
			Model:     model,
			Attempt:   attempt,
			IsRetry:   attempt > 0,
			Output:    output,
			LatencyMS: intPtr(res.LatencyMS),
		}
		switch {
		case res.Error != "":
			step.ErrorText = strPtr(res.Error)
		case errStr != nil:
			step.ErrorText = errStr
		}
		if err := ledger.AddStep(ctx, step); err != nil {
			return last, err
		}
		if err := gate.check(ctx); err != nil {
			return last, err
		}

		if parsed != nil && parseErr == nil {
			return last, nil
		}
		if attempt == 0 {
			attemptPrompt = buildCorrectionPrompt(example, clip(rawText, maxCorrectionEchoChars), derefErr(errStr))
		}
	}
	return last, nil
}

func derefErr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
