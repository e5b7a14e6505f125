package engine

import (
	"context"
	"time"
)

// PipelineOptions configures one software-factory run.
type PipelineOptions struct {
	Models PipelineModels
	Budget *Budget
	// MaxIterations bounds the gate/revise loop, including the first
	// gate check.
	MaxIterations int
	// Timeout overrides the client's default per-call timeout when
	// positive.
	Timeout time.Duration
}

// PipelineResult is the full report of one pipeline run. GateVerdict is
// FAIL whenever the run could not end in an explicit gate PASS.
type PipelineResult struct {
	ScopeContract    *ScopeContract     `json:"scope_contract"`
	Reviewer         *ReviewOutput      `json:"reviewer"`
	Security         *SecurityOutput    `json:"security"`
	TestWriter       *TestPlanOutput    `json:"test_writer"`
	Implementer      *CodexPromptOutput `json:"implementer"`
	Gate             *GateOutput        `json:"gate"`
	GateVerdict      string             `json:"gate_verdict"`
	FinalCodexPrompt *string            `json:"final_codex_prompt"`
	Degraded         bool               `json:"degraded"`
	Errors           []string           `json:"errors"`
}

// PipelineRunner drives the leader, reviewer, security, test writer,
// implementer, and gate agents for a single run. As with the council, a
// set budget forces sequential agent calls.
type PipelineRunner struct {
	querier Querier
	ledger  Ledger
	gate    *budgetGate

	models        PipelineModels
	budget        *Budget
	maxIterations int
	timeout       time.Duration
}

func NewPipelineRunner(querier Querier, ledger Ledger, opts PipelineOptions) *PipelineRunner {
	maxIterations := opts.MaxIterations
	if maxIterations < 1 {
		maxIterations = 1
	}
	return &PipelineRunner{
		querier:       querier,
		ledger:        ledger,
		gate:          newBudgetGate(opts.Budget, ledger),
		models:        opts.Models,
		budget:        opts.Budget,
		maxIterations: maxIterations,
		timeout:       opts.Timeout,
	}
}

func parseReviewOutput(text string) (*ReviewOutput, error) {
	var out ReviewOutput
	if err := parseValidated(compiledReview, text, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func parseSecurityOutput(text string) (*SecurityOutput, error) {
	var out SecurityOutput
	if err := parseValidated(compiledSecurity, text, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func parseTestPlanOutput(text string) (*TestPlanOutput, error) {
	var out TestPlanOutput
	if err := parseValidated(compiledTestPlan, text, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func parseCodexPromptOutput(text string) (*CodexPromptOutput, error) {
	var out CodexPromptOutput
	if err := parseValidated(compiledCodexPrompt, text, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func parseGateOutput(text string) (*GateOutput, error) {
	var out GateOutput
	if err := parseValidated(compiledGate, text, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Run executes the pipeline. The returned error is non-nil only for
// budget violations and ledger failures; agent misbehavior degrades the
// result instead.
func (r *PipelineRunner) Run(ctx context.Context, taskDescription string, repo *RepoContext) (*PipelineResult, error) {
	var errs []string
	degraded := false

	leaderPrompt, leaderExample := leaderScopePrompt(taskDescription, repo, r.maxIterations, r.budget)
	leader, err := callJSONRole(ctx, r.querier, r.ledger, r.gate, r.timeout,
		"leader", r.models.Leader, leaderPrompt, leaderExample, ParseScopeContract)
	if err != nil {
		return nil, err
	}
	if leader.Parsed == nil {
		return &PipelineResult{
			GateVerdict: "FAIL",
			Degraded:    true,
			Errors:      append(errs, "invalid_json:leader"),
		}, nil
	}
	scope := leader.Parsed

	agents := map[string]bool{"implementer": true, "gate": true}
	for _, a := range scope.AgentsToInvoke {
		agents[a] = true
	}

	result := &PipelineResult{ScopeContract: scope, GateVerdict: "FAIL"}
	fail := func() (*PipelineResult, error) {
		result.Degraded = true
		result.Errors = errs
		return result, nil
	}

	runReviewer := func(ctx context.Context) (*ReviewOutput, error) {
		p, ex := reviewerPrompt(taskDescription, scope, repo)
		call, err := callJSONRole(ctx, r.querier, r.ledger, r.gate, r.timeout,
			"reviewer", r.models.Reviewer, p, ex, parseReviewOutput)
		return call.Parsed, err
	}
	runSecurity := func(ctx context.Context) (*SecurityOutput, error) {
		p, ex := securityPrompt(taskDescription, scope, repo)
		call, err := callJSONRole(ctx, r.querier, r.ledger, r.gate, r.timeout,
			"security", r.models.Security, p, ex, parseSecurityOutput)
		return call.Parsed, err
	}

	if agents["reviewer"] && agents["security"] && r.budget.Empty() {
		type reviewed struct {
			out *ReviewOutput
			err error
		}
		reviewerCh := make(chan reviewed, 1)
		go func() {
			out, err := runReviewer(ctx)
			reviewerCh <- reviewed{out, err}
		}()
		security, secErr := runSecurity(ctx)
		rev := <-reviewerCh
		if rev.err != nil {
			return nil, rev.err
		}
		if secErr != nil {
			return nil, secErr
		}
		result.Reviewer = rev.out
		result.Security = security
	} else {
		if agents["reviewer"] {
			if result.Reviewer, err = runReviewer(ctx); err != nil {
				return nil, err
			}
		}
		if agents["security"] {
			if result.Security, err = runSecurity(ctx); err != nil {
				return nil, err
			}
		}
	}
	if agents["reviewer"] && result.Reviewer == nil {
		degraded = true
		errs = append(errs, "invalid_json:reviewer")
	}
	if agents["security"] && result.Security == nil {
		degraded = true
		errs = append(errs, "invalid_json:security")
	}

	testsNeeded := scope.TestsPolicy.Required
	if result.Reviewer != nil && len(result.Reviewer.TestsRecommended) > 0 {
		testsNeeded = true
	}
	if result.Security != nil && len(result.Security.TestsRequired) > 0 {
		testsNeeded = true
	}

	if testsNeeded && agents["test_writer"] {
		p, ex := testWriterPrompt(taskDescription, scope, result.Reviewer, result.Security, repo)
		call, err := callJSONRole(ctx, r.querier, r.ledger, r.gate, r.timeout,
			"test_writer", r.models.TestWriter, p, ex, parseTestPlanOutput)
		if err != nil {
			return nil, err
		}
		result.TestWriter = call.Parsed
		if result.TestWriter == nil {
			degraded = true
			errs = append(errs, "invalid_json:test_writer")
		}
	}

	implPrompt, implExample := implementerPrompt(taskDescription, scope, result.Reviewer, result.Security, result.TestWriter, repo)
	impl, err := callJSONRole(ctx, r.querier, r.ledger, r.gate, r.timeout,
		"implementer", r.models.Implementer, implPrompt, implExample, parseCodexPromptOutput)
	if err != nil {
		return nil, err
	}
	result.Implementer = impl.Parsed
	if result.Implementer == nil {
		errs = append(errs, "invalid_json:implementer")
		return fail()
	}

	if violations := enforceScopePaths(scope, result.Implementer); len(violations) > 0 {
		errs = append(errs, "scope_violation")
		result.Gate = scopeViolationGate(scope, violations)
		if err := r.addScopeViolationStep(ctx, result.Gate); err != nil {
			return nil, err
		}
		return fail()
	}

	for iteration := 0; iteration < r.maxIterations; iteration++ {
		gatePromptText, gateExample := gatePrompt(taskDescription, scope, result.Reviewer, result.Security, result.TestWriter, result.Implementer)
		gateCall, err := callJSONRole(ctx, r.querier, r.ledger, r.gate, r.timeout,
			"gate", r.models.Gate, gatePromptText, gateExample, parseGateOutput)
		if err != nil {
			return nil, err
		}
		result.Gate = gateCall.Parsed
		if result.Gate == nil {
			errs = append(errs, "invalid_json:gate")
			return fail()
		}

		if result.Gate.Verdict == "PASS" {
			result.GateVerdict = "PASS"
			result.FinalCodexPrompt = strPtr(result.Implementer.FinalCodexPrompt)
			result.Degraded = degraded
			result.Errors = errs
			return result, nil
		}

		if iteration >= r.maxIterations-1 {
			break
		}

		// Revision by the leader model, constrained to must_fix only.
		revPrompt, revExample := implementerRevisionPrompt(taskDescription, scope, result.Implementer, result.Gate.MustFix)
		revised, err := callJSONRole(ctx, r.querier, r.ledger, r.gate, r.timeout,
			"implementer", r.models.Leader, revPrompt, revExample, parseCodexPromptOutput)
		if err != nil {
			return nil, err
		}
		if revised.Parsed == nil {
			errs = append(errs, "invalid_json:implementer")
			break
		}
		result.Implementer = revised.Parsed

		if violations := enforceScopePaths(scope, result.Implementer); len(violations) > 0 {
			errs = append(errs, "scope_violation")
			result.Gate = scopeViolationGate(scope, violations)
			if err := r.addScopeViolationStep(ctx, result.Gate); err != nil {
				return nil, err
			}
			break
		}
	}

	result.Degraded = degraded || len(errs) > 0
	result.Errors = errs
	return result, nil
}

// addScopeViolationStep records the synthesized gate verdict so the run
// ledger shows why no model was called.
func (r *PipelineRunner) addScopeViolationStep(ctx context.Context, gate *GateOutput) error {
	return r.ledger.AddStep(ctx, StepRecord{
		StageName: "pipeline",
		StepType:  "pipeline_step",
		AgentRole: "gate",
		Model:     "deterministic",
		Output:    map[string]interface{}{"parsed_json": toMap(gate)},
		LatencyMS: intPtr(0),
		ErrorText: strPtr("scope_violation"),
	})
}
