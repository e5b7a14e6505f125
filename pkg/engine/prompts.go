package engine

import (
	"fmt"
	"strings"
)

// RepoFile is one file of caller-supplied repository context.
type RepoFile struct {
	Path    string `json:"path"`
	Content string `json:"content,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// RepoContext is the optional repository excerpt attached to a pipeline
// task.
type RepoContext struct {
	Files []RepoFile `json:"files"`
}

const jsonOnlyRules = "Return ONLY valid JSON. No markdown. No code fences. No extra keys. " +
	"If information is missing, call it out in the appropriate schema fields."

const (
	maxRepoContextFiles     = 25
	maxRepoFileContentChars = 4000
	maxRepoFileSummaryChars = 1200
	maxCorrectionEchoChars  = 8000
	maxVerificationSteps    = 12
	maxTitleChars           = 50
)

// repoContextText renders repo context into the prompt form agents see:
// full content when available, the summary otherwise.
func repoContextText(rc *RepoContext) string {
	if rc == nil || len(rc.Files) == 0 {
		return ""
	}
	var chunks []string
	for i, f := range rc.Files {
		if i >= maxRepoContextFiles {
			break
		}
		if f.Path == "" {
			continue
		}
		body := ""
		if c := strings.TrimSpace(f.Content); c != "" {
			body = clip(c, maxRepoFileContentChars)
		} else if s := strings.TrimSpace(f.Summary); s != "" {
			body = clip(s, maxRepoFileSummaryChars)
		}
		chunks = append(chunks, strings.TrimRight("FILE: "+f.Path+"\n"+body, "\n "))
	}
	if len(chunks) == 0 {
		return ""
	}
	return "Repo context:\n\n" + strings.Join(chunks, "\n\n")
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// --- Council prompts ---

const stage2SchemaExample = `{"evaluations": [{"label": "Response A", "pros": ["..."], "cons": ["..."]}, {"label": "Response B", "pros": ["..."], "cons": ["..."]}], "final_ranking": ["Response A", "Response B"], "failure_modes_top1": ["..."], "verification_steps": ["..."]}`

// buildStage2Prompt anonymizes the stage-1 answers behind letter labels and
// asks each judge for a structured ranking. Returns the prompt and the
// label-to-model mapping used to de-anonymize rankings later.
func buildStage2Prompt(userQuery string, stage1 []Stage1Result) (string, map[string]string) {
	labelToModel := make(map[string]string, len(stage1))
	var responses []string
	for i, r := range stage1 {
		label := fmt.Sprintf("Response %c", 'A'+i)
		labelToModel[label] = r.Model
		responses = append(responses, fmt.Sprintf("Response %c:\n%s", 'A'+i, r.Response))
	}

	prompt := fmt.Sprintf(`You are evaluating different responses to the following question:

Question: %s

Here are the responses from different models (anonymized):

%s

Return ONLY valid JSON matching this exact schema (no markdown, no extra text):
%s

Rules:
- "evaluations" must include one entry per response label present above.
- "final_ranking" must be a list of the response labels from best to worst.
- "failure_modes_top1" must list likely failure modes of the top-ranked response.
- "verification_steps" must list concrete steps a user can take to verify the top-ranked response.
`, userQuery, strings.Join(responses, "\n\n"), stage2SchemaExample)
	return prompt, labelToModel
}

// buildCorrectionPrompt asks a model to fix invalid JSON output, echoing
// the schema example, the previous output, and the validation error.
func buildCorrectionPrompt(schemaExample, previousOutput, validationError string) string {
	return fmt.Sprintf(`Your previous output was invalid.
You MUST output ONLY valid JSON matching this example schema exactly:
%s

Here was your previous output:
%s

Error:
%s
`, schemaExample, previousOutput, validationError)
}

// buildStage3Prompt assembles the chairman's synthesis prompt from the
// stage-1 answers, raw stage-2 rankings, and the judges' deduplicated
// verification steps.
func buildStage3Prompt(userQuery string, stage1 []Stage1Result, stage2 []Stage2Result) string {
	var stage1Parts []string
	for _, r := range stage1 {
		stage1Parts = append(stage1Parts, fmt.Sprintf("Model: %s\nResponse: %s", r.Model, r.Response))
	}
	var stage2Parts []string
	for _, r := range stage2 {
		stage2Parts = append(stage2Parts, fmt.Sprintf("Model: %s\nRanking: %s", r.Model, r.Ranking))
	}

	var steps []string
	seen := map[string]bool{}
	for _, r := range stage2 {
		if r.ParsedJSON == nil {
			continue
		}
		for _, s := range r.ParsedJSON.VerificationSteps {
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			steps = append(steps, s)
			if len(steps) >= maxVerificationSteps {
				break
			}
		}
		if len(steps) >= maxVerificationSteps {
			break
		}
	}
	verificationText := ""
	if len(steps) > 0 {
		var lines []string
		for _, s := range steps {
			lines = append(lines, "- "+s)
		}
		verificationText = "\n\nJudges suggested verification steps:\n" + strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`You are the Chairman of an LLM Council. Multiple AI models have provided responses to a user's question, and then ranked each other's responses.

Original Question: %s

STAGE 1 - Individual Responses:
%s

STAGE 2 - Peer Rankings:
%s
%s

Your task as Chairman is to synthesize all of this information into a single, comprehensive, accurate answer to the user's original question.

When relevant, include a short "Verification checklist" section with concrete steps the user can take to validate the answer.
`, userQuery, strings.Join(stage1Parts, "\n\n"), strings.Join(stage2Parts, "\n\n"), verificationText)
}

// buildTitlePrompt asks for a short conversation title.
func buildTitlePrompt(userQuery string) string {
	return fmt.Sprintf(`Generate a very short title (3-5 words maximum) that summarizes the following question.
The title should be concise and descriptive. Do not use quotes or punctuation in the title.

Question: %s

Title:`, userQuery)
}

// --- Pipeline prompts ---

// leaderScopePrompt asks the leader for a scope contract. The example
// embeds the effective max_iterations and budget so the contract echoes
// them back verbatim.
func leaderScopePrompt(taskDescription string, repo *RepoContext, maxIterations int, budget *Budget) (string, string) {
	budgetJSON := "null"
	if budget != nil {
		budgetJSON = mustJSON(map[string]interface{}{
			"max_total_cost_usd": budget.MaxTotalCostUSD,
			"max_total_tokens":   budget.MaxTotalTokens,
		})
	}
	example := fmt.Sprintf(`{"task_summary": "One sentence summary", "in_scope": ["..."], "out_of_scope": ["..."], "acceptance_criteria": ["..."], "agents_to_invoke": ["reviewer", "security", "implementer", "gate"], "tests_policy": {"required": true, "reasons": ["..."]}, "constraints": ["Do not add new HTTP endpoints", "Do not break existing API behavior", "Keep changes minimal and scoped"], "max_iterations": %d, "budget": %s}`, maxIterations, budgetJSON)

	prompt := fmt.Sprintf(`You are the Leader (PM/Chairman) for a software change pipeline.

Task:
%s

%s

Rules:
- Define clear scope and acceptance criteria.
- Prevent feature creep. Put anything not required into out_of_scope.
- Ensure max_iterations is exactly %d.
- If a budget is provided, include it exactly in the 'budget' field (or null if none).
- %s

Output JSON matching this example exactly:
%s
`, taskDescription, repoContextText(repo), maxIterations, jsonOnlyRules, example)
	return prompt, example
}

const reviewerExample = `{"verdict": "PASS", "issues": [{"severity": "med", "file": "path/to/file.py", "issue": "What is wrong", "why": "Why it matters", "suggested_fix": "How to fix"}], "missed_requirements": [], "risks": [], "tests_recommended": ["python3 -m pytest -q"]}`

func reviewerPrompt(taskDescription string, scope *ScopeContract, repo *RepoContext) (string, string) {
	prompt := fmt.Sprintf(`You are the Reviewer (Principal Engineer).

Task:
%s

ScopeContract (must comply):
%s

%s

Rules:
- Only discuss in_scope and acceptance_criteria. Explicitly ignore out_of_scope.
- Call out risks and missing requirements in the provided fields.
- %s

Output JSON matching this example exactly:
%s
`, taskDescription, mustJSON(scope), repoContextText(repo), jsonOnlyRules, reviewerExample)
	return prompt, reviewerExample
}

const securityExample = `{"verdict": "PASS", "threats": [{"severity": "low", "area": "logging", "description": "Potential secret logging", "mitigation": "Ensure secrets are redacted"}], "required_security_controls": [], "tests_required": []}`

func securityPrompt(taskDescription string, scope *ScopeContract, repo *RepoContext) (string, string) {
	prompt := fmt.Sprintf(`You are Security (DevSecOps).

Task:
%s

ScopeContract (must comply):
%s

%s

Rules:
- Only discuss in_scope and acceptance_criteria. Explicitly ignore out_of_scope.
- Focus on auth, DB, logging, network, deps/supply-chain risks relevant to the scope.
- %s

Output JSON matching this example exactly:
%s
`, taskDescription, mustJSON(scope), repoContextText(repo), jsonOnlyRules, securityExample)
	return prompt, securityExample
}

const testWriterExample = `{"tests_to_add": [{"type": "unit", "target": "backend/src/...", "files": ["backend/tests/test_example.py"], "cases": ["..."]}], "commands": ["python3 -m pytest -q"], "notes": []}`

func testWriterPrompt(taskDescription string, scope *ScopeContract, reviewer *ReviewOutput, security *SecurityOutput, repo *RepoContext) (string, string) {
	prompt := fmt.Sprintf(`You are the Test Writer (SDET).

Task:
%s

ScopeContract (must comply):
%s

Reviewer output:
%s

Security output:
%s

%s

Rules:
- Only propose tests that validate acceptance_criteria and in_scope.
- Keep commands executable in this repo.
- %s

Output JSON matching this example exactly:
%s
`, taskDescription, mustJSON(scope), mustJSON(reviewer), mustJSON(security), repoContextText(repo), jsonOnlyRules, testWriterExample)
	return prompt, testWriterExample
}

const implementerExample = `{"final_codex_prompt": "A complete Codex prompt describing the patch to implement, with constraints.", "patch_scope": ["backend/src/app/main.py"], "do_not_change": ["No new endpoints", "Do not refactor unrelated code"], "run_commands": ["python3 -m pytest -q"], "rollback_plan": ["git checkout -- <files>"]}`

func implementerPrompt(taskDescription string, scope *ScopeContract, reviewer *ReviewOutput, security *SecurityOutput, testPlan *TestPlanOutput, repo *RepoContext) (string, string) {
	prompt := fmt.Sprintf(`You are the Implementer (Codex prompt writer). Produce a high-quality Codex prompt.

Task:
%s

ScopeContract (MUST comply; no feature creep):
%s

Reviewer output:
%s

Security output:
%s

Test plan:
%s

%s

Rules:
- Only cover in_scope and acceptance_criteria. Explicitly ignore out_of_scope.
- Your patch_scope must reflect the files that should change.
- Your final_codex_prompt must be specific, bounded, and include constraints.
- %s

Output JSON matching this example exactly:
%s
`, taskDescription, mustJSON(scope), mustJSON(reviewer), mustJSON(security), mustJSON(testPlan), repoContextText(repo), jsonOnlyRules, implementerExample)
	return prompt, implementerExample
}

func implementerRevisionPrompt(taskDescription string, scope *ScopeContract, previous *CodexPromptOutput, mustFix []MustFixItem) (string, string) {
	example := fmt.Sprintf(`{"final_codex_prompt": "Revised Codex prompt addressing only must_fix items.", "patch_scope": %s, "do_not_change": %s, "run_commands": %s, "rollback_plan": %s}`,
		mustJSON(previous.PatchScope), mustJSON(previous.DoNotChange), mustJSON(previous.RunCommands), mustJSON(previous.RollbackPlan))

	prompt := fmt.Sprintf(`You are revising a Codex implementation prompt after a failed gate.

Task:
%s

ScopeContract (MUST comply; no feature creep):
%s

Previous CodexPromptOutput:
%s

Gate must_fix list (address ONLY these):
%s

Rules:
- Modify ONLY what is necessary to address must_fix.
- Do NOT expand scope, do NOT add new files unless must_fix requires it.
- %s

Output JSON matching this example exactly:
%s
`, taskDescription, mustJSON(scope), mustJSON(previous), mustJSON(mustFix), jsonOnlyRules, example)
	return prompt, example
}

const gateExample = `{"verdict": "PASS", "must_fix": [{"severity": "high", "file": "backend/src/...", "issue": "What must be fixed", "suggested_fix": "Concrete fix"}], "acceptance_criteria_met": [{"criterion": "....", "met": true}], "tests_required": true}`

func gatePrompt(taskDescription string, scope *ScopeContract, reviewer *ReviewOutput, security *SecurityOutput, testPlan *TestPlanOutput, implementer *CodexPromptOutput) (string, string) {
	prompt := fmt.Sprintf(`You are the Gate. Decide PASS/FAIL.

Task:
%s

ScopeContract:
%s

Reviewer output:
%s

Security output:
%s

Test plan:
%s

CodexPromptOutput:
%s

Rules:
- Enforce no feature creep: only accept if CodexPromptOutput is bounded to in_scope and acceptance_criteria.
- If scope.in_scope includes file-path-like entries, FAIL if implementer.patch_scope contains any file not included in scope.in_scope.
- Be strict. If uncertain, FAIL with must_fix items.
- %s

Output JSON matching this example exactly:
%s
`, taskDescription, mustJSON(scope), mustJSON(reviewer), mustJSON(security), mustJSON(testPlan), mustJSON(implementer), jsonOnlyRules, gateExample)
	return prompt, gateExample
}
