package engine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Agent outputs are strict JSON. Each output type carries a JSON Schema;
// raw model text is parsed, validated against the schema, then decoded into
// the typed struct. Pipeline schemas reject unknown keys.

// Stage2Evaluation is one judge's assessment of a single anonymized answer.
type Stage2Evaluation struct {
	Label string   `json:"label"`
	Pros  []string `json:"pros"`
	Cons  []string `json:"cons"`
}

// Stage2JudgeOutput is the structured verdict of one council judge.
type Stage2JudgeOutput struct {
	Evaluations       []Stage2Evaluation `json:"evaluations"`
	FinalRanking      []string           `json:"final_ranking"`
	FailureModesTop1  []string           `json:"failure_modes_top1"`
	VerificationSteps []string           `json:"verification_steps"`
}

const stage2JudgeSchema = `{
	"type": "object",
	"required": ["evaluations", "final_ranking", "failure_modes_top1", "verification_steps"],
	"properties": {
		"evaluations": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["label"],
				"properties": {
					"label": {"type": "string"},
					"pros": {"type": "array", "items": {"type": "string"}},
					"cons": {"type": "array", "items": {"type": "string"}}
				}
			}
		},
		"final_ranking": {"type": "array", "items": {"type": "string"}},
		"failure_modes_top1": {"type": "array", "items": {"type": "string"}},
		"verification_steps": {"type": "array", "items": {"type": "string"}}
	}
}`

// TestsPolicy states whether the change requires tests and why.
type TestsPolicy struct {
	Required bool     `json:"required"`
	Reasons  []string `json:"reasons"`
}

// ScopeContract is the leader's binding definition of the change.
type ScopeContract struct {
	TaskSummary        string      `json:"task_summary"`
	InScope            []string    `json:"in_scope"`
	OutOfScope         []string    `json:"out_of_scope"`
	AcceptanceCriteria []string    `json:"acceptance_criteria"`
	AgentsToInvoke     []string    `json:"agents_to_invoke"`
	TestsPolicy        TestsPolicy `json:"tests_policy"`
	Constraints        []string    `json:"constraints"`
	MaxIterations      int         `json:"max_iterations"`
	Budget             *Budget     `json:"budget"`
}

const scopeContractSchema = `{
	"type": "object",
	"additionalProperties": false,
	"required": ["task_summary", "tests_policy"],
	"properties": {
		"task_summary": {"type": "string"},
		"in_scope": {"type": "array", "items": {"type": "string"}},
		"out_of_scope": {"type": "array", "items": {"type": "string"}},
		"acceptance_criteria": {"type": "array", "items": {"type": "string"}},
		"agents_to_invoke": {
			"type": "array",
			"items": {"enum": ["reviewer", "security", "test_writer", "implementer", "gate"]}
		},
		"tests_policy": {
			"type": "object",
			"additionalProperties": false,
			"required": ["required"],
			"properties": {
				"required": {"type": "boolean"},
				"reasons": {"type": "array", "items": {"type": "string"}}
			}
		},
		"constraints": {"type": "array", "items": {"type": "string"}},
		"max_iterations": {"type": "integer"},
		"budget": {
			"type": ["object", "null"],
			"additionalProperties": false,
			"properties": {
				"max_total_cost_usd": {"type": ["number", "null"]},
				"max_total_tokens": {"type": ["integer", "null"]}
			}
		}
	}
}`

// ReviewIssue is one reviewer finding.
type ReviewIssue struct {
	Severity     string `json:"severity"`
	File         string `json:"file"`
	Issue        string `json:"issue"`
	Why          string `json:"why"`
	SuggestedFix string `json:"suggested_fix"`
}

// ReviewOutput is the reviewer's structured verdict.
type ReviewOutput struct {
	Verdict            string        `json:"verdict"`
	Issues             []ReviewIssue `json:"issues"`
	MissedRequirements []string      `json:"missed_requirements"`
	Risks              []string      `json:"risks"`
	TestsRecommended   []string      `json:"tests_recommended"`
}

const reviewOutputSchema = `{
	"type": "object",
	"additionalProperties": false,
	"required": ["verdict"],
	"properties": {
		"verdict": {"enum": ["PASS", "FAIL"]},
		"issues": {
			"type": "array",
			"items": {
				"type": "object",
				"additionalProperties": false,
				"required": ["severity", "file", "issue", "why", "suggested_fix"],
				"properties": {
					"severity": {"enum": ["high", "med", "low"]},
					"file": {"type": "string"},
					"issue": {"type": "string"},
					"why": {"type": "string"},
					"suggested_fix": {"type": "string"}
				}
			}
		},
		"missed_requirements": {"type": "array", "items": {"type": "string"}},
		"risks": {"type": "array", "items": {"type": "string"}},
		"tests_recommended": {"type": "array", "items": {"type": "string"}}
	}
}`

// SecurityThreat is one security finding.
type SecurityThreat struct {
	Severity    string `json:"severity"`
	Area        string `json:"area"`
	Description string `json:"description"`
	Mitigation  string `json:"mitigation"`
}

// SecurityOutput is the security agent's structured verdict.
type SecurityOutput struct {
	Verdict                  string           `json:"verdict"`
	Threats                  []SecurityThreat `json:"threats"`
	RequiredSecurityControls []string         `json:"required_security_controls"`
	TestsRequired            []string         `json:"tests_required"`
}

const securityOutputSchema = `{
	"type": "object",
	"additionalProperties": false,
	"required": ["verdict"],
	"properties": {
		"verdict": {"enum": ["PASS", "FAIL"]},
		"threats": {
			"type": "array",
			"items": {
				"type": "object",
				"additionalProperties": false,
				"required": ["severity", "area", "description", "mitigation"],
				"properties": {
					"severity": {"enum": ["high", "med", "low"]},
					"area": {"enum": ["auth", "db", "logging", "network", "deps", "supply_chain"]},
					"description": {"type": "string"},
					"mitigation": {"type": "string"}
				}
			}
		},
		"required_security_controls": {"type": "array", "items": {"type": "string"}},
		"tests_required": {"type": "array", "items": {"type": "string"}}
	}
}`

// TestToAdd is one planned test.
type TestToAdd struct {
	Type   string   `json:"type"`
	Target string   `json:"target"`
	Files  []string `json:"files"`
	Cases  []string `json:"cases"`
}

// TestPlanOutput is the test writer's plan.
type TestPlanOutput struct {
	TestsToAdd []TestToAdd `json:"tests_to_add"`
	Commands   []string    `json:"commands"`
	Notes      []string    `json:"notes"`
}

const testPlanOutputSchema = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"tests_to_add": {
			"type": "array",
			"items": {
				"type": "object",
				"additionalProperties": false,
				"required": ["type", "target"],
				"properties": {
					"type": {"enum": ["unit", "integration"]},
					"target": {"type": "string"},
					"files": {"type": "array", "items": {"type": "string"}},
					"cases": {"type": "array", "items": {"type": "string"}}
				}
			}
		},
		"commands": {"type": "array", "items": {"type": "string"}},
		"notes": {"type": "array", "items": {"type": "string"}}
	}
}`

// CodexPromptOutput is the implementer's deliverable: the final prompt plus
// the exact files it is allowed to touch.
type CodexPromptOutput struct {
	FinalCodexPrompt string   `json:"final_codex_prompt"`
	PatchScope       []string `json:"patch_scope"`
	DoNotChange      []string `json:"do_not_change"`
	RunCommands      []string `json:"run_commands"`
	RollbackPlan     []string `json:"rollback_plan"`
}

const codexPromptOutputSchema = `{
	"type": "object",
	"additionalProperties": false,
	"required": ["final_codex_prompt"],
	"properties": {
		"final_codex_prompt": {"type": "string"},
		"patch_scope": {"type": "array", "items": {"type": "string"}},
		"do_not_change": {"type": "array", "items": {"type": "string"}},
		"run_commands": {"type": "array", "items": {"type": "string"}},
		"rollback_plan": {"type": "array", "items": {"type": "string"}}
	}
}`

// MustFixItem is one blocking gate finding.
type MustFixItem struct {
	Severity     string `json:"severity"`
	File         string `json:"file"`
	Issue        string `json:"issue"`
	SuggestedFix string `json:"suggested_fix"`
}

// AcceptanceCriterionMet records one criterion's status at the gate.
type AcceptanceCriterionMet struct {
	Criterion string `json:"criterion"`
	Met       bool   `json:"met"`
}

// GateOutput is the final PASS/FAIL decision.
type GateOutput struct {
	Verdict               string                   `json:"verdict"`
	MustFix               []MustFixItem            `json:"must_fix"`
	AcceptanceCriteriaMet []AcceptanceCriterionMet `json:"acceptance_criteria_met"`
	TestsRequired         bool                     `json:"tests_required"`
}

const gateOutputSchema = `{
	"type": "object",
	"additionalProperties": false,
	"required": ["verdict", "tests_required"],
	"properties": {
		"verdict": {"enum": ["PASS", "FAIL"]},
		"must_fix": {
			"type": "array",
			"items": {
				"type": "object",
				"additionalProperties": false,
				"required": ["severity", "file", "issue", "suggested_fix"],
				"properties": {
					"severity": {"enum": ["high", "med", "low"]},
					"file": {"type": "string"},
					"issue": {"type": "string"},
					"suggested_fix": {"type": "string"}
				}
			}
		},
		"acceptance_criteria_met": {
			"type": "array",
			"items": {
				"type": "object",
				"additionalProperties": false,
				"required": ["criterion", "met"],
				"properties": {
					"criterion": {"type": "string"},
					"met": {"type": "boolean"}
				}
			}
		},
		"tests_required": {"type": "boolean"}
	}
}`

var (
	compiledStage2Judge = mustCompileSchema("stage2_judge.json", stage2JudgeSchema)
	compiledScope       = mustCompileSchema("scope_contract.json", scopeContractSchema)
	compiledReview      = mustCompileSchema("review_output.json", reviewOutputSchema)
	compiledSecurity    = mustCompileSchema("security_output.json", securityOutputSchema)
	compiledTestPlan    = mustCompileSchema("test_plan_output.json", testPlanOutputSchema)
	compiledCodexPrompt = mustCompileSchema("codex_prompt_output.json", codexPromptOutputSchema)
	compiledGate        = mustCompileSchema("gate_output.json", gateOutputSchema)
)

func mustCompileSchema(name, schema string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, strings.NewReader(schema)); err != nil {
		panic(fmt.Sprintf("failed to add schema resource %s: %v", name, err))
	}
	return compiler.MustCompile(name)
}

// parseValidated parses text as JSON, validates it against the schema, and
// decodes it into out. The returned error is suitable for echoing back to
// the model in a correction prompt.
func parseValidated(sch *jsonschema.Schema, text string, out interface{}) error {
	var raw interface{}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return fmt.Errorf("invalid JSON: %v", err)
	}
	if err := sch.Validate(raw); err != nil {
		return fmt.Errorf("schema validation failed: %v", err)
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("failed to decode validated JSON: %v", err)
	}
	return nil
}

// ParseStage2JudgeOutput validates and decodes one judge's raw text.
func ParseStage2JudgeOutput(text string) (*Stage2JudgeOutput, error) {
	var out Stage2JudgeOutput
	if err := parseValidated(compiledStage2Judge, text, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ParseScopeContract validates and decodes the leader's scope contract.
// max_iterations defaults to 2 when the model omits it.
func ParseScopeContract(text string) (*ScopeContract, error) {
	out := ScopeContract{MaxIterations: 2}
	if err := parseValidated(compiledScope, text, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// toMap converts a typed output into the generic form used by prompts and
// the run ledger.
func toMap(v interface{}) map[string]interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return map[string]interface{}{}
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]interface{}{}
	}
	return out
}

// remarshal decodes a generic JSON value into a typed struct.
func remarshal(src, dst interface{}) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

func mustJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(data)
}
