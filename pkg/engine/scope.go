package engine

import (
	"strings"
)

var scopeFileSuffixes = []string{".py", ".ts", ".tsx", ".md", ".yml", ".yaml", ".json"}

// looksLikeFilePath filters in_scope entries down to concrete paths so
// prose entries ("update the docs") never arm scope enforcement.
func looksLikeFilePath(entry string) bool {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return false
	}
	if strings.Contains(entry, "://") {
		return false
	}
	if strings.Contains(entry, "/") {
		return true
	}
	for _, suffix := range scopeFileSuffixes {
		if strings.HasSuffix(entry, suffix) {
			return true
		}
	}
	return false
}

// normalizePath canonicalizes a path for scope comparison: backslashes
// become slashes, leading "./" segments and doubled slashes collapse.
func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.ReplaceAll(p, "\\", "/")
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	return p
}

// enforceScopePaths returns the implementer's patch_scope violations
// against the contract's in_scope list. Enforcement only arms when the
// contract names at least one real file path; an armed contract with an
// empty patch_scope is itself a violation.
func enforceScopePaths(scope *ScopeContract, impl *CodexPromptOutput) []string {
	allowedSet := map[string]struct{}{}
	for _, entry := range scope.InScope {
		if strings.TrimSpace(entry) != "" && looksLikeFilePath(entry) {
			allowedSet[normalizePath(entry)] = struct{}{}
		}
	}
	if len(allowedSet) == 0 {
		return nil
	}

	var patch []string
	for _, p := range impl.PatchScope {
		if strings.TrimSpace(p) != "" {
			patch = append(patch, normalizePath(p))
		}
	}
	if len(patch) == 0 {
		return []string{"(patch_scope_missing)"}
	}

	var violations []string
	for _, p := range patch {
		if _, ok := allowedSet[p]; !ok {
			violations = append(violations, p)
		}
	}
	return violations
}

// scopeViolationGate synthesizes a failing gate verdict for scope
// violations so the run ends with a reviewable report instead of an
// upstream call.
func scopeViolationGate(scope *ScopeContract, violations []string) *GateOutput {
	gate := &GateOutput{Verdict: "FAIL"}
	for _, v := range violations {
		item := MustFixItem{
			Severity:     "high",
			File:         v,
			Issue:        "patch_scope includes file outside in_scope",
			SuggestedFix: "Remove from patch_scope or add to in_scope if truly required.",
		}
		if v == "(patch_scope_missing)" {
			item.Issue = "patch_scope is empty"
			item.SuggestedFix = "Populate patch_scope with the files that will be changed."
		}
		gate.MustFix = append(gate.MustFix, item)
	}
	for _, criterion := range scope.AcceptanceCriteria {
		gate.AcceptanceCriteriaMet = append(gate.AcceptanceCriteriaMet, AcceptanceCriterionMet{
			Criterion: criterion,
			Met:       false,
		})
	}
	gate.TestsRequired = scope.TestsPolicy.Required
	return gate
}
