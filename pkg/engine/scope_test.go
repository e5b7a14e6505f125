package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooksLikeFilePath(t *testing.T) {
	tests := []struct {
		name  string
		entry string
		want  bool
	}{
		{"path with slash", "src/api/routes.py", true},
		{"bare known suffix", "config.yaml", true},
		{"typescript suffix", "app.tsx", true},
		{"url is not a path", "https://example.com/docs", false},
		{"prose entry", "update the error handling", false},
		{"empty", "", false},
		{"whitespace", "   ", false},
		{"unknown suffix without slash", "main.go", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikeFilePath(tt.entry))
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "src/app.py", "src/app.py"},
		{"backslashes", `src\api\routes.py`, "src/api/routes.py"},
		{"leading dot segments", "././src/app.py", "src/app.py"},
		{"doubled slashes", "src//api///routes.py", "src/api/routes.py"},
		{"surrounding whitespace", "  src/app.py  ", "src/app.py"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizePath(tt.in))
		})
	}
}

func TestEnforceScopePaths(t *testing.T) {
	scope := &ScopeContract{
		InScope: []string{"src/api/routes.py", "docs/plan.md"},
	}

	t.Run("in scope passes", func(t *testing.T) {
		impl := &CodexPromptOutput{PatchScope: []string{"./src/api/routes.py", "docs/plan.md"}}
		assert.Empty(t, enforceScopePaths(scope, impl))
	})

	t.Run("out of scope file is a violation", func(t *testing.T) {
		impl := &CodexPromptOutput{PatchScope: []string{"src/api/routes.py", "src/db/models.py"}}
		assert.Equal(t, []string{"src/db/models.py"}, enforceScopePaths(scope, impl))
	})

	t.Run("empty patch scope is a violation", func(t *testing.T) {
		impl := &CodexPromptOutput{PatchScope: []string{"  "}}
		assert.Equal(t, []string{"(patch_scope_missing)"}, enforceScopePaths(scope, impl))
	})

	t.Run("prose-only scope disables enforcement", func(t *testing.T) {
		prose := &ScopeContract{InScope: []string{"tighten validation", "improve logging"}}
		impl := &CodexPromptOutput{PatchScope: []string{"anything/at/all.py"}}
		assert.Empty(t, enforceScopePaths(prose, impl))
	})

	t.Run("violations are normalized", func(t *testing.T) {
		impl := &CodexPromptOutput{PatchScope: []string{`.\src\db\models.py`}}
		assert.Equal(t, []string{"src/db/models.py"}, enforceScopePaths(scope, impl))
	})
}

func TestScopeViolationGate(t *testing.T) {
	scope := &ScopeContract{
		AcceptanceCriteria: []string{"tests pass", "no new deps"},
		TestsPolicy:        TestsPolicy{Required: true},
	}

	gate := scopeViolationGate(scope, []string{"(patch_scope_missing)", "src/db/models.py"})

	require.Equal(t, "FAIL", gate.Verdict)
	require.Len(t, gate.MustFix, 2)
	assert.Equal(t, "patch_scope is empty", gate.MustFix[0].Issue)
	assert.Equal(t, "Populate patch_scope with the files that will be changed.", gate.MustFix[0].SuggestedFix)
	assert.Equal(t, "src/db/models.py", gate.MustFix[1].File)
	assert.Equal(t, "patch_scope includes file outside in_scope", gate.MustFix[1].Issue)
	assert.Equal(t, "high", gate.MustFix[1].Severity)

	require.Len(t, gate.AcceptanceCriteriaMet, 2)
	for _, c := range gate.AcceptanceCriteriaMet {
		assert.False(t, c.Met)
	}
	assert.True(t, gate.TestsRequired)
}
