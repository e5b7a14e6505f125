// Package masking scrubs credentials from text before it is logged or
// persisted. Upstream error bodies can echo request headers, so everything
// recorded in the run ledger passes through here first.
package masking

import (
	"log/slog"
	"regexp"
	"strings"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// builtinPatterns covers the credential shapes this service handles:
// provider API keys, bearer tokens, and key-value style secrets.
var builtinPatterns = []struct {
	name        string
	pattern     string
	replacement string
	description string
}{
	{
		name:        "openrouter_api_key",
		pattern:     `sk-or-[A-Za-z0-9\-_]{8,}`,
		replacement: "[MASKED_API_KEY]",
		description: "OpenRouter API keys",
	},
	{
		name:        "bearer_token",
		pattern:     `(?i)bearer\s+[A-Za-z0-9\-._~+/]{8,}=*`,
		replacement: "Bearer [MASKED_TOKEN]",
		description: "Authorization bearer tokens",
	},
	{
		name:        "api_key_assignment",
		pattern:     `(?i)(api[_-]?key|authorization|token|secret)(["']?\s*[:=]\s*["']?)[A-Za-z0-9\-._~+/]{8,}=*`,
		replacement: "${1}${2}[MASKED_SECRET]",
		description: "Key-value style secrets",
	},
}

// Masker applies the built-in redaction patterns plus any literal secrets
// registered at construction time (e.g. the configured upstream API key).
type Masker struct {
	patterns []*CompiledPattern
	literals []string
}

// NewMasker compiles the built-in patterns. Literal secrets passed here are
// replaced wherever they appear, regardless of surrounding shape.
func NewMasker(literalSecrets ...string) *Masker {
	m := &Masker{}
	for _, p := range builtinPatterns {
		compiled, err := regexp.Compile(p.pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", p.name, "error", err)
			continue
		}
		m.patterns = append(m.patterns, &CompiledPattern{
			Name:        p.name,
			Regex:       compiled,
			Replacement: p.replacement,
			Description: p.description,
		})
	}
	for _, s := range literalSecrets {
		if len(s) >= 8 {
			m.literals = append(m.literals, s)
		}
	}
	return m
}

// Redact returns text with all known credential shapes replaced.
func (m *Masker) Redact(text string) string {
	if text == "" {
		return text
	}
	for _, lit := range m.literals {
		text = strings.ReplaceAll(text, lit, "[MASKED_API_KEY]")
	}
	for _, p := range m.patterns {
		text = p.Regex.ReplaceAllString(text, p.Replacement)
	}
	return text
}

// RedactError is a nil-safe convenience for error values.
func (m *Masker) RedactError(err error) string {
	if err == nil {
		return ""
	}
	return m.Redact(err.Error())
}
