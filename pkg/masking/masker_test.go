package masking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMasker_Redact(t *testing.T) {
	m := NewMasker()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "openrouter key",
			input:  "upstream rejected key sk-or-v1-abcdef1234567890",
			expect: "upstream rejected key [MASKED_API_KEY]",
		},
		{
			name:   "bearer token",
			input:  `401 body: {"error": "Bearer abc123def456 is invalid"}`,
			expect: `401 body: {"error": "Bearer [MASKED_TOKEN] is invalid"}`,
		},
		{
			name:   "key value assignment",
			input:  `request failed: api_key=supersecret12345 rejected`,
			expect: `request failed: api_key=[MASKED_SECRET] rejected`,
		},
		{
			name:   "plain text untouched",
			input:  "connection refused",
			expect: "connection refused",
		},
		{
			name:   "empty",
			input:  "",
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, m.Redact(tt.input))
		})
	}
}

func TestMasker_LiteralSecrets(t *testing.T) {
	m := NewMasker("my-configured-upstream-key")

	out := m.Redact("error talking to upstream with my-configured-upstream-key attached")
	assert.Equal(t, "error talking to upstream with [MASKED_API_KEY] attached", out)

	// Short literals are ignored so common words never get masked.
	m = NewMasker("abc")
	assert.Equal(t, "abc is fine", m.Redact("abc is fine"))
}

func TestMasker_RedactError(t *testing.T) {
	m := NewMasker()
	assert.Equal(t, "", m.RedactError(nil))
	assert.Equal(t, "boom", m.RedactError(errors.New("boom")))
}
