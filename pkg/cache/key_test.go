package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeKey_Deterministic(t *testing.T) {
	parts := map[string]interface{}{
		"stage":          "stage1",
		"model":          "openai/gpt-5.1",
		"user_query":     "what is raft?",
		"council_models": []string{"a", "b"},
	}

	k1, err := MakeKey(parts)
	require.NoError(t, err)
	k2, err := MakeKey(parts)
	require.NoError(t, err)
	assert.Equal(t, k1, k2)

	assert.True(t, strings.HasPrefix(k1, "council:"))
	// "council:" plus a hex-encoded sha256 digest.
	assert.Len(t, k1, len("council:")+64)
}

func TestMakeKey_OrderInsensitive(t *testing.T) {
	a := map[string]interface{}{"model": "m", "stage": "stage1", "user_query": "q"}
	b := map[string]interface{}{"user_query": "q", "stage": "stage1", "model": "m"}

	ka, err := MakeKey(a)
	require.NoError(t, err)
	kb, err := MakeKey(b)
	require.NoError(t, err)
	assert.Equal(t, ka, kb)
}

func TestMakeKey_SensitiveToEveryPart(t *testing.T) {
	base := map[string]interface{}{"stage": "stage1", "model": "m", "user_query": "q"}
	baseKey, err := MakeKey(base)
	require.NoError(t, err)

	for field, altered := range map[string]interface{}{
		"stage":      "stage2",
		"model":      "m2",
		"user_query": "q2",
	} {
		parts := map[string]interface{}{"stage": "stage1", "model": "m", "user_query": "q"}
		parts[field] = altered
		k, err := MakeKey(parts)
		require.NoError(t, err)
		assert.NotEqual(t, baseKey, k, "changing %s must change the key", field)
	}
}
