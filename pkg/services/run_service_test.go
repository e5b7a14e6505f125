package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateStrings(t *testing.T) {
	long := strings.Repeat("x", maxStepStringLen+500)

	out := TruncateStrings(map[string]interface{}{
		"short": "hello",
		"long":  long,
		"nested": map[string]interface{}{
			"inner": long,
		},
		"list":  []interface{}{"ok", long, 42},
		"count": 7,
	})

	assert.Equal(t, "hello", out["short"])
	assert.Equal(t, 7, out["count"])

	clipped, ok := out["long"].(string)
	require.True(t, ok)
	assert.Len(t, clipped, maxStepStringLen)
	assert.True(t, strings.HasSuffix(clipped, truncationSuffix))

	nested := out["nested"].(map[string]interface{})
	assert.True(t, strings.HasSuffix(nested["inner"].(string), truncationSuffix))

	list := out["list"].([]interface{})
	assert.Equal(t, "ok", list[0])
	assert.True(t, strings.HasSuffix(list[1].(string), truncationSuffix))
	assert.Equal(t, 42, list[2])
}

func TestTruncateStrings_ExactBoundary(t *testing.T) {
	exact := strings.Repeat("y", maxStepStringLen)
	out := TruncateStrings(map[string]interface{}{"v": exact})
	assert.Equal(t, exact, out["v"])
}

func TestTruncateStrings_Nil(t *testing.T) {
	assert.Nil(t, TruncateStrings(nil))
}

func TestTruncateStrings_DoesNotMutateInput(t *testing.T) {
	long := strings.Repeat("z", maxStepStringLen*2)
	in := map[string]interface{}{"v": long}
	_ = TruncateStrings(in)
	assert.Len(t, in["v"], maxStepStringLen*2)
}
