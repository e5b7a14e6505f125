package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

const keyPrefix = "council:"

// MakeKey builds a deterministic cache key from the identifying parts of a
// stage call. Parts are serialized as canonical JSON (sorted keys, compact
// separators) and hashed, so key equality is insensitive to map ordering.
func MakeKey(parts map[string]interface{}) (string, error) {
	canonical, err := json.Marshal(parts)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize cache key parts: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return keyPrefix + hex.EncodeToString(sum[:]), nil
}
