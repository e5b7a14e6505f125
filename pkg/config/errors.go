package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidYAML indicates an overlay file failed to parse.
	ErrInvalidYAML = errors.New("invalid YAML")

	// ErrMissingPepper indicates auth is enabled without a hashing pepper.
	ErrMissingPepper = errors.New("API_KEY_PEPPER is required when ALLOW_NO_AUTH is false")

	// ErrInvalidPricing indicates MODEL_PRICING_JSON failed to parse.
	ErrInvalidPricing = errors.New("invalid MODEL_PRICING_JSON")
)

// NewLoadError wraps a file-level load failure with its source name.
func NewLoadError(source string, err error) error {
	return fmt.Errorf("failed to load %s: %w", source, err)
}
