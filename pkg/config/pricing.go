package config

import (
	"encoding/json"
	"fmt"
	"math"
)

// ModelPrice is the per-1M-token price for one model.
type ModelPrice struct {
	PromptPer1M     float64 `json:"prompt_per_1m" yaml:"prompt_per_1m"`
	CompletionPer1M float64 `json:"completion_per_1m" yaml:"completion_per_1m"`
}

// PriceBook maps model identifiers to prices. The version string travels
// with every recorded usage event so historical costs stay attributable to
// the book that produced them.
type PriceBook struct {
	Version string                `yaml:"version"`
	Models  map[string]ModelPrice `yaml:"models"`
}

// Estimate returns the estimated USD cost for a call, rounded to 8 decimal
// places, or nil when the model is not in the book.
func (p *PriceBook) Estimate(model string, promptTokens, completionTokens int) *float64 {
	if p == nil {
		return nil
	}
	price, ok := p.Models[model]
	if !ok {
		return nil
	}
	cost := float64(promptTokens)/1_000_000*price.PromptPer1M +
		float64(completionTokens)/1_000_000*price.CompletionPer1M
	cost = math.Round(cost*1e8) / 1e8
	return &cost
}

// parsePricingJSON parses the MODEL_PRICING_JSON environment payload, a JSON
// object mapping model name to {prompt_per_1m, completion_per_1m}.
func parsePricingJSON(raw string) (map[string]ModelPrice, error) {
	if raw == "" {
		return map[string]ModelPrice{}, nil
	}
	var models map[string]ModelPrice
	if err := json.Unmarshal([]byte(raw), &models); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPricing, err)
	}
	return models, nil
}
