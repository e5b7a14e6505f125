package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceBookEstimate(t *testing.T) {
	book := &PriceBook{
		Version: "v1",
		Models: map[string]ModelPrice{
			"openai/gpt-4o": {PromptPer1M: 5.0, CompletionPer1M: 15.0},
		},
	}

	cost := book.Estimate("openai/gpt-4o", 1_000_000, 1_000_000)
	require.NotNil(t, cost)
	assert.InDelta(t, 20.0, *cost, 1e-9)

	cost = book.Estimate("openai/gpt-4o", 1000, 500)
	require.NotNil(t, cost)
	assert.InDelta(t, 0.0125, *cost, 1e-9)

	assert.Nil(t, book.Estimate("unknown/model", 100, 100))

	var nilBook *PriceBook
	assert.Nil(t, nilBook.Estimate("openai/gpt-4o", 100, 100))
}

func TestPriceBookEstimateRounding(t *testing.T) {
	book := &PriceBook{
		Models: map[string]ModelPrice{
			"m": {PromptPer1M: 0.123456789, CompletionPer1M: 0},
		},
	}
	cost := book.Estimate("m", 1, 0)
	require.NotNil(t, cost)
	// One prompt token at 0.123456789/1M rounds to 8 decimal places.
	assert.Equal(t, 0.00000012, *cost)
}

func TestParsePricingJSON(t *testing.T) {
	models, err := parsePricingJSON(`{"a/b": {"prompt_per_1m": 1.5, "completion_per_1m": 3.0}}`)
	require.NoError(t, err)
	assert.Equal(t, ModelPrice{PromptPer1M: 1.5, CompletionPer1M: 3.0}, models["a/b"])

	models, err = parsePricingJSON("")
	require.NoError(t, err)
	assert.Empty(t, models)

	_, err = parsePricingJSON("nope")
	assert.ErrorIs(t, err, ErrInvalidPricing)
}
