package llm

// Message is one chat turn sent upstream.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Usage is the provider-reported token accounting for one call. Providers
// may omit any field, so everything is nillable.
type Usage struct {
	PromptTokens     *int `json:"prompt_tokens,omitempty"`
	CompletionTokens *int `json:"completion_tokens,omitempty"`
	TotalTokens      *int `json:"total_tokens,omitempty"`
}

// Result is the envelope for one upstream call. Query never returns a Go
// error; failures are carried here so fan-out callers can degrade per-model
// instead of aborting the whole stage.
type Result struct {
	// Content is nil when the provider returned no usable text.
	Content *string
	// ReasoningDetails preserves the provider's reasoning block verbatim;
	// nil when the provider sent none or the call failed.
	ReasoningDetails interface{}
	// Usage is nil when the provider returned no usage block.
	Usage *Usage
	// RawUsage preserves the provider usage block verbatim for the ledger.
	RawUsage map[string]interface{}
	// Error is a redacted description of the failure; empty on success.
	Error string
	// StatusCode is the upstream HTTP status when one was received.
	StatusCode *int
	LatencyMS  int
}

// OK reports whether the call produced usable content.
func (r Result) OK() bool {
	return r.Error == "" && r.Content != nil
}

// chatRequest is the OpenRouter chat completions payload.
type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   *int      `json:"max_tokens,omitempty"`
}

// chatResponse is the subset of the chat completions response we consume.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content          *string     `json:"content"`
			ReasoningDetails interface{} `json:"reasoning_details"`
		} `json:"message"`
	} `json:"choices"`
	Usage map[string]interface{} `json:"usage"`
}
