package providers

import "context"

type ProviderInfo struct {
	Name  string `json:"name"`
	Model string `json:"model"`
}

// CompletionRequest is a single free-text prompt. Model and Temperature are
// optional per-request overrides; providers fall back to their configured
// defaults when they are unset.
type CompletionRequest struct {
	Prompt      string   `json:"prompt"`
	Model       string   `json:"model,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
}

type CompletionResponse struct {
	Text string `json:"text"`
}

// Completer is the injected LLM capability: one blocking chat-completion
// call per request, no retries, no shared mutable state.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, ProviderInfo, error)
}
