package providers

import (
	"context"
	"strings"
)

// MockProvider produces deterministic canned text without any network
// access. It backs local development and tests.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, ProviderInfo, error) {
	_ = ctx
	info := ProviderInfo{Name: "mock", Model: "mock-llm-v1"}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return CompletionResponse{Text: "Mock response."}, info, nil
	}
	return CompletionResponse{Text: "Mock response to: " + prompt}, info, nil
}
