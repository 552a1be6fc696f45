package providers

import (
	"context"
	"strings"
	"testing"

	"sara/internal/config"
)

func TestNewManagerMockOnly(t *testing.T) {
	m, err := NewManager(config.Config{LLMProviders: "mock"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Count() != 1 {
		t.Fatalf("expected 1 completer, got %d", m.Count())
	}
	resp, info, err := m.First().Complete(context.Background(), CompletionRequest{Prompt: "hello"})
	if err != nil || info.Name != "mock" {
		t.Fatalf("mock completion failed: %v %+v", err, info)
	}
	if !strings.Contains(resp.Text, "hello") {
		t.Fatalf("unexpected mock text: %q", resp.Text)
	}
}

func TestNewManagerAzureWithoutCredentialFails(t *testing.T) {
	_, err := NewManager(config.Config{LLMProviders: "azure"})
	if err == nil {
		t.Fatalf("expected credential error for azure without endpoint/key")
	}
}

func TestNewManagerOpenAIWithoutKeyFails(t *testing.T) {
	_, err := NewManager(config.Config{LLMProviders: "openai"})
	if err == nil {
		t.Fatalf("expected credential error for openai without key")
	}
}

func TestNewManagerRejectsUnknownProvider(t *testing.T) {
	_, err := NewManager(config.Config{LLMProviders: "bogus"})
	if err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}

func TestManagerFindByName(t *testing.T) {
	m, err := NewManager(config.Config{LLMProviders: "mock"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, ok := m.FindByName("mock"); !ok {
		t.Fatalf("expected to find mock provider")
	}
	if _, _, ok := m.FindByName("azure"); ok {
		t.Fatalf("did not expect to find azure provider")
	}
}
