package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"

	"sara/internal/config"
)

// LocalProvider talks to an OpenAI-compatible local server (Ollama, LM
// Studio, vLLM) through langchaingo. No credential is required; the "none"
// token satisfies servers that ignore authentication.
type LocalProvider struct {
	client *lcopenai.LLM
	model  string
}

func NewLocalProvider(cfg config.Config, model string) (*LocalProvider, error) {
	if model == "" {
		model = cfg.LocalModel
	}
	client, err := lcopenai.New(
		lcopenai.WithBaseURL(strings.TrimRight(cfg.LocalBaseURL, "/")),
		lcopenai.WithToken("none"),
		lcopenai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("local provider init: %w", err)
	}
	return &LocalProvider{client: client, model: model}, nil
}

func (l *LocalProvider) Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, ProviderInfo, error) {
	model := req.Model
	if model == "" {
		model = l.model
	}
	info := ProviderInfo{Name: "local", Model: model}

	opts := []llms.CallOption{llms.WithModel(model)}
	if req.Temperature != nil {
		opts = append(opts, llms.WithTemperature(*req.Temperature))
	}
	text, err := llms.GenerateFromSinglePrompt(ctx, l.client, req.Prompt, opts...)
	if err != nil {
		return CompletionResponse{}, info, fmt.Errorf("local completion request failed: %w", err)
	}
	return CompletionResponse{Text: text}, info, nil
}
