package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sara/internal/config"
)

const systemPrompt = "You are a helpful assistant."

// AzureProvider calls the Azure OpenAI chat completions API. The endpoint
// and api-key credential come from configuration; the constructor fails when
// either is missing so the process refuses to start without them.
type AzureProvider struct {
	endpoint   string
	apiKey     string
	apiVersion string
	model      string
	client     *http.Client
}

func NewAzureProvider(cfg config.Config, model string) (*AzureProvider, error) {
	if strings.TrimSpace(cfg.AzureEndpoint) == "" || strings.TrimSpace(cfg.AzureAPIKey) == "" {
		return nil, fmt.Errorf("azure provider requires AZURE_API_ENDPOINT and AZURE_API_KEY")
	}
	if model == "" {
		model = cfg.AzureModel
	}
	return &AzureProvider{
		endpoint:   strings.TrimRight(cfg.AzureEndpoint, "/"),
		apiKey:     cfg.AzureAPIKey,
		apiVersion: cfg.AzureAPIVersion,
		model:      model,
		client:     &http.Client{Timeout: 60 * time.Second},
	}, nil
}

func (a *AzureProvider) Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, ProviderInfo, error) {
	model := req.Model
	if model == "" {
		model = a.model
	}
	info := ProviderInfo{Name: "azure", Model: model}

	temperature := 1.0
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	payload, _ := json.Marshal(map[string]any{
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": req.Prompt},
		},
		"max_tokens":  4096,
		"temperature": temperature,
		"top_p":       1.0,
		"model":       model,
	})
	endpoint := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		a.endpoint, url.PathEscape(model), url.QueryEscape(a.apiVersion))
	httpReq, _ := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	httpReq.Header.Set("api-key", a.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return CompletionResponse{}, info, fmt.Errorf("azure completion request failed: %w", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return CompletionResponse{}, info, fmt.Errorf("azure completion error %d: %s", resp.StatusCode, string(body))
	}
	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return CompletionResponse{}, info, fmt.Errorf("decode azure response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return CompletionResponse{}, info, fmt.Errorf("azure returned empty choices")
	}
	return CompletionResponse{Text: parsed.Choices[0].Message.Content}, info, nil
}
