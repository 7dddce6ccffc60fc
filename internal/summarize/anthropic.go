package summarize

import (
	"context"
	"fmt"

	"github.com/mobilitystack/mobility-engine/internal/config"
)

const (
	anthropicDefaultBaseURL = "https://api.anthropic.com"
	anthropicDefaultModel   = "claude-3-5-haiku-latest"
	anthropicVersion        = "2023-06-01"
)

type anthropicBackend struct {
	httpBackend
	apiKey string
	model  string
}

func newAnthropicBackend(cfg config.SummarizerConfig) *anthropicBackend {
	model := cfg.Model
	if model == "" {
		model = anthropicDefaultModel
	}
	return &anthropicBackend{
		httpBackend: newHTTPBackend("anthropic", cfg.BaseURL, anthropicDefaultBaseURL, cfg.Timeout),
		apiKey:      cfg.APIKey,
		model:       model,
	}
}

func (a *anthropicBackend) Name() string { return "anthropic" }

func (a *anthropicBackend) Summarize(ctx context.Context, req Request) (string, error) {
	payload := map[string]any{
		"model":      a.model,
		"max_tokens": 400,
		"messages": []map[string]string{
			{"role": "user", "content": buildPrompt(req)},
		},
	}

	var response struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}

	headers := map[string]string{
		"x-api-key":         a.apiKey,
		"anthropic-version": anthropicVersion,
	}
	if err := a.postJSON(ctx, "/v1/messages", headers, payload, &response); err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}
	for _, block := range response.Content {
		if block.Type == "text" && block.Text != "" {
			return validateOutput(block.Text)
		}
	}
	return "", fmt.Errorf("anthropic returned no text content")
}
