package summarize

import (
	"context"
	"fmt"

	"github.com/mobilitystack/mobility-engine/internal/config"
)

const (
	openaiDefaultBaseURL = "https://api.openai.com"
	openaiDefaultModel   = "gpt-4o-mini"
)

type openaiBackend struct {
	httpBackend
	apiKey string
	model  string
}

func newOpenAIBackend(cfg config.SummarizerConfig) *openaiBackend {
	model := cfg.Model
	if model == "" {
		model = openaiDefaultModel
	}
	return &openaiBackend{
		httpBackend: newHTTPBackend("openai", cfg.BaseURL, openaiDefaultBaseURL, cfg.Timeout),
		apiKey:      cfg.APIKey,
		model:       model,
	}
}

func (o *openaiBackend) Name() string { return "openai" }

func (o *openaiBackend) Summarize(ctx context.Context, req Request) (string, error) {
	payload := map[string]any{
		"model":       o.model,
		"temperature": 0.3,
		"max_tokens":  400,
		"messages": []map[string]string{
			{"role": "system", "content": "Tu reformules des résultats d'analyse de mobilité urbaine sans jamais inventer de chiffres."},
			{"role": "user", "content": buildPrompt(req)},
		},
	}

	var response struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	headers := map[string]string{"Authorization": "Bearer " + o.apiKey}
	if err := o.postJSON(ctx, "/v1/chat/completions", headers, payload, &response); err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	if len(response.Choices) == 0 || response.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned no choices")
	}
	return validateOutput(response.Choices[0].Message.Content)
}
