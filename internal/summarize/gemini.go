package summarize

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mobilitystack/mobility-engine/internal/config"
)

const (
	geminiDefaultBaseURL = "https://generativelanguage.googleapis.com"
	geminiDefaultModel   = "gemini-2.0-flash"
)

type geminiBackend struct {
	httpBackend
	apiKey string
	model  string
}

func newGeminiBackend(cfg config.SummarizerConfig) *geminiBackend {
	model := cfg.Model
	if model == "" {
		model = geminiDefaultModel
	}
	return &geminiBackend{
		httpBackend: newHTTPBackend("gemini", cfg.BaseURL, geminiDefaultBaseURL, cfg.Timeout),
		apiKey:      cfg.APIKey,
		model:       model,
	}
}

func (g *geminiBackend) Name() string { return "gemini" }

func (g *geminiBackend) Summarize(ctx context.Context, req Request) (string, error) {
	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": buildPrompt(req)}}},
		},
		"generationConfig": map[string]any{
			"temperature":     0.3,
			"maxOutputTokens": 400,
		},
	}

	var response struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	endpoint := fmt.Sprintf("/v1beta/models/%s:generateContent?key=%s", g.model, url.QueryEscape(g.apiKey))
	if err := g.postJSON(ctx, endpoint, nil, payload, &response); err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return validateOutput(response.Candidates[0].Content.Parts[0].Text)
}
