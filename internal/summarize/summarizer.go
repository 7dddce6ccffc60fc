// Package summarize wraps the external reformulation layer. Backends turn an
// already computed result into a short narrative; they never see raw data and
// their output never feeds back into any computation. A failing backend is an
// absent backend.
package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mobilitystack/mobility-engine/internal/config"
)

// Audience adjusts the register of the narrative.
type Audience string

const (
	AudiencePublic    Audience = "public"
	AudienceMunicipal Audience = "municipal"
)

// Request carries everything a backend may use to phrase the narrative.
type Request struct {
	Question   string
	Kind       string
	WindowText string
	// Preview is a short textual extract of the computed table. It is the
	// only numeric material the backend receives.
	Preview string
	// Context is glossary text from the vocabulary corpus.
	Context  string
	Audience Audience
}

// Summarizer reformulates a computed result. Implementations must respect
// ctx and return an error rather than degenerate output.
type Summarizer interface {
	Name() string
	Summarize(ctx context.Context, req Request) (string, error)
}

// New selects a backend from configuration. Provider none, or a provider
// without credentials, yields a nil summarizer; the composer treats nil as
// the layer being absent.
func New(cfg config.SummarizerConfig, logger *slog.Logger) Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" || provider == "none" {
		return nil
	}
	if cfg.APIKey == "" {
		logger.Warn("summarizer disabled: no API key configured", "provider", provider)
		return nil
	}
	switch provider {
	case "gemini":
		return newGeminiBackend(cfg)
	case "anthropic":
		return newAnthropicBackend(cfg)
	case "openai":
		return newOpenAIBackend(cfg)
	default:
		logger.Warn("summarizer disabled: unknown provider", "provider", provider)
		return nil
	}
}

func buildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString("Tu assistes un service d'analyse de mobilité urbaine. Reformule le résultat ci-dessous en 2 à 4 phrases claires, en français.\n")
	b.WriteString("Règles: n'invente aucun chiffre, ne modifie aucun chiffre, ne spécule pas au-delà des données fournies.\n")
	if req.Audience == AudienceMunicipal {
		b.WriteString("Ton: factuel et opérationnel, pour des équipes municipales.\n")
	} else {
		b.WriteString("Ton: accessible, pour le grand public.\n")
	}
	fmt.Fprintf(&b, "\nQuestion: %s\n", req.Question)
	fmt.Fprintf(&b, "Analyse: %s, période: %s\n", req.Kind, req.WindowText)
	if req.Context != "" {
		fmt.Fprintf(&b, "Glossaire:\n%s\n", req.Context)
	}
	fmt.Fprintf(&b, "Résultat calculé:\n%s\n", req.Preview)
	return b.String()
}

// validateOutput rejects degenerate narratives so the composer falls back to
// the computed headline instead of rendering noise.
func validateOutput(text string) (string, error) {
	text = strings.TrimSpace(text)
	if len(text) < 70 {
		return "", fmt.Errorf("summary too short (%d chars)", len(text))
	}
	if !strings.ContainsAny(text, ".!?") {
		return "", fmt.Errorf("summary has no sentence punctuation")
	}
	return text, nil
}
