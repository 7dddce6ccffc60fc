package summarize

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mobilitystack/mobility-engine/internal/config"
)

func TestNewDisablesBackendWithoutCredentials(t *testing.T) {
	cases := []config.SummarizerConfig{
		{Provider: "none"},
		{Provider: ""},
		{Provider: "openai"},
		{Provider: "martian", APIKey: "k"},
	}
	for _, cfg := range cases {
		if s := New(cfg, nil); s != nil {
			t.Errorf("New(%+v) = %s, want nil", cfg, s.Name())
		}
	}
}

func TestNewSelectsConfiguredBackend(t *testing.T) {
	for _, provider := range []string{"gemini", "anthropic", "openai"} {
		s := New(config.SummarizerConfig{Provider: provider, APIKey: "k"}, nil)
		if s == nil || s.Name() != provider {
			t.Errorf("New(%s) did not select the %s backend", provider, provider)
		}
	}
}

func TestOpenAIBackendRoundTrip(t *testing.T) {
	narrative := "Les requêtes de déneigement dominent nettement les journées de neige; les autres types restent stables sur la période."
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"` + narrative + `"}}]}`))
	}))
	defer srv.Close()

	s := New(config.SummarizerConfig{Provider: "openai", APIKey: "secret", BaseURL: srv.URL, Timeout: 2 * time.Second}, nil)
	text, err := s.Summarize(context.Background(), Request{Question: "q", Kind: "service_types_weather", WindowText: "30 derniers jours", Preview: "tableau"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != narrative {
		t.Errorf("text = %q", text)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("authorization header = %q", gotAuth)
	}
}

func TestOpenAIBackendPropagatesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := New(config.SummarizerConfig{Provider: "openai", APIKey: "secret", BaseURL: srv.URL, Timeout: 2 * time.Second}, nil)
	if _, err := s.Summarize(context.Background(), Request{Question: "q"}); err == nil {
		t.Fatal("expected an error from a failing backend")
	}
}

func TestAnthropicBackendParsesContentBlocks(t *testing.T) {
	narrative := "La tendance des collisions est à la baisse sur la période, avec un recul concentré dans deux arrondissements seulement."
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "secret" {
			t.Errorf("x-api-key = %q", r.Header.Get("x-api-key"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"` + narrative + `"}]}`))
	}))
	defer srv.Close()

	s := New(config.SummarizerConfig{Provider: "anthropic", APIKey: "secret", BaseURL: srv.URL, Timeout: 2 * time.Second}, nil)
	text, err := s.Summarize(context.Background(), Request{Question: "q"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != narrative {
		t.Errorf("text = %q", text)
	}
}

func TestValidateOutputRejectsDegenerateText(t *testing.T) {
	if _, err := validateOutput("Trop court."); err == nil {
		t.Error("short output must be rejected")
	}
	if _, err := validateOutput(strings.Repeat("a", 80)); err == nil {
		t.Error("output without sentence punctuation must be rejected")
	}
	long := "Les chiffres montrent une concentration nette des collisions sur quelques axes durant la période étudiée."
	if _, err := validateOutput("  " + long + "  "); err != nil {
		t.Errorf("valid output rejected: %v", err)
	}
}

func TestBuildPromptForbidsInventedNumbers(t *testing.T) {
	prompt := buildPrompt(Request{Question: "q", Kind: "hotspots", WindowText: "7 jours", Preview: "p", Audience: AudienceMunicipal})
	if !strings.Contains(prompt, "n'invente aucun chiffre") {
		t.Error("prompt must forbid invented numbers")
	}
	if !strings.Contains(prompt, "équipes municipales") {
		t.Error("municipal audience must adjust the register")
	}
}
