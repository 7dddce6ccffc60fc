package resolver

import (
	"strings"
	"testing"

	"github.com/mobilitystack/mobility-engine/internal/models"
)

func TestResolveExtractsWeatherAndWindow(t *testing.T) {
	r := NewResolver(nil, nil)

	res := r.Resolve(models.Question{Text: "Quelles intersections sont dangereuses sous la neige sur 7 jours?"})
	if res.Ambiguous {
		t.Fatalf("specific question flagged ambiguous: %s", res.Reason)
	}
	if res.Question.Weather != models.WeatherSnow {
		t.Fatalf("weather = %s, want snow", res.Question.Weather)
	}
	if res.Question.Window.Label != models.WindowLast7Days {
		t.Fatalf("window label = %s, want last_7_days", res.Question.Window.Label)
	}
}

func TestResolveVagueNeighborhoodQuestionIsAmbiguous(t *testing.T) {
	r := NewResolver(nil, nil)

	res := r.Resolve(models.Question{Text: "Quels quartiers sont les plus touchés?"})
	if !res.Ambiguous {
		t.Fatal("vague neighborhood question not flagged ambiguous")
	}
	if len(res.Question.Options) < 2 {
		t.Fatalf("got %d refinement options, want at least 2", len(res.Question.Options))
	}
	for _, opt := range res.Question.Options {
		if opt.Question == "" || opt.Label == "" {
			t.Fatalf("refinement option not fully specified: %+v", opt)
		}
	}
}

func TestRefinementsPreserveWeatherQualifier(t *testing.T) {
	r := NewResolver(nil, nil)

	res := r.Resolve(models.Question{Text: "Où est-ce que ça coince sous la neige?"})
	if !res.Ambiguous {
		t.Fatal("vague question not flagged ambiguous")
	}
	if res.Question.Weather != models.WeatherSnow {
		t.Fatalf("weather = %s, want snow", res.Question.Weather)
	}
	for _, opt := range res.Question.Options {
		if !strings.Contains(strings.ToLower(opt.Question), "neige") {
			t.Errorf("option %q dropped the weather qualifier", opt.Question)
		}
	}
}

func TestResolveConcreteSourceIsNotAmbiguous(t *testing.T) {
	r := NewResolver(nil, nil)

	res := r.Resolve(models.Question{Text: "Quels sont les problèmes de collisions au centre-ville?"})
	if res.Ambiguous {
		t.Fatal("question naming collisions flagged ambiguous")
	}
}

func TestContextCollectsMatchedEntries(t *testing.T) {
	r := NewResolver(nil, nil)

	res := r.Resolve(models.Question{Text: "Combien de requêtes 311 pour nids-de-poule?"})
	if !strings.Contains(res.Context, "Requêtes 311") {
		t.Fatalf("context missing dataset description: %q", res.Context)
	}
}
