package router

import (
	"errors"
	"testing"

	"github.com/mobilitystack/mobility-engine/internal/models"
)

func TestRoutePrecedence(t *testing.T) {
	cases := []struct {
		question string
		want     models.AnalysisKind
	}{
		// Combined signals win over the single-signal routes below them.
		{"Quels types de requêtes 311 explosent sous la neige?", models.KindServiceTypesWeather},
		{"Répartition des requêtes 311 par type", models.KindServiceTypesWeather},
		{"Tendance des collisions en ce moment?", models.KindTrendIncidents},
		{"Est-ce que les requêtes 311 augmentent?", models.KindTrendIncidents},
		{"Quelles intersections sont dangereuses sous la pluie?", models.KindHotspotsWeather},
		{"Combien de requêtes 311 selon la température?", models.KindServiceTemperature},
		{"Combien de requêtes 311 sont ouvertes ce mois-ci?", models.KindServiceTemperature},
		{"Quels arrêts de bus sont proches des collisions?", models.KindTransitProximity},
		{"Quels quartiers souffrent le plus sous la neige?", models.KindNeighborhoodsWeather},
		{"Quels quartiers ont le plus de collisions?", models.KindNeighborhoods},
		{"Impact du verglas sur les accidents?", models.KindHotspotsWeather},
		{"Où sont les pires zones de congestion?", models.KindHotspots},
	}

	for _, tc := range cases {
		got, err := Route(tc.question)
		if err != nil {
			t.Errorf("Route(%q) returned error %v", tc.question, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Route(%q) = %s, want %s", tc.question, got, tc.want)
		}
	}
}

func TestRouteUnroutableIsOutOfScope(t *testing.T) {
	_, err := Route("Quelle est la capitale de l'Australie?")
	if !errors.Is(err, models.ErrOutOfScope) {
		t.Fatalf("err = %v, want ErrOutOfScope", err)
	}
}

func TestRouteAreaBeatsBareHotspots(t *testing.T) {
	// Area wording must reach the neighborhood route even when collision
	// tokens would also satisfy the hotspot route further down.
	got, err := Route("Quels arrondissements ont le plus d'accidents?")
	if err != nil {
		t.Fatal(err)
	}
	if got != models.KindNeighborhoods {
		t.Fatalf("got %s, want %s", got, models.KindNeighborhoods)
	}
}
