// Package router maps an analyzable question to exactly one analysis kind.
//
// Precedence is the declaration order of the route table: combined-signal
// patterns (service+weather, weather+street) are tested before the
// single-signal ones they would otherwise shadow, and the first match wins.
// A question matching no route is out of scope; there is no default kind.
package router

import (
	"github.com/mobilitystack/mobility-engine/internal/models"
	"github.com/mobilitystack/mobility-engine/internal/utils"
)

var (
	serviceTokens = []string{"311", "requete", "plainte", "nid-de-poule", "nid de poule", "deneigement", "signalisation"}
	// Routing weather tokens cover precipitation wording only; temperature
	// wording stays with the service temperature route.
	weatherTokens = []string{"neige", "enneig", "tempete", "pluie", "averse", "verglas", "glace", "gel", "meteo", "precipitation", "intemperie", "snow", "rain", "ice"}
	typeTokens    = []string{"type", "categorie", "sorte", "quel genre", "repartition"}
	trendTokens   = []string{"tendance", "evolution", "hausse", "baisse", "augmente", "diminue", "en ce moment", "ces jours-ci", "actuellement", "recemment", "trend"}
	streetTokens  = []string{"rue", "intersection", "boulevard", "avenue", "coin", "axe", "troncon"}
	collisionTokens = []string{"collision", "accident", "blesse", "securite"}
	riskTokens      = []string{"danger", "risque", "pire", "grave"}
	transitTokens   = []string{"stm", "bus", "metro", "arret", "station", "transport collectif"}
	areaTokens      = []string{"quartier", "arrondissement", "secteur"}
	hotspotTokens   = []string{"congestion", "bouchon", "trafic", "circulation", "danger", "dangereuse", "dangereux", "hotspot", "zone chaude", "point chaud", "collision", "accident"}
)

type route struct {
	kind  models.AnalysisKind
	match func(folded string) bool
}

var routes = []route{
	{models.KindServiceTypesWeather, func(s string) bool {
		return has(s, serviceTokens) && (has(s, weatherTokens) || has(s, typeTokens))
	}},
	{models.KindTrendIncidents, func(s string) bool {
		return has(s, trendTokens) && (has(s, collisionTokens) || has(s, serviceTokens) || has(s, hotspotTokens))
	}},
	{models.KindHotspotsWeather, func(s string) bool {
		return has(s, weatherTokens) && has(s, streetTokens) && (has(s, collisionTokens) || has(s, riskTokens))
	}},
	{models.KindServiceTemperature, func(s string) bool {
		return has(s, serviceTokens)
	}},
	{models.KindTransitProximity, func(s string) bool {
		return has(s, transitTokens)
	}},
	{models.KindNeighborhoodsWeather, func(s string) bool {
		return has(s, areaTokens) && has(s, weatherTokens)
	}},
	{models.KindNeighborhoods, func(s string) bool {
		return has(s, areaTokens)
	}},
	{models.KindHotspotsWeather, func(s string) bool {
		return has(s, weatherTokens) && (has(s, collisionTokens) || has(s, riskTokens))
	}},
	{models.KindHotspots, func(s string) bool {
		return has(s, hotspotTokens) || has(s, riskTokens)
	}},
}

// Route resolves the analysis kind for a question. It returns
// models.ErrOutOfScope when no route matches.
func Route(question string) (models.AnalysisKind, error) {
	folded := utils.Fold(question)
	for _, r := range routes {
		if r.match(folded) {
			return r.kind, nil
		}
	}
	return "", models.ErrOutOfScope
}

func has(folded string, tokens []string) bool {
	return utils.ContainsAny(folded, tokens...)
}
