package compose

import "github.com/mobilitystack/mobility-engine/internal/models"

// counterpoint is the standing limitation and the suggested follow-up check
// for one analysis kind. Surfacing both keeps a strong-looking table from
// being read as more than it is.
type counterpoint struct {
	limit     string
	nextCheck string
}

var counterpoints = map[models.AnalysisKind]counterpoint{
	models.KindHotspots: {
		limit:     "Le classement reflète les collisions déclarées; les quasi-collisions et les tronçons peu fréquentés restent invisibles.",
		nextCheck: "Croiser les intersections en tête avec les volumes de circulation pour distinguer exposition et dangerosité.",
	},
	models.KindHotspotsWeather: {
		limit:     "La condition météo est celle relevée au moment de l'impact; une chaussée encore glissante après l'épisode est classée temps clair.",
		nextCheck: "Comparer le même classement sur une période sans précipitations pour isoler l'effet météo.",
	},
	models.KindTrendIncidents: {
		limit:     "Deux fenêtres égales ne font pas une tendance de fond; un seul événement météo peut expliquer l'écart.",
		nextCheck: "Vérifier la variation sur une fenêtre plus longue avant de conclure à une amélioration ou une dégradation.",
	},
	models.KindServiceTypesWeather: {
		limit:     "La condition météo des requêtes est estimée via la température du jour, pas observée; l'indice reste un proxy.",
		nextCheck: "Confirmer les types en tête avec les dates réelles d'épisodes météo plutôt que le proxy de température.",
	},
	models.KindServiceTemperature: {
		limit:     "La température du jour n'explique pas à elle seule le volume de requêtes; les campagnes saisonnières de la ville pèsent aussi.",
		nextCheck: "Comparer la répartition avec la même période de l'année précédente.",
	},
	models.KindNeighborhoods: {
		limit:     "Le score combiné pondère collisions et requêtes 311 de façon fixe (2:1); il ne reflète ni la population ni la superficie des quartiers.",
		nextCheck: "Rapporter les comptes à la population des arrondissements pour un classement par habitant.",
	},
	models.KindNeighborhoodsWeather: {
		limit:     "Les quartiers très fréquentés dominent mécaniquement les comptes bruts sous toutes les conditions.",
		nextCheck: "Comparer le classement sous condition avec le classement toutes conditions pour repérer les écarts réels.",
	},
	models.KindTransitProximity: {
		limit:     "La jonction par cellules de grille approxime la proximité; un arrêt en bordure de cellule peut être rattaché à la mauvaise zone.",
		nextCheck: "Réduire le pas de grille ou vérifier les zones en tête sur carte avant toute intervention.",
	},
}
