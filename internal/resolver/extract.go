package resolver

import (
	"github.com/mobilitystack/mobility-engine/internal/models"
	"github.com/mobilitystack/mobility-engine/internal/utils"
)

var (
	snowTokens = []string{"neige", "enneig", "tempete", "poudrerie", "snow"}
	rainTokens = []string{"pluie", "pleu", "mouill", "averse", "rain", "wet"}
	iceTokens  = []string{"verglas", "glace", "gel", "ice"}
	// Generic precipitation wording maps to the union filter.
	anyPrecipTokens = []string{"precipitation", "intemperie", "mauvais temps", "bad weather"}
	coldTokens      = []string{"froid", "frette", "grand froid", "cold"}
)

// ExtractWeather returns the weather filter implied by the folded question
// text, or WeatherNone. Specific conditions win over generic precipitation
// wording.
func ExtractWeather(folded string) models.WeatherFilter {
	switch {
	case utils.ContainsAny(folded, snowTokens...):
		return models.WeatherSnow
	case utils.ContainsAny(folded, iceTokens...):
		return models.WeatherIce
	case utils.ContainsAny(folded, rainTokens...):
		return models.WeatherRain
	case utils.ContainsAny(folded, anyPrecipTokens...):
		return models.WeatherAnyPrecipitation
	default:
		return models.WeatherNone
	}
}

// ExtractTempTag returns the temperature proxy tag for service-request
// analyses ("cold" when the question targets cold snaps), or empty.
func ExtractTempTag(folded string) string {
	if utils.ContainsAny(folded, coldTokens...) {
		return "cold"
	}
	return ""
}

// ExtractWindowLabel returns a preset label when the question overrides the
// ambient reporting window, or empty to keep it.
func ExtractWindowLabel(folded string) models.WindowLabel {
	switch {
	case utils.ContainsAny(folded, "7 jours", "sept jours", "cette semaine", "derniere semaine", "7 days"):
		return models.WindowLast7Days
	case utils.ContainsAny(folded, "30 jours", "ce mois", "dernier mois", "30 days"):
		return models.WindowLast30Days
	case utils.ContainsAny(folded, "3 mois", "trimestre", "90 jours"):
		return models.WindowLast3Months
	case utils.ContainsAny(folded, "12 mois", "1 an", "un an", "annee", "12 months", "year"):
		return models.WindowLast12Months
	default:
		return ""
	}
}

// WeatherPhrase renders a weather filter back into question wording, used to
// keep a stated qualifier attached to refinement options.
func WeatherPhrase(f models.WeatherFilter) string {
	switch f {
	case models.WeatherSnow:
		return "sous la neige"
	case models.WeatherRain:
		return "sous la pluie"
	case models.WeatherIce:
		return "par temps de verglas"
	case models.WeatherAnyPrecipitation:
		return "par temps de précipitations"
	default:
		return ""
	}
}
