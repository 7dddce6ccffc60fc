package engine

import (
	"fmt"

	"github.com/mobilitystack/mobility-engine/internal/dataset"
	"github.com/mobilitystack/mobility-engine/internal/models"
)

// CollisionPredicate returns the row predicate for collisions under a window
// and weather filter. Both window bounds are inclusive. The predicate is
// pure; applying it to an already filtered slice changes nothing.
func CollisionPredicate(win models.TimeWindow, weather models.WeatherFilter) func(dataset.Collision) bool {
	return func(c dataset.Collision) bool {
		return win.Contains(c.Date) && conditionMatches(weather, c.Condition)
	}
}

// RequestPredicate returns the row predicate for service requests under a
// window. Weather narrowing for requests happens via the temperature proxy,
// not here, so the window predicate is applied exactly once.
func RequestPredicate(win models.TimeWindow) func(dataset.ServiceRequest) bool {
	return func(r dataset.ServiceRequest) bool {
		return win.Contains(r.Date)
	}
}

func conditionMatches(f models.WeatherFilter, code dataset.ConditionCode) bool {
	switch f {
	case models.WeatherNone:
		return true
	case models.WeatherRain:
		return code == dataset.CondRain
	case models.WeatherSnow:
		return code == dataset.CondSnow
	case models.WeatherIce:
		return code == dataset.CondIce
	case models.WeatherAnyPrecipitation:
		return code == dataset.CondRain || code == dataset.CondSnow || code == dataset.CondIce
	default:
		return false
	}
}

// TempProxyMatches reports whether a daily temperature is plausible for the
// given condition. Service requests carry no weather annotation, so weather
// narrowing uses the joined day temperature as a proxy.
func TempProxyMatches(f models.WeatherFilter, tempC float64) bool {
	switch f {
	case models.WeatherNone:
		return true
	case models.WeatherSnow:
		return tempC <= 0
	case models.WeatherIce:
		return tempC >= -5 && tempC <= 1
	case models.WeatherRain:
		return tempC > 0 && tempC <= 12
	case models.WeatherAnyPrecipitation:
		return tempC <= 12
	default:
		return false
	}
}

// tempTagMatches extends the proxy with the cold tag used by service-request
// analyses.
func tempTagMatches(tag string, f models.WeatherFilter, tempC float64) bool {
	if tag == "cold" {
		return tempC <= -8
	}
	return TempProxyMatches(f, tempC)
}

// FilterCollisions applies pred once and returns the kept rows.
func FilterCollisions(rows []dataset.Collision, pred func(dataset.Collision) bool) []dataset.Collision {
	out := make([]dataset.Collision, 0, len(rows))
	for _, r := range rows {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// FilterRequests applies pred once and returns the kept rows.
func FilterRequests(rows []dataset.ServiceRequest, pred func(dataset.ServiceRequest) bool) []dataset.ServiceRequest {
	out := make([]dataset.ServiceRequest, 0, len(rows))
	for _, r := range rows {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// filterExpression renders the literal filter for the evidence trace.
func filterExpression(source string, win models.TimeWindow, weather models.WeatherFilter) string {
	expr := fmt.Sprintf("%s[%s <= date <= %s]", source, win.Start.Format("2006-01-02"), win.End.Format("2006-01-02"))
	if weather != models.WeatherNone {
		expr += fmt.Sprintf("[condition == %s]", weather)
	}
	return expr
}
