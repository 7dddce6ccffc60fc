package models

import "time"

// ScopeClass classifies a raw question before any analytical work is done.
type ScopeClass string

const (
	ScopeSmalltalk  ScopeClass = "smalltalk"
	ScopeOutOfScope ScopeClass = "out_of_scope"
	ScopeAnalyzable ScopeClass = "analyzable"
)

// AnalysisKind enumerates the closed set of supported computations. Routing
// maps every analyzable question to exactly one kind; there is no open-ended
// dispatch.
type AnalysisKind string

const (
	KindHotspots             AnalysisKind = "hotspots"
	KindHotspotsWeather      AnalysisKind = "hotspots_weather"
	KindTrendIncidents       AnalysisKind = "trend_incidents"
	KindServiceTypesWeather  AnalysisKind = "service_types_weather"
	KindServiceTemperature   AnalysisKind = "service_temperature"
	KindNeighborhoods        AnalysisKind = "neighborhoods"
	KindNeighborhoodsWeather AnalysisKind = "neighborhoods_weather"
	KindTransitProximity     AnalysisKind = "transit_proximity"
)

// AnalysisKinds returns every supported kind in declaration order.
func AnalysisKinds() []AnalysisKind {
	return []AnalysisKind{
		KindHotspots,
		KindHotspotsWeather,
		KindTrendIncidents,
		KindServiceTypesWeather,
		KindServiceTemperature,
		KindNeighborhoods,
		KindNeighborhoodsWeather,
		KindTransitProximity,
	}
}

// WeatherFilter narrows an analysis to rows recorded under a weather
// condition. AnyPrecipitation is the union of rain, snow and ice.
type WeatherFilter string

const (
	WeatherNone             WeatherFilter = "none"
	WeatherRain             WeatherFilter = "rain"
	WeatherSnow             WeatherFilter = "snow"
	WeatherIce              WeatherFilter = "ice"
	WeatherAnyPrecipitation WeatherFilter = "any_precipitation"
)

// WindowLabel names a preset reporting window.
type WindowLabel string

const (
	WindowLast7Days   WindowLabel = "last_7_days"
	WindowLast30Days  WindowLabel = "last_30_days"
	WindowLast3Months WindowLabel = "last_3_months"
	WindowLast12Months WindowLabel = "last_12_months"
	WindowCustom      WindowLabel = "custom"
)

// PresetDays maps a preset label to its window length. Custom windows return 0.
func PresetDays(label WindowLabel) int {
	switch label {
	case WindowLast7Days:
		return 7
	case WindowLast30Days:
		return 30
	case WindowLast3Months:
		return 90
	case WindowLast12Months:
		return 365
	default:
		return 0
	}
}

// TimeWindow bounds dataset filtering. Both ends are inclusive.
type TimeWindow struct {
	Start time.Time
	End   time.Time
	Label WindowLabel
}

// Valid reports whether the window has both bounds and Start <= End.
func (w TimeWindow) Valid() bool {
	return !w.Start.IsZero() && !w.End.IsZero() && !w.Start.After(w.End)
}

// Days returns the inclusive span of the window in days, at least 1.
func (w TimeWindow) Days() int {
	if !w.Valid() {
		return 0
	}
	days := int(w.End.Sub(w.Start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}

// Contains reports whether ts falls inside the window, bounds included.
func (w TimeWindow) Contains(ts time.Time) bool {
	return !ts.Before(w.Start) && !ts.After(w.End)
}

// Refinement is a fully specified alternate question offered when the
// original one is ambiguous.
type Refinement struct {
	Label    string
	Question string
}

// Question carries the request state as it moves through the pipeline. Kind
// stays empty until the router has resolved it.
type Question struct {
	Text    string
	Kind    AnalysisKind
	Window  TimeWindow
	Weather WeatherFilter
	Options []Refinement
}

// AnalysisRequest is the fully resolved input handed to the executor.
// Params holds free-form residual parameters such as the trend scope or the
// temperature proxy tag for service-request analyses.
type AnalysisRequest struct {
	Kind    AnalysisKind
	Window  TimeWindow
	Weather WeatherFilter
	Params  map[string]string
}

// Residual parameter keys understood by the executor.
const (
	ParamTrendScope = "trend_scope"
	ParamTempTag    = "temp_tag"
)

// Trend scope values.
const (
	TrendScopeCollisions = "collisions"
	TrendScopeRequests   = "requests"
	TrendScopeBoth       = "both"
)
