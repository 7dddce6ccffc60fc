package dataset

import "time"

// Source identifies one of the normalized datasets in a snapshot.
type Source string

const (
	SourceCollisions      Source = "collisions"
	SourceServiceRequests Source = "service_requests"
	SourceTransitStops    Source = "transit_stops"
	SourceWeather         Source = "weather"
)

// LoadStatus reports how a source made it into the snapshot.
type LoadStatus string

const (
	LoadOK          LoadStatus = "ok"
	LoadDegraded    LoadStatus = "degraded"
	LoadUnavailable LoadStatus = "unavailable"
)

// ConditionCode is the controlled vocabulary for weather conditions attached
// to collision records. Free-text conditions are classified at load time;
// analyses never match raw strings.
type ConditionCode string

const (
	CondClear ConditionCode = "clear"
	CondRain  ConditionCode = "rain"
	CondSnow  ConditionCode = "snow"
	CondIce   ConditionCode = "ice"
	CondOther ConditionCode = "other"
)

// Collision is one road collision record.
type Collision struct {
	Date         time.Time
	Intersection string
	Borough      string
	Severity     int
	Hour         int
	Latitude     float64
	Longitude    float64
	Condition    ConditionCode
}

// ServiceRequest is one non-emergency municipal service request. DayTempC is
// the daily mean temperature joined from the weather source; it serves as a
// proxy when requests carry no weather annotation of their own.
type ServiceRequest struct {
	Date     time.Time
	Borough  string
	Category string
	Status   string
	DayTempC float64
}

// TransitStop is one fixed transit stop location.
type TransitStop struct {
	ID        string
	Name      string
	Latitude  float64
	Longitude float64
}

// WeatherObservation is one daily station observation.
type WeatherObservation struct {
	Date     time.Time
	MeanTemp float64
	PrecipMM float64
	SnowCM   float64
}

// Snapshot is the immutable dataset view the engine computes over. The
// provider builds it once; the engine only reads it.
type Snapshot struct {
	Collisions []Collision
	Requests   []ServiceRequest
	Stops      []TransitStop
	Weather    []WeatherObservation

	Status map[Source]LoadStatus
}

// Anchor returns the most recent record date across collisions and service
// requests. Relative windows are anchored here, not at wall-clock now, so the
// same snapshot always yields the same answer.
func (s *Snapshot) Anchor() time.Time {
	var anchor time.Time
	for _, c := range s.Collisions {
		if c.Date.After(anchor) {
			anchor = c.Date
		}
	}
	for _, r := range s.Requests {
		if r.Date.After(anchor) {
			anchor = r.Date
		}
	}
	return anchor
}

// SourceStatus returns the load status for a source, defaulting to
// unavailable for sources the provider never reported.
func (s *Snapshot) SourceStatus(src Source) LoadStatus {
	if s.Status == nil {
		return LoadUnavailable
	}
	if st, ok := s.Status[src]; ok {
		return st
	}
	return LoadUnavailable
}
