package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mobilitystack/mobility-engine/internal/utils"
)

// File names expected inside the data directory. The upstream ingestion
// pipeline writes these already normalized; the loader only maps columns.
const (
	collisionsFile = "collisions.csv"
	requestsFile   = "service_requests.csv"
	stopsFile      = "transit_stops.csv"
	weatherFile    = "weather.csv"
)

const dateLayout = "2006-01-02"

// Load reads the normalized CSV exports from dir and assembles a snapshot.
// A missing or unreadable file marks its source unavailable; a file with
// rejected rows marks it degraded. Load only fails when no source could be
// read at all.
func Load(dir string, logger *slog.Logger) (*Snapshot, error) {
	if logger == nil {
		logger = slog.Default()
	}
	snap := &Snapshot{Status: make(map[Source]LoadStatus, 4)}

	snap.Status[SourceCollisions] = loadSource(logger, dir, collisionsFile, func(rec record) error {
		row, err := parseCollision(rec)
		if err != nil {
			return err
		}
		snap.Collisions = append(snap.Collisions, row)
		return nil
	})
	snap.Status[SourceServiceRequests] = loadSource(logger, dir, requestsFile, func(rec record) error {
		row, err := parseRequest(rec)
		if err != nil {
			return err
		}
		snap.Requests = append(snap.Requests, row)
		return nil
	})
	snap.Status[SourceTransitStops] = loadSource(logger, dir, stopsFile, func(rec record) error {
		row, err := parseStop(rec)
		if err != nil {
			return err
		}
		snap.Stops = append(snap.Stops, row)
		return nil
	})
	snap.Status[SourceWeather] = loadSource(logger, dir, weatherFile, func(rec record) error {
		row, err := parseWeather(rec)
		if err != nil {
			return err
		}
		snap.Weather = append(snap.Weather, row)
		return nil
	})

	for src, st := range snap.Status {
		if st != LoadOK {
			logger.Warn("dataset source not fully loaded", "source", string(src), "status", string(st))
		}
	}
	if len(snap.Collisions) == 0 && len(snap.Requests) == 0 {
		return nil, fmt.Errorf("dataset: no usable rows in %s", dir)
	}
	return snap, nil
}

// record gives parse functions access to fields by header name.
type record struct {
	header map[string]int
	fields []string
}

func (r record) get(name string) string {
	idx, ok := r.header[name]
	if !ok || idx >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[idx])
}

func loadSource(logger *slog.Logger, dir, name string, add func(record) error) LoadStatus {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		logger.Warn("dataset file unavailable", "file", name, "error", err)
		return LoadUnavailable
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	head, err := r.Read()
	if err != nil {
		logger.Warn("dataset header unreadable", "file", name, "error", err)
		return LoadUnavailable
	}
	header := make(map[string]int, len(head))
	for i, h := range head {
		header[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var total, rejected int
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rejected++
			continue
		}
		total++
		if err := add(record{header: header, fields: fields}); err != nil {
			rejected++
		}
	}
	switch {
	case total == 0 || rejected == total:
		return LoadUnavailable
	case rejected > 0:
		logger.Warn("dataset rows rejected", "file", name, "rejected", rejected, "total", total)
		return LoadDegraded
	default:
		return LoadOK
	}
}

func parseCollision(rec record) (Collision, error) {
	date, err := time.Parse(dateLayout, rec.get("date"))
	if err != nil {
		return Collision{}, err
	}
	sev, _ := strconv.Atoi(rec.get("severity"))
	hour, _ := strconv.Atoi(rec.get("hour"))
	lat, _ := strconv.ParseFloat(rec.get("latitude"), 64)
	lon, _ := strconv.ParseFloat(rec.get("longitude"), 64)
	inter := rec.get("intersection")
	if inter == "" {
		return Collision{}, fmt.Errorf("collision row without intersection")
	}
	return Collision{
		Date:         date,
		Intersection: inter,
		Borough:      rec.get("borough"),
		Severity:     sev,
		Hour:         hour,
		Latitude:     lat,
		Longitude:    lon,
		Condition:    ClassifyCondition(utils.Fold(rec.get("condition"))),
	}, nil
}

func parseRequest(rec record) (ServiceRequest, error) {
	date, err := time.Parse(dateLayout, rec.get("date"))
	if err != nil {
		return ServiceRequest{}, err
	}
	cat := rec.get("category")
	if cat == "" {
		return ServiceRequest{}, fmt.Errorf("service request row without category")
	}
	temp, err := strconv.ParseFloat(rec.get("day_temp_c"), 64)
	if err != nil {
		temp = 0
	}
	return ServiceRequest{
		Date:     date,
		Borough:  rec.get("borough"),
		Category: cat,
		Status:   rec.get("status"),
		DayTempC: temp,
	}, nil
}

func parseStop(rec record) (TransitStop, error) {
	lat, err := strconv.ParseFloat(rec.get("latitude"), 64)
	if err != nil {
		return TransitStop{}, err
	}
	lon, err := strconv.ParseFloat(rec.get("longitude"), 64)
	if err != nil {
		return TransitStop{}, err
	}
	return TransitStop{
		ID:        rec.get("stop_id"),
		Name:      rec.get("stop_name"),
		Latitude:  lat,
		Longitude: lon,
	}, nil
}

func parseWeather(rec record) (WeatherObservation, error) {
	date, err := time.Parse(dateLayout, rec.get("date"))
	if err != nil {
		return WeatherObservation{}, err
	}
	mean, _ := strconv.ParseFloat(rec.get("mean_temp_c"), 64)
	precip, _ := strconv.ParseFloat(rec.get("precip_mm"), 64)
	snow, _ := strconv.ParseFloat(rec.get("snow_cm"), 64)
	return WeatherObservation{Date: date, MeanTemp: mean, PrecipMM: precip, SnowCM: snow}, nil
}
