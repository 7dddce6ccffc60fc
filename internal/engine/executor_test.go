package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/mobilitystack/mobility-engine/internal/config"
	"github.com/mobilitystack/mobility-engine/internal/dataset"
	"github.com/mobilitystack/mobility-engine/internal/models"
)

func testAnalysisConfig() config.AnalysisConfig {
	return config.AnalysisConfig{
		MinEvidenceRows:    5,
		PartialFloor:       3,
		MinWeatherTypeRows: 2,
		TopZones:           5,
		TopNeighborhoods:   8,
		Grid:               config.GridConfig{LatStep: 0.008, LonStep: 0.010},
		WidenCeilingDays:   365,
	}
}

// collisionsAt builds n collisions on the same intersection, one per day
// counting back from end.
func collisionsAt(intersection, borough string, end time.Time, n, severity int, cond dataset.ConditionCode) []dataset.Collision {
	rows := make([]dataset.Collision, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, dataset.Collision{
			Date:         end.AddDate(0, 0, -i),
			Intersection: intersection,
			Borough:      borough,
			Severity:     severity,
			Hour:         8,
			Latitude:     45.52,
			Longitude:    -73.57,
			Condition:    cond,
		})
	}
	return rows
}

func TestHotspotsRanking(t *testing.T) {
	end := day(2024, 3, 31)
	snap := &dataset.Snapshot{}
	snap.Collisions = append(snap.Collisions, collisionsAt("Papineau / Sherbrooke", "Ville-Marie", end, 8, 1, dataset.CondClear)...)
	snap.Collisions = append(snap.Collisions, collisionsAt("Saint-Denis / Beaubien", "Rosemont", end, 3, 3, dataset.CondClear)...)

	exec := NewExecutor(snap, testAnalysisConfig(), nil)
	res := exec.Execute(models.AnalysisRequest{
		Kind:    models.KindHotspots,
		Window:  models.TimeWindow{Start: day(2024, 3, 1), End: end, Label: models.WindowLast30Days},
		Weather: models.WeatherNone,
	})

	if res.Status != models.StatusVerified {
		t.Fatalf("status = %s, want verified", res.Status)
	}
	if res.BaseCount != 11 {
		t.Errorf("base count = %d, want 11", res.BaseCount)
	}
	if len(res.Table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(res.Table.Rows))
	}
	if res.Table.Rows[0][0] != "Papineau / Sherbrooke" || res.Table.Rows[0][1] != "8" {
		t.Errorf("top row = %v, want Papineau / Sherbrooke with 8", res.Table.Rows[0])
	}
	if res.Table.Rows[1][2] != "3" {
		t.Errorf("severe count for second row = %s, want 3", res.Table.Rows[1][2])
	}
	if len(res.Trace.Steps) == 0 {
		t.Error("evidence trace must not be empty")
	}
}

func TestHotspotsWeatherBreakdownSharesUseBaseCount(t *testing.T) {
	end := day(2024, 3, 31)
	snap := &dataset.Snapshot{}
	snap.Collisions = append(snap.Collisions, collisionsAt("A", "X", end, 6, 1, dataset.CondClear)...)
	snap.Collisions = append(snap.Collisions, collisionsAt("B", "X", end, 4, 3, dataset.CondSnow)...)

	exec := NewExecutor(snap, testAnalysisConfig(), nil)
	res := exec.Execute(models.AnalysisRequest{
		Kind:    models.KindHotspotsWeather,
		Window:  models.TimeWindow{Start: day(2024, 3, 1), End: end, Label: models.WindowLast30Days},
		Weather: models.WeatherNone,
	})

	if res.Status != models.StatusVerified {
		t.Fatalf("status = %s, want verified", res.Status)
	}
	if res.BaseCount != 10 {
		t.Fatalf("base count = %d, want 10", res.BaseCount)
	}
	var snowShare string
	for _, row := range res.Table.Rows {
		if row[0] == "Neige" {
			snowShare = row[2]
		}
	}
	if snowShare != "40.0" {
		t.Errorf("snow share = %q, want 40.0 (4 of 10 filtered rows)", snowShare)
	}
}

func TestHotspotsWeatherSpecificConditionRanksIntersections(t *testing.T) {
	end := day(2024, 3, 31)
	snap := &dataset.Snapshot{}
	snap.Collisions = append(snap.Collisions, collisionsAt("A", "X", end, 6, 1, dataset.CondSnow)...)
	snap.Collisions = append(snap.Collisions, collisionsAt("B", "X", end, 9, 1, dataset.CondClear)...)

	exec := NewExecutor(snap, testAnalysisConfig(), nil)
	res := exec.Execute(models.AnalysisRequest{
		Kind:    models.KindHotspotsWeather,
		Window:  models.TimeWindow{Start: day(2024, 3, 1), End: end, Label: models.WindowLast30Days},
		Weather: models.WeatherSnow,
	})

	if res.BaseCount != 6 {
		t.Fatalf("base count = %d, want only the 6 snow rows", res.BaseCount)
	}
	if len(res.Table.Rows) != 1 || res.Table.Rows[0][0] != "A" {
		t.Fatalf("table = %v, want single row for intersection A", res.Table.Rows)
	}
}

func TestTrendIncidentsDecrease(t *testing.T) {
	// 6 collisions in the current 30-day window, 12 in the preceding one.
	current := models.TimeWindow{Start: day(2024, 3, 2), End: day(2024, 3, 31), Label: models.WindowLast30Days}
	snap := &dataset.Snapshot{}
	snap.Collisions = append(snap.Collisions, collisionsAt("A", "X", day(2024, 3, 31), 6, 1, dataset.CondClear)...)
	snap.Collisions = append(snap.Collisions, collisionsAt("A", "X", day(2024, 3, 1), 12, 1, dataset.CondClear)...)

	exec := NewExecutor(snap, testAnalysisConfig(), nil)
	res := exec.Execute(models.AnalysisRequest{
		Kind:    models.KindTrendIncidents,
		Window:  current,
		Weather: models.WeatherNone,
		Params:  map[string]string{models.ParamTrendScope: models.TrendScopeCollisions},
	})

	if res.Status != models.StatusVerified {
		t.Fatalf("status = %s, want verified", res.Status)
	}
	row := res.Table.Rows[0]
	if row[0] != "Collisions" || row[1] != "6" || row[2] != "12" {
		t.Fatalf("segment row = %v, want Collisions 6 vs 12", row)
	}
	if row[4] != "-50.0" {
		t.Errorf("variation = %q, want -50.0", row[4])
	}
	if res.Key.Value != -50 {
		t.Errorf("key metric = %.1f, want -50", res.Key.Value)
	}
}

func TestTrendIncidentsEmptyPreviousPeriodCaveat(t *testing.T) {
	current := models.TimeWindow{Start: day(2024, 3, 2), End: day(2024, 3, 31), Label: models.WindowLast30Days}
	snap := &dataset.Snapshot{}
	snap.Collisions = append(snap.Collisions, collisionsAt("A", "X", day(2024, 3, 31), 7, 1, dataset.CondClear)...)

	exec := NewExecutor(snap, testAnalysisConfig(), nil)
	res := exec.Execute(models.AnalysisRequest{
		Kind:    models.KindTrendIncidents,
		Window:  current,
		Weather: models.WeatherNone,
		Params:  map[string]string{models.ParamTrendScope: models.TrendScopeCollisions},
	})

	if res.Table.Rows[0][4] != "n/d" {
		t.Errorf("variation = %q, want n/d with empty previous period", res.Table.Rows[0][4])
	}
	found := false
	for _, c := range res.Caveats {
		if strings.Contains(c, "Période précédente vide") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing empty-previous-period caveat, got %v", res.Caveats)
	}
}

func TestServiceTemperatureBuckets(t *testing.T) {
	end := day(2024, 3, 31)
	snap := &dataset.Snapshot{}
	temps := []float64{-10, -10, -3, 2, 2, 2, 10}
	for i, temp := range temps {
		snap.Requests = append(snap.Requests, dataset.ServiceRequest{
			Date:     end.AddDate(0, 0, -i),
			Borough:  "X",
			Category: "Déneigement",
			DayTempC: temp,
		})
	}

	exec := NewExecutor(snap, testAnalysisConfig(), nil)
	res := exec.Execute(models.AnalysisRequest{
		Kind:    models.KindServiceTemperature,
		Window:  models.TimeWindow{Start: day(2024, 3, 1), End: end, Label: models.WindowLast30Days},
		Weather: models.WeatherNone,
	})

	if res.Status != models.StatusVerified {
		t.Fatalf("status = %s, want verified", res.Status)
	}
	want := map[string]string{
		"Sous -5 °C": "2",
		"-5 à 0 °C":  "1",
		"0 à 5 °C":   "3",
		"5 à 15 °C":  "1",
	}
	if len(res.Table.Rows) != len(want) {
		t.Fatalf("rows = %d, want %d non-empty buckets", len(res.Table.Rows), len(want))
	}
	for _, row := range res.Table.Rows {
		if want[row[0]] != row[1] {
			t.Errorf("bucket %s = %s requests, want %s", row[0], row[1], want[row[0]])
		}
	}
	if res.Key.Label != "Requêtes dans la tranche 0 à 5 °C" {
		t.Errorf("key metric label = %q", res.Key.Label)
	}
}

func TestServiceTypesWeatherLift(t *testing.T) {
	end := day(2024, 3, 31)
	snap := &dataset.Snapshot{}
	add := func(category string, temp float64, n int) {
		for i := 0; i < n; i++ {
			snap.Requests = append(snap.Requests, dataset.ServiceRequest{
				Date: end, Borough: "X", Category: category, DayTempC: temp,
			})
		}
	}
	// Snow days (temp <= 0): déneigement dominates. Other days: potholes.
	add("Déneigement", -5, 8)
	add("Nid-de-poule", -5, 2)
	add("Nid-de-poule", 10, 9)
	add("Déneigement", 10, 1)

	exec := NewExecutor(snap, testAnalysisConfig(), nil)
	res := exec.Execute(models.AnalysisRequest{
		Kind:    models.KindServiceTypesWeather,
		Window:  models.TimeWindow{Start: day(2024, 3, 1), End: end, Label: models.WindowLast30Days},
		Weather: models.WeatherSnow,
	})

	if res.Status != models.StatusVerified {
		t.Fatalf("status = %s, want verified", res.Status)
	}
	if res.Table.Rows[0][0] != "Déneigement" {
		t.Fatalf("top category = %q, want Déneigement", res.Table.Rows[0][0])
	}
	// lift = (8/10) / ((1+1)/10) = 4.0
	if res.Table.Rows[0][3] != "4.00" {
		t.Errorf("lift = %q, want 4.00", res.Table.Rows[0][3])
	}
	if res.BaseCount != 20 {
		t.Errorf("base count = %d, want 20 window rows", res.BaseCount)
	}
}

func TestNeighborhoodsCombinedScore(t *testing.T) {
	end := day(2024, 3, 31)
	snap := &dataset.Snapshot{}
	snap.Collisions = append(snap.Collisions, collisionsAt("A", "Rosemont", end, 3, 1, dataset.CondClear)...)
	snap.Collisions = append(snap.Collisions, collisionsAt("B", "Ville-Marie", end, 1, 1, dataset.CondClear)...)
	for i := 0; i < 4; i++ {
		snap.Requests = append(snap.Requests, dataset.ServiceRequest{
			Date: end.AddDate(0, 0, -i), Borough: "Ville-Marie", Category: "Travaux",
		})
	}

	exec := NewExecutor(snap, testAnalysisConfig(), nil)
	res := exec.Execute(models.AnalysisRequest{
		Kind:    models.KindNeighborhoods,
		Window:  models.TimeWindow{Start: day(2024, 3, 1), End: end, Label: models.WindowLast30Days},
		Weather: models.WeatherNone,
	})

	// Rosemont: 3*2+0 = 6. Ville-Marie: 1*2+4 = 6. Tie broken by name.
	if res.Table.Rows[0][0] != "Rosemont" || res.Table.Rows[0][3] != "6" {
		t.Errorf("top row = %v, want Rosemont with score 6", res.Table.Rows[0])
	}
	if res.Table.Rows[1][0] != "Ville-Marie" {
		t.Errorf("second row = %v, want Ville-Marie", res.Table.Rows[1])
	}
}

func TestTransitProximityJoinsGridCells(t *testing.T) {
	end := day(2024, 3, 31)
	snap := &dataset.Snapshot{}
	// Six collisions near a stop, three far from any stop.
	snap.Collisions = append(snap.Collisions, collisionsAt("A", "X", end, 6, 3, dataset.CondClear)...)
	for i := 0; i < 3; i++ {
		snap.Collisions = append(snap.Collisions, dataset.Collision{
			Date: end, Intersection: "B", Borough: "X", Severity: 1,
			Latitude: 45.80, Longitude: -73.90, Condition: dataset.CondClear,
		})
	}
	snap.Stops = []dataset.TransitStop{{ID: "S1", Name: "Station Papineau", Latitude: 45.52, Longitude: -73.57}}

	exec := NewExecutor(snap, testAnalysisConfig(), nil)
	res := exec.Execute(models.AnalysisRequest{
		Kind:    models.KindTransitProximity,
		Window:  models.TimeWindow{Start: day(2024, 3, 1), End: end, Label: models.WindowLast30Days},
		Weather: models.WeatherNone,
	})

	if res.Status != models.StatusVerified {
		t.Fatalf("status = %s, want verified", res.Status)
	}
	if len(res.Table.Rows) != 1 {
		t.Fatalf("rows = %d, want only the cell shared with a stop", len(res.Table.Rows))
	}
	row := res.Table.Rows[0]
	if row[1] != "6" || row[3] != "1" {
		t.Errorf("joined cell = %v, want 6 collisions and 1 stop", row)
	}
	if !strings.Contains(row[4], "Station Papineau") {
		t.Errorf("stop names = %q, want Station Papineau", row[4])
	}
}

func TestTransitProximityWithoutStopsIsInsufficient(t *testing.T) {
	end := day(2024, 3, 31)
	snap := &dataset.Snapshot{}
	snap.Collisions = append(snap.Collisions, collisionsAt("A", "X", end, 6, 1, dataset.CondClear)...)

	exec := NewExecutor(snap, testAnalysisConfig(), nil)
	res := exec.Execute(models.AnalysisRequest{
		Kind:    models.KindTransitProximity,
		Window:  models.TimeWindow{Start: day(2024, 3, 1), End: end, Label: models.WindowLast30Days},
		Weather: models.WeatherNone,
	})

	if res.Status != models.StatusInsufficient {
		t.Fatalf("status = %s, want insufficient without the stops source", res.Status)
	}
	if len(res.Caveats) == 0 {
		t.Error("missing source-unavailable caveat")
	}
}

func TestExecuteUnknownKind(t *testing.T) {
	exec := NewExecutor(&dataset.Snapshot{}, testAnalysisConfig(), nil)
	res := exec.Execute(models.AnalysisRequest{Kind: "sorcery"})
	if res.Status != models.StatusInsufficient {
		t.Fatalf("status = %s, want insufficient for unknown kind", res.Status)
	}
}

func TestGradePartialAtThreshold(t *testing.T) {
	end := day(2024, 3, 31)
	snap := &dataset.Snapshot{}
	snap.Collisions = append(snap.Collisions, collisionsAt("A", "X", end, 5, 1, dataset.CondClear)...)

	exec := NewExecutor(snap, testAnalysisConfig(), nil)
	res := exec.Execute(models.AnalysisRequest{
		Kind:    models.KindHotspots,
		Window:  models.TimeWindow{Start: day(2024, 3, 1), End: end, Label: models.WindowLast30Days},
		Weather: models.WeatherNone,
	})

	// Exactly MinEvidenceRows rows is not enough for verified.
	if res.Status != models.StatusPartial {
		t.Fatalf("status = %s, want partial at the evidence threshold", res.Status)
	}
}
