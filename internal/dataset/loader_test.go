package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadFullDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "collisions.csv",
		"date,intersection,borough,severity,hour,latitude,longitude,condition\n"+
			"2024-03-30,Papineau / Sherbrooke,Ville-Marie,3,17,45.52,-73.57,Neige\n"+
			"2024-03-31,Saint-Denis / Beaubien,Rosemont,1,8,45.54,-73.60,Temps clair\n")
	writeFile(t, dir, "service_requests.csv",
		"date,borough,category,status,day_temp_c\n"+
			"2024-03-29,Rosemont,Déneigement,open,-4.5\n")
	writeFile(t, dir, "transit_stops.csv",
		"stop_id,stop_name,latitude,longitude\n"+
			"S1,Station Papineau,45.52,-73.57\n")
	writeFile(t, dir, "weather.csv",
		"date,mean_temp_c,precip_mm,snow_cm\n"+
			"2024-03-30,-3.0,0.0,4.0\n")

	snap, err := Load(dir, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Collisions) != 2 || len(snap.Requests) != 1 || len(snap.Stops) != 1 || len(snap.Weather) != 1 {
		t.Fatalf("row counts = %d/%d/%d/%d", len(snap.Collisions), len(snap.Requests), len(snap.Stops), len(snap.Weather))
	}
	for _, src := range []Source{SourceCollisions, SourceServiceRequests, SourceTransitStops, SourceWeather} {
		if st := snap.SourceStatus(src); st != LoadOK {
			t.Errorf("status[%s] = %s, want ok", src, st)
		}
	}
	if snap.Collisions[0].Condition != CondSnow {
		t.Errorf("condition = %s, want snow for 'Neige'", snap.Collisions[0].Condition)
	}
	if snap.Requests[0].DayTempC != -4.5 {
		t.Errorf("day temp = %.1f", snap.Requests[0].DayTempC)
	}
	if want := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC); !snap.Anchor().Equal(want) {
		t.Errorf("anchor = %s, want %s", snap.Anchor(), want)
	}
}

func TestLoadMissingFileMarksSourceUnavailable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "collisions.csv",
		"date,intersection,borough,severity,hour,latitude,longitude,condition\n"+
			"2024-03-30,Papineau / Sherbrooke,Ville-Marie,1,8,45.52,-73.57,\n")

	snap, err := Load(dir, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st := snap.SourceStatus(SourceTransitStops); st != LoadUnavailable {
		t.Errorf("stops status = %s, want unavailable", st)
	}
	if st := snap.SourceStatus(SourceCollisions); st != LoadOK {
		t.Errorf("collisions status = %s, want ok", st)
	}
}

func TestLoadRejectedRowsMarkSourceDegraded(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "collisions.csv",
		"date,intersection,borough,severity,hour,latitude,longitude,condition\n"+
			"2024-03-30,Papineau / Sherbrooke,Ville-Marie,1,8,45.52,-73.57,\n"+
			"not-a-date,Saint-Denis / Beaubien,Rosemont,1,8,45.54,-73.60,\n"+
			"2024-03-29,,Rosemont,1,8,45.54,-73.60,\n")

	snap, err := Load(dir, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st := snap.SourceStatus(SourceCollisions); st != LoadDegraded {
		t.Errorf("collisions status = %s, want degraded", st)
	}
	if len(snap.Collisions) != 1 {
		t.Errorf("kept rows = %d, want 1", len(snap.Collisions))
	}
}

func TestLoadFailsWithNoUsableRows(t *testing.T) {
	if _, err := Load(t.TempDir(), nil); err == nil {
		t.Fatal("expected an error when no source can be read")
	}
}

func TestClassifyCondition(t *testing.T) {
	cases := []struct {
		raw  string
		want ConditionCode
	}{
		{"neige", CondSnow},
		{"pluie verglacante", CondIce},
		{"pluie", CondRain},
		{"verglas", CondIce},
		{"temps clair", CondClear},
		{"brouillard", CondOther},
		{"", CondOther},
	}
	for _, tc := range cases {
		if got := ClassifyCondition(tc.raw); got != tc.want {
			t.Errorf("ClassifyCondition(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}
