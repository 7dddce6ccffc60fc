package engine

import (
	"strings"
	"testing"

	"github.com/mobilitystack/mobility-engine/internal/dataset"
	"github.com/mobilitystack/mobility-engine/internal/models"
)

func TestCascadeDropsWeatherFilterFirst(t *testing.T) {
	end := day(2024, 3, 31)
	snap := &dataset.Snapshot{}
	// Plenty of clear-weather rows, nothing under snow.
	snap.Collisions = append(snap.Collisions, collisionsAt("A", "X", end, 10, 1, dataset.CondClear)...)

	cfg := testAnalysisConfig()
	exec := NewExecutor(snap, cfg, nil)
	cascade := NewCascade(exec, cfg, nil)

	res := cascade.Run(models.AnalysisRequest{
		Kind:    models.KindHotspots,
		Window:  models.TimeWindow{Start: day(2024, 3, 2), End: end, Label: models.WindowLast30Days},
		Weather: models.WeatherSnow,
	})

	if res.Status != models.StatusVerified {
		t.Fatalf("status = %s, want verified after dropping the weather filter", res.Status)
	}
	if len(res.Relaxations) != 1 {
		t.Fatalf("relaxations = %d, want exactly 1", len(res.Relaxations))
	}
	if res.Relaxations[0].Kind != models.RelaxDropWeather {
		t.Errorf("relaxation kind = %s, want %s", res.Relaxations[0].Kind, models.RelaxDropWeather)
	}
	if res.Weather != models.WeatherNone {
		t.Errorf("result weather = %s, want none after relaxation", res.Weather)
	}
	if res.BaseCount != 10 {
		t.Errorf("base count = %d, want the relaxed execution's own 10 rows", res.BaseCount)
	}
}

func TestCascadeWidensWindowOnceToCeiling(t *testing.T) {
	end := day(2024, 3, 31)
	snap := &dataset.Snapshot{}
	// All rows sit months before the requested window.
	snap.Collisions = append(snap.Collisions, collisionsAt("A", "X", day(2023, 10, 15), 10, 1, dataset.CondClear)...)

	cfg := testAnalysisConfig()
	exec := NewExecutor(snap, cfg, nil)
	cascade := NewCascade(exec, cfg, nil)

	res := cascade.Run(models.AnalysisRequest{
		Kind:    models.KindHotspots,
		Window:  models.TimeWindow{Start: day(2024, 3, 2), End: end, Label: models.WindowLast30Days},
		Weather: models.WeatherNone,
	})

	if res.Status != models.StatusVerified {
		t.Fatalf("status = %s, want verified after widening", res.Status)
	}
	if len(res.Relaxations) != 1 {
		t.Fatalf("relaxations = %d, want a single widening step", len(res.Relaxations))
	}
	step := res.Relaxations[0]
	if step.Kind != models.RelaxWidenWindow {
		t.Errorf("relaxation kind = %s, want %s", step.Kind, models.RelaxWidenWindow)
	}
	if res.Window.Label != models.WindowLast12Months {
		t.Errorf("window label = %s, want the 365-day ceiling preset", res.Window.Label)
	}
	if !res.Window.End.Equal(end) {
		t.Errorf("widened window end = %s, must stay anchored at %s", res.Window.End, end)
	}
}

func TestCascadeGlobalDiagnosticIsLastAndCapped(t *testing.T) {
	end := day(2024, 3, 31)
	snap := &dataset.Snapshot{}
	// Enough rows for the 12-month global diagnostic, but under snow only
	// outside every reachable window.
	snap.Collisions = append(snap.Collisions, collisionsAt("A", "X", day(2024, 1, 15), 20, 1, dataset.CondClear)...)

	cfg := testAnalysisConfig()
	exec := NewExecutor(snap, cfg, nil)
	cascade := NewCascade(exec, cfg, nil)

	// Snow filter never matches, so drop-weather runs; the widened window then
	// has data, so the cascade stops there. Force the global step with a
	// snapshot whose rows escape even the ceiling.
	farSnap := &dataset.Snapshot{}
	farSnap.Collisions = append(farSnap.Collisions, collisionsAt("A", "X", day(2022, 1, 15), 20, 1, dataset.CondClear)...)
	farExec := NewExecutor(farSnap, cfg, nil)
	farCascade := NewCascade(farExec, cfg, nil)

	res := farCascade.Run(models.AnalysisRequest{
		Kind:    models.KindNeighborhoodsWeather,
		Window:  models.TimeWindow{Start: day(2024, 3, 2), End: end, Label: models.WindowLast30Days},
		Weather: models.WeatherSnow,
	})

	if len(res.Relaxations) != 3 {
		t.Fatalf("relaxations = %d, want the full 3-step cascade", len(res.Relaxations))
	}
	wantOrder := []models.RelaxationKind{models.RelaxDropWeather, models.RelaxWidenWindow, models.RelaxGlobalDiagnostic}
	for i, step := range res.Relaxations {
		if step.Kind != wantOrder[i] {
			t.Errorf("step %d = %s, want %s", i, step.Kind, wantOrder[i])
		}
	}
	if res.Kind != models.KindHotspots {
		t.Errorf("global diagnostic kind = %s, want hotspots", res.Kind)
	}
	if res.Status == models.StatusVerified {
		t.Error("global diagnostic must never be graded verified")
	}
	found := false
	for _, c := range res.Caveats {
		if strings.Contains(c, "Diagnostic global") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing global diagnostic caveat, got %v", res.Caveats)
	}

	// The targeted cascade with reachable data must stop before the global step.
	res = cascade.Run(models.AnalysisRequest{
		Kind:    models.KindHotspots,
		Window:  models.TimeWindow{Start: day(2024, 3, 2), End: end, Label: models.WindowLast30Days},
		Weather: models.WeatherSnow,
	})
	if len(res.Relaxations) != 2 {
		t.Fatalf("relaxations = %d, want drop-weather then widen only", len(res.Relaxations))
	}
	if res.Status != models.StatusVerified {
		t.Errorf("status = %s, want verified from the widened window", res.Status)
	}
}

func TestCascadeLeavesHealthyResultAlone(t *testing.T) {
	end := day(2024, 3, 31)
	snap := &dataset.Snapshot{}
	snap.Collisions = append(snap.Collisions, collisionsAt("A", "X", end, 10, 1, dataset.CondClear)...)

	cfg := testAnalysisConfig()
	cascade := NewCascade(NewExecutor(snap, cfg, nil), cfg, nil)

	res := cascade.Run(models.AnalysisRequest{
		Kind:    models.KindHotspots,
		Window:  models.TimeWindow{Start: day(2024, 3, 2), End: end, Label: models.WindowLast30Days},
		Weather: models.WeatherNone,
	})
	if len(res.Relaxations) != 0 {
		t.Fatalf("relaxations = %d, want none for a verified result", len(res.Relaxations))
	}
}
