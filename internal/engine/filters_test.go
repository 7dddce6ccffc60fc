package engine

import (
	"testing"
	"time"

	"github.com/mobilitystack/mobility-engine/internal/dataset"
	"github.com/mobilitystack/mobility-engine/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCollisionPredicateInclusiveBounds(t *testing.T) {
	win := models.TimeWindow{Start: day(2024, 3, 1), End: day(2024, 3, 31), Label: models.WindowCustom}
	pred := CollisionPredicate(win, models.WeatherNone)

	cases := []struct {
		date time.Time
		want bool
	}{
		{day(2024, 2, 29), false},
		{day(2024, 3, 1), true},
		{day(2024, 3, 15), true},
		{day(2024, 3, 31), true},
		{day(2024, 4, 1), false},
	}
	for _, tc := range cases {
		got := pred(dataset.Collision{Date: tc.date, Condition: dataset.CondClear})
		if got != tc.want {
			t.Errorf("predicate(%s) = %v, want %v", tc.date.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestCollisionPredicateIdempotent(t *testing.T) {
	win := models.TimeWindow{Start: day(2024, 3, 1), End: day(2024, 3, 31), Label: models.WindowCustom}
	pred := CollisionPredicate(win, models.WeatherSnow)

	rows := []dataset.Collision{
		{Date: day(2024, 3, 5), Condition: dataset.CondSnow},
		{Date: day(2024, 3, 6), Condition: dataset.CondClear},
		{Date: day(2024, 2, 1), Condition: dataset.CondSnow},
	}
	once := FilterCollisions(rows, pred)
	twice := FilterCollisions(once, pred)
	if len(once) != 1 || len(twice) != len(once) {
		t.Fatalf("filtering must be idempotent: once=%d twice=%d", len(once), len(twice))
	}
}

func TestConditionMatching(t *testing.T) {
	win := models.TimeWindow{Start: day(2024, 3, 1), End: day(2024, 3, 31), Label: models.WindowCustom}
	inWin := day(2024, 3, 10)

	cases := []struct {
		filter models.WeatherFilter
		cond   dataset.ConditionCode
		want   bool
	}{
		{models.WeatherRain, dataset.CondRain, true},
		{models.WeatherRain, dataset.CondSnow, false},
		{models.WeatherSnow, dataset.CondSnow, true},
		{models.WeatherIce, dataset.CondIce, true},
		{models.WeatherAnyPrecipitation, dataset.CondRain, true},
		{models.WeatherAnyPrecipitation, dataset.CondSnow, true},
		{models.WeatherAnyPrecipitation, dataset.CondIce, true},
		{models.WeatherAnyPrecipitation, dataset.CondClear, false},
		{models.WeatherAnyPrecipitation, dataset.CondOther, false},
		{models.WeatherNone, dataset.CondOther, true},
	}
	for _, tc := range cases {
		pred := CollisionPredicate(win, tc.filter)
		got := pred(dataset.Collision{Date: inWin, Condition: tc.cond})
		if got != tc.want {
			t.Errorf("filter %s against %s = %v, want %v", tc.filter, tc.cond, got, tc.want)
		}
	}
}

func TestTempProxyMatches(t *testing.T) {
	cases := []struct {
		filter models.WeatherFilter
		temp   float64
		want   bool
	}{
		{models.WeatherSnow, -3, true},
		{models.WeatherSnow, 0, true},
		{models.WeatherSnow, 0.5, false},
		{models.WeatherIce, -5, true},
		{models.WeatherIce, 1, true},
		{models.WeatherIce, -6, false},
		{models.WeatherRain, 5, true},
		{models.WeatherRain, 0, false},
		{models.WeatherRain, 13, false},
		{models.WeatherAnyPrecipitation, 12, true},
		{models.WeatherAnyPrecipitation, 12.5, false},
		{models.WeatherNone, 20, true},
	}
	for _, tc := range cases {
		if got := TempProxyMatches(tc.filter, tc.temp); got != tc.want {
			t.Errorf("TempProxyMatches(%s, %.1f) = %v, want %v", tc.filter, tc.temp, got, tc.want)
		}
	}
}

func TestTempTagCold(t *testing.T) {
	if !tempTagMatches("cold", models.WeatherNone, -8) {
		t.Error("-8 must count as cold")
	}
	if tempTagMatches("cold", models.WeatherNone, -7.5) {
		t.Error("-7.5 must not count as cold")
	}
}

func TestResolveWindowPresetAnchored(t *testing.T) {
	anchor := day(2024, 3, 31)
	win := ResolveWindow(models.TimeWindow{Label: models.WindowLast7Days}, anchor)
	if !win.End.Equal(anchor) {
		t.Errorf("end = %s, want anchor %s", win.End, anchor)
	}
	if !win.Start.Equal(day(2024, 3, 25)) {
		t.Errorf("start = %s, want 2024-03-25", win.Start)
	}
	if win.Days() != 7 {
		t.Errorf("days = %d, want 7", win.Days())
	}
}

func TestResolveWindowCustomSwapsReversedBounds(t *testing.T) {
	win := ResolveWindow(models.TimeWindow{
		Start: day(2024, 3, 31),
		End:   day(2024, 3, 1),
		Label: models.WindowCustom,
	}, day(2024, 6, 1))
	if !win.Start.Equal(day(2024, 3, 1)) || !win.End.Equal(day(2024, 3, 31)) {
		t.Errorf("bounds not normalized: %s .. %s", win.Start, win.End)
	}
}

func TestResolveWindowUnknownLabelDefaultsTo30Days(t *testing.T) {
	anchor := day(2024, 3, 31)
	win := ResolveWindow(models.TimeWindow{Label: "last_decade"}, anchor)
	if win.Label != models.WindowLast30Days {
		t.Errorf("label = %s, want %s", win.Label, models.WindowLast30Days)
	}
	if win.Days() != 30 {
		t.Errorf("days = %d, want 30", win.Days())
	}
}
