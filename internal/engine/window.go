package engine

import (
	"time"

	"github.com/mobilitystack/mobility-engine/internal/models"
)

// ResolveWindow turns a window request into concrete inclusive bounds.
// Preset labels are anchored at the most recent record date of the snapshot,
// never at wall-clock now, so identical inputs keep producing identical
// answers. A custom window with both bounds is normalized (swapped if
// reversed) and passed through. With nothing usable, the 30-day preset
// applies.
func ResolveWindow(req models.TimeWindow, anchor time.Time) models.TimeWindow {
	if req.Label == models.WindowCustom || (req.Label == "" && !req.Start.IsZero() && !req.End.IsZero()) {
		start, end := req.Start, req.End
		if start.After(end) {
			start, end = end, start
		}
		if !start.IsZero() && !end.IsZero() {
			return models.TimeWindow{Start: start, End: end, Label: models.WindowCustom}
		}
	}

	label := req.Label
	if models.PresetDays(label) == 0 {
		label = models.WindowLast30Days
	}
	return presetWindow(label, anchor)
}

func presetWindow(label models.WindowLabel, anchor time.Time) models.TimeWindow {
	days := models.PresetDays(label)
	if days == 0 {
		days = 30
	}
	end := anchor.Truncate(24 * time.Hour)
	if end.IsZero() {
		end = time.Now().UTC().Truncate(24 * time.Hour)
	}
	return models.TimeWindow{
		Start: end.AddDate(0, 0, -(days - 1)),
		End:   end,
		Label: label,
	}
}

// ceilingWindow builds the widest window the fallback cascade may reach,
// anchored at the same end date as the starving request.
func ceilingWindow(anchor time.Time, ceilingDays int) models.TimeWindow {
	label := models.WindowCustom
	for _, preset := range []models.WindowLabel{
		models.WindowLast7Days,
		models.WindowLast30Days,
		models.WindowLast3Months,
		models.WindowLast12Months,
	} {
		if models.PresetDays(preset) == ceilingDays {
			label = preset
		}
	}
	end := anchor.Truncate(24 * time.Hour)
	return models.TimeWindow{
		Start: end.AddDate(0, 0, -(ceilingDays - 1)),
		End:   end,
		Label: label,
	}
}
