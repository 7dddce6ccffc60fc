package engine

import (
	"fmt"
	"log/slog"

	"github.com/mobilitystack/mobility-engine/internal/config"
	"github.com/mobilitystack/mobility-engine/internal/models"
)

// Cascade relaxes a starving analysis request in a fixed order: drop the
// weather filter, then widen the window once to the configured ceiling, then
// fall back to a global diagnostic capped at partial. Every applied
// relaxation is recorded on the result in order; the cascade never loops.
type Cascade struct {
	exec   *Executor
	cfg    config.AnalysisConfig
	logger *slog.Logger
}

// NewCascade wraps exec with the relaxation policy.
func NewCascade(exec *Executor, cfg config.AnalysisConfig, logger *slog.Logger) *Cascade {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cascade{exec: exec, cfg: cfg, logger: logger}
}

// Run executes req, relaxing it as needed. The returned result always comes
// from a single execution; its counts and rates reference that execution's
// own captured base count, never a mixture of attempts.
func (c *Cascade) Run(req models.AnalysisRequest) models.AnalysisResult {
	res := c.exec.Execute(req)
	if !c.starving(res) {
		return res
	}

	var applied []models.FallbackStep

	if req.Weather != models.WeatherNone {
		relaxed := req
		relaxed.Weather = models.WeatherNone
		c.logger.Info("fallback: dropping weather filter", "kind", string(req.Kind))
		res = c.exec.Execute(relaxed)
		applied = append(applied, models.FallbackStep{
			Kind:    models.RelaxDropWeather,
			Reason:  fmt.Sprintf("trop peu de lignes sous la condition %s", req.Weather),
			Rows:    res.BaseCount,
			Window:  relaxed.Window,
			Weather: relaxed.Weather,
		})
		res.Relaxations = append([]models.FallbackStep(nil), applied...)
		if !c.starving(res) {
			return res
		}
		req = relaxed
	}

	anchor := req.Window.End
	if req.Window.Days() < c.cfg.WidenCeilingDays {
		widened := req
		widened.Window = ceilingWindow(anchor, c.cfg.WidenCeilingDays)
		c.logger.Info("fallback: widening window", "kind", string(req.Kind), "window", string(widened.Window.Label))
		res = c.exec.Execute(widened)
		applied = append(applied, models.FallbackStep{
			Kind:    models.RelaxWidenWindow,
			Reason:  fmt.Sprintf("fenêtre élargie à %s", windowLabelText(widened.Window.Label)),
			Rows:    res.BaseCount,
			Window:  widened.Window,
			Weather: widened.Weather,
		})
		res.Relaxations = append([]models.FallbackStep(nil), applied...)
		if !c.starving(res) {
			return res
		}
		req = widened
	}

	// Safety net: a global 12-month hotspot diagnostic, never graded above
	// partial because it no longer answers the literal question.
	global := models.AnalysisRequest{
		Kind:    models.KindHotspots,
		Window:  presetWindow(models.WindowLast12Months, anchor),
		Weather: models.WeatherNone,
	}
	c.logger.Warn("fallback: global diagnostic", "kind", string(req.Kind))
	res = c.exec.Execute(global)
	applied = append(applied, models.FallbackStep{
		Kind:    models.RelaxGlobalDiagnostic,
		Reason:  "aucune relaxation ciblée n'a produit assez de données",
		Rows:    res.BaseCount,
		Window:  global.Window,
		Weather: global.Weather,
	})
	res.Relaxations = append([]models.FallbackStep(nil), applied...)
	if res.Status == models.StatusVerified {
		res.Status = models.StatusPartial
	}
	res.Caveats = append(res.Caveats,
		"Diagnostic global sur 12 mois présenté faute de données pour la question initiale.")
	return res
}

// starving reports whether a result is too thin to stand: insufficient, or
// partial at or below the secondary floor.
func (c *Cascade) starving(res models.AnalysisResult) bool {
	switch res.Status {
	case models.StatusInsufficient:
		return true
	case models.StatusPartial:
		return res.BaseCount <= c.cfg.PartialFloor
	default:
		return false
	}
}

func windowLabelText(label models.WindowLabel) string {
	switch label {
	case models.WindowLast7Days:
		return "7 derniers jours"
	case models.WindowLast30Days:
		return "30 derniers jours"
	case models.WindowLast3Months:
		return "3 derniers mois"
	case models.WindowLast12Months:
		return "12 derniers mois"
	default:
		return "période personnalisée"
	}
}
