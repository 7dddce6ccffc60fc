// Package engine computes the analytical answers. Every computation is a
// pure function of the snapshot and the resolved request; each step lands in
// the evidence trace with its row count and literal expression, so results
// stay auditable after the fact.
package engine

import (
	"log/slog"

	"github.com/mobilitystack/mobility-engine/internal/config"
	"github.com/mobilitystack/mobility-engine/internal/dataset"
	"github.com/mobilitystack/mobility-engine/internal/models"
)

// outcome is the raw product of one analysis handler before grading.
type outcome struct {
	key   models.KeyMetric
	table models.Table
	viz   models.VizSpec
	// evidence is the filtered row count the status grade is based on.
	evidence int
	// base is the row count captured before any per-group narrowing; every
	// rate in the table divides by it or by another captured total.
	base    int
	caveats []string
}

type handler func(req models.AnalysisRequest, tr *models.EvidenceTrace) outcome

// Executor dispatches analysis requests over an immutable snapshot. The
// handler table is closed; kinds outside it are rejected, never guessed.
type Executor struct {
	snap     *dataset.Snapshot
	cfg      config.AnalysisConfig
	logger   *slog.Logger
	handlers map[models.AnalysisKind]handler
}

// NewExecutor builds an executor over snap.
func NewExecutor(snap *dataset.Snapshot, cfg config.AnalysisConfig, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Executor{snap: snap, cfg: cfg, logger: logger}
	e.handlers = map[models.AnalysisKind]handler{
		models.KindHotspots:             e.hotspots,
		models.KindHotspotsWeather:      e.hotspotsWeather,
		models.KindTrendIncidents:       e.trendIncidents,
		models.KindServiceTypesWeather:  e.serviceTypesWeather,
		models.KindServiceTemperature:   e.serviceTemperature,
		models.KindNeighborhoods:        e.neighborhoods,
		models.KindNeighborhoodsWeather: e.neighborhoodsWeather,
		models.KindTransitProximity:     e.transitProximity,
	}
	return e
}

// Execute runs one analysis and grades the result. A panicking handler is
// recovered and reported as insufficient data with a caveat; the service
// keeps answering.
func (e *Executor) Execute(req models.AnalysisRequest) (res models.AnalysisResult) {
	res = models.AnalysisResult{
		Kind:    req.Kind,
		Window:  req.Window,
		Weather: req.Weather,
	}
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("analysis interrupted", "kind", string(req.Kind), "panic", r)
			res.Status = models.StatusInsufficient
			res.Table = models.Table{}
			res.Key = models.KeyMetric{}
			res.Caveats = append(res.Caveats,
				"Le calcul a été interrompu par une erreur interne; le résultat est traité comme des données insuffisantes.")
		}
	}()

	h, ok := e.handlers[req.Kind]
	if !ok {
		res.Status = models.StatusInsufficient
		res.Caveats = append(res.Caveats, "Type d'analyse non supporté.")
		return res
	}

	out := h(req, &res.Trace)
	res.Key = out.key
	res.Table = out.table
	res.Viz = out.viz
	res.BaseCount = out.base
	res.Caveats = append(res.Caveats, out.caveats...)
	res.Status = e.grade(out)
	return res
}

func (e *Executor) grade(out outcome) models.Status {
	switch {
	case out.table.Empty():
		return models.StatusInsufficient
	case out.evidence > e.cfg.MinEvidenceRows:
		return models.StatusVerified
	default:
		return models.StatusPartial
	}
}

// Snapshot exposes the snapshot the executor computes over.
func (e *Executor) Snapshot() *dataset.Snapshot { return e.snap }
