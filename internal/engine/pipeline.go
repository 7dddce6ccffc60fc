package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mobilitystack/mobility-engine/internal/compose"
	"github.com/mobilitystack/mobility-engine/internal/models"
	"github.com/mobilitystack/mobility-engine/internal/resolver"
	"github.com/mobilitystack/mobility-engine/internal/router"
	"github.com/mobilitystack/mobility-engine/internal/scope"
	"github.com/mobilitystack/mobility-engine/internal/summarize"
	"github.com/mobilitystack/mobility-engine/internal/utils"
)

// AnswerOptions carries the per-request knobs around the question text.
type AnswerOptions struct {
	// Window is the ambient reporting window; a window stated in the
	// question overrides it.
	Window   models.TimeWindow
	Audience summarize.Audience
	// SkipClarification answers an ambiguous question with its default
	// reading instead of asking back. Set when the caller already went
	// through one clarification round.
	SkipClarification bool
}

// Pipeline runs a question through scope classification, resolution, routing,
// execution with fallback, and composition. Given the same question and the
// same snapshot it always produces the same response.
type Pipeline struct {
	classifier *scope.Classifier
	resolver   *resolver.Resolver
	exec       *Executor
	cascade    *Cascade
	composer   *compose.Composer
	logger     *slog.Logger
}

// NewPipeline wires the stages together.
func NewPipeline(classifier *scope.Classifier, res *resolver.Resolver, exec *Executor, cascade *Cascade, composer *compose.Composer, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		classifier: classifier,
		resolver:   res,
		exec:       exec,
		cascade:    cascade,
		composer:   composer,
		logger:     logger,
	}
}

// Answer produces the complete response for one question. Refusals and
// clarification requests come back as responses, not errors; the only error
// is an empty question.
func (p *Pipeline) Answer(ctx context.Context, question string, opts AnswerOptions) (models.Response, error) {
	if strings.TrimSpace(question) == "" {
		return models.Response{}, utils.NewAppError("pipeline.Answer", "empty question", nil)
	}

	switch p.classifier.Classify(question) {
	case models.ScopeSmalltalk:
		return p.composer.Smalltalk(), nil
	case models.ScopeOutOfScope:
		p.logger.Info("question out of scope", "question", question)
		return p.composer.OutOfScope(question), nil
	}

	resolution := p.resolver.Resolve(models.Question{Text: question, Window: opts.Window})
	q := resolution.Question
	if resolution.Ambiguous && !opts.SkipClarification {
		return p.composer.Clarify(resolution.Reason, q.Options), nil
	}

	kind, err := router.Route(question)
	if err != nil {
		p.logger.Info("question unroutable", "question", question)
		return p.composer.OutOfScope(question), nil
	}
	q.Kind = kind

	folded := utils.Fold(question)
	req := models.AnalysisRequest{
		Kind:    kind,
		Window:  ResolveWindow(q.Window, p.exec.Snapshot().Anchor()),
		Weather: q.Weather,
		Params:  map[string]string{},
	}
	if kind == models.KindTrendIncidents {
		req.Params[models.ParamTrendScope] = inferTrendScope(folded)
	}
	if tag := resolver.ExtractTempTag(folded); tag != "" {
		req.Params[models.ParamTempTag] = tag
	}

	result := p.cascade.Run(req)
	p.logger.Debug("analysis completed",
		"kind", string(kind),
		"status", string(result.Status),
		"rows", result.BaseCount,
		"relaxations", len(result.Relaxations))

	return p.composer.Compose(ctx, q, result, resolution.Context, opts.Audience), nil
}

var (
	trendCollisionTokens = []string{"collision", "accident", "blesse"}
	trendServiceTokens   = []string{"311", "requete", "plainte"}
)

func inferTrendScope(folded string) string {
	coll := utils.ContainsAny(folded, trendCollisionTokens...)
	svc := utils.ContainsAny(folded, trendServiceTokens...)
	switch {
	case coll && !svc:
		return models.TrendScopeCollisions
	case svc && !coll:
		return models.TrendScopeRequests
	default:
		return models.TrendScopeBoth
	}
}

// Describe returns the human description of an analysis kind, used by the
// service surface to make the closed routing set inspectable.
func Describe(kind models.AnalysisKind) string {
	switch kind {
	case models.KindHotspots:
		return "Intersections concentrant le plus de collisions sur la période."
	case models.KindHotspotsWeather:
		return "Collisions par condition météo, ou intersections les plus touchées sous une condition donnée."
	case models.KindTrendIncidents:
		return "Comparaison de deux périodes égales pour les collisions et les requêtes 311."
	case models.KindServiceTypesWeather:
		return "Types de requêtes 311 surreprésentés sous une condition météo."
	case models.KindServiceTemperature:
		return "Répartition des requêtes 311 par tranche de température."
	case models.KindNeighborhoods:
		return "Quartiers classés par score combiné collisions et requêtes 311."
	case models.KindNeighborhoodsWeather:
		return "Quartiers les plus touchés par les collisions sous condition météo."
	case models.KindTransitProximity:
		return "Zones de collisions à proximité des arrêts de transport collectif."
	default:
		return fmt.Sprintf("Analyse %s.", kind)
	}
}
