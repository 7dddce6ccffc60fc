// Package compose assembles the final response from a graded analysis
// result. The composer owns every user-facing sentence; it reports computed
// numbers verbatim and never lets the reformulation layer alter them.
package compose

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mobilitystack/mobility-engine/internal/metrics"
	"github.com/mobilitystack/mobility-engine/internal/models"
	"github.com/mobilitystack/mobility-engine/internal/summarize"
	"github.com/mobilitystack/mobility-engine/internal/utils"
)

// Composer turns analysis results and pipeline verdicts into responses.
type Composer struct {
	summarizer summarize.Summarizer
	timeout    time.Duration
	logger     *slog.Logger
}

// NewComposer builds a composer. A nil summarizer means the synthesis
// section is always omitted.
func NewComposer(summarizer summarize.Summarizer, timeout time.Duration, logger *slog.Logger) *Composer {
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{summarizer: summarizer, timeout: timeout, logger: logger}
}

// Smalltalk answers greetings without touching the dataset.
func (c *Composer) Smalltalk() models.Response {
	return models.Response{
		Smalltalk: true,
		Badge:     "Hors analyse",
		Headline:  "Bonjour! Posez-moi une question sur les collisions, les requêtes 311, le réseau de transport ou la météo.",
	}
}

// OutOfScope refuses politely, naming what the service can do.
func (c *Composer) OutOfScope(question string) models.Response {
	return models.Response{
		OutOfScope:  true,
		Badge:       "Hors du périmètre",
		BadgeDetail: "La question ne correspond à aucune analyse supportée.",
		Headline:    "Je ne peux répondre qu'à des questions sur la mobilité: collisions, requêtes 311, arrêts de transport et conditions météo.",
	}
}

// Clarify asks the user to pick one of the fully specified alternates.
func (c *Composer) Clarify(reason string, options []models.Refinement) models.Response {
	return models.Response{
		Ambiguous:   true,
		Badge:       "Précision requise",
		BadgeDetail: reason,
		Headline:    "Votre question peut viser plusieurs mesures; choisissez une formulation pour continuer.",
		Refinements: options,
	}
}

// Compose assembles the full response for an answered question. The optional
// synthesis is requested under its own timeout; any failure of the external
// layer is logged and the section omitted, nothing else changes.
func (c *Composer) Compose(ctx context.Context, q models.Question, res models.AnalysisResult, glossary string, audience summarize.Audience) models.Response {
	resp := models.Response{
		Status:      res.Status,
		Result:      res,
		Headline:    headline(res),
		NextCheck:   counterpoints[res.Kind].nextCheck,
	}
	resp.Badge, resp.BadgeDetail = badge(res)

	if cp, ok := counterpoints[res.Kind]; ok && !res.Table.Empty() {
		resp.Result.Caveats = append(resp.Result.Caveats, cp.limit)
	}
	for _, step := range res.Relaxations {
		resp.Result.Caveats = append(resp.Result.Caveats,
			fmt.Sprintf("Relaxation appliquée: %s (%s).", relaxLabel(step.Kind), step.Reason))
	}

	if c.summarizer != nil && res.Status != models.StatusInsufficient {
		resp.Synthesis = c.synthesize(ctx, q, res, glossary, audience)
	}
	return resp
}

func (c *Composer) synthesize(ctx context.Context, q models.Question, res models.AnalysisResult, glossary string, audience summarize.Audience) string {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.summarizer.Summarize(ctx, summarize.Request{
		Question:   q.Text,
		Kind:       string(res.Kind),
		WindowText: windowText(res.Window),
		Preview:    preview(res),
		Context:    glossary,
		Audience:   audience,
	})
	if err != nil {
		c.logger.Warn("synthesis unavailable", "backend", c.summarizer.Name(), "error", err)
		metrics.ObserveSynthesisFailure()
		return ""
	}
	return text
}

func badge(res models.AnalysisResult) (string, string) {
	switch res.Status {
	case models.StatusVerified:
		return "Analyse vérifiée", fmt.Sprintf("Résultat calculé sur %d lignes filtrées (%s).", res.BaseCount, windowText(res.Window))
	case models.StatusPartial:
		return "Analyse partielle", fmt.Sprintf("Seulement %d lignes après filtrage; interprétez avec prudence.", res.BaseCount)
	default:
		return "Données insuffisantes", "Aucune ligne ne correspond aux filtres, même après relaxation."
	}
}

func headline(res models.AnalysisResult) string {
	if res.Table.Empty() {
		return "Pas assez de données pour répondre précisément à cette question."
	}
	top := res.Table.Rows[0]
	switch res.Kind {
	case models.KindHotspots, models.KindHotspotsWeather:
		if len(res.Table.Columns) > 0 && res.Table.Columns[0] == "Condition" {
			return fmt.Sprintf("Condition la plus représentée: %s (%s collisions).", top[0], top[1])
		}
		return fmt.Sprintf("Intersection la plus touchée: %s (%s collisions).", top[0], top[1])
	case models.KindTrendIncidents:
		return fmt.Sprintf("%s: %s contre %s sur la période précédente (variation %s%%).", top[0], top[1], top[2], top[4])
	case models.KindServiceTypesWeather:
		return fmt.Sprintf("Type de requête en tête: %s.", top[0])
	case models.KindServiceTemperature:
		return fmt.Sprintf("Tranche de température la plus chargée: %s (%s requêtes).", top[0], top[1])
	case models.KindNeighborhoods, models.KindNeighborhoodsWeather:
		return fmt.Sprintf("Quartier le plus touché: %s.", top[0])
	case models.KindTransitProximity:
		return fmt.Sprintf("Zone la plus exposée autour des arrêts: %s (%s collisions).", top[0], top[1])
	default:
		return fmt.Sprintf("%s: %s.", strings.Join(res.Table.Columns[:1], ""), top[0])
	}
}

// preview renders the head of the table for the reformulation layer.
func preview(res models.AnalysisResult) string {
	var b strings.Builder
	if res.Key.Label != "" {
		fmt.Fprintf(&b, "%s: %.1f %s\n", res.Key.Label, res.Key.Value, res.Key.Unit)
	}
	b.WriteString(strings.Join(res.Table.Columns, " | "))
	b.WriteString("\n")
	for i, row := range res.Table.Rows {
		if i >= 5 {
			break
		}
		b.WriteString(strings.Join(row, " | "))
		b.WriteString("\n")
	}
	return b.String()
}

func windowText(w models.TimeWindow) string {
	switch w.Label {
	case models.WindowLast7Days:
		return "7 derniers jours"
	case models.WindowLast30Days:
		return "30 derniers jours"
	case models.WindowLast3Months:
		return "3 derniers mois"
	case models.WindowLast12Months:
		return "12 derniers mois"
	default:
		return fmt.Sprintf("du %s au %s", utils.FormatDate(w.Start), utils.FormatDate(w.End))
	}
}

func relaxLabel(kind models.RelaxationKind) string {
	switch kind {
	case models.RelaxDropWeather:
		return "filtre météo retiré"
	case models.RelaxWidenWindow:
		return "fenêtre temporelle élargie"
	case models.RelaxGlobalDiagnostic:
		return "diagnostic global substitué"
	default:
		return string(kind)
	}
}
