// Package resolver grounds a raw question in the dataset vocabulary. It
// extracts the weather and window qualifiers, assembles glossary context for
// the reformulation layer, and flags questions too vague to route, offering
// fully specified alternates instead of guessing.
package resolver

import (
	"log/slog"
	"strings"

	"github.com/mobilitystack/mobility-engine/internal/models"
	"github.com/mobilitystack/mobility-engine/internal/utils"
)

// vagueTokens signal an impact question with no measurable subject.
var vagueTokens = []string{
	"ca coince", "ca bloque", "incident", "probleme", "les plus touche",
	"plus touche", "pire endroit", "ou est-ce que ca va mal",
}

// sourceTokens are concrete measurable subjects; any of them disambiguates a
// vague question.
var sourceTokens = []string{
	"collision", "accident", "311", "requete", "plainte", "nid-de-poule",
	"nid de poule", "deneigement", "stm", "bus", "metro", "arret",
}

var areaTokens = []string{"quartier", "arrondissement", "secteur"}

// Resolution is the resolver's verdict on one question.
type Resolution struct {
	Question models.Question
	// Context is glossary text handed to the reformulation layer. It never
	// feeds any computation.
	Context   string
	Ambiguous bool
	Reason    string
}

// Resolver matches questions against the vocabulary corpus.
type Resolver struct {
	corpus *Corpus
	logger *slog.Logger
}

// NewResolver builds a resolver over the given corpus. A nil corpus uses the
// built-in default.
func NewResolver(corpus *Corpus, logger *slog.Logger) *Resolver {
	if corpus == nil {
		corpus = defaultCorpus()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{corpus: corpus, logger: logger}
}

// Resolve grounds q in the vocabulary. The returned question carries the
// extracted weather filter and any window override; when the text is too
// vague to route, Ambiguous is set and Options lists alternates that each
// preserve a stated weather qualifier.
func (r *Resolver) Resolve(q models.Question) Resolution {
	folded := utils.Fold(q.Text)

	q.Weather = ExtractWeather(folded)
	if label := ExtractWindowLabel(folded); label != "" {
		q.Window = models.TimeWindow{Label: label}
	}

	res := Resolution{Question: q, Context: r.contextFor(folded)}

	if r.isVague(folded) {
		res.Ambiguous = true
		res.Reason = "la question ne précise pas la mesure visée (collisions, requêtes 311 ou réseau STM)"
		res.Question.Options = r.refinements(folded, q.Weather)
		r.logger.Debug("ambiguous question", "question", q.Text, "options", len(res.Question.Options))
	}
	return res
}

// isVague reports whether the question uses impact wording without naming a
// measurable source.
func (r *Resolver) isVague(folded string) bool {
	if !utils.ContainsAny(folded, vagueTokens...) {
		return false
	}
	return !utils.ContainsAny(folded, sourceTokens...)
}

// refinements builds fully specified alternates for a vague question. A
// stated weather qualifier is re-attached to every alternate so narrowing the
// subject never silently widens the conditions.
func (r *Resolver) refinements(folded string, weather models.WeatherFilter) []models.Refinement {
	suffix := ""
	if phrase := WeatherPhrase(weather); phrase != "" {
		suffix = " " + phrase
	}

	if utils.ContainsAny(folded, areaTokens...) {
		return []models.Refinement{
			{Label: "Collisions par quartier", Question: "Quels quartiers ont le plus de collisions" + suffix + "?"},
			{Label: "Requêtes 311 par quartier", Question: "Quels quartiers ont le plus de requêtes 311" + suffix + "?"},
			{Label: "Vue combinée collisions + 311", Question: "Quels quartiers cumulent le plus de collisions et de requêtes 311" + suffix + "?"},
		}
	}
	return []models.Refinement{
		{Label: "Intersections à collisions", Question: "Quelles intersections ont le plus de collisions" + suffix + "?"},
		{Label: "Requêtes 311 fréquentes", Question: "Quels types de requêtes 311 sont les plus fréquents" + suffix + "?"},
		{Label: "Tendance récente", Question: "Quelle est la tendance des collisions en ce moment" + suffix + "?"},
	}
}

// contextFor collects the corpus descriptions matched by the question.
func (r *Resolver) contextFor(folded string) string {
	var parts []string
	for _, d := range r.corpus.Datasets {
		if matchKeywords(folded, d.Keywords) {
			parts = append(parts, d.Title+": "+d.Description)
		}
	}
	for _, def := range r.corpus.Definitions {
		if matchKeywords(folded, def.Keywords) {
			parts = append(parts, def.Term+": "+def.Description)
		}
	}
	return strings.Join(parts, "\n")
}

func matchKeywords(folded string, keywords []string) bool {
	for _, k := range keywords {
		if k != "" && strings.Contains(folded, utils.Fold(k)) {
			return true
		}
	}
	return false
}
