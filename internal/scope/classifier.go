// Package scope decides whether a question deserves analytical work at all.
// Classification is pure keyword matching over folded text; it never touches
// the dataset.
package scope

import (
	"strings"

	"github.com/mobilitystack/mobility-engine/internal/models"
	"github.com/mobilitystack/mobility-engine/internal/utils"
)

var smalltalkTokens = []string{
	"bonjour", "salut", "allo", "hello", "hi ", "hey", "merci", "bonne journee",
	"ca va", "test", "ping", "ok",
}

// mobilityTokens mark domain context. Any of these overrides a smalltalk
// greeting ("bonjour, combien de collisions…" is a real question).
var mobilityTokens = []string{
	"collision", "accident", "blesse", "311", "requete", "plainte", "travaux",
	"nid-de-poule", "nid de poule", "deneigement", "stm", "bus", "metro",
	"arret", "quartier", "arrondissement", "rue", "intersection", "boulevard",
	"avenue", "meteo", "neige", "pluie", "verglas", "glace", "trafic",
	"circulation", "congestion", "velo", "pieton", "securite routiere",
	"mobilite", "deplacement",
}

var analyticTokens = []string{
	"combien", "quel", "quelle", "quels", "quelles", "top", "plus", "moins",
	"pire", "tendance", "evolution", "hausse", "baisse", "compare", "taux",
	"nombre", "repartition", "analyse", "hotspot", "zone", "ou ", "pourquoi",
	"how many", "which", "trend", "where",
}

// Classifier sorts raw questions into smalltalk, out-of-scope and analyzable.
type Classifier struct{}

// NewClassifier returns a ready classifier.
func NewClassifier() *Classifier { return &Classifier{} }

// Classify returns the scope class for a raw question. Domain context always
// wins: a greeting that also mentions collisions is analyzable. Text with
// neither domain context nor analytic intent is out of scope.
func (c *Classifier) Classify(question string) models.ScopeClass {
	folded := strings.TrimSpace(utils.Fold(question))
	if folded == "" {
		return models.ScopeOutOfScope
	}

	hasMobility := utils.ContainsAny(folded, mobilityTokens...)
	if hasMobility {
		return models.ScopeAnalyzable
	}

	if isSmalltalk(folded) {
		return models.ScopeSmalltalk
	}
	if utils.ContainsAny(folded, analyticTokens...) {
		// Analytic phrasing without any mobility subject cannot be routed
		// to a dataset.
		return models.ScopeOutOfScope
	}
	return models.ScopeOutOfScope
}

func isSmalltalk(folded string) bool {
	if len(folded) <= 4 {
		for _, tok := range smalltalkTokens {
			if folded == strings.TrimSpace(tok) {
				return true
			}
		}
	}
	// Short phrases only; long prose is never smalltalk.
	if len(folded) > 40 {
		return false
	}
	return utils.ContainsAny(folded, smalltalkTokens...)
}
