package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and strips diacritics, so that "Tempête de NEIGE" and
// "tempete de neige" compare equal. Vocabulary matching throughout the
// pipeline runs on folded text.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// ContainsAny reports whether the folded haystack contains any of the given
// folded tokens.
func ContainsAny(folded string, tokens ...string) bool {
	for _, tok := range tokens {
		if tok != "" && strings.Contains(folded, tok) {
			return true
		}
	}
	return false
}
