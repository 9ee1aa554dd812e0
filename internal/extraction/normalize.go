// Package extraction pulls skills, experience, education, location and
// authorization signals out of plain resume text.
package extraction

import (
	"regexp"
	"strings"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// NormalizeText lowercases text and collapses runs of whitespace.
func NormalizeText(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(strings.ToLower(text), " "))
}

// NormalizePhrase normalizes a vocabulary phrase for matching.
func NormalizePhrase(phrase string) string {
	return NormalizeText(phrase)
}

// wordBoundaryPattern builds a case-insensitive whole-word pattern for a
// phrase. Phrases with regex metacharacters (c#, ci/cd, node.js) are quoted.
func wordBoundaryPattern(phrase string) *regexp.Regexp {
	escaped := regexp.QuoteMeta(NormalizePhrase(phrase))
	escaped = whitespacePattern.ReplaceAllString(escaped, `\s+`)
	return regexp.MustCompile(`(^|[^a-z0-9])` + escaped + `($|[^a-z0-9])`)
}

// containsWholeWord reports whether the normalized text contains the phrase
// as a whole word or phrase.
func containsWholeWord(normalizedText, phrase string) bool {
	p := NormalizePhrase(phrase)
	if p == "" || !strings.Contains(normalizedText, p) {
		// Fast reject before the regex; a boundary match implies a
		// substring match.
		return false
	}
	return wordBoundaryPattern(phrase).MatchString(normalizedText)
}
