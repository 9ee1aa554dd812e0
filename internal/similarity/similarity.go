// Package similarity computes a bag-of-words cosine similarity between a
// resume and a job's target skill terms. It is a pure term-frequency
// measure: no stemming, no semantic matching.
package similarity

import (
	"math"
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// tokenize lowercases the text and splits it on word boundaries.
func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// termFrequencies counts token occurrences.
func termFrequencies(tokens []string) map[string]float64 {
	freq := make(map[string]float64, len(tokens))
	for _, tok := range tokens {
		freq[tok]++
	}
	return freq
}

// Cosine returns the cosine similarity in [0,1] between the resume text and
// the target term list joined into a pseudo-document. Empty text or an empty
// term list yields 0; a zero-magnitude vector never produces NaN.
func Cosine(resumeText string, targetTerms []string) float64 {
	if strings.TrimSpace(resumeText) == "" || len(targetTerms) == 0 {
		return 0
	}

	resumeFreq := termFrequencies(tokenize(resumeText))
	targetFreq := termFrequencies(tokenize(strings.Join(targetTerms, " ")))
	if len(resumeFreq) == 0 || len(targetFreq) == 0 {
		return 0
	}

	var dot, resumeMag, targetMag float64
	for term, rf := range resumeFreq {
		resumeMag += rf * rf
		if tf, ok := targetFreq[term]; ok {
			dot += rf * tf
		}
	}
	for _, tf := range targetFreq {
		targetMag += tf * tf
	}

	if resumeMag == 0 || targetMag == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(resumeMag) * math.Sqrt(targetMag))
	// Guard against floating-point drift past the bounds
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}
