// Package scoring combines per-category sub-results into a weighted score
// and a pass/fail decision.
package scoring

import (
	"math"

	"github.com/jonathan/resume-screener/internal/types"
)

// DefaultWeights mirror the usual screening configuration: skills dominate,
// the degree check is a tie-breaker.
var DefaultWeights = types.ScoreWeights{
	SkillsAll:  30,
	SkillsAny:  20,
	Experience: 20,
	Similarity: 25,
	Degree:     5,
}

// HardDisqualified reports whether a non-negotiable disqualifier fired:
// forbidden keywords present, or a configured-and-failed required-all or
// minimum-qualification check.
func HardDisqualified(sub *types.SubResults) bool {
	if sub.ForbiddenKeywords.Applicable && !sub.ForbiddenKeywords.Passed {
		return true
	}
	if sub.SkillsAll.Applicable && !sub.SkillsAll.Passed {
		return true
	}
	if sub.Education.MinimumQualificationMet != nil && !*sub.Education.MinimumQualificationMet {
		return true
	}
	return false
}

// Aggregate computes the final score and decision.
//
// With scoring enabled, each applicable weighted category contributes
// weight*subScore where boolean categories score 0 or 100 and similarity
// scores similarity*100; weights are renormalized over the applicable
// categories so the result stays in [0,100]. When no weighted category
// applies (or all weights are zero) the score is undefined and the decision
// falls back to the hard gate alone.
//
// With scoring disabled the score is nil and selection requires every
// configured category to pass.
func Aggregate(sub *types.SubResults, rules *types.JobRules) (*float64, types.Decision) {
	disqualified := HardDisqualified(sub)

	if rules.Scoring == nil || !rules.Scoring.Enabled {
		if disqualified || !sub.AllConfiguredPassed() {
			return nil, types.DecisionRejected
		}
		return nil, types.DecisionSelected
	}

	score := weightedScore(sub, rules.Scoring.Weights)
	if score == nil {
		if disqualified {
			return nil, types.DecisionRejected
		}
		return nil, types.DecisionSelected
	}

	if disqualified || *score < rules.Scoring.Threshold {
		return score, types.DecisionRejected
	}
	return score, types.DecisionSelected
}

// weightedScore returns nil when no applicable category carries weight.
func weightedScore(sub *types.SubResults, weights types.ScoreWeights) *float64 {
	type contribution struct {
		applicable bool
		weight     float64
		subScore   float64
	}

	contributions := []contribution{
		{sub.SkillsAll.Applicable, weights.SkillsAll, booleanScore(sub.SkillsAll.Passed)},
		{sub.SkillsAny.Applicable, weights.SkillsAny, booleanScore(sub.SkillsAny.Passed)},
		{sub.Experience.Applicable, weights.Experience, booleanScore(sub.Experience.Passed)},
		{sub.Similarity.Applicable, weights.Similarity, sub.Similarity.Score * 100},
		{sub.Education.Applicable, weights.Degree, booleanScore(sub.Education.Passed)},
	}

	var weightSum, total float64
	for _, c := range contributions {
		if !c.applicable {
			continue
		}
		weightSum += c.weight
		total += c.weight * c.subScore
	}
	if weightSum == 0 {
		return nil
	}

	score := total / weightSum
	score = math.Round(score*100) / 100
	return &score
}

func booleanScore(passed bool) float64 {
	if passed {
		return 100
	}
	return 0
}
