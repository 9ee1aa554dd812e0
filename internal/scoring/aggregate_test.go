package scoring

import (
	"testing"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allPassingSubResults() *types.SubResults {
	yes := true
	return &types.SubResults{
		SkillsAll:         types.SkillsCheck{Applicable: true, Passed: true},
		SkillsAny:         types.SkillsCheck{Applicable: true, Passed: true},
		Experience:        types.ExperienceCheck{Applicable: true, Passed: true},
		Education:         types.EducationCheck{Applicable: true, Passed: true, MinimumQualificationMet: &yes},
		Location:          types.LocationCheck{Applicable: true, Passed: true},
		WorkAuthorization: types.WorkAuthCheck{Applicable: true, Passed: true},
		ForbiddenKeywords: types.ForbiddenCheck{Applicable: true, Passed: true},
		Similarity:        types.SimilarityCheck{Applicable: true, Passed: true, Score: 1.0},
	}
}

func scoringRules(threshold float64) *types.JobRules {
	return &types.JobRules{Scoring: &types.ScoringConfig{
		Enabled:   true,
		Threshold: threshold,
		Weights:   DefaultWeights,
	}}
}

func TestAggregate_WeightedExample(t *testing.T) {
	// weights 30/20/20/25/5, everything passing at 100 except experience at 0
	sub := allPassingSubResults()
	sub.Experience.Passed = false

	score, decision := Aggregate(sub, scoringRules(70))

	require.NotNil(t, score)
	assert.InDelta(t, 80.0, *score, 1e-9)
	assert.Equal(t, types.DecisionSelected, decision)
}

func TestAggregate_AllPassingFullScore(t *testing.T) {
	score, decision := Aggregate(allPassingSubResults(), scoringRules(70))
	require.NotNil(t, score)
	assert.InDelta(t, 100.0, *score, 1e-9)
	assert.Equal(t, types.DecisionSelected, decision)
}

func TestAggregate_BelowThresholdRejected(t *testing.T) {
	sub := allPassingSubResults()
	sub.Experience.Passed = false

	score, decision := Aggregate(sub, scoringRules(90))
	require.NotNil(t, score)
	assert.InDelta(t, 80.0, *score, 1e-9)
	assert.Equal(t, types.DecisionRejected, decision)
}

func TestAggregate_ForbiddenKeywordAlwaysRejects(t *testing.T) {
	sub := allPassingSubResults()
	sub.ForbiddenKeywords.Passed = false
	sub.ForbiddenKeywords.Found = []string{"gambling"}

	score, decision := Aggregate(sub, scoringRules(0))

	// an otherwise perfect score cannot save a forbidden-keyword hit
	require.NotNil(t, score)
	assert.Equal(t, types.DecisionRejected, decision)
}

func TestAggregate_MissingRequiredAllRejects(t *testing.T) {
	sub := allPassingSubResults()
	sub.SkillsAll.Passed = false

	_, decision := Aggregate(sub, scoringRules(0))
	assert.Equal(t, types.DecisionRejected, decision)
}

func TestAggregate_MinimumQualificationRejects(t *testing.T) {
	sub := allPassingSubResults()
	no := false
	sub.Education.MinimumQualificationMet = &no
	sub.Education.Passed = false

	_, decision := Aggregate(sub, scoringRules(0))
	assert.Equal(t, types.DecisionRejected, decision)
}

func TestAggregate_SoftFailureOnlyLowersScore(t *testing.T) {
	// failing work authorization is not a hard disqualifier under scoring
	sub := allPassingSubResults()
	sub.WorkAuthorization.Passed = false

	score, decision := Aggregate(sub, scoringRules(70))
	require.NotNil(t, score)
	assert.InDelta(t, 100.0, *score, 1e-9) // unweighted category
	assert.Equal(t, types.DecisionSelected, decision)
}

func TestAggregate_WeightsRenormalized(t *testing.T) {
	// only skills-all and experience applicable, unequal weights
	sub := &types.SubResults{
		SkillsAll:  types.SkillsCheck{Applicable: true, Passed: true},
		Experience: types.ExperienceCheck{Applicable: true, Passed: false},
	}
	rules := &types.JobRules{Scoring: &types.ScoringConfig{
		Enabled:   true,
		Threshold: 50,
		Weights:   types.ScoreWeights{SkillsAll: 30, Experience: 10},
	}}

	score, decision := Aggregate(sub, rules)
	require.NotNil(t, score)
	assert.InDelta(t, 75.0, *score, 1e-9) // 30*100 / 40
	assert.Equal(t, types.DecisionSelected, decision)
}

func TestAggregate_ScoringDisabledRequiresAllPass(t *testing.T) {
	sub := allPassingSubResults()
	sub.WorkAuthorization.Passed = false

	score, decision := Aggregate(sub, &types.JobRules{})
	assert.Nil(t, score)
	assert.Equal(t, types.DecisionRejected, decision)

	sub.WorkAuthorization.Passed = true
	score, decision = Aggregate(sub, &types.JobRules{})
	assert.Nil(t, score)
	assert.Equal(t, types.DecisionSelected, decision)
}

func TestAggregate_ZeroWeightsScoreUndefined(t *testing.T) {
	// documented edge case: all weights zero means the score is undefined
	// and the decision rests on the hard gate alone
	sub := allPassingSubResults()
	rules := &types.JobRules{Scoring: &types.ScoringConfig{Enabled: true, Threshold: 70}}

	score, decision := Aggregate(sub, rules)
	assert.Nil(t, score)
	assert.Equal(t, types.DecisionSelected, decision)

	sub.ForbiddenKeywords.Passed = false
	score, decision = Aggregate(sub, rules)
	assert.Nil(t, score)
	assert.Equal(t, types.DecisionRejected, decision)
}

func TestAggregate_NoApplicableCategories(t *testing.T) {
	// an entirely unconfigured rule set selects any candidate
	sub := &types.SubResults{
		SkillsAll:         types.SkillsCheck{Passed: true},
		SkillsAny:         types.SkillsCheck{Passed: true},
		Experience:        types.ExperienceCheck{Passed: true},
		Education:         types.EducationCheck{Passed: true},
		Location:          types.LocationCheck{Passed: true},
		WorkAuthorization: types.WorkAuthCheck{Passed: true},
		ForbiddenKeywords: types.ForbiddenCheck{Passed: true},
		Similarity:        types.SimilarityCheck{Passed: true},
	}

	score, decision := Aggregate(sub, &types.JobRules{})
	assert.Nil(t, score)
	assert.Equal(t, types.DecisionSelected, decision)
}

func TestHardDisqualified(t *testing.T) {
	assert.False(t, HardDisqualified(allPassingSubResults()))

	sub := allPassingSubResults()
	sub.ForbiddenKeywords.Passed = false
	assert.True(t, HardDisqualified(sub))
}
