package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func floatPtr(v float64) *float64 { return &v }

const sampleResume = `Jane Doe
Senior Software Engineer, Bangalore

7 years of experience building backend services in Go and Python.
Comfortable with Docker, Kubernetes and PostgreSQL.

Education:
Bachelor of Engineering in Computer Science, CGPA 8.2/10, 2016

Authorized to work in the US without sponsorship.`

func sampleRules() *types.JobRules {
	return &types.JobRules{
		RuleVersion:         "v1",
		Role:                "Backend Engineer",
		RequiredAll:         []string{"Go", "Docker"},
		RequiredAny:         []string{"Kubernetes", "Terraform", "AWS"},
		AnyMin:              1,
		MinYears:            5,
		SimilarityThreshold: floatPtr(0.1),
		Education: &types.EducationPolicy{
			MinimumQualification: &types.MinimumQualification{Level: types.DegreeBachelor},
		},
		Scoring: &types.ScoringConfig{
			Enabled:   true,
			Threshold: 70,
			Weights:   types.ScoreWeights{SkillsAll: 30, SkillsAny: 20, Experience: 20, Similarity: 25, Degree: 5},
		},
	}
}

func TestScreen_SelectsQualifiedCandidate(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Screen(sampleResume, sampleRules())

	require.NoError(t, err)
	assert.Equal(t, types.DecisionSelected, result.Decision)
	assert.Equal(t, "v1", result.RuleVersion)
	assert.Equal(t, "Backend Engineer", result.Role)
	require.NotNil(t, result.Score)
	assert.GreaterOrEqual(t, *result.Score, 70.0)
	require.NotNil(t, result.Explanation)
	assert.True(t, result.Explanation.Summary.Passed)
}

func TestScreen_Deterministic(t *testing.T) {
	engine := NewEngine()

	first, err := engine.Screen(sampleResume, sampleRules())
	require.NoError(t, err)
	second, err := engine.Screen(sampleResume, sampleRules())
	require.NoError(t, err)

	assert.Equal(t, first.Decision, second.Decision)
	assert.Equal(t, *first.Score, *second.Score)
	assert.Equal(t, first.Explanation, second.Explanation)
}

func TestScreen_ForbiddenKeywordAlwaysRejects(t *testing.T) {
	engine := NewEngine()
	rules := sampleRules()
	rules.ForbiddenKeywords = []string{"bangalore"}

	result, err := engine.Screen(sampleResume, rules)

	require.NoError(t, err)
	assert.Equal(t, types.DecisionRejected, result.Decision)
	assert.Equal(t, []string{"bangalore"}, result.Explanation.ForbiddenKeywords.Found)
	assert.False(t, result.Explanation.Summary.Passed)
}

func TestScreen_MissingRequiredSkillRejects(t *testing.T) {
	engine := NewEngine()
	rules := sampleRules()
	rules.RequiredAll = append(rules.RequiredAll, "Rust")

	result, err := engine.Screen(sampleResume, rules)

	require.NoError(t, err)
	assert.Equal(t, types.DecisionRejected, result.Decision)
	assert.Contains(t, result.Explanation.Skills.MissingRequiredAll, "rust")
}

func TestScreen_EmptyRulesSelectsAnyResume(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Screen("any resume text at all", &types.JobRules{})

	require.NoError(t, err)
	assert.Equal(t, types.DecisionSelected, result.Decision)
	assert.Nil(t, result.Score)
}

func TestScreen_ScoringDisabledRequiresAllConfiguredPass(t *testing.T) {
	engine := NewEngine()
	rules := sampleRules()
	rules.Scoring = nil
	rules.MinYears = 10 // sample candidate has 7

	result, err := engine.Screen(sampleResume, rules)

	require.NoError(t, err)
	assert.Equal(t, types.DecisionRejected, result.Decision)
	assert.Nil(t, result.Score)
}

func TestScreen_SoftFailureToleratedByScore(t *testing.T) {
	engine := NewEngine()
	rules := sampleRules()
	rules.AllowedLocations = []string{"london"}
	// Location carries no weight, so failing it cannot drag the score below
	// threshold on its own.
	result, err := engine.Screen(sampleResume, rules)

	require.NoError(t, err)
	assert.Equal(t, types.DecisionSelected, result.Decision)
}

func TestScreen_AllowedLocationOutsideGazetteer(t *testing.T) {
	engine := NewEngine()
	rules := &types.JobRules{AllowedLocations: []string{"Paris"}}

	result, err := engine.Screen("Backend developer based in Paris with Go experience.", rules)

	require.NoError(t, err)
	assert.Equal(t, types.DecisionSelected, result.Decision)
	assert.Equal(t, []string{"paris"}, result.Explanation.Location.MatchedLocations)
}

func TestScreen_SimilarityWithNoTargets(t *testing.T) {
	engine := NewEngine()
	rules := &types.JobRules{SimilarityThreshold: floatPtr(0.2)}

	result, err := engine.Screen(sampleResume, rules)

	require.NoError(t, err)
	assert.Equal(t, types.DecisionRejected, result.Decision)
	assert.Equal(t, 0.0, result.Explanation.Skills.Similarity)
}

func TestScreen_MinimumQualificationGateOverridesScore(t *testing.T) {
	engine := NewEngine()
	rules := sampleRules()
	rules.Education.MinimumQualification.Level = types.DegreeDoctorate

	result, err := engine.Screen(sampleResume, rules)

	require.NoError(t, err)
	assert.Equal(t, types.DecisionRejected, result.Decision)
	require.NotNil(t, result.Explanation.Education.MinimumQualificationMet)
	assert.False(t, *result.Explanation.Education.MinimumQualificationMet)
}

func TestValidateRules_NilRules(t *testing.T) {
	err := ValidateRules(nil)

	var invalid *InvalidRuleConfigurationError
	require.ErrorAs(t, err, &invalid)
}

func TestValidateRules_AnyMinExceedsList(t *testing.T) {
	err := ValidateRules(&types.JobRules{RequiredAny: []string{"go"}, AnyMin: 3})

	var invalid *InvalidRuleConfigurationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "any_min", invalid.Field)
}

func TestValidateRules_NegativeWeight(t *testing.T) {
	err := ValidateRules(&types.JobRules{
		Scoring: &types.ScoringConfig{Weights: types.ScoreWeights{Experience: -1}},
	})

	var invalid *InvalidRuleConfigurationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "scoring.weights.experience", invalid.Field)
}

func TestValidateRules_SimilarityThresholdOutOfRange(t *testing.T) {
	err := ValidateRules(&types.JobRules{SimilarityThreshold: floatPtr(1.5)})

	var invalid *InvalidRuleConfigurationError
	require.ErrorAs(t, err, &invalid)
}

func TestValidateRules_UnknownDegreeLevel(t *testing.T) {
	err := ValidateRules(&types.JobRules{
		Education: &types.EducationPolicy{
			DegreeRequirement: &types.DegreeRequirement{Level: "postdoc"},
		},
	})

	var invalid *InvalidRuleConfigurationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "education.degree_requirement.level", invalid.Field)
}

func TestValidateRules_GradeAboveScaleMax(t *testing.T) {
	err := ValidateRules(&types.JobRules{
		Education: &types.EducationPolicy{
			MinimumQualification: &types.MinimumQualification{
				Level:    types.DegreeBachelor,
				MinGrade: &types.GradeRequirement{Value: 11, Scale: types.GradeScaleCGPA10},
			},
		},
	})

	var invalid *InvalidRuleConfigurationError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Field, "min_grade.value")
}

func TestValidateRules_ScoringThresholdOutOfRange(t *testing.T) {
	err := ValidateRules(&types.JobRules{
		Scoring: &types.ScoringConfig{Threshold: 120},
	})

	var invalid *InvalidRuleConfigurationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "scoring.threshold", invalid.Field)
}

func TestValidateRules_ValidRulesPass(t *testing.T) {
	require.NoError(t, ValidateRules(sampleRules()))
}
