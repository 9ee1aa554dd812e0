package rules

import (
	"testing"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qual(level types.DegreeLevel, field string, pos int) types.Qualification {
	return types.Qualification{Level: level, Field: field, Position: pos}
}

func gradedQual(level types.DegreeLevel, value float64, scale types.GradeScale) types.Qualification {
	return types.Qualification{Level: level, GradeValue: &value, GradeScale: scale}
}

func TestEducation_UnsetPolicyVacuous(t *testing.T) {
	sub := Evaluate(&types.ExtractedProfile{}, &types.JobRules{}, newExtractor(), 0)
	assert.False(t, sub.Education.Applicable)
	assert.True(t, sub.Education.Passed)
	assert.Nil(t, sub.Education.MinimumQualificationMet)
	assert.Nil(t, sub.Education.DegreeRequirementMet)
}

func TestEducation_MinimumQualificationLevel(t *testing.T) {
	rules := &types.JobRules{Education: &types.EducationPolicy{
		MinimumQualification: &types.MinimumQualification{Level: types.DegreeBachelor},
	}}

	with := &types.ExtractedProfile{Qualifications: []types.Qualification{qual(types.DegreeMaster, "", 0)}}
	sub := Evaluate(with, rules, newExtractor(), 0)
	assert.True(t, sub.Education.Passed)
	require.NotNil(t, sub.Education.MinimumQualificationMet)
	assert.True(t, *sub.Education.MinimumQualificationMet)

	without := &types.ExtractedProfile{Qualifications: []types.Qualification{qual(types.DegreeDiploma, "", 0)}}
	sub = Evaluate(without, rules, newExtractor(), 0)
	assert.False(t, sub.Education.Passed)
	assert.False(t, *sub.Education.MinimumQualificationMet)
}

func TestEducation_MinimumGradeAcrossScales(t *testing.T) {
	// 70% floor expressed as percentage; candidate grade in CGPA/10
	rules := &types.JobRules{Education: &types.EducationPolicy{
		MinimumQualification: &types.MinimumQualification{
			Level:    types.DegreeBachelor,
			MinGrade: &types.GradeRequirement{Value: 70, Scale: types.GradeScalePercentage},
		},
	}}

	passing := &types.ExtractedProfile{Qualifications: []types.Qualification{
		gradedQual(types.DegreeBachelor, 7.5, types.GradeScaleCGPA10), // 75%
	}}
	sub := Evaluate(passing, rules, newExtractor(), 0)
	assert.True(t, sub.Education.Passed)

	failing := &types.ExtractedProfile{Qualifications: []types.Qualification{
		gradedQual(types.DegreeBachelor, 2.4, types.GradeScaleGPA4), // 60%
	}}
	sub = Evaluate(failing, rules, newExtractor(), 0)
	assert.False(t, sub.Education.Passed)
}

func TestEducation_GradeMissingFailsFloor(t *testing.T) {
	rules := &types.JobRules{Education: &types.EducationPolicy{
		MinimumQualification: &types.MinimumQualification{
			Level:    types.DegreeBachelor,
			MinGrade: &types.GradeRequirement{Value: 60, Scale: types.GradeScalePercentage},
		},
	}}
	profile := &types.ExtractedProfile{Qualifications: []types.Qualification{qual(types.DegreeBachelor, "", 0)}}

	sub := Evaluate(profile, rules, newExtractor(), 0)
	assert.False(t, sub.Education.Passed)
}

func TestEducation_DegreeRequirementFieldMatch(t *testing.T) {
	rules := &types.JobRules{Education: &types.EducationPolicy{
		DegreeRequirement: &types.DegreeRequirement{
			Level:         types.DegreeBachelor,
			AllowedFields: []string{"computer science"},
		},
	}}

	match := &types.ExtractedProfile{Qualifications: []types.Qualification{qual(types.DegreeBachelor, "computer science", 0)}}
	sub := Evaluate(match, rules, newExtractor(), 0)
	assert.True(t, sub.Education.Passed)

	mismatch := &types.ExtractedProfile{Qualifications: []types.Qualification{qual(types.DegreeBachelor, "history", 0)}}
	sub = Evaluate(mismatch, rules, newExtractor(), 0)
	assert.False(t, sub.Education.Passed)
	require.NotNil(t, sub.Education.DegreeRequirementMet)
	assert.False(t, *sub.Education.DegreeRequirementMet)
}

func TestEducation_RelatedFieldAccepted(t *testing.T) {
	rules := &types.JobRules{Education: &types.EducationPolicy{
		DegreeRequirement: &types.DegreeRequirement{
			Level:               types.DegreeBachelor,
			AllowedFields:       []string{"computer science"},
			AcceptRelatedFields: true,
		},
	}}

	// "computer engineering" shares a token with "computer science"
	related := &types.ExtractedProfile{Qualifications: []types.Qualification{qual(types.DegreeBachelor, "computer engineering", 0)}}
	sub := Evaluate(related, rules, newExtractor(), 0)
	assert.True(t, sub.Education.Passed)

	// disable the allowance and the same profile fails
	rules.Education.DegreeRequirement.AcceptRelatedFields = false
	sub = Evaluate(related, rules, newExtractor(), 0)
	assert.False(t, sub.Education.Passed)
}

func TestEducation_ExperienceSubstitute(t *testing.T) {
	rules := &types.JobRules{Education: &types.EducationPolicy{
		DegreeRequirement: &types.DegreeRequirement{
			Level:                types.DegreeBachelor,
			AllowedFields:        []string{"computer science"},
			ExperienceSubstitute: &types.ExperienceSubstitute{YearsRequired: 5},
		},
	}}

	// no qualifications at all, but 6 years of experience
	profile := &types.ExtractedProfile{EstimatedYears: 6}
	sub := Evaluate(profile, rules, newExtractor(), 0)
	assert.True(t, sub.Education.Passed)
	assert.True(t, sub.Education.SubstituteApplied)

	profile.EstimatedYears = 4
	sub = Evaluate(profile, rules, newExtractor(), 0)
	assert.False(t, sub.Education.Passed)
	assert.False(t, sub.Education.SubstituteApplied)
}

func TestEducation_TwoStageShortCircuit(t *testing.T) {
	// minimum stage fails, degree stage would pass via substitute; overall fails
	rules := &types.JobRules{Education: &types.EducationPolicy{
		MinimumQualification: &types.MinimumQualification{Level: types.DegreeMaster},
		DegreeRequirement: &types.DegreeRequirement{
			Level:                types.DegreeBachelor,
			ExperienceSubstitute: &types.ExperienceSubstitute{YearsRequired: 2},
		},
	}}
	profile := &types.ExtractedProfile{
		EstimatedYears: 10,
		Qualifications: []types.Qualification{qual(types.DegreeBachelor, "", 0)},
	}

	sub := Evaluate(profile, rules, newExtractor(), 0)
	assert.False(t, sub.Education.Passed)
	assert.False(t, *sub.Education.MinimumQualificationMet)
	assert.True(t, *sub.Education.DegreeRequirementMet)
}
