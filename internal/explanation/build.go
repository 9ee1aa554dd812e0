// Package explanation assembles the evidence from an evaluation into the
// structured, serializable explanation tree consumed by presentation layers.
package explanation

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-screener/internal/grading"
	"github.com/jonathan/resume-screener/internal/types"
)

// Build produces the explanation for one evaluation. It is a pure,
// order-stable transformation: reasons always appear in the same category
// order, and missing optional data renders as an absent field.
func Build(profile *types.ExtractedProfile, rules *types.JobRules, sub *types.SubResults, score *float64, decision types.Decision) *types.Explanation {
	exp := &types.Explanation{
		Skills:            buildSkills(profile, rules, sub),
		Experience:        buildExperience(sub),
		Education:         buildEducation(profile, rules, sub),
		Location:          buildLocation(profile, rules, sub),
		WorkAuthorization: buildWorkAuthorization(sub),
		ForbiddenKeywords: types.ForbiddenSection{Found: emptyIfNil(sub.ForbiddenKeywords.Found), Passed: sub.ForbiddenKeywords.Passed},
		Scoring:           buildScoring(rules, score),
	}
	exp.Summary = buildSummary(rules, sub, score, decision)
	return exp
}

func buildSkills(profile *types.ExtractedProfile, rules *types.JobRules, sub *types.SubResults) types.SkillsSection {
	section := types.SkillsSection{
		CandidateSkills:    emptyIfNil(profile.Skills),
		MatchedRequiredAll: emptyIfNil(sub.SkillsAll.Matched),
		MissingRequiredAll: emptyIfNil(sub.SkillsAll.Missing),
		MatchedRequiredAny: emptyIfNil(sub.SkillsAny.Matched),
		MissingRequiredAny: emptyIfNil(sub.SkillsAny.Missing),
		AnyMin:             rules.AnyMin,
		TargetSkills:       emptyIfNil(rules.TargetSkills()),
		Similarity:         sub.Similarity.Score,
	}
	if rules.SimilarityThreshold != nil {
		threshold := *rules.SimilarityThreshold
		section.SimilarityThreshold = &threshold
	}
	return section
}

func buildExperience(sub *types.SubResults) types.ExperienceSection {
	return types.ExperienceSection{
		Applicable:       sub.Experience.Applicable,
		EstimatedYears:   sub.Experience.EstimatedYears,
		MinRequiredYears: sub.Experience.MinYears,
		MeetsRequirement: sub.Experience.Passed,
	}
}

func buildEducation(profile *types.ExtractedProfile, rules *types.JobRules, sub *types.SubResults) types.EducationSection {
	section := types.EducationSection{
		Applicable:                  sub.Education.Applicable,
		DegreesFound:                []string{},
		HighestDegree:               "none",
		AllQualifications:           []types.QualificationView{},
		MinimumQualificationMet:     sub.Education.MinimumQualificationMet,
		DegreeRequirementMet:        sub.Education.DegreeRequirementMet,
		ExperienceSubstituteApplied: sub.Education.SubstituteApplied,
		MeetsRequirement:            sub.Education.Passed,
	}

	seen := make(map[string]bool)
	for i := range profile.Qualifications {
		q := &profile.Qualifications[i]
		level := string(q.Level)
		if !seen[level] {
			seen[level] = true
			section.DegreesFound = append(section.DegreesFound, level)
		}
		section.AllQualifications = append(section.AllQualifications, qualificationView(q))
	}
	if sub.Education.HighestLevel != "" {
		section.HighestDegree = string(sub.Education.HighestLevel)
	}

	if rules.Education != nil {
		if minimum := rules.Education.MinimumQualification; minimum != nil {
			section.MinDegreeLevel = string(minimum.Level)
		}
		if req := rules.Education.DegreeRequirement; req != nil {
			section.RequiredDegreeLevel = string(req.Level)
			section.AllowedFields = emptyIfNil(req.AllowedFields)
			section.AcceptRelatedFields = req.AcceptRelatedFields
		}
	}
	return section
}

func qualificationView(q *types.Qualification) types.QualificationView {
	view := types.QualificationView{
		Level: string(q.Level),
		Field: q.Field,
		Year:  q.Year,
	}
	if q.GradeValue != nil {
		if pct, err := grading.ToPercentage(*q.GradeValue, q.GradeScale); err == nil {
			view.Grade = &types.GradeView{
				RawValue:             *q.GradeValue,
				Type:                 string(q.GradeScale),
				NormalizedPercentage: pct,
			}
		}
	}
	return view
}

func buildLocation(profile *types.ExtractedProfile, rules *types.JobRules, sub *types.SubResults) types.LocationSection {
	return types.LocationSection{
		Applicable:       sub.Location.Applicable,
		AllowedLocations: emptyIfNil(rules.AllowedLocations),
		AllowRemote:      rules.AllowRemote,
		MatchedLocations: emptyIfNil(sub.Location.MatchedLocations),
		RemoteMentioned:  profile.RemoteMention,
		MeetsRequirement: sub.Location.Passed,
	}
}

func buildWorkAuthorization(sub *types.SubResults) types.WorkAuthSection {
	return types.WorkAuthSection{
		Required:         sub.WorkAuthorization.Applicable,
		Found:            sub.WorkAuthorization.StatementFound,
		MeetsRequirement: sub.WorkAuthorization.Passed,
	}
}

func buildScoring(rules *types.JobRules, score *float64) types.ScoringSection {
	section := types.ScoringSection{}
	if rules.Scoring == nil {
		return section
	}
	section.Enabled = rules.Scoring.Enabled
	section.Threshold = rules.Scoring.Threshold
	weights := rules.Scoring.Weights
	section.Weights = &weights
	section.Score = score
	return section
}

// buildSummary lists pass/fail reasons in a fixed category order: forbidden
// keywords, skills-all, skills-any, experience, education, location, work
// authorization, similarity, then the scoring threshold.
func buildSummary(rules *types.JobRules, sub *types.SubResults, score *float64, decision types.Decision) types.SummarySection {
	summary := types.SummarySection{
		Passed:      decision == types.DecisionSelected,
		ReasonsPass: []string{},
		ReasonsFail: []string{},
	}
	pass := func(reason string) { summary.ReasonsPass = append(summary.ReasonsPass, reason) }
	fail := func(reason string) { summary.ReasonsFail = append(summary.ReasonsFail, reason) }

	if sub.ForbiddenKeywords.Applicable {
		if sub.ForbiddenKeywords.Passed {
			pass("No forbidden keywords found")
		} else {
			fail("Contains forbidden keywords: " + strings.Join(sub.ForbiddenKeywords.Found, ", "))
		}
	}

	if sub.SkillsAll.Applicable {
		if sub.SkillsAll.Passed {
			pass("Has all required skills: " + strings.Join(sub.SkillsAll.Matched, ", "))
		} else {
			fail("Missing required skills: " + strings.Join(sub.SkillsAll.Missing, ", "))
		}
	}

	if sub.SkillsAny.Applicable {
		if sub.SkillsAny.Passed {
			pass(fmt.Sprintf("Has %d of %d preferred skills", len(sub.SkillsAny.Matched), rules.AnyMin))
		} else {
			fail(fmt.Sprintf("Only has %d of %d preferred skills", len(sub.SkillsAny.Matched), rules.AnyMin))
		}
	}

	if sub.Experience.Applicable {
		if sub.Experience.Passed {
			pass(fmt.Sprintf("Experience OK (%gy >= %gy)", sub.Experience.EstimatedYears, sub.Experience.MinYears))
		} else {
			fail(fmt.Sprintf("Insufficient experience (%gy < %gy)", sub.Experience.EstimatedYears, sub.Experience.MinYears))
		}
	}

	if sub.Education.Applicable {
		highest := "none"
		if sub.Education.HighestLevel != "" {
			highest = string(sub.Education.HighestLevel)
		}
		switch {
		case sub.Education.Passed && sub.Education.SubstituteApplied:
			pass("Degree requirement met via experience substitute")
		case sub.Education.Passed:
			pass("Education requirement met (" + highest + ")")
		case sub.Education.MinimumQualificationMet != nil && !*sub.Education.MinimumQualificationMet:
			fail("Minimum qualification not met (has " + highest + ")")
		default:
			fail("Degree requirement not met (has " + highest + ")")
		}
	}

	if sub.Location.Applicable {
		if sub.Location.Passed {
			pass("Location requirement met")
		} else {
			fail("Location not in allowed list")
		}
	}

	if sub.WorkAuthorization.Applicable {
		if sub.WorkAuthorization.Passed {
			pass("Work authorization confirmed")
		} else {
			fail("Work authorization not found")
		}
	}

	if sub.Similarity.Applicable {
		if sub.Similarity.Passed {
			pass(fmt.Sprintf("Similarity OK (%.2f >= %.2f)", sub.Similarity.Score, sub.Similarity.Threshold))
		} else {
			fail(fmt.Sprintf("Similarity too low (%.2f < %.2f)", sub.Similarity.Score, sub.Similarity.Threshold))
		}
	}

	if rules.Scoring != nil && rules.Scoring.Enabled && score != nil {
		if *score >= rules.Scoring.Threshold {
			pass(fmt.Sprintf("Score %.2f meets threshold %.2f", *score, rules.Scoring.Threshold))
		} else {
			fail(fmt.Sprintf("Score too low (%.2f < %.2f)", *score, rules.Scoring.Threshold))
		}
	}

	return summary
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
