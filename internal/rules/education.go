package rules

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/grading"
	"github.com/jonathan/resume-screener/internal/similarity"
	"github.com/jonathan/resume-screener/internal/types"
)

// relatednessThreshold is the bag-of-words similarity a candidate's field
// must reach against the allowed-fields list to count as "related". The
// boundary between related and unrelated fields is a policy knob, not a
// rigorously defined property; keep it conservative.
const relatednessThreshold = 0.35

// evaluateEducation applies the two-stage education policy: a minimum
// qualification gate, then an optional degree requirement. The experience
// substitute is ORed into the degree stage, never the minimum stage.
func evaluateEducation(profile *types.ExtractedProfile, rules *types.JobRules) types.EducationCheck {
	check := types.EducationCheck{}
	if highest := profile.HighestQualification(); highest != nil {
		check.HighestLevel = highest.Level
	}

	policy := rules.Education
	if policy == nil || (policy.MinimumQualification == nil && policy.DegreeRequirement == nil) {
		check.Passed = true
		return check
	}
	check.Applicable = true

	minimumMet := true
	if policy.MinimumQualification != nil {
		met := meetsMinimumQualification(profile, policy.MinimumQualification)
		check.MinimumQualificationMet = &met
		minimumMet = met
	}

	degreeMet := true
	if policy.DegreeRequirement != nil {
		met, viaSubstitute := meetsDegreeRequirement(profile, policy.DegreeRequirement)
		check.DegreeRequirementMet = &met
		check.SubstituteApplied = viaSubstitute
		degreeMet = met
	}

	check.Passed = minimumMet && degreeMet
	return check
}

// meetsMinimumQualification checks the candidate's highest qualification
// against the configured level, and when a grade floor is set, requires some
// qualification at or above the level to carry a grade meeting it. Grades
// are compared on the normalized percentage basis only.
func meetsMinimumQualification(profile *types.ExtractedProfile, minimum *types.MinimumQualification) bool {
	highest := profile.HighestQualification()
	if highest == nil || highest.Level.Rank() < minimum.Level.Rank() {
		return false
	}
	if minimum.MinGrade == nil {
		return true
	}

	threshold, err := grading.ToPercentage(minimum.MinGrade.Value, minimum.MinGrade.Scale)
	if err != nil {
		return false
	}
	for i := range profile.Qualifications {
		q := &profile.Qualifications[i]
		if q.Level.Rank() < minimum.Level.Rank() {
			continue
		}
		if gradeAtLeast(q, threshold) {
			return true
		}
	}
	return false
}

// meetsDegreeRequirement checks the degree stage. Returns whether it is met
// and whether the experience substitute was what satisfied it.
func meetsDegreeRequirement(profile *types.ExtractedProfile, req *types.DegreeRequirement) (met, viaSubstitute bool) {
	for i := range profile.Qualifications {
		q := &profile.Qualifications[i]
		if q.Level.Rank() < req.Level.Rank() {
			continue
		}
		if !fieldAllowed(q.Field, req) {
			continue
		}
		if req.MinGrade != nil {
			threshold, err := grading.ToPercentage(req.MinGrade.Value, req.MinGrade.Scale)
			if err != nil || !gradeAtLeast(q, threshold) {
				continue
			}
		}
		return true, false
	}

	// Substitution is an OR with the qualification check, not a replacement
	if req.ExperienceSubstitute != nil && profile.EstimatedYears >= req.ExperienceSubstitute.YearsRequired {
		return true, true
	}
	return false, false
}

// fieldAllowed accepts an empty allowed-fields list, a literal field match,
// or (when enabled) a related field judged by bag-of-words similarity.
func fieldAllowed(field string, req *types.DegreeRequirement) bool {
	if len(req.AllowedFields) == 0 {
		return true
	}
	if field == "" {
		return false
	}

	fieldLower := strings.ToLower(strings.TrimSpace(field))
	for _, allowed := range req.AllowedFields {
		allowedLower := strings.ToLower(strings.TrimSpace(allowed))
		if fieldLower == allowedLower ||
			strings.Contains(fieldLower, allowedLower) ||
			strings.Contains(allowedLower, fieldLower) {
			return true
		}
	}

	if req.AcceptRelatedFields {
		return similarity.Cosine(fieldLower, req.AllowedFields) >= relatednessThreshold
	}
	return false
}

// gradeAtLeast reports whether the qualification carries a grade meeting the
// normalized percentage threshold. Missing or unconvertible grades fail.
func gradeAtLeast(q *types.Qualification, thresholdPct float64) bool {
	if q.GradeValue == nil {
		return false
	}
	pct, err := grading.ToPercentage(*q.GradeValue, q.GradeScale)
	if err != nil {
		return false
	}
	return pct >= thresholdPct
}
