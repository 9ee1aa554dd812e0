// Package rules applies a job's structured rule set to an extracted profile,
// producing one sub-result per category.
package rules

import (
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/types"
)

// Evaluate runs every rule category against the profile. Categories not
// configured in the rule set come back inapplicable with a vacuous pass.
// similarity is the precomputed cosine score between the resume text and the
// job's target skills.
func Evaluate(profile *types.ExtractedProfile, rules *types.JobRules, ex *extraction.Extractor, similarity float64) *types.SubResults {
	sub := &types.SubResults{}

	sub.SkillsAll = evaluateSkillsAll(profile, rules, ex)
	sub.SkillsAny = evaluateSkillsAny(profile, rules, ex)
	sub.Experience = evaluateExperience(profile, rules)
	sub.Education = evaluateEducation(profile, rules)
	sub.Location = evaluateLocation(profile, rules)
	sub.WorkAuthorization = evaluateWorkAuthorization(profile, rules)
	sub.ForbiddenKeywords = evaluateForbidden(profile, rules)
	sub.Similarity = evaluateSimilarity(rules, similarity)

	return sub
}

func evaluateSkillsAll(profile *types.ExtractedProfile, rules *types.JobRules, ex *extraction.Extractor) types.SkillsCheck {
	check := types.SkillsCheck{Matched: []string{}, Missing: []string{}}
	if len(rules.RequiredAll) == 0 {
		check.Passed = true
		return check
	}
	check.Applicable = true

	for _, skill := range ex.CanonicalizeAll(rules.RequiredAll) {
		if profile.HasSkill(skill) {
			check.Matched = append(check.Matched, skill)
		} else {
			check.Missing = append(check.Missing, skill)
		}
	}
	check.Passed = len(check.Missing) == 0
	return check
}

func evaluateSkillsAny(profile *types.ExtractedProfile, rules *types.JobRules, ex *extraction.Extractor) types.SkillsCheck {
	check := types.SkillsCheck{Matched: []string{}, Missing: []string{}}
	if len(rules.RequiredAny) == 0 {
		check.Passed = true
		return check
	}
	check.Applicable = true

	for _, skill := range ex.CanonicalizeAll(rules.RequiredAny) {
		if profile.HasSkill(skill) {
			check.Matched = append(check.Matched, skill)
		} else {
			check.Missing = append(check.Missing, skill)
		}
	}
	check.Passed = len(check.Matched) >= rules.AnyMin
	return check
}

func evaluateExperience(profile *types.ExtractedProfile, rules *types.JobRules) types.ExperienceCheck {
	check := types.ExperienceCheck{
		EstimatedYears: profile.EstimatedYears,
		MinYears:       rules.MinYears,
	}
	if rules.MinYears <= 0 {
		check.Passed = true
		return check
	}
	check.Applicable = true
	check.Passed = profile.EstimatedYears >= rules.MinYears
	return check
}

func evaluateLocation(profile *types.ExtractedProfile, rules *types.JobRules) types.LocationCheck {
	check := types.LocationCheck{MatchedLocations: []string{}}
	if len(rules.AllowedLocations) == 0 {
		check.Passed = true
		return check
	}
	check.Applicable = true

	allowed := make(map[string]bool, len(rules.AllowedLocations))
	for _, loc := range rules.AllowedLocations {
		allowed[extraction.NormalizePhrase(loc)] = true
	}
	for _, mention := range profile.LocationMentions {
		if allowed[mention] {
			check.MatchedLocations = append(check.MatchedLocations, mention)
		}
	}

	check.RemoteAccepted = rules.AllowRemote && profile.RemoteMention
	check.Passed = check.RemoteAccepted || len(check.MatchedLocations) > 0
	return check
}

func evaluateWorkAuthorization(profile *types.ExtractedProfile, rules *types.JobRules) types.WorkAuthCheck {
	check := types.WorkAuthCheck{StatementFound: profile.HasWorkAuthorizationStatement}
	if !rules.RequireWorkAuthorization {
		check.Passed = true
		return check
	}
	check.Applicable = true
	check.Passed = profile.HasWorkAuthorizationStatement
	return check
}

func evaluateForbidden(profile *types.ExtractedProfile, rules *types.JobRules) types.ForbiddenCheck {
	check := types.ForbiddenCheck{Found: profile.ForbiddenHits}
	if check.Found == nil {
		check.Found = []string{}
	}
	if len(rules.ForbiddenKeywords) == 0 {
		check.Passed = true
		return check
	}
	check.Applicable = true
	check.Passed = len(check.Found) == 0
	return check
}

func evaluateSimilarity(rules *types.JobRules, similarity float64) types.SimilarityCheck {
	check := types.SimilarityCheck{Score: similarity}
	if rules.SimilarityThreshold == nil {
		check.Passed = true
		return check
	}
	check.Applicable = true
	check.Threshold = *rules.SimilarityThreshold
	check.Passed = similarity >= check.Threshold
	return check
}
