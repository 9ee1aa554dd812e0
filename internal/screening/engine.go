// Package screening wires extraction, rule evaluation, scoring and
// explanation into the single entry point callers use to screen a resume
// against a job's rule set.
package screening

import (
	"github.com/jonathan/resume-screener/internal/explanation"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/grading"
	"github.com/jonathan/resume-screener/internal/rules"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/similarity"
	"github.com/jonathan/resume-screener/internal/types"
)

// Engine screens resume text against job rules. It holds no per-request
// state, so a single Engine is safe for concurrent use.
type Engine struct {
	extractor *extraction.Extractor
}

// NewEngine returns an engine using the built-in vocabulary.
func NewEngine() *Engine {
	return &Engine{extractor: extraction.NewExtractor(nil)}
}

// NewEngineWithVocabulary returns an engine using a custom vocabulary.
// A nil vocabulary falls back to the built-in one.
func NewEngineWithVocabulary(vocab *extraction.Vocabulary) *Engine {
	return &Engine{extractor: extraction.NewExtractor(vocab)}
}

// Screen evaluates one resume against one rule set. The same text and rules
// always produce the same result. Rules are validated first; an invalid
// configuration returns *InvalidRuleConfigurationError and no result.
func (e *Engine) Screen(resumeText string, jobRules *types.JobRules) (*types.EvaluationResult, error) {
	if err := ValidateRules(jobRules); err != nil {
		return nil, err
	}

	profile := e.extractor.Extract(resumeText, jobRules)
	targets := e.extractor.CanonicalizeAll(jobRules.TargetSkills())
	sim := similarity.Cosine(extraction.NormalizeText(resumeText), targets)

	sub := rules.Evaluate(profile, jobRules, e.extractor, sim)
	score, decision := scoring.Aggregate(sub, jobRules)

	return &types.EvaluationResult{
		RuleVersion: jobRules.RuleVersion,
		Role:        jobRules.Role,
		Decision:    decision,
		Score:       score,
		Explanation: explanation.Build(profile, jobRules, sub, score, decision),
		Sub:         sub,
	}, nil
}

// ExtractProfile runs only the extraction stage, for diagnostic output.
func (e *Engine) ExtractProfile(resumeText string, jobRules *types.JobRules) *types.ExtractedProfile {
	return e.extractor.Extract(resumeText, jobRules)
}

// ValidateRules rejects rule sets the engine cannot evaluate meaningfully.
// It checks semantic constraints beyond what schema validation covers.
func ValidateRules(r *types.JobRules) error {
	if r == nil {
		return invalidRule("", "rules must not be nil")
	}

	if r.AnyMin < 0 {
		return invalidRule("any_min", "must not be negative, got %d", r.AnyMin)
	}
	if r.AnyMin > len(r.RequiredAny) {
		return invalidRule("any_min", "requires %d preferred skills but only %d are listed", r.AnyMin, len(r.RequiredAny))
	}
	if r.MinYears < 0 {
		return invalidRule("min_years", "must not be negative, got %g", r.MinYears)
	}
	if r.SimilarityThreshold != nil {
		if t := *r.SimilarityThreshold; t < 0 || t > 1 {
			return invalidRule("similarity_threshold", "must be within [0, 1], got %g", t)
		}
	}

	if r.Education != nil {
		if minimum := r.Education.MinimumQualification; minimum != nil {
			if !minimum.Level.Known() {
				return invalidRule("education.minimum_qualification.level", "unknown degree level %q", minimum.Level)
			}
			if err := validateGrade("education.minimum_qualification.min_grade", minimum.MinGrade); err != nil {
				return err
			}
		}
		if req := r.Education.DegreeRequirement; req != nil {
			if !req.Level.Known() {
				return invalidRule("education.degree_requirement.level", "unknown degree level %q", req.Level)
			}
			if err := validateGrade("education.degree_requirement.min_grade", req.MinGrade); err != nil {
				return err
			}
			if sub := req.ExperienceSubstitute; sub != nil && sub.YearsRequired < 0 {
				return invalidRule("education.degree_requirement.experience_substitute.years_required", "must not be negative, got %g", sub.YearsRequired)
			}
		}
	}

	if r.Scoring != nil {
		w := r.Scoring.Weights
		for _, entry := range []struct {
			field string
			value float64
		}{
			{"scoring.weights.skills_all", w.SkillsAll},
			{"scoring.weights.skills_any", w.SkillsAny},
			{"scoring.weights.experience", w.Experience},
			{"scoring.weights.similarity", w.Similarity},
			{"scoring.weights.degree", w.Degree},
		} {
			if entry.value < 0 {
				return invalidRule(entry.field, "must not be negative, got %g", entry.value)
			}
		}
		if t := r.Scoring.Threshold; t < 0 || t > 100 {
			return invalidRule("scoring.threshold", "must be within [0, 100], got %g", t)
		}
	}

	return nil
}

func validateGrade(field string, grade *types.GradeRequirement) error {
	if grade == nil {
		return nil
	}
	if !grade.Scale.Known() {
		return invalidRule(field+".scale", "unknown grade scale %q", grade.Scale)
	}
	max, err := grading.MaxValue(grade.Scale)
	if err != nil {
		return invalidRule(field+".scale", "unknown grade scale %q", grade.Scale)
	}
	if grade.Value < 0 || grade.Value > max {
		return invalidRule(field+".value", "must be within [0, %g] on the %s scale, got %g", max, grade.Scale, grade.Value)
	}
	return nil
}
