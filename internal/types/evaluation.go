package types

// Decision is the engine's final verdict for a candidate.
type Decision string

// Possible decisions
const (
	DecisionSelected Decision = "selected"
	DecisionRejected Decision = "rejected"
)

// SkillsCheck is the sub-result for the skills-all or skills-any category.
type SkillsCheck struct {
	Applicable bool
	Passed     bool
	Matched    []string
	Missing    []string
}

// ExperienceCheck is the sub-result for the experience category.
type ExperienceCheck struct {
	Applicable     bool
	Passed         bool
	EstimatedYears float64
	MinYears       float64
}

// EducationCheck is the sub-result for the two-stage education category.
// Stage flags are nil when the corresponding stage is not configured.
type EducationCheck struct {
	Applicable              bool
	Passed                  bool
	MinimumQualificationMet *bool
	DegreeRequirementMet    *bool
	SubstituteApplied       bool
	HighestLevel            DegreeLevel // empty when no qualification found
}

// LocationCheck is the sub-result for the location category.
type LocationCheck struct {
	Applicable       bool
	Passed           bool
	MatchedLocations []string
	RemoteAccepted   bool
}

// WorkAuthCheck is the sub-result for the work-authorization category.
type WorkAuthCheck struct {
	Applicable     bool
	Passed         bool
	StatementFound bool
}

// ForbiddenCheck is the sub-result for the forbidden-keywords category.
type ForbiddenCheck struct {
	Applicable bool
	Passed     bool
	Found      []string
}

// SimilarityCheck is the sub-result for the similarity category.
type SimilarityCheck struct {
	Applicable bool
	Passed     bool
	Score      float64
	Threshold  float64
}

// SubResults collects one sub-result per rule category. Categories that are
// not configured in the rule set are marked inapplicable with Passed=true
// (vacuous pass) so they never gate a decision or carry weight.
type SubResults struct {
	SkillsAll         SkillsCheck
	SkillsAny         SkillsCheck
	Experience        ExperienceCheck
	Education         EducationCheck
	Location          LocationCheck
	WorkAuthorization WorkAuthCheck
	ForbiddenKeywords ForbiddenCheck
	Similarity        SimilarityCheck
}

// AllConfiguredPassed reports whether every applicable category passed.
func (s *SubResults) AllConfiguredPassed() bool {
	checks := []struct{ applicable, passed bool }{
		{s.SkillsAll.Applicable, s.SkillsAll.Passed},
		{s.SkillsAny.Applicable, s.SkillsAny.Passed},
		{s.Experience.Applicable, s.Experience.Passed},
		{s.Education.Applicable, s.Education.Passed},
		{s.Location.Applicable, s.Location.Passed},
		{s.WorkAuthorization.Applicable, s.WorkAuthorization.Passed},
		{s.ForbiddenKeywords.Applicable, s.ForbiddenKeywords.Passed},
		{s.Similarity.Applicable, s.Similarity.Passed},
	}
	for _, c := range checks {
		if c.applicable && !c.passed {
			return false
		}
	}
	return true
}

// EvaluationResult is the engine's sole output: the verdict, the weighted
// score (nil when scoring is disabled or undefined), and the explanation
// tree. It carries no identity; persistence is the caller's concern.
type EvaluationResult struct {
	RuleVersion string       `json:"rule_version,omitempty"`
	Role        string       `json:"role,omitempty"`
	Decision    Decision     `json:"decision"`
	Score       *float64     `json:"score,omitempty"`
	Explanation *Explanation `json:"explanation"`

	// Sub exposes the raw per-category results for programmatic callers.
	// The serialized contract is the Explanation.
	Sub *SubResults `json:"-"`
}
