package types

// Explanation is the wire contract consumed by presentation layers. One
// section per rule category plus a human-readable summary; sections for
// unconfigured categories carry Applicable=false rather than being omitted.
type Explanation struct {
	Summary           SummarySection    `json:"summary"`
	Skills            SkillsSection     `json:"skills"`
	Experience        ExperienceSection `json:"experience"`
	Education         EducationSection  `json:"education"`
	Location          LocationSection   `json:"location"`
	WorkAuthorization WorkAuthSection   `json:"work_authorization"`
	ForbiddenKeywords ForbiddenSection  `json:"forbidden_keywords"`
	Scoring           ScoringSection    `json:"scoring"`
}

// SummarySection lists pass/fail reasons in a fixed category order.
type SummarySection struct {
	Passed      bool     `json:"passed"`
	ReasonsPass []string `json:"reasons_pass"`
	ReasonsFail []string `json:"reasons_fail"`
}

// SkillsSection covers the skills-all, skills-any and similarity evidence.
type SkillsSection struct {
	CandidateSkills     []string `json:"candidate_skills"`
	MatchedRequiredAll  []string `json:"matched_required_all"`
	MissingRequiredAll  []string `json:"missing_required_all"`
	MatchedRequiredAny  []string `json:"matched_required_any"`
	MissingRequiredAny  []string `json:"missing_required_any"`
	AnyMin              int      `json:"any_min,omitempty"`
	TargetSkills        []string `json:"target_skills"`
	Similarity          float64  `json:"similarity"`
	SimilarityThreshold *float64 `json:"similarity_threshold,omitempty"`
}

// ExperienceSection covers the experience evidence.
type ExperienceSection struct {
	Applicable       bool    `json:"applicable"`
	EstimatedYears   float64 `json:"estimated_years"`
	MinRequiredYears float64 `json:"min_required_years"`
	MeetsRequirement bool    `json:"meets_requirement"`
}

// GradeView renders a grade in its raw scale with the normalized percentage.
type GradeView struct {
	RawValue             float64 `json:"raw_value"`
	Type                 string  `json:"type"`
	NormalizedPercentage float64 `json:"normalized_percentage"`
}

// QualificationView renders one extracted qualification.
type QualificationView struct {
	Level string     `json:"level"`
	Field string     `json:"field,omitempty"`
	Year  *int       `json:"year,omitempty"`
	Grade *GradeView `json:"grade,omitempty"`
}

// EducationSection covers the two-stage education evidence.
type EducationSection struct {
	Applicable                  bool                `json:"applicable"`
	DegreesFound                []string            `json:"degrees_found"`
	HighestDegree               string              `json:"highest_degree"`
	AllQualifications           []QualificationView `json:"all_qualifications"`
	MinDegreeLevel              string              `json:"min_degree_level,omitempty"`
	RequiredDegreeLevel         string              `json:"required_degree_level,omitempty"`
	AllowedFields               []string            `json:"allowed_fields,omitempty"`
	AcceptRelatedFields         bool                `json:"accept_related_fields,omitempty"`
	MinimumQualificationMet     *bool               `json:"minimum_qualification_met,omitempty"`
	DegreeRequirementMet        *bool               `json:"degree_requirement_met,omitempty"`
	ExperienceSubstituteApplied bool                `json:"experience_substitute_applied,omitempty"`
	MeetsRequirement            bool                `json:"meets_requirement"`
}

// LocationSection covers the location evidence.
type LocationSection struct {
	Applicable       bool     `json:"applicable"`
	AllowedLocations []string `json:"allowed_locations"`
	AllowRemote      bool     `json:"allow_remote"`
	MatchedLocations []string `json:"matched_locations"`
	RemoteMentioned  bool     `json:"remote_mentioned"`
	MeetsRequirement bool     `json:"meets_requirement"`
}

// WorkAuthSection covers the work-authorization evidence.
type WorkAuthSection struct {
	Required         bool `json:"required"`
	Found            bool `json:"found"`
	MeetsRequirement bool `json:"meets_requirement"`
}

// ForbiddenSection covers the forbidden-keyword evidence.
type ForbiddenSection struct {
	Found  []string `json:"found"`
	Passed bool     `json:"passed"`
}

// ScoringSection covers the weighted scoring evidence.
type ScoringSection struct {
	Enabled   bool          `json:"enabled"`
	Score     *float64      `json:"score,omitempty"`
	Threshold float64       `json:"threshold,omitempty"`
	Weights   *ScoreWeights `json:"weights,omitempty"`
}
