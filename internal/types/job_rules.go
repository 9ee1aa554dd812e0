// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// GradeScale identifies the scale an academic grade is expressed in.
type GradeScale string

// Supported grade scales
const (
	GradeScalePercentage GradeScale = "percentage"
	GradeScaleCGPA10     GradeScale = "cgpa_10"
	GradeScaleGPA4       GradeScale = "gpa_4"
)

// Known reports whether the scale is one of the supported values.
func (s GradeScale) Known() bool {
	switch s {
	case GradeScalePercentage, GradeScaleCGPA10, GradeScaleGPA4:
		return true
	}
	return false
}

// DegreeLevel identifies an academic qualification level.
type DegreeLevel string

// Qualification levels, lowest to highest
const (
	DegreeSecondary DegreeLevel = "secondary"
	DegreeDiploma   DegreeLevel = "diploma"
	DegreeBachelor  DegreeLevel = "bachelor"
	DegreeMaster    DegreeLevel = "master"
	DegreeDoctorate DegreeLevel = "doctorate"
)

// degreeRank maps qualification levels to numeric ranks for comparison.
// Unknown levels rank 0, below every real qualification.
var degreeRank = map[DegreeLevel]int{
	DegreeSecondary: 1,
	DegreeDiploma:   2,
	DegreeBachelor:  3,
	DegreeMaster:    4,
	DegreeDoctorate: 5,
}

// Rank returns the ordinal rank of the level (0 for unknown).
func (l DegreeLevel) Rank() int {
	return degreeRank[DegreeLevel(strings.ToLower(string(l)))]
}

// Known reports whether the level is one of the supported values.
func (l DegreeLevel) Known() bool {
	return l.Rank() > 0
}

// GradeRequirement is a minimum grade expressed in a specific scale.
type GradeRequirement struct {
	Value float64    `json:"value" validate:"gte=0"`
	Scale GradeScale `json:"scale" validate:"required"`
}

// MinimumQualification is the first stage of an education policy: the
// candidate's highest qualification must reach this level, optionally with a
// minimum grade.
type MinimumQualification struct {
	Level    DegreeLevel       `json:"level" validate:"required"`
	MinGrade *GradeRequirement `json:"min_grade,omitempty"`
}

// ExperienceSubstitute lets sufficient experience satisfy a degree
// requirement even without a matching degree.
type ExperienceSubstitute struct {
	YearsRequired float64 `json:"years_required" validate:"gte=0"`
}

// DegreeRequirement is the second stage of an education policy: a specific
// degree, optionally constrained by field and grade.
type DegreeRequirement struct {
	Level                DegreeLevel           `json:"level" validate:"required"`
	AllowedFields        []string              `json:"allowed_fields,omitempty"`
	AcceptRelatedFields  bool                  `json:"accept_related_fields,omitempty"`
	MinGrade             *GradeRequirement     `json:"min_grade,omitempty"`
	ExperienceSubstitute *ExperienceSubstitute `json:"experience_substitute,omitempty"`
}

// EducationPolicy is the optional two-stage education rule attached to a job.
// Either stage may be unset; an entirely unset policy is vacuously satisfied.
type EducationPolicy struct {
	MinimumQualification *MinimumQualification `json:"minimum_qualification,omitempty"`
	DegreeRequirement    *DegreeRequirement    `json:"degree_requirement,omitempty"`
}

// ScoreWeights are the per-category weights for the weighted score. They need
// not sum to 100; the aggregator renormalizes over applicable categories.
type ScoreWeights struct {
	SkillsAll  float64 `json:"skills_all" validate:"gte=0"`
	SkillsAny  float64 `json:"skills_any" validate:"gte=0"`
	Experience float64 `json:"experience" validate:"gte=0"`
	Similarity float64 `json:"similarity" validate:"gte=0"`
	Degree     float64 `json:"degree" validate:"gte=0"`
}

// ScoringConfig controls weighted scoring and the selection threshold.
type ScoringConfig struct {
	Enabled   bool         `json:"enabled"`
	Threshold float64      `json:"threshold" validate:"gte=0,lte=100"`
	Weights   ScoreWeights `json:"weights"`
}

// JobRules is the immutable screening configuration attached to a job
// posting. Every rule category is independently optional: an unset category
// is vacuously satisfied and contributes no weight.
type JobRules struct {
	RuleVersion string `json:"version,omitempty"`
	Role        string `json:"role,omitempty"`

	RequiredAll []string `json:"required_all,omitempty"`
	RequiredAny []string `json:"required_any,omitempty"`
	AnyMin      int      `json:"any_min,omitempty" validate:"gte=0"`

	MinYears float64 `json:"min_years,omitempty" validate:"gte=0"`

	ForbiddenKeywords []string `json:"forbidden_keywords,omitempty"`

	// nil means the similarity gate is not configured
	SimilarityThreshold *float64 `json:"similarity_threshold,omitempty"`

	Education *EducationPolicy `json:"education,omitempty"`

	AllowedLocations []string `json:"allowed_locations,omitempty"`
	AllowRemote      bool     `json:"allow_remote,omitempty"`

	RequireWorkAuthorization bool `json:"require_work_auth,omitempty"`

	Scoring *ScoringConfig `json:"scoring,omitempty"`
}

// TargetSkills returns the union of required_all and required_any, first
// occurrence order preserved, duplicates removed. This is the target term
// list for the similarity scorer.
func (r *JobRules) TargetSkills() []string {
	seen := make(map[string]bool)
	targets := make([]string, 0, len(r.RequiredAll)+len(r.RequiredAny))
	for _, skill := range append(append([]string{}, r.RequiredAll...), r.RequiredAny...) {
		key := strings.ToLower(strings.TrimSpace(skill))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		targets = append(targets, skill)
	}
	return targets
}

// Validate checks the structural tags on the rule set using the validator.
// Cross-field invariants are checked by the screening engine on top of this.
func (r *JobRules) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
