package types

// Qualification is one education entry extracted from resume text.
type Qualification struct {
	Level      DegreeLevel `json:"level"`
	Field      string      `json:"field,omitempty"`
	GradeValue *float64    `json:"grade_value,omitempty"`
	GradeScale GradeScale  `json:"grade_scale,omitempty"`
	Year       *int        `json:"year,omitempty"`

	// Position is the byte offset of the match in the source text, used to
	// break ties between qualifications at the same level (latest wins).
	Position int `json:"-"`
}

// ExtractedProfile holds everything the entity extractor pulled from a
// resume. It is never mutated after creation; absent signals are zero values.
type ExtractedProfile struct {
	Skills                        []string        `json:"skills"`
	EstimatedYears                float64         `json:"estimated_years"`
	Qualifications                []Qualification `json:"qualifications"`
	LocationMentions              []string        `json:"location_mentions"`
	RemoteMention                 bool            `json:"remote_mention"`
	HasWorkAuthorizationStatement bool            `json:"has_work_authorization_statement"`
	ForbiddenHits                 []string        `json:"forbidden_hits"`
}

// HighestQualification returns the qualification with the highest level rank,
// ties broken by the latest document position. Returns nil when the profile
// has no qualifications.
func (p *ExtractedProfile) HighestQualification() *Qualification {
	var highest *Qualification
	for i := range p.Qualifications {
		q := &p.Qualifications[i]
		if highest == nil {
			highest = q
			continue
		}
		if q.Level.Rank() > highest.Level.Rank() ||
			(q.Level.Rank() == highest.Level.Rank() && q.Position >= highest.Position) {
			highest = q
		}
	}
	return highest
}

// HasSkill reports whether the profile contains the given canonical skill.
func (p *ExtractedProfile) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
