package extraction

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// qualificationWindow is how far past a degree keyword the extractor looks
// for a field phrase, grade and year.
const qualificationWindow = 120

// minKeywordGap suppresses duplicate qualifications when several keywords
// for the same level hit almost the same spot ("master" inside "master's").
const minKeywordGap = 12

var (
	yearsPattern = regexp.MustCompile(`(\d{1,2})\s*\+?\s*(?:years|yrs)\b`)

	fieldPattern = regexp.MustCompile(`^(?:'s)?\s*(?:of\s+(?:science|arts|engineering|technology)\s+|degree\s+)?(?:in|of)\s+([a-z][a-z &+/-]+)`)

	gradeFractionPattern = regexp.MustCompile(`(\d{1,2}(?:\.\d+)?)\s*/\s*(10|4)\b`)
	gradePercentPattern  = regexp.MustCompile(`(\d{1,3}(?:\.\d+)?)\s*(?:%|percent\b)`)
	gradePointPattern    = regexp.MustCompile(`(cgpa|gpa)\s*:?\s*(\d{1,2}(?:\.\d+)?)`)

	gradYearPattern = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

	fieldStopPattern = regexp.MustCompile(`\s+(?:from|at|with|and)\b.*$|[,.;:()|].*$|\s*\d.*$`)
)

// Extractor pulls an ExtractedProfile out of plain resume text. It never
// fails: absent signals become empty or zero values.
type Extractor struct {
	vocab *Vocabulary
	canon map[string]string
}

// NewExtractor creates an extractor over the given vocabulary. A nil
// vocabulary uses the built-in default.
func NewExtractor(vocab *Vocabulary) *Extractor {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Extractor{vocab: vocab, canon: vocab.CanonicalMap()}
}

// Canonicalize maps a skill term to its canonical vocabulary form.
func (e *Extractor) Canonicalize(skill string) string {
	norm := NormalizePhrase(skill)
	if canonical, ok := e.canon[norm]; ok {
		return canonical
	}
	return norm
}

// CanonicalizeAll canonicalizes and deduplicates a term list, preserving
// first-occurrence order.
func (e *Extractor) CanonicalizeAll(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		c := e.Canonicalize(s)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// Extract builds the profile for a resume. Skill and location matching run
// against the vocabulary unioned with the job's own terms (required skills,
// allowed locations); forbidden-keyword hits come from the rule set. A nil
// rules value extracts against the vocabulary alone.
func (e *Extractor) Extract(text string, rules *types.JobRules) *types.ExtractedProfile {
	norm := NormalizeText(text)

	profile := &types.ExtractedProfile{
		Skills:                        e.extractSkills(norm, rules),
		EstimatedYears:                e.extractYears(norm),
		Qualifications:                e.extractQualifications(norm),
		LocationMentions:              e.extractLocations(norm, rules),
		RemoteMention:                 e.mentionsRemote(norm),
		HasWorkAuthorizationStatement: e.hasWorkAuthorization(norm),
	}
	if rules != nil {
		profile.ForbiddenHits = e.forbiddenHits(norm, rules.ForbiddenKeywords)
	} else {
		profile.ForbiddenHits = []string{}
	}
	return profile
}

// extractSkills matches vocabulary terms (and the job's own required terms)
// as whole words and records the canonical names, sorted.
func (e *Extractor) extractSkills(norm string, rules *types.JobRules) []string {
	// canonical -> the forms that can indicate it
	forms := make(map[string][]string, len(e.vocab.SkillSynonyms))
	for canonical, synonyms := range e.vocab.SkillSynonyms {
		c := NormalizePhrase(canonical)
		forms[c] = append([]string{c}, synonyms...)
	}
	if rules != nil {
		for _, skill := range rules.TargetSkills() {
			c := e.Canonicalize(skill)
			if c == "" {
				continue
			}
			if _, ok := forms[c]; !ok {
				forms[c] = []string{c}
			}
		}
	}

	found := make([]string, 0)
	for canonical, variants := range forms {
		for _, variant := range variants {
			if containsWholeWord(norm, variant) {
				found = append(found, canonical)
				break
			}
		}
	}
	sort.Strings(found)
	return found
}

// extractYears returns the largest "N years" mention, 0 when none is found.
// Contradictory mentions deliberately resolve to the maximum, not a sum.
func (e *Extractor) extractYears(norm string) float64 {
	maxYears := 0.0
	for _, m := range yearsPattern.FindAllStringSubmatch(norm, -1) {
		if years, err := strconv.ParseFloat(m[1], 64); err == nil && years > maxYears {
			maxYears = years
		}
	}
	return maxYears
}

// extractQualifications finds degree keywords and parses the surrounding
// window for field, grade and year. All matches are retained.
func (e *Extractor) extractQualifications(norm string) []types.Qualification {
	var quals []types.Qualification
	for level, keywords := range e.vocab.DegreeKeywords {
		var positions []int
		for _, keyword := range keywords {
			pattern := wordBoundaryPattern(keyword)
			for _, loc := range pattern.FindAllStringIndex(norm, -1) {
				// loc[0] may sit on the boundary character before the keyword
				start := loc[0]
				if start < len(norm) && !isWordByte(norm[start]) {
					start++
				}
				if tooClose(positions, start) {
					continue
				}
				positions = append(positions, start)

				end := loc[1]
				window := norm[min(end, len(norm)):min(end+qualificationWindow, len(norm))]

				q := types.Qualification{Level: level, Position: start}
				q.Field = parseField(window)
				q.GradeValue, q.GradeScale = parseGrade(window)
				q.Year = parseYear(window)
				quals = append(quals, q)
			}
		}
	}
	sort.Slice(quals, func(i, j int) bool { return quals[i].Position < quals[j].Position })
	return quals
}

// extractLocations scans the gazetteer unioned with the job's own allowed
// locations, so a rule can name a place the built-in list lacks.
func (e *Extractor) extractLocations(norm string, rules *types.JobRules) []string {
	terms := make([]string, 0, len(e.vocab.Locations))
	terms = append(terms, e.vocab.Locations...)
	if rules != nil {
		terms = append(terms, rules.AllowedLocations...)
	}

	found := make([]string, 0)
	seen := make(map[string]bool, len(terms))
	for _, loc := range terms {
		key := NormalizePhrase(loc)
		if key == "" || seen[key] {
			continue
		}
		if containsWholeWord(norm, loc) {
			seen[key] = true
			found = append(found, key)
		}
	}
	sort.Strings(found)
	return found
}

func (e *Extractor) mentionsRemote(norm string) bool {
	for _, kw := range e.vocab.RemoteKeywords {
		if containsWholeWord(norm, kw) {
			return true
		}
	}
	return false
}

func (e *Extractor) hasWorkAuthorization(norm string) bool {
	for _, phrase := range e.vocab.WorkAuthorizationPhrases {
		if strings.Contains(norm, NormalizePhrase(phrase)) {
			return true
		}
	}
	return false
}

func (e *Extractor) forbiddenHits(norm string, forbidden []string) []string {
	hits := make([]string, 0)
	seen := make(map[string]bool)
	for _, kw := range forbidden {
		k := NormalizePhrase(kw)
		if k == "" || seen[k] {
			continue
		}
		if containsWholeWord(norm, k) {
			hits = append(hits, k)
			seen[k] = true
		}
	}
	sort.Strings(hits)
	return hits
}

// parseField pulls a field-of-study phrase ("in computer science") out of
// the window following a degree keyword.
func parseField(window string) string {
	m := fieldPattern.FindStringSubmatch(window)
	if m == nil {
		return ""
	}
	field := fieldStopPattern.ReplaceAllString(m[1], "")
	field = strings.TrimSpace(field)
	// Cap runaway captures at four words
	words := strings.Fields(field)
	if len(words) > 4 {
		words = words[:4]
	}
	return strings.Join(words, " ")
}

// parseGrade recognizes "85%", "8.5/10", "3.7/4", "cgpa 8.2" and "gpa 3.5"
// style grades in the window.
func parseGrade(window string) (*float64, types.GradeScale) {
	if m := gradeFractionPattern.FindStringSubmatch(window); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			if m[2] == "10" {
				return &value, types.GradeScaleCGPA10
			}
			return &value, types.GradeScaleGPA4
		}
	}
	if m := gradePercentPattern.FindStringSubmatch(window); m != nil {
		if value, err := strconv.ParseFloat(m[1], 64); err == nil && value <= 100 {
			return &value, types.GradeScalePercentage
		}
	}
	if m := gradePointPattern.FindStringSubmatch(window); m != nil {
		value, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return nil, ""
		}
		if m[1] == "cgpa" || value > 4 {
			return &value, types.GradeScaleCGPA10
		}
		return &value, types.GradeScaleGPA4
	}
	return nil, ""
}

func parseYear(window string) *int {
	m := gradYearPattern.FindStringSubmatch(window)
	if m == nil {
		return nil
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &year
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

func tooClose(positions []int, pos int) bool {
	for _, p := range positions {
		if pos-p < minKeywordGap && p-pos < minKeywordGap {
			return true
		}
	}
	return false
}
