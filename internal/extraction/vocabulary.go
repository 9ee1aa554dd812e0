package extraction

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/types"
)

// Vocabulary holds the keyword lists the extractor matches against. It is
// plain configuration data so tests and callers can supply their own lists
// instead of relying on embedded constants.
type Vocabulary struct {
	// SkillSynonyms maps a canonical skill name to its accepted variants.
	SkillSynonyms map[string][]string `json:"skill_synonyms"`

	// Locations is the gazetteer of recognized location strings.
	Locations []string `json:"locations"`

	// RemoteKeywords mark a remote-work mention.
	RemoteKeywords []string `json:"remote_keywords"`

	// WorkAuthorizationPhrases mark a work-authorization statement.
	WorkAuthorizationPhrases []string `json:"work_authorization_phrases"`

	// DegreeKeywords maps a qualification level to the keywords that
	// indicate it.
	DegreeKeywords map[types.DegreeLevel][]string `json:"degree_keywords"`
}

// DefaultVocabulary returns the built-in general vocabulary.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		SkillSynonyms: map[string][]string{
			"python":           {"py", "python3"},
			"java":             {"java8", "java11", "java17"},
			"javascript":       {"js", "node", "nodejs", "node.js"},
			"typescript":       {"ts"},
			"go":               {"golang"},
			"sql":              {"postgresql", "postgres", "mysql", "sqlite", "mariadb", "t-sql", "oracle"},
			"nosql":            {"mongodb", "mongo", "dynamodb", "cassandra", "couchdb"},
			"react":            {"reactjs", "react.js"},
			"angular":          {"angularjs", "angular.js"},
			"vue":              {"vuejs", "vue.js"},
			"django":           {},
			"flask":            {},
			"fastapi":          {"fast api"},
			"springboot":       {"spring boot", "spring"},
			"dotnet":           {".net", "asp.net", "c#", "csharp"},
			"aws":              {"amazon web services", "ec2", "s3", "lambda"},
			"azure":            {"microsoft azure"},
			"gcp":              {"google cloud", "google cloud platform"},
			"docker":           {},
			"kubernetes":       {"k8s"},
			"linux":            {"unix", "ubuntu", "centos", "redhat"},
			"git":              {"github", "gitlab", "bitbucket"},
			"rest":             {"restful", "rest api", "restful api"},
			"graphql":          {},
			"microservices":    {"micro services"},
			"kafka":            {"apache kafka"},
			"redis":            {},
			"elasticsearch":    {"elastic search"},
			"pandas":           {},
			"numpy":            {},
			"scikit-learn":     {"sklearn", "scikit learn"},
			"tensorflow":       {"tensor flow"},
			"pytorch":          {"torch"},
			"machine learning": {"ml", "artificial intelligence", "ai"},
			"deep learning":    {"neural networks"},
			"data analysis":    {"data analytics"},
			"ci/cd":            {"cicd", "continuous integration", "continuous delivery"},
			"terraform":        {},
			"ansible":          {},
			"jenkins":          {},
		},
		Locations: []string{
			"new york", "san francisco", "seattle", "austin", "boston",
			"chicago", "los angeles", "denver", "atlanta", "london",
			"berlin", "amsterdam", "toronto", "vancouver", "bangalore",
			"bengaluru", "hyderabad", "pune", "mumbai", "delhi", "chennai",
			"singapore", "sydney", "dubai",
		},
		RemoteKeywords: []string{
			"remote", "work from home", "wfh", "fully remote",
		},
		WorkAuthorizationPhrases: []string{
			"authorized to work", "eligible to work", "no sponsorship required",
			"u.s. citizen", "us citizen", "green card", "permanent resident",
			"work permit", "work visa", "can work in", "authorized in", "citizen",
		},
		DegreeKeywords: map[types.DegreeLevel][]string{
			types.DegreeDoctorate: {"phd", "ph.d", "doctorate", "doctoral", "dphil"},
			types.DegreeMaster:    {"master's", "masters", "master", "msc", "m.sc", "mba", "m.tech", "mtech", "ms in"},
			types.DegreeBachelor:  {"bachelor's", "bachelors", "bachelor", "bsc", "b.sc", "b.tech", "btech", "b.e", "bs in", "ba in"},
			types.DegreeDiploma:   {"diploma", "associate's", "associates", "associate degree"},
			types.DegreeSecondary: {"high school", "secondary school", "hsc", "ssc", "ged", "a-levels"},
		},
	}
}

// LoadVocabulary reads a vocabulary from a JSON file.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	var vocab Vocabulary
	if err := json.Unmarshal(data, &vocab); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}
	return &vocab, nil
}

// CanonicalMap maps every normalized variant (and every canonical name) to
// its canonical skill name.
func (v *Vocabulary) CanonicalMap() map[string]string {
	mapping := make(map[string]string, len(v.SkillSynonyms)*2)
	for canonical, synonyms := range v.SkillSynonyms {
		canonicalNorm := NormalizePhrase(canonical)
		mapping[canonicalNorm] = canonicalNorm
		for _, syn := range synonyms {
			synNorm := NormalizePhrase(syn)
			if synNorm != "" {
				mapping[synNorm] = canonicalNorm
			}
		}
	}
	return mapping
}
