package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/jonathan/resume-screener/internal/types"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const testRulesJSON = `{
	"required_all": ["go"],
	"min_years": 2
}`

const testResumeText = `Jane Doe
Software engineer with 5 years of experience building services in Go.`

func TestLoadRules_Valid(t *testing.T) {
	path := writeTempFile(t, t.TempDir(), "rules.json", testRulesJSON)

	rules, err := loadRules(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, rules.RequiredAll)
	assert.Equal(t, 2.0, rules.MinYears)
}

func TestLoadRules_SchemaViolation(t *testing.T) {
	path := writeTempFile(t, t.TempDir(), "rules.json", `{"min_years": "two"}`)

	_, err := loadRules(path)
	var schemaErr *schemas.ValidationError
	require.ErrorAs(t, err, &schemaErr)
}

func TestLoadRules_SemanticViolation(t *testing.T) {
	path := writeTempFile(t, t.TempDir(), "rules.json", `{"required_any": ["go"], "any_min": 3}`)

	_, err := loadRules(path)
	var invalid *screening.InvalidRuleConfigurationError
	require.ErrorAs(t, err, &invalid)
}

func TestLoadRules_MissingFile(t *testing.T) {
	_, err := loadRules(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestScreenFile_TextResume(t *testing.T) {
	dir := t.TempDir()
	resumePath := writeTempFile(t, dir, "resume.txt", testResumeText)

	rulesPath := writeTempFile(t, dir, "rules.json", testRulesJSON)
	rules, err := loadRules(rulesPath)
	require.NoError(t, err)

	result, err := screenFile(screening.NewEngine(), resumePath, rules, nil)
	require.NoError(t, err)
	assert.Equal(t, types.DecisionSelected, result.Decision)
}

func TestScreenFile_UnsupportedExtension(t *testing.T) {
	path := writeTempFile(t, t.TempDir(), "resume.xyz", testResumeText)

	_, err := screenFile(screening.NewEngine(), path, &types.JobRules{}, nil)
	var unsupported *ingestion.UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
}

func TestScreenDirectory_SortedResults(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "b.txt", testResumeText)
	writeTempFile(t, dir, "a.txt", "No relevant skills here.")
	writeTempFile(t, dir, "notes.xyz", "skipped entirely")

	rules, err := loadRules(writeTempFile(t, dir, "rules.json", testRulesJSON))
	require.NoError(t, err)

	// rules.json and notes.xyz are skipped: only recognized resume
	// extensions are screened.
	cfg := config.Config{ResumeDir: dir, Concurrency: 2}
	results, err := screenDirectory(screening.NewEngine(), cfg, rules)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, filepath.Join(dir, "a.txt"), results[0].File)
	assert.Equal(t, filepath.Join(dir, "b.txt"), results[1].File)
	assert.Equal(t, types.DecisionRejected, results[0].Result.Decision)
	assert.Equal(t, types.DecisionSelected, results[1].Result.Decision)
}

func TestScreenDirectory_EmptyDirectory(t *testing.T) {
	cfg := config.Config{ResumeDir: t.TempDir(), Concurrency: 1}
	_, err := screenDirectory(screening.NewEngine(), cfg, &types.JobRules{})
	require.Error(t, err)
}

func TestWriteResult_ToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "results.json")

	score := 80.0
	cfg := config.Config{Output: out, Pretty: true}
	require.NoError(t, writeResult(cfg, &types.EvaluationResult{
		Decision: types.DecisionSelected,
		Score:    &score,
	}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "selected", decoded["decision"])
}
