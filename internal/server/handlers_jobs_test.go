package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/screening"
)

func TestDecodeRules_Valid(t *testing.T) {
	raw := json.RawMessage(`{
		"required_all": ["go"],
		"required_any": ["kubernetes", "aws"],
		"any_min": 1,
		"min_years": 3
	}`)

	rules, err := decodeRules(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, rules.RequiredAll)
	assert.Equal(t, 1, rules.AnyMin)
	assert.Equal(t, 3.0, rules.MinYears)
}

func TestDecodeRules_SchemaViolation(t *testing.T) {
	_, err := decodeRules(json.RawMessage(`{"similarity_threshold": 2}`))

	var schemaErr *schemas.ValidationError
	require.ErrorAs(t, err, &schemaErr)
}

func TestDecodeRules_UnknownField(t *testing.T) {
	_, err := decodeRules(json.RawMessage(`{"required_skills": ["go"]}`))

	var schemaErr *schemas.ValidationError
	require.ErrorAs(t, err, &schemaErr)
}

func TestDecodeRules_SemanticViolation(t *testing.T) {
	// Passes the schema but fails the engine's cross-field check.
	_, err := decodeRules(json.RawMessage(`{"required_any": ["go"], "any_min": 2}`))

	var invalid *screening.InvalidRuleConfigurationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "any_min", invalid.Field)
}

func TestDecodeRules_MalformedJSON(t *testing.T) {
	_, err := decodeRules(json.RawMessage(`{not json`))
	require.Error(t, err)
}
