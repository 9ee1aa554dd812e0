package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"rules": "rules.json",
		"resume_dir": "/data/resumes",
		"concurrency": 8,
		"database_url": "postgres://localhost/screener",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "rules.json", cfg.Rules)
	assert.Equal(t, "/data/resumes", cfg.ResumeDir)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.Equal(t, "postgres://localhost/screener", cfg.DatabaseURL)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		Resume:    "resume.pdf",
		ResumeDir: "/data/resumes",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_NegativeConcurrency(t *testing.T) {
	cfg := &Config{
		Concurrency: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "concurrency")
}

func TestValidate_MissingRulesFile(t *testing.T) {
	cfg := &Config{
		Rules: filepath.Join(t.TempDir(), "missing.json"),
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rules file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		ListenAddr:  ":8080",
		Concurrency: 4,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Rules:       "default-rules.json",
		DatabaseURL: "postgres://localhost/screener",
		ListenAddr:  ":8080",
		Concurrency: 8,
	}

	partial := Config{
		Rules:  "custom-rules.json",
		Output: "results.json",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom-rules.json", merged.Rules)
	assert.Equal(t, "results.json", merged.Output)

	// Default values should fill in empty fields
	assert.Equal(t, "postgres://localhost/screener", merged.DatabaseURL)
	assert.Equal(t, ":8080", merged.ListenAddr)
	assert.Equal(t, 8, merged.Concurrency)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Rules: "rules.json",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "rules.json", merged.Rules)
	assert.Equal(t, 4, merged.Concurrency)
}
