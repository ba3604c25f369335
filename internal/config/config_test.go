// Package config_test tests configuration loading, merging hierarchy, and environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty temp dir so no real global config is read.
// Tests calling it cannot use t.Parallel() because they modify the environment.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Preset)
	assert.False(t, cfg.StopOnFirstError)
	assert.Empty(t, cfg.Severities)
	assert.False(t, cfg.CheckReferences)
	assert.Equal(t, "Q", cfg.CodePrefix)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, "auto", cfg.Color)
}

func TestLoad_MissingLocalFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Preset)
}

func TestLoad_LocalOverride(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.json")
	writeFile(t, path, `{
		"preset": "strict",
		"check_references": true,
		"severities": ["error", "warning"]
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "strict", cfg.Preset)
	assert.True(t, cfg.CheckReferences)
	assert.Equal(t, []string{"error", "warning"}, cfg.Severities)
	assert.Equal(t, "Q", cfg.CodePrefix)
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("SURVEYSPEC_PRESET", "lenient")
	t.Setenv("SURVEYSPEC_STOP_ON_FIRST_ERROR", "true")
	t.Setenv("SURVEYSPEC_CODE_PREFIX", "Item")
	t.Setenv("SURVEYSPEC_SEVERITIES", "error,info")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "lenient", cfg.Preset)
	assert.True(t, cfg.StopOnFirstError)
	assert.Equal(t, "Item", cfg.CodePrefix)
	assert.Equal(t, []string{"error", "info"}, cfg.Severities)
}

func TestLoad_OverridePrecedence(t *testing.T) {
	home := isolate(t)

	writeFile(t, filepath.Join(home, ".surveyspec", "config.json"), `{
		"preset": "strict",
		"code_prefix": "G",
		"output": "json"
	}`)
	local := filepath.Join(t.TempDir(), ".surveyspec", "config.json")
	writeFile(t, local, `{"code_prefix": "L", "output": "text"}`)
	t.Setenv("SURVEYSPEC_OUTPUT", "json")

	cfg, err := Load(local)
	require.NoError(t, err)

	// Global value survives where nothing overrides it.
	assert.Equal(t, "strict", cfg.Preset)
	// Local beats global.
	assert.Equal(t, "L", cfg.CodePrefix)
	// Environment beats local.
	assert.Equal(t, "json", cfg.Output)
}

func TestLoad_Normalizes(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.json")
	writeFile(t, path, `{"preset": " Strict ", "severities": ["ERROR", " "], "color": "NEVER"}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "strict", cfg.Preset)
	assert.Equal(t, []string{"error"}, cfg.Severities)
	assert.Equal(t, "never", cfg.Color)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := map[string]struct {
		content string
		field   string
	}{
		"unknown preset":   {content: `{"preset": "paranoid"}`, field: "Preset"},
		"unknown severity": {content: `{"severities": ["fatal"]}`, field: "Severities"},
		"empty prefix":     {content: `{"code_prefix": ""}`, field: "CodePrefix"},
		"symbol prefix":    {content: `{"code_prefix": "Q-"}`, field: "CodePrefix"},
		"long prefix":      {content: `{"code_prefix": "ABCDEFGHIJK"}`, field: "CodePrefix"},
		"unknown output":   {content: `{"output": "xml"}`, field: "Output"},
		"unknown color":    {content: `{"color": "sometimes"}`, field: "Color"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), "config.json")
			writeFile(t, path, tt.content)

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.json")
	writeFile(t, path, `{"preset": `)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load local config")
}

func TestEnvTransform(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "code_prefix", envTransform("SURVEYSPEC_CODE_PREFIX"))
	assert.Equal(t, "stop_on_first_error", envTransform("SURVEYSPEC_STOP_ON_FIRST_ERROR"))
}

func TestDefaultsMatchSchema(t *testing.T) {
	t.Parallel()

	defaults := GetDefaults()
	assert.Len(t, KnownKeys, len(defaults))
	for key, schema := range KnownKeys {
		assert.Equal(t, key, schema.Path)
		assert.Equal(t, defaults[key], schema.Default, key)
	}
}
