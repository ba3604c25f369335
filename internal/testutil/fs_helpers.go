// Package testutil provides test utilities and helpers for surveyspec tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// ValidSurveyJSON is a small survey with no errors: a choice question and a
// follow-up text question shown when the second row of Q1 is picked.
const ValidSurveyJSON = `{
  "code": "CSAT",
  "title": "Customer satisfaction",
  "description": "Quarterly customer survey",
  "children": [
    {
      "id": "q1",
      "code": "Q1",
      "type": "choice",
      "label": "Would you recommend us?",
      "options": {"required": true},
      "rows": [
        {"id": "r1", "code": "R1", "label": "Yes"},
        {"id": "r2", "code": "R2", "label": "No"}
      ]
    },
    {
      "id": "q2",
      "code": "Q2",
      "type": "string",
      "label": "What should we improve?",
      "options": {},
      "conditions": [
        {"action": "show", "rules": [{"code": "Q1", "rowCode": "R2", "operator": "=", "value": true}]}
      ]
    }
  ]
}
`

// InvalidSurveyJSON has a duplicated code and a choice question without rows.
const InvalidSurveyJSON = `{
  "code": "CSAT",
  "title": "Customer satisfaction",
  "children": [
    {"id": "q1", "code": "Q1", "type": "choice", "label": "Pick one", "options": {}, "rows": []},
    {"id": "q2", "code": "Q1", "type": "string", "label": "Why?", "options": {}}
  ]
}
`

// CreateTempSurvey writes content to name inside dir and returns its path.
func CreateTempSurvey(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	WriteFile(t, path, content)
	return path
}

// CreateTempDir creates a temporary directory with cleanup.
func CreateTempDir(t *testing.T, prefix string) string {
	t.Helper()

	dir, err := os.MkdirTemp("", prefix)
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	t.Cleanup(func() {
		os.RemoveAll(dir)
	})

	return dir
}

// WriteFile writes content to a file, creating parent directories if needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads file content, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}

	return string(content)
}

// IsolateConfig points HOME at an empty directory and clears SURVEYSPEC_*
// variables so no user configuration leaks into a test. It returns the new
// home directory. Tests using it cannot run in parallel.
func IsolateConfig(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, kv := range os.Environ() {
		if key, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(key, "SURVEYSPEC_") {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}
	return home
}

// NewRootCmd builds a root command carrying the global flags of the real CLI,
// with the given command registrations applied. The config flag defaults to a
// file inside a fresh temp dir so tests never read the working directory.
func NewRootCmd(t *testing.T, register ...func(*cobra.Command)) *cobra.Command {
	t.Helper()

	root := &cobra.Command{Use: "surveyspec", SilenceUsage: true, SilenceErrors: true}
	for _, id := range []string{"documents", "inspection", "configuration"} {
		root.AddGroup(&cobra.Group{ID: id, Title: id})
	}
	root.PersistentFlags().StringP("config", "c", filepath.Join(t.TempDir(), "config.json"), "Path to config file")
	root.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	root.PersistentFlags().Bool("no-color", true, "Disable colored output")
	for _, r := range register {
		r(root)
	}
	return root
}

// RunCommand executes root with args and returns captured stdout and stderr.
func RunCommand(root *cobra.Command, stdin string, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
