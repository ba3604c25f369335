package inspect

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surveyspec/surveyspec/internal/cli/shared"
	"github.com/surveyspec/surveyspec/internal/testutil"
)

func newTestRoot(t *testing.T) *cobra.Command {
	t.Helper()
	testutil.IsolateConfig(t)
	return testutil.NewRootCmd(t, Register)
}

func TestCodes(t *testing.T) {
	path := testutil.CreateTempSurvey(t, t.TempDir(), "survey.json", testutil.InvalidSurveyJSON)

	tests := map[string]struct {
		args      []string
		wantCodes []string
	}{
		"all codes": {
			args:      nil,
			wantCodes: []string{"CSAT", "Q1", "Q1"},
		},
		"duplicates only": {
			args:      []string{"--duplicates"},
			wantCodes: []string{"Q1", "Q1"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			args := append([]string{"codes", path, "--json"}, tt.args...)
			stdout, _, err := testutil.RunCommand(newTestRoot(t), "", args...)
			require.NoError(t, err)

			var entries []codeEntry
			require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
			var codes []string
			for _, e := range entries {
				codes = append(codes, e.Code)
			}
			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func TestCodes_Text(t *testing.T) {
	path := testutil.CreateTempSurvey(t, t.TempDir(), "survey.json", testutil.InvalidSurveyJSON)

	stdout, _, err := testutil.RunCommand(newTestRoot(t), "", "codes", path)

	require.NoError(t, err)
	assert.Contains(t, stdout, "children[1].code")
	assert.Contains(t, stdout, "duplicate x2")
}

func TestCodes_Next(t *testing.T) {
	path := testutil.CreateTempSurvey(t, t.TempDir(), "survey.json", testutil.ValidSurveyJSON)

	tests := map[string]struct {
		prefix string
		want   string
	}{
		"question prefix": {prefix: "Q", want: "Q3\n"},
		"row prefix":      {prefix: "R", want: "R3\n"},
		"default prefix":  {prefix: "", want: "Q3\n"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stdout, _, err := testutil.RunCommand(newTestRoot(t), "", "codes", path, "--next", tt.prefix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestTree(t *testing.T) {
	path := testutil.CreateTempSurvey(t, t.TempDir(), "survey.json", testutil.ValidSurveyJSON)

	stdout, _, err := testutil.RunCommand(newTestRoot(t), "", "tree", path, "--rows", "--conditions")

	require.NoError(t, err)
	assert.Contains(t, stdout, "CSAT Customer satisfaction")
	assert.Contains(t, stdout, "├── Q1 [choice] Would you recommend us?")
	assert.Contains(t, stdout, "└── Q2 [string] What should we improve?")
	assert.Contains(t, stdout, "R2 No")
	assert.Contains(t, stdout, `show eq(answers["Q1.R2"], true)`)
	assert.Contains(t, stdout, "2 items")
}

type evalJSON struct {
	Outcomes []struct {
		Code    string `json:"code"`
		Action  string `json:"action"`
		Matched bool   `json:"matched"`
	} `json:"outcomes"`
	States map[string]struct {
		Visible  bool `json:"visible"`
		Required bool `json:"required"`
	} `json:"states"`
}

func TestEval(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateTempSurvey(t, dir, "survey.json", testutil.ValidSurveyJSON)
	answersPath := filepath.Join(dir, "answers.yaml")
	testutil.WriteFile(t, answersPath, "Q1.R2: true\n")

	tests := map[string]struct {
		args        []string
		wantVisible bool
	}{
		"no answers hides Q2": {
			args:        nil,
			wantVisible: false,
		},
		"inline answer shows Q2": {
			args:        []string{"--set", "Q1.R2=true"},
			wantVisible: true,
		},
		"answers file shows Q2": {
			args:        []string{"--answers", answersPath},
			wantVisible: true,
		},
		"inline overrides file": {
			args:        []string{"--answers", answersPath, "--set", "Q1.R2=false"},
			wantVisible: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			args := append([]string{"eval", path, "--json"}, tt.args...)
			stdout, _, err := testutil.RunCommand(newTestRoot(t), "", args...)
			require.NoError(t, err)

			var res evalJSON
			require.NoError(t, json.Unmarshal([]byte(stdout), &res))
			require.Len(t, res.Outcomes, 1)
			assert.Equal(t, "Q2", res.Outcomes[0].Code)
			assert.Equal(t, tt.wantVisible, res.Outcomes[0].Matched)
			assert.True(t, res.States["Q1"].Visible)
			assert.True(t, res.States["Q1"].Required)
			assert.Equal(t, tt.wantVisible, res.States["Q2"].Visible)
		})
	}
}

func TestEval_Table(t *testing.T) {
	path := testutil.CreateTempSurvey(t, t.TempDir(), "survey.json", testutil.ValidSurveyJSON)

	stdout, _, err := testutil.RunCommand(newTestRoot(t), "", "eval", path, "--set", "Q1.R2=true")

	require.NoError(t, err)
	assert.Contains(t, stdout, "CODE")
	assert.Contains(t, stdout, "show=true")
}

func TestEval_Errors(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateTempSurvey(t, dir, "survey.json", testutil.ValidSurveyJSON)

	tests := map[string]struct {
		args     []string
		wantCode int
	}{
		"malformed assignment": {
			args:     []string{"eval", path, "--set", "Q1"},
			wantCode: shared.ExitInvalidArguments,
		},
		"missing answers file": {
			args:     []string{"eval", path, "--answers", filepath.Join(dir, "none.yaml")},
			wantCode: shared.ExitValidationFailed,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := testutil.RunCommand(newTestRoot(t), "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, shared.ExitCode(err))
		})
	}
}
