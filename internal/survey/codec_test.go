package survey

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		path    string
		want    Format
		wantErr bool
	}{
		"json":        {path: "a/survey.json", want: FormatJSON},
		"yaml":        {path: "survey.yaml", want: FormatYAML},
		"yml upper":   {path: "survey.YML", want: FormatYAML},
		"unsupported": {path: "survey.txt", wantErr: true},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := FormatFromPath(tc.path)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoad_JSONAndYAMLAgree(t *testing.T) {
	t.Parallel()

	fromJSON, err := Load(filepath.Join("testdata", "customer.json"))
	require.NoError(t, err)
	fromYAML, err := Load(filepath.Join("testdata", "customer.yaml"))
	require.NoError(t, err)

	// The YAML fixture omits positional fields; normalize both.
	assert.Equal(t, Reindex(fromJSON), Reindex(fromYAML))
}

func TestLoad_DecodesTypedOptions(t *testing.T) {
	t.Parallel()

	s, err := Load(filepath.Join("testdata", "customer.json"))
	require.NoError(t, err)

	block := s.Children[0]
	assert.Equal(t, BlockOptions{ShowLabel: false}, block.Options)

	q1 := block.Children[0]
	opts, ok := q1.Options.(ChoiceOptions)
	require.True(t, ok, "choice options decoded as %T", q1.Options)
	assert.True(t, opts.Required)
	require.Len(t, q1.Rows, 2)
	assert.True(t, q1.Rows[1].Options.Exclusive)
	assert.Nil(t, q1.Columns)

	page := s.Children[1]
	assert.Nil(t, page.Label)
	assert.Equal(t, EmptyOptions{}, page.Options)

	q2 := s.Children[2]
	num, ok := q2.Options.(NumberOptions)
	require.True(t, ok)
	require.NotNil(t, num.Min)
	assert.Equal(t, 0.0, *num.Min)
	require.Len(t, q2.Conditions, 1)
	assert.Equal(t, ActionShow, q2.Conditions[0].Action)
	assert.Equal(t, true, q2.Conditions[0].Rules[0].Value)
}

func TestLoad_BlockDefaultsWhenOptionsMissing(t *testing.T) {
	t.Parallel()

	s, err := Decode(strings.NewReader(`{"code":"S","title":"T","children":[{"id":"b","code":"B","type":"block","label":"B","children":[]}]}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, BlockOptions{ShowLabel: true}, s.Children[0].Options)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		path    string
		wantErr string
	}{
		"unknown item type":  {path: "unknown_type.json", wantErr: `unknown item type "slider"`},
		"yaml sequence root": {path: "not_a_mapping.yaml", wantErr: "expected a YAML mapping"},
		"missing file":       {path: "missing.json", wantErr: "opening survey"},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(filepath.Join("testdata", tc.path))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}

	_, err := Decode(strings.NewReader("   "), FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestMarshal_PresenceOfKeys(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		item    Item
		present []string
		absent  []string
	}{
		"empty container keeps children key": {
			item:    container("b", "B", TypeBlock),
			present: []string{`"children":[]`, `"label"`},
			absent:  []string{`"help"`, `"rows"`},
		},
		"question without rows": {
			item:    question("q", "Q", TypeString),
			present: []string{`"help":""`, `"options":{"required":false,"multiline":false}`},
			absent:  []string{`"children"`, `"rows"`, `"columns"`},
		},
		"break page": {
			item: Item{
				SortableItem: SortableItem{ID: "p", Code: "P"},
				Type:         TypeBreakPage,
				Options:      EmptyOptions{},
			},
			present: []string{`"options":{}`},
			absent:  []string{`"label"`, `"help"`, `"children"`},
		},
		"nil options encode as empty object": {
			item:    Item{SortableItem: SortableItem{ID: "t", Code: "T"}, Type: TypeText, Label: str("T")},
			present: []string{`"options":{}`},
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			data, err := json.Marshal(tc.item)
			require.NoError(t, err)
			for _, want := range tc.present {
				assert.Contains(t, string(data), want)
			}
			for _, notWant := range tc.absent {
				assert.NotContains(t, string(data), notWant)
			}
		})
	}
}

func TestEncode_YAMLRoundTrip(t *testing.T) {
	t.Parallel()

	s := sample()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s, FormatYAML))
	assert.True(t, strings.HasPrefix(buf.String(), "code: S1\n"), "key order kept: %q", buf.String())
	assert.NotContains(t, buf.String(), `{"`)

	back, err := Decode(&buf, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"out.json", "out.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, sample()))

		back, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, sample(), back, name)
	}
}

func TestSaveAs_IgnoresExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "survey.txt")
	require.NoError(t, SaveAs(path, sample(), FormatYAML))

	_, err := Load(path)
	require.Error(t, err, "extension still decides Load")

	require.Error(t, Save(path, sample()))
}

func TestEncodeItem(t *testing.T) {
	t.Parallel()

	q3, ok := FindByCode(sample(), "Q3")
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, EncodeItem(&buf, q3, FormatJSON))

	var back Item
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, q3, back)

	buf.Reset()
	require.NoError(t, EncodeItem(&buf, q3, FormatYAML))
	assert.Contains(t, buf.String(), "type: number\n")
}
