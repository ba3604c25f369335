package inspect

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/surveyspec/surveyspec/internal/cli/shared"
	"github.com/surveyspec/surveyspec/internal/ident"
	"github.com/surveyspec/surveyspec/internal/survey"
	"github.com/surveyspec/surveyspec/internal/validation"
)

func newCodesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codes <file>",
		Short: "List every code declared in a survey",
		Long: `List the survey code and every item, row and column code with its field path.

--duplicates keeps only codes declared more than once. --next prints the next
free code for a prefix instead.`,
		Example: `  # All codes
  surveyspec codes survey.json

  # Codes that break uniqueness
  surveyspec codes survey.json --duplicates

  # Next free row code
  surveyspec codes survey.json --next R`,
		Args: shared.ExactArgs(1),
		RunE: runCodes,
	}
	cmd.Flags().String("format", "", "Input format: json or yaml (default: from extension)")
	cmd.Flags().Bool("duplicates", false, "Only list codes declared more than once")
	cmd.Flags().String("next", "", "Print the next free code for this prefix")
	cmd.Flags().Bool("json", false, "Print as JSON")
	cmd.GroupID = shared.GroupInspection
	return cmd
}

type codeEntry struct {
	Code  string `json:"code"`
	Field string `json:"field"`
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

func runCodes(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	format, _ := flags.GetString("format")
	s, err := shared.LoadSurvey(cmd, args[0], format)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if flags.Changed("next") {
		prefix, _ := flags.GetString("next")
		_, err := fmt.Fprintln(out, ident.UniqueCode(survey.Codes(s), prefix))
		return err
	}

	occurrences := validation.NewContext(s, validation.Options{}).Occurrences()
	counts := make(map[string]int, len(occurrences))
	for _, o := range occurrences {
		counts[o.Code]++
	}

	onlyDup, _ := flags.GetBool("duplicates")
	entries := []codeEntry{}
	for _, o := range occurrences {
		if onlyDup && counts[o.Code] < 2 {
			continue
		}
		entries = append(entries, codeEntry{Code: o.Code, Field: o.Field, Kind: string(o.Kind), Count: counts[o.Code]})
	}

	if asJSON, _ := flags.GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	cfg, err := shared.LoadConfig(cmd)
	if err != nil {
		return err
	}
	c := shared.NewColors(shared.UseColor(cmd, cfg.Color))
	for _, e := range entries {
		code := e.Code
		if code == "" {
			code = c.Dim("(empty)")
		}
		line := fmt.Sprintf("%-12s %-7s %s", code, e.Kind, c.Dim(e.Field))
		if e.Count > 1 {
			line += " " + c.Red(fmt.Sprintf("duplicate x%d", e.Count))
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
