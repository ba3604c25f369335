package document

import (
	"github.com/spf13/cobra"
	"github.com/surveyspec/surveyspec/internal/cli/shared"
	clierrors "github.com/surveyspec/surveyspec/internal/errors"
	"github.com/surveyspec/surveyspec/internal/survey"
)

// addOutputFlags registers the flags shared by commands that produce a survey.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "", "Input format: json or yaml (default: from extension)")
	cmd.Flags().StringP("output", "o", "", "Write the result to this file instead of stdout")
	cmd.Flags().String("output-format", "", "Output format: json or yaml (default: from output extension, json on stdout)")
	cmd.Flags().BoolP("in-place", "i", false, "Overwrite the input file")
}

// writeResult writes s according to --output, --output-format and --in-place.
func writeResult(cmd *cobra.Command, s survey.Survey, input string) error {
	flags := cmd.Flags()
	output, _ := flags.GetString("output")
	inPlace, _ := flags.GetBool("in-place")
	outFormat, _ := flags.GetString("output-format")

	if inPlace {
		if output != "" {
			return clierrors.InvalidFlagCombination("--in-place --output", "choose one destination")
		}
		if input == "-" || input == "" {
			return clierrors.InvalidFlagCombination("--in-place", "stdin cannot be overwritten")
		}
		output = input
		if outFormat == "" {
			outFormat, _ = flags.GetString("format")
		}
	}

	return shared.WriteSurvey(cmd, s, output, outFormat)
}
