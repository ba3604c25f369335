package document

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/surveyspec/surveyspec/internal/cli/shared"
	"github.com/surveyspec/surveyspec/internal/config"
	clierrors "github.com/surveyspec/surveyspec/internal/errors"
	"github.com/surveyspec/surveyspec/internal/validation"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate <file>",
		Aliases: []string{"check"},
		Short:   "Validate a survey document",
		Long: `Validate a survey document and report diagnostics grouped by severity.

Errors make the document invalid and the command exits with code 1.
Warnings and info diagnostics are advisory.`,
		Example: `  # Validate with the configured preset
  surveyspec validate survey.json

  # Only report errors, as JSON
  surveyspec validate survey.yaml --preset strict --json

  # Check condition references too
  surveyspec validate survey.json --check-references

  # Diagnostics of a single field
  surveyspec validate survey.json --field children[0].rows`,
		Args: shared.ExactArgs(1),
		RunE: runValidate,
	}

	cmd.Flags().String("format", "", "Input format: json or yaml (default: from extension)")
	cmd.Flags().String("preset", "", "Validator preset: default, strict or lenient")
	cmd.Flags().StringSlice("severity", nil, "Severities to report (error, warning, info)")
	cmd.Flags().Bool("stop-on-first-error", false, "Skip remaining rules after the first error")
	cmd.Flags().Bool("check-references", false, "Also check condition references and syntax")
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	cmd.Flags().String("field", "", "Only report diagnostics of this field path")
	cmd.GroupID = shared.GroupDocuments

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := shared.LoadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyValidateFlags(cmd, cfg); err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	s, err := shared.LoadSurvey(cmd, args[0], format)
	if err != nil {
		return err
	}

	v, err := shared.NewValidator(cfg)
	if err != nil {
		return err
	}
	shared.Debugf(cmd, "Rules: %d, options: %+v", len(v.Rules()), v.Options())

	out := cmd.OutOrStdout()
	field, _ := cmd.Flags().GetString("field")
	if field != "" {
		diags := v.ValidateField(s, field)
		if err := printField(out, field, diags, cfg.Output == "json"); err != nil {
			return err
		}
		for _, d := range diags {
			if d.Severity == validation.SeverityError {
				return shared.NewExitError(shared.ExitValidationFailed)
			}
		}
		return nil
	}

	res := v.Validate(s)
	if cfg.Output == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	} else if err := validation.FormatReport(out, res, shared.UseColor(cmd, cfg.Color)); err != nil {
		return err
	}

	if !res.IsValid {
		return shared.NewExitError(shared.ExitValidationFailed)
	}
	return nil
}

// applyValidateFlags overlays explicitly set flags on the loaded config.
func applyValidateFlags(cmd *cobra.Command, cfg *config.Configuration) error {
	flags := cmd.Flags()

	if flags.Changed("preset") {
		preset, _ := flags.GetString("preset")
		parsed, err := config.ValidateValue("preset", preset)
		if err != nil {
			return clierrors.NewArgumentError(err.Error())
		}
		cfg.Preset = parsed.Parsed.(string)
		// an explicit preset replaces configured severities
		cfg.Severities = nil
	}
	if flags.Changed("severity") {
		sevs, _ := flags.GetStringSlice("severity")
		cfg.Severities = nil
		for _, s := range sevs {
			sev, err := validation.ParseSeverity(s)
			if err != nil {
				return clierrors.NewArgumentError(err.Error(), "Use --severity error,warning,info")
			}
			cfg.Severities = append(cfg.Severities, string(sev))
		}
	}
	if flags.Changed("stop-on-first-error") {
		cfg.StopOnFirstError, _ = flags.GetBool("stop-on-first-error")
	}
	if flags.Changed("check-references") {
		cfg.CheckReferences, _ = flags.GetBool("check-references")
	}
	if asJSON, _ := flags.GetBool("json"); asJSON {
		cfg.Output = "json"
	}
	return nil
}

func printField(out io.Writer, field string, diags []validation.Diagnostic, asJSON bool) error {
	if asJSON {
		if diags == nil {
			diags = []validation.Diagnostic{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(diags)
	}
	if len(diags) == 0 {
		_, err := fmt.Fprintf(out, "%s: no diagnostics\n", field)
		return err
	}
	for _, d := range diags {
		if _, err := fmt.Fprint(out, d.FormatFull()); err != nil {
			return err
		}
	}
	return nil
}
