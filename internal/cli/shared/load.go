package shared

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/surveyspec/surveyspec/internal/config"
	clierrors "github.com/surveyspec/surveyspec/internal/errors"
	"github.com/surveyspec/surveyspec/internal/survey"
	"github.com/surveyspec/surveyspec/internal/validation"
)

// LoadConfig loads the configuration named by --config. A missing file is
// only an error when the flag was set explicitly.
func LoadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	path := config.DefaultLocalPath
	if f := cmd.Flag("config"); f != nil {
		path = f.Value.String()
		if f.Changed {
			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				return nil, clierrors.ConfigFileNotFound(path)
			}
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, clierrors.ConfigParseError(path, err)
	}
	Debugf(cmd, "Config: %+v", *cfg)
	return cfg, nil
}

// ParseFormat converts a --format value. Empty means infer from the path.
func ParseFormat(value, path string) (survey.Format, error) {
	switch strings.ToLower(value) {
	case "":
		f, err := survey.FormatFromPath(path)
		if err != nil {
			return "", clierrors.UnsupportedFormat(path)
		}
		return f, nil
	case "json":
		return survey.FormatJSON, nil
	case "yaml", "yml":
		return survey.FormatYAML, nil
	default:
		return "", clierrors.NewArgumentError(
			fmt.Sprintf("unknown format %q", value),
			"Use --format json or --format yaml",
		)
	}
}

// LoadSurvey reads the survey document at path. "-" reads stdin as format.
func LoadSurvey(cmd *cobra.Command, path, format string) (survey.Survey, error) {
	f := survey.FormatJSON
	if path != "-" || format != "" {
		var err error
		if f, err = ParseFormat(format, path); err != nil {
			return survey.Survey{}, err
		}
	}

	in := cmd.InOrStdin()
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return survey.Survey{}, clierrors.SurveyFileNotFound(path)
			}
			return survey.Survey{}, clierrors.WrapWithMessage(err, clierrors.Prerequisite, "opening survey")
		}
		defer file.Close()
		in = file
	}

	s, err := survey.Decode(in, f)
	if err != nil {
		return survey.Survey{}, clierrors.SurveyDecodeError(path, err)
	}
	Debugf(cmd, "Loaded %s: %d items, depth %d", path, survey.Count(s), survey.MaxDepth(s))
	return survey.Reindex(s), nil
}

// WriteSurvey encodes s to path, or to the command's stdout when path is
// empty or "-".
func WriteSurvey(cmd *cobra.Command, s survey.Survey, path, format string) error {
	f := survey.FormatJSON
	if path != "" && path != "-" {
		var err error
		if f, err = ParseFormat(format, path); err != nil {
			return err
		}
		if err := survey.SaveAs(path, s, f); err != nil {
			return clierrors.FileNotWritable(path, err)
		}
		Debugf(cmd, "Wrote %s", path)
		return nil
	}

	if format != "" {
		var err error
		if f, err = ParseFormat(format, "-"); err != nil {
			return err
		}
	}
	return survey.Encode(cmd.OutOrStdout(), s, f)
}

// NewValidator builds the validator described by cfg.
func NewValidator(cfg *config.Configuration) (*validation.Validator, error) {
	var opts []validation.Option
	if cfg.CheckReferences {
		opts = append(opts, validation.WithReferenceChecks())
	}

	v, err := validation.Preset(cfg.Preset, opts...)
	if err != nil {
		return nil, clierrors.NewConfigError(err.Error())
	}

	update := validation.OptionsUpdate{StopOnFirstError: &cfg.StopOnFirstError}
	if len(cfg.Severities) > 0 {
		for _, name := range cfg.Severities {
			sev, err := validation.ParseSeverity(name)
			if err != nil {
				return nil, clierrors.NewConfigError(err.Error())
			}
			update.EnabledSeverities = append(update.EnabledSeverities, sev)
		}
	}
	v.UpdateOptions(update)
	return v, nil
}

// WriteItem encodes a single item to path, or to stdout when path is empty or "-".
func WriteItem(cmd *cobra.Command, it survey.Item, path, format string) error {
	f := survey.FormatJSON
	if format != "" || (path != "" && path != "-") {
		var err error
		if f, err = ParseFormat(format, path); err != nil {
			return err
		}
	}

	if path == "" || path == "-" {
		return survey.EncodeItem(cmd.OutOrStdout(), it, f)
	}

	file, err := os.Create(path)
	if err != nil {
		return clierrors.FileNotWritable(path, err)
	}
	if err := survey.EncodeItem(file, it, f); err != nil {
		file.Close()
		return clierrors.FileNotWritable(path, err)
	}
	if err := file.Close(); err != nil {
		return clierrors.FileNotWritable(path, err)
	}
	return nil
}
