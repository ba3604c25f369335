package errors

import (
	"fmt"
	"strings"
)

// MissingSurveyArgument is returned when a command needs a survey file path.
func MissingSurveyArgument(usage string) *CLIError {
	return NewArgumentErrorWithUsage(
		"a survey file is required",
		usage,
		"Pass the path to a .json, .yaml or .yml survey document",
	)
}

// SurveyFileNotFound is returned when the survey file does not exist.
func SurveyFileNotFound(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("survey file not found: %s", path),
		"Check the path for typos",
		"Create a document with: surveyspec new string --output "+path,
	)
}

// SurveyDecodeError is returned when a survey file cannot be parsed.
func SurveyDecodeError(path string, err error) *CLIError {
	e := NewArgumentError(
		fmt.Sprintf("failed to read survey %s: %v", path, err),
		"Make sure the file is a JSON object or a YAML mapping",
		"Every item needs a known 'type' field",
	)
	e.Err = err
	return e
}

// UnsupportedFormat is returned for file extensions other than json, yaml and yml.
func UnsupportedFormat(path string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("unsupported survey format: %s", path),
		"Use a .json, .yaml or .yml file",
		"Or pass --format json|yaml",
	)
}

// InvalidItemType is returned for an unknown item type name.
func InvalidItemType(value string, valid []string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid item type %q", value),
		"Valid types: "+strings.Join(valid, ", "),
	)
}

// ItemNotFound is returned when no item matches an id or code.
func ItemNotFound(ref string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("no item with id or code %q", ref),
		"List the item codes with: surveyspec codes <file>",
	)
}

// ConfigFileNotFound is returned when an explicitly requested config is missing.
func ConfigFileNotFound(path string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("config file not found: %s", path),
		"Check the --config path",
		"Remove the flag to use the default .surveyspec/config.json",
	)
}

// ConfigParseError is returned when a config file or env override is invalid.
func ConfigParseError(path string, err error) *CLIError {
	e := NewConfigError(
		fmt.Sprintf("failed to load config %s: %v", path, err),
		"Check the file is valid JSON",
		"Inspect the effective values with: surveyspec config show",
		"Check SURVEYSPEC_* environment variables",
	)
	e.Err = err
	return e
}

// InvalidFlagCombination is returned for flags that cannot be used together.
func InvalidFlagCombination(flags, reason string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid flag combination %s: %s", flags, reason),
	)
}

// AnswersDecodeError is returned when an answers file cannot be parsed.
func AnswersDecodeError(path string, err error) *CLIError {
	e := NewArgumentError(
		fmt.Sprintf("failed to read answers %s: %v", path, err),
		`Answers are a JSON or YAML object keyed by code, e.g. {"Q1": "yes", "Q2.R1": true}`,
	)
	e.Err = err
	return e
}

// FileNotWritable is returned when output cannot be written.
func FileNotWritable(path string, err error) *CLIError {
	e := NewRuntimeError(
		fmt.Sprintf("cannot write %s: %v", path, err),
		"Check the directory exists and is writable",
	)
	e.Err = err
	return e
}
