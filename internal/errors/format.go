package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders err with colors for terminal output.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	return format(err,
		color.New(color.FgRed, color.Bold).SprintFunc(),
		color.New(color.FgCyan).SprintFunc(),
		color.New(color.FgYellow).SprintFunc(),
	)
}

// FormatErrorPlain renders err without colors.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	plain := func(a ...interface{}) string { return fmt.Sprint(a...) }
	return format(err, plain, plain, plain)
}

func format(err *CLIError, heading, usage, fix func(a ...interface{}) string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s: %s\n", heading(err.Category.String()), err.Message))

	if err.Usage != "" {
		sb.WriteString(fmt.Sprintf("\n%s\n  %s\n", usage("Usage:"), err.Usage))
	}

	if len(err.Remediation) > 0 {
		sb.WriteString(fmt.Sprintf("\n%s\n", fix("To fix this:")))
		for i, step := range err.Remediation {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
	}

	return sb.String()
}

// PrintError writes err to stderr.
func PrintError(err *CLIError) {
	FprintError(os.Stderr, err)
}

// FprintError writes err to w. Nil writes nothing.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}

// FormatSimpleError renders a plain error under the given category heading.
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	if cliErr := AsCLIError(err); cliErr != nil {
		return FormatError(cliErr)
	}
	return FormatError(&CLIError{Category: category, Message: err.Error()})
}
