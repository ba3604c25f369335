package cli

import (
	"github.com/surveyspec/surveyspec/internal/cli/shared"
)

// Exit codes for the surveyspec CLI (re-exported from shared)
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = shared.ExitSuccess

	// ExitValidationFailed indicates the survey is invalid or the command failed
	ExitValidationFailed = shared.ExitValidationFailed

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = shared.ExitInvalidArguments
)

// NewExitError creates a new exit error with the given code (re-exported from shared).
func NewExitError(code int) error {
	return shared.NewExitError(code)
}

// ExitCode returns the process exit code for err (re-exported from shared).
func ExitCode(err error) int {
	return shared.ExitCode(err)
}

// IsExitError reports whether err only carries an exit code (re-exported from shared).
func IsExitError(err error) bool {
	return shared.IsExitError(err)
}
