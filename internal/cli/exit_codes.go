package cli

import (
	"errors"
	"fmt"

	clierrors "github.com/ariel-frischer/changelog/internal/errors"
)

// Exit codes for the changelog CLI
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitValidationFailed indicates invalid or missing change entries,
	// unparseable files, or an unusable previous version
	ExitValidationFailed = 1

	// ExitInvalidArguments indicates invalid command arguments or configuration
	ExitInvalidArguments = 3
)

// ExitError carries the process exit code from a command back to main.
// A nil Err means the command already reported the failure itself.
type ExitError struct {
	Code int
	Err  error
}

// NewExitError wraps err with the given exit code.
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		return exitCodeFor(cliErr.Category)
	}
	return ExitValidationFailed
}

func exitCodeFor(category clierrors.ErrorCategory) int {
	switch category {
	case clierrors.Argument, clierrors.Configuration:
		return ExitInvalidArguments
	default:
		return ExitValidationFailed
	}
}
