package cli

import (
	"errors"
	"fmt"

	"github.com/openkraft/skillkraft/internal/domain"
)

// ExitError carries the process exit code for a finished command.
// Silent errors have already been reported on stdout.
type ExitError struct {
	Code    int
	Message string
	Cause   error
	Silent  bool
}

// Error returns the error message, including the cause if present.
func (e *ExitError) Error() string {
	if e.Cause != nil {
		if e.Message == "" {
			return e.Cause.Error()
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause of the error.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

func failedError(msg string) *ExitError {
	return &ExitError{Code: domain.ExitFailed, Message: msg, Silent: true}
}

func criticalError(msg string, cause error) *ExitError {
	return &ExitError{Code: domain.ExitCritical, Message: msg, Cause: cause}
}

// ExitCode maps the error returned by Execute to a process exit code.
// Errors that carry no code, such as bad flags, are critical.
func ExitCode(err error) int {
	if err == nil {
		return domain.ExitPassed
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return domain.ExitCritical
}

func isSilent(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Silent
}
