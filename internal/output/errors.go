package output

import (
	"errors"
	"fmt"
)

// CLIError is a user-facing error with an optional suggested fix.
type CLIError struct {
	Message string
	Cause   error
	Fix     string
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// WrapError wraps an existing error with a message.
func WrapError(err error, message string) *CLIError {
	return &CLIError{Message: message, Cause: err}
}

// PrintError prints a formatted error to stderr with its fix suggestion,
// or a JSON error envelope in JSON mode.
func PrintError(err error) {
	if JSONMode {
		JSONError(err)
		return
	}
	msg, fix := errorLines(err)
	Error(msg)
	if fix != "" {
		Info(fix)
	}
}

// errorLines resolves the printable message and optional fix hint for an
// error. The CLIError may sit anywhere in the chain, e.g. under an
// exit-code wrapper.
func errorLines(err error) (string, string) {
	var cliErr *CLIError
	if !errors.As(err, &cliErr) {
		return err.Error(), ""
	}

	msg := cliErr.Error()
	if !NoColor() {
		msg = StyleError.Render(msg)
	}

	fix := ""
	if cliErr.Fix != "" {
		fix = "Fix: " + cliErr.Fix
		if !NoColor() {
			fix = StyleMuted.Render(fix)
		}
	}
	return msg, fix
}
