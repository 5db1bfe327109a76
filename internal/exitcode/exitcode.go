// Package exitcode maps errors to process exit codes so scripts can tell
// user-input problems apart from Azure-side failures.
package exitcode

import (
	"errors"

	"github.com/ayeletshpigelman/azure-cli/internal/validate"
)

const (
	OK         = 0
	Generic    = 1
	Validation = 2 // missing context for a parameter (validate.ConfigError)
	Conflict   = 3 // mutually exclusive options (validate.ConflictError)
	Azure      = 4 // request rejected or failed on the Azure side
)

// Error carries an explicit exit code chosen at the failure site.
type Error struct {
	Code  int
	Cause error
}

func (e *Error) Error() string {
	return e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Wrap attaches an exit code to err. Returns nil for a nil err.
func Wrap(code int, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Cause: err}
}

// Of resolves the exit code for an error.
func Of(err error) int {
	if err == nil {
		return OK
	}

	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}

	var cfgErr *validate.ConfigError
	if errors.As(err, &cfgErr) {
		return Validation
	}

	var conflictErr *validate.ConflictError
	if errors.As(err, &conflictErr) {
		return Conflict
	}

	return Generic
}
