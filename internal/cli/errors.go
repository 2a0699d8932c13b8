package cli

import (
	"errors"
	"fmt"

	"github.com/rshade/carboncalc/internal/emissions"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
)

// ExitError carries a specific exit code out of a command.
type ExitError struct {
	ExitCode int
	Err      error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.ExitCode)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// invalidInput marks calculation input problems so the process exits
// with ExitInvalidInput. Other errors pass through unchanged.
func invalidInput(err error) error {
	if errors.Is(err, emissions.ErrInvalidSector) ||
		errors.Is(err, emissions.ErrMissingField) ||
		errors.Is(err, emissions.ErrUnknownFactor) {
		return &ExitError{ExitCode: ExitInvalidInput, Err: err}
	}
	return err
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode
	}
	return ExitFailure
}
