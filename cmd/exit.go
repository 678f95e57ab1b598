package cmd

import (
	"errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitCodeSuccess    = 0
	ExitCodeValidation = 1
	ExitCodeNotFound   = 2
	ExitCodeFilesystem = 3
	ExitCodeConfig     = 4
	ExitCodeUnknown    = 10
)

// CLIError allows returning rich errors with exit codes.
type CLIError struct {
	Code int
	Err  error
}

func (e *CLIError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError constructs a CLIError with a message and exit code.
func NewCLIError(code int, msg string) error {
	return &CLIError{Code: code, Err: errors.New(msg)}
}

// WrapCLIError converts any error into a CLIError with the provided code.
func WrapCLIError(code int, err error) error {
	if err == nil {
		return nil
	}
	return &CLIError{Code: code, Err: err}
}

// ExitCode extracts an exit code from an error. Errors without a code map to ExitCodeUnknown.
func ExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		if cliErr.Code == 0 {
			return ExitCodeUnknown
		}
		return cliErr.Code
	}
	return ExitCodeUnknown
}
