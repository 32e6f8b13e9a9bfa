package cmd

import (
	"errors"
	"fmt"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

// ValidationError is returned for invalid command line usage.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid usage: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by the command to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return exitUsage
	}
	return exitFailure
}
