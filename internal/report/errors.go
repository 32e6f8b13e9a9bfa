package report

import "fmt"

// OutputWriteError is a failure to write the report file locally.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("writing report to %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error {
	return e.Err
}
