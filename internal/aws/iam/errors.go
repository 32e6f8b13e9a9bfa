package iam

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// RemoteAPIError wraps any failure returned by the IAM API.
type RemoteAPIError struct {
	Operation string
	Target    string // user, group or policy the call was about; empty for account-wide calls
	Err       error
}

func (e *RemoteAPIError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("%s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("%s(%s): %v", e.Operation, e.Target, e.Err)
}

func (e *RemoteAPIError) Unwrap() error {
	return e.Err
}

// Code returns the AWS error code, e.g. "AccessDenied", or "" when the failure
// did not come back from the service.
func (e *RemoteAPIError) Code() string {
	var ae smithy.APIError
	if errors.As(e.Err, &ae) {
		return ae.ErrorCode()
	}
	return ""
}

func remoteError(operation, target string, err error) error {
	return &RemoteAPIError{Operation: operation, Target: target, Err: err}
}
