package utils

import "strings"

// ShortName extracts the last segment after "/" from an ARN or path.
// Returns the input unchanged if no "/" is found.
func ShortName(arn string) string {
	if parts := strings.Split(arn, "/"); len(parts) > 1 {
		return parts[len(parts)-1]
	}
	return arn
}

// IsAWSManaged reports whether a policy ARN belongs to an AWS managed policy
// rather than one created in the account.
func IsAWSManaged(policyARN string) bool {
	return strings.HasPrefix(policyARN, "arn:aws:iam::aws:policy/")
}
