package constants

// PageSize is the MaxItems sent with every paginated IAM listing call.
const PageSize = 100

// DefaultPolicyVersion is used when no version of a policy is flagged as default.
// IAM always creates v1 with a new policy, but it may since have been deleted.
const DefaultPolicyVersion = "v1"

// DefaultRegion is used for the SDK config when neither the profile nor the
// config file names one. IAM is a global service signed in us-east-1.
const DefaultRegion = "us-east-1"

// ReportSuffix is appended to the run timestamp to form report file names.
const ReportSuffix = "aws_iam_permissions"
