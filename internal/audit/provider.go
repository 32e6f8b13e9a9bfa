package audit

import (
	"context"

	"tasnim.dev/aws-iam-audit/internal/aws/iam"
)

// UserLister enumerates every IAM user in the account.
type UserLister interface {
	ListUsers(ctx context.Context) ([]iam.IAMUser, error)
}

// PolicyResolver finds the managed policies that apply to a user, directly or
// through group membership.
type PolicyResolver interface {
	ListAttachedUserPolicies(ctx context.Context, userName string) ([]iam.IAMAttachedPolicy, error)
	ListGroupsForUser(ctx context.Context, userName string) ([]iam.IAMGroup, error)
	ListAttachedGroupPolicies(ctx context.Context, groupName string) ([]iam.IAMAttachedPolicy, error)
}

// PermissionFetcher reads the statements of a managed policy's active version.
type PermissionFetcher interface {
	DefaultVersionID(ctx context.Context, policyARN string) (string, error)
	PolicyStatements(ctx context.Context, policyARN, versionID string) (iam.Statements, error)
}

// Provider is everything an audit run needs from IAM. *iam.Client implements it.
type Provider interface {
	UserLister
	PolicyResolver
	PermissionFetcher
}

var _ Provider = (*iam.Client)(nil)
