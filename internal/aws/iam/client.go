package iam

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsiam "github.com/aws/aws-sdk-go-v2/service/iam"

	"tasnim.dev/aws-iam-audit/internal/constants"
)

type IAMAPI interface {
	ListUsers(ctx context.Context, params *awsiam.ListUsersInput, optFns ...func(*awsiam.Options)) (*awsiam.ListUsersOutput, error)
	ListAttachedUserPolicies(ctx context.Context, params *awsiam.ListAttachedUserPoliciesInput, optFns ...func(*awsiam.Options)) (*awsiam.ListAttachedUserPoliciesOutput, error)
	ListGroupsForUser(ctx context.Context, params *awsiam.ListGroupsForUserInput, optFns ...func(*awsiam.Options)) (*awsiam.ListGroupsForUserOutput, error)
	ListAttachedGroupPolicies(ctx context.Context, params *awsiam.ListAttachedGroupPoliciesInput, optFns ...func(*awsiam.Options)) (*awsiam.ListAttachedGroupPoliciesOutput, error)
	ListPolicyVersions(ctx context.Context, params *awsiam.ListPolicyVersionsInput, optFns ...func(*awsiam.Options)) (*awsiam.ListPolicyVersionsOutput, error)
	GetPolicyVersion(ctx context.Context, params *awsiam.GetPolicyVersionInput, optFns ...func(*awsiam.Options)) (*awsiam.GetPolicyVersionOutput, error)
}

type Client struct {
	api      IAMAPI
	pageSize int32
}

func NewClient(api IAMAPI) *Client {
	return &Client{api: api, pageSize: constants.PageSize}
}

func (c *Client) ListUsers(ctx context.Context) ([]IAMUser, error) {
	return Collect(NewPager(c.ListUsersPage).All(ctx))
}

func (c *Client) ListAttachedUserPolicies(ctx context.Context, userName string) ([]IAMAttachedPolicy, error) {
	return Collect(NewPager(func(ctx context.Context, marker *string) ([]IAMAttachedPolicy, *string, error) {
		return c.ListAttachedUserPoliciesPage(ctx, userName, marker)
	}).All(ctx))
}

func (c *Client) ListGroupsForUser(ctx context.Context, userName string) ([]IAMGroup, error) {
	return Collect(NewPager(func(ctx context.Context, marker *string) ([]IAMGroup, *string, error) {
		return c.ListGroupsForUserPage(ctx, userName, marker)
	}).All(ctx))
}

func (c *Client) ListAttachedGroupPolicies(ctx context.Context, groupName string) ([]IAMAttachedPolicy, error) {
	return Collect(NewPager(func(ctx context.Context, marker *string) ([]IAMAttachedPolicy, *string, error) {
		return c.ListAttachedGroupPoliciesPage(ctx, groupName, marker)
	}).All(ctx))
}

func (c *Client) ListPolicyVersions(ctx context.Context, policyARN string) ([]IAMPolicyVersion, error) {
	return Collect(NewPager(func(ctx context.Context, marker *string) ([]IAMPolicyVersion, *string, error) {
		return c.ListPolicyVersionsPage(ctx, policyARN, marker)
	}).All(ctx))
}

// DefaultVersionID returns the active version of a managed policy.
func (c *Client) DefaultVersionID(ctx context.Context, policyARN string) (string, error) {
	versions, err := c.ListPolicyVersions(ctx, policyARN)
	if err != nil {
		return "", err
	}
	return SelectDefaultVersion(versions), nil
}

// PolicyStatements fetches one version of a managed policy and returns its statements.
func (c *Client) PolicyStatements(ctx context.Context, policyARN, versionID string) (Statements, error) {
	out, err := c.api.GetPolicyVersion(ctx, &awsiam.GetPolicyVersionInput{
		PolicyArn: aws.String(policyARN),
		VersionId: aws.String(versionID),
	})
	if err != nil {
		return nil, remoteError("GetPolicyVersion", policyARN, err)
	}
	if out.PolicyVersion == nil || out.PolicyVersion.Document == nil {
		return nil, remoteError("GetPolicyVersion", policyARN, errors.New("response has no policy document"))
	}

	doc, err := ParseDocument(aws.ToString(out.PolicyVersion.Document))
	if err != nil {
		return nil, remoteError("GetPolicyVersion", policyARN, err)
	}
	return StatementsOf(doc), nil
}

// ListUsersPage fetches a single page of IAM users.
func (c *Client) ListUsersPage(ctx context.Context, marker *string) ([]IAMUser, *string, error) {
	out, err := c.api.ListUsers(ctx, &awsiam.ListUsersInput{
		Marker:   marker,
		MaxItems: aws.Int32(c.pageSize),
	})
	if err != nil {
		return nil, nil, remoteError("ListUsers", "", err)
	}

	users := make([]IAMUser, 0, len(out.Users))
	for _, u := range out.Users {
		var createdAt time.Time
		if u.CreateDate != nil {
			createdAt = *u.CreateDate
		}
		users = append(users, IAMUser{
			Name:      aws.ToString(u.UserName),
			UserID:    aws.ToString(u.UserId),
			ARN:       aws.ToString(u.Arn),
			Path:      aws.ToString(u.Path),
			CreatedAt: createdAt,
		})
	}

	return users, nextMarker(out.IsTruncated, out.Marker), nil
}

// ListAttachedUserPoliciesPage fetches a single page of managed policies
// attached directly to a user.
func (c *Client) ListAttachedUserPoliciesPage(ctx context.Context, userName string, marker *string) ([]IAMAttachedPolicy, *string, error) {
	out, err := c.api.ListAttachedUserPolicies(ctx, &awsiam.ListAttachedUserPoliciesInput{
		UserName: aws.String(userName),
		Marker:   marker,
		MaxItems: aws.Int32(c.pageSize),
	})
	if err != nil {
		return nil, nil, remoteError("ListAttachedUserPolicies", userName, err)
	}

	policies := make([]IAMAttachedPolicy, 0, len(out.AttachedPolicies))
	for _, p := range out.AttachedPolicies {
		policies = append(policies, IAMAttachedPolicy{
			Name: aws.ToString(p.PolicyName),
			ARN:  aws.ToString(p.PolicyArn),
		})
	}

	return policies, nextMarker(out.IsTruncated, out.Marker), nil
}

// ListGroupsForUserPage fetches a single page of the groups a user belongs to.
func (c *Client) ListGroupsForUserPage(ctx context.Context, userName string, marker *string) ([]IAMGroup, *string, error) {
	out, err := c.api.ListGroupsForUser(ctx, &awsiam.ListGroupsForUserInput{
		UserName: aws.String(userName),
		Marker:   marker,
		MaxItems: aws.Int32(c.pageSize),
	})
	if err != nil {
		return nil, nil, remoteError("ListGroupsForUser", userName, err)
	}

	groups := make([]IAMGroup, 0, len(out.Groups))
	for _, g := range out.Groups {
		groups = append(groups, IAMGroup{
			Name: aws.ToString(g.GroupName),
			ARN:  aws.ToString(g.Arn),
		})
	}

	return groups, nextMarker(out.IsTruncated, out.Marker), nil
}

// ListAttachedGroupPoliciesPage fetches a single page of managed policies
// attached to a group.
func (c *Client) ListAttachedGroupPoliciesPage(ctx context.Context, groupName string, marker *string) ([]IAMAttachedPolicy, *string, error) {
	out, err := c.api.ListAttachedGroupPolicies(ctx, &awsiam.ListAttachedGroupPoliciesInput{
		GroupName: aws.String(groupName),
		Marker:    marker,
		MaxItems:  aws.Int32(c.pageSize),
	})
	if err != nil {
		return nil, nil, remoteError("ListAttachedGroupPolicies", groupName, err)
	}

	policies := make([]IAMAttachedPolicy, 0, len(out.AttachedPolicies))
	for _, p := range out.AttachedPolicies {
		policies = append(policies, IAMAttachedPolicy{
			Name: aws.ToString(p.PolicyName),
			ARN:  aws.ToString(p.PolicyArn),
		})
	}

	return policies, nextMarker(out.IsTruncated, out.Marker), nil
}

// ListPolicyVersionsPage fetches a single page of versions of a managed policy.
func (c *Client) ListPolicyVersionsPage(ctx context.Context, policyARN string, marker *string) ([]IAMPolicyVersion, *string, error) {
	out, err := c.api.ListPolicyVersions(ctx, &awsiam.ListPolicyVersionsInput{
		PolicyArn: aws.String(policyARN),
		Marker:    marker,
		MaxItems:  aws.Int32(c.pageSize),
	})
	if err != nil {
		return nil, nil, remoteError("ListPolicyVersions", policyARN, err)
	}

	versions := make([]IAMPolicyVersion, 0, len(out.Versions))
	for _, v := range out.Versions {
		var createdAt time.Time
		if v.CreateDate != nil {
			createdAt = *v.CreateDate
		}
		versions = append(versions, IAMPolicyVersion{
			VersionID: aws.ToString(v.VersionId),
			IsDefault: v.IsDefaultVersion,
			CreatedAt: createdAt,
		})
	}

	return versions, nextMarker(out.IsTruncated, out.Marker), nil
}
