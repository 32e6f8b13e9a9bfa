package iam

import (
	"time"

	"github.com/micahhausler/aws-iam-policy/policy"
)

type IAMUser struct {
	Name      string
	UserID    string
	ARN       string
	Path      string
	CreatedAt time.Time
}

type IAMAttachedPolicy struct {
	Name string
	ARN  string
}

type IAMGroup struct {
	Name string
	ARN  string
}

type IAMPolicyVersion struct {
	VersionID string
	IsDefault bool
	CreatedAt time.Time
}

// Statements is the statement list of one policy document version.
// It is passed through to reports without interpretation.
type Statements []policy.Statement
