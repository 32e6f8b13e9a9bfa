package iam

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/micahhausler/aws-iam-policy/policy"

	"tasnim.dev/aws-iam-audit/internal/constants"
)

// ParseDocument decodes a policy document as returned by GetPolicyVersion.
// IAM returns documents URL-encoded; plain JSON is accepted as well.
func ParseDocument(document string) (*policy.Policy, error) {
	if decoded, err := url.QueryUnescape(document); err == nil {
		document = decoded
	}

	var p policy.Policy
	if err := json.Unmarshal([]byte(document), &p); err != nil {
		return nil, fmt.Errorf("parsing policy document: %w", err)
	}
	return &p, nil
}

// StatementsOf returns the statements of p as a list, even when the document
// holds a single statement object.
func StatementsOf(p *policy.Policy) Statements {
	if p == nil || p.Statements == nil {
		return Statements{}
	}
	return Statements(p.Statements.Values())
}

// SelectDefaultVersion returns the ID of the version flagged as default, or
// constants.DefaultPolicyVersion when none is.
func SelectDefaultVersion(versions []IAMPolicyVersion) string {
	for _, v := range versions {
		if v.IsDefault {
			return v.VersionID
		}
	}
	return constants.DefaultPolicyVersion
}
