package audit

import (
	"context"

	"go.uber.org/zap"

	"tasnim.dev/aws-iam-audit/internal/utils"
)

// Auditor walks every user and collects the managed policies and statements
// that apply to them. Users are processed one at a time and the first
// provider error ends the run.
type Auditor struct {
	provider Provider
	logger   *zap.Logger
}

func New(provider Provider, logger *zap.Logger) *Auditor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Auditor{provider: provider, logger: logger}
}

// Run audits all users. A run over an account with no users returns an empty
// report and makes no further calls.
func (a *Auditor) Run(ctx context.Context) (*Report, error) {
	users, err := a.provider.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	a.logger.Info("enumerated users", zap.Int("count", len(users)))

	rep := NewReport()
	for _, u := range users {
		rec, err := a.auditUser(ctx, u.Name)
		if err != nil {
			a.logger.Error("audit aborted", zap.String("user", u.Name), zap.Error(err))
			return nil, err
		}
		rep.Add(u.Name, rec)
	}
	return rep, nil
}

func (a *Auditor) auditUser(ctx context.Context, userName string) (*Record, error) {
	log := a.logger.With(zap.String("user", userName))
	rec := newRecord()

	direct, err := a.provider.ListAttachedUserPolicies(ctx, userName)
	if err != nil {
		return nil, err
	}
	for _, p := range direct {
		rec.PoliciesDirectlyAttachedToUser = append(rec.PoliciesDirectlyAttachedToUser, p.ARN)
	}

	groups, err := a.provider.ListGroupsForUser(ctx, userName)
	if err != nil {
		return nil, err
	}

	perGroup := make([][]string, 0, len(groups))
	for _, g := range groups {
		rec.GroupsAssignedToUser = append(rec.GroupsAssignedToUser, g.Name)

		attached, err := a.provider.ListAttachedGroupPolicies(ctx, g.Name)
		if err != nil {
			return nil, err
		}
		arns := make([]string, 0, len(attached))
		for _, p := range attached {
			arns = append(arns, p.ARN)
		}
		log.Debug("group policies", zap.String("group", g.Name), zap.Int("count", len(arns)))
		perGroup = append(perGroup, arns)
	}
	rec.PoliciesAttachedFromGroups = Consolidate(perGroup)

	// Group-derived first, then direct. A policy reachable both ways is
	// fetched and reported twice.
	targets := make([]string, 0, len(rec.PoliciesAttachedFromGroups)+len(rec.PoliciesDirectlyAttachedToUser))
	targets = append(targets, rec.PoliciesAttachedFromGroups...)
	targets = append(targets, rec.PoliciesDirectlyAttachedToUser...)

	for _, arn := range targets {
		perm, err := a.fetchPermission(ctx, log, arn)
		if err != nil {
			return nil, err
		}
		rec.Permissions = append(rec.Permissions, perm)
	}

	log.Info("user audited",
		zap.Int("direct", len(rec.PoliciesDirectlyAttachedToUser)),
		zap.Int("groups", len(rec.GroupsAssignedToUser)),
		zap.Int("permissions", len(rec.Permissions)),
	)
	return rec, nil
}

func (a *Auditor) fetchPermission(ctx context.Context, log *zap.Logger, policyARN string) (Permission, error) {
	versionID, err := a.provider.DefaultVersionID(ctx, policyARN)
	if err != nil {
		return Permission{}, err
	}

	statements, err := a.provider.PolicyStatements(ctx, policyARN, versionID)
	if err != nil {
		return Permission{}, err
	}

	log.Debug("fetched policy",
		zap.String("policy", utils.ShortName(policyARN)),
		zap.String("version", versionID),
		zap.Bool("aws_managed", utils.IsAWSManaged(policyARN)),
		zap.Int("statements", len(statements)),
	)
	return Permission{Policy: policyARN, Permissions: statements}, nil
}
