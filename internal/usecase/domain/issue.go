// Package domain contains application usecases orchestrating domain logic by issue.
package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/H1dayet/StoreMonitoring/internal/auth"
	"github.com/H1dayet/StoreMonitoring/internal/entities"
)

// Issues returns the full ledger, newest-first.
func (u *Usecase) Issues(ctx context.Context) ([]entities.Issue, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListIssues(ctx)
}

// Issue returns a single issue by id.
func (u *Usecase) Issue(ctx context.Context, id string) (*entities.Issue, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetIssue(ctx, id)
}

// CreateIssue validates the report, resolves its store code against
// the directory, attributes the authenticated creator and records the
// issue. The creator's display name is looked up fresh so renames
// after token issuance still show the current name.
func (u *Usecase) CreateIssue(ctx context.Context, issue entities.Issue, identity *auth.Identity) (*entities.Issue, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if issue.StoreCode == "" {
		return nil, fmt.Errorf("%w: invalid storeCode", entities.ErrInvalidArgument)
	}
	if _, err := u.repo.GetStore(ctx, issue.StoreCode); err != nil {
		if errors.Is(err, entities.ErrStoreNotFound) {
			return nil, fmt.Errorf("%w: invalid storeCode", entities.ErrInvalidArgument)
		}
		return nil, err
	}
	if !entities.ValidIssueReason(issue.Reason) {
		return nil, fmt.Errorf("%w: unknown reason %q", entities.ErrInvalidArgument, issue.Reason)
	}
	if issue.Severity == "" {
		issue.Severity = entities.SeverityLow
	}
	if !entities.ValidIssueSeverity(issue.Severity) {
		return nil, fmt.Errorf("%w: unknown severity %q", entities.ErrInvalidArgument, issue.Severity)
	}

	if identity != nil {
		issue.CreatedByID = identity.ID
		issue.CreatedByUsername = identity.Username
		issue.CreatedByName = identity.Name
		if creator, err := u.repo.GetUserByUsername(ctx, identity.Username); err == nil {
			issue.CreatedByName = creator.Name
		}
	}

	created, err := u.repo.CreateIssue(ctx, issue)
	if err != nil {
		return nil, err
	}
	u.log.Infow("issue reported", "issue_id", created.ID, "store_code", created.StoreCode)
	return created, nil
}

// UpdateIssueStatus transitions an issue's lifecycle state.
func (u *Usecase) UpdateIssueStatus(ctx context.Context, id string, status entities.IssueStatus) (*entities.Issue, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	if !entities.ValidIssueStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, status)
	}
	return u.repo.UpdateIssueStatus(ctx, id, status)
}

// DeleteIssue removes an issue from the ledger.
func (u *Usecase) DeleteIssue(ctx context.Context, id string) (*entities.Issue, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteIssue(ctx, id)
}
