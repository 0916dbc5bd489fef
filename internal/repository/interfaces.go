// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/H1dayet/StoreMonitoring/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// IssueInterface exposes the issue ledger. CreateIssue assigns id,
// open status and timestamps; new issues are prepended.
type IssueInterface interface {
	ListIssues(ctx context.Context) ([]entities.Issue, error)
	GetIssue(ctx context.Context, id string) (*entities.Issue, error)
	CreateIssue(ctx context.Context, issue entities.Issue) (*entities.Issue, error)
	UpdateIssueStatus(ctx context.Context, id string, status entities.IssueStatus) (*entities.Issue, error)
	DeleteIssue(ctx context.Context, id string) (*entities.Issue, error)
}

// StoreInterface exposes the store directory.
type StoreInterface interface {
	ListStores(ctx context.Context) ([]entities.Store, error)
	GetStore(ctx context.Context, code string) (*entities.Store, error)
	CreateStore(ctx context.Context, store entities.Store) (*entities.Store, error)
	DeleteStore(ctx context.Context, code string) error
}

// UserInterface exposes the identity directory. GetUserByUsername is
// the only method that returns the credential hash; it exists for the
// login path and its result must not cross the transport boundary.
type UserInterface interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
	CreateUser(ctx context.Context, user entities.User, password string) (*entities.User, error)
	UpdateUser(ctx context.Context, id string, patch entities.UserPatch) (*entities.User, error)
	DeleteUser(ctx context.Context, id string) (*entities.User, error)
}
