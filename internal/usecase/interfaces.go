package usecase

import (
	"context"

	"github.com/H1dayet/StoreMonitoring/internal/auth"
	"github.com/H1dayet/StoreMonitoring/internal/entities"
)

// IssueUsecaseInterface abstracts issue-ledger operations for the delivery layer.
type IssueUsecaseInterface interface {
	Issues(ctx context.Context) ([]entities.Issue, error)
	Issue(ctx context.Context, id string) (*entities.Issue, error)
	CreateIssue(ctx context.Context, issue entities.Issue, identity *auth.Identity) (*entities.Issue, error)
	UpdateIssueStatus(ctx context.Context, id string, status entities.IssueStatus) (*entities.Issue, error)
	DeleteIssue(ctx context.Context, id string) (*entities.Issue, error)
}

// StoreUsecaseInterface abstracts store-directory operations.
type StoreUsecaseInterface interface {
	Stores(ctx context.Context) ([]entities.Store, error)
	CreateStore(ctx context.Context, code, name string) (*entities.Store, error)
	DeleteStore(ctx context.Context, code string) error
}

// UserUsecaseInterface abstracts identity-directory operations.
type UserUsecaseInterface interface {
	Users(ctx context.Context) ([]entities.User, error)
	CreateUser(ctx context.Context, user entities.User, password string) (*entities.User, error)
	UpdateUser(ctx context.Context, id string, patch entities.UserPatch) (*entities.User, error)
	DeleteUser(ctx context.Context, id string) (*entities.User, error)
}

// AuthUsecaseInterface abstracts authentication.
type AuthUsecaseInterface interface {
	Login(ctx context.Context, username, password string) (string, *entities.User, error)
}

// StatsUsecaseInterface abstracts downtime statistics.
type StatsUsecaseInterface interface {
	StatsSummary(ctx context.Context, filter entities.IssueFilter) (entities.StatsSummary, error)
}
