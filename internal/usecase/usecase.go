package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/H1dayet/StoreMonitoring/internal/auth"
	"github.com/H1dayet/StoreMonitoring/internal/repository"
	"github.com/H1dayet/StoreMonitoring/internal/usecase/domain"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	IssueUsecaseInterface
	StoreUsecaseInterface
	UserUsecaseInterface
	AuthUsecaseInterface
	StatsUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, tokens *auth.Tokens, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, tokens, timeout)
}
