package domain

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/H1dayet/StoreMonitoring/internal/auth"
	"github.com/H1dayet/StoreMonitoring/internal/repository"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	tokens  *auth.Tokens
	timeout time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	tokens *auth.Tokens,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		tokens:  tokens,
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
