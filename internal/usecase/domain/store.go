// Package domain contains application usecases orchestrating domain logic by store.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/H1dayet/StoreMonitoring/internal/entities"
)

// Stores returns the directory ordered by code.
func (u *Usecase) Stores(ctx context.Context) ([]entities.Store, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListStores(ctx)
}

// CreateStore adds a store to the directory.
func (u *Usecase) CreateStore(ctx context.Context, code, name string) (*entities.Store, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if strings.TrimSpace(code) == "" || strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: code and name are required", entities.ErrInvalidArgument)
	}
	return u.repo.CreateStore(ctx, entities.Store{Code: code, Name: name})
}

// DeleteStore removes a store by code.
func (u *Usecase) DeleteStore(ctx context.Context, code string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: code is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteStore(ctx, code)
}
