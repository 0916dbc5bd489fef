// Package domain contains application usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"fmt"

	"github.com/H1dayet/StoreMonitoring/internal/entities"
)

const minPasswordLen = 6

// Users lists all accounts, credential hashes stripped.
func (u *Usecase) Users(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListUsers(ctx)
}

// CreateUser validates and stores a new account.
func (u *Usecase) CreateUser(ctx context.Context, user entities.User, password string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if user.Username == "" || user.Name == "" {
		return nil, fmt.Errorf("%w: username and name are required", entities.ErrInvalidArgument)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", entities.ErrInvalidArgument, minPasswordLen)
	}
	if !entities.ValidUserRole(user.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", entities.ErrInvalidArgument, user.Role)
	}

	created, err := u.repo.CreateUser(ctx, user, password)
	if err != nil {
		return nil, err
	}
	u.log.Infow("user account created", "username", created.Username)
	return created, nil
}

// UpdateUser applies a partial patch to an account.
func (u *Usecase) UpdateUser(ctx context.Context, id string, patch entities.UserPatch) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	if patch.Role != nil && !entities.ValidUserRole(*patch.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", entities.ErrInvalidArgument, *patch.Role)
	}
	if patch.Password != nil && len(*patch.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", entities.ErrInvalidArgument, minPasswordLen)
	}
	return u.repo.UpdateUser(ctx, id, patch)
}

// DeleteUser removes an account.
func (u *Usecase) DeleteUser(ctx context.Context, id string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteUser(ctx, id)
}
