// Package domain contains application usecases orchestrating domain logic by authentication.
package domain

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/H1dayet/StoreMonitoring/internal/entities"
)

// Login authenticates a username/password pair and returns a signed
// token plus the user record with the credential hash stripped. Any
// failure mode collapses into ErrUnauthorized so callers cannot probe
// which part failed.
func (u *Usecase) Login(ctx context.Context, username, password string) (string, *entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	user, err := u.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return "", nil, fmt.Errorf("%w: invalid credentials", entities.ErrUnauthorized)
		}
		return "", nil, err
	}
	if !user.Active {
		return "", nil, fmt.Errorf("%w: invalid credentials", entities.ErrUnauthorized)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, fmt.Errorf("%w: invalid credentials", entities.ErrUnauthorized)
	}

	token, err := u.tokens.Issue(*user)
	if err != nil {
		return "", nil, err
	}

	u.log.Infow("login", "username", username)
	safe := user.WithoutHash()
	return token, &safe, nil
}
