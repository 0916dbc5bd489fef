// Package auth issues and verifies signed identity tokens and holds
// the authorization policy.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/H1dayet/StoreMonitoring/internal/entities"
)

// Identity is the verified subject extracted from a token.
type Identity struct {
	ID       string
	Username string
	Name     string
	Role     entities.UserRole
}

type claims struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Tokens signs and verifies HS256 JWTs with a fixed expiry.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

// NewTokens builds a token engine from the shared signing secret.
func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the user's id, username, display name
// and role.
func (t *Tokens) Issue(u entities.User) (string, error) {
	now := time.Now()
	c := claims{
		Username: u.Username,
		Name:     u.Name,
		Role:     string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded identity.
func (t *Tokens) Verify(token string) (Identity, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Identity{}, fmt.Errorf("%w: invalid token", entities.ErrUnauthorized)
	}

	return Identity{
		ID:       c.Subject,
		Username: c.Username,
		Name:     c.Name,
		Role:     entities.UserRole(c.Role),
	}, nil
}

// Authorize checks the identity's role against the role an operation
// requires. Admin satisfies every requirement.
func Authorize(id Identity, required entities.UserRole) error {
	if id.Role == entities.RoleAdmin {
		return nil
	}
	if required == entities.RoleAdmin {
		return fmt.Errorf("%w: admin role required", entities.ErrForbidden)
	}
	return nil
}
