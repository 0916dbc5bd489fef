// Package entities contains core business entities.
package entities

import "time"

// UserRole enumerates access levels.
type UserRole string

const (
	// RoleAdmin may mutate issues, stores and users.
	RoleAdmin UserRole = "admin"
	// RoleUser is a regular account.
	RoleUser UserRole = "user"
)

// ValidUserRole reports whether r is a known role.
func ValidUserRole(r UserRole) bool {
	return r == RoleAdmin || r == RoleUser
}

// User is a domain representation of an account. PasswordHash never
// leaves the identity repository except on the login lookup path.
type User struct {
	ID           string
	Username     string
	Name         string
	Role         UserRole
	Active       bool
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WithoutHash returns a copy safe to hand outside the identity
// repository trust boundary.
func (u User) WithoutHash() User {
	u.PasswordHash = ""
	return u
}

// UserPatch is a partial update; only non-nil fields are applied.
type UserPatch struct {
	Name     *string
	Role     *UserRole
	Active   *bool
	Password *string
}
