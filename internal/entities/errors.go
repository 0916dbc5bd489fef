// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnauthorized signals a missing, malformed or expired token, or bad credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden signals a valid identity lacking the required role.
	ErrForbidden = errors.New("forbidden")
	// ErrIssueNotFound signals a missing issue.
	ErrIssueNotFound = errors.New("issue not found")
	// ErrStoreNotFound signals a missing store code.
	ErrStoreNotFound = errors.New("store not found")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrStoreExists signals store code conflict.
	ErrStoreExists = errors.New("store code exists")
	// ErrStoreCodeNotNumeric signals a store code that does not parse as a number.
	ErrStoreCodeNotNumeric = errors.New("store code not numeric")
	// ErrUsernameExists signals username conflict.
	ErrUsernameExists = errors.New("username exists")
)
