// Package api defines the HTTP wire types. Field names follow the
// dashboard's JSON contract (camelCase, RFC 3339 timestamps).
package api

import "time"

// ErrorCode is a machine-readable failure class.
type ErrorCode string

const (
	INVALIDARGUMENT   ErrorCode = "INVALID_ARGUMENT"
	NOTNUMERIC        ErrorCode = "NOT_NUMERIC"
	UNAUTHORIZED      ErrorCode = "UNAUTHORIZED"
	FORBIDDEN         ErrorCode = "FORBIDDEN"
	NOTFOUND          ErrorCode = "NOT_FOUND"
	DUPLICATECODE     ErrorCode = "DUPLICATE_CODE"
	DUPLICATEUSERNAME ErrorCode = "DUPLICATE_USERNAME"
	INTERNAL          ErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// Issue is the wire form of a downtime issue.
type Issue struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	StoreCode         string     `json:"storeCode,omitempty"`
	Status            string     `json:"status"`
	Severity          string     `json:"severity"`
	Reason            string     `json:"reason"`
	CreatedByID       string     `json:"createdById,omitempty"`
	CreatedByUsername string     `json:"createdByUsername,omitempty"`
	CreatedByName     string     `json:"createdByName,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	EndedAt           *time.Time `json:"endedAt,omitempty"`
}

// Store is the wire form of a directory entry.
type Store struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// User is the wire form of an account; it never carries a credential hash.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateIssueRequest is the POST /issues body.
type CreateIssueRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StoreCode   string `json:"storeCode"`
	Severity    string `json:"severity"`
	Reason      string `json:"reason"`
}

// UpdateIssueStatusRequest is the PATCH /issues/{id}/status body.
type UpdateIssueStatusRequest struct {
	Status string `json:"status"`
}

// CreateStoreRequest is the POST /stores body.
type CreateStoreRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// LoginRequest is the POST /auth/login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the signed token and the safe user record.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreateUserRequest is the POST /admin/users body.
type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Active   *bool  `json:"active"`
}

// UpdateUserRequest is the PATCH /admin/users/{id} body; absent fields
// stay untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Active   *bool   `json:"active"`
	Password *string `json:"password"`
}

// StatsSummary is the dashboard metrics payload. Durations are
// reported in milliseconds.
type StatsSummary struct {
	OpenCount          int   `json:"openCount"`
	InvestigatingCount int   `json:"investigatingCount"`
	ActiveCount        int   `json:"activeCount"`
	ResolvedTodayCount int   `json:"resolvedTodayCount"`
	MatchedCount       int   `json:"matchedCount"`
	TotalDowntimeMs    int64 `json:"totalDowntimeMs"`
	AverageDowntimeMs  int64 `json:"averageDowntimeMs"`
}
