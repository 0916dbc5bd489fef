package jsonfile

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/H1dayet/StoreMonitoring/internal/entities"
)

// seedIssues returns the sample incidents used when no issues file
// exists yet, so the dashboard is not empty on first run.
func seedIssues() []entities.Issue {
	now := time.Now()
	return []entities.Issue{
		{
			ID:          uuid.NewString(),
			Title:       "Database latency spike",
			Description: "Read queries exceeding 500ms in cluster A",
			Status:      entities.IssueStatusOpen,
			Severity:    entities.SeverityHigh,
			Reason:      entities.ReasonEncoreDBTrouble,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Memory usage warning",
			Description: "Service auth-api memory > 85%",
			Status:      entities.IssueStatusInvestigating,
			Severity:    entities.SeverityMedium,
			Reason:      entities.ReasonInternetTrouble,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// seedUsers bootstraps exactly one admin account so the system is
// usable on first boot. Deliberate trust bootstrap, not a security
// mechanism.
func seedUsers(adminPassword string) ([]entities.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return []entities.User{{
		ID:           uuid.NewString(),
		Username:     "admin",
		Name:         "Administrator",
		Role:         entities.RoleAdmin,
		Active:       true,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}}, nil
}

// seedStores is the minimal fallback directory used when no stores
// file is present.
func seedStores() []entities.Store {
	return []entities.Store{
		{Code: "728", Name: "OBA-SHIRVAN 11"},
		{Code: "1407", Name: "OBA-BEYLEQAN 13"},
	}
}
