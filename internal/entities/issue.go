// Package entities contains core business entities.
package entities

import "time"

// IssueStatus enumerates issue lifecycle states.
type IssueStatus string

const (
	// IssueStatusOpen marks a freshly reported issue.
	IssueStatusOpen IssueStatus = "open"
	// IssueStatusInvestigating marks an issue being worked on.
	IssueStatusInvestigating IssueStatus = "investigating"
	// IssueStatusClosed marks a resolved issue.
	IssueStatusClosed IssueStatus = "closed"
)

// ValidIssueStatus reports whether s is a known lifecycle state.
func ValidIssueStatus(s IssueStatus) bool {
	switch s {
	case IssueStatusOpen, IssueStatusInvestigating, IssueStatusClosed:
		return true
	}
	return false
}

// IssueSeverity enumerates impact levels.
type IssueSeverity string

const (
	SeverityLow      IssueSeverity = "low"
	SeverityMedium   IssueSeverity = "medium"
	SeverityHigh     IssueSeverity = "high"
	SeverityCritical IssueSeverity = "critical"
)

// ValidIssueSeverity reports whether s is a known severity.
func ValidIssueSeverity(s IssueSeverity) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// IssueReason is a machine-readable downtime cause code. The set is
// closed and the identifiers are never translated.
type IssueReason string

const (
	ReasonPOSTerminalDown  IssueReason = "poss_kassa_siradan_cixdigi_zaman"
	ReasonNBATokenDown     IssueReason = "nba_tokeni_siradan_cixdigi_zaman"
	ReasonAzSmartTokenDown IssueReason = "azsmart_tokeni_siradan_cixdigi_zaman"
	ReasonEncoreDBTrouble  IssueReason = "encore_db_baglanti_problemi"
	ReasonInternetTrouble  IssueReason = "internet_baglantisi_problemi"
	ReasonMerakiRouterDown IssueReason = "meraki_router_siradan_cixdigi_zaman"
	ReasonPowerOutage      IssueReason = "elektrik_kesintisi"
)

// IssueReasons lists every valid cause code.
var IssueReasons = []IssueReason{
	ReasonPOSTerminalDown,
	ReasonNBATokenDown,
	ReasonAzSmartTokenDown,
	ReasonEncoreDBTrouble,
	ReasonInternetTrouble,
	ReasonMerakiRouterDown,
	ReasonPowerOutage,
}

// ValidIssueReason reports whether r belongs to the closed reason set.
func ValidIssueReason(r IssueReason) bool {
	for _, known := range IssueReasons {
		if r == known {
			return true
		}
	}
	return false
}

// Issue is a recorded instance of a store being non-operational.
// EndedAt is set the first time the issue is closed and cleared
// whenever it leaves the closed state.
type Issue struct {
	ID                string
	Title             string
	Description       string
	StoreCode         string
	Status            IssueStatus
	Severity          IssueSeverity
	Reason            IssueReason
	CreatedByID       string
	CreatedByUsername string
	CreatedByName     string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	EndedAt           *time.Time
}
