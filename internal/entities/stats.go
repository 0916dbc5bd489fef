// Package entities contains core business entities.
package entities

import "time"

// IssueFilter narrows an issue list. Zero-valued fields impose no
// constraint. From/To bound CreatedAt; To is expected to already be
// end-of-day inclusive for day-granular ranges.
type IssueFilter struct {
	StoreCode string
	Reason    IssueReason
	Status    IssueStatus
	From      *time.Time
	To        *time.Time
}

// TimeBounded reports whether the filter carries a time window.
func (f IssueFilter) TimeBounded() bool {
	return f.From != nil || f.To != nil
}

// StatsSummary is a dashboard snapshot of downtime activity.
// Downtime totals cover issues created inside the active window;
// counts cover the full ledger.
type StatsSummary struct {
	OpenCount          int           `json:"open_count"`
	InvestigatingCount int           `json:"investigating_count"`
	ActiveCount        int           `json:"active_count"`
	ResolvedTodayCount int           `json:"resolved_today_count"`
	MatchedCount       int           `json:"matched_count"`
	TotalDowntime      time.Duration `json:"total_downtime"`
	AverageDowntime    time.Duration `json:"average_downtime"`
}
