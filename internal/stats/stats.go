// Package stats computes dashboard metrics over an issue snapshot.
// Every function is pure: the same snapshot, filter and clock always
// produce the same result.
package stats

import (
	"time"

	"github.com/H1dayet/StoreMonitoring/internal/entities"
)

// RangeKey names the preset time windows offered by the dashboard.
type RangeKey string

const (
	RangeAll       RangeKey = "all"
	RangeToday     RangeKey = "today"
	RangeLast7     RangeKey = "last7"
	RangeLast30    RangeKey = "last30"
	RangeThisMonth RangeKey = "this_month"
	RangeLastMonth RangeKey = "last_month"
	RangeCustom    RangeKey = "custom"
)

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day, so
// day-granular ranges include the whole end day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// RangeBounds resolves a preset window relative to now. RangeAll and
// RangeCustom yield no bounds; custom bounds are supplied by the caller.
func RangeBounds(key RangeKey, now time.Time) (from, to *time.Time) {
	startToday := StartOfDay(now)
	endToday := EndOfDay(now)

	switch key {
	case RangeToday:
		return &startToday, &endToday
	case RangeLast7:
		start := startToday.AddDate(0, 0, -6)
		return &start, &endToday
	case RangeLast30:
		start := startToday.AddDate(0, 0, -29)
		return &start, &endToday
	case RangeThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return &start, &endToday
	case RangeLastMonth:
		start := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		end := EndOfDay(time.Date(now.Year(), now.Month(), 0, 0, 0, 0, 0, now.Location()))
		return &start, &end
	}
	return nil, nil
}

// Downtime is the elapsed time between an issue's creation and its
// resolution, or now while it is still open. Never negative.
func Downtime(issue entities.Issue, now time.Time) time.Duration {
	end := now
	if issue.EndedAt != nil {
		end = *issue.EndedAt
	}
	d := end.Sub(issue.CreatedAt)
	if d < 0 {
		return 0
	}
	return d
}

// Matches reports whether an issue passes every supplied filter;
// unset filters impose no constraint.
func Matches(issue entities.Issue, f entities.IssueFilter) bool {
	if f.StoreCode != "" && issue.StoreCode != f.StoreCode {
		return false
	}
	if f.Reason != "" && issue.Reason != f.Reason {
		return false
	}
	if f.Status != "" && issue.Status != f.Status {
		return false
	}
	if f.From != nil && issue.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && issue.CreatedAt.After(*f.To) {
		return false
	}
	return true
}

// Apply returns the issues matching the filter, preserving order.
func Apply(issues []entities.Issue, f entities.IssueFilter) []entities.Issue {
	out := make([]entities.Issue, 0, len(issues))
	for _, i := range issues {
		if Matches(i, f) {
			out = append(out, i)
		}
	}
	return out
}

// Summarize computes the dashboard snapshot. Status counts and the
// resolved-today count cover the whole ledger; downtime totals cover
// issues created inside the filter's window, defaulting to today when
// no window is active.
func Summarize(issues []entities.Issue, f entities.IssueFilter, now time.Time) entities.StatsSummary {
	var s entities.StatsSummary

	todayStart := StartOfDay(now)
	todayEnd := EndOfDay(now)

	for _, i := range issues {
		switch i.Status {
		case entities.IssueStatusOpen:
			s.OpenCount++
		case entities.IssueStatusInvestigating:
			s.InvestigatingCount++
		}
		if i.EndedAt != nil && !i.EndedAt.Before(todayStart) && !i.EndedAt.After(todayEnd) {
			s.ResolvedTodayCount++
		}
	}
	s.ActiveCount = s.OpenCount + s.InvestigatingCount

	windowFrom, windowTo := f.From, f.To
	if !f.TimeBounded() {
		windowFrom, windowTo = &todayStart, &todayEnd
	}

	var windowed int
	for _, i := range issues {
		if windowFrom != nil && i.CreatedAt.Before(*windowFrom) {
			continue
		}
		if windowTo != nil && i.CreatedAt.After(*windowTo) {
			continue
		}
		windowed++
		s.TotalDowntime += Downtime(i, now)
	}
	if windowed > 0 {
		s.AverageDowntime = s.TotalDowntime / time.Duration(windowed)
	}

	s.MatchedCount = len(Apply(issues, f))
	return s
}
