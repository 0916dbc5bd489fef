package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/H1dayet/StoreMonitoring/internal/entities"
)

func ts(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func tsp(value string) *time.Time {
	t := ts(value)
	return &t
}

func TestDowntimeGrowsWhileOpen(t *testing.T) {
	issue := entities.Issue{CreatedAt: ts("2026-03-10 09:00:00")}

	require.Equal(t, 2*time.Hour, Downtime(issue, ts("2026-03-10 11:00:00")))
	require.Equal(t, 5*time.Hour, Downtime(issue, ts("2026-03-10 14:00:00")))
}

func TestDowntimeFixedAfterClose(t *testing.T) {
	issue := entities.Issue{
		CreatedAt: ts("2026-03-10 09:00:00"),
		EndedAt:   tsp("2026-03-10 10:30:00"),
	}

	require.Equal(t, 90*time.Minute, Downtime(issue, ts("2026-03-10 11:00:00")))
	require.Equal(t, 90*time.Minute, Downtime(issue, ts("2026-03-15 00:00:00")))
}

func TestDowntimeNeverNegative(t *testing.T) {
	issue := entities.Issue{
		CreatedAt: ts("2026-03-10 09:00:00"),
		EndedAt:   tsp("2026-03-10 08:00:00"),
	}

	require.Equal(t, time.Duration(0), Downtime(issue, ts("2026-03-10 11:00:00")))
}

func TestMatchesUnsetFilterPassesEverything(t *testing.T) {
	issue := entities.Issue{
		StoreCode: "1407",
		Reason:    entities.ReasonPowerOutage,
		Status:    entities.IssueStatusOpen,
		CreatedAt: ts("2026-03-10 09:00:00"),
	}

	require.True(t, Matches(issue, entities.IssueFilter{}))
}

func TestMatchesFilters(t *testing.T) {
	issue := entities.Issue{
		StoreCode: "1407",
		Reason:    entities.ReasonPowerOutage,
		Status:    entities.IssueStatusClosed,
		CreatedAt: ts("2026-03-10 09:00:00"),
	}

	cases := []struct {
		name   string
		filter entities.IssueFilter
		want   bool
	}{
		{"matching store", entities.IssueFilter{StoreCode: "1407"}, true},
		{"other store", entities.IssueFilter{StoreCode: "728"}, false},
		{"matching reason", entities.IssueFilter{Reason: entities.ReasonPowerOutage}, true},
		{"other reason", entities.IssueFilter{Reason: entities.ReasonInternetTrouble}, false},
		{"matching status", entities.IssueFilter{Status: entities.IssueStatusClosed}, true},
		{"other status", entities.IssueFilter{Status: entities.IssueStatusOpen}, false},
		{"inside window", entities.IssueFilter{From: tsp("2026-03-10 00:00:00"), To: tsp("2026-03-10 23:00:00")}, true},
		{"before window", entities.IssueFilter{From: tsp("2026-03-11 00:00:00")}, false},
		{"after window", entities.IssueFilter{To: tsp("2026-03-09 23:59:59")}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Matches(issue, tc.filter))
		})
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	issues := []entities.Issue{
		{ID: "a", StoreCode: "1407"},
		{ID: "b", StoreCode: "728"},
		{ID: "c", StoreCode: "1407"},
	}

	got := Apply(issues, entities.IssueFilter{StoreCode: "1407"})
	require.Len(t, got, 2)
	require.Equal(t, "a", got[0].ID)
	require.Equal(t, "c", got[1].ID)
}

func TestRangeBoundsPresets(t *testing.T) {
	now := ts("2026-03-10 14:30:00")

	from, to := RangeBounds(RangeToday, now)
	require.Equal(t, ts("2026-03-10 00:00:00"), *from)
	require.Equal(t, EndOfDay(now), *to)

	from, _ = RangeBounds(RangeLast7, now)
	require.Equal(t, ts("2026-03-04 00:00:00"), *from)

	from, _ = RangeBounds(RangeLast30, now)
	require.Equal(t, ts("2026-02-09 00:00:00"), *from)

	from, to = RangeBounds(RangeThisMonth, now)
	require.Equal(t, ts("2026-03-01 00:00:00"), *from)
	require.Equal(t, EndOfDay(now), *to)

	from, to = RangeBounds(RangeLastMonth, now)
	require.Equal(t, ts("2026-02-01 00:00:00"), *from)
	require.Equal(t, EndOfDay(ts("2026-02-28 00:00:00")), *to)

	from, to = RangeBounds(RangeAll, now)
	require.Nil(t, from)
	require.Nil(t, to)
}

func TestEndOfDayIsInclusive(t *testing.T) {
	// An issue created at 18:00 on the range's end day must land
	// inside a day-granular [start, end] window.
	issue := entities.Issue{CreatedAt: ts("2026-03-10 18:00:00")}
	end := EndOfDay(ts("2026-03-10 00:00:00"))

	require.True(t, Matches(issue, entities.IssueFilter{To: &end}))
}

func TestSummarizeCountsWholeLedger(t *testing.T) {
	now := ts("2026-03-10 14:00:00")
	issues := []entities.Issue{
		{Status: entities.IssueStatusOpen, CreatedAt: ts("2026-03-10 09:00:00")},
		{Status: entities.IssueStatusInvestigating, CreatedAt: ts("2026-03-01 09:00:00")},
		{Status: entities.IssueStatusClosed, CreatedAt: ts("2026-03-09 09:00:00"), EndedAt: tsp("2026-03-10 10:00:00")},
		{Status: entities.IssueStatusClosed, CreatedAt: ts("2026-02-01 09:00:00"), EndedAt: tsp("2026-02-02 09:00:00")},
	}

	s := Summarize(issues, entities.IssueFilter{StoreCode: "1407"}, now)

	// Counts ignore the filter and cover every issue.
	require.Equal(t, 1, s.OpenCount)
	require.Equal(t, 1, s.InvestigatingCount)
	require.Equal(t, 2, s.ActiveCount)
	require.Equal(t, 1, s.ResolvedTodayCount)
	require.Equal(t, 0, s.MatchedCount)
}

func TestSummarizeDefaultWindowIsToday(t *testing.T) {
	now := ts("2026-03-10 14:00:00")
	issues := []entities.Issue{
		// Created today, still open: 5h of downtime so far.
		{Status: entities.IssueStatusOpen, CreatedAt: ts("2026-03-10 09:00:00")},
		// Created yesterday: outside the default window.
		{Status: entities.IssueStatusOpen, CreatedAt: ts("2026-03-09 09:00:00")},
	}

	s := Summarize(issues, entities.IssueFilter{}, now)

	require.Equal(t, 5*time.Hour, s.TotalDowntime)
	require.Equal(t, 5*time.Hour, s.AverageDowntime)
}

func TestSummarizeExplicitWindow(t *testing.T) {
	now := ts("2026-03-10 14:00:00")
	issues := []entities.Issue{
		{Status: entities.IssueStatusClosed, CreatedAt: ts("2026-03-08 09:00:00"), EndedAt: tsp("2026-03-08 11:00:00")},
		{Status: entities.IssueStatusClosed, CreatedAt: ts("2026-03-09 09:00:00"), EndedAt: tsp("2026-03-09 13:00:00")},
		{Status: entities.IssueStatusOpen, CreatedAt: ts("2026-03-01 09:00:00")},
	}
	f := entities.IssueFilter{
		From: tsp("2026-03-08 00:00:00"),
		To:   tsp("2026-03-09 23:59:59"),
	}

	s := Summarize(issues, f, now)

	require.Equal(t, 6*time.Hour, s.TotalDowntime)
	require.Equal(t, 3*time.Hour, s.AverageDowntime)
	require.Equal(t, 2, s.MatchedCount)
}

func TestSummarizeEmptyLedger(t *testing.T) {
	s := Summarize(nil, entities.IssueFilter{}, ts("2026-03-10 14:00:00"))

	require.Equal(t, 0, s.ActiveCount)
	require.Equal(t, time.Duration(0), s.TotalDowntime)
	require.Equal(t, time.Duration(0), s.AverageDowntime)
	require.Equal(t, 0, s.MatchedCount)
}
