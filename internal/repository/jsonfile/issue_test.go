package jsonfile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/H1dayet/StoreMonitoring/internal/entities"
)

func reportIssue(t *testing.T, repo *JSONFile, title string) *entities.Issue {
	t.Helper()

	created, err := repo.CreateIssue(context.Background(), entities.Issue{
		Title:     title,
		StoreCode: "1407",
		Severity:  entities.SeverityLow,
		Reason:    entities.ReasonPowerOutage,
	})
	require.NoError(t, err)
	return created
}

func TestCreateIssueAssignsDefaultsAndPrepends(t *testing.T) {
	repo, _ := newTestRepo(t, issuesFile)

	first := reportIssue(t, repo, "first")
	require.NotEmpty(t, first.ID)
	require.Equal(t, entities.IssueStatusOpen, first.Status)
	require.Nil(t, first.EndedAt)
	require.False(t, first.CreatedAt.IsZero())
	require.Equal(t, first.CreatedAt, first.UpdatedAt)

	second := reportIssue(t, repo, "second")

	issues, err := repo.ListIssues(context.Background())
	require.NoError(t, err)
	require.Len(t, issues, 2)
	require.Equal(t, second.ID, issues[0].ID)
	require.Equal(t, first.ID, issues[1].ID)
}

func TestUpdateIssueStatusStampsEndedAtOnce(t *testing.T) {
	repo, _ := newTestRepo(t, issuesFile)
	issue := reportIssue(t, repo, "pos down")

	closed, err := repo.UpdateIssueStatus(context.Background(), issue.ID, entities.IssueStatusClosed)
	require.NoError(t, err)
	require.NotNil(t, closed.EndedAt)
	require.False(t, closed.EndedAt.Before(issue.CreatedAt))

	firstEnd := *closed.EndedAt
	time.Sleep(5 * time.Millisecond)

	again, err := repo.UpdateIssueStatus(context.Background(), issue.ID, entities.IssueStatusClosed)
	require.NoError(t, err)
	require.NotNil(t, again.EndedAt)
	require.True(t, again.EndedAt.Equal(firstEnd), "re-closing must not move EndedAt")
}

func TestUpdateIssueStatusReopenClearsEndedAt(t *testing.T) {
	repo, _ := newTestRepo(t, issuesFile)
	issue := reportIssue(t, repo, "router down")

	_, err := repo.UpdateIssueStatus(context.Background(), issue.ID, entities.IssueStatusClosed)
	require.NoError(t, err)

	reopened, err := repo.UpdateIssueStatus(context.Background(), issue.ID, entities.IssueStatusInvestigating)
	require.NoError(t, err)
	require.Nil(t, reopened.EndedAt)

	closedAgain, err := repo.UpdateIssueStatus(context.Background(), issue.ID, entities.IssueStatusClosed)
	require.NoError(t, err)
	require.NotNil(t, closedAgain.EndedAt)
}

func TestUpdateIssueStatusUnknownID(t *testing.T) {
	repo, _ := newTestRepo(t, issuesFile)

	_, err := repo.UpdateIssueStatus(context.Background(), "missing", entities.IssueStatusClosed)
	require.ErrorIs(t, err, entities.ErrIssueNotFound)
}

func TestDeleteIssueReturnsRemovedRecord(t *testing.T) {
	repo, _ := newTestRepo(t, issuesFile)
	issue := reportIssue(t, repo, "to remove")

	removed, err := repo.DeleteIssue(context.Background(), issue.ID)
	require.NoError(t, err)
	require.Equal(t, issue.ID, removed.ID)

	_, err = repo.GetIssue(context.Background(), issue.ID)
	require.ErrorIs(t, err, entities.ErrIssueNotFound)

	_, err = repo.DeleteIssue(context.Background(), issue.ID)
	require.ErrorIs(t, err, entities.ErrIssueNotFound)
}

func TestIssuesRoundTripThroughDisk(t *testing.T) {
	repo, dir := newTestRepo(t, issuesFile)

	open := reportIssue(t, repo, "still open")
	closed := reportIssue(t, repo, "already closed")
	_, err := repo.UpdateIssueStatus(context.Background(), closed.ID, entities.IssueStatusClosed)
	require.NoError(t, err)

	reloaded, err := reopen(t, dir).ListIssues(context.Background())
	require.NoError(t, err)
	require.Len(t, reloaded, 2)

	byID := map[string]entities.Issue{}
	for _, i := range reloaded {
		byID[i.ID] = i
	}

	gotOpen := byID[open.ID]
	require.Equal(t, open.Title, gotOpen.Title)
	require.Equal(t, open.Reason, gotOpen.Reason)
	require.True(t, gotOpen.CreatedAt.Equal(open.CreatedAt))
	require.Nil(t, gotOpen.EndedAt)

	gotClosed := byID[closed.ID]
	require.Equal(t, entities.IssueStatusClosed, gotClosed.Status)
	require.NotNil(t, gotClosed.EndedAt)
}

func TestSeedIssuesOnFirstBoot(t *testing.T) {
	repo, _ := newTestRepo(t)

	issues, err := repo.ListIssues(context.Background())
	require.NoError(t, err)
	require.Len(t, issues, 2)
}
