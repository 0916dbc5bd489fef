package jsonfile

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/H1dayet/StoreMonitoring/internal/entities"
)

// issueRecord is the on-disk shape of an issue. Timestamps serialize
// as RFC 3339 strings.
type issueRecord struct {
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

func issueToRecord(i entities.Issue) issueRecord {
	return issueRecord{
		ID:                i.ID,
		Title:             i.Title,
		Description:       i.Description,
		StoreCode:         i.StoreCode,
		Status:            string(i.Status),
		Severity:          string(i.Severity),
		Reason:            string(i.Reason),
		CreatedByID:       i.CreatedByID,
		CreatedByUsername: i.CreatedByUsername,
		CreatedByName:     i.CreatedByName,
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
		EndedAt:           i.EndedAt,
	}
}

func recordToIssue(r issueRecord) entities.Issue {
	return entities.Issue{
		ID:                r.ID,
		Title:             r.Title,
		Description:       r.Description,
		StoreCode:         r.StoreCode,
		Status:            entities.IssueStatus(r.Status),
		Severity:          entities.IssueSeverity(r.Severity),
		Reason:            entities.IssueReason(r.Reason),
		CreatedByID:       r.CreatedByID,
		CreatedByUsername: r.CreatedByUsername,
		CreatedByName:     r.CreatedByName,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		EndedAt:           r.EndedAt,
	}
}

func (j *JSONFile) loadIssues() {
	var records []issueRecord
	if !j.load(issuesFile, &records) {
		j.issues = seedIssues()
		j.persist(issuesFile, issuesToRecords(j.issues))
		return
	}
	j.issues = make([]entities.Issue, 0, len(records))
	for _, r := range records {
		j.issues = append(j.issues, recordToIssue(r))
	}
}

func issuesToRecords(issues []entities.Issue) []issueRecord {
	records := make([]issueRecord, 0, len(issues))
	for _, i := range issues {
		records = append(records, issueToRecord(i))
	}
	return records
}

func (j *JSONFile) persistIssuesLocked() {
	j.persist(issuesFile, issuesToRecords(j.issues))
}

// ListIssues returns all issues, newest-first.
func (j *JSONFile) ListIssues(_ context.Context) ([]entities.Issue, error) {
	j.issuesMu.Lock()
	defer j.issuesMu.Unlock()

	out := make([]entities.Issue, len(j.issues))
	copy(out, j.issues)
	return out, nil
}

// GetIssue returns one issue by id.
func (j *JSONFile) GetIssue(_ context.Context, id string) (*entities.Issue, error) {
	j.issuesMu.Lock()
	defer j.issuesMu.Unlock()

	for _, i := range j.issues {
		if i.ID == id {
			found := i
			return &found, nil
		}
	}
	return nil, entities.ErrIssueNotFound
}

// CreateIssue assigns a fresh id, open status and timestamps, prepends
// the issue and persists the full ledger.
func (j *JSONFile) CreateIssue(_ context.Context, issue entities.Issue) (*entities.Issue, error) {
	j.issuesMu.Lock()
	defer j.issuesMu.Unlock()

	now := time.Now()
	issue.ID = uuid.NewString()
	issue.Status = entities.IssueStatusOpen
	issue.CreatedAt = now
	issue.UpdatedAt = now
	issue.EndedAt = nil

	j.issues = append([]entities.Issue{issue}, j.issues...)
	j.persistIssuesLocked()

	j.log.Infow("issue created", "issue_id", issue.ID, "store_code", issue.StoreCode, "reason", issue.Reason)
	return &issue, nil
}

// UpdateIssueStatus transitions an issue. Closing stamps EndedAt once;
// re-closing leaves it unchanged; leaving closed clears it.
func (j *JSONFile) UpdateIssueStatus(_ context.Context, id string, status entities.IssueStatus) (*entities.Issue, error) {
	j.issuesMu.Lock()
	defer j.issuesMu.Unlock()

	for idx := range j.issues {
		if j.issues[idx].ID != id {
			continue
		}

		issue := &j.issues[idx]
		now := time.Now()
		issue.Status = status
		issue.UpdatedAt = now
		if status == entities.IssueStatusClosed {
			if issue.EndedAt == nil {
				ended := now
				issue.EndedAt = &ended
			}
		} else {
			issue.EndedAt = nil
		}

		j.persistIssuesLocked()

		updated := *issue
		j.log.Infow("issue status updated", "issue_id", id, "status", status)
		return &updated, nil
	}
	return nil, entities.ErrIssueNotFound
}

// DeleteIssue removes an issue and returns the removed record.
func (j *JSONFile) DeleteIssue(_ context.Context, id string) (*entities.Issue, error) {
	j.issuesMu.Lock()
	defer j.issuesMu.Unlock()

	for idx := range j.issues {
		if j.issues[idx].ID != id {
			continue
		}

		removed := j.issues[idx]
		j.issues = append(j.issues[:idx], j.issues[idx+1:]...)
		j.persistIssuesLocked()

		j.log.Infow("issue removed", "issue_id", id)
		return &removed, nil
	}
	return nil, entities.ErrIssueNotFound
}
