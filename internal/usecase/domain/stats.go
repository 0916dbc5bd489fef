// Package domain contains application usecases orchestrating domain logic by statistics.
package domain

import (
	"context"
	"time"

	"github.com/H1dayet/StoreMonitoring/internal/entities"
	"github.com/H1dayet/StoreMonitoring/internal/stats"
)

// StatsSummary computes the dashboard snapshot over the current ledger.
func (u *Usecase) StatsSummary(ctx context.Context, filter entities.IssueFilter) (entities.StatsSummary, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	issues, err := u.repo.ListIssues(ctx)
	if err != nil {
		return entities.StatsSummary{}, err
	}
	return stats.Summarize(issues, filter, time.Now()), nil
}
