// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/H1dayet/StoreMonitoring/internal/api"
	"github.com/H1dayet/StoreMonitoring/internal/entities"
)

// ToAPIIssue maps entities.Issue to transport model.
func ToAPIIssue(i entities.Issue) api.Issue {
	return api.Issue{
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

// ToAPIIssueList maps a slice of entities.Issue to transport slice.
func ToAPIIssueList(list []entities.Issue) []api.Issue {
	res := make([]api.Issue, 0, len(list))
	for _, i := range list {
		res = append(res, ToAPIIssue(i))
	}
	return res
}

// ToAPIStore maps entities.Store to transport model.
func ToAPIStore(s entities.Store) api.Store {
	return api.Store{Code: s.Code, Name: s.Name}
}

// ToAPIStoreList maps a slice of entities.Store to transport slice.
func ToAPIStoreList(list []entities.Store) []api.Store {
	res := make([]api.Store, 0, len(list))
	for _, s := range list {
		res = append(res, ToAPIStore(s))
	}
	return res
}

// ToAPIUser maps entities.User to transport model. The hash field has
// no wire counterpart, so it can never leak here.
func ToAPIUser(u entities.User) api.User {
	return api.User{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToAPIUserList maps a slice of entities.User to transport slice.
func ToAPIUserList(list []entities.User) []api.User {
	res := make([]api.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToAPIUser(u))
	}
	return res
}

// ToAPIStatsSummary maps the dashboard snapshot to transport model.
func ToAPIStatsSummary(s entities.StatsSummary) api.StatsSummary {
	return api.StatsSummary{
		OpenCount:          s.OpenCount,
		InvestigatingCount: s.InvestigatingCount,
		ActiveCount:        s.ActiveCount,
		ResolvedTodayCount: s.ResolvedTodayCount,
		MatchedCount:       s.MatchedCount,
		TotalDowntimeMs:    s.TotalDowntime.Milliseconds(),
		AverageDowntimeMs:  s.AverageDowntime.Milliseconds(),
	}
}
