package domain

import "time"

// matches reports whether value passes a multi-select filter: an empty
// selection matches everything, mirroring the dashboard's filter chips.
func matches(selection []string, value string) bool {
	if len(selection) == 0 {
		return true
	}
	for _, s := range selection {
		if s == value {
			return true
		}
	}
	return false
}

// RecordFilter is the explicit query object replacing the dashboard's
// per-view selection arrays. Zero value matches everything.
type RecordFilter struct {
	Managers       []string
	Teams          []string
	AccountNames   []string
	ClientAccounts []string
	Objectives     []string
	Types          []string
	Strategists    []string
	Statuses       []string
	Months         []string

	StartDate *time.Time
	EndDate   *time.Time
}

// MatchesAccount applies the account-level selections.
func (f RecordFilter) MatchesAccount(r AccountRecord) bool {
	return matches(f.Managers, r.Manager) &&
		matches(f.Teams, r.Team) &&
		matches(f.AccountNames, r.AccountName) &&
		matches(f.ClientAccounts, r.ClientAccount) &&
		matches(f.Objectives, r.Objective) &&
		matches(f.Types, r.Type) &&
		matches(f.Strategists, r.Strategist)
}

// MatchesStatus applies the KPI-status selection to an already classified
// record.
func (f RecordFilter) MatchesStatus(status KpiStatus) bool {
	return matches(f.Statuses, string(status))
}

// MatchesMonth applies the month-label selection.
func (f RecordFilter) MatchesMonth(label string) bool {
	return matches(f.Months, label)
}

// AuditFilter scopes one audit run.
type AuditFilter struct {
	// Managers restricts output to the selected managers; empty means all.
	Managers []string
	// Date pins the run to a single snapshot date instead of the two most
	// recent dates in the set.
	Date string
}

// MatchesManager applies the manager selection.
func (f AuditFilter) MatchesManager(manager string) bool {
	return matches(f.Managers, manager)
}

// ScoreFilter scopes a portfolio scoring run.
type ScoreFilter struct {
	// Months holds long month labels ("January 2024"); empty defaults to
	// the latest month present in the data.
	Months      []string
	Teams       []string
	Strategists []string
}

// MatchesRecord applies the team/strategist selections.
func (f ScoreFilter) MatchesRecord(r PerformanceRecord) bool {
	return matches(f.Teams, r.Team) && matches(f.Strategists, r.Strategist)
}

// HeatmapFilter bounds the visible month range by short month label,
// inclusive. Empty bounds show the full range.
type HeatmapFilter struct {
	StartMonth string
	EndMonth   string
}
