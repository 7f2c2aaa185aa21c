package kpi

import (
	"sort"
	"strings"

	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/eme-digital/ads-audit-api/pkg/utils"
)

// GroupBy selects the grouping dimension for SummarizeBy.
type GroupBy string

const (
	GroupByManager GroupBy = "pm"
	GroupByTeam    GroupBy = "team"
)

// reservedNameParts mark internal/house rows that are excluded from team
// groupings and the active-manager roster.
var reservedNameParts = []string{"team", "sohan"}

// IsReservedName reports whether a manager or team label is one of the
// internal placeholders.
func IsReservedName(label string) bool {
	lower := strings.ToLower(label)
	for _, part := range reservedNameParts {
		if strings.Contains(lower, part) {
			return true
		}
	}
	return false
}

// FilterMonthly applies a record filter to monthly KPI rows: month label,
// account selections, status selection, and the excluded-manager rule.
func FilterMonthly(rows []domain.PerformanceRecord, f domain.RecordFilter) []domain.PerformanceRecord {
	var out []domain.PerformanceRecord
	for _, row := range rows {
		if domain.IsExcludedManager(row.Manager) {
			continue
		}
		label := ""
		if t, ok := utils.ParseSnapshotDate(row.Period); ok {
			label = utils.MonthLabel(t)
		}
		if !f.MatchesMonth(label) || !f.MatchesAccount(row.AccountRecord) {
			continue
		}
		if !f.MatchesStatus(Classify(row)) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// FilterAggregated applies a record filter to aggregated daily summaries.
// The date range was already applied during aggregation.
func FilterAggregated(rows []domain.PerformanceRecord, f domain.RecordFilter) []domain.PerformanceRecord {
	var out []domain.PerformanceRecord
	for _, row := range rows {
		if domain.IsExcludedManager(row.Manager) {
			continue
		}
		if !f.MatchesAccount(row.AccountRecord) {
			continue
		}
		if !f.MatchesStatus(Classify(row)) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// Summarize tallies a filtered, classified record set. Projects counts
// rows, not distinct accounts: with a multi-month selection the same
// account contributes one project per month it appears in.
func Summarize(rows []domain.PerformanceRecord) domain.KpiSummary {
	summary := domain.KpiSummary{}
	managers := make(map[string]struct{})

	for _, row := range rows {
		if row.Manager != "" {
			managers[row.Manager] = struct{}{}
		}
		switch Classify(row) {
		case domain.StatusCritical:
			summary.Critical++
		case domain.StatusLow:
			summary.Low++
		case domain.StatusOnTrack:
			summary.OnTrack++
		}
	}

	summary.Total = summary.Critical + summary.Low + summary.OnTrack
	summary.Projects = len(rows)
	summary.Managers = len(managers)
	return summary
}

// SummarizeBy tallies KPI statuses grouped by manager or team, with
// percentage fields for table display. Rows without a group label are
// bucketed under "Unknown" for teams and skipped for managers; reserved
// internal labels are dropped from team groupings. Sorted by total
// descending, ties alphabetical.
func SummarizeBy(rows []domain.PerformanceRecord, groupBy GroupBy) []domain.GroupKpiSummary {
	stats := make(map[string]*domain.GroupKpiSummary)
	var order []string

	for _, row := range rows {
		var label string
		switch groupBy {
		case GroupByTeam:
			label = row.Team
			if label == "" {
				label = domain.UnknownManager
			}
			if IsReservedName(label) {
				continue
			}
		default:
			label = row.Manager
			if label == "" {
				continue
			}
		}

		s, ok := stats[label]
		if !ok {
			s = &domain.GroupKpiSummary{Label: label}
			stats[label] = s
			order = append(order, label)
		}

		s.Total++
		switch Classify(row) {
		case domain.StatusCritical:
			s.Critical++
		case domain.StatusLow:
			s.Low++
		default:
			s.OnTrack++
		}
	}

	out := make([]domain.GroupKpiSummary, 0, len(order))
	for _, label := range order {
		s := stats[label]
		if s.Total > 0 {
			s.CriticalPct = float64(s.Critical) / float64(s.Total) * 100
			s.LowPct = float64(s.Low) / float64(s.Total) * 100
			s.OnTrackPct = float64(s.OnTrack) / float64(s.Total) * 100
		}
		out = append(out, *s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Label < out[j].Label
	})

	return out
}

// MonthOptions returns the distinct long month labels present in a monthly
// row set, sorted chronologically.
func MonthOptions(rows []domain.PerformanceRecord) []string {
	seen := make(map[string]struct{})
	var labels []string
	for _, row := range rows {
		t, ok := utils.ParseSnapshotDate(row.Period)
		if !ok {
			continue
		}
		label := utils.MonthLabel(t)
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}

	sort.SliceStable(labels, func(i, j int) bool {
		ti, _ := utils.ParseMonthLabel(labels[i])
		tj, _ := utils.ParseMonthLabel(labels[j])
		return ti.Before(tj)
	})

	return labels
}

// trendWindow is how many trailing months the KPI trend chart shows.
const trendWindow = 12

// MonthlyTrend builds the per-month status tallies for the trailing trend
// chart. The record filter's account selections apply; the month selection
// does not, since the chart always shows the trailing window.
func MonthlyTrend(rows []domain.PerformanceRecord, f domain.RecordFilter) []domain.MonthTrendPoint {
	byMonth := make(map[string]*domain.MonthTrendPoint)

	for _, row := range rows {
		if domain.IsExcludedManager(row.Manager) {
			continue
		}
		if !f.MatchesAccount(row.AccountRecord) {
			continue
		}
		t, ok := utils.ParseSnapshotDate(row.Period)
		if !ok {
			continue
		}
		label := utils.MonthLabel(t)

		point, seen := byMonth[label]
		if !seen {
			point = &domain.MonthTrendPoint{Month: label}
			byMonth[label] = point
		}

		switch Classify(row) {
		case domain.StatusCritical:
			point.Critical++
		case domain.StatusLow:
			point.Low++
		case domain.StatusOnTrack:
			point.OnTrack++
		}
		point.Total++
	}

	options := MonthOptions(rows)
	if len(options) > trendWindow {
		options = options[len(options)-trendWindow:]
	}

	out := make([]domain.MonthTrendPoint, 0, len(options))
	for _, label := range options {
		if point, ok := byMonth[label]; ok {
			out = append(out, *point)
		} else {
			out = append(out, domain.MonthTrendPoint{Month: label})
		}
	}
	return out
}

// PrevPeriodLabels computes the comparison window immediately preceding
// the selected months: the same number of months ending right before the
// earliest selected one. Nil when the selection already starts at the
// oldest available month.
func PrevPeriodLabels(selected, options []string) []string {
	minIdx := -1
	for _, label := range selected {
		for i, opt := range options {
			if opt == label && (minIdx == -1 || i < minIdx) {
				minIdx = i
			}
		}
	}
	if minIdx <= 0 {
		return nil
	}

	start := minIdx - len(selected)
	if start < 0 {
		start = 0
	}
	return options[start:minIdx]
}
