// Package budgeting aggregates budget-exhaustion events into the
// manager × month heatmap and the per-manager summary table.
package budgeting

import (
	"sort"
	"strings"

	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/eme-digital/ads-audit-api/internal/usecases/kpi"
	"github.com/eme-digital/ads-audit-api/pkg/utils"
)

// ActiveManagers derives the heatmap allow-list from the manager roster:
// active status, no internal placeholder names. Returns nil when the
// roster is empty, which disables the status filter entirely.
func ActiveManagers(statuses []domain.ManagerStatus) map[string]struct{} {
	if len(statuses) == 0 {
		return nil
	}
	active := make(map[string]struct{})
	for _, s := range statuses {
		if strings.ToLower(s.Status) != "active" {
			continue
		}
		if s.Manager == "" || kpi.IsReservedName(s.Manager) {
			continue
		}
		active[s.Manager] = struct{}{}
	}
	return active
}

// trailingMonths is the default heatmap window when no range is selected.
const trailingMonths = 12

// monthsInRange computes the chronological short-month labels present in
// the budget rows, then narrows to the inclusive label range. No range at
// all defaults to the trailing twelve months; a bound label not present
// in the data falls back to the full range.
func monthsInRange(rows []domain.BudgetRecord, f domain.HeatmapFilter) []string {
	type stamped struct {
		label string
		at    int64
	}

	seen := make(map[string]struct{})
	var all []stamped
	for _, row := range rows {
		t, ok := utils.ParseSnapshotDate(row.StartDate)
		if !ok {
			continue
		}
		label := utils.ShortMonthLabel(t)
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		all = append(all, stamped{label: label, at: t.Unix()})
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].at < all[j].at })

	labels := make([]string, 0, len(all))
	for _, s := range all {
		labels = append(labels, s.label)
	}

	if f.StartMonth == "" && f.EndMonth == "" {
		if len(labels) > trailingMonths {
			labels = labels[len(labels)-trailingMonths:]
		}
		return labels
	}
	if f.StartMonth == "" || f.EndMonth == "" {
		return labels
	}
	startIdx, endIdx := -1, -1
	for i, label := range labels {
		if label == f.StartMonth {
			startIdx = i
		}
		if label == f.EndMonth {
			endIdx = i
		}
	}
	if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
		return labels
	}
	return labels[startIdx : endIdx+1]
}

// BuildHeatmap counts budget exhaustions per manager per month inside the
// visible range. activeManagers is the allow-list from ActiveManagers; nil
// admits every manager. MaxCount never drops below 1 so the caller's color
// scale never divides by zero.
func BuildHeatmap(rows []domain.BudgetRecord, activeManagers map[string]struct{}, f domain.HeatmapFilter) domain.Heatmap {
	months := monthsInRange(rows, f)
	visible := make(map[string]struct{}, len(months))
	for _, m := range months {
		visible[m] = struct{}{}
	}

	cells := make(map[string]map[string]int)
	for _, row := range rows {
		if row.Manager == "" || row.StartDate == "" {
			continue
		}
		if activeManagers != nil {
			if _, ok := activeManagers[row.Manager]; !ok {
				continue
			}
		}

		t, ok := utils.ParseSnapshotDate(row.StartDate)
		if !ok {
			continue
		}
		month := utils.ShortMonthLabel(t)
		if _, ok := visible[month]; !ok {
			continue
		}

		if cells[row.Manager] == nil {
			cells[row.Manager] = make(map[string]int)
		}
		cells[row.Manager][month]++
	}

	var managers []string
	if activeManagers != nil {
		for m := range activeManagers {
			managers = append(managers, m)
		}
	} else {
		for m := range cells {
			managers = append(managers, m)
		}
	}

	totals := make(map[string]int, len(managers))
	for _, m := range managers {
		for _, month := range months {
			totals[m] += cells[m][month]
		}
	}
	sort.SliceStable(managers, func(i, j int) bool {
		if totals[managers[i]] != totals[managers[j]] {
			return totals[managers[i]] > totals[managers[j]]
		}
		return managers[i] < managers[j]
	})

	maxCount := 1
	for _, m := range managers {
		for _, month := range months {
			if c := cells[m][month]; c > maxCount {
				maxCount = c
			}
		}
	}

	return domain.Heatmap{
		Managers: managers,
		Months:   months,
		Cells:    cells,
		MaxCount: maxCount,
	}
}

// SummarizeExhaustions tallies the filtered budget rows per manager:
// exhaustion events (one per row) and distinct accounts touched. Sorted by
// exhaustions descending, ties alphabetical.
func SummarizeExhaustions(rows []domain.BudgetRecord) []domain.ExhaustionSummary {
	type tally struct {
		exhaustions int
		accounts    map[string]struct{}
	}

	tallies := make(map[string]*tally)
	var order []string
	for _, row := range rows {
		if row.Manager == "" {
			continue
		}
		t, ok := tallies[row.Manager]
		if !ok {
			t = &tally{accounts: make(map[string]struct{})}
			tallies[row.Manager] = t
			order = append(order, row.Manager)
		}
		t.exhaustions++
		t.accounts[row.AccountName] = struct{}{}
	}

	out := make([]domain.ExhaustionSummary, 0, len(order))
	for _, manager := range order {
		t := tallies[manager]
		out = append(out, domain.ExhaustionSummary{
			Manager:          manager,
			Exhaustions:      t.exhaustions,
			DistinctAccounts: len(t.accounts),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Exhaustions != out[j].Exhaustions {
			return out[i].Exhaustions > out[j].Exhaustions
		}
		return out[i].Manager < out[j].Manager
	})
	return out
}
