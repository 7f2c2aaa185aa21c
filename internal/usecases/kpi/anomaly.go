package kpi

import (
	"math"
	"sort"

	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/eme-digital/ads-audit-api/internal/usecases/normalizing"
	"github.com/eme-digital/ads-audit-api/pkg/utils"
)

const (
	// anomalyListCap bounds both ranked lists.
	anomalyListCap = 20

	// Sudden-drop thresholds: baseline must be a working account
	// (ROAS > 1) and the latest day must sit below 70% of it.
	dropBaselineFloor = 1.0
	dropRatio         = 0.7
	// Baseline window: up to the 7 most recent prior days. Gaps in the
	// daily feed just shrink the window; carried over as-is from the
	// source system.
	baselineWindow = 7

	// Hidden-gem thresholds: low spend, ROAS far above target.
	gemMaxSpend       = 250.0
	gemTargetMultiple = 2.0
	gemMinROAS        = 5.0
)

// DetectAnomalies runs both detectors. history is the unaggregated daily
// feed; aggregated is the date-range summary from AggregateDaily; visible
// is the currently filtered record set, whose managers bound the output
// scope so a filtered view never surfaces someone else's accounts.
func DetectAnomalies(
	history []domain.PerformanceRecord,
	aggregated []domain.PerformanceRecord,
	visible []domain.PerformanceRecord,
) domain.AnomalyReport {
	visibleManagers := make(map[string]struct{}, len(visible))
	for _, r := range visible {
		visibleManagers[r.Manager] = struct{}{}
	}

	report := domain.AnomalyReport{
		SuddenDrops: detectSuddenDrops(history, visibleManagers),
		HiddenGems:  detectHiddenGems(aggregated, visibleManagers),
	}

	return report
}

func detectSuddenDrops(history []domain.PerformanceRecord, managers map[string]struct{}) []domain.SuddenDrop {
	byAccount := make(map[string][]domain.PerformanceRecord)
	var order []string
	for _, row := range history {
		key := normalizing.AccountID(row.CID)
		if key == "" {
			key = row.AccountName
		}
		if _, seen := byAccount[key]; !seen {
			order = append(order, key)
		}
		byAccount[key] = append(byAccount[key], row)
	}

	var drops []domain.SuddenDrop
	for _, key := range order {
		account := byAccount[key]
		if len(account) < 2 {
			continue
		}

		sorted := make([]domain.PerformanceRecord, len(account))
		copy(sorted, account)
		sort.SliceStable(sorted, func(i, j int) bool {
			di, _ := utils.ParseSnapshotDate(sorted[i].Period)
			dj, _ := utils.ParseSnapshotDate(sorted[j].Period)
			return di.After(dj)
		})

		latest := sorted[0]
		latestROAS := ActualROAS(latest)

		end := 1 + baselineWindow
		if end > len(sorted) {
			end = len(sorted)
		}
		baselineRows := sorted[1:end]
		if len(baselineRows) == 0 {
			continue
		}

		var total float64
		for _, row := range baselineRows {
			total += ActualROAS(row)
		}
		baseline := total / float64(len(baselineRows))

		if baseline > dropBaselineFloor && latestROAS < baseline*dropRatio {
			drops = append(drops, domain.SuddenDrop{
				CID:          latest.CID,
				AccountName:  latest.AccountName,
				Manager:      latest.Manager,
				CurrentROAS:  latestROAS,
				BaselineROAS: baseline,
				DropPct:      (baseline - latestROAS) / baseline * 100,
			})
		}
	}

	drops = filterDropsByManager(drops, managers)
	sort.SliceStable(drops, func(i, j int) bool { return drops[i].DropPct > drops[j].DropPct })
	if len(drops) > anomalyListCap {
		drops = drops[:anomalyListCap]
	}
	return drops
}

func detectHiddenGems(aggregated []domain.PerformanceRecord, managers map[string]struct{}) []domain.HiddenGem {
	var gems []domain.HiddenGem
	for _, row := range aggregated {
		cost := utils.ParseNumber(row.Cost)
		target := utils.ParseROAS(row.TargetROAS)
		roas := ActualROAS(row)

		if cost > 0 && cost < gemMaxSpend && roas > math.Max(target*gemTargetMultiple, gemMinROAS) {
			gems = append(gems, domain.HiddenGem{
				CID:         row.CID,
				AccountName: row.AccountName,
				Manager:     row.Manager,
				CurrentROAS: roas,
				TargetROAS:  target,
				Spend:       cost,
			})
		}
	}

	filtered := gems[:0]
	for _, g := range gems {
		if _, ok := managers[g.Manager]; ok {
			filtered = append(filtered, g)
		}
	}
	gems = filtered

	sort.SliceStable(gems, func(i, j int) bool { return gems[i].CurrentROAS > gems[j].CurrentROAS })
	if len(gems) > anomalyListCap {
		gems = gems[:anomalyListCap]
	}
	return gems
}

func filterDropsByManager(drops []domain.SuddenDrop, managers map[string]struct{}) []domain.SuddenDrop {
	filtered := drops[:0]
	for _, d := range drops {
		if _, ok := managers[d.Manager]; ok {
			filtered = append(filtered, d)
		}
	}
	return filtered
}
