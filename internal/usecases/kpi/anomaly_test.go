package kpi

import (
	"fmt"
	"testing"

	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roasRow builds a daily row with the given cost/value so actual ROAS is
// value/cost.
func roasRow(cid, date string, cost, value float64) domain.PerformanceRecord {
	return domain.PerformanceRecord{
		AccountRecord: domain.AccountRecord{
			CID:         cid,
			AccountName: "Account " + cid,
			Manager:     "Jane Doe",
		},
		Period:          date,
		Cost:            fmt.Sprintf("%.2f", cost),
		ConversionValue: fmt.Sprintf("%.2f", value),
	}
}

func visibleFor(manager string) []domain.PerformanceRecord {
	return []domain.PerformanceRecord{
		{AccountRecord: domain.AccountRecord{Manager: manager}},
	}
}

func TestSuddenDropFlagged(t *testing.T) {
	// Baseline days run at ROAS 4, the latest day collapses to 1.
	history := []domain.PerformanceRecord{
		roasRow("111", "1/8/2024", 100, 100),
		roasRow("111", "1/7/2024", 100, 400),
		roasRow("111", "1/6/2024", 100, 400),
		roasRow("111", "1/5/2024", 100, 400),
	}

	report := DetectAnomalies(history, nil, visibleFor("Jane Doe"))

	require.Len(t, report.SuddenDrops, 1)
	drop := report.SuddenDrops[0]
	assert.Equal(t, "111", drop.CID)
	assert.InDelta(t, 1.0, drop.CurrentROAS, 1e-9)
	assert.InDelta(t, 4.0, drop.BaselineROAS, 1e-9)
	assert.InDelta(t, 75.0, drop.DropPct, 1e-9)
}

func TestSuddenDropRequiresHistory(t *testing.T) {
	history := []domain.PerformanceRecord{
		roasRow("111", "1/8/2024", 100, 0),
	}

	report := DetectAnomalies(history, nil, visibleFor("Jane Doe"))

	assert.Empty(t, report.SuddenDrops)
}

func TestSuddenDropRequiresWorkingBaseline(t *testing.T) {
	// Baseline ROAS is 0.9 (≤ 1): never flagged even on a total collapse.
	history := []domain.PerformanceRecord{
		roasRow("111", "1/8/2024", 100, 0),
		roasRow("111", "1/7/2024", 100, 90),
		roasRow("111", "1/6/2024", 100, 90),
	}

	report := DetectAnomalies(history, nil, visibleFor("Jane Doe"))

	assert.Empty(t, report.SuddenDrops)
}

func TestSuddenDropBaselineUsesAtMostSevenDays(t *testing.T) {
	// Seven good days then an old terrible day that must not dilute the
	// baseline.
	history := []domain.PerformanceRecord{
		roasRow("111", "1/10/2024", 100, 100),
	}
	for day := 3; day <= 9; day++ {
		history = append(history, roasRow("111", fmt.Sprintf("1/%d/2024", day), 100, 400))
	}
	history = append(history, roasRow("111", "1/1/2024", 100, 0))

	report := DetectAnomalies(history, nil, visibleFor("Jane Doe"))

	require.Len(t, report.SuddenDrops, 1)
	assert.InDelta(t, 4.0, report.SuddenDrops[0].BaselineROAS, 1e-9)
}

func TestSuddenDropRespectsManagerScope(t *testing.T) {
	history := []domain.PerformanceRecord{
		roasRow("111", "1/8/2024", 100, 100),
		roasRow("111", "1/7/2024", 100, 400),
	}

	report := DetectAnomalies(history, nil, visibleFor("Someone Else"))

	assert.Empty(t, report.SuddenDrops)
}

func TestHiddenGemFlagged(t *testing.T) {
	aggregated := []domain.PerformanceRecord{
		func() domain.PerformanceRecord {
			r := roasRow("222", "", 100, 900) // ROAS 9 on $100 spend
			r.TargetROAS = "2x"
			return r
		}(),
	}

	report := DetectAnomalies(nil, aggregated, visibleFor("Jane Doe"))

	require.Len(t, report.HiddenGems, 1)
	gem := report.HiddenGems[0]
	assert.Equal(t, "222", gem.CID)
	assert.InDelta(t, 9.0, gem.CurrentROAS, 1e-9)
	assert.InDelta(t, 100.0, gem.Spend, 1e-9)
}

func TestHiddenGemThresholds(t *testing.T) {
	tests := []struct {
		name   string
		cost   float64
		value  float64
		target string
		want   int
	}{
		{name: "spend too high", cost: 250, value: 5000, target: "2x", want: 0},
		{name: "zero spend", cost: 0, value: 0, target: "2x", want: 0},
		{name: "roas under absolute floor", cost: 100, value: 450, target: "", want: 0},
		{name: "roas above floor with no target", cost: 100, value: 600, target: "", want: 1},
		{name: "roas under twice target", cost: 100, value: 1100, target: "6x", want: 0},
		{name: "roas above twice target", cost: 100, value: 1300, target: "6x", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := roasRow("333", "", tt.cost, tt.value)
			row.TargetROAS = tt.target

			report := DetectAnomalies(nil, []domain.PerformanceRecord{row}, visibleFor("Jane Doe"))
			assert.Len(t, report.HiddenGems, tt.want)
		})
	}
}

func TestAnomalyListsAreCapped(t *testing.T) {
	var aggregated []domain.PerformanceRecord
	for i := 0; i < 30; i++ {
		row := roasRow(fmt.Sprintf("%d", 1000+i), "", 100, 1000+float64(i))
		aggregated = append(aggregated, row)
	}

	report := DetectAnomalies(nil, aggregated, visibleFor("Jane Doe"))

	require.Len(t, report.HiddenGems, 20)
	// Ranked by ROAS descending.
	assert.Greater(t, report.HiddenGems[0].CurrentROAS, report.HiddenGems[19].CurrentROAS)
}
