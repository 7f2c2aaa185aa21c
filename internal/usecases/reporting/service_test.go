package reporting

import (
	"testing"
	"time"

	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func account(cid, name, manager, team, target string) domain.AccountRecord {
	return domain.AccountRecord{
		CID:         cid,
		AccountName: name,
		Manager:     manager,
		Team:        team,
		TargetROAS:  target,
		Objective:   domain.ObjectiveROAS,
	}
}

func monthlyRow(period, cid, name, manager, team, target, cost, value string) domain.PerformanceRecord {
	return domain.PerformanceRecord{
		AccountRecord:   account(cid, name, manager, team, target),
		Period:          period,
		Cost:            cost,
		ConversionValue: value,
	}
}

func testDataset() Dataset {
	return Dataset{
		Management: []domain.AccountRecord{
			account("123-456-7890", "Acme", "Jane Doe", "Alpha", "4x"),
			account("222-222-2222", "Globex", "John Roe", "Beta", "3x"),
		},
		Monthly: []domain.PerformanceRecord{
			// January: Acme on track, Globex critical.
			monthlyRow("1/1/2024", "123-456-7890", "Acme", "Jane Doe", "Alpha", "4x", "$100", "$500"),
			monthlyRow("1/1/2024", "222-222-2222", "Globex", "John Roe", "Beta", "3x", "$100", "$100"),
			// February: both on track.
			monthlyRow("2/1/2024", "123-456-7890", "Acme", "Jane Doe", "Alpha", "4x", "$100", "$450"),
			monthlyRow("2/1/2024", "222-222-2222", "Globex", "John Roe", "Beta", "3x", "$100", "$400"),
		},
		Daily: []domain.PerformanceRecord{
			monthlyRow("2/10/2024", "123-456-7890", "Acme", "Jane Doe", "Alpha", "4x", "$50", "$250"),
			monthlyRow("2/11/2024", "123-456-7890", "Acme", "Jane Doe", "Alpha", "4x", "$50", "$150"),
		},
		ManagerStatus: []domain.ManagerStatus{
			{Manager: "Jane Doe", Status: "Active"},
		},
		Budget: []domain.BudgetRecord{
			{CID: "123-456-7890", AccountName: "Acme", Manager: "Jane Doe", StartDate: "1/5/2024"},
			{CID: "123-456-7890", AccountName: "Acme", Manager: "Jane Doe", StartDate: "2/5/2024"},
		},
		CampaignAudit: []domain.CampaignAuditRow{
			{
				Date:           "2/15/2024",
				CID:            "123-456-7890",
				AccountName:    "Acme",
				CampaignName:   "Brand",
				CampaignStatus: "Enabled",
				DailyBudget:    "$5",
			},
		},
	}
}

func newTestService(d Dataset) *Service {
	store := NewStore()
	store.Swap(d)
	return NewService(store)
}

func TestStoreSwapBumpsVersion(t *testing.T) {
	store := NewStore()

	assert.EqualValues(t, 1, store.Swap(Dataset{}))
	assert.EqualValues(t, 2, store.Swap(Dataset{}))
	assert.EqualValues(t, 2, store.Version())
	assert.False(t, store.Current().LoadedAt.IsZero())
}

func TestDatasetEmpty(t *testing.T) {
	assert.True(t, Dataset{}.Empty())
	assert.False(t, testDataset().Empty())
}

func TestManagementFilterAndFacets(t *testing.T) {
	svc := newTestService(testDataset())

	payload := svc.Management(domain.RecordFilter{Managers: []string{"Jane Doe"}})

	require.Len(t, payload.Rows, 1)
	assert.Equal(t, "Acme", payload.Rows[0].AccountName)
	// Facets always cover the full set, not the filtered rows.
	assert.Equal(t, []string{"Jane Doe", "John Roe"}, payload.Facets.Managers)
	assert.Equal(t, []string{"Alpha", "Beta"}, payload.Facets.Teams)
}

func TestMonthlyKpiPayload(t *testing.T) {
	svc := newTestService(testDataset())

	payload := svc.MonthlyKpi(domain.RecordFilter{Months: []string{"February 2024"}})

	assert.Equal(t, []string{"January 2024", "February 2024"}, payload.MonthOptions)
	require.Len(t, payload.Rows, 2)
	assert.Equal(t, domain.StatusOnTrack, payload.Rows[0].Status)
	assert.Equal(t, 2, payload.Summary.OnTrack)
	assert.Zero(t, payload.Summary.Critical)

	require.Len(t, payload.ManagerSummary, 2)
	require.Len(t, payload.TeamSummary, 2)
	assert.Len(t, payload.Trend, 2)

	// The previous period is January, where Globex was critical.
	assert.Equal(t, []string{"January 2024"}, payload.PrevPeriods)
	assert.Equal(t, 1, payload.PrevSummary.Critical)
}

func TestMonthlyKpiDefaultsToLatestMonth(t *testing.T) {
	svc := newTestService(testDataset())

	payload := svc.MonthlyKpi(domain.RecordFilter{})

	// No month selected: only February, the latest month, is visible.
	require.Len(t, payload.Rows, 2)
	for _, row := range payload.Rows {
		assert.Equal(t, "2/1/2024", row.Period)
	}
	assert.Equal(t, 2, payload.Summary.Total)
	assert.Equal(t, []string{"January 2024"}, payload.PrevPeriods)
}

func TestDailyKpiAggregatesAndFilters(t *testing.T) {
	svc := newTestService(testDataset())

	payload := svc.DailyKpi(domain.RecordFilter{})

	// Both daily rows collapse into one per-account summary: $100 cost,
	// $400 value, ROAS 4 against a 4x target.
	require.Len(t, payload.Rows, 1)
	assert.Equal(t, domain.StatusOnTrack, payload.Rows[0].Status)
	assert.InDelta(t, 4.0, payload.Rows[0].ActualROAS, 0.001)
	assert.Equal(t, 1, payload.Summary.Total)
}

func TestDailyKpiDateRange(t *testing.T) {
	svc := newTestService(testDataset())

	start := time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC)
	payload := svc.DailyKpi(domain.RecordFilter{StartDate: &start})

	require.Len(t, payload.Rows, 1)
	assert.InDelta(t, 3.0, payload.Rows[0].ActualROAS, 0.001)
}

func TestCampaignAuditJoinsManager(t *testing.T) {
	svc := newTestService(testDataset())

	result := svc.CampaignAudit(domain.AuditFilter{})

	assert.Equal(t, "2/15/2024", result.LatestDate)
	require.Len(t, result.UnderBudget, 1)
	assert.Equal(t, "Jane Doe", result.UnderBudget[0].Manager)
}

func TestAuditMemoInvalidatesOnSwap(t *testing.T) {
	store := NewStore()
	store.Swap(testDataset())
	svc := NewService(store)

	first := svc.CampaignAudit(domain.AuditFilter{})
	again := svc.CampaignAudit(domain.AuditFilter{})
	assert.Equal(t, first, again)

	d := testDataset()
	d.CampaignAudit = nil
	store.Swap(d)

	refreshed := svc.CampaignAudit(domain.AuditFilter{})
	assert.Empty(t, refreshed.UnderBudget)
	assert.Empty(t, refreshed.LatestDate)
}

func TestPortfolioPayload(t *testing.T) {
	svc := newTestService(testDataset())

	payload := svc.Portfolio(domain.ScoreFilter{})

	// Default scope is the latest month; both managers have a single
	// on-track ROAS account in February.
	require.Len(t, payload.Scores, 2)
	assert.Len(t, payload.FleetTrend, 1)
	assert.Equal(t, []string{"January 2024", "February 2024"}, payload.MonthOptions)
}

func TestBudgetHeatmapAndSummary(t *testing.T) {
	svc := newTestService(testDataset())

	heatmap := svc.BudgetHeatmap(domain.HeatmapFilter{})
	require.Contains(t, heatmap.Heatmap.Cells, "Jane Doe")

	summary := svc.BudgetSummary()
	require.Len(t, summary.Rows, 1)
	assert.Equal(t, 2, summary.Rows[0].Exhaustions)
	assert.Equal(t, 1, summary.Rows[0].DistinctAccounts)
}
