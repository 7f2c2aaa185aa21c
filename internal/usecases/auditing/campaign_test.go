package auditing

import (
	"testing"

	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func campaignRow(cid, date string) domain.CampaignAuditRow {
	return domain.CampaignAuditRow{
		Date:           date,
		CID:            cid,
		AccountName:    "Acme",
		CampaignName:   "Brand Search",
		CampaignStatus: "Enabled",
		DailyBudget:    "100",
		MaxCPC:         "2.50",
		CampaignType:   "Search",
		ActiveAds:      "3",
	}
}

func managerIndex() map[string]string {
	return map[string]string{
		"1234567890": "Jane Doe",
		"2222222222": "John Roe",
	}
}

func TestCampaignAuditUnderBudget(t *testing.T) {
	row := campaignRow("123-456-7890", "1/15/2024")
	row.DailyBudget = "5"

	result := CampaignAudit([]domain.CampaignAuditRow{row}, managerIndex(), domain.AuditFilter{})

	require.Len(t, result.UnderBudget, 1)
	assert.Equal(t, "$5 Budget", result.UnderBudget[0].Reason)
	assert.Equal(t, "Jane Doe", result.UnderBudget[0].Manager)
	assert.Equal(t, 1, result.AccountIssues["1234567890"])
}

func TestCampaignAuditPausedRowIsIgnored(t *testing.T) {
	row := campaignRow("123-456-7890", "1/15/2024")
	row.DailyBudget = "5"
	row.CampaignStatus = "Paused"

	result := CampaignAudit([]domain.CampaignAuditRow{row}, managerIndex(), domain.AuditFilter{})

	assert.Empty(t, result.UnderBudget)
	assert.Empty(t, result.ManagerSummary)
	assert.Empty(t, result.AccountIssues)
}

func TestCampaignAuditRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CampaignAuditRow)
		check  func(*testing.T, domain.CampaignAuditResult)
	}{
		{
			name:   "extreme device adjustments",
			mutate: func(r *domain.CampaignAuditRow) { r.DeviceAdjustment = "-90%, -95%, -100%" },
			check: func(t *testing.T, res domain.CampaignAuditResult) {
				require.Len(t, res.DeviceNegatives, 1)
				assert.Equal(t, "Extreme -90%+ Adjustments", res.DeviceNegatives[0].Reason)
			},
		},
		{
			name:   "two extreme values are not enough",
			mutate: func(r *domain.CampaignAuditRow) { r.DeviceAdjustment = "-95%, -100%" },
			check: func(t *testing.T, res domain.CampaignAuditResult) {
				assert.Empty(t, res.DeviceNegatives)
			},
		},
		{
			name:   "one mild adjustment clears the rule",
			mutate: func(r *domain.CampaignAuditRow) { r.DeviceAdjustment = "-95%, -20%, -100%" },
			check: func(t *testing.T, res domain.CampaignAuditResult) {
				assert.Empty(t, res.DeviceNegatives)
			},
		},
		{
			name:   "rotate forever",
			mutate: func(r *domain.CampaignAuditRow) { r.AdRotation = "ROTATE_FOREVER" },
			check: func(t *testing.T, res domain.CampaignAuditResult) {
				require.Len(t, res.RotateForever, 1)
				assert.Equal(t, "Rotation: Forever", res.RotateForever[0].Reason)
			},
		},
		{
			name:   "low max cpc",
			mutate: func(r *domain.CampaignAuditRow) { r.MaxCPC = "$0.50" },
			check: func(t *testing.T, res domain.CampaignAuditResult) {
				require.Len(t, res.LowCPC, 1)
				assert.Equal(t, "$0.5 CPC", res.LowCPC[0].Reason)
			},
		},
		{
			name:   "low optimization score on percent scale",
			mutate: func(r *domain.CampaignAuditRow) { r.OptimizationScore = "65%" },
			check: func(t *testing.T, res domain.CampaignAuditResult) {
				require.Len(t, res.LowOptiScore, 1)
				assert.Equal(t, "65% Score", res.LowOptiScore[0].Reason)
			},
		},
		{
			name:   "fractional optimization score is rescaled",
			mutate: func(r *domain.CampaignAuditRow) { r.OptimizationScore = "0.65" },
			check: func(t *testing.T, res domain.CampaignAuditResult) {
				require.Len(t, res.LowOptiScore, 1)
				assert.Equal(t, "65% Score", res.LowOptiScore[0].Reason)
			},
		},
		{
			name:   "healthy optimization score passes",
			mutate: func(r *domain.CampaignAuditRow) { r.OptimizationScore = "0.85" },
			check: func(t *testing.T, res domain.CampaignAuditResult) {
				assert.Empty(t, res.LowOptiScore)
			},
		},
		{
			name:   "display select on search campaign",
			mutate: func(r *domain.CampaignAuditRow) { r.DisplaySelect = "Yes" },
			check: func(t *testing.T, res domain.CampaignAuditResult) {
				require.Len(t, res.DisplaySelect, 1)
				assert.Equal(t, "Display Select ON", res.DisplaySelect[0].Reason)
			},
		},
		{
			name:   "disapproved ads carry the raw value",
			mutate: func(r *domain.CampaignAuditRow) { r.DisapprovedAds = "3 limited" },
			check: func(t *testing.T, res domain.CampaignAuditResult) {
				require.Len(t, res.Disapproved, 1)
				assert.Equal(t, "3 limited", res.Disapproved[0].Reason)
			},
		},
		{
			name:   "zero disapproved is clean",
			mutate: func(r *domain.CampaignAuditRow) { r.DisapprovedAds = "0" },
			check: func(t *testing.T, res domain.CampaignAuditResult) {
				assert.Empty(t, res.Disapproved)
			},
		},
		{
			name:   "zero active ads on search campaign",
			mutate: func(r *domain.CampaignAuditRow) { r.ActiveAds = "0" },
			check: func(t *testing.T, res domain.CampaignAuditResult) {
				require.Len(t, res.ZeroAds, 1)
				assert.Equal(t, "Zero Ads", res.ZeroAds[0].Reason)
			},
		},
		{
			name: "language mismatch from campaign name tag",
			mutate: func(r *domain.CampaignAuditRow) {
				r.CampaignName = "Acme L-DE Brand"
				r.Language = "English"
			},
			check: func(t *testing.T, res domain.CampaignAuditResult) {
				require.Len(t, res.LanguageMismatch, 1)
				assert.Equal(t, "Camp: German, Target: English", res.LanguageMismatch[0].Reason)
			},
		},
		{
			name: "language tag matching target passes",
			mutate: func(r *domain.CampaignAuditRow) {
				r.CampaignName = "Acme L_EN Brand"
				r.Language = "English; Spanish"
			},
			check: func(t *testing.T, res domain.CampaignAuditResult) {
				assert.Empty(t, res.LanguageMismatch)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := campaignRow("123-456-7890", "1/15/2024")
			tt.mutate(&row)
			tt.check(t, CampaignAudit([]domain.CampaignAuditRow{row}, managerIndex(), domain.AuditFilter{}))
		})
	}
}

func TestCampaignAuditDateBucketing(t *testing.T) {
	latest := campaignRow("123-456-7890", "1/15/2024")
	latest.DailyBudget = "5"
	prev := campaignRow("123-456-7890", "1/8/2024")
	prev.DailyBudget = "3"
	stale := campaignRow("123-456-7890", "1/1/2024")
	stale.DailyBudget = "1"

	result := CampaignAudit([]domain.CampaignAuditRow{latest, prev, stale}, managerIndex(), domain.AuditFilter{})

	assert.Equal(t, "1/15/2024", result.LatestDate)
	assert.Equal(t, "1/8/2024", result.PreviousDate)
	assert.Equal(t, []string{"1/15/2024", "1/8/2024", "1/1/2024"}, result.AvailableDates)

	// Only the latest row is retained; the previous row only counts.
	require.Len(t, result.UnderBudget, 1)
	assert.Equal(t, "$5 Budget", result.UnderBudget[0].Reason)
	assert.Equal(t, 1, result.PrevCounts.Budget)
}

func TestCampaignAuditUnparseableDateNeverBecomesLatest(t *testing.T) {
	good := campaignRow("123-456-7890", "1/15/2024")
	bad := campaignRow("123-456-7890", "sometime")
	bad.DailyBudget = "5"

	result := CampaignAudit([]domain.CampaignAuditRow{good, bad}, managerIndex(), domain.AuditFilter{})

	assert.Equal(t, "1/15/2024", result.LatestDate)
	assert.Empty(t, result.UnderBudget)
}

func TestCampaignAuditSelectedDate(t *testing.T) {
	jan := campaignRow("123-456-7890", "1/15/2024")
	jan.DailyBudget = "5"
	feb := campaignRow("123-456-7890", "2/15/2024")

	result := CampaignAudit([]domain.CampaignAuditRow{jan, feb}, managerIndex(), domain.AuditFilter{Date: "1/15/2024"})

	assert.Equal(t, "1/15/2024", result.LatestDate)
	assert.Empty(t, result.PreviousDate)
	require.Len(t, result.UnderBudget, 1)
}

func TestCampaignAuditUnknownManagerStillCounts(t *testing.T) {
	row := campaignRow("999-999-9999", "1/15/2024")
	row.DailyBudget = "5"

	result := CampaignAudit([]domain.CampaignAuditRow{row}, managerIndex(), domain.AuditFilter{})

	require.Len(t, result.UnderBudget, 1)
	assert.Equal(t, domain.UnknownManager, result.UnderBudget[0].Manager)
}

func TestCampaignAuditExcludedManagerIsDropped(t *testing.T) {
	row := campaignRow("123-456-7890", "1/15/2024")
	row.DailyBudget = "5"

	index := map[string]string{"1234567890": "Paused/Ended"}
	result := CampaignAudit([]domain.CampaignAuditRow{row}, index, domain.AuditFilter{})

	assert.Empty(t, result.UnderBudget)
	assert.Empty(t, result.AccountIssues)
}

func TestCampaignAuditManagerSummary(t *testing.T) {
	janeClean := campaignRow("123-456-7890", "1/15/2024")
	janeFlag := campaignRow("123-456-7890", "1/15/2024")
	janeFlag.DailyBudget = "5"
	johnFlag1 := campaignRow("222-222-2222", "1/15/2024")
	johnFlag1.DailyBudget = "2"
	johnFlag2 := campaignRow("222-222-2222", "1/15/2024")
	johnFlag2.ActiveAds = "0"

	result := CampaignAudit(
		[]domain.CampaignAuditRow{janeClean, janeFlag, johnFlag1, johnFlag2},
		managerIndex(), domain.AuditFilter{})

	require.Len(t, result.ManagerSummary, 2)
	assert.Equal(t, "John Roe", result.ManagerSummary[0].Manager)
	assert.Equal(t, 2, result.ManagerSummary[0].Total())
	assert.Equal(t, 2, result.ManagerSummary[0].TotalCampaigns)
	assert.Equal(t, "Jane Doe", result.ManagerSummary[1].Manager)
	assert.Equal(t, 1, result.ManagerSummary[1].Total())
	assert.Equal(t, 2, result.ManagerSummary[1].TotalCampaigns)
}

func TestCampaignAuditManagerFilter(t *testing.T) {
	jane := campaignRow("123-456-7890", "1/15/2024")
	jane.DailyBudget = "5"
	john := campaignRow("222-222-2222", "1/15/2024")
	john.DailyBudget = "5"

	result := CampaignAudit(
		[]domain.CampaignAuditRow{jane, john},
		managerIndex(),
		domain.AuditFilter{Managers: []string{"Jane Doe"}})

	require.Len(t, result.UnderBudget, 1)
	assert.Equal(t, "Jane Doe", result.UnderBudget[0].Manager)
}

func TestCampaignAuditEmptyInput(t *testing.T) {
	result := CampaignAudit(nil, managerIndex(), domain.AuditFilter{})

	assert.Empty(t, result.LatestDate)
	assert.Empty(t, result.AvailableDates)
	assert.Empty(t, result.ManagerSummary)
	assert.Empty(t, result.AccountIssues)
}
