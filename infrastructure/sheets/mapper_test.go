package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapManagement(t *testing.T) {
	records := [][]string{
		{"CID", "PM", "Account Name", "Monthly Budget", "Target ROAS", "Objective", "Team"},
		{" 123-456-7890 ", "Jane Doe Strategic Lead", "Acme", "$1,000", "4x", "ROAS", "Alpha"},
		{"", "Jane Doe", "Orphan", "", "", "", ""},
		{"222-222-2222", "John Roe", "", "", "", "", ""},
	}

	rows := mapManagement(records)

	require.Len(t, rows, 1)
	assert.Equal(t, "123-456-7890", rows[0].CID)
	// The Strategic Lead title is stripped at ingest.
	assert.Equal(t, "Jane Doe", rows[0].Manager)
	assert.Equal(t, "$1,000", rows[0].MonthlyBudget)
	assert.Equal(t, "ROAS", rows[0].Objective)
}

func TestMapManagementHeaderCaseInsensitive(t *testing.T) {
	records := [][]string{
		{" cid ", "pm", "ACCOUNT NAME"},
		{"123", "Jane Doe", "Acme"},
	}

	rows := mapManagement(records)

	require.Len(t, rows, 1)
	assert.Equal(t, "Acme", rows[0].AccountName)
}

func TestMapPerformanceAliasChain(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "month", header: "Month"},
		{name: "date", header: "Date"},
		{name: "day", header: "Day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := [][]string{
				{tt.header, "CID", "Account Name", "PM", "Cost"},
				{"1/15/2024", "123", "Acme", "Jane Doe", "$500"},
			}

			rows := mapPerformance(records)

			require.Len(t, rows, 1)
			assert.Equal(t, "1/15/2024", rows[0].Period)
			assert.Equal(t, "$500", rows[0].Cost)
		})
	}
}

func TestMapPerformanceRaggedRow(t *testing.T) {
	records := [][]string{
		{"Month", "CID", "Account Name", "Cost", "Conversion Value"},
		{"1/15/2024", "123", "Acme"},
	}

	rows := mapPerformance(records)

	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Cost)
	assert.Empty(t, rows[0].ConversionValue)
}

func TestMapBudgetContainsMatching(t *testing.T) {
	// The budget tab prefixes column names with the report name.
	records := [][]string{
		{"Report CID", "Report Account", "Shared Budget Name", "Budget Start Date", "Budget PM", "% Percent Spent"},
		{"123-456-7890", "Acme", "Search Budget", "1/5/2024", "Jane Doe", "104%"},
	}

	rows := mapBudget(records)

	require.Len(t, rows, 1)
	assert.Equal(t, "123-456-7890", rows[0].CID)
	assert.Equal(t, "Search Budget", rows[0].BudgetName)
	assert.Equal(t, "1/5/2024", rows[0].StartDate)
	assert.Equal(t, "Jane Doe", rows[0].Manager)
	assert.Equal(t, "104%", rows[0].PercentSpent)
}

func TestMapManagerStatusAliasChain(t *testing.T) {
	records := [][]string{
		{"Name", "Status"},
		{"Jane Doe", "Active"},
		{"", "Active"},
	}

	rows := mapManagerStatus(records)

	require.Len(t, rows, 1)
	assert.Equal(t, "Jane Doe", rows[0].Manager)
	assert.Equal(t, "Active", rows[0].Status)
}

func TestMapCampaignAuditActiveAdsAlias(t *testing.T) {
	tests := []string{"Enabled Search Ads", "Active Ads"}

	for _, header := range tests {
		t.Run(header, func(t *testing.T) {
			records := [][]string{
				{"Date", "CID", "Account Name", "Campaign Name", header, "Languages"},
				{"1/15/2024", "123", "Acme", "Brand", "3", "English"},
			}

			rows := mapCampaignAudit(records)

			require.Len(t, rows, 1)
			assert.Equal(t, "3", rows[0].ActiveAds)
			assert.Equal(t, "English", rows[0].Language)
		})
	}
}

func TestMapAudienceAuditDropsIncompleteRows(t *testing.T) {
	records := [][]string{
		{"Date", "CID", "Account Name", "Campaign Name", "Audience", "Search Size"},
		{"1/15/2024", "123", "Acme", "Brand", "All visitors", "0"},
		{"1/15/2024", "", "Acme", "Brand", "All visitors", "0"},
		{"1/15/2024", "456", "", "Brand", "All visitors", "0"},
	}

	rows := mapAudienceAudit(records)

	require.Len(t, rows, 1)
	assert.Equal(t, "123", rows[0].CID)
}

func TestMapEmptySheet(t *testing.T) {
	assert.Nil(t, mapManagement([][]string{{"CID", "Account Name"}}))
	assert.Nil(t, mapManagement(nil))
}
