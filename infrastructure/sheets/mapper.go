package sheets

import (
	"strings"

	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/eme-digital/ads-audit-api/internal/usecases/normalizing"
)

// headerIndex resolves columns case-insensitively, tolerating stray
// whitespace in the exported header row.
type headerIndex struct {
	columns map[string]int
	order   []string
}

func indexHeaders(header []string) headerIndex {
	idx := headerIndex{columns: make(map[string]int, len(header))}
	for i, name := range header {
		key := normalizeHeader(name)
		if key == "" {
			continue
		}
		if _, dup := idx.columns[key]; dup {
			continue
		}
		idx.columns[key] = i
		idx.order = append(idx.order, key)
	}
	return idx
}

func normalizeHeader(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// get returns the trimmed cell under the first alias present in the
// header. Aliases encode the sheets' naming drift (Month|Date|Day and the
// like); missing columns and short rows degrade to "".
func (h headerIndex) get(row []string, aliases ...string) string {
	for _, alias := range aliases {
		col, ok := h.columns[normalizeHeader(alias)]
		if !ok {
			continue
		}
		if col >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[col])
	}
	return ""
}

// getContains matches by header substring instead of exact name. The
// budget tab prefixes its columns with the report name, so exact aliases
// never hit.
func (h headerIndex) getContains(row []string, substr string) string {
	needle := normalizeHeader(substr)
	for _, key := range h.order {
		if !strings.Contains(key, needle) {
			continue
		}
		col := h.columns[key]
		if col >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[col])
	}
	return ""
}

func mapManagement(records [][]string) []domain.AccountRecord {
	if len(records) < 2 {
		return nil
	}
	h := indexHeaders(records[0])

	rows := make([]domain.AccountRecord, 0, len(records)-1)
	for _, record := range records[1:] {
		row := domain.AccountRecord{
			CID:                      h.get(record, "CID"),
			Manager:                  normalizing.Manager(h.get(record, "PM")),
			Email:                    h.get(record, "Email"),
			AccountName:              h.get(record, "Account Name", "Account"),
			MonthlyBudget:            h.get(record, "Monthly Budget"),
			WeeklyBudget:             h.get(record, "Weekly Budget"),
			ConversionSource:         h.get(record, "Conversion Source"),
			CampaignConversionAction: h.get(record, "Campaign Conversion Action"),
			TargetROAS:               h.get(record, "Target ROAS", "Target Roas"),
			Objective:                h.get(record, "Objective"),
			Strategist:               h.get(record, "Strategist"),
			ClientAccount:            h.get(record, "Client Account"),
			Team:                     h.get(record, "Team"),
			Type:                     h.get(record, "Type"),
			Country:                  h.get(record, "Country"),
			Status:                   h.get(record, "Status"),
		}
		if row.CID == "" || row.AccountName == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func mapPerformance(records [][]string) []domain.PerformanceRecord {
	if len(records) < 2 {
		return nil
	}
	h := indexHeaders(records[0])

	rows := make([]domain.PerformanceRecord, 0, len(records)-1)
	for _, record := range records[1:] {
		row := domain.PerformanceRecord{
			AccountRecord: domain.AccountRecord{
				CID:           h.get(record, "CID"),
				Manager:       normalizing.Manager(h.get(record, "PM")),
				AccountName:   h.get(record, "Account Name", "Account"),
				MonthlyBudget: h.get(record, "Monthly Budget"),
				TargetROAS:    h.get(record, "Target ROAS", "Target Roas"),
				Objective:     h.get(record, "Objective"),
				Strategist:    h.get(record, "Strategist"),
				ClientAccount: h.get(record, "Client Account"),
				Team:          h.get(record, "Team"),
				Type:          h.get(record, "Type"),
				Status:        h.get(record, "Status"),
			},
			Period:          h.get(record, "Month", "Date", "Day"),
			Impressions:     h.get(record, "Impressions", "Impr."),
			Clicks:          h.get(record, "Clicks"),
			Cost:            h.get(record, "Cost"),
			Conversions:     h.get(record, "Conversions"),
			ConversionValue: h.get(record, "Conversion Value", "Conv. Value"),
		}
		if row.CID == "" || row.AccountName == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func mapBudget(records [][]string) []domain.BudgetRecord {
	if len(records) < 2 {
		return nil
	}
	h := indexHeaders(records[0])

	rows := make([]domain.BudgetRecord, 0, len(records)-1)
	for _, record := range records[1:] {
		row := domain.BudgetRecord{
			CurrentDate:  h.getContains(record, "Current Date"),
			CID:          h.getContains(record, "CID"),
			AccountName:  h.getContains(record, "Account"),
			BudgetName:   h.getContains(record, "Budget Name"),
			AmountSpent:  h.getContains(record, "Amount Spent"),
			BudgetAmount: h.getContains(record, "Budget Amount"),
			Currency:     h.getContains(record, "Currency"),
			PercentSpent: h.getContains(record, "Percent"),
			StartDate:    h.getContains(record, "Start Date"),
			EndDate:      h.getContains(record, "End Date"),
			Manager:      normalizing.Manager(h.getContains(record, "PM")),
			Email:        h.getContains(record, "Email"),
		}
		if row.CID == "" || row.AccountName == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func mapManagerStatus(records [][]string) []domain.ManagerStatus {
	if len(records) < 2 {
		return nil
	}
	h := indexHeaders(records[0])

	rows := make([]domain.ManagerStatus, 0, len(records)-1)
	for _, record := range records[1:] {
		row := domain.ManagerStatus{
			Manager: normalizing.Manager(h.get(record, "PM", "Team", "Name")),
			Status:  h.get(record, "Status"),
		}
		if row.Manager == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func mapAudienceAudit(records [][]string) []domain.AudienceAuditRow {
	if len(records) < 2 {
		return nil
	}
	h := indexHeaders(records[0])

	rows := make([]domain.AudienceAuditRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := domain.AudienceAuditRow{
			Date:             h.get(record, "Date"),
			CID:              h.get(record, "CID"),
			AccountName:      h.get(record, "Account Name", "Account"),
			CampaignName:     h.get(record, "Campaign Name", "Campaign"),
			Audience:         h.get(record, "Audience"),
			AudienceSetting:  h.get(record, "Audience Setting", "Setting"),
			AudienceSource:   h.get(record, "Audience Source", "Source"),
			SearchSize:       h.get(record, "Search Size"),
			DisplaySize:      h.get(record, "Display Size"),
			MembershipStatus: h.get(record, "Membership Status", "Membership"),
		}
		if row.CID == "" || row.AccountName == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func mapCampaignAudit(records [][]string) []domain.CampaignAuditRow {
	if len(records) < 2 {
		return nil
	}
	h := indexHeaders(records[0])

	rows := make([]domain.CampaignAuditRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := domain.CampaignAuditRow{
			Date:              h.get(record, "Date"),
			CID:               h.get(record, "CID"),
			AccountName:       h.get(record, "Account Name", "Account"),
			CampaignName:      h.get(record, "Campaign Name", "Campaign"),
			CampaignStatus:    h.get(record, "Campaign Status", "Status"),
			DailyBudget:       h.get(record, "Daily Budget", "Budget"),
			DeviceAdjustment:  h.get(record, "Device Adjustment", "Device Adjustments"),
			AdRotation:        h.get(record, "Ad Rotation"),
			MaxCPC:            h.get(record, "Max CPC", "Max. CPC"),
			OptimizationScore: h.get(record, "Optimization Score", "Opti Score"),
			CampaignType:      h.get(record, "Campaign Type", "Type"),
			DisplaySelect:     h.get(record, "Display Select"),
			DisapprovedAds:    h.get(record, "Disapproved Ads"),
			ActiveAds:         h.get(record, "Enabled Search Ads", "Active Ads"),
			Language:          h.get(record, "Languages", "Language"),
		}
		if row.CID == "" || row.AccountName == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
