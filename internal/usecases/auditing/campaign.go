package auditing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/eme-digital/ads-audit-api/pkg/utils"
)

const (
	minDailyBudget   = 10.0
	minMaxCPC        = 1.0
	minOptiScore     = 70.0
	extremeDeviceAdj = -90
)

var signedIntPattern = regexp.MustCompile(`-?\d+`)

// campaignFacts is a campaign row parsed once, shared by every rule.
type campaignFacts struct {
	budget        float64
	deviceValues  []int
	adRotation    string
	maxCPC        float64
	optiScore     float64
	campaignType  string
	displaySelect string
	disapproved   string
	activeAds     float64
	language      string

	langExpected string
	langMismatch bool
}

func campaignFactsOf(row domain.CampaignAuditRow) campaignFacts {
	f := campaignFacts{
		budget:        utils.ParseNumber(row.DailyBudget),
		adRotation:    normalize(row.AdRotation),
		maxCPC:        utils.ParseNumber(row.MaxCPC),
		optiScore:     utils.ParseNumber(row.OptimizationScore),
		campaignType:  normalize(row.CampaignType),
		displaySelect: normalize(row.DisplaySelect),
		disapproved:   strings.TrimSpace(row.DisapprovedAds),
		activeAds:     utils.ParseNumber(row.ActiveAds),
		language:      row.Language,
	}

	// Optimization scores arrive as either a fraction or a percentage.
	if f.optiScore > 0 && f.optiScore <= 1.5 {
		f.optiScore *= 100
	}

	for _, m := range signedIntPattern.FindAllString(row.DeviceAdjustment, -1) {
		if v, err := strconv.Atoi(m); err == nil {
			f.deviceValues = append(f.deviceValues, v)
		}
	}

	f.langExpected, f.langMismatch = languageMismatch(row.CampaignName, row.Language)
	return f
}

func normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// campaignRule ties a predicate to its result bucket and reason text, so
// the latest/previous bookkeeping lives in one loop instead of per rule.
type campaignRule struct {
	match  func(campaignFacts) bool
	reason func(campaignFacts) string
	bucket func(*domain.CampaignBucketCounts) *int
	list   func(*domain.CampaignAuditResult) *[]domain.FlaggedCampaign
}

var campaignRules = []campaignRule{
	{
		match:  func(f campaignFacts) bool { return f.budget > 0 && f.budget < minDailyBudget },
		reason: func(f campaignFacts) string { return fmt.Sprintf("$%s Budget", utils.FormatNumber(f.budget)) },
		bucket: func(c *domain.CampaignBucketCounts) *int { return &c.Budget },
		list:   func(r *domain.CampaignAuditResult) *[]domain.FlaggedCampaign { return &r.UnderBudget },
	},
	{
		match: func(f campaignFacts) bool {
			if len(f.deviceValues) < 3 {
				return false
			}
			for _, v := range f.deviceValues[:3] {
				if v > extremeDeviceAdj {
					return false
				}
			}
			return true
		},
		reason: func(campaignFacts) string { return "Extreme -90%+ Adjustments" },
		bucket: func(c *domain.CampaignBucketCounts) *int { return &c.Device },
		list:   func(r *domain.CampaignAuditResult) *[]domain.FlaggedCampaign { return &r.DeviceNegatives },
	},
	{
		match:  func(f campaignFacts) bool { return f.adRotation == "rotate_forever" },
		reason: func(campaignFacts) string { return "Rotation: Forever" },
		bucket: func(c *domain.CampaignBucketCounts) *int { return &c.Rotate },
		list:   func(r *domain.CampaignAuditResult) *[]domain.FlaggedCampaign { return &r.RotateForever },
	},
	{
		match:  func(f campaignFacts) bool { return f.maxCPC > 0 && f.maxCPC < minMaxCPC },
		reason: func(f campaignFacts) string { return fmt.Sprintf("$%s CPC", utils.FormatNumber(f.maxCPC)) },
		bucket: func(c *domain.CampaignBucketCounts) *int { return &c.CPC },
		list:   func(r *domain.CampaignAuditResult) *[]domain.FlaggedCampaign { return &r.LowCPC },
	},
	{
		match:  func(f campaignFacts) bool { return f.optiScore > 0 && f.optiScore < minOptiScore },
		reason: func(f campaignFacts) string { return fmt.Sprintf("%.0f%% Score", f.optiScore) },
		bucket: func(c *domain.CampaignBucketCounts) *int { return &c.Opti },
		list:   func(r *domain.CampaignAuditResult) *[]domain.FlaggedCampaign { return &r.LowOptiScore },
	},
	{
		match:  func(f campaignFacts) bool { return f.campaignType == "search" && f.displaySelect == "yes" },
		reason: func(campaignFacts) string { return "Display Select ON" },
		bucket: func(c *domain.CampaignBucketCounts) *int { return &c.Display },
		list:   func(r *domain.CampaignAuditResult) *[]domain.FlaggedCampaign { return &r.DisplaySelect },
	},
	{
		match:  func(f campaignFacts) bool { return f.disapproved != "" && f.disapproved != "0" },
		reason: func(f campaignFacts) string { return f.disapproved },
		bucket: func(c *domain.CampaignBucketCounts) *int { return &c.Disapproved },
		list:   func(r *domain.CampaignAuditResult) *[]domain.FlaggedCampaign { return &r.Disapproved },
	},
	{
		match:  func(f campaignFacts) bool { return f.campaignType == "search" && f.activeAds == 0 },
		reason: func(campaignFacts) string { return "Zero Ads" },
		bucket: func(c *domain.CampaignBucketCounts) *int { return &c.Ads },
		list:   func(r *domain.CampaignAuditResult) *[]domain.FlaggedCampaign { return &r.ZeroAds },
	},
	{
		match:  func(f campaignFacts) bool { return f.langMismatch },
		reason: func(f campaignFacts) string { return fmt.Sprintf("Camp: %s, Target: %s", f.langExpected, f.language) },
		bucket: func(c *domain.CampaignBucketCounts) *int { return &c.Lang },
		list:   func(r *domain.CampaignAuditResult) *[]domain.FlaggedCampaign { return &r.LanguageMismatch },
	},
}

// CampaignAudit runs the campaign-hygiene battery over a snapshot row set.
// Only campaigns whose status is enabled are evaluated; rows dated on the
// latest snapshot are flagged individually while rows on the previous one
// only feed the delta counters.
func CampaignAudit(rows []domain.CampaignAuditRow, managerByCID map[string]string, f domain.AuditFilter) domain.CampaignAuditResult {
	if f.Date != "" {
		filtered := make([]domain.CampaignAuditRow, 0, len(rows))
		for _, row := range rows {
			if row.Date == f.Date {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	raw := make([]string, 0, len(rows))
	for _, row := range rows {
		raw = append(raw, row.Date)
	}
	latest, previous, available := snapshotDates(raw)

	result := domain.CampaignAuditResult{
		LatestDate:     latest,
		PreviousDate:   previous,
		AvailableDates: available,
		AccountIssues:  make(map[string]int),
	}

	summaries := make(map[string]*domain.CampaignManagerSummary)
	var summaryOrder []string

	for _, row := range rows {
		cidKey, manager := resolveManager(row.CID, managerByCID)
		if domain.IsExcludedManager(manager) {
			continue
		}
		if !f.MatchesManager(manager) {
			continue
		}

		isLatest := latest != "" && row.Date == latest
		isPrev := previous != "" && row.Date == previous
		if !isLatest && !isPrev {
			continue
		}

		if normalize(row.CampaignStatus) != "enabled" {
			continue
		}

		facts := campaignFactsOf(row)

		if isLatest {
			summary, ok := summaries[manager]
			if !ok {
				summary = &domain.CampaignManagerSummary{Manager: manager}
				summaries[manager] = summary
				summaryOrder = append(summaryOrder, manager)
			}
			summary.TotalCampaigns++
			if _, ok := result.AccountIssues[cidKey]; !ok {
				result.AccountIssues[cidKey] = 0
			}

			for _, rule := range campaignRules {
				if !rule.match(facts) {
					continue
				}
				*rule.list(&result) = append(*rule.list(&result), domain.FlaggedCampaign{
					CampaignAuditRow: row,
					Manager:          manager,
					Reason:           rule.reason(facts),
				})
				*rule.bucket(&summary.CampaignBucketCounts)++
				result.AccountIssues[cidKey]++
			}
			continue
		}

		for _, rule := range campaignRules {
			if rule.match(facts) {
				*rule.bucket(&result.PrevCounts)++
			}
		}
	}

	result.ManagerSummary = sortCampaignSummaries(summaries, summaryOrder)
	return result
}

func sortCampaignSummaries(summaries map[string]*domain.CampaignManagerSummary, order []string) []domain.CampaignManagerSummary {
	out := make([]domain.CampaignManagerSummary, 0, len(order))
	for _, manager := range order {
		out = append(out, *summaries[manager])
	}
	sortByTotalDesc(out, func(s domain.CampaignManagerSummary) (int, string) {
		return s.Total(), s.Manager
	})
	return out
}
