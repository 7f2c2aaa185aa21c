package auditing

import (
	"regexp"
	"strings"

	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/eme-digital/ads-audit-api/pkg/utils"
)

// noAudienceSentinel is the literal the export writes when a campaign has
// no audience attached at all.
const noAudienceSentinel = "no audience is added"

// excludedCampaignKeywords identify automated campaign types (PMax, Demand
// Gen and the internal naming codes for them) that are not subject to
// manual audience hygiene.
var excludedCampaignKeywords = []string{
	"PLBPMTG", "PLDPM", "DLBPM", "HLDPM", "PERFORMANCEMAX",
	"DEMANDGEN", "PMAX", "PLBPM", "HLBPM",
}

// remarketingPattern matches the naming codes that mark a campaign as
// remarketing (RLSA-style).
var remarketingPattern = regexp.MustCompile(`(?i)(RLSA|PLBRL|HLBRL|DLGRL|PLDPM|PLBPM|HLBPM|HLDRM|PLDRM|HLGRL|DLDRM|DRM|DLBRL|PLGRL)`)

type audienceFacts struct {
	searchSize     float64
	audience       string
	setting        string
	membership     string
	hasRemarketing bool
}

func audienceFactsOf(row domain.AudienceAuditRow) audienceFacts {
	return audienceFacts{
		searchSize:     utils.ParseNumber(row.SearchSize),
		audience:       row.Audience,
		setting:        row.AudienceSetting,
		membership:     row.MembershipStatus,
		hasRemarketing: remarketingPattern.MatchString(row.CampaignName),
	}
}

func isNoAudience(audience string) bool {
	return strings.ToLower(strings.TrimSpace(audience)) == noAudienceSentinel
}

type audienceRule struct {
	match  func(audienceFacts) bool
	bucket func(*domain.AudienceBucketCounts) *int
	list   func(*domain.AudienceAuditResult) *[]domain.FlaggedAudience
}

var audienceRules = []audienceRule{
	{
		// An attached audience whose search network size collapsed to
		// zero. The no-audience sentinel is a different problem, caught
		// by its own rule below.
		match: func(f audienceFacts) bool {
			return f.searchSize == 0 && f.audience != "" && !isNoAudience(f.audience)
		},
		bucket: func(c *domain.AudienceBucketCounts) *int { return &c.Zero },
		list:   func(r *domain.AudienceAuditResult) *[]domain.FlaggedAudience { return &r.SearchSizeZero },
	},
	{
		match: func(f audienceFacts) bool {
			return !f.hasRemarketing && f.setting == "Targeting"
		},
		bucket: func(c *domain.AudienceBucketCounts) *int { return &c.Targeting },
		list: func(r *domain.AudienceAuditResult) *[]domain.FlaggedAudience {
			return &r.TargetingWithoutRemarketing
		},
	},
	{
		match: func(f audienceFacts) bool {
			return f.hasRemarketing && f.setting == "Observation"
		},
		bucket: func(c *domain.AudienceBucketCounts) *int { return &c.Observation },
		list:   func(r *domain.AudienceAuditResult) *[]domain.FlaggedAudience { return &r.ObservationWithRLSA },
	},
	{
		match: func(f audienceFacts) bool {
			return f.audience != "" && isNoAudience(f.audience)
		},
		bucket: func(c *domain.AudienceBucketCounts) *int { return &c.NoAudience },
		list:   func(r *domain.AudienceAuditResult) *[]domain.FlaggedAudience { return &r.NoAudienceAdded },
	},
	{
		match: func(f audienceFacts) bool {
			return f.membership == "CLOSED" && f.audience != ""
		},
		bucket: func(c *domain.AudienceBucketCounts) *int { return &c.Closed },
		list:   func(r *domain.AudienceAuditResult) *[]domain.FlaggedAudience { return &r.ClosedMembership },
	},
}

// AudienceAudit runs the audience-hygiene battery over a snapshot row set.
// Unlike campaigns there is no status gate; automated campaign types are
// excluded by name instead.
func AudienceAudit(rows []domain.AudienceAuditRow, managerByCID map[string]string, f domain.AuditFilter) domain.AudienceAuditResult {
	if f.Date != "" {
		filtered := make([]domain.AudienceAuditRow, 0, len(rows))
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

	result := domain.AudienceAuditResult{
		LatestDate:     latest,
		PreviousDate:   previous,
		AvailableDates: available,
		AccountIssues:  make(map[string]int),
	}

	summaries := make(map[string]*domain.AudienceManagerSummary)
	var summaryOrder []string

	for _, row := range rows {
		cidKey, manager := resolveManager(row.CID, managerByCID)
		if domain.IsExcludedManager(manager) {
			continue
		}
		if !f.MatchesManager(manager) {
			continue
		}

		upper := strings.ToUpper(row.CampaignName)
		excluded := false
		for _, kw := range excludedCampaignKeywords {
			if strings.Contains(upper, kw) {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}

		isLatest := latest != "" && row.Date == latest
		isPrev := previous != "" && row.Date == previous
		if !isLatest && !isPrev {
			continue
		}

		facts := audienceFactsOf(row)

		if isLatest {
			summary, ok := summaries[manager]
			if !ok {
				summary = &domain.AudienceManagerSummary{Manager: manager}
				summaries[manager] = summary
				summaryOrder = append(summaryOrder, manager)
			}
			if _, ok := result.AccountIssues[cidKey]; !ok {
				result.AccountIssues[cidKey] = 0
			}

			for _, rule := range audienceRules {
				if !rule.match(facts) {
					continue
				}
				*rule.list(&result) = append(*rule.list(&result), domain.FlaggedAudience{
					AudienceAuditRow: row,
					Manager:          manager,
				})
				*rule.bucket(&summary.AudienceBucketCounts)++
				result.AccountIssues[cidKey]++
			}
			continue
		}

		for _, rule := range audienceRules {
			if rule.match(facts) {
				*rule.bucket(&result.PrevCounts)++
			}
		}
	}

	out := make([]domain.AudienceManagerSummary, 0, len(summaryOrder))
	for _, manager := range summaryOrder {
		out = append(out, *summaries[manager])
	}
	sortByTotalDesc(out, func(s domain.AudienceManagerSummary) (int, string) {
		return s.Total(), s.Manager
	})
	result.ManagerSummary = out

	return result
}
