// Package scoring ranks managers by a weighted composite of portfolio
// performance health and configuration-audit hygiene.
package scoring

import (
	"math"
	"sort"

	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/eme-digital/ads-audit-api/internal/usecases/kpi"
	"github.com/eme-digital/ads-audit-api/internal/usecases/normalizing"
	"github.com/eme-digital/ads-audit-api/pkg/utils"
)

const (
	healthWeight = 0.7
	auditWeight  = 0.3
	issuePenalty = 8.0

	workloadAccountWeight = 0.6
	workloadCostWeight    = 0.4
	workloadCostUnit      = 5000.0
)

// selectedMonths resolves the scoring period: the explicit selection, or
// the latest month present in the data, sorted chronologically.
func selectedMonths(f domain.ScoreFilter, monthOptions []string) []string {
	if len(f.Months) > 0 {
		months := make([]string, 0, len(f.Months))
		for _, opt := range monthOptions {
			if matchesAny(f.Months, opt) {
				months = append(months, opt)
			}
		}
		return months
	}
	if len(monthOptions) == 0 {
		return nil
	}
	return monthOptions[len(monthOptions)-1:]
}

func matchesAny(selection []string, value string) bool {
	for _, s := range selection {
		if s == value {
			return true
		}
	}
	return false
}

func monthLabelOf(r domain.PerformanceRecord) string {
	t, ok := utils.ParseSnapshotDate(r.Period)
	if !ok {
		return ""
	}
	return utils.MonthLabel(t)
}

// inScope applies the shared scoring row gate: ROAS objective, selected
// months, team/strategist filters, no excluded managers.
func inScope(r domain.PerformanceRecord, months []string, f domain.ScoreFilter) bool {
	if r.Objective != domain.ObjectiveROAS {
		return false
	}
	if domain.IsExcludedManager(r.Manager) {
		return false
	}
	if !f.MatchesRecord(r) {
		return false
	}
	return matchesAny(months, monthLabelOf(r))
}

// rawTally accumulates a manager's figures before period averaging.
type rawTally struct {
	accounts     float64
	roasAccounts float64
	critical     float64
	low          float64
	onTrack      float64
	totalBudget  float64
	totalCost    float64
	totalIssues  float64
}

// Score builds the ranked manager portfolio rows. campaignIssues and
// audienceIssues are the per-account issue maps from the audit engine;
// monthOptions is the chronological list of months present in the data.
func Score(
	monthly []domain.PerformanceRecord,
	f domain.ScoreFilter,
	campaignIssues, audienceIssues map[string]int,
	monthOptions []string,
) []domain.ManagerScore {
	months := selectedMonths(f, monthOptions)
	if len(months) == 0 {
		return nil
	}

	tallies := make(map[string]*rawTally)
	var order []string

	for _, row := range monthly {
		if !inScope(row, months, f) {
			continue
		}

		manager := row.Manager
		if manager == "" {
			manager = domain.UnknownManager
		}

		t, ok := tallies[manager]
		if !ok {
			t = &rawTally{}
			tallies[manager] = t
			order = append(order, manager)
		}

		cid := normalizing.AccountID(row.CID)
		t.totalIssues += float64(campaignIssues[cid] + audienceIssues[cid])

		t.accounts++
		t.roasAccounts++
		switch kpi.Classify(row) {
		case domain.StatusCritical:
			t.critical++
		case domain.StatusLow:
			t.low++
		default:
			t.onTrack++
		}

		t.totalBudget += utils.ParseNumber(row.MonthlyBudget)
		t.totalCost += utils.ParseNumber(row.Cost)
	}

	numMonths := float64(len(months))

	scores := make([]domain.ManagerScore, 0, len(order))
	for _, manager := range order {
		t := tallies[manager]
		s := domain.ManagerScore{
			Manager: manager,

			Accounts:     t.accounts / numMonths,
			ROASAccounts: t.roasAccounts / numMonths,
			Critical:     t.critical / numMonths,
			Low:          t.low / numMonths,
			OnTrack:      t.onTrack / numMonths,
			TotalBudget:  t.totalBudget / numMonths,
			TotalCost:    t.totalCost / numMonths,
			TotalIssues:  t.totalIssues,
		}

		if t.roasAccounts > 0 {
			s.OnTrackPct = t.onTrack / t.roasAccounts * 100
			s.LowPct = t.low / t.roasAccounts * 100
			s.CriticalPct = t.critical / t.roasAccounts * 100
			s.AvgHealth = (t.onTrack + t.low*0.5) / t.roasAccounts * 100
			s.AvgIssues = t.totalIssues / t.roasAccounts
			s.AuditHealth = clampScore(100 - t.totalIssues/(t.roasAccounts*numMonths)*issuePenalty)
			s.GlobalScore = s.AvgHealth*healthWeight +
				clampScore(100-t.totalIssues/t.roasAccounts*issuePenalty)*auditWeight
		}
		s.WorkloadIntensity = s.Accounts*workloadAccountWeight +
			s.TotalCost/workloadCostUnit*workloadCostWeight

		s.Trend = managerTrend(monthly, manager, months, f)
		scores = append(scores, s)
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].GlobalScore > scores[j].GlobalScore
	})
	return scores
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// managerTrend computes the single-month On-Track percentage per selected
// month, chronologically, for sparkline display.
func managerTrend(monthly []domain.PerformanceRecord, manager string, months []string, f domain.ScoreFilter) []float64 {
	trend := make([]float64, 0, len(months))
	for _, month := range months {
		var total, onTrack int
		for _, row := range monthly {
			if row.Manager != manager || row.Objective != domain.ObjectiveROAS {
				continue
			}
			if !f.MatchesRecord(row) || monthLabelOf(row) != month {
				continue
			}
			total++
			if kpi.Classify(row) == domain.StatusOnTrack {
				onTrack++
			}
		}
		if total == 0 {
			trend = append(trend, 0)
			continue
		}
		trend = append(trend, float64(onTrack)/float64(total)*100)
	}
	return trend
}

// FleetTrend builds the portfolio-wide health series over the selected
// months: health = (onTrack + low*0.5) / total * 100, rounded to one
// decimal for display.
func FleetTrend(monthly []domain.PerformanceRecord, f domain.ScoreFilter, monthOptions []string) []domain.FleetTrendPoint {
	months := selectedMonths(f, monthOptions)

	points := make([]domain.FleetTrendPoint, 0, len(months))
	for _, month := range months {
		var total, onTrack, low int
		for _, row := range monthly {
			if !inScope(row, []string{month}, f) {
				continue
			}
			total++
			switch kpi.Classify(row) {
			case domain.StatusOnTrack:
				onTrack++
			case domain.StatusLow:
				low++
			}
		}

		point := domain.FleetTrendPoint{Month: month, Accounts: total}
		if total > 0 {
			health := (float64(onTrack) + float64(low)*0.5) / float64(total) * 100
			point.Health = math.Round(health*10) / 10
		}
		points = append(points, point)
	}
	return points
}

// ActiveCIDs collects the normalized account ids in scoring scope. The
// objective and excluded-manager gates deliberately do not apply here;
// the set bounds the top-issues widget, which covers every account the
// selected period touches.
func ActiveCIDs(monthly []domain.PerformanceRecord, f domain.ScoreFilter, monthOptions []string) map[string]struct{} {
	months := selectedMonths(f, monthOptions)

	cids := make(map[string]struct{})
	for _, row := range monthly {
		if !matchesAny(months, monthLabelOf(row)) {
			continue
		}
		if !f.MatchesRecord(row) {
			continue
		}
		if cid := normalizing.AccountID(row.CID); cid != "" {
			cids[cid] = struct{}{}
		}
	}
	return cids
}

// topIssueLimit is how many buckets the top-issues widget shows.
const topIssueLimit = 4

// TopIssues ranks the audit buckets most worth a manager's attention,
// counting only flags on accounts in the active scoring scope.
func TopIssues(
	campaign domain.CampaignAuditResult,
	audience domain.AudienceAuditResult,
	activeCIDs map[string]struct{},
) []domain.IssueCount {
	countCampaign := func(rows []domain.FlaggedCampaign) int {
		n := 0
		for _, r := range rows {
			if _, ok := activeCIDs[normalizing.AccountID(r.CID)]; ok {
				n++
			}
		}
		return n
	}
	countAudience := func(rows []domain.FlaggedAudience) int {
		n := 0
		for _, r := range rows {
			if _, ok := activeCIDs[normalizing.AccountID(r.CID)]; ok {
				n++
			}
		}
		return n
	}

	issues := []domain.IssueCount{
		{Label: "Display Select ON", Count: countCampaign(campaign.DisplaySelect)},
		{Label: "Low Opti Score", Count: countCampaign(campaign.LowOptiScore)},
		{Label: "Zero Ads Active", Count: countCampaign(campaign.ZeroAds)},
		{Label: "Under Budget", Count: countCampaign(campaign.UnderBudget)},
		{Label: "No Audiences", Count: countAudience(audience.NoAudienceAdded)},
		{Label: "Targeting Bug", Count: countAudience(audience.TargetingWithoutRemarketing)},
	}

	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Count > issues[j].Count })
	if len(issues) > topIssueLimit {
		issues = issues[:topIssueLimit]
	}
	return issues
}
