package reporting

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/eme-digital/ads-audit-api/internal/usecases/auditing"
	"github.com/eme-digital/ads-audit-api/internal/usecases/budgeting"
	"github.com/eme-digital/ads-audit-api/internal/usecases/kpi"
	"github.com/eme-digital/ads-audit-api/internal/usecases/normalizing"
	"github.com/eme-digital/ads-audit-api/internal/usecases/scoring"
)

// ClassifiedRecord is a performance row joined to its derived status and
// actual ROAS for API output.
type ClassifiedRecord struct {
	domain.PerformanceRecord

	Status     domain.KpiStatus `json:"status"`
	ActualROAS float64          `json:"actualRoas"`
}

// Facets lists the distinct values available for each management filter.
type Facets struct {
	Managers       []string `json:"pms"`
	Teams          []string `json:"teams"`
	AccountNames   []string `json:"accountNames"`
	ClientAccounts []string `json:"clientAccounts"`
	Objectives     []string `json:"objectives"`
	Types          []string `json:"types"`
	Strategists    []string `json:"strategists"`
}

// ManagementPayload is the management endpoint response.
type ManagementPayload struct {
	Version int64                  `json:"version"`
	Rows    []domain.AccountRecord `json:"rows"`
	Facets  Facets                 `json:"facets"`
}

// MonthlyPayload is the monthly KPI endpoint response.
type MonthlyPayload struct {
	Version      int64    `json:"version"`
	MonthOptions []string `json:"monthOptions"`

	Rows           []ClassifiedRecord       `json:"rows"`
	Summary        domain.KpiSummary        `json:"summary"`
	ManagerSummary []domain.GroupKpiSummary `json:"pmSummary"`
	TeamSummary    []domain.GroupKpiSummary `json:"teamSummary"`
	Trend          []domain.MonthTrendPoint `json:"trend"`

	PrevPeriods []string          `json:"prevPeriods"`
	PrevSummary domain.KpiSummary `json:"prevSummary"`
}

// DailyPayload is the daily KPI endpoint response.
type DailyPayload struct {
	Version int64 `json:"version"`

	Rows      []ClassifiedRecord   `json:"rows"`
	Summary   domain.KpiSummary    `json:"summary"`
	Anomalies domain.AnomalyReport `json:"anomalies"`
}

// PortfolioPayload is the portfolio scores endpoint response.
type PortfolioPayload struct {
	Version      int64    `json:"version"`
	MonthOptions []string `json:"monthOptions"`

	Scores     []domain.ManagerScore    `json:"scores"`
	FleetTrend []domain.FleetTrendPoint `json:"fleetTrend"`
	TopIssues  []domain.IssueCount      `json:"topIssues"`
}

// HeatmapPayload is the budget heatmap endpoint response.
type HeatmapPayload struct {
	Version int64          `json:"version"`
	Heatmap domain.Heatmap `json:"heatmap"`
}

// BudgetSummaryPayload is the budget summary endpoint response.
type BudgetSummaryPayload struct {
	Version int64                      `json:"version"`
	Rows    []domain.ExhaustionSummary `json:"rows"`
}

// Reporter computes the read-side payloads over the current dataset.
type Reporter interface {
	Management(f domain.RecordFilter) ManagementPayload
	MonthlyKpi(f domain.RecordFilter) MonthlyPayload
	DailyKpi(f domain.RecordFilter) DailyPayload
	CampaignAudit(f domain.AuditFilter) domain.CampaignAuditResult
	AudienceAudit(f domain.AuditFilter) domain.AudienceAuditResult
	Portfolio(f domain.ScoreFilter) PortfolioPayload
	BudgetHeatmap(f domain.HeatmapFilter) HeatmapPayload
	BudgetSummary() BudgetSummaryPayload
}

// Service derives payloads from the dataset store. Audit bundles and
// portfolio runs are memoized per dataset version and filter fingerprint;
// the memo empties itself whenever the scheduler publishes a new version.
type Service struct {
	store *Store

	memoMu      sync.Mutex
	memoVersion int64
	memo        map[string]any
}

func NewService(store *Store) *Service {
	return &Service{
		store: store,
		memo:  make(map[string]any),
	}
}

// Store exposes the dataset holder for the scheduler to publish into.
func (s *Service) Store() *Store {
	return s.store
}

// memoized caches one computation per (version, key). The lock is not
// held while computing, so concurrent misses may compute twice; the
// result is identical either way.
func (s *Service) memoized(version int64, key string, compute func() any) any {
	s.memoMu.Lock()
	if s.memoVersion != version {
		s.memo = make(map[string]any)
		s.memoVersion = version
	}
	if v, ok := s.memo[key]; ok {
		s.memoMu.Unlock()
		return v
	}
	s.memoMu.Unlock()

	v := compute()

	s.memoMu.Lock()
	if s.memoVersion == version {
		s.memo[key] = v
	}
	s.memoMu.Unlock()
	return v
}

func (s *Service) Management(f domain.RecordFilter) ManagementPayload {
	d := s.store.Current()

	var rows []domain.AccountRecord
	for _, r := range d.Management {
		if f.MatchesAccount(r) {
			rows = append(rows, r)
		}
	}

	return ManagementPayload{
		Version: d.Version,
		Rows:    rows,
		Facets:  buildFacets(d.Management),
	}
}

func buildFacets(rows []domain.AccountRecord) Facets {
	return Facets{
		Managers:       distinct(rows, func(r domain.AccountRecord) string { return r.Manager }),
		Teams:          distinct(rows, func(r domain.AccountRecord) string { return r.Team }),
		AccountNames:   distinct(rows, func(r domain.AccountRecord) string { return r.AccountName }),
		ClientAccounts: distinct(rows, func(r domain.AccountRecord) string { return r.ClientAccount }),
		Objectives:     distinct(rows, func(r domain.AccountRecord) string { return r.Objective }),
		Types:          distinct(rows, func(r domain.AccountRecord) string { return r.Type }),
		Strategists:    distinct(rows, func(r domain.AccountRecord) string { return r.Strategist }),
	}
}

func distinct(rows []domain.AccountRecord, get func(domain.AccountRecord) string) []string {
	seen := make(map[string]struct{}, len(rows))
	var values []string
	for _, r := range rows {
		v := get(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

func classify(rows []domain.PerformanceRecord) []ClassifiedRecord {
	classified := make([]ClassifiedRecord, 0, len(rows))
	for _, r := range rows {
		classified = append(classified, ClassifiedRecord{
			PerformanceRecord: r,
			Status:            kpi.Classify(r),
			ActualROAS:        kpi.ActualROAS(r),
		})
	}
	return classified
}

func (s *Service) MonthlyKpi(f domain.RecordFilter) MonthlyPayload {
	d := s.store.Current()

	options := kpi.MonthOptions(d.Monthly)
	// An empty month selection scopes to the latest month, never to the
	// whole history blended together.
	if len(f.Months) == 0 && len(options) > 0 {
		f.Months = options[len(options)-1:]
	}
	rows := kpi.FilterMonthly(d.Monthly, f)

	prevLabels := kpi.PrevPeriodLabels(f.Months, options)
	prevFilter := f
	prevFilter.Months = prevLabels
	var prevSummary domain.KpiSummary
	if len(prevLabels) > 0 {
		prevSummary = kpi.Summarize(kpi.FilterMonthly(d.Monthly, prevFilter))
	}

	return MonthlyPayload{
		Version:        d.Version,
		MonthOptions:   options,
		Rows:           classify(rows),
		Summary:        kpi.Summarize(rows),
		ManagerSummary: kpi.SummarizeBy(rows, kpi.GroupByManager),
		TeamSummary:    kpi.SummarizeBy(rows, kpi.GroupByTeam),
		Trend:          kpi.MonthlyTrend(d.Monthly, f),
		PrevPeriods:    prevLabels,
		PrevSummary:    prevSummary,
	}
}

func (s *Service) DailyKpi(f domain.RecordFilter) DailyPayload {
	d := s.store.Current()

	aggregated := kpi.AggregateDaily(d.Daily, f.StartDate, f.EndDate)
	visible := kpi.FilterAggregated(aggregated, f)

	return DailyPayload{
		Version:   d.Version,
		Rows:      classify(visible),
		Summary:   kpi.Summarize(visible),
		Anomalies: kpi.DetectAnomalies(d.Daily, aggregated, visible),
	}
}

func auditKey(kind string, f domain.AuditFilter) string {
	return fmt.Sprintf("%s|%s|%s", kind, strings.Join(f.Managers, ","), f.Date)
}

func (s *Service) CampaignAudit(f domain.AuditFilter) domain.CampaignAuditResult {
	d := s.store.Current()

	result := s.memoized(d.Version, auditKey("campaign", f), func() any {
		index := normalizing.ManagerIndex(d.Management)
		return auditing.CampaignAudit(d.CampaignAudit, index, f)
	})
	return result.(domain.CampaignAuditResult)
}

func (s *Service) AudienceAudit(f domain.AuditFilter) domain.AudienceAuditResult {
	d := s.store.Current()

	result := s.memoized(d.Version, auditKey("audience", f), func() any {
		index := normalizing.ManagerIndex(d.Management)
		return auditing.AudienceAudit(d.AudienceAudit, index, f)
	})
	return result.(domain.AudienceAuditResult)
}

func (s *Service) Portfolio(f domain.ScoreFilter) PortfolioPayload {
	d := s.store.Current()

	key := fmt.Sprintf("portfolio|%s|%s|%s",
		strings.Join(f.Months, ","),
		strings.Join(f.Teams, ","),
		strings.Join(f.Strategists, ","))

	result := s.memoized(d.Version, key, func() any {
		// Scoring consumes the unfiltered audit runs; the score filter
		// only narrows the performance side.
		campaign := s.CampaignAudit(domain.AuditFilter{})
		audience := s.AudienceAudit(domain.AuditFilter{})

		options := kpi.MonthOptions(d.Monthly)
		active := scoring.ActiveCIDs(d.Monthly, f, options)

		return PortfolioPayload{
			Version:      d.Version,
			MonthOptions: options,
			Scores:       scoring.Score(d.Monthly, f, campaign.AccountIssues, audience.AccountIssues, options),
			FleetTrend:   scoring.FleetTrend(d.Monthly, f, options),
			TopIssues:    scoring.TopIssues(campaign, audience, active),
		}
	})
	return result.(PortfolioPayload)
}

func (s *Service) BudgetHeatmap(f domain.HeatmapFilter) HeatmapPayload {
	d := s.store.Current()

	active := budgeting.ActiveManagers(d.ManagerStatus)
	return HeatmapPayload{
		Version: d.Version,
		Heatmap: budgeting.BuildHeatmap(d.Budget, active, f),
	}
}

func (s *Service) BudgetSummary() BudgetSummaryPayload {
	d := s.store.Current()

	return BudgetSummaryPayload{
		Version: d.Version,
		Rows:    budgeting.SummarizeExhaustions(d.Budget),
	}
}
