package sheets

import (
	"context"

	"github.com/eme-digital/ads-audit-api/internal/config"
	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/pkg/errors"
)

// Fetcher pulls one typed row set per snapshot tab.
type Fetcher interface {
	FetchManagement(ctx context.Context) ([]domain.AccountRecord, error)
	FetchBudget(ctx context.Context) ([]domain.BudgetRecord, error)
	FetchManagerStatus(ctx context.Context) ([]domain.ManagerStatus, error)
	FetchMonthlyKpi(ctx context.Context) ([]domain.PerformanceRecord, error)
	FetchDailyKpi(ctx context.Context) ([]domain.PerformanceRecord, error)
	FetchAudienceAudit(ctx context.Context) ([]domain.AudienceAuditRow, error)
	FetchCampaignAudit(ctx context.Context) ([]domain.CampaignAuditRow, error)
}

type Service struct {
	client *Client
	cfg    config.Sheets
}

func NewService(client *Client, cfg config.Sheets) Fetcher {
	return &Service{
		client: client,
		cfg:    cfg,
	}
}

func (s *Service) fetch(ctx context.Context, url, tab string) ([][]string, error) {
	if url == "" {
		return nil, errors.Errorf("no URL configured for the %s tab", tab)
	}
	records, err := s.client.FetchCSV(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching the %s tab", tab)
	}
	return records, nil
}

func (s *Service) FetchManagement(ctx context.Context) ([]domain.AccountRecord, error) {
	records, err := s.fetch(ctx, s.cfg.ManagementURL, "management")
	if err != nil {
		return nil, err
	}
	return mapManagement(records), nil
}

func (s *Service) FetchBudget(ctx context.Context) ([]domain.BudgetRecord, error) {
	records, err := s.fetch(ctx, s.cfg.BudgetURL, "budget")
	if err != nil {
		return nil, err
	}
	return mapBudget(records), nil
}

func (s *Service) FetchManagerStatus(ctx context.Context) ([]domain.ManagerStatus, error) {
	records, err := s.fetch(ctx, s.cfg.ManagerStatusURL, "manager status")
	if err != nil {
		return nil, err
	}
	return mapManagerStatus(records), nil
}

func (s *Service) FetchMonthlyKpi(ctx context.Context) ([]domain.PerformanceRecord, error) {
	records, err := s.fetch(ctx, s.cfg.MonthlyKpiURL, "monthly KPI")
	if err != nil {
		return nil, err
	}
	return mapPerformance(records), nil
}

func (s *Service) FetchDailyKpi(ctx context.Context) ([]domain.PerformanceRecord, error) {
	records, err := s.fetch(ctx, s.cfg.DailyKpiURL, "daily KPI")
	if err != nil {
		return nil, err
	}
	return mapPerformance(records), nil
}

func (s *Service) FetchAudienceAudit(ctx context.Context) ([]domain.AudienceAuditRow, error) {
	records, err := s.fetch(ctx, s.cfg.AudienceAuditURL, "audience audit")
	if err != nil {
		return nil, err
	}
	return mapAudienceAudit(records), nil
}

func (s *Service) FetchCampaignAudit(ctx context.Context) ([]domain.CampaignAuditRow, error) {
	records, err := s.fetch(ctx, s.cfg.CampaignAuditURL, "campaign audit")
	if err != nil {
		return nil, err
	}
	return mapCampaignAudit(records), nil
}
