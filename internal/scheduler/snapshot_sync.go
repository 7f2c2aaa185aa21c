package scheduler

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/eme-digital/ads-audit-api/infrastructure/repository"
	"github.com/eme-digital/ads-audit-api/infrastructure/sheets"
	"github.com/eme-digital/ads-audit-api/internal/config"
	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/eme-digital/ads-audit-api/internal/usecases/reporting"
	"github.com/eme-digital/ads-audit-api/pkg/log"
	"github.com/go-co-op/gocron"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
)

// SnapshotSyncService pulls all sheet tabs on a cron schedule, persists
// each raw row set and publishes one consistent dataset to the reporting
// store. A failed tab aborts the whole run; the previous dataset stays
// visible.
type SnapshotSyncService struct {
	fetcher      sheets.Fetcher
	snapshotRepo repository.SnapshotRepository
	store        *reporting.Store
	cfg          config.SnapshotSync
	scheduler    *gocron.Scheduler

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewSnapshotSyncService(
	fetcher sheets.Fetcher,
	snapshotRepo repository.SnapshotRepository,
	store *reporting.Store,
	cfg config.SnapshotSync,
) *SnapshotSyncService {
	return &SnapshotSyncService{
		fetcher:      fetcher,
		snapshotRepo: snapshotRepo,
		store:        store,
		cfg:          cfg,
		scheduler:    gocron.NewScheduler(time.Local),
	}
}

// Start restores the last persisted dataset and registers the cron job.
// When the sync is disabled the service still serves the restored data.
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if err := s.restore(); err != nil {
		log.L.Warnf("could not restore persisted snapshots: %v", err)
	}

	if !s.cfg.Enabled {
		log.L.Info("snapshot sync is disabled")
		return nil
	}

	_, err := s.scheduler.Cron(s.cfg.CronSchedule).Do(func() {
		if err := s.RefreshSnapshots(context.Background()); err != nil {
			log.L.Errorf("scheduled snapshot sync failed: %v", err)
		}
	})
	if err != nil {
		return errors.Wrap(err, "registering snapshot sync job")
	}

	s.scheduler.StartAsync()
	log.L.Infof("snapshot sync scheduled with cron %q", s.cfg.CronSchedule)

	go func() {
		<-ctx.Done()
		s.scheduler.Stop()
	}()

	return nil
}

// restore loads the last persisted row sets so the API serves data before
// the first fetch completes.
func (s *SnapshotSyncService) restore() error {
	entries, err := s.snapshotRepo.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	var dataset reporting.Dataset
	dataset.Snapshots = make(map[string]int64, len(entries))

	for _, entry := range entries {
		if err := unmarshalInto(&dataset, entry); err != nil {
			return errors.Wrapf(err, "decoding the %s snapshot", entry.Domain)
		}
		dataset.Snapshots[entry.Domain] = entry.Version
	}

	if dataset.Empty() {
		return nil
	}

	version := s.store.Swap(dataset)
	log.L.Infof("restored %d persisted snapshots as dataset version %d", len(entries), version)
	return nil
}

func unmarshalInto(dataset *reporting.Dataset, entry *domain.SnapshotEntry) error {
	switch entry.Domain {
	case domain.SnapshotManagement:
		return json.Unmarshal(entry.Payload, &dataset.Management)
	case domain.SnapshotBudget:
		return json.Unmarshal(entry.Payload, &dataset.Budget)
	case domain.SnapshotManagerStatus:
		return json.Unmarshal(entry.Payload, &dataset.ManagerStatus)
	case domain.SnapshotMonthlyKpi:
		return json.Unmarshal(entry.Payload, &dataset.Monthly)
	case domain.SnapshotDailyKpi:
		return json.Unmarshal(entry.Payload, &dataset.Daily)
	case domain.SnapshotAudienceAudit:
		return json.Unmarshal(entry.Payload, &dataset.AudienceAudit)
	case domain.SnapshotCampaignAudit:
		return json.Unmarshal(entry.Payload, &dataset.CampaignAudit)
	default:
		log.L.Warnf("ignoring unknown snapshot domain %q", entry.Domain)
		return nil
	}
}

// RefreshSnapshots runs one full sync: fetch every tab, persist the raw
// row sets and publish the dataset. Only one run may be active at a time.
func (s *SnapshotSyncService) RefreshSnapshots(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return errors.New("a snapshot sync is already running")
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	runID, _ := gonanoid.New()
	logger := log.L.WithField("sync_run_id", runID)
	logger.Info("snapshot sync started")

	err := s.refresh(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.lastSyncError = err.Error()
	} else {
		s.lastSyncError = ""
	}
	s.syncMutex.Unlock()

	if err != nil {
		logger.Errorf("snapshot sync failed: %v", err)
		return err
	}
	logger.Info("snapshot sync completed")
	return nil
}

func (s *SnapshotSyncService) refresh(ctx context.Context) error {
	var dataset reporting.Dataset
	var err error

	if dataset.Management, err = s.fetcher.FetchManagement(ctx); err != nil {
		return err
	}
	if dataset.Budget, err = s.fetcher.FetchBudget(ctx); err != nil {
		return err
	}
	if dataset.ManagerStatus, err = s.fetcher.FetchManagerStatus(ctx); err != nil {
		return err
	}
	if dataset.Monthly, err = s.fetcher.FetchMonthlyKpi(ctx); err != nil {
		return err
	}
	if dataset.Daily, err = s.fetcher.FetchDailyKpi(ctx); err != nil {
		return err
	}
	if dataset.AudienceAudit, err = s.fetcher.FetchAudienceAudit(ctx); err != nil {
		return err
	}
	if dataset.CampaignAudit, err = s.fetcher.FetchCampaignAudit(ctx); err != nil {
		return err
	}

	version := s.store.Version() + 1
	fetchedAt := time.Now()
	dataset.Snapshots = make(map[string]int64, 7)

	persist := func(name string, rows any) error {
		payload, err := json.Marshal(rows)
		if err != nil {
			return errors.Wrapf(err, "encoding the %s snapshot", name)
		}
		entry := &domain.SnapshotEntry{
			Domain:    name,
			Version:   version,
			Payload:   payload,
			FetchedAt: fetchedAt,
		}
		if err := s.snapshotRepo.SaveOrUpdate(entry); err != nil {
			return errors.Wrapf(err, "persisting the %s snapshot", name)
		}
		dataset.Snapshots[name] = version
		return nil
	}

	if err := persist(domain.SnapshotManagement, dataset.Management); err != nil {
		return err
	}
	if err := persist(domain.SnapshotBudget, dataset.Budget); err != nil {
		return err
	}
	if err := persist(domain.SnapshotManagerStatus, dataset.ManagerStatus); err != nil {
		return err
	}
	if err := persist(domain.SnapshotMonthlyKpi, dataset.Monthly); err != nil {
		return err
	}
	if err := persist(domain.SnapshotDailyKpi, dataset.Daily); err != nil {
		return err
	}
	if err := persist(domain.SnapshotAudienceAudit, dataset.AudienceAudit); err != nil {
		return err
	}
	if err := persist(domain.SnapshotCampaignAudit, dataset.CampaignAudit); err != nil {
		return err
	}

	published := s.store.Swap(dataset)
	log.L.Infof("published dataset version %d", published)
	return nil
}

// TriggerManualSync starts a sync in the background and returns its run
// handle immediately.
func (s *SnapshotSyncService) TriggerManualSync() (string, error) {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		return "", errors.New("a snapshot sync is already running")
	}

	runID, _ := gonanoid.New()
	go func() {
		if err := s.RefreshSnapshots(context.Background()); err != nil {
			log.L.WithField("sync_run_id", runID).Errorf("manual snapshot sync failed: %v", err)
		}
	}()

	return runID, nil
}

// GetStatus reports the scheduler state for the status endpoint.
func (s *SnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"enabled":        s.cfg.Enabled,
		"cronSchedule":   s.cfg.CronSchedule,
		"syncRunning":    s.syncRunning,
		"datasetVersion": s.store.Version(),
	}
	if !s.lastSyncStartedAt.IsZero() {
		status["lastSyncStartedAt"] = s.lastSyncStartedAt.Format(time.RFC3339)
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status["lastSyncCompletedAt"] = s.lastSyncCompletedAt.Format(time.RFC3339)
	}
	if s.lastSyncError != "" {
		status["lastSyncError"] = s.lastSyncError
	}
	return status
}
