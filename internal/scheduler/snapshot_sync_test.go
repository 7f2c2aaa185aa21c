package scheduler

import (
	"context"
	"encoding/json"
	"testing"

	repomocks "github.com/eme-digital/ads-audit-api/infrastructure/repository/mocks"
	sheetmocks "github.com/eme-digital/ads-audit-api/infrastructure/sheets/mocks"
	"github.com/eme-digital/ads-audit-api/internal/config"
	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/eme-digital/ads-audit-api/internal/usecases/reporting"
	"github.com/eme-digital/ads-audit-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func expectAllFetches(fetcher *sheetmocks.MockFetcher) {
	fetcher.EXPECT().FetchManagement(gomock.Any()).Return([]domain.AccountRecord{
		{CID: "123-456-7890", AccountName: "Acme", Manager: "Jane Doe"},
	}, nil)
	fetcher.EXPECT().FetchBudget(gomock.Any()).Return([]domain.BudgetRecord{
		{CID: "123-456-7890", AccountName: "Acme", Manager: "Jane Doe", StartDate: "1/5/2024"},
	}, nil)
	fetcher.EXPECT().FetchManagerStatus(gomock.Any()).Return([]domain.ManagerStatus{
		{Manager: "Jane Doe", Status: "Active"},
	}, nil)
	fetcher.EXPECT().FetchMonthlyKpi(gomock.Any()).Return(nil, nil)
	fetcher.EXPECT().FetchDailyKpi(gomock.Any()).Return(nil, nil)
	fetcher.EXPECT().FetchAudienceAudit(gomock.Any()).Return(nil, nil)
	fetcher.EXPECT().FetchCampaignAudit(gomock.Any()).Return(nil, nil)
}

func TestRefreshSnapshotsPersistsAndPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)

	fetcher := sheetmocks.NewMockFetcher(ctrl)
	snapshotRepo := repomocks.NewMockSnapshotRepository(ctrl)
	store := reporting.NewStore()

	expectAllFetches(fetcher)

	saved := make(map[string]int64)
	snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(entry *domain.SnapshotEntry) error {
		saved[entry.Domain] = entry.Version
		return nil
	}).Times(7)

	service := NewSnapshotSyncService(fetcher, snapshotRepo, store, config.SnapshotSync{})

	err := service.RefreshSnapshots(context.Background())
	require.NoError(t, err)

	assert.Len(t, saved, 7)
	assert.EqualValues(t, 1, saved[domain.SnapshotManagement])

	dataset := store.Current()
	assert.EqualValues(t, 1, dataset.Version)
	require.Len(t, dataset.Management, 1)
	assert.Equal(t, "Acme", dataset.Management[0].AccountName)
	assert.Len(t, dataset.Budget, 1)
}

func TestRefreshSnapshotsAbortsOnFetchError(t *testing.T) {
	ctrl := gomock.NewController(t)

	fetcher := sheetmocks.NewMockFetcher(ctrl)
	snapshotRepo := repomocks.NewMockSnapshotRepository(ctrl)
	store := reporting.NewStore()

	fetcher.EXPECT().FetchManagement(gomock.Any()).Return(nil, assert.AnError)

	service := NewSnapshotSyncService(fetcher, snapshotRepo, store, config.SnapshotSync{})

	err := service.RefreshSnapshots(context.Background())
	require.Error(t, err)

	// Nothing was persisted and no dataset was published.
	assert.EqualValues(t, 0, store.Version())

	status := service.GetStatus()
	assert.Equal(t, assert.AnError.Error(), status["lastSyncError"])
	assert.Equal(t, false, status["syncRunning"])
}

func TestRestoreFromPersistedSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)

	fetcher := sheetmocks.NewMockFetcher(ctrl)
	snapshotRepo := repomocks.NewMockSnapshotRepository(ctrl)
	store := reporting.NewStore()

	payload, err := json.Marshal([]domain.AccountRecord{
		{CID: "123-456-7890", AccountName: "Acme", Manager: "Jane Doe"},
	})
	require.NoError(t, err)

	snapshotRepo.EXPECT().List().Return([]*domain.SnapshotEntry{
		{Domain: domain.SnapshotManagement, Version: 4, Payload: payload},
	}, nil)

	service := NewSnapshotSyncService(fetcher, snapshotRepo, store, config.SnapshotSync{Enabled: false})

	require.NoError(t, service.Start(context.Background()))

	dataset := store.Current()
	require.Len(t, dataset.Management, 1)
	assert.Equal(t, "Acme", dataset.Management[0].AccountName)
	assert.EqualValues(t, 4, dataset.Snapshots[domain.SnapshotManagement])
}

func TestRestoreSkipsEmptySnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)

	fetcher := sheetmocks.NewMockFetcher(ctrl)
	snapshotRepo := repomocks.NewMockSnapshotRepository(ctrl)
	store := reporting.NewStore()

	snapshotRepo.EXPECT().List().Return(nil, nil)

	service := NewSnapshotSyncService(fetcher, snapshotRepo, store, config.SnapshotSync{Enabled: false})

	require.NoError(t, service.Start(context.Background()))
	assert.EqualValues(t, 0, store.Version())
}

func TestGetStatusAfterSuccessfulRun(t *testing.T) {
	ctrl := gomock.NewController(t)

	fetcher := sheetmocks.NewMockFetcher(ctrl)
	snapshotRepo := repomocks.NewMockSnapshotRepository(ctrl)
	store := reporting.NewStore()

	expectAllFetches(fetcher)
	snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(7)

	cfg := config.SnapshotSync{CronSchedule: "0 */4 * * *", Enabled: true}
	service := NewSnapshotSyncService(fetcher, snapshotRepo, store, cfg)

	require.NoError(t, service.RefreshSnapshots(context.Background()))

	status := service.GetStatus()
	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "0 */4 * * *", status["cronSchedule"])
	assert.Equal(t, false, status["syncRunning"])
	assert.EqualValues(t, 1, status["datasetVersion"])
	assert.NotEmpty(t, status["lastSyncStartedAt"])
	assert.NotEmpty(t, status["lastSyncCompletedAt"])
	assert.NotContains(t, status, "lastSyncError")
}
