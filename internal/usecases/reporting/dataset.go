package reporting

import (
	"sync"
	"time"

	"github.com/eme-digital/ads-audit-api/internal/domain"
)

// Dataset is one consistent snapshot of all seven row sets. Handlers
// always read a whole dataset, never individual sets, so a sync can
// never be observed half-applied.
type Dataset struct {
	Version   int64
	LoadedAt  time.Time
	Snapshots map[string]int64

	Management    []domain.AccountRecord
	Budget        []domain.BudgetRecord
	ManagerStatus []domain.ManagerStatus
	Monthly       []domain.PerformanceRecord
	Daily         []domain.PerformanceRecord
	AudienceAudit []domain.AudienceAuditRow
	CampaignAudit []domain.CampaignAuditRow
}

// Empty reports whether no row set has been loaded yet.
func (d Dataset) Empty() bool {
	return len(d.Management) == 0 &&
		len(d.Budget) == 0 &&
		len(d.ManagerStatus) == 0 &&
		len(d.Monthly) == 0 &&
		len(d.Daily) == 0 &&
		len(d.AudienceAudit) == 0 &&
		len(d.CampaignAudit) == 0
}

// Store holds the current dataset behind an RWMutex. The scheduler swaps
// the whole dataset atomically; every swap bumps the version.
type Store struct {
	mu      sync.RWMutex
	current Dataset
}

func NewStore() *Store {
	return &Store{}
}

// Swap replaces the current dataset and returns the new version.
func (s *Store) Swap(d Dataset) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	d.Version = s.current.Version + 1
	if d.LoadedAt.IsZero() {
		d.LoadedAt = time.Now()
	}
	s.current = d
	return d.Version
}

// Current returns the dataset as of now.
func (s *Store) Current() Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Version returns the current dataset version without copying the rows.
func (s *Store) Version() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Version
}
