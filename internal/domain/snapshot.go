package domain

import (
	"encoding/json"
	"time"
)

// Snapshot domains, one per ingested sheet tab.
const (
	SnapshotManagement    = "management"
	SnapshotBudget        = "budget"
	SnapshotManagerStatus = "manager_status"
	SnapshotMonthlyKpi    = "monthly_kpi"
	SnapshotDailyKpi      = "daily_kpi"
	SnapshotAudienceAudit = "audience_audit"
	SnapshotCampaignAudit = "campaign_audit"
)

// SnapshotEntry is the persisted form of one domain's latest row set. The
// payload is the JSON-encoded row slice; Version increases on every
// successful refresh so readers can detect staleness.
type SnapshotEntry struct {
	Domain    string          `json:"domain"`
	Version   int64           `json:"version"`
	Payload   json.RawMessage `json:"payload"`
	FetchedAt time.Time       `json:"fetched_at"`
}
