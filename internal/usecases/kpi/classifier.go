// Package kpi holds the pure performance computations: status
// classification, daily aggregation, summary tallies and anomaly
// detection. Everything here is a deterministic function of its inputs.
package kpi

import (
	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/eme-digital/ads-audit-api/pkg/utils"
)

// Ratio thresholds for classifying actual vs target ROAS.
const (
	criticalRatio = 0.7
	onTrackRatio  = 1.0
)

// ActualROAS derives return on ad spend from a record's formatted cost and
// conversion value. Zero cost yields zero ROAS, never a division error.
func ActualROAS(r domain.PerformanceRecord) float64 {
	cost := utils.ParseNumber(r.Cost)
	if cost <= 0 {
		return 0
	}
	return utils.ParseNumber(r.ConversionValue) / cost
}

// Classify maps a performance record to its KPI status. It depends only on
// cost, conversion value and target ROAS. A record without a target cannot
// be under target, so it is On Track regardless of performance.
func Classify(r domain.PerformanceRecord) domain.KpiStatus {
	target := utils.ParseROAS(r.TargetROAS)
	if target == 0 {
		return domain.StatusOnTrack
	}

	ratio := ActualROAS(r) / target
	switch {
	case ratio < criticalRatio:
		return domain.StatusCritical
	case ratio < onTrackRatio:
		return domain.StatusLow
	default:
		return domain.StatusOnTrack
	}
}
