package kpi

import (
	"time"

	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/eme-digital/ads-audit-api/internal/usecases/normalizing"
	"github.com/eme-digital/ads-audit-api/pkg/utils"
)

// InDateRange reports whether a daily row falls inside the inclusive
// bounds. Bounds compare at day granularity (start of day vs end of day).
// A row whose date cannot be parsed is included regardless of bounds: the
// sheets occasionally carry malformed-but-real rows and silently dropping
// them skews every sum, so range filtering fails open.
func InDateRange(r domain.PerformanceRecord, start, end *time.Time) bool {
	if start == nil && end == nil {
		return true
	}

	date, ok := utils.ParseSnapshotDate(r.Period)
	if !ok {
		return true
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	if start != nil && !start.IsZero() {
		s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
		if day.Before(s) {
			return false
		}
	}

	if end != nil && !end.IsZero() {
		e := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999000000, time.UTC)
		if day.After(e) {
			return false
		}
	}

	return true
}

// AggregateDaily collapses a stream of per-day records into one summary
// record per account, optionally restricted to an inclusive date range.
// Numeric fields are summed after stripping display formatting; all other
// fields come from the first row seen for the account. Grouping key is the
// normalized CID, falling back to account name when the CID is empty.
// Output preserves first-seen order; consumers sort as they need.
func AggregateDaily(rows []domain.PerformanceRecord, start, end *time.Time) []domain.PerformanceRecord {
	type sums struct {
		impressions     float64
		clicks          float64
		cost            float64
		conversions     float64
		conversionValue float64
	}

	totals := make(map[string]*sums)
	first := make(map[string]domain.PerformanceRecord)
	var order []string

	for _, row := range rows {
		if !InDateRange(row, start, end) {
			continue
		}

		key := normalizing.AccountID(row.CID)
		if key == "" {
			key = row.AccountName
		}

		t, seen := totals[key]
		if !seen {
			t = &sums{}
			totals[key] = t
			first[key] = row
			order = append(order, key)
		}

		t.impressions += utils.ParseNumber(row.Impressions)
		t.clicks += utils.ParseNumber(row.Clicks)
		t.cost += utils.ParseNumber(row.Cost)
		t.conversions += utils.ParseNumber(row.Conversions)
		t.conversionValue += utils.ParseNumber(row.ConversionValue)
	}

	out := make([]domain.PerformanceRecord, 0, len(order))
	for _, key := range order {
		summary := first[key]
		t := totals[key]
		summary.Impressions = utils.FormatNumber(t.impressions)
		summary.Clicks = utils.FormatNumber(t.clicks)
		summary.Cost = utils.FormatNumber(t.cost)
		summary.Conversions = utils.FormatNumber(t.conversions)
		summary.ConversionValue = utils.FormatNumber(t.conversionValue)
		out = append(out, summary)
	}

	return out
}
