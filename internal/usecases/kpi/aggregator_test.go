package kpi

import (
	"testing"
	"time"

	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dailyRow(cid, name, date, cost string) domain.PerformanceRecord {
	return domain.PerformanceRecord{
		AccountRecord: domain.AccountRecord{CID: cid, AccountName: name, Manager: "Jane Doe"},
		Period:        date,
		Impressions:   "100",
		Clicks:        "10",
		Cost:          cost,
		Conversions:   "1",
		ConversionValue: "$20",
	}
}

func TestAggregateDailySumsPerAccount(t *testing.T) {
	rows := []domain.PerformanceRecord{
		dailyRow("111", "Acme", "1/1/2024", "$50"),
		dailyRow("111", "Acme", "1/2/2024", "$150"),
		dailyRow("222", "Beta", "1/1/2024", "$30"),
	}

	out := AggregateDaily(rows, nil, nil)

	require.Len(t, out, 2)
	assert.Equal(t, "200", out[0].Cost)
	assert.Equal(t, "200", out[0].Impressions)
	assert.Equal(t, "20", out[0].Clicks)
	assert.Equal(t, "40", out[0].ConversionValue)
	assert.Equal(t, "30", out[1].Cost)
}

func TestAggregateDailyJoinsFormattedCIDs(t *testing.T) {
	rows := []domain.PerformanceRecord{
		dailyRow("123-456-7890", "Acme", "1/1/2024", "$10"),
		dailyRow("1234567890", "Acme", "1/2/2024", "$15"),
	}

	out := AggregateDaily(rows, nil, nil)

	require.Len(t, out, 1)
	assert.Equal(t, "25", out[0].Cost)
}

func TestAggregateDailyFallsBackToAccountName(t *testing.T) {
	rows := []domain.PerformanceRecord{
		dailyRow("", "Acme", "1/1/2024", "$10"),
		dailyRow("", "Acme", "1/2/2024", "$5"),
		dailyRow("", "Beta", "1/1/2024", "$7"),
	}

	out := AggregateDaily(rows, nil, nil)

	require.Len(t, out, 2)
	assert.Equal(t, "15", out[0].Cost)
	assert.Equal(t, "7", out[1].Cost)
}

func TestAggregateDailyDateRange(t *testing.T) {
	rows := []domain.PerformanceRecord{
		dailyRow("111", "Acme", "1/1/2024", "$10"),
		dailyRow("111", "Acme", "1/15/2024", "$20"),
		dailyRow("111", "Acme", "2/1/2024", "$40"),
	}

	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	out := AggregateDaily(rows, &start, &end)

	require.Len(t, out, 1)
	assert.Equal(t, "20", out[0].Cost)
}

func TestAggregateDailyBoundsAreInclusive(t *testing.T) {
	rows := []domain.PerformanceRecord{
		dailyRow("111", "Acme", "1/10/2024", "$10"),
		dailyRow("111", "Acme", "1/31/2024", "$20"),
	}

	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	out := AggregateDaily(rows, &start, &end)

	require.Len(t, out, 1)
	assert.Equal(t, "30", out[0].Cost)
}

func TestAggregateDailyUnparseableDateFailsOpen(t *testing.T) {
	rows := []domain.PerformanceRecord{
		dailyRow("111", "Acme", "not a date", "$10"),
		dailyRow("111", "Acme", "6/1/2023", "$99"),
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	out := AggregateDaily(rows, &start, &end)

	// The malformed row is kept, the out-of-range row is dropped.
	require.Len(t, out, 1)
	assert.Equal(t, "10", out[0].Cost)
}

func TestAggregateDailyDisjointPartitionsSumToUnion(t *testing.T) {
	janRows := []domain.PerformanceRecord{
		dailyRow("111", "Acme", "1/5/2024", "$10"),
		dailyRow("111", "Acme", "1/20/2024", "$20"),
	}
	febRows := []domain.PerformanceRecord{
		dailyRow("111", "Acme", "2/5/2024", "$40"),
	}

	union := AggregateDaily(append(append([]domain.PerformanceRecord{}, janRows...), febRows...), nil, nil)

	jan := AggregateDaily(janRows, nil, nil)
	feb := AggregateDaily(febRows, nil, nil)

	require.Len(t, union, 1)
	require.Len(t, jan, 1)
	require.Len(t, feb, 1)

	recombined := AggregateDaily([]domain.PerformanceRecord{jan[0], feb[0]}, nil, nil)
	require.Len(t, recombined, 1)
	assert.Equal(t, union[0].Cost, recombined[0].Cost)
	assert.Equal(t, union[0].Impressions, recombined[0].Impressions)
}

func TestAggregateDailyEmptyInput(t *testing.T) {
	assert.Empty(t, AggregateDaily(nil, nil, nil))
}
