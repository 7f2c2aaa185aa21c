package handler

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryList(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/kpi/monthly?pm=Jane+Doe,John+Roe,&team=", nil)

	assert.Equal(t, []string{"Jane Doe", "John Roe"}, queryList(r, "pm"))
	assert.Nil(t, queryList(r, "team"))
	assert.Nil(t, queryList(r, "missing"))
}

func TestParseRecordFilter(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/v1/kpi/daily?pm=Jane+Doe&status=Critical,Low&start_date=2024-02-01&end_date=2024-02-29", nil)

	f, err := parseRecordFilter(r)
	require.NoError(t, err)

	assert.Equal(t, []string{"Jane Doe"}, f.Managers)
	assert.Equal(t, []string{"Critical", "Low"}, f.Statuses)
	require.NotNil(t, f.StartDate)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *f.StartDate)
	require.NotNil(t, f.EndDate)
}

func TestParseRecordFilterBadDate(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/kpi/daily?start_date=02%2F01%2F2024", nil)

	_, err := parseRecordFilter(r)
	assert.Error(t, err)
}

func TestParseAuditFilter(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/audits/campaign?pm=Jane+Doe&date=1%2F15%2F2024", nil)

	f := parseAuditFilter(r)
	assert.Equal(t, []string{"Jane Doe"}, f.Managers)
	assert.Equal(t, "1/15/2024", f.Date)
}

func TestParseScoreFilter(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/portfolio/scores?month=January+2024,February+2024&team=Alpha", nil)

	f := parseScoreFilter(r)
	assert.Equal(t, []string{"January 2024", "February 2024"}, f.Months)
	assert.Equal(t, []string{"Alpha"}, f.Teams)
}

func TestParseHeatmapFilter(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/budgets/heatmap?start_month=Jan+24&end_month=Jun+24", nil)

	f := parseHeatmapFilter(r)
	assert.Equal(t, "Jan 24", f.StartMonth)
	assert.Equal(t, "Jun 24", f.EndMonth)
}
