package handler

import (
	"net/http"
	"strings"

	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/eme-digital/ads-audit-api/pkg/utils"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// queryList splits a comma-separated multi-select query parameter.
func queryList(r *http.Request, key string) []string {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}

	var values []string
	for _, v := range strings.Split(raw, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			values = append(values, v)
		}
	}
	return values
}

func parseRecordFilter(r *http.Request) (domain.RecordFilter, error) {
	f := domain.RecordFilter{
		Managers:       queryList(r, "pm"),
		Teams:          queryList(r, "team"),
		AccountNames:   queryList(r, "account"),
		ClientAccounts: queryList(r, "client_account"),
		Objectives:     queryList(r, "objective"),
		Types:          queryList(r, "type"),
		Strategists:    queryList(r, "strategist"),
		Statuses:       queryList(r, "status"),
		Months:         queryList(r, "month"),
	}

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		start, err := utils.ParseDate(raw)
		if err != nil {
			return f, err
		}
		f.StartDate = start
	}
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		end, err := utils.ParseDate(raw)
		if err != nil {
			return f, err
		}
		f.EndDate = end
	}

	return f, nil
}

func parseAuditFilter(r *http.Request) domain.AuditFilter {
	return domain.AuditFilter{
		Managers: queryList(r, "pm"),
		Date:     r.URL.Query().Get("date"),
	}
}

func parseScoreFilter(r *http.Request) domain.ScoreFilter {
	return domain.ScoreFilter{
		Months:      queryList(r, "month"),
		Teams:       queryList(r, "team"),
		Strategists: queryList(r, "strategist"),
	}
}

func parseHeatmapFilter(r *http.Request) domain.HeatmapFilter {
	return domain.HeatmapFilter{
		StartMonth: r.URL.Query().Get("start_month"),
		EndMonth:   r.URL.Query().Get("end_month"),
	}
}
