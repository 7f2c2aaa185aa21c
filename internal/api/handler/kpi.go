package handler

import (
	"net/http"

	"github.com/eme-digital/ads-audit-api/internal/usecases/reporting"
	"github.com/eme-digital/ads-audit-api/pkg/apiErrors"
	"github.com/eme-digital/ads-audit-api/pkg/log"
)

// MonthlyKpi returns the classified monthly rows with summaries, trend and
// previous-period comparison.
func MonthlyKpi(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseRecordFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid date filter, expected YYYY-MM-DD", nil)
			return
		}

		payload := service.MonthlyKpi(filter)

		log.ForContext(r.Context()).WithFields(log.Fields{
			"rows":   len(payload.Rows),
			"months": len(payload.MonthOptions),
		}).Debug("monthly KPI payload computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("error encoding monthly KPI payload")
		}
	}
}

// DailyKpi returns the date-range aggregated daily rows with the anomaly
// report.
func DailyKpi(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseRecordFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid date filter, expected YYYY-MM-DD", nil)
			return
		}

		payload := service.DailyKpi(filter)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("error encoding daily KPI payload")
		}
	}
}
