package handler

import (
	"net/http"

	"github.com/eme-digital/ads-audit-api/internal/usecases/reporting"
	"github.com/eme-digital/ads-audit-api/pkg/apiErrors"
	"github.com/eme-digital/ads-audit-api/pkg/log"
)

// ManagementRecords returns the filtered management rows with facet lists.
func ManagementRecords(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseRecordFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid date filter, expected YYYY-MM-DD", nil)
			return
		}

		payload := service.Management(filter)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("error encoding management payload")
		}
	}
}
