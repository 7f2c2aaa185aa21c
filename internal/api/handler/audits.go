package handler

import (
	"net/http"

	"github.com/eme-digital/ads-audit-api/internal/usecases/reporting"
	"github.com/eme-digital/ads-audit-api/pkg/log"
)

// CampaignAudit returns the campaign-hygiene bundle for the selected
// snapshot date.
func CampaignAudit(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result := service.CampaignAudit(parseAuditFilter(r))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("error encoding campaign audit")
		}
	}
}

// AudienceAudit returns the audience-hygiene bundle.
func AudienceAudit(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result := service.AudienceAudit(parseAuditFilter(r))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("error encoding audience audit")
		}
	}
}
