package handler

import (
	"net/http"

	"github.com/eme-digital/ads-audit-api/internal/usecases/reporting"
	"github.com/eme-digital/ads-audit-api/pkg/log"
)

// PortfolioScores returns the ranked manager scores with the fleet trend
// and top-issue buckets.
func PortfolioScores(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := service.Portfolio(parseScoreFilter(r))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("error encoding portfolio payload")
		}
	}
}
