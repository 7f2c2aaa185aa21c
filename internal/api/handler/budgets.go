package handler

import (
	"net/http"

	"github.com/eme-digital/ads-audit-api/internal/usecases/reporting"
	"github.com/eme-digital/ads-audit-api/pkg/log"
)

// BudgetHeatmap returns the manager by month exhaustion matrix.
func BudgetHeatmap(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := service.BudgetHeatmap(parseHeatmapFilter(r))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("error encoding budget heatmap")
		}
	}
}

// BudgetSummary returns the per-manager exhaustion summary table.
func BudgetSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := service.BudgetSummary()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("error encoding budget summary")
		}
	}
}
