package handler

import (
	"net/http"

	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/eme-digital/ads-audit-api/internal/scheduler"
	"github.com/eme-digital/ads-audit-api/pkg/apiErrors"
	"github.com/eme-digital/ads-audit-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// SyncServices bundles the background services exposed over the sync
// endpoints.
type SyncServices struct {
	SnapshotSyncService *scheduler.SnapshotSyncService
}

// TriggerSync starts a manual snapshot refresh. Admins only.
func TriggerSync(services SyncServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TriggerSync")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "only administrators can trigger a sync", nil)
			return
		}

		if services.SnapshotSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "snapshot sync service not available", nil)
			return
		}

		runID, err := services.SnapshotSyncService.TriggerManualSync()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message":   "snapshot sync started",
			"syncRunId": runID,
		})
	}
}

// SyncStatus reports the scheduler state.
func SyncStatus(services SyncServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.SnapshotSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "snapshot sync service not available", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(services.SnapshotSyncService.GetStatus())
	}
}
