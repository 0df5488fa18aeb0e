package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/caching"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

// RefreshDataset dispara manualmente a recarga do snapshot de vendas
func RefreshDataset(refresher *scheduler.DatasetRefreshService, cache caching.DatasetCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RefreshDataset")

		// Verificar permissões - apenas administradores podem recarregar o dataset
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem recarregar o dataset", nil)
			return
		}

		if err := refresher.RefreshNow(); err != nil {
			if errors.Is(err, scheduler.ErrRefreshAlreadyRunning) {
				apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "Recarga do dataset já em andamento", nil)
				return
			}

			logrus.WithError(err).Error("dataset: manual refresh failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao recarregar o dataset", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(cache.Status())
	}
}

// GetDatasetStatus retorna o estado do snapshot em cache e do agendador de recarga
func GetDatasetStatus(refresher *scheduler.DatasetRefreshService, cache caching.DatasetCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDatasetStatus")

		status := map[string]any{
			"dataset":   cache.Status(),
			"scheduler": refresher.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
