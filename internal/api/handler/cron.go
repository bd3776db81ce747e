package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

const cronTypeDatasetRefresh = "dataset-refresh"

// RunCronJob dispara manualmente um job agendado.
func RunCronJob(refreshService *scheduler.DatasetRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		if cronType != cronTypeDatasetRefresh {
			logger.WithField("type", cronType).Warn("cron: unknown job type")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "job desconhecido: "+cronType, nil)
			return
		}

		logger.Info("cron: manual dataset refresh triggered")

		if err := refreshService.RunNow(r.Context()); err != nil {
			logger.WithError(err).Error("cron: dataset refresh failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		writeJSON(w, r, map[string]string{"status": "ok"})
	})
}

func GetCronStatus(refreshService *scheduler.DatasetRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, map[string]scheduler.RefreshStatus{
			cronTypeDatasetRefresh: refreshService.Status(),
		})
	})
}
