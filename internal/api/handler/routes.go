package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Sales retorna as rotas de consulta do pipeline de análise
func Sales(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/dimensions",
			Method:  http.MethodGet,
			Handler: GetSalesDimensions(service),
		},
		{
			Path:    "/v1/sales/summary",
			Method:  http.MethodGet,
			Handler: GetSalesSummary(service),
		},
		{
			Path:    "/v1/sales/series/:kind",
			Method:  http.MethodGet,
			Handler: GetSalesSeries(service),
		},
		{
			Path:    "/v1/sales/records",
			Method:  http.MethodGet,
			Handler: GetSalesRecords(service),
		},
	}
}

// Exports retorna as rotas dos artefatos de exportação (CSV e PDF)
func Exports(service analyzing.Analyzer, renderer reporting.Renderer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/export/csv",
			Method:  http.MethodGet,
			Handler: ExportCSV(service),
		},
		{
			Path:    "/v1/sales/report",
			Method:  http.MethodGet,
			Handler: ExportReport(service, renderer),
		},
	}
}

func CronJobs(refreshService *scheduler.DatasetRefreshService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(refreshService),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(refreshService),
		},
	}
}
