package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

func GetSalesDimensions(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dimensions, err := service.Dimensions(r.Context())
		if err != nil {
			logger.WithError(err).Error("sales: failed to load dimensions")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		writeJSON(w, r, dimensions)
	})
}

func GetSalesSummary(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		spec, ok := resolveFilterSpec(w, r, service)
		if !ok {
			return
		}

		summary, err := service.Summary(r.Context(), spec)
		if err != nil {
			logger.WithError(err).Error("sales: failed to compute summary")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"transaction_count": summary.TransactionCount,
		}).Debug("sales: summary computed")

		writeJSON(w, r, summary)
	})
}

func GetSalesSeries(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kind := httprouter.ParamsFromContext(r.Context()).ByName("kind")

		spec, ok := resolveFilterSpec(w, r, service)
		if !ok {
			return
		}

		var series *domain.GroupedSeries
		var err error

		switch kind {
		case "daily":
			series, err = service.DailySeries(r.Context(), spec)
		case "category":
			series, err = service.CategorySeries(r.Context(), spec)
		case "region":
			series, err = service.RegionSeries(r.Context(), spec)
		case "weekday":
			series, err = service.WeekdaySeries(r.Context(), spec)
		default:
			logger.WithField("kind", kind).Warn("sales: unknown series kind")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "série desconhecida: "+kind, nil)
			return
		}

		if err != nil {
			logger.WithFields(log.Fields{
				"kind":  kind,
				"error": err.Error(),
			}).Error("sales: failed to compute series")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		writeJSON(w, r, series)
	})
}

func GetSalesRecords(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		spec, ok := resolveFilterSpec(w, r, service)
		if !ok {
			return
		}

		var records []domain.SaleRecord
		var err error

		if rawTop := r.URL.Query().Get("top"); rawTop != "" {
			top, convErr := strconv.Atoi(rawTop)
			if convErr != nil || top < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "parâmetro top inválido: "+rawTop, nil)
				return
			}
			records, err = service.TopRecords(r.Context(), spec, top)
		} else {
			records, err = service.Records(r.Context(), spec)
		}

		if err != nil {
			logger.WithError(err).Error("sales: failed to list records")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		writeJSON(w, r, records)
	})
}

// resolveFilterSpec carrega as dimensões e normaliza a query. Um
// recorte sem correspondências é um desfecho válido — nunca um erro.
func resolveFilterSpec(w http.ResponseWriter, r *http.Request, service analyzing.Analyzer) (domain.FilterSpec, bool) {
	logger := log.ForContext(r.Context())

	dimensions, err := service.Dimensions(r.Context())
	if err != nil {
		logger.WithError(err).Error("sales: failed to load dimensions for filter")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
		return domain.FilterSpec{}, false
	}

	spec, err := parseFilterSpec(r, dimensions)
	if err != nil {
		logger.WithFields(log.Fields{
			"start_date": r.URL.Query().Get("start_date"),
			"end_date":   r.URL.Query().Get("end_date"),
			"error":      err.Error(),
		}).Warn("sales: invalid date parameter")
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
		return domain.FilterSpec{}, false
	}

	return spec, true
}
