package handler

import (
	"bytes"
	"net/http"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// ExportCSV devolve o recorte filtrado como CSV UTF-8 para download.
func ExportCSV(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		spec, ok := resolveFilterSpec(w, r, service)
		if !ok {
			return
		}

		records, err := service.Records(r.Context(), spec)
		if err != nil {
			logger.WithError(err).Error("export: failed to load filtered records")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		var buf bytes.Buffer
		if err := exporting.WriteCSV(&buf, records); err != nil {
			logger.WithError(err).Error("export: failed to write CSV")
			apiErrors.WriteError(w, apiErrors.ErrExportGeneration, err.Error(), nil)
			return
		}

		logger.WithField("records", len(records)).Info("export: CSV generated")

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+exporting.FileName+`"`)
		w.Write(buf.Bytes())
	})
}

// ExportReport devolve o relatório executivo em PDF para download.
func ExportReport(service analyzing.Analyzer, renderer reporting.Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		spec, ok := resolveFilterSpec(w, r, service)
		if !ok {
			return
		}

		records, err := service.Records(r.Context(), spec)
		if err != nil {
			logger.WithError(err).Error("report: failed to load filtered records")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		summary, err := service.Summary(r.Context(), spec)
		if err != nil {
			logger.WithError(err).Error("report: failed to compute summary")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		document, err := renderer.Render(records, *summary)
		if err != nil {
			logger.WithError(err).Error("report: failed to render PDF")
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, err.Error(), nil)
			return
		}

		reportID, err := utils.GenerateID()
		if err != nil {
			reportID = "unknown"
		}

		logger.WithFields(log.Fields{
			"report_id": reportID,
			"records":   len(records),
			"bytes":     len(document),
		}).Info("report: PDF generated")

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="`+reporting.FileName(time.Now())+`"`)
		w.Write(document)
	})
}
