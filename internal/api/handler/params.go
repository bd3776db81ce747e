package handler

import (
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// parseFilterSpec monta o FilterSpec a partir da query string, usando
// as dimensões do conjunto completo como padrão:
//   - datas ausentes assumem os limites do conjunto; uma data única
//     vale como as duas pontas; par invertido é normalizado por troca
//     antes de chegar ao motor de filtro;
//   - dimensão ausente na query significa "tudo selecionado";
//     presente porém vazia significa seleção vazia (nenhuma linha).
func parseFilterSpec(r *http.Request, dimensions *domain.Dimensions) (domain.FilterSpec, error) {
	query := r.URL.Query()

	spec := domain.FilterSpec{
		Regions:    parseSelection(query.Get("regions"), query.Has("regions"), dimensions.Regions),
		Categories: parseSelection(query.Get("categories"), query.Has("categories"), dimensions.Categories),
		Products:   parseSelection(query.Get("products"), query.Has("products"), dimensions.Products),
	}

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return spec, err
	}
	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return spec, err
	}

	// Uma única data selecionada vale como as duas pontas
	if startDate == nil {
		startDate = endDate
	}
	if endDate == nil {
		endDate = startDate
	}

	if startDate == nil {
		if dimensions.MinDate != nil {
			startDate = dimensions.MinDate
		}
		if dimensions.MaxDate != nil {
			endDate = dimensions.MaxDate
		}
	}

	if startDate != nil {
		spec.DateFrom = utils.TruncateToDay(*startDate)
		spec.DateTo = utils.TruncateToDay(*endDate)
	}

	// Par invertido nunca chega ao motor de filtro
	if spec.DateFrom.After(spec.DateTo) {
		spec.DateFrom, spec.DateTo = spec.DateTo, spec.DateFrom
	}

	return spec, nil
}

func parseSelection(raw string, present bool, allValues []string) []string {
	if !present {
		return allValues
	}

	values := make([]string, 0)
	for _, value := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			values = append(values, trimmed)
		}
	}

	return values
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("falha ao codificar resposta JSON")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
