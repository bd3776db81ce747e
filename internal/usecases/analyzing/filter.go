package analyzing

import (
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Filter reduz o conjunto completo ao recorte da consulta: data dentro
// do intervalo inclusivo e região/categoria/produto pertencentes aos
// conjuntos selecionados. O filtro é puro e estável — preserva a ordem
// de entrada e nunca reordena. Resultado vazio é um desfecho válido.
//
// Uma seleção vazia em qualquer dimensão não corresponde a nenhuma
// linha. Esse é o comportamento intencional de "nenhuma opção
// marcada" no multiselect da UI, não um acidente da checagem de
// pertencimento.
func Filter(records []domain.SaleRecord, spec domain.FilterSpec) []domain.SaleRecord {
	regions := toSet(spec.Regions)
	categories := toSet(spec.Categories)
	products := toSet(spec.Products)

	filtered := make([]domain.SaleRecord, 0, len(records))
	for _, record := range records {
		if record.Date.Before(spec.DateFrom) || record.Date.After(spec.DateTo) {
			continue
		}
		if !regions[record.Region] || !categories[record.Category] || !products[record.Product] {
			continue
		}
		filtered = append(filtered, record)
	}

	return filtered
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
