package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func sampleDimensions() *domain.Dimensions {
	minDate := day(2026, 1, 1)
	maxDate := day(2026, 6, 29)

	return &domain.Dimensions{
		MinDate:    &minDate,
		MaxDate:    &maxDate,
		Regions:    []string{"Norte", "Sudeste", "Sul"},
		Categories: []string{"Alimentos", "Roupas"},
		Products:   []string{"Bebidas", "Camiseta", "Casaco"},
	}
}

func TestParseFilterSpec(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected domain.FilterSpec
	}{
		{
			name:  "query vazia assume os limites do conjunto e todas as dimensões",
			query: "",
			expected: domain.FilterSpec{
				DateFrom:   day(2026, 1, 1),
				DateTo:     day(2026, 6, 29),
				Regions:    []string{"Norte", "Sudeste", "Sul"},
				Categories: []string{"Alimentos", "Roupas"},
				Products:   []string{"Bebidas", "Camiseta", "Casaco"},
			},
		},
		{
			name:  "apenas data inicial vale como as duas pontas",
			query: "start_date=2026-02-10",
			expected: domain.FilterSpec{
				DateFrom:   day(2026, 2, 10),
				DateTo:     day(2026, 2, 10),
				Regions:    []string{"Norte", "Sudeste", "Sul"},
				Categories: []string{"Alimentos", "Roupas"},
				Products:   []string{"Bebidas", "Camiseta", "Casaco"},
			},
		},
		{
			name:  "apenas data final vale como as duas pontas",
			query: "end_date=2026-03-05",
			expected: domain.FilterSpec{
				DateFrom:   day(2026, 3, 5),
				DateTo:     day(2026, 3, 5),
				Regions:    []string{"Norte", "Sudeste", "Sul"},
				Categories: []string{"Alimentos", "Roupas"},
				Products:   []string{"Bebidas", "Camiseta", "Casaco"},
			},
		},
		{
			name:  "par invertido é normalizado por troca",
			query: "start_date=2026-04-30&end_date=2026-04-01",
			expected: domain.FilterSpec{
				DateFrom:   day(2026, 4, 1),
				DateTo:     day(2026, 4, 30),
				Regions:    []string{"Norte", "Sudeste", "Sul"},
				Categories: []string{"Alimentos", "Roupas"},
				Products:   []string{"Bebidas", "Camiseta", "Casaco"},
			},
		},
		{
			name:  "dimensão presente restringe a seleção e descarta espaços",
			query: "regions=Sul,%20Norte",
			expected: domain.FilterSpec{
				DateFrom:   day(2026, 1, 1),
				DateTo:     day(2026, 6, 29),
				Regions:    []string{"Sul", "Norte"},
				Categories: []string{"Alimentos", "Roupas"},
				Products:   []string{"Bebidas", "Camiseta", "Casaco"},
			},
		},
		{
			name:  "dimensão presente porém vazia significa seleção vazia",
			query: "products=",
			expected: domain.FilterSpec{
				DateFrom:   day(2026, 1, 1),
				DateTo:     day(2026, 6, 29),
				Regions:    []string{"Norte", "Sudeste", "Sul"},
				Categories: []string{"Alimentos", "Roupas"},
				Products:   []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/v1/sales/records?"+tt.query, nil)

			spec, err := parseFilterSpec(r, sampleDimensions())
			require.NoError(t, err)

			assert.Equal(t, tt.expected, spec)
		})
	}
}

func TestParseFilterSpec_InvalidDate(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/sales/records?start_date=10%2F02%2F2026", nil)

	_, err := parseFilterSpec(r, sampleDimensions())
	assert.Error(t, err)
}

func TestParseFilterSpec_EmptyDataset(t *testing.T) {
	// Sem registros não há limites de data: o recorte fica sem pontas
	r := httptest.NewRequest(http.MethodGet, "/v1/sales/records", nil)

	spec, err := parseFilterSpec(r, &domain.Dimensions{})
	require.NoError(t, err)

	assert.True(t, spec.DateFrom.IsZero())
	assert.True(t, spec.DateTo.IsZero())
}

func TestParseSelection(t *testing.T) {
	allValues := []string{"Norte", "Sul"}

	// Parâmetro ausente significa "tudo selecionado"
	assert.Equal(t, allValues, parseSelection("", false, allValues))

	// Presente porém vazio significa seleção vazia, nunca o padrão
	assert.Equal(t, []string{}, parseSelection("", true, allValues))
	assert.Equal(t, []string{}, parseSelection(" , ", true, allValues))

	assert.Equal(t, []string{"Sul"}, parseSelection("Sul", true, allValues))
	assert.Equal(t, []string{"Sul", "Norte"}, parseSelection(" Sul , Norte ", true, allValues))
}
