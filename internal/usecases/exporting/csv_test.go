package exporting

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func TestWriteCSV(t *testing.T) {
	records := []domain.SaleRecord{
		{
			ID:       1,
			Date:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			Region:   "Sudeste",
			Category: "Eletrônicos",
			Product:  "Smartphone",
			Revenue:  1234.5,
			Quantity: 2,
		},
		{
			ID:       2,
			Date:     time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
			Region:   "Sul",
			Category: "Serviços",
			Product:  "Instalação",
			Revenue:  400,
			Quantity: 1,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"id", "date", "region", "category", "product", "revenue", "quantity"}, rows[0])
	assert.Equal(t, []string{"1", "2026-01-01", "Sudeste", "Eletrônicos", "Smartphone", "1234.50", "2"}, rows[1])
	assert.Equal(t, []string{"2", "2026-01-02", "Sul", "Serviços", "Instalação", "400.00", "1"}, rows[2])
}

func TestWriteCSV_EmptySelection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	// Recorte vazio produz apenas o cabeçalho
	assert.Equal(t, "id,date,region,category,product,revenue,quantity\n", buf.String())
}
