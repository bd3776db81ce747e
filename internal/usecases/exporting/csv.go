package exporting

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// FileName é o nome convencionado do artefato de exportação tabular.
const FileName = "dados_filtrados.csv"

var header = []string{"id", "date", "region", "category", "product", "revenue", "quantity"}

// WriteCSV serializa o recorte filtrado em CSV UTF-8: cabeçalho com
// os nomes dos campos e uma linha por registro, sem coluna de índice.
// Recorte vazio produz apenas o cabeçalho.
func WriteCSV(w io.Writer, records []domain.SaleRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "erro ao escrever cabeçalho do CSV")
	}

	for _, record := range records {
		row := []string{
			strconv.FormatInt(record.ID, 10),
			record.Date.Format(time.DateOnly),
			record.Region,
			record.Category,
			record.Product,
			strconv.FormatFloat(record.Revenue, 'f', 2, 64),
			strconv.Itoa(record.Quantity),
		}

		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "erro ao escrever linha do CSV")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "erro ao finalizar o CSV")
}
