package reporting

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// Larguras fixas das colunas da tabela, em mm
var columnWidths = [6]float64{30, 30, 30, 40, 25, 30}

var tableHeaders = [6]string{"Data", "Regiao", "Categoria", "Produto", "Qtd", "Receita"}

const productMaxChars = 20

// Renderer serializa o recorte filtrado + KPIs em um documento PDF
// paginado de layout fixo.
type Renderer interface {
	Render(filtered []domain.SaleRecord, summary domain.KpiSummary) ([]byte, error)
}

type Service struct {
	topSales int
}

func NewService(cfg *config.Config) Renderer {
	return &Service{
		topSales: cfg.Report.TopSales,
	}
}

// Render produz o documento completo: título, carimbo de geração,
// faixa de sumário com três células iguais e a tabela Top-N por
// receita. A quebra de página é automática (margem de 15mm) — o
// renderizador não implementa paginação própria. Recorte vazio ainda
// produz um documento válido, apenas sem linhas na tabela.
//
// Todo texto de célula passa pelo tradutor cp1252: caracteres fora da
// codificação são substituídos, nunca causam erro.
func (s *Service) Render(filtered []domain.SaleRecord, summary domain.KpiSummary) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Relatorio Executivo de Vendas"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	generatedAt := fmt.Sprintf("Gerado em: %s", time.Now().Format("02/01/2006 15:04"))
	pdf.CellFormat(0, 8, tr(generatedAt), "", 1, "L", false, 0, "")

	// Faixa de sumário: retângulo cinza com três células de 60mm
	pdf.SetFillColor(240, 240, 240)
	pdf.Rect(10, 35, 190, 25, "F")
	pdf.SetY(40)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(60, 8, tr("Receita Total"), "", 0, "C", false, 0, "")
	pdf.CellFormat(60, 8, tr("Quantidade"), "", 0, "C", false, 0, "")
	pdf.CellFormat(60, 8, tr("Ticket Medio"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(60, 8, tr(utils.FormatMoney(summary.TotalRevenue)), "", 0, "C", false, 0, "")
	pdf.CellFormat(60, 8, tr(utils.FormatInt(summary.TotalQuantity)), "", 0, "C", false, 0, "")
	pdf.CellFormat(60, 8, tr(utils.FormatMoney(summary.AvgTicket)), "", 1, "C", false, 0, "")

	pdf.Ln(15)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Top %d Vendas (por receita):", s.topSales)), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	for i, header := range tableHeaders {
		pdf.CellFormat(columnWidths[i], 8, tr(header), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, record := range analyzing.TopByRevenue(filtered, s.topSales) {
		cells := [6]string{
			record.Date.Format(time.DateOnly),
			record.Region,
			record.Category,
			truncate(record.Product, productMaxChars),
			fmt.Sprintf("%d", record.Quantity),
			utils.FormatMoney(record.Revenue),
		}

		for i, cell := range cells {
			align := "L"
			if i == 4 {
				align = "C"
			}
			pdf.CellFormat(columnWidths[i], 7, tr(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "erro ao serializar o documento PDF")
	}

	return buf.Bytes(), nil
}

// FileName retorna o nome convencionado do artefato para download.
func FileName(date time.Time) string {
	return fmt.Sprintf("Relatorio_Vendas_%s.pdf", date.Format(time.DateOnly))
}

func truncate(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
