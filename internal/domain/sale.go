package domain

import "time"

// SaleRecord representa uma linha transacional de venda.
// Invariantes: Revenue >= 0, Quantity >= 1 e ID é único e imutável
// depois de atribuído pelo banco na inserção.
type SaleRecord struct {
	ID       int64     `json:"id"`
	Date     time.Time `json:"date"`
	Region   string    `json:"region"`
	Category string    `json:"category"`
	Product  string    `json:"product"`
	Revenue  float64   `json:"revenue"`
	Quantity int       `json:"quantity"`
}

// FilterSpec descreve o recorte de uma consulta: intervalo de datas
// (inclusivo nas duas pontas) e conjuntos de valores permitidos por
// dimensão. Uma seleção vazia em qualquer dimensão exclui todas as
// linhas — espelha o comportamento do multiselect sem opções marcadas.
type FilterSpec struct {
	DateFrom   time.Time
	DateTo     time.Time
	Regions    []string
	Categories []string
	Products   []string
}

// KpiSummary é derivado a cada consulta e nunca persistido.
type KpiSummary struct {
	TotalRevenue     float64 `json:"total_revenue"`
	TotalQuantity    int     `json:"total_quantity"`
	AvgTicket        float64 `json:"avg_ticket"`
	TransactionCount int     `json:"transaction_count"`
}

// Dimensions descreve os valores disponíveis para os filtros da UI,
// junto com os limites de data do conjunto completo.
type Dimensions struct {
	MinDate    *time.Time `json:"min_date"`
	MaxDate    *time.Time `json:"max_date"`
	Regions    []string   `json:"regions"`
	Categories []string   `json:"categories"`
	Products   []string   `json:"products"`
}
