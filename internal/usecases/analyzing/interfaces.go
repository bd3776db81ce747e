package analyzing

import (
	"context"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Analyzer expõe as consultas do pipeline de análise sobre o snapshot
// em cache, sempre recortado por um FilterSpec já normalizado pelo
// chamador (DateFrom <= DateTo).
type Analyzer interface {
	// Dimensions retorna os valores disponíveis de cada dimensão e os
	// limites de data do conjunto completo, para os filtros da UI.
	Dimensions(ctx context.Context) (*domain.Dimensions, error)

	// Summary calcula os KPIs escalares do recorte.
	Summary(ctx context.Context, spec domain.FilterSpec) (*domain.KpiSummary, error)

	// Records retorna as linhas do recorte na ordem original.
	Records(ctx context.Context, spec domain.FilterSpec) ([]domain.SaleRecord, error)

	// TopRecords retorna as k linhas de maior receita do recorte.
	TopRecords(ctx context.Context, spec domain.FilterSpec, k int) ([]domain.SaleRecord, error)

	// DailySeries retorna a evolução de receita diária do recorte.
	DailySeries(ctx context.Context, spec domain.FilterSpec) (*domain.GroupedSeries, error)

	// CategorySeries retorna o mix de receita por categoria.
	CategorySeries(ctx context.Context, spec domain.FilterSpec) (*domain.GroupedSeries, error)

	// RegionSeries retorna a receita somada por região.
	RegionSeries(ctx context.Context, spec domain.FilterSpec) (*domain.GroupedSeries, error)

	// WeekdaySeries retorna a receita média por dia da semana.
	WeekdaySeries(ctx context.Context, spec domain.FilterSpec) (*domain.GroupedSeries, error)

	// RefreshSnapshot invalida o cache e recarrega o snapshot.
	RefreshSnapshot(ctx context.Context) error

	// SnapshotFetchedAt retorna o instante do último carregamento.
	SnapshotFetchedAt() time.Time
}
