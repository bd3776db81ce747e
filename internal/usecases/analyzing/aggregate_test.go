package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/generating"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestSummarize_Scenario(t *testing.T) {
	records := []domain.SaleRecord{
		{Date: day(2026, 1, 1), Region: "Sul", Category: "Roupas", Product: "Casaco", Revenue: 300.00, Quantity: 1},
		{Date: day(2026, 1, 2), Region: "Sul", Category: "Roupas", Product: "Casaco", Revenue: 100.00, Quantity: 2},
	}

	summary := Summarize(records)

	assert.Equal(t, 400.00, summary.TotalRevenue)
	assert.Equal(t, 3, summary.TotalQuantity)
	assert.Equal(t, 133.33, summary.AvgTicket)
	assert.Equal(t, 2, summary.TransactionCount)
}

func TestSummarize_EmptyInput(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.Equal(t, 0, summary.TotalQuantity)
	assert.Equal(t, 0.0, summary.AvgTicket)
	assert.Equal(t, 0, summary.TransactionCount)
}

func TestDailyRevenue_ChronologicalOrder(t *testing.T) {
	records := []domain.SaleRecord{
		{Date: day(2026, 2, 10), Revenue: 50},
		{Date: day(2026, 1, 5), Revenue: 30},
		{Date: day(2026, 2, 10), Revenue: 20},
		{Date: day(2026, 1, 20), Revenue: 10},
	}

	series := DailyRevenue(records)

	require.Len(t, series.Points, 3)
	assert.Equal(t, "2026-01-05", series.Points[0].Label)
	assert.Equal(t, "2026-01-20", series.Points[1].Label)
	assert.Equal(t, "2026-02-10", series.Points[2].Label)

	require.NotNil(t, series.Points[2].Value)
	assert.Equal(t, 70.0, *series.Points[2].Value)
}

func TestAggregation_Conservation(t *testing.T) {
	gen := generating.NewGenerator(domain.DefaultCatalog())
	records := gen.Generate(generating.Params{
		Seed:      7,
		StartDate: day(2026, 1, 1),
		Days:      30,
	})

	summary := Summarize(records)
	daily := DailyRevenue(records)
	mix := CategoryMix(records)

	var dailySum, mixSum float64
	for _, p := range daily.Points {
		require.NotNil(t, p.Value)
		dailySum += *p.Value
	}
	for _, p := range mix.Points {
		require.NotNil(t, p.Value)
		mixSum += *p.Value
	}

	// Séries derivadas do mesmo recorte conservam o total
	assert.InDelta(t, summary.TotalRevenue, dailySum, 0.01)
	assert.InDelta(t, summary.TotalRevenue, mixSum, 0.01)
}

func TestCategoryMix_FirstSeenOrder(t *testing.T) {
	records := []domain.SaleRecord{
		{Date: day(2026, 1, 1), Category: "Roupas", Revenue: 10},
		{Date: day(2026, 1, 1), Category: "Alimentos", Revenue: 20},
		{Date: day(2026, 1, 2), Category: "Roupas", Revenue: 5},
	}

	series := CategoryMix(records)

	require.Len(t, series.Points, 2)
	assert.Equal(t, "Roupas", series.Points[0].Label)
	assert.Equal(t, 15.0, *series.Points[0].Value)
	assert.Equal(t, "Alimentos", series.Points[1].Label)
	assert.Equal(t, 20.0, *series.Points[1].Value)
}

func TestWeekdayAverage_ReindexedOnFixedLabels(t *testing.T) {
	// 2026-01-05 é segunda-feira; 2026-01-07 é quarta-feira
	records := []domain.SaleRecord{
		{Date: day(2026, 1, 5), Revenue: 100},
		{Date: day(2026, 1, 5), Revenue: 300},
		{Date: day(2026, 1, 7), Revenue: 50},
	}

	series := WeekdayAverage(records)

	require.Len(t, series.Points, 7)

	assert.Equal(t, "Segunda-feira", series.Points[0].Label)
	require.NotNil(t, series.Points[0].Value)
	assert.Equal(t, 200.0, *series.Points[0].Value)

	assert.Equal(t, "Quarta-feira", series.Points[2].Label)
	require.NotNil(t, series.Points[2].Value)
	assert.Equal(t, 50.0, *series.Points[2].Value)

	// Dias sem vendas aparecem com valor nulo, nunca omitidos
	for _, idx := range []int{1, 3, 4, 5, 6} {
		assert.Nil(t, series.Points[idx].Value, "dia %s", series.Points[idx].Label)
	}
}

func TestWeekdayAverage_EmptyInput(t *testing.T) {
	series := WeekdayAverage(nil)

	require.Len(t, series.Points, 7)
	for i, label := range domain.Weekdays {
		assert.Equal(t, label, series.Points[i].Label)
		assert.Nil(t, series.Points[i].Value)
	}
}

func TestTopByRevenue_StableOnTies(t *testing.T) {
	records := []domain.SaleRecord{
		{ID: 1, Revenue: 100},
		{ID: 2, Revenue: 100},
		{ID: 3, Revenue: 100},
		{ID: 4, Revenue: 500},
	}

	top := TopByRevenue(records, 15)

	require.Len(t, top, 4)
	assert.Equal(t, int64(4), top[0].ID)
	// Empates preservam a ordem original das linhas
	assert.Equal(t, int64(1), top[1].ID)
	assert.Equal(t, int64(2), top[2].ID)
	assert.Equal(t, int64(3), top[3].ID)
}

func TestTopByRevenue_Truncation(t *testing.T) {
	records := []domain.SaleRecord{
		{ID: 1, Revenue: 10},
		{ID: 2, Revenue: 30},
		{ID: 3, Revenue: 20},
	}

	top := TopByRevenue(records, 2)

	require.Len(t, top, 2)
	assert.Equal(t, int64(2), top[0].ID)
	assert.Equal(t, int64(3), top[1].ID)

	// Entrada original não é reordenada
	assert.Equal(t, int64(1), records[0].ID)

	assert.Empty(t, TopByRevenue(records, 0))
	assert.Len(t, TopByRevenue(records, 10), 3)
}
