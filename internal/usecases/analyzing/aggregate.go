package analyzing

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// Summarize calcula os KPIs escalares do recorte. Conjunto vazio
// produz o sumário zerado; o ticket médio é protegido contra divisão
// por zero.
func Summarize(records []domain.SaleRecord) domain.KpiSummary {
	summary := domain.KpiSummary{
		TransactionCount: len(records),
	}

	for _, record := range records {
		summary.TotalRevenue += record.Revenue
		summary.TotalQuantity += record.Quantity
	}

	if summary.TotalQuantity > 0 {
		summary.AvgTicket = utils.RoundWithTwoDecimalPlace(
			summary.TotalRevenue / float64(summary.TotalQuantity),
		)
	}

	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue)

	return summary
}

// DailyRevenue agrupa a receita por data, em ordem cronológica.
func DailyRevenue(records []domain.SaleRecord) domain.GroupedSeries {
	sums := make(map[string]float64)
	for _, record := range records {
		sums[record.Date.Format(time.DateOnly)] += record.Revenue
	}

	labels := make([]string, 0, len(sums))
	for label := range sums {
		labels = append(labels, label)
	}
	// Datas ISO ordenam cronologicamente como strings
	sort.Strings(labels)

	points := make([]domain.SeriesPoint, 0, len(labels))
	for _, label := range labels {
		value := sums[label]
		points = append(points, domain.SeriesPoint{Label: label, Value: &value})
	}

	return domain.GroupedSeries{Name: "daily_revenue", Points: points}
}

// CategoryMix agrupa a receita por categoria na ordem de primeira
// ocorrência. Consumido como distribuição proporcional, então a ordem
// não é significativa.
func CategoryMix(records []domain.SaleRecord) domain.GroupedSeries {
	return sumBy(records, "category_mix", func(r domain.SaleRecord) string {
		return r.Category
	})
}

// RegionalRevenue agrupa a receita por região na ordem de primeira
// ocorrência.
func RegionalRevenue(records []domain.SaleRecord) domain.GroupedSeries {
	return sumBy(records, "regional_revenue", func(r domain.SaleRecord) string {
		return r.Region
	})
}

// WeekdayAverage calcula a receita média por dia da semana,
// reindexada na ordem canônica de 7 rótulos: dias sem vendas aparecem
// com valor nulo, nunca omitidos.
func WeekdayAverage(records []domain.SaleRecord) domain.GroupedSeries {
	var sums [7]float64
	var counts [7]int

	for _, record := range records {
		idx := domain.WeekdayIndex(record.Date.Weekday())
		sums[idx] += record.Revenue
		counts[idx]++
	}

	points := make([]domain.SeriesPoint, 0, len(domain.Weekdays))
	for i, label := range domain.Weekdays {
		point := domain.SeriesPoint{Label: label}
		if counts[i] > 0 {
			mean := sums[i] / float64(counts[i])
			point.Value = &mean
		}
		points = append(points, point)
	}

	return domain.GroupedSeries{Name: "weekday_average", Points: points}
}

// TopByRevenue retorna os k registros de maior receita. A ordenação é
// estável: empates mantêm a ordem original das linhas, exigência para
// saída reprodutível.
func TopByRevenue(records []domain.SaleRecord, k int) []domain.SaleRecord {
	if k <= 0 {
		return []domain.SaleRecord{}
	}

	top := make([]domain.SaleRecord, len(records))
	copy(top, records)

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Revenue > top[j].Revenue
	})

	if k < len(top) {
		top = top[:k]
	}

	return top
}

func sumBy(records []domain.SaleRecord, name string, key func(domain.SaleRecord) string) domain.GroupedSeries {
	sums := make(map[string]*float64)
	order := make([]string, 0)

	for _, record := range records {
		label := key(record)
		if sum, ok := sums[label]; ok {
			*sum += record.Revenue
			continue
		}
		value := record.Revenue
		sums[label] = &value
		order = append(order, label)
	}

	points := make([]domain.SeriesPoint, 0, len(order))
	for _, label := range order {
		points = append(points, domain.SeriesPoint{Label: label, Value: sums[label]})
	}

	return domain.GroupedSeries{Name: name, Points: points}
}
