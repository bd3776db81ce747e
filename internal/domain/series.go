package domain

import "time"

// SeriesPoint é um ponto de uma série agrupada. Value é nil quando o
// rótulo existe na ordem canônica mas não há dados para ele (ex.: dia
// da semana sem vendas no recorte).
type SeriesPoint struct {
	Label string   `json:"label"`
	Value *float64 `json:"value"`
}

// GroupedSeries mapeia rótulos para agregados em uma ordem definida
// pelo produtor (cronológica para datas, ordem fixa para dias da
// semana, primeira ocorrência para as demais dimensões).
type GroupedSeries struct {
	Name   string        `json:"name"`
	Points []SeriesPoint `json:"points"`
}

// Weekdays é a ordem canônica dos dias da semana usada pelas séries,
// começando na segunda-feira. Tabela explícita para manter a garantia
// de ordenação independente de locale.
var Weekdays = [7]string{
	"Segunda-feira",
	"Terça-feira",
	"Quarta-feira",
	"Quinta-feira",
	"Sexta-feira",
	"Sábado",
	"Domingo",
}

// WeekdayIndex converte o time.Weekday do Go (domingo = 0) para o
// índice canônico com segunda-feira = 0.
func WeekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
