package utils

import "time"

// ParseDate interpreta uma data no formato ISO (AAAA-MM-DD). String
// vazia retorna nil sem erro, indicando parâmetro ausente.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// TruncateToDay descarta a componente de hora mantendo o fuso UTC.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
