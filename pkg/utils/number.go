package utils

import (
	"fmt"
	"math"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatMoney formata um valor monetário no padrão do relatório,
// ex.: "R$ 12,345.67".
func FormatMoney(f float64) string {
	return "R$ " + FormatAmount(f, 2)
}

// FormatAmount formata um número com separador de milhar e a
// quantidade de casas decimais informada.
func FormatAmount(f float64, decimals int) string {
	formatted := fmt.Sprintf("%.*f", decimals, math.Abs(f))

	intPart := formatted
	fracPart := ""
	if idx := strings.IndexByte(formatted, '.'); idx >= 0 {
		intPart, fracPart = formatted[:idx], formatted[idx:]
	}

	var sb strings.Builder
	if f < 0 {
		sb.WriteByte('-')
	}

	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(digit)
	}
	sb.WriteString(fracPart)

	return sb.String()
}

// FormatInt formata um inteiro com separador de milhar.
func FormatInt(n int) string {
	return FormatAmount(float64(n), 0)
}
