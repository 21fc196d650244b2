package utils

import "math"

// RoundWithTwoDecimalPlace arredonda os índices monetários e de taxa na
// borda da API. Valores não finitos viram zero, coerente com a garantia
// de que o pipeline nunca expõe NaN ou infinito.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return math.Round(f*100) / 100
}
