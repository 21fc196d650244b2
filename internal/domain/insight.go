package domain

import (
	"time"
)

type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// AggregateMetrics contém os totais de um conjunto de registros e as
// métricas derivadas. As razões são sempre recalculadas a partir dos
// totais com guarda de divisão por zero, nunca NaN ou infinito.
type AggregateMetrics struct {
	TotalSpend           float64 `json:"total_spend"`
	TotalConversions     float64 `json:"total_conversions"`
	TotalImpressions     float64 `json:"total_impressions"`
	TotalClicks          float64 `json:"total_clicks"`
	TotalReach           float64 `json:"total_reach"`
	AvgCostPerConversion float64 `json:"avg_cost_per_conversion"`
	CTR                  float64 `json:"ctr"`
	CPC                  float64 `json:"cpc"`
}

// AvailablePeriod reporta o intervalo de datas presente no dataset ingerido
type AvailablePeriod struct {
	MinDate *time.Time `json:"min_date"`
	MaxDate *time.Time `json:"max_date"`
}

// SafeRatio devolve numerator/denominator quando o denominador é positivo,
// caso contrário zero. Toda razão derivada do pipeline passa por aqui.
func SafeRatio(numerator, denominator float64) float64 {
	if denominator > 0 {
		return numerator / denominator
	}
	return 0
}
