package reporting

import (
	"time"

	"github.com/vfg2006/ads-performance-api/internal/domain"
)

// dayFloor normaliza um instante para a meia-noite local do seu dia
// calendário, descartando qualquer componente de horário residual
func dayFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FilterByDateRange seleciona os registros cuja data cai no intervalo
// [from, to], ambos os limites inclusivos. Os limites são normalizados
// para o dia calendário, de modo que um registro datado exatamente no dia
// de fronteira entra independente do horário carregado pelos limites.
func FilterByDateRange(records []*domain.AdRecord, from, to time.Time) []*domain.AdRecord {
	fromDay := dayFloor(from)
	toDay := dayFloor(to)

	filtered := make([]*domain.AdRecord, 0, len(records))
	for _, record := range records {
		day := dayFloor(record.Date)
		if !day.Before(fromDay) && !day.After(toDay) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

// Aggregate soma as métricas básicas do conjunto e deriva as razões a
// partir dos totais. Conjunto vazio produz totais e razões zeradas,
// nunca NaN e nunca erro.
func Aggregate(records []*domain.AdRecord) *domain.AggregateMetrics {
	totals := &domain.AggregateMetrics{}

	for _, record := range records {
		totals.TotalSpend += record.Spend
		totals.TotalConversions += record.Conversions
		totals.TotalImpressions += record.Impressions
		totals.TotalClicks += record.Clicks
		totals.TotalReach += record.Reach
	}

	totals.AvgCostPerConversion = domain.SafeRatio(totals.TotalSpend, totals.TotalConversions)
	totals.CTR = domain.SafeRatio(totals.TotalClicks, totals.TotalImpressions) * 100
	totals.CPC = domain.SafeRatio(totals.TotalSpend, totals.TotalClicks)

	return totals
}
