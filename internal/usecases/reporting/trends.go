package reporting

import (
	"sort"
	"time"

	"github.com/vfg2006/ads-performance-api/internal/domain"
)

// trendWindows são os tamanhos das janelas móveis, em dias
var trendWindows = [3]int{7, 14, 30}

// CampaignTrends calcula os agregados de cada campanha nas janelas móveis
// de 7, 14 e 30 dias encerradas na data de referência. Uma janela de N
// dias é o intervalo inclusivo [referência − N dias, referência]. Só
// entram no resultado campanhas com investimento em pelo menos uma das
// janelas; a ordenação final é por custo de 30 dias decrescente.
func CampaignTrends(records []*domain.AdRecord, referenceDate time.Time) []*domain.CampaignTrend {
	end := dayFloor(referenceDate)

	windowed := make(map[int][]*domain.AdRecord, len(trendWindows))
	for _, days := range trendWindows {
		windowed[days] = FilterByDateRange(records, end.AddDate(0, 0, -days), end)
	}

	// campanhas na ordem de primeira ocorrência no conjunto completo
	campaigns := make([]string, 0)
	seen := make(map[string]bool)
	for _, record := range records {
		if record.CampaignName == "" || seen[record.CampaignName] {
			continue
		}
		seen[record.CampaignName] = true
		campaigns = append(campaigns, record.CampaignName)
	}

	trends := make([]*domain.CampaignTrend, 0, len(campaigns))

	for _, campaign := range campaigns {
		agg7d := Aggregate(filterByCampaign(windowed[7], campaign))
		agg14d := Aggregate(filterByCampaign(windowed[14], campaign))
		agg30d := Aggregate(filterByCampaign(windowed[30], campaign))

		if agg7d.TotalSpend == 0 && agg14d.TotalSpend == 0 && agg30d.TotalSpend == 0 {
			continue
		}

		trends = append(trends, &domain.CampaignTrend{
			CampaignName:   campaign,
			Cost7d:         agg7d.TotalSpend,
			Cost14d:        agg14d.TotalSpend,
			Cost30d:        agg30d.TotalSpend,
			Conversions7d:  agg7d.TotalConversions,
			Conversions14d: agg14d.TotalConversions,
			Conversions30d: agg30d.TotalConversions,
			CPA7d:          agg7d.AvgCostPerConversion,
			CPA14d:         agg14d.AvgCostPerConversion,
			CPA30d:         agg30d.AvgCostPerConversion,
		})
	}

	sort.SliceStable(trends, func(i, j int) bool {
		return trends[i].Cost30d > trends[j].Cost30d
	})

	return trends
}

func filterByCampaign(records []*domain.AdRecord, campaign string) []*domain.AdRecord {
	filtered := make([]*domain.AdRecord, 0, len(records))
	for _, record := range records {
		if record.CampaignName == campaign {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
