package reporting

import (
	"sort"

	"github.com/vfg2006/ads-performance-api/internal/domain"
)

// TopEntities agrupa os registros pela chave de sub-item (palavra-chave
// ou criativo), soma as métricas de cada grupo e só então recalcula as
// razões a partir dos totais agrupados: derivar depois da soma é o que
// garante a ponderação correta. Sub-itens sem conversão são filtrados; a
// ordenação é por conversões decrescentes com empates mantendo a ordem de
// primeira ocorrência; o resultado é truncado em limit.
func TopEntities(records []*domain.AdRecord, limit int) []*domain.EntityPerformance {
	// agrupamento com ordem determinística de inserção
	keys := make([]string, 0)
	groups := make(map[string]*domain.EntityPerformance)

	for _, record := range records {
		if record.SubEntity == "" {
			continue
		}

		group, exists := groups[record.SubEntity]
		if !exists {
			group = &domain.EntityPerformance{
				Name:         record.SubEntity,
				CampaignName: record.CampaignName,
			}
			groups[record.SubEntity] = group
			keys = append(keys, record.SubEntity)
		}

		group.Spend += record.Spend
		group.Conversions += record.Conversions
		group.Impressions += record.Impressions
		group.Clicks += record.Clicks
	}

	entities := make([]*domain.EntityPerformance, 0, len(keys))
	for _, key := range keys {
		group := groups[key]

		group.CostPerConversion = domain.SafeRatio(group.Spend, group.Conversions)
		group.CTR = domain.SafeRatio(group.Clicks, group.Impressions) * 100
		group.CPC = domain.SafeRatio(group.Spend, group.Clicks)

		if group.Conversions > 0 {
			entities = append(entities, group)
		}
	}

	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Conversions > entities[j].Conversions
	})

	if limit > 0 && len(entities) > limit {
		entities = entities[:limit]
	}

	return entities
}
