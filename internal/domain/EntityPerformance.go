package domain

// EntityPerformance representa as métricas somadas de um sub-item do
// anúncio (palavra-chave no Google Ads, criativo no Meta) com as razões
// recalculadas a partir dos totais agrupados.
type EntityPerformance struct {
	Name              string  `json:"name"`
	CampaignName      string  `json:"campaign_name"`
	Spend             float64 `json:"spend"`
	Conversions       float64 `json:"conversions"`
	CostPerConversion float64 `json:"cost_per_conversion"`
	Impressions       float64 `json:"impressions"`
	Clicks            float64 `json:"clicks"`
	CTR               float64 `json:"ctr"`
	CPC               float64 `json:"cpc"`
}
