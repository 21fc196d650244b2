package domain

// CampaignTrend consolida os agregados de uma campanha nas janelas
// móveis de 7, 14 e 30 dias encerradas na data de referência.
type CampaignTrend struct {
	CampaignName    string  `json:"campaign_name"`
	Cost7d          float64 `json:"cost_7d"`
	Cost14d         float64 `json:"cost_14d"`
	Cost30d         float64 `json:"cost_30d"`
	Conversions7d   float64 `json:"conversions_7d"`
	Conversions14d  float64 `json:"conversions_14d"`
	Conversions30d  float64 `json:"conversions_30d"`
	CPA7d           float64 `json:"cpa_7d"`
	CPA14d          float64 `json:"cpa_14d"`
	CPA30d          float64 `json:"cpa_30d"`
}
