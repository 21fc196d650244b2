package domain

import (
	"time"
)

// Platform identifica a origem do export de anúncios
type Platform string

const (
	PlatformGoogle Platform = "google"
	PlatformMeta   Platform = "meta"
)

// Platforms lista todas as plataformas suportadas pela ingestão
var Platforms = []Platform{PlatformGoogle, PlatformMeta}

// ParsePlatform valida o identificador de plataforma vindo da URL
func ParsePlatform(value string) (Platform, bool) {
	switch Platform(value) {
	case PlatformGoogle:
		return PlatformGoogle, true
	case PlatformMeta:
		return PlatformMeta, true
	}
	return "", false
}

// AdRecord é o registro canônico de uma linha de dados do export.
// Date é sempre a meia-noite local do dia calendário do export, nunca
// um instante UTC interpretado de string ISO (evita o bug de -1 dia).
// Para a plataforma Meta, Clicks carrega o engajamento reportado.
type AdRecord struct {
	AccountName       string    `json:"account_name"`
	Date              time.Time `json:"date"`
	CampaignName      string    `json:"campaign_name"`
	SubEntity         string    `json:"sub_entity"`
	Spend             float64   `json:"spend"`
	Conversions       float64   `json:"conversions"`
	CostPerConversion float64   `json:"cost_per_conversion"`
	Impressions       float64   `json:"impressions"`
	Clicks            float64   `json:"clicks"`
	Reach             float64   `json:"reach"`
}

// DatasetSnapshot guarda o último conjunto de registros ingeridos de uma plataforma
type DatasetSnapshot struct {
	Platform  Platform    `json:"platform"`
	Records   []*AdRecord `json:"records"`
	FetchedAt time.Time   `json:"fetched_at"`
}
