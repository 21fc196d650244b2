package ingesting

import (
	"github.com/vfg2006/ads-performance-api/internal/domain"
)

// ColumnMap associa cada papel semântico à posição da coluna no export.
// Índices são relativos à linha tokenizada; -1 indica papel ausente.
type ColumnMap struct {
	Date        int
	Campaign    int
	SubEntity   int
	Spend       int
	Impressions int
	Clicks      int
	Conversions int
	Reach       int
}

// FormatSchema descreve o contrato de colunas de um formato de export.
// Quando Sentinel é não-vazio, a seção de dados é localizada por varredura
// (linha do marcador + cabeçalho = dados começam duas linhas depois);
// caso contrário DataStartLine aponta o índice fixo da primeira linha de dados.
type FormatSchema struct {
	Name          string
	Platform      domain.Platform
	Sentinel      string
	DataStartLine int
	MinFields     int
	Columns       ColumnMap
}

// GoogleAdsSchema é o contrato do export de palavras-chave do Google Ads.
// O arquivo traz ~12 linhas de metadados, a linha-marcador "Rows", um
// cabeçalho e então as linhas de dados com 15 colunas:
// Day(0), Keyword status(1), Keyword(2), Match type(3), Campaign(4),
// Ad group(5), Status(6), Status reasons(7), Currency code(8), Max. CPC(9),
// Draft change(10), Clicks(11), Impr.(12), Cost(13), All conv.(14)
var GoogleAdsSchema = FormatSchema{
	Name:      "google-ads-keywords",
	Platform:  domain.PlatformGoogle,
	Sentinel:  "Rows",
	MinFields: 15,
	Columns: ColumnMap{
		Date:        0,
		SubEntity:   2,
		Campaign:    4,
		Clicks:      11,
		Impressions: 12,
		Spend:       13,
		Conversions: 14,
		Reach:       -1,
	},
}

// MetaCreativesSchema é o contrato do export de criativos do Meta.
// O formato não tem marcador: cabeçalho na linha 0 e dados a partir da
// linha 1, com 8 colunas: Date(0), Campaign(1), Creative(2), Spend(3),
// Reach(4), Impressions(5), Engagement(6), Conversions(7). O engajamento
// ocupa o papel de cliques no registro canônico.
var MetaCreativesSchema = FormatSchema{
	Name:          "meta-creatives",
	Platform:      domain.PlatformMeta,
	DataStartLine: 1,
	MinFields:     8,
	Columns: ColumnMap{
		Date:        0,
		Campaign:    1,
		SubEntity:   2,
		Spend:       3,
		Reach:       4,
		Impressions: 5,
		Clicks:      6,
		Conversions: 7,
	},
}

// SchemaForPlatform devolve o contrato de colunas da plataforma
func SchemaForPlatform(platform domain.Platform) (FormatSchema, bool) {
	switch platform {
	case domain.PlatformGoogle:
		return GoogleAdsSchema, true
	case domain.PlatformMeta:
		return MetaCreativesSchema, true
	}
	return FormatSchema{}, false
}
