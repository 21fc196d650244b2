package ingesting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-performance-api/internal/domain"
)

const testAccountName = "AmorSaúde Montes Claros"

// googleAdsExport monta um blob no formato real do export de
// palavras-chave: preâmbulo de metadados, marcador "Rows", cabeçalho e
// linhas de dados com 15 colunas.
func googleAdsExport(dataLines ...string) string {
	preamble := []string{
		"Keyword report",
		"All time",
		"",
		"Filters applied: none",
		"Rows: 200",
	}

	lines := append([]string{}, preamble...)
	lines = append(lines, "Day,Keyword status,Keyword,Match type,Campaign,Ad group,Status,Status reasons,Currency code,Max. CPC,Draft change,Clicks,Impr.,Cost,All conv.")
	lines = append(lines, dataLines...)

	return strings.Join(lines, "\n")
}

func googleRow(day, keyword, campaign, clicks, impressions, cost, conversions string) string {
	return strings.Join([]string{
		day, "Enabled", keyword, "Broad match", campaign, "Grupo 1", "Eligible", "--", "BRL", "2.50", "--", clicks, impressions, cost, conversions,
	}, ",")
}

func TestParseWithStats_GoogleAds(t *testing.T) {
	tests := []struct {
		name     string
		csvText  string
		expected ParseStats
		validate func(t *testing.T, records []*domain.AdRecord)
	}{
		{
			name: "Export completo com duas linhas de dados",
			csvText: googleAdsExport(
				googleRow("2025-07-01", "clinica popular", "Campanha Institucional", "20", "1000", "100", "2"),
				googleRow("2025-07-02", "consulta barata", "Campanha Institucional", "10", "500", "50", "1"),
			),
			expected: ParseStats{SectionFound: true, DataLines: 2, Parsed: 2, Dropped: 0},
			validate: func(t *testing.T, records []*domain.AdRecord) {
				first := records[0]
				assert.Equal(t, testAccountName, first.AccountName)
				assert.True(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.Local).Equal(first.Date))
				assert.Equal(t, "clinica popular", first.SubEntity)
				assert.Equal(t, "Campanha Institucional", first.CampaignName)
				assert.Equal(t, 20.0, first.Clicks)
				assert.Equal(t, 1000.0, first.Impressions)
				assert.Equal(t, 100.0, first.Spend)
				assert.Equal(t, 2.0, first.Conversions)
				// custo por conversão é sempre recalculado: 100 / 2
				assert.Equal(t, 50.0, first.CostPerConversion)
				// o formato do Google não traz alcance
				assert.Equal(t, 0.0, first.Reach)
			},
		},
		{
			name: "Linha de total sem data é descartada",
			csvText: googleAdsExport(
				googleRow("2025-07-01", "clinica popular", "Campanha Institucional", "20", "1000", "100", "2"),
				googleRow("Total: account", "", "", "30", "1500", "150", "3"),
			),
			expected: ParseStats{SectionFound: true, DataLines: 2, Parsed: 1, Dropped: 1},
		},
		{
			name: "Linha com menos colunas que o mínimo é descartada",
			csvText: googleAdsExport(
				"2025-07-01,Enabled,curta",
				googleRow("2025-07-02", "consulta barata", "Campanha Institucional", "10", "500", "50", "1"),
			),
			expected: ParseStats{SectionFound: true, DataLines: 2, Parsed: 1, Dropped: 1},
		},
		{
			name:     "Blob sem o marcador de seção vira conjunto vazio",
			csvText:  "Relatório qualquer\nsem marcador\n2025-07-01,dados",
			expected: ParseStats{SectionFound: false},
		},
		{
			name:     "Blob vazio vira conjunto vazio",
			csvText:  "",
			expected: ParseStats{SectionFound: false},
		},
		{
			name: "Linhas em branco não contam para a localização da seção",
			csvText: "Keyword report\n\n\nRows: 10\nDay,Keyword\n" +
				googleRow("2025-07-03", "oftalmologista", "Campanha Consultas", "5", "200", "25", "1"),
			expected: ParseStats{SectionFound: true, DataLines: 1, Parsed: 1, Dropped: 0},
		},
		{
			name: "Conversões zeradas mantêm custo por conversão em zero",
			csvText: googleAdsExport(
				googleRow("2025-07-01", "clinica popular", "Campanha Institucional", "20", "1000", "100", "0"),
			),
			expected: ParseStats{SectionFound: true, DataLines: 1, Parsed: 1, Dropped: 0},
			validate: func(t *testing.T, records []*domain.AdRecord) {
				assert.Equal(t, 0.0, records[0].CostPerConversion)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, stats := ParseWithStats(tt.csvText, GoogleAdsSchema, testAccountName)

			assert.Equal(t, tt.expected, stats)
			assert.Len(t, records, tt.expected.Parsed)

			if tt.validate != nil {
				tt.validate(t, records)
			}
		})
	}
}

func TestParseWithStats_MetaCreatives(t *testing.T) {
	csvText := strings.Join([]string{
		"Date,Campaign,Creative,Spend,Reach,Impressions,Engagement,Conversions",
		`2025-07-01,"Campanha, Agosto",Criativo Azul,80,4000,9000,120,4`,
		"2025-07-02,Campanha Agosto,Criativo Verde,40,2000,4500,60,2",
	}, "\n")

	records, stats := ParseWithStats(csvText, MetaCreativesSchema, testAccountName)

	assert.Equal(t, ParseStats{SectionFound: true, DataLines: 2, Parsed: 2, Dropped: 0}, stats)

	first := records[0]
	assert.Equal(t, "Campanha, Agosto", first.CampaignName)
	assert.Equal(t, "Criativo Azul", first.SubEntity)
	assert.Equal(t, 80.0, first.Spend)
	assert.Equal(t, 4000.0, first.Reach)
	assert.Equal(t, 9000.0, first.Impressions)
	// engajamento ocupa o papel de cliques no registro canônico
	assert.Equal(t, 120.0, first.Clicks)
	assert.Equal(t, 4.0, first.Conversions)
	assert.Equal(t, 20.0, first.CostPerConversion)
}

func TestParseWithStats_MetaSemDados(t *testing.T) {
	// só o cabeçalho: índice fixo de dados aponta além do blob
	records, stats := ParseWithStats("Date,Campaign,Creative,Spend,Reach,Impressions,Engagement,Conversions", MetaCreativesSchema, testAccountName)

	assert.Empty(t, records)
	assert.False(t, stats.SectionFound)
}

func TestSchemaForPlatform(t *testing.T) {
	google, ok := SchemaForPlatform(domain.PlatformGoogle)
	assert.True(t, ok)
	assert.Equal(t, "google-ads-keywords", google.Name)

	meta, ok := SchemaForPlatform(domain.PlatformMeta)
	assert.True(t, ok)
	assert.Equal(t, "meta-creatives", meta.Name)

	_, ok = SchemaForPlatform(domain.Platform("tiktok"))
	assert.False(t, ok)
}
