package ingesting

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-performance-api/internal/domain"
)

// ParseStats acompanha o resultado de uma passada de parsing
type ParseStats struct {
	SectionFound bool
	DataLines    int
	Parsed       int
	Dropped      int
}

// Parse converte o blob CSV do export no conjunto de registros canônicos.
// Linhas sem a contagem mínima de campos ou sem data válida (totais de
// seção, linhas em branco) são descartadas silenciosamente; seção de dados
// ausente resulta em conjunto vazio com aviso, nunca erro.
func Parse(csvText string, schema FormatSchema, accountName string) []*domain.AdRecord {
	records, _ := ParseWithStats(csvText, schema, accountName)
	return records
}

// ParseWithStats é o Parse com contadores para instrumentação
func ParseWithStats(csvText string, schema FormatSchema, accountName string) ([]*domain.AdRecord, ParseStats) {
	lines := nonBlankLines(csvText)
	records := make([]*domain.AdRecord, 0, len(lines))

	stats := ParseStats{}

	start := locateDataStart(lines, schema)
	if start < 0 {
		logrus.WithFields(logrus.Fields{
			"schema":   schema.Name,
			"sentinel": schema.Sentinel,
		}).Warn("Seção de dados não encontrada no CSV do export")
		return records, stats
	}

	stats.SectionFound = true

	for i := start; i < len(lines); i++ {
		stats.DataLines++

		record, ok := mapRow(tokenizeLine(lines[i]), schema, accountName)
		if !ok {
			stats.Dropped++
			continue
		}

		records = append(records, record)
	}

	stats.Parsed = len(records)

	logrus.WithFields(logrus.Fields{
		"schema":  schema.Name,
		"parsed":  stats.Parsed,
		"dropped": stats.Dropped,
	}).Debug("Parsing do export concluído")

	return records, stats
}

// nonBlankLines separa o blob em linhas, descartando as vazias antes de
// localizar a seção de dados (os índices fixos contam linhas não vazias)
func nonBlankLines(csvText string) []string {
	raw := strings.Split(csvText, "\n")

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

// locateDataStart encontra o índice da primeira linha de dados conforme a
// estratégia do formato. Retorna -1 quando o marcador não existe no blob.
func locateDataStart(lines []string, schema FormatSchema) int {
	if schema.Sentinel == "" {
		if schema.DataStartLine >= len(lines) {
			return -1
		}
		return schema.DataStartLine
	}

	for i, line := range lines {
		if strings.HasPrefix(line, schema.Sentinel) {
			// pula a linha do marcador e a linha de cabeçalho
			return i + 2
		}
	}

	return -1
}

// mapRow aplica o contrato de colunas a uma linha tokenizada. A linha é
// aceita apenas com a contagem mínima de campos e data no padrão estrito
// YYYY-MM-DD. O custo por conversão é sempre recalculado de spend e
// conversions, nunca confiado à coluna pré-computada do export.
func mapRow(fields []string, schema FormatSchema, accountName string) (*domain.AdRecord, bool) {
	if len(fields) < schema.MinFields {
		return nil, false
	}

	date, ok := normalizeLocalDate(fields[schema.Columns.Date])
	if !ok {
		return nil, false
	}

	record := &domain.AdRecord{
		AccountName:  accountName,
		Date:         date,
		CampaignName: fields[schema.Columns.Campaign],
		SubEntity:    fields[schema.Columns.SubEntity],
		Spend:        parseNumber(fields[schema.Columns.Spend]),
		Impressions:  parseNumber(fields[schema.Columns.Impressions]),
		Clicks:       parseNumber(fields[schema.Columns.Clicks]),
		Conversions:  parseNumber(fields[schema.Columns.Conversions]),
	}

	if schema.Columns.Reach >= 0 {
		record.Reach = parseNumber(fields[schema.Columns.Reach])
	}

	record.CostPerConversion = domain.SafeRatio(record.Spend, record.Conversions)

	return record, true
}
