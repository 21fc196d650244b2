package reporting

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-performance-api/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.Local)
}

func record(date time.Time, campaign, subEntity string, spend, conversions, impressions, clicks float64) *domain.AdRecord {
	return &domain.AdRecord{
		Date:         date,
		CampaignName: campaign,
		SubEntity:    subEntity,
		Spend:        spend,
		Conversions:  conversions,
		Impressions:  impressions,
		Clicks:       clicks,
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		records  []*domain.AdRecord
		expected *domain.AggregateMetrics
	}{
		{
			name:     "Conjunto vazio produz totais e razões zeradas",
			records:  nil,
			expected: &domain.AggregateMetrics{},
		},
		{
			name: "Totais somados e razões derivadas dos totais",
			records: []*domain.AdRecord{
				record(day(2025, 7, 1), "Campanha A", "kw1", 100, 2, 1000, 20),
				record(day(2025, 7, 2), "Campanha A", "kw2", 50, 1, 500, 10),
			},
			expected: &domain.AggregateMetrics{
				TotalSpend:           150,
				TotalConversions:     3,
				TotalImpressions:     1500,
				TotalClicks:          30,
				AvgCostPerConversion: 50,
				CTR:                  2.0,
				CPC:                  5.0,
			},
		},
		{
			name: "Conversões zeradas não geram divisão por zero",
			records: []*domain.AdRecord{
				record(day(2025, 7, 1), "Campanha A", "kw1", 100, 0, 0, 0),
			},
			expected: &domain.AggregateMetrics{
				TotalSpend: 100,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Aggregate(tt.records))
		})
	}
}

// O CPA agregado deve sempre equivaler a spend total / conversões totais,
// nunca à média dos CPAs individuais
func TestAggregate_CPAPonderado(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		var records []*domain.AdRecord
		var totalSpend, totalConversions float64

		for j := 0; j < 1+rng.Intn(20); j++ {
			spend := math.Round(rng.Float64()*10000) / 100
			conversions := float64(rng.Intn(10))

			totalSpend += spend
			totalConversions += conversions
			records = append(records, record(day(2025, 7, 1), "Campanha", "kw", spend, conversions, 0, 0))
		}

		got := Aggregate(records)

		if totalConversions == 0 {
			assert.Zero(t, got.AvgCostPerConversion)
			continue
		}

		assert.InDelta(t, totalSpend/totalConversions, got.AvgCostPerConversion, 1e-9)
	}
}

func TestFilterByDateRange(t *testing.T) {
	records := []*domain.AdRecord{
		record(day(2025, 7, 1), "Campanha A", "kw1", 10, 1, 100, 5),
		record(day(2025, 7, 15), "Campanha A", "kw2", 20, 2, 200, 10),
		record(day(2025, 7, 31), "Campanha B", "kw3", 30, 3, 300, 15),
	}

	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{
			name:     "Limites inclusivos nas duas pontas",
			from:     day(2025, 7, 1),
			to:       day(2025, 7, 31),
			expected: 3,
		},
		{
			name:     "Registro no dia do limite entra mesmo com horário no limite",
			from:     time.Date(2025, 7, 31, 23, 59, 59, 0, time.Local),
			to:       time.Date(2025, 7, 31, 23, 59, 59, 0, time.Local),
			expected: 1,
		},
		{
			name:     "Intervalo interno exclui as fronteiras externas",
			from:     day(2025, 7, 2),
			to:       day(2025, 7, 30),
			expected: 1,
		},
		{
			name:     "Intervalo sem registros",
			from:     day(2025, 8, 1),
			to:       day(2025, 8, 31),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, FilterByDateRange(records, tt.from, tt.to), tt.expected)
		})
	}
}

func TestDayFloor(t *testing.T) {
	floored := dayFloor(time.Date(2025, 7, 15, 18, 30, 45, 123, time.Local))
	assert.True(t, day(2025, 7, 15).Equal(floored))
}
