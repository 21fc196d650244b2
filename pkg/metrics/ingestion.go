package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// IngestionMetrics registra os contadores da ingestão de exports
type IngestionMetrics struct {
	rowsParsed    *prometheus.CounterVec
	rowsDropped   *prometheus.CounterVec
	fetchFailures *prometheus.CounterVec
	syncDuration  *prometheus.HistogramVec
	lastSyncAt    *prometheus.GaugeVec
}

// NewIngestionMetrics registra as métricas de ingestão no registerer
// informado. Com registerer nulo devolve uma instância inerte (testes).
func NewIngestionMetrics(reg prometheus.Registerer) *IngestionMetrics {
	if reg == nil {
		return &IngestionMetrics{}
	}

	rowsParsed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ads_ingest_rows_parsed_total",
		Help: "Linhas de dados convertidas em registros canônicos.",
	}, []string{"platform"})
	rowsDropped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ads_ingest_rows_dropped_total",
		Help: "Linhas de dados descartadas por campos insuficientes ou data inválida.",
	}, []string{"platform"})
	fetchFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ads_ingest_fetch_failures_total",
		Help: "Falhas ao buscar o CSV publicado da planilha.",
	}, []string{"platform"})
	syncDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ads_ingest_sync_duration_seconds",
		Help:    "Duração do ciclo de ingestão por plataforma.",
		Buckets: prometheus.DefBuckets,
	}, []string{"platform"})
	lastSyncAt := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ads_ingest_last_sync_timestamp_seconds",
		Help: "Instante (unix) da última ingestão bem-sucedida.",
	}, []string{"platform"})

	reg.MustRegister(rowsParsed, rowsDropped, fetchFailures, syncDuration, lastSyncAt)

	return &IngestionMetrics{
		rowsParsed:    rowsParsed,
		rowsDropped:   rowsDropped,
		fetchFailures: fetchFailures,
		syncDuration:  syncDuration,
		lastSyncAt:    lastSyncAt,
	}
}

// ObserveParse registra o resultado de uma passada de parsing
func (m *IngestionMetrics) ObserveParse(platform string, parsed, dropped int) {
	if m == nil || m.rowsParsed == nil {
		return
	}
	m.rowsParsed.WithLabelValues(platform).Add(float64(parsed))
	m.rowsDropped.WithLabelValues(platform).Add(float64(dropped))
}

// IncFetchFailure incrementa o contador de falhas de busca
func (m *IngestionMetrics) IncFetchFailure(platform string) {
	if m == nil || m.fetchFailures == nil {
		return
	}
	m.fetchFailures.WithLabelValues(platform).Inc()
}

// ObserveSync registra a duração e o instante de um ciclo bem-sucedido
func (m *IngestionMetrics) ObserveSync(platform string, duration time.Duration, completedAt time.Time) {
	if m == nil || m.syncDuration == nil {
		return
	}
	m.syncDuration.WithLabelValues(platform).Observe(duration.Seconds())
	m.lastSyncAt.WithLabelValues(platform).Set(float64(completedAt.Unix()))
}
