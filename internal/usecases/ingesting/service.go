package ingesting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-performance-api/infrastructure/repository"
	"github.com/vfg2006/ads-performance-api/internal/config"
	"github.com/vfg2006/ads-performance-api/internal/domain"
	"github.com/vfg2006/ads-performance-api/pkg/metrics"
)

// Service implementa a interface Ingester
type Service struct {
	cfg              *config.Config
	fetcher          Fetcher
	datasetRepo      repository.DatasetRepository
	ingestionMetrics *metrics.IngestionMetrics
}

// NewService cria uma nova instância do serviço de ingestão
func NewService(
	cfg *config.Config,
	fetcher Fetcher,
	datasetRepo repository.DatasetRepository,
	ingestionMetrics *metrics.IngestionMetrics,
) Ingester {
	return &Service{
		cfg:              cfg,
		fetcher:          fetcher,
		datasetRepo:      datasetRepo,
		ingestionMetrics: ingestionMetrics,
	}
}

// SyncPlatform busca o export da plataforma, converte em registros
// canônicos e substitui o snapshot em memória. Em caso de falha na busca
// o snapshot anterior é mantido intacto.
func (s *Service) SyncPlatform(ctx context.Context, platform domain.Platform) (*domain.DatasetSnapshot, error) {
	schema, ok := SchemaForPlatform(platform)
	if !ok {
		return nil, fmt.Errorf("plataforma sem contrato de colunas: %s", platform)
	}

	startedAt := time.Now()

	csvText, err := s.fetcher.FetchPlatformCSV(ctx, platform)
	if err != nil {
		s.ingestionMetrics.IncFetchFailure(string(platform))
		return nil, fmt.Errorf("erro ao buscar export da plataforma %s: %w", platform, err)
	}

	records, stats := ParseWithStats(csvText, schema, s.cfg.Account.Name)
	s.ingestionMetrics.ObserveParse(string(platform), stats.Parsed, stats.Dropped)

	fetchedAt := time.Now()
	s.datasetRepo.SaveSnapshot(platform, records, fetchedAt)
	s.ingestionMetrics.ObserveSync(string(platform), fetchedAt.Sub(startedAt), fetchedAt)

	logrus.WithFields(logrus.Fields{
		"platform":      platform,
		"schema":        schema.Name,
		"records":       stats.Parsed,
		"dropped":       stats.Dropped,
		"section_found": stats.SectionFound,
		"duration":      fetchedAt.Sub(startedAt).String(),
	}).Info("Ingestão do export concluída")

	snapshot, _ := s.datasetRepo.GetSnapshot(platform)
	return snapshot, nil
}

// SyncAll reingere todas as plataformas; falha de uma não interrompe as
// demais; o primeiro erro é devolvido ao final para sinalização.
func (s *Service) SyncAll(ctx context.Context) error {
	var firstErr error

	for _, platform := range domain.Platforms {
		if _, err := s.SyncPlatform(ctx, platform); err != nil {
			logrus.WithError(err).WithField("platform", platform).Error("Erro na ingestão da plataforma")
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
