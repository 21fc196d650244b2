package reporting

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-performance-api/infrastructure/repository"
	"github.com/vfg2006/ads-performance-api/internal/domain"
)

const (
	// janela padrão quando a consulta não informa período
	defaultRangeDays = 30

	defaultTopKeywords  = 10
	defaultTopCreatives = 6
)

// Reporter expõe as consultas de métricas consumidas pela camada de
// apresentação. Todas operam sobre o último snapshot ingerido.
type Reporter interface {
	// PlatformMetrics agrega as métricas da plataforma no período
	PlatformMetrics(platform domain.Platform, filters *domain.InsightFilters) (*domain.AggregateMetrics, error)

	// PlatformRecords devolve os registros canônicos da plataforma no período
	PlatformRecords(platform domain.Platform, filters *domain.InsightFilters) ([]*domain.AdRecord, error)

	// TopKeywords devolve as palavras-chave do Google Ads com melhor desempenho
	TopKeywords(filters *domain.InsightFilters, limit int) ([]*domain.EntityPerformance, error)

	// TopCreatives devolve os criativos do Meta com melhor desempenho
	TopCreatives(filters *domain.InsightFilters, limit int) ([]*domain.EntityPerformance, error)

	// PlatformCampaignTrends calcula as janelas móveis por campanha
	PlatformCampaignTrends(platform domain.Platform, referenceDate *time.Time) ([]*domain.CampaignTrend, error)

	// AvailablePeriod informa o intervalo de datas presente no dataset
	AvailablePeriod(platform domain.Platform) (*domain.AvailablePeriod, error)
}

// Service implementa a interface Reporter
type Service struct {
	datasetRepo repository.DatasetRepository
	now         func() time.Time
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(datasetRepo repository.DatasetRepository) *Service {
	return &Service{
		datasetRepo: datasetRepo,
		now:         time.Now,
	}
}

// WithClock injeta o relógio usado nos defaults de período e de data de
// referência; o cálculo em si nunca lê o relógio de parede
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) PlatformMetrics(platform domain.Platform, filters *domain.InsightFilters) (*domain.AggregateMetrics, error) {
	records, err := s.PlatformRecords(platform, filters)
	if err != nil {
		return nil, err
	}

	return Aggregate(records), nil
}

func (s *Service) PlatformRecords(platform domain.Platform, filters *domain.InsightFilters) ([]*domain.AdRecord, error) {
	snapshot, ok := s.datasetRepo.GetSnapshot(platform)
	if !ok {
		return nil, ErrDatasetUnavailable
	}

	from, to := s.resolveRange(filters)

	return FilterByDateRange(snapshot.Records, from, to), nil
}

func (s *Service) TopKeywords(filters *domain.InsightFilters, limit int) ([]*domain.EntityPerformance, error) {
	if limit <= 0 {
		limit = defaultTopKeywords
	}

	records, err := s.PlatformRecords(domain.PlatformGoogle, filters)
	if err != nil {
		return nil, err
	}

	return TopEntities(records, limit), nil
}

func (s *Service) TopCreatives(filters *domain.InsightFilters, limit int) ([]*domain.EntityPerformance, error) {
	if limit <= 0 {
		limit = defaultTopCreatives
	}

	records, err := s.PlatformRecords(domain.PlatformMeta, filters)
	if err != nil {
		return nil, err
	}

	return TopEntities(records, limit), nil
}

func (s *Service) PlatformCampaignTrends(platform domain.Platform, referenceDate *time.Time) ([]*domain.CampaignTrend, error) {
	snapshot, ok := s.datasetRepo.GetSnapshot(platform)
	if !ok {
		return nil, ErrDatasetUnavailable
	}

	reference := s.now()
	if referenceDate != nil {
		reference = *referenceDate
	}

	logrus.WithFields(logrus.Fields{
		"platform":  platform,
		"reference": reference.Format(time.DateOnly),
	}).Debug("Calculando tendências de campanhas")

	return CampaignTrends(snapshot.Records, reference), nil
}

func (s *Service) AvailablePeriod(platform domain.Platform) (*domain.AvailablePeriod, error) {
	snapshot, ok := s.datasetRepo.GetSnapshot(platform)
	if !ok {
		return nil, ErrDatasetUnavailable
	}

	period := &domain.AvailablePeriod{}
	for _, record := range snapshot.Records {
		day := dayFloor(record.Date)

		if period.MinDate == nil || day.Before(*period.MinDate) {
			minCopy := day
			period.MinDate = &minCopy
		}
		if period.MaxDate == nil || day.After(*period.MaxDate) {
			maxCopy := day
			period.MaxDate = &maxCopy
		}
	}

	return period, nil
}

// resolveRange aplica o período padrão (últimos 30 dias até hoje) quando
// a consulta não informa datas
func (s *Service) resolveRange(filters *domain.InsightFilters) (time.Time, time.Time) {
	now := s.now()

	to := now
	from := now.AddDate(0, 0, -defaultRangeDays)

	if filters != nil {
		if filters.EndDate != nil {
			to = *filters.EndDate
		}
		if filters.StartDate != nil {
			from = *filters.StartDate
		} else if filters.EndDate != nil {
			from = to.AddDate(0, 0, -defaultRangeDays)
		}
	}

	return from, to
}
