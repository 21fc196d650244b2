package repository

import (
	"sync"
	"time"

	"github.com/vfg2006/ads-performance-api/internal/domain"
)

// DatasetRepository guarda o último snapshot de registros ingeridos por
// plataforma. O dataset inteiro é recomputado a cada ciclo de ingestão e
// vive apenas em memória, sem persistência entre reinícios.
type DatasetRepository interface {
	SaveSnapshot(platform domain.Platform, records []*domain.AdRecord, fetchedAt time.Time)
	GetSnapshot(platform domain.Platform) (*domain.DatasetSnapshot, bool)
}

type datasetRepository struct {
	mu        sync.RWMutex
	snapshots map[domain.Platform]*domain.DatasetSnapshot
}

func NewDatasetRepository() DatasetRepository {
	return &datasetRepository{
		snapshots: make(map[domain.Platform]*domain.DatasetSnapshot),
	}
}

// SaveSnapshot substitui atomicamente o snapshot da plataforma
func (r *datasetRepository) SaveSnapshot(platform domain.Platform, records []*domain.AdRecord, fetchedAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots[platform] = &domain.DatasetSnapshot{
		Platform:  platform,
		Records:   records,
		FetchedAt: fetchedAt,
	}
}

// GetSnapshot devolve o snapshot atual da plataforma, se já houve ingestão
func (r *datasetRepository) GetSnapshot(platform domain.Platform) (*domain.DatasetSnapshot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, ok := r.snapshots[platform]
	return snapshot, ok
}
