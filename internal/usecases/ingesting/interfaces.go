package ingesting

import (
	"context"

	"github.com/vfg2006/ads-performance-api/internal/domain"
)

// Fetcher busca o CSV publicado do export de uma plataforma
type Fetcher interface {
	FetchPlatformCSV(ctx context.Context, platform domain.Platform) (string, error)
}

// Ingester executa o ciclo completo de ingestão: busca, parsing e
// substituição do snapshot em memória
type Ingester interface {
	// SyncPlatform reingere o export de uma plataforma específica
	SyncPlatform(ctx context.Context, platform domain.Platform) (*domain.DatasetSnapshot, error)

	// SyncAll reingere os exports de todas as plataformas suportadas
	SyncAll(ctx context.Context) error
}
