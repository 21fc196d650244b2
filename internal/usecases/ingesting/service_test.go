package ingesting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/ads-performance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-performance-api/internal/config"
	"github.com/vfg2006/ads-performance-api/internal/domain"
	"github.com/vfg2006/ads-performance-api/internal/usecases/ingesting/mocks"
	"github.com/vfg2006/ads-performance-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Account: config.Account{Name: testAccountName},
	}
}

func TestService_SyncPlatform(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Sincronização substitui o snapshot com os registros parseados", func(t *testing.T) {
		mockFetcher := mocks.NewMockFetcher(ctrl)
		mockRepo := repomocks.NewMockDatasetRepository(ctrl)

		csvText := googleAdsExport(
			googleRow("2025-07-01", "clinica popular", "Campanha Institucional", "20", "1000", "100", "2"),
		)

		mockFetcher.EXPECT().
			FetchPlatformCSV(gomock.Any(), domain.PlatformGoogle).
			Return(csvText, nil)

		mockRepo.EXPECT().
			SaveSnapshot(domain.PlatformGoogle, gomock.Len(1), gomock.Any()).
			Do(func(platform domain.Platform, records []*domain.AdRecord, _ any) {
				assert.Equal(t, testAccountName, records[0].AccountName)
				assert.Equal(t, "clinica popular", records[0].SubEntity)
			})

		mockRepo.EXPECT().
			GetSnapshot(domain.PlatformGoogle).
			Return(&domain.DatasetSnapshot{Platform: domain.PlatformGoogle}, true)

		service := NewService(testConfig(), mockFetcher, mockRepo, metrics.NewIngestionMetrics(nil))

		snapshot, err := service.SyncPlatform(context.Background(), domain.PlatformGoogle)

		assert.NoError(t, err)
		assert.NotNil(t, snapshot)
		assert.Equal(t, domain.PlatformGoogle, snapshot.Platform)
	})

	t.Run("Falha na busca preserva o snapshot anterior", func(t *testing.T) {
		mockFetcher := mocks.NewMockFetcher(ctrl)
		mockRepo := repomocks.NewMockDatasetRepository(ctrl)

		mockFetcher.EXPECT().
			FetchPlatformCSV(gomock.Any(), domain.PlatformMeta).
			Return("", errors.New("planilha indisponível"))

		// SaveSnapshot nunca deve ser chamado quando a busca falha

		service := NewService(testConfig(), mockFetcher, mockRepo, metrics.NewIngestionMetrics(nil))

		snapshot, err := service.SyncPlatform(context.Background(), domain.PlatformMeta)

		assert.Error(t, err)
		assert.Nil(t, snapshot)
	})

	t.Run("Plataforma desconhecida retorna erro sem buscar nada", func(t *testing.T) {
		mockFetcher := mocks.NewMockFetcher(ctrl)
		mockRepo := repomocks.NewMockDatasetRepository(ctrl)

		service := NewService(testConfig(), mockFetcher, mockRepo, metrics.NewIngestionMetrics(nil))

		snapshot, err := service.SyncPlatform(context.Background(), domain.Platform("tiktok"))

		assert.Error(t, err)
		assert.Nil(t, snapshot)
	})
}

func TestService_SyncAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Falha de uma plataforma não interrompe as demais", func(t *testing.T) {
		mockFetcher := mocks.NewMockFetcher(ctrl)
		mockRepo := repomocks.NewMockDatasetRepository(ctrl)

		mockFetcher.EXPECT().
			FetchPlatformCSV(gomock.Any(), domain.PlatformGoogle).
			Return("", errors.New("planilha indisponível"))

		metaCSV := "Date,Campaign,Creative,Spend,Reach,Impressions,Engagement,Conversions\n" +
			"2025-07-01,Campanha Agosto,Criativo Azul,80,4000,9000,120,4"

		mockFetcher.EXPECT().
			FetchPlatformCSV(gomock.Any(), domain.PlatformMeta).
			Return(metaCSV, nil)

		mockRepo.EXPECT().
			SaveSnapshot(domain.PlatformMeta, gomock.Len(1), gomock.Any())

		mockRepo.EXPECT().
			GetSnapshot(domain.PlatformMeta).
			Return(&domain.DatasetSnapshot{Platform: domain.PlatformMeta}, true)

		service := NewService(testConfig(), mockFetcher, mockRepo, metrics.NewIngestionMetrics(nil))

		err := service.SyncAll(context.Background())

		// o primeiro erro é devolvido ao final
		assert.Error(t, err)
	})
}
