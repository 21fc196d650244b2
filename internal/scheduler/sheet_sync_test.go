package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-performance-api/internal/config"
	"github.com/vfg2006/ads-performance-api/internal/usecases/ingesting/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig(enabled bool) *config.Config {
	return &config.Config{
		SheetSync: config.SheetSync{
			CronSchedule: "*/30 * * * *",
			Enabled:      enabled,
			SyncOnStart:  false,
		},
	}
}

func TestSheetSyncService_syncAllSheets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Ciclo bem-sucedido registra o run_id e limpa o erro anterior", func(t *testing.T) {
		mockIngester := mocks.NewMockIngester(ctrl)
		mockIngester.EXPECT().SyncAll(gomock.Any()).Return(nil)

		service := NewSheetSyncService(mockIngester, testConfig(true))
		service.lastSyncError = "falha antiga"

		service.syncAllSheets(context.Background())

		status := service.GetStatus()
		assert.Equal(t, false, status["running"])
		assert.NotEmpty(t, status["last_run_id"])
		assert.Contains(t, status, "last_sync_started_at")
		assert.Contains(t, status, "last_sync_completed_at")
		assert.NotContains(t, status, "last_sync_error")
	})

	t.Run("Falha na ingestão fica registrada no status", func(t *testing.T) {
		mockIngester := mocks.NewMockIngester(ctrl)
		mockIngester.EXPECT().SyncAll(gomock.Any()).Return(errors.New("planilha indisponível"))

		service := NewSheetSyncService(mockIngester, testConfig(true))

		service.syncAllSheets(context.Background())

		status := service.GetStatus()
		assert.Equal(t, "planilha indisponível", status["last_sync_error"])
	})

	t.Run("Ciclo concorrente é ignorado enquanto outro está em andamento", func(t *testing.T) {
		mockIngester := mocks.NewMockIngester(ctrl)
		// nenhuma chamada a SyncAll é esperada

		service := NewSheetSyncService(mockIngester, testConfig(true))
		service.syncRunning = true

		service.syncAllSheets(context.Background())

		status := service.GetStatus()
		assert.Equal(t, true, status["running"])
	})
}

func TestSheetSyncService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Agendador desabilitado não registra a cron", func(t *testing.T) {
		mockIngester := mocks.NewMockIngester(ctrl)

		service := NewSheetSyncService(mockIngester, testConfig(false))

		err := service.Start(context.Background())

		assert.NoError(t, err)

		status := service.GetStatus()
		assert.Equal(t, false, status["enabled"])
	})

	t.Run("Expressão cron inválida retorna erro", func(t *testing.T) {
		mockIngester := mocks.NewMockIngester(ctrl)

		cfg := testConfig(true)
		cfg.SheetSync.CronSchedule = "não é uma cron"

		service := NewSheetSyncService(mockIngester, cfg)

		err := service.Start(context.Background())

		assert.Error(t, err)
	})
}
