package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-performance-api/internal/config"
	"github.com/vfg2006/ads-performance-api/internal/usecases/ingesting"
	"github.com/vfg2006/ads-performance-api/pkg/utils"
)

// SheetSyncConfig representa a configuração do agendador de reingestão
type SheetSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	SyncOnStart  bool
}

// SheetSyncService gerencia o agendamento e execução da reingestão dos
// exports publicados nas planilhas
type SheetSyncService struct {
	scheduler           *gocron.Scheduler
	config              SheetSyncConfig
	ingestService       ingesting.Ingester
	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunID           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewSheetSyncService cria uma nova instância do serviço de reingestão
func NewSheetSyncService(ingestService ingesting.Ingester, appConfig *config.Config) *SheetSyncService {
	syncConfig := SheetSyncConfig{
		CronSchedule: appConfig.SheetSync.CronSchedule,
		SyncEnabled:  appConfig.SheetSync.Enabled,
		SyncOnStart:  appConfig.SheetSync.SyncOnStart,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"sync_on_start": syncConfig.SyncOnStart,
	}).Info("Configuração do agendador de reingestão de planilhas carregada")

	return &SheetSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		ingestService: ingestService,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *SheetSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reingestão de planilhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reingestão de planilhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllSheets(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reingestão de planilhas: %w", err)
	}

	s.scheduler.StartAsync()

	// Primeira ingestão no boot para o dataset não ficar vazio até o cron
	if s.config.SyncOnStart {
		go s.syncAllSheets(ctx)
	}

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reingestão de planilhas")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma reingestão fora do agendamento
func (s *SheetSyncService) TriggerManualSync(ctx context.Context) {
	go s.syncAllSheets(ctx)
}

// GetStatus devolve o estado atual do agendador
func (s *SheetSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"enabled":       s.config.SyncEnabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.syncRunning,
		"last_run_id":   s.lastRunID,
	}

	if !s.lastSyncStartedAt.IsZero() {
		status["last_sync_started_at"] = s.lastSyncStartedAt.Format(time.RFC3339)
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status["last_sync_completed_at"] = s.lastSyncCompletedAt.Format(time.RFC3339)
	}
	if s.lastSyncError != "" {
		status["last_sync_error"] = s.lastSyncError
	}

	return status
}

// syncAllSheets executa um ciclo de reingestão de todas as plataformas
func (s *SheetSyncService) syncAllSheets(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reingestão de planilhas já em andamento, ignorando")
		return
	}

	runID, err := utils.GenerateID()
	if err != nil {
		runID = "unknown"
	}

	s.syncRunning = true
	s.lastRunID = runID
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.WithField("run_id", runID).Info("Iniciando reingestão dos exports das planilhas")

	startTime := time.Now()

	err = s.ingestService.SyncAll(ctx)

	s.syncMutex.Lock()
	if err != nil {
		s.lastSyncError = err.Error()
	} else {
		s.lastSyncError = ""
	}
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).WithField("run_id", runID).Error("Reingestão concluída com falhas")
		return
	}

	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"duration": time.Since(startTime).String(),
	}).Info("Reingestão dos exports concluída")
}
