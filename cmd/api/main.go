package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-performance-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/ads-performance-api/infrastructure/repository"
	"github.com/vfg2006/ads-performance-api/internal/api"
	"github.com/vfg2006/ads-performance-api/internal/config"
	"github.com/vfg2006/ads-performance-api/internal/scheduler"
	"github.com/vfg2006/ads-performance-api/internal/usecases/ingesting"
	"github.com/vfg2006/ads-performance-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-performance-api/pkg/metrics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	datasetRepo := repository.NewDatasetRepository()

	fetchTimeout := time.Duration(cfg.Sheets.FetchTimeoutSeconds) * time.Second
	sheetsClient := sheets.NewClient(fetchTimeout)
	sheetsIntegrator := sheets.New(cfg, sheetsClient)

	ingestionMetrics := metrics.NewIngestionMetrics(prometheus.DefaultRegisterer)

	ingestService := ingesting.NewService(cfg, sheetsIntegrator, datasetRepo, ingestionMetrics)
	reportingService := reporting.NewService(datasetRepo)

	sheetSyncService := scheduler.NewSheetSyncService(ingestService, cfg)

	// Inicia o agendador em background
	if err := sheetSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização das planilhas")
	} else {
		logrus.Info("Agendador de sincronização das planilhas iniciado com sucesso")
	}

	server, err := api.New(cfg, reportingService, sheetSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
