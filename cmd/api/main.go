package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-insights-api/infrastructure/repository"
	"github.com/vfg2006/campaign-insights-api/internal/api"
	"github.com/vfg2006/campaign-insights-api/internal/api/handler"
	"github.com/vfg2006/campaign-insights-api/internal/config"
	"github.com/vfg2006/campaign-insights-api/internal/scheduler"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/importing"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/insighting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, using 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	historyRepo, database, closeHistory := importHistory(ctx, cfg)
	defer closeHistory()

	datasetRepo := repository.NewDatasetRepository()

	importer := importing.NewService(datasetRepo, historyRepo, cfg.Import)
	insighter := insighting.NewService(datasetRepo)

	// Pré-visualização inicial com o modelo até o primeiro upload
	if cfg.Import.LoadTemplateOnStart {
		if _, err := importer.LoadTemplate(ctx); err != nil {
			logrus.WithError(err).Error("startup: failed to load template dataset")
		}
	}

	datasetRefreshService := scheduler.NewDatasetRefreshService(importer, cfg.DatasetRefresh)
	if err := datasetRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("startup: failed to start dataset refresh scheduler")
	}

	server, err := api.New(cfg, importer, insighter, datasetRefreshService, database)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// importHistory usa o PostgreSQL quando habilitado e o histórico em memória caso contrário.
// A conexão volta como Pinger para o healthcheck; nil quando o banco está desabilitado.
func importHistory(ctx context.Context, cfg *config.Config) (repository.ImportHistoryRepository, handler.Pinger, func()) {
	if !cfg.Database.Enabled {
		logrus.Info("startup: database disabled, keeping import history in memory")
		return repository.NewMemoryImportHistoryRepository(cfg.Import.HistoryLimit), nil, func() {}
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("startup: failed to connect to PostgreSQL")
	}

	if err := repository.EnsureImportHistorySchema(conn); err != nil {
		logrus.WithError(err).Fatal("startup: failed to create import history table")
	}

	logrus.Info("startup: PostgreSQL connection established")
	return repository.NewImportHistoryRepository(conn), conn, func() { conn.Close() }
}
