package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-insights-api/internal/config"
	"github.com/vfg2006/campaign-insights-api/internal/telemetry"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/importing"
)

// ErrRefreshRunning indica que já existe uma atualização em andamento
var ErrRefreshRunning = errors.New("dataset refresh already running")

// DatasetRefreshService relê periodicamente o arquivo configurado e substitui o dataset corrente
type DatasetRefreshService struct {
	scheduler *gocron.Scheduler
	config    config.DatasetRefresh
	importer  importing.Importer

	mu                  sync.Mutex
	running             bool
	lastStartedAt       time.Time
	lastCompletedAt     time.Time
	lastDatasetID       string
	lastError           string
	lastRecordsImported int
}

func NewDatasetRefreshService(importer importing.Importer, cfg config.DatasetRefresh) *DatasetRefreshService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"source_path":   cfg.SourcePath,
		"enabled":       cfg.Enabled,
	}).Info("scheduler: dataset refresh configuration loaded")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		importer:  importer,
	}
}

// Start agenda o job e o encerra quando o contexto for cancelado
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("scheduler: dataset refresh disabled")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Refresh(ctx); err != nil && !errors.Is(err, ErrRefreshRunning) {
			logrus.WithError(err).Error("scheduler: dataset refresh failed")
		}
	})
	if err != nil {
		return fmt.Errorf("error scheduling dataset refresh: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping dataset refresh")
		s.scheduler.Stop()
	}()

	return nil
}

// Refresh executa uma atualização de forma síncrona. Execuções sobrepostas são recusadas
// e uma falha mantém o dataset anterior.
func (s *DatasetRefreshService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		telemetry.RefreshRunsTotal.WithLabelValues("skipped").Inc()
		return ErrRefreshRunning
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mu.Unlock()

	datasetID, records, err := s.importFile(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	s.lastCompletedAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
		telemetry.RefreshRunsTotal.WithLabelValues("failed").Inc()
		return err
	}

	s.lastError = ""
	s.lastDatasetID = datasetID
	s.lastRecordsImported = records
	telemetry.RefreshRunsTotal.WithLabelValues("success").Inc()

	logrus.WithFields(logrus.Fields{
		"dataset_id":      datasetID,
		"dataset_records": records,
		"duration_ms":     s.lastCompletedAt.Sub(s.lastStartedAt).Milliseconds(),
	}).Info("scheduler: dataset refreshed")

	return nil
}

func (s *DatasetRefreshService) importFile(ctx context.Context) (string, int, error) {
	if s.config.SourcePath == "" {
		return "", 0, errors.New("dataset refresh source path is not configured")
	}

	f, err := os.Open(s.config.SourcePath)
	if err != nil {
		return "", 0, errors.Wrap(err, "error opening refresh source")
	}
	defer f.Close()

	dataset, _, err := s.importer.Import(ctx, filepath.Base(s.config.SourcePath), f)
	if err != nil {
		return "", 0, errors.Wrap(err, "error importing refresh source")
	}

	return dataset.ID, len(dataset.Records), nil
}

// TriggerManualSync dispara uma atualização em segundo plano
func (s *DatasetRefreshService) TriggerManualSync() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("scheduler: dataset refresh already running, ignoring manual trigger")
		return
	}
	s.mu.Unlock()

	logrus.Info("scheduler: manual dataset refresh triggered")
	go func() {
		if err := s.Refresh(context.Background()); err != nil && !errors.Is(err, ErrRefreshRunning) {
			logrus.WithError(err).Error("scheduler: manual dataset refresh failed")
		}
	}()
}

// GetStatus retorna o estado atual do job
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"sync_running":           s.running,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"source_path":            s.config.SourcePath,
		"last_sync_started_at":   s.lastStartedAt,
		"last_sync_completed_at": s.lastCompletedAt,
		"last_dataset_id":        s.lastDatasetID,
		"last_records_imported":  s.lastRecordsImported,
		"last_error":             s.lastError,
	}
}
