package importing

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-insights-api/infrastructure/repository"
	"github.com/vfg2006/campaign-insights-api/internal/config"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/internal/telemetry"
	"github.com/vfg2006/campaign-insights-api/pkg/csvtext"
	"github.com/vfg2006/campaign-insights-api/pkg/log"
	"github.com/vfg2006/campaign-insights-api/pkg/utils"
)

// SourceTemplate identifica a carga do modelo embutido no histórico
const SourceTemplate = "template"

type Service struct {
	datasetRepository repository.DatasetRepository
	historyRepository repository.ImportHistoryRepository
	cfg               config.Import
	now               func() time.Time
}

func NewService(
	datasetRepo repository.DatasetRepository,
	historyRepo repository.ImportHistoryRepository,
	cfg config.Import,
) Importer {
	return &Service{
		datasetRepository: datasetRepo,
		historyRepository: historyRepo,
		cfg:               cfg,
		now:               time.Now,
	}
}

// Import lê o arquivo inteiro, tokeniza, mapeia e substitui o dataset corrente.
// Em qualquer falha o dataset anterior continua valendo.
func (s *Service) Import(ctx context.Context, source string, r io.Reader) (*domain.Dataset, *MapResult, error) {
	logger := log.ForContext(ctx).WithField("import_source", source)

	text, err := s.readAll(r)
	if err != nil {
		s.record(ctx, &domain.ImportEntry{Source: source, Status: domain.ImportStatusFailed, Error: err.Error()})
		return nil, nil, err
	}

	started := s.now()
	result, err := MapRecords(csvtext.Parse(text))
	telemetry.ImportDuration.Observe(s.now().Sub(started).Seconds())
	if err != nil {
		entry := &domain.ImportEntry{Source: source, Status: domain.ImportStatusFailed, Error: err.Error()}
		if mcErr, ok := IsMissingColumns(err); ok {
			entry.MissingColumns = mcErr.Missing
		}
		s.record(ctx, entry)

		logger.WithError(err).Warn("import: file rejected")
		return nil, nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		s.record(ctx, &domain.ImportEntry{Source: source, Status: domain.ImportStatusFailed, Error: err.Error()})
		return nil, nil, errors.Wrap(err, "error generating dataset id")
	}

	dataset := &domain.Dataset{
		ID:       id,
		Source:   source,
		LoadedAt: s.now().UTC(),
		Records:  result.Records,
	}
	s.datasetRepository.Replace(dataset)

	telemetry.DatasetRecords.Set(float64(len(result.Records)))
	telemetry.DroppedRowsTotal.Add(float64(result.DroppedRows))

	s.record(ctx, &domain.ImportEntry{
		DatasetID:   id,
		Source:      source,
		Status:      domain.ImportStatusSuccess,
		RowCount:    result.RowCount,
		RecordCount: len(result.Records),
		DroppedRows: result.DroppedRows,
	})

	logger.WithFields(log.Fields{
		"dataset_id":      id,
		"dataset_records": len(result.Records),
		"import_dropped":  result.DroppedRows,
	}).Info("import: dataset replaced")

	return dataset, result, nil
}

// LoadTemplate carrega o CSV de exemplo como dataset corrente
func (s *Service) LoadTemplate(ctx context.Context) (*domain.Dataset, error) {
	dataset, _, err := s.Import(ctx, SourceTemplate, strings.NewReader(TemplateCSV()))
	if err != nil {
		return nil, errors.Wrap(err, "error loading template")
	}
	return dataset, nil
}

func (s *Service) History(limit int) ([]*domain.ImportEntry, error) {
	if limit <= 0 || (s.cfg.HistoryLimit > 0 && limit > s.cfg.HistoryLimit) {
		limit = s.cfg.HistoryLimit
	}

	entries, err := s.historyRepository.ListRecent(limit)
	if err != nil {
		return nil, errors.Wrap(err, "error listing import history")
	}
	return entries, nil
}

func (s *Service) readAll(r io.Reader) (string, error) {
	if s.cfg.MaxUploadBytes <= 0 {
		b, err := io.ReadAll(r)
		if err != nil {
			return "", errors.Wrap(err, "error reading file")
		}
		return string(b), nil
	}

	b, err := io.ReadAll(io.LimitReader(r, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return "", errors.Wrap(err, "error reading file")
	}
	if int64(len(b)) > s.cfg.MaxUploadBytes {
		return "", ErrPayloadTooLarge
	}
	return string(b), nil
}

// record grava a tentativa no histórico. Falhas aqui não interrompem a importação.
func (s *Service) record(ctx context.Context, entry *domain.ImportEntry) {
	telemetry.ImportsTotal.WithLabelValues(string(entry.Status)).Inc()

	if s.historyRepository == nil {
		return
	}

	if err := s.historyRepository.Save(entry); err != nil {
		log.ForContext(ctx).WithError(err).WithField("import_source", entry.Source).Error("import: error saving history")
	}
}
