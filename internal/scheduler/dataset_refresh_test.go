package scheduler

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-insights-api/internal/config"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/importing"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/importing/mocks"
	"go.uber.org/mock/gomock"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "performance.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDatasetRefreshService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockImporter := mocks.NewMockImporter(ctrl)

	path := writeSource(t, importing.TemplateCSV())
	service := NewDatasetRefreshService(mockImporter, config.DatasetRefresh{SourcePath: path, CronSchedule: "*/5 * * * *"})

	mockImporter.EXPECT().
		Import(gomock.Any(), "performance.csv", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, r io.Reader) (*domain.Dataset, *importing.MapResult, error) {
			b, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, importing.TemplateCSV(), string(b))
			return &domain.Dataset{ID: "abc", Records: make([]domain.Record, 6)}, &importing.MapResult{}, nil
		})

	require.NoError(t, service.Refresh(context.Background()))

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "abc", status["last_dataset_id"])
	assert.Equal(t, 6, status["last_records_imported"])
	assert.Equal(t, "", status["last_error"])
	assert.Equal(t, "*/5 * * * *", status["sync_cron"])
}

func TestDatasetRefreshService_RefreshFailures(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		setup   func(m *mocks.MockImporter)
		message string
	}{
		{
			name:    "Caminho não configurado",
			path:    func(t *testing.T) string { return "" },
			setup:   func(m *mocks.MockImporter) {},
			message: "source path is not configured",
		},
		{
			name:    "Arquivo inexistente",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.csv") },
			setup:   func(m *mocks.MockImporter) {},
			message: "error opening refresh source",
		},
		{
			name: "Importação rejeitada",
			path: func(t *testing.T) string { return writeSource(t, "Date\n") },
			setup: func(m *mocks.MockImporter) {
				m.EXPECT().
					Import(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil, &importing.MissingColumnsError{Missing: []string{"Revenue"}})
			},
			message: "missing required columns: Revenue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockImporter := mocks.NewMockImporter(ctrl)
			tt.setup(mockImporter)

			service := NewDatasetRefreshService(mockImporter, config.DatasetRefresh{SourcePath: tt.path(t)})

			err := service.Refresh(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
			assert.Contains(t, service.GetStatus()["last_error"], tt.message)
		})
	}
}

func TestDatasetRefreshService_SkipsOverlappingRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockImporter := mocks.NewMockImporter(ctrl)

	path := writeSource(t, importing.TemplateCSV())
	service := NewDatasetRefreshService(mockImporter, config.DatasetRefresh{SourcePath: path})

	started := make(chan struct{})
	release := make(chan struct{})

	mockImporter.EXPECT().
		Import(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, io.Reader) (*domain.Dataset, *importing.MapResult, error) {
			close(started)
			<-release
			return &domain.Dataset{ID: "first"}, &importing.MapResult{}, nil
		}).
		Times(1)

	done := make(chan error)
	go func() { done <- service.Refresh(context.Background()) }()

	<-started
	assert.Equal(t, true, service.GetStatus()["sync_running"])
	assert.True(t, errors.Is(service.Refresh(context.Background()), ErrRefreshRunning))

	close(release)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("refresh did not finish")
	}
}

func TestDatasetRefreshService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewDatasetRefreshService(mocks.NewMockImporter(ctrl), config.DatasetRefresh{Enabled: false})

	assert.NoError(t, service.Start(context.Background()))
}

func TestDatasetRefreshService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewDatasetRefreshService(mocks.NewMockImporter(ctrl), config.DatasetRefresh{Enabled: true, CronSchedule: "not a cron"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}
