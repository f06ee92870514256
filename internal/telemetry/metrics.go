package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ImportsTotal conta as importações por status (SUCCESS/FAILED)
	ImportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campaign_insights",
		Name:      "imports_total",
		Help:      "Number of dataset imports by status.",
	}, []string{"status"})

	// ImportDuration mede o tempo de tokenização + mapeamento
	ImportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "campaign_insights",
		Name:      "import_duration_seconds",
		Help:      "Time spent parsing and mapping an imported file.",
		Buckets:   prometheus.DefBuckets,
	})

	// DroppedRowsTotal conta as linhas descartadas por data inválida
	DroppedRowsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "campaign_insights",
		Name:      "dropped_rows_total",
		Help:      "Rows discarded during import because the date could not be parsed.",
	})

	// DatasetRecords é a quantidade de registros no dataset corrente
	DatasetRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "campaign_insights",
		Name:      "dataset_records",
		Help:      "Number of records in the current dataset.",
	})

	// RefreshRunsTotal conta as execuções do job de atualização por resultado
	RefreshRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campaign_insights",
		Name:      "dataset_refresh_runs_total",
		Help:      "Dataset refresh job runs by result.",
	}, []string{"result"})
)
