package insighting

import (
	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

// Insighter calcula as visões agregadas sobre o dataset atual
type Insighter interface {
	// Dashboard aplica o filtro e devolve todas as visões de uma vez
	Dashboard(spec domain.FilterSpec) (*domain.Dashboard, error)

	// Records devolve os registros que atendem ao filtro, na ordem do arquivo
	Records(spec domain.FilterSpec) ([]domain.Record, error)

	// Summary descreve o dataset atual sem filtros
	Summary() (*domain.DatasetSummary, error)
}
