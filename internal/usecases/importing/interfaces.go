package importing

import (
	"context"
	"io"

	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

type Importer interface {
	Import(ctx context.Context, source string, r io.Reader) (*domain.Dataset, *MapResult, error)
	LoadTemplate(ctx context.Context) (*domain.Dataset, error)
	History(limit int) ([]*domain.ImportEntry, error)
}
