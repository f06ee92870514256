package repository

import (
	"sync"

	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

type DatasetRepository interface {
	Current() *domain.Dataset
	Replace(dataset *domain.Dataset)
}

// datasetRepository guarda apenas o dataset atual em memória.
// Os registros nunca são alterados depois de publicados, então leitores compartilham o mesmo slice.
type datasetRepository struct {
	mu      sync.RWMutex
	current *domain.Dataset
}

func NewDatasetRepository() DatasetRepository {
	return &datasetRepository{}
}

func (r *datasetRepository) Current() *domain.Dataset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

func (r *datasetRepository) Replace(dataset *domain.Dataset) {
	if dataset == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = dataset
}
