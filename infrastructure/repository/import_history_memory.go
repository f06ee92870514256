package repository

import (
	"sync"
	"time"

	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

// memoryImportHistoryRepository é usado quando o banco está desabilitado.
// Mantém apenas as últimas capacity entradas.
type memoryImportHistoryRepository struct {
	mu       sync.Mutex
	entries  []*domain.ImportEntry
	capacity int
	nextID   int64
	clock    func() time.Time
}

func NewMemoryImportHistoryRepository(capacity int) ImportHistoryRepository {
	if capacity <= 0 {
		capacity = 100
	}
	return &memoryImportHistoryRepository{
		capacity: capacity,
		clock:    time.Now,
	}
}

func (r *memoryImportHistoryRepository) Save(entry *domain.ImportEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	entry.ID = r.nextID
	entry.CreatedAt = r.clock().UTC()

	stored := *entry
	stored.MissingColumns = append([]string(nil), entry.MissingColumns...)
	r.entries = append(r.entries, &stored)

	if len(r.entries) > r.capacity {
		r.entries = r.entries[len(r.entries)-r.capacity:]
	}

	return nil
}

func (r *memoryImportHistoryRepository) ListRecent(limit int) ([]*domain.ImportEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.entries) {
		limit = len(r.entries)
	}

	out := make([]*domain.ImportEntry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		entry := *r.entries[i]
		out = append(out, &entry)
	}

	return out, nil
}
