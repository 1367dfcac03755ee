package trackingrepo

import (
	"context"
	"sort"
	"sync"
	"time"
)

type recordKey struct {
	partitionKey string
	rowKey       string
}

// MemoryRepository keeps records in process memory. It is used for local
// development and as a substitute store in tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[recordKey]Record
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records: make(map[recordKey]Record),
		now:     time.Now,
	}
}

// Upsert inserts the record or replaces the one with the same keys.
func (m *MemoryRepository) Upsert(ctx context.Context, rec Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	rec.Timestamp = m.now().UTC()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[recordKey{partitionKey: rec.PartitionKey, rowKey: rec.RowKey}] = rec
	return nil
}

// FindByNumber returns every record whose number equals the argument.
func (m *MemoryRepository) FindByNumber(ctx context.Context, number string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Record, 0, 1)
	for _, rec := range m.records {
		if rec.Number == number {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PartitionKey != out[j].PartitionKey {
			return out[i].PartitionKey < out[j].PartitionKey
		}
		return out[i].RowKey < out[j].RowKey
	})
	return out, nil
}

// Len returns the number of stored records.
func (m *MemoryRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
