package querylog

import (
	"context"
	"errors"
	"magvar-service/internal/domain"
	"sync"
)

// In-memory query log for tests and the CLI. Safe for concurrent use.
type MemoryQueryLog struct {
	mu      sync.Mutex
	records []domain.QueryRecord
}

func NewMemoryQueryLog() *MemoryQueryLog {
	return &MemoryQueryLog{}
}

func (l *MemoryQueryLog) Record(ctx context.Context, rec domain.QueryRecord) error {
	if rec.Operation == "" {
		return errors.New("record query: operation must not be empty")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
	return nil
}

func (l *MemoryQueryLog) Recent(ctx context.Context, limit int) ([]domain.QueryRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limit > len(l.records) {
		limit = len(l.records)
	}
	if limit <= 0 {
		return []domain.QueryRecord{}, nil
	}

	out := make([]domain.QueryRecord, 0, limit)
	for i := len(l.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, l.records[i])
	}
	return out, nil
}
