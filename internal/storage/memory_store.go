package storage

import (
	"context"
	"sync"
	"time"

	"github.com/grachmannico95/decline-analytics-be/internal/domain"
	"github.com/grachmannico95/decline-analytics-be/pkg/logger"
)

// GenerateFunc produces the dataset the store memoizes.
type GenerateFunc func() []domain.Transaction

// MemoryStore materializes the transaction collection on first access and
// hands out the same slice for the rest of the process lifetime.
type MemoryStore struct {
	generate GenerateFunc
	logger   *logger.Logger

	once         sync.Once
	transactions []domain.Transaction
	mu           sync.RWMutex
}

func NewMemoryStore(generate GenerateFunc, log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		generate: generate,
		logger:   log,
	}
}

func (s *MemoryStore) GetTransactions(ctx context.Context) ([]domain.Transaction, error) {
	s.once.Do(func() {
		s.load(ctx)
	})

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.transactions) == 0 {
		return nil, domain.ErrDatasetUnavailable
	}

	return s.transactions, nil
}

// Count reports how many transactions are materialized without triggering a
// load.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.transactions)
}

func (s *MemoryStore) load(ctx context.Context) {
	start := time.Now()
	transactions := s.generate()

	s.mu.Lock()
	s.transactions = transactions
	s.mu.Unlock()

	fields := []interface{}{
		"count", len(transactions),
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if len(transactions) > 0 {
		fields = append(fields,
			"first", transactions[0].Timestamp,
			"last", transactions[len(transactions)-1].Timestamp,
		)
	}
	s.logger.Info(ctx, "Transaction dataset materialized", fields...)
}
