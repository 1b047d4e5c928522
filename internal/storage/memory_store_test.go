package storage

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/grachmannico95/decline-analytics-be/internal/domain"
	"github.com/grachmannico95/decline-analytics-be/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransactions() []domain.Transaction {
	return []domain.Transaction{
		{ID: "txn_000001", Timestamp: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC), Status: domain.TransactionStatusApproved, Amount: 10},
		{ID: "txn_000002", Timestamp: time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC), Status: domain.TransactionStatusApproved, Amount: 20},
	}
}

func TestMemoryStore_LazyLoad(t *testing.T) {
	var calls int32
	store := NewMemoryStore(func() []domain.Transaction {
		atomic.AddInt32(&calls, 1)
		return sampleTransactions()
	}, logger.NewNop())

	assert.Equal(t, 0, store.Count())
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))

	txs, err := store.GetTransactions(context.Background())
	require.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Equal(t, 2, store.Count())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestMemoryStore_ReturnsSameCollection(t *testing.T) {
	var calls int32
	store := NewMemoryStore(func() []domain.Transaction {
		atomic.AddInt32(&calls, 1)
		return sampleTransactions()
	}, logger.NewNop())
	ctx := context.Background()

	first, err := store.GetTransactions(ctx)
	require.NoError(t, err)
	second, err := store.GetTransactions(ctx)
	require.NoError(t, err)

	assert.Same(t, &first[0], &second[0])
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestMemoryStore_EmptyDataset(t *testing.T) {
	store := NewMemoryStore(func() []domain.Transaction {
		return nil
	}, logger.NewNop())

	txs, err := store.GetTransactions(context.Background())
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
	assert.Nil(t, txs)
}

func TestMemoryStore_Concurrency(t *testing.T) {
	var calls int32
	store := NewMemoryStore(func() []domain.Transaction {
		atomic.AddInt32(&calls, 1)
		time.Sleep(10 * time.Millisecond)
		return sampleTransactions()
	}, logger.NewNop())
	ctx := context.Background()

	results := make([][]domain.Transaction, 100)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			txs, err := store.GetTransactions(ctx)
			if err == nil {
				results[id] = txs
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for i, txs := range results {
		require.Len(t, txs, 2, "goroutine %d saw a partial collection", i)
		assert.Same(t, &results[0][0], &txs[0])
	}
}
