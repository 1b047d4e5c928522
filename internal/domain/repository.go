package domain

import "context"

// TransactionSource hands out the process-wide transaction collection.
// Callers must treat the returned slice as read-only.
type TransactionSource interface {
	GetTransactions(ctx context.Context) ([]Transaction, error)
}
