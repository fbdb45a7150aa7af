package usecase

import (
	"context"

	"payments-engine/internal/domain"
)

// TransactionSource defines the interface for fetching the transaction stream.
// The usecase layer depends on this interface, not on a concrete implementation.
// Implementations must preserve input order and reject malformed records; the
// usecase only ever sees already-typed transactions.
//
//go:generate mockgen -destination=mocks/mock_source.go -source=interface.go TransactionSource
type TransactionSource interface {
	GetTransactions(ctx context.Context, path string) ([]domain.Transaction, error)
}
