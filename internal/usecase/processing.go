package usecase

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"payments-engine/internal/domain"
)

// ProcessingUseCase drives the payment engine: it feeds every transaction from
// a source into the owning client's account and collects the final summaries.
type ProcessingUseCase struct {
	source TransactionSource
	logger *zap.Logger
}

// NewProcessingUseCase creates a new instance of the usecase. A nil logger
// disables logging.
func NewProcessingUseCase(source TransactionSource, logger *zap.Logger) *ProcessingUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProcessingUseCase{source: source, logger: logger}
}

// Process loads the transactions at path and applies them in input order,
// creating accounts lazily on a client's first transaction. A rejected
// transaction is logged and skipped; it never aborts the batch. The returned
// summaries are sorted by client id so output is deterministic.
func (uc *ProcessingUseCase) Process(ctx context.Context, path string) ([]domain.AccountSummary, error) {
	transactions, err := uc.source.GetTransactions(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not get transactions: %w", err)
	}

	ledger := make(map[domain.ClientID]*domain.Account)
	for _, tx := range transactions {
		account, ok := ledger[tx.ClientID()]
		if !ok {
			account = domain.NewAccount(tx.ClientID())
			ledger[tx.ClientID()] = account
		}

		uc.logger.Debug("applying transaction",
			zap.Uint16("client", uint16(tx.ClientID())),
			zap.Uint32("tx", uint32(tx.TxID())),
			zap.String("available", account.Available().String()),
			zap.String("held", account.Held().String()),
		)
		if err := account.Process(tx); err != nil {
			uc.logger.Warn("transaction rejected",
				zap.Uint16("client", uint16(tx.ClientID())),
				zap.Uint32("tx", uint32(tx.TxID())),
				zap.Error(err),
			)
			continue
		}
	}

	summaries := make([]domain.AccountSummary, 0, len(ledger))
	for _, account := range ledger {
		summaries = append(summaries, account.Summary())
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Client < summaries[j].Client
	})

	return summaries, nil
}
