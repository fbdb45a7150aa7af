package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payments-engine/internal/domain"
	"payments-engine/internal/usecase"
	mock_usecase "payments-engine/internal/usecase/mocks"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestProcessingUseCase_Process(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := "/examples/transactions.csv"

	tests := []struct {
		name         string
		transactions []domain.Transaction
		sourceError  error
		want         []domain.AccountSummary
		wantErr      bool
	}{
		{
			name: "deposits and withdrawals across clients, summaries sorted by client id",
			transactions: []domain.Transaction{
				domain.Deposit{Client: 2, Tx: 2, Amount: decimal.RequireFromString("2.0")},
				domain.Deposit{Client: 1, Tx: 1, Amount: decimal.RequireFromString("1.0")},
				domain.Deposit{Client: 1, Tx: 3, Amount: decimal.RequireFromString("2.0")},
				domain.Withdrawal{Client: 1, Tx: 4, Amount: decimal.RequireFromString("1.5")},
				domain.Withdrawal{Client: 2, Tx: 5, Amount: decimal.RequireFromString("3.0")}, // rejected, insufficient funds
			},
			want: []domain.AccountSummary{
				{Client: 1, Available: decimal.RequireFromString("1.5"), Held: decimal.Zero, Total: decimal.RequireFromString("1.5"), Locked: false},
				{Client: 2, Available: decimal.RequireFromString("2.0"), Held: decimal.Zero, Total: decimal.RequireFromString("2.0"), Locked: false},
			},
		},
		{
			name: "dispute and resolve releases held funds",
			transactions: []domain.Transaction{
				domain.Deposit{Client: 1, Tx: 1, Amount: decimal.RequireFromString("3.0")},
				domain.Dispute{Client: 1, Tx: 1},
				domain.Resolve{Client: 1, Tx: 1},
			},
			want: []domain.AccountSummary{
				{Client: 1, Available: decimal.RequireFromString("3.0"), Held: decimal.Zero, Total: decimal.RequireFromString("3.0"), Locked: false},
			},
		},
		{
			name: "chargeback freezes the account and later transactions are skipped",
			transactions: []domain.Transaction{
				domain.Deposit{Client: 2, Tx: 1, Amount: decimal.RequireFromString("3.0")},
				domain.Withdrawal{Client: 2, Tx: 2, Amount: decimal.RequireFromString("3.0")},
				domain.Dispute{Client: 2, Tx: 2},
				domain.Chargeback{Client: 2, Tx: 2},
				domain.Deposit{Client: 2, Tx: 3, Amount: decimal.RequireFromString("5.0")}, // rejected, account frozen
			},
			want: []domain.AccountSummary{
				{Client: 2, Available: decimal.Zero, Held: decimal.Zero, Total: decimal.Zero, Locked: true},
			},
		},
		{
			name: "misrouted client id is skipped without affecting the batch",
			transactions: []domain.Transaction{
				domain.Deposit{Client: 1, Tx: 1, Amount: decimal.RequireFromString("1.0")},
				domain.Dispute{Client: 1, Tx: 9}, // rejected, unknown transaction id
				domain.Deposit{Client: 1, Tx: 2, Amount: decimal.RequireFromString("1.0")},
			},
			want: []domain.AccountSummary{
				{Client: 1, Available: decimal.RequireFromString("2.0"), Held: decimal.Zero, Total: decimal.RequireFromString("2.0"), Locked: false},
			},
		},
		{
			name:         "empty input yields no summaries",
			transactions: []domain.Transaction{},
			want:         []domain.AccountSummary{},
		},
		{
			name:        "source error",
			sourceError: errors.New("failed to read transactions"),
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mSource := mock_usecase.NewMockTransactionSource(ctrl)

			if tt.sourceError != nil {
				mSource.EXPECT().
					GetTransactions(gomock.Any(), path).
					Return(nil, tt.sourceError)
			} else {
				mSource.EXPECT().
					GetTransactions(gomock.Any(), path).
					Return(tt.transactions, nil)
			}

			uc := usecase.NewProcessingUseCase(mSource, nil)
			got, gotErr := uc.Process(context.Background(), path)

			if tt.wantErr {
				assert.Error(t, gotErr)
				assert.Nil(t, got)
				return
			}

			assert.NoError(t, gotErr)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i].Client, got[i].Client)
				assert.Equal(t, tt.want[i].Locked, got[i].Locked)
				assert.True(t, tt.want[i].Available.Equal(got[i].Available), "client %d available = %s, want %s", got[i].Client, got[i].Available, tt.want[i].Available)
				assert.True(t, tt.want[i].Held.Equal(got[i].Held), "client %d held = %s, want %s", got[i].Client, got[i].Held, tt.want[i].Held)
				assert.True(t, tt.want[i].Total.Equal(got[i].Total), "client %d total = %s, want %s", got[i].Client, got[i].Total, tt.want[i].Total)
			}
		})
	}
}

func TestProcessingUseCase_TransactionIDsAreScopedPerClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The same transaction id under two different clients is a distinct
	// logical key: disputing tx 1 for client 2 must not touch client 1.
	transactions := []domain.Transaction{
		domain.Deposit{Client: 1, Tx: 1, Amount: dec(t, "1.0")},
		domain.Deposit{Client: 2, Tx: 1, Amount: dec(t, "2.0")},
		domain.Dispute{Client: 2, Tx: 1},
	}

	mSource := mock_usecase.NewMockTransactionSource(ctrl)
	mSource.EXPECT().
		GetTransactions(gomock.Any(), "tx.csv").
		Return(transactions, nil)

	uc := usecase.NewProcessingUseCase(mSource, nil)
	got, err := uc.Process(context.Background(), "tx.csv")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Available.Equal(dec(t, "1.0")))
	assert.True(t, got[0].Held.Equal(decimal.Zero))
	assert.True(t, got[1].Available.Equal(decimal.Zero))
	assert.True(t, got[1].Held.Equal(dec(t, "2.0")))
}
