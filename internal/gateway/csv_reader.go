package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"payments-engine/internal/domain"
)

// CSVTransactionSource implements the TransactionSource interface for CSV files.
//
// The expected format is a header row `type,client,tx,amount` followed by one
// row per transaction, e.g. `deposit,1,1,1.0`. Fields may carry surrounding
// whitespace. Dispute, resolve and chargeback rows ignore the amount column,
// which may be empty or missing entirely.
type CSVTransactionSource struct{}

// NewCSVTransactionSource creates a new source instance.
func NewCSVTransactionSource() *CSVTransactionSource {
	return &CSVTransactionSource{}
}

// GetTransactions reads and parses the transactions CSV file at path,
// preserving input order. Any malformed row fails the whole load; the core
// engine never sees malformed input.
func (s *CSVTransactionSource) GetTransactions(ctx context.Context, path string) ([]domain.Transaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transactions file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	// Dispute/resolve/chargeback rows may omit the amount column.
	reader.FieldsPerRecord = -1

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	var transactions []domain.Transaction
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		tx, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("invalid record in %s: %w", path, err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func parseRecord(record []string) (domain.Transaction, error) {
	if len(record) < 3 {
		return nil, fmt.Errorf("expected at least 3 fields, got %d", len(record))
	}

	client, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 16)
	if err != nil {
		return nil, fmt.Errorf("could not parse client id '%s': %w", record[1], err)
	}
	tx, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("could not parse transaction id '%s': %w", record[2], err)
	}

	clientID := domain.ClientID(client)
	txID := domain.TxID(tx)

	switch txType := strings.TrimSpace(record[0]); txType {
	case "deposit":
		amount, err := parseAmount(record)
		if err != nil {
			return nil, err
		}
		return domain.Deposit{Client: clientID, Tx: txID, Amount: amount}, nil
	case "withdrawal":
		amount, err := parseAmount(record)
		if err != nil {
			return nil, err
		}
		return domain.Withdrawal{Client: clientID, Tx: txID, Amount: amount}, nil
	case "dispute":
		return domain.Dispute{Client: clientID, Tx: txID}, nil
	case "resolve":
		return domain.Resolve{Client: clientID, Tx: txID}, nil
	case "chargeback":
		return domain.Chargeback{Client: clientID, Tx: txID}, nil
	default:
		return nil, fmt.Errorf("'%s' is not a valid transaction type", txType)
	}
}

func parseAmount(record []string) (decimal.Decimal, error) {
	if len(record) < 4 {
		return decimal.Zero, fmt.Errorf("missing amount field")
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(record[3]))
	if err != nil {
		return decimal.Zero, fmt.Errorf("could not parse amount '%s': %w", record[3], err)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount '%s' is negative", record[3])
	}
	return amount, nil
}
