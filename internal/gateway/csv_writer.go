package gateway

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"payments-engine/internal/domain"
)

// CSVSummaryWriter writes account summaries to an output stream as CSV.
type CSVSummaryWriter struct {
	w io.Writer
}

// NewCSVSummaryWriter creates a writer targeting w.
func NewCSVSummaryWriter(w io.Writer) *CSVSummaryWriter {
	return &CSVSummaryWriter{w: w}
}

// WriteSummaries writes the header row followed by one row per summary, in the
// order given. Amounts are written exactly as tracked, without rounding.
func (cw *CSVSummaryWriter) WriteSummaries(summaries []domain.AccountSummary) error {
	writer := csv.NewWriter(cw.w)

	if err := writer.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, summary := range summaries {
		record := []string{
			strconv.FormatUint(uint64(summary.Client), 10),
			summary.Available.String(),
			summary.Held.String(),
			summary.Total.String(),
			strconv.FormatBool(summary.Locked),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write summary for client %d: %w", summary.Client, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
