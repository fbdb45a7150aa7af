package domain

import "github.com/shopspring/decimal"

// AccountSummary is the read-only snapshot of an account exposed after processing.
type AccountSummary struct {
	Client    ClientID        `json:"client"`
	Available decimal.Decimal `json:"available"`
	Held      decimal.Decimal `json:"held"`
	Total     decimal.Decimal `json:"total"`
	Locked    bool            `json:"locked"`
}
