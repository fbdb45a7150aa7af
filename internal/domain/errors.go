package domain

import "errors"

var (
	// ErrAccountFrozen is returned for any transaction attempted after a chargeback.
	ErrAccountFrozen = errors.New("account is frozen")
	// ErrClientMismatch is returned when a transaction's client id does not
	// match the account it was routed to.
	ErrClientMismatch = errors.New("transaction does not match the account's client id")
	// ErrInsufficientFunds is returned when a withdrawal or a deposit dispute
	// exceeds the available balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInsufficientHeldFunds is returned when a resolve or chargeback exceeds
	// the held balance.
	ErrInsufficientHeldFunds = errors.New("insufficient held funds")
	// ErrInsufficientTotalFunds is returned when a chargeback exceeds the total balance.
	ErrInsufficientTotalFunds = errors.New("insufficient total funds")
	// ErrUnknownTransaction is returned when a dispute references an id absent
	// from the settled records, or a resolve/chargeback references an id that
	// is not under dispute.
	ErrUnknownTransaction = errors.New("not a valid transaction id")
)
