package domain

import "github.com/shopspring/decimal"

// Account tracks one client's balances, settled transactions, and active disputes.
//
// Settled deposits and withdrawals live in the records map. Disputing one moves
// it into the disputed map; a resolve moves it back, a chargeback retires it for
// good and freezes the account. A transaction id is therefore in at most one of
// the two maps at any time, and only Deposit and Withdrawal values are ever stored.
//
// After every successful operation total equals available plus held.
type Account struct {
	clientID  ClientID
	available decimal.Decimal
	held      decimal.Decimal
	total     decimal.Decimal
	frozen    bool
	records   map[TxID]Transaction
	disputed  map[TxID]Transaction
}

// NewAccount creates an empty, unfrozen account for the given client.
func NewAccount(clientID ClientID) *Account {
	return &Account{
		clientID:  clientID,
		available: decimal.Zero,
		held:      decimal.Zero,
		total:     decimal.Zero,
		records:   make(map[TxID]Transaction),
		disputed:  make(map[TxID]Transaction),
	}
}

// ClientID returns the account owner's id.
func (a *Account) ClientID() ClientID { return a.clientID }

// Available returns the funds the client may withdraw or have disputed.
func (a *Account) Available() decimal.Decimal { return a.available }

// Held returns the funds frozen pending dispute resolution.
func (a *Account) Held() decimal.Decimal { return a.held }

// Total returns the sum of available and held funds.
func (a *Account) Total() decimal.Decimal { return a.total }

// Frozen reports whether the account has processed a chargeback. A frozen
// account permanently rejects all further transactions.
func (a *Account) Frozen() bool { return a.frozen }

// Recorded reports whether tx is a settled deposit or withdrawal eligible for dispute.
func (a *Account) Recorded(tx TxID) bool {
	_, ok := a.records[tx]
	return ok
}

// Disputed reports whether tx is currently under dispute.
func (a *Account) Disputed(tx TxID) bool {
	_, ok := a.disputed[tx]
	return ok
}

// Summary returns the externally visible snapshot of the account.
func (a *Account) Summary() AccountSummary {
	return AccountSummary{
		Client:    a.clientID,
		Available: a.available,
		Held:      a.held,
		Total:     a.total,
		Locked:    a.frozen,
	}
}

// Process validates and applies a single transaction. It is the only mutating
// entry point. Every failure is a recoverable validation error; the account is
// left untouched whenever an error is returned.
func (a *Account) Process(tx Transaction) error {
	if a.frozen {
		return ErrAccountFrozen
	}
	if tx.ClientID() != a.clientID {
		return ErrClientMismatch
	}

	switch t := tx.(type) {
	case Deposit:
		return a.deposit(t)
	case Withdrawal:
		return a.withdrawal(t)
	case Dispute:
		return a.dispute(t.Tx)
	case Resolve:
		return a.resolve(t.Tx)
	case Chargeback:
		return a.chargeback(t.Tx)
	}
	return ErrUnknownTransaction
}

func (a *Account) deposit(t Deposit) error {
	a.available = a.available.Add(t.Amount)
	a.total = a.total.Add(t.Amount)
	a.records[t.Tx] = t
	return nil
}

func (a *Account) withdrawal(t Withdrawal) error {
	if a.available.LessThan(t.Amount) {
		return ErrInsufficientFunds
	}
	// total >= available is an invariant, but check independently to guard
	// against drift.
	if a.total.LessThan(t.Amount) {
		return ErrInsufficientFunds
	}
	a.available = a.available.Sub(t.Amount)
	a.total = a.total.Sub(t.Amount)
	a.records[t.Tx] = t
	return nil
}

func (a *Account) dispute(tx TxID) error {
	rec, ok := a.records[tx]
	if !ok {
		return ErrUnknownTransaction
	}

	switch t := rec.(type) {
	case Deposit:
		// A deposit cannot be put on hold if its funds were already spent.
		if a.available.LessThan(t.Amount) {
			return ErrInsufficientFunds
		}
		a.available = a.available.Sub(t.Amount)
		a.held = a.held.Add(t.Amount) // total unchanged, funds move between buckets
	case Withdrawal:
		// The disputed amount already left the account at withdrawal time, so
		// it has to be re-materialized into held pending the dispute outcome.
		a.held = a.held.Add(t.Amount)
		a.total = a.total.Add(t.Amount)
	}

	// Moving the record out of records makes disputing the same id twice
	// impossible until the dispute is resolved.
	a.disputed[tx] = rec
	delete(a.records, tx)
	return nil
}

func (a *Account) resolve(tx TxID) error {
	rec, ok := a.disputed[tx]
	if !ok {
		return ErrUnknownTransaction
	}

	switch t := rec.(type) {
	case Deposit:
		if a.held.LessThan(t.Amount) {
			return ErrInsufficientHeldFunds
		}
		a.held = a.held.Sub(t.Amount)
		a.available = a.available.Add(t.Amount)
	case Withdrawal:
		// The withdrawal stands: the re-materialized funds leave the account
		// for good.
		if a.held.LessThan(t.Amount) {
			return ErrInsufficientHeldFunds
		}
		a.held = a.held.Sub(t.Amount)
		a.total = a.total.Sub(t.Amount)
	}

	delete(a.disputed, tx)
	a.records[tx] = rec
	return nil
}

func (a *Account) chargeback(tx TxID) error {
	rec, ok := a.disputed[tx]
	if !ok {
		return ErrUnknownTransaction
	}

	amount := recordedAmount(rec)
	if a.held.LessThan(amount) {
		return ErrInsufficientHeldFunds
	}
	if a.total.LessThan(amount) {
		return ErrInsufficientTotalFunds
	}
	a.held = a.held.Sub(amount)
	a.total = a.total.Sub(amount)
	// The disputed transaction might be fraudulent, so the account is frozen
	// no matter which variant was disputed. The id is retired permanently.
	a.frozen = true
	delete(a.disputed, tx)
	return nil
}

// recordedAmount extracts the amount of a stored deposit or withdrawal. Only
// those two variants are ever stored, so the fallthrough is unreachable.
func recordedAmount(tx Transaction) decimal.Decimal {
	switch t := tx.(type) {
	case Deposit:
		return t.Amount
	case Withdrawal:
		return t.Amount
	}
	return decimal.Zero
}
