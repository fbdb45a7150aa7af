package domain

import "github.com/shopspring/decimal"

// ClientID identifies the owner of an account.
type ClientID uint16

// TxID identifies a single deposit or withdrawal within one client's history.
// The same TxID under a different client is a distinct logical key.
type TxID uint32

// Transaction is a single instruction against a client's account.
//
// There are exactly five kinds:
//   - Deposit: a credit to the client's asset account.
//   - Withdrawal: a debit to the client's asset account.
//   - Dispute: a client's claim that a prior deposit or withdrawal was
//     erroneous and should be reversed.
//   - Resolve: a resolution to a dispute, releasing the associated held funds.
//   - Chargeback: the final state of a dispute, reversing the disputed
//     transaction and freezing the account.
type Transaction interface {
	ClientID() ClientID
	TxID() TxID

	transaction()
}

// Deposit credits Amount to the client's available and total balances.
type Deposit struct {
	Client ClientID
	Tx     TxID
	Amount decimal.Decimal
}

// Withdrawal debits Amount from the client's available and total balances.
type Withdrawal struct {
	Client ClientID
	Tx     TxID
	Amount decimal.Decimal
}

// Dispute claims that the deposit or withdrawal identified by Tx was erroneous.
type Dispute struct {
	Client ClientID
	Tx     TxID
}

// Resolve cancels the dispute on Tx, releasing the held funds.
type Resolve struct {
	Client ClientID
	Tx     TxID
}

// Chargeback finalizes the dispute on Tx in the client's favor and freezes the account.
type Chargeback struct {
	Client ClientID
	Tx     TxID
}

func (d Deposit) ClientID() ClientID    { return d.Client }
func (d Deposit) TxID() TxID            { return d.Tx }
func (w Withdrawal) ClientID() ClientID { return w.Client }
func (w Withdrawal) TxID() TxID         { return w.Tx }
func (d Dispute) ClientID() ClientID    { return d.Client }
func (d Dispute) TxID() TxID            { return d.Tx }
func (r Resolve) ClientID() ClientID    { return r.Client }
func (r Resolve) TxID() TxID            { return r.Tx }
func (c Chargeback) ClientID() ClientID { return c.Client }
func (c Chargeback) TxID() TxID         { return c.Tx }

func (Deposit) transaction()    {}
func (Withdrawal) transaction() {}
func (Dispute) transaction()    {}
func (Resolve) transaction()    {}
func (Chargeback) transaction() {}
