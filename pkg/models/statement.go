package models

import "errors"

// ErrNoTransactions flags a statement with zero parseable rows. Exports
// of such a statement have no date range and no ledger balance, so they
// are rejected up front instead of producing a broken document.
var ErrNoTransactions = errors.New("statement contains no transactions")

type StatementType string

const (
	Checking   StatementType = "checking"
	CreditCard StatementType = "creditcard"
)

// Statement is one export batch: the transactions of a single statement
// page plus the account metadata needed by the serializers. It is built
// fresh for every export and never persisted.
type Statement struct {
	Type         StatementType
	Currency     string
	BankID       string
	AccountID    string
	Transactions []*Transaction

	// LedgerBalance is the balance of the last transaction. Only set for
	// checking statements; credit-card statements carry no balance column.
	LedgerBalance float64

	// AvailableBalance is the figure captured from the accounts overview
	// page, looked up by account ID. Empty when never captured.
	AvailableBalance string
}

func (s *Statement) First() *Transaction { return s.Transactions[0] }
func (s *Statement) Last() *Transaction  { return s.Transactions[len(s.Transactions)-1] }

func (s *Statement) Validate() error {
	if len(s.Transactions) == 0 {
		return ErrNoTransactions
	}
	return nil
}
