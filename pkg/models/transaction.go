package models

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// ErrNoMovement is returned by Build when neither debit nor credit holds
// a numeric value. Statement rows like that are headers or spacers, not
// transactions.
var ErrNoMovement = errors.New("transaction has neither debit nor credit")

// Transaction is a single statement row. Debit and credit are magnitudes;
// the one that did not occur is NaN. Balance is the running balance after
// the transaction and is only carried for checking statements.
type Transaction struct {
	date        time.Time
	description string
	debit       float64
	credit      float64
	balance     float64
}

type TransactionBuilder struct {
	tx Transaction
}

func NewTransaction(description string) *TransactionBuilder {
	return &TransactionBuilder{
		tx: Transaction{
			description: description,
			debit:       math.NaN(),
			credit:      math.NaN(),
			balance:     math.NaN(),
		},
	}
}

func (b *TransactionBuilder) SetDate(date time.Time) *TransactionBuilder {
	b.tx.date = date
	return b
}

func (b *TransactionBuilder) SetDebit(value float64) *TransactionBuilder {
	b.tx.debit = value
	return b
}

func (b *TransactionBuilder) SetCredit(value float64) *TransactionBuilder {
	b.tx.credit = value
	return b
}

func (b *TransactionBuilder) SetBalance(value float64) *TransactionBuilder {
	b.tx.balance = value
	return b
}

func (b *TransactionBuilder) Build() (*Transaction, error) {
	if math.IsNaN(b.tx.debit) && math.IsNaN(b.tx.credit) {
		return nil, ErrNoMovement
	}
	tx := b.tx
	return &tx, nil
}

func (t *Transaction) Date() time.Time     { return t.date }
func (t *Transaction) Description() string { return t.description }
func (t *Transaction) Debit() float64      { return t.debit }
func (t *Transaction) Credit() float64     { return t.credit }
func (t *Transaction) Balance() float64    { return t.balance }
func (t *Transaction) HasCredit() bool     { return !math.IsNaN(t.credit) }

// Amount is the signed value of the transaction: the credit magnitude,
// or the negated debit magnitude.
func (t *Transaction) Amount() float64 {
	if t.HasCredit() {
		return t.credit
	}
	return -t.debit
}

// Type is the OFX transaction type token.
func (t *Transaction) Type() string {
	if t.HasCredit() {
		return "CREDIT"
	}
	return "DEBIT"
}

// ID derives the FITID for the transaction: the hex sha256 of the posted
// timestamp, the rendered signed amount and the raw description. Identical
// triples always hash to the same ID; this is the only de-duplication key
// OFX consumers get, so it has to be a proper digest rather than a checksum.
func (t *Transaction) ID() string {
	sum := sha256.Sum256([]byte(Timestamp(t.date) + FormatAmount(t.Amount()) + t.description))
	return fmt.Sprintf("%x", sum)
}

// Timestamp renders a date as the fixed-width YYYYMMDDHHMMSS token OFX
// expects, in the local timezone.
func Timestamp(t time.Time) string {
	return t.Format("20060102150405")
}

// FormatAmount renders an amount with the minimal number of digits, the
// way the statement values were parsed: 10 stays "10", 1234.56 stays
// "1234.56".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
