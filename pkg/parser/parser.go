package parser

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/yacoob/aib2ofx/pkg/models"
)

// DefaultCurrency is the only currency the bank's statements are
// denominated in.
const DefaultCurrency = "EUR"

// BalanceSource looks up the last captured available balance for an
// account. The snapshot store satisfies this.
type BalanceSource interface {
	Get(accountID string) (string, bool)
}

type Parser struct {
	logger   *log.Logger
	Currency string
}

func New(logger *log.Logger) *Parser {
	return &Parser{
		logger:   logger,
		Currency: DefaultCurrency,
	}
}

// ParseStatement turns raw statement rows into a Statement. Checking rows
// are (date, description, debit, credit, balance); credit-card rows lack
// the balance column. A row is kept only when at least one of debit and
// credit parses to a number, which drops header, spacer and summary rows
// without treating them as errors. Statements where nothing is left are
// rejected with models.ErrNoTransactions.
func (p *Parser) ParseStatement(rows [][]string, kind models.StatementType, accountID string, balances BalanceSource) (*models.Statement, error) {
	width := 4
	if kind == models.Checking {
		width = 5
	}

	var transactions []*models.Transaction
	for _, row := range rows {
		if len(row) < width {
			p.logger.Debug("row has too few cells", "cells", len(row), "want", width)
			continue
		}

		date, err := ParseDate(row[0])
		if err != nil {
			p.logger.Debug("skipping row with unparseable date", "cell", row[0], "error", err)
			continue
		}

		builder := models.NewTransaction(row[1]).
			SetDate(date).
			SetDebit(ParseAmount(row[2])).
			SetCredit(ParseAmount(row[3]))
		if kind == models.Checking {
			builder.SetBalance(ParseAmount(row[4]))
		}

		tx, err := builder.Build()
		if err != nil {
			// Neither column was numeric: not a transaction row.
			continue
		}

		transactions = append(transactions, tx)
	}

	if len(transactions) == 0 {
		return nil, models.ErrNoTransactions
	}

	statement := &models.Statement{
		Type:          kind,
		Currency:      p.Currency,
		AccountID:     accountID,
		Transactions:  transactions,
		LedgerBalance: math.NaN(),
	}

	if kind == models.Checking {
		statement.LedgerBalance = statement.Last().Balance()
	}

	if balances != nil {
		if available, ok := balances.Get(accountID); ok {
			statement.AvailableBalance = available
		}
	}

	p.logger.Debug("parsed statement",
		"type", kind,
		"account", accountID,
		"transactions", len(transactions))

	return statement, nil
}
