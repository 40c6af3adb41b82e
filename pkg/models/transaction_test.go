package models_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yacoob/aib2ofx/pkg/models"
)

func TestBuildRequiresMovement(t *testing.T) {
	date := time.Date(2009, time.May, 1, 0, 0, 0, 0, time.Local)

	_, err := models.NewTransaction("spacer").
		SetDate(date).
		SetDebit(math.NaN()).
		SetCredit(math.NaN()).
		Build()
	require.ErrorIs(t, err, models.ErrNoMovement)

	tx, err := models.NewTransaction("Shop").
		SetDate(date).
		SetDebit(10.00).
		Build()
	require.NoError(t, err)
	require.Equal(t, "Shop", tx.Description())
}

func TestAmountAndType(t *testing.T) {
	date := time.Date(2009, time.May, 1, 0, 0, 0, 0, time.Local)

	debit, err := models.NewTransaction("Shop").SetDate(date).SetDebit(10.00).Build()
	require.NoError(t, err)
	require.Equal(t, -10.00, debit.Amount())
	require.Equal(t, "DEBIT", debit.Type())

	credit, err := models.NewTransaction("Salary").SetDate(date).SetCredit(1000.00).Build()
	require.NoError(t, err)
	require.Equal(t, 1000.00, credit.Amount())
	require.Equal(t, "CREDIT", credit.Type())
}

func TestIDDeterministic(t *testing.T) {
	date := time.Date(2009, time.May, 1, 0, 0, 0, 0, time.Local)

	build := func(debit float64, description string) *models.Transaction {
		tx, err := models.NewTransaction(description).SetDate(date).SetDebit(debit).Build()
		require.NoError(t, err)
		return tx
	}

	a := build(10.00, "Shop")
	b := build(10.00, "Shop")
	require.Equal(t, a.ID(), b.ID())
	require.Len(t, a.ID(), 64)

	// Any change to the triple changes the ID.
	require.NotEqual(t, a.ID(), build(10.01, "Shop").ID())
	require.NotEqual(t, a.ID(), build(10.00, "Shop ").ID())

	later, err := models.NewTransaction("Shop").
		SetDate(date.AddDate(0, 0, 1)).
		SetDebit(10.00).
		Build()
	require.NoError(t, err)
	require.NotEqual(t, a.ID(), later.ID())
}

func TestTimestamp(t *testing.T) {
	date := time.Date(2009, time.May, 1, 13, 37, 42, 0, time.Local)
	require.Equal(t, "20090501133742", models.Timestamp(date))
}

func TestFormatAmount(t *testing.T) {
	require.Equal(t, "10", models.FormatAmount(10.00))
	require.Equal(t, "-10", models.FormatAmount(-10.00))
	require.Equal(t, "1234.56", models.FormatAmount(1234.56))
	require.Equal(t, "0.01", models.FormatAmount(0.01))
}

func TestStatementValidate(t *testing.T) {
	empty := &models.Statement{Type: models.Checking}
	require.ErrorIs(t, empty.Validate(), models.ErrNoTransactions)

	tx, err := models.NewTransaction("Shop").
		SetDate(time.Now()).
		SetDebit(10.00).
		Build()
	require.NoError(t, err)

	statement := &models.Statement{
		Type:         models.Checking,
		Transactions: []*models.Transaction{tx},
	}
	require.NoError(t, statement.Validate())
	require.Same(t, tx, statement.First())
	require.Same(t, tx, statement.Last())
}
