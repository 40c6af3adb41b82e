package format_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yacoob/aib2ofx/pkg/format"
	"github.com/yacoob/aib2ofx/pkg/models"
)

func TestRenderCSV(t *testing.T) {
	statement := testStatement(t, models.Checking)

	out, err := format.RenderCSV(statement)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Equal(t, []string{
		"# Date, Description, Operation",
		"2009-05-01, Shop, -10",
		"2009-05-03, Salary, 1000",
	}, lines)
}

func TestRenderCSVEmptyStatement(t *testing.T) {
	statement := &models.Statement{Type: models.CreditCard}
	_, err := format.RenderCSV(statement)
	require.ErrorIs(t, err, models.ErrNoTransactions)
}

// Descriptions are written verbatim: a comma in one splits the line. This
// pins the known limitation rather than quoting behavior.
func TestRenderCSVNoQuoting(t *testing.T) {
	tx, err := models.NewTransaction("Shop, the second one").
		SetDate(time.Date(2009, time.May, 1, 0, 0, 0, 0, time.Local)).
		SetDebit(10.00).
		Build()
	require.NoError(t, err)

	statement := &models.Statement{
		Type:         models.CreditCard,
		Transactions: []*models.Transaction{tx},
	}

	out, err := format.RenderCSV(statement)
	require.NoError(t, err)
	require.Contains(t, string(out), "2009-05-01, Shop, the second one, -10\n")
}
