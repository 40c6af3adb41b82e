package scrape_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yacoob/aib2ofx/pkg/models"
	"github.com/yacoob/aib2ofx/pkg/scrape"
)

const checkingPage = `<html><body>
<select id="index">
<option value="0">Current account 1</option>
<option value="1" selected>Current account 2</option>
</select>
<table class="aibtableStyle01">
<tr><th>Date</th><th>Description</th><th>Debit</th><th>Credit</th><th>Balance</th></tr>
<tr class="jext01"><td>01/05/09</td><td>Shop</td><td>10.00</td><td></td><td>1000.00 DR</td></tr>
<tr class="ext01"><td>03/05/09</td><td>Salary</td><td></td><td>1,000.00</td><td>0.00</td></tr>
</table>
</body></html>`

const creditCardPage = `<html><body>
<select id="index"><option value="9">Credit card</option></select>
<table class="aibtableStyle01">
<tr><th>Summary of last statement</th></tr>
<tr class="jext01"><td>01/05/09</td><td>Shop</td><td>10.00</td><td></td></tr>
</table>
</body></html>`

const overviewPage = `<html><body>
<div class="acountOverviewLink">
  <button><span>123</span></button>
  <h3>1,234.56</h3>
</div>
<div class="acountOverviewLink">
  <button><span>456</span></button>
  <h3>42.00 DR</h3>
</div>
<div class="acountOverviewLink">
  <button><span>789</span></button>
  <h3>n/a</h3>
</div>
</body></html>`

func TestStatementChecking(t *testing.T) {
	source, err := scrape.Statement([]byte(checkingPage))
	require.NoError(t, err)

	require.Equal(t, models.Checking, source.Type)
	require.Equal(t, "1", source.AccountID)
	require.Equal(t, [][]string{
		{"01/05/09", "Shop", "10.00", "", "1000.00 DR"},
		{"03/05/09", "Salary", "", "1,000.00", "0.00"},
	}, source.Rows)
}

func TestStatementCreditCard(t *testing.T) {
	source, err := scrape.Statement([]byte(creditCardPage))
	require.NoError(t, err)

	require.Equal(t, models.CreditCard, source.Type)
	require.Equal(t, "9", source.AccountID)
	require.Len(t, source.Rows, 1)
}

func TestStatementNoTable(t *testing.T) {
	source, err := scrape.Statement([]byte("<html><body><p>nothing here</p></body></html>"))
	require.NoError(t, err)
	require.Empty(t, source.Rows)
	require.Equal(t, models.Checking, source.Type)
}

func TestBalances(t *testing.T) {
	balances, err := scrape.Balances([]byte(overviewPage))
	require.NoError(t, err)

	// The widget with an unparseable amount is skipped.
	require.Equal(t, []scrape.Balance{
		{AccountID: "123", Amount: "1234.56"},
		{AccountID: "456", Amount: "-42"},
	}, balances)
}
