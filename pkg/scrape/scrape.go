// Package scrape pulls rows of cell text out of the bank's HTML pages.
// It is the only package that knows anything about markup; everything
// downstream works on plain string cells.
package scrape

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/yacoob/aib2ofx/pkg/models"
	"github.com/yacoob/aib2ofx/pkg/parser"
)

// Credit-card statement pages carry a summary header that checking
// statements never show.
const creditCardMarker = `th:contains("Summary of last statement")`

// Source is a statement page reduced to its data: the transaction table
// as rows of cell text, the statement type, and the account the page's
// account selector currently points at.
type Source struct {
	Rows      [][]string
	Type      models.StatementType
	AccountID string
}

// Balance is one account widget from the overview page.
type Balance struct {
	AccountID string
	Amount    string
}

// Statement extracts the transaction table from a statement page.
func Statement(html []byte) (*Source, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing statement page: %w", err)
	}

	source := &Source{Type: models.Checking}
	if doc.Find(creditCardMarker).Length() > 0 {
		source.Type = models.CreditCard
	}

	doc.Find("tr.jext01, tr.ext01").Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		source.Rows = append(source.Rows, cells)
	})

	source.AccountID = selectedAccount(doc)

	return source, nil
}

// selectedAccount reads the current value of the account dropdown.
func selectedAccount(doc *goquery.Document) string {
	option := doc.Find("select#index option[selected]").First()
	if option.Length() == 0 {
		option = doc.Find("select#index option").First()
	}
	if value, ok := option.Attr("value"); ok && value != "" {
		return value
	}
	return strings.TrimSpace(option.Text())
}

// Balances extracts (account, available balance) pairs from the accounts
// overview page. Widgets whose amount does not parse are skipped.
func Balances(html []byte) ([]Balance, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing overview page: %w", err)
	}

	var balances []Balance
	doc.Find("div.acountOverviewLink").Each(func(_ int, widget *goquery.Selection) {
		id := strings.TrimSpace(widget.Find("button span").First().Text())
		if id == "" {
			return
		}

		amount := parser.ParseAmount(widget.Find("h3").First().Text())
		if math.IsNaN(amount) {
			return
		}

		balances = append(balances, Balance{
			AccountID: id,
			Amount:    models.FormatAmount(amount),
		})
	})

	return balances, nil
}
