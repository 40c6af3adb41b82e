// Package format renders a parsed statement into the interchange formats
// accounting software imports: OFX 1.02 SGML and a simple CSV.
package format

import (
	"bytes"
	"fmt"
	"time"

	"github.com/yacoob/aib2ofx/pkg/models"
)

// ofxHeader is the fixed OFX 1.02 envelope. The field values are part of
// the interop contract; the blank line after the block is mandatory.
const ofxHeader = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

`

// RenderOFX serializes a statement as an OFX document. The transaction
// list keeps source order; DTSTART and DTEND are the timestamps of the
// first and last transaction as they appear, not a computed min/max.
// now becomes DTSERVER and every DTASOF.
func RenderOFX(statement *models.Statement, now time.Time) ([]byte, error) {
	if err := statement.Validate(); err != nil {
		return nil, err
	}

	reportDate := models.Timestamp(now)

	var buf bytes.Buffer
	buf.WriteString(ofxHeader)

	buf.WriteString("<OFX>\n<SIGNONMSGSRSV1>\n<SONRS>\n<STATUS>\n<CODE>0</CODE>\n<SEVERITY>INFO</SEVERITY>\n</STATUS>")
	fmt.Fprintf(&buf, "<DTSERVER>%s</DTSERVER>\n", reportDate)
	buf.WriteString("<LANGUAGE>ENG</LANGUAGE>\n</SONRS>\n</SIGNONMSGSRSV1>\n")

	if statement.Type == models.Checking {
		buf.WriteString("<BANKMSGSRSV1>\n<STMTTRNRS><TRNUID>1</TRNUID>\n")
		buf.WriteString("<STATUS><CODE>0</CODE><SEVERITY>INFO</SEVERITY></STATUS>\n")
		fmt.Fprintf(&buf, "<STMTRS><CURDEF>%s</CURDEF>\n", statement.Currency)
		fmt.Fprintf(&buf, "<BANKACCTFROM><BANKID>%s</BANKID>\n", statement.BankID)
		fmt.Fprintf(&buf, "<ACCTID>%s</ACCTID>\n", statement.AccountID)
		buf.WriteString("<ACCTTYPE>CHECKING</ACCTTYPE>\n</BANKACCTFROM>\n")
	} else {
		buf.WriteString("<CREDITCARDMSGSRSV1>\n<CCSTMTTRNRS><TRNUID>1</TRNUID>\n")
		buf.WriteString("<STATUS><CODE>0</CODE><SEVERITY>INFO</SEVERITY></STATUS>\n")
		fmt.Fprintf(&buf, "<CCSTMTRS><CURDEF>%s</CURDEF>\n", statement.Currency)
		fmt.Fprintf(&buf, "<CCACCTFROM>\n<ACCTID>%s</ACCTID>\n</CCACCTFROM>\n", statement.AccountID)
	}

	buf.WriteString("<BANKTRANLIST>\n")
	fmt.Fprintf(&buf, "<DTSTART>%s</DTSTART>\n", models.Timestamp(statement.First().Date()))
	fmt.Fprintf(&buf, "<DTEND>%s</DTEND>\n", models.Timestamp(statement.Last().Date()))

	for _, tx := range statement.Transactions {
		buf.WriteString("<STMTTRN>\n")
		fmt.Fprintf(&buf, "<TRNTYPE>%s</TRNTYPE>\n", tx.Type())
		fmt.Fprintf(&buf, "<DTPOSTED>%s</DTPOSTED>\n", models.Timestamp(tx.Date()))
		fmt.Fprintf(&buf, "<TRNAMT>%s</TRNAMT>\n", models.FormatAmount(tx.Amount()))
		fmt.Fprintf(&buf, "<FITID>%s</FITID>\n", tx.ID())
		fmt.Fprintf(&buf, "<NAME>%s</NAME>\n", tx.Description())
		buf.WriteString("</STMTTRN>\n")
	}

	buf.WriteString("</BANKTRANLIST>\n")

	if statement.Type == models.Checking {
		fmt.Fprintf(&buf, "<LEDGERBAL><BALAMT>%s</BALAMT><DTASOF>%s</DTASOF></LEDGERBAL>\n",
			models.FormatAmount(statement.LedgerBalance), reportDate)
		fmt.Fprintf(&buf, "<AVAILBAL><BALAMT>%s</BALAMT><DTASOF>%s</DTASOF></AVAILBAL>\n",
			statement.AvailableBalance, reportDate)
		buf.WriteString("</STMTRS></STMTTRNRS></BANKMSGSRSV1></OFX>\n")
	} else {
		// The source statements have no separate available-balance figure
		// for cards, so the captured available balance doubles as the
		// ledger balance here.
		fmt.Fprintf(&buf, "<LEDGERBAL><BALAMT>%s</BALAMT><DTASOF>%s</DTASOF></LEDGERBAL>\n",
			statement.AvailableBalance, reportDate)
		buf.WriteString("</CCSTMTRS></CCSTMTTRNRS></CREDITCARDMSGSRSV1></OFX>\n")
	}

	return buf.Bytes(), nil
}
