package format

import (
	"bytes"
	"fmt"
	"time"

	"github.com/yacoob/aib2ofx/pkg/models"
)

const csvDateLayout = time.DateOnly

// RenderCSV serializes a statement as comma-separated lines under a
// comment header. Descriptions are written verbatim with no quoting; a
// description containing a comma produces a malformed line. That matches
// the source system and stays until an importer actually needs RFC 4180.
func RenderCSV(statement *models.Statement) ([]byte, error) {
	if err := statement.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("# Date, Description, Operation\n")
	for _, tx := range statement.Transactions {
		fmt.Fprintf(&buf, "%s, %s, %s\n",
			tx.Date().Format(csvDateLayout),
			tx.Description(),
			models.FormatAmount(tx.Amount()))
	}
	return buf.Bytes(), nil
}
