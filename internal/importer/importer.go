package importer

import (
	"io"
	"time"

	"github.com/mwaldron/ledgerdesk/internal/invoice"
)

// Format identifies a supported bulk-import file layout.
type Format string

const (
	FormatCSV Format = "csv"
)

// Row is one invoice parsed out of an import file. The customer is still
// identified by email at this stage; resolution to a customer id happens at
// the handler once the row has survived parsing.
type Row struct {
	CustomerEmail string
	AmountCents   int64
	Status        invoice.Status
	Date          time.Time
}

type Importer interface {
	Parse(r io.Reader) ([]Row, error)
}
