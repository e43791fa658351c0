package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/mwaldron/ledgerdesk/internal/encoding"
	"github.com/mwaldron/ledgerdesk/internal/invoice"
)

// Expected header columns. Order in the file does not matter; the header
// row is matched by name.
const (
	colEmail  = "customer_email"
	colAmount = "amount"
	colStatus = "status"
	colDate   = "date"
)

// csvImporter reads invoice CSV files: a header row naming the columns,
// then one invoice per row. Amounts are decimal dollars, dates ISO
// calendar dates.
type csvImporter struct{}

func newCSVImporter() *csvImporter {
	return &csvImporter{}
}

func (p *csvImporter) Parse(r io.Reader) ([]Row, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	cols, err := indexHeader(records[0])
	if err != nil {
		return nil, err
	}

	var rows []Row

	for i, record := range records[1:] {
		rowNum := i + 2 // 1-based, counting the header

		row, err := parseRecord(cols, record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// colIndex maps column names to their position in the row.
type colIndex map[string]int

func indexHeader(header []string) (colIndex, error) {
	cols := make(colIndex)

	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name != "" {
			cols[name] = i
		}
	}

	for _, required := range []string{colEmail, colAmount, colStatus, colDate} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q in header", required)
		}
	}

	return cols, nil
}

func parseRecord(cols colIndex, record []string) (Row, error) {
	email := cellValue(record, cols[colEmail])
	if email == "" {
		return Row{}, fmt.Errorf("missing customer email")
	}

	cents, ok := invoice.ParseAmount(cellValue(record, cols[colAmount]))
	if !ok {
		return Row{}, fmt.Errorf("invalid amount %q", cellValue(record, cols[colAmount]))
	}

	status := invoice.Status(cellValue(record, cols[colStatus]))
	if !status.Valid() {
		return Row{}, fmt.Errorf("invalid status %q", cellValue(record, cols[colStatus]))
	}

	date, err := time.Parse(time.DateOnly, cellValue(record, cols[colDate]))
	if err != nil {
		return Row{}, fmt.Errorf("invalid date %q", cellValue(record, cols[colDate]))
	}

	return Row{
		CustomerEmail: email,
		AmountCents:   cents,
		Status:        status,
		Date:          date,
	}, nil
}

// cellValue safely gets a trimmed cell value from a record.
func cellValue(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[idx])
}
