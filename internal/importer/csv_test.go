package importer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwaldron/ledgerdesk/internal/importer"
	"github.com/mwaldron/ledgerdesk/internal/invoice"
)

func TestImport_CSV(t *testing.T) {
	svc := importer.NewService()

	input := strings.Join([]string{
		"customer_email,amount,status,date",
		"delba@oliveira.com,19.99,pending,2024-11-05",
		"lee@robinson.com,250,paid,2024-10-01",
	}, "\n")

	rows, err := svc.Import(importer.FormatCSV, strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, importer.Row{
		CustomerEmail: "delba@oliveira.com",
		AmountCents:   1999,
		Status:        invoice.StatusPending,
		Date:          time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC),
	}, rows[0])

	assert.Equal(t, int64(25000), rows[1].AmountCents)
	assert.Equal(t, invoice.StatusPaid, rows[1].Status)
}

func TestImport_CSV_HeaderOrderDoesNotMatter(t *testing.T) {
	svc := importer.NewService()

	input := strings.Join([]string{
		"date,status,customer_email,amount",
		"2024-11-05,paid,amy@burns.com,12.50",
	}, "\n")

	rows, err := svc.Import(importer.FormatCSV, strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "amy@burns.com", rows[0].CustomerEmail)
	assert.Equal(t, int64(1250), rows[0].AmountCents)
}

func TestImport_CSV_Windows1252(t *testing.T) {
	svc := importer.NewService()

	// "rené@example.com" with é encoded as the single byte 0xE9.
	input := "customer_email,amount,status,date\n" +
		"ren\xe9@example.com,10,pending,2024-01-15\n"

	rows, err := svc.Import(importer.FormatCSV, strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "rené@example.com", rows[0].CustomerEmail)
}

func TestImport_CSV_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "missing column",
			input:   "customer_email,amount,status\na@b.com,10,pending",
			wantErr: `missing column "date"`,
		},
		{
			name:    "empty file",
			input:   "",
			wantErr: "empty file",
		},
		{
			name:    "bad amount",
			input:   "customer_email,amount,status,date\na@b.com,free,pending,2024-01-01",
			wantErr: `row 2: invalid amount "free"`,
		},
		{
			name:    "zero amount",
			input:   "customer_email,amount,status,date\na@b.com,0,pending,2024-01-01",
			wantErr: `row 2: invalid amount "0"`,
		},
		{
			name:    "bad status",
			input:   "customer_email,amount,status,date\na@b.com,10,shipped,2024-01-01",
			wantErr: `row 2: invalid status "shipped"`,
		},
		{
			name:    "bad date",
			input:   "customer_email,amount,status,date\na@b.com,10,paid,05/01/2024",
			wantErr: `row 2: invalid date "05/01/2024"`,
		},
		{
			name:    "missing email",
			input:   "customer_email,amount,status,date\n,10,paid,2024-01-01",
			wantErr: "row 2: missing customer email",
		},
		{
			name:    "error names the offending row",
			input:   "customer_email,amount,status,date\na@b.com,10,paid,2024-01-01\nb@c.com,10,overdue,2024-01-02",
			wantErr: `row 3: invalid status "overdue"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := importer.NewService()

			_, err := svc.Import(importer.FormatCSV, strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestImport_UnknownFormat(t *testing.T) {
	svc := importer.NewService()

	_, err := svc.Import(importer.Format("xml"), strings.NewReader("<invoices/>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown import format")
}
