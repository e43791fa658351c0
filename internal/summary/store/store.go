package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mwaldron/ledgerdesk/internal/invoice"
	"github.com/mwaldron/ledgerdesk/internal/summary"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// FetchCardData gathers the dashboard card numbers in one round trip.
func (s *Store) FetchCardData(ctx context.Context) (*summary.CardData, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM invoices),
			(SELECT COUNT(*) FROM customers),
			(SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = 'paid'),
			(SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = 'pending')
	`

	var data summary.CardData

	err := s.db.QueryRowContext(ctx, query).Scan(
		&data.InvoiceCount,
		&data.CustomerCount,
		&data.TotalPaid,
		&data.TotalPending,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching card data: %w", err)
	}

	return &data, nil
}

func (s *Store) FetchRevenue(ctx context.Context) ([]summary.MonthRevenue, error) {
	query := `
		SELECT month, revenue
		FROM revenue
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetching revenue: %w", err)
	}
	defer rows.Close()

	var months []summary.MonthRevenue

	for rows.Next() {
		var m summary.MonthRevenue
		if err := rows.Scan(&m.Month, &m.Revenue); err != nil {
			return nil, fmt.Errorf("scanning revenue: %w", err)
		}

		months = append(months, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating revenue rows: %w", err)
	}

	return months, nil
}

func (s *Store) FetchLatestInvoices(ctx context.Context, limit int) ([]*invoice.Invoice, error) {
	query := `
		SELECT i.id, i.customer_id, c.name, c.email, i.amount, i.status, i.date,
			i.created_at, i.updated_at
		FROM invoices i
		JOIN customers c ON i.customer_id = c.id
		ORDER BY i.date DESC, i.created_at DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching latest invoices: %w", err)
	}
	defer rows.Close()

	var invs []*invoice.Invoice

	for rows.Next() {
		var inv invoice.Invoice

		var statusStr string

		if err := rows.Scan(
			&inv.ID, &inv.CustomerID, &inv.CustomerName, &inv.CustomerEmail,
			&inv.Amount, &statusStr, &inv.Date,
			&inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		inv.Status = invoice.Status(statusStr)
		invs = append(invs, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	return invs, nil
}
