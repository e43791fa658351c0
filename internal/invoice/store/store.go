package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mwaldron/ledgerdesk/internal/invoice"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectInvoiceColumns = `
	i.id, i.customer_id, c.name, c.email, i.amount, i.status, i.date,
	i.created_at, i.updated_at
`

// scanInvoice reads an invoice row joined with its customer.
// Expected column order: id, customer_id, name, email, amount, status, date, created_at, updated_at
func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	var statusStr string

	if err := s.Scan(
		&inv.ID, &inv.CustomerID, &inv.CustomerName, &inv.CustomerEmail,
		&inv.Amount, &statusStr, &inv.Date,
		&inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}

	inv.Status = invoice.Status(statusStr)

	return &inv, nil
}

func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (customer_id, amount, status, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		inv.CustomerID,
		inv.Amount,
		inv.Status,
		inv.Date,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	return nil
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices i
		JOIN customers c ON i.customer_id = c.id
		WHERE i.id = $1`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return inv, nil
}

// UpdateInvoice rewrites the mutable columns of the matching row. The date
// column is left untouched; it is fixed at creation. A missing id matches
// zero rows and reports no error.
func (s *Store) UpdateInvoice(ctx context.Context, id uuid.UUID, data invoice.FormData) error {
	query := `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3, updated_at = NOW()
		WHERE id = $4
	`

	_, err := s.db.ExecContext(ctx, query,
		data.CustomerID,
		data.AmountCents,
		data.Status,
		id,
	)
	if err != nil {
		return fmt.Errorf("updating invoice: %w", err)
	}

	return nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM invoices
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	return nil
}

// searchCondition matches the query against the customer columns and the
// textual forms of amount, date and status, mirroring what the dashboard
// search box promises.
const searchCondition = `(
		c.name ILIKE $1 OR
		c.email ILIKE $1 OR
		i.amount::text ILIKE $1 OR
		i.date::text ILIKE $1 OR
		i.status ILIKE $1
	)`

func (s *Store) ListInvoices(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices i
		JOIN customers c ON i.customer_id = c.id
		WHERE ` + searchCondition + `
		ORDER BY i.date DESC, i.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := s.db.QueryContext(ctx, query, like(filter.Query), filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invs []*invoice.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invs = append(invs, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	return invs, nil
}

func (s *Store) CountInvoices(ctx context.Context, query string) (int, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM invoices i
		JOIN customers c ON i.customer_id = c.id
		WHERE ` + searchCondition

	var count int
	if err := s.db.QueryRowContext(ctx, countQuery, like(query)).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting invoices: %w", err)
	}

	return count, nil
}

func like(query string) string {
	return "%" + query + "%"
}
