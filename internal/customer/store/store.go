package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mwaldron/ledgerdesk/internal/customer"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ListCustomers returns customers matching query by name or email, each
// with their invoice count and pending/paid totals in cents.
func (s *Store) ListCustomers(ctx context.Context, query string) ([]*customer.Customer, error) {
	listQuery := `
		SELECT
			c.id, c.name, c.email, c.image_url,
			COUNT(i.id) AS total_invoices,
			COALESCE(SUM(i.amount) FILTER (WHERE i.status = 'pending'), 0) AS total_pending,
			COALESCE(SUM(i.amount) FILTER (WHERE i.status = 'paid'), 0) AS total_paid
		FROM customers c
		LEFT JOIN invoices i ON c.id = i.customer_id
		WHERE c.name ILIKE $1 OR c.email ILIKE $1
		GROUP BY c.id, c.name, c.email, c.image_url
		ORDER BY c.name ASC
	`

	rows, err := s.db.QueryContext(ctx, listQuery, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	var customers []*customer.Customer

	for rows.Next() {
		var c customer.Customer
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.ImageURL,
			&c.TotalInvoices, &c.TotalPending, &c.TotalPaid,
		); err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}

		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customer rows: %w", err)
	}

	return customers, nil
}

func (s *Store) GetCustomerByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	query := `
		SELECT id, name, email, image_url
		FROM customers
		WHERE email = $1
	`

	var c customer.Customer

	err := s.db.QueryRowContext(ctx, query, email).Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, customer.ErrNotFound
		}

		return nil, fmt.Errorf("getting customer by email: %w", err)
	}

	return &c, nil
}
