package customer

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("customer not found")

// Customer is read-only from this service's perspective: the dashboard
// lists and searches customers but never mutates them.
type Customer struct {
	ID       uuid.UUID
	Name     string
	Email    string
	ImageURL string

	// Invoice aggregates, populated on listings.
	TotalInvoices int
	TotalPending  int64 // cents
	TotalPaid     int64 // cents
}
