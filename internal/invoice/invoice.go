package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status represents the payment state of an invoice.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Statuses lists the accepted values in declaration order.
var Statuses = []Status{StatusPending, StatusPaid}

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

var ErrNotFound = errors.New("invoice not found")

// Invoice is a billing record owned by a customer. Amount is stored in
// cents. Date is assigned at creation and never changed afterwards.
type Invoice struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	CustomerName  string // loaded via JOIN on listings
	CustomerEmail string // loaded via JOIN on listings
	Amount        int64
	Status        Status
	Date          time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
