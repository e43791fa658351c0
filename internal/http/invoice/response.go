package invoice

import (
	"time"

	"github.com/google/uuid"

	"github.com/mwaldron/ledgerdesk/internal/invoice"
)

type invoiceResponse struct {
	ID            uuid.UUID      `json:"id"`
	CustomerID    uuid.UUID      `json:"customer_id"`
	CustomerName  string         `json:"customer_name,omitempty"`
	CustomerEmail string         `json:"customer_email,omitempty"`
	Amount        int64          `json:"amount"`
	Status        invoice.Status `json:"status"`
	Date          string         `json:"date"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     *time.Time     `json:"updated_at,omitempty"`
}

type listResponse struct {
	Invoices   []invoiceResponse `json:"invoices"`
	TotalPages int               `json:"total_pages"`
}

type errorsResponse struct {
	Errors invoice.FieldErrors `json:"errors"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	return invoiceResponse{
		ID:            inv.ID,
		CustomerID:    inv.CustomerID,
		CustomerName:  inv.CustomerName,
		CustomerEmail: inv.CustomerEmail,
		Amount:        inv.Amount,
		Status:        inv.Status,
		Date:          inv.Date.Format(time.DateOnly),
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

func toResponseList(invs []*invoice.Invoice) []invoiceResponse {
	resp := make([]invoiceResponse, len(invs))
	for i, inv := range invs {
		resp[i] = toResponse(inv)
	}

	return resp
}
