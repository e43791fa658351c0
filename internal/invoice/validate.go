package invoice

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User-facing validation messages. Field-scoped, always recoverable by
// correcting the submission; never treated as system faults.
const (
	MsgSelectCustomer = "Please select a customer."
	MsgAmountTooSmall = "Please enter an amount greater than $0."
	MsgSelectStatus   = "Please select an invoice status."
)

// FormInput is a raw invoice submission as it arrives from a form.
// Amount is the decimal dollar value as typed, e.g. "12.50".
type FormInput struct {
	CustomerID string
	Amount     string
	Status     string
}

// FieldErrors maps a field name to its messages, in declaration order.
type FieldErrors map[string][]string

func (e FieldErrors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

// FormData is a validated submission ready for persistence.
type FormData struct {
	CustomerID  uuid.UUID
	AmountCents int64
	Status      Status
}

// ValidateForm checks a raw submission and either returns the typed fields
// or the per-field errors. The id and date are deliberately absent: both
// are assigned by the system, not the submitter.
func ValidateForm(in FormInput) (FormData, FieldErrors) {
	errs := FieldErrors{}

	var data FormData

	customerID, err := uuid.Parse(strings.TrimSpace(in.CustomerID))
	if strings.TrimSpace(in.CustomerID) == "" || err != nil {
		errs.add("customer_id", MsgSelectCustomer)
	} else {
		data.CustomerID = customerID
	}

	cents, ok := ParseAmount(in.Amount)
	if !ok {
		errs.add("amount", MsgAmountTooSmall)
	} else {
		data.AmountCents = cents
	}

	status := Status(strings.TrimSpace(in.Status))
	if !status.Valid() {
		errs.add("status", MsgSelectStatus)
	} else {
		data.Status = status
	}

	if len(errs) > 0 {
		return FormData{}, errs
	}

	return data, nil
}

// ParseAmount converts a decimal dollar string into cents. It rejects
// non-positive values and anything finer than a cent, so "19.99" is exactly
// 1999 and "0.005" is not silently rounded up into existence.
func ParseAmount(s string) (int64, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}

	if !d.IsPositive() {
		return 0, false
	}

	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, false
	}

	return cents.IntPart(), true
}
