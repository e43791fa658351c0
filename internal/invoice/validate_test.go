package invoice_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwaldron/ledgerdesk/internal/invoice"
)

func TestParseAmount(t *testing.T) {
	type testCase struct {
		name      string
		input     string
		wantCents int64
		wantOK    bool
	}

	tests := []testCase{
		{name: "WholeDollars", input: "50", wantCents: 5000, wantOK: true},
		{name: "TwoDecimals", input: "19.99", wantCents: 1999, wantOK: true},
		{name: "OneDecimal", input: "12.5", wantCents: 1250, wantOK: true},
		{name: "ExactCent", input: "0.01", wantCents: 1, wantOK: true},
		{name: "LargeAmount", input: "1234567.89", wantCents: 123456789, wantOK: true},
		{name: "Zero", input: "0", wantOK: false},
		{name: "Negative", input: "-5", wantOK: false},
		{name: "SubCent", input: "0.005", wantOK: false},
		{name: "ThreeDecimals", input: "10.123", wantOK: false},
		{name: "NotANumber", input: "abc", wantOK: false},
		{name: "Empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cents, ok := invoice.ParseAmount(tt.input)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantCents, cents)
			}
		})
	}
}

func TestValidateForm(t *testing.T) {
	customerID := uuid.New()

	valid := invoice.FormInput{
		CustomerID: customerID.String(),
		Amount:     "50",
		Status:     "pending",
	}

	t.Run("Valid", func(t *testing.T) {
		data, errs := invoice.ValidateForm(valid)
		require.Nil(t, errs)

		assert.Equal(t, customerID, data.CustomerID)
		assert.Equal(t, int64(5000), data.AmountCents)
		assert.Equal(t, invoice.StatusPending, data.Status)
	})

	t.Run("MissingCustomer", func(t *testing.T) {
		in := valid
		in.CustomerID = ""

		_, errs := invoice.ValidateForm(in)
		require.NotNil(t, errs)
		assert.Equal(t, []string{invoice.MsgSelectCustomer}, errs["customer_id"])
		assert.NotContains(t, errs, "amount")
		assert.NotContains(t, errs, "status")
	})

	t.Run("MalformedCustomer", func(t *testing.T) {
		in := valid
		in.CustomerID = "not-a-uuid"

		_, errs := invoice.ValidateForm(in)
		require.NotNil(t, errs)
		assert.Equal(t, []string{invoice.MsgSelectCustomer}, errs["customer_id"])
	})

	t.Run("ZeroAmount", func(t *testing.T) {
		in := valid
		in.Amount = "0"

		_, errs := invoice.ValidateForm(in)
		require.NotNil(t, errs)
		assert.Equal(t, []string{invoice.MsgAmountTooSmall}, errs["amount"])
	})

	t.Run("NegativeAmount", func(t *testing.T) {
		in := valid
		in.Amount = "-12.50"

		_, errs := invoice.ValidateForm(in)
		require.NotNil(t, errs)
		assert.Equal(t, []string{invoice.MsgAmountTooSmall}, errs["amount"])
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		in := valid
		in.Status = "overdue"

		_, errs := invoice.ValidateForm(in)
		require.NotNil(t, errs)
		assert.Equal(t, []string{invoice.MsgSelectStatus}, errs["status"])
	})

	t.Run("EverythingWrong", func(t *testing.T) {
		_, errs := invoice.ValidateForm(invoice.FormInput{})
		require.NotNil(t, errs)
		assert.Len(t, errs, 3)
	})
}
