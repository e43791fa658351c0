package importcsv

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mwaldron/ledgerdesk/internal/customer"
	invoiceHTTP "github.com/mwaldron/ledgerdesk/internal/http/invoice"
	"github.com/mwaldron/ledgerdesk/internal/importer"
	"github.com/mwaldron/ledgerdesk/internal/invoice"
	"github.com/mwaldron/ledgerdesk/internal/viewcache"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	importSvc   *importer.Service
	invoiceSvc  *invoice.Service
	customerSvc *customer.Service
	views       viewcache.Invalidator
}

func NewHandler(
	importSvc *importer.Service,
	invoiceSvc *invoice.Service,
	customerSvc *customer.Service,
	views viewcache.Invalidator,
) *Handler {
	return &Handler{
		importSvc:   importSvc,
		invoiceSvc:  invoiceSvc,
		customerSvc: customerSvc,
		views:       views,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/invoices", h.importInvoices)
}

type importResponse struct {
	Imported int      `json:"imported"`
	Skipped  []string `json:"skipped,omitempty"`
}

// importInvoices ingests a CSV of invoices. Rows whose customer email does
// not resolve are reported back and skipped; parse errors reject the whole
// file.
func (h *Handler) importInvoices(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := h.importSvc.Import(importer.FormatCSV, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var params []invoice.ImportParams

	var skipped []string

	for i, row := range rows {
		c, err := h.customerSvc.GetByEmail(r.Context(), row.CustomerEmail)
		if err != nil {
			if errors.Is(err, customer.ErrNotFound) {
				skipped = append(skipped, fmt.Sprintf("row %d: unknown customer %s", i+2, row.CustomerEmail))
				continue
			}

			slog.Error("failed to resolve customer", "error", err, "email", row.CustomerEmail)
			http.Error(w, "internal error", http.StatusInternalServerError)

			return
		}

		params = append(params, invoice.ImportParams{
			CustomerID:  c.ID,
			AmountCents: row.AmountCents,
			Status:      row.Status,
			Date:        row.Date,
		})
	}

	created, err := h.invoiceSvc.Import(r.Context(), params)
	if err != nil {
		slog.Error("failed to import invoices", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if len(created) > 0 {
		h.views.Invalidate(invoiceHTTP.ListingView)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importResponse{
		Imported: len(created),
		Skipped:  skipped,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
