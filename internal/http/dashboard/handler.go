package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mwaldron/ledgerdesk/internal/summary"
)

type Handler struct {
	svc *summary.Service
}

func NewHandler(svc *summary.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.overview)
}

type cardsResponse struct {
	InvoiceCount  int   `json:"invoice_count"`
	CustomerCount int   `json:"customer_count"`
	TotalPaid     int64 `json:"total_paid"`
	TotalPending  int64 `json:"total_pending"`
}

type revenueResponse struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

type latestInvoiceResponse struct {
	ID            uuid.UUID `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	Date          string    `json:"date"`
}

type overviewResponse struct {
	Cards          cardsResponse           `json:"cards"`
	Revenue        []revenueResponse       `json:"revenue"`
	LatestInvoices []latestInvoiceResponse `json:"latest_invoices"`
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.CardData(r.Context())
	if err != nil {
		slog.Error("failed to fetch card data", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	revenue, err := h.svc.Revenue(r.Context())
	if err != nil {
		slog.Error("failed to fetch revenue", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	latest, err := h.svc.LatestInvoices(r.Context())
	if err != nil {
		slog.Error("failed to fetch latest invoices", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := overviewResponse{
		Cards: cardsResponse{
			InvoiceCount:  cards.InvoiceCount,
			CustomerCount: cards.CustomerCount,
			TotalPaid:     cards.TotalPaid,
			TotalPending:  cards.TotalPending,
		},
		Revenue:        make([]revenueResponse, 0, len(revenue)),
		LatestInvoices: make([]latestInvoiceResponse, 0, len(latest)),
	}

	for _, m := range revenue {
		resp.Revenue = append(resp.Revenue, revenueResponse{Month: m.Month, Revenue: m.Revenue})
	}

	for _, inv := range latest {
		resp.LatestInvoices = append(resp.LatestInvoices, latestInvoiceResponse{
			ID:            inv.ID,
			CustomerName:  inv.CustomerName,
			CustomerEmail: inv.CustomerEmail,
			Amount:        inv.Amount,
			Status:        string(inv.Status),
			Date:          inv.Date.Format(time.DateOnly),
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
