package invoice

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mwaldron/ledgerdesk/internal/invoice"
	"github.com/mwaldron/ledgerdesk/internal/viewcache"
)

// ListingView is the cache key for the invoice listing. Every successful
// mutation marks it stale.
const ListingView = "/dashboard/invoices"

// Fixed persistence failure messages. The underlying cause is logged, never
// sent to the client.
const (
	msgCreateFailed = "Database Error: Failed to create invoice."
	msgUpdateFailed = "Database Error: Failed to update invoice."
	msgDeleteFailed = "Database Error: Failed to delete invoice."
	msgDeleted      = "Invoice deleted successfully."
)

// ViewCache is the slice of the view cache the listing handler needs.
type ViewCache interface {
	viewcache.Invalidator
	Get(view string) ([]byte, bool)
	Set(view string, payload []byte)
}

type Handler struct {
	svc   *invoice.Service
	views ViewCache
}

func NewHandler(svc *invoice.Service, views ViewCache) *Handler {
	return &Handler{svc: svc, views: views}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Post("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

// create runs the full mutation chain: validate, persist, invalidate,
// redirect. Each failure stops the chain before the next side effect.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	input, ok := parseForm(w, r)
	if !ok {
		return
	}

	data, fieldErrs := invoice.ValidateForm(input)
	if fieldErrs != nil {
		writeFieldErrors(w, fieldErrs)
		return
	}

	if _, err := h.svc.Create(r.Context(), data); err != nil {
		slog.Error("failed to create invoice", "error", err)
		writeMessage(w, http.StatusInternalServerError, msgCreateFailed)

		return
	}

	h.views.Invalidate(ListingView)
	http.Redirect(w, r, ListingView, http.StatusSeeOther)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	input, ok := parseForm(w, r)
	if !ok {
		return
	}

	data, fieldErrs := invoice.ValidateForm(input)
	if fieldErrs != nil {
		writeFieldErrors(w, fieldErrs)
		return
	}

	// A missing id matches no rows and is treated as success.
	if err := h.svc.Update(r.Context(), id, data); err != nil {
		slog.Error("failed to update invoice", "error", err, "id", id)
		writeMessage(w, http.StatusInternalServerError, msgUpdateFailed)

		return
	}

	h.views.Invalidate(ListingView)
	http.Redirect(w, r, ListingView, http.StatusSeeOther)
}

// delete always answers with a message and never redirects: it is invoked
// from inside the listing view.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		slog.Error("failed to delete invoice", "error", err, "id", id)
		writeMessage(w, http.StatusInternalServerError, msgDeleteFailed)

		return
	}

	h.views.Invalidate(ListingView)
	writeMessage(w, http.StatusOK, msgDeleted)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			http.Error(w, "invoice not found", http.StatusNotFound)
			return
		}

		slog.Error("failed to get invoice", "error", err, "id", id)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	page := 1
	if s := r.URL.Query().Get("page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			page = n
		}
	}

	// Only the default view is cached; searches and deep pages go straight
	// to the store.
	cacheable := query == "" && page == 1

	if cacheable {
		if payload, ok := h.views.Get(ListingView); ok {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(payload)

			return
		}
	}

	invs, err := h.svc.List(r.Context(), query, page)
	if err != nil {
		slog.Error("failed to list invoices", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	totalPages, err := h.svc.TotalPages(r.Context(), query)
	if err != nil {
		slog.Error("failed to count invoices", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	payload, err := json.Marshal(listResponse{
		Invoices:   toResponseList(invs),
		TotalPages: totalPages,
	})
	if err != nil {
		slog.Error("failed to encode response", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if cacheable {
		h.views.Set(ListingView, payload)
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(payload)
}

func parseForm(w http.ResponseWriter, r *http.Request) (invoice.FormInput, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return invoice.FormInput{}, false
	}

	return invoice.FormInput{
		CustomerID: r.PostFormValue("customer_id"),
		Amount:     r.PostFormValue("amount"),
		Status:     r.PostFormValue("status"),
	}, true
}

func writeFieldErrors(w http.ResponseWriter, errs invoice.FieldErrors) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)

	if err := json.NewEncoder(w).Encode(errorsResponse{Errors: errs}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(messageResponse{Message: msg}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
