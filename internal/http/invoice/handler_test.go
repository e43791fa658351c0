package invoice_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mwaldron/ledgerdesk/internal/invoice"
	"github.com/mwaldron/ledgerdesk/internal/viewcache"

	invoicehttp "github.com/mwaldron/ledgerdesk/internal/http/invoice"
)

var errDown = assert.AnError

func newServer(t *testing.T) (*invoice.MockRepository, *viewcache.Cache, *chi.Mux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := invoice.NewMockRepository(ctrl)
	views := viewcache.New()

	router := chi.NewRouter()
	router.Route("/dashboard/invoices", invoicehttp.NewHandler(invoice.NewService(repo), views).Routes)

	return repo, views, router
}

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func validForm() url.Values {
	return url.Values{
		"customer_id": {uuid.NewString()},
		"amount":      {"19.99"},
		"status":      {"pending"},
	}
}

func TestHandler_Create_Success(t *testing.T) {
	repo, views, router := newServer(t)

	views.Set(invoicehttp.ListingView, []byte("stale"))
	repo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil)

	rec := postForm(router, "/dashboard/invoices", validForm())

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, invoicehttp.ListingView, rec.Header().Get("Location"))

	_, ok := views.Get(invoicehttp.ListingView)
	assert.False(t, ok, "listing should be invalidated after a create")
}

func TestHandler_Create_ValidationFailure(t *testing.T) {
	// No expectations on the repo: an invalid form must never reach it.
	_, views, router := newServer(t)

	views.Set(invoicehttp.ListingView, []byte("cached"))

	rec := postForm(router, "/dashboard/invoices", url.Values{
		"customer_id": {""},
		"amount":      {"0"},
		"status":      {"shipped"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, invoice.MsgSelectCustomer)
	assert.Contains(t, body, invoice.MsgAmountTooSmall)
	assert.Contains(t, body, invoice.MsgSelectStatus)

	_, ok := views.Get(invoicehttp.ListingView)
	assert.True(t, ok, "a rejected form must not touch the cache")
}

func TestHandler_Create_PersistenceFailure(t *testing.T) {
	repo, views, router := newServer(t)

	views.Set(invoicehttp.ListingView, []byte("cached"))
	repo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(errDown)

	rec := postForm(router, "/dashboard/invoices", validForm())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Database Error: Failed to create invoice.")
	assert.NotContains(t, rec.Body.String(), errDown.Error())

	_, ok := views.Get(invoicehttp.ListingView)
	assert.True(t, ok, "a failed create must leave the cache intact")
}

func TestHandler_Update_Success(t *testing.T) {
	repo, views, router := newServer(t)
	id := uuid.New()

	views.Set(invoicehttp.ListingView, []byte("stale"))
	repo.EXPECT().UpdateInvoice(gomock.Any(), id, gomock.Any()).Return(nil)

	rec := postForm(router, "/dashboard/invoices/"+id.String(), validForm())

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, invoicehttp.ListingView, rec.Header().Get("Location"))

	_, ok := views.Get(invoicehttp.ListingView)
	assert.False(t, ok)
}

func TestHandler_Update_PersistenceFailure(t *testing.T) {
	repo, views, router := newServer(t)
	id := uuid.New()

	views.Set(invoicehttp.ListingView, []byte("cached"))
	repo.EXPECT().UpdateInvoice(gomock.Any(), id, gomock.Any()).Return(errDown)

	rec := postForm(router, "/dashboard/invoices/"+id.String(), validForm())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Database Error: Failed to update invoice.")

	_, ok := views.Get(invoicehttp.ListingView)
	assert.True(t, ok)
}

func TestHandler_Update_BadID(t *testing.T) {
	_, _, router := newServer(t)

	rec := postForm(router, "/dashboard/invoices/not-a-uuid", validForm())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Delete(t *testing.T) {
	tests := []struct {
		name       string
		repoErr    error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			wantStatus: http.StatusOK,
			wantBody:   "Invoice deleted successfully.",
		},
		{
			name:       "persistence failure",
			repoErr:    errDown,
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Database Error: Failed to delete invoice.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, views, router := newServer(t)
			id := uuid.New()

			views.Set(invoicehttp.ListingView, []byte("cached"))
			repo.EXPECT().DeleteInvoice(gomock.Any(), id).Return(tt.repoErr)

			req := httptest.NewRequest(http.MethodDelete, "/dashboard/invoices/"+id.String(), nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)

			_, ok := views.Get(invoicehttp.ListingView)
			assert.Equal(t, tt.repoErr != nil, ok)
		})
	}
}

func TestHandler_List_CachesDefaultView(t *testing.T) {
	repo, _, router := newServer(t)

	repo.EXPECT().ListInvoices(gomock.Any(), invoice.ListFilter{Limit: invoice.PageSize}).
		Return([]*invoice.Invoice{}, nil).
		Times(1)
	repo.EXPECT().CountInvoices(gomock.Any(), "").Return(0, nil).Times(1)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"invoices":[],"total_pages":0}`, rec.Body.String())
	}
}

func TestHandler_List_SearchSkipsCache(t *testing.T) {
	repo, views, router := newServer(t)

	views.Set(invoicehttp.ListingView, []byte(`{"invoices":null,"total_pages":9}`))

	repo.EXPECT().ListInvoices(gomock.Any(), invoice.ListFilter{Query: "acme", Limit: invoice.PageSize}).
		Return([]*invoice.Invoice{}, nil)
	repo.EXPECT().CountInvoices(gomock.Any(), "acme").Return(0, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices?query=acme", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"invoices":[],"total_pages":0}`, rec.Body.String())
}

func TestHandler_List_DeepPageSkipsCache(t *testing.T) {
	repo, views, router := newServer(t)

	views.Set(invoicehttp.ListingView, []byte("cached"))

	repo.EXPECT().ListInvoices(gomock.Any(), invoice.ListFilter{Limit: invoice.PageSize, Offset: invoice.PageSize}).
		Return([]*invoice.Invoice{}, nil)
	repo.EXPECT().CountInvoices(gomock.Any(), "").Return(0, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices?page=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// Deep pages are served fresh but never overwrite the cached default view.
	payload, ok := views.Get(invoicehttp.ListingView)
	require.True(t, ok)
	assert.Equal(t, "cached", string(payload))
}

func TestHandler_Get_NotFound(t *testing.T) {
	repo, _, router := newServer(t)
	id := uuid.New()

	repo.EXPECT().GetInvoice(gomock.Any(), id).Return(nil, invoice.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices/"+id.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
