package invoice

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PageSize is the number of invoices per listing page.
const PageSize = 6

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	CreateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	UpdateInvoice(ctx context.Context, id uuid.UUID, data FormData) error
	DeleteInvoice(ctx context.Context, id uuid.UUID) error

	ListInvoices(ctx context.Context, filter ListFilter) ([]*Invoice, error)
	CountInvoices(ctx context.Context, query string) (int, error)
}

// ListFilter narrows a listing. Query is matched against customer name and
// email plus the textual forms of amount, date and status; the store owns
// the matching semantics.
type ListFilter struct {
	Query  string
	Limit  int
	Offset int
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create inserts a new invoice. The date is fixed to the current calendar
// date at call time; the caller never supplies it.
func (s *Service) Create(ctx context.Context, data FormData) (*Invoice, error) {
	now := s.now().UTC()

	inv := &Invoice{
		CustomerID: data.CustomerID,
		Amount:     data.AmountCents,
		Status:     data.Status,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

// Update rewrites the mutable fields of the invoice matching id. A missing
// row is a silent no-op, not an error.
func (s *Service) Update(ctx context.Context, id uuid.UUID, data FormData) error {
	return s.repo.UpdateInvoice(ctx, id, data)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteInvoice(ctx, id)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

// List returns the requested page of invoices matching query. Pages are
// 1-based; out-of-range pages return an empty slice.
func (s *Service) List(ctx context.Context, query string, page int) ([]*Invoice, error) {
	if page < 1 {
		page = 1
	}

	return s.repo.ListInvoices(ctx, ListFilter{
		Query:  query,
		Limit:  PageSize,
		Offset: (page - 1) * PageSize,
	})
}

// ImportParams is one invoice of a bulk import. Unlike form submissions,
// imported rows carry their own date.
type ImportParams struct {
	CustomerID  uuid.UUID
	AmountCents int64
	Status      Status
	Date        time.Time
}

// Import creates invoices for a batch of already-validated rows. It stops
// at the first failure; rows created before it remain.
func (s *Service) Import(ctx context.Context, params []ImportParams) ([]*Invoice, error) {
	invs := make([]*Invoice, 0, len(params))

	for _, p := range params {
		inv := &Invoice{
			CustomerID: p.CustomerID,
			Amount:     p.AmountCents,
			Status:     p.Status,
			Date:       p.Date,
		}
		if err := s.repo.CreateInvoice(ctx, inv); err != nil {
			return invs, err
		}

		invs = append(invs, inv)
	}

	return invs, nil
}

// TotalPages reports how many listing pages the query spans.
func (s *Service) TotalPages(ctx context.Context, query string) (int, error) {
	count, err := s.repo.CountInvoices(ctx, query)
	if err != nil {
		return 0, err
	}

	return (count + PageSize - 1) / PageSize, nil
}
