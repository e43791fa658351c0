package customer

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=customer
type Repository interface {
	ListCustomers(ctx context.Context, query string) ([]*Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*Customer, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns customers whose name or email matches query, with their
// invoice totals. An empty query returns everyone.
func (s *Service) List(ctx context.Context, query string) ([]*Customer, error) {
	return s.repo.ListCustomers(ctx, query)
}

// GetByEmail looks a customer up by exact email. Used by the CSV importer
// to resolve rows to customer ids.
func (s *Service) GetByEmail(ctx context.Context, email string) (*Customer, error) {
	return s.repo.GetCustomerByEmail(ctx, email)
}
