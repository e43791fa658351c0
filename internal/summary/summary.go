package summary

import (
	"context"

	"github.com/mwaldron/ledgerdesk/internal/invoice"
)

// CardData feeds the four cards at the top of the dashboard.
// Totals are in cents.
type CardData struct {
	InvoiceCount  int
	CustomerCount int
	TotalPaid     int64
	TotalPending  int64
}

// MonthRevenue is one bar of the revenue chart.
type MonthRevenue struct {
	Month   string // "Jan" .. "Dec"
	Revenue int64  // cents
}

//go:generate mockgen -source=summary.go -destination=repository_mock.go -package=summary
type Repository interface {
	FetchCardData(ctx context.Context) (*CardData, error)
	FetchRevenue(ctx context.Context) ([]MonthRevenue, error)
	FetchLatestInvoices(ctx context.Context, limit int) ([]*invoice.Invoice, error)
}

// latestCount is how many recent invoices the overview shows.
const latestCount = 5

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CardData(ctx context.Context) (*CardData, error) {
	return s.repo.FetchCardData(ctx)
}

func (s *Service) Revenue(ctx context.Context) ([]MonthRevenue, error) {
	return s.repo.FetchRevenue(ctx)
}

func (s *Service) LatestInvoices(ctx context.Context) ([]*invoice.Invoice, error) {
	return s.repo.FetchLatestInvoices(ctx, latestCount)
}
