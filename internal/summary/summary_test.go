package summary_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mwaldron/ledgerdesk/internal/invoice"
	"github.com/mwaldron/ledgerdesk/internal/summary"
)

func TestService_CardData(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := summary.NewMockRepository(ctrl)
	svc := summary.NewService(repo)

	want := &summary.CardData{
		InvoiceCount:  13,
		CustomerCount: 6,
		TotalPaid:     11841600,
		TotalPending:  125632,
	}
	repo.EXPECT().FetchCardData(gomock.Any()).Return(want, nil)

	got, err := svc.CardData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_LatestInvoices_Limit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := summary.NewMockRepository(ctrl)
	svc := summary.NewService(repo)

	repo.EXPECT().FetchLatestInvoices(gomock.Any(), 5).Return([]*invoice.Invoice{}, nil)

	got, err := svc.LatestInvoices(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_Revenue_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := summary.NewMockRepository(ctrl)
	svc := summary.NewService(repo)

	repo.EXPECT().FetchRevenue(gomock.Any()).Return(nil, assert.AnError)

	_, err := svc.Revenue(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
