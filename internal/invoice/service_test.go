package invoice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mwaldron/ledgerdesk/internal/invoice"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *invoice.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					CreateInvoice(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
						inv.ID = uuid.New()
						inv.CreatedAt = time.Now()
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "RepoError",
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					CreateInvoice(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := invoice.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := invoice.NewService(repo)
			got, err := svc.Create(context.Background(), invoice.FormData{
				CustomerID:  uuid.New(),
				AmountCents: 5000,
				Status:      invoice.StatusPending,
			})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_Create_DateIsToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := invoice.NewMockRepository(ctrl)

	var captured *invoice.Invoice

	repo.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
			captured = inv
			return nil
		})

	svc := invoice.NewService(repo)
	_, err := svc.Create(context.Background(), invoice.FormData{
		CustomerID:  uuid.New(),
		AmountCents: 5000,
		Status:      invoice.StatusPending,
	})
	require.NoError(t, err)
	require.NotNil(t, captured)

	assert.Equal(t, time.Now().UTC().Format(time.DateOnly), captured.Date.Format(time.DateOnly))
	assert.True(t, captured.Date.Equal(captured.Date.Truncate(24*time.Hour)))
}

func TestService_Update_MissingRowIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	data := invoice.FormData{
		CustomerID:  uuid.New(),
		AmountCents: 1999,
		Status:      invoice.StatusPaid,
	}

	repo := invoice.NewMockRepository(ctrl)
	// The store reports no error for zero matched rows.
	repo.EXPECT().UpdateInvoice(gomock.Any(), id, data).Return(nil)

	svc := invoice.NewService(repo)
	assert.NoError(t, svc.Update(context.Background(), id, data))
}

func TestService_List_Pagination(t *testing.T) {
	type testCase struct {
		name       string
		page       int
		wantOffset int
	}

	tests := []testCase{
		{name: "FirstPage", page: 1, wantOffset: 0},
		{name: "ThirdPage", page: 3, wantOffset: 2 * invoice.PageSize},
		{name: "ZeroClampsToFirst", page: 0, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := invoice.NewMockRepository(ctrl)
			repo.EXPECT().
				ListInvoices(gomock.Any(), invoice.ListFilter{
					Query:  "acme",
					Limit:  invoice.PageSize,
					Offset: tt.wantOffset,
				}).
				Return([]*invoice.Invoice{{ID: uuid.New()}}, nil)

			svc := invoice.NewService(repo)
			got, err := svc.List(context.Background(), "acme", tt.page)
			require.NoError(t, err)
			assert.Len(t, got, 1)
		})
	}
}

func TestService_TotalPages(t *testing.T) {
	type testCase struct {
		name  string
		count int
		want  int
	}

	tests := []testCase{
		{name: "Empty", count: 0, want: 0},
		{name: "PartialPage", count: 5, want: 1},
		{name: "ExactPage", count: invoice.PageSize, want: 1},
		{name: "PageAndOne", count: invoice.PageSize + 1, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := invoice.NewMockRepository(ctrl)
			repo.EXPECT().CountInvoices(gomock.Any(), "").Return(tt.count, nil)

			svc := invoice.NewService(repo)
			got, err := svc.TotalPages(context.Background(), "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	params := []invoice.ImportParams{
		{CustomerID: uuid.New(), AmountCents: 1000, Status: invoice.StatusPending, Date: date},
		{CustomerID: uuid.New(), AmountCents: 2500, Status: invoice.StatusPaid, Date: date},
	}

	repo := invoice.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
			inv.ID = uuid.New()
			return nil
		}).
		Times(2)

	svc := invoice.NewService(repo)
	created, err := svc.Import(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, created, 2)

	assert.Equal(t, int64(1000), created[0].Amount)
	assert.Equal(t, date, created[0].Date)
	assert.Equal(t, invoice.StatusPaid, created[1].Status)
}

func TestService_Import_StopsAtFirstFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	params := []invoice.ImportParams{
		{CustomerID: uuid.New(), AmountCents: 1000, Status: invoice.StatusPending},
		{CustomerID: uuid.New(), AmountCents: 2000, Status: invoice.StatusPending},
	}

	repo := invoice.NewMockRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(errors.New("constraint violation")),
	)

	svc := invoice.NewService(repo)
	created, err := svc.Import(context.Background(), params)
	assert.Error(t, err)
	assert.Len(t, created, 1)
}
