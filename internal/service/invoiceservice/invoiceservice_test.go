package invoiceservice

import (
	"context"
	"errors"
	"testing"

	"github.com/codematch/marketplace/internal/domain"
	invoicerepo "github.com/codematch/marketplace/internal/repo/invoice-repo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	invoices     *MockInvoiceRepo
	contracts    *MockContractRepo
	contributors *MockContributorRepo
	tasks        *MockTaskRepo
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := &mocks{
		invoices:     NewMockInvoiceRepo(ctrl),
		contracts:    NewMockContractRepo(ctrl),
		contributors: NewMockContributorRepo(ctrl),
		tasks:        NewMockTaskRepo(ctrl),
	}
	service := New(m.invoices, m.contracts, m.contributors, m.tasks, 10)
	return service, m
}

func testContract() *domain.Contract {
	return &domain.Contract{
		ID:            7,
		ProjectID:     3,
		ContributorID: 11,
		Role:          domain.Role("BACKEND"),
		HourlyRate:    decimal.NewFromInt(3000),
	}
}

func assignedTask() *domain.Task {
	return &domain.Task{
		ID:               42,
		ProjectID:        3,
		IssueNumber:      108,
		Role:             domain.Role("BACKEND"),
		AssigneeUsername: "octocat",
	}
}

func TestActive(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		prepareMock func()
		expectedID  int
		wantErr     bool
	}{
		{
			name: "returns the open invoice",
			prepareMock: func() {
				m.invoices.EXPECT().FindActiveByContractID(ctx, 7).Return(&domain.Invoice{ID: 1, ContractID: 7}, nil)
			},
			expectedID: 1,
		},
		{
			name: "opens a new invoice when all are settled",
			prepareMock: func() {
				m.invoices.EXPECT().FindActiveByContractID(ctx, 7).Return(nil, nil)
				m.invoices.EXPECT().Create(ctx, 7).Return(&domain.Invoice{ID: 2, ContractID: 7}, nil)
			},
			expectedID: 2,
		},
		{
			name: "repository error",
			prepareMock: func() {
				m.invoices.EXPECT().FindActiveByContractID(ctx, 7).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			invoice, err := service.Active(ctx, 7)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedID, invoice.ID)
		})
	}
}

func TestAdd(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		prepareMock func()
		expectedErr error
	}{
		{
			name: "contract not found",
			prepareMock: func() {
				m.contracts.EXPECT().FindByID(ctx, 7).Return(nil, nil)
			},
			expectedErr: ErrContractNotFound,
		},
		{
			name: "task not found",
			prepareMock: func() {
				m.contracts.EXPECT().FindByID(ctx, 7).Return(testContract(), nil)
				m.tasks.EXPECT().FindByID(ctx, 42).Return(nil, nil)
			},
			expectedErr: ErrTaskNotFound,
		},
		{
			name: "task belongs to another project",
			prepareMock: func() {
				task := assignedTask()
				task.ProjectID = 99
				m.contracts.EXPECT().FindByID(ctx, 7).Return(testContract(), nil)
				m.tasks.EXPECT().FindByID(ctx, 42).Return(task, nil)
				m.contributors.EXPECT().FindByID(ctx, 11).Return(&domain.Contributor{ID: 11, Username: "octocat"}, nil)
			},
			expectedErr: ErrNotEligibleTask,
		},
		{
			name: "task assigned to somebody else",
			prepareMock: func() {
				task := assignedTask()
				task.AssigneeUsername = "hubot"
				m.contracts.EXPECT().FindByID(ctx, 7).Return(testContract(), nil)
				m.tasks.EXPECT().FindByID(ctx, 42).Return(task, nil)
				m.contributors.EXPECT().FindByID(ctx, 11).Return(&domain.Contributor{ID: 11, Username: "octocat"}, nil)
			},
			expectedErr: ErrNotEligibleTask,
		},
		{
			name: "task already invoiced under the contract",
			prepareMock: func() {
				m.contracts.EXPECT().FindByID(ctx, 7).Return(testContract(), nil)
				m.tasks.EXPECT().FindByID(ctx, 42).Return(assignedTask(), nil)
				m.contributors.EXPECT().FindByID(ctx, 11).Return(&domain.Contributor{ID: 11, Username: "octocat"}, nil)
				m.invoices.EXPECT().IsTaskInvoiced(ctx, 7, 42).Return(true, nil)
			},
			expectedErr: ErrNotEligibleTask,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			invoicedTask, err := service.Add(ctx, 7, 42, 90)

			assert.Nil(t, invoicedTask)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestAdd_BillsLaborAndCommission(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	m.contracts.EXPECT().FindByID(ctx, 7).Return(testContract(), nil)
	m.tasks.EXPECT().FindByID(ctx, 42).Return(assignedTask(), nil)
	m.contributors.EXPECT().FindByID(ctx, 11).Return(&domain.Contributor{ID: 11, Username: "octocat"}, nil)
	m.invoices.EXPECT().IsTaskInvoiced(ctx, 7, 42).Return(false, nil)
	m.invoices.EXPECT().FindActiveByContractID(ctx, 7).Return(&domain.Invoice{ID: 1, ContractID: 7}, nil)
	m.invoices.EXPECT().AddTask(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, task *domain.InvoicedTask) (*domain.InvoicedTask, error) {
		assert.Equal(t, 1, task.InvoiceID)
		assert.Equal(t, 42, task.TaskID)
		assert.Equal(t, 90, task.TimeSpent)
		// 90 minutes at 3000/h is 4500 labor, 10% commission on top.
		assert.True(t, task.Value.Equal(decimal.NewFromInt(4500)))
		assert.True(t, task.Commission.Equal(decimal.NewFromInt(450)))
		task.ID = 3
		return task, nil
	})

	invoicedTask, err := service.Add(ctx, 7, 42, 90)

	assert.NoError(t, err)
	assert.Equal(t, 3, invoicedTask.ID)
	assert.True(t, invoicedTask.Amount().Equal(decimal.NewFromInt(4950)))
}

func TestGetByID(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		prepareMock func()
		expectedErr error
	}{
		{
			name: "found",
			prepareMock: func() {
				m.invoices.EXPECT().FindByID(ctx, 1).Return(&domain.Invoice{ID: 1, ContractID: 7}, nil)
			},
		},
		{
			name: "not found",
			prepareMock: func() {
				m.invoices.EXPECT().FindByID(ctx, 1).Return(nil, nil)
			},
			expectedErr: ErrInvoiceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			invoice, err := service.GetByID(ctx, 1)

			if tt.expectedErr != nil {
				assert.Nil(t, invoice)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, invoice.ID)
		})
	}
}

func TestRegisterAsPaid(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	vat := decimal.NewFromInt(190)
	rate := decimal.NewFromFloat(4.9750)

	tests := []struct {
		name        string
		invoice     *domain.Invoice
		prepareMock func()
		expectedErr error
	}{
		{
			name:    "marks the invoice paid and books the platform invoice",
			invoice: &domain.Invoice{ID: 1, ContractID: 7, Total: decimal.NewFromInt(20000)},
			prepareMock: func() {
				m.invoices.EXPECT().SumCommission(ctx, 1).Return(decimal.NewFromInt(1000), nil)
				m.invoices.EXPECT().MarkPaidWithPlatformInvoice(ctx, 1, gomock.Any()).DoAndReturn(func(_ context.Context, _ int, platform *domain.PlatformInvoice) error {
					assert.Equal(t, 1, platform.InvoiceID)
					assert.True(t, platform.Commission.Equal(decimal.NewFromInt(1000)))
					assert.True(t, platform.VAT.Equal(vat))
					assert.True(t, platform.ExchangeRate.Equal(rate))
					return nil
				})
			},
		},
		{
			name:        "already paid in memory",
			invoice:     &domain.Invoice{ID: 1, ContractID: 7, Paid: true},
			expectedErr: ErrAlreadyPaid,
		},
		{
			name:    "lost the settlement race",
			invoice: &domain.Invoice{ID: 1, ContractID: 7, Total: decimal.NewFromInt(20000)},
			prepareMock: func() {
				m.invoices.EXPECT().SumCommission(ctx, 1).Return(decimal.NewFromInt(1000), nil)
				m.invoices.EXPECT().MarkPaidWithPlatformInvoice(ctx, 1, gomock.Any()).Return(invoicerepo.ErrAlreadySettled)
			},
			expectedErr: ErrAlreadyPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.RegisterAsPaid(ctx, tt.invoice, vat, rate)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tt.invoice.Paid)
		})
	}
}
