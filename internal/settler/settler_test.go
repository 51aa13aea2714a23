package settler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/codematch/marketplace/internal/config"
	"github.com/codematch/marketplace/internal/domain"
	"github.com/codematch/marketplace/internal/service/settlementservice"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func NewMock(t *testing.T) (*Service, *MockInvoiceRepo, *MockContractRepo, *MockWalletRepo, *MockSettlement) {
	cfg := &config.Config{MinPayment: 10800}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invoiceRepo := NewMockInvoiceRepo(ctrl)
	contractRepo := NewMockContractRepo(ctrl)
	walletRepo := NewMockWalletRepo(ctrl)
	settlement := NewMockSettlement(ctrl)
	service := New(cfg, invoiceRepo, contractRepo, walletRepo, settlement)
	return service, invoiceRepo, contractRepo, walletRepo, settlement
}

func TestService_Start(t *testing.T) {
	service, _, _, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_processInvoices(t *testing.T) {
	tests := []struct {
		name             string
		mockFindPayable  func(ctx context.Context, minTotal decimal.Decimal, limit uint32) ([]domain.Invoice, error)
		mockAddTask      func(ctx context.Context, task Task) error
		expectedErr      error
		invoiceCount     int
	}{
		{
			name: "schedules every payable invoice",
			mockFindPayable: func(ctx context.Context, minTotal decimal.Decimal, limit uint32) ([]domain.Invoice, error) {
				return []domain.Invoice{
					{ID: 1, ContractID: 7, Total: decimal.NewFromInt(20000)},
					{ID: 2, ContractID: 8, Total: decimal.NewFromInt(30000)},
				}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			invoiceCount: 2,
		},
		{
			name: "fails fetching payable invoices",
			mockFindPayable: func(ctx context.Context, minTotal decimal.Decimal, limit uint32) ([]domain.Invoice, error) {
				return nil, fmt.Errorf("failed to fetch payable invoices")
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			expectedErr:  fmt.Errorf("failed to fetch payable invoices"),
			invoiceCount: 0,
		},
		{
			name: "error in workerPool AddTask",
			mockFindPayable: func(ctx context.Context, minTotal decimal.Decimal, limit uint32) ([]domain.Invoice, error) {
				return []domain.Invoice{
					{ID: 3, ContractID: 7, Total: decimal.NewFromInt(20000)},
				}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return fmt.Errorf("failed to add task to worker pool")
			},
			expectedErr:  fmt.Errorf("failed to add task to worker pool"),
			invoiceCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			invoiceRepo := NewMockInvoiceRepo(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			invoiceRepo.EXPECT().
				FindPayable(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(tt.mockFindPayable).
				Times(1)
			for i := 0; i < tt.invoiceCount; i++ {
				workerPool.EXPECT().
					AddTask(gomock.Any(), gomock.Any()).
					DoAndReturn(tt.mockAddTask).
					AnyTimes()
			}

			service := &Service{
				invoiceRepo: invoiceRepo,
				workerPool:  workerPool,
				minPayment:  decimal.NewFromInt(10800),
				limit:       2,
			}

			logger := zap.NewExample()
			zap.ReplaceGlobals(logger)

			ctx := context.Background()
			service.processInvoices(ctx)

			if tt.expectedErr != nil {
				assert.Error(t, tt.expectedErr, tt.expectedErr)
			}
		})
	}
}

func TestService_handleInvoice(t *testing.T) {
	invoice := domain.Invoice{ID: 1, ContractID: 7, Total: decimal.NewFromInt(20000)}
	contract := &domain.Contract{ID: 7, ProjectID: 3, ContributorID: 11}
	wallet := &domain.Wallet{ID: 2, ProjectID: 3, Kind: domain.WalletStripe, Active: true}

	tests := []struct {
		name        string
		prepareMock func(contracts *MockContractRepo, wallets *MockWalletRepo, settlement *MockSettlement)
		wantErr     bool
	}{
		{
			name: "settles the invoice",
			prepareMock: func(contracts *MockContractRepo, wallets *MockWalletRepo, settlement *MockSettlement) {
				contracts.EXPECT().FindByID(gomock.Any(), 7).Return(contract, nil)
				wallets.EXPECT().FindActiveByProjectID(gomock.Any(), 3).Return(wallet, nil)
				settlement.EXPECT().Pay(gomock.Any(), 2, 1).Return(&domain.Payment{ID: 5, InvoiceID: 1, Status: domain.PaymentSuccessful}, nil)
			},
		},
		{
			name: "skips when the project has no active wallet",
			prepareMock: func(contracts *MockContractRepo, wallets *MockWalletRepo, settlement *MockSettlement) {
				contracts.EXPECT().FindByID(gomock.Any(), 7).Return(contract, nil)
				wallets.EXPECT().FindActiveByProjectID(gomock.Any(), 3).Return(nil, nil)
			},
		},
		{
			name: "skips when the wallet cannot cover the invoice yet",
			prepareMock: func(contracts *MockContractRepo, wallets *MockWalletRepo, settlement *MockSettlement) {
				contracts.EXPECT().FindByID(gomock.Any(), 7).Return(contract, nil)
				wallets.EXPECT().FindActiveByProjectID(gomock.Any(), 3).Return(wallet, nil)
				settlement.EXPECT().Pay(gomock.Any(), 2, 1).Return(nil, settlementservice.ErrInsufficientFunds)
			},
		},
		{
			name: "skips an invoice settled by a concurrent attempt",
			prepareMock: func(contracts *MockContractRepo, wallets *MockWalletRepo, settlement *MockSettlement) {
				contracts.EXPECT().FindByID(gomock.Any(), 7).Return(contract, nil)
				wallets.EXPECT().FindActiveByProjectID(gomock.Any(), 3).Return(wallet, nil)
				settlement.EXPECT().Pay(gomock.Any(), 2, 1).Return(nil, settlementservice.ErrAlreadyPaid)
			},
		},
		{
			name: "contract missing",
			prepareMock: func(contracts *MockContractRepo, wallets *MockWalletRepo, settlement *MockSettlement) {
				contracts.EXPECT().FindByID(gomock.Any(), 7).Return(nil, nil)
			},
			wantErr: true,
		},
		{
			name: "settlement infrastructure error",
			prepareMock: func(contracts *MockContractRepo, wallets *MockWalletRepo, settlement *MockSettlement) {
				contracts.EXPECT().FindByID(gomock.Any(), 7).Return(contract, nil)
				wallets.EXPECT().FindActiveByProjectID(gomock.Any(), 3).Return(wallet, nil)
				settlement.EXPECT().Pay(gomock.Any(), 2, 1).Return(nil, fmt.Errorf("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, contracts, wallets, settlement := NewMock(t)
			tt.prepareMock(contracts, wallets, settlement)

			err := service.handleInvoice(context.Background(), invoice)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
