package settlementservice

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/codematch/marketplace/internal/domain"
	"github.com/codematch/marketplace/internal/gateway"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	ledger    *MockLedger
	contracts *MockContractRepo
	wallets   *MockWalletRepo
	payments  *MockPaymentRepo
	gw        *MockGateway
	rates     *MockRateSource
	txManager *MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := &mocks{
		ledger:    NewMockLedger(ctrl),
		contracts: NewMockContractRepo(ctrl),
		wallets:   NewMockWalletRepo(ctrl),
		payments:  NewMockPaymentRepo(ctrl),
		gw:        NewMockGateway(ctrl),
		rates:     NewMockRateSource(ctrl),
		txManager: NewMockTXManager(ctrl),
	}
	gateways := map[domain.WalletKind]Gateway{
		domain.WalletStripe: m.gw,
		domain.WalletFake:   m.gw,
	}
	service := New(m.ledger, m.contracts, m.wallets, m.payments, gateways, m.rates, m.txManager, 10800)
	return service, m
}

func stripeWallet(cash int64) *domain.Wallet {
	return &domain.Wallet{
		ID:         2,
		ProjectID:  3,
		Kind:       domain.WalletStripe,
		Identifier: "acct_1abc",
		Cash:       decimal.NewFromInt(cash),
		Active:     true,
	}
}

func openInvoice(total int64) *domain.Invoice {
	return &domain.Invoice{
		ID:         1,
		ContractID: 7,
		Paid:       false,
		Total:      decimal.NewFromInt(total),
	}
}

func testContract() *domain.Contract {
	return &domain.Contract{
		ID:            7,
		ProjectID:     3,
		ContributorID: 11,
		HourlyRate:    decimal.NewFromInt(3000),
	}
}

func TestPay_ValidationFailures(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		prepareMock func()
		expectedErr error
	}{
		{
			name: "wallet not found",
			prepareMock: func() {
				m.wallets.EXPECT().FindByID(ctx, 2).Return(nil, nil)
			},
			expectedErr: ErrWalletNotFound,
		},
		{
			name: "wallet belongs to another project",
			prepareMock: func() {
				wallet := stripeWallet(100000)
				wallet.ProjectID = 99
				m.wallets.EXPECT().FindByID(ctx, 2).Return(wallet, nil)
				m.ledger.EXPECT().GetByID(ctx, 1).Return(openInvoice(20000), nil)
				m.contracts.EXPECT().FindByID(ctx, 7).Return(testContract(), nil)
			},
			expectedErr: ErrNotPartOfProject,
		},
		{
			name: "invoice already settled",
			prepareMock: func() {
				invoice := openInvoice(20000)
				invoice.Paid = true
				m.wallets.EXPECT().FindByID(ctx, 2).Return(stripeWallet(100000), nil)
				m.ledger.EXPECT().GetByID(ctx, 1).Return(invoice, nil)
				m.contracts.EXPECT().FindByID(ctx, 7).Return(testContract(), nil)
			},
			expectedErr: ErrAlreadyPaid,
		},
		{
			name: "invoice below payable minimum",
			prepareMock: func() {
				m.wallets.EXPECT().FindByID(ctx, 2).Return(stripeWallet(100000), nil)
				m.ledger.EXPECT().GetByID(ctx, 1).Return(openInvoice(5000), nil)
				m.contracts.EXPECT().FindByID(ctx, 7).Return(testContract(), nil)
			},
			expectedErr: ErrBelowMinimum,
		},
		{
			name: "wallet cannot cover the invoice",
			prepareMock: func() {
				m.wallets.EXPECT().FindByID(ctx, 2).Return(stripeWallet(10900), nil)
				m.ledger.EXPECT().GetByID(ctx, 1).Return(openInvoice(11000), nil)
				m.contracts.EXPECT().FindByID(ctx, 7).Return(testContract(), nil)
			},
			expectedErr: ErrInsufficientFunds,
		},
		{
			name: "no active payment method",
			prepareMock: func() {
				m.wallets.EXPECT().FindByID(ctx, 2).Return(stripeWallet(100000), nil)
				m.ledger.EXPECT().GetByID(ctx, 1).Return(openInvoice(20000), nil)
				m.contracts.EXPECT().FindByID(ctx, 7).Return(testContract(), nil)
				m.wallets.EXPECT().FindActivePaymentMethod(ctx, 2).Return(nil, nil)
			},
			expectedErr: ErrMissingPaymentSource,
		},
		{
			name: "no active payout method",
			prepareMock: func() {
				m.wallets.EXPECT().FindByID(ctx, 2).Return(stripeWallet(100000), nil)
				m.ledger.EXPECT().GetByID(ctx, 1).Return(openInvoice(20000), nil)
				m.contracts.EXPECT().FindByID(ctx, 7).Return(testContract(), nil)
				m.wallets.EXPECT().FindActivePaymentMethod(ctx, 2).Return(&domain.PaymentMethod{ID: 4, WalletID: 2, Identifier: "pm_1abc", Active: true}, nil)
				m.wallets.EXPECT().FindActivePayoutMethod(ctx, 11).Return(nil, nil)
			},
			expectedErr: ErrMissingPayoutDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			payment, err := service.Pay(ctx, 2, 1)

			assert.Nil(t, payment)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestPay_Confirmed(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	processedAt := time.Date(2024, 11, 2, 10, 0, 0, 0, time.UTC)

	m.wallets.EXPECT().FindByID(ctx, 2).Return(stripeWallet(100000), nil)
	m.ledger.EXPECT().GetByID(ctx, 1).Return(openInvoice(20000), nil)
	m.contracts.EXPECT().FindByID(ctx, 7).Return(testContract(), nil)
	m.wallets.EXPECT().FindActivePaymentMethod(ctx, 2).Return(&domain.PaymentMethod{ID: 4, WalletID: 2, Identifier: "pm_1abc", Active: true}, nil)
	m.wallets.EXPECT().FindActivePayoutMethod(ctx, 11).Return(&domain.PayoutMethod{ID: 6, ContributorID: 11, Kind: domain.PayoutCard, Identifier: "po_1abc", Active: true}, nil)

	m.gw.EXPECT().FetchPayeeBillingInfo(ctx, "po_1abc").Return(&gateway.BillingInfo{Name: "Octo Cat", Country: "DE", TaxID: ""}, nil)
	m.ledger.EXPECT().Commission(ctx, 1).Return(decimal.NewFromInt(1000), nil)
	m.gw.EXPECT().
		CreateAndConfirmTransfer(ctx, "pm_1abc", "po_1abc", gomock.Any(), gomock.Any(), "invoice #1").
		DoAndReturn(func(_ context.Context, _, _ string, total, amount decimal.Decimal, _ string) (*gateway.Transfer, error) {
			assert.True(t, total.Equal(decimal.NewFromInt(20000)))
			// EU payee without a tax id pays 19% VAT on the commission.
			assert.True(t, amount.Equal(decimal.NewFromInt(19810)))
			return &gateway.Transfer{Status: gateway.StatusConfirmed, TransactionID: "tr_1abc", ProcessedAt: processedAt}, nil
		})

	m.rates.EXPECT().Rate("EUR", "RON").Return(decimal.NewFromFloat(4.9750))
	m.txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
		return fn(ctx)
	})
	m.payments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
		assert.Equal(t, 1, payment.InvoiceID)
		assert.Equal(t, "tr_1abc", payment.TransactionID)
		assert.Equal(t, domain.PaymentSuccessful, payment.Status)
		assert.True(t, payment.Value.Equal(decimal.NewFromInt(20000)))
		payment.ID = 5
		return payment, nil
	})
	m.ledger.EXPECT().RegisterAsPaid(ctx, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, invoice *domain.Invoice, vat, rate decimal.Decimal) error {
		assert.Equal(t, 1, invoice.ID)
		assert.True(t, vat.Equal(decimal.NewFromInt(190)))
		assert.True(t, rate.Equal(decimal.NewFromFloat(4.9750)))
		return nil
	})
	m.wallets.EXPECT().DeductCash(ctx, 2, gomock.Any()).DoAndReturn(func(_ context.Context, _ int, amount decimal.Decimal) error {
		assert.True(t, amount.Equal(decimal.NewFromInt(20000)))
		return nil
	})

	payment, err := service.Pay(ctx, 2, 1)

	assert.NoError(t, err)
	assert.NotNil(t, payment)
	assert.Equal(t, 5, payment.ID)
	assert.Equal(t, domain.PaymentSuccessful, payment.Status)
	assert.Empty(t, payment.FailReason)
}

func TestPay_FakeWalletSkipsMethodChecks(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	wallet := stripeWallet(100000)
	wallet.Kind = domain.WalletFake

	m.wallets.EXPECT().FindByID(ctx, 2).Return(wallet, nil)
	m.ledger.EXPECT().GetByID(ctx, 1).Return(openInvoice(20000), nil)
	m.contracts.EXPECT().FindByID(ctx, 7).Return(testContract(), nil)

	m.gw.EXPECT().FetchPayeeBillingInfo(ctx, "").Return(&gateway.BillingInfo{Country: "RO", TaxID: "RO0000000"}, nil)
	m.ledger.EXPECT().Commission(ctx, 1).Return(decimal.NewFromInt(1000), nil)
	m.gw.EXPECT().
		CreateAndConfirmTransfer(ctx, "", "", gomock.Any(), gomock.Any(), "invoice #1").
		Return(&gateway.Transfer{Status: gateway.StatusConfirmed, TransactionID: "fake-1", ProcessedAt: time.Now()}, nil)

	m.rates.EXPECT().Rate("EUR", "RON").Return(decimal.NewFromFloat(4.9750))
	m.txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
		return fn(ctx)
	})
	m.payments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
		payment.ID = 5
		return payment, nil
	})
	m.ledger.EXPECT().RegisterAsPaid(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.wallets.EXPECT().DeductCash(ctx, 2, gomock.Any()).Return(nil)

	payment, err := service.Pay(ctx, 2, 1)

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentSuccessful, payment.Status)
}

func TestPay_Declined(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	m.wallets.EXPECT().FindByID(ctx, 2).Return(stripeWallet(100000), nil)
	m.ledger.EXPECT().GetByID(ctx, 1).Return(openInvoice(20000), nil)
	m.contracts.EXPECT().FindByID(ctx, 7).Return(testContract(), nil)
	m.wallets.EXPECT().FindActivePaymentMethod(ctx, 2).Return(&domain.PaymentMethod{ID: 4, WalletID: 2, Identifier: "pm_1abc", Active: true}, nil)
	m.wallets.EXPECT().FindActivePayoutMethod(ctx, 11).Return(&domain.PayoutMethod{ID: 6, ContributorID: 11, Kind: domain.PayoutCard, Identifier: "po_1abc", Active: true}, nil)

	m.gw.EXPECT().FetchPayeeBillingInfo(ctx, "po_1abc").Return(&gateway.BillingInfo{Country: "US"}, nil)
	m.ledger.EXPECT().Commission(ctx, 1).Return(decimal.NewFromInt(1000), nil)
	m.gw.EXPECT().
		CreateAndConfirmTransfer(ctx, "pm_1abc", "po_1abc", gomock.Any(), gomock.Any(), "invoice #1").
		Return(nil, &gateway.Error{Code: "card_declined", Message: "insufficient funds on source"})

	m.payments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
		payment.ID = 5
		return payment, nil
	})

	payment, err := service.Pay(ctx, 2, 1)

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentFailed, payment.Status)
	assert.Equal(t, "insufficient funds on source", payment.FailReason)
	assert.Empty(t, payment.TransactionID)
}

func TestPay_ProcessorError(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name           string
		transfer       *gateway.Transfer
		transferErr    error
		expectedReason string
	}{
		{
			name:           "processor is down",
			transferErr:    errors.New("connection refused"),
			expectedReason: "connection refused",
		},
		{
			name:           "transfer stuck in processing",
			transfer:       &gateway.Transfer{Status: "processing", TransactionID: "tr_2abc"},
			expectedReason: `transfer left in unexpected state "processing"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.wallets.EXPECT().FindByID(ctx, 2).Return(stripeWallet(100000), nil)
			m.ledger.EXPECT().GetByID(ctx, 1).Return(openInvoice(20000), nil)
			m.contracts.EXPECT().FindByID(ctx, 7).Return(testContract(), nil)
			m.wallets.EXPECT().FindActivePaymentMethod(ctx, 2).Return(&domain.PaymentMethod{ID: 4, WalletID: 2, Identifier: "pm_1abc", Active: true}, nil)
			m.wallets.EXPECT().FindActivePayoutMethod(ctx, 11).Return(&domain.PayoutMethod{ID: 6, ContributorID: 11, Kind: domain.PayoutCard, Identifier: "po_1abc", Active: true}, nil)

			m.gw.EXPECT().FetchPayeeBillingInfo(ctx, "po_1abc").Return(&gateway.BillingInfo{Country: "US"}, nil)
			m.ledger.EXPECT().Commission(ctx, 1).Return(decimal.NewFromInt(1000), nil)
			m.gw.EXPECT().
				CreateAndConfirmTransfer(ctx, "pm_1abc", "po_1abc", gomock.Any(), gomock.Any(), "invoice #1").
				Return(tt.transfer, tt.transferErr)

			m.payments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
				payment.ID = 5
				return payment, nil
			})

			payment, err := service.Pay(ctx, 2, 1)

			assert.NoError(t, err)
			assert.Equal(t, domain.PaymentError, payment.Status)
			assert.Equal(t, tt.expectedReason, payment.FailReason)
		})
	}
}

func TestPay_RecordingFailureAfterConfirmedTransfer(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	m.wallets.EXPECT().FindByID(ctx, 2).Return(stripeWallet(100000), nil)
	m.ledger.EXPECT().GetByID(ctx, 1).Return(openInvoice(20000), nil)
	m.contracts.EXPECT().FindByID(ctx, 7).Return(testContract(), nil)
	m.wallets.EXPECT().FindActivePaymentMethod(ctx, 2).Return(&domain.PaymentMethod{ID: 4, WalletID: 2, Identifier: "pm_1abc", Active: true}, nil)
	m.wallets.EXPECT().FindActivePayoutMethod(ctx, 11).Return(&domain.PayoutMethod{ID: 6, ContributorID: 11, Kind: domain.PayoutCard, Identifier: "po_1abc", Active: true}, nil)

	m.gw.EXPECT().FetchPayeeBillingInfo(ctx, "po_1abc").Return(&gateway.BillingInfo{Country: "US"}, nil)
	m.ledger.EXPECT().Commission(ctx, 1).Return(decimal.NewFromInt(1000), nil)
	m.gw.EXPECT().
		CreateAndConfirmTransfer(ctx, "pm_1abc", "po_1abc", gomock.Any(), gomock.Any(), "invoice #1").
		Return(&gateway.Transfer{Status: gateway.StatusConfirmed, TransactionID: "tr_1abc", ProcessedAt: time.Now()}, nil)

	m.rates.EXPECT().Rate("EUR", "RON").Return(decimal.NewFromFloat(4.9750))
	m.txManager.EXPECT().Begin(ctx, gomock.Any()).Return(fmt.Errorf("deadlock detected"))
	m.payments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
		payment.ID = 5
		return payment, nil
	})

	payment, err := service.Pay(ctx, 2, 1)

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentError, payment.Status)
	assert.Equal(t, "deadlock detected", payment.FailReason)
}

func TestHistory(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		prepareMock func()
		expected    []domain.Payment
		wantErr     bool
	}{
		{
			name: "returns the audit trail",
			prepareMock: func() {
				m.payments.EXPECT().FindByInvoiceID(ctx, 1).Return([]domain.Payment{
					{ID: 4, InvoiceID: 1, Status: domain.PaymentFailed, FailReason: "card was declined"},
					{ID: 5, InvoiceID: 1, Status: domain.PaymentSuccessful, TransactionID: "tr_1abc"},
				}, nil)
			},
			expected: []domain.Payment{
				{ID: 4, InvoiceID: 1, Status: domain.PaymentFailed, FailReason: "card was declined"},
				{ID: 5, InvoiceID: 1, Status: domain.PaymentSuccessful, TransactionID: "tr_1abc"},
			},
		},
		{
			name: "repository error",
			prepareMock: func() {
				m.payments.EXPECT().FindByInvoiceID(ctx, 1).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			payments, err := service.History(ctx, 1)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, payments)
		})
	}
}
