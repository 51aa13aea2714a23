package settlementservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codematch/marketplace/internal/domain"
	"github.com/codematch/marketplace/internal/gateway"
	"github.com/codematch/marketplace/internal/pg"
	"github.com/codematch/marketplace/internal/tax"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Ledger interface {
	GetByID(ctx context.Context, id int) (*domain.Invoice, error)
	Commission(ctx context.Context, invoiceID int) (decimal.Decimal, error)
	RegisterAsPaid(ctx context.Context, invoice *domain.Invoice, vat, exchangeRate decimal.Decimal) error
}

type ContractRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Contract, error)
}

type WalletRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Wallet, error)
	FindActivePaymentMethod(ctx context.Context, walletID int) (*domain.PaymentMethod, error)
	FindActivePayoutMethod(ctx context.Context, contributorID int) (*domain.PayoutMethod, error)
	DeductCash(ctx context.Context, walletID int, amount decimal.Decimal) error
}

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	FindByInvoiceID(ctx context.Context, invoiceID int) ([]domain.Payment, error)
}

type Gateway interface {
	CreateAndConfirmTransfer(ctx context.Context, sourceID, destinationID string, total, amount decimal.Decimal, description string) (*gateway.Transfer, error)
	FetchPayeeBillingInfo(ctx context.Context, payoutID string) (*gateway.BillingInfo, error)
}

type RateSource interface {
	Rate(from, to string) decimal.Decimal
}

type TXManager interface {
	Begin(ctx context.Context, fn pg.TransactionalFn) error
}

// Precondition failures. These are returned to the caller before any
// external call and never produce a Payment row.
var (
	ErrWalletNotFound           = errors.New("wallet not found")
	ErrNotPartOfProject         = errors.New("invoice is not part of the wallet's project")
	ErrAlreadyPaid              = errors.New("invoice is already paid")
	ErrBelowMinimum             = errors.New("invoice total is below the payable minimum")
	ErrInsufficientFunds        = errors.New("wallet has insufficient funds")
	ErrMissingPaymentSource     = errors.New("wallet has no active payment method")
	ErrMissingPayoutDestination = errors.New("payee has no active payout method")
)

const (
	invoiceCurrency = "EUR"
	homeCurrency    = "RON"
)

// settlement is the context shared by the pipeline stages of one attempt.
type settlement struct {
	invoice  *domain.Invoice
	contract *domain.Contract
	wallet   *domain.Wallet
	source   *domain.PaymentMethod
	payout   *domain.PayoutMethod
	vat      decimal.Decimal
	transfer *gateway.Transfer
	failure  error
	payment  *domain.Payment
}

type stage func(ctx context.Context, st *settlement) error

// Service settles invoices in three ordered stages: validate the attempt,
// execute the transfer through the processor, record the terminal outcome.
// Once the execution stage has been reached, the recording stage always
// runs, so no submitted attempt is left without a Payment row.
type Service struct {
	ledger     Ledger
	contracts  ContractRepo
	wallets    WalletRepo
	payments   PaymentRepo
	gateways   map[domain.WalletKind]Gateway
	rates      RateSource
	txManager  TXManager
	minPayment decimal.Decimal
	stages     []stage
}

func New(ledger Ledger, contracts ContractRepo, wallets WalletRepo, payments PaymentRepo, gateways map[domain.WalletKind]Gateway, rates RateSource, txManager TXManager, minPayment int64) *Service {
	s := &Service{
		ledger:     ledger,
		contracts:  contracts,
		wallets:    wallets,
		payments:   payments,
		gateways:   gateways,
		rates:      rates,
		txManager:  txManager,
		minPayment: decimal.NewFromInt(minPayment),
	}
	s.stages = []stage{s.precondition, s.execute, s.record}
	return s
}

// Pay runs one settlement attempt of the invoice against the wallet.
// Validation failures come back as errors with no Payment created; every
// outcome past validation comes back as a Payment with a terminal status.
func (s *Service) Pay(ctx context.Context, walletID, invoiceID int) (*domain.Payment, error) {
	wallet, err := s.wallets.FindByID(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}

	invoice, err := s.ledger.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	contract, err := s.contracts.FindByID(ctx, invoice.ContractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, fmt.Errorf("contract %d not found for invoice %d", invoice.ContractID, invoiceID)
	}

	st := &settlement{invoice: invoice, contract: contract, wallet: wallet}
	for _, run := range s.stages {
		if err := run(ctx, st); err != nil {
			return nil, err
		}
	}
	return st.payment, nil
}

// History lists the audit trail of settlement attempts for an invoice.
func (s *Service) History(ctx context.Context, invoiceID int) ([]domain.Payment, error) {
	payments, err := s.payments.FindByInvoiceID(ctx, invoiceID)
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}

func (s *Service) precondition(ctx context.Context, st *settlement) error {
	if st.contract.ProjectID != st.wallet.ProjectID {
		return ErrNotPartOfProject
	}
	if st.invoice.Paid {
		return ErrAlreadyPaid
	}
	if st.invoice.Total.LessThan(s.minPayment) {
		return ErrBelowMinimum
	}
	if st.wallet.Cash.Sub(st.invoice.Total).IsNegative() {
		return ErrInsufficientFunds
	}

	if st.wallet.Kind == domain.WalletFake {
		return nil
	}

	source, err := s.wallets.FindActivePaymentMethod(ctx, st.wallet.ID)
	if err != nil {
		return err
	}
	if source == nil {
		return ErrMissingPaymentSource
	}
	payout, err := s.wallets.FindActivePayoutMethod(ctx, st.contract.ContributorID)
	if err != nil {
		return err
	}
	if payout == nil {
		return ErrMissingPayoutDestination
	}
	st.source = source
	st.payout = payout
	return nil
}

// execute submits the transfer. Processor failures are captured on the
// settlement context instead of being returned, so the recording stage
// still runs and turns them into FAILED or ERROR payments.
func (s *Service) execute(ctx context.Context, st *settlement) error {
	gw, ok := s.gateways[st.wallet.Kind]
	if !ok {
		return fmt.Errorf("no gateway for wallet kind %s", st.wallet.Kind)
	}

	var payoutID string
	if st.payout != nil {
		payoutID = st.payout.Identifier
	}
	billing, err := gw.FetchPayeeBillingInfo(ctx, payoutID)
	if err != nil {
		st.failure = err
		return nil
	}

	commission, err := s.ledger.Commission(ctx, st.invoice.ID)
	if err != nil {
		return err
	}
	st.vat = tax.VAT(commission, billing.Country, billing.TaxID)

	var sourceID string
	if st.source != nil {
		sourceID = st.source.Identifier
	}
	transfer, err := gw.CreateAndConfirmTransfer(ctx, sourceID, payoutID,
		st.invoice.Total, st.invoice.Total.Sub(st.vat),
		fmt.Sprintf("invoice #%d", st.invoice.ID))
	if err != nil {
		st.failure = err
		return nil
	}

	switch transfer.Status {
	case gateway.StatusConfirmed:
		st.transfer = transfer
	case gateway.StatusDeclined:
		st.failure = &gateway.Error{Code: "transfer_declined", Message: "processor declined the transfer"}
	default:
		st.failure = fmt.Errorf("transfer left in unexpected state %q", transfer.Status)
	}
	return nil
}

func (s *Service) record(ctx context.Context, st *settlement) error {
	switch {
	case st.failure != nil && gateway.IsDecline(st.failure):
		return s.recordFailure(ctx, st, domain.PaymentFailed, declineReason(st.failure))
	case st.failure != nil:
		return s.recordFailure(ctx, st, domain.PaymentError, st.failure.Error())
	}

	rate := s.rates.Rate(invoiceCurrency, homeCurrency)

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		payment, err := s.payments.Create(ctx, &domain.Payment{
			InvoiceID:     st.invoice.ID,
			TransactionID: st.transfer.TransactionID,
			Value:         st.invoice.Total,
			Status:        domain.PaymentSuccessful,
			ProcessedAt:   st.transfer.ProcessedAt,
		})
		if err != nil {
			return err
		}
		if err := s.ledger.RegisterAsPaid(ctx, st.invoice, st.vat, rate); err != nil {
			return err
		}
		if err := s.wallets.DeductCash(ctx, st.wallet.ID, st.invoice.Total); err != nil {
			return err
		}
		st.payment = payment
		return nil
	})
	if err != nil {
		// The transfer went through but the books could not be updated;
		// record the attempt as errored so an operator can reconcile.
		zap.L().Error("failed to record confirmed transfer",
			zap.Int("invoice_id", st.invoice.ID),
			zap.String("transaction_id", st.transfer.TransactionID),
			zap.Error(err))
		return s.recordFailure(ctx, st, domain.PaymentError, err.Error())
	}

	zap.L().Info("invoice settled",
		zap.Int("invoice_id", st.invoice.ID),
		zap.String("transaction_id", st.transfer.TransactionID),
		zap.String("value", st.invoice.Total.String()))
	return nil
}

func (s *Service) recordFailure(ctx context.Context, st *settlement, status domain.PaymentStatus, reason string) error {
	payment, err := s.payments.Create(ctx, &domain.Payment{
		InvoiceID:   st.invoice.ID,
		Value:       st.invoice.Total,
		Status:      status,
		FailReason:  reason,
		ProcessedAt: time.Now(),
	})
	if err != nil {
		zap.L().Error("can't record settlement failure", zap.Error(err))
		return err
	}
	st.payment = payment
	zap.L().Info("settlement attempt did not succeed",
		zap.Int("invoice_id", st.invoice.ID),
		zap.String("status", string(status)),
		zap.String("reason", reason))
	return nil
}

func declineReason(err error) string {
	var gwErr *gateway.Error
	if errors.As(err, &gwErr) {
		return gwErr.Message
	}
	return err.Error()
}
