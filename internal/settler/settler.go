package settler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/codematch/marketplace/internal/config"
	"github.com/codematch/marketplace/internal/domain"
	"github.com/codematch/marketplace/internal/service/settlementservice"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var settlingInvoices sync.Map

type InvoiceRepo interface {
	FindPayable(ctx context.Context, minTotal decimal.Decimal, limit uint32) ([]domain.Invoice, error)
}

type ContractRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Contract, error)
}

type WalletRepo interface {
	FindActiveByProjectID(ctx context.Context, projectID int) (*domain.Wallet, error)
}

type Settlement interface {
	Pay(ctx context.Context, walletID, invoiceID int) (*domain.Payment, error)
}

// Service is the background job that sweeps open invoices above the
// payable minimum and runs a settlement attempt for each. Attempts that
// end FAILED or ERROR are not retried within a sweep; the next tick
// re-evaluates whatever is still open.
type Service struct {
	invoiceRepo    InvoiceRepo
	contractRepo   ContractRepo
	walletRepo     WalletRepo
	settlement     Settlement
	minPayment     decimal.Decimal
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, invoiceRepo InvoiceRepo, contractRepo ContractRepo, walletRepo WalletRepo, settlement Settlement) *Service {
	return &Service{
		invoiceRepo:    invoiceRepo,
		contractRepo:   contractRepo,
		walletRepo:     walletRepo,
		settlement:     settlement,
		minPayment:     decimal.NewFromInt(cfg.MinPayment),
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Minute,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Settler service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping settler")
			return
		case <-ticker.C:
			s.processInvoices(ctx)
		}
	}
}

func (s *Service) processInvoices(ctx context.Context) {
	invoices, err := s.invoiceRepo.FindPayable(ctx, s.minPayment, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch payable invoices", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, invoice := range invoices {
		invoice := invoice

		if _, loaded := settlingInvoices.LoadOrStore(invoice.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer settlingInvoices.Delete(invoice.ID)
				return s.handleInvoice(ctx, invoice)
			})
			if err != nil {
				settlingInvoices.Delete(invoice.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error settling invoices", zap.Error(err))
	}
}

func (s *Service) handleInvoice(ctx context.Context, invoice domain.Invoice) error {
	contract, err := s.contractRepo.FindByID(ctx, invoice.ContractID)
	if err != nil {
		return err
	}
	if contract == nil {
		return fmt.Errorf("contract %d not found for invoice %d", invoice.ContractID, invoice.ID)
	}

	wallet, err := s.walletRepo.FindActiveByProjectID(ctx, contract.ProjectID)
	if err != nil {
		return err
	}
	if wallet == nil {
		zap.L().Info("Project has no active wallet, skipping invoice",
			zap.Int("invoice_id", invoice.ID), zap.Int("project_id", contract.ProjectID))
		return nil
	}

	payment, err := s.settlement.Pay(ctx, wallet.ID, invoice.ID)
	if err != nil {
		switch {
		case errors.Is(err, settlementservice.ErrInsufficientFunds),
			errors.Is(err, settlementservice.ErrMissingPaymentSource),
			errors.Is(err, settlementservice.ErrMissingPayoutDestination):
			// Caller-correctable; the next sweep will try again once the
			// wallet is topped up or configured.
			zap.L().Info("Invoice not payable yet",
				zap.Int("invoice_id", invoice.ID), zap.String("reason", err.Error()))
			return nil
		case errors.Is(err, settlementservice.ErrAlreadyPaid):
			return nil
		}
		return fmt.Errorf("failed to settle invoice %d: %w", invoice.ID, err)
	}

	zap.L().Info("Settlement attempt finished",
		zap.Int("invoice_id", invoice.ID),
		zap.String("status", string(payment.Status)))
	return nil
}
