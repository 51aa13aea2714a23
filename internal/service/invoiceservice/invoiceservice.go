package invoiceservice

import (
	"context"
	"errors"

	"github.com/codematch/marketplace/internal/domain"
	invoicerepo "github.com/codematch/marketplace/internal/repo/invoice-repo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type InvoiceRepo interface {
	FindActiveByContractID(ctx context.Context, contractID int) (*domain.Invoice, error)
	Create(ctx context.Context, contractID int) (*domain.Invoice, error)
	FindByID(ctx context.Context, id int) (*domain.Invoice, error)
	FindByContractID(ctx context.Context, contractID int) ([]domain.Invoice, error)
	AddTask(ctx context.Context, task *domain.InvoicedTask) (*domain.InvoicedTask, error)
	IsTaskInvoiced(ctx context.Context, contractID, taskID int) (bool, error)
	SumCommission(ctx context.Context, invoiceID int) (decimal.Decimal, error)
	MarkPaidWithPlatformInvoice(ctx context.Context, invoiceID int, platform *domain.PlatformInvoice) error
}

type ContractRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Contract, error)
}

type ContributorRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Contributor, error)
}

type TaskRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Task, error)
}

var (
	ErrNotEligibleTask  = errors.New("task is not eligible for invoicing")
	ErrAlreadyPaid      = errors.New("invoice is already paid")
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrContractNotFound = errors.New("contract not found")
	ErrTaskNotFound     = errors.New("task not found")
)

// Service keeps the per-contract invoice books: at most one unpaid invoice
// per contract, completed work accumulated into it, and the paid flag
// flipped only on settlement.
type Service struct {
	invoiceRepo     InvoiceRepo
	contractRepo    ContractRepo
	contributorRepo ContributorRepo
	taskRepo        TaskRepo
	commissionPct   decimal.Decimal
}

func New(invoiceRepo InvoiceRepo, contractRepo ContractRepo, contributorRepo ContributorRepo, taskRepo TaskRepo, commissionPct int64) *Service {
	return &Service{
		invoiceRepo:     invoiceRepo,
		contractRepo:    contractRepo,
		contributorRepo: contributorRepo,
		taskRepo:        taskRepo,
		commissionPct:   decimal.NewFromInt(commissionPct),
	}
}

// Active returns the contract's open invoice, creating one lazily when
// every existing invoice is settled. Oldest-first ordering in the repo
// keeps the result deterministic.
func (s *Service) Active(ctx context.Context, contractID int) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindActiveByContractID(ctx, contractID)
	if err != nil {
		zap.L().Error("failed to get active invoice", zap.Error(err))
		return nil, err
	}
	if invoice != nil {
		return invoice, nil
	}

	invoice, err = s.invoiceRepo.Create(ctx, contractID)
	if err != nil {
		zap.L().Error("failed to create invoice", zap.Error(err))
		return nil, err
	}
	zap.L().Info("opened new invoice", zap.Int("contract_id", contractID), zap.Int("invoice_id", invoice.ID))
	return invoice, nil
}

// Add bills a completed task to the contract's active invoice. The task
// must be assigned to the contract's contributor, belong to the contract's
// project and not have been invoiced before under this contract.
func (s *Service) Add(ctx context.Context, contractID, taskID, timeSpentMinutes int) (*domain.InvoicedTask, error) {
	contract, err := s.contractRepo.FindByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, ErrContractNotFound
	}
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	contributor, err := s.contributorRepo.FindByID(ctx, contract.ContributorID)
	if err != nil {
		return nil, err
	}

	if task.ProjectID != contract.ProjectID {
		zap.L().Info("task is not part of the contract's project", zap.Int("task_id", task.ID))
		return nil, ErrNotEligibleTask
	}
	if contributor == nil || task.AssigneeUsername != contributor.Username {
		zap.L().Info("task is not assigned to the contract's contributor", zap.Int("task_id", task.ID))
		return nil, ErrNotEligibleTask
	}
	invoiced, err := s.invoiceRepo.IsTaskInvoiced(ctx, contractID, task.ID)
	if err != nil {
		return nil, err
	}
	if invoiced {
		zap.L().Info("task was already invoiced", zap.Int("task_id", task.ID))
		return nil, ErrNotEligibleTask
	}

	invoice, err := s.Active(ctx, contractID)
	if err != nil {
		return nil, err
	}

	value := labor(contract.HourlyRate, timeSpentMinutes)
	invoicedTask := &domain.InvoicedTask{
		InvoiceID:  invoice.ID,
		TaskID:     task.ID,
		TimeSpent:  timeSpentMinutes,
		Value:      value,
		Commission: s.commission(value),
	}

	invoicedTask, err = s.invoiceRepo.AddTask(ctx, invoicedTask)
	if err != nil {
		zap.L().Error("can't add task to invoice", zap.Error(err))
		return nil, err
	}
	return invoicedTask, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}
	return invoice, nil
}

func (s *Service) GetByContractID(ctx context.Context, contractID int) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.FindByContractID(ctx, contractID)
	if err != nil {
		zap.L().Error("failed to get invoices", zap.Error(err))
		return nil, err
	}
	return invoices, nil
}

// Commission is the platform's cut accumulated on the invoice.
func (s *Service) Commission(ctx context.Context, invoiceID int) (decimal.Decimal, error) {
	return s.invoiceRepo.SumCommission(ctx, invoiceID)
}

// RegisterAsPaid closes the invoice and records the platform invoice: the
// commission and VAT owed in the home currency at the given exchange rate.
func (s *Service) RegisterAsPaid(ctx context.Context, invoice *domain.Invoice, vat, exchangeRate decimal.Decimal) error {
	if invoice.Paid {
		return ErrAlreadyPaid
	}

	commission, err := s.invoiceRepo.SumCommission(ctx, invoice.ID)
	if err != nil {
		return err
	}

	platform := &domain.PlatformInvoice{
		InvoiceID:    invoice.ID,
		Commission:   commission,
		VAT:          vat,
		ExchangeRate: exchangeRate,
	}
	err = s.invoiceRepo.MarkPaidWithPlatformInvoice(ctx, invoice.ID, platform)
	if err != nil {
		if errors.Is(err, invoicerepo.ErrAlreadySettled) {
			return ErrAlreadyPaid
		}
		zap.L().Error("failed to register invoice as paid", zap.Error(err))
		return err
	}

	invoice.Paid = true
	zap.L().Info("invoice registered as paid", zap.Int("invoice_id", invoice.ID))
	return nil
}

func labor(hourlyRate decimal.Decimal, minutes int) decimal.Decimal {
	return hourlyRate.Mul(decimal.NewFromInt(int64(minutes))).
		Div(decimal.NewFromInt(60)).Round(0)
}

func (s *Service) commission(value decimal.Decimal) decimal.Decimal {
	return value.Mul(s.commissionPct).Div(decimal.NewFromInt(100)).Round(0)
}
