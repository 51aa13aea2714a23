package walletservice

import (
	"context"
	"errors"

	"github.com/codematch/marketplace/internal/domain"
	"github.com/codematch/marketplace/pkg/validate"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type WalletRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Wallet, error)
	FindActiveByProjectID(ctx context.Context, projectID int) (*domain.Wallet, error)
	Create(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error)
	Activate(ctx context.Context, walletID int) error
	CreatePaymentMethod(ctx context.Context, method *domain.PaymentMethod) (*domain.PaymentMethod, error)
	ActivatePaymentMethod(ctx context.Context, methodID int) error
	CreatePayoutMethod(ctx context.Context, method *domain.PayoutMethod) (*domain.PayoutMethod, error)
	ActivatePayoutMethod(ctx context.Context, methodID int) error
	FindPayoutMethodsByContributorID(ctx context.Context, contributorID int) ([]domain.PayoutMethod, error)
}

type InvoiceRepo interface {
	SumUnpaidByProjectID(ctx context.Context, projectID int) (decimal.Decimal, error)
}

type SetupGateway interface {
	CreatePaymentSetupHandle(ctx context.Context, walletIdentifier string) (string, error)
}

var (
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrNoActiveWallet    = errors.New("project has no active wallet")
	ErrInvalidCardNumber = errors.New("invalid card number")
)

type Service struct {
	walletRepo  WalletRepo
	invoiceRepo InvoiceRepo
	gateways    map[domain.WalletKind]SetupGateway
}

func New(walletRepo WalletRepo, invoiceRepo InvoiceRepo, gateways map[domain.WalletKind]SetupGateway) *Service {
	return &Service{
		walletRepo:  walletRepo,
		invoiceRepo: invoiceRepo,
		gateways:    gateways,
	}
}

// CreateWallet adds an inactive wallet to the project. Call Activate to
// make it the project's funding source.
func (s *Service) CreateWallet(ctx context.Context, projectID int, kind domain.WalletKind, identifier string, cash decimal.Decimal) (*domain.Wallet, error) {
	wallet := &domain.Wallet{
		ProjectID:  projectID,
		Kind:       kind,
		Identifier: identifier,
		Cash:       cash,
	}
	wallet, err := s.walletRepo.Create(ctx, wallet)
	if err != nil {
		zap.L().Error("can't create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// Activate makes the wallet active and deactivates its siblings, keeping
// exactly one active wallet per project.
func (s *Service) Activate(ctx context.Context, walletID int) error {
	wallet, err := s.walletRepo.FindByID(ctx, walletID)
	if err != nil {
		return err
	}
	if wallet == nil {
		return ErrWalletNotFound
	}
	return s.walletRepo.Activate(ctx, walletID)
}

func (s *Service) GetActive(ctx context.Context, projectID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindActiveByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrNoActiveWallet
	}
	return wallet, nil
}

// Available is the active wallet's cash minus the totals of the project's
// open invoices.
func (s *Service) Available(ctx context.Context, projectID int) (decimal.Decimal, error) {
	wallet, err := s.GetActive(ctx, projectID)
	if err != nil {
		return decimal.Zero, err
	}
	committed, err := s.invoiceRepo.SumUnpaidByProjectID(ctx, projectID)
	if err != nil {
		return decimal.Zero, err
	}
	return wallet.Cash.Sub(committed), nil
}

// AttachPaymentMethod stores a funding source for the wallet and makes it
// the active one.
func (s *Service) AttachPaymentMethod(ctx context.Context, walletID int, identifier string) (*domain.PaymentMethod, error) {
	wallet, err := s.walletRepo.FindByID(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}

	method, err := s.walletRepo.CreatePaymentMethod(ctx, &domain.PaymentMethod{
		WalletID:   walletID,
		Identifier: identifier,
	})
	if err != nil {
		zap.L().Error("can't attach payment method", zap.Error(err))
		return nil, err
	}
	if err := s.walletRepo.ActivatePaymentMethod(ctx, method.ID); err != nil {
		return nil, err
	}
	method.Active = true
	return method, nil
}

// AddPayoutMethod stores a contributor's payout destination and makes it
// the active one. Card identifiers must pass the Luhn check.
func (s *Service) AddPayoutMethod(ctx context.Context, method *domain.PayoutMethod) (*domain.PayoutMethod, error) {
	if method.Kind == domain.PayoutCard && !validate.IsLuna(method.Identifier) {
		return nil, ErrInvalidCardNumber
	}

	method, err := s.walletRepo.CreatePayoutMethod(ctx, method)
	if err != nil {
		zap.L().Error("can't add payout method", zap.Error(err))
		return nil, err
	}
	if err := s.walletRepo.ActivatePayoutMethod(ctx, method.ID); err != nil {
		return nil, err
	}
	method.Active = true
	return method, nil
}

func (s *Service) GetPayoutMethods(ctx context.Context, contributorID int) ([]domain.PayoutMethod, error) {
	methods, err := s.walletRepo.FindPayoutMethodsByContributorID(ctx, contributorID)
	if err != nil {
		zap.L().Error("failed to fetch payout methods", zap.Error(err))
		return nil, err
	}
	return methods, nil
}

// CreateSetupHandle asks the wallet's gateway for an opaque token the
// payer uses to attach a funding source through the hosted flow.
func (s *Service) CreateSetupHandle(ctx context.Context, walletID int) (string, error) {
	wallet, err := s.walletRepo.FindByID(ctx, walletID)
	if err != nil {
		return "", err
	}
	if wallet == nil {
		return "", ErrWalletNotFound
	}
	gw, ok := s.gateways[wallet.Kind]
	if !ok {
		return "", errors.New("no gateway for wallet kind " + string(wallet.Kind))
	}
	return gw.CreatePaymentSetupHandle(ctx, wallet.Identifier)
}
