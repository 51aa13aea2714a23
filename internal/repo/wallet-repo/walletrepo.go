package walletrepo

import (
	"context"
	"errors"

	"github.com/codematch/marketplace/internal/domain"
	"github.com/codematch/marketplace/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrNotEnoughCash is returned when the conditional deduction finds less
// cash than the amount being settled.
var ErrNotEnoughCash = errors.New("not enough cash in wallet")

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Wallet, error) {
	query := `
        SELECT id, project_id, kind, identifier, cash, active
        FROM wallets
        WHERE id = $1
    `
	return r.scanWallet(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) FindActiveByProjectID(ctx context.Context, projectID int) (*domain.Wallet, error) {
	query := `
        SELECT id, project_id, kind, identifier, cash, active
        FROM wallets
        WHERE project_id = $1 AND active
    `
	return r.scanWallet(r.db.QueryRow(ctx, query, projectID))
}

func (r *Repository) scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.ProjectID, &wallet.Kind, &wallet.Identifier, &wallet.Cash, &wallet.Active)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) Create(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
	query := `
		INSERT INTO wallets (project_id, kind, identifier, cash, active)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, wallet.ProjectID, wallet.Kind, wallet.Identifier, wallet.Cash).Scan(&wallet.ID)
	if err != nil {
		zap.L().Error("can't save wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// Activate makes the wallet the project's single active one; every sibling
// is deactivated in the same transaction.
func (r *Repository) Activate(ctx context.Context, walletID int) error {
	deactivate := `
		UPDATE wallets
		SET active = FALSE
		WHERE project_id = (SELECT project_id FROM wallets WHERE id = $1)
	`
	activate := `
		UPDATE wallets
		SET active = TRUE
		WHERE id = $1
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, deactivate, walletID); err != nil {
			zap.L().Error("failed to deactivate sibling wallets", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, activate, walletID); err != nil {
			zap.L().Error("failed to activate wallet", zap.Error(err))
			return err
		}
		return nil
	})
}

// DeductCash subtracts amount from the wallet in a single conditional
// update, so the funds check and the deduction cannot race.
func (r *Repository) DeductCash(ctx context.Context, walletID int, amount decimal.Decimal) error {
	query := `
		UPDATE wallets
		SET cash = cash - $1
		WHERE id = $2 AND cash >= $1
	`
	tag, err := r.db.Exec(ctx, query, amount, walletID)
	if err != nil {
		zap.L().Error("failed to deduct wallet cash", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotEnoughCash
	}
	return nil
}

func (r *Repository) CreatePaymentMethod(ctx context.Context, method *domain.PaymentMethod) (*domain.PaymentMethod, error) {
	query := `
		INSERT INTO payment_methods (wallet_id, identifier, active)
		VALUES ($1, $2, FALSE)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, method.WalletID, method.Identifier).Scan(&method.ID)
	if err != nil {
		zap.L().Error("can't save payment method", zap.Error(err))
		return nil, err
	}
	return method, nil
}

func (r *Repository) ActivatePaymentMethod(ctx context.Context, methodID int) error {
	deactivate := `
		UPDATE payment_methods
		SET active = FALSE
		WHERE wallet_id = (SELECT wallet_id FROM payment_methods WHERE id = $1)
	`
	activate := `
		UPDATE payment_methods
		SET active = TRUE
		WHERE id = $1
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, deactivate, methodID); err != nil {
			zap.L().Error("failed to deactivate sibling payment methods", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, activate, methodID); err != nil {
			zap.L().Error("failed to activate payment method", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) FindActivePaymentMethod(ctx context.Context, walletID int) (*domain.PaymentMethod, error) {
	query := `
        SELECT id, wallet_id, identifier, active
        FROM payment_methods
        WHERE wallet_id = $1 AND active
    `
	var method domain.PaymentMethod
	err := r.db.QueryRow(ctx, query, walletID).Scan(&method.ID, &method.WalletID, &method.Identifier, &method.Active)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get payment method", zap.Error(err))
		return nil, err
	}
	return &method, nil
}

func (r *Repository) CreatePayoutMethod(ctx context.Context, method *domain.PayoutMethod) (*domain.PayoutMethod, error) {
	query := `
		INSERT INTO payout_methods (contributor_id, kind, identifier, country, tax_id, active)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, method.ContributorID, method.Kind, method.Identifier, method.Country, method.TaxID).Scan(&method.ID)
	if err != nil {
		zap.L().Error("can't save payout method", zap.Error(err))
		return nil, err
	}
	return method, nil
}

func (r *Repository) ActivatePayoutMethod(ctx context.Context, methodID int) error {
	deactivate := `
		UPDATE payout_methods
		SET active = FALSE
		WHERE contributor_id = (SELECT contributor_id FROM payout_methods WHERE id = $1)
	`
	activate := `
		UPDATE payout_methods
		SET active = TRUE
		WHERE id = $1
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, deactivate, methodID); err != nil {
			zap.L().Error("failed to deactivate sibling payout methods", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, activate, methodID); err != nil {
			zap.L().Error("failed to activate payout method", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) FindActivePayoutMethod(ctx context.Context, contributorID int) (*domain.PayoutMethod, error) {
	query := `
        SELECT id, contributor_id, kind, identifier, country, tax_id, active
        FROM payout_methods
        WHERE contributor_id = $1 AND active
    `
	var method domain.PayoutMethod
	err := r.db.QueryRow(ctx, query, contributorID).
		Scan(&method.ID, &method.ContributorID, &method.Kind, &method.Identifier, &method.Country, &method.TaxID, &method.Active)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get payout method", zap.Error(err))
		return nil, err
	}
	return &method, nil
}

func (r *Repository) FindPayoutMethodsByContributorID(ctx context.Context, contributorID int) ([]domain.PayoutMethod, error) {
	query := `
        SELECT id, contributor_id, kind, identifier, country, tax_id, active
        FROM payout_methods
        WHERE contributor_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, contributorID)
	if err != nil {
		zap.L().Error("failed to fetch payout methods", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var methods []domain.PayoutMethod
	for rows.Next() {
		var m domain.PayoutMethod
		err := rows.Scan(&m.ID, &m.ContributorID, &m.Kind, &m.Identifier, &m.Country, &m.TaxID, &m.Active)
		if err != nil {
			zap.L().Error("failed to scan payout method row", zap.Error(err))
			return nil, err
		}
		methods = append(methods, m)
	}

	return methods, nil
}
