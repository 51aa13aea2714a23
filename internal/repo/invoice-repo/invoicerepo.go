package invoicerepo

import (
	"context"
	"errors"

	"github.com/codematch/marketplace/internal/domain"
	"github.com/codematch/marketplace/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrAlreadySettled is returned when the conditional close finds the
// invoice already marked paid.
var ErrAlreadySettled = errors.New("invoice already settled")

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

// FindActiveByContractID returns the oldest unpaid invoice of the
// contract, or nil when every invoice is settled.
func (r *Repository) FindActiveByContractID(ctx context.Context, contractID int) (*domain.Invoice, error) {
	query := `
        SELECT id, contract_id, paid, total, created_at
        FROM invoices
        WHERE contract_id = $1 AND NOT paid
        ORDER BY created_at ASC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, contractID)
	var invoice domain.Invoice
	err := row.Scan(&invoice.ID, &invoice.ContractID, &invoice.Paid, &invoice.Total, &invoice.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get active invoice", zap.Error(err))
		return nil, err
	}
	return &invoice, nil
}

func (r *Repository) Create(ctx context.Context, contractID int) (*domain.Invoice, error) {
	query := `
        INSERT INTO invoices (contract_id, paid, total)
        VALUES ($1, FALSE, 0)
        RETURNING id, contract_id, paid, total, created_at
    `
	row := r.db.QueryRow(ctx, query, contractID)
	var invoice domain.Invoice
	err := row.Scan(&invoice.ID, &invoice.ContractID, &invoice.Paid, &invoice.Total, &invoice.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create invoice", zap.Error(err))
		return nil, err
	}
	return &invoice, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Invoice, error) {
	query := `
        SELECT id, contract_id, paid, total, created_at
        FROM invoices
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var invoice domain.Invoice
	err := row.Scan(&invoice.ID, &invoice.ContractID, &invoice.Paid, &invoice.Total, &invoice.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get invoice", zap.Error(err))
		return nil, err
	}
	return &invoice, nil
}

func (r *Repository) FindByContractID(ctx context.Context, contractID int) ([]domain.Invoice, error) {
	query := `
        SELECT id, contract_id, paid, total, created_at
        FROM invoices
        WHERE contract_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, contractID)
	if err != nil {
		zap.L().Error("failed to fetch invoices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		var inv domain.Invoice
		err := rows.Scan(&inv.ID, &inv.ContractID, &inv.Paid, &inv.Total, &inv.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan invoice row", zap.Error(err))
			return nil, err
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}

// AddTask appends an invoiced task and bumps the invoice total in the same
// transaction, keeping total = sum(value + commission) over its tasks.
func (r *Repository) AddTask(ctx context.Context, task *domain.InvoicedTask) (*domain.InvoicedTask, error) {
	insert := `
		INSERT INTO invoiced_tasks (invoice_id, task_id, time_spent_minutes, value, commission)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	update := `
		UPDATE invoices
		SET total = total + $1
		WHERE id = $2
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, insert, task.InvoiceID, task.TaskID, task.TimeSpent, task.Value, task.Commission)
		if err := row.Scan(&task.ID, &task.CreatedAt); err != nil {
			zap.L().Error("failed to insert invoiced task", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, update, task.Amount(), task.InvoiceID); err != nil {
			zap.L().Error("failed to update invoice total", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// IsTaskInvoiced reports whether the task already appears on any invoice
// of the contract, paid or not.
func (r *Repository) IsTaskInvoiced(ctx context.Context, contractID, taskID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1
            FROM invoiced_tasks t
            JOIN invoices i ON i.id = t.invoice_id
            WHERE i.contract_id = $1 AND t.task_id = $2
        )
    `
	var invoiced bool
	err := r.db.QueryRow(ctx, query, contractID, taskID).Scan(&invoiced)
	if err != nil {
		zap.L().Error("failed to check invoiced task", zap.Error(err))
		return false, err
	}
	return invoiced, nil
}

func (r *Repository) SumCommission(ctx context.Context, invoiceID int) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(commission), 0)
        FROM invoiced_tasks
        WHERE invoice_id = $1
    `
	var commission decimal.Decimal
	err := r.db.QueryRow(ctx, query, invoiceID).Scan(&commission)
	if err != nil {
		zap.L().Error("failed to sum commission", zap.Error(err))
		return decimal.Zero, err
	}
	return commission, nil
}

// SumUnpaidByProjectID totals every open invoice across the project's
// contracts, the committed amount the wallet has not yet settled.
func (r *Repository) SumUnpaidByProjectID(ctx context.Context, projectID int) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(i.total), 0)
        FROM invoices i
        JOIN contracts c ON c.id = i.contract_id
        WHERE c.project_id = $1 AND NOT i.paid
    `
	var total decimal.Decimal
	err := r.db.QueryRow(ctx, query, projectID).Scan(&total)
	if err != nil {
		zap.L().Error("failed to sum unpaid invoices", zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}

// MarkPaidWithPlatformInvoice closes the invoice and stores the platform's
// commission/VAT record in one transaction. The conditional update keeps a
// concurrent second settlement from closing the same invoice twice.
func (r *Repository) MarkPaidWithPlatformInvoice(ctx context.Context, invoiceID int, platform *domain.PlatformInvoice) error {
	markPaid := `
		UPDATE invoices
		SET paid = TRUE
		WHERE id = $1 AND NOT paid
	`
	insert := `
		INSERT INTO platform_invoices (invoice_id, commission, vat, exchange_rate)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, markPaid, invoiceID)
		if err != nil {
			zap.L().Error("failed to mark invoice paid", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrAlreadySettled
		}
		row := r.db.QueryRow(ctx, insert, platform.InvoiceID, platform.Commission, platform.VAT, platform.ExchangeRate)
		if err := row.Scan(&platform.ID, &platform.CreatedAt); err != nil {
			zap.L().Error("failed to insert platform invoice", zap.Error(err))
			return err
		}
		return nil
	})
}

// FindPayable lists open invoices at or above the minimum, for the settler
// job.
func (r *Repository) FindPayable(ctx context.Context, minTotal decimal.Decimal, limit uint32) ([]domain.Invoice, error) {
	query := `
        SELECT id, contract_id, paid, total, created_at
        FROM invoices
        WHERE NOT paid AND total >= $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, minTotal, limit)
	if err != nil {
		zap.L().Error("failed to fetch payable invoices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		var inv domain.Invoice
		err := rows.Scan(&inv.ID, &inv.ContractID, &inv.Paid, &inv.Total, &inv.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan invoice row", zap.Error(err))
			return nil, err
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}
