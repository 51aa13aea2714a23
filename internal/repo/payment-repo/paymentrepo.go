package paymentrepo

import (
	"context"

	"github.com/codematch/marketplace/internal/domain"
	"github.com/codematch/marketplace/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create appends a settlement attempt. Payments are append-only; there is
// no update or delete.
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
		INSERT INTO payments (invoice_id, transaction_id, value, status, fail_reason, processed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		payment.InvoiceID, payment.TransactionID, payment.Value,
		payment.Status, payment.FailReason, payment.ProcessedAt,
	).Scan(&payment.ID)
	if err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) FindByInvoiceID(ctx context.Context, invoiceID int) ([]domain.Payment, error) {
	query := `
        SELECT id, invoice_id, transaction_id, value, status, fail_reason, processed_at
        FROM payments
        WHERE invoice_id = $1
        ORDER BY processed_at DESC
    `
	rows, err := r.db.Query(ctx, query, invoiceID)
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(&p.ID, &p.InvoiceID, &p.TransactionID, &p.Value, &p.Status, &p.FailReason, &p.ProcessedAt)
		if err != nil {
			zap.L().Error("failed to scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, nil
}
