package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Fake stands in for the processor on projects without a real funding
// source. Every transfer confirms immediately with a synthetic
// transaction id, so the invoice and wallet bookkeeping behaves exactly
// as it would in production.
type Fake struct{}

func NewFake() *Fake {
	return &Fake{}
}

func (f *Fake) CreateAndConfirmTransfer(ctx context.Context, sourceID, destinationID string, total, amount decimal.Decimal, description string) (*Transfer, error) {
	transfer := &Transfer{
		Status:        StatusConfirmed,
		TransactionID: "fake-" + uuid.NewString(),
		ProcessedAt:   time.Now(),
	}
	zap.L().Info("fake transfer confirmed",
		zap.String("transaction_id", transfer.TransactionID),
		zap.String("destination", destinationID))
	return transfer, nil
}

func (f *Fake) FetchPayeeBillingInfo(ctx context.Context, payoutID string) (*BillingInfo, error) {
	return &BillingInfo{Name: "fake payee", Country: "RO"}, nil
}

func (f *Fake) CreatePaymentSetupHandle(ctx context.Context, walletIdentifier string) (string, error) {
	return "fake-setup-" + uuid.NewString(), nil
}
