package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/codematch/marketplace/internal/config"
	"github.com/codematch/marketplace/pkg/clients"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusDeclined   = "declined"
)

type Transfer struct {
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id"`
	ProcessedAt   time.Time `json:"processed_at"`
}

type BillingInfo struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	TaxID   string `json:"tax_id"`
}

// Error is a failure reported by the payment processor. Decline-class
// codes mean the processor refused the transfer; everything else is an
// infrastructure problem.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("gateway: %s: %s", e.Code, e.Message)
}

var declineCodes = map[string]struct{}{
	"card_declined":           {},
	"expired_source":          {},
	"authentication_required": {},
	"account_closed":          {},
	"transfer_blocked":        {},
	"transfer_declined":       {},
}

// IsDecline reports whether the processor explicitly refused the transfer
// as opposed to malfunctioning.
func IsDecline(err error) bool {
	var gwErr *Error
	if !errors.As(err, &gwErr) {
		return false
	}
	_, decline := declineCodes[gwErr.Code]
	return decline
}

type Client struct {
	url    string
	token  string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:    cfg.GatewayAddress,
		token:  cfg.GatewayToken,
		client: client,
	}
}

type transferRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Total       int64  `json:"total"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

// CreateAndConfirmTransfer moves funds from the payer's payment method to
// the payee's payout destination. total is the full invoice amount, amount
// is the payee leg after VAT.
func (c *Client) CreateAndConfirmTransfer(ctx context.Context, sourceID, destinationID string, total, amount decimal.Decimal, description string) (*Transfer, error) {
	body := transferRequest{
		Source:      sourceID,
		Destination: destinationID,
		Total:       total.IntPart(),
		Amount:      amount.IntPart(),
		Description: description,
	}

	var transfer Transfer
	if err := c.post(ctx, "/api/transfers", body, &transfer); err != nil {
		return nil, err
	}

	zap.L().Info("transfer submitted",
		zap.String("transaction_id", transfer.TransactionID),
		zap.String("status", transfer.Status))
	return &transfer, nil
}

func (c *Client) FetchPayeeBillingInfo(ctx context.Context, payoutID string) (*BillingInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"/api/payouts/"+payoutID+"/billing", http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	var info BillingInfo
	if err := c.do(req, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// CreatePaymentSetupHandle returns an opaque token the payer uses in the
// gateway's hosted flow to attach a funding source to the wallet.
func (c *Client) CreatePaymentSetupHandle(ctx context.Context, walletIdentifier string) (string, error) {
	body := map[string]string{"wallet": walletIdentifier}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.post(ctx, "/api/setup", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var gwErr Error
		if err := json.Unmarshal(respBody, &gwErr); err != nil || gwErr.Code == "" {
			return fmt.Errorf("unexpected gateway status %d", resp.StatusCode)
		}
		return &gwErr
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse gateway response: %w", err)
	}
	return nil
}
