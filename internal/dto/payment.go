package dto

import "time"

type PayRequestDTO struct {
	WalletID  int `json:"wallet_id" example:"2"`
	InvoiceID int `json:"invoice_id" example:"1"`
}

type PaymentResponseDTO struct {
	ID            int       `json:"id" example:"5"`
	InvoiceID     int       `json:"invoice_id" example:"1"`
	TransactionID string    `json:"transaction_id" example:"tr_1abc"`
	Value         int64     `json:"value" example:"20000"`
	Status        string    `json:"status" example:"SUCCESSFUL"`
	FailReason    string    `json:"fail_reason,omitempty" example:""`
	ProcessedAt   time.Time `json:"processed_at" example:"2024-11-02T10:00:00Z"`
}
