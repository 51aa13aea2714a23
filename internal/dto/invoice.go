package dto

import "time"

type InvoiceResponseDTO struct {
	ID         int       `json:"id" example:"1"`
	ContractID int       `json:"contract_id" example:"7"`
	Paid       bool      `json:"paid" example:"false"`
	Total      int64     `json:"total" example:"20000"`
	CreatedAt  time.Time `json:"created_at" example:"2024-11-02T10:00:00Z"`
}

type AddTaskRequestDTO struct {
	ContractID int `json:"contract_id" example:"7"`
	TaskID     int `json:"task_id" example:"42"`
	TimeSpent  int `json:"time_spent_minutes" example:"90"`
}

type InvoicedTaskResponseDTO struct {
	ID         int   `json:"id" example:"3"`
	InvoiceID  int   `json:"invoice_id" example:"1"`
	TaskID     int   `json:"task_id" example:"42"`
	TimeSpent  int   `json:"time_spent_minutes" example:"90"`
	Value      int64 `json:"value" example:"4500"`
	Commission int64 `json:"commission" example:"450"`
}
