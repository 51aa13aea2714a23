package billing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/codematch/marketplace/internal/domain"
	"github.com/codematch/marketplace/internal/dto"
	"github.com/codematch/marketplace/internal/service/invoiceservice"
	"github.com/codematch/marketplace/internal/service/settlementservice"
	"github.com/codematch/marketplace/pkg/utils"
)

type InvoiceService interface {
	GetByID(ctx context.Context, id int) (*domain.Invoice, error)
	GetByContractID(ctx context.Context, contractID int) ([]domain.Invoice, error)
	Add(ctx context.Context, contractID, taskID, timeSpentMinutes int) (*domain.InvoicedTask, error)
}

type SettlementService interface {
	Pay(ctx context.Context, walletID, invoiceID int) (*domain.Payment, error)
	History(ctx context.Context, invoiceID int) ([]domain.Payment, error)
}

type BillingHandler struct {
	invoiceService    InvoiceService
	settlementService SettlementService
}

func New(invoiceService InvoiceService, settlementService SettlementService) *BillingHandler {
	return &BillingHandler{
		invoiceService:    invoiceService,
		settlementService: settlementService,
	}
}

// GetInvoice godoc
//
//	@Summary		Get an invoice
//	@Tags			Billing
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Invoice id"
//	@Success		200	{object}	dto.InvoiceResponseDTO
//	@Failure		404	{object}	utils.Response	"Invoice not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/invoices/{id} [get]
func (h *BillingHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid invoice id")
		return
	}

	invoice, err := h.invoiceService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, invoiceservice.ErrInvoiceNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toInvoiceDTO(invoice))
}

// GetInvoices godoc
//
//	@Summary		List a contract's invoices
//	@Tags			Billing
//	@Security		BearerAuth
//	@Produce		json
//	@Param			contract_id	query		int	true	"Contract id"
//	@Success		200			{array}		dto.InvoiceResponseDTO
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/invoices [get]
func (h *BillingHandler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	contractID, err := strconv.Atoi(r.URL.Query().Get("contract_id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid contract id")
		return
	}

	invoices, err := h.invoiceService.GetByContractID(r.Context(), contractID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch invoices")
		return
	}
	if len(invoices) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	resp := make([]dto.InvoiceResponseDTO, 0, len(invoices))
	for i := range invoices {
		resp = append(resp, toInvoiceDTO(&invoices[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// AddTask godoc
//
//	@Summary		Bill a completed task to a contract's active invoice
//	@Tags			Billing
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddTaskRequestDTO	true	"Completed task payload"
//	@Success		200		{object}	dto.InvoicedTaskResponseDTO
//	@Failure		404		{object}	utils.Response	"Contract or task not found"
//	@Failure		422		{object}	utils.Response	"Task not eligible"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/invoices/tasks [post]
func (h *BillingHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	var req dto.AddTaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	invoiced, err := h.invoiceService.Add(r.Context(), req.ContractID, req.TaskID, req.TimeSpent)
	if err != nil {
		switch {
		case errors.Is(err, invoiceservice.ErrContractNotFound), errors.Is(err, invoiceservice.ErrTaskNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, invoiceservice.ErrNotEligibleTask):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.InvoicedTaskResponseDTO{
		ID:         invoiced.ID,
		InvoiceID:  invoiced.InvoiceID,
		TaskID:     invoiced.TaskID,
		TimeSpent:  invoiced.TimeSpent,
		Value:      invoiced.Value.IntPart(),
		Commission: invoiced.Commission.IntPart(),
	})
}

// Pay godoc
//
//	@Summary		Settle an invoice from a wallet
//	@Description	Runs one settlement attempt. Validation failures return an error status; attempts past validation always record a payment with a terminal status.
//	@Tags			Billing
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PayRequestDTO	true	"Settlement request"
//	@Success		200		{object}	dto.PaymentResponseDTO
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		404		{object}	utils.Response	"Wallet or invoice not found"
//	@Failure		409		{object}	utils.Response	"Already paid or wrong project"
//	@Failure		422		{object}	utils.Response	"Below minimum or missing method"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments [post]
func (h *BillingHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req dto.PayRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.settlementService.Pay(r.Context(), req.WalletID, req.InvoiceID)
	if err != nil {
		switch {
		case errors.Is(err, settlementservice.ErrWalletNotFound), errors.Is(err, invoiceservice.ErrInvoiceNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, settlementservice.ErrAlreadyPaid), errors.Is(err, settlementservice.ErrNotPartOfProject):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, settlementservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, settlementservice.ErrBelowMinimum),
			errors.Is(err, settlementservice.ErrMissingPaymentSource),
			errors.Is(err, settlementservice.ErrMissingPayoutDestination):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPaymentDTO(payment))
}

// GetPayments godoc
//
//	@Summary		List settlement attempts for an invoice
//	@Tags			Billing
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Invoice id"
//	@Success		200	{array}		dto.PaymentResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/invoices/{id}/payments [get]
func (h *BillingHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid invoice id")
		return
	}

	payments, err := h.settlementService.History(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}
	if len(payments) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	resp := make([]dto.PaymentResponseDTO, 0, len(payments))
	for i := range payments {
		resp = append(resp, toPaymentDTO(&payments[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func toInvoiceDTO(invoice *domain.Invoice) dto.InvoiceResponseDTO {
	return dto.InvoiceResponseDTO{
		ID:         invoice.ID,
		ContractID: invoice.ContractID,
		Paid:       invoice.Paid,
		Total:      invoice.Total.IntPart(),
		CreatedAt:  invoice.CreatedAt,
	}
}

func toPaymentDTO(payment *domain.Payment) dto.PaymentResponseDTO {
	return dto.PaymentResponseDTO{
		ID:            payment.ID,
		InvoiceID:     payment.InvoiceID,
		TransactionID: payment.TransactionID,
		Value:         payment.Value.IntPart(),
		Status:        string(payment.Status),
		FailReason:    payment.FailReason,
		ProcessedAt:   payment.ProcessedAt,
	}
}
