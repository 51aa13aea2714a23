package wallets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/codematch/marketplace/internal/domain"
	"github.com/codematch/marketplace/internal/dto"
	"github.com/codematch/marketplace/internal/service/walletservice"
	"github.com/codematch/marketplace/pkg/auth"
	"github.com/codematch/marketplace/pkg/utils"
)

type Service interface {
	CreateWallet(ctx context.Context, projectID int, kind domain.WalletKind, identifier string, cash decimal.Decimal) (*domain.Wallet, error)
	Activate(ctx context.Context, walletID int) error
	Available(ctx context.Context, projectID int) (decimal.Decimal, error)
	AttachPaymentMethod(ctx context.Context, walletID int, identifier string) (*domain.PaymentMethod, error)
	AddPayoutMethod(ctx context.Context, method *domain.PayoutMethod) (*domain.PayoutMethod, error)
	GetPayoutMethods(ctx context.Context, contributorID int) ([]domain.PayoutMethod, error)
	CreateSetupHandle(ctx context.Context, walletID int) (string, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// CreateWallet godoc
//
//	@Summary		Create a wallet for a project
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateWalletRequestDTO	true	"Wallet payload"
//	@Success		200		{object}	dto.WalletResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallets [post]
func (h *WalletHandler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWalletRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	wallet, err := h.walletService.CreateWallet(r.Context(), req.ProjectID,
		domain.WalletKind(req.Kind), req.Identifier, decimal.NewFromInt(req.Cash))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWalletDTO(wallet))
}

// Activate godoc
//
//	@Summary		Activate a wallet
//	@Description	Makes the wallet the project's single active funding source
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Wallet id"
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Wallet not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallets/{id}/activate [post]
func (h *WalletHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wallet id")
		return
	}

	if err := h.walletService.Activate(r.Context(), id); err != nil {
		if errors.Is(err, walletservice.ErrWalletNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Wallet activated"})
}

// Available godoc
//
//	@Summary		Get a project's uncommitted funds
//	@Description	Active wallet cash minus the totals of the project's open invoices
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Produce		json
//	@Param			project_id	query		int	true	"Project id"
//	@Success		200			{object}	dto.AvailableResponseDTO
//	@Failure		404			{object}	utils.Response	"No active wallet"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/wallets/available [get]
func (h *WalletHandler) Available(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.Atoi(r.URL.Query().Get("project_id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	available, err := h.walletService.Available(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, walletservice.ErrNoActiveWallet) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AvailableResponseDTO{Available: available.IntPart()})
}

// AttachPaymentMethod godoc
//
//	@Summary		Attach a funding source to a wallet
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Wallet id"
//	@Param			request	body		dto.AttachPaymentMethodRequestDTO	true	"Payment method payload"
//	@Success		200		{object}	dto.PaymentMethodResponseDTO
//	@Failure		404		{object}	utils.Response	"Wallet not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallets/{id}/payment-methods [post]
func (h *WalletHandler) AttachPaymentMethod(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wallet id")
		return
	}
	var req dto.AttachPaymentMethodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	method, err := h.walletService.AttachPaymentMethod(r.Context(), id, req.Identifier)
	if err != nil {
		if errors.Is(err, walletservice.ErrWalletNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentMethodResponseDTO{
		ID:         method.ID,
		WalletID:   method.WalletID,
		Identifier: method.Identifier,
		Active:     method.Active,
	})
}

// CreateSetupHandle godoc
//
//	@Summary		Get a gateway setup token for a wallet
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Wallet id"
//	@Success		200	{object}	dto.SetupHandleResponseDTO
//	@Failure		404	{object}	utils.Response	"Wallet not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallets/{id}/setup [post]
func (h *WalletHandler) CreateSetupHandle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wallet id")
		return
	}

	token, err := h.walletService.CreateSetupHandle(r.Context(), id)
	if err != nil {
		if errors.Is(err, walletservice.ErrWalletNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SetupHandleResponseDTO{Token: token})
}

// AddPayoutMethod godoc
//
//	@Summary		Add a payout destination for the authenticated contributor
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddPayoutMethodRequestDTO	true	"Payout method payload"
//	@Success		200		{object}	dto.PayoutMethodResponseDTO
//	@Failure		422		{object}	utils.Response	"Invalid card number"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/contributor/payout-methods [post]
func (h *WalletHandler) AddPayoutMethod(w http.ResponseWriter, r *http.Request) {
	contributorID := r.Context().Value(auth.ContributorIDKey).(int)

	var req dto.AddPayoutMethodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	method, err := h.walletService.AddPayoutMethod(r.Context(), &domain.PayoutMethod{
		ContributorID: contributorID,
		Kind:          domain.PayoutKind(req.Kind),
		Identifier:    req.Identifier,
		Country:       req.Country,
		TaxID:         req.TaxID,
	})
	if err != nil {
		if errors.Is(err, walletservice.ErrInvalidCardNumber) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPayoutDTO(method))
}

// GetPayoutMethods godoc
//
//	@Summary		List the authenticated contributor's payout destinations
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PayoutMethodResponseDTO
//	@Success		204	{object}	utils.Response	"No payout methods"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/contributor/payout-methods [get]
func (h *WalletHandler) GetPayoutMethods(w http.ResponseWriter, r *http.Request) {
	contributorID := r.Context().Value(auth.ContributorIDKey).(int)

	methods, err := h.walletService.GetPayoutMethods(r.Context(), contributorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch payout methods")
		return
	}
	if len(methods) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	resp := make([]dto.PayoutMethodResponseDTO, 0, len(methods))
	for _, m := range methods {
		resp = append(resp, toPayoutDTO(&m))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func toWalletDTO(wallet *domain.Wallet) dto.WalletResponseDTO {
	return dto.WalletResponseDTO{
		ID:         wallet.ID,
		ProjectID:  wallet.ProjectID,
		Kind:       string(wallet.Kind),
		Identifier: wallet.Identifier,
		Cash:       wallet.Cash.IntPart(),
		Active:     wallet.Active,
	}
}

func toPayoutDTO(method *domain.PayoutMethod) dto.PayoutMethodResponseDTO {
	return dto.PayoutMethodResponseDTO{
		ID:         method.ID,
		Kind:       string(method.Kind),
		Identifier: method.Identifier,
		Country:    method.Country,
		TaxID:      method.TaxID,
		Active:     method.Active,
	}
}
