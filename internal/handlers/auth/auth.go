package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/codematch/marketplace/internal/domain"
	"github.com/codematch/marketplace/internal/dto"
	"github.com/codematch/marketplace/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, username, provider, password string) (*domain.Contributor, error)
	Authenticate(ctx context.Context, username, provider, password string) (*domain.Contributor, error)
	GenerateToken(contributorID int) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new contributor
//	@Description	Create a contributor account bound to an upstream provider identity
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Contributor already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/contributor/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	contributor, err := h.authService.Register(r.Context(), req.Username, req.Provider, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	}
	token, err := h.authService.GenerateToken(contributor.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{
		Message: "Contributor successfully registered",
	})
}

// Login godoc
//
//	@Summary		Authenticate contributor
//	@Description	Log in with a contributor account and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/contributor/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	contributor, err := h.authService.Authenticate(r.Context(), req.Username, req.Provider, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.authService.GenerateToken(contributor.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{
		Message: "Contributor successfully authenticated",
	})
}
