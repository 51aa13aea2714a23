package election

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/codematch/marketplace/internal/domain"
	"github.com/codematch/marketplace/internal/dto"
	"github.com/codematch/marketplace/internal/service/electionservice"
	"github.com/codematch/marketplace/pkg/utils"
)

type Service interface {
	Elect(ctx context.Context, taskID int) (*domain.Contributor, error)
}

type ElectionHandler struct {
	electionService Service
}

func New(electionService Service) *ElectionHandler {
	return &ElectionHandler{
		electionService: electionService,
	}
}

// Elect godoc
//
//	@Summary		Elect a contributor for a task
//	@Description	Picks an eligible, affordable contributor at random and assigns the task. Responds with elected=false when nobody fits.
//	@Tags			Election
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ElectRequestDTO	true	"Election request"
//	@Success		200		{object}	dto.ElectResponseDTO
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/election [post]
func (h *ElectionHandler) Elect(w http.ResponseWriter, r *http.Request) {
	var req dto.ElectRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	contributor, err := h.electionService.Elect(r.Context(), req.TaskID)
	if err != nil {
		if errors.Is(err, electionservice.ErrTaskNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if contributor == nil {
		utils.RespondWithJSON(w, http.StatusOK, dto.ElectResponseDTO{Elected: false})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ElectResponseDTO{
		Elected:  true,
		Username: contributor.Username,
		Provider: contributor.Provider,
	})
}
