package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/federacion/fixture-scheduler/internal/api/middleware"
	"github.com/federacion/fixture-scheduler/internal/core/models"
	"github.com/federacion/fixture-scheduler/internal/storage"
	"github.com/federacion/fixture-scheduler/pkg/types"
)

// TournamentHandler serves the tournament CRUD surface.
type TournamentHandler struct {
	tournamentRepo storage.TournamentRepository
}

// NewTournamentHandler creates a tournament handler over tournamentRepo.
func NewTournamentHandler(tournamentRepo storage.TournamentRepository) *TournamentHandler {
	return &TournamentHandler{tournamentRepo: tournamentRepo}
}

func (h *TournamentHandler) GetTournaments(c *gin.Context) {
	tournaments, err := h.tournamentRepo.List(context.Background())
	if err != nil {
		middleware.InternalError(c, "Failed to retrieve tournaments")
		return
	}
	responses := make([]types.TournamentResponse, len(tournaments))
	for i := range tournaments {
		responses[i] = types.TournamentToResponse(&tournaments[i])
	}
	c.JSON(http.StatusOK, responses)
}

func (h *TournamentHandler) GetTournament(c *gin.Context) {
	id := c.Param("id")
	t, err := h.tournamentRepo.Get(context.Background(), id)
	if err != nil {
		if err == storage.ErrNotFound {
			middleware.NotFound(c, "Tournament not found")
			return
		}
		middleware.InternalError(c, "Failed to retrieve tournament")
		return
	}
	c.JSON(http.StatusOK, types.TournamentToResponse(t))
}

func (h *TournamentHandler) CreateTournament(c *gin.Context) {
	var req types.CreateTournamentRequest
	if err := middleware.BindAndValidate(c, &req); err != nil {
		c.Error(err)
		return
	}

	t := &models.Tournament{
		ID:             req.ID,
		Name:           req.Name,
		Kind:           req.Kind,
		FixedDateCount: req.FixedDateCount,
		Participants:   req.Participants,
	}
	if err := h.tournamentRepo.Create(context.Background(), t); err != nil {
		middleware.InternalError(c, "Failed to create tournament")
		return
	}
	c.JSON(http.StatusCreated, types.TournamentToResponse(t))
}

func (h *TournamentHandler) UpdateTournament(c *gin.Context) {
	id := c.Param("id")
	var req types.UpdateTournamentRequest
	if err := middleware.BindAndValidate(c, &req); err != nil {
		c.Error(err)
		return
	}

	t, err := h.tournamentRepo.Get(context.Background(), id)
	if err != nil {
		if err == storage.ErrNotFound {
			middleware.NotFound(c, "Tournament not found")
			return
		}
		middleware.InternalError(c, "Failed to retrieve tournament")
		return
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.FixedDateCount != nil {
		t.FixedDateCount = *req.FixedDateCount
	}
	if req.Participants != nil {
		t.Participants = req.Participants
	}

	if err := h.tournamentRepo.Update(context.Background(), t); err != nil {
		middleware.InternalError(c, "Failed to update tournament")
		return
	}
	c.JSON(http.StatusOK, types.TournamentToResponse(t))
}

func (h *TournamentHandler) DeleteTournament(c *gin.Context) {
	id := c.Param("id")
	if err := h.tournamentRepo.Delete(context.Background(), id); err != nil {
		if err == storage.ErrNotFound {
			middleware.NotFound(c, "Tournament not found")
			return
		}
		middleware.InternalError(c, "Failed to delete tournament")
		return
	}
	c.JSON(http.StatusOK, types.SuccessResponse{Success: true, Message: "Tournament deleted successfully"})
}
