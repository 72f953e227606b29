package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/federacion/fixture-scheduler/internal/api/middleware"
	"github.com/federacion/fixture-scheduler/internal/core/models"
	"github.com/federacion/fixture-scheduler/internal/storage"
	"github.com/federacion/fixture-scheduler/pkg/types"
)

// ClubHandler serves the club CRUD surface of the federation API.
type ClubHandler struct {
	clubRepo storage.ClubRepository
}

// NewClubHandler creates a club handler over clubRepo.
func NewClubHandler(clubRepo storage.ClubRepository) *ClubHandler {
	return &ClubHandler{clubRepo: clubRepo}
}

func (h *ClubHandler) GetClubs(c *gin.Context) {
	var params types.ListQueryParams
	if err := middleware.BindQueryAndValidate(c, &params); err != nil {
		middleware.BadRequest(c, "Invalid query parameters")
		return
	}
	if params.Page == 0 {
		params.Page = 1
	}
	if params.PerPage == 0 {
		params.PerPage = 20
	}

	clubs, err := h.clubRepo.List(context.Background())
	if err != nil {
		middleware.InternalError(c, "Failed to retrieve clubs")
		return
	}

	responses := make([]types.ClubResponse, len(clubs))
	for i := range clubs {
		responses[i] = types.ClubToResponse(&clubs[i])
	}

	total := len(responses)
	start := (params.Page - 1) * params.PerPage
	end := start + params.PerPage
	switch {
	case start >= total:
		responses = []types.ClubResponse{}
	case end > total:
		responses = responses[start:]
	default:
		responses = responses[start:end]
	}
	totalPages := (total + params.PerPage - 1) / params.PerPage

	c.JSON(http.StatusOK, types.PaginatedResponse{
		Data:       responses,
		Total:      total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: totalPages,
	})
}

func (h *ClubHandler) GetClub(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		middleware.BadRequest(c, "Invalid club ID")
		return
	}
	club, err := h.clubRepo.Get(context.Background(), id)
	if err != nil {
		if err == storage.ErrNotFound {
			middleware.NotFound(c, "Club not found")
			return
		}
		middleware.InternalError(c, "Failed to retrieve club")
		return
	}
	c.JSON(http.StatusOK, types.ClubToResponse(club))
}

func (h *ClubHandler) CreateClub(c *gin.Context) {
	var req types.CreateClubRequest
	if err := middleware.BindAndValidate(c, &req); err != nil {
		c.Error(err)
		return
	}

	club := &models.Club{
		Name:      req.Name,
		Locality:  req.Locality,
		Venue:     req.Venue,
		OwnsVenue: req.OwnsVenue,
	}
	if err := club.Validate(); err != nil {
		middleware.BadRequest(c, err.Error())
		return
	}
	if err := h.clubRepo.Create(context.Background(), club); err != nil {
		middleware.InternalError(c, "Failed to create club")
		return
	}
	c.JSON(http.StatusCreated, types.ClubToResponse(club))
}

func (h *ClubHandler) UpdateClub(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		middleware.BadRequest(c, "Invalid club ID")
		return
	}
	var req types.UpdateClubRequest
	if err := middleware.BindAndValidate(c, &req); err != nil {
		c.Error(err)
		return
	}

	club, err := h.clubRepo.Get(context.Background(), id)
	if err != nil {
		if err == storage.ErrNotFound {
			middleware.NotFound(c, "Club not found")
			return
		}
		middleware.InternalError(c, "Failed to retrieve club")
		return
	}

	if req.Name != nil {
		club.Name = *req.Name
	}
	if req.Locality != nil {
		club.Locality = *req.Locality
	}
	if req.Venue != nil {
		club.Venue = *req.Venue
	}
	if req.OwnsVenue != nil {
		club.OwnsVenue = *req.OwnsVenue
	}

	if err := h.clubRepo.Update(context.Background(), club); err != nil {
		middleware.InternalError(c, "Failed to update club")
		return
	}
	c.JSON(http.StatusOK, types.ClubToResponse(club))
}

func (h *ClubHandler) DeleteClub(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		middleware.BadRequest(c, "Invalid club ID")
		return
	}
	if err := h.clubRepo.Delete(context.Background(), id); err != nil {
		if err == storage.ErrNotFound {
			middleware.NotFound(c, "Club not found")
			return
		}
		middleware.InternalError(c, "Failed to delete club")
		return
	}
	c.JSON(http.StatusOK, types.SuccessResponse{Success: true, Message: "Club deleted successfully"})
}
