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

// RuleHandler serves the institutional synchronization rule surface.
type RuleHandler struct {
	ruleRepo storage.RuleRepository
}

// NewRuleHandler creates a rule handler over ruleRepo.
func NewRuleHandler(ruleRepo storage.RuleRepository) *RuleHandler {
	return &RuleHandler{ruleRepo: ruleRepo}
}

func (h *RuleHandler) GetRules(c *gin.Context) {
	rules, err := h.ruleRepo.List(context.Background())
	if err != nil {
		middleware.InternalError(c, "Failed to retrieve rules")
		return
	}
	responses := make([]types.RuleResponse, len(rules))
	for i := range rules {
		responses[i] = types.RuleToResponse(&rules[i])
	}
	c.JSON(http.StatusOK, responses)
}

func (h *RuleHandler) GetRule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		middleware.BadRequest(c, "Invalid rule ID")
		return
	}
	rule, err := h.ruleRepo.Get(context.Background(), id)
	if err != nil {
		if err == storage.ErrNotFound {
			middleware.NotFound(c, "Rule not found")
			return
		}
		middleware.InternalError(c, "Failed to retrieve rule")
		return
	}
	c.JSON(http.StatusOK, types.RuleToResponse(rule))
}

func (h *RuleHandler) CreateRule(c *gin.Context) {
	var req types.CreateRuleRequest
	if err := middleware.BindAndValidate(c, &req); err != nil {
		c.Error(err)
		return
	}

	rule := &models.Rule{
		SourceClub:       req.SourceClub,
		SourceTournament: req.SourceTournament,
		TargetClub:       req.TargetClub,
		TargetTournament: req.TargetTournament,
		Kind:             req.Kind,
		Hard:             req.Hard,
		Weight:           req.Weight,
	}
	if err := h.ruleRepo.Create(context.Background(), rule); err != nil {
		middleware.InternalError(c, "Failed to create rule")
		return
	}
	c.JSON(http.StatusCreated, types.RuleToResponse(rule))
}

func (h *RuleHandler) DeleteRule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		middleware.BadRequest(c, "Invalid rule ID")
		return
	}
	if err := h.ruleRepo.Delete(context.Background(), id); err != nil {
		if err == storage.ErrNotFound {
			middleware.NotFound(c, "Rule not found")
			return
		}
		middleware.InternalError(c, "Failed to delete rule")
		return
	}
	c.JSON(http.StatusOK, types.SuccessResponse{Success: true, Message: "Rule deleted successfully"})
}
