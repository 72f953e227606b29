package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/federacion/fixture-scheduler/internal/api/middleware"
	"github.com/federacion/fixture-scheduler/internal/core/models"
	"github.com/federacion/fixture-scheduler/internal/core/optimizer"
	"github.com/federacion/fixture-scheduler/internal/core/schedule"
	"github.com/federacion/fixture-scheduler/pkg/types"
)

// SolveHandler exposes the scheduling engine: start a solve job, poll its
// status, and fetch the resulting fixture once it completes.
type SolveHandler struct {
	service *optimizer.Service
}

// NewSolveHandler creates a solve handler over service.
func NewSolveHandler(service *optimizer.Service) *SolveHandler {
	return &SolveHandler{service: service}
}

// StartSolve kicks off an asynchronous solve against the current
// federation state. POST /api/v1/solve
func (h *SolveHandler) StartSolve(c *gin.Context) {
	var req types.StartSolveRequest
	if err := middleware.BindAndValidate(c, &req); err != nil {
		c.Error(err)
		return
	}

	cfg := optimizer.DefaultConfig()
	if req.Temperature > 0 {
		cfg.Temperature = req.Temperature
	}
	if req.CoolingRate > 0 {
		cfg.CoolingRate = req.CoolingRate
	}
	if req.MaxIterations > 0 {
		cfg.MaxIterations = req.MaxIterations
	}
	if req.Schedule != nil {
		cfg.Schedule = *req.Schedule
	}
	if req.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(req.TimeoutSeconds) * time.Second
	}
	if len(req.LocalityCaps) > 0 || len(req.Exclusions) > 0 {
		h.service.SetLogisticalConfig(req.LocalityCaps, req.Exclusions)
	}

	jobID, err := h.service.Solve(c.Request.Context(), cfg)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusAccepted, types.StartSolveResponse{JobID: jobID, Status: string(models.JobPending)})
}

// GetSolveStatus reports a solve job's lifecycle status and progress.
// GET /api/v1/solve/:jobId
func (h *SolveHandler) GetSolveStatus(c *gin.Context) {
	jobID := c.Param("jobId")
	job, err := h.service.GetJob(jobID)
	if err != nil {
		middleware.NotFound(c, "Solve job not found")
		return
	}
	c.JSON(http.StatusOK, types.SolveStatusToResponse(job))
}

// GetFixture returns the solved fixture for a completed job.
// GET /api/v1/solve/:jobId/fixture
func (h *SolveHandler) GetFixture(c *gin.Context) {
	jobID := c.Param("jobId")
	fixture, err := h.service.GetFixture(jobID)
	if err != nil {
		middleware.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, types.FixtureResponse{JobID: jobID, Fixture: fixture})
}

// CancelSolve cancels a running or pending solve job.
// POST /api/v1/solve/:jobId/cancel
func (h *SolveHandler) CancelSolve(c *gin.Context) {
	jobID := c.Param("jobId")
	if err := h.service.CancelJob(jobID); err != nil {
		middleware.NotFound(c, "Solve job not found")
		return
	}
	c.JSON(http.StatusOK, types.SuccessResponse{Success: true, Message: "Solve job cancelled"})
}

// ListSolveJobs lists every solve job, optionally filtered by status.
// GET /api/v1/solve?status=running
func (h *SolveHandler) ListSolveJobs(c *gin.Context) {
	status := models.JobStatus(c.Query("status"))
	jobs := h.service.ListJobs(status)
	responses := make([]types.SolveStatusResponse, len(jobs))
	for i, job := range jobs {
		responses[i] = types.SolveStatusToResponse(job)
	}
	c.JSON(http.StatusOK, types.SolveJobsResponse{Jobs: responses})
}

// GetStatistics tallies solve jobs by lifecycle status.
// GET /api/v1/solve/statistics
func (h *SolveHandler) GetStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetStatistics())
}

// PreviewSizing reports the horizon and tournament count the current
// federation state would produce, without starting a solve.
// GET /api/v1/solve/sizing
func (h *SolveHandler) PreviewSizing(c *gin.Context) {
	p, err := h.service.LoadProblem(c.Request.Context())
	if err != nil {
		middleware.InternalError(c, "Failed to load federation state")
		return
	}
	if err := p.Validate(); err != nil {
		middleware.BadRequest(c, err.Error())
		return
	}
	sized, err := schedule.Size(p, schedule.DefaultConfig())
	if err != nil {
		middleware.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, types.SizingToResponse(sized))
}
