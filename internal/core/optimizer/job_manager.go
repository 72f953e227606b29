package optimizer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/federacion/fixture-scheduler/internal/core/models"
	"github.com/federacion/fixture-scheduler/internal/core/schedule"
)

// Job is a running or completed solve job, identified the same way the
// draw optimizer this is adapted from names its jobs: a timestamp-suffixed
// id scoped to the problem it solves.
type Job struct {
	ID          string
	ProblemID   int
	Status      models.JobStatus
	Progress    Progress
	Result      *Result
	Fixture     models.Fixture
	Error       string
	StartedAt   time.Time
	CompletedAt *time.Time
	CancelFunc  context.CancelFunc `json:"-"`
}

// JobManager tracks every solve job in memory under a single mutex,
// dispatching each to its own goroutine bounded by a wall-clock deadline.
type JobManager struct {
	jobs        map[string]*Job
	mutex       sync.RWMutex
	broadcaster *OptimizationBroadcaster
}

// NewJobManager creates an empty job manager.
func NewJobManager() *JobManager {
	return &JobManager{jobs: make(map[string]*Job)}
}

// SetBroadcaster wires a websocket broadcaster for live progress; nil is
// a valid value for callers with no live transport.
func (jm *JobManager) SetBroadcaster(b *OptimizationBroadcaster) {
	jm.broadcaster = b
}

// WallClockBound clamps a requested solve budget into the engine's
// documented bound of 60 to 180 seconds.
func WallClockBound(requested time.Duration) time.Duration {
	switch {
	case requested < 60*time.Second:
		return 60 * time.Second
	case requested > 180*time.Second:
		return 180 * time.Second
	default:
		return requested
	}
}

// StartSolve starts a new solve job for problemID against p, sized, and
// engine, bounded by timeout (clamped via WallClockBound by the caller).
func (jm *JobManager) StartSolve(problemID int, p *models.Problem, sized *schedule.Sized, ls *LocalSearch, timeout time.Duration) (string, error) {
	jobID := fmt.Sprintf("solve_%d_%d", problemID, time.Now().UnixNano())

	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	job := &Job{
		ID:         jobID,
		ProblemID:  problemID,
		Status:     models.JobPending,
		StartedAt:  time.Now(),
		CancelFunc: cancel,
	}

	jm.mutex.Lock()
	jm.jobs[jobID] = job
	jm.mutex.Unlock()

	go jm.run(ctx, job, p, sized, ls)

	return jobID, nil
}

func (jm *JobManager) run(ctx context.Context, job *Job, p *models.Problem, sized *schedule.Sized, ls *LocalSearch) {
	jm.updateStatus(job.ID, models.JobRunning)
	startTime := time.Now()

	initial := schedule.Seed(sized)

	progressCallback := func(progress Progress) {
		jm.updateProgress(job.ID, progress)
		if jm.broadcaster != nil {
			jm.broadcaster.BroadcastProgress(job.ID, job.ProblemID, progress, ls.MaxIterations)
		}
	}

	result, err := ls.Optimize(ctx, sized, p, initial, progressCallback)

	jm.mutex.Lock()
	defer jm.mutex.Unlock()

	completedAt := time.Now()
	if err != nil {
		job.Status = models.JobFailed
		job.Error = err.Error()
		if jm.broadcaster != nil {
			jm.broadcaster.BroadcastFailed(job.ID, job.ProblemID, err)
		}
		job.CompletedAt = &completedAt
		return
	}

	if job.Status == models.JobCancelled {
		job.CompletedAt = &completedAt
		return
	}

	job.Result = result
	// Extraction only makes sense for an admissible incumbent; an UNKNOWN
	// result leaves the job completed but fixture-less.
	if result.Status == models.StatusOptimal || result.Status == models.StatusFeasible {
		job.Fixture = schedule.Extract(result.BestGrid, p)
	}
	job.Status = models.JobCompleted
	job.CompletedAt = &completedAt
	if jm.broadcaster != nil {
		jm.broadcaster.BroadcastCompleted(job.ID, job.ProblemID, result, completedAt.Sub(startTime))
	}
}

// GetJob returns a job by id.
func (jm *JobManager) GetJob(jobID string) (*Job, error) {
	jm.mutex.RLock()
	defer jm.mutex.RUnlock()

	job, ok := jm.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("job %s not found", jobID)
	}
	return job, nil
}

// CancelJob cancels a running job.
func (jm *JobManager) CancelJob(jobID string) error {
	jm.mutex.Lock()
	defer jm.mutex.Unlock()

	job, ok := jm.jobs[jobID]
	if !ok {
		return fmt.Errorf("job %s not found", jobID)
	}
	if job.Status == models.JobRunning || job.Status == models.JobPending {
		job.Status = models.JobCancelled
		job.CancelFunc()
		completedAt := time.Now()
		job.CompletedAt = &completedAt
	}
	return nil
}

// ListJobs returns every job, optionally filtered by status ("" means no filter).
func (jm *JobManager) ListJobs(status models.JobStatus) []*Job {
	jm.mutex.RLock()
	defer jm.mutex.RUnlock()

	var jobs []*Job
	for _, job := range jm.jobs {
		if status == "" || job.Status == status {
			jobs = append(jobs, job)
		}
	}
	return jobs
}

// JobsByProblem returns every job started against problemID.
func (jm *JobManager) JobsByProblem(problemID int) []*Job {
	jm.mutex.RLock()
	defer jm.mutex.RUnlock()

	var jobs []*Job
	for _, job := range jm.jobs {
		if job.ProblemID == problemID {
			jobs = append(jobs, job)
		}
	}
	return jobs
}

// CleanupCompleted removes completed/failed/cancelled jobs older than maxAge.
func (jm *JobManager) CleanupCompleted(maxAge time.Duration) {
	jm.mutex.Lock()
	defer jm.mutex.Unlock()

	cutoff := time.Now().Add(-maxAge)
	for id, job := range jm.jobs {
		if job.CompletedAt != nil && job.CompletedAt.Before(cutoff) {
			delete(jm.jobs, id)
		}
	}
}

func (jm *JobManager) updateStatus(jobID string, status models.JobStatus) {
	jm.mutex.Lock()
	defer jm.mutex.Unlock()
	if job, ok := jm.jobs[jobID]; ok {
		job.Status = status
	}
}

func (jm *JobManager) updateProgress(jobID string, progress Progress) {
	jm.mutex.Lock()
	defer jm.mutex.Unlock()
	if job, ok := jm.jobs[jobID]; ok {
		job.Progress = progress
	}
}

// Statistics summarizes the job table by lifecycle status.
type Statistics struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Running   int `json:"running"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	Failed    int `json:"failed"`
}

// GetStatistics tallies every job by status.
func (jm *JobManager) GetStatistics() Statistics {
	jm.mutex.RLock()
	defer jm.mutex.RUnlock()

	stats := Statistics{Total: len(jm.jobs)}
	for _, job := range jm.jobs {
		switch job.Status {
		case models.JobPending:
			stats.Pending++
		case models.JobRunning:
			stats.Running++
		case models.JobCompleted:
			stats.Completed++
		case models.JobCancelled:
			stats.Cancelled++
		case models.JobFailed:
			stats.Failed++
		}
	}
	return stats
}

// Config configures a solve request: the local-search parameters and the
// wall-clock budget, mirroring the optimizer's own tunables.
type Config struct {
	Temperature   float64           `json:"temperature"`
	CoolingRate   float64           `json:"cooling_rate"`
	MaxIterations int               `json:"max_iterations"`
	Schedule      TemperatureConfig `json:"temperature_schedule"`
	Timeout       time.Duration     `json:"timeout"`
}

// DefaultConfig returns the optimizer defaults, with a 120 second
// wall-clock budget in the middle of the engine's 60-180 second window.
func DefaultConfig() Config {
	return Config{
		Temperature:   100.0,
		CoolingRate:   0.99,
		MaxIterations: 10000,
		Schedule:      TemperatureConfig{Kind: "geometric", Rate: 0.99},
		Timeout:       120 * time.Second,
	}
}
