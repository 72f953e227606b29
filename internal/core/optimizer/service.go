package optimizer

import (
	"context"
	"fmt"

	"github.com/federacion/fixture-scheduler/internal/core/constraints"
	"github.com/federacion/fixture-scheduler/internal/core/models"
	"github.com/federacion/fixture-scheduler/internal/core/schedule"
	"github.com/federacion/fixture-scheduler/internal/storage"
)

// Service is the top-level entry point the HTTP layer calls: it loads
// the current federation state from storage, builds the sized problem
// and constraint engine, and drives a solve job through the JobManager.
type Service struct {
	repository storage.Repositories
	jobManager *JobManager
	config     schedule.Config
}

// NewService wires a service against repository with the engine's
// default sizing/capacity configuration.
func NewService(repository storage.Repositories) *Service {
	return &Service{
		repository: repository,
		jobManager: NewJobManager(),
		config:     schedule.DefaultConfig(),
	}
}

// SetScheduleConfig replaces the sizing/capacity configuration used by
// future solves.
func (s *Service) SetScheduleConfig(cfg schedule.Config) {
	s.config = cfg
}

// SetLogisticalConfig overrides the locality-cap and exclusion-pair
// configuration used by future solves, leaving every other sizing bound
// (max dates, bye-cluster threshold, max variables) untouched. This is
// the path the HTTP solve request uses to supply caps/exclusions beyond
// DefaultConfig's data-derived locality cap.
func (s *Service) SetLogisticalConfig(caps []schedule.LocalityCap, exclusions []schedule.ExclusionPair) {
	if len(caps) > 0 {
		s.config.LocalityCaps = caps
	}
	if len(exclusions) > 0 {
		s.config.Exclusions = exclusions
	}
}

// SetBroadcaster wires a websocket broadcaster for live progress.
func (s *Service) SetBroadcaster(b *OptimizationBroadcaster) {
	s.jobManager.SetBroadcaster(b)
}

// LoadProblem assembles the current federation state (every stored club,
// tournament, and rule) into a single Problem value.
func (s *Service) LoadProblem(ctx context.Context) (*models.Problem, error) {
	clubs, err := s.repository.Clubs().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load clubs: %w", err)
	}
	tournaments, err := s.repository.Tournaments().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tournaments: %w", err)
	}
	rules, err := s.repository.Rules().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}
	return &models.Problem{Clubs: clubs, Tournaments: tournaments, Rules: rules}, nil
}

// Solve validates and sizes the current federation state, then starts an
// asynchronous solve job bounded by cfg's wall-clock budget. It returns
// ErrInputInvalid if the assembled problem fails validation and
// ErrModelTooLarge if sizing exceeds the configured variable budget —
// both before any job is created.
func (s *Service) Solve(ctx context.Context, cfg Config) (string, error) {
	p, err := s.LoadProblem(ctx)
	if err != nil {
		return "", err
	}

	if err := p.Validate(); err != nil {
		return "", fmt.Errorf("%w: %s", schedule.ErrInputInvalid, err)
	}

	sized, err := schedule.Size(p, s.config)
	if err != nil {
		return "", err
	}

	engine := constraints.NewEngine(p, sized, s.config)
	if cfg.MaxIterations <= 0 {
		cfg = DefaultConfig()
	}
	ls := NewLocalSearch(cfg.Temperature, cfg.CoolingRate, cfg.MaxIterations, engine)
	if cfg.Schedule.Kind != "" {
		ls.Schedule = NewTemperatureSchedule(cfg.Schedule, cfg.Temperature)
	}

	timeout := WallClockBound(cfg.Timeout)
	jobID, err := s.jobManager.StartSolve(0, p, sized, ls, timeout)
	if err != nil {
		return "", fmt.Errorf("%w: %s", schedule.ErrSolverInternal, err)
	}
	return jobID, nil
}

// GetJob returns a solve job by id.
func (s *Service) GetJob(jobID string) (*Job, error) {
	return s.jobManager.GetJob(jobID)
}

// CancelJob cancels a running or pending solve job.
func (s *Service) CancelJob(jobID string) error {
	return s.jobManager.CancelJob(jobID)
}

// GetFixture returns the solved fixture for a completed job.
func (s *Service) GetFixture(jobID string) (models.Fixture, error) {
	job, err := s.jobManager.GetJob(jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobCompleted {
		return nil, fmt.Errorf("job %s has not completed", jobID)
	}
	if job.Fixture == nil {
		return nil, fmt.Errorf("job %s completed without a feasible fixture", jobID)
	}
	return job.Fixture, nil
}

// ListJobs lists every job, optionally filtered by status.
func (s *Service) ListJobs(status models.JobStatus) []*Job {
	return s.jobManager.ListJobs(status)
}

// GetStatistics tallies every job by status.
func (s *Service) GetStatistics() Statistics {
	return s.jobManager.GetStatistics()
}

// JobManager exposes the underlying job manager, e.g. for a cleanup
// goroutine started from cmd/api.
func (s *Service) JobManager() *JobManager {
	return s.jobManager
}
