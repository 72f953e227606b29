package optimizer

import (
	"context"
	"fmt"

	"github.com/federacion/fixture-scheduler/internal/core/constraints"
	"github.com/federacion/fixture-scheduler/internal/core/models"
	"github.com/federacion/fixture-scheduler/internal/core/schedule"
)

// Solve runs one synchronous solve over p: validate, size, build the
// constraint engine, seed, anneal within the wall-clock bound, and
// extract. This is the library-call form of the engine; the HTTP layer
// drives the same pipeline asynchronously through Service and JobManager.
//
// The returned fixture is nil unless the status is OPTIMAL or FEASIBLE.
// Input and sizing failures are returned as errors (wrapping
// schedule.ErrInputInvalid / schedule.ErrModelTooLarge) before any search
// starts; solver outcomes are returned as the status value, never as an
// error.
func Solve(ctx context.Context, p *models.Problem, schedCfg schedule.Config, cfg Config) (models.Fixture, models.SolverStatus, error) {
	if err := p.Validate(); err != nil {
		return nil, models.StatusModelInvalid, fmt.Errorf("%w: %s", schedule.ErrInputInvalid, err)
	}
	sized, err := schedule.Size(p, schedCfg)
	if err != nil {
		return nil, models.StatusModelInvalid, err
	}

	engine := constraints.NewEngine(p, sized, schedCfg)
	if cfg.MaxIterations <= 0 {
		cfg = DefaultConfig()
	}
	ls := NewLocalSearch(cfg.Temperature, cfg.CoolingRate, cfg.MaxIterations, engine)
	if cfg.Schedule.Kind != "" {
		ls.Schedule = NewTemperatureSchedule(cfg.Schedule, cfg.Temperature)
	}

	ctx, cancel := context.WithTimeout(ctx, WallClockBound(cfg.Timeout))
	defer cancel()

	result, err := ls.Optimize(ctx, sized, p, schedule.Seed(sized), nil)
	if err != nil {
		return nil, models.StatusModelInvalid, fmt.Errorf("%w: %s", schedule.ErrSolverInternal, err)
	}
	if result.Status != models.StatusOptimal && result.Status != models.StatusFeasible {
		return nil, result.Status, nil
	}
	return schedule.Extract(result.BestGrid, p), result.Status, nil
}
