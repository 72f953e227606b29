package optimizer

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/federacion/fixture-scheduler/internal/core/constraints"
	"github.com/federacion/fixture-scheduler/internal/core/models"
	"github.com/federacion/fixture-scheduler/internal/core/schedule"
)

// LocalSearch implements simulated annealing over the plays/isHome
// assignment grid: the same metropolis-criterion local search the draw
// optimizer this is adapted from runs over a single competition, widened
// to a shared multi-tournament date grid and to a penalty the search
// minimizes (zero is a perfect assignment) rather than a reward it
// maximizes.
type LocalSearch struct {
	Temperature   float64
	CoolingRate   float64
	MaxIterations int
	Engine        *constraints.Engine
	Schedule      TemperatureSchedule
}

// Result reports the outcome of one Optimize call.
type Result struct {
	InitialScore float64             `json:"initial_score"`
	FinalScore   float64             `json:"final_score"`
	Iterations   int                 `json:"iterations"`
	Improvements int                 `json:"improvements"`
	Duration     time.Duration       `json:"duration"`
	BestGrid     *schedule.Grid      `json:"-"`
	Status       models.SolverStatus `json:"status"`
}

// Progress is reported periodically through a ProgressCallback.
type Progress struct {
	Iteration      int     `json:"iteration"`
	Temperature    float64 `json:"temperature"`
	CurrentScore   float64 `json:"current_score"`
	BestScore      float64 `json:"best_score"`
	AcceptanceRate float64 `json:"acceptance_rate"`
	EstimatedTime  string  `json:"estimated_time"`
}

// ProgressCallback is invoked periodically during Optimize.
type ProgressCallback func(Progress)

// NewLocalSearch builds a local search optimizer with geometric
// temperature decay by default.
func NewLocalSearch(temperature, coolingRate float64, maxIterations int, engine *constraints.Engine) *LocalSearch {
	return &LocalSearch{
		Temperature:   temperature,
		CoolingRate:   coolingRate,
		MaxIterations: maxIterations,
		Engine:        engine,
		Schedule:      GeometricDecay{Initial: temperature, Rate: coolingRate},
	}
}

// Optimize runs simulated annealing against sized/problem starting from
// initial, stopping at MaxIterations or when ctx's deadline elapses,
// whichever comes first. The returned Status follows the engine's
// {OPTIMAL, FEASIBLE, UNKNOWN} vocabulary: OPTIMAL if the run exhausted
// its iteration budget with a zero-penalty incumbent, FEASIBLE if its
// best incumbent is hard-constraint-clean, UNKNOWN if its best incumbent
// still violates a hard constraint, whether the deadline or the
// iteration budget ended the run.
func (ls *LocalSearch) Optimize(ctx context.Context, sized *schedule.Sized, p *models.Problem, initial *schedule.Grid, callback ProgressCallback) (*Result, error) {
	if initial == nil {
		return nil, fmt.Errorf("initial grid cannot be nil")
	}

	startTime := time.Now()

	current := initial.Clone()
	best := initial.Clone()

	currentScore := ls.Engine.Score(current, sized, p)
	bestScore := currentScore
	initialScore := currentScore

	temperature := ls.Temperature
	improvements := 0
	acceptances := 0

	i := 0
	for ; i < ls.MaxIterations; i++ {
		select {
		case <-ctx.Done():
			goto finished // the deadline struck after i iterations ran
		default:
		}

		neighbor := current.Clone()
		op := ls.neighborOps()[rand.Intn(len(ls.neighborOps()))]
		if err := op(neighbor); err != nil {
			continue
		}

		neighborScore := ls.Engine.Score(neighbor, sized, p)

		accepted := false
		if neighborScore < currentScore {
			accepted = true
			improvements++
		} else if temperature > 0 {
			delta := currentScore - neighborScore // negative: neighbor is worse
			probability := math.Exp(delta / temperature)
			if rand.Float64() < probability {
				accepted = true
			}
		}

		if accepted {
			current = neighbor
			currentScore = neighborScore
			acceptances++

			if currentScore < bestScore {
				best = current.Clone()
				bestScore = currentScore
			}
		}

		temperature = ls.Schedule.TemperatureAt(i)

		if callback != nil && i%100 == 0 {
			acceptanceRate := float64(acceptances) / float64(i+1)
			elapsed := time.Since(startTime)
			remaining := time.Duration(float64(elapsed) * float64(ls.MaxIterations-i) / float64(i+1))
			callback(Progress{
				Iteration:      i,
				Temperature:    temperature,
				CurrentScore:   currentScore,
				BestScore:      bestScore,
				AcceptanceRate: acceptanceRate,
				EstimatedTime:  remaining.String(),
			})
		}
	}

finished:
	status := models.StatusUnknown
	hardViolations := ls.Engine.HardViolationCount(best, sized, p)
	switch {
	case hardViolations > 0:
		status = models.StatusUnknown
	case i >= ls.MaxIterations && bestScore == 0:
		status = models.StatusOptimal
	default:
		status = models.StatusFeasible
	}

	return &Result{
		InitialScore: initialScore,
		FinalScore:   bestScore,
		Iterations:   i,
		Improvements: improvements,
		Duration:     time.Since(startTime),
		BestGrid:     best,
		Status:       status,
	}, nil
}
