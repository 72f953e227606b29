package schedule

import "errors"

// Sentinel errors matching the engine's error taxonomy. Handlers and
// callers should use errors.Is against these rather than matching on
// message text.
var (
	// ErrInputInvalid means Problem.Validate failed before any solver
	// variable was built.
	ErrInputInvalid = errors.New("input invalid")
	// ErrModelTooLarge means the sized problem exceeds the configured
	// variable budget before a solve is attempted.
	ErrModelTooLarge = errors.New("model too large")
	// ErrSolverTimeout means the wall-clock budget elapsed with no
	// feasible incumbent found.
	ErrSolverTimeout = errors.New("solver timeout")
	// ErrSolverInfeasible means the solver proved no assignment satisfies
	// every hard constraint.
	ErrSolverInfeasible = errors.New("solver infeasible")
	// ErrSolverInternal means the solver failed for a reason unrelated to
	// the model itself.
	ErrSolverInternal = errors.New("solver internal error")
)
