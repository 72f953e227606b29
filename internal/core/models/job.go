package models

import "time"

// SolverStatus is the outcome reported by the solve driver, distinct from
// the job's own lifecycle status: a job can be "completed" while its
// solver status is UNKNOWN (the driver ran to completion but its best
// assignment still violates a hard constraint).
type SolverStatus string

const (
	StatusOptimal      SolverStatus = "OPTIMAL"
	StatusFeasible     SolverStatus = "FEASIBLE"
	StatusInfeasible   SolverStatus = "INFEASIBLE"
	StatusUnknown      SolverStatus = "UNKNOWN"
	StatusModelInvalid SolverStatus = "MODEL_INVALID"
)

// JobStatus tracks the lifecycle of an asynchronous solve request.
type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
	JobCancelled JobStatus = "cancelled"
)

// SolveJob is the observable record of one solve request; it is not
// persisted.
type SolveJob struct {
	ID           string       `json:"id"`
	Status       JobStatus    `json:"status"`
	SolverStatus SolverStatus `json:"solver_status,omitempty"`
	Progress     float64      `json:"progress"`
	Objective    float64      `json:"objective"`
	Fixture      Fixture      `json:"fixture,omitempty"`
	Error        string       `json:"error,omitempty"`
	StartedAt    time.Time    `json:"started_at"`
	CompletedAt  *time.Time   `json:"completed_at,omitempty"`
}
