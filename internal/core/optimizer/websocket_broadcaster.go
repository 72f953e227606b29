package optimizer

import "time"

// WebSocketBroadcaster decouples the job manager from any particular hub
// implementation; internal/api/websocket.Hub satisfies it.
type WebSocketBroadcaster interface {
	BroadcastMessage(messageType string, data interface{})
}

// OptimizationBroadcaster turns job-manager events into websocket
// messages. A nil wsHub makes every Broadcast* call a no-op, so a job
// manager can be used without a live transport (e.g. in tests).
type OptimizationBroadcaster struct {
	wsHub WebSocketBroadcaster
}

// NewOptimizationBroadcaster wires a broadcaster to hub.
func NewOptimizationBroadcaster(hub WebSocketBroadcaster) *OptimizationBroadcaster {
	return &OptimizationBroadcaster{wsHub: hub}
}

// BroadcastProgress sends a solve progress update.
func (ob *OptimizationBroadcaster) BroadcastProgress(jobID string, problemID int, progress Progress, maxIterations int) {
	if ob.wsHub == nil {
		return
	}
	percent := float64(progress.Iteration) / float64(maxIterations) * 100.0
	ob.wsHub.BroadcastMessage("solve_progress", map[string]interface{}{
		"job_id":         jobID,
		"problem_id":     problemID,
		"iteration":      progress.Iteration,
		"max_iterations": maxIterations,
		"current_score":  progress.CurrentScore,
		"best_score":     progress.BestScore,
		"temperature":    progress.Temperature,
		"progress":       percent,
		"updated_at":     time.Now(),
	})
}

// BroadcastCompleted sends a solve completion event.
func (ob *OptimizationBroadcaster) BroadcastCompleted(jobID string, problemID int, result *Result, duration time.Duration) {
	if ob.wsHub == nil {
		return
	}
	ob.wsHub.BroadcastMessage("solve_completed", map[string]interface{}{
		"job_id":       jobID,
		"problem_id":   problemID,
		"completed_at": time.Now(),
		"duration":     duration,
		"final_score":  result.FinalScore,
		"iterations":   result.Iterations,
		"improvements": result.Improvements,
		"status":       result.Status,
	})
}

// BroadcastFailed sends a solve failure event.
func (ob *OptimizationBroadcaster) BroadcastFailed(jobID string, problemID int, err error) {
	if ob.wsHub == nil {
		return
	}
	ob.wsHub.BroadcastMessage("solve_failed", map[string]interface{}{
		"job_id":     jobID,
		"problem_id": problemID,
		"error":      err.Error(),
		"failed_at":  time.Now(),
	})
}
