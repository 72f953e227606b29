package constraints

import (
	"github.com/federacion/fixture-scheduler/internal/core/models"
	"github.com/federacion/fixture-scheduler/internal/core/schedule"
)

// Constraint scores a candidate grid against the sized problem. Hard
// constraints report their violation count scaled by HardPenalty; soft
// constraints report their own weighted penalty. The engine never needs
// to distinguish the two at scoring time — it just sums — but IsHard and
// Name/Description drive the analysis/reporting surface.
type Constraint interface {
	Name() string
	Description() string
	IsHard() bool
	// Penalty returns the total weighted penalty this constraint
	// contributes for the given grid.
	Penalty(g *schedule.Grid, sized *schedule.Sized, p *models.Problem) float64
}

// Violation reports one constraint's contribution to the objective,
// surfaced for reporting/debugging rather than for scoring.
type Violation struct {
	Constraint string  `json:"constraint"`
	Detail     string  `json:"detail"`
	Hard       bool    `json:"hard"`
	Penalty    float64 `json:"penalty"`
}

// Engine aggregates every constraint active for a solve and exposes both
// the scalar objective (for the optimizer) and a detailed violation
// listing (for API responses).
type Engine struct {
	constraints []Constraint
}

// NewEngine builds an engine from the constraint set appropriate to p:
// structural constraints always apply, institutional constraints are
// generated one per Rule, and logistical constraints are generated from
// cfg for senior tournaments only.
func NewEngine(p *models.Problem, sized *schedule.Sized, cfg schedule.Config) *Engine {
	e := &Engine{}
	e.constraints = append(e.constraints, StructuralConstraints(sized)...)
	e.constraints = append(e.constraints, InstitutionalConstraints(p, sized)...)
	e.constraints = append(e.constraints, LogisticalConstraints(p, cfg)...)
	return e
}

// Score returns the total weighted penalty across every constraint; lower
// is better, zero is a perfect assignment.
func (e *Engine) Score(g *schedule.Grid, sized *schedule.Sized, p *models.Problem) float64 {
	var total float64
	for _, c := range e.constraints {
		total += c.Penalty(g, sized, p)
	}
	return total
}

// HardViolationCount sums only the hard-constraint contribution, divided
// back out of HardPenalty units, letting a caller ask "is this feasible"
// without re-walking every constraint.
func (e *Engine) HardViolationCount(g *schedule.Grid, sized *schedule.Sized, p *models.Problem) float64 {
	var total float64
	for _, c := range e.constraints {
		if c.IsHard() {
			total += c.Penalty(g, sized, p) / HardPenalty
		}
	}
	return total
}

// Constraints exposes the underlying constraint list, e.g. for an API
// handler that wants to list active constraints by name.
func (e *Engine) Constraints() []Constraint {
	return e.constraints
}

// Violations lists every constraint with a nonzero penalty against g. The
// penalties sum to Score, so a caller can attribute the objective to the
// individual rules and structural properties behind it.
func (e *Engine) Violations(g *schedule.Grid, sized *schedule.Sized, p *models.Problem) []Violation {
	var out []Violation
	for _, c := range e.constraints {
		if penalty := c.Penalty(g, sized, p); penalty > 0 {
			out = append(out, Violation{
				Constraint: c.Name(),
				Detail:     c.Description(),
				Hard:       c.IsHard(),
				Penalty:    penalty,
			})
		}
	}
	return out
}
