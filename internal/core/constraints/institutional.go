package constraints

import (
	"github.com/federacion/fixture-scheduler/internal/core/models"
	"github.com/federacion/fixture-scheduler/internal/core/schedule"
)

// InstitutionalConstraints builds one soft constraint per Rule, each
// scoring a weighted penalty on every shared date where the rule's two
// (tournament, club) sides both play and disagree with the rule's
// required relationship. Rules are never hard constraints on the solver
// — a Hard-flagged rule only moves into a higher weight class — matching
// the source system's own sync-as-reward formulation, which never
// equates cross-division home indicators directly to avoid an
// unsatisfiable cycle across tournaments of different lengths.
func InstitutionalConstraints(p *models.Problem, sized *schedule.Sized) []Constraint {
	tournamentsByID := p.TournamentsByID()
	limitsByID := make(map[string]int, len(sized.Tournaments))
	for _, st := range sized.Tournaments {
		limitsByID[st.ID] = st.ActiveLimit
	}
	out := make([]Constraint, 0, len(p.Rules))
	seen := make(map[string]bool, len(p.Rules))
	for i := range p.Rules {
		// Two rules of the same kind naming the same endpoints in either
		// order are one rule; scoring both would double its weight.
		key := p.Rules[i].Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, &institutionalConstraint{rule: &p.Rules[i], tournamentsByID: tournamentsByID, limitsByID: limitsByID})
	}
	return out
}

type institutionalConstraint struct {
	rule            *models.Rule
	tournamentsByID map[string]*models.Tournament
	limitsByID      map[string]int
}

func (c *institutionalConstraint) Name() string {
	return "institutional_" + string(c.rule.Kind) + "_" + c.rule.SourceClub + "_" + c.rule.TargetClub
}

func (c *institutionalConstraint) Description() string {
	if c.rule.Kind == models.Mirror {
		return c.rule.SourceClub + " and " + c.rule.TargetClub + " should share home/away on shared dates"
	}
	return c.rule.SourceClub + " and " + c.rule.TargetClub + " should play opposite sides on shared dates"
}

func (c *institutionalConstraint) IsHard() bool { return false }

func (c *institutionalConstraint) weight() float64 {
	if c.rule.Hard && c.touchesSenior() {
		return WeightInstitutionalHard
	}
	if c.touchesYouthOrChildren() {
		return WeightInstitutionalYouth
	}
	if c.rule.Weight > 0 {
		return float64(c.rule.Weight)
	}
	return WeightInstitutionalDefault
}

func (c *institutionalConstraint) touchesSenior() bool {
	return c.classOf(c.rule.SourceTournament) == models.LeagueSeniors || c.classOf(c.rule.TargetTournament) == models.LeagueSeniors
}

func (c *institutionalConstraint) touchesYouthOrChildren() bool {
	for _, id := range []string{c.rule.SourceTournament, c.rule.TargetTournament} {
		class := c.classOf(id)
		if class == models.LeagueYouth || class == models.LeagueChildren {
			return true
		}
	}
	return false
}

func (c *institutionalConstraint) classOf(tournamentID string) models.LeagueClass {
	if t, ok := c.tournamentsByID[tournamentID]; ok {
		return t.LeagueClass()
	}
	return ""
}

// overlapWindow returns the number of dates over which the rule's two
// sides can both meaningfully be checked: the lesser of their
// tournaments' ActiveLimit, so a small tournament's clustered bye tail
// never counts as a disagreement against a longer-running partner
// tournament.
func (c *institutionalConstraint) overlapWindow() int {
	window, ok := c.limitsByID[c.rule.SourceTournament]
	if !ok {
		return 0
	}
	if target, ok := c.limitsByID[c.rule.TargetTournament]; ok && target < window {
		window = target
	}
	return window
}

func (c *institutionalConstraint) Penalty(g *schedule.Grid, sized *schedule.Sized, p *models.Problem) float64 {
	horizon := c.overlapWindow()
	var violations float64
	for date := 0; date < horizon; date++ {
		_, sourceHome, sourceFound := g.PlaysOn(date, c.rule.SourceTournament, c.rule.SourceClub)
		_, targetHome, targetFound := g.PlaysOn(date, c.rule.TargetTournament, c.rule.TargetClub)
		if !sourceFound || !targetFound {
			continue
		}
		switch c.rule.Kind {
		case models.Mirror:
			if sourceHome != targetHome {
				violations++
			}
		case models.Inverse:
			if sourceHome == targetHome {
				violations++
			}
		}
	}
	return violations * c.weight()
}
