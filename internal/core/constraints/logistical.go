package constraints

import (
	"sort"
	"strconv"

	"github.com/federacion/fixture-scheduler/internal/core/models"
	"github.com/federacion/fixture-scheduler/internal/core/schedule"
)

// LogisticalConstraints builds the shared-venue locality cap (soft,
// weighted per excess unit) and pairwise club exclusion (hard)
// constraints from cfg, restricted to senior tournaments the way the
// original fixture generator's Ayacucho police cap was. When cfg lists no
// explicit LocalityCaps, a cap of cfg.DefaultLocalityCap is derived
// automatically for every locality shared by two or more clubs, so the
// capacity constraint fires from plain federation data without requiring
// a caller to hand-list localities.
func LogisticalConstraints(p *models.Problem, cfg schedule.Config) []Constraint {
	var out []Constraint
	caps := cfg.LocalityCaps
	if len(caps) == 0 && cfg.DefaultLocalityCap > 0 {
		caps = deriveLocalityCaps(p, cfg.DefaultLocalityCap)
	}
	for _, lc := range caps {
		out = append(out, &localityCapConstraint{cap: lc, clubsByName: p.ClubsByName(), tournamentsByID: p.TournamentsByID()})
	}
	for _, ex := range cfg.Exclusions {
		out = append(out, &exclusionConstraint{pair: ex, tournamentsByID: p.TournamentsByID()})
	}
	return out
}

// deriveLocalityCaps builds one LocalityCap, bounded by limit, per
// locality that two or more clubs share.
func deriveLocalityCaps(p *models.Problem, limit int) []schedule.LocalityCap {
	counts := make(map[string]int)
	for _, club := range p.Clubs {
		if club.Locality != "" {
			counts[club.Locality]++
		}
	}
	localities := make([]string, 0, len(counts))
	for locality, count := range counts {
		if count >= 2 {
			localities = append(localities, locality)
		}
	}
	sort.Strings(localities)

	caps := make([]schedule.LocalityCap, 0, len(localities))
	for _, locality := range localities {
		caps = append(caps, schedule.LocalityCap{Locality: locality, Limit: limit})
	}
	return caps
}

type localityCapConstraint struct {
	cap             schedule.LocalityCap
	clubsByName     map[string]*models.Club
	tournamentsByID map[string]*models.Tournament
}

func (c *localityCapConstraint) Name() string { return "locality_cap_" + c.cap.Locality }
func (c *localityCapConstraint) Description() string {
	return "at most " + strconv.Itoa(c.cap.Limit) + " clubs in " + c.cap.Locality + " host on the same date"
}
func (c *localityCapConstraint) IsHard() bool { return false }

func (c *localityCapConstraint) Penalty(g *schedule.Grid, sized *schedule.Sized, p *models.Problem) float64 {
	var violations float64
	for date := 0; date < g.Horizon; date++ {
		homeClubs := seniorHomeClubs(g, c.tournamentsByID, date)
		count := 0
		for name := range homeClubs {
			if club, ok := c.clubsByName[name]; ok && club.Locality == c.cap.Locality {
				count++
			}
		}
		if excess := count - c.cap.Limit; excess > 0 {
			violations += float64(excess)
		}
	}
	return violations * WeightCapacityExcess
}

// seniorHomeClubs collects the set of clubs hosting in any senior
// tournament on the given date. A club hosting in two senior divisions at
// once still counts once — what matters to the cap is whether its ground
// is in use.
func seniorHomeClubs(g *schedule.Grid, tournamentsByID map[string]*models.Tournament, date int) map[string]bool {
	homeClubs := make(map[string]bool)
	for tournamentID, t := range tournamentsByID {
		if t.LeagueClass() != models.LeagueSeniors {
			continue
		}
		ts, ok := g.Tournaments[tournamentID]
		if !ok || date >= len(ts.Rounds) {
			continue
		}
		for _, pair := range ts.Rounds[date].Pairings {
			homeClubs[pair.Home] = true
		}
	}
	return homeClubs
}

type exclusionConstraint struct {
	pair            schedule.ExclusionPair
	tournamentsByID map[string]*models.Tournament
}

func (c *exclusionConstraint) Name() string { return "exclusion_" + c.pair.ClubA + "_" + c.pair.ClubB }
func (c *exclusionConstraint) Description() string {
	return c.pair.ClubA + " and " + c.pair.ClubB + " never host on the same date"
}
func (c *exclusionConstraint) IsHard() bool { return true }

func (c *exclusionConstraint) Penalty(g *schedule.Grid, sized *schedule.Sized, p *models.Problem) float64 {
	var violations float64
	for date := 0; date < g.Horizon; date++ {
		homeClubs := seniorHomeClubs(g, c.tournamentsByID, date)
		if homeClubs[c.pair.ClubA] && homeClubs[c.pair.ClubB] {
			violations++
		}
	}
	return violations * HardPenalty
}
