package optimizer

import (
	"errors"
	"math/rand"

	"github.com/federacion/fixture-scheduler/internal/core/schedule"
)

// neighborOp is one local-search move the annealer can try. Each chooses
// its own random targets and reports an error if the grid has no
// suitable move available (e.g. a tournament with only one date).
type neighborOp func(g *schedule.Grid) error

func (ls *LocalSearch) neighborOps() []neighborOp {
	return []neighborOp{ls.swapRounds, ls.swapHomeAway, ls.swapPairingSlot}
}

func (ls *LocalSearch) randomTournament(g *schedule.Grid) *schedule.TournamentSchedule {
	if len(g.Tournaments) == 0 {
		return nil
	}
	ids := make([]string, 0, len(g.Tournaments))
	for id := range g.Tournaments {
		ids = append(ids, id)
	}
	return g.Tournaments[ids[rand.Intn(len(ids))]]
}

// swapRounds exchanges the full set of pairings between two dates within
// one tournament, preserving every opponent count while reshuffling which
// date each pairing falls on.
func (ls *LocalSearch) swapRounds(g *schedule.Grid) error {
	ts := ls.randomTournament(g)
	if ts == nil || len(ts.Rounds) < 2 {
		return errors.New("no tournament with two or more dates")
	}
	d1 := rand.Intn(len(ts.Rounds))
	d2 := rand.Intn(len(ts.Rounds))
	for d1 == d2 {
		d2 = rand.Intn(len(ts.Rounds))
	}
	ts.Rounds[d1], ts.Rounds[d2] = ts.Rounds[d2], ts.Rounds[d1]
	return nil
}

// swapPairingSlot exchanges a single pairing between two dates in the
// same tournament, leaving every other pairing on both dates untouched.
func (ls *LocalSearch) swapPairingSlot(g *schedule.Grid) error {
	ts := ls.randomTournament(g)
	if ts == nil || len(ts.Rounds) < 2 {
		return errors.New("no tournament with two or more dates")
	}
	d1 := rand.Intn(len(ts.Rounds))
	d2 := rand.Intn(len(ts.Rounds))
	for d1 == d2 {
		d2 = rand.Intn(len(ts.Rounds))
	}
	r1, r2 := ts.Rounds[d1], ts.Rounds[d2]
	if len(r1.Pairings) == 0 || len(r2.Pairings) == 0 {
		return errors.New("one of the chosen dates has no pairings")
	}
	i1 := rand.Intn(len(r1.Pairings))
	i2 := rand.Intn(len(r2.Pairings))
	r1.Pairings[i1], r2.Pairings[i2] = r2.Pairings[i2], r1.Pairings[i1]
	return nil
}

// swapHomeAway flips which side hosts for one randomly chosen pairing,
// leaving the opponent pairing itself unchanged.
func (ls *LocalSearch) swapHomeAway(g *schedule.Grid) error {
	ts := ls.randomTournament(g)
	if ts == nil || len(ts.Rounds) == 0 {
		return errors.New("no tournament with any dates")
	}
	maxAttempts := 50
	for attempt := 0; attempt < maxAttempts; attempt++ {
		d := rand.Intn(len(ts.Rounds))
		round := ts.Rounds[d]
		if len(round.Pairings) == 0 {
			continue
		}
		i := rand.Intn(len(round.Pairings))
		if schedule.IsBye(round.Pairings[i].Home) || schedule.IsBye(round.Pairings[i].Away) {
			continue
		}
		round.Pairings[i].Home, round.Pairings[i].Away = round.Pairings[i].Away, round.Pairings[i].Home
		return nil
	}
	return errors.New("could not find a non-bye pairing to flip")
}
