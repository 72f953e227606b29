package schedule

import (
	"fmt"

	"github.com/federacion/fixture-scheduler/internal/core/models"
)

// SizedTournament is a tournament after bye padding and date-count
// resolution: Participants always has even length, with synthetic
// "BYE_<id>_<n>" entries appended as needed, and ActiveLimit is the date
// index (exclusive) up to which the tournament has genuine scheduling
// activity. For a plain double/single round-robin ActiveLimit always
// equals Dates — the circle method needs every date in its window. It
// only falls short of Dates when a small tournament (pre-padding
// participant count under Config.ByeClusterThreshold) is given more
// Dates than it naturally needs, e.g. a FixedDates override padded out
// for a shared calendar: the tail [ActiveLimit, Dates) is then left with
// zero matches instead of spreading the padded bye across it.
type SizedTournament struct {
	models.Tournament
	Participants []string
	ActiveLimit  int
	Dates        int
}

// Sized is the full sized problem: every tournament padded and dated,
// plus the shared Horizon every tournament's date axis is indexed against.
type Sized struct {
	Tournaments []SizedTournament
	Horizon     int
}

// Size pads odd-sized tournaments with bye participants and computes each
// tournament's date count, per the structural rules in the original
// fixture generator: double round-robin plays 2*(n-1) dates, single
// round-robin plays (n-1), both clipped to cfg.MaxDatesPerTournament;
// FixedDates tournaments use their configured count verbatim. Small
// tournaments (pre-padding participant count under
// cfg.ByeClusterThreshold) get ActiveLimit set below Dates whenever Dates
// exceeds their natural round-robin length, clustering the bye tail.
func Size(p *models.Problem, cfg Config) (*Sized, error) {
	out := &Sized{}
	maxDates := cfg.MaxDatesPerTournament
	if maxDates <= 0 {
		maxDates = DefaultConfig().MaxDatesPerTournament
	}
	clusterThreshold := cfg.ByeClusterThreshold
	if clusterThreshold <= 0 {
		clusterThreshold = DefaultConfig().ByeClusterThreshold
	}

	for _, t := range p.Tournaments {
		participants := append([]string(nil), t.Participants...)
		preCount := len(participants)
		if preCount%2 == 1 {
			participants = append(participants, fmt.Sprintf("BYE_%s_1", t.ID))
		}
		n := len(participants)
		cycles := n - 1

		var dates, legs int
		switch t.Kind {
		case models.DoubleRoundRobin:
			legs = 2
			dates = legs * cycles
		case models.SingleRoundRobin:
			legs = 1
			dates = legs * cycles
		case models.FixedDates:
			// Fixed-date overrides in practice extend a division's
			// calendar to match a shared season length, always on top
			// of what would otherwise be a double round-robin.
			legs = 2
			dates = t.FixedDateCount
		default:
			return nil, fmt.Errorf("%w: tournament %s has unknown kind %q", ErrInputInvalid, t.ID, t.Kind)
		}
		if t.Kind != models.FixedDates && dates > maxDates {
			dates = maxDates
		}

		// A small tournament given more Dates than a round-robin of its
		// size naturally needs clusters its padded bye at the end: the
		// window beyond the natural length carries zero matches rather
		// than spreading the bye evenly across the whole calendar.
		activeLimit := dates
		if natural := legs * cycles; preCount < clusterThreshold && natural < activeLimit {
			activeLimit = natural
		}

		out.Tournaments = append(out.Tournaments, SizedTournament{
			Tournament:   t,
			Participants: participants,
			ActiveLimit:  activeLimit,
			Dates:        dates,
		})
		if dates > out.Horizon {
			out.Horizon = dates
		}
	}

	if cfg.MaxVariables > 0 {
		total := 0
		for _, st := range out.Tournaments {
			n := len(st.Participants)
			total += st.Dates * n * n // plays[d,i,j]
			total += st.Dates * n     // isHome[d,p]
		}
		if total > cfg.MaxVariables {
			return nil, fmt.Errorf("%w: sized problem needs %d variables, budget is %d", ErrModelTooLarge, total, cfg.MaxVariables)
		}
	}

	return out, nil
}

// IsBye reports whether participant name is a synthetic bye slot.
func IsBye(name string) bool {
	return len(name) >= 4 && name[:4] == "BYE_"
}
