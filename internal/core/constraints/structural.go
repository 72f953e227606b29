package constraints

import (
	"github.com/federacion/fixture-scheduler/internal/core/models"
	"github.com/federacion/fixture-scheduler/internal/core/schedule"
)

// StructuralConstraints builds the fixed set of round-robin shape
// constraints that apply to every sized tournament: at most one match per
// date per participant (hard), each pairing meeting the tournament's
// required number of times (hard), no three-in-a-row on the same side
// (hard), leg separation between a pairing's two meetings in a double
// round-robin (soft), half-mirror home/away inversion (hard), and bye
// clustering for small leagues given more dates than they need (soft).
func StructuralConstraints(sized *schedule.Sized) []Constraint {
	return []Constraint{
		&oncePerDateConstraint{},
		&opponentCountConstraint{sized: sized},
		&alternationConstraint{},
		&halfMirrorConstraint{sized: sized},
		&legSeparationConstraint{sized: sized},
		&byeClusterConstraint{sized: sized},
	}
}

type oncePerDateConstraint struct{}

func (c *oncePerDateConstraint) Name() string        { return "once_per_date" }
func (c *oncePerDateConstraint) Description() string { return "a participant plays at most one match per date" }
func (c *oncePerDateConstraint) IsHard() bool         { return true }

func (c *oncePerDateConstraint) Penalty(g *schedule.Grid, sized *schedule.Sized, p *models.Problem) float64 {
	var violations float64
	for _, ts := range g.Tournaments {
		for _, round := range ts.Rounds {
			seen := make(map[string]int)
			for _, pair := range round.Pairings {
				seen[pair.Home]++
				seen[pair.Away]++
			}
			for _, count := range seen {
				if count > 1 {
					violations += float64(count - 1)
				}
			}
		}
	}
	return violations * HardPenalty
}

type opponentCountConstraint struct {
	sized *schedule.Sized
}

func (c *opponentCountConstraint) Name() string { return "opponent_count" }
func (c *opponentCountConstraint) Description() string {
	return "every pairing meets exactly once (single round-robin) or twice, home and away (double round-robin)"
}
func (c *opponentCountConstraint) IsHard() bool { return true }

func (c *opponentCountConstraint) Penalty(g *schedule.Grid, sized *schedule.Sized, p *models.Problem) float64 {
	var violations float64
	for _, st := range sized.Tournaments {
		ts, ok := g.Tournaments[st.ID]
		if !ok {
			continue
		}
		// The meeting count every pair must reach follows from the active
		// window: a window of c full cycles means c meetings per pair; a
		// clipped or stretched window that is not a whole number of cycles
		// leaves some pairs one meeting ahead of the rest.
		cycles := len(st.Participants) - 1
		if cycles < 1 {
			continue
		}
		minMeet := st.ActiveLimit / cycles
		maxMeet := minMeet
		if st.ActiveLimit%cycles != 0 {
			maxMeet++
		}
		counts := make(map[string]int)
		homeCounts := make(map[string]int)
		for _, round := range ts.Rounds {
			for _, pair := range round.Pairings {
				key := unorderedKey(pair.Home, pair.Away)
				counts[key]++
				if pair.Home < pair.Away {
					homeCounts[key]++
				} else {
					homeCounts[key+"#rev"]++
				}
			}
		}
		expectedPairs := expectedPairCount(st.Participants)
		for key := range expectedPairs {
			got := counts[key]
			switch {
			case got < minMeet:
				violations += float64(minMeet - got)
			case got > maxMeet:
				violations += float64(got - maxMeet)
			}
		}
		// A pair meeting exactly twice must split the legs home and away.
		for key := range expectedPairs {
			if counts[key] == 2 {
				forward := homeCounts[key]
				reverse := homeCounts[key+"#rev"]
				if forward != 1 || reverse != 1 {
					violations++
				}
			}
		}
	}
	return violations * HardPenalty
}

func expectedPairCount(participants []string) map[string]bool {
	out := make(map[string]bool)
	for i := 0; i < len(participants); i++ {
		for j := i + 1; j < len(participants); j++ {
			out[unorderedKey(participants[i], participants[j])] = true
		}
	}
	return out
}

func unorderedKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "::" + b
}

type alternationConstraint struct{}

func (c *alternationConstraint) Name() string { return "alternation" }
func (c *alternationConstraint) Description() string {
	return "no participant hosts or travels three dates in a row"
}
func (c *alternationConstraint) IsHard() bool { return true }

func (c *alternationConstraint) Penalty(g *schedule.Grid, sized *schedule.Sized, p *models.Problem) float64 {
	var violations float64
	for _, ts := range g.Tournaments {
		sequences := make(map[string][]bool) // per participant: true=home, in date order
		for _, round := range ts.Rounds {
			for _, pair := range round.Pairings {
				sequences[pair.Home] = append(sequences[pair.Home], true)
				sequences[pair.Away] = append(sequences[pair.Away], false)
			}
		}
		for name, seq := range sequences {
			if schedule.IsBye(name) {
				continue
			}
			run := 1
			for i := 1; i < len(seq); i++ {
				if seq[i] == seq[i-1] {
					run++
					if run > 2 {
						violations++
					}
				} else {
					run = 1
				}
			}
		}
	}
	return violations * HardPenalty
}

// halfMirrorConstraint enforces that, within one double round-robin
// tournament, a team's home/away state on date d differs from its state
// on date d + D/2 for every d in the first half: the second half of the
// calendar is the home/away inversion of the first, not merely a repeat
// of the same pairings.
type halfMirrorConstraint struct {
	sized *schedule.Sized
}

func (c *halfMirrorConstraint) Name() string { return "half_mirror" }
func (c *halfMirrorConstraint) Description() string {
	return "in a double round-robin, the second half inverts the first half's home/away pattern"
}
func (c *halfMirrorConstraint) IsHard() bool { return true }

func (c *halfMirrorConstraint) Penalty(g *schedule.Grid, sized *schedule.Sized, p *models.Problem) float64 {
	var violations float64
	for _, st := range c.sized.Tournaments {
		if st.Kind != models.DoubleRoundRobin {
			continue
		}
		ts, ok := g.Tournaments[st.ID]
		if !ok {
			continue
		}
		half := len(ts.Rounds) / 2
		if half == 0 {
			continue
		}
		for _, participant := range st.Participants {
			if schedule.IsBye(participant) {
				continue
			}
			for d := 0; d < half; d++ {
				first := g.HomeValue(d, st.ID, participant)
				second := g.HomeValue(d+half, st.ID, participant)
				if first == second {
					violations++
				}
			}
		}
	}
	return violations * HardPenalty
}

type legSeparationConstraint struct {
	sized *schedule.Sized
}

func (c *legSeparationConstraint) Name() string { return "leg_separation" }
func (c *legSeparationConstraint) Description() string {
	return "a pairing's two meetings in a double round-robin should be spread across the calendar, not bunched together"
}
func (c *legSeparationConstraint) IsHard() bool { return false }

func (c *legSeparationConstraint) Penalty(g *schedule.Grid, sized *schedule.Sized, p *models.Problem) float64 {
	var violations float64
	for _, st := range c.sized.Tournaments {
		if st.Kind != models.DoubleRoundRobin {
			continue
		}
		ts, ok := g.Tournaments[st.ID]
		if !ok {
			continue
		}
		minSeparation := len(st.Participants) / 2
		firstSeen := make(map[string]int)
		for d, round := range ts.Rounds {
			for _, pair := range round.Pairings {
				key := unorderedKey(pair.Home, pair.Away)
				if prev, ok := firstSeen[key]; ok {
					if d-prev < minSeparation {
						violations += float64(minSeparation - (d - prev))
					}
				} else {
					firstSeen[key] = d
				}
			}
		}
	}
	return violations * WeightStructuralSoft
}

// byeClusterConstraint penalizes any match scheduled at or after a small
// tournament's ActiveLimit cutoff: once a tournament has
// been given more dates than its round-robin naturally needs, every team
// should play every date up to the cutoff and then have zero matches
// after it, rather than the circle method's usual even spread of the
// padded bye across the whole window.
type byeClusterConstraint struct {
	sized *schedule.Sized
}

func (c *byeClusterConstraint) Name() string { return "bye_cluster" }
func (c *byeClusterConstraint) Description() string {
	return "small tournaments cluster their padded bye at the end of the calendar instead of spreading it"
}
func (c *byeClusterConstraint) IsHard() bool { return false }

func (c *byeClusterConstraint) Penalty(g *schedule.Grid, sized *schedule.Sized, p *models.Problem) float64 {
	var violations float64
	for _, st := range c.sized.Tournaments {
		if st.ActiveLimit >= st.Dates {
			continue
		}
		ts, ok := g.Tournaments[st.ID]
		if !ok {
			continue
		}
		for d := st.ActiveLimit; d < len(ts.Rounds); d++ {
			violations += float64(len(ts.Rounds[d].Pairings))
		}
	}
	return violations * WeightStructuralSoft
}
