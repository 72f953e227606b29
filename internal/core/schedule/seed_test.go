package schedule

import (
	"testing"

	"github.com/federacion/fixture-scheduler/internal/core/models"
)

func TestSeed_RoundRobinCompleteness(t *testing.T) {
	// P1 — over a single round-robin horizon every pair of participants
	// must meet exactly once.
	p := &models.Problem{
		Clubs: []models.Club{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}},
		Tournaments: []models.Tournament{
			{ID: "T1", Name: "T1", Kind: models.SingleRoundRobin, Participants: []string{"A", "B", "C", "D"}},
		},
	}
	sized, err := Size(p, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := Seed(sized)
	ts := g.Tournaments["T1"]

	met := make(map[[2]string]int)
	for _, round := range ts.Rounds {
		for _, pair := range round.Pairings {
			key := [2]string{pair.Home, pair.Away}
			if pair.Home > pair.Away {
				key = [2]string{pair.Away, pair.Home}
			}
			met[key]++
		}
	}
	participants := sized.Tournaments[0].Participants
	for i := 0; i < len(participants); i++ {
		for j := i + 1; j < len(participants); j++ {
			key := [2]string{participants[i], participants[j]}
			if key[0] > key[1] {
				key = [2]string{participants[j], participants[i]}
			}
			if met[key] != 1 {
				t.Errorf("expected %v to meet exactly once, met %d times", key, met[key])
			}
		}
	}
}

func TestSeed_OncePerDate(t *testing.T) {
	// P2 — no participant appears twice on the same date within a
	// tournament.
	p := &models.Problem{
		Clubs: []models.Club{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}, {Name: "E"}, {Name: "F"}},
		Tournaments: []models.Tournament{
			{ID: "T1", Name: "T1", Kind: models.DoubleRoundRobin, Participants: []string{"A", "B", "C", "D", "E", "F"}},
		},
	}
	sized, err := Size(p, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := Seed(sized)
	ts := g.Tournaments["T1"]
	for d, round := range ts.Rounds {
		seen := make(map[string]bool)
		for _, pair := range round.Pairings {
			if seen[pair.Home] || seen[pair.Away] {
				t.Errorf("date %d: participant appears twice: %+v", d, round.Pairings)
			}
			seen[pair.Home] = true
			seen[pair.Away] = true
		}
	}
}

func TestSeed_SkipsByePairings(t *testing.T) {
	p := &models.Problem{
		Clubs: []models.Club{{Name: "A"}, {Name: "B"}, {Name: "C"}},
		Tournaments: []models.Tournament{
			{ID: "T1", Name: "T1", Kind: models.SingleRoundRobin, Participants: []string{"A", "B", "C"}},
		},
	}
	sized, err := Size(p, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := Seed(sized)
	ts := g.Tournaments["T1"]
	sawBye := false
	for _, round := range ts.Rounds {
		for _, pair := range round.Pairings {
			if IsBye(pair.Home) || IsBye(pair.Away) {
				sawBye = true
			}
		}
	}
	if !sawBye {
		t.Error("expected the padded bye participant to appear in at least one pairing")
	}
}

func TestSeed_ClustersByeTailForSmallLeagueOnFixedDatesOverride(t *testing.T) {
	// A 2-team league stretched onto a 20-date shared calendar should
	// play its one real pairing within its natural 2-date window and
	// leave every later date empty, instead of spreading it evenly.
	p := &models.Problem{
		Clubs: []models.Club{{Name: "A"}, {Name: "B"}},
		Tournaments: []models.Tournament{
			{ID: "T1", Name: "T1", Kind: models.FixedDates, FixedDateCount: 20, Participants: []string{"A", "B"}},
		},
	}
	sized, err := Size(p, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st := sized.Tournaments[0]
	g := Seed(sized)
	ts := g.Tournaments["T1"]

	for d := st.ActiveLimit; d < len(ts.Rounds); d++ {
		if len(ts.Rounds[d].Pairings) != 0 {
			t.Errorf("date %d: expected the clustered bye tail to carry zero matches, got %+v", d, ts.Rounds[d].Pairings)
		}
	}
	matches := 0
	for d := 0; d < st.ActiveLimit; d++ {
		matches += len(ts.Rounds[d].Pairings)
	}
	if matches == 0 {
		t.Error("expected at least one real match within the active window")
	}
}
