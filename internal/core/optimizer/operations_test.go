package optimizer

import (
	"testing"

	"github.com/federacion/fixture-scheduler/internal/core/models"
	"github.com/federacion/fixture-scheduler/internal/core/schedule"
)

func testSizedForOps(t *testing.T) *schedule.Sized {
	t.Helper()
	p := &models.Problem{
		Clubs: []models.Club{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}},
		Tournaments: []models.Tournament{
			{ID: "T1", Name: "T1", Kind: models.DoubleRoundRobin, Participants: []string{"A", "B", "C", "D"}},
		},
	}
	sized, err := schedule.Size(p, schedule.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return sized
}

func TestSwapRounds_PreservesTotalPairingCount(t *testing.T) {
	sized := testSizedForOps(t)
	g := schedule.Seed(sized)
	ls := &LocalSearch{}

	before := 0
	for _, ts := range g.Tournaments {
		for _, r := range ts.Rounds {
			before += len(r.Pairings)
		}
	}

	if err := ls.swapRounds(g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after := 0
	for _, ts := range g.Tournaments {
		for _, r := range ts.Rounds {
			after += len(r.Pairings)
		}
	}
	if before != after {
		t.Errorf("expected swapRounds to preserve total pairing count: before=%d after=%d", before, after)
	}
}

func TestSwapRounds_ErrorsWithoutTwoDates(t *testing.T) {
	p := &models.Problem{
		Clubs: []models.Club{{Name: "A"}, {Name: "B"}},
		Tournaments: []models.Tournament{
			{ID: "T1", Name: "T1", Kind: models.SingleRoundRobin, Participants: []string{"A", "B"}},
		},
	}
	sized, err := schedule.Size(p, schedule.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := schedule.Seed(sized)
	ls := &LocalSearch{}
	if err := ls.swapRounds(g); err == nil {
		t.Error("expected an error for a single-date tournament")
	}
}

func TestSwapHomeAway_FlipsHostWithoutTouchingByes(t *testing.T) {
	sized := testSizedForOps(t)
	g := schedule.Seed(sized)
	ls := &LocalSearch{}

	if err := ls.swapHomeAway(g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, ts := range g.Tournaments {
		for _, r := range ts.Rounds {
			for _, pair := range r.Pairings {
				if schedule.IsBye(pair.Home) || schedule.IsBye(pair.Away) {
					t.Error("swapHomeAway should never touch a bye pairing")
				}
			}
		}
	}
}

func TestSwapPairingSlot_RequiresNonEmptyRounds(t *testing.T) {
	sized := testSizedForOps(t)
	g := schedule.NewGrid(sized) // every round is empty
	ls := &LocalSearch{}
	if err := ls.swapPairingSlot(g); err == nil {
		t.Error("expected an error when both chosen dates have no pairings")
	}
}
