package constraints

import (
	"testing"

	"github.com/federacion/fixture-scheduler/internal/core/models"
	"github.com/federacion/fixture-scheduler/internal/core/schedule"
)

func TestEngine_SeededTwoTeamGridScoresZeroHardViolations(t *testing.T) {
	// S1 — a two-team single round-robin has exactly one admissible
	// shape, and the seed produces it directly.
	p := &models.Problem{
		Clubs: []models.Club{{Name: "A"}, {Name: "B"}},
		Tournaments: []models.Tournament{
			{ID: "SENIORS-A", Name: "Seniors A", Kind: models.SingleRoundRobin, Participants: []string{"A", "B"}},
		},
	}
	cfg := schedule.DefaultConfig()
	sized, err := schedule.Size(p, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := schedule.Seed(sized)
	e := NewEngine(p, sized, cfg)

	if hv := e.HardViolationCount(g, sized, p); hv != 0 {
		t.Errorf("expected a freshly seeded grid to have zero hard violations, got %v", hv)
	}
}

func TestEngine_SeededGridKeepsRoundRobinShape(t *testing.T) {
	// S2 — the seed for a four-team double round-robin satisfies the
	// round-robin shape constraints outright (opponent counts,
	// once-per-date, half-mirror); remaining hard penalty can come only
	// from home/away alternation, which is the optimizer's job to repair.
	p := &models.Problem{
		Clubs: []models.Club{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}},
		Tournaments: []models.Tournament{
			{ID: "SENIORS-A", Name: "Seniors A", Kind: models.DoubleRoundRobin, Participants: []string{"A", "B", "C", "D"}},
		},
	}
	cfg := schedule.DefaultConfig()
	sized, err := schedule.Size(p, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := schedule.Seed(sized)
	e := NewEngine(p, sized, cfg)

	for _, c := range e.Constraints() {
		if !c.IsHard() || c.Name() == "alternation" {
			continue
		}
		if got := c.Penalty(g, sized, p); got != 0 {
			t.Errorf("expected the seeded grid to satisfy %s, got penalty %v", c.Name(), got)
		}
	}
}

func TestEngine_ViolationsSumToScore(t *testing.T) {
	// P6 — the per-constraint violation report must attribute the whole
	// objective: its penalties sum to exactly what Score returns.
	p := &models.Problem{
		Clubs: []models.Club{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}},
		Tournaments: []models.Tournament{
			{ID: "T1", Name: "T1", Kind: models.SingleRoundRobin, Participants: []string{"A", "B"}},
			{ID: "T2", Name: "T2", Kind: models.SingleRoundRobin, Participants: []string{"C", "D"}},
		},
		Rules: []models.Rule{
			{SourceClub: "A", SourceTournament: "T1", TargetClub: "C", TargetTournament: "T2", Kind: models.Mirror},
		},
	}
	cfg := schedule.DefaultConfig()
	sized, err := schedule.Size(p, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := schedule.NewGrid(sized)
	// A hosts while C travels: the mirror rule is violated on date 1.
	g.Tournaments["T1"].Rounds[0] = schedule.Round{Pairings: []schedule.Pairing{{Home: "A", Away: "B"}}}
	g.Tournaments["T2"].Rounds[0] = schedule.Round{Pairings: []schedule.Pairing{{Home: "D", Away: "C"}}}

	e := NewEngine(p, sized, cfg)
	var sum float64
	for _, v := range e.Violations(g, sized, p) {
		sum += v.Penalty
	}
	if score := e.Score(g, sized, p); sum != score {
		t.Errorf("expected the violation report to account for the whole objective: sum=%v score=%v", sum, score)
	}
	if sum == 0 {
		t.Error("expected the broken mirror rule to appear in the violation report")
	}
}

func TestEngine_IncludesInstitutionalAndLogisticalConstraints(t *testing.T) {
	p := &models.Problem{
		Clubs: []models.Club{{Name: "A"}, {Name: "B"}},
		Tournaments: []models.Tournament{
			{ID: "T1", Name: "T1", Kind: models.SingleRoundRobin, Participants: []string{"A", "B"}},
		},
		Rules: []models.Rule{
			{SourceClub: "A", SourceTournament: "T1", TargetClub: "B", TargetTournament: "T1", Kind: models.Mirror},
		},
	}
	cfg := schedule.DefaultConfig()
	cfg.Exclusions = []schedule.ExclusionPair{{ClubA: "A", ClubB: "B"}}
	sized, err := schedule.Size(p, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := NewEngine(p, sized, cfg)

	names := make(map[string]bool)
	for _, c := range e.Constraints() {
		names[c.Name()] = true
	}
	foundInstitutional := false
	foundExclusion := false
	for name := range names {
		if len(name) >= 14 && name[:14] == "institutional_" {
			foundInstitutional = true
		}
		if len(name) >= 10 && name[:10] == "exclusion_" {
			foundExclusion = true
		}
	}
	if !foundInstitutional {
		t.Error("expected an institutional constraint to be registered from the rule")
	}
	if !foundExclusion {
		t.Error("expected an exclusion constraint to be registered from cfg")
	}
}
