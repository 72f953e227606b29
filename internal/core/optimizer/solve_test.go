package optimizer

import (
	"context"
	"testing"

	"github.com/federacion/fixture-scheduler/internal/core/models"
	"github.com/federacion/fixture-scheduler/internal/core/schedule"
)

func TestSolve_RejectsInvalidInputBeforeSearching(t *testing.T) {
	p := &models.Problem{
		Clubs: []models.Club{{Name: "A"}},
		Tournaments: []models.Tournament{
			{ID: "T1", Name: "T1", Kind: models.SingleRoundRobin, Participants: []string{"A", "Ghost"}},
		},
	}
	_, status, err := Solve(context.Background(), p, schedule.DefaultConfig(), DefaultConfig())
	if err == nil {
		t.Fatal("expected an input validation error")
	}
	if status != models.StatusModelInvalid {
		t.Errorf("expected MODEL_INVALID for a bad input, got %v", status)
	}
}

func TestSolve_MirrorRuleAcrossTwoLeagues(t *testing.T) {
	// S4 — two parallel two-team leagues of horizon 1 with a mirror rule
	// between them: the model is trivially admissible, so the solve must
	// come back OPTIMAL or FEASIBLE with one match per league.
	p := &models.Problem{
		Clubs: []models.Club{{Name: "A"}, {Name: "B"}, {Name: "A2"}, {Name: "B2"}},
		Tournaments: []models.Tournament{
			{ID: "T1", Name: "T1", Kind: models.SingleRoundRobin, Participants: []string{"A", "B"}},
			{ID: "T2", Name: "T2", Kind: models.SingleRoundRobin, Participants: []string{"A2", "B2"}},
		},
		Rules: []models.Rule{
			{SourceClub: "A", SourceTournament: "T1", TargetClub: "A2", TargetTournament: "T2", Kind: models.Mirror},
		},
	}
	cfg := DefaultConfig()
	cfg.MaxIterations = 500

	fixture, status, err := Solve(context.Background(), p, schedule.DefaultConfig(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != models.StatusOptimal && status != models.StatusFeasible {
		t.Fatalf("expected an admissible outcome, got %v", status)
	}
	if len(fixture) != 2 {
		t.Errorf("expected one fixture entry per league, got %d", len(fixture))
	}
}

func TestSolve_ConflictingRulesStayFeasible(t *testing.T) {
	// S6 — a mirror rule and an inverse rule on the same endpoints cannot
	// both hold, but rules are soft: the solve must not report
	// INFEASIBLE, and the best incumbent still yields a fixture.
	p := &models.Problem{
		Clubs: []models.Club{{Name: "A"}, {Name: "B"}, {Name: "A2"}, {Name: "B2"}},
		Tournaments: []models.Tournament{
			{ID: "T1", Name: "T1", Kind: models.SingleRoundRobin, Participants: []string{"A", "B"}},
			{ID: "T2", Name: "T2", Kind: models.SingleRoundRobin, Participants: []string{"A2", "B2"}},
		},
		Rules: []models.Rule{
			{SourceClub: "A", SourceTournament: "T1", TargetClub: "A2", TargetTournament: "T2", Kind: models.Mirror},
			{SourceClub: "A", SourceTournament: "T1", TargetClub: "A2", TargetTournament: "T2", Kind: models.Inverse},
		},
	}
	cfg := DefaultConfig()
	cfg.MaxIterations = 200

	fixture, status, err := Solve(context.Background(), p, schedule.DefaultConfig(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status == models.StatusInfeasible || status == models.StatusUnknown {
		t.Fatalf("conflicting soft rules must not make the model inadmissible, got %v", status)
	}
	if fixture == nil {
		t.Error("expected a fixture despite the unavoidable rule violation")
	}
}
