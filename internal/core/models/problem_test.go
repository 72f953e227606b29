package models

import "testing"

func TestProblem_Validate_HappyPath(t *testing.T) {
	p := &Problem{
		Clubs: []Club{{Name: "A"}, {Name: "B"}},
		Tournaments: []Tournament{
			{ID: "T1", Name: "T1", Kind: SingleRoundRobin, Participants: []string{"A", "B"}},
		},
	}
	if err := p.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestProblem_Validate_AccumulatesEveryFailure(t *testing.T) {
	p := &Problem{
		Clubs: []Club{{Name: "A"}, {Name: "A"}},
		Tournaments: []Tournament{
			{ID: "T1", Name: "T1", Kind: SingleRoundRobin, Participants: []string{"A", "Ghost"}},
		},
	}
	err := p.Validate()
	if err == nil {
		t.Fatal("expected a validation error")
	}
	// Both the duplicate club name and the unknown tournament participant
	// should surface; a multierror aggregate reports more than one line.
	msg := err.Error()
	if !contains(msg, "duplicate club name") {
		t.Errorf("expected duplicate club name to be reported, got: %s", msg)
	}
	if !contains(msg, "unknown club") {
		t.Errorf("expected unknown club to be reported, got: %s", msg)
	}
}

func TestProblem_Validate_EmptyProblemFails(t *testing.T) {
	p := &Problem{}
	if err := p.Validate(); err == nil {
		t.Error("expected an empty problem to fail validation")
	}
}

func contains(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}
