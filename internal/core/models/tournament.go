package models

import "fmt"

// TournamentKind controls how many dates a tournament's schedule spans.
type TournamentKind string

const (
	// DoubleRoundRobin plays every pairing twice, home and away.
	DoubleRoundRobin TournamentKind = "double_round_robin"
	// SingleRoundRobin plays every pairing once.
	SingleRoundRobin TournamentKind = "single_round_robin"
	// FixedDates overrides the computed date count with FixedDateCount,
	// used for leagues that run a reduced or extended calendar.
	FixedDates TournamentKind = "fixed_dates"
)

// Tournament is one of the parallel round-robin competitions scheduled
// jointly across the shared date horizon.
type Tournament struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Kind           TournamentKind `json:"kind"`
	FixedDateCount int            `json:"fixed_date_count,omitempty"`
	Participants   []string       `json:"participants"`
}

// Validate checks that every participant resolves against clubsByName and
// that the tournament is internally consistent.
func (t *Tournament) Validate(clubsByName map[string]*Club) error {
	if t.ID == "" {
		return fmt.Errorf("tournament id is required")
	}
	if len(t.Participants) < 2 {
		return fmt.Errorf("tournament %s: needs at least two participants", t.ID)
	}
	seen := make(map[string]bool, len(t.Participants))
	for _, name := range t.Participants {
		if seen[name] {
			return fmt.Errorf("tournament %s: duplicate participant %q", t.ID, name)
		}
		seen[name] = true
		if _, ok := clubsByName[name]; !ok {
			return fmt.Errorf("tournament %s: unknown club %q", t.ID, name)
		}
	}
	switch t.Kind {
	case DoubleRoundRobin, SingleRoundRobin:
	case FixedDates:
		if t.FixedDateCount <= 0 {
			return fmt.Errorf("tournament %s: fixed_dates kind requires fixed_date_count > 0", t.ID)
		}
	default:
		return fmt.Errorf("tournament %s: unknown kind %q", t.ID, t.Kind)
	}
	return nil
}

// LeagueClass returns the coarse league category this tournament belongs
// to, derived from its ID.
func (t *Tournament) LeagueClass() LeagueClass {
	return LeagueClassOf(t.ID)
}
