package models

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Problem is the single normalized input aggregate the scheduling engine
// operates on: every club in the federation, every tournament to be
// scheduled, and every cross-tournament synchronization rule between
// them. The solver treats this value as immutable for the duration of a
// solve.
type Problem struct {
	Clubs       []Club       `json:"clubs"`
	Tournaments []Tournament `json:"tournaments"`
	Rules       []Rule       `json:"rules"`
}

// ClubsByName indexes Clubs by name for lookup during validation and
// venue resolution.
func (p *Problem) ClubsByName() map[string]*Club {
	out := make(map[string]*Club, len(p.Clubs))
	for i := range p.Clubs {
		out[p.Clubs[i].Name] = &p.Clubs[i]
	}
	return out
}

// TournamentsByID indexes Tournaments by ID.
func (p *Problem) TournamentsByID() map[string]*Tournament {
	out := make(map[string]*Tournament, len(p.Tournaments))
	for i := range p.Tournaments {
		out[p.Tournaments[i].ID] = &p.Tournaments[i]
	}
	return out
}

// Validate checks every club, tournament, and rule, accumulating all
// failures instead of stopping at the first one so a caller can report
// every input problem in one response.
func (p *Problem) Validate() error {
	var result *multierror.Error

	if len(p.Clubs) == 0 {
		result = multierror.Append(result, fmt.Errorf("at least one club is required"))
	}
	names := make(map[string]bool, len(p.Clubs))
	for i := range p.Clubs {
		c := &p.Clubs[i]
		if err := c.Validate(); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if names[c.Name] {
			result = multierror.Append(result, fmt.Errorf("duplicate club name %q", c.Name))
		}
		names[c.Name] = true
	}

	if len(p.Tournaments) == 0 {
		result = multierror.Append(result, fmt.Errorf("at least one tournament is required"))
	}
	clubsByName := p.ClubsByName()
	ids := make(map[string]bool, len(p.Tournaments))
	for i := range p.Tournaments {
		t := &p.Tournaments[i]
		if err := t.Validate(clubsByName); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if ids[t.ID] {
			result = multierror.Append(result, fmt.Errorf("duplicate tournament id %q", t.ID))
		}
		ids[t.ID] = true
	}

	tournamentsByID := p.TournamentsByID()
	for i := range p.Rules {
		if err := p.Rules[i].Validate(tournamentsByID, clubsByName); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if result != nil {
		return result.ErrorOrNil()
	}
	return nil
}
